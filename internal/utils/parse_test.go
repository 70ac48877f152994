package utils

import "testing"

type parsedPerson struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestParseStringAs_Primitives(t *testing.T) {
	str, err := ParseStringAs[string]("plain text")
	if err != nil || str != "plain text" {
		t.Errorf("string parse: got (%q, %v)", str, err)
	}

	num, err := ParseStringAs[int]("42")
	if err != nil || num != 42 {
		t.Errorf("int parse: got (%d, %v)", num, err)
	}

	flag, err := ParseStringAs[bool]("true")
	if err != nil || !flag {
		t.Errorf("bool parse: got (%v, %v)", flag, err)
	}

	ratio, err := ParseStringAs[float64]("0.5")
	if err != nil || ratio != 0.5 {
		t.Errorf("float parse: got (%v, %v)", ratio, err)
	}
}

func TestParseStringAs_ValidJSON(t *testing.T) {
	person, err := ParseStringAs[parsedPerson](`{"name":"John","age":30}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if person.Name != "John" || person.Age != 30 {
		t.Errorf("unexpected result: %+v", person)
	}
}

func TestParseStringAs_RepairedJSON(t *testing.T) {
	// Single quotes and unquoted keys: common model output, invalid JSON.
	person, err := ParseStringAs[parsedPerson](`{name: 'John', age: 30}`)
	if err != nil {
		t.Fatalf("expected repair to recover, got: %v", err)
	}
	if person.Name != "John" || person.Age != 30 {
		t.Errorf("unexpected result: %+v", person)
	}
}

func TestParseStringAs_Unrecoverable(t *testing.T) {
	if _, err := ParseStringAs[int]("not a number"); err == nil {
		t.Error("expected error for unparseable int")
	}
}
