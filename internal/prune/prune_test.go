package prune

import (
	"reflect"
	"testing"
)

func TestNulls_DropsNullKeysDeep(t *testing.T) {
	in := map[string]interface{}{
		"kept":    1.0,
		"dropped": nil,
		"nested": map[string]interface{}{
			"inner": nil,
			"ok":    "x",
		},
		"list": []interface{}{
			map[string]interface{}{"a": nil, "b": 2.0},
		},
	}

	want := map[string]interface{}{
		"kept": 1.0,
		"nested": map[string]interface{}{
			"ok": "x",
		},
		"list": []interface{}{
			map[string]interface{}{"b": 2.0},
		},
	}

	if got := Nulls(in); !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestNulls_PreservesFalsyScalars(t *testing.T) {
	in := map[string]interface{}{
		"false": false,
		"zero":  0.0,
		"empty": "",
	}

	got := Nulls(in).(map[string]interface{})
	if len(got) != 3 {
		t.Fatalf("falsy scalars must survive, got %#v", got)
	}
	if got["false"] != false || got["zero"] != 0.0 || got["empty"] != "" {
		t.Errorf("values changed: %#v", got)
	}
}

func TestNulls_KeepsEmptyContainers(t *testing.T) {
	in := map[string]interface{}{
		"arr": []interface{}{},
		"obj": map[string]interface{}{},
	}

	got := Nulls(in).(map[string]interface{})
	if _, ok := got["arr"].([]interface{}); !ok {
		t.Errorf("empty array must survive: %#v", got)
	}
	if _, ok := got["obj"].(map[string]interface{}); !ok {
		t.Errorf("empty object must survive: %#v", got)
	}
}

func TestNulls_NullArrayElementsStay(t *testing.T) {
	in := []interface{}{1.0, nil, "x"}

	got := Nulls(in).([]interface{})
	if len(got) != 3 || got[1] != nil {
		t.Errorf("array positions must not shift: %#v", got)
	}
}

func TestNulls_Idempotent(t *testing.T) {
	in := map[string]interface{}{
		"a": nil,
		"b": map[string]interface{}{"c": nil, "d": 1.0},
		"e": []interface{}{nil, map[string]interface{}{"f": nil}},
	}

	once := Nulls(in)
	twice := Nulls(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("pruning twice diverged: %#v vs %#v", once, twice)
	}
}

func TestDocument_CompactsStructs(t *testing.T) {
	type inner struct {
		Kept    string  `json:"kept"`
		Dropped *string `json:"dropped"`
	}
	type outer struct {
		Inner inner    `json:"inner"`
		List  []*inner `json:"list"`
	}

	doc, err := Document(outer{
		Inner: inner{Kept: "x"},
		List:  []*inner{{Kept: "y"}},
	})
	if err != nil {
		t.Fatalf("Document: %v", err)
	}

	root := doc.(map[string]interface{})
	in := root["inner"].(map[string]interface{})
	if _, present := in["dropped"]; present {
		t.Errorf("nil pointer field must be pruned: %#v", in)
	}
	if in["kept"] != "x" {
		t.Errorf("kept field lost: %#v", in)
	}
}
