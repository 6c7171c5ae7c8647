// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bayescnf

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Definition is the declarative form of a network, as produced by the offline
// converter from the BIF format. For example, the collider A, B -> C is:
//
//	{
//	    "network": "toy_network",
//	    "variables": ["A", "B", "C"],
//	    "states": {"A": ["F", "T"], "B": ["F", "T"], "C": ["F", "T"]},
//	    "parents": {"A": [], "B": [], "C": ["A", "B"]},
//	    "cpts": {
//	        "A": [[0.5], [0.5]],
//	        "B": [[0.25], [0.75]],
//	        "C": [[0.9, 0.8, 0.3, 0.4], [0.1, 0.2, 0.7, 0.6]]
//	    }
//	}
//
// Rows of cpts[v] follow states[v]; columns follow the parent assignments of v
// as enumerated by EnumerateAssignments, so that Pr(C=F | A=T, B=F) is 0.3.
type Definition struct {
	Network   string                 `json:"network" yaml:"network"`
	Variables []string               `json:"variables" yaml:"variables" validate:"required,unique,dive,required"`
	States    map[string][]string    `json:"states" yaml:"states" validate:"required,dive,min=2,unique,dive,required"`
	Parents   map[string][]string    `json:"parents" yaml:"parents" validate:"required,dive,unique,dive,required"`
	CPTs      map[string][][]float64 `json:"cpts" yaml:"cpts" validate:"required"`
}

// shape is the validator checking the fields of a Definition.
var shape *validator.Validate

func init() {
	shape = validator.New()
	shape.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// checkshape reports the first field of def violating its validate tag.
func checkshape(def *Definition) error {
	err := shape.Struct(def)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return wrapf(MalformedInput, err, "cannot check document")
	}
	fe := verrs[0]
	field := fe.Namespace()
	if k := strings.IndexByte(field, '.'); k >= 0 {
		field = field[k+1:]
	}
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return errorf(MalformedInput, "", "field %s fails rule %q", field, rule)
}

// FromJSON builds a network from its JSON definition. See Definition for the
// expected format and New for the checks performed on it.
func FromJSON(data []byte, options ...func(*configs)) (*Network, error) {
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, wrapf(MalformedInput, err, "cannot decode JSON")
	}
	return New(def, options...)
}

// FromReader is like FromJSON but reads the definition from r.
func FromReader(r io.Reader, options ...func(*configs)) (*Network, error) {
	var def Definition
	dec := json.NewDecoder(r)
	if err := dec.Decode(&def); err != nil {
		return nil, wrapf(MalformedInput, err, "cannot decode JSON")
	}
	// like FromJSON, reject anything after the document
	var rest json.RawMessage
	if err := dec.Decode(&rest); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, wrapf(MalformedInput, err, "cannot decode JSON")
	}
	return New(def, options...)
}

// FromYAML builds a network from a YAML document with the same fields as the
// JSON definition.
func FromYAML(data []byte, options ...func(*configs)) (*Network, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, wrapf(MalformedInput, err, "cannot decode YAML")
	}
	return New(def, options...)
}
