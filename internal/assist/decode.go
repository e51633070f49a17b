package assist

import (
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/huangsam/scorecard/schema"
)

// MaxDepth bounds container nesting when decoding records.
const MaxDepth = 512

// ErrTooDeep is returned for documents nested deeper than MaxDepth.
var ErrTooDeep = errors.New("record nesting exceeds maximum depth")

// DecodeRecord decodes one JSON document into a Record, keeping object fields
// in document order. A repeated key keeps its first position and its last value.
func DecodeRecord(data []byte) (schema.Record, error) {
	value, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return schema.Record{}, fmt.Errorf("invalid JSON: %w", err)
	}
	return decodeValue(value, typ, 0)
}

// DecodeExperiments decodes an assist "get" response:
//
//	{"cargo": [{"_id": ..., "_source": {"spec": {...}, "results": {...}}}]}
//
// Missing spec or results decode as empty objects.
func DecodeExperiments(data []byte) ([]schema.Experiment, error) {
	_, typ, _, err := jsonparser.Get(data, "cargo")
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil, errors.New("response has no cargo")
	}
	if err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}
	if typ != jsonparser.Array {
		return nil, fmt.Errorf("cargo must be an array, got %s", typ)
	}

	exps := []schema.Experiment{}
	var decodeErr error
	_, err = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if decodeErr != nil {
			return
		}
		if err != nil {
			decodeErr = err
			return
		}
		exp, err := decodeExperiment(value, dataType)
		if err != nil {
			decodeErr = fmt.Errorf("cargo[%d]: %w", len(exps), err)
			return
		}
		exps = append(exps, exp)
	}, "cargo")
	if err != nil {
		return nil, fmt.Errorf("invalid cargo: %w", err)
	}
	if decodeErr != nil {
		return nil, decodeErr
	}
	return exps, nil
}

func decodeExperiment(data []byte, typ jsonparser.ValueType) (schema.Experiment, error) {
	if typ != jsonparser.Object {
		return schema.Experiment{}, fmt.Errorf("experiment must be an object, got %s", typ)
	}

	var exp schema.Experiment
	idValue, idType, _, err := jsonparser.Get(data, "_id")
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError):
	case err != nil:
		return exp, err
	case idType == jsonparser.String:
		if exp.ID, err = jsonparser.ParseString(idValue); err != nil {
			return exp, fmt.Errorf("_id: %w", err)
		}
	default:
		exp.ID = string(idValue)
	}

	if exp.Spec, err = decodeOptional(data, "_source", "spec"); err != nil {
		return exp, fmt.Errorf("spec: %w", err)
	}
	if exp.Results, err = decodeOptional(data, "_source", "results"); err != nil {
		return exp, fmt.Errorf("results: %w", err)
	}
	return exp, nil
}

func decodeOptional(data []byte, keys ...string) (schema.Record, error) {
	value, typ, _, err := jsonparser.Get(data, keys...)
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return schema.NewObject(), nil
	}
	if err != nil {
		return schema.Record{}, err
	}
	return decodeValue(value, typ, 0)
}

func decodeValue(data []byte, typ jsonparser.ValueType, depth int) (schema.Record, error) {
	switch typ {
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return schema.Record{}, err
		}
		return schema.NewScalar(s), nil
	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(data)
		if err != nil {
			return schema.Record{}, err
		}
		return schema.NewScalar(f), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return schema.Record{}, err
		}
		return schema.NewScalar(b), nil
	case jsonparser.Null:
		return schema.NewScalar(nil), nil
	case jsonparser.Object:
		if depth >= MaxDepth {
			return schema.Record{}, ErrTooDeep
		}
		return decodeObject(data, depth+1)
	case jsonparser.Array:
		if depth >= MaxDepth {
			return schema.Record{}, ErrTooDeep
		}
		return decodeArray(data, depth+1)
	default:
		return schema.Record{}, fmt.Errorf("unexpected JSON value %q", data)
	}
}

func decodeObject(data []byte, depth int) (schema.Record, error) {
	var fields []schema.Field
	index := make(map[string]int)
	err := jsonparser.ObjectEach(data, func(key []byte, value []byte, dataType jsonparser.ValueType, _ int) error {
		k, err := jsonparser.ParseString(key)
		if err != nil {
			return err
		}
		child, err := decodeValue(value, dataType, depth)
		if err != nil {
			return err
		}
		if i, ok := index[k]; ok {
			fields[i].Value = child
			return nil
		}
		index[k] = len(fields)
		fields = append(fields, schema.Field{Key: k, Value: child})
		return nil
	})
	if err != nil {
		return schema.Record{}, err
	}
	return schema.NewObject(fields...), nil
}

func decodeArray(data []byte, depth int) (schema.Record, error) {
	var elems []schema.Record
	var decodeErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if decodeErr != nil {
			return
		}
		if err != nil {
			decodeErr = err
			return
		}
		child, err := decodeValue(value, dataType, depth)
		if err != nil {
			decodeErr = err
			return
		}
		elems = append(elems, child)
	})
	if err != nil {
		return schema.Record{}, err
	}
	if decodeErr != nil {
		return schema.Record{}, decodeErr
	}
	return schema.NewArray(elems...), nil
}
