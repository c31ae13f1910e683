package extraction

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/garagemleilao/caixa/internal/transaction"
)

var (
	ErrInvalidJSON       = errors.New("model output is not valid JSON")
	ErrUnrecognizedShape = errors.New("unrecognized model output shape")
	ErrIncompleteRecord  = errors.New("incomplete record")
)

// Shape is how the model laid out its answer.
type Shape int

const (
	ShapeArray   Shape = iota + 1 // [ {...}, ... ]
	ShapeWrapped                  // {"transacoes": [...]} or {"transactions": [...]}
	ShapeSingle                   // {...}
)

func (s Shape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeWrapped:
		return "wrapped"
	case ShapeSingle:
		return "single"
	}

	return "unknown"
}

// wrapperKeys are checked in order.
var wrapperKeys = []string{"transacoes", "transactions"}

var requiredFields = []string{"carro", "valor", "tipo", "categoria", "descricao", "status_carro"}

// Normalize turns raw model output into a list of records. Every element must
// carry all model-supplied fields; a single bad element fails the whole batch.
func Normalize(raw string) ([]transaction.Record, Shape, error) {
	data := []byte(stripCodeFence(raw))
	if !json.Valid(data) {
		return nil, 0, ErrInvalidJSON
	}

	elems, shape, err := classify(data)
	if err != nil {
		return nil, 0, err
	}

	records := make([]transaction.Record, 0, len(elems))

	for i, elem := range elems {
		rec, err := decodeRecord(elem)
		if err != nil {
			return nil, shape, fmt.Errorf("record %d: %w", i+1, err)
		}

		records = append(records, rec)
	}

	return records, shape, nil
}

func classify(data []byte) ([]json.RawMessage, Shape, error) {
	switch data[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(data, &elems); err != nil {
			return nil, 0, fmt.Errorf("decoding array: %w", err)
		}

		return elems, ShapeArray, nil
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil, 0, fmt.Errorf("decoding object: %w", err)
		}

		for _, key := range wrapperKeys {
			inner, ok := obj[key]
			if !ok || isNull(inner) {
				continue
			}

			var elems []json.RawMessage
			if err := json.Unmarshal(inner, &elems); err != nil {
				return nil, 0, fmt.Errorf("%w: %q is not a list", ErrUnrecognizedShape, key)
			}

			return elems, ShapeWrapped, nil
		}

		return []json.RawMessage{data}, ShapeSingle, nil
	}

	return nil, 0, fmt.Errorf("%w: top-level value is neither a list nor an object", ErrUnrecognizedShape)
}

// decodeRecord takes enum fields as sent; the table rejects values outside the closed sets.
func decodeRecord(elem json.RawMessage) (transaction.Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(elem, &fields); err != nil {
		return transaction.Record{}, fmt.Errorf("%w: not an object", ErrIncompleteRecord)
	}

	var missing []string

	for _, name := range requiredFields {
		if v, ok := fields[name]; !ok || isNull(v) {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return transaction.Record{}, fmt.Errorf("%w: missing %s", ErrIncompleteRecord, strings.Join(missing, ", "))
	}

	var rec transaction.Record
	if err := json.Unmarshal(elem, &rec); err != nil {
		return transaction.Record{}, fmt.Errorf("decoding record: %w", err)
	}

	// autor is attached by the webhook, never taken from the model.
	rec.Author = ""

	return rec, nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// stripCodeFence removes a ```json ... ``` wrapper some models add despite
// instructions, on separate lines or inline.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimLeft(s, "`")
	if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
		s = s[4:]
	}

	if end := strings.LastIndex(s, "```"); end != -1 {
		s = s[:end]
	}

	return strings.TrimSpace(s)
}
