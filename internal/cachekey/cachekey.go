// Package cachekey derives deterministic fingerprints from structured
// payloads. Two call sites share one canonicalization routine: the response
// cache (SHA-256, keyed with a model discriminator) and the submission store
// (xxhash64, no discriminator).
package cachekey

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Derive returns a 64-character hex SHA-256 digest over the canonical form of
// payload plus the model discriminator. Byte-identical output is guaranteed
// for semantically identical payloads regardless of key insertion order.
func Derive(payload interface{}, model string) (string, error) {
	canonical, err := Canonicalize(payload)
	if err != nil {
		return "", err
	}

	h := sha256.New()
	h.Write([]byte(model))
	h.Write([]byte{0})
	h.Write(canonical)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SubmissionHash returns a 16-character hex xxhash64 digest over the
// canonical form of payload. Shorter and faster than Derive; the submission
// store only needs collision resistance across thousands of entries.
func SubmissionHash(payload interface{}) (string, error) {
	canonical, err := Canonicalize(payload)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(canonical)), nil
}

// Canonicalize serializes payload into a canonical JSON byte form: mapping
// keys recursively sorted, compact separators, and numbers rendered in their
// shortest round-trip form so 10 and 10.0 encode identically.
func Canonicalize(payload interface{}) ([]byte, error) {
	// Round-trip through encoding/json so struct payloads and map payloads
	// with equal JSON shapes canonicalize identically.
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}

	var buf bytes.Buffer
	if err := writeCanonical(&buf, value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCanonical(buf *bytes.Buffer, value interface{}) error {
	switch v := value.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if v {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case float64:
		return writeNumber(buf, v)
	case string:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(b)
	case []interface{}:
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			if err := writeCanonical(buf, v[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unsupported value type %T", value)
	}
	return nil
}

// writeNumber renders a JSON number without trailing-zero ambiguity.
// Integral values print as integers; everything else uses the shortest
// representation that round-trips.
func writeNumber(buf *bytes.Buffer, f float64) error {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Errorf("non-finite number %v", f)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		buf.WriteString(strconv.FormatInt(int64(f), 10))
		return nil
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	return nil
}
