package generation

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// HashInputs returns the SHA-256 hex digest of a canonical JSON encoding
// of inputs. Object keys are sorted recursively, so two maps with the
// same entries hash identically regardless of insertion order. Values
// with no native JSON form are coerced to strings.
func HashInputs(inputs map[string]any) string {
	var b strings.Builder
	writeCanonical(&b, inputs)
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

func writeCanonical(b *strings.Builder, value any) {
	switch v := value.(type) {
	case nil:
		b.WriteString("null")
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJSONScalar(b, k)
			b.WriteByte(':')
			writeCanonical(b, v[k])
		}
		b.WriteByte('}')
	case []any:
		b.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			writeCanonical(b, item)
		}
		b.WriteByte(']')
	case string, bool, float64, float32, int, int32, int64, json.Number:
		writeJSONScalar(b, v)
	default:
		writeJSONScalar(b, fmt.Sprintf("%v", v))
	}
}

func writeJSONScalar(b *strings.Builder, v any) {
	encoded, err := json.Marshal(v)
	if err != nil {
		encoded, _ = json.Marshal(fmt.Sprintf("%v", v))
	}
	b.Write(encoded)
}
