// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jserd_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/creachadair/jserd"
)

// benchInput synthesizes a moderately nested JSON document.
func benchInput() []byte {
	var sb strings.Builder
	sb.WriteString(`{"records":[`)
	for i := 0; i < 500; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `{"id":%d,"name":"record %d","score":%g,"open":%v,"tags":["a\tb","céd"]}`,
			i, i, float64(i)/3, i%2 == 0)
	}
	sb.WriteString(`],"count":500}`)
	return []byte(sb.String())
}

func BenchmarkScanner(b *testing.B) {
	input := benchInput()
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Scanner", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := jserd.NewScanner(bytes.NewReader(input))
			for {
				err := dec.Next()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}

				// The standard library Decoder converts tokens to values.
				// For a fair comparison, do the same for strings and numbers.
				switch dec.Token() {
				case jserd.String:
					dec.Unescape()
				case jserd.Integer:
					dec.Int64()
				case jserd.Number:
					dec.Float64()
				}
			}
		}
	})
}
