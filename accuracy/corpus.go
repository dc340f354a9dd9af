// Copyright 2026 The Compensated Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package accuracy

import (
	"errors"
	"fmt"
	"io"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Case is a pair of vectors to evaluate
type Case struct {
	Name      string
	X         []float64
	Y         []float64
	Condition float64
}

// Wire format, as protobuf:
//
//	message Corpus { repeated Case cases = 1; }
//	message Case {
//	  string name = 1;
//	  repeated double x = 2 [packed = true];
//	  repeated double y = 3 [packed = true];
//	  double condition = 4;
//	}
const (
	corpusCases   protowire.Number = 1
	caseName      protowire.Number = 1
	caseX         protowire.Number = 2
	caseY         protowire.Number = 3
	caseCondition protowire.Number = 4
)

// ErrCorpus is wrapped by every decoding error returned by Load
var ErrCorpus = errors.New("accuracy: malformed corpus")

func appendDoubles(b []byte, num protowire.Number, values []float64) []byte {
	if len(values) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	b = protowire.AppendVarint(b, uint64(len(values)*8))
	for _, v := range values {
		b = protowire.AppendFixed64(b, math.Float64bits(v))
	}
	return b
}

// Marshal encodes a single case
func (c *Case) Marshal() []byte {
	var b []byte
	if c.Name != "" {
		b = protowire.AppendTag(b, caseName, protowire.BytesType)
		b = protowire.AppendString(b, c.Name)
	}
	b = appendDoubles(b, caseX, c.X)
	b = appendDoubles(b, caseY, c.Y)
	if c.Condition != 0 {
		b = protowire.AppendTag(b, caseCondition, protowire.Fixed64Type)
		b = protowire.AppendFixed64(b, math.Float64bits(c.Condition))
	}
	return b
}

func consumeDoubles(values []float64, typ protowire.Type, b []byte) ([]float64, int, error) {
	switch typ {
	case protowire.Fixed64Type:
		v, n := protowire.ConsumeFixed64(b)
		if n < 0 {
			return nil, 0, protowire.ParseError(n)
		}
		return append(values, math.Float64frombits(v)), n, nil
	case protowire.BytesType:
		packed, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, 0, protowire.ParseError(n)
		}
		if len(packed)%8 != 0 {
			return nil, 0, fmt.Errorf("packed doubles of %d bytes", len(packed))
		}
		for len(packed) > 0 {
			v, m := protowire.ConsumeFixed64(packed)
			values = append(values, math.Float64frombits(v))
			packed = packed[m:]
		}
		return values, n, nil
	}
	return nil, 0, fmt.Errorf("unexpected wire type %d for doubles", typ)
}

// Unmarshal decodes a single case
func (c *Case) Unmarshal(b []byte) error {
	*c = Case{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		var err error
		switch {
		case num == caseName && typ == protowire.BytesType:
			c.Name, n = protowire.ConsumeString(b)
		case num == caseX:
			c.X, n, err = consumeDoubles(c.X, typ, b)
		case num == caseY:
			c.Y, n, err = consumeDoubles(c.Y, typ, b)
		case num == caseCondition && typ == protowire.Fixed64Type:
			var v uint64
			v, n = protowire.ConsumeFixed64(b)
			c.Condition = math.Float64frombits(v)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if err != nil {
			return err
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

// Save writes cases to w
func Save(w io.Writer, cases []Case) error {
	var b []byte
	for i := range cases {
		b = protowire.AppendTag(b, corpusCases, protowire.BytesType)
		b = protowire.AppendBytes(b, cases[i].Marshal())
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("accuracy: save corpus: %w", err)
	}
	return nil
}

// Load reads cases written by Save
func Load(r io.Reader) ([]Case, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("accuracy: load corpus: %w", err)
	}
	var cases []Case
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrCorpus, protowire.ParseError(n))
		}
		b = b[n:]
		if num != corpusCases || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrCorpus, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}
		message, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrCorpus, protowire.ParseError(n))
		}
		b = b[n:]
		var c Case
		if err := c.Unmarshal(message); err != nil {
			return nil, fmt.Errorf("%w: case %d: %v", ErrCorpus, len(cases), err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}
