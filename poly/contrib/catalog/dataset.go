// Copyright 2026 go-polybench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"fmt"
	"strings"
)

// Dataset names one of the five PolyBench/C 4.2 problem-size presets.
type Dataset int

const (
	Mini Dataset = iota
	Small
	Medium
	Large
	ExtraLarge
)

var datasetNames = [...]string{"mini", "small", "medium", "large", "extralarge"}

// Datasets returns every preset from smallest to largest.
func Datasets() []Dataset {
	return []Dataset{Mini, Small, Medium, Large, ExtraLarge}
}

func (d Dataset) String() string {
	if d < Mini || d > ExtraLarge {
		return fmt.Sprintf("Dataset(%d)", int(d))
	}
	return datasetNames[d]
}

// ParseDataset accepts a preset name, case-insensitively. "xl" and
// "extra-large" are accepted for ExtraLarge.
func ParseDataset(s string) (Dataset, error) {
	switch name := strings.ToLower(strings.TrimSpace(s)); name {
	case "xl", "extra-large", "extra_large":
		return ExtraLarge, nil
	default:
		for i, n := range datasetNames {
			if n == name {
				return Dataset(i), nil
			}
		}
	}
	return 0, fmt.Errorf("catalog: unknown dataset %q (want one of %s)", s, strings.Join(datasetNames[:], ", "))
}

// Precision selects the element type a kernel runs with.
type Precision int

const (
	F64 Precision = iota
	F32
)

func (p Precision) String() string {
	switch p {
	case F32:
		return "f32"
	case F64:
		return "f64"
	}
	return fmt.Sprintf("Precision(%d)", int(p))
}

// Bits returns the element width in bits.
func (p Precision) Bits() int {
	if p == F32 {
		return 32
	}
	return 64
}

// ParsePrecision accepts "f32", "float32", "f64" or "float64".
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f32", "float32", "single":
		return F32, nil
	case "f64", "float64", "double":
		return F64, nil
	}
	return 0, fmt.Errorf("catalog: unknown precision %q (want f32 or f64)", s)
}
