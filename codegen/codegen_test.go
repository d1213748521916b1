// Copyright (c) 2025 pk910
// SPDX-License-Identifier: Apache-2.0
// This file is part of the fuzzdec library.

package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testFields = []Field{
	{Name: "Valid", Kind: KindBool},
	{Name: "Length", Kind: KindInt32},
	{Name: "Tag", Kind: KindChar},
	{Name: "Payload", Kind: KindBytes, Size: 6},
}

func TestGenerate(t *testing.T) {
	generator := NewGenerator(WithPackageName("testdec"))
	src, err := generator.Generate("Record", testFields)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	code := string(src)
	for _, want := range []string{
		"package testdec",
		"type Record struct {",
		"Payload []byte",
		"func DecodeRecordTotal() total.Decoder[Record]",
		"func DecodeRecordPartial() partial.Decoder[Record]",
		"total.Bytes(6)(buf, pos)",
		"partial.Bytes(6)(buf, pos)",
		"decutils.None[Record]()",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated source misses %q:\n%s", want, code)
		}
	}
}

func TestGenerateTotalOnly(t *testing.T) {
	generator := NewGenerator(WithPackageName("testdec"), WithNoPartial())
	src, err := generator.Generate("Record", testFields)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	code := string(src)
	if strings.Contains(code, "DecodeRecordPartial") {
		t.Errorf("partial decoder generated despite WithNoPartial")
	}
	// goimports strips the now unused partial/decutils imports
	if strings.Contains(code, "fuzzdec/partial") || strings.Contains(code, "fuzzdec/decutils") {
		t.Errorf("unused imports kept:\n%s", code)
	}
}

func TestGenerateValidation(t *testing.T) {
	generator := NewGenerator()

	if _, err := generator.Generate("Record", nil); err == nil {
		t.Errorf("expected error for empty field list")
	}
	if _, err := generator.Generate("Record", []Field{{Name: "X", Kind: KindBytes}}); err == nil {
		t.Errorf("expected error for bytes field without size")
	}
	if _, err := generator.Generate("Record", []Field{{Name: "X", Kind: FieldKind(99)}}); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}

func TestBuildFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.go")
	generator := NewGenerator(WithPackageName("testdec"))

	if err := generator.BuildFile(path, "Record", testFields); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	src, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !strings.Contains(string(src), "Code generated by fuzzdec codegen. DO NOT EDIT.") {
		t.Errorf("generated file misses header")
	}
}
