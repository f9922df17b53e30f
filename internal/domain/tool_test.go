package domain

import (
	"strings"
	"testing"
)

func TestNewTool(t *testing.T) {
	// Test valid tool creation
	tool, err := NewTool("hammer", "pounds nails")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if tool.ID != 0 {
		t.Errorf("Expected zero ID before persistence, got %d", tool.ID)
	}

	if tool.Name != "hammer" {
		t.Errorf("Expected name hammer, got %s", tool.Name)
	}

	if tool.Description != "pounds nails" {
		t.Errorf("Expected description 'pounds nails', got %s", tool.Description)
	}

	if tool.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if tool.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Test invalid name
	_, err = NewTool("", "no name")
	if err != ErrEmptyToolName {
		t.Errorf("Expected error %v, got %v", ErrEmptyToolName, err)
	}
}

func TestToolValidate(t *testing.T) {
	validTool := Tool{
		Name:        "drill",
		Description: "drills holes",
	}

	// Test valid tool
	if err := validTool.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test empty name
	invalidTool := validTool
	invalidTool.Name = ""
	if err := invalidTool.Validate(); err != ErrEmptyToolName {
		t.Errorf("Expected error %v, got %v", ErrEmptyToolName, err)
	}

	// Test over-long name
	invalidTool = validTool
	invalidTool.Name = strings.Repeat("x", maxToolNameLength+1)
	if err := invalidTool.Validate(); err != ErrToolNameTooLong {
		t.Errorf("Expected error %v, got %v", ErrToolNameTooLong, err)
	}

	// An empty description is allowed
	emptyDesc := validTool
	emptyDesc.Description = ""
	if err := emptyDesc.Validate(); err != nil {
		t.Errorf("Expected no error for empty description, got %v", err)
	}
}
