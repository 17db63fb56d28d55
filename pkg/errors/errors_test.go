package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeBarcodeEncoding, "EAN code can only contain %s.", "numbers")

	if err.Code != ErrCodeBarcodeEncoding {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeBarcodeEncoding)
	}

	if err.Message != "EAN code can only contain numbers." {
		t.Errorf("Message = %v, want %v", err.Message, "EAN code can only contain numbers.")
	}

	if err.Error() != err.Message {
		t.Errorf("Error() = %v, want %v", err.Error(), err.Message)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeUnreadableImage, cause, "cannot identify image file README.md")

	if err.Code != ErrCodeUnreadableImage {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnreadableImage)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	want := "cannot identify image file README.md: underlying error"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeLengthOverflow, "label too long")

	if !Is(err, ErrCodeLengthOverflow) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeNoContent) {
		t.Error("Is should not match a different code")
	}
	if Is(errors.New("plain"), ErrCodeLengthOverflow) {
		t.Error("Is should not match a plain error")
	}
	if Is(nil, ErrCodeLengthOverflow) {
		t.Error("Is should not match nil")
	}
}

func TestIsWrappedChain(t *testing.T) {
	inner := New(ErrCodeCapacityExceeded, "too much information to store in the QR code")
	outer := Wrap(ErrCodeInternal, inner, "render failed")

	// As finds the outermost *Error first.
	if GetCode(outer) != ErrCodeInternal {
		t.Errorf("GetCode = %v, want %v", GetCode(outer), ErrCodeInternal)
	}

	var e *Error
	if !errors.As(outer, &e) {
		t.Fatal("errors.As should find *Error")
	}
}

func TestUserMessage(t *testing.T) {
	cause := errors.New("ugly internals")
	err := Wrap(ErrCodePictureMissing, cause, "picture path does not exist: foo.png")

	if got := UserMessage(err); got != "picture path does not exist: foo.png" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := errors.New("plain message")
	if got := UserMessage(plain); got != "plain message" {
		t.Errorf("UserMessage = %q", got)
	}
}

func TestGetCodePlainError(t *testing.T) {
	if code := GetCode(errors.New("x")); code != "" {
		t.Errorf("GetCode = %q, want empty", code)
	}
}
