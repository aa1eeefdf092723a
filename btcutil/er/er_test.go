// Copyright (c) 2024 The dimd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package er_test

import (
	"errors"
	"testing"

	"github.com/diminutivecoin/dimd/btcutil/er"
)

var testErr = er.NewErrorType("er_test.Err")

var (
	errFirst  = testErr.Code("ErrFirst")
	errSecond = testErr.Code("ErrSecond")
)

func TestErrorCodeIs(t *testing.T) {
	e := errFirst.New("something broke", nil)
	if !errFirst.Is(e) {
		t.Fatalf("expected %v to carry %v", e, errFirst)
	}
	if errSecond.Is(e) {
		t.Fatalf("%v unexpectedly carries %v", e, errSecond)
	}
	if errFirst.Is(nil) {
		t.Fatalf("nil error must not carry a code")
	}
	if errFirst.Is(er.New("plain")) {
		t.Fatalf("plain error must not carry a code")
	}
}

func TestErrorCodeMessage(t *testing.T) {
	tests := []struct {
		err  er.R
		want string
	}{
		{errFirst.Default(), "ErrFirst"},
		{errFirst.New("info", nil), "ErrFirst: info"},
		{errSecond.New("outer", er.New("inner")), "ErrSecond: outer: inner"},
		{errSecond.New("", er.New("inner")), "ErrSecond: inner"},
	}
	for i, test := range tests {
		if got := test.err.Message(); got != test.want {
			t.Errorf("Message #%d\n got: %s want: %s", i, got, test.want)
		}
	}
}

func TestE(t *testing.T) {
	if er.E(nil) != nil {
		t.Fatalf("er.E(nil) must be nil")
	}
	native := errors.New("native")
	e := er.E(native)
	if er.Wrapped(e) != native {
		t.Fatalf("wrapped error lost")
	}
	if er.Wrapped(nil) != nil {
		t.Fatalf("er.Wrapped(nil) must be nil")
	}
	if e.Native().Error() != "native" {
		t.Fatalf("unexpected native error %q", e.Native().Error())
	}
}

func TestStackCapture(t *testing.T) {
	t.Setenv("ENABLE_STACKTRACE", "")
	if got := er.New("x").Stack(); len(got) != 1 {
		t.Fatalf("expected disabled stack marker, got %v", got)
	}

	t.Setenv("ENABLE_STACKTRACE", "1")
	stack := er.Errorf("with %s", "stack").Stack()
	if len(stack) < 2 {
		t.Fatalf("expected a captured stack, got %v", stack)
	}
}

func TestLoopBreak(t *testing.T) {
	if !er.IsLoopBreak(er.LoopBreak.Default()) {
		t.Fatalf("LoopBreak not recognised")
	}
	if er.IsLoopBreak(errFirst.Default()) {
		t.Fatalf("unrelated code recognised as LoopBreak")
	}
}
