package classdispatch

import (
	"errors"
	"strings"
	"testing"
)

type (
	Spam struct{}
	Eggs struct{ Spam }
	Ham  struct{ Spam }

	chainA struct{}
	chainB struct{ chainA }
	chainC struct{ *chainB }

	diamondBase   struct{}
	diamondLeft   struct{ diamondBase }
	diamondRight  struct{ diamondBase }
	diamondBottom struct {
		diamondLeft
		diamondRight
	}
)

type result string

const (
	resultSpam result = "spam"
	resultEggs result = "eggs"
	resultHam  result = "ham"
)

func assertErrorHas(t *testing.T, err, wantSentinel error, kv map[string]string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(err, wantSentinel) {
		t.Fatalf("expected sentinel %v, got %v", wantSentinel, err)
	}
	msg := err.Error()
	for k, v := range kv {
		needle := string(k) + ": " + v
		if !strings.Contains(msg, needle) {
			t.Fatalf("expected %q in error, got %q", needle, msg)
		}
	}
}

func onSpam(Class[Spam]) result { return resultSpam }

func onEggs(Class[Eggs]) result { return resultEggs }

func onHam(Class[Ham]) result { return resultHam }

// onNone is annotated with a class of something that is not a class.
func onNone(Class[func()]) result { return "" }

func newSpamDispatcher(t *testing.T) *Dispatcher[result] {
	t.Helper()
	d, err := New[result](onSpam)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return d
}
