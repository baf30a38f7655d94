package format

import "testing"

func TestToUpperCase(t *testing.T) {
	if got := ToUpperCase("GoEs to UppEr Case"); got != "GOES TO UPPER CASE" {
		t.Errorf("ToUpperCase = %q, want %q", got, "GOES TO UPPER CASE")
	}
}

func TestToLowerCase(t *testing.T) {
	if got := ToLowerCase("GoEs to LoWER Case"); got != "goes to lower case" {
		t.Errorf("ToLowerCase = %q, want %q", got, "goes to lower case")
	}
}

func TestCaselessInputUnchanged(t *testing.T) {
	inputs := []string{"", "1234567890", "!@#$%^&*()", "...---...", "42 + 1 = 43"}

	for _, in := range inputs {
		if got := ToUpperCase(in); got != in {
			t.Errorf("ToUpperCase(%q) = %q, want input unchanged", in, got)
		}
		if got := ToLowerCase(in); got != in {
			t.Errorf("ToLowerCase(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestIdempotentOnReapplication(t *testing.T) {
	inputs := []string{"Hello World", "mIxEd CaSe", "already lower", "ALREADY UPPER"}

	for _, in := range inputs {
		upper := ToUpperCase(in)
		if got := ToUpperCase(upper); got != upper {
			t.Errorf("ToUpperCase(ToUpperCase(%q)) = %q, want %q", in, got, upper)
		}
		lower := ToLowerCase(in)
		if got := ToLowerCase(lower); got != lower {
			t.Errorf("ToLowerCase(ToLowerCase(%q)) = %q, want %q", in, got, lower)
		}
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	// For pure ASCII input, lowering first must not change the
	// upper-case result
	in := "The Quick Brown Fox 123"
	if got, want := ToUpperCase(ToLowerCase(in)), ToUpperCase(in); got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}

func TestNonASCII(t *testing.T) {
	if got := ToUpperCase("über straße"); got != "ÜBER STRAßE" {
		t.Errorf("ToUpperCase = %q, want %q", got, "ÜBER STRAßE")
	}
	if got := ToLowerCase("ÜBER"); got != "über" {
		t.Errorf("ToLowerCase = %q, want %q", got, "über")
	}
}
