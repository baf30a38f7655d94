// Package greet holds the hello-world utilities: a greeting builder
// and a local-time printer in asctime layout.
package greet

import (
	"fmt"
	"io"
	"time"
)

// DefaultWho is the greeting target used when none is given
const DefaultWho = "world"

// Greeting returns the greeting line for who, falling back to
// DefaultWho when who is empty
func Greeting(who string) string {
	if who == "" {
		who = DefaultWho
	}
	return "Hello " + who
}

// LocalTime writes the current local time to w, one line in asctime
// layout ("Mon Jan _2 15:04:05 2006")
func LocalTime(w io.Writer) error {
	return writeLocalTime(w, time.Now())
}

func writeLocalTime(w io.Writer, t time.Time) error {
	_, err := fmt.Fprintln(w, t.Format(time.ANSIC))
	return err
}
