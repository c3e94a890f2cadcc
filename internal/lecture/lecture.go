// Package lecture holds the narrated demos run by the golectures CLI. Each
// lecture writes its narration to Env.Out and reports failures as errors;
// none of them touch os.Stdout directly.
package lecture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/olehluchkiv/golectures/internal/config"
)

// ErrUnknownLecture is returned by Lookup for a name not in the registry.
var ErrUnknownLecture = errors.New("unknown lecture")

// Env is what every lecture gets to work with.
type Env struct {
	Ctx    context.Context
	Out    io.Writer
	Logger *slog.Logger
	Config config.Config
}

func (e *Env) printf(format string, args ...any) {
	fmt.Fprintf(e.Out, format, args...)
}

func (e *Env) println(args ...any) {
	fmt.Fprintln(e.Out, args...)
}

// Lecture is one named demo.
type Lecture struct {
	Name  string
	Title string
	Run   func(env *Env) error
}

// All returns the lectures in course order.
func All() []Lecture {
	return []Lecture{
		{"algorithms", "Searching and sorting arrays", runAlgorithms},
		{"arrays", "Slices share their backing array", runArrays},
		{"semantics", "Value and reference semantics", runSemantics},
		{"enums", "Enums and switch", runEnums},
		{"encapsulation", "Encapsulation and validated setters", runEncapsulation},
		{"inheritance", "Embedding and shared behavior", runInheritance},
		{"polymorphism", "Dispatch through the Animal interface", runPolymorphism},
		{"interfaces", "Capabilities cut across ancestry", runInterfaces},
		{"generics", "Unbounded and bounded type parameters", runGenerics},
		{"records", "Reading and appending album records", runRecords},
		{"capabilities", "Capability report of the animal package", runCapabilities},
	}
}

// Lookup finds a lecture by name, ignoring case.
func Lookup(name string) (Lecture, error) {
	for _, l := range All() {
		if strings.EqualFold(l.Name, name) {
			return l, nil
		}
	}
	return Lecture{}, fmt.Errorf("%w: %q", ErrUnknownLecture, name)
}

// Run executes the named lectures in order, or every lecture when names is
// empty. It stops at the first failure.
func Run(env *Env, names []string) error {
	lectures := All()
	if len(names) > 0 {
		lectures = lectures[:0]
		for _, n := range names {
			l, err := Lookup(n)
			if err != nil {
				return err
			}
			lectures = append(lectures, l)
		}
	}

	for _, l := range lectures {
		if err := env.Ctx.Err(); err != nil {
			return err
		}
		env.Logger.Info("lecture started", "lecture", l.Name)
		env.printf("\n━━━ %s ━━━\n", l.Title)
		if err := l.Run(env); err != nil {
			env.Logger.Error("lecture failed", "lecture", l.Name, "error", err)
			return fmt.Errorf("lecture %s: %w", l.Name, err)
		}
		env.Logger.Info("lecture finished", "lecture", l.Name)
	}
	return nil
}
