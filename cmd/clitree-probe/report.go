package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/napalu/clitree"
	"golang.org/x/text/language"
)

type report struct {
	OK      bool          `json:"ok"`
	Command string        `json:"command"`
	Flags   []string      `json:"flags,omitempty"`
	Values  []valueReport `json:"values,omitempty"`
	Errors  []errorReport `json:"errors,omitempty"`
}

type valueReport struct {
	ID     clitree.ID `json:"id"`
	Name   string     `json:"name"`
	Values []string   `json:"values"`
}

type errorReport struct {
	Kind    string `json:"kind"`
	Name    string `json:"name,omitempty"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

func newReport(result clitree.Result, lang language.Tag) *report {
	rep := &report{OK: result.OK(), Command: result.Command().Path()}

	switch r := result.(type) {
	case *clitree.Success:
		names := make(map[clitree.ID]string)
		for _, arg := range r.Command().Positional() {
			names[arg.ID()] = arg.Name()
		}
		for _, opt := range r.Command().Options() {
			names[opt.ID()] = opt.FullName()
		}

		for _, opt := range r.Flags() {
			rep.Flags = append(rep.Flags, opt.FullName())
		}
		for _, id := range append(r.PositionalIDs(), r.OptionIDs()...) {
			values, _ := r.Values(id)
			v := valueReport{ID: id, Name: names[id], Values: make([]string, len(values))}
			for i, value := range values {
				v.Values[i] = fmt.Sprint(value)
			}
			rep.Values = append(rep.Values, v)
		}
	case *clitree.Failure:
		for _, e := range r.Errors() {
			rep.Errors = append(rep.Errors, errorReport{
				Kind:    e.Type.String(),
				Name:    e.TokenName,
				Value:   e.TokenValue,
				Message: e.Translate(lang),
			})
		}
	}

	return rep
}

func (r *report) writeText(w io.Writer) {
	fmt.Fprintf(w, "command: %s\n", r.Command)
	for _, flag := range r.Flags {
		fmt.Fprintf(w, "flag: %s\n", flag)
	}
	for _, v := range r.Values {
		fmt.Fprintf(w, "value: %s = %s\n", v.Name, strings.Join(v.Values, ", "))
	}
	for _, e := range r.Errors {
		fmt.Fprintf(w, "error: %s: %s\n", e.Kind, e.Message)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
