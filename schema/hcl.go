package schema

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/napalu/clitree"
	"github.com/napalu/clitree/errs"
)

// hclFile represents the top-level structure of a schema file for decoding.
type hclFile struct {
	Commands []*hclCommand `hcl:"command,block"`
}

type hclCommand struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Arguments   []*hclArgument `hcl:"argument,block"`
	Options     []*hclOption   `hcl:"option,block"`
	Commands    []*hclCommand  `hcl:"command,block"`
}

type hclArgument struct {
	Name        string `hcl:"name,label"`
	Type        string `hcl:"type,optional"`
	Description string `hcl:"description,optional"`
	Repeated    bool   `hcl:"repeated,optional"`
}

type hclOption struct {
	Name        string    `hcl:"name,label"`
	Short       string    `hcl:"short,optional"`
	Description string    `hcl:"description,optional"`
	Required    bool      `hcl:"required,optional"`
	Value       *hclValue `hcl:"value,block"`
}

// hclValue is the unlabelled value block of an option.
type hclValue struct {
	Name        string `hcl:"name,optional"`
	Type        string `hcl:"type,optional"`
	Description string `hcl:"description,optional"`
	Repeated    bool   `hcl:"repeated,optional"`
}

// LoadHCL builds the command tree of an HCL schema. filename is only used in
// diagnostics. The document holds exactly one top-level command block:
//
//	command "git" {
//	  option "--verbose" {
//	    short = "v"
//	  }
//	  command "clone" {
//	    argument "url" {}
//	    argument "dir" {
//	      repeated = true
//	    }
//	    option "--depth" {
//	      value {
//	        type = "int"
//	      }
//	    }
//	  }
//	}
func LoadHCL(filename string, src []byte) (*clitree.Command, error) {
	c, err := DecodeHCL(filename, src)
	if err != nil {
		return nil, err
	}

	return Build(c)
}

// DecodeHCL decodes an HCL schema into its model without building it.
func DecodeHCL(filename string, src []byte) (Command, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Command{}, errs.ErrInvalidSchema.WithArgs(filename).Wrap(diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return Command{}, errs.ErrInvalidSchema.WithArgs(filename).Wrap(diags)
	}

	if len(parsed.Commands) != 1 {
		return Command{}, invalid(filename, fmt.Sprintf("expected one command block, found %d", len(parsed.Commands)))
	}

	return fromHCL(parsed.Commands[0]), nil
}

func fromHCL(h *hclCommand) Command {
	c := Command{Name: h.Name, Description: h.Description}

	for _, a := range h.Arguments {
		c.Positional = append(c.Positional, Argument{
			Name:        a.Name,
			Type:        a.Type,
			Description: a.Description,
			Repeated:    a.Repeated,
		})
	}

	for _, o := range h.Options {
		opt := Option{
			Name:        o.Name,
			Short:       o.Short,
			Description: o.Description,
			Required:    o.Required,
		}
		if o.Value != nil {
			opt.Value = &Argument{
				Name:        o.Value.Name,
				Type:        o.Value.Type,
				Description: o.Value.Description,
				Repeated:    o.Value.Repeated,
			}
		}
		c.Options = append(c.Options, opt)
	}

	for _, sub := range h.Commands {
		c.Commands = append(c.Commands, fromHCL(sub))
	}

	return c
}
