package schema

import (
	"strconv"

	"github.com/napalu/clitree"
	"github.com/napalu/clitree/errs"
	"github.com/tidwall/gjson"
)

// LoadJSON builds the command tree of a JSON schema:
//
//	{
//	  "name": "git",
//	  "options": [{"name": "--verbose", "short": "v"}],
//	  "commands": [{
//	    "name": "clone",
//	    "positional": [{"name": "url"}, {"name": "dir", "repeated": true}],
//	    "options": [{"name": "--depth", "value": {"type": "int"}}]
//	  }]
//	}
func LoadJSON(data []byte) (*clitree.Command, error) {
	c, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}

	return Build(c)
}

// DecodeJSON decodes a JSON schema into its model without building it.
func DecodeJSON(data []byte) (Command, error) {
	if !gjson.ValidBytes(data) {
		return Command{}, errs.ErrInvalidSchema.WithArgs("malformed JSON")
	}

	return decodeJSONCommand(gjson.ParseBytes(data), "$")
}

func decodeJSONCommand(r gjson.Result, path string) (Command, error) {
	if !r.IsObject() {
		return Command{}, invalid(path, "command must be an object")
	}
	name, err := jsonString(r, path, "name", true)
	if err != nil {
		return Command{}, err
	}
	description, err := jsonString(r, path, "description", false)
	if err != nil {
		return Command{}, err
	}
	c := Command{Name: name, Description: description}

	positional, err := jsonArray(r, path, "positional")
	if err != nil {
		return Command{}, err
	}
	for i, item := range positional {
		arg, err := decodeJSONArgument(item, path+".positional."+strconv.Itoa(i))
		if err != nil {
			return Command{}, err
		}
		c.Positional = append(c.Positional, arg)
	}

	options, err := jsonArray(r, path, "options")
	if err != nil {
		return Command{}, err
	}
	for i, item := range options {
		opt, err := decodeJSONOption(item, path+".options."+strconv.Itoa(i))
		if err != nil {
			return Command{}, err
		}
		c.Options = append(c.Options, opt)
	}

	commands, err := jsonArray(r, path, "commands")
	if err != nil {
		return Command{}, err
	}
	for i, item := range commands {
		sub, err := decodeJSONCommand(item, path+".commands."+strconv.Itoa(i))
		if err != nil {
			return Command{}, err
		}
		c.Commands = append(c.Commands, sub)
	}

	return c, nil
}

func decodeJSONArgument(r gjson.Result, path string) (Argument, error) {
	if !r.IsObject() {
		return Argument{}, invalid(path, "argument must be an object")
	}

	var a Argument
	var err error
	if a.Name, err = jsonString(r, path, "name", false); err != nil {
		return Argument{}, err
	}
	if a.Type, err = jsonString(r, path, "type", false); err != nil {
		return Argument{}, err
	}
	if a.Description, err = jsonString(r, path, "description", false); err != nil {
		return Argument{}, err
	}
	if a.Repeated, err = jsonBool(r, path, "repeated"); err != nil {
		return Argument{}, err
	}

	return a, nil
}

func decodeJSONOption(r gjson.Result, path string) (Option, error) {
	if !r.IsObject() {
		return Option{}, invalid(path, "option must be an object")
	}

	var o Option
	var err error
	if o.Name, err = jsonString(r, path, "name", true); err != nil {
		return Option{}, err
	}
	if o.Short, err = jsonString(r, path, "short", false); err != nil {
		return Option{}, err
	}
	if o.Description, err = jsonString(r, path, "description", false); err != nil {
		return Option{}, err
	}
	if o.Required, err = jsonBool(r, path, "required"); err != nil {
		return Option{}, err
	}

	if value := r.Get("value"); value.Exists() {
		arg, err := decodeJSONArgument(value, path+".value")
		if err != nil {
			return Option{}, err
		}
		o.Value = &arg
	}

	return o, nil
}

func jsonString(r gjson.Result, path, key string, required bool) (string, error) {
	v := r.Get(key)
	if !v.Exists() {
		if required {
			return "", invalid(path, key+" is required")
		}
		return "", nil
	}
	if v.Type != gjson.String {
		return "", invalid(path, key+" must be a string")
	}

	return v.String(), nil
}

func jsonBool(r gjson.Result, path, key string) (bool, error) {
	v := r.Get(key)
	if !v.Exists() {
		return false, nil
	}
	if v.Type != gjson.True && v.Type != gjson.False {
		return false, invalid(path, key+" must be a boolean")
	}

	return v.Bool(), nil
}

func jsonArray(r gjson.Result, path, key string) ([]gjson.Result, error) {
	v := r.Get(key)
	if !v.Exists() {
		return nil, nil
	}
	if !v.IsArray() {
		return nil, invalid(path, key+" must be an array")
	}

	return v.Array(), nil
}
