// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tailscale/hujson"
)

// Load reads an instruction set definition file.
func Load(path string) (*InstructionSet, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	set, err := Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse parses a definition from source bytes. The format is JSON with
// comments and trailing commas. Definition order of instructions and
// arguments is preserved, which is why this does not unmarshal into maps.
func Parse(src []byte) (*InstructionSet, error) {
	std, err := hujson.Standardize(src)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.UseNumber()

	root, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	top, ok := root.(object)
	if !ok {
		return nil, fmt.Errorf("definition must be an object")
	}

	set := &InstructionSet{
		Substitutions: make(map[string][]string),
		byMnemonic:    make(map[string]*Instruction),
	}
	for _, m := range top {
		switch m.key {
		case "instructions":
			insts, ok := m.val.(object)
			if !ok {
				return nil, fmt.Errorf("instructions: expected an object")
			}
			for _, im := range insts {
				inst, err := parseInstruction(im.key, im.val)
				if err != nil {
					return nil, err
				}
				if set.byMnemonic[inst.Mnemonic] != nil {
					return nil, fmt.Errorf("instruction %s defined twice", inst.Mnemonic)
				}
				set.Instructions = append(set.Instructions, inst)
				set.byMnemonic[inst.Mnemonic] = inst
			}
		case "invalid_instruction_microcode":
			mc, err := parseMicrocode(m.val)
			if err != nil {
				return nil, fmt.Errorf("invalid_instruction_microcode: %w", err)
			}
			set.InvalidMicrocode = mc
		case "substitutions":
			subs, ok := m.val.(object)
			if !ok {
				return nil, fmt.Errorf("substitutions: expected an object")
			}
			for _, sm := range subs {
				tokens, err := parseStringList(sm.val)
				if err != nil {
					return nil, fmt.Errorf("substitution %s: %w", sm.key, err)
				}
				set.Substitutions[sm.key] = tokens
			}
		default:
			return nil, fmt.Errorf("unknown definition key %q", m.key)
		}
	}
	return set, nil
}

func parseInstruction(mnemonic string, v any) (*Instruction, error) {
	obj, ok := v.(object)
	if !ok {
		return nil, fmt.Errorf("instruction %s: expected an object", mnemonic)
	}
	inst := &Instruction{Mnemonic: mnemonic}
	for _, m := range obj {
		switch m.key {
		case "title":
			s, ok := m.val.(string)
			if !ok {
				return nil, fmt.Errorf("instruction %s: title must be a string", mnemonic)
			}
			inst.Title = s
		case "args":
			args, ok := m.val.(object)
			if !ok {
				return nil, fmt.Errorf("instruction %s: args must be an object", mnemonic)
			}
			for _, am := range args {
				ts, ok := am.val.(string)
				if !ok {
					return nil, fmt.Errorf("instruction %s: argument %s type must be a string", mnemonic, am.key)
				}
				t, err := ParseArgType(ts)
				if err != nil {
					return nil, err
				}
				inst.Args = append(inst.Args, Arg{Name: am.key, Type: t})
			}
		case "encoding":
			pieces, err := parseStringList(m.val)
			if err != nil {
				return nil, fmt.Errorf("instruction %s: encoding: %w", mnemonic, err)
			}
			for _, p := range pieces {
				inst.EncodingPieces = append(inst.EncodingPieces, ClassifyEncodingPiece(p))
			}
		case "pseudocode":
			lines, err := parseOneOrMany(m.val)
			if err != nil {
				return nil, fmt.Errorf("instruction %s: pseudocode: %w", mnemonic, err)
			}
			inst.Pseudocode = lines
		case "note":
			lines, err := parseOneOrMany(m.val)
			if err != nil {
				return nil, fmt.Errorf("instruction %s: note: %w", mnemonic, err)
			}
			inst.Note = lines
		case "microcode":
			mc, err := parseMicrocode(m.val)
			if err != nil {
				return nil, fmt.Errorf("instruction %s: microcode: %w", mnemonic, err)
			}
			inst.Microcode = mc
		default:
			return nil, fmt.Errorf("instruction %s: unknown key %q", mnemonic, m.key)
		}
	}

	// Validate the encoding eagerly so definition errors surface with the
	// instruction they belong to.
	if _, err := inst.Encoding(); err != nil {
		return nil, err
	}
	return inst, nil
}

func parseMicrocode(v any) ([][]string, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list of steps")
	}
	steps := make([][]string, 0, len(list))
	for _, sv := range list {
		step, err := parseStringList(sv)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func parseStringList(v any) ([]string, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list of strings")
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("expected a list of strings")
		}
		out = append(out, s)
	}
	return out, nil
}

func parseOneOrMany(v any) ([]string, error) {
	if s, ok := v.(string); ok {
		return []string{s}, nil
	}
	return parseStringList(v)
}

// member and object keep JSON object key order, which encoding/json's map
// decoding would lose.
type member struct {
	key string
	val any
}

type object []member

// decodeValue reads one JSON value from the token stream. Objects decode to
// object, arrays to []any, everything else to the usual scalar types.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFrom(dec, tok)
}

func decodeFrom(dec *json.Decoder, tok json.Token) (any, error) {
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		var obj object
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is not a string")
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj = append(obj, member{key: key, val: val})
		}
		if _, err := dec.Token(); err != nil { // closing brace
			return nil, err
		}
		return obj, nil
	case '[':
		var arr []any
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil { // closing bracket
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}
