package zeroness

import (
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/bam/internal/core/domain"
	"go.trai.ch/zerr"
)

var errBadStatement = zerr.New("malformed statement")

type opKind int

const (
	opSkip opKind = iota
	opConst
	opCopy
	opHavoc
	opAssume
	opCall
	opReturn
)

// statement is the parsed form of an edge label.
//
//	skip | x = 0 | x = 5 | x = y | x = * | assume x == 0 | assume x != 0 |
//	call <return site> | return <return site>
type statement struct {
	op    opKind
	dst   string
	src   string
	val   Value
	site  domain.Location
	label string
}

func parseStatement(label string) (statement, error) {
	fields := strings.Fields(label)
	st := statement{label: label}
	switch {
	case len(fields) == 0 || (len(fields) == 1 && fields[0] == "skip"):
		st.op = opSkip
	case len(fields) == 2 && (fields[0] == "call" || fields[0] == "return"):
		st.op = opCall
		if fields[0] == "return" {
			st.op = opReturn
		}
		st.site = domain.NewLocation(fields[1])
	case len(fields) == 4 && fields[0] == "assume" && fields[3] == "0" && (fields[2] == "==" || fields[2] == "!="):
		st.op = opAssume
		st.dst = fields[1]
		st.val = Zero
		if fields[2] == "!=" {
			st.val = NonZero
		}
	case len(fields) == 3 && fields[1] == "=":
		st.dst = fields[0]
		rhs := fields[2]
		if rhs == "*" {
			st.op = opHavoc
			break
		}
		if n, err := strconv.ParseInt(rhs, 10, 64); err == nil {
			st.op = opConst
			st.val = NonZero
			if n == 0 {
				st.val = Zero
			}
			break
		}
		if !isIdent(rhs) {
			return st, zerr.With(errBadStatement, "statement", label)
		}
		st.op = opCopy
		st.src = rhs
	default:
		return st, zerr.With(errBadStatement, "statement", label)
	}
	if st.dst != "" && !isIdent(st.dst) {
		return st, zerr.With(errBadStatement, "statement", label)
	}
	return st, nil
}

func isIdent(s string) bool {
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return s != ""
}

// apply returns the successor of s at to, or nil when the statement is
// infeasible in s.
func (st statement) apply(s *State, p *Precision, to domain.Location) *State {
	switch st.op {
	case opConst:
		return s.assign(to, st.dst, st.val, p)
	case opCopy:
		return s.assign(to, st.dst, s.Get(st.src), p)
	case opHavoc:
		return s.assign(to, st.dst, Top, p)
	case opAssume:
		met := Meet(s.Get(st.dst), st.val)
		if met == Bottom {
			return nil
		}
		return s.assign(to, st.dst, met, p)
	case opCall:
		return &State{loc: to, vals: s.vals, stack: append(slices.Clone(s.stack), st.site)}
	case opReturn:
		if len(s.stack) == 0 || s.stack[len(s.stack)-1] != st.site {
			return nil
		}
		return &State{loc: to, vals: s.vals, stack: slices.Clone(s.stack[:len(s.stack)-1])}
	default:
		return &State{loc: to, vals: s.vals, stack: s.stack}
	}
}

// vars returns the variables the statement mentions.
func (st statement) vars() []string {
	var out []string
	if st.dst != "" {
		out = append(out, st.dst)
	}
	if st.src != "" {
		out = append(out, st.src)
	}
	return out
}
