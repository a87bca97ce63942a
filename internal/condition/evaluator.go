package condition

import (
	"fmt"

	ordinatorerrors "github.com/ordinator-tools/ordinator/pkg/errors"
	"github.com/ordinator-tools/ordinator/pkg/pseudosem"
)

// Evaluator evaluates condition strings against a Resolver. It holds no
// mutable state of its own; the ResultCache it is handed per call is
// owned by the game cache (spec.md §9).
type Evaluator struct {
	resolver Resolver
}

// NewEvaluator returns an Evaluator that resolves functions against r.
func NewEvaluator(r Resolver) *Evaluator {
	return &Evaluator{resolver: r}
}

// Eval parses (if necessary) and evaluates condition, consulting and
// populating cache. An empty condition string is not evaluated here —
// callers should treat Conditional.HasCondition()==false as "always true"
// before calling Eval.
func (e *Evaluator) Eval(condition string, cache ResultCache) (bool, error) {
	if cached, ok := cache.Get(condition); ok {
		return cached, nil
	}

	node, err := Parse(condition)
	if err != nil {
		return false, err
	}

	result, err := e.evalNode(node)
	if err != nil {
		return false, err
	}

	cache.Set(condition, result)
	return result, nil
}

func (e *Evaluator) evalNode(n Node) (bool, error) {
	switch v := n.(type) {
	case OrNode:
		left, err := e.evalNode(v.Left)
		if err != nil {
			return false, err
		}
		if left {
			return true, nil
		}
		return e.evalNode(v.Right)

	case AndNode:
		left, err := e.evalNode(v.Left)
		if err != nil {
			return false, err
		}
		if !left {
			return false, nil
		}
		return e.evalNode(v.Right)

	case NotNode:
		operand, err := e.evalNode(v.Operand)
		if err != nil {
			return false, err
		}
		return !operand, nil

	case FileCall:
		ok, err := e.resolver.FileExists(v.Path)
		return ok, fileAccessWrap(err, v.Path)

	case ActiveCall:
		ok, err := e.resolver.IsActive(v.Plugin)
		return ok, fileAccessWrap(err, v.Plugin)

	case ManyCall:
		count, err := e.resolver.CountMatches(v.Regex)
		return count >= 2, fileAccessWrap(err, v.Regex)

	case ManyActiveCall:
		count, err := e.resolver.CountActiveMatches(v.Regex)
		return count >= 2, fileAccessWrap(err, v.Regex)

	case IsMasterCall:
		ok, err := e.resolver.IsMaster(v.Plugin)
		return ok, fileAccessWrap(err, v.Plugin)

	case ChecksumCall:
		crc, err := e.resolver.Checksum(v.Path)
		if err != nil {
			return false, fileAccessWrap(err, v.Path)
		}
		return crc == v.CRC, nil

	case VersionCall:
		raw, err := e.resolver.Version(v.Path)
		if err != nil {
			return false, fileAccessWrap(err, v.Path)
		}
		have := pseudosem.Parse(raw)
		want := pseudosem.Parse(v.Version)
		return pseudosem.CompareOp(have, want, string(v.Comparator)), nil

	default:
		return false, fmt.Errorf("condition: unhandled node type %T", n)
	}
}

func fileAccessWrap(err error, path string) error {
	if err == nil {
		return nil
	}
	return ordinatorerrors.NewFileAccess(path, err.Error(), ordinatorerrors.WithCause(err))
}
