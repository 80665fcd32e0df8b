package config

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/sirkon/sortful/internal/pattern"
)

// Validate checks options consistency. It must be called before any ordering runs.
func Validate(o Options) error {
	if o.Type == SortTypeCustom && o.Alphabet == "" {
		return InvalidAlphabetError("options")
	}
	if err := validateFallback("fallbackSort", o.FallbackSort, o.Alphabet); err != nil {
		return err
	}

	if o.Locale != "" {
		if _, err := language.Parse(o.Locale); err != nil {
			return wrapError(ErrCodeInvalidOption, err, "locale %q", o.Locale)
		}
	}

	if o.IsPartitionByNewLine() {
		if o.NewlinesBetween.Enforced() {
			return IncompatiblePartitionNewlineError("options")
		}

		for _, item := range o.Groups {
			if item.IsDirective() && item.Newlines.Enforced() {
				return IncompatiblePartitionNewlineError("groups")
			}
		}
	}

	if err := validateGroups(o.Groups); err != nil {
		return err
	}

	for i, cg := range o.CustomGroups {
		where := fmt.Sprintf("customGroups[%d]", i)
		if cg.GroupName == "" {
			return newError(ErrCodeInvalidOption, "%s: groupName must be set", where)
		}

		if cg.Type == SortTypeCustom && cg.Alphabet == "" && o.Alphabet == "" {
			return InvalidAlphabetError(where)
		}
		alphabet := cg.Alphabet
		if alphabet == "" {
			alphabet = o.Alphabet
		}
		if err := validateFallback(where+".fallbackSort", cg.FallbackSort, alphabet); err != nil {
			return err
		}

		if err := validatePredicate(where, cg.Predicate); err != nil {
			return err
		}
		for j, p := range cg.AnyOf {
			if err := validatePredicate(fmt.Sprintf("%s.anyOf[%d]", where, j), p); err != nil {
				return err
			}
		}
	}

	if o.PartitionByComment != nil {
		if _, err := pattern.CompileList(o.PartitionByComment.Block.Patterns); err != nil {
			return wrapError(ErrCodeInvalidPattern, err, "partitionByComment.block")
		}
		if _, err := pattern.CompileList(o.PartitionByComment.Line.Patterns); err != nil {
			return wrapError(ErrCodeInvalidPattern, err, "partitionByComment.line")
		}
	}

	return nil
}

func validateFallback(where string, f *FallbackSort, alphabet string) error {
	for f != nil {
		if f.Type == SortTypeCustom && alphabet == "" {
			return InvalidAlphabetError(where)
		}
		f = f.Fallback
	}

	return nil
}

func validateGroups(groups Groups) error {
	seen := map[string]struct{}{}
	prevDirective := false
	for i, item := range groups {
		if item.IsDirective() {
			if prevDirective {
				return newError(ErrCodeInvalidOption, "groups[%d]: consecutive newline directives", i)
			}
			if i == 0 || i == len(groups)-1 {
				return newError(ErrCodeInvalidOption, "groups[%d]: newline directive must be placed between groups", i)
			}

			prevDirective = true
			continue
		}
		prevDirective = false

		if len(item.Names) == 0 {
			return newError(ErrCodeInvalidOption, "groups[%d]: empty group", i)
		}
		for _, name := range item.Names {
			if _, ok := seen[name]; ok {
				return newError(ErrCodeInvalidOption, "groups[%d]: duplicate group %q", i, name)
			}
			seen[name] = struct{}{}
		}
	}

	return nil
}

func validatePredicate(where string, p Predicate) error {
	lists := []struct {
		name string
		list pattern.List
	}{
		{"elementNamePattern", p.ElementNamePattern},
		{"elementValuePattern", p.ElementValuePattern},
		{"decoratorNamePattern", p.DecoratorNamePattern},
	}
	for _, l := range lists {
		if _, err := pattern.CompileList(l.list); err != nil {
			return wrapError(ErrCodeInvalidPattern, err, "%s.%s", where, l.name)
		}
	}

	return nil
}
