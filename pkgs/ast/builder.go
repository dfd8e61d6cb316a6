package ast

import "github.com/samber/lo"

// Constructor helpers for building AST nodes by hand, for tests and for
// callers assembling fixtures without going through the parser.

// Std builds a standard work: uniform sets sharing one Reps target.
func Std(sets uint32, reps Reps) StandardWork {
	return StandardWork{Sets: sets, Reps: reps}
}

// Varied builds a standard-varied work from an explicit Reps slice.
func Varied(sets uint32, reps ...Reps) StandardVariedWork {
	return StandardVariedWork{Sets: sets, Reps: reps}
}

// Asym builds an asymmetric work from two independent sides.
func Asym(left, right Side) AsymmetricWork {
	return AsymmetricWork{Left: left, Right: right}
}

// Rep builds a plain Reps entry with no modifier.
func Rep(value Number) Reps {
	return Reps{Value: value}
}

// RepWeight builds a Reps entry carrying a weight modifier.
func RepWeight(value, weight Number) Reps {
	return Reps{Value: value, Modifier: WeightModifier, ModValue: weight}
}

// RepRPE builds a Reps entry carrying an RPE modifier.
func RepRPE(value, rpe Number) Reps {
	return Reps{Value: value, Modifier: RPEModifier, ModValue: rpe}
}

// Ex builds a single exercise token.
func Ex(name string, work Work) Single {
	return Single{Name: name, Work: work}
}

// SingleObj wraps a Single as a top-level Object.
func SingleObj(s Single) Object {
	return Object{Kind: ObjectSingle, Single: s}
}

// GroupObj wraps a Group as a top-level Object.
func GroupObj(kind GroupKind, singles ...Single) Object {
	return Object{Kind: ObjectGroup, Group: Group{Kind: kind, Singles: singles}}
}

// CountKind tallies Objects by kind: "single", "super", "circuit".
// Used by the CLI's --summary flag and exercised directly in ast tests.
func CountKind(objs []Object) map[string]int {
	grouped := lo.GroupBy(objs, func(o Object) string {
		switch o.Kind {
		case ObjectGroup:
			return o.Group.Kind.String()
		default:
			return "single"
		}
	})
	return lo.MapValues(grouped, func(v []Object, _ string) int {
		return len(v)
	})
}

// FilterKind returns only the objects of the named kind ("single",
// "super", or "circuit"), preserving input order.
func FilterKind(objs []Object, kind string) []Object {
	return lo.Filter(objs, func(o Object, _ int) bool {
		switch o.Kind {
		case ObjectGroup:
			return o.Group.Kind.String() == kind
		default:
			return kind == "single"
		}
	})
}
