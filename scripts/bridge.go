// Package scripts exposes a store to an embedded interpreter and imports
// the results back.
//
// Every store entry is visible to a script under its own name. After the
// script completes, a variable flows back into the store only if its name
// is longer than one character and its value is a float series: a non-empty
// list or tuple of numbers that either already names a series in the store
// or holds at least one float. Ints in a float series are converted, so
// GDP[0] = 5 is kept. Scalars, labels, strings, int-only lists such as
// [1, 2] under a new name, and short names such as loop counters never flow
// back, even when the script changed them.
//
// Scripts run to completion on the calling goroutine. There is no timeout:
// a script that does not terminate blocks its caller.
package scripts

import (
	"unicode/utf8"

	"github.com/reusee/modelrun/stores"
)

// Execute seeds engine with every store entry, evaluates source, and
// imports qualifying variables into store. On error the store is unchanged.
// Execute returns the imported names in import order, and the store series
// the script replaced with something that is not a float series.
func Execute(engine Engine, filename string, source string, store *stores.Store) (imported []string, dropped []string, err error) {
	for name, value := range store.All() {
		if err := engine.SetVariable(name, value); err != nil {
			return nil, nil, &ScriptError{
				Script: filename,
				Err:    err,
			}
		}
	}

	if err := engine.Evaluate(filename, source); err != nil {
		return nil, nil, &ScriptError{
			Script: filename,
			Err:    err,
		}
	}

	imported, dropped = Reimport(engine, store)
	return imported, dropped, nil
}

// Reimport copies every qualifying engine variable into store. dropped
// lists store series whose engine value no longer qualifies; the store
// keeps their previous values.
func Reimport(engine Engine, store *stores.Store) (imported []string, dropped []string) {
	updates := make(map[string]stores.Series)
	for _, name := range engine.Names() {
		if !importableName(name) {
			continue
		}
		value, ok := engine.GetVariable(name)
		if !ok {
			continue
		}
		_, existing := store.Series(name)
		series, ok := asSeries(value, existing)
		if !ok {
			if existing {
				dropped = append(dropped, name)
			}
			continue
		}
		updates[name] = series
		imported = append(imported, name)
	}

	for _, name := range imported {
		store.Set(name, updates[name])
	}
	return imported, dropped
}

func importableName(name string) bool {
	return utf8.RuneCountInString(name) > 1
}

// asSeries converts a list of numbers. An int-only list is a series only
// when it replaces an existing one.
func asSeries(value any, existing bool) (stores.Series, bool) {
	elems, ok := value.([]any)
	if !ok || len(elems) == 0 {
		return nil, false
	}
	ret := make(stores.Series, 0, len(elems))
	hasFloat := false
	for _, elem := range elems {
		switch v := elem.(type) {
		case float64:
			hasFloat = true
			ret = append(ret, v)
		case int64:
			ret = append(ret, float64(v))
		default:
			return nil, false
		}
	}
	if !hasFloat && !existing {
		return nil, false
	}
	return ret, true
}
