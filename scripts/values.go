package scripts

import (
	"fmt"
	"reflect"

	"github.com/reusee/modelrun/stores"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) (starlark.Value, error) {
	switch v := v.(type) {

	case nil:
		return starlark.None, nil

	case stores.Scalar:
		return starlark.MakeInt(int(v)), nil

	case stores.Series:
		return floatList(v), nil
	case []float64:
		return floatList(v), nil

	case stores.Labels:
		return stringList(v), nil
	case []string:
		return stringList(v), nil

	case bool:
		return starlark.Bool(v), nil
	case string:
		return starlark.String(v), nil
	case int:
		return starlark.MakeInt(v), nil
	case int64:
		return starlark.MakeInt64(v), nil
	case float64:
		return starlark.Float(v), nil

	case starlark.Value:
		return v, nil

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elem, err := toStarlarkValue(e)
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return starlark.NewList(elems), nil

	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			elem, err := toStarlarkValue(val)
			if err != nil {
				return nil, err
			}
			if err := d.SetKey(starlark.String(k), elem); err != nil {
				return nil, err
			}
		}
		return d, nil

	}

	if reflect.ValueOf(v).Kind() == reflect.Func {
		return starlarkutil.MakeFunc("", v), nil
	}

	return nil, fmt.Errorf("unsupported type for starlark: %T", v)
}

func floatList(values []float64) *starlark.List {
	elems := make([]starlark.Value, len(values))
	for i, f := range values {
		elems[i] = starlark.Float(f)
	}
	return starlark.NewList(elems)
}

func stringList(values []string) *starlark.List {
	elems := make([]starlark.Value, len(values))
	for i, s := range values {
		elems[i] = starlark.String(s)
	}
	return starlark.NewList(elems)
}

func fromStarlarkValue(v starlark.Value) any {
	switch v := v.(type) {

	case starlark.NoneType:
		return nil

	case starlark.Bool:
		return bool(v)

	case starlark.Int:
		if i, ok := v.Int64(); ok {
			return i
		}
		return v.BigInt()

	case starlark.Float:
		return float64(v)

	case starlark.String:
		return string(v)

	case starlark.Bytes:
		return []byte(v)

	case *starlark.List:
		ret := make([]any, 0, v.Len())
		for i := range v.Len() {
			ret = append(ret, fromStarlarkValue(v.Index(i)))
		}
		return ret

	case starlark.Tuple:
		ret := make([]any, 0, len(v))
		for _, e := range v {
			ret = append(ret, fromStarlarkValue(e))
		}
		return ret

	case *starlark.Dict:
		ret := make(map[string]any, v.Len())
		for _, item := range v.Items() {
			key := item[0].String()
			if s, ok := item[0].(starlark.String); ok {
				key = string(s)
			}
			ret[key] = fromStarlarkValue(item[1])
		}
		return ret

	}

	return v
}
