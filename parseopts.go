package quad

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds the registries consulted while parsing. The zero value
// means "use the defaults"; fill resolves it before parsing starts.
type parsectx struct {
	// funcs maps lowercase names to functions. A nil entry disables a
	// default function, so its name parses as unknown instead.
	funcs map[string]Func
	// consts maps lowercase names to literal values, folded into the
	// program at parse time.
	consts map[string]float64
	// nodefaults indicates that the default registries are not merged in.
	nodefaults bool
}

type (
	funcopt struct {
		name string
		fn   Func
	}
	constopt struct {
		name string
		val  float64
	}
	funcsopt  map[string]Func
	constsopt map[string]float64
	nodefopt  struct{}
)

// ParseFunc sets a function for parsing. To disable parsing a default
// function, pass nil for fn.
func ParseFunc(name string, fn Func) ParseOption {
	return &funcopt{name, fn}
}

func (o *funcopt) parseOption(p parsectx) parsectx {
	if p.funcs == nil {
		p.funcs = map[string]Func{}
	}
	p.funcs[o.name] = o.fn
	return p
}

// ParseFuncs sets a group of functions for parsing. To disable parsing any
// function, set it to nil.
func ParseFuncs(fns map[string]Func) ParseOption {
	return funcsopt(fns)
}

func (o funcsopt) parseOption(p parsectx) parsectx {
	if p.funcs == nil {
		p.funcs = make(map[string]Func, len(o))
	}
	for k, v := range o {
		p.funcs[k] = v
	}
	return p
}

// ParseConst sets a named constant for parsing.
func ParseConst(name string, val float64) ParseOption {
	return &constopt{name, val}
}

func (o *constopt) parseOption(p parsectx) parsectx {
	if p.consts == nil {
		p.consts = map[string]float64{}
	}
	p.consts[o.name] = o.val
	return p
}

// ParseConsts sets a group of named constants for parsing.
func ParseConsts(consts map[string]float64) ParseOption {
	return constsopt(consts)
}

func (o constsopt) parseOption(p parsectx) parsectx {
	if p.consts == nil {
		p.consts = make(map[string]float64, len(o))
	}
	for k, v := range o {
		p.consts[k] = v
	}
	return p
}

// DisableDefaults prevents the default function and constant registries from
// being consulted, so only names set by other options are recognized.
func DisableDefaults() ParseOption {
	return nodefopt{}
}

func (nodefopt) parseOption(p parsectx) parsectx {
	p.nodefaults = true
	return p
}

// fill resolves the context against the default registries. Options never
// mutate the defaults, so sharing the maps here is safe.
func (p *parsectx) fill() {
	if p.nodefaults {
		return
	}
	switch {
	case p.funcs == nil:
		p.funcs = globalfuncs
	default:
		for k, v := range globalfuncs {
			if _, ok := p.funcs[k]; !ok {
				p.funcs[k] = v
			}
		}
	}
	switch {
	case p.consts == nil:
		p.consts = globalconsts
	default:
		for k, v := range globalconsts {
			if _, ok := p.consts[k]; !ok {
				p.consts[k] = v
			}
		}
	}
}

func (p *parsectx) hasConst(name string) bool {
	_, ok := p.consts[name]
	return ok
}
