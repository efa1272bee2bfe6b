package bigint

// Cmp compares i to v and returns:
//
//	< 0 if i <  v
//	  0 if i == v
//	> 0 if i >  v
//
// The specific value returned by Cmp is undefined beyond its sign. All
// relational methods are derived from it.
func (i Int) Cmp(v Operand) (int, error) {
	n, err := coerce(v)
	if err != nil {
		return 0, err
	}
	return i.ref().Cmp(n.ref()), nil
}

func (i Int) Equal(v Operand) (bool, error) {
	c, err := i.Cmp(v)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

func (i Int) LessThan(v Operand) (bool, error) {
	c, err := i.Cmp(v)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

func (i Int) LessOrEqualTo(v Operand) (bool, error) {
	c, err := i.Cmp(v)
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

func (i Int) GreaterThan(v Operand) (bool, error) {
	c, err := i.Cmp(v)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

func (i Int) GreaterOrEqualTo(v Operand) (bool, error) {
	c, err := i.Cmp(v)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}

// Between reports whether i lies in the interval [lo, hi]. With
// exclusive set, both endpoints are excluded: (lo, hi).
func (i Int) Between(lo, hi Operand, exclusive bool) (bool, error) {
	cl, err := i.Cmp(lo)
	if err != nil {
		return false, err
	}
	ch, err := i.Cmp(hi)
	if err != nil {
		return false, err
	}
	if exclusive {
		return cl > 0 && ch < 0, nil
	}
	return cl >= 0 && ch <= 0, nil
}
