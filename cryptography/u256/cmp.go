package u256

// Eq reports x == y by folding the limb differences, without early exit.
func (x U256) Eq(y U256) bool {
	return (x[0]^y[0])|(x[1]^y[1])|(x[2]^y[2])|(x[3]^y[3]) == 0
}

// Lt reports x < y from the borrow of x - y.
func (x U256) Lt(y U256) bool {
	_, borrow := sub(x, y)
	return borrow != 0
}

func (x U256) Gt(y U256) bool { return y.Lt(x) }

func (x U256) Lte(y U256) bool { return !y.Lt(x) }

func (x U256) Gte(y U256) bool { return !x.Lt(y) }

// Cmp compares limbs from the most significant down and returns -1, 0 or +1.
func (x U256) Cmp(y U256) int {
	for i := 3; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}
