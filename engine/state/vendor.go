package state

// Vendor sells one kind of cargo.
type Vendor struct {
	Kind  Cargo
	Offer int // units in stock
	Price int // cash per unit
}

// CanBuy reports whether the hero can buy amount units: the stock covers it,
// the hero can pay for it and the truck has room for it.
func (v *Vendor) CanBuy(amount int, hero *Hero, truck *Truck) bool {
	if amount <= 0 || amount > v.Offer {
		return false
	}
	if hero.Cash < amount*v.Price {
		return false
	}
	if truck.Space < amount {
		return false
	}
	return true
}

// Buy makes the purchase if CanBuy allows it. It reports whether it did.
func (v *Vendor) Buy(amount int, hero *Hero, truck *Truck) bool {
	if !v.CanBuy(amount, hero, truck) {
		return false
	}
	v.Offer -= amount
	hero.Cash -= amount * v.Price
	truck.AddCargo(v.Kind, amount)
	return true
}
