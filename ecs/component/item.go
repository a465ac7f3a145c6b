package component

import "github.com/jakecoffman/cp"

type ItemType string

const (
	ItemHealth ItemType = "health"
	ItemXP     ItemType = "xp"
	ItemCoin   ItemType = "coin"
	ItemKey    ItemType = "key"
)

// Item is a pickup. Origin is the authored center the bob animates around.
type Item struct {
	Type      ItemType
	Origin    cp.Vector
	Step      float64
	Direction float64
}

var ItemComponent = NewComponent[Item]()
