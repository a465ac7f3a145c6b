package component

// RenderLayer is paint order only. It never affects collision order.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()

const (
	LayerFirst = iota + 1
	LayerSecond
	LayerThird
	LayerFourth
	LayerFifth
)
