package component

// Sprite names the frame the renderer should fetch from the asset provider.
type Sprite struct {
	Sheet  string
	Frame  string
	FlipX  bool
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
