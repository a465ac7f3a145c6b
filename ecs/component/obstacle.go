package component

type ObstacleType string

const (
	ObstacleGround        ObstacleType = "ground"
	ObstacleSawLimitUp    ObstacleType = "saw_limit_up"
	ObstacleSawLimitDown  ObstacleType = "saw_limit_down"
	ObstacleSawLimitLeft  ObstacleType = "saw_limit_left"
	ObstacleSawLimitRight ObstacleType = "saw_limit_right"
)

// Obstacle is static level geometry. Only ground blocks movers and bullets.
type Obstacle struct {
	Type ObstacleType
}

var ObstacleComponent = NewComponent[Obstacle]()
