package component

// TTL removes an entity once more than Millis milliseconds have passed since
// SpawnTime. Millis <= 0 lives forever.
type TTL struct {
	SpawnTime int64
	Millis    int64
}

var TTLComponent = NewComponent[TTL]()

// Expired reports whether the lifetime has run out at now.
func (t *TTL) Expired(now int64) bool {
	if t == nil || t.Millis <= 0 {
		return false
	}
	return now-t.SpawnTime > t.Millis
}
