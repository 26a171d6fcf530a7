package interfaces

// ScoreRecorder принимает итог забега. Движок вызывает его ровно один раз.
type ScoreRecorder interface {
	RecordScore(playerName string, score int)
}
