package topics

const (
	// Snapshots de previsões carregados pela view
	PredictionsSnapshots = "predictions_snapshots"

	// Canal Redis Pub/Sub para avisar que um novo snapshot está disponível
	PredictionsBroadcast = "predictions_snapshots_broadcast"
)
