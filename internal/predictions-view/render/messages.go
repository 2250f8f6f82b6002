package render

const (
	Title   = "⚽ Previsões de Futebol IA"
	Leagues = "Premier League • La Liga • Serie A • Brasileirão • Liga Argentina"

	LoadingMessage = "Carregando previsões..."

	EmptyGames       = "Nenhum jogo encontrado hoje nas ligas selecionadas"
	EmptyGamesHint   = "Verifique novamente mais tarde"
	EmptyNeural      = "Nenhuma previsão da IA disponível no momento"
	EmptyStats       = "Nenhuma previsão estatística disponível no momento"
	EmptyCombo       = "Nenhuma combinação segura encontrada hoje."
	NeuralHeading    = "🧠 Ensemble de Modelos IA"
	NeuralSubheading = "Combina Análise Estatística + Rede Neural + Random Forest para máxima precisão"
	StatsHeading     = "📊 Análise das Principais Ligas"
	StatsSubheading  = "Previsões baseadas em estatísticas históricas e forma recente dos times"
	GamesHeading     = "🏆 Jogos de Hoje"
	ComboHeading     = "🎯 Melhor Combinação do Dia"
)
