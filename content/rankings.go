package content

import "github.com/zambiatennis/ztaweb/models"

var sampleRankings = []models.RankingEntry{
	{Rank: 1, Player: "Chanda Mwila", Points: 1580},
	{Rank: 2, Player: "Mwila Phiri", Points: 1420},
	{Rank: 3, Player: "Josephine Banda", Points: 1375},
	{Rank: 4, Player: "Richard Njobvu", Points: 1290},
	{Rank: 5, Player: "Grace Tembo", Points: 1205},
}

// Rankings returns a copy of the fixed national ranking table.
func Rankings() []models.RankingEntry {
	out := make([]models.RankingEntry, len(sampleRankings))
	copy(out, sampleRankings)
	return out
}
