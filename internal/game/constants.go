package game

// handSizeByPlayers maps player count to dealt hand size (spec §4.6).
var handSizeByPlayers = map[int]int{
	3: 6, 4: 6, 5: 6, 6: 5, 7: 5, 8: 4, 9: 4, 10: 4,
}

// badDwarfCountByPlayers maps player count to the number of bad-role
// seats. Every other seat gets the good role.
var badDwarfCountByPlayers = map[int]int{
	3: 1, 4: 1, 5: 2, 6: 2, 7: 3, 8: 3, 9: 3, 10: 4,
}

// badTeamBasePoint maps winner_list size (1..4) to the bad dwarves' base point.
var badTeamBasePoint = map[int]int{
	1: 4, 2: 3, 3: 3, 4: 2,
}

// MinPlayers and MaxPlayers bound num_player per spec §3.
const (
	MinPlayers = 3
	MaxPlayers = 10
)

// TotalRounds is the fixed number of rounds per match.
const TotalRounds = 3
