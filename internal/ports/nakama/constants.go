package nakama

// MatchNameSaboteur is the authoritative match handler name registered with Nakama.
const MatchNameSaboteur = "saboteur_match"
