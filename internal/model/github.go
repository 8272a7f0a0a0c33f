// Package model содержит доменные структуры GitHub: пользователей и реакции
package model

// GitHubUser описывает запись пользователя GitHub из внешнего хранилища.
type GitHubUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// Reaction представляет вид emoji-реакции на issue или комментарий.
// Значения совпадают с полем content в API GitHub.
type Reaction string

const (
	// ReactionUpvote — реакция «+1».
	ReactionUpvote Reaction = "+1"
	// ReactionDownvote — реакция «-1».
	ReactionDownvote Reaction = "-1"
	// ReactionLaugh — реакция «смех».
	ReactionLaugh Reaction = "laugh"
	// ReactionHooray — реакция «ура».
	ReactionHooray Reaction = "hooray"
	// ReactionConfused — реакция «недоумение».
	ReactionConfused Reaction = "confused"
	// ReactionHeart — реакция «сердце».
	ReactionHeart Reaction = "heart"
)

// Reactions перечисляет все виды реакций в каноническом порядке.
// Этот порядок определяет порядок выдачи списков запрещённых реакций.
var Reactions = [6]Reaction{
	ReactionUpvote,
	ReactionDownvote,
	ReactionLaugh,
	ReactionHooray,
	ReactionConfused,
	ReactionHeart,
}
