package game

import (
	"fmt"

	"github.com/napolitain/gatherers/internal/models"
)

// ActionKind tags the variant of a GameAction
type ActionKind int

const (
	ActionAllocateWorker ActionKind = iota
	ActionDeallocateWorker
	ActionTogglePause
	ActionProduce
	ActionSell
)

func (k ActionKind) String() string {
	switch k {
	case ActionAllocateWorker:
		return "AllocateWorker"
	case ActionDeallocateWorker:
		return "DeallocateWorker"
	case ActionTogglePause:
		return "TogglePause"
	case ActionProduce:
		return "Produce"
	case ActionSell:
		return "Sell"
	default:
		return "Unknown"
	}
}

// GameAction is a player command. Build one with the constructor for its
// variant; only the fields of that variant are meaningful.
type GameAction struct {
	Kind     ActionKind
	Player   PlayerID
	Resource models.Resource
	Item     models.ProductionItem
	SellItem models.SellItem
}

// AllocateWorker moves the player's first idle worker onto r
func AllocateWorker(p PlayerID, r models.Resource) GameAction {
	return GameAction{Kind: ActionAllocateWorker, Player: p, Resource: r}
}

// DeallocateWorker idles the player's first worker gathering r
func DeallocateWorker(p PlayerID, r models.Resource) GameAction {
	return GameAction{Kind: ActionDeallocateWorker, Player: p, Resource: r}
}

// TogglePause flips the pause flag
func TogglePause() GameAction {
	return GameAction{Kind: ActionTogglePause}
}

// Produce pays for item and queues it for the player
func Produce(p PlayerID, item models.ProductionItem) GameAction {
	return GameAction{Kind: ActionProduce, Player: p, Item: item}
}

// Sell trades item on the market for the player
func Sell(p PlayerID, item models.SellItem) GameAction {
	return GameAction{Kind: ActionSell, Player: p, SellItem: item}
}

func (a GameAction) String() string {
	switch a.Kind {
	case ActionAllocateWorker, ActionDeallocateWorker:
		return fmt.Sprintf("%s(%d, %s)", a.Kind, a.Player, a.Resource)
	case ActionTogglePause:
		return a.Kind.String()
	case ActionProduce:
		return fmt.Sprintf("%s(%d, %s)", a.Kind, a.Player, a.Item)
	case ActionSell:
		return fmt.Sprintf("%s(%d, %s)", a.Kind, a.Player, a.SellItem)
	default:
		return fmt.Sprintf("GameAction(%d)", int(a.Kind))
	}
}

// valid reports whether the enum operands of the action are in range
func (a GameAction) valid() bool {
	switch a.Kind {
	case ActionAllocateWorker, ActionDeallocateWorker:
		return a.Resource.Valid()
	case ActionProduce:
		return a.Item.Valid()
	case ActionSell:
		return a.SellItem.Valid()
	case ActionTogglePause:
		return true
	default:
		return false
	}
}
