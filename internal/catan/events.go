package catan

import "settlers/internal/engine"

// Events emitted by the Catan engine.
const (
	EventGameStarted     engine.EventType = "game_started"
	EventPhaseChange     engine.EventType = "phase_change"
	EventSettlementBuilt engine.EventType = "settlement_built"
	EventCityBuilt       engine.EventType = "city_built"
	EventRoadBuilt       engine.EventType = "road_built"
	EventStartingGoods   engine.EventType = "starting_goods"
	EventDiceRolled      engine.EventType = "dice_rolled"
	EventDiceSettled     engine.EventType = "dice_settled"
	EventProduced        engine.EventType = "produced"
	EventDiscardRequired engine.EventType = "discard_required"
	EventDiscarded       engine.EventType = "discarded"
	EventRobberMoved     engine.EventType = "robber_moved"
	EventStolen          engine.EventType = "stolen"
	EventDevBought       engine.EventType = "dev_bought"
	EventDevPlayed       engine.EventType = "dev_played"
	EventPlentyPicked    engine.EventType = "plenty_picked"
	EventMonopolized     engine.EventType = "monopolized"
	EventBankTrade       engine.EventType = "bank_trade"
	EventTradeOffered    engine.EventType = "trade_offered"
	EventTradeAccepted   engine.EventType = "trade_accepted"
	EventTradeDeclined   engine.EventType = "trade_declined"
	EventCancelled       engine.EventType = "cancelled"
	EventLargestArmy     engine.EventType = "largest_army"
	EventLongestRoad     engine.EventType = "longest_road"
	EventTurnEnd         engine.EventType = "turn_end"
	EventGameOver        engine.EventType = "game_over"
)
