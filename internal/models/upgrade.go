package models

// UpgradeType names a purchasable clicker modifier.
type UpgradeType string

const (
	UpgradeAutoClicker UpgradeType = "auto-clicker"
	UpgradeDoubleClick UpgradeType = "double-click"
	UpgradeTripleClick UpgradeType = "triple-click"
	UpgradeTimeWarp    UpgradeType = "time-warp"
)

// UpgradeTypes lists every upgrade in display order.
var UpgradeTypes = []UpgradeType{
	UpgradeAutoClicker,
	UpgradeDoubleClick,
	UpgradeTripleClick,
	UpgradeTimeWarp,
}
