package models

// ImpactFactor estimates the environmental benefit of keeping one device of a
// given type out of landfill: CO2-equivalent emissions avoided and raw
// material mass recoverable, both in kilograms. Display figures only.
type ImpactFactor struct {
	CO2Kg       float64 `json:"co2Kg"`
	MaterialsKg float64 `json:"materialsKg"`
}

// impactFactors is the static per-type table. Every catalog entry has a row;
// FactorFor falls back to the Other row for anything else.
var impactFactors = map[DeviceType]ImpactFactor{
	DeviceSmartphone:  {CO2Kg: 80, MaterialsKg: 0.1},
	DeviceLaptop:      {CO2Kg: 300, MaterialsKg: 2.5},
	DeviceDesktop:     {CO2Kg: 600, MaterialsKg: 20},
	DeviceTablet:      {CO2Kg: 100, MaterialsKg: 0.5},
	DeviceMonitor:     {CO2Kg: 250, MaterialsKg: 6},
	DevicePrinter:     {CO2Kg: 150, MaterialsKg: 8},
	DeviceKeyboard:    {CO2Kg: 30, MaterialsKg: 0.8},
	DeviceMouse:       {CO2Kg: 10, MaterialsKg: 0.1},
	DeviceSpeaker:     {CO2Kg: 50, MaterialsKg: 1},
	DeviceHeadphone:   {CO2Kg: 20, MaterialsKg: 0.2},
	DeviceCamera:      {CO2Kg: 70, MaterialsKg: 0.4},
	DeviceGameConsole: {CO2Kg: 150, MaterialsKg: 2},
	DeviceTV:          {CO2Kg: 400, MaterialsKg: 15},
	DeviceOther:       {CO2Kg: 100, MaterialsKg: 2},
}

// FactorFor returns the impact factor for a device type. Unknown types use
// the Other row so a stale or free-form type can never zero out the totals.
func FactorFor(t DeviceType) ImpactFactor {
	if f, ok := impactFactors[t]; ok {
		return f
	}
	return impactFactors[DeviceOther]
}

// Badge tiers, a step function of the recycled+donated device count.
const (
	BadgeNone   = ""
	BadgeBronze = "Bronze"
	BadgeSilver = "Silver"
	BadgeGold   = "Gold"
)

// BadgeFor returns the badge tier for a cumulative recycled+donated count.
func BadgeFor(count int64) string {
	switch {
	case count >= 10:
		return BadgeGold
	case count >= 5:
		return BadgeSilver
	case count >= 1:
		return BadgeBronze
	}
	return BadgeNone
}
