package config

import "strings"

// RouteInfo is the platform/regional routing pair for a player region. It is
// only used for building external URLs and UI display, never for action
// decisions.
type RouteInfo struct {
	Platform string // e.g. "na1"
	Region   string // e.g. "americas"
}

var routes = map[string]RouteInfo{
	"na":   {Platform: "na1", Region: "americas"},
	"br":   {Platform: "br1", Region: "americas"},
	"lan":  {Platform: "la1", Region: "americas"},
	"las":  {Platform: "la2", Region: "americas"},
	"euw":  {Platform: "euw1", Region: "europe"},
	"eune": {Platform: "eun1", Region: "europe"},
	"tr":   {Platform: "tr1", Region: "europe"},
	"ru":   {Platform: "ru", Region: "europe"},
	"me":   {Platform: "me1", Region: "europe"},
	"kr":   {Platform: "kr", Region: "asia"},
	"jp":   {Platform: "jp1", Region: "asia"},
	"oce":  {Platform: "oc1", Region: "sea"},
	"sg":   {Platform: "sg2", Region: "sea"},
	"tw":   {Platform: "tw2", Region: "sea"},
	"vn":   {Platform: "vn2", Region: "sea"},
}

// Routing resolves a short player region ("na", "euw", ...) to its routing
// pair. Platform ids ("na1") are accepted as-is.
func Routing(region string) (RouteInfo, bool) {
	key := strings.ToLower(strings.TrimSpace(region))
	if r, ok := routes[key]; ok {
		return r, true
	}
	for _, r := range routes {
		if r.Platform == key {
			return r, true
		}
	}
	return RouteInfo{}, false
}
