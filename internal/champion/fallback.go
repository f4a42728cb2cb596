package champion

// aliases maps normalized spellings players actually type to the normalized
// canonical name. The slug form ("monkeyking") is indexed separately by
// buildTable.
var aliases = map[string]string{
	"wukong":     "wukong", // display name; slug is MonkeyKing
	"monkeyking": "wukong",
	"mundo":      "drmundo",
	"nunu":       "nunuwillump",
	"renata":     "renataglasc",
	"powder":     "jinx",
	"asol":       "aurelionsol",
	"mf":         "missfortune",
	"tf":         "twistedfate",
	"j4":         "jarvaniv",
	"kog":        "kogmaw",
	"cho":        "chogath",
	"vel":        "velkoz",
	"kha":        "khazix",
	"tk":         "tahmkench",
	"yi":         "masteryi",
	"ww":         "warwick",
	"blitz":      "blitzcrank",
	"cass":       "cassiopeia",
	"kat":        "katarina",
	"lb":         "leblanc",
	"morde":      "mordekaiser",
	"naut":       "nautilus",
	"ori":        "orianna",
	"sej":        "sejuani",
	"vlad":       "vladimir",
	"xin":        "xinzhao",
}

// fallbackRecords keeps name resolution partially functional when both Data
// Dragon and the disk cache are unreachable. Not exhaustive; ids are stable.
var fallbackRecords = []Record{
	{ID: 1, Name: "Annie", Slug: "Annie"},
	{ID: 11, Name: "Master Yi", Slug: "MasterYi"},
	{ID: 22, Name: "Ashe", Slug: "Ashe"},
	{ID: 25, Name: "Morgana", Slug: "Morgana"},
	{ID: 32, Name: "Amumu", Slug: "Amumu"},
	{ID: 36, Name: "Dr. Mundo", Slug: "DrMundo"},
	{ID: 45, Name: "Veigar", Slug: "Veigar"},
	{ID: 51, Name: "Caitlyn", Slug: "Caitlyn"},
	{ID: 53, Name: "Blitzcrank", Slug: "Blitzcrank"},
	{ID: 62, Name: "Wukong", Slug: "MonkeyKing"},
	{ID: 64, Name: "Lee Sin", Slug: "LeeSin"},
	{ID: 67, Name: "Vayne", Slug: "Vayne"},
	{ID: 75, Name: "Nasus", Slug: "Nasus"},
	{ID: 81, Name: "Ezreal", Slug: "Ezreal"},
	{ID: 84, Name: "Akali", Slug: "Akali"},
	{ID: 86, Name: "Garen", Slug: "Garen"},
	{ID: 89, Name: "Leona", Slug: "Leona"},
	{ID: 92, Name: "Riven", Slug: "Riven"},
	{ID: 99, Name: "Lux", Slug: "Lux"},
	{ID: 103, Name: "Ahri", Slug: "Ahri"},
	{ID: 115, Name: "Ziggs", Slug: "Ziggs"},
	{ID: 119, Name: "Draven", Slug: "Draven"},
	{ID: 122, Name: "Darius", Slug: "Darius"},
	{ID: 145, Name: "Kai'Sa", Slug: "Kaisa"},
	{ID: 157, Name: "Yasuo", Slug: "Yasuo"},
	{ID: 20, Name: "Nunu & Willump", Slug: "Nunu"},
	{ID: 221, Name: "Zeri", Slug: "Zeri"},
	{ID: 222, Name: "Jinx", Slug: "Jinx"},
	{ID: 238, Name: "Zed", Slug: "Zed"},
	{ID: 266, Name: "Aatrox", Slug: "Aatrox"},
	{ID: 360, Name: "Samira", Slug: "Samira"},
	{ID: 498, Name: "Xayah", Slug: "Xayah"},
	{ID: 555, Name: "Pyke", Slug: "Pyke"},
	{ID: 888, Name: "Renata Glasc", Slug: "Renata"},
	{ID: 21, Name: "Miss Fortune", Slug: "MissFortune"},
}
