package api

// capeNames maps the last 32 characters of a Mojang cape texture URL to
// the cape's display name. Unmapped capes fall back to the raw id.
var capeNames = map[string]string{
	"71658f2180f56fbce8aa315ea70e2ed6": "Minecon 2011",
	"273c4f82bc1b737e934eed4a854be1b6": "Minecon 2012",
	"943239b1372780da44bcbb29273131da": "Minecon 2013",
	"65a13a603bf64b17c803c21446fe1635": "Minecon 2015",
	"59c0cd0ea42f9999b6e97c584963e980": "Minecon 2016",
	"29304776d0f347334f8a6eae509f8a56": "Realms Mapmaker",
	"53cddd0995d17d0da995662913fb00f7": "Mojang Studios",
	"995751e91cee373468c5fbf4865e7151": "Mojang",
	"2abb2051b2481d0ba7defd635ca7a933": "Migrator",
	"e1a76d397c8b9c476c2f77cb6aebb1df": "MCC 15th Year",
	"cd50e4b2954ab29f0caeb85f96bf52a1": "Founder's",
	"8f1e3966956123ccb574034c06f5d336": "Pan",
	"a4faa4d9a9c3d6af8eafb377fa05c2bb": "Blossom",
	"8886e3b7722a895255fbf22ab8652434": "Minecraft Experience",
	"b4b6559b0e6d3bc71c40c96347fa03f0": "Common",
	"a22e3412e84fe8385a0bdd73dc41fa89": "Yearn",
	"0a7ca74936ad50d8e860152e482cfbde": "Purple Heart",
	"b1e6d35f4f3cfb0324ef2d328223d350": "Follower",
	"91c359e9e61a31f4ce11c88f207f0ad4": "Vanilla",
	"9f1bc1523a0dcdc16263fab150693edd": "Home",
	"12d3aeebc3c192054fba7e3b3f8c77b1": "Menace",
	"a7540e117fae7b9a2853658505a80625": "15th Anniversary",
	"76b9eb7a8f9f2fe6659c23a2d8b18edf": "Millionth Customer",
	"a4ef76ebde88d27e4d430ac211df681e": "Translator",
	"fb45ea81e785a7854ae8429d7236ca26": "Office",
	"93199a2ee9e1585cb8d09d6f687cb761": "Mojang (Legacy)",
}

// CapeNameForURL identifies a cape from its texture URL.
func CapeNameForURL(url string) string {
	if len(url) < 32 {
		return url
	}
	id := url[len(url)-32:]
	if name, ok := capeNames[id]; ok {
		return name
	}
	return id
}
