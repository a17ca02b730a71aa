package generrate

import "strings"

// Suffix and word lists used by the rule cascades. They are matched
// against lowercase tokens.

// cvcNoDouble lists endings of consonant-vowel-consonant verbs whose final
// consonant is not doubled before "ing" ("enter" -> "entering").
var cvcNoDouble = []string{
	"nger", "mber", "eaten", "aden", "atten", "avel", "ider", "nder",
	"wer", "ken", "cit", "rit", "ven", "avor", "over", "ther",
	"rsen", "mirror", "outlaw", "liken", "visit", "target", "market", "rival",
	"caper", "taper", "chisel", "counter", "ghten", "gthen", "iden", "pen",
	"edit", "ender", "enter", "onder", "utter", "order", "osit", "ffer",
	"fit", "gger", "ister", "isten", "llel", "otal", "ander", "sor",
	"bit", "met", "pret", "limit", "eter", "ndon", "debut", "cover",
	"sper", "mpet", "itor", "iver", "uffer", "ater", "lter", "ster",
	"elop", "pivot",
}

// baseTNoDouble lists endings in a vowel and "t" that take a bare "ing".
var baseTNoDouble = []string{
	"mbat", "abit", "ibit", "icit", "ket", "efit", "profit", "rit",
	"arget", "xit", "rrot", "visit", "osit", "imit", "pret", "ivet",
}

// infEndsWithESuffixes lists present participle endings whose infinitive
// ends in a silent "e" ("making" -> "make").
var infEndsWithESuffixes = []string{
	"ribing", "robing", "ubing", "ancing", "eecing", "encing", "incing", "ouncing",
	"acing", "licing", "ourcing", "ercing", "orcing", "scing", "ucing", "icing",
	"arauding", "cading", "nading", "rading", "uading", "vading", "ceding", "peding",
	"seding", "iding", "oding", "luding", "ruding", "afing", "caching", "oking",
	"haling", "mbling", "abling", "cling", "dling", "fling", "ggling", "ngling",
	"ogling", "biling", "piling", "ckling", "inkling", "ntling", "ipling", "mpling",
	"upling", "ppling", "rtling", "stling", "ttling", "zzling", "bling", "bbling",
	"paling", "ciling", "filing", "miling", "soling", "itling", "istling", "ycling",
	"caling", "culing", "duling", "ruling", "yling", "aging", "dging", "ieging",
	"leging", "arging", "erging", "orging", "ulging", "urging", "uging", "rafing",
	"iking", "voking", "uking", "making", "taking", "uming", "coming", "aming",
	"iming", "laning", "waning", "bining", "lining", "gining", "hining", "pining",
	"fining", "mining", "twining", "vining", "vening", "boning", "doning", "honing",
	"loning", "poning", "roning", "toning", "zoning", "iping", "aping", "coping",
	"doping", "roping", "yping", "caping", "haping", "tiring", "uiring", "faring",
	"paring", "fering", "rsevering", "firing", "curing", "juring", "suring", "turing",
	"ntring", "rsing", "basing", "casing", "chasing", "phrasing", "ising", "eansing",
	"ensing", "earsing", "easing", "ersing", "ursing", "ulsing", "oosing", "orsing",
	"using", "posing", "osing", "psing", "ysing", "cating", "dating", "creating",
	"aseating", "iating", "gating", "kating", "lating", "ulating", "nating", "rating",
	"erating", "sating", "ctating", "itating", "otating", "uating", "vating", "leting",
	"peting", "nciting", "xciting", "niting", "writing", "moting", "noting", "buting",
	"iluting", "tuting", "wasting", "uting", "buing", "cuing", "duing", "euing",
	"guing", "aluing", "inuing", "quing", "suing", "aving", "ieving", "arving",
	"erving", "lving", "iving", "oving", "owsing", "azing", "izing", "yzing",
}

var infEndsWithEWords = stringSet(
	"taling", "eloping", "owing",
)

// ingKeepDoubled lists endings where a doubled consonant before "ing"
// belongs to the stem ("passing" -> "pass").
var ingKeepDoubled = []string{
	"ssing", "uzzing", "spelling", "stalling", "selling", "welling", "cotting", "affing",
	"uffing", "yelling",
}

// removeDSuffixes lists past participle endings whose base is formed by
// dropping only the final "d" ("faced" -> "face").
var removeDSuffixes = []string{
	"ibed", "aced", "iced", "nced", "rced", "uced", "caded",
	"ceded", "raded", "jaded", "uaded", "vaded", "acceded", "peded",
	"seded", "llided", "cided", "fided", "hided", "rided", "bsided",
	"esided", "uided", "vided", "graded", "eceded", "coded", "loded",
	"roded", "luded", "nuded", "emceed", "reed", "teed", "afed",
	"daged", "riaged", "ckaged", "gaged", "laged", "maged", "naged",
	"paged", "taged", "raged", "saged", "vaged", "yaged", "dged",
	"ieged", "leged", "liged", "lged", "mpinged", "changed", "ranged",
	"lenged", "venged", "fringed", "unged", "rged", "auged", "reathed",
	"ythed", "faked", "raked", "taked", "iked", "hoked", "moked",
	"roked", "toked", "voked", "caled", "haled", "paled", "saled",
	"bled", "cled", "dled", "fled", "ggled", "ngled", "ogled",
	"rgled", "ciled", "filed", "miled", "piled", "xiled", "kled",
	"joled", "aroled", "pled", "tled", "culed", "duled", "ruled",
	"yled", "zled", "famed", "hamed", "lamed", "named", "ramed",
	"hemed", "rimed", "timed", "comed", "umed", "rhymed", "paned",
	"waned", "vened", "bined", "fined", "lined", "mined", "pined",
	"rined", "tined", "wined", "condoned", "boned", "honed", "loned",
	"poned", "roned", "toned", "gined", "pruned", "tuned", "caped",
	"haped", "raped", "taped", "wiped", "roped", "duped", "yped",
	"dared", "hared", "clared", "flared", "nared", "pared", "uared",
	"cred", "dhered", "rfered", "bored", "dored", "plored", "gnored",
	"stored", "hired", "mired", "pired", "sired", "tired", "uired",
	"wired", "tred", "cured", "dured", "gured", "jured", "nured",
	"sured", "tured", "based", "cased", "ceased", "leased", "reased",
	"hased", "iased", "rased", "ised", "nsed", "cored", "ulsed",
	"osed", "psed", "rsed", "essed", "ncussed", "-used", "aused",
	"bused", "fused", "hused", "mused", "oused", "ysed", "rrotted",
	"bated", "cated", "dated", "neated", "lated", "kated", "created",
	"gated", "iated", "ulated", "ylated", "nated", "mated", "pated",
	"rated", "sated", "tated", "uated", "vated", "eleted", "oleted",
	"pleted", "peted", "ecited", "ncited", "xcited", "adited", "nited",
	"vited", "moted", "noted", "uoted", "voted", "tasted", "wasted",
	"uetted", "zetted", "ibuted", "cuted", "futed", "luted", "-routed",
	"puted", "tuted", "muted", "sputed", "bued", "cued", "dued",
	"ueued", "gued", "lued", "nued", "qued", "crued", "strued",
	"sued", "aved", "eved", "ived", "lved", "oved", "rved",
	"xed", "dyed", "dazed", "lazed", "mazed", "razed", "eezed",
	"ized", "ozed", "tzed", "yzed",
}

var removeDWords = stringSet(
	"ceded", "aged", "mimed", "zoned", "rezoned", "re-zoned", "lured", "eased",
	"used", "reused", "misused", "garrotted", "meted", "cited", "routed", "rerouted",
	"owed",
)

// edKeepDoubled lists endings where a doubled consonant before "ed"
// belongs to the stem ("called" -> "call").
var edKeepDoubled = []string{
	"balled", "called", "palled", "ralled", "talled", "walled", "felled", "helled",
	"melled", "spelled", "swelled", "quelled", "yelled", "billed", "filled", "chilled",
	"drilled", "killed", "milled", "stilled", "spilled", "tilled", "thrilled", "willed",
	"polled", "enrolled", "ffed", "culled", "dulled", "fulled", "pulled", "ossed",
	"assed", "cotted", "uzzed",
}

var edKeepDoubledWords = stringSet(
	"rolled", "tolled", "trolled",
)

// pastNoChangeSuffixes and pastNoChangeWords are participles identical to
// their base form.
var pastNoChangeSuffixes = []string{
	"cast", "spread", "become", "overcome",
}

var pastNoChangeWords = stringSet(
	"set", "upset", "wed", "shed", "split", "rerun", "fit", "clad",
	"ironclad", "read", "misread", "offset", "hit", "quit", "bet", "bid",
	"rebid", "beset", "thrust", "inset", "beat", "overrun", "hurt", "knit",
	"shut",
)

// pastBlacklist holds words tagged as past participles that must not be
// converted back to a base form.
var pastBlacklist = stringSet(
	"opinionated", "sled", "bore", "bed", "coalbed", "deathbed", "trackbed", "need",
	"seabed", "testbed", "riverbed", "linseed", "sinced", "infrared",
)

// icallyKeep lists "-ically" adverbs whose adjective ends in "-ical".
var icallyKeep = []string{
	"typically", "identically", "topologically", "athologically", "theologically", "liturgically",
	"psychologically", "vertically", "chemically", "chronologically", "mathematically", "zygotically",
	"canonically", "spherically", "lexically", "practically", "technologically", "surgically",
	"technically", "theatrically", "categorically", "radically",
}

func stringSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// hasAnySuffix reports whether s ends with any of suffixes.
func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

// isAnyOf reports whether s equals any of words.
func isAnyOf(s string, words ...string) bool {
	for _, w := range words {
		if s == w {
			return true
		}
	}
	return false
}
