package tables

// This file has been generated -- you probably should NOT EDIT IT !
//
// Source: UnicodeData.txt (14.0.0), processed by internal/generator.
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

// UnicodeVersion is the UCD version the name tables were generated from.
const UnicodeVersion = "14.0.0"

// Special words occupy a contiguous band of dictionary indices.
const (
	specialWordLo uint16 = 2
	specialWordHi uint16 = 4
)

// wordTable is the word dictionary. Index 0 and 1 are the sentinel slots
// (separating blank and code-point substitution).
var wordTable = []string{
	" ", "", "-", " -", "- ", "LETTER",
	"SIGN", "SMALL", "WITH", "SYLLABLE", "CAPITAL", "HIEROGLYPH",
	"LATIN", "ARABIC", "YI", "CUNEIFORM", "SYMBOL", "CJK",
	"IDEOGRAPH", "MATHEMATICAL", "EGYPTIAN", "COMPATIBILITY", "CHARACTER", "DIGIT",
	"A", "FORM", "VOWEL", "COMPONENT", "TANGUT", "CANADIAN",
	"SYLLABICS", "SIGNWRITING", "TIMES", "BAMUM", "AND", "SCRIPT",
	"ARROW", "BOLD", "ANATOLIAN", "PHASE", "HANGUL", "NUMBER",
	"LINEAR", "COMBINING", "LIGATURE", "RIGHT", "GREEK", "ETHIOPIC",
	"LEFT", "MUSICAL", "OLD", "E", "KHITAN", "ABOVE",
	"FOR", "DOUBLE", "MARK", "CYRILLIC", "SQUARE", "ITALIC",
	"U", "NUSHU", "CIRCLED", "DOTS", "SERIF", "RADICAL",
	"SANS", "ONE", "O", "FINAL", "TWO", "B",
	"TAI", "I", "BLACK", "MODIFIER", "BELOW", "DOT",
	"HAND", "THREE", "VAI", "WHITE", "HENTAIGANA", "TO",
	"SELECTOR", "VARIATION", "VERTICAL", "PATTERN", "BRAILLE", "STROKE",
	"BYZANTINE", "KATAKANA", "ISOLATED", "FOUR", "MIDDLE", "OF",
	"HEAVY", "MYANMAR", "D", "HOOK", "FIVE", "KANGXI",
	"KIKAKUI", "MENDE", "C", "INITIAL", "KA", "TIBETAN",
	"MEEM", "HMONG", "TONE", "UP", "MOVEMENT", "RIGHTWARDS",
	"TRIANGLE", "YEH", "COPTIC", "ZNAMENNY", "CARRIER", "PA",
	"PLUS", "S", "R", "FACE", "BOX", "CIRCLE",
	"SQUARED", "GEORGIAN", "CHEROKEE", "MONGOLIAN", "DOWN", "BLOCK",
	"INDEX", "HALF", "LOWER", "HORIZONTAL", "L", "DEVANAGARI",
	"LEFTWARDS", "SIX", "EIGHT", "UPPER", "POINTING", "HA",
	"ALEF", "LOW", "BAR", "MIAO", "LIGHT", "VOCALIC",
	"KHMER", "N", "TILE", "WEST", "DRAWINGS", "HEADED",
	"HIGH", "SEVEN", "DUPLOYAN", "HUNDRED", "NINE", "BRACKET",
	"PARENTHESIZED", "THAM", "GONDI", "JONGSEONG", "GLAGOLITIC", "HEBREW",
	"TAMIL", "THUMB", "CREE", "MALAYALAM", "OVER", "RA",
	"SIYAQ", "PAHAWH", "F", "FIST", "THAN", "YA",
	"CHOSEONG", "BALINESE", "MA", "HALFWIDTH", "MEROITIC", "NA",
	"DIAGONAL", "LONG", "IDEOGRAPHIC", "OPEN", "RING", "TURNED",
	"2", "WALLPLANE", "IDEOGRAM", "SA", "TA", "ALCHEMICAL",
	"EQUAL", "HAH", "NEUME", "BRAHMI", "LA", "THOUSAND",
	"INDIC", "M", "NUMERIC", "SINHALA", "HUNGARIAN", "DOWNWARDS",
	"MEDIUM", "TILDE", "BARB", "FLOORPLANE", "NORTH", "TAG",
	"UPWARDS", "DA", "Y", "FULLWIDTH", "G", "T",
	"HIRAGANA", "JEEM", "GA", "PUNCTUATION", "DOMINO", "K",
	"TELUGU", "V", "ACUTE", "CYPRO", "FRAKTUR", "MINOAN",
	"FRACTION", "H", "MEDIAL", "NEGATIVE", "SIDDHAM", "BHAIKSUKI",
	"NEWA", "STRUCK", "ARMENIAN", "BENGALI", "CHESS", "LINE",
	"OR", "SHARADA", "JUNGSEONG", "P", "Z", "BA",
	"LARGE", "SOUTH", "ZERO", "GUJARATI", "JAVANESE", "MEDEFAIDRIN",
	"ORIYA", "CURSIVE", "KANNADA", "REVERSED", "SYRIAC", "AA",
	"RUNIC", "TANGSA", "ADLAM", "CONSONANT", "X", "CARD",
	"NEW", "SINGLE", "THAI", "3", "GRANTHA", "LUE",
	"SOGDIAN", "CITI", "J", "SUBJOINED", "TEN", "WARANG",
	"CHAM", "DASIA", "PLAYING", "SOYOMBO", "WA", "LAO",
	"SAURASHTRA", "TIRHUTA", "W", "1", "AI", "ANGLE",
	"CIRCUMFLEX", "SHORT", "TETRAGRAM", "DESERET", "GURMUKHI", "HAMZA",
	"II", "MAYEK", "MEETEI", "MODI", "NOTATION", "PSILI",
	"SIOS", "NUMERAL", "RIEUL", "ARROWHEAD", "DIAERESIS", "GA2",
	"NGA", "AU", "BOPOMOFO", "GRAVE", "MASARAM", "JA",
	"LAM", "LEPCHA", "MACRON", "SHA", "STOP", "TAIL",
	"UU", "CA", "LAK", "OMEGA", "TURKIC", "VIET",
	"AKURU", "ALPHA", "DIVES", "OSAGE", "PIEUP", "SUNDANESE",
	"ZANABAZAR", "CHAKMA", "LITTLE", "NYIAKENG", "PUACHUE", "APL",
	"FUNCTIONAL", "VITHKUQI", "ACCENT", "KHUDAWADI", "MAKSURA", "ON",
	"TELEGRAPH", "4", "KAITHI", "KHAH", "KHAROSHTHI", "LIMBU",
	"MARCHEN", "NOON", "TAKRI", "TWENTY", "CHA", "INVERTED",
	"CENTRE", "KHA", "NOT", "NYA", "AHOM", "LI",
	"NANDINAGARI", "ORNAMENT", "ROTATED", "ARABIAN", "HARPOON", "HEXAGRAM",
	"IN", "EAST", "GUNJALA", "LAGAB", "GREATER", "KHOJKI",
	"MONOSPACE", "NKO", "OXIA", "SAMARITAN", "VARIA", "COMMA",
	"LESS", "OTTOMAN", "THA", "5", "DOGRA", "Q",
	"SEXTANT", "STAR", "TRIPLE", "BREVE", "NUN", "TIFINAGH",
	"WANCHO", "HAU", "AEGEAN", "CIN", "INSCRIPTIONAL", "PAU",
	"YU", "ASH", "BATAK", "EN", "ETA", "GUNU",
	"PAHLAVI", "PHAGS", "AVESTAN", "CYPRIOT", "PHA", "VA",
	"HITTING", "IOTA", "YO", "ACROPHONIC", "ALBANIAN", "ANUSVARA",
	"CAUCASIAN", "DEGREES", "PERSIAN", "TEH", "WIDE", "CROSS",
	"FULL", "PI", "ROMAN", "UNIFIED", "KAYAH", "MANICHAEAN",
	"MOUTH", "NO", "ROHINGYA", "SEEN", "TTA", "DDA",
	"HANIFI", "KAF", "TE", "THAANA", "TOP", "ZA",
	"CARIAN", "DISC", "HE", "HEH", "LE", "LISU",
	"OL", "THIRTY", "CHIKI", "DHA", "OO", "SHAVIAN",
	"UPSILON", "VEDIC", "DIAMOND", "GHA", "MU", "OPERATOR",
	"PE", "PERISPOMENI", "SHE", "YEZIDI", "6", "ASTERISK",
	"CLOSED", "KIYEOK", "MTAVRULI", "PARENTHESIS", "PHAISTOS", "ROTATION",
	"SHAN", "AIN", "BEH", "CARON", "DOTTED", "HI",
	"NAGRI", "NNA", "SYLOTI", "BHA", "MAHJONG", "OE",
	"SHEEN", "THE", "WAW", "ALI", "GALI", "MRO",
	"NE", "NI", "PERMIC", "TIKEUT", "EE", "NEUTRAL",
	"ORKHON", "RETROFLEX", "TTHA", "DASH", "FA", "MIEUM",
	"TENU", "VIRAMA", "ALTERNATE", "ARCHAIC", "BASSA", "DDHA",
	"DESCENDER", "EIGHTH", "ELBASAN", "HINGE", "NABATAEAN", "OSMANYA",
	"QUARTER", "RR", "SSA", "SUBSCRIPT", "TAH", "BOTTOM",
	"CURVE", "MAHAJANI", "AN", "EPSILON", "FEH", "MULTANI",
	"NIEUN", "NINETY", "POINTED", "REH", "SECTION", "SIDE",
	"VISARGA", "YPOGEGRAMMENI", "CORNER", "HIEUH", "INSTRUMENTAL", "ME",
	"MI", "REJANG", "VAH", "AE", "CURLY", "EQUALS",
	"FROM", "JHA", "LU2", "QAF", "STRAIGHT", "FIFTY",
	"GLOTTAL", "HO", "LL", "NU", "SOMPENG", "SORA",
	"TACK", "CANDRABINDU", "DUG", "FLAT", "HORN", "KNIGHT",
	"RAISED", "SAD", "SEVENTY", "STRELA", "7", "DAY",
	"INDICATOR", "KI", "PRESENTATION", "SHIN", "SO", "WAVE",
	"AFFIX", "COLON", "CROSSING", "DAD", "DINGBAT", "HEART",
	"HIEROGLYPHIC", "IGI", "PALMYRENE", "RO", "SHELL", "VARIANT",
	"WO", "ARAMAIC", "DIGRAPH", "END", "EZEN", "FINGERS",
	"IMPERIAL", "RUMI", "SIMPLIFIED", "TOTO", "UGARITIC", "VERY",
	"YENISEI", "YUS", "BENT", "BUGINESE", "DANDA", "FORTY",
	"KO", "MO", "OMICRON", "PARTHIAN", "QUOTATION", "SU",
	"TSA", "TU", "WE", "CEDILLA", "CONJOINED", "GAR",
	"HEAD", "KISIM5", "KU", "LOGICAL", "LYCIAN", "MANDAIC",
	"MOON", "OGHAM", "PALATAL", "PHOENICIAN", "PSALTER", "QUESTION",
	"RU", "SAG", "SI", "SPOKED", "TODO", "VESSEL",
	"VOCAL", "00", "01", "02", "03", "04",
	"05", "06", "CHORASMIAN", "CIEUC", "EPACT", "KE",
	"PROSGEGRAMMENI", "RHO", "SLANTED", "SUPERSCRIPT", "UD", "AT",
	"CLOCK", "DAG", "GOTHIC", "LLA", "LOOP", "LOOPED",
	"LYDIAN", "MINUS", "NEO", "NINDA2", "NOTE", "POINT",
	"SE", "URU", "WI", "BETWEEN", "BU", "CHI",
	"EXCLAMATION", "EYES", "GHAIN", "HATRAN", "HOUR", "IEUNG",
	"LAING", "LU", "REGIONAL", "SEPARATOR", "SHAFT", "SIGMA",
	"SUBSET", "SUPERSET", "TI", "TORTOISE", "UYGHUR", "INTEGRAL",
	"KHAMTI", "MAKASAR", "NOTEHEAD", "NUKTA", "PHI", "QUAD",
	"STRETCHED", "THETA", "UNDERBAR", "ATTIC", "CHE", "DAGESH",
	"EQUILATERAL", "GI", "INDEPENDENT", "QUADRANT", "SMILING", "SOLIDUS",
	"THEH", "ALTERNATING", "DE", "DISH", "EL", "ELYMAIC",
	"EM", "OVERLAY", "RI", "SIBE", "TAGALOG", "UE",
	"WORD", "ANTICLOCKWISE", "ARM", "CROSSED", "CURL", "DO",
	"EXTENDED", "GAMMA", "GAN2", "GISH", "LEAF", "LENGTH",
	"MAI", "MAN", "PERSON", "PHIEUPH", "RE", "SPACE",
	"TRIANGULAR", "ZE", "ZHA", "AB", "ATTACHED", "DOTLESS",
	"HANUNOO", "MANCHU", "MEM", "REVERSE", "SIXTY", "STEM",
	"THO", "TIP", "TRUMP", "YE", "ARC", "AS",
	"BUHID", "CLAN", "CUP", "CURVED", "DELTA", "EU",
	"HINGED", "INSULAR", "LEG", "LO", "MAYAN", "NG",
	"QA", "RRA", "THIEUTH", "UNION", "8", "AB2",
	"ABBREVIATION", "AL", "ANNOTATION", "ARCHAION", "BAD", "BETA",
	"BI", "CHIEUCH", "DAL", "DI", "DU", "ESH",
	"INSIDE", "KUR", "OUT", "RED", "SHADOWED", "SIDEWAYS",
	"TONOS", "VAS", "VULGAR", "BLACKFOOT", "COUNTING", "FILL",
	"FLOOR", "FORWARD", "FTHORA", "GHE", "GURAGE", "INTERSECTION",
	"KAPPA", "KAREN", "KING", "PAP", "PO", "QUEEN",
	"RESH", "REST", "ROD", "TAGBANWA", "TAILED", "TAU",
	"TYPE", "WALL", "ALEPH", "ARROWS", "ARY", "AYIN",
	"BETH", "CEILING", "CIRCLES", "DIALYTIKA", "FLAG", "GIMEL",
	"GU", "GUD", "HEARTS", "HU", "IE", "MUSH",
	"OBLIQUE", "PRAM", "PSI", "SAYISI", "SOUND", "TAW",
	"TONGUE", "TRAVEL", "VE", "ALMOST", "AVAGRAHA", "BARRED",
	"CIM", "CLOCKWISE", "EARTH", "HETH", "HYPHEN", "IOTIFIED",
	"KAPH", "KHIEUKH", "KOMI", "ROUND", "SADHE", "SAMEKH",
	"SHAD", "SHESHIG", "SLASH", "SPREAD", "SUN", "TAK4",
	"TH", "TWELVE", "YODH", "ZAIN", "ZHE", "9",
	"BACK", "BE", "BIG", "CANDRA", "DENTISTRY", "EIGHTHS",
	"EIGHTY", "EMPTY", "EQUIVALENT", "ER", "ES", "IM",
	"KASKAL", "KOET", "LAGAR", "LAMEDH", "MGO", "NASKAPI",
	"OGONEK", "PANSIOS", "QUARTERS", "RISING", "ROC", "ROUNDED",
	"SHADE", "SHU", "THROUGH", "TSHA", "U2", "XA",
	"XI", "ZAYIN", "BIRGA", "BISHOP", "BULLET", "CAN",
	"CHECK", "CLUBS", "DIAMONDS", "EO", "FACING", "FARSI",
	"FATHA", "FINGER", "GO", "HUMP", "KASRA", "LAMDA",
	"NOR", "NUNUZ", "NYI", "PWO", "ROOK", "SARA",
	"SHADDA", "SHAPED", "SOFT", "SPADES", "THIRD", "TONAL",
	"TSE", "WATER", "WRIST", "XIANGQI", "ZAH", "ANG",
	"BALLOT", "BINDU", "CAT", "DALETH", "DAP", "DASHED",
	"DZA", "ELEMENT", "ELEVEN", "ET", "FRONT", "ICHOS",
	"LOZENGE", "MARTYRIA", "MINNAN", "MON", "MULTIPLE", "MULTIPLICATION",
	"OM", "OVAL", "OVERBAR", "PADA", "PALI", "POVYSHE",
	"PRECEDES", "PRODUCT", "PU", "RTAGS", "SHIM", "SUCCEEDS",
	"VOICED", "WOODS", "ZETA", "617", "AH", "AY",
	"BALL", "BO", "BY", "CLEF", "CO", "DESCRIPTION",
	"DOES", "E2", "ENG", "EZH", "FE", "HANGZHOU",
	"JE", "KEHEH", "KHO", "KRYZHEM", "LAL", "LUM",
	"MEASURED", "MURDA", "NATTILIK", "NUBIAN", "OCLOCK", "OJIBWAY",
	"PAWN", "PRIME", "SCHWA", "SECOND", "SEMICOLON", "SHA3",
	"SHAR2", "TEDUNG", "TELEPHONE", "UNIT", "UR2", "USH",
	"YANG", "YEO", "YIG", "ZIGZAG", "ZO", "ZU",
	"648", "BELT", "BESIDE", "CHO", "CLICK", "CLUSTER",
	"CURRENCY", "DAMMA", "FALLING", "FI", "FIFTEEN", "FIGURE",
	"FILLER", "FIRE", "FO", "HAA", "INVERSE", "JO",
	"KIEVAN", "KIRGHIZ", "KLYUCHEVAYA", "KRYUKOVAYA", "LEK", "MADDA",
	"MEN", "MID", "NOSE", "OCR", "PHO", "PILLA",
	"QUADRUPLE", "RAYS", "RIBBON", "SAL", "SALT", "SALTIRE",
	"SHO", "SIMALUNGUN", "SKAMEYTSA", "SSANGSIOS", "STATYA", "TENS",
	"TETH", "TREE", "TSHEG", "UM", "WAVY", "WIDTH",
	"WIND", "WU", "YERU", "ZI", "ALPAPRAANA", "AM",
	"ASH2", "ATTAK", "BRACKETED", "BUT", "CARET", "CHINESE",
	"CLOUD", "DYNAMIC", "DZ", "EF", "EH", "ESH2",
	"EYE", "FISH", "FLEX", "GAD", "GAF", "GE",
	"HARD", "HORA", "KAK", "LITH", "LOCATION", "LUNATE",
	"MAHAAPRAANA", "MALE", "NORMAL", "NOTCHED", "PAGE", "PARALLEL",
	"PII", "PREFIXED", "QOPH", "RDEL", "RECYCLING", "SEGMENTED",
	"SHADED", "SIMILAR", "SIXTEEN", "SVARITA", "TAB", "THESPIAN",
	"TICK", "TWELFTHS", "UNDER", "VO", "WESTERN", "YESIEUNG",
	"YOD", "APOSTROPHE", "ASTROLOGICAL", "BAMBOOS", "BARREE", "BRANCH",
	"BUBBLE", "BUR", "CE", "CENTRED", "CHARACTERS", "CHILLU",
	"CLAW", "CONTAINING", "CONTAINS", "CRYPTOGRAMMIC", "DIGRAM", "EI",
	"EIGHTEEN", "EMOJI", "ENVELOPE", "EXTRA", "EYEGAZE", "FIRST",
	"FU", "GAL", "GESH2", "HANDS", "HHA", "HORSE",
	"IMAGE", "ITERATION", "KAVYKA", "KEY", "LARGEST", "METRICAL",
	"MONOGRAM", "NEITHER", "NYO", "PEE", "PEH", "PIECE",
	"PINWHEEL", "RECTANGLE", "REFORMED", "REPEAT", "RHA", "SANDHI",
	"SET", "SHU2", "SLOAN", "SUIT", "TEARDROP", "TEXT",
	"THEN", "THIRDS", "TWIG", "UN", "UR", "VI",
	"VINE", "YAE", "YAT", "YIN", "11", "ABKHASIAN",
	"AGOGI", "AIRPLANE", "AMPERSAND", "ANO", "AR", "ARAEA",
	"AWAY", "BACKHAND", "BEGIN", "BEI", "BLUE", "BUD",
	"BUON", "CAR", "COMPRESSED", "COPPER", "CRESCENTS", "CUM",
	"DIALECT", "DIE", "DIVISION", "DODEKATA", "DRAGON", "DZE",
	"ELLIPSIS", "ENDING", "ETH", "EXTENSION", "FISHHOOK", "FOURTEEN",
	"GOAL", "GREEN", "HUB2", "ICE", "IS", "JAPANESE",
	"JI", "JOINER", "JOT", "LENTICULAR", "LHA", "LIMB",
	"LIPS", "LOGOGRAM", "LONSUM", "MAHAPRANA", "MARKER", "MFON",
	"MOUNTAIN", "MUOY", "NAGA", "NAME", "NINETEEN", "NIZKO",
	"NJE", "NUNAVIK", "OPPOSING", "ORE", "OU", "OUTLINED",
	"OVERLINE", "PAIRED", "PER", "PHARYNGEAL", "PROLATIONE", "RUPEE",
	"SASAK", "SECANT", "SEE", "SEVENTEEN", "SHEI", "SIMANSIS",
	"SIXTEENTH", "STAFF", "STATERS", "STICK", "SUBGROUP", "SUBUNIT",
	"SUKUN", "SVETLAYA", "TEMPUS", "THAL", "THIRTEEN", "THORN",
	"THOUSANDS", "TOWARDS", "TRIGRAM", "TUAREG", "TUG2", "TURNSTILE",
	"VEE", "VERTICALLY", "VRAKHIYA", "WAY", "WOMAN", "ZAPYATAYA",
	"10", "12", "13", "14", "449", "AD",
	"ANGLED", "ANTIMONY", "ARKTIKO", "BACKSLASH", "BAN2", "BBA",
	"BELL", "CHEST", "DAGGER", "DIATONIKI", "DIESIS", "DIGA",
	"DIM", "DIPLI", "DOLLAR", "DUN3", "EAR", "ENCLOSING",
	"EYEBROWS", "FATHATAN", "FEATHERED", "FEE", "FITA", "FOLDER",
	"FOURTH", "GAN", "GI4", "GIR2", "GU2", "HAIR",
	"HAT", "HEEL", "JU", "KAPYEOUNPIEUP", "KATO", "KET",
	"LEVEL", "LUGAL", "MALO", "MASH", "MEASURE", "MILLIONS",
	"MOUSE", "NASALIZED", "NGO", "ODD", "OPENING", "PLACE",
	"PLASTICS", "POST", "POWERS", "RAIN", "REGULUS", "SH",
	"SHARP", "SHIMA", "SHOE", "SHWE", "SPEAKER", "SPEECH",
	"SPIRAL", "SSANGKIYEOK", "SUBLIMATE", "SURROUND", "TAA", "TALENTS",
	"TALLY", "TAM", "TAR", "TCHEH", "TEETH", "TENSE",
	"TET", "THI", "TIR", "TSI", "VOS", "VU",
	"WITHIN", "WRINKLED", "YFESIS", "15", "16", "18",
	"AEN", "AIR", "AITON", "AK", "APPROXIMATELY", "AV",
	"BABY", "BALLOON", "BARLINE", "BEE", "BEND", "BET",
	"BOOK", "BOW", "BRIDGE", "BROKEN", "BRUSH", "BURU",
	"BUTTON", "CHEEKS", "CONTACT", "CONTROL", "CORNERS", "CRESCENT",
	"CUPPED", "CURLICUE", "DEE", "DIFFERENTIAL", "DIGAMMA", "DIVIDER",
	"DOG", "DRUM", "DUB", "DVOECHELNAYA", "EAT", "ECH",
	"EK", "ENT", "ENY", "EPIGRAPHIC", "EQUIHOPPER", "ERIN2",
	"ERROR", "EVEN", "EXTREMELY", "FEMALE", "FLICK", "GANGIA",
	"GAP", "GGA", "GIR3", "GLASS", "GREAT", "GROMOPOVODNAYA",
	"HAL", "HAR", "HIP", "HOLDING", "HOOKED", "HORI",
	"HOUSE", "IMPERFECTA", "INFINITY", "IOTATED", "IZHE", "IZHITSA",
	"JEE", "JIHVAMULIYA", "KAI", "KAN", "KEN", "KHEI",
	"KHOKHLOM", "KISS", "KNIFE", "KOPPA", "KU3", "KUSHU2",
	"LEIMMA", "LIGHTED", "LLLA", "LOO", "LU3", "MBAA",
	"MUSH3", "MYA", "NAA", "NABLA", "NARROW", "NDA",
	"NET", "NHA", "NJI", "NUMERATOR", "ORANGE", "OSOKA",
	"OTTAVA", "PAA", "PALM", "PARTIAL", "PEAKS", "PEN",
	"PIRIG", "POSITION", "POWER", "RADI", "RAE", "REPA",
	"RICE", "RUSSIAN", "SAMPI", "SAN", "SAR", "SCISSORS",
	"SHARU", "SHI", "SHID", "SHIR", "SPLIT", "SQUEEZE",
	"SSANGPIEUP", "SSANGTIKEUT", "STILE", "SUBSTITUTION", "SUM", "SUNG",
	"SWASH", "TALL", "TATWEEL", "TEE", "TIE", "TILTED",
	"TOO", "TREMOLO", "TROEZENIAN", "TTEH", "TUR", "UA",
	"UK", "UPADHMANIYA", "URUDA", "VAV", "VOLAPUK", "VRACHY",
	"VYSOKO", "WEIGHT", "WIGGLY", "XE", "YAA", "YEE",
	"YEORINHIEUH", "YN", "ZAPYATOY", "17", "23", "24",
	"A709", "ADEG", "AFRICAN", "ALAYHE", "ALL", "ALLAAHU",
	"ANUDATTA", "APLI", "AQ", "BAHAR2", "BAL", "BARS",
	"BBE", "BEEH", "BEHEH", "BOARD", "BREATHY", "BUILDING",
	"CASKET", "CHAR", "CHARIOT", "CHART", "CHRIVI", "CIRCULAR",
	"CLOSING", "COMMERCIAL", "COW", "CRUCIBLE", "CUBED", "CURVING",
	"DAMMATAN", "DHE", "DISK", "DKAR", "DOACHASHMEE", "DOCUMENT",
	"DOUBLED", "DYEH", "DZHA", "EC", "ELAMITE", "ENTRY",
	"ERA", "EZ", "FENCE", "FILE", "FITZPATRICK", "FLATTENED",
	"FLOURISH", "FLOWER", "FRANKS", "FREE", "GAA", "GEE",
	"GEMINATION", "GESHU", "GHUNNA", "GOLUBCHIK", "GORAZDO", "GORGON",
	"GRINNING", "GTER", "GUEH", "HENG", "HIE", "HOO",
	"HOT", "IDIM", "IMPERFECTUM", "INPUT", "INTERROBANG", "IR",
	"IRON", "IU", "JACK", "JIL", "JJA", "JOINED",
	"KAD3", "KAL", "KANA", "KASRATAN", "KENTIMATA", "KEYBOARD",
	"KOMBUVA", "KOO", "KOREAN", "KPA", "KSSA", "LAA",
	"LAME", "LIGHTNING", "MAP", "MBA", "MECHIK", "MEDAL",
	"MOBILE", "MONKEY", "MUCH", "MV", "MYSLITE", "NAG",
	"NAR", "NASAL", "NDOLE", "NEPOSTOYANNAYA", "NESTED", "NGGA",
	"NGOEH", "NIGHT", "NJEE", "NN", "NNNA", "NOTES",
	"NYEH", "OA", "OH", "OI", "ONCOMING", "ORIGINAL",
	"OVERLAPPING", "OW", "PAD", "PARAGRAPH", "PARESTIGMENON", "PATH",
	"PEHEH", "PENTAGON", "PERCENT", "PLUTO", "POINTER", "POLE",
	"PON", "POO", "PRIZNAK", "PWA", "QAR", "QI",
	"QU", "RAA", "RANGE", "REE", "REPETITION", "RETURN",
	"RNOON", "ROCKET", "ROOT", "ROTUNDA", "RUB", "SALAAM",
	"SCREEN", "SEMICIRCLE", "SEMIDIRECT", "SHOULDER", "SII", "SMILE",
	"SOO", "SSANGCIEUC", "START", "STRESS", "SUMMATION", "SWIRL",
	"TALING", "TCHEHEH", "TEHEH", "THAA", "THEE", "THESEOS",
	"TINY", "TITLO", "TRAFFIC", "TRIDENT", "TTE", "TTEHEH",
	"TUM", "TURTLE", "TWE", "UIGHUR", "UKRAINIAN", "UMBRELLA",
	"VEH", "WAA", "WALK", "WITHOUT", "WOO", "YAJURVEDIC",
	"YELLOW", "YEN", "YER", "YOT", "YR", "ZEE",
	"ZEN", "123", "124", "125", "126", "134",
	"136", "145", "146", "156", "19", "234",
	"235", "236", "238", "245", "25", "256",
	"26", "36", "45", "AC", "ACE", "AG",
	"ALAYHI", "ALTA", "AMAR", "AO", "APPROXIMATE", "AQUA",
	"AROUND", "ARROWHEADS", "ARSEOS", "BAA", "BAG", "BALAG",
	"BAN", "BANKNOTE", "BASE", "BEAMED", "BHE", "BIRD",
	"BONE", "BOTTLE", "BOWTIE", "BULUG", "CAMERA", "CANCELLATION",
	"CANTILLATION", "CAP", "CENTRALIZATION", "CHECKER", "CHEE", "CHIN",
	"CHROMA", "CHU", "CI", "CIL", "CLUB", "CONCAVE",
	"CROP", "CUATRILLO", "CUSP", "DALET", "DANG", "DDDA",
	"DEGREE", "DEL", "DELIMITER", "DEVICE", "DEZH", "DIASTOLI",
	"DIGORGON", "DIMINUTION", "DIN", "DIRECTION", "DJE", "DLA",
	"DON", "DOWNWARD", "DRAUGHTS", "DREAMY", "DYO", "DZELO",
	"EASTERN", "EGYPTOLOGICAL", "EIE", "EKFONITIKON", "ELECTRIC", "ELLIPSE",
	"ENC", "EP", "ERR", "EX", "FAA", "FEATHER",
	"FIXED", "FLOPPY", "FLORETTE", "FOOD", "FOOT", "FORK",
	"FORMAT", "FRAME", "FROWN", "FROWNING", "GABA", "GBE",
	"GHAN", "GLOBE", "GOLD", "GRASS", "GROMNAYA", "GROMOKRYZHEVAYA",
	"GUR", "HAE", "HAMMER", "HEAVEN", "HEE", "HELMET",
	"HOE", "HOURGLASS", "HP", "HV", "IA", "IDENTICAL",
	"IMIN", "INSERT", "INTEGRATION", "ISOLATE", "ISOSCELES", "JHAN",
	"JOIN", "JOKER", "KAA", "KANG", "KAPA", "KENTIMA",
	"KHAR", "KHI", "KHUEN", "KID", "KISSING", "KK",
	"KLASMA", "KM", "KNUCKLE", "KPO", "KRYZH", "KSI",
	"KUL", "KUT", "KWAA", "KWE", "KWI", "KYEE",
	"LAI", "LAMED", "LAS", "LEE", "LENGA", "LENGTHENER",
	"LEZH", "LIP", "LJE", "LOCK", "LONGA", "LOQ",
	"LOTUS", "MAILBOX", "MARBUTA", "MBE", "MBEE", "MCHU",
	"MEAT", "MEMBER", "MERCURY", "MIM", "MIN", "MM",
	"MONOCULAR", "MUG", "MUSIC", "MWA", "MWI", "NDAA",
	"NDE", "NDU", "NGAA", "NGI", "NIKOLSBURG", "NON",
	"NOW", "NTAP", "NTEUM", "NWA", "NYAM", "NYIS",
	"OBOLS", "OHM", "OIL", "OK", "OOU", "OT",
	"OUTPUT", "OX", "PALAUNG", "PAPER", "PAR", "PARENTHESES",
	"PATAH", "PEDESTAL", "PENCIL", "PENTAGRAM", "PERFECTA", "PHAR",
	"PHONE", "PIG", "PLA", "POETRY", "POLICE", "POSTAL",
	"POT", "POUND", "POVODNAYA", "PROSTAYA", "PWI", "QAMATS",
	"QE", "QO", "QUILL", "QUILT", "RAD", "RAFE",
	"RAILWAY", "RAM", "RAT", "RECEIVER", "RELATION", "REN",
	"RII", "RUDIMENTA", "RUM", "SAA", "SANYAKA", "SATANGA",
	"SCAN", "SEBATBEIT", "SEQUENTIAL", "SERIFS", "SGAW", "SHAKING",
	"SHEE", "SHHA", "SHII", "SHITA", "SHOGI", "SHORTHAND",
	"SHORTS", "SIG4", "SILHOUETTE", "SIN", "SIXTEENTHS", "SKEWED",
	"SLAVEY", "SLIGHTLY", "SLOZHITIE", "SNAKE", "SPIRIT", "SQUARES",
	"SQUIGGLE", "SS", "SSANGNIEUN", "STRATUM", "SUKU", "SUR",
	"SUU", "SVASTI", "SWEAT", "TAN", "TESH", "THIN",
	"THUMBS", "TIGER", "TIKHAYA", "TILTING", "TOGETHER", "TOOTH",
	"TOPBAR", "TORSO", "TRESVETLAYA", "TROMIKON", "TS", "TSO",
	"TSU", "TTHO", "TURN", "UC", "UDATTA", "UI",
	"ULU", "UMUM", "US", "VANE", "VIN", "VINEGAR",
	"WASLA", "WEE", "WELSH", "WHEEL", "WINE", "WOMANS",
	"WYNN", "XAN", "XYEEM", "YAH", "YERI", "YIDDISH",
	"YOO", "YOQ", "YUT", "YYA", "ZAL", "ZATA",
	"ZHAR", "ZHEE", "ZZA", "050", "079", "081",
	"102", "127", "128", "130", "135", "137",
	"138", "142", "147", "148", "157", "158",
	"167", "168", "178", "20", "21", "210",
	"219", "220", "225", "228", "237", "246",
	"247", "248", "27", "34", "345", "346",
	"347", "348", "35", "356", "37", "38",
	"39", "456", "457", "46", "47", "48",
	"50", "51", "52", "53", "54", "56",
	"A2", "AELA", "ALIF", "ALLO", "ALTERNATIVE", "ANGER",
	"ANJI", "ANSHE", "APOSTROFOS", "ARISTERA", "ASHGAB", "ASSYRIAN",
	"AW", "AXE", "AYB", "AZU", "BACKSLANTED", "BAMBOO",
	"BANK", "BAT", "BATH", "BAYANNA", "BEAM", "BEAVER",
	"BEHIND", "BEN", "BILABIAL", "BLACKLETTER", "BOLT", "BORAX",
	"BOWL", "BREAK", "BREATH", "BRICK", "BROWN", "BUBBLES",
	"BUKY", "BUS", "BZHI", "CAA", "CAKE", "CALENDAR",
	"CALL", "CARIK", "CASTLE", "CCHE", "CHASHKA", "CHICK",
	"CHILD", "CHRISTMAS", "CHROA", "CHRONON", "CLIFF", "CLOSE",
	"CLOTH", "CLOTHES", "CM", "COLD", "COMPLETION", "COMPOSITION",
	"COMPUTER", "CONSTANT", "CONSTRUCTION", "CONTAIN", "CONTOUR", "COO",
	"COUNCIL", "COVER", "COVERING", "CREDIT", "CROCUS", "CRYING",
	"CU", "CUBE", "CURRENT", "CUT", "CWA", "CWAA",
	"CWI", "DAHAL", "DANTAJA", "DAYANNA", "DDAHAL", "DDAL",
	"DDAYANNA", "DDO", "DECIMAL", "DEER", "DENE", "DENTAL",
	"DEPARTING", "DESCENDING", "DIM2", "DIRECT", "DIVIDE", "DIVIDED",
	"DJERV", "DJERVI", "DM", "DOBRO", "DRACHMA", "DROP",
	"DRY", "DUL", "DUN", "DWE", "EA", "EB",
	"ELEPHANT", "ENCLOSURE", "ENN", "EPIDAUREAN", "ESASA", "ETERNITY",
	"EURO", "EV", "EVIL", "EW", "EXO", "EYELASHES",
	"FACTOR", "FANEROSIS", "FAX", "FEED", "FENG", "FERMATA",
	"FIFTH", "FIFTHS", "FINGERED", "FLEURON", "FLORAL", "FLY",
	"FLYING", "FOM", "FOO", "FOREHEAD", "FORMEE", "FRITU",
	"FROG", "FUNCTION", "GATHERING", "GAYANNA", "GAYANUKITTA", "GBA",
	"GBU", "GEAR", "GERESH", "GESHTIN", "GGE", "GHHA",
	"GHOST", "GIM", "GJE", "GLAGOLI", "GOAT", "GRACE",
	"GRASP", "GSUM", "GUM", "HALANTA", "HAN", "HARKLEAN",
	"HATAF", "HBASA", "HEADSTROKE", "HERMIONIAN", "HERU", "HEXAGON",
	"HLI", "HNA", "HOLAM", "HON", "HUMAN", "HUNDREDS",
	"HWE", "IB", "IC", "ICON", "IH", "INCREASE",
	"INFORMATION", "ING", "INI", "INSERTION", "INTERLINEAR", "INVISIBLE",
	"IO", "IQ", "ISH", "ISON", "IT", "IY",
	"JAYANNA", "JEGOGAN", "JEH", "JONA", "JOY", "KA2",
	"KAD5", "KAKO", "KAPYEOUNMIEUM", "KAPYEOUNPHIEUPH", "KARO", "KATHAKA",
	"KAY", "KEE", "KEH", "KETTI", "KHE", "KHYIL",
	"KIN", "KKA", "KNUCKLES", "KOI", "KORONIS", "KRATIMA",
	"KUOP", "KW", "KWA", "KXA", "KYA", "LAAM",
	"LAKH", "LAP", "LAST", "LAZY", "LEADER", "LEATHER",
	"LEERAEWA", "LET", "LETTERS", "LH", "LIMMU", "LINES",
	"LISH", "LJUDIJE", "LOVE", "LUH", "LUL", "LWA",
	"LY", "MAA", "MACHINE", "MAEM", "MAEMBA", "MANDAILING",
	"MAPIQ", "MASK", "MB", "MBI", "MBIT", "MBO",
	"MBOO", "MBU", "MEDIEVAL", "MEE", "MEEEE", "MEGA",
	"MES", "MEUT", "MILITARY", "MINIMA", "MIT", "MNAS",
	"MONEY", "MONOGRAPH", "MONTH", "MOO", "MOOD", "MOUND",
	"MRACHNAYA", "MULTIMAP", "MULTISET", "MUURDHAJA", "MWAA", "MWE",
	"NAH", "NASALIZATION", "NASHI", "NATURAL", "NDAP", "NDEE",
	"NDI", "NDO", "NEE", "NEN", "NEWLINE", "NGGE",
	"NGGEN", "NGGO", "NGGOO", "NGGU", "NGOM", "NIM",
	"NIN", "NJAEM", "NJU", "NOO", "NRA", "NSHA",
	"NSHUT", "NTEE", "NUNG", "NV", "NWAA", "NYE",
	"NYET", "NYU", "NZA", "OFF", "OFFICE", "OLDER",
	"ONU", "OP", "OPPOSITION", "OQ", "OUTER", "OVERLAID",
	"OVERLAP", "OXEIA", "OY", "PAN", "PARAGRAPHOS", "PARAKALESMA",
	"PARAKLITIKI", "PART", "PARTY", "PAW", "PEACE", "PEDAL",
	"PEPET", "PERFECTUM", "PERPENDICULAR", "PEUX", "PHE", "PICTURE",
	"PING", "PIWR", "PLACEHOLDER", "PODCHASHIE", "POKOJI", "POLISH",
	"POMMEE", "POP", "POUTING", "PREGNANT", "PRISHTHAMATRA", "PTHAHA",
	"PUAE", "PURPLE", "PUSHPIN", "PUT", "PWAA", "PWE",
	"QAA", "QAAF", "QOF", "QOO", "QUO", "QUU",
	"RACING", "RAP", "RATHA", "RAY", "REPEATED", "REUX",
	"RISH", "RITSI", "ROCK", "ROG", "ROSETTE", "RREH",
	"RUNNING", "SAFETY", "SAM", "SAT", "SAW", "SAYANNA",
	"SCHEMA", "SCHOOL", "SEAL", "SEGMENT", "SEGOL", "SEMI",
	"SEMIBREVIS", "SEMICIRCULAR", "SEMIMINIMA", "SEUX", "SHCHA", "SHEEP",
	"SHESH", "SHIELD", "SHIP", "SHOO", "SHOQ", "SHTA",
	"SHWA", "SIDED", "SILK", "SIMA", "SIXTH", "SKLIRON",
	"SKULL", "SLEEPING", "SLOVO", "SNOUT", "SNOW", "SNOWFLAKE",
	"SNOWMAN", "SOT", "SOURCE", "SPACING", "SPHERICAL", "SPOON",
	"SSANGIEUNG", "SSANGRIEUL", "SSI", "SSO", "SSU", "ST",
	"STACCATO", "STEP", "STIGMA", "STOCK", "STONE", "STOPITSA",
	"STRANNO", "STRIKE", "STROKES", "STUCK", "SUA", "SUBLINEAR",
	"SULFUR", "SUPRALINEAR", "SURFACE", "SUSPENSION", "SV", "SWA",
	"SWAA", "SYMBOLS", "SYNAGMA", "TAALUJA", "TABLE", "TAE",
	"TARGET", "TAV", "TEARS", "TENT", "TENTH", "TESSERA",
	"TETARTOS", "THII", "THOO", "THOUGHT", "THREAD", "THU",
	"THUNDER", "THWA", "THWAA", "TIGHT", "TIL", "TIME",
	"TLA", "TLE", "TLHA", "TLI", "TLO", "TLU",
	"TOUCH", "TRA", "TRAIN", "TRANSPOSITION", "TREND", "TRUCK",
	"TRUE", "TSADI", "TSATA", "TT", "TTHAA", "TTO",
	"TVRIDO", "TWA", "TWAA", "TWENTIETH", "UH", "UKU",
	"UPTURN", "UUE", "VAREIA", "VEDE", "VERSE", "VEW",
	"VY", "WAE", "WAU", "WAVES", "WAVING", "WEDGE",
	"WEO", "WHEAT", "WHEELCHAIR", "WHOLE", "WON", "WOOD",
	"WORK", "WRINKLES", "WUE", "XEH", "XW", "YAGH",
	"YAJ", "YAK", "YATI", "YAZH", "YESTU", "YIT",
	"YIWN", "YUQ", "YWA", "YWAA", "YY", "ZEMLJA",
	"ZHI", "ZHIVETE", "ZHO", "ZHU", "ZQAPHA", "ZU5",
	"003", "020", "021", "025", "030", "051",
	"062", "080", "092", "100", "101", "103",
	"104", "105", "106", "107", "108", "109",
	"110", "111", "112", "113", "114", "115",
	"116", "117", "118", "119", "120", "121",
	"122", "1234", "12345", "12346", "1235", "12356",
	"1236", "1245", "12456", "1246", "1256", "129",
	"131", "132", "133", "1345", "13456", "1346",
	"1356", "1358", "139", "140", "141", "143",
	"144", "1456", "149", "150", "151", "152",
	"153", "154", "155", "159", "160", "161",
	"162", "163", "164", "165", "166", "169",
	"170", "171", "172", "173", "174", "175",
	"176", "177", "179", "180", "181", "182",
	"183", "184", "185", "186", "187", "188",
	"189", "190", "191", "192", "193", "194",
	"195", "196", "197", "198", "199", "200",
	"201", "202", "203", "204", "205", "206",
	"207", "208", "209", "211", "212", "213",
	"214", "215", "216", "217", "218", "22",
	"221", "222", "223", "224", "226", "227",
	"229", "230", "231", "232", "233", "2345",
	"23456", "2346", "2356", "239", "240", "241",
	"242", "243", "244", "2456", "249", "250",
	"251", "252", "253", "254", "255", "257",
	"258", "265", "266", "267", "268", "278",
	"28", "29", "30", "32", "343", "3456",
	"357", "358", "367", "368", "378", "383",
	"384", "390", "40", "42", "43", "441",
	"450", "458", "467", "468", "470", "478",
	"483", "49", "490", "492", "493", "495",
	"4E09", "4E8C", "550", "567", "568", "57",
	"578", "58", "608", "6253", "636", "668",
	"67", "678", "68", "724", "749", "78",
	"A001", "A002", "A003", "A004", "A005", "A006",
	"A007", "A008", "A009", "A010", "A011", "A012",
	"A013", "A014", "A015", "A016", "A017", "A018",
	"A019", "A020", "A021", "A022", "A023", "A024",
	"A025", "A026", "A027", "A028", "A029", "A030",
	"A031", "A032", "A033", "A034", "A035", "A036",
	"A037", "A038", "A039", "A040", "A041", "A042",
	"A043", "A044", "A045", "A045A", "A046", "A047",
	"A048", "A049", "A050", "A051", "A052", "A053",
	"A054", "A055", "A056", "A057", "A058", "A059",
	"A060", "A061", "A062", "A063", "A064", "A065",
	"A066", "A067", "A068", "A069", "A070", "A100",
	"A301", "A302", "A303", "A304", "A305", "A306",
	"A307", "A308", "A309A", "A310", "A311", "A312",
	"A314", "A315", "A316", "A317", "A318", "A319",
	"A320", "A321", "A322", "A323", "A324", "A325",
	"A326", "A327", "A328", "A329", "A330", "A331",
	"A333", "A334", "A335", "A336", "A337", "A338",
	"A339", "A340", "A341", "A342", "A343", "A344",
	"A345", "A346", "A347", "A348", "A349", "A350",
	"A351", "A352", "A353", "A354", "A355", "A356",
	"A357", "A358", "A359", "A360", "A361", "A362",
	"A363", "A364", "A365", "A366", "A367", "A368",
	"A369", "A370", "A371", "A400", "A401", "A402",
	"A403", "A404", "A405", "A406", "A407", "A408",
	"A409", "A410", "A411", "A412", "A413", "A414",
	"A415", "A416", "A417", "A418", "A501", "A502",
	"A503", "A504", "A505", "A506", "A508", "A509",
	"A510", "A511", "A512", "A513", "A515", "A516",
	"A520", "A521", "A523", "A524", "A525", "A526",
	"A527", "A528", "A529", "A530", "AAI", "AAN",
	"AAY", "ACADEMY", "ACCOUNT", "ACKNOWLEDGE", "ACTIVATE", "ACTUALLY",
	"ADULT", "AEB", "AEDA", "AEE", "AEG", "AEK",
	"AESC", "AET", "AEY", "AKARA", "AKHMIMIC", "ALAF",
	"ALAPH", "ALEMBIC", "ALEUT", "ALFA", "ALIEN", "ALKALI",
	"ALLAAH", "ALLI", "ALLIANCE", "ALVEOLAR", "AMB", "ANCHOR",
	"ANCORA", "ANGLICANA", "ANTARGOMUKHA", "ANTENNA", "ANTIMONIATE", "ANTIRESTRICTION",
	"AP", "APESO", "APLOUN", "APODERMA", "APOSTROFOI", "APPLE",
	"ARAD", "ARCH", "ARDHAVISARGA", "ARGI", "ARGOSYNTHETON", "ARPEGGIATO",
	"ARTS", "ASCENDING", "ASHES", "ASPIRATION", "ASYMPTOTICALLY", "ATHAPASCAN",
	"ATIU", "AUE", "AURAMAZDAA", "AUTOMOBILE", "AWX", "AX",
	"AYAH", "AYN", "AZ", "B001", "B002", "B003",
	"B004", "B005", "B006", "B007", "B008", "B009",
	"BADGER", "BALUDA", "BANDAGE", "BASELINE", "BASHKIR", "BATHTUB",
	"BATTERY", "BBI", "BBO", "BBU", "BBUT", "BCAD",
	"BEAR", "BEAT", "BEER", "BEETLE", "BENZENE", "BERBER",
	"BEVERAGE", "BHETH", "BHO", "BICYCLIST", "BINARY", "BINDI",
	"BINDING", "BINOCULAR", "BIT", "BITING", "BJARKAN", "BLADE",
	"BLANK", "BLENDED", "BLINK", "BLOOD", "BLOSSOM", "BLOWING",
	"BOAR", "BOAT", "BODY", "BOHAIRIC", "BOO", "BOOKMARK",
	"BOOMERANG", "BOOT", "BOTH", "BOUQUET", "BRA", "BRDA",
	"BREAD", "BREVIS", "BRIGHTNESS", "BROAD", "BUILDINGS", "BULLHORN",
	"BWA", "BWEE", "BWI", "BYELORUSSIAN", "BZUNG", "CADUCEUS",
	"CAKRA", "CALYA", "CAMEL", "CANCEL", "CANNON", "CARPENTRY",
	"CART", "CAUDATE", "CAULDRON", "CAYANNA", "CAYN", "CC",
	"CD", "CECAK", "CEE", "CENT", "CENTRELINE", "CER",
	"CH", "CHAA", "CHAIR", "CHAT", "CHEH", "CHELYUSTKA",
	"CHEVRON", "CHOREVMA", "CHRONOU", "CHURCH", "CIP", "CIRCLING",
	"CIRCUIT", "CITY", "CITYSCAPE", "CLINKING", "COAT", "CON",
	"CONGRATULATION", "CONJOINING", "CONSECUTIVE", "CONVERGING", "COOKIE", "COPRODUCT",
	"COPYRIGHT", "CREAM", "CRICKET", "CROSSBAR", "CROSSBONES", "CROSSHATCH",
	"CROWN", "CULTIVATION", "CUOP", "CWE", "CWII", "CWO",
	"CWOO", "CY", "CYA", "CYP", "CYT", "DAA",
	"DAALI", "DAHYAAUSH", "DALATH", "DALDA", "DAMP", "DAR",
	"DARA3", "DARK", "DARKENING", "DAT", "DATE", "DB",
	"DCHE", "DDAA", "DDDHA", "DDE", "DDHAA", "DDHO",
	"DDI", "DDU", "DDUR", "DEATH", "DECORATION", "DECREASE",
	"DEI", "DELETE", "DEMESTVENNY", "DENOMINATOR", "DEPARTURE", "DERET",
	"DESERT", "DESKTOP", "DEXIA", "DEYTEROS", "DH", "DHO",
	"DIB", "DIFONIAS", "DIGRAMMOS", "DIRECTIONAL", "DIRECTLY", "DISAPPOINTED",
	"DISIMOU", "DISSOLVE", "DIVINATION", "DIZZY", "DJA", "DOI",
	"DOLLS", "DONG", "DOO", "DOOR", "DOVE", "DRACHMAS",
	"DRAM", "DRESS", "DRINK", "DRIVE", "DROPLET", "DUNG",
	"DV", "DVOECHELNOPOVODNAYA", "DZEE", "DZHE", "DZI", "DZJE",
	"DZO", "DZU", "DZUD", "DZWE", "DZZE", "DZZHE",
	"EAGLE", "EARS", "EARTHLY", "ECS", "ED", "EG",
	"EGG", "EGY", "EHCHA", "EHKA", "EHPA", "EHTA",
	"EHTSA", "EIGHTIETHS", "EIN", "EJ", "ELIFI", "ELY",
	"EMBEDDING", "EMP", "EMPHASIS", "ENCLOSURES", "ENGINE", "ENTER",
	"ENTERPRISE", "EPENTHETIC", "ERASE", "EREN", "ERIS", "ESCAPE",
	"ESHE3", "ESZ", "ETERON", "ETY", "EUROPEAN", "EWE",
	"EYN", "EZS", "FAMILY", "FAN", "FATHER", "FEI",
	"FEMININE", "FIELD", "FILM", "FINANCIAL", "FLAME", "FLATBREAD",
	"FLEXUS", "FLIP", "FLUTE", "FLUTTERING", "FOLLOWING", "FONT",
	"FOOTBALL", "FOOTNOTE", "FORKED", "FORTIETH", "FOUNTAIN", "FOX",
	"FRENCH", "FRETBOARD", "FUE", "FUR", "FUSA", "FWA",
	"FWAA", "FWEE", "FWI", "GAAHLAA", "GAETTA", "GAH",
	"GAMAL", "GAME", "GAPPED", "GARSHUNI", "GATE", "GAY",
	"GBEE", "GBI", "GBO", "GBOO", "GCIG", "GENERAL",
	"GENIKI", "GEOMETRICALLY", "GEP", "GERSHAYIM", "GESTURE", "GGI",
	"GGO", "GGOP", "GGU", "GGUO", "GHAA", "GHAD",
	"GHEUAE", "GHO", "GIBBOUS", "GLISSANDO", "GNYIS", "GORGI",
	"GORTHMIKON", "GOT", "GRAM", "GREGORIAN", "GROUND", "GROUP",
	"GRU", "GUARD", "GUG", "GUL", "GUR7", "GV",
	"GWA", "GWE", "GWEE", "GWI", "GYAS", "GYON",
	"HAGALL", "HANDED", "HANDLE", "HASANTA", "HATE", "HAVE",
	"HEADSTONE", "HEI", "HEN", "HET", "HETA", "HG",
	"HHAA", "HHWA", "HIDET", "HII", "HIN", "HIRIQ",
	"HIT", "HIYO", "HLA", "HMO", "HOCKEY", "HOLE",
	"HOLLOW", "HOLO", "HOMOTHETIC", "HORNS", "HORR", "HOTEL",
	"HTA", "HUGGING", "HUN", "HWAIR", "HXIT", "HXOP",
	"HXUO", "HYA", "HYPHENATION", "HZ", "IAN", "IAUDA",
	"ICHIMATOS", "IDENTIFICATION", "IG", "IJ", "IJE", "IKARA",
	"IL", "ILIMMU", "INHERENT", "INHIBIT", "INNER", "INTERIOR",
	"INTERLACED", "INTERPOLATION", "INTERSECTING", "ISEN", "ISSHAR", "IX",
	"IYEK", "JAA", "JADE", "JAR", "JAW", "JHEH",
	"JIIM", "JJI", "JJIE", "JJO", "JJU", "JJUT",
	"JJY", "JNYA", "JOO", "JWA", "KAAF", "KAB",
	"KABA", "KAD2", "KAH", "KAP", "KAPYEOUNRIEUL", "KAPYEOUNSSANGPIEUP",
	"KASHMIRI", "KAYANNA", "KAZAKH", "KEEPING", "KEMPLI", "KEMPUL",
	"KESH2", "KEUM", "KEUX", "KEYCAP", "KG", "KHAA",
	"KHAI", "KHAKASSIAN", "KHANG", "KHAPH", "KHHA", "KHHO",
	"KHMU", "KINNA", "KIP", "KIT", "KJE", "KLYUCH",
	"KLYUCHENEPOSTOYANNAYA", "KOK", "KON", "KONTEVMA", "KORANIC", "KOTO",
	"KP", "KPE", "KPEE", "KPI", "KPOO", "KPU",
	"KRYUK", "KU4", "KUN", "KVA", "KWEE", "KWII",
	"KWO", "KWOO", "LABIAL", "LABOR", "LAE", "LAKE",
	"LAMP", "LAN", "LANE", "LANES", "LANTANG", "LANTERN",
	"LARGER", "LATERAL", "LATINATE", "LAULA", "LAW", "LAYANNA",
	"LCE", "LEANING", "LEEEE", "LEGETOS", "LEGGED", "LELET",
	"LENIS", "LESH", "LESSER", "LEU", "LHAA", "LHI",
	"LHO", "LID", "LIE", "LINED", "LING", "LINK",
	"LIQUID", "LIRA", "LIS", "LITTER", "LIWN", "LJ",
	"LOCOMOTIVE", "LOGOTYPE", "LOM", "LOOT", "LOWERED", "LS",
	"LUGGAGE", "LV", "LWAA", "LWE", "LWI", "LWII",
	"LWO", "LWOO", "LYR", "LZ", "M001", "M002",
	"M003", "M004", "M005", "M006", "M007", "M008",
	"M009", "M010", "M011", "M012", "M013", "M014",
	"M015", "M016", "M017", "M018", "M019", "M020",
	"M021", "M022", "M023", "M024", "M025", "M026",
	"M027", "M028", "M029", "M030", "M031", "M032",
	"M033", "M034", "M035", "M036", "M037", "M038",
	"M039", "M040", "M041", "M042", "M043", "M044",
	"MADDAH", "MADR", "MAE", "MAESI", "MAGNIFYING", "MAH",
	"MALAKON", "MANDARIN", "MAQ", "MAR", "MARCATO", "MASH2",
	"MAY", "MBANYI", "MBEN", "MBEUM", "MC", "MCHAN",
	"MDUN", "MECHANICAL", "MEEJ", "MEET", "MELON", "MERGE",
	"MERKHA", "MESH", "MESO", "METAL", "MEUN", "MGBA",
	"MHA", "MICROPHONE", "MIDLINE", "MIEE", "MIG", "MIIM",
	"MILLE", "MIRROR", "MLA", "MONOFONIAS", "MONOGRAMMOS", "MOP",
	"MORTAR", "MOTHER", "MOTOR", "MOVE", "MPA", "MUAE",
	"MUAN", "MUCAAD", "MVOP", "MW", "MWEE", "MWII",
	"MWO", "MWOO", "MY", "NA2", "NAASIKYAYA", "NAE",
	"NAKAARA", "NAM", "NAM2", "NANA", "NAQ", "NATIONAL",
	"NAUD", "NAYANNA", "NBIE", "NDAM", "NDOO", "NECK",
	"NEGATED", "NENOE", "NEPTUNE", "NEQUDAA", "NEST", "NEWSPAPER",
	"NGAS", "NGE", "NGEN", "NGGAAM", "NGGEE", "NGGEUAET",
	"NGGI", "NGGUOQ", "NGHA", "NGKA", "NGKUE", "NGKWAEN",
	"NGON", "NGOP", "NGOU", "NIB", "NII", "NJ",
	"NJA", "NJAEMLI", "NJAM", "NJEUX", "NJO", "NJOO",
	"NJUAE", "NJUEQ", "NKAARAE", "NODE", "NORTHERN", "NOTCH",
	"NOTEBOOK", "NOZHKA", "NSHIEE", "NSIEE", "NTAA", "NTOG",
	"NTUU", "NU11", "NUAE", "NUENG", "NULL", "NUT",
	"NUTILLU", "NWE", "NWI", "NWII", "NWO", "NWOO",
	"NY", "NYAA", "NYEE", "NYHA", "NYIN", "NYIP",
	"NYIT", "NYOP", "NZUP", "OAY", "OCTAGON", "OEE",
	"OEK", "OIN", "OKARA", "OKTO", "OLIGON", "OLIVE",
	"OMET", "OMISSION", "ONG", "ONN", "OOE", "OPTICAL",
	"ORDINAL", "ORNATE", "OS", "OSS", "OTU", "OUNCE",
	"OV", "OVERLONG", "OVERRIDE", "OVERSTRUCK", "OYRANISMA", "PAAM",
	"PAGES", "PAKPAK", "PALOCHKA", "PAMADA", "PAMPHYLIAN", "PAMUDPOD",
	"PANGOLAT", "PANTI", "PARA", "PARALLELOGRAM", "PARAPHRASE", "PARTNERSHIP",
	"PASANGAN", "PASSIVE", "PATTY", "PAYANNA", "PAYEROK", "PEDESTRIAN",
	"PELASTON", "PENNANT", "PENTASEME", "PEOPLE", "PEPPER", "PERCUSSIVE",
	"PEREVODKA", "PERNIN", "PERSONAL", "PESH2", "PESO", "PETALLED",
	"PHAA", "PHILIPPINE", "PHRASE", "PHUR", "PIASMA", "PICK",
	"PIE", "PILCROW", "PIN", "PIP", "PIPAEMBA", "PIPAEMGBIEE",
	"PISELEH", "PIT", "PITCHFORK", "PLAGIOS", "PLANCK", "PLANE",
	"PLOPHU", "PLUTA", "PNEUMATA", "POLI", "POLLU", "PORRECTUS",
	"POSSESSION", "POTABLE", "POTATO", "PRECEDE", "PRECEDING", "PREPONDERANCE",
	"PRINT", "PRINTER", "PROLONGED", "PROPELLER", "PROPORTION", "PROTOS",
	"PSIFISTON", "PUE", "PULL", "PUP", "PWEE", "PWII",
	"PWOO", "PYT", "QAI", "QATAN", "QII", "QITSA",
	"QOT", "QUA", "QUE", "QUI", "QUINDICESIMA", "QUOTE",
	"QUV", "QWE", "QWEE", "QWI", "RABBIT", "RACQUET",
	"RADIO", "RAISING", "RAMS", "RANA", "RBASA", "RDO",
	"REACH", "READING", "REALGAR", "RECORD", "RECTANGULAR", "RECTILINEAR",
	"RECYCLED", "REDUPLICATION", "REGIA", "RELAXED", "RELIEVED", "REPLACEMENT",
	"RERENGGAN", "RESOURCE", "RESPONSE", "RESTRICTED", "REVOLVING", "REX",
	"RGYA", "RGYAN", "RGYINGS", "RIEE", "RIKRIK", "RINGS",
	"RIPPLE", "RJE", "RNAM", "RNYING", "ROL", "ROLLER",
	"ROLLING", "ROMANIAN", "ROO", "ROTATIONS", "RRE", "RRO",
	"RULE", "RULER", "RUMAI", "RWA", "RWAA", "RY",
	"SADE", "SAFHA", "SAH", "SALLA", "SALLALLAHOU", "SALTILLO",
	"SAMBA", "SANDAL", "SANSKRIT", "SAP", "SARI", "SATELLITE",
	"SAY", "SCANDICUS", "SCOOTER", "SCOTS", "SEGNO", "SEH",
	"SEISMA", "SELF", "SEMISOFT", "SEMIVOWEL", "SEMKATH", "SESAME",
	"SEXTULA", "SGAB", "SHA6", "SHAA", "SHANG", "SHAPES",
	"SHAPING", "SHAT", "SHELF", "SHET", "SHEUX", "SHIFT",
	"SHIQ", "SHIRT", "SHOG", "SHOP", "SHOPPING", "SHOY",
	"SHRI", "SHRIMP", "SHTAPIC", "SHUR", "SHWAA", "SHWI",
	"SHWII", "SHWO", "SHWOO", "SHY", "SIG", "SIGMOID",
	"SIGNS", "SIK2", "SILA3", "SIMULTANEOUS", "SINDHI", "SINNYIIYHE",
	"SIXTHS", "SIXTIETH", "SIZE", "SJE", "SKATE", "SKI",
	"SLICE", "SLOPING", "SLOW", "SLUR", "SMALLER", "SMASH",
	"SMOKING", "SOAP", "SOCIETY", "SOF", "SOL", "SOLDIER",
	"SOLID", "SOM", "SOROCHYA", "SOU", "SOUTHERN", "SPADE",
	"SPARKLE", "SPEAR", "SPECIAL", "SPEED", "SPIDER", "SPIDERY",
	"SPIRITUS", "SPLAYED", "SQUAT", "SQUIRREL", "SREDNE", "SSANGHIEUH",
	"SSE", "SSUU", "STAMPED", "STANDARD", "STAVROS", "STEAM",
	"STICKING", "STORE", "STRING", "STRONG", "STUDY", "SUBJOINER",
	"SUBSTITUTE", "SUCCEED", "SUCKED", "SUE", "SUHUR", "SUNGLASSES",
	"SUNRISE", "SUPER", "SUPERVISE", "SURANG", "SW", "SWAPPING",
	"SWE", "SWEET", "SWI", "SWII", "SWO", "SWOO",
	"SYMMETRIC", "TAAALAA", "TABULATION", "TAMING", "TANGENT", "TANNED",
	"TAPE", "TARTAR", "TAT", "TAXI", "TAYANNA", "TC",
	"TCHE", "TEAR", "TELEIA", "TELISHA", "TELOUS", "TENNIS",
	"TERMINAL", "TETARTIMORION", "TETRASEME", "TETRASIMOU", "TEUAEN", "TEUAEQ",
	"THEMA", "THEMATISMOS", "THERE", "THERMOMETER", "THETHE", "THONG",
	"TIGHTLY", "TIKHY", "TIRONIAN", "TIT", "TITA", "TIWN",
	"TJE", "TLHE", "TLHI", "TLHO", "TLV", "TOQ",
	"TORCULUS", "TOT", "TOTAL", "TOUCHING", "TOUCHTONE", "TRACK",
	"TRADITIONAL", "TRAM", "TRANSMISSION", "TRAY", "TRESILLO", "TRICOLON",
	"TRIGRAMMOS", "TRISEME", "TRISIMOU", "TRITIMORION", "TROKUTASTI", "TROPICAL",
	"TRUNK", "TSEE", "TSHE", "TSHES", "TSHOOK", "TSSE",
	"TSV", "TSWE", "TTAA", "TTAYANNA", "TTHE", "TTHI",
	"TTI", "TTTA", "TTUDDAAG", "TUK", "TUOT", "TUP",
	"TURBAN", "TWENTIETHS", "TWI", "TWII", "TWOO", "TXWV",
	"TYR", "TZ", "UB", "UBADAMA", "UEX", "UEZ",
	"UKARA", "UNDERLINE", "UNDERTIE", "UNIVERSAL", "UNK", "UNN",
	"UO", "UPWARD", "URANUS", "USED", "UY", "UZ3",
	"VAA", "VAMAGOMUKHA", "VEND", "VEP", "VICTORY", "VIDA",
	"VIDEO", "VIDJ", "VIETNAMESE", "VISIGOTHIC", "VITAE", "VITRIOL",
	"VIYO", "VOICING", "VOO", "VOU", "VUR", "WAITING",
	"WANING", "WAP", "WASALLAM", "WATCH", "WAX", "WAXING",
	"WC", "WEARY", "WEI", "WHALE", "WII", "WINDOW",
	"WINDU", "WINKING", "WOLOSO", "WOOL", "WRENCH", "WRITING",
	"WULU", "WUO", "WV", "XO", "XVA", "XYA",
	"XYE", "YAKH", "YAM", "YAN", "YAP", "YAQ",
	"YAR", "YAWN", "YAY", "YAZ", "YEAR", "YFEN",
	"YHE", "YIE", "YOGH", "YPOKRISIS", "YUDH", "YUJ",
	"YUM", "YUOP", "YUWOQ", "YV", "YWE", "YWI",
	"YWII", "YWO", "YWOO", "ZA7", "ZAA", "ZADERZHKA",
	"ZAKRYTAYA", "ZAQEF", "ZAYN", "ZEMLYA", "ZHWE", "ZIB",
	"ZIDA", "ZIZ2", "ZJE", "ZLA", "ZLAMA", "ZOO",
	"ZOT", "ZUP", "ZUR", "ZY", "ZZE", "ZZI",
	"ZZIET", "ZZO", "ZZU", "001", "002", "004",
	"005", "006", "007", "008", "009", "010",
	"011", "012", "013", "014", "015", "016",
	"017", "018", "019", "022", "023", "024",
	"026", "027", "028", "029", "031", "032",
	"033", "034", "035", "036", "037", "038",
	"039", "040", "041", "042", "043", "044",
	"045", "046", "047", "048", "049", "052",
	"053", "054", "055", "056", "057", "058",
	"059", "060", "061", "063", "064", "065",
	"066", "067", "068", "069", "070", "071",
	"072", "073", "074", "075", "076", "077",
	"078", "082", "083", "084", "085", "086",
	"087", "088", "089", "090", "091", "093",
	"094", "095", "096", "097", "098", "099",
	"123456", "1234567", "12345678", "1234568", "123457", "1234578",
	"123458", "123467", "1234678", "123468", "12347", "123478",
	"12348", "123567", "1235678", "123568", "12357", "123578",
	"12358", "12367", "123678", "12368", "1237", "12378",
	"1238", "124567", "1245678", "124568", "12457", "124578",
	"12458", "12467", "124678", "12468", "1247", "12478",
	"1248", "12567", "125678", "12568", "1257", "12578",
	"1258", "1267", "12678", "1268", "1278", "134567",
	"1345678", "134568", "13457", "134578", "13458", "13467",
	"134678", "13468", "1347", "13478", "1348", "13567",
	"135678", "13568", "1357", "13578", "1367", "13678",
	"1368", "1378", "14567", "145678", "14568", "1457",
	"14578", "1458", "1467", "14678", "1468", "1478",
	"1567", "15678", "1568", "1578", "1678", "234567",
	"2345678", "234568", "23457", "234578", "23458", "23467",
	"234678", "23468", "2347", "23478", "2348", "23567",
	"235678", "23568", "2357", "23578", "2358", "2367",
	"23678", "2368", "2378", "24567", "245678", "24568",
	"2457", "24578", "2458", "2467", "24678", "2468",
	"2478", "2567", "25678", "2568", "2578", "259",
	"260", "261", "262", "263", "264", "2678",
	"269", "270", "271", "272", "273", "274",
	"275", "276", "277", "279", "280", "281",
	"282", "283", "284", "285", "286", "287",
	"288", "289", "290", "291", "292", "293",
	"294", "295", "296", "297", "298", "299",
	"300", "301", "302", "303", "304", "305",
	"306", "307", "308", "309", "31", "310",
	"311", "312", "313", "314", "315", "316",
	"317", "318", "319", "320", "321", "322",
	"323", "324", "325", "326", "327", "328",
	"329", "33", "330", "331", "332", "333",
	"334", "335", "336", "337", "338", "339",
	"340", "341", "342", "344", "34567", "345678",
	"34568", "3457", "34578", "3458", "3467", "34678",
	"3468", "3478", "349", "350", "351", "352",
	"353", "354", "355", "3567", "35678", "3568",
	"3578", "359", "360", "361", "362", "363",
	"364", "365", "366", "3678", "369", "370",
	"371", "372", "373", "374", "375", "376",
	"377", "379", "380", "381", "382", "385",
	"386", "387", "388", "389", "391", "392",
	"393", "394", "395", "396", "397", "398",
	"399", "400", "401", "402", "403", "404",
	"405", "406", "407", "408", "409", "41",
	"410", "411", "412", "413", "414", "415",
	"416", "417", "418", "419", "420", "421",
	"422", "423", "424", "425", "426", "427",
	"428", "429", "430", "431", "432", "433",
	"434", "435", "436", "437", "438", "439",
	"44", "440", "442", "443", "444", "445",
	"446", "447", "448", "451", "452", "453",
	"454", "455", "4567", "45678", "4568", "4578",
	"459", "460", "461", "462", "463", "464",
	"465", "466", "4678", "469", "471", "472",
	"473", "474", "475", "476", "477", "479",
	"480", "481", "482", "484", "485", "486",
	"487", "488", "489", "491", "494", "496",
	"497", "498", "499", "4E00", "4E2D", "4EA4",
	"500", "501", "502", "503", "504", "505",
	"506", "507", "508", "509", "510", "511",
	"512", "513", "514", "515", "516", "517",
	"518", "518D", "519", "520", "521", "521D",
	"522", "523", "524", "524D", "525", "526",
	"527", "5272", "528", "529", "52DD", "530",
	"531", "532", "533", "534", "535", "536",
	"537", "538", "539", "53CC", "53F3", "540",
	"5408", "541", "542", "543", "5439", "544",
	"545", "546", "547", "548", "549", "55",
	"551", "552", "553", "554", "555", "556",
	"557", "558", "559", "55B6", "560", "561",
	"562", "563", "564", "565", "566", "5678",
	"569", "570", "571", "572", "573", "574",
	"575", "576", "577", "579", "580", "581",
	"582", "583", "584", "585", "586", "587",
	"588", "589", "58F0", "59", "590", "591",
	"591A", "592", "5929", "593", "594", "595",
	"596", "597", "598", "599", "5B57", "5B89",
	"5DE6", "5F8C", "60", "600", "601", "602",
	"603", "604", "605", "606", "607", "609",
	"61", "610", "611", "612", "613", "614",
	"615", "616", "618", "619", "62", "620",
	"621", "622", "623", "624", "624B", "625",
	"626", "627", "628", "629", "6295", "63",
	"630", "6307", "631", "632", "633", "634",
	"635", "6355", "637", "638", "639", "64",
	"640", "641", "642", "643", "644", "645",
	"646", "647", "649", "65", "650", "651",
	"652", "653", "654", "655", "6557", "656",
	"657", "658", "659", "6599", "65B0", "66",
	"660", "661", "662", "6620", "663", "664",
	"665", "666", "667", "669", "670", "6708",
	"6709", "671", "672", "672C", "673", "674",
	"675", "676", "677", "679", "680", "681",
	"682", "683", "684", "685", "686", "687",
	"688", "689", "69", "690", "691", "692",
	"693", "694", "695", "696", "697", "698",
	"699", "6E80", "6F14", "70", "700", "701",
	"702", "703", "704", "705", "706", "707",
	"708", "709", "70B9", "71", "710", "711",
	"712", "7121", "713", "714", "715", "716",
	"717", "718", "719", "72", "720", "721",
	"722", "723", "725", "726", "727", "728",
	"729", "73", "730", "731", "732", "733",
	"734", "735", "736", "737", "738", "739",
	"74", "740", "741", "742", "743", "744",
	"745", "746", "747", "748", "75", "750",
	"751", "751F", "752", "753", "7533", "754",
	"755", "756", "757", "758", "759", "76",
	"760", "761", "762", "763", "764", "765",
	"766", "767", "768", "76D7", "77", "79",
	"7981", "7A7A", "7D42", "80", "81", "82",
	"83", "84", "85", "86", "87", "88",
	"89", "89E3", "8CA9", "8D70", "90", "904A",
	"91", "914D", "92", "93", "94", "95",
	"96", "97", "98", "99", "A005A", "A006A",
	"A006B", "A010A", "A014A", "A017A", "A026A", "A028B",
	"A032A", "A039A", "A040A", "A041A", "A042A", "A043A",
	"A046A", "A046B", "A066A", "A066B", "A066C", "A071",
	"A072", "A073", "A074", "A075", "A076", "A077",
	"A078", "A079", "A080", "A081", "A082", "A083",
	"A084", "A085", "A086", "A087", "A088", "A089",
	"A090", "A091", "A092", "A093", "A094", "A095",
	"A096", "A097", "A097A", "A098", "A098A", "A099",
	"A100A", "A101", "A101A", "A102", "A102A", "A103",
	"A104", "A104A", "A104B", "A104C", "A105", "A105A",
	"A105B", "A106", "A107", "A107A", "A107B", "A107C",
	"A108", "A109", "A110", "A110A", "A110B", "A111",
	"A112", "A113", "A114", "A115", "A115A", "A116",
	"A117", "A118", "A119", "A120", "A120B", "A121",
	"A122", "A123", "A124", "A125", "A125A", "A126",
	"A127", "A128", "A129", "A130", "A131", "A131C",
	"A132", "A133", "A134", "A135", "A135A", "A136",
	"A137", "A138", "A139", "A140", "A141", "A142",
	"A143", "A144", "A145", "A146", "A147", "A148",
	"A149", "A150", "A151", "A152", "A153", "A154",
	"A155", "A156", "A157", "A158", "A159", "A160",
	"A161", "A162", "A163", "A164", "A165", "A166",
	"A167", "A168", "A169", "A170", "A171", "A172",
	"A173", "A174", "A175", "A176", "A177", "A178",
	"A179", "A180", "A181", "A182", "A183", "A184",
	"A185", "A186", "A187", "A188", "A189", "A190",
	"A191", "A192", "A193", "A194", "A195", "A196",
	"A197", "A198", "A199", "A200", "A201", "A202",
	"A202A", "A202B", "A203", "A204", "A205", "A206",
	"A207", "A207A", "A208", "A209", "A209A", "A210",
	"A211", "A212", "A213", "A214", "A215", "A215A",
	"A216", "A216A", "A217", "A218", "A219", "A220",
	"A221", "A222", "A223", "A224", "A225", "A226",
	"A227", "A227A", "A228", "A229", "A230", "A231",
	"A232", "A233", "A234", "A235", "A236", "A237",
	"A238", "A239", "A240", "A241", "A242", "A243",
	"A244", "A245", "A246", "A247", "A248", "A249",
	"A250", "A251", "A252", "A253", "A254", "A255",
	"A256", "A257", "A258", "A259", "A260", "A261",
	"A262", "A263", "A264", "A265", "A266", "A267",
	"A267A", "A268", "A269", "A270", "A271", "A272",
	"A273", "A274", "A275", "A276", "A277", "A278",
	"A279", "A280", "A281", "A282", "A283", "A284",
	"A285", "A286", "A287", "A288", "A289", "A289A",
	"A290", "A291", "A292", "A293", "A294", "A294A",
	"A295", "A296", "A297", "A298", "A299", "A299A",
	"A3", "A300", "A309", "A309B", "A309C", "A313",
	"A313A", "A313B", "A313C", "A329A", "A332", "A332A",
	"A332B", "A332C", "A336A", "A336B", "A336C", "A359A",
	"A364A", "A368A", "A371A", "A372", "A373", "A374",
	"A375", "A376", "A377", "A378", "A379", "A380",
	"A381", "A381A", "A382", "A383", "A383A", "A384",
	"A385", "A386", "A386A", "A387", "A388", "A389",
	"A390", "A391", "A392", "A393", "A394", "A395",
	"A396", "A397", "A398", "A399", "A410A", "A419",
	"A420", "A421", "A422", "A423", "A424", "A425",
	"A426", "A427", "A428", "A429", "A430", "A431",
	"A432", "A433", "A434", "A435", "A436", "A437",
	"A438", "A439", "A440", "A441", "A442", "A443",
	"A444", "A445", "A446", "A447", "A448", "A449",
	"A450", "A450A", "A451", "A452", "A453", "A454",
	"A455", "A456", "A457", "A457A", "A458", "A459",
	"A460", "A461", "A462", "A463", "A464", "A465",
	"A466", "A467", "A468", "A469", "A470", "A471",
	"A472", "A473", "A474", "A475", "A476", "A477",
	"A478", "A479", "A480", "A481", "A482", "A483",
	"A484", "A485", "A486", "A487", "A488", "A489",
	"A490", "A491", "A492", "A493", "A494", "A495",
	"A496", "A497", "A507", "A514", "A517", "A518",
	"A519", "A522", "A531", "A532", "A534", "A535",
	"A536", "A537", "A538", "A539", "A540", "A541",
	"A542", "A545", "A547", "A548", "A549", "A550",
	"A551", "A552", "A553", "A554", "A555", "A556",
	"A557", "A559", "A563", "A564", "A565", "A566",
	"A568", "A569", "A570", "A571", "A572", "A573",
	"A574", "A575", "A576", "A577", "A578", "A579",
	"A580", "A581", "A582", "A583", "A584", "A585",
	"A586", "A587", "A588", "A589", "A591", "A592",
	"A594", "A595", "A596", "A598", "A600", "A601",
	"A602", "A603", "A604", "A606", "A608", "A609",
	"A610", "A611", "A612", "A613", "A614", "A615",
	"A616", "A617", "A618", "A619", "A620", "A621",
	"A622", "A623", "A624", "A626", "A627", "A628",
	"A629", "A634", "A637", "A638", "A640", "A642",
	"A643", "A644", "A645", "A646", "A648", "A649",
	"A651", "A652", "A653", "A654", "A655", "A656",
	"A657", "A658", "A659", "A660", "A661", "A662",
	"A663", "A664", "A701", "A702", "A703", "A704",
	"A705", "A706", "A707", "A708", "A710", "A711",
	"A712", "A713", "A714", "A715", "A717", "A726",
	"A732", "A800", "A801", "A802", "A803", "A804",
	"A805", "A806", "A807", "AA001", "AA002", "AA003",
	"AA004", "AA005", "AA006", "AA007", "AA007A", "AA007B",
	"AA008", "AA009", "AA010", "AA011", "AA012", "AA013",
	"AA014", "AA015", "AA016", "AA017", "AA018", "AA019",
	"AA020", "AA021", "AA022", "AA023", "AA024", "AA025",
	"AA026", "AA027", "AA028", "AA029", "AA030", "AA031",
	"AA032", "AABAAFILI", "AAJ", "AAK", "AALIH", "AAM",
	"AANG", "AAO", "AARU", "AAU", "AAW", "AAYANNA",
	"AAYIN", "AAZHAAKKU", "AB001", "AB002", "AB003", "AB004",
	"AB005", "AB006", "AB007", "AB008", "AB009", "AB010",
	"AB011", "AB013", "AB016", "AB017", "AB020", "AB021",
	"AB021F", "AB021M", "AB022", "AB022F", "AB022M", "AB023",
	"AB023M", "AB024", "AB026", "AB027", "AB028", "AB029",
	"AB030", "AB031", "AB034", "AB037", "AB038", "AB039",
	"AB040", "AB041", "AB044", "AB045", "AB046", "AB047",
	"AB048", "AB049", "AB050", "AB051", "AB053", "AB054",
	"AB055", "AB056", "AB057", "AB058", "AB059", "AB060",
	"AB061", "AB065", "AB066", "AB067", "AB069", "AB070",
	"AB073", "AB074", "AB076", "AB077", "AB078", "AB079",
	"AB080", "AB081", "AB082", "AB085", "AB086", "AB087",
	"AB118", "AB120", "AB122", "AB123", "AB131A", "AB131B",
	"AB164", "AB171", "AB180", "AB188", "AB191", "ABACUS",
	"ABAFILI", "ABB", "ABUNDANCE", "ABYSMAL", "ACCEPT", "ACCOMMODATION",
	"ACCORDION", "ACCUMULATION", "ADAK", "ADDAK", "ADDRESS", "ADDRESSED",
	"ADHESIVE", "ADI", "ADMETOS", "ADMISSION", "ADO", "ADVANCE",
	"ADVANTAGE", "AED", "AEEYANNA", "AEL", "AENG", "AER",
	"AERIAL", "AES", "AESCULAPIUS", "AEYANNA", "AFFRICATION", "AFGHANI",
	"AFOREMENTIONED", "AFRICA", "AFSAAQ", "AFTER", "AGAIN", "AGAINST",
	"AGE", "AGGRAVATED", "AGGRAVATION", "AGUNG", "AHAD", "AHAGGAR",
	"AHANG", "AHH", "AHSA", "AHSDA", "AID", "AIHVUS",
	"AIKARA", "AILM", "AINN", "AINU", "AIVA", "AIVILIK",
	"AIYANNA", "AKAT", "AKBAR", "AKSA", "AKTIESELSKAB", "ALAN",
	"ALARM", "ALAYHAA", "ALAYHIM", "ALAYHIMAA", "ALAYNAA", "ALF",
	"ALGIZ", "ALIFU", "ALIGNED", "ALLAH", "ALLAHOU", "ALPA",
	"ALPAPRANA", "ALT", "ALTERNATION", "ALUM", "AMALGAM", "AMALGAMATION",
	"AMBA", "AMBULANCE", "AMERICAN", "AMERICAS", "AMMONIAC", "AMOUNT",
	"AMPHORA", "AMPS", "AMULET", "ANAP", "ANATOMICAL", "ANATRICHISMA",
	"ANDAP", "ANGED", "ANGEL", "ANGKA", "ANGKHANKHU", "ANGRY",
	"ANGSTROM", "ANGUISHED", "ANGULAR", "ANH", "ANHAA", "ANHU",
	"ANHUM", "ANHUMAA", "ANHUNNA", "ANIMAL", "ANKH", "ANN",
	"ANNAAU", "ANNUITY", "ANPEA", "ANSUZ", "ANT", "ANTIFONIA",
	"ANTIKENOKYLISMA", "ANTIKENOMA", "ANUSVARAYA", "AOR", "AOU", "APAATO",
	"APART", "APIN", "APODEXIA", "APOLLON", "APOTHEMA", "APOTHES",
	"APPLICATION", "APPROACH", "APPROACHES", "APRIL", "APUN", "AQUAFORTIS",
	"AQUARIUS", "ARAEAE", "ARDHACANDRA", "ARE", "AREPA", "ARGON",
	"ARGOTERI", "ARIES", "ARKAANU", "ARKAB", "ARLAUG", "ARMOUR",
	"ARMS", "ARMY", "AROURA", "AROUSING", "ARRAY", "ARRIVE",
	"ARRIVING", "ARSENIC", "ARTA", "ARTABE", "ARTICULATED", "ARTIST",
	"ARUHUA", "ASAL2", "ASAT", "ASCENT", "ASCIA", "ASH3",
	"ASH9", "ASIA", "ASPER", "ASPIRATED", "ASSALLAM", "ASSERTION",
	"ASTERISCUS", "ASTERISKS", "ASTERISM", "ASTONISHED", "ASTRAEA", "ASTRONOMICAL",
	"ASYURA", "ASZ", "ATH", "ATHARVAVEDIC", "ATHLETIC", "ATIKRAMA",
	"ATIYA", "ATMAAU", "ATNAH", "ATOM", "ATT", "ATTACHING",
	"ATTENTION", "ATTHACAN", "AUBERGINE", "AUGMENTATION", "AUGUST", "AUNN",
	"AURAMAZDAAHA", "AURIPIGMENT", "AUSTRAL", "AUSTRALIA", "AUTO", "AUTOMATED",
	"AUTUMN", "AUYANNA", "AVAKRAHASANYA", "AVERAGE", "AVOCADO", "AWC",
	"AWE", "AWQ", "AWZ", "AYANNA", "AYER", "AZZA",
	"B005A", "B010", "B011", "B012", "B013", "B014",
	"B015", "B016", "B017", "B018", "B019", "B020",
	"B021", "B022", "B023", "B024", "B025", "B026",
	"B027", "B028", "B029", "B030", "B031", "B032",
	"B033", "B034", "B036", "B037", "B038", "B039",
	"B040", "B041", "B042", "B043", "B044", "B045",
	"B046", "B047", "B048", "B049", "B050", "B051",
	"B052", "B053", "B054", "B055", "B056", "B057",
	"B058", "B059", "B060", "B061", "B062", "B063",
	"B064", "B065", "B066", "B067", "B068", "B069",
	"B070", "B071", "B072", "B073", "B074", "B075",
	"B076", "B077", "B078", "B079", "B080", "B081",
	"B082", "B083", "B085", "B086", "B087", "B089",
	"B090", "B091", "B100", "B102", "B104", "B105",
	"B105F", "B105M", "B106F", "B106M", "B107F", "B107M",
	"B108F", "B108M", "B109F", "B109M", "B120", "B121",
	"B122", "B123", "B125", "B127", "B128", "B130",
	"B131", "B132", "B133", "B135", "B140", "B141",
	"B142", "B145", "B146", "B150", "B151", "B152",
	"B153", "B154", "B155", "B156", "B157", "B158",
	"B159", "B160", "B161", "B162", "B163", "B164",
	"B165", "B166", "B167", "B168", "B169", "B170",
	"B171", "B172", "B173", "B174", "B176", "B177",
	"B178", "B179", "B180", "B181", "B182", "B183",
	"B184", "B185", "B189", "B190", "B191", "B200",
	"B201", "B202", "B203", "B204", "B205", "B206",
	"B207", "B208", "B209", "B210", "B211", "B212",
	"B213", "B214", "B215", "B216", "B217", "B218",
	"B219", "B220", "B221", "B222", "B225", "B226",
	"B227", "B228", "B229", "B230", "B231", "B232",
	"B233", "B234", "B236", "B240", "B241", "B242",
	"B243", "B245", "B246", "B247", "B248", "B249",
	"B250", "B251", "B252", "B253", "B254", "B255",
	"B256", "B257", "B258", "B259", "B305", "BAARERU",
	"BACKSPACE", "BACON", "BACTRIAN", "BADGE", "BADMINTON", "BAG3",
	"BAGA", "BAGEL", "BAGGAGE", "BAGS", "BAGUETTE", "BAH",
	"BAHIRGOMUKHA", "BAHT", "BAIMAI", "BAIRKAN", "BALD", "BALLET",
	"BALLPOINT", "BANANA", "BAND", "BANG", "BANJO", "BANTOC",
	"BAP", "BARA2", "BARBED", "BARBER", "BARIYOOSAN", "BARLEY",
	"BARREKH", "BARRIER", "BASEBALL", "BASH", "BASKET", "BASKETBALL",
	"BATHAMASAT", "BAU", "BAX", "BB", "BBAA", "BBAP",
	"BBAT", "BBAX", "BBEE", "BBEP", "BBEX", "BBIE",
	"BBIEP", "BBIET", "BBIEX", "BBIP", "BBIT", "BBIX",
	"BBOP", "BBOT", "BBOX", "BBUO", "BBUOP", "BBUOX",
	"BBUP", "BBUR", "BBURX", "BBUX", "BBY", "BBYP",
	"BBYT", "BBYX", "BEACH", "BEADS", "BEAN", "BEANS",
	"BEARDED", "BEATING", "BECAUSE", "BED", "BEEHIVE", "BEETA",
	"BEFORE", "BEGINNER", "BEGINNING", "BEITH", "BELGTHOR", "BELLHOP",
	"BENDE", "BENTO", "BEORC", "BEP", "BERKANAN", "BEX",
	"BEYYAL", "BH", "BHAA", "BHAM", "BHATTIPROLU", "BHEE",
	"BHI", "BHOO", "BHU", "BIB", "BIBLE", "BICEPS",
	"BICYCLE", "BICYCLES", "BIDENTAL", "BIE", "BIEP", "BIET",
	"BIEX", "BIKINI", "BILLED", "BILLIARDS", "BILLIONS", "BINOVILE",
	"BIOHAZARD", "BIP", "BIRTHDAY", "BIRU", "BISAH", "BISECTING",
	"BISMILLAH", "BISMUTH", "BISON", "BITCOIN", "BITE", "BITTER",
	"BIX", "BKA", "BLA", "BLOND", "BLOW", "BLOWFISH",
	"BLUEBERRIES", "BOA", "BOMB", "BOOKS", "BOOTS", "BOP",
	"BORUTO", "BORZAYA", "BORZY", "BOT", "BOUNDARY", "BOWING",
	"BOWLING", "BOXING", "BOY", "BOYS", "BQ", "BRACE",
	"BRACKETS", "BRAIN", "BRAKCET", "BRANCHES", "BRANCHING", "BREAKING",
	"BREAKTHROUGH", "BREAST", "BRI", "BRIDE", "BRIEFCASE", "BRIEFS",
	"BRISTLE", "BROCCOLI", "BRONZE", "BROOM", "BSDUS", "BSKA",
	"BSKUR", "BSTAR", "BUCKET", "BUCKLE", "BUFFALO", "BUG",
	"BULB", "BULL", "BULLS", "BULLSEYE", "BUMPY", "BUNG",
	"BUNNY", "BUO", "BUOP", "BUOX", "BUOY", "BUP",
	"BUR2", "BURRITO", "BURX", "BUSINESS", "BUSSYERU", "BUST",
	"BUSTS", "BUTTER", "BUTTERFLY", "BUUMISH", "BUX", "BWE",
	"BXG", "BYP", "BYR", "BYRX", "BYT", "BYX",
	"C001", "C002", "C002A", "C002B", "C002C", "C003",
	"C004", "C005", "C006", "C007", "C008", "C009",
	"C010", "C010A", "C011", "C012", "C013", "C014",
	"C015", "C016", "C017", "C018", "C019", "C020",
	"C021", "C022", "C023", "C024", "CAAI", "CAANG",
	"CABBAGE", "CABINET", "CABLEWAY", "CACTUS", "CADA", "CAESURA",
	"CAH", "CAI", "CAL", "CALC", "CALCULATOR", "CALX",
	"CAMNUC", "CAMPING", "CANCER", "CANDLE", "CANDY", "CANE",
	"CANG", "CANNED", "CANOE", "CAPITULUM", "CAPO", "CAPPED",
	"CAPRICORN", "CAPTIVE", "CAPUT", "CARDS", "CARE", "CAROUSEL",
	"CARP", "CARRIAGE", "CARROT", "CARS", "CARTRIDGE", "CARTWHEEL",
	"CARYSTIAN", "CATAWA", "CAU", "CAUDA", "CAUTION", "CAVE",
	"CAX", "CCA", "CCAA", "CCE", "CCEE", "CCHA",
	"CCHAA", "CCHEE", "CCHHA", "CCHHAA", "CCHHE", "CCHHEE",
	"CCHHI", "CCHHO", "CCHHU", "CCHI", "CCHO", "CCHU",
	"CCI", "CCO", "CCU", "CEALC", "CECEK", "CEDI",
	"CEEB", "CEEV", "CEIRT", "CELEBRATION", "CELSIUS", "CELTIC",
	"CEN", "CENTURIAL", "CEONGCHIEUMCHIEUCH", "CEONGCHIEUMCIEUC", "CEONGCHIEUMSIOS", "CEONGCHIEUMSSANGCIEUC",
	"CEONGCHIEUMSSANGSIOS", "CEP", "CEREK", "CEREMONY", "CERES", "CEVITU",
	"CEX", "CHAD", "CHADA", "CHAINS", "CHAL", "CHAMILI",
	"CHAMILON", "CHAMKO", "CHAN", "CHANG", "CHANGE", "CHAP",
	"CHAPTER", "CHATTAWA", "CHAU", "CHAVIYANI", "CHAX", "CHEEK",
	"CHEEM", "CHEERING", "CHEESE", "CHEIKHAN", "CHEIKHEI", "CHEINAP",
	"CHELNU", "CHEN", "CHEP", "CHEQUERED", "CHERRIES", "CHERRY",
	"CHERY", "CHESTNUT", "CHET", "CHEX", "CHHA", "CHHIM",
	"CHICKEN", "CHIL", "CHILDREN", "CHIM", "CHIME", "CHING",
	"CHINOOK", "CHIPMUNK", "CHIRET", "CHIRON", "CHITUEUMCHIEUCH", "CHITUEUMCIEUC",
	"CHITUEUMSIOS", "CHITUEUMSSANGCIEUC", "CHITUEUMSSANGSIOS", "CHOA", "CHOCOLATE", "CHOE",
	"CHOKE", "CHOP", "CHOPSTICKS", "CHOT", "CHOX", "CHOY",
	"CHRYSANTHEMUM", "CHULA", "CHUO", "CHUOP", "CHUOT", "CHUOX",
	"CHUP", "CHUR", "CHURX", "CHUX", "CHWA", "CHWV",
	"CHY", "CHYP", "CHYR", "CHYRX", "CHYT", "CHYX",
	"CIE", "CIEP", "CIET", "CIEX", "CII", "CINEMA",
	"CINNABAR", "CIRCULATION", "CIRCUS", "CIT", "CITATION", "CIVILIAN",
	"CIX", "CL", "CLAIM", "CLAMSHELL", "CLAPPER", "CLAPPING",
	"CLASSICAL", "CLEAR", "CLEAVER", "CLIMACUS", "CLIMBING", "CLINGING",
	"CLIPBOARD", "CLIVIS", "CLOSENESS", "CLOSET", "CLOSURE", "CLOVER",
	"CLOWN", "CM001", "CM002", "CM004", "CM005", "CM006",
	"CM007", "CM008", "CM009", "CM010", "CM011", "CM012",
	"CM012B", "CM013", "CM015", "CM017", "CM019", "CM021",
	"CM023", "CM024", "CM025", "CM026", "CM027", "CM028",
	"CM029", "CM030", "CM033", "CM034", "CM035", "CM036",
	"CM037", "CM038", "CM039", "CM040", "CM041", "CM044",
	"CM046", "CM047", "CM049", "CM050", "CM051", "CM052",
	"CM053", "CM054", "CM055", "CM056", "CM058", "CM059",
	"CM060", "CM061", "CM062", "CM063", "CM064", "CM066",
	"CM067", "CM068", "CM069", "CM070", "CM071", "CM072",
	"CM073", "CM074", "CM075", "CM075B", "CM076", "CM078",
	"CM079", "CM080", "CM081", "CM082", "CM083", "CM084",
	"CM085", "CM086", "CM087", "CM088", "CM089", "CM090",
	"CM091", "CM092", "CM094", "CM095", "CM096", "CM097",
	"CM098", "CM099", "CM100", "CM101", "CM102", "CM103",
	"CM104", "CM105", "CM107", "CM108", "CM109", "CM110",
	"CM112", "CM114", "CM301", "CM302", "COA", "COASTER",
	"COCKROACH", "COCKTAIL", "COCONUT", "CODA", "COENG", "COFFIN",
	"COIN", "COLL", "COLLISION", "COLOR", "COLUMN", "COMB",
	"COMBINATION", "COMBINED", "COMET", "COMING", "COMMON", "COMPARE",
	"COMPASS", "COMPLEMENT", "COMPLETED", "COMPLIANCE", "COMPRESSION", "COMPUTERS",
	"CONFETTI", "CONFLICT", "CONFOUNDED", "CONFUSED", "CONGRUENT", "CONICAL",
	"CONJUGATE", "CONJUNCTION", "CONSTANCY", "CONTEMPLATION", "CONTENTION", "CONTINUATION",
	"CONTINUING", "CONTINUOUS", "CONTOURED", "CONTRACTION", "CONTRARIETY", "CONVENIENCE",
	"COOKED", "COOKING", "COOL", "COP", "COPY", "COPYLEFT",
	"CORAL", "CORK", "CORNISH", "CORONIS", "CORPORATION", "CORPSE",
	"CORRECT", "CORRESPONDS", "COT", "COUCH", "COUNTERBORE", "COUNTERSINK",
	"COUPLE", "COWBOY", "COX", "CRAB", "CRACKER", "CRAYON",
	"CREATIVE", "CRESCENDO", "CROCODILE", "CROISSANT", "CROIX", "CRUCIFORM",
	"CRUTCH", "CRUZEIRO", "CRYSTAL", "CUAM", "CUCUMBER", "CUO",
	"CUOX", "CUPCAKE", "CUPIDO", "CUR", "CURLED", "CURLING",
	"CURRY", "CURX", "CUSTARD", "CUSTOMER", "CUSTOMS", "CUX",
	"CWEORTH", "CYAW", "CYAY", "CYCLONE", "CYLINDRICITY", "CYPERUS",
	"CYR", "CYRENAIC", "CYRX", "CYX", "D001", "D002",
	"D003", "D004", "D005", "D006", "D007", "D008",
	"D008A", "D009", "D010", "D011", "D012", "D013",
	"D014", "D015", "D016", "D017", "D018", "D019",
	"D020", "D021", "D022", "D023", "D024", "D025",
	"D026", "D027", "D027A", "D028", "D029", "D030",
	"D031", "D031A", "D032", "D033", "D034", "D034A",
	"D035", "D036", "D037", "D038", "D039", "D040",
	"D041", "D042", "D043", "D044", "D045", "D046",
	"D046A", "D047", "D048", "D048A", "D049", "D050",
	"D050A", "D050B", "D050C", "D050D", "D050E", "D050F",
	"D050G", "D050H", "D050I", "D051", "D052", "D052A",
	"D053", "D054", "D054A", "D055", "D056", "D057",
	"D058", "D059", "D060", "D061", "D062", "D063",
	"D064", "D065", "D066", "D067", "D067A", "D067B",
	"D067C", "D067D", "D067E", "D067F", "D067G", "D067H",
	"D2", "DAADHU", "DAASU", "DAEG", "DAENG", "DAG3",
	"DAGALGA", "DAGAZ", "DAGBASINNA", "DAGS", "DAH", "DAI",
	"DAING", "DAIR", "DALAT", "DAM", "DAMARU", "DANCER",
	"DANCING", "DANGO", "DANTAYALAN", "DARA4", "DARGA", "DART",
	"DASEIA", "DATA", "DAVID", "DAVIYANI", "DAWB", "DAX",
	"DD", "DDAP", "DDAT", "DDAX", "DDEE", "DDEP",
	"DDEX", "DDHE", "DDHEE", "DDHI", "DDHU", "DDIE",
	"DDIEP", "DDIEX", "DDIP", "DDIT", "DDIX", "DDOA",
	"DDOP", "DDOT", "DDOX", "DDUO", "DDUOP", "DDUOX",
	"DDUP", "DDURX", "DDUT", "DDUX", "DDWA", "DEAD",
	"DEAF", "DEBIT", "DECAYED", "DECEMBER", "DECIDUOUS", "DECISIVENESS",
	"DECORATIVE", "DECRESCENDO", "DEEL", "DEEPLY", "DEFECTIVENESS", "DEFINITION",
	"DEHI", "DEK", "DEKA", "DELAYED", "DELETION", "DELICIOUS",
	"DELIVERANCE", "DELIVERY", "DELPHIC", "DELT", "DENARIUS", "DENG",
	"DENNEN", "DEP", "DEPARTMENT", "DEPTH", "DERBITSA", "DERELICT",
	"DESI", "DESIGN", "DESK", "DEUNG", "DEVELOPMENT", "DEX",
	"DEYTEROU", "DHAA", "DHAALU", "DHADHE", "DHAL", "DHALATH",
	"DHALETH", "DHAMEDH", "DHARMA", "DHEE", "DHHA", "DHHE",
	"DHHEE", "DHHI", "DHHO", "DHHOO", "DHHU", "DHI",
	"DHII", "DHOO", "DHOU", "DHU", "DIAERESIZED", "DIAMETER",
	"DIARGON", "DIATONON", "DIEP", "DIESEL", "DIEX", "DIFAT",
	"DIFFERENCE", "DIFFICULTIES", "DIFFICULTY", "DIFTOGGOS", "DIGITS", "DIGRAMMA",
	"DIL", "DIMENSION", "DIMENSIONAL", "DIMIDIA", "DIMINISHMENT", "DIMMING",
	"DING", "DIP", "DIPLOUN", "DIPPER", "DIPTE", "DIRGA",
	"DISABLED", "DISCONTINUOUS", "DISGUISED", "DISPERSION", "DISPUTED", "DISTILL",
	"DISTINGUISH", "DISTORTION", "DIT", "DITTO", "DIVERGENCE", "DIVIDERS",
	"DIVIDES", "DIVING", "DIVORCE", "DIX", "DIYA", "DJ",
	"DL", "DLE", "DLEE", "DLHA", "DLHYA", "DLI",
	"DLO", "DLU", "DNA", "DOA", "DODO", "DOING",
	"DOIT", "DOKMAI", "DOLIUM", "DOLPHIN", "DOMAIN", "DOONG",
	"DOP", "DOROME", "DORU", "DOUBT", "DOUGHNUT", "DOWNSCALING",
	"DOX", "DRAFTING", "DRIL", "DROMEDARY", "DROOLING", "DROPS",
	"DRUMSTICKS", "DUB2", "DUCK", "DUDA", "DUGUD", "DUH",
	"DUM", "DUMPLING", "DUN4", "DUO", "DUOX", "DUP",
	"DUPONDIUS", "DUR", "DUR2", "DURATION", "DURX", "DUSHENNA",
	"DUSK", "DUT", "DUTIES", "DUX", "DVA", "DVD",
	"DVISVARA", "DVOECHELNOKRYZHEVAYA", "DVOETOCHIE", "DVUMYA", "DWA", "DWO",
	"DYAN", "DZAA", "DZAY", "DZHOI", "DZITA", "DZYAY",
	"DZYI", "DZZA", "E001", "E002", "E003", "E004",
	"E005", "E006", "E007", "E008", "E008A", "E009",
	"E009A", "E010", "E011", "E012", "E013", "E014",
	"E015", "E016", "E016A", "E017", "E017A", "E018",
	"E019", "E020", "E020A", "E021", "E022", "E023",
	"E024", "E025", "E026", "E027", "E028", "E028A",
	"E029", "E030", "E031", "E032", "E033", "E034",
	"E034A", "E036", "E037", "E038", "EABHADH", "EADHADH",
	"EAMHANCHOLL", "EARLY", "EASE", "EBEFILI", "EDD", "EDIN",
	"EDITORIAL", "EEBEEFILI", "EEH", "EEKAA", "EEN", "EEYANNA",
	"EGGS", "EGIR", "EHWAZ", "EIGHTIETH", "EIS", "EJECT",
	"EKAM", "EKARA", "EKS", "EKSTREPTON", "ELAFRON", "ELECTRICAL",
	"ELECTRONICS", "ELEVATOR", "ELEVATUS", "ELF", "ELIF", "ELT",
	"EMBELLISHMENT", "EMBLEM", "EMBROIDERY", "EMPHATIC", "ENARMONIOS", "ENARXIS",
	"ENCOUNTERS", "ENDEAVOUR", "ENDED", "ENDEP", "ENDOFONON", "ENLARGEMENT",
	"ENNI", "ENOS", "ENQUIRY", "ENTERING", "ENTHUSIASM", "ENUMERATION",
	"EOH", "EOLHX", "EPEGERMA", "EPOCH", "EQ", "EQUIANGULAR",
	"EQUID", "ERG", "ERS", "ESH16", "ESH21", "ESO",
	"ESS", "ESTIMATED", "ESTIMATES", "ESUKUUDO", "ETHEL", "ETNAHTA",
	"EULER", "EUROPE", "EVENING", "EVERGREEN", "EVERY", "EXCELLENT",
	"EXCESS", "EXCHANGE", "EXCITEMENT", "EXHALE", "EXHAUSTION", "EXIST",
	"EXISTS", "EXPLODING", "EXPONENT", "EXPRESSIONLESS", "EXTINGUISHER", "EXTRATERRESTRIAL",
	"EYANNA", "EYBEYFILI", "EYEBROW", "EYEGLASSES", "EYYY", "F001",
	"F001A", "F002", "F003", "F004", "F005", "F006",
	"F007", "F008", "F009", "F010", "F011", "F012",
	"F013", "F013A", "F014", "F015", "F016", "F017",
	"F018", "F019", "F020", "F021", "F021A", "F022",
	"F023", "F024", "F025", "F026", "F027", "F028",
	"F029", "F030", "F031", "F031A", "F032", "F033",
	"F034", "F035", "F036", "F037", "F037A", "F038",
	"F038A", "F039", "F040", "F041", "F042", "F043",
	"F044", "F045", "F045A", "F046", "F046A", "F047",
	"F047A", "F048", "F049", "F050", "F051", "F051A",
	"F051B", "F051C", "F052", "F053", "FAAFU", "FAAI",
	"FAAMAE", "FACINGS", "FACSIMILE", "FACTORY", "FAHRENHEIT", "FAIB",
	"FAIHU", "FAILURE", "FAIRY", "FAJ", "FALAFEL", "FALLEN",
	"FAM", "FANG", "FAP", "FAQ", "FAR", "FAST",
	"FAT", "FATIGUE", "FAYANNA", "FEAR", "FEARFUL", "FEARN",
	"FEBRUARY", "FEEDING", "FEEM", "FEENG", "FEHU", "FELLOWSHIP",
	"FENCER", "FEOH", "FERRIS", "FERRY", "FESTIVAL", "FETH",
	"FEUFEUAET", "FEUX", "FF", "FFI", "FFL", "FHTORA",
	"FIGHT", "FII", "FILLED", "FINGERNAILS", "FINITE", "FIP",
	"FIRECRACKER", "FIREWORK", "FIREWORKS", "FIRI", "FISHEYE", "FISHING",
	"FISTED", "FIT", "FIX", "FL", "FLA", "FLAGS",
	"FLAMINGO", "FLASH", "FLATNESS", "FLEUR", "FLEXED", "FLIGHT",
	"FLOWERS", "FLOWING", "FLUSHED", "FM", "FOG", "FOGGY",
	"FOLDED", "FOLLY", "FON", "FONDUE", "FONGMAN", "FOOL",
	"FOOTPRINTS", "FOOTSTOOL", "FOP", "FORCE", "FORCES", "FORKING",
	"FORMATTING", "FORMS", "FORTE", "FORTUNE", "FOSTERING", "FOURTHS",
	"FRAGMENT", "FRAGRANT", "FRAMES", "FRANC", "FREEZING", "FRICATIVE",
	"FRIED", "FRIES", "FUA", "FUEL", "FUET", "FUJI",
	"FULLNESS", "FUNERAL", "FUP", "FURX", "FUSE", "FUT",
	"FUX", "FWE", "FY", "FYA", "FYP", "FYT",
	"FYX", "G001", "G002", "G003", "G004", "G005",
	"G006", "G006A", "G007", "G007A", "G007B", "G008",
	"G009", "G010", "G011", "G011A", "G012", "G013",
	"G014", "G015", "G016", "G017", "G018", "G019",
	"G020", "G020A", "G021", "G022", "G023", "G024",
	"G025", "G026", "G026A", "G027", "G028", "G029",
	"G030", "G031", "G032", "G033", "G034", "G035",
	"G036", "G036A", "G037", "G037A", "G038", "G039",
	"G040", "G041", "G042", "G043", "G043A", "G044",
	"G045", "G045A", "G046", "G047", "G048", "G049",
	"G050", "G051", "G052", "G053", "G054", "G2",
	"GAAFU", "GADOL", "GAG", "GAI", "GALAM", "GAM",
	"GAMAN", "GAML", "GAMLA", "GANDA", "GANMA", "GAR3",
	"GARDEN", "GARLIC", "GARMENT", "GARON", "GASHAN", "GAT",
	"GAUNTLET", "GAX", "GB", "GBAKURUNEN", "GBAYI", "GBEN",
	"GBET", "GBEUX", "GBIEE", "GBON", "GCAN", "GDAN",
	"GE22", "GEBA", "GEBO", "GEDE", "GEDOLA", "GEEM",
	"GEM", "GEMINATE", "GEMINI", "GEN", "GENERIC", "GENIE",
	"GENITIVE", "GENTLE", "GEOMETRIC", "GER", "GERMAN", "GET",
	"GETA", "GEX", "GG", "GGAA", "GGAP", "GGAT",
	"GGAX", "GGEE", "GGEP", "GGET", "GGEX", "GGIE",
	"GGIEP", "GGIEX", "GGIT", "GGIX", "GGOT", "GGOX",
	"GGUOP", "GGUOT", "GGUOX", "GGUP", "GGUR", "GGURX",
	"GGUT", "GGUX", "GGWA", "GGWAA", "GGWE", "GGWEE",
	"GGWI", "GH", "GHAAMAE", "GHAINU", "GHAMAL", "GHAMMA",
	"GHAP", "GHARAE", "GHAYN", "GHEE", "GHET", "GHEUAEGHEUAE",
	"GHEUAERAE", "GHEUGHEN", "GHEUGHEUAEM", "GHEUN", "GHEUX", "GHEYS",
	"GHI", "GHIMEL", "GHOM", "GHOU", "GHU", "GHWA",
	"GHZ", "GIBA", "GIDIM", "GIE", "GIEP", "GIET",
	"GIEX", "GIFT", "GIG", "GIGA", "GINII", "GIP",
	"GIRAFFE", "GIRL", "GIRLS", "GIRUDAA", "GISAL", "GIT",
	"GIX", "GLA", "GLASSES", "GLEICH", "GLOVE", "GLOVES",
	"GLOWING", "GN", "GNAVIYANI", "GOA", "GOBLIN", "GOGGLES",
	"GOING", "GOK", "GOLFER", "GONG", "GOO", "GOOD",
	"GOP", "GORA", "GORGOSYNTHETON", "GORGOTERI", "GORILLA", "GORT",
	"GOX", "GPA", "GRADUAL", "GRADUATION", "GRAF", "GRAIN",
	"GRAMMA", "GRAPES", "GRAPHEME", "GRATER", "GRAVEYARD", "GREATNESS",
	"GRIMACING", "GRONTHISMATA", "GROWING", "GUA", "GUAN", "GUARANI",
	"GUARDEDNESS", "GUARDSMAN", "GUEI", "GUIDE", "GUITAR", "GUO",
	"GUOP", "GUOT", "GUOX", "GUP", "GURAMU", "GURAMUTON",
	"GURUN", "GURUSH", "GURX", "GUT", "GUX", "GVANG",
	"GW", "GWAA", "GWU", "GY", "GYA", "GYAA",
	"GYAN", "GYE", "GYEE", "GYFU", "GYI", "GYO",
	"GYU", "H001", "H002", "H003", "H004", "H005",
	"H006", "H006A", "H007", "H008", "HAAM", "HAARU",
	"HADES", "HAEGL", "HAFUKH", "HAFUKHA", "HAGL", "HAGLAZ",
	"HAI", "HAIRCUT", "HAIS", "HAITU", "HALBERD", "HALO",
	"HALQA", "HAM", "HAMBURGER", "HAMSA", "HAMSTER", "HANDBAG",
	"HANDBALL", "HANDLES", "HANDSHAKE", "HANG", "HAO", "HAP",
	"HAPPY", "HARBAHAY", "HARDNESS", "HARMONIC", "HASER", "HATCHING",
	"HATHI", "HAUPTSTIMME", "HAWJ", "HAX", "HAY", "HAYANNA",
	"HC", "HDR", "HEADING", "HEADPHONE", "HEADSCARF", "HEAR",
	"HEARING", "HEAVENLY", "HEDGEHOG", "HEEI", "HEELED", "HEIGHT",
	"HEISEI", "HEKUTAARU", "HELICOPTER", "HELIX", "HELLSCHREIBER", "HELM",
	"HEMP", "HEP", "HERAEUM", "HERB", "HERMES", "HERMITIAN",
	"HERUTU", "HEX", "HEXIFORM", "HEYT", "HHE", "HHEE",
	"HHI", "HHO", "HHU", "HHWE", "HHWEE", "HHWI",
	"HHYA", "HHYAA", "HHYE", "HHYEE", "HHYI", "HHYO",
	"HHYU", "HIBISCUS", "HIDE", "HIDING", "HIEX", "HIKING",
	"HINDU", "HIPPOPOTAMUS", "HISTORIC", "HIZB", "HK", "HL",
	"HLAP", "HLAT", "HLAU", "HLAX", "HLE", "HLEP",
	"HLEX", "HLIE", "HLIEP", "HLIEX", "HLIP", "HLIT",
	"HLIX", "HLO", "HLOP", "HLOX", "HLU", "HLUO",
	"HLUOP", "HLUOX", "HLUP", "HLUR", "HLURX", "HLUT",
	"HLUX", "HLY", "HLYP", "HLYR", "HLYRX", "HLYT",
	"HLYX", "HM", "HMA", "HMAP", "HMAT", "HMAX",
	"HME", "HMI", "HMIE", "HMIEP", "HMIEX", "HMIP",
	"HMIT", "HMIX", "HMOP", "HMOT", "HMOX", "HMU",
	"HMUO", "HMUOP", "HMUOX", "HMUP", "HMUR", "HMURX",
	"HMUT", "HMUX", "HMY", "HMYP", "HMYR", "HMYRX",
	"HMYX", "HNAP", "HNAT", "HNAU", "HNAX", "HNE",
	"HNEP", "HNEX", "HNI", "HNIE", "HNIEP", "HNIET",
	"HNIEX", "HNIP", "HNIT", "HNIX", "HNOP", "HNOT",
	"HNOX", "HNUB", "HNUO", "HNUOX", "HNUT", "HOA",
	"HOCHO", "HOI", "HOKA", "HOM", "HONEY", "HONEYBEE",
	"HOON", "HOOP", "HOORU", "HOOU", "HOP", "HORIZONTALLY",
	"HOSPITAL", "HOTA", "HOX", "HOY", "HPA", "HPWG",
	"HRYVNIA", "HTTA", "HUAN", "HUARADDO", "HUB", "HUIITO",
	"HUK", "HUL2", "HUNG", "HUO", "HUOP", "HUOT",
	"HUOX", "HURAN", "HUSH", "HUSHED", "HUT", "HUVA",
	"HWA", "HWAH", "HWEE", "HWI", "HWO", "HWU",
	"HXA", "HXAP", "HXAT", "HXAX", "HXE", "HXEP",
	"HXEX", "HXI", "HXIE", "HXIEP", "HXIET", "HXIEX",
	"HXIP", "HXIX", "HXO", "HXOT", "HXOX", "HXUOP",
	"HXUOT", "HXUOX", "HXWG", "HYGIEA", "HYGIEIA", "HYPODIASTOLE",
	"HYSTERESIS", "HZG", "HZT", "HZW", "HZWG", "HZZ",
	"HZZP", "HZZZ", "HZZZG", "I001", "I002", "I003",
	"I004", "I005", "I005A", "I006", "I007", "I008",
	"I009", "I009A", "I010", "I010A", "I011", "I011A",
	"I012", "I013", "I014", "I015", "IANG", "IBIFILI",
	"ICELANDIC", "ICHADIN", "ICHOU", "ID", "IDLE", "IEP",
	"IET", "IEX", "IF", "IFIN", "IGGWS", "IIYANNA",
	"IL2", "ILIMMU3", "ILIMMU4", "ILUT", "ILUUYANNA", "ILUY",
	"ILUYANNA", "IMAALA", "IMIDIARGON", "IMIFONON", "IMIFTHORA", "IMIFTHORON",
	"IMIN3", "IMISEOS", "IMN", "IMP", "INAP", "INBOX",
	"INCH", "INCLUDING", "INCOMING", "INCOMPLETE", "INCREASES", "INCREMENT",
	"INDIAN", "INDICTION", "INDIRECT", "INDUSTRIAL", "INFLUENCE", "INGWAZ",
	"INHALE", "ININGU", "INK", "INN", "INNN", "INNOCENCE",
	"INSECT", "INTERCALATE", "INTEREST", "INTERLOCKED", "INTERSYLLABIC", "INTI",
	"INVERTEBRATE", "INY", "INYA", "IODHADH", "IONG", "IOR",
	"IP", "IRB", "IRI", "IRUUYANNA", "IRUYANNA", "ISAKIA",
	"ISAZ", "ISHMAAM", "ISLAND", "ISS", "ITEM", "ITS",
	"IUJA", "IWAZ", "IWN", "IYANNA", "IZ", "IZAKAYA",
	"JACKS", "JAH", "JAIN", "JALL", "JALLAJALALOUHOU", "JANUARY",
	"JAPAN", "JAVIYANI", "JAYIN", "JAYN", "JEANS", "JER",
	"JERA", "JERAN", "JERUSALEM", "JEU", "JHAA", "JHAM",
	"JHAYIN", "JHO", "JHOX", "JIA", "JIE", "JIEP",
	"JIET", "JIEX", "JIGSAW", "JIP", "JIT", "JIX",
	"JJE", "JJEE", "JJIEP", "JJIET", "JJIEX", "JJIP",
	"JJIT", "JJIX", "JJOP", "JJOT", "JJOX", "JJUO",
	"JJUOP", "JJUOX", "JJUP", "JJUR", "JJURX", "JJUX",
	"JJYP", "JJYT", "JJYX", "JOA", "JOINTS", "JONG",
	"JOP", "JOVE", "JOX", "JOYOUS", "JOYSTICK", "JUDEO",
	"JUDGE", "JUDUL", "JUEUI", "JUGGLING", "JULY", "JUNE",
	"JUNO", "JUO", "JUOP", "JUOT", "JUOX", "JUP",
	"JUPITER", "JUR", "JURX", "JUT", "JUU", "JUX",
	"JUZ", "JY", "JYP", "JYR", "JYRX", "JYT",
	"JYX", "K001", "K002", "K003", "K004", "K005",
	"K006", "K007", "K008", "K2", "KAAB", "KAABA",
	"KAACU", "KAAFU", "KAAI", "KAAN", "KAANKUU", "KAAV",
	"KACHKA", "KAD", "KAD4", "KAFA", "KAIB", "KAIRI",
	"KAIV", "KAKABAT", "KAM", "KAM2", "KAM4", "KANAKO",
	"KANGAROO", "KANTAJA", "KAPAL", "KAPO", "KAQ", "KAR",
	"KARA", "KARAN", "KARATTO", "KAROR", "KARORAN", "KARORII",
	"KARSHANA", "KAT", "KATAVA", "KATAVASMA", "KATHISTI", "KAUB",
	"KAUN", "KAUNA", "KAUV", "KAV", "KAWB", "KAWI",
	"KAWV", "KAX", "KB", "KCAL", "KEAAE", "KEB",
	"KEEB", "KEENG", "KEESU", "KEEV", "KEFULA", "KELVIN",
	"KEMBANG", "KEMPHRENG", "KENAT", "KEOW", "KEP", "KERET",
	"KES", "KEUAE", "KEUAEM", "KEUAERI", "KEUAETMEUN", "KEUKAQ",
	"KEUKEUTNDA", "KEUOT", "KEUP", "KEUPUQ", "KEUSEUX", "KEUSHEUAEP",
	"KEUYEUX", "KEV", "KEX", "KHAB", "KHAF", "KHAMILO",
	"KHAN", "KHANDA", "KHAV", "KHEE", "KHETH", "KHIT",
	"KHOMUT", "KHON", "KHONNA", "KHOT", "KHOU", "KHU",
	"KHUAT", "KHUDAM", "KHWAI", "KHYUD", "KHZ", "KIAB",
	"KIAV", "KIB", "KICK", "KIE", "KIEEM", "KIEP",
	"KIEX", "KIH", "KII", "KIIZH", "KILLER", "KIMONO",
	"KINDERGARTEN", "KINSHIP", "KIQ", "KIRO", "KIROGURAMU", "KIROMEETORU",
	"KIROWATTO", "KISAL", "KISH", "KITE", "KIV", "KIW",
	"KIWIFRUIT", "KIX", "KKE", "KKEE", "KKI", "KKO",
	"KKU", "KL", "KLA", "KLITON", "KLYUCHENEPOSTOYANNY", "KLYUCHEPOVODNAYA",
	"KLYUCHEPOVODNY", "KLYUCHEVOY", "KNEELING", "KNOBS", "KNOT", "KOA",
	"KOALA", "KOB", "KOBYLA", "KOGHOM", "KOH", "KOINI",
	"KOKE", "KOKO", "KOMBU", "KOOB", "KOOMUUT", "KOOPO",
	"KOOV", "KOP", "KOQNDON", "KORON", "KORUNA", "KOT",
	"KOUFISMA", "KOV", "KOVUU", "KOX", "KPAH", "KPAN",
	"KPARAQ", "KPEN", "KPEUX", "KPOQ", "KRA", "KRATIMATA",
	"KRATIMOKOUFISMA", "KRATIMOYPORROON", "KREMASTI", "KRONOS", "KRYZHEVAYA", "KT",
	"KU7", "KUA", "KUAB", "KUAV", "KUB", "KUET",
	"KUFISMA", "KUG", "KUNDDALIYA", "KUNG", "KUO", "KUOM",
	"KUOQ", "KUOX", "KUP", "KUPNAYA", "KUQ", "KUROONE",
	"KURT", "KURUNI", "KURUZEIRO", "KURX", "KUSMA", "KUUH",
	"KUV", "KUX", "KUZHI", "KV", "KWAET", "KWAY",
	"KWB", "KWM", "KWU318", "KWV", "KXAA", "KXE",
	"KXEE", "KXI", "KXO", "KXU", "KXWA", "KXWAA",
	"KXWE", "KXWEE", "KXWI", "KYAA", "KYATHOS", "KYE",
	"KYI", "KYLISMA", "KYO", "KYU", "KYURII", "L001",
	"L002", "L002A", "L003", "L004", "L005", "L006",
	"L006A", "L007", "L008", "L2", "L3", "L4",
	"L6", "LAAI", "LAAMU", "LAAN", "LAANAE", "LAB",
	"LABAT", "LABEL", "LABIALIZATION", "LABOURING", "LACA", "LACK",
	"LACROSSE", "LADDER", "LADY", "LAEV", "LAGU", "LAGUS",
	"LAH", "LAHSHU", "LAJANYALAN", "LAKHAN", "LAKKHANGYAO", "LAKUNA",
	"LAMADH", "LAMBDA", "LAMD", "LAND", "LANGUAGE", "LAPAQ",
	"LAQ", "LARI", "LARYNGEAL", "LAT", "LATE", "LATIK",
	"LAU", "LAUGHING", "LAUJ", "LAUKAZ", "LAX", "LAY",
	"LAYAR", "LCI", "LD", "LD2", "LDAN", "LEAD",
	"LEADING", "LEAFY", "LEDGER", "LEEK", "LEGION", "LEGS",
	"LEI", "LEMOI", "LEMON", "LEO", "LEOPARD", "LEP",
	"LEUAEM", "LEUAEP", "LEUM", "LEVITATING", "LEX", "LHAG",
	"LHAVIYANI", "LHE", "LHEE", "LHII", "LHOO", "LHU",
	"LHYA", "LIABILITY", "LIBERTY", "LIBRA", "LICKING", "LIEE",
	"LIEP", "LIET", "LIEX", "LIFE", "LIFTER", "LIGATING",
	"LIGHTHOUSE", "LII", "LIL", "LILITH", "LILY", "LIMBS",
	"LIME", "LIMIT", "LIMITATION", "LIMITED", "LIMMU2", "LIMMU4",
	"LINGSA", "LINKED", "LINKING", "LION", "LIPSTICK", "LIQ",
	"LIT", "LITRA", "LIVRE", "LIX", "LIZARD", "LLAMA",
	"LLE", "LLHA", "LLL", "LM", "LN", "LOA",
	"LOBSTER", "LOCATIVE", "LODESTONE", "LOG", "LOGR", "LOLL",
	"LOLLIPOP", "LOMKA", "LOMMAE", "LOOK", "LOON", "LOP",
	"LORRAINE", "LORRY", "LOS", "LOSSLESS", "LOT", "LOTION",
	"LOUDLY", "LOUDSPEAKER", "LOURE", "LOX", "LUAEP", "LUB",
	"LUHUR", "LUIS", "LUNGS", "LUNGSI", "LUO", "LUOP",
	"LUOT", "LUOX", "LUP", "LUR", "LURX", "LUS",
	"LUT", "LUX", "LX", "LYA", "LYGISMA", "LYING",
	"LYIT", "LYP", "LYRX", "LYT", "LYX", "LYY",
	"M001A", "M001B", "M003A", "M010A", "M012A", "M012B",
	"M012C", "M012D", "M012E", "M012F", "M012G", "M012H",
	"M015A", "M016A", "M017A", "M022A", "M024A", "M028A",
	"M031A", "M033A", "M033B", "M040A", "M045", "M046",
	"M047", "M048", "M049", "M050", "M051", "M052",
	"M053", "M054", "M055", "M056", "M057", "M058",
	"M059", "M060", "M061", "M062", "M063", "M064",
	"M065", "M066", "M067", "M068", "M069", "M070",
	"M071", "M072", "M073", "M074", "M075", "M076",
	"M077", "M078", "M079", "M080", "M081", "M082",
	"M083", "M084", "M085", "M086", "M087", "M088",
	"M089", "M090", "M091", "M092", "M093", "M094",
	"M095", "M096", "M097", "M098", "M099", "M100",
	"M101", "M102", "M103", "M104", "M105", "M106",
	"M107", "M108", "M109", "M110", "M111", "M112",
	"M113", "M114", "M115", "M116", "M117", "M118",
	"M119", "M120", "M121", "M122", "M123", "M124",
	"M125", "M126", "M127", "M128", "M129", "M130",
	"M131", "M132", "M133", "M134", "M135", "M136",
	"M137", "M138", "M139", "M140", "M141", "M142",
	"M143", "M144", "M145", "M146", "M147", "M148",
	"M149", "M150", "M151", "M152", "M153", "M154",
	"M155", "M156", "M157", "M158", "M159", "M160",
	"M161", "M162", "M163", "M164", "M165", "M166",
	"M167", "M168", "M169", "M170", "M171", "M172",
	"M173", "M174", "M175", "M176", "M177", "M178",
	"M179", "M180", "M181", "M182", "M183", "M184",
	"M185", "M186", "M187", "M188", "M189", "M190",
	"M191", "M192", "M193", "M194", "M195", "M196",
	"M197", "MA2", "MAAI", "MAAYYAA", "MADU", "MADYA",
	"MAEKEUP", "MAELEE", "MAEMBGBIEE", "MAEMGBIEE", "MAEMKPEN", "MAEMVEUX",
	"MAENJET", "MAENYI", "MAGE", "MAGIC", "MAGNET", "MAHAPAKH",
	"MAHHA", "MAIDEN", "MAIKURO", "MAIL", "MAIMALAI", "MAIMUAN",
	"MAIRU", "MAITAIKHU", "MAIYAMOK", "MAIZE", "MALEERI", "MALTESE",
	"MAMMOTH", "MANACLES", "MANAT", "MANGALAM", "MANGO", "MANNA",
	"MANNAZ", "MANS", "MANSUAE", "MANSYON", "MANTELPIECE", "MANUAL",
	"MAO", "MAPLE", "MAQAF", "MARCASITE", "MARCH", "MARE",
	"MARKS", "MARRATAN", "MARRIAGE", "MARRYING", "MARTIAL", "MARUKU",
	"MARWARI", "MARY", "MASCULINE", "MASHFAAT", "MASORA", "MASSAGE",
	"MASSING", "MASU", "MAT", "MATE", "MATERIALS", "MATRIX",
	"MATTOCK", "MAU", "MAX", "MAXIMA", "MAXIMIZE", "MAYANNA",
	"MB2", "MB3", "MB4", "MBAAKET", "MBAARAE", "MBAQ",
	"MBEEKEET", "MBERAE", "MBEURI", "MBEUX", "MBIRIEEN", "MBUAE",
	"MBUAEM", "MBUE", "MBUO", "MBUOQ", "MBUU", "MD",
	"MED", "MEDICAL", "MEDICINE", "MEEMU", "MEETORU", "MEGALI",
	"MEGAPHONE", "MEGATON", "MEIZI", "MELIK", "MELODIC", "MELTING",
	"MEMBERSHIP", "MEMO", "MENDUT", "MENOE", "MENORAH", "MENS",
	"MERI", "MERIDIANS", "MERPERSON", "MESI", "MESSENIAN", "META",
	"METEG", "METEK", "METOBELUS", "METRETES", "METRIA", "METRO",
	"MEUNJOMNDEUQ", "MEUQ", "MEX", "MEZZO", "MFAA", "MFEUAE",
	"MFEUQ", "MFEUT", "MFIEE", "MFIYAQ", "MFO", "MG",
	"MGA", "MGAP", "MGAT", "MGAX", "MGBASA", "MGBASAQ",
	"MGBE", "MGBEE", "MGBEN", "MGBEUN", "MGBI", "MGBIEE",
	"MGBO", "MGBOFUM", "MGBOO", "MGBU", "MGE", "MGEP",
	"MGEX", "MGIE", "MGIEX", "MGOP", "MGOT", "MGOX",
	"MGU", "MGUO", "MGUOP", "MGUOX", "MGUP", "MGUR",
	"MGURX", "MGUT", "MGUX", "MH", "MHZ", "MICRO",
	"MICROBE", "MICROSCOPE", "MIE", "MIEP", "MIEX", "MII",
	"MIIN", "MIKRI", "MIKRON", "MIKURON", "MIL", "MILK",
	"MILKY", "MILL", "MILLET", "MIME", "MINIBUS", "MINIDISC",
	"MINIMIZE", "MINISTER", "MINY", "MIP", "MIRED", "MIRI",
	"MIRIBAARU", "MISRA", "MIX", "MKPARAQ", "ML", "MNYAM",
	"MOA", "MODE", "MODEL", "MODELS", "MODEM", "MODERN",
	"MODESTY", "MODULO", "MOHAMMAD", "MOKHASSAS", "MOL", "MONGKEUAEQ",
	"MONI", "MONOCLE", "MONORAIL", "MONOSTABLE", "MONSTER", "MONTIEEN",
	"MOOMEUT", "MOOMPUQ", "MOOSE", "MORNING", "MORPHOLOGICAL", "MORTUUM",
	"MOSQUE", "MOSQUITO", "MOT", "MOTORCYCLE", "MOTORIZED", "MOTORWAY",
	"MOUNT", "MOUNTAINS", "MOVED", "MOVES", "MOVIE", "MOX",
	"MOYAI", "MQ", "MR", "MRACHNO", "MRACHNOTIKHAYA", "MRACHNY",
	"MS", "MUAS", "MUE", "MUEN", "MUGS", "MUIN",
	"MUKHA", "MUKKURUNI", "MUKPHRENG", "MULTI", "MULTIOCULAR", "MUM",
	"MUN", "MUNAH", "MUNSUB", "MUO", "MUOMAE", "MUOP",
	"MUOT", "MUOX", "MUP", "MUQDAM", "MUR", "MURE",
	"MURGU2", "MURX", "MUS", "MUSHROOM", "MUT", "MUTHALIYA",
	"MUUSIKATOAN", "MUUVUZHAKKU", "MUX", "MVEUAENGAM", "MVI", "MX",
	"MYP", "MYT", "MYX", "MZ", "N001", "N002",
	"N003", "N004", "N005", "N006", "N007", "N008",
	"N009", "N010", "N011", "N012", "N013", "N014",
	"N015", "N016", "N017", "N018", "N018A", "N018B",
	"N019", "N020", "N021", "N022", "N023", "N024",
	"N025", "N025A", "N026", "N027", "N028", "N029",
	"N030", "N031", "N032", "N033", "N033A", "N034",
	"N034A", "N035", "N035A", "N036", "N037", "N037A",
	"N038", "N039", "N040", "N041", "N042", "NA4",
	"NAAI", "NAAKSIKYAYA", "NAGAR", "NAIL", "NAIRA", "NAN",
	"NAND", "NANGMONTHO", "NANO", "NANSANAQ", "NAOS", "NAP",
	"NAU", "NAUDIZ", "NAUSEATED", "NAUTHS", "NAX", "NAXIAN",
	"NAY", "NAZAR", "NBA", "NBAP", "NBAT", "NBAX",
	"NBI", "NBIEP", "NBIEX", "NBIP", "NBIT", "NBIX",
	"NBO", "NBOP", "NBOT", "NBOX", "NBU", "NBUP",
	"NBUR", "NBURX", "NBUT", "NBUX", "NBY", "NBYP",
	"NBYR", "NBYRX", "NBYT", "NBYX", "NCA", "NCHAU",
	"ND", "NDAANGGEUAET", "NDAT", "NDAX", "NDEP", "NDEUAEREE",
	"NDEUT", "NDEUX", "NDEX", "NDIAQ", "NDIDA", "NDIE",
	"NDIEX", "NDIP", "NDIQ", "NDIT", "NDIX", "NDOMBU",
	"NDON", "NDOP", "NDOT", "NDOX", "NDUN", "NDUP",
	"NDUR", "NDURX", "NDUT", "NDUX", "NEBENSTIMME", "NECKTIE",
	"NEEDLE", "NEGATION", "NEL", "NEMKA", "NENANO", "NEP",
	"NERD", "NESSUS", "NESTING", "NETWORKED", "NEUTER", "NEX",
	"NEXT", "NF", "NGAAI", "NGAH", "NGAI", "NGAN",
	"NGANGU", "NGAP", "NGAQ", "NGAT", "NGAX", "NGEADAL",
	"NGEP", "NGEUREUT", "NGEX", "NGG", "NGGAA", "NGGAAMAE",
	"NGGAP", "NGGEEEE", "NGGEET", "NGGEU", "NGGEUAE", "NGGEUX",
	"NGGUA", "NGGUAEN", "NGGUAESHAE", "NGGUEET", "NGGUM", "NGGUOM",
	"NGGUON", "NGGUP", "NGGURAE", "NGGWAEN", "NGIE", "NGIEP",
	"NGIEX", "NGII", "NGKAAMI", "NGKAP", "NGKAQ", "NGKEUAEM",
	"NGKEUAEQ", "NGKEURI", "NGKEUX", "NGKIEE", "NGKINDI", "NGKUENZEUM",
	"NGKUM", "NGKUN", "NGKUP", "NGKYEE", "NGOO", "NGOQ",
	"NGOT", "NGOX", "NGU", "NGUAE", "NGUAET", "NGUAN",
	"NGUE", "NGUN", "NGUO", "NGUOT", "NGUOX", "NGVE",
	"NGYE", "NH", "NHAY", "NHJA", "NHUE", "NI2",
	"NIA", "NIE", "NIEP", "NIEX", "NIGGAHITA", "NIGIDAESH",
	"NIGIDAMIN", "NIHSHVASA", "NIKA", "NIKAHIT", "NIKHAHIT", "NIN9",
	"NINJA", "NINTH", "NION", "NIP", "NIRUGU", "NISAG",
	"NISF", "NIT", "NITRE", "NIX", "NJAA", "NJAP",
	"NJAQ", "NJEEEE", "NJEUAEM", "NJEUAENA", "NJEUT", "NJIE",
	"NJIEE", "NJIEP", "NJIET", "NJIEX", "NJIP", "NJIT",
	"NJIX", "NJOP", "NJOT", "NJOX", "NJUO", "NJUOX",
	"NJUP", "NJUQA", "NJUR", "NJURX", "NJUX", "NJY",
	"NJYP", "NJYR", "NJYRX", "NJYT", "NJYX", "NKA",
	"NKAU", "NKINDI", "NKOM", "NL001", "NL002", "NL003",
	"NL004", "NL005", "NL005A", "NL006", "NL007", "NL008",
	"NL009", "NL010", "NL011", "NL012", "NL013", "NL014",
	"NL015", "NL016", "NL017", "NL017A", "NL018", "NL019",
	"NL020", "NLAU", "NM", "NNAA", "NNE", "NNG",
	"NNGA", "NNGAA", "NNGI", "NNGII", "NNGO", "NNGOO",
	"NNHA", "NNO", "NNYA", "NOA", "NOKHUK", "NOMINAL",
	"NOMISMA", "NONFORKING", "NOONU", "NOP", "NORDIC", "NORTHEAST",
	"NORTHWEST", "NOTTO", "NOVEMBER", "NOVILE", "NOWC", "NOX",
	"NOY", "NPA", "NPLA", "NQA", "NQIG", "NRAP",
	"NRAT", "NRAX", "NRE", "NREP", "NRES", "NRET",
	"NREX", "NRO", "NROP", "NROX", "NRU", "NRUA",
	"NRUP", "NRUR", "NRURX", "NRUT", "NRUX", "NRY",
	"NRYP", "NRYR", "NRYRX", "NRYT", "NRYX", "NS",
	"NSA", "NSEN", "NSEUAEN", "NSHAQ", "NSHEE", "NSHUE",
	"NSHUET", "NSHUOP", "NSIEEP", "NSIEET", "NSOM", "NSUM",
	"NSUN", "NSUOT", "NTA", "NTEN", "NTEUNGBA", "NTHAU",
	"NTIEE", "NTOQPEN", "NTSA", "NTSAU", "NTU", "NTUJ",
	"NTUM", "NTXA", "NTXIV", "NU001", "NU002", "NU003",
	"NU004", "NU005", "NU006", "NU007", "NU008", "NU009",
	"NU010", "NU010A", "NU011", "NU011A", "NU012", "NU013",
	"NU014", "NU015", "NU016", "NU017", "NU018", "NU018A",
	"NU019", "NU020", "NU021", "NU022", "NU022A", "NUE",
	"NUM", "NUMBERS", "NUMERO", "NUNAVUT", "NUO", "NUOP",
	"NUOX", "NUP", "NUR", "NURX", "NUUN", "NUX",
	"NW", "NYAEMAE", "NYAH", "NYAJ", "NYAN", "NYCA",
	"NYD", "NYEN", "NYIE", "NYIEP", "NYIET", "NYIEX",
	"NYIR", "NYIX", "NYJA", "NYOA", "NYON", "NYOO",
	"NYOT", "NYOX", "NYUE", "NYUN", "NYUO", "NYUOP",
	"NYUOX", "NYUP", "NYUT", "NYUX", "NYWA", "NZAP",
	"NZAQ", "NZAT", "NZAX", "NZE", "NZEUM", "NZEX",
	"NZI", "NZIE", "NZIEP", "NZIEX", "NZIP", "NZIT",
	"NZIX", "NZOP", "NZOX", "NZU", "NZUN", "NZUO",
	"NZUOX", "NZUQ", "NZUR", "NZURX", "NZUX", "NZY",
	"NZYP", "NZYR", "NZYRX", "NZYT", "NZYX", "O001",
	"O001A", "O002", "O003", "O004", "O005", "O005A",
	"O006", "O006A", "O006B", "O006C", "O006D", "O006E",
	"O006F", "O007", "O008", "O009", "O010", "O010A",
	"O010B", "O010C", "O011", "O012", "O013", "O014",
	"O015", "O016", "O017", "O018", "O019", "O019A",
	"O020", "O020A", "O021", "O022", "O023", "O024",
	"O024A", "O025", "O025A", "O026", "O027", "O028",
	"O029", "O029A", "O030", "O030A", "O031", "O032",
	"O033", "O033A", "O034", "O035", "O036", "O036A",
	"O036B", "O036C", "O036D", "O037", "O038", "O039",
	"O040", "O041", "O042", "O043", "O044", "O045",
	"O046", "O047", "O048", "O049", "O050", "O050A",
	"O050B", "O051", "OABOAFILI", "OAK", "OB", "OBELOS",
	"OBELUS", "OBJECT", "OBLACHKO", "OBLAKO", "OBOFILI", "OBOL",
	"OBSERVER", "OBSTRUCTION", "OC", "OCCLUSION", "OCHKOM", "OCTAGONAL",
	"OCTOBER", "OCTOPUS", "ODEN", "OER", "OEY", "OFFICER",
	"OG", "OGRE", "OJEON", "OLE", "OMALON", "ONAP",
	"ONESELF", "ONION", "ONKAR", "ONSU", "OOBOOFILI", "OOH",
	"OOMU", "OON", "OOYANNA", "OOZE", "OPHIUCHUS", "OPPOSE",
	"OPPRESSION", "OPTION", "ORANGUTAN", "ORCHID", "ORIGIN", "ORNAMENTS",
	"ORTHODOX", "ORTHOGONAL", "OTHAL", "OTHALAN", "OTHER", "OTHERS",
	"OTSECHKA", "OTT", "OTTER", "OUNKIA", "OUTBOX", "OUTLINE",
	"OVERHEATED", "OWL", "OXEIAI", "OYANNA", "OYSTER", "OZ",
	"P001", "P001A", "P002", "P003", "P003A", "P004",
	"P005", "P006", "P007", "P008", "P009", "P010",
	"P011", "P2", "PAAI", "PAARAE", "PAARAM", "PAASENTO",
	"PAATU", "PACKAGE", "PACKING", "PADDLE", "PADMA", "PAGER",
	"PAGODA", "PAH", "PAINTBRUSH", "PAIRTHRA", "PAIYANNOI", "PALATALIZATION",
	"PALATALIZED", "PALETTE", "PALKA", "PALLAS", "PALLAWA", "PALMS",
	"PALUTA", "PAMAAEH", "PAMENENG", "PAMEPET", "PAMINGKAL", "PAMSHAE",
	"PAMUNGKAH", "PANAELAENG", "PANAM", "PANCAKES", "PANDA", "PANEULEUNG",
	"PANG", "PANGHULU", "PANGKAT", "PANGKON", "PANGLAYAR", "PANGLONG",
	"PANGRANGKEP", "PANGWISAD", "PANOLONG", "PANONGONAN", "PANYAKRA", "PANYANGGA",
	"PANYECEK", "PANYIKU", "PANYUKU", "PAO", "PAPERCLIP", "PAPERCLIPS",
	"PAPYRUS", "PARACHUTE", "PARAGRAPHUS", "PARAKLIT", "PAREREN", "PARICHON",
	"PARK", "PARROT", "PARTIALLY", "PARUM", "PASEQ", "PASHAE",
	"PASHTA", "PASSED", "PASSENGER", "PASSIMBANG", "PASSPORT", "PASUQ",
	"PAT", "PATAK", "PATHAKKU", "PATHAMASAT", "PAUK", "PAUSE",
	"PAVIYANI", "PAX", "PAY", "PAZER", "PC", "PD",
	"PEACH", "PEACOCK", "PEANUTS", "PEAR", "PEDESTRIANS", "PEEI",
	"PEEKING", "PEEM", "PEEP", "PEESHI", "PEEZI", "PEITH",
	"PENETRATION", "PENGKAL", "PENGUIN", "PENIHI", "PENNY", "PENSIVE",
	"PENSU", "PENTATHLON", "PEORTH", "PERFORMING", "PERMANENT", "PERSEVERING",
	"PERSPECTIVE", "PERTHO", "PES", "PESETA", "PET", "PETASMA",
	"PETASTI", "PETASTOKOUFISMA", "PETRI", "PEUT", "PEUTAE", "PF",
	"PG", "PH", "PHAARKAA", "PHAB", "PHAM", "PHAN",
	"PHEE", "PHILOSOPHERS", "PHINTHU", "PHNAEK", "PHOA", "PHOLUS",
	"PHONES", "PHRU", "PHU", "PHUNG", "PHUTHAO", "PHWA",
	"PIANO", "PIASTRE", "PIASUTORU", "PICKET", "PICKUP", "PIEEQ",
	"PIEET", "PIEP", "PIET", "PIEX", "PIKO", "PIKURU",
	"PILE", "PILL", "PINARBORAS", "PINATA", "PINCHED", "PINCHING",
	"PINE", "PINEAPPLE", "PIPING", "PIR2", "PIRACY", "PIRIEEN",
	"PISCES", "PISTOL", "PIX", "PIZZA", "PIZZICATO", "PLACARD",
	"PLAK", "PLANET", "PLANT", "PLATE", "PLAYGROUND", "PLEADING",
	"PLETHRON", "PLHAU", "PLOW", "PLUG", "PLUK", "PLUM",
	"PLUMED", "PLUNGER", "PLURAL", "PM", "POA", "POCKET",
	"PODATUS", "PODCHASHIEM", "PODVERTKA", "POETIC", "POINTO", "POINTS",
	"POKRYTIE", "POLKULIZMY", "POLNAYA", "POLO", "POLUPOVODNAYA", "PONDO",
	"POODLE", "POON", "POPCORN", "POPPER", "POPPING", "PORTABLE",
	"POSEIDON", "POSITIONS", "POSTBOX", "POSTPOSITION", "POTTED", "POUCH",
	"POULTRY", "POURING", "POVODNY", "POWDER", "POWDERED", "POX",
	"POY", "PPA", "PPM", "PPV", "PR", "PRAYER",
	"PRECEDED", "PRECIPITATE", "PREFACE", "PRENKHA", "PRESCRIPTION", "PRESENT",
	"PRESSED", "PRETZEL", "PREVIOUS", "PRINCE", "PRINCESS", "PRINTS",
	"PRIVATE", "PROBING", "PROFILE", "PROFOUND", "PROGRESS", "PROHIBITED",
	"PROJECTION", "PROJECTIVE", "PROJECTOR", "PROOF", "PROPERTY", "PROPORTIONAL",
	"PROSERPINA", "PROTOVARYS", "PROVE", "PS", "PSIFISTOLYGISMA", "PSIFISTOPARAKALESMA",
	"PSIFISTOSYNAGMA", "PSILON", "PTE", "PU2", "PUAQ", "PUB",
	"PUBLIC", "PUCK", "PUFFED", "PUM", "PUMP", "PUNCTUS",
	"PUNG", "PUNGAAM", "PUO", "PUOP", "PUOX", "PUQ",
	"PUR", "PURIFY", "PURITY", "PURNAMA", "PURSE", "PURX",
	"PUSHING", "PUSHPIKA", "PUTNAYA", "PUTREFACTION", "PUUT", "PUX",
	"PUZZLE", "PV", "PW", "PWOY", "PY", "PYP",
	"PYR", "PYRX", "PYX", "PZ", "Q001", "Q002",
	"Q003", "Q004", "Q005", "Q006", "Q007", "QAAFU",
	"QAAI", "QADMA", "QAIRTHRA", "QALA", "QAPH", "QAQ",
	"QARNEY", "QAU", "QAY", "QEE", "QETANA", "QGA",
	"QHA", "QHAA", "QHAU", "QHE", "QHEE", "QHI",
	"QHO", "QHOPH", "QHU", "QHWA", "QHWAA", "QHWE",
	"QHWEE", "QHWI", "QIE", "QIEP", "QIET", "QIEX",
	"QIF", "QIP", "QIT", "QIX", "QN", "QOA",
	"QOP", "QOPA", "QOX", "QP", "QUADCOLON", "QUANTITY",
	"QUATERNION", "QUBUTS", "QUDDISA", "QUESTIONED", "QUF", "QUICK",
	"QUINARIUS", "QUINCUNX", "QUINTESSENCE", "QUINTILE", "QUK", "QUOP",
	"QUOT", "QUOX", "QUP", "QUR", "QURX", "QUSHSHAYA",
	"QUT", "QUUV", "QUX", "QWA", "QWAA", "QY",
	"QYA", "QYAA", "QYE", "QYEE", "QYI", "QYO",
	"QYP", "QYR", "QYRX", "QYT", "QYU", "QYX",
	"R001", "R002", "R002A", "R003", "R003A", "R003B",
	"R004", "R005", "R006", "R007", "R008", "R009",
	"R010", "R010A", "R011", "R012", "R013", "R014",
	"R015", "R016", "R016A", "R017", "R018", "R019",
	"R020", "R021", "R022", "R023", "R024", "R025",
	"R026", "R027", "R028", "R029", "RA2", "RA3",
	"RAAI", "RAB", "RACCOON", "RADIOACTIVE", "RAEM", "RAH",
	"RAHEEM", "RAHIMAHU", "RAHIMAHUM", "RAHMAN", "RAHMATULLAH", "RAI",
	"RAIDA", "RAIDO", "RAIL", "RAINBOW", "RAKHANG", "RAMBAT",
	"RAN", "RAPISMA", "RAQ", "RASHA", "RASOUL", "RASWADI",
	"RATA", "RATIO", "RAU", "RAVNO", "RAX", "RAYANNA",
	"RAZOR", "RAZSEKA", "REAHMUK", "RECEIPT", "RECEPTIVE", "RECITATIVE",
	"RECORDER", "RECORDING", "RECREATIONAL", "REFERENCE", "REGISTERED", "REI",
	"REID", "REIWA", "RELAA", "RELATIONAL", "RELEASE", "RELIGION",
	"REMEDY", "REMINDER", "REMU", "RENTOGEN", "REP", "REPH",
	"REPHA", "REPRESENT", "REREKAN", "RES", "RESIDENCE", "RESISTANCE",
	"RESOLUTION", "RESTROOM", "RESUPINUS", "RETORT", "RETREAT", "REU",
	"REVIA", "REVMA", "REVOLUTION", "RH", "RHINOCEROS", "RHOTIC",
	"RIAL", "RICEM", "RICKSHAW", "RIEL", "RIFLE", "RIGHTHAND",
	"RIGVEDIC", "RIM", "RIMGBA", "RIN", "RINFORZANDO", "RINGED",
	"RINGING", "RIP", "RIRA", "RITTORU", "RITUAL", "RIVER",
	"RJES", "RMT", "RO2", "ROA", "ROAR", "ROASTED",
	"ROBAT", "ROBOT", "ROGOM", "ROLL", "ROLLED", "ROM",
	"ROOF", "ROOM", "ROOSTER", "ROP", "ROSE", "ROSH",
	"ROT", "ROWBOAT", "ROX", "RRAX", "RREP", "RRET",
	"RREX", "RROP", "RROT", "RROX", "RRRA", "RRU",
	"RRUO", "RRUOX", "RRUP", "RRUR", "RRURX", "RRUT",
	"RRUX", "RRY", "RRYP", "RRYR", "RRYRX", "RRYT",
	"RRYX", "RTE", "RTHANG", "RUA", "RUBLE", "RUE",
	"RUGBY", "RUIS", "RUKKAKHA", "RULAI", "RUN", "RUNNER",
	"RUNOUT", "RUO", "RUOP", "RUOX", "RUP", "RUPII",
	"RUR", "RURX", "RUSI", "RUT", "RUUBURU", "RUX",
	"RWAHA", "RWE", "RWEE", "RWI", "RWII", "RWO",
	"RWOO", "RYA", "RYP", "RYR", "RYRX", "RYT",
	"RYX", "RYY", "S001", "S002", "S002A", "S003",
	"S004", "S005", "S006", "S006A", "S007", "S008",
	"S009", "S010", "S011", "S012", "S013", "S014",
	"S014A", "S014B", "S015", "S016", "S017", "S017A",
	"S018", "S019", "S020", "S021", "S022", "S023",
	"S024", "S025", "S026", "S026A", "S026B", "S027",
	"S028", "S029", "S030", "S031", "S032", "S033",
	"S034", "S035", "S035A", "S036", "S037", "S038",
	"S039", "S040", "S041", "S042", "S043", "S044",
	"S045", "S046", "SAADHU", "SAAI", "SACRIFICIAL", "SAGA",
	"SAGITTARIUS", "SAIKURU", "SAIL", "SAILBOAT", "SAJDA", "SAJDAH",
	"SAKE", "SAKEUAE", "SAKHA", "SAKIN", "SAKOT", "SAKTA",
	"SALA", "SALAAMUHU", "SALAATU", "SALAD", "SALAM", "SALLALLAAHU",
	"SALLALLAHU", "SALLAM", "SALUTING", "SAMKA", "SAMPHAO", "SAMVAT",
	"SAMYOK", "SANAH", "SAND", "SANDWICH", "SANGA2", "SANNYA",
	"SANTIIMU", "SANYOOGA", "SAPA", "SAQ", "SASH", "SATCHEL",
	"SATKAAN", "SATKAANKUU", "SATURN", "SAUCER", "SAUIL", "SAUROPOD",
	"SAVOURING", "SAWAN", "SAX", "SAXIMATA", "SAXOPHONE", "SBRUL",
	"SBUB", "SCALES", "SCARF", "SCEPTER", "SCHOLAR", "SCHROEDER",
	"SCORE", "SCORPION", "SCORPIUS", "SCREAMING", "SCREWDRIVER", "SCROLL",
	"SCRUPLE", "SCWA", "SD", "SDONG", "SEAGULL", "SEAT",
	"SECRET", "SECTOR", "SEDNA", "SEEDLING", "SEENU", "SEEV",
	"SELENA", "SELFIE", "SEMISEXTILE", "SEMK", "SEMUNCIA", "SENTAGON",
	"SENTI", "SENTO", "SEP", "SEPARATED", "SEPTEMBER", "SEPTUPLE",
	"SERIOUS", "SERVICE", "SESQUIQUADRATE", "SESTERTIUS", "SETFON", "SEUAEQ",
	"SEUNYAM", "SEVENTH", "SEVERANCE", "SEWING", "SEX", "SEXTANS",
	"SEXTILE", "SEYK", "SG", "SGOR", "SGRA", "SH2",
	"SHAB6", "SHAK", "SHAKER", "SHAKTI", "SHALLOW", "SHALSHELET",
	"SHAMROCK", "SHANKED", "SHAP", "SHAPE", "SHARA", "SHARK",
	"SHAVED", "SHAVIYANI", "SHAX", "SHAY", "SHCHOOI", "SHEENU",
	"SHEG9", "SHEN", "SHEP", "SHEQEL", "SHESH2", "SHESHLAM",
	"SHEUAE", "SHEUAEQ", "SHEUAEQTU", "SHEUOQ", "SHEVA", "SHEX",
	"SHIIN", "SHINDA", "SHINIG", "SHINTO", "SHIRAE", "SHIYYAALAA",
	"SHOA", "SHOCKED", "SHOES", "SHOOI", "SHOOT", "SHOOTING",
	"SHORTCAKE", "SHORTENER", "SHOT", "SHOU", "SHOULDERED", "SHOWER",
	"SHOX", "SHRA", "SHRAA", "SHRII", "SHRINE", "SHRO",
	"SHROO", "SHRUG", "SHUANGXI", "SHUBUR", "SHUENSHUET", "SHUEQ",
	"SHUFFLE", "SHUL", "SHUM", "SHUO", "SHUOP", "SHUOX",
	"SHUP", "SHURX", "SHUT", "SHUTTLECOCK", "SHUX", "SHV",
	"SHWOY", "SHYA", "SHYE", "SHYP", "SHYR", "SHYRX",
	"SHYT", "SHYX", "SIA", "SICKLE", "SICKNESS", "SIDDHI",
	"SIE", "SIEE", "SIEP", "SIEX", "SIGEL", "SIKI",
	"SILIQUA", "SILVER", "SINE", "SINGAAT", "SINKING", "SINOLOGICAL",
	"SINUSOID", "SIP", "SIRINGU", "SIRRAH", "SISA", "SIT",
	"SITE", "SK", "SKATEBOARD", "SKIER", "SKIN", "SKOBA",
	"SKUNK", "SKW", "SKWA", "SLAVE", "SLAVONIC", "SLED",
	"SLEEP", "SLEEPY", "SLEUTH", "SLIDE", "SLIDER", "SLIDING",
	"SLING", "SLOPE", "SLOT", "SLOTH", "SLOWLY", "SMEAR",
	"SMIRKING", "SNA", "SNAIL", "SNAP", "SNEEZING", "SNOWBOARDER",
	"SOA", "SOCCER", "SOCKS", "SOFTBALL", "SOFTNESS", "SOFTWARE",
	"SON", "SONG", "SONJAM", "SOON", "SOP", "SOQ",
	"SORI", "SOS", "SOUNAP", "SOW", "SOWILO", "SOX",
	"SOY", "SP", "SPA", "SPAGHETTI", "SPANISH", "SPARKLER",
	"SPARKLES", "SPARKLING", "SPATHI", "SPE", "SPEAK", "SPEAKING",
	"SPEEDBOAT", "SPENT", "SPESMILO", "SPI", "SPICE", "SPINE",
	"SPIRANT", "SPLASHING", "SPLITTING", "SPO", "SPONGE", "SPOOL",
	"SPORTS", "SPOT", "SPOUTING", "SPRECHGESANG", "SPRING", "SPRINGS",
	"SPROUT", "SPUNGS", "SPWA", "SPY", "SQUEEZED", "SQUID",
	"SQUISH", "SR", "SSAA", "SSANGARAEA", "SSANGMIEUM", "SSANGTHIEUTH",
	"SSANGYEORINHIEUH", "SSAP", "SSAT", "SSAX", "SSEE", "SSEP",
	"SSEX", "SSHE", "SSHIN", "SSIE", "SSIEP", "SSIEX",
	"SSIP", "SSIT", "SSIX", "SSOP", "SSOT", "SSOX",
	"SSUP", "SSUT", "SSUX", "SSY", "SSYP", "SSYR",
	"SSYRX", "SSYT", "SSYX", "ST2", "STACCATISSIMO", "STACKED",
	"STADIUM", "STAGE", "STALLION", "STAN", "STAND", "STANDING",
	"STANDSTILL", "STARK", "STARRED", "STARS", "STARTING", "STATION",
	"STATUE", "STAUROS", "STAVROU", "STEAMING", "STEAMY", "STENOGRAPHIC",
	"STEREO", "STETHOSCOPE", "STILL", "STIMME", "STIRRUP", "STOPPAGE",
	"STOPPING", "STOPWATCH", "STOVE", "STRAGGISMATA", "STRAIF", "STRAIGHTNESS",
	"STRAINER", "STRATIAN", "STRAW", "STRAWBERRY", "STREAMER", "STRENGTH",
	"STRETCH", "STRICTLY", "STRIDE", "STRIKETHROUGH", "STRIPE", "STUDIO",
	"STUFFED", "STUPA", "STWA", "SUAB", "SUAE", "SUAEN",
	"SUAET", "SUAM", "SUBHAANAHU", "SUBITO", "SUBJECT", "SUBLIMATION",
	"SUBPUNCTIS", "SUCK", "SUCKING", "SUD", "SUD2", "SUITABLE",
	"SUMASH", "SUMMER", "SUNFLOWER", "SUNSET", "SUO", "SUOP",
	"SUOX", "SUP", "SUPERFIXED", "SUPERHERO", "SUPERIMPOSED", "SUPERVILLAIN",
	"SUR9", "SURE", "SURFER", "SURX", "SURYA", "SUSHI",
	"SUT", "SUTRA", "SUX", "SVETLO", "SVETLY", "SWAN",
	"SWG", "SWIMMER", "SWIMMING", "SWIMSUIT", "SWORD", "SWORDS",
	"SWUNG", "SWZ", "SY", "SYA", "SYI", "SYMMETRY",
	"SYNAFI", "SYNAGOGUE", "SYNCHRONOUS", "SYNDESMOS", "SYNEVMA", "SYOUWA",
	"SYP", "SYR", "SYRINGE", "SYRMA", "SYRMATIKI", "SYRX",
	"SYT", "SYX", "SZ", "SZA", "SZAA", "SZE",
	"SZEE", "SZI", "SZO", "SZU", "SZWA", "SZWG",
	"SZZ", "T001", "T002", "T003", "T003A", "T004",
	"T005", "T006", "T007", "T007A", "T008", "T008A",
	"T009", "T009A", "T010", "T011", "T011A", "T012",
	"T013", "T014", "T015", "T016", "T016A", "T017",
	"T018", "T019", "T020", "T021", "T022", "T023",
	"T024", "T025", "T026", "T027", "T028", "T029",
	"T030", "T031", "T032", "T032A", "T033", "T033A",
	"T034", "T035", "T036", "TA2", "TAAF", "TAAI",
	"TAAM", "TAAQ", "TAASHAE", "TABAARAKA", "TABS", "TACO",
	"TAEN", "TAHALA", "TAILLESS", "TAISYOU", "TAK", "TAKE",
	"TAKEOUT", "TAKHALLUS", "TALENT", "TAMALE", "TAMAN", "TANA",
	"TANABATA", "TANG", "TANGERINE", "TAO", "TAP", "TAPER",
	"TAQ", "TARUNG", "TAS", "TASHEEL", "TASSI", "TATTOOED",
	"TAUM", "TAURUS", "TAVIYANI", "TAWA", "TAWELLEMET", "TAX",
	"TAY", "TEA", "TEACUP", "TEAPOT", "TEDDY", "TEEEE",
	"TEENS", "TEGEH", "TEIWS", "TEK", "TELESCOPE", "TELEVISION",
	"TELLER", "TELU", "TEMPLE", "TENGE", "TENUTO", "TEP",
	"TERMINATOR", "TESSARON", "TEST", "TETRAFONIAS", "TETRAPLI", "TEU",
	"TEUN", "TEUT", "TEUTEUWEN", "TEUTEUX", "TEVIR", "TEX",
	"THAALU", "THAHAN", "THAJ", "THALATHA", "THAMEDH", "THANNA",
	"THANTHAKHAT", "THAW", "THEA", "THEREFORE", "THERMODYNAMIC", "THES",
	"THETH", "THEY", "THIAB", "THICK", "THIGH", "THING",
	"THINKING", "THITA", "THIUTH", "THOA", "THOJ", "THOM",
	"THOU", "THROWING", "THUNDERSTORM", "THUNG", "THURISAZ", "THURS",
	"THWE", "THWEE", "THWI", "THWII", "THWO", "THWOO",
	"THYOOM", "THZ", "TI2", "TIARA", "TICKET", "TICKETS",
	"TIEP", "TIEX", "TII", "TILES", "TILT", "TIMER",
	"TIN", "TINAGMA", "TINCTURE", "TING", "TINNE", "TIPEHA",
	"TIPPED", "TIPPI", "TIRED", "TIRTA", "TIRYAK", "TITUAEP",
	"TIWAZ", "TIWR", "TIX", "TLEE", "TLHEE", "TLHOO",
	"TLHU", "TLHWE", "TLHYA", "TN", "TOA", "TOANDAKHIAT",
	"TOCHKA", "TOILET", "TOKYO", "TOLONG", "TOMATO", "TOMPI",
	"TON", "TONG", "TOOLBOX", "TOON", "TOOTHBRUSH", "TORCH",
	"TORNADO", "TOS", "TOUCHES", "TOURNOIS", "TOV", "TOWER",
	"TOX", "TR", "TRACKBALL", "TRACTOR", "TRADE", "TRAILING",
	"TRAMWAY", "TRANSPLUTO", "TRANSVERSAL", "TRAP", "TRAPEZIUM", "TREADING",
	"TREDECILE", "TRESVETLO", "TRESVETLY", "TRI", "TRIA", "TRIFOLIATE",
	"TRIFONIAS", "TRIGORGON", "TRIISAP", "TRILL", "TRILLIONS", "TRION",
	"TRIPLI", "TRIPOD", "TRITOS", "TRIUMPH", "TROLL", "TROLLEY",
	"TROLLEYBUS", "TROMIKOLYGISMA", "TROMIKOPARAKALESMA", "TROMIKOPSIFISTON", "TROMIKOSYNAGMA", "TROPHY",
	"TRUMPET", "TRUNCATED", "TRUTH", "TRYASKA", "TRYASOGLASNAYA", "TRYASOPOVODNAYA",
	"TRYASOSTRELNAYA", "TRYBLION", "TSAA", "TSAADIY", "TSAB", "TSEEB",
	"TSERE", "TSHAB", "TSHEEJ", "TSHOOJ", "TSHUGS", "TSIU",
	"TSOV", "TSSA", "TSWA", "TSWB", "TT2", "TTEE",
	"TTH", "TTHEE", "TTHOO", "TTHU", "TTHWE", "TTSA",
	"TTSE", "TTSEE", "TTSI", "TTSO", "TTSU", "TTTHA",
	"TTU", "TTUDDAG", "TUAE", "TUAEP", "TUB", "TUBE",
	"TUGRIK", "TUKWENTIS", "TULIP", "TUMAE", "TUMBLER", "TUMETES",
	"TUNNY", "TUO", "TUOP", "TUOX", "TUPNI", "TURKEY",
	"TURKISH", "TURO2", "TURU", "TURX", "TUT", "TUTEYASAT",
	"TUTTY", "TUUMU", "TUX", "TUXEDO", "TVIMADUR", "TWELFTH",
	"TWISTED", "TWISTING", "TXA", "TXHEEJ", "TYA", "TYAY",
	"TYE", "TYI", "TYO", "TZA", "TZAA", "TZE",
	"TZEE", "TZI", "TZIR", "TZO", "TZOA", "TZU",
	"U001", "U002", "U003", "U004", "U005", "U006",
	"U006A", "U006B", "U007", "U008", "U009", "U010",
	"U011", "U012", "U013", "U014", "U015", "U016",
	"U017", "U018", "U019", "U020", "U021", "U022",
	"U023", "U023A", "U024", "U025", "U026", "U027",
	"U028", "U029", "U029A", "U030", "U031", "U032",
	"U032A", "U033", "U034", "U035", "U036", "U037",
	"U038", "U039", "U040", "U041", "U042", "UAN",
	"UANG", "UATH", "UBHAYATO", "UBUFILI", "UDAAT", "UDARKA",
	"UDUG", "UEA", "UEC", "UEE", "UEI", "UEN",
	"UEQ", "UEY", "UHD", "UIC", "UILLEANN", "UIQ",
	"UIUC", "UIUQ", "UIUX", "UIUZ", "UIX", "UIZ",
	"UMBIN", "UNA", "UNAMUSED", "UNAP", "UNASPIRATED", "UNBLENDED",
	"UNCERTAINTY", "UNCIA", "UNDERDOT", "UNDO", "UNEVEN", "UNG",
	"UNICORN", "UNIFORM", "UNITED", "UNITY", "UNKNOWN", "UNMARRIED",
	"UOG", "UON", "UOP", "UOX", "UPRIGHT", "UPSIDE",
	"UQ", "UR4", "URA", "URI", "URI3", "URINE",
	"URN", "URUS", "URUZ", "USE", "USH2", "USHENNA",
	"USHUMX", "USHX", "USSU", "USSU3", "UTUKI", "UUU",
	"UUU2", "UUU3", "UUUU", "UUYANNA", "UWU", "UX",
	"UYANNA", "UZ", "UZHAKKU", "UZU", "V001", "V001A",
	"V001B", "V001C", "V001D", "V001E", "V001F", "V001G",
	"V001H", "V001I", "V002", "V002A", "V003", "V004",
	"V005", "V006", "V007", "V007A", "V007B", "V008",
	"V009", "V010", "V011", "V011A", "V011B", "V011C",
	"V012", "V012A", "V012B", "V013", "V014", "V015",
	"V016", "V017", "V018", "V019", "V020", "V020A",
	"V020B", "V020C", "V020D", "V020E", "V020F", "V020G",
	"V020H", "V020I", "V020J", "V020K", "V020L", "V021",
	"V022", "V023", "V023A", "V024", "V025", "V026",
	"V027", "V028", "V028A", "V029", "V029A", "V030",
	"V030A", "V031", "V031A", "V032", "V033", "V033A",
	"V034", "V035", "V036", "V037", "V037A", "V038",
	"V039", "V040", "V040A", "VAAVU", "VAJ", "VAKAIYARAA",
	"VALLEY", "VAMPIRE", "VAP", "VAPOURS", "VARAAKAN", "VAREIAI",
	"VARIKA", "VARYS", "VASIS", "VASTNESS", "VAT", "VATHY",
	"VAU", "VAX", "VAYANNA", "VC", "VECTOR", "VEHICLE",
	"VEIL", "VELI", "VER", "VERDIGRIS", "VERGE", "VERSICLE",
	"VEST", "VESTA", "VEUAE", "VEUAEPEN", "VEUM", "VEUX",
	"VEX", "VEYZ", "VFA", "VHA", "VIBRATION", "VIDEOCASSETTE",
	"VIE", "VIEP", "VIEWDATA", "VIEWER", "VIEWING", "VIEX",
	"VIGINTILE", "VILLAGE", "VIOLIN", "VIP", "VIRGA", "VIRGO",
	"VIRIAM", "VISARGAYA", "VIT", "VIX", "VOCALIZATION", "VOD",
	"VOICELESS", "VOID", "VOIDED", "VOLCANO", "VOLLEYBALL", "VOLTAGE",
	"VOLUME", "VOM", "VOMITING", "VOOI", "VOP", "VOT",
	"VOW", "VOX", "VQ", "VS", "VUEQ", "VULCANUS",
	"VUP", "VURX", "VUT", "VUX", "VW", "VWA",
	"VWJ", "VX", "VYP", "VYR", "VYRX", "VYT",
	"VYX", "VZ", "VZMET", "W001", "W002", "W003",
	"W003A", "W004", "W005", "W006", "W007", "W008",
	"W009", "W009A", "W010", "W010A", "W011", "W012",
	"W013", "W014", "W014A", "W015", "W016", "W017",
	"W017A", "W018", "W018A", "W019", "W020", "W021",
	"W022", "W023", "W024", "W024A", "W025", "WAAALIHEE",
	"WAAJIB", "WAAVU", "WADDA", "WAEN", "WAFFLE", "WAI",
	"WAIST", "WAN", "WAND", "WANDERER", "WANGKUOQ", "WAQFA",
	"WARNING", "WAS", "WASSALLAM", "WASTEBASKET", "WASTING", "WAT",
	"WATERMELON", "WATTO", "WB", "WEAPON", "WEB", "WEDDING",
	"WEEN", "WELL", "WEN", "WEP", "WET", "WEUX",
	"WEX", "WG", "WH", "WHEELED", "WIANG", "WIANGWAAK",
	"WIDENING", "WIGGLES", "WIGNYAN", "WILTED", "WIN", "WINGS",
	"WINJA", "WINK", "WINTER", "WIRED", "WOA", "WOE",
	"WOLF", "WOMEN", "WOMENS", "WOON", "WOP", "WORDSPACE",
	"WORKER", "WORLD", "WORM", "WORRIED", "WORSHIP", "WOW",
	"WOX", "WRAP", "WRAPPED", "WREATH", "WRESTLERS", "WRONG",
	"WRY", "WUAEN", "WUAET", "WUI", "WUN", "WUNJO",
	"WUOP", "WUOX", "WUP", "WVA", "WVE", "WVI",
	"WZ", "X001", "X002", "X003", "X004", "X004A",
	"X004B", "X005", "X006", "X006A", "X007", "X008",
	"X008A", "XAA", "XAPH", "XAU", "XAUS", "XEE",
	"XESTES", "XEYN", "XG", "XHEYN", "XIAB", "XIE",
	"XIEP", "XIET", "XIEX", "XIP", "XIRON", "XIT",
	"XIX", "XOA", "XOP", "XOPH", "XOR", "XOT",
	"XOX", "XSHAAYATHIYA", "XU", "XUO", "XUOX", "XVE",
	"XWA", "XWAA", "XWE", "XWEE", "XWI", "XY",
	"XYAA", "XYEE", "XYI", "XYO", "XYOO", "XYOOJ",
	"XYP", "XYR", "XYRX", "XYT", "XYU", "XYX",
	"Y001", "Y001A", "Y002", "Y003", "Y004", "Y005",
	"Y006", "Y007", "Y008", "YAADO", "YAAI", "YAARU",
	"YAB", "YABH", "YACH", "YAD", "YADD", "YADDH",
	"YADH", "YAEMMAE", "YAF", "YAFU", "YAG", "YAGHH",
	"YAGN", "YAHH", "YAKASH", "YAKHH", "YAL", "YAMAKKAN",
	"YAMOK", "YARN", "YARR", "YAS", "YASH", "YASS",
	"YATH", "YATT", "YAU", "YAV", "YAW", "YAWNING",
	"YAYANNA", "YAYD", "YAZZ", "YEA", "YEEG", "YEIN",
	"YENAP", "YERAH", "YETIV", "YEUAE", "YEUAET", "YEUM",
	"YEUQ", "YEURAE", "YEUX", "YEW", "YEY", "YHA",
	"YIEE", "YIEP", "YIET", "YIEX", "YIH", "YII",
	"YING", "YIP", "YIX", "YIZET", "YOA", "YOMO",
	"YOP", "YORI", "YOU", "YOUTHFUL", "YOUTHFULNESS", "YOWD",
	"YOX", "YOY", "YPORROI", "YPSILI", "YRY", "YUAEN",
	"YUAN", "YUE", "YUEQ", "YUI", "YUN", "YUO",
	"YUOM", "YUOT", "YUOX", "YUP", "YUR", "YURX",
	"YUUKALEAPINTU", "YUX", "YYAA", "YYE", "YYP", "YYR",
	"YYRX", "YYT", "YYX", "Z001", "Z002", "Z002A",
	"Z002B", "Z002C", "Z002D", "Z003", "Z003A", "Z003B",
	"Z004", "Z004A", "Z005", "Z005A", "Z006", "Z007",
	"Z008", "Z009", "Z010", "Z011", "Z012", "Z013",
	"Z014", "Z015", "Z015A", "Z015B", "Z015C", "Z015D",
	"Z015E", "Z015F", "Z015G", "Z015H", "Z015I", "Z016",
	"Z016A", "Z016B", "Z016C", "Z016D", "Z016E", "Z016F",
	"Z016G", "Z016H", "ZAEF", "ZAG", "ZAI", "ZAKRYTOE",
	"ZAMX", "ZANOZHEK", "ZAP", "ZAPYATYMI", "ZARL", "ZARQA",
	"ZAT", "ZAVIYANI", "ZAX", "ZE2", "ZEBRA", "ZELO",
	"ZEP", "ZEUS", "ZEVOK", "ZEX", "ZH", "ZHAA",
	"ZHAIN", "ZHAP", "ZHAT", "ZHAX", "ZHAYIN", "ZHEP",
	"ZHET", "ZHEX", "ZHIL", "ZHOI", "ZHOO", "ZHOP",
	"ZHOT", "ZHOX", "ZHUO", "ZHUOP", "ZHUOX", "ZHUP",
	"ZHUR", "ZHURX", "ZHUT", "ZHUX", "ZHWA", "ZHY",
	"ZHYP", "ZHYR", "ZHYRX", "ZHYT", "ZHYX", "ZI3",
	"ZIE", "ZIEP", "ZIEX", "ZIG", "ZILDE", "ZINOR",
	"ZIP", "ZIPPER", "ZIQAA", "ZIT", "ZIX", "ZMEYTSA",
	"ZOA", "ZOMBIE", "ZOP", "ZOX", "ZRA", "ZSA",
	"ZSHA", "ZUBUR", "ZUM", "ZUO", "ZUOP", "ZUOX",
	"ZURX", "ZUT", "ZUX", "ZWA", "ZWARAKAY", "ZWJ",
	"ZYGOS", "ZYP", "ZYR", "ZYRX", "ZYT", "ZYX",
	"ZZAA", "ZZAP", "ZZAT", "ZZAX", "ZZEE", "ZZEP",
	"ZZEX", "ZZIE", "ZZIEP", "ZZIEX", "ZZIP", "ZZIT",
	"ZZIX", "ZZOP", "ZZOX", "ZZSA", "ZZSYA", "ZZUP",
	"ZZUR", "ZZURX", "ZZUX", "ZZY", "ZZYA", "ZZYP",
	"ZZYR", "ZZYRX", "ZZYT", "ZZYX",
}

// enumRanges maps runs of code-points with listed names to their slot in
// wordOffsets.
var enumRanges = []enumRange{
	{0x20, 0x7E, 0}, {0xA0, 0x377, 96}, {0x37A, 0x37F, 825}, {0x384, 0x38A, 832},
	{0x38C, 0x38C, 840}, {0x38E, 0x3A1, 842}, {0x3A3, 0x52F, 863}, {0x531, 0x556, 1261},
	{0x559, 0x58A, 1300}, {0x58D, 0x58F, 1351}, {0x591, 0x5C7, 1355}, {0x5D0, 0x5EA, 1411},
	{0x5EF, 0x5F4, 1439}, {0x600, 0x70D, 1446}, {0x70F, 0x74A, 1717}, {0x74D, 0x7B1, 1778},
	{0x7C0, 0x7FA, 1880}, {0x7FD, 0x82D, 1940}, {0x830, 0x83E, 1990}, {0x840, 0x85B, 2006},
	{0x85E, 0x85E, 2035}, {0x860, 0x86A, 2037}, {0x870, 0x88E, 2049}, {0x890, 0x891, 2081},
	{0x898, 0x983, 2084}, {0x985, 0x98C, 2321}, {0x98F, 0x990, 2330}, {0x993, 0x9A8, 2333},
	{0x9AA, 0x9B0, 2356}, {0x9B2, 0x9B2, 2364}, {0x9B6, 0x9B9, 2366}, {0x9BC, 0x9C4, 2371},
	{0x9C7, 0x9C8, 2381}, {0x9CB, 0x9CE, 2384}, {0x9D7, 0x9D7, 2389}, {0x9DC, 0x9DD, 2391},
	{0x9DF, 0x9E3, 2394}, {0x9E6, 0x9FE, 2400}, {0xA01, 0xA03, 2426}, {0xA05, 0xA0A, 2430},
	{0xA0F, 0xA10, 2437}, {0xA13, 0xA28, 2440}, {0xA2A, 0xA30, 2463}, {0xA32, 0xA33, 2471},
	{0xA35, 0xA36, 2474}, {0xA38, 0xA39, 2477}, {0xA3C, 0xA3C, 2480}, {0xA3E, 0xA42, 2482},
	{0xA47, 0xA48, 2488}, {0xA4B, 0xA4D, 2491}, {0xA51, 0xA51, 2495}, {0xA59, 0xA5C, 2497},
	{0xA5E, 0xA5E, 2502}, {0xA66, 0xA76, 2504}, {0xA81, 0xA83, 2522}, {0xA85, 0xA8D, 2526},
	{0xA8F, 0xA91, 2536}, {0xA93, 0xAA8, 2540}, {0xAAA, 0xAB0, 2563}, {0xAB2, 0xAB3, 2571},
	{0xAB5, 0xAB9, 2574}, {0xABC, 0xAC5, 2580}, {0xAC7, 0xAC9, 2591}, {0xACB, 0xACD, 2595},
	{0xAD0, 0xAD0, 2599}, {0xAE0, 0xAE3, 2601}, {0xAE6, 0xAF1, 2606}, {0xAF9, 0xAFF, 2619},
	{0xB01, 0xB03, 2627}, {0xB05, 0xB0C, 2631}, {0xB0F, 0xB10, 2640}, {0xB13, 0xB28, 2643},
	{0xB2A, 0xB30, 2666}, {0xB32, 0xB33, 2674}, {0xB35, 0xB39, 2677}, {0xB3C, 0xB44, 2683},
	{0xB47, 0xB48, 2693}, {0xB4B, 0xB4D, 2696}, {0xB55, 0xB57, 2700}, {0xB5C, 0xB5D, 2704},
	{0xB5F, 0xB63, 2707}, {0xB66, 0xB77, 2713}, {0xB82, 0xB83, 2732}, {0xB85, 0xB8A, 2735},
	{0xB8E, 0xB90, 2742}, {0xB92, 0xB95, 2746}, {0xB99, 0xB9A, 2751}, {0xB9C, 0xB9C, 2754},
	{0xB9E, 0xB9F, 2756}, {0xBA3, 0xBA4, 2759}, {0xBA8, 0xBAA, 2762}, {0xBAE, 0xBB9, 2766},
	{0xBBE, 0xBC2, 2779}, {0xBC6, 0xBC8, 2785}, {0xBCA, 0xBCD, 2789}, {0xBD0, 0xBD0, 2794},
	{0xBD7, 0xBD7, 2796}, {0xBE6, 0xBFA, 2798}, {0xC00, 0xC0C, 2820}, {0xC0E, 0xC10, 2834},
	{0xC12, 0xC28, 2838}, {0xC2A, 0xC39, 2862}, {0xC3C, 0xC44, 2879}, {0xC46, 0xC48, 2889},
	{0xC4A, 0xC4D, 2893}, {0xC55, 0xC56, 2898}, {0xC58, 0xC5A, 2901}, {0xC5D, 0xC5D, 2905},
	{0xC60, 0xC63, 2907}, {0xC66, 0xC6F, 2912}, {0xC77, 0xC8C, 2923}, {0xC8E, 0xC90, 2946},
	{0xC92, 0xCA8, 2950}, {0xCAA, 0xCB3, 2974}, {0xCB5, 0xCB9, 2985}, {0xCBC, 0xCC4, 2991},
	{0xCC6, 0xCC8, 3001}, {0xCCA, 0xCCD, 3005}, {0xCD5, 0xCD6, 3010}, {0xCDD, 0xCDE, 3013},
	{0xCE0, 0xCE3, 3016}, {0xCE6, 0xCEF, 3021}, {0xCF1, 0xCF2, 3032}, {0xD00, 0xD0C, 3035},
	{0xD0E, 0xD10, 3049}, {0xD12, 0xD44, 3053}, {0xD46, 0xD48, 3105}, {0xD4A, 0xD4F, 3109},
	{0xD54, 0xD63, 3116}, {0xD66, 0xD7F, 3133}, {0xD81, 0xD83, 3160}, {0xD85, 0xD96, 3164},
	{0xD9A, 0xDB1, 3183}, {0xDB3, 0xDBB, 3208}, {0xDBD, 0xDBD, 3218}, {0xDC0, 0xDC6, 3220},
	{0xDCA, 0xDCA, 3228}, {0xDCF, 0xDD4, 3230}, {0xDD6, 0xDD6, 3237}, {0xDD8, 0xDDF, 3239},
	{0xDE6, 0xDEF, 3248}, {0xDF2, 0xDF4, 3259}, {0xE01, 0xE3A, 3263}, {0xE3F, 0xE5B, 3322},
	{0xE81, 0xE82, 3352}, {0xE84, 0xE84, 3355}, {0xE86, 0xE8A, 3357}, {0xE8C, 0xEA3, 3363},
	{0xEA5, 0xEA5, 3388}, {0xEA7, 0xEBD, 3390}, {0xEC0, 0xEC4, 3414}, {0xEC6, 0xEC6, 3420},
	{0xEC8, 0xECD, 3422}, {0xED0, 0xED9, 3429}, {0xEDC, 0xEDF, 3440}, {0xF00, 0xF47, 3445},
	{0xF49, 0xF6C, 3518}, {0xF71, 0xF97, 3555}, {0xF99, 0xFBC, 3595}, {0xFBE, 0xFCC, 3632},
	{0xFCE, 0xFDA, 3648}, {0x1000, 0x10C5, 3662}, {0x10C7, 0x10C7, 3861}, {0x10CD, 0x10CD, 3863},
	{0x10D0, 0x1248, 3865}, {0x124A, 0x124D, 4243}, {0x1250, 0x1256, 4248}, {0x1258, 0x1258, 4256},
	{0x125A, 0x125D, 4258}, {0x1260, 0x1288, 4263}, {0x128A, 0x128D, 4305}, {0x1290, 0x12B0, 4310},
	{0x12B2, 0x12B5, 4344}, {0x12B8, 0x12BE, 4349}, {0x12C0, 0x12C0, 4357}, {0x12C2, 0x12C5, 4359},
	{0x12C8, 0x12D6, 4364}, {0x12D8, 0x1310, 4380}, {0x1312, 0x1315, 4438}, {0x1318, 0x135A, 4443},
	{0x135D, 0x137C, 4511}, {0x1380, 0x1399, 4544}, {0x13A0, 0x13F5, 4571}, {0x13F8, 0x13FD, 4658},
	{0x1400, 0x169C, 4665}, {0x16A0, 0x16F8, 5335}, {0x1700, 0x1715, 5425}, {0x171F, 0x1736, 5448},
	{0x1740, 0x1753, 5473}, {0x1760, 0x176C, 5494}, {0x176E, 0x1770, 5508}, {0x1772, 0x1773, 5512},
	{0x1780, 0x17DD, 5515}, {0x17E0, 0x17E9, 5610}, {0x17F0, 0x17F9, 5621}, {0x1800, 0x1819, 5632},
	{0x1820, 0x1878, 5659}, {0x1880, 0x18AA, 5749}, {0x18B0, 0x18F5, 5793}, {0x1900, 0x191E, 5864},
	{0x1920, 0x192B, 5896}, {0x1930, 0x193B, 5909}, {0x1940, 0x1940, 5922}, {0x1944, 0x196D, 5924},
	{0x1970, 0x1974, 5967}, {0x1980, 0x19AB, 5973}, {0x19B0, 0x19C9, 6018}, {0x19D0, 0x19DA, 6045},
	{0x19DE, 0x1A1B, 6057}, {0x1A1E, 0x1A5E, 6120}, {0x1A60, 0x1A7C, 6186}, {0x1A7F, 0x1A89, 6216},
	{0x1A90, 0x1A99, 6228}, {0x1AA0, 0x1AAD, 6239}, {0x1AB0, 0x1ACE, 6254}, {0x1B00, 0x1B4C, 6286},
	{0x1B50, 0x1B7E, 6364}, {0x1B80, 0x1BF3, 6412}, {0x1BFC, 0x1C37, 6529}, {0x1C3B, 0x1C49, 6590},
	{0x1C4D, 0x1C88, 6606}, {0x1C90, 0x1CBA, 6667}, {0x1CBD, 0x1CC7, 6711}, {0x1CD0, 0x1CFA, 6723},
	{0x1D00, 0x1F15, 6767}, {0x1F18, 0x1F1D, 7302}, {0x1F20, 0x1F45, 7309}, {0x1F48, 0x1F4D, 7348},
	{0x1F50, 0x1F57, 7355}, {0x1F59, 0x1F59, 7364}, {0x1F5B, 0x1F5B, 7366}, {0x1F5D, 0x1F5D, 7368},
	{0x1F5F, 0x1F7D, 7370}, {0x1F80, 0x1FB4, 7402}, {0x1FB6, 0x1FC4, 7456}, {0x1FC6, 0x1FD3, 7472},
	{0x1FD6, 0x1FDB, 7487}, {0x1FDD, 0x1FEF, 7494}, {0x1FF2, 0x1FF4, 7514}, {0x1FF6, 0x1FFE, 7518},
	{0x2000, 0x2064, 7528}, {0x2066, 0x2071, 7630}, {0x2074, 0x208E, 7643}, {0x2090, 0x209C, 7671},
	{0x20A0, 0x20C0, 7685}, {0x20D0, 0x20F0, 7719}, {0x2100, 0x218B, 7753}, {0x2190, 0x2426, 7894},
	{0x2440, 0x244A, 8558}, {0x2460, 0x2B73, 8570}, {0x2B76, 0x2B95, 10383}, {0x2B97, 0x2CF3, 10416},
	{0x2CF9, 0x2D25, 10766}, {0x2D27, 0x2D27, 10812}, {0x2D2D, 0x2D2D, 10814}, {0x2D30, 0x2D67, 10816},
	{0x2D6F, 0x2D70, 10873}, {0x2D7F, 0x2D96, 10876}, {0x2DA0, 0x2DA6, 10901}, {0x2DA8, 0x2DAE, 10909},
	{0x2DB0, 0x2DB6, 10917}, {0x2DB8, 0x2DBE, 10925}, {0x2DC0, 0x2DC6, 10933}, {0x2DC8, 0x2DCE, 10941},
	{0x2DD0, 0x2DD6, 10949}, {0x2DD8, 0x2DDE, 10957}, {0x2DE0, 0x2E5D, 10965}, {0x2E80, 0x2E99, 11092},
	{0x2E9B, 0x2EF3, 11119}, {0x2F00, 0x2FD5, 11209}, {0x2FF0, 0x2FFB, 11424}, {0x3000, 0x303F, 11437},
	{0x3041, 0x3096, 11502}, {0x3099, 0x30FF, 11589}, {0x3105, 0x312F, 11693}, {0x3131, 0x318E, 11737},
	{0x3190, 0x31E3, 11832}, {0x31F0, 0x321E, 11917}, {0x3220, 0x33FF, 11965}, {0x4DC0, 0x4DFF, 12446},
	{0xA000, 0xA48C, 12511}, {0xA490, 0xA4C6, 13677}, {0xA4D0, 0xA62B, 13733}, {0xA640, 0xA6F7, 14082},
	{0xA700, 0xA7CA, 14267}, {0xA7D0, 0xA7D1, 14471}, {0xA7D3, 0xA7D3, 14474}, {0xA7D5, 0xA7D9, 14476},
	{0xA7F2, 0xA82C, 14482}, {0xA830, 0xA839, 14542}, {0xA840, 0xA877, 14553}, {0xA880, 0xA8C5, 14610},
	{0xA8CE, 0xA8D9, 14681}, {0xA8E0, 0xA953, 14694}, {0xA95F, 0xA97C, 14811}, {0xA980, 0xA9CD, 14842},
	{0xA9CF, 0xA9D9, 14921}, {0xA9DE, 0xA9FE, 14933}, {0xAA00, 0xAA36, 14967}, {0xAA40, 0xAA4D, 15023},
	{0xAA50, 0xAA59, 15038}, {0xAA5C, 0xAAC2, 15049}, {0xAADB, 0xAAF6, 15153}, {0xAB01, 0xAB06, 15182},
	{0xAB09, 0xAB0E, 15189}, {0xAB11, 0xAB16, 15196}, {0xAB20, 0xAB26, 15203}, {0xAB28, 0xAB2E, 15211},
	{0xAB30, 0xAB6B, 15219}, {0xAB70, 0xABED, 15280}, {0xABF0, 0xABF9, 15407}, {0xD7B0, 0xD7C6, 15418},
	{0xD7CB, 0xD7FB, 15442}, {0xF900, 0xFA6D, 15492}, {0xFA70, 0xFAD9, 15859}, {0xFB00, 0xFB06, 15966},
	{0xFB13, 0xFB17, 15974}, {0xFB1D, 0xFB36, 15980}, {0xFB38, 0xFB3C, 16007}, {0xFB3E, 0xFB3E, 16013},
	{0xFB40, 0xFB41, 16015}, {0xFB43, 0xFB44, 16018}, {0xFB46, 0xFBC2, 16021}, {0xFBD3, 0xFD8F, 16147},
	{0xFD92, 0xFDC7, 16593}, {0xFDCF, 0xFDCF, 16648}, {0xFDF0, 0xFE19, 16650}, {0xFE20, 0xFE52, 16693},
	{0xFE54, 0xFE66, 16745}, {0xFE68, 0xFE6B, 16765}, {0xFE70, 0xFE74, 16770}, {0xFE76, 0xFEFC, 16776},
	{0xFEFF, 0xFEFF, 16912}, {0xFF01, 0xFFBE, 16914}, {0xFFC2, 0xFFC7, 17105}, {0xFFCA, 0xFFCF, 17112},
	{0xFFD2, 0xFFD7, 17119}, {0xFFDA, 0xFFDC, 17126}, {0xFFE0, 0xFFE6, 17130}, {0xFFE8, 0xFFEE, 17138},
	{0xFFF9, 0xFFFD, 17146}, {0x10000, 0x1000B, 17152}, {0x1000D, 0x10026, 17165}, {0x10028, 0x1003A, 17192},
	{0x1003C, 0x1003D, 17212}, {0x1003F, 0x1004D, 17215}, {0x10050, 0x1005D, 17231}, {0x10080, 0x100FA, 17246},
	{0x10100, 0x10102, 17370}, {0x10107, 0x10133, 17374}, {0x10137, 0x1018E, 17420}, {0x10190, 0x1019C, 17509},
	{0x101A0, 0x101A0, 17523}, {0x101D0, 0x101FD, 17525}, {0x10280, 0x1029C, 17572}, {0x102A0, 0x102D0, 17602},
	{0x102E0, 0x102FB, 17652}, {0x10300, 0x10323, 17681}, {0x1032D, 0x1034A, 17718}, {0x10350, 0x1037A, 17749},
	{0x10380, 0x1039D, 17793}, {0x1039F, 0x103C3, 17824}, {0x103C8, 0x103D5, 17862}, {0x10400, 0x1049D, 17877},
	{0x104A0, 0x104A9, 18036}, {0x104B0, 0x104D3, 18047}, {0x104D8, 0x104FB, 18084}, {0x10500, 0x10527, 18121},
	{0x10530, 0x10563, 18162}, {0x1056F, 0x1057A, 18215}, {0x1057C, 0x1058A, 18228}, {0x1058C, 0x10592, 18244},
	{0x10594, 0x10595, 18252}, {0x10597, 0x105A1, 18255}, {0x105A3, 0x105B1, 18267}, {0x105B3, 0x105B9, 18283},
	{0x105BB, 0x105BC, 18291}, {0x10600, 0x10736, 18294}, {0x10740, 0x10755, 18606}, {0x10760, 0x10767, 18629},
	{0x10780, 0x10785, 18638}, {0x10787, 0x107B0, 18645}, {0x107B2, 0x107BA, 18688}, {0x10800, 0x10805, 18698},
	{0x10808, 0x10808, 18705}, {0x1080A, 0x10835, 18707}, {0x10837, 0x10838, 18752}, {0x1083C, 0x1083C, 18755},
	{0x1083F, 0x10855, 18757}, {0x10857, 0x1089E, 18781}, {0x108A7, 0x108AF, 18854}, {0x108E0, 0x108F2, 18864},
	{0x108F4, 0x108F5, 18884}, {0x108FB, 0x1091B, 18887}, {0x1091F, 0x10939, 18921}, {0x1093F, 0x1093F, 18949},
	{0x10980, 0x109B7, 18951}, {0x109BC, 0x109CF, 19008}, {0x109D2, 0x10A03, 19029}, {0x10A05, 0x10A06, 19080},
	{0x10A0C, 0x10A13, 19083}, {0x10A15, 0x10A17, 19092}, {0x10A19, 0x10A35, 19096}, {0x10A38, 0x10A3A, 19126},
	{0x10A3F, 0x10A48, 19130}, {0x10A50, 0x10A58, 19141}, {0x10A60, 0x10A9F, 19151}, {0x10AC0, 0x10AE6, 19216},
	{0x10AEB, 0x10AF6, 19256}, {0x10B00, 0x10B35, 19269}, {0x10B39, 0x10B55, 19324}, {0x10B58, 0x10B72, 19354},
	{0x10B78, 0x10B91, 19382}, {0x10B99, 0x10B9C, 19409}, {0x10BA9, 0x10BAF, 19414}, {0x10C00, 0x10C48, 19422},
	{0x10C80, 0x10CB2, 19496}, {0x10CC0, 0x10CF2, 19548}, {0x10CFA, 0x10D27, 19600}, {0x10D30, 0x10D39, 19647},
	{0x10E60, 0x10E7E, 19658}, {0x10E80, 0x10EA9, 19690}, {0x10EAB, 0x10EAD, 19733}, {0x10EB0, 0x10EB1, 19737},
	{0x10F00, 0x10F27, 19740}, {0x10F30, 0x10F59, 19781}, {0x10F70, 0x10F89, 19824}, {0x10FB0, 0x10FCB, 19851},
	{0x10FE0, 0x10FF6, 19880}, {0x11000, 0x1104D, 19904}, {0x11052, 0x11075, 19983}, {0x1107F, 0x110C2, 20020},
	{0x110CD, 0x110CD, 20089}, {0x110D0, 0x110E8, 20091}, {0x110F0, 0x110F9, 20117}, {0x11100, 0x11134, 20128},
	{0x11136, 0x11147, 20182}, {0x11150, 0x11176, 20201}, {0x11180, 0x111DF, 20241}, {0x111E1, 0x111F4, 20338},
	{0x11200, 0x11211, 20359}, {0x11213, 0x1123E, 20378}, {0x11280, 0x11286, 20423}, {0x11288, 0x11288, 20431},
	{0x1128A, 0x1128D, 20433}, {0x1128F, 0x1129D, 20438}, {0x1129F, 0x112A9, 20454}, {0x112B0, 0x112EA, 20466},
	{0x112F0, 0x112F9, 20526}, {0x11300, 0x11303, 20537}, {0x11305, 0x1130C, 20542}, {0x1130F, 0x11310, 20551},
	{0x11313, 0x11328, 20554}, {0x1132A, 0x11330, 20577}, {0x11332, 0x11333, 20585}, {0x11335, 0x11339, 20588},
	{0x1133B, 0x11344, 20594}, {0x11347, 0x11348, 20605}, {0x1134B, 0x1134D, 20608}, {0x11350, 0x11350, 20612},
	{0x11357, 0x11357, 20614}, {0x1135D, 0x11363, 20616}, {0x11366, 0x1136C, 20624}, {0x11370, 0x11374, 20632},
	{0x11400, 0x1145B, 20638}, {0x1145D, 0x11461, 20731}, {0x11480, 0x114C7, 20737}, {0x114D0, 0x114D9, 20810},
	{0x11580, 0x115B5, 20821}, {0x115B8, 0x115DD, 20876}, {0x11600, 0x11644, 20915}, {0x11650, 0x11659, 20985},
	{0x11660, 0x1166C, 20996}, {0x11680, 0x116B9, 21010}, {0x116C0, 0x116C9, 21069}, {0x11700, 0x1171A, 21080},
	{0x1171D, 0x1172B, 21108}, {0x11730, 0x11746, 21124}, {0x11800, 0x1183B, 21148}, {0x118A0, 0x118F2, 21209},
	{0x118FF, 0x11906, 21293}, {0x11909, 0x11909, 21302}, {0x1190C, 0x11913, 21304}, {0x11915, 0x11916, 21313},
	{0x11918, 0x11935, 21316}, {0x11937, 0x11938, 21347}, {0x1193B, 0x11946, 21350}, {0x11950, 0x11959, 21363},
	{0x119A0, 0x119A7, 21374}, {0x119AA, 0x119D7, 21383}, {0x119DA, 0x119E4, 21430}, {0x11A00, 0x11A47, 21442},
	{0x11A50, 0x11AA2, 21515}, {0x11AB0, 0x11AF8, 21599}, {0x11C00, 0x11C08, 21673}, {0x11C0A, 0x11C36, 21683},
	{0x11C38, 0x11C45, 21729}, {0x11C50, 0x11C6C, 21744}, {0x11C70, 0x11C8F, 21774}, {0x11C92, 0x11CA7, 21807},
	{0x11CA9, 0x11CB6, 21830}, {0x11D00, 0x11D06, 21845}, {0x11D08, 0x11D09, 21853}, {0x11D0B, 0x11D36, 21856},
	{0x11D3A, 0x11D3A, 21901}, {0x11D3C, 0x11D3D, 21903}, {0x11D3F, 0x11D47, 21906}, {0x11D50, 0x11D59, 21916},
	{0x11D60, 0x11D65, 21927}, {0x11D67, 0x11D68, 21934}, {0x11D6A, 0x11D8E, 21937}, {0x11D90, 0x11D91, 21975},
	{0x11D93, 0x11D98, 21978}, {0x11DA0, 0x11DA9, 21985}, {0x11EE0, 0x11EF8, 21996}, {0x11FB0, 0x11FB0, 22022},
	{0x11FC0, 0x11FF1, 22024}, {0x11FFF, 0x12399, 22075}, {0x12400, 0x1246E, 22999}, {0x12470, 0x12474, 23111},
	{0x12480, 0x12543, 23117}, {0x12F90, 0x12FF2, 23314}, {0x13000, 0x1342E, 23414}, {0x13430, 0x13438, 24486},
	{0x14400, 0x14646, 24496}, {0x16800, 0x16A38, 25080}, {0x16A40, 0x16A5E, 25650}, {0x16A60, 0x16A69, 25682},
	{0x16A6E, 0x16ABE, 25693}, {0x16AC0, 0x16AC9, 25775}, {0x16AD0, 0x16AED, 25786}, {0x16AF0, 0x16AF5, 25817},
	{0x16B00, 0x16B45, 25824}, {0x16B50, 0x16B59, 25895}, {0x16B5B, 0x16B61, 25906}, {0x16B63, 0x16B77, 25914},
	{0x16B7D, 0x16B8F, 25936}, {0x16E40, 0x16E9A, 25956}, {0x16F00, 0x16F4A, 26048}, {0x16F4F, 0x16F87, 26124},
	{0x16F8F, 0x16F9F, 26182}, {0x16FE0, 0x16FE4, 26200}, {0x16FF0, 0x16FF1, 26206}, {0x18800, 0x18CD5, 26209},
	{0x1AFF0, 0x1AFF3, 27448}, {0x1AFF5, 0x1AFFB, 27453}, {0x1AFFD, 0x1AFFE, 27461}, {0x1B000, 0x1B122, 27464},
	{0x1B150, 0x1B152, 27756}, {0x1B164, 0x1B167, 27760}, {0x1B170, 0x1B2FB, 27765}, {0x1BC00, 0x1BC6A, 28162},
	{0x1BC70, 0x1BC7C, 28270}, {0x1BC80, 0x1BC88, 28284}, {0x1BC90, 0x1BC99, 28294}, {0x1BC9C, 0x1BCA3, 28305},
	{0x1CF00, 0x1CF2D, 28314}, {0x1CF30, 0x1CF46, 28361}, {0x1CF50, 0x1CFC3, 28385}, {0x1D000, 0x1D0F5, 28502},
	{0x1D100, 0x1D126, 28749}, {0x1D129, 0x1D1EA, 28789}, {0x1D200, 0x1D245, 28984}, {0x1D2E0, 0x1D2F3, 29055},
	{0x1D300, 0x1D356, 29076}, {0x1D360, 0x1D378, 29164}, {0x1D400, 0x1D454, 29190}, {0x1D456, 0x1D49C, 29276},
	{0x1D49E, 0x1D49F, 29348}, {0x1D4A2, 0x1D4A2, 29351}, {0x1D4A5, 0x1D4A6, 29353}, {0x1D4A9, 0x1D4AC, 29356},
	{0x1D4AE, 0x1D4B9, 29361}, {0x1D4BB, 0x1D4BB, 29374}, {0x1D4BD, 0x1D4C3, 29376}, {0x1D4C5, 0x1D505, 29384},
	{0x1D507, 0x1D50A, 29450}, {0x1D50D, 0x1D514, 29455}, {0x1D516, 0x1D51C, 29464}, {0x1D51E, 0x1D539, 29472},
	{0x1D53B, 0x1D53E, 29501}, {0x1D540, 0x1D544, 29506}, {0x1D546, 0x1D546, 29512}, {0x1D54A, 0x1D550, 29514},
	{0x1D552, 0x1D6A5, 29522}, {0x1D6A8, 0x1D7CB, 29863}, {0x1D7CE, 0x1DA8B, 30156}, {0x1DA9B, 0x1DA9F, 30859},
	{0x1DAA1, 0x1DAAF, 30865}, {0x1DF00, 0x1DF1E, 30881}, {0x1E000, 0x1E006, 30913}, {0x1E008, 0x1E018, 30921},
	{0x1E01B, 0x1E021, 30939}, {0x1E023, 0x1E024, 30947}, {0x1E026, 0x1E02A, 30950}, {0x1E100, 0x1E12C, 30956},
	{0x1E130, 0x1E13D, 31002}, {0x1E140, 0x1E149, 31017}, {0x1E14E, 0x1E14F, 31028}, {0x1E290, 0x1E2AE, 31031},
	{0x1E2C0, 0x1E2F9, 31063}, {0x1E2FF, 0x1E2FF, 31122}, {0x1E7E0, 0x1E7E6, 31124}, {0x1E7E8, 0x1E7EB, 31132},
	{0x1E7ED, 0x1E7EE, 31137}, {0x1E7F0, 0x1E7FE, 31140}, {0x1E800, 0x1E8C4, 31156}, {0x1E8C7, 0x1E8D6, 31354},
	{0x1E900, 0x1E94B, 31371}, {0x1E950, 0x1E959, 31448}, {0x1E95E, 0x1E95F, 31459}, {0x1EC71, 0x1ECB4, 31462},
	{0x1ED01, 0x1ED3D, 31531}, {0x1EE00, 0x1EE03, 31593}, {0x1EE05, 0x1EE1F, 31598}, {0x1EE21, 0x1EE22, 31626},
	{0x1EE24, 0x1EE24, 31629}, {0x1EE27, 0x1EE27, 31631}, {0x1EE29, 0x1EE32, 31633}, {0x1EE34, 0x1EE37, 31644},
	{0x1EE39, 0x1EE39, 31649}, {0x1EE3B, 0x1EE3B, 31651}, {0x1EE42, 0x1EE42, 31653}, {0x1EE47, 0x1EE47, 31655},
	{0x1EE49, 0x1EE49, 31657}, {0x1EE4B, 0x1EE4B, 31659}, {0x1EE4D, 0x1EE4F, 31661}, {0x1EE51, 0x1EE52, 31665},
	{0x1EE54, 0x1EE54, 31668}, {0x1EE57, 0x1EE57, 31670}, {0x1EE59, 0x1EE59, 31672}, {0x1EE5B, 0x1EE5B, 31674},
	{0x1EE5D, 0x1EE5D, 31676}, {0x1EE5F, 0x1EE5F, 31678}, {0x1EE61, 0x1EE62, 31680}, {0x1EE64, 0x1EE64, 31683},
	{0x1EE67, 0x1EE6A, 31685}, {0x1EE6C, 0x1EE72, 31690}, {0x1EE74, 0x1EE77, 31698}, {0x1EE79, 0x1EE7C, 31703},
	{0x1EE7E, 0x1EE7E, 31708}, {0x1EE80, 0x1EE89, 31710}, {0x1EE8B, 0x1EE9B, 31721}, {0x1EEA1, 0x1EEA3, 31739},
	{0x1EEA5, 0x1EEA9, 31743}, {0x1EEAB, 0x1EEBB, 31749}, {0x1EEF0, 0x1EEF1, 31767}, {0x1F000, 0x1F02B, 31770},
	{0x1F030, 0x1F093, 31815}, {0x1F0A0, 0x1F0AE, 31916}, {0x1F0B1, 0x1F0BF, 31932}, {0x1F0C1, 0x1F0CF, 31948},
	{0x1F0D1, 0x1F0F5, 31964}, {0x1F100, 0x1F1AD, 32002}, {0x1F1E6, 0x1F202, 32177}, {0x1F210, 0x1F23B, 32207},
	{0x1F240, 0x1F248, 32252}, {0x1F250, 0x1F251, 32262}, {0x1F260, 0x1F265, 32265}, {0x1F300, 0x1F6D7, 32272},
	{0x1F6DD, 0x1F6EC, 33257}, {0x1F6F0, 0x1F6FC, 33274}, {0x1F700, 0x1F773, 33288}, {0x1F780, 0x1F7D8, 33405},
	{0x1F7E0, 0x1F7EB, 33495}, {0x1F7F0, 0x1F7F0, 33508}, {0x1F800, 0x1F80B, 33510}, {0x1F810, 0x1F847, 33523},
	{0x1F850, 0x1F859, 33580}, {0x1F860, 0x1F887, 33591}, {0x1F890, 0x1F8AD, 33632}, {0x1F8B0, 0x1F8B1, 33663},
	{0x1F900, 0x1FA53, 33666}, {0x1FA60, 0x1FA6D, 34007}, {0x1FA70, 0x1FA74, 34022}, {0x1FA78, 0x1FA7C, 34028},
	{0x1FA80, 0x1FA86, 34034}, {0x1FA90, 0x1FAAC, 34042}, {0x1FAB0, 0x1FABA, 34072}, {0x1FAC0, 0x1FAC5, 34084},
	{0x1FAD0, 0x1FAD9, 34091}, {0x1FAE0, 0x1FAE7, 34102}, {0x1FAF0, 0x1FAF6, 34111}, {0x1FB00, 0x1FB92, 34119},
	{0x1FB94, 0x1FBCA, 34267}, {0x1FBF0, 0x1FBF9, 34323}, {0x2F800, 0x2FA1D, 34334}, {0xE0001, 0xE0001, 34877},
	{0xE0020, 0xE007F, 34879}, {0xE0100, 0xE01EF, 34976},
}

// wordOffsets cuts wordIndexes into per-code-point word sequences.
var wordOffsets = []uint32{
	0, 1, 3, 5, 7, 9, 11, 12, 13, 15, 17, 18, 20, 21, 24, 26,
	27, 29, 31, 33, 35, 37, 39, 41, 43, 45, 47, 48, 49, 53, 55, 59,
	61, 63, 67, 71, 75, 79, 83, 87, 91, 95, 99, 103, 107, 111, 115, 119,
	123, 127, 131, 135, 139, 143, 147, 151, 155, 159, 163, 167, 170, 172, 175, 177,
	179, 181, 185, 189, 193, 197, 201, 205, 209, 213, 217, 221, 225, 229, 233, 237,
	241, 245, 249, 253, 257, 261, 265, 269, 273, 277, 281, 285, 288, 290, 293, 294,
	294, 298, 301, 303, 305, 307, 309, 311, 313, 314, 316, 319, 326, 328, 330, 332,
	333, 335, 339, 341, 343, 345, 347, 349, 351, 352, 354, 357, 364, 368, 372, 376,
	379, 385, 391, 397, 403, 409, 416, 420, 426, 432, 438, 444, 450, 456, 462, 468,
	474, 478, 484, 490, 496, 502, 508, 514, 516, 522, 528, 534, 540, 546, 552, 556,
	561, 567, 573, 579, 585, 591, 598, 602, 608, 614, 620, 626, 632, 638, 644, 650,
	656, 660, 666, 672, 678, 684, 690, 696, 698, 704, 710, 716, 722, 728, 734, 738,
	744, 750, 756, 762, 768, 774, 780, 786, 792, 798, 804, 811, 818, 824, 830, 836,
	842, 848, 854, 860, 866, 872, 878, 885, 892, 898, 904, 910, 916, 922, 928, 934,
	940, 947, 954, 960, 966, 972, 978, 984, 990, 996, 1002, 1008, 1014, 1020, 1026, 1032,
	1038, 1045, 1050, 1054, 1058, 1064, 1070, 1076, 1082, 1086, 1092, 1098, 1104, 1110, 1116, 1122,
	1129, 1136, 1142, 1148, 1154, 1160, 1166, 1172, 1178, 1184, 1191, 1195, 1199, 1205, 1211, 1217,
	1223, 1230, 1237, 1241, 1245, 1251, 1257, 1263, 1269, 1275, 1281, 1287, 1293, 1299, 1305, 1311,
	1317, 1323, 1329, 1335, 1341, 1347, 1353, 1359, 1365, 1371, 1377, 1383, 1389, 1395, 1401, 1408,
	1415, 1422, 1429, 1435, 1441, 1447, 1453, 1459, 1465, 1471, 1477, 1483, 1490, 1497, 1503, 1509,
	1514, 1520, 1526, 1532, 1538, 1543, 1548, 1553, 1559, 1565, 1570, 1576, 1582, 1588, 1593, 1598,
	1602, 1607, 1613, 1619, 1625, 1629, 1633, 1637, 1643, 1649, 1655, 1661, 1667, 1672, 1679, 1687,
	1694, 1700, 1706, 1710, 1714, 1720, 1726, 1729, 1734, 1739, 1743, 1748, 1755, 1761, 1767, 1774,
	1780, 1786, 1790, 1796, 1802, 1808, 1814, 1820, 1824, 1829, 1834, 1840, 1845, 1850, 1855, 1862,
	1865, 1869, 1873, 1877, 1881, 1887, 1897, 1903, 1907, 1915, 1919, 1923, 1931, 1935, 1941, 1947,
	1953, 1959, 1965, 1971, 1977, 1983, 1991, 1999, 2007, 2015, 2023, 2031, 2039, 2047, 2052, 2060,
	2068, 2077, 2086, 2092, 2098, 2104, 2110, 2116, 2122, 2128, 2134, 2140, 2146, 2154, 2162, 2168,
	2174, 2180, 2184, 2192, 2196, 2202, 2208, 2212, 2216, 2222, 2228, 2237, 2246, 2252, 2258, 2266,
	2274, 2281, 2288, 2295, 2302, 2309, 2316, 2323, 2330, 2337, 2344, 2351, 2358, 2365, 2372, 2379,
	2386, 2393, 2400, 2407, 2414, 2421, 2428, 2435, 2442, 2449, 2456, 2463, 2470, 2474, 2478, 2484,
	2490, 2498, 2504, 2508, 2512, 2518, 2524, 2531, 2538, 2544, 2550, 2558, 2566, 2574, 2582, 2589,
	2596, 2605, 2614, 2620, 2626, 2632, 2638, 2644, 2649, 2654, 2659, 2665, 2671, 2677, 2683, 2690,
	2697, 2704, 2709, 2714, 2720, 2725, 2730, 2736, 2742, 2748, 2754, 2762, 2769, 2775, 2781, 2787,
	2793, 2798, 2802, 2807, 2813, 2818, 2824, 2830, 2836, 2841, 2845, 2851, 2856, 2862, 2870, 2877,
	2884, 2890, 2895, 2900, 2904, 2909, 2914, 2920, 2926, 2932, 2936, 2941, 2948, 2954, 2961, 2965,
	2970, 2978, 2984, 2991, 2998, 3003, 3008, 3013, 3018, 3022, 3027, 3035, 3042, 3049, 3055, 3061,
	3068, 3073, 3079, 3085, 3089, 3098, 3104, 3110, 3115, 3122, 3127, 3131, 3137, 3142, 3147, 3152,
	3157, 3164, 3170, 3174, 3180, 3184, 3189, 3194, 3198, 3202, 3207, 3213, 3220, 3225, 3233, 3238,
	3243, 3249, 3255, 3262, 3267, 3272, 3279, 3284, 3289, 3296, 3301, 3306, 3311, 3315, 3319, 3326,
	3335, 3339, 3345, 3349, 3353, 3358, 3365, 3371, 3375, 3379, 3382, 3386, 3390, 3393, 3397, 3402,
	3407, 3411, 3416, 3420, 3424, 3428, 3432, 3436, 3437, 3441, 3444, 3448, 3452, 3457, 3461, 3466,
	3471, 3475, 3480, 3486, 3492, 3496, 3500, 3504, 3508, 3509, 3511, 3513, 3514, 3516, 3519, 3523,
	3527, 3531, 3535, 3539, 3543, 3549, 3556, 3561, 3566, 3571, 3578, 3584, 3590, 3593, 3596, 3600,
	3605, 3610, 3615, 3620, 3624, 3629, 3635, 3641, 3645, 3649, 3654, 3659, 3664, 3669, 3672, 3676,
	3681, 3684, 3687, 3690, 3692, 3694, 3696, 3698, 3701, 3703, 3706, 3709, 3713, 3715, 3719, 3724,
	3728, 3730, 3733, 3737, 3740, 3744, 3748, 3752, 3756, 3760, 3764, 3768, 3770, 3775, 3779, 3783,
	3787, 3791, 3795, 3799, 3802, 3805, 3808, 3811, 3813, 3815, 3819, 3822, 3827, 3830, 3834, 3837,
	3841, 3844, 3847, 3850, 3854, 3857, 3861, 3865, 3869, 3873, 3878, 3882, 3885, 3888, 3891, 3894,
	3897, 3901, 3905, 3908, 3911, 3915, 3918, 3921, 3925, 3930, 3934, 3938, 3941, 3946, 3951, 3955,
	3958, 3962, 3967, 3969, 3972, 3976, 3980, 3987, 3992, 3996, 3999, 4003, 4006, 4010, 4013, 4016,
	4020, 4023, 4027, 4032, 4037, 4042, 4047, 4052, 4057, 4062, 4067, 4072, 4077, 4082, 4087, 4092,
	4097, 4101, 4105, 4110, 4115, 4118, 4122, 4127, 4132, 4132, 4134, 4140, 4146, 4153, 4156, 4160,
	4160, 4162, 4165, 4171, 4174, 4180, 4186, 4192, 4192, 4198, 4198, 4204, 4210, 4218, 4222, 4226,
	4230, 4234, 4238, 4242, 4246, 4250, 4254, 4258, 4262, 4266, 4270, 4274, 4278, 4282, 4286, 4286,
	4290, 4294, 4298, 4302, 4306, 4310, 4314, 4320, 4326, 4332, 4338, 4344, 4350, 4358, 4362, 4366,
	4370, 4374, 4378, 4382, 4386, 4390, 4394, 4398, 4402, 4406, 4410, 4414, 4418, 4422, 4426, 4431,
	4435, 4439, 4443, 4447, 4451, 4455, 4459, 4465, 4471, 4477, 4483, 4489, 4493, 4496, 4499, 4504,
	4511, 4518, 4521, 4524, 4527, 4531, 4536, 4539, 4543, 4546, 4550, 4553, 4557, 4560, 4564, 4568,
	4572, 4576, 4580, 4584, 4588, 4592, 4596, 4600, 4604, 4608, 4612, 4616, 4620, 4623, 4626, 4630,
	4633, 4637, 4641, 4646, 4650, 4654, 4659, 4663, 4667, 4672, 4678, 4684, 4691, 4697, 4701, 4705,
	4709, 4714, 4718, 4725, 4729, 4733, 4737, 4741, 4745, 4749, 4755, 4760, 4764, 4768, 4772, 4776,
	4780, 4784, 4788, 4792, 4796, 4800, 4805, 4809, 4813, 4817, 4821, 4825, 4829, 4833, 4837, 4841,
	4845, 4849, 4853, 4857, 4861, 4865, 4869, 4874, 4878, 4883, 4887, 4891, 4895, 4899, 4903, 4907,
	4911, 4915, 4919, 4923, 4927, 4931, 4936, 4940, 4944, 4948, 4952, 4956, 4960, 4964, 4968, 4972,
	4976, 4980, 4984, 4988, 4992, 4996, 5000, 5005, 5009, 5014, 5018, 5022, 5026, 5032, 5036, 5040,
	5044, 5049, 5053, 5060, 5064, 5068, 5072, 5076, 5080, 5084, 5090, 5095, 5099, 5103, 5107, 5111,
	5115, 5120, 5125, 5130, 5135, 5141, 5147, 5152, 5157, 5163, 5169, 5173, 5177, 5181, 5185, 5189,
	5193, 5197, 5201, 5209, 5217, 5221, 5225, 5230, 5235, 5241, 5247, 5251, 5255, 5259, 5263, 5266,
	5269, 5272, 5276, 5280, 5283, 5288, 5292, 5299, 5306, 5311, 5316, 5322, 5328, 5334, 5340, 5346,
	5352, 5359, 5366, 5372, 5378, 5384, 5390, 5396, 5402, 5409, 5416, 5422, 5428, 5433, 5438, 5444,
	5450, 5455, 5460, 5467, 5474, 5479, 5484, 5490, 5496, 5502, 5508, 5513, 5518, 5525, 5532, 5538,
	5544, 5549, 5554, 5560, 5566, 5573, 5580, 5584, 5588, 5593, 5598, 5605, 5612, 5615, 5621, 5627,
	5633, 5639, 5645, 5651, 5657, 5663, 5669, 5675, 5680, 5685, 5691, 5697, 5701, 5707, 5713, 5719,
	5725, 5730, 5735, 5741, 5747, 5751, 5755, 5761, 5767, 5773, 5779, 5785, 5791, 5796, 5801, 5807,
	5813, 5819, 5825, 5831, 5837, 5842, 5847, 5854, 5861, 5867, 5873, 5879, 5885, 5891, 5897, 5904,
	5911, 5917, 5923, 5929, 5935, 5941, 5947, 5955, 5963, 5969, 5975, 5981, 5987, 5992, 5997, 6002,
	6007, 6012, 6017, 6022, 6027, 6032, 6037, 6042, 6047, 6052, 6057, 6062, 6067, 6072, 6077, 6083,
	6089, 6093, 6097, 6101, 6105, 6109, 6113, 6117, 6121, 6125, 6129, 6134, 6139, 6146, 6153, 6160,
	6167, 6173, 6179, 6185, 6191, 6198, 6205, 6209, 6213, 6217, 6221, 6227, 6233, 6233, 6237, 6241,
	6245, 6249, 6253, 6257, 6261, 6265, 6269, 6273, 6277, 6281, 6285, 6289, 6293, 6297, 6301, 6305,
	6309, 6313, 6317, 6321, 6325, 6329, 6333, 6337, 6341, 6345, 6349, 6353, 6357, 6361, 6365, 6369,
	6373, 6377, 6381, 6385, 6385, 6391, 6393, 6396, 6399, 6401, 6404, 6407, 6412, 6416, 6420, 6424,
	6428, 6432, 6436, 6440, 6444, 6448, 6452, 6456, 6460, 6464, 6468, 6472, 6476, 6480, 6484, 6488,
	6492, 6496, 6500, 6504, 6508, 6512, 6516, 6520, 6524, 6528, 6532, 6536, 6540, 6544, 6548, 6552,
	6556, 6560, 6564, 6569, 6575, 6578, 6580, 6580, 6586, 6592, 6595, 6595, 6598, 6601, 6604, 6608,
	6612, 6615, 6618, 6621, 6624, 6627, 6630, 6633, 6637, 6640, 6644, 6648, 6651, 6655, 6658, 6661,
	6664, 6668, 6671, 6674, 6678, 6683, 6686, 6689, 6692, 6695, 6699, 6702, 6706, 6710, 6714, 6717,
	6720, 6723, 6726, 6729, 6732, 6738, 6741, 6746, 6749, 6752, 6755, 6758, 6762, 6766, 6770, 6774,
	6778, 6782, 6786, 6786, 6789, 6792, 6795, 6798, 6801, 6804, 6807, 6810, 6813, 6816, 6820, 6823,
	6826, 6830, 6833, 6837, 6840, 6843, 6846, 6850, 6853, 6857, 6860, 6863, 6866, 6869, 6872, 6872,
	6875, 6880, 6885, 6890, 6893, 6896, 6896, 6899, 6902, 6905, 6908, 6911, 6915, 6920, 6925, 6927,
	6933, 6940, 6942, 6944, 6947, 6951, 6954, 6959, 6963, 6967, 6972, 6975, 6979, 6988, 6992, 6995,
	6998, 7001, 7003, 7006, 7011, 7016, 7019, 7023, 7026, 7032, 7038, 7044, 7050, 7056, 7059, 7062,
	7066, 7069, 7072, 7075, 7078, 7081, 7084, 7087, 7090, 7093, 7096, 7099, 7102, 7105, 7108, 7111,
	7114, 7117, 7124, 7131, 7138, 7146, 7154, 7156, 7159, 7162, 7165, 7168, 7171, 7174, 7177, 7180,
	7184, 7187, 7189, 7191, 7193, 7195, 7197, 7199, 7201, 7203, 7206, 7209, 7212, 7215, 7218, 7222,
	7224, 7230, 7237, 7242, 7245, 7250, 7254, 7259, 7264, 7269, 7274, 7279, 7284, 7289, 7294, 7299,
	7304, 7307, 7310, 7313, 7317, 7321, 7325, 7329, 7333, 7340, 7347, 7351, 7356, 7361, 7367, 7372,
	7375, 7378, 7381, 7386, 7394, 7397, 7400, 7403, 7409, 7417, 7420, 7423, 7430, 7433, 7436, 7439,
	7444, 7450, 7459, 7462, 7465, 7468, 7476, 7483, 7486, 7492, 7497, 7503, 7510, 7519, 7526, 7529,
	7536, 7545, 7552, 7563, 7570, 7577, 7584, 7591, 7595, 7602, 7608, 7611, 7618, 7621, 7627, 7634,
	7637, 7641, 7646, 7652, 7655, 7662, 7665, 7670, 7673, 7680, 7683, 7690, 7696, 7702, 7709, 7716,
	7722, 7726, 7729, 7734, 7741, 7745, 7751, 7757, 7761, 7768, 7773, 7778, 7782, 7785, 7788, 7791,
	7795, 7802, 7805, 7809, 7814, 7820, 7826, 7829, 7836, 7840, 7847, 7850, 7853, 7863, 7873, 7879,
	7884, 7888, 7893, 7897, 7901, 7907, 7912, 7918, 7925, 7931, 7935, 7939, 7942, 7945, 7949, 7953,
	7957, 7962, 7967, 7974, 7978, 7984, 7990, 7996, 8002, 8008, 8014, 8020, 8026, 8032, 8038, 8044,
	8050, 8056, 8062, 8068, 8072, 8077, 8083, 8087, 8091, 8095, 8098, 8101, 8104, 8108, 8112, 8117,
	8122, 8124, 8127, 8130, 8133, 8133, 8136, 8139, 8143, 8146, 8149, 8153, 8156, 8161, 8164, 8167,
	8170, 8173, 8176, 8180, 8183, 8187, 8190, 8193, 8196, 8199, 8202, 8206, 8209, 8212, 8216, 8219,
	8222, 8225, 8228, 8231, 8235, 8239, 8243, 8246, 8249, 8252, 8255, 8258, 8261, 8264, 8267, 8271,
	8275, 8278, 8281, 8286, 8289, 8292, 8294, 8297, 8299, 8301, 8306, 8311, 8315, 8319, 8323, 8327,
	8329, 8331, 8331, 8335, 8339, 8343, 8351, 8361, 8370, 8383, 8393, 8401, 8407, 8414, 8423, 8434,
	8442, 8447, 8454, 8461, 8470, 8478, 8485, 8494, 8500, 8507, 8516, 8522, 8528, 8535, 8541, 8547,
	8552, 8560, 8566, 8574, 8583, 8594, 8605, 8616, 8625, 8636, 8647, 8659, 8671, 8683, 8694, 8705,
	8717, 8729, 8740, 8751, 8757, 8764, 8767, 8770, 8773, 8776, 8779, 8782, 8785, 8788, 8791, 8794,
	8797, 8800, 8803, 8806, 8809, 8812, 8815, 8818, 8821, 8824, 8827, 8830, 8833, 8836, 8839, 8842,
	8845, 8848, 8851, 8854, 8857, 8860, 8863, 8866, 8869, 8872, 8875, 8878, 8880, 8882, 8884, 8886,
	8888, 8890, 8892, 8894, 8896, 8898, 8900, 8903, 8903, 8906, 8909, 8912, 8915, 8918, 8921, 8924,
	8927, 8930, 8933, 8936, 8939, 8942, 8945, 8948, 8951, 8954, 8957, 8960, 8963, 8966, 8969, 8972,
	8975, 8978, 8981, 8984, 8987, 8990, 8993, 8996, 8999, 9003, 9006, 9009, 9012, 9015, 9018, 9021,
	9025, 9029, 9033, 9037, 9042, 9047, 9052, 9057, 9062, 9067, 9072, 9076, 9081, 9085, 9089, 9093,
	9096, 9098, 9101, 9103, 9103, 9105, 9108, 9111, 9114, 9117, 9120, 9123, 9126, 9129, 9132, 9135,
	9138, 9141, 9144, 9147, 9150, 9153, 9156, 9159, 9162, 9165, 9168, 9171, 9174, 9177, 9180, 9185,
	9188, 9191, 9196, 9200, 9205, 9209, 9214, 9219, 9223, 9228, 9233, 9237, 9242, 9247, 9252, 9256,
	9260, 9265, 9269, 9273, 9277, 9280, 9280, 9283, 9286, 9289, 9292, 9295, 9298, 9301, 9305, 9308,
	9311, 9314, 9317, 9320, 9324, 9327, 9327, 9330, 9333, 9336, 9339, 9342, 9345, 9348, 9351, 9354,
	9357, 9360, 9363, 9366, 9369, 9372, 9375, 9378, 9381, 9384, 9387, 9390, 9393, 9396, 9399, 9402,
	9405, 9408, 9411, 9411, 9413, 9413, 9417, 9421, 9425, 9429, 9433, 9437, 9441, 9445, 9449, 9453,
	9457, 9457, 9463, 9471, 9478, 9485, 9491, 9499, 9507, 9515, 9523, 9531, 9537, 9548, 9558, 9569,
	9580, 9590, 9601, 9608, 9615, 9620, 9625, 9631, 9635, 9639, 9643, 9650, 9658, 9664, 9671, 9679,
	9682, 9682, 9686, 9690, 9690, 9697, 9702, 9707, 9712, 9715, 9719, 9722, 9727, 9734, 9740, 9747,
	9754, 9764, 9770, 9776, 9783, 9793, 9803, 9808, 9814, 9818, 9822, 9829, 9836, 9842, 9846, 9853,
	9860, 9866, 9876, 9883, 9890, 9897, 9904, 9915, 9919, 9923, 9927, 9933, 9939, 9945, 9951, 9957,
	9964, 9972, 9979, 9986, 9995, 9998, 10002, 10007, 10016, 10021, 10025, 10030, 10035, 10038, 10042, 10049,
	10053, 10060, 10064, 10068, 10072, 10078, 10084, 10091, 10098, 10105, 10110, 10115, 10120, 10125, 10130, 10135,
	10139, 10142, 10145, 10148, 10151, 10154, 10157, 10162, 10167, 10171, 10176, 10181, 10185, 10188, 10191, 10194,
	10198, 10202, 10207, 10212, 10216, 10220, 10224, 10228, 10233, 10240, 10246, 10250, 10255, 10259, 10262, 10265,
	10268, 10272, 10275, 10278, 10281, 10284, 10287, 10290, 10294, 10298, 10302, 10306, 10309, 10312, 10316, 10320,
	10323, 10326, 10329, 10332, 10335, 10338, 10341, 10344, 10347, 10350, 10353, 10356, 10359, 10362, 10365, 10368,
	10371, 10374, 10377, 10380, 10383, 10386, 10389, 10392, 10395, 10398, 10401, 10404, 10407, 10410, 10413, 10416,
	10419, 10422, 10425, 10428, 10431, 10434, 10437, 10441, 10445, 10448, 10451, 10455, 10459, 10463, 10467, 10471,
	10476, 10481, 10486, 10491, 10495, 10499, 10504, 10509, 10513, 10517, 10520, 10525, 10529, 10531, 10535, 10539,
	10542, 10545, 10551, 10555, 10559, 10562, 10565, 10568, 10571, 10574, 10577, 10580, 10583, 10587, 10591, 10596,
	10601, 10603, 10606, 10609, 10612, 10615, 10618, 10621, 10624, 10627, 10630, 10633, 10636, 10639, 10644, 10648,
	10651, 10654, 10657, 10660, 10663, 10667, 10670, 10674, 10677, 10680, 10684, 10687, 10690, 10692, 10695, 10698,
	10701, 10701, 10704, 10707, 10710, 10713, 10716, 10719, 10723, 10727, 10727, 10730, 10733, 10733, 10736, 10739,
	10742, 10745, 10748, 10751, 10754, 10757, 10760, 10763, 10766, 10769, 10772, 10775, 10778, 10781, 10784, 10787,
	10790, 10793, 10796, 10799, 10799, 10802, 10805, 10808, 10811, 10814, 10817, 10820, 10820, 10823, 10823, 10826,
	10829, 10832, 10835, 10835, 10838, 10841, 10845, 10849, 10853, 10857, 10861, 10866, 10871, 10871, 10875, 10879,
	10879, 10883, 10887, 10890, 10894, 10894, 10898, 10898, 10901, 10904, 10904, 10907, 10911, 10915, 10920, 10925,
	10925, 10928, 10931, 10934, 10937, 10940, 10943, 10946, 10949, 10952, 10955, 10961, 10967, 10970, 10973, 10977,
	10981, 10985, 10989, 10997, 11001, 11003, 11006, 11010, 11013, 11016, 11016, 11020, 11023, 11026, 11026, 11029,
	11032, 11035, 11038, 11041, 11044, 11044, 11047, 11050, 11050, 11053, 11056, 11059, 11062, 11065, 11068, 11071,
	11074, 11077, 11080, 11083, 11086, 11089, 11092, 11095, 11098, 11101, 11104, 11107, 11110, 11113, 11116, 11116,
	11119, 11122, 11125, 11128, 11131, 11134, 11137, 11137, 11140, 11143, 11143, 11146, 11149, 11149, 11152, 11155,
	11155, 11158, 11158, 11162, 11166, 11170, 11174, 11178, 11178, 11182, 11186, 11186, 11190, 11194, 11197, 11197,
	11200, 11200, 11203, 11206, 11209, 11212, 11212, 11215, 11215, 11218, 11221, 11224, 11227, 11230, 11233, 11236,
	11239, 11242, 11245, 11247, 11249, 11251, 11253, 11256, 11259, 11262, 11262, 11265, 11268, 11271, 11271, 11274,
	11277, 11280, 11283, 11286, 11289, 11293, 11297, 11301, 11301, 11304, 11307, 11311, 11311, 11314, 11317, 11320,
	11323, 11326, 11329, 11332, 11335, 11338, 11341, 11344, 11347, 11350, 11353, 11356, 11359, 11362, 11365, 11368,
	11371, 11374, 11377, 11377, 11380, 11383, 11386, 11389, 11392, 11395, 11398, 11398, 11401, 11404, 11404, 11407,
	11410, 11413, 11416, 11419, 11419, 11422, 11425, 11429, 11433, 11437, 11441, 11445, 11450, 11455, 11460, 11460,
	11464, 11468, 11473, 11473, 11477, 11481, 11484, 11484, 11486, 11486, 11490, 11494, 11499, 11504, 11504, 11507,
	11510, 11513, 11516, 11519, 11522, 11525, 11528, 11531, 11534, 11537, 11540, 11540, 11543, 11546, 11549, 11552,
	11559, 11564, 11571, 11571, 11574, 11577, 11580, 11580, 11583, 11586, 11589, 11592, 11595, 11598, 11602, 11606,
	11606, 11609, 11612, 11612, 11615, 11618, 11621, 11624, 11627, 11630, 11633, 11636, 11639, 11642, 11645, 11648,
	11651, 11654, 11657, 11660, 11663, 11666, 11669, 11672, 11675, 11678, 11678, 11681, 11684, 11687, 11690, 11693,
	11696, 11699, 11699, 11702, 11705, 11705, 11708, 11711, 11714, 11717, 11720, 11720, 11723, 11726, 11730, 11734,
	11738, 11742, 11746, 11751, 11756, 11756, 11760, 11764, 11764, 11768, 11772, 11775, 11775, 11778, 11782, 11786,
	11786, 11789, 11792, 11792, 11795, 11799, 11803, 11808, 11813, 11813, 11816, 11819, 11822, 11825, 11828, 11831,
	11834, 11837, 11840, 11843, 11845, 11848, 11852, 11856, 11860, 11864, 11868, 11872, 11872, 11875, 11878, 11878,
	11881, 11884, 11887, 11890, 11893, 11896, 11896, 11899, 11902, 11905, 11905, 11908, 11911, 11914, 11917, 11917,
	11920, 11923, 11923, 11926, 11926, 11929, 11932, 11932, 11935, 11938, 11938, 11941, 11944, 11947, 11947, 11950,
	11953, 11956, 11959, 11962, 11965, 11968, 11971, 11974, 11977, 11980, 11983, 11983, 11987, 11991, 11995, 11999,
	12003, 12003, 12007, 12011, 12015, 12015, 12019, 12023, 12027, 12030, 12030, 12032, 12032, 12036, 12036, 12039,
	12042, 12045, 12048, 12051, 12054, 12057, 12060, 12063, 12066, 12069, 12073, 12077, 12080, 12083, 12086, 12089,
	12092, 12096, 12099, 12102, 12102, 12107, 12110, 12113, 12116, 12121, 12124, 12127, 12130, 12133, 12136, 12139,
	12143, 12147, 12147, 12150, 12153, 12156, 12156, 12159, 12162, 12165, 12168, 12171, 12174, 12177, 12180, 12183,
	12186, 12189, 12192, 12195, 12198, 12201, 12204, 12207, 12210, 12213, 12216, 12219, 12222, 12225, 12225, 12228,
	12231, 12234, 12237, 12240, 12243, 12246, 12249, 12252, 12255, 12258, 12261, 12264, 12267, 12270, 12273, 12273,
	12276, 12279, 12283, 12287, 12291, 12295, 12299, 12304, 12309, 12309, 12313, 12317, 12321, 12321, 12325, 12329,
	12333, 12336, 12336, 12339, 12343, 12343, 12346, 12349, 12352, 12352, 12356, 12356, 12360, 12364, 12369, 12374,
	12374, 12377, 12380, 12383, 12386, 12389, 12392, 12395, 12398, 12401, 12404, 12404, 12407, 12416, 12425, 12434,
	12443, 12452, 12461, 12470, 12473, 12477, 12480, 12483, 12486, 12489, 12492, 12495, 12498, 12501, 12504, 12507,
	12511, 12515, 12515, 12518, 12521, 12524, 12524, 12527, 12530, 12533, 12536, 12539, 12542, 12545, 12548, 12551,
	12554, 12557, 12560, 12563, 12566, 12569, 12572, 12575, 12578, 12581, 12584, 12587, 12590, 12593, 12593, 12596,
	12599, 12602, 12605, 12608, 12611, 12614, 12617, 12620, 12623, 12623, 12626, 12629, 12632, 12635, 12638, 12638,
	12641, 12644, 12648, 12652, 12656, 12660, 12664, 12669, 12674, 12674, 12678, 12682, 12686, 12686, 12690, 12694,
	12698, 12701, 12701, 12704, 12708, 12708, 12712, 12715, 12715, 12719, 12723, 12728, 12733, 12733, 12736, 12739,
	12742, 12745, 12748, 12751, 12754, 12757, 12760, 12763, 12763, 12766, 12769, 12769, 12774, 12777, 12780, 12783,
	12787, 12790, 12793, 12796, 12799, 12802, 12805, 12809, 12813, 12813, 12816, 12819, 12822, 12822, 12825, 12828,
	12831, 12834, 12837, 12840, 12843, 12846, 12849, 12852, 12855, 12858, 12861, 12864, 12867, 12870, 12873, 12876,
	12879, 12882, 12885, 12888, 12891, 12894, 12897, 12900, 12903, 12906, 12909, 12912, 12915, 12918, 12921, 12924,
	12927, 12930, 12933, 12936, 12939, 12942, 12945, 12950, 12954, 12957, 12961, 12965, 12969, 12973, 12977, 12982,
	12987, 12987, 12991, 12995, 12999, 12999, 13003, 13007, 13011, 13014, 13018, 13021, 13021, 13025, 13029, 13033,
	13037, 13047, 13051, 13055, 13059, 13063, 13067, 13071, 13075, 13079, 13083, 13088, 13093, 13093, 13096, 13099,
	13102, 13105, 13108, 13111, 13114, 13117, 13120, 13123, 13126, 13130, 13134, 13138, 13142, 13146, 13150, 13154,
	13158, 13161, 13165, 13169, 13173, 13177, 13181, 13185, 13185, 13188, 13191, 13194, 13194, 13197, 13200, 13203,
	13206, 13209, 13212, 13215, 13218, 13221, 13224, 13227, 13230, 13233, 13236, 13239, 13242, 13245, 13248, 13248,
	13252, 13256, 13260, 13264, 13268, 13272, 13276, 13280, 13284, 13288, 13292, 13297, 13301, 13305, 13309, 13313,
	13317, 13321, 13325, 13329, 13333, 13337, 13341, 13345, 13345, 13349, 13353, 13357, 13361, 13365, 13368, 13372,
	13375, 13378, 13378, 13382, 13382, 13385, 13389, 13393, 13397, 13400, 13404, 13407, 13407, 13412, 13412, 13418,
	13425, 13432, 13439, 13446, 13453, 13453, 13460, 13460, 13466, 13470, 13475, 13480, 13488, 13497, 13503, 13507,
	13507, 13511, 13515, 13519, 13523, 13527, 13531, 13535, 13539, 13543, 13547, 13547, 13554, 13559, 13562, 13562,
	13566, 13570, 13574, 13578, 13582, 13586, 13590, 13594, 13598, 13602, 13606, 13610, 13614, 13618, 13622, 13626,
	13630, 13634, 13638, 13642, 13646, 13650, 13654, 13658, 13662, 13666, 13670, 13674, 13678, 13682, 13686, 13690,
	13694, 13698, 13702, 13705, 13709, 13712, 13716, 13720, 13724, 13728, 13732, 13736, 13740, 13744, 13747, 13751,
	13757, 13761, 13765, 13769, 13773, 13777, 13781, 13785, 13789, 13792, 13792, 13796, 13800, 13804, 13808, 13813,
	13818, 13821, 13824, 13827, 13831, 13835, 13839, 13843, 13846, 13849, 13852, 13855, 13858, 13861, 13864, 13867,
	13870, 13873, 13876, 13879, 13882, 13885, 13888, 13891, 13891, 13894, 13898, 13898, 13902, 13902, 13906, 13909,
	13912, 13916, 13920, 13920, 13924, 13927, 13931, 13935, 13939, 13943, 13947, 13951, 13954, 13957, 13961, 13965,
	13969, 13972, 13975, 13978, 13982, 13986, 13990, 13994, 13998, 14001, 14004, 14008, 14008, 14012, 14012, 14015,
	14019, 14023, 14027, 14031, 14035, 14038, 14042, 14044, 14048, 14053, 14057, 14061, 14065, 14069, 14073, 14077,
	14081, 14085, 14089, 14094, 14098, 14102, 14102, 14106, 14110, 14114, 14118, 14122, 14122, 14125, 14125, 14129,
	14133, 14137, 14141, 14144, 14146, 14146, 14149, 14152, 14155, 14158, 14161, 14164, 14167, 14170, 14173, 14176,
	14176, 14179, 14182, 14186, 14190, 14190, 14193, 14200, 14210, 14220, 14227, 14234, 14242, 14249, 14253, 14258,
	14265, 14269, 14274, 14277, 14281, 14285, 14290, 14296, 14301, 14310, 14314, 14319, 14324, 14332, 14338, 14343,
	14348, 14353, 14358, 14363, 14368, 14374, 14377, 14380, 14383, 14386, 14389, 14392, 14395, 14398, 14401, 14404,
	14408, 14412, 14416, 14420, 14424, 14428, 14432, 14436, 14440, 14444, 14448, 14454, 14463, 14469, 14473, 14478,
	14483, 14488, 14493, 14498, 14502, 14506, 14509, 14512, 14515, 14518, 14521, 14524, 14527, 14530, 14530, 14533,
	14536, 14539, 14542, 14545, 14548, 14551, 14554, 14557, 14560, 14563, 14566, 14569, 14572, 14575, 14578, 14581,
	14584, 14587, 14590, 14593, 14596, 14599, 14603, 14606, 14609, 14612, 14615, 14618, 14621, 14624, 14627, 14630,
	14636, 14639, 14642, 14642, 14646, 14650, 14654, 14658, 14662, 14667, 14672, 14677, 14682, 14686, 14690, 14694,
	14698, 14704, 14708, 14713, 14718, 14724, 14728, 14731, 14734, 14738, 14742, 14747, 14751, 14756, 14761, 14766,
	14772, 14777, 14783, 14787, 14791, 14795, 14799, 14803, 14807, 14811, 14815, 14815, 14819, 14823, 14827, 14831,
	14835, 14839, 14843, 14847, 14851, 14855, 14859, 14863, 14867, 14871, 14875, 14879, 14883, 14887, 14891, 14895,
	14899, 14903, 14907, 14912, 14916, 14920, 14924, 14928, 14932, 14936, 14940, 14944, 14948, 14955, 14962, 14969,
	14969, 14973, 14980, 14985, 14990, 14997, 15003, 15007, 15011, 15015, 15021, 15025, 15029, 15036, 15043, 15050,
	15050, 15056, 15061, 15069, 15076, 15080, 15089, 15098, 15103, 15108, 15115, 15122, 15127, 15132, 15132, 15135,
	15138, 15141, 15144, 15147, 15150, 15153, 15156, 15159, 15162, 15165, 15168, 15171, 15174, 15177, 15180, 15183,
	15186, 15189, 15192, 15195, 15198, 15201, 15204, 15207, 15210, 15213, 15216, 15219, 15222, 15225, 15228, 15231,
	15234, 15238, 15241, 15244, 15247, 15250, 15253, 15257, 15260, 15263, 15268, 15272, 15276, 15280, 15284, 15288,
	15292, 15296, 15301, 15306, 15311, 15314, 15318, 15321, 15324, 15327, 15332, 15337, 15342, 15347, 15351, 15354,
	15357, 15360, 15363, 15366, 15369, 15372, 15375, 15378, 15381, 15385, 15388, 15391, 15394, 15397, 15400, 15403,
	15406, 15410, 15414, 15418, 15422, 15427, 15432, 15437, 15442, 15446, 15450, 15454, 15458, 15464, 15470, 15476,
	15481, 15487, 15493, 15500, 15506, 15512, 15519, 15526, 15534, 15542, 15550, 15558, 15566, 15572, 15578, 15584,
	15590, 15595, 15600, 15605, 15609, 15613, 15617, 15621, 15625, 15629, 15633, 15637, 15641, 15645, 15649, 15653,
	15657, 15663, 15668, 15673, 15679, 15685, 15691, 15697, 15703, 15709, 15716, 15723, 15729, 15734, 15741, 15745,
	15749, 15753, 15757, 15761, 15765, 15769, 15773, 15777, 15781, 15787, 15793, 15798, 15803, 15807, 15811, 15815,
	15819, 15823, 15827, 15831, 15835, 15839, 15843, 15847, 15851, 15855, 15859, 15863, 15867, 15871, 15875, 15879,
	15883, 15887, 15891, 15895, 15899, 15903, 15907, 15911, 15915, 15919, 15923, 15927, 15931, 15935, 15939, 15943,
	15947, 15951, 15955, 15959, 15963, 15963, 15967, 15967, 15971, 15971, 15974, 15977, 15980, 15983, 15986, 15989,
	15992, 15995, 15998, 16001, 16004, 16007, 16010, 16013, 16016, 16019, 16022, 16025, 16028, 16031, 16034, 16037,
	16040, 16043, 16046, 16049, 16052, 16055, 16058, 16061, 16064, 16067, 16070, 16073, 16076, 16079, 16082, 16085,
	16088, 16091, 16094, 16098, 16101, 16104, 16108, 16111, 16115, 16119, 16122, 16125, 16128, 16131, 16134, 16137,
	16140, 16143, 16146, 16149, 16152, 16155, 16158, 16161, 16164, 16167, 16170, 16173, 16176, 16181, 16184, 16189,
	16194, 16199, 16204, 16207, 16212, 16215, 16220, 16223, 16228, 16233, 16238, 16243, 16250, 16257, 16264, 16269,
	16276, 16281, 16286, 16291, 16296, 16299, 16302, 16307, 16312, 16317, 16322, 16327, 16332, 16339, 16344, 16349,
	16354, 16359, 16364, 16369, 16374, 16379, 16382, 16385, 16388, 16391, 16394, 16399, 16404, 16409, 16414, 16419,
	16424, 16427, 16432, 16437, 16442, 16447, 16450, 16455, 16458, 16461, 16464, 16467, 16472, 16477, 16480, 16483,
	16488, 16491, 16494, 16497, 16502, 16507, 16512, 16517, 16522, 16525, 16528, 16531, 16534, 16537, 16540, 16543,
	16546, 16549, 16552, 16555, 16558, 16561, 16564, 16567, 16570, 16573, 16576, 16579, 16582, 16585, 16588, 16591,
	16596, 16601, 16606, 16611, 16616, 16621, 16626, 16631, 16636, 16641, 16646, 16651, 16656, 16661, 16666, 16671,
	16676, 16681, 16686, 16691, 16696, 16703, 16708, 16713, 16718, 16723, 16728, 16733, 16738, 16743, 16748, 16753,
	16758, 16763, 16768, 16773, 16778, 16783, 16788, 16793, 16796, 16801, 16806, 16811, 16814, 16819, 16824, 16829,
	16834, 16839, 16842, 16845, 16850, 16853, 16858, 16863, 16866, 16869, 16874, 16879, 16884, 16889, 16894, 16899,
	16904, 16907, 16910, 16915, 16918, 16921, 16924, 16927, 16930, 16933, 16936, 16939, 16942, 16947, 16954, 16959,
	16964, 16969, 16974, 16979, 16984, 16989, 16996, 17001, 17006, 17013, 17016, 17023, 17030, 17037, 17044, 17049,
	17054, 17059, 17064, 17069, 17074, 17079, 17084, 17089, 17094, 17099, 17104, 17109, 17112, 17117, 17122, 17127,
	17130, 17135, 17140, 17145, 17150, 17153, 17158, 17163, 17166, 17171, 17174, 17179, 17184, 17189, 17192, 17197,
	17202, 17207, 17212, 17215, 17220, 17225, 17230, 17235, 17240, 17243, 17246, 17249, 17252, 17255, 17258, 17261,
	17264, 17267, 17270, 17273, 17276, 17279, 17282, 17285, 17288, 17291, 17294, 17297, 17300, 17303, 17306, 17309,
	17312, 17315, 17318, 17321, 17324, 17327, 17330, 17333, 17336, 17339, 17342, 17345, 17348, 17351, 17354, 17357,
	17360, 17363, 17366, 17369, 17372, 17375, 17378, 17381, 17384, 17387, 17390, 17393, 17396, 17399, 17402, 17405,
	17408, 17411, 17414, 17417, 17420, 17423, 17426, 17429, 17432, 17435, 17438, 17441, 17444, 17447, 17450, 17453,
	17456, 17459, 17462, 17462, 17465, 17468, 17471, 17474, 17474, 17477, 17480, 17483, 17486, 17489, 17492, 17495,
	17495, 17498, 17498, 17501, 17504, 17507, 17510, 17510, 17513, 17516, 17519, 17522, 17525, 17528, 17531, 17534,
	17537, 17540, 17543, 17546, 17549, 17552, 17555, 17558, 17561, 17564, 17567, 17570, 17573, 17576, 17579, 17582,
	17585, 17588, 17591, 17594, 17597, 17600, 17603, 17606, 17609, 17612, 17615, 17618, 17621, 17624, 17627, 17630,
	17633, 17633, 17636, 17639, 17642, 17645, 17645, 17648, 17651, 17654, 17657, 17660, 17663, 17666, 17669, 17672,
	17675, 17678, 17681, 17684, 17687, 17690, 17693, 17697, 17701, 17705, 17709, 17713, 17717, 17721, 17725, 17728,
	17731, 17734, 17737, 17740, 17743, 17746, 17749, 17752, 17752, 17755, 17758, 17761, 17764, 17764, 17767, 17770,
	17773, 17776, 17779, 17782, 17785, 17785, 17788, 17788, 17791, 17794, 17797, 17800, 17800, 17803, 17806, 17809,
	17812, 17815, 17818, 17821, 17824, 17828, 17832, 17836, 17840, 17844, 17848, 17852, 17852, 17855, 17858, 17861,
	17864, 17867, 17870, 17873, 17876, 17879, 17882, 17885, 17888, 17891, 17894, 17897, 17900, 17903, 17906, 17909,
	17912, 17915, 17918, 17921, 17924, 17927, 17930, 17933, 17936, 17939, 17942, 17945, 17948, 17951, 17954, 17957,
	17960, 17963, 17966, 17969, 17972, 17975, 17978, 17981, 17984, 17987, 17990, 17993, 17996, 17999, 18002, 18005,
	18008, 18011, 18014, 18017, 18020, 18023, 18023, 18026, 18029, 18032, 18035, 18035, 18038, 18041, 18044, 18047,
	18050, 18053, 18056, 18059, 18062, 18065, 18068, 18071, 18074, 18077, 18080, 18083, 18086, 18089, 18092, 18095,
	18098, 18101, 18104, 18107, 18110, 18113, 18116, 18119, 18122, 18125, 18128, 18131, 18134, 18137, 18140, 18143,
	18146, 18149, 18152, 18155, 18158, 18161, 18164, 18167, 18170, 18173, 18176, 18179, 18182, 18185, 18188, 18191,
	18194, 18197, 18200, 18203, 18206, 18209, 18212, 18215, 18218, 18221, 18224, 18227, 18230, 18233, 18236, 18236,
	18243, 18248, 18252, 18255, 18257, 18260, 18262, 18264, 18266, 18269, 18272, 18275, 18278, 18281, 18284, 18287,
	18290, 18293, 18296, 18299, 18302, 18305, 18308, 18311, 18314, 18317, 18320, 18323, 18326, 18329, 18332, 18336,
	18336, 18340, 18343, 18346, 18349, 18353, 18356, 18359, 18362, 18366, 18369, 18372, 18375, 18379, 18382, 18385,
	18388, 18392, 18396, 18400, 18405, 18409, 18413, 18417, 18421, 18427, 18431, 18431, 18434, 18437, 18440, 18443,
	18446, 18449, 18452, 18455, 18458, 18461, 18464, 18467, 18470, 18473, 18476, 18479, 18482, 18485, 18488, 18491,
	18494, 18497, 18500, 18503, 18506, 18509, 18512, 18515, 18518, 18521, 18524, 18527, 18530, 18533, 18536, 18539,
	18542, 18545, 18548, 18551, 18554, 18557, 18560, 18563, 18566, 18569, 18572, 18575, 18578, 18581, 18584, 18587,
	18590, 18593, 18596, 18599, 18602, 18605, 18608, 18611, 18614, 18617, 18620, 18623, 18626, 18629, 18632, 18635,
	18638, 18641, 18644, 18647, 18650, 18653, 18656, 18659, 18662, 18665, 18668, 18671, 18674, 18677, 18680, 18683,
	18686, 18689, 18689, 18693, 18697, 18701, 18705, 18709, 18713, 18713, 18716, 18719, 18722, 18725, 18728, 18731,
	18734, 18740, 18744, 18748, 18751, 18754, 18757, 18763, 18766, 18772, 18775, 18781, 18784, 18790, 18793, 18799,
	18803, 18806, 18812, 18815, 18821, 18825, 18828, 18834, 18838, 18842, 18846, 18852, 18858, 18864, 18868, 18873,
	18880, 18885, 18891, 18895, 18900, 18903, 18906, 18909, 18912, 18915, 18918, 18921, 18924, 18927, 18930, 18936,
	18940, 18944, 18947, 18950, 18953, 18959, 18962, 18968, 18971, 18977, 18980, 18986, 18989, 18995, 18998, 19004,
	19007, 19013, 19019, 19022, 19028, 19032, 19035, 19038, 19041, 19044, 19047, 19050, 19056, 19060, 19064, 19067,
	19070, 19073, 19079, 19082, 19088, 19091, 19097, 19100, 19106, 19109, 19115, 19118, 19124, 19127, 19133, 19137,
	19140, 19143, 19146, 19149, 19152, 19155, 19158, 19161, 19164, 19167, 19170, 19176, 19179, 19182, 19185, 19191,
	19194, 19200, 19203, 19209, 19212, 19218, 19221, 19227, 19230, 19236, 19239, 19245, 19249, 19252, 19255, 19261,
	19267, 19273, 19279, 19282, 19285, 19288, 19291, 19294, 19297, 19303, 19306, 19309, 19312, 19318, 19321, 19327,
	19330, 19336, 19339, 19345, 19348, 19354, 19357, 19363, 19366, 19372, 19376, 19379, 19383, 19386, 19389, 19392,
	19395, 19398, 19401, 19407, 19410, 19413, 19416, 19422, 19425, 19431, 19434, 19440, 19443, 19449, 19452, 19458,
	19461, 19467, 19470, 19476, 19480, 19483, 19489, 19492, 19496, 19500, 19503, 19506, 19509, 19512, 19515, 19518,
	19524, 19527, 19530, 19533, 19539, 19542, 19548, 19551, 19557, 19561, 19564, 19568, 19571, 19574, 19577, 19580,
	19583, 19586, 19589, 19595, 19598, 19601, 19604, 19610, 19613, 19619, 19622, 19628, 19631, 19637, 19640, 19646,
	19649, 19655, 19658, 19664, 19667, 19673, 19677, 19680, 19683, 19686, 19689, 19692, 19695, 19701, 19704, 19707,
	19710, 19716, 19719, 19725, 19728, 19734, 19737, 19743, 19746, 19752, 19755, 19761, 19764, 19770, 19774, 19777,
	19781, 19784, 19788, 19794, 19798, 19804, 19808, 19812, 19816, 19820, 19823, 19826, 19829, 19832, 19835, 19838,
	19841, 19844, 19850, 19853, 19859, 19862, 19868, 19871, 19877, 19880, 19886, 19889, 19895, 19898, 19904, 19907,
	19910, 19913, 19916, 19919, 19922, 19925, 19931, 19934, 19937, 19940, 19946, 19949, 19955, 19958, 19964, 19967,
	19973, 19976, 19982, 19985, 19991, 19994, 20000, 20004, 20007, 20013, 20019, 20023, 20026, 20032, 20038, 20041,
	20044, 20047, 20050, 20053, 20059, 20062, 20065, 20071, 20074, 20080, 20083, 20089, 20093, 20096, 20099, 20102,
	20105, 20108, 20111, 20114, 20117, 20120, 20126, 20129, 20132, 20138, 20141, 20147, 20150, 20156, 20159, 20162,
	20165, 20168, 20171, 20177, 20180, 20183, 20186, 20189, 20192, 20195, 20198, 20201, 20204, 20207, 20211, 20215,
	20219, 20223, 20227, 20231, 20235, 20239, 20243, 20246, 20249, 20252, 20255, 20258, 20261, 20264, 20267, 20270,
	20273, 20276, 20279, 20282, 20288, 20294, 20300, 20306, 20309, 20312, 20315, 20318, 20321, 20324, 20327, 20330,
	20333, 20337, 20341, 20345, 20349, 20355, 20361, 20367, 20373, 20379, 20382, 20385, 20388, 20391, 20394, 20397,
	20400, 20406, 20412, 20418, 20424, 20430, 20436, 20442, 20448, 20452, 20456, 20460, 20464, 20468, 20472, 20476,
	20480, 20484, 20488, 20492, 20496, 20500, 20504, 20508, 20512, 20516, 20520, 20524, 20528, 20532, 20536, 20540,
	20544, 20548, 20552, 20556, 20560, 20564, 20568, 20572, 20576, 20580, 20584, 20588, 20592, 20596, 20600, 20604,
	20608, 20612, 20616, 20620, 20624, 20628, 20632, 20636, 20640, 20644, 20648, 20652, 20656, 20660, 20664, 20668,
	20672, 20676, 20680, 20684, 20688, 20692, 20696, 20700, 20704, 20708, 20712, 20716, 20720, 20724, 20728, 20732,
	20736, 20740, 20744, 20748, 20752, 20756, 20760, 20764, 20768, 20772, 20776, 20780, 20784, 20788, 20792, 20796,
	20800, 20804, 20808, 20812, 20816, 20820, 20824, 20828, 20832, 20836, 20840, 20844, 20848, 20852, 20856, 20860,
	20864, 20868, 20872, 20876, 20880, 20884, 20888, 20892, 20896, 20900, 20904, 20908, 20912, 20916, 20920, 20924,
	20928, 20932, 20936, 20940, 20944, 20948, 20952, 20956, 20960, 20964, 20968, 20972, 20976, 20980, 20984, 20988,
	20992, 20996, 21000, 21004, 21008, 21012, 21016, 21020, 21024, 21028, 21032, 21036, 21040, 21044, 21048, 21052,
	21056, 21061, 21065, 21069, 21073, 21077, 21081, 21085, 21089, 21093, 21097, 21101, 21105, 21109, 21113, 21117,
	21121, 21125, 21129, 21133, 21137, 21141, 21145, 21149, 21153, 21157, 21161, 21165, 21169, 21173, 21177, 21181,
	21185, 21189, 21193, 21197, 21201, 21205, 21209, 21213, 21217, 21220, 21223, 21226, 21229, 21232, 21235, 21238,
	21241, 21247, 21253, 21259, 21265, 21271, 21277, 21283, 21290, 21294, 21297, 21300, 21303, 21306, 21309, 21312,
	21315, 21318, 21321, 21324, 21327, 21330, 21333, 21336, 21339, 21342, 21345, 21348, 21351, 21354, 21357, 21360,
	21363, 21366, 21369, 21372, 21375, 21378, 21382, 21382, 21388, 21391, 21396, 21399, 21402, 21405, 21410, 21413,
	21417, 21421, 21425, 21428, 21436, 21444, 21447, 21450, 21453, 21459, 21462, 21465, 21469, 21472, 21475, 21480,
	21483, 21488, 21492, 21496, 21504, 21512, 21518, 21526, 21531, 21537, 21540, 21544, 21547, 21555, 21563, 21567,
	21572, 21576, 21580, 21589, 21597, 21600, 21603, 21609, 21617, 21620, 21626, 21634, 21639, 21644, 21649, 21654,
	21662, 21670, 21676, 21681, 21684, 21687, 21692, 21697, 21700, 21703, 21706, 21709, 21712, 21715, 21722, 21729,
	21734, 21737, 21740, 21743, 21746, 21749, 21752, 21755, 21758, 21761, 21764, 21767, 21772, 21777, 21782, 21787,
	21792, 21792, 21795, 21798, 21801, 21804, 21807, 21810, 21813, 21816, 21819, 21822, 21825, 21828, 21831, 21834,
	21837, 21840, 21843, 21846, 21850, 21854, 21857, 21860, 21860, 21864, 21867, 21870, 21873, 21876, 21879, 21882,
	21885, 21888, 21891, 21894, 21897, 21900, 21903, 21906, 21909, 21912, 21915, 21918, 21922, 21926, 21929, 21932,
	21935, 21935, 21938, 21941, 21944, 21947, 21950, 21953, 21956, 21959, 21962, 21965, 21968, 21971, 21974, 21977,
	21980, 21983, 21986, 21989, 21993, 21997, 21997, 22000, 22003, 22006, 22009, 22012, 22015, 22018, 22021, 22024,
	22027, 22030, 22033, 22036, 22036, 22039, 22042, 22045, 22045, 22049, 22053, 22053, 22056, 22059, 22062, 22065,
	22068, 22071, 22074, 22077, 22080, 22083, 22086, 22089, 22092, 22095, 22098, 22101, 22104, 22107, 22110, 22113,
	22116, 22119, 22122, 22125, 22128, 22131, 22134, 22137, 22140, 22143, 22146, 22149, 22152, 22155, 22158, 22162,
	22166, 22170, 22174, 22178, 22182, 22186, 22190, 22194, 22198, 22202, 22206, 22210, 22214, 22220, 22226, 22230,
	22234, 22238, 22242, 22246, 22250, 22254, 22258, 22262, 22266, 22270, 22274, 22278, 22282, 22286, 22290, 22294,
	22298, 22302, 22305, 22308, 22311, 22314, 22317, 22320, 22323, 22326, 22329, 22332, 22336, 22339, 22342, 22345,
	22348, 22351, 22356, 22360, 22363, 22367, 22370, 22374, 22377, 22380, 22380, 22383, 22386, 22389, 22392, 22395,
	22398, 22401, 22404, 22407, 22410, 22410, 22415, 22420, 22425, 22430, 22435, 22440, 22447, 22454, 22461, 22468,
	22468, 22470, 22472, 22474, 22477, 22479, 22482, 22486, 22491, 22494, 22498, 22500, 22505, 22510, 22515, 22518,
	22523, 22526, 22529, 22532, 22535, 22538, 22541, 22544, 22547, 22550, 22553, 22553, 22556, 22559, 22562, 22565,
	22568, 22571, 22574, 22577, 22580, 22583, 22586, 22589, 22592, 22595, 22598, 22601, 22604, 22607, 22610, 22613,
	22616, 22619, 22622, 22625, 22628, 22631, 22634, 22637, 22640, 22643, 22646, 22649, 22652, 22655, 22658, 22664,
	22668, 22672, 22676, 22680, 22684, 22688, 22692, 22696, 22700, 22704, 22708, 22712, 22716, 22720, 22724, 22728,
	22732, 22736, 22740, 22744, 22748, 22752, 22756, 22760, 22764, 22768, 22772, 22776, 22780, 22784, 22788, 22792,
	22796, 22800, 22804, 22808, 22812, 22816, 22820, 22824, 22828, 22832, 22836, 22840, 22844, 22848, 22852, 22856,
	22860, 22864, 22868, 22872, 22878, 22878, 22884, 22890, 22895, 22900, 22906, 22911, 22917, 22922, 22927, 22932,
	22937, 22942, 22947, 22952, 22957, 22962, 22967, 22972, 22977, 22982, 22987, 22992, 22997, 23002, 23008, 23014,
	23020, 23026, 23032, 23038, 23044, 23050, 23056, 23062, 23068, 23074, 23080, 23086, 23092, 23098, 23104, 23109,
	23115, 23115, 23118, 23121, 23124, 23127, 23130, 23133, 23136, 23139, 23142, 23145, 23148, 23151, 23154, 23157,
	23160, 23163, 23166, 23169, 23172, 23175, 23178, 23181, 23184, 23188, 23191, 23195, 23198, 23202, 23205, 23209,
	23212, 23215, 23218, 23221, 23224, 23227, 23231, 23235, 23239, 23243, 23247, 23251, 23255, 23259, 23263, 23267,
	23272, 23277, 23283, 23289, 23295, 23298, 23301, 23304, 23307, 23310, 23313, 23316, 23320, 23324, 23328, 23332,
	23337, 23341, 23345, 23349, 23353, 23358, 23363, 23368, 23368, 23373, 23376, 23379, 23382, 23385, 23388, 23391,
	23394, 23397, 23400, 23403, 23406, 23409, 23412, 23415, 23418, 23421, 23424, 23427, 23430, 23433, 23436, 23439,
	23442, 23445, 23448, 23451, 23454, 23457, 23460, 23463, 23463, 23467, 23471, 23475, 23479, 23483, 23487, 23491,
	23495, 23499, 23503, 23507, 23511, 23511, 23515, 23519, 23523, 23527, 23531, 23535, 23539, 23543, 23547, 23550,
	23553, 23558, 23558, 23561, 23561, 23564, 23567, 23570, 23573, 23576, 23579, 23582, 23585, 23588, 23591, 23594,
	23597, 23601, 23605, 23609, 23613, 23617, 23621, 23625, 23629, 23633, 23637, 23641, 23645, 23649, 23653, 23657,
	23661, 23665, 23669, 23673, 23677, 23681, 23685, 23689, 23693, 23697, 23701, 23705, 23709, 23713, 23717, 23717,
	23723, 23729, 23735, 23741, 23747, 23747, 23753, 23759, 23765, 23771, 23777, 23783, 23789, 23795, 23801, 23807,
	23813, 23819, 23825, 23831, 23837, 23843, 23849, 23855, 23861, 23867, 23873, 23879, 23885, 23891, 23897, 23903,
	23909, 23915, 23921, 23927, 23933, 23939, 23945, 23951, 23957, 23963, 23969, 23975, 23981, 23987, 23993, 23999,
	24005, 24011, 24011, 24018, 24024, 24030, 24036, 24042, 24048, 24054, 24060, 24066, 24072, 24078, 24084, 24090,
	24096, 24102, 24108, 24114, 24120, 24126, 24132, 24138, 24144, 24150, 24156, 24163, 24170, 24170, 24175, 24180,
	24185, 24190, 24195, 24200, 24205, 24210, 24215, 24220, 24226, 24226, 24231, 24236, 24239, 24243, 24247, 24251,
	24255, 24259, 24265, 24271, 24277, 24283, 24287, 24293, 24299, 24305, 24311, 24317, 24320, 24324, 24328, 24332,
	24336, 24340, 24346, 24352, 24358, 24364, 24368, 24374, 24380, 24386, 24392, 24398, 24401, 24404, 24407, 24410,
	24413, 24416, 24419, 24422, 24425, 24428, 24431, 24434, 24437, 24440, 24443, 24446, 24449, 24452, 24455, 24458,
	24461, 24464, 24467, 24471, 24475, 24479, 24483, 24487, 24487, 24489, 24493, 24498, 24503, 24508, 24513, 24518,
	24523, 24527, 24532, 24537, 24542, 24547, 24552, 24556, 24560, 24565, 24569, 24574, 24578, 24583, 24588, 24593,
	24598, 24602, 24606, 24611, 24616, 24621, 24626, 24631, 24636, 24640, 24645, 24650, 24654, 24658, 24662, 24666,
	24670, 24675, 24680, 24685, 24690, 24694, 24698, 24703, 24707, 24711, 24715, 24719, 24723, 24727, 24731, 24736,
	24742, 24748, 24755, 24761, 24767, 24773, 24782, 24787, 24792, 24797, 24797, 24801, 24806, 24812, 24817, 24823,
	24828, 24833, 24838, 24843, 24848, 24853, 24858, 24864, 24869, 24874, 24879, 24884, 24889, 24895, 24901, 24906,
	24912, 24918, 24925, 24932, 24939, 24944, 24949, 24956, 24956, 24961, 24966, 24971, 24976, 24981, 24986, 24991,
	24996, 25001, 25006, 25011, 25011, 25016, 25021, 25026, 25031, 25036, 25041, 25046, 25051, 25056, 25061, 25061,
	25065, 25069, 25073, 25077, 25081, 25085, 25091, 25096, 25100, 25104, 25108, 25112, 25116, 25120, 25120, 25124,
	25128, 25130, 25133, 25136, 25141, 25145, 25149, 25154, 25159, 25164, 25167, 25171, 25174, 25177, 25183, 25190,
	25195, 25200, 25205, 25210, 25214, 25218, 25223, 25227, 25232, 25237, 25241, 25247, 25253, 25259, 25259, 25263,
	25267, 25270, 25273, 25276, 25279, 25283, 25286, 25290, 25293, 25297, 25301, 25306, 25310, 25315, 25318, 25321,
	25324, 25328, 25331, 25335, 25338, 25342, 25345, 25348, 25352, 25355, 25359, 25362, 25366, 25371, 25376, 25381,
	25385, 25388, 25392, 25395, 25399, 25402, 25405, 25409, 25412, 25416, 25419, 25422, 25425, 25428, 25431, 25435,
	25439, 25442, 25445, 25448, 25452, 25456, 25461, 25465, 25470, 25475, 25481, 25486, 25492, 25496, 25501, 25506,
	25512, 25516, 25521, 25524, 25528, 25532, 25536, 25540, 25544, 25548, 25552, 25556, 25556, 25559, 25562, 25565,
	25568, 25571, 25574, 25577, 25580, 25583, 25586, 25588, 25590, 25592, 25595, 25598, 25601, 25603, 25607, 25611,
	25615, 25619, 25624, 25628, 25632, 25636, 25640, 25645, 25650, 25655, 25660, 25665, 25670, 25677, 25684, 25689,
	25694, 25702, 25710, 25718, 25726, 25734, 25742, 25750, 25758, 25766, 25769, 25772, 25772, 25775, 25778, 25781,
	25784, 25787, 25790, 25793, 25796, 25799, 25802, 25805, 25808, 25811, 25814, 25817, 25820, 25823, 25826, 25829,
	25832, 25835, 25838, 25841, 25844, 25847, 25850, 25853, 25856, 25859, 25862, 25865, 25868, 25871, 25875, 25879,
	25883, 25887, 25891, 25895, 25899, 25903, 25907, 25910, 25913, 25918, 25923, 25926, 25929, 25932, 25935, 25938,
	25941, 25944, 25947, 25950, 25953, 25956, 25959, 25961, 25964, 25967, 25970, 25974, 25978, 25981, 25985, 25988,
	25992, 25996, 25999, 26003, 26006, 26010, 26013, 26017, 26020, 26024, 26028, 26031, 26035, 26038, 26041, 26044,
	26048, 26051, 26055, 26059, 26063, 26066, 26070, 26074, 26077, 26081, 26084, 26087, 26091, 26094, 26097, 26100,
	26103, 26106, 26109, 26112, 26116, 26121, 26125, 26129, 26134, 26138, 26143, 26147, 26154, 26158, 26162, 26164,
	26166, 26166, 26171, 26175, 26179, 26183, 26186, 26189, 26192, 26195, 26198, 26201, 26204, 26207, 26210, 26213,
	26216, 26219, 26222, 26225, 26228, 26231, 26234, 26237, 26240, 26243, 26246, 26249, 26252, 26255, 26258, 26261,
	26264, 26267, 26270, 26273, 26276, 26279, 26282, 26285, 26288, 26291, 26295, 26299, 26303, 26307, 26311, 26315,
	26319, 26323, 26327, 26331, 26335, 26339, 26343, 26347, 26351, 26355, 26361, 26365, 26368, 26371, 26371, 26376,
	26383, 26388, 26394, 26397, 26400, 26403, 26406, 26409, 26412, 26415, 26418, 26421, 26424, 26427, 26427, 26430,
	26433, 26436, 26440, 26444, 26448, 26452, 26456, 26460, 26464, 26468, 26472, 26476, 26480, 26484, 26488, 26492,
	26496, 26500, 26504, 26508, 26512, 26516, 26520, 26524, 26528, 26532, 26536, 26540, 26544, 26548, 26552, 26556,
	26560, 26564, 26568, 26572, 26576, 26580, 26584, 26588, 26592, 26596, 26600, 26604, 26610, 26613, 26616, 26619,
	26623, 26628, 26633, 26640, 26645, 26650, 26655, 26662, 26668, 26673, 26678, 26678, 26683, 26688, 26693, 26698,
	26703, 26708, 26713, 26718, 26723, 26728, 26733, 26738, 26743, 26748, 26753, 26758, 26763, 26768, 26773, 26778,
	26783, 26788, 26793, 26798, 26803, 26808, 26813, 26818, 26823, 26828, 26833, 26838, 26843, 26848, 26853, 26858,
	26863, 26868, 26873, 26878, 26883, 26889, 26894, 26894, 26899, 26905, 26911, 26915, 26919, 26923, 26927, 26932,
	26937, 26942, 26947, 26947, 26950, 26953, 26956, 26959, 26964, 26970, 26975, 26981, 26985, 26992, 26996, 27000,
	27004, 27008, 27013, 27018, 27024, 27029, 27033, 27037, 27042, 27046, 27051, 27057, 27063, 27067, 27071, 27075,
	27081, 27084, 27089, 27093, 27098, 27103, 27106, 27110, 27114, 27117, 27120, 27123, 27127, 27132, 27137, 27137,
	27142, 27147, 27152, 27158, 27163, 27168, 27173, 27178, 27184, 27189, 27194, 27199, 27206, 27211, 27217, 27222,
	27228, 27233, 27239, 27246, 27251, 27256, 27262, 27268, 27273, 27279, 27285, 27290, 27295, 27300, 27306, 27312,
	27317, 27322, 27327, 27332, 27337, 27340, 27345, 27350, 27355, 27360, 27365, 27370, 27374, 27378, 27382, 27387,
	27391, 27395, 27400, 27404, 27408, 27412, 27416, 27420, 27424, 27428, 27432, 27437, 27441, 27445, 27449, 27453,
	27457, 27461, 27465, 27469, 27474, 27478, 27483, 27487, 27491, 27495, 27499, 27504, 27510, 27514, 27519, 27523,
	27527, 27531, 27535, 27540, 27546, 27552, 27556, 27560, 27564, 27569, 27574, 27578, 27582, 27586, 27591, 27595,
	27600, 27604, 27609, 27614, 27619, 27624, 27629, 27634, 27639, 27644, 27649, 27653, 27660, 27667, 27674, 27681,
	27688, 27695, 27702, 27711, 27718, 27725, 27732, 27737, 27741, 27746, 27752, 27759, 27765, 27771, 27778, 27784,
	27791, 27798, 27805, 27812, 27819, 27826, 27833, 27840, 27847, 27854, 27861, 27868, 27875, 27882, 27889, 27896,
	27903, 27911, 27918, 27926, 27935, 27942, 27949, 27957, 27964, 27971, 27978, 27983, 27987, 27993, 27997, 28003,
	28007, 28014, 28019, 28024, 28030, 28034, 28039, 28046, 28054, 28061, 28068, 28073, 28079, 28087, 28094, 28101,
	28106, 28111, 28115, 28121, 28125, 28132, 28137, 28141, 28146, 28152, 28157, 28161, 28168, 28174, 28178, 28182,
	28186, 28190, 28193, 28196, 28200, 28204, 28208, 28212, 28218, 28224, 28230, 28234, 28238, 28242, 28245, 28248,
	28251, 28254, 28257, 28265, 28270, 28275, 28280, 28286, 28292, 28297, 28302, 28308, 28313, 28318, 28324, 28330,
	28335, 28341, 28347, 28353, 28358, 28364, 28369, 28374, 28379, 28384, 28389, 28394, 28403, 28412, 28417, 28422,
	28431, 28436, 28443, 28450, 28457, 28461, 28465, 28469, 28473, 28478, 28482, 28485, 28490, 28495, 28499, 28506,
	28513, 28520, 28527, 28534, 28541, 28548, 28555, 28562, 28570, 28578, 28585, 28592, 28599, 28606, 28613, 28620,
	28626, 28632, 28639, 28646, 28654, 28662, 28670, 28678, 28685, 28692, 28699, 28706, 28714, 28722, 28729, 28736,
	28742, 28748, 28755, 28762, 28769, 28776, 28782, 28788, 28794, 28800, 28807, 28814, 28821, 28828, 28836, 28844,
	28850, 28856, 28863, 28870, 28877, 28884, 28891, 28898, 28907, 28916, 28923, 28930, 28937, 28944, 28950, 28956,
	28963, 28970, 28977, 28984, 28991, 28998, 29005, 29012, 29019, 29026, 29033, 29040, 29048, 29056, 29064, 29072,
	29080, 29088, 29096, 29104, 29110, 29116, 29123, 29130, 29137, 29144, 29151, 29158, 29167, 29176, 29183, 29190,
	29197, 29204, 29211, 29218, 29227, 29236, 29245, 29254, 29264, 29274, 29281, 29288, 29295, 29302, 29309, 29316,
	29323, 29330, 29337, 29344, 29351, 29358, 29365, 29372, 29380, 29388, 29396, 29404, 29410, 29416, 29423, 29430,
	29436, 29442, 29448, 29454, 29460, 29466, 29473, 29480, 29487, 29494, 29501, 29508, 29514, 29520, 29527, 29534,
	29540, 29546, 29553, 29560, 29567, 29574, 29581, 29587, 29594, 29601, 29609, 29617, 29625, 29633, 29638, 29642,
	29649, 29656, 29663, 29670, 29678, 29686, 29694, 29702, 29711, 29720, 29728, 29736, 29745, 29754, 29762, 29770,
	29778, 29786, 29795, 29804, 29812, 29820, 29829, 29838, 29845, 29852, 29859, 29866, 29872, 29878, 29886, 29894,
	29902, 29910, 29919, 29928, 29936, 29944, 29953, 29962, 29969, 29976, 29983, 29990, 29997, 30004, 30011, 30018,
	30026, 30034, 30042, 30050, 30059, 30068, 30076, 30084, 30093, 30102, 30110, 30118, 30126, 30134, 30143, 30152,
	30160, 30168, 30177, 30186, 30193, 30200, 30207, 30214, 30222, 30230, 30238, 30246, 30255, 30264, 30272, 30280,
	30289, 30298, 30304, 30310, 30317, 30324, 30331, 30338, 30344, 30350, 30357, 30364, 30371, 30378, 30384, 30390,
	30396, 30402, 30410, 30418, 30426, 30434, 30442, 30450, 30456, 30462, 30470, 30478, 30486, 30494, 30502, 30510,
	30516, 30522, 30530, 30538, 30546, 30554, 30554, 30560, 30566, 30574, 30582, 30590, 30598, 30598, 30604, 30610,
	30618, 30626, 30634, 30642, 30650, 30658, 30664, 30670, 30678, 30686, 30694, 30702, 30710, 30718, 30724, 30730,
	30738, 30746, 30754, 30762, 30770, 30778, 30784, 30790, 30798, 30806, 30814, 30822, 30830, 30838, 30844, 30850,
	30858, 30866, 30874, 30882, 30882, 30888, 30894, 30902, 30910, 30918, 30926, 30926, 30932, 30938, 30946, 30954,
	30962, 30970, 30978, 30986, 30986, 30992, 30992, 31000, 31000, 31008, 31008, 31016, 31022, 31028, 31036, 31044,
	31052, 31060, 31068, 31076, 31082, 31088, 31096, 31104, 31112, 31120, 31128, 31136, 31142, 31148, 31154, 31160,
	31166, 31172, 31178, 31184, 31190, 31196, 31202, 31208, 31214, 31220, 31220, 31228, 31236, 31246, 31256, 31266,
	31276, 31286, 31296, 31304, 31312, 31322, 31332, 31342, 31352, 31362, 31372, 31380, 31388, 31398, 31408, 31418,
	31428, 31438, 31448, 31456, 31464, 31474, 31484, 31494, 31504, 31514, 31524, 31532, 31540, 31550, 31560, 31570,
	31580, 31590, 31600, 31608, 31616, 31626, 31636, 31646, 31656, 31666, 31676, 31682, 31688, 31696, 31702, 31710,
	31710, 31716, 31724, 31730, 31736, 31742, 31748, 31754, 31756, 31758, 31760, 31762, 31766, 31774, 31780, 31788,
	31788, 31794, 31802, 31808, 31814, 31820, 31826, 31832, 31836, 31840, 31844, 31850, 31856, 31864, 31872, 31872,
	31878, 31886, 31892, 31898, 31904, 31910, 31910, 31914, 31918, 31922, 31928, 31934, 31942, 31950, 31956, 31962,
	31968, 31976, 31982, 31988, 31994, 32000, 32006, 32010, 32014, 32016, 32016, 32024, 32030, 32038, 32038, 32044,
	32052, 32058, 32064, 32070, 32076, 32082, 32084, 32086, 32086, 32088, 32090, 32092, 32094, 32100, 32106, 32112,
	32114, 32116, 32118, 32120, 32123, 32128, 32131, 32137, 32143, 32144, 32148, 32150, 32152, 32154, 32156, 32159,
	32162, 32166, 32170, 32176, 32184, 32188, 32192, 32198, 32206, 32207, 32209, 32210, 32212, 32215, 32218, 32220,
	32222, 32224, 32226, 32232, 32238, 32241, 32247, 32253, 32258, 32261, 32265, 32266, 32268, 32270, 32272, 32275,
	32278, 32279, 32286, 32293, 32295, 32298, 32299, 32300, 32301, 32303, 32306, 32307, 32309, 32311, 32316, 32321,
	32324, 32327, 32330, 32333, 32336, 32339, 32342, 32344, 32346, 32348, 32352, 32355, 32357, 32359, 32362, 32365,
	32367, 32370, 32373, 32376, 32379, 32381, 32382, 32385, 32388, 32390, 32392, 32394, 32396, 32398, 32398, 32404,
	32410, 32413, 32416, 32419, 32422, 32426, 32430, 32433, 32436, 32438, 32443, 32443, 32445, 32447, 32449, 32451,
	32453, 32455, 32458, 32460, 32463, 32466, 32469, 32474, 32476, 32478, 32480, 32482, 32484, 32486, 32488, 32490,
	32492, 32494, 32497, 32499, 32502, 32505, 32508, 32508, 32513, 32518, 32523, 32528, 32533, 32538, 32543, 32548,
	32553, 32558, 32563, 32568, 32573, 32573, 32577, 32579, 32581, 32584, 32586, 32588, 32590, 32592, 32594, 32596,
	32599, 32601, 32603, 32605, 32607, 32609, 32612, 32614, 32616, 32618, 32620, 32622, 32625, 32627, 32629, 32632,
	32635, 32638, 32640, 32642, 32644, 32646, 32648, 32648, 32652, 32656, 32661, 32666, 32670, 32674, 32678, 32682,
	32685, 32689, 32693, 32697, 32701, 32704, 32707, 32710, 32714, 32719, 32722, 32725, 32730, 32734, 32739, 32742,
	32745, 32749, 32753, 32758, 32764, 32770, 32774, 32778, 32781, 32781, 32783, 32787, 32792, 32794, 32797, 32799,
	32801, 32803, 32804, 32806, 32809, 32812, 32817, 32822, 32824, 32829, 32832, 32837, 32840, 32843, 32847, 32852,
	32854, 32857, 32860, 32865, 32870, 32873, 32878, 32883, 32885, 32886, 32888, 32890, 32893, 32894, 32899, 32901,
	32903, 32906, 32911, 32916, 32918, 32920, 32923, 32928, 32930, 32933, 32936, 32939, 32942, 32945, 32948, 32950,
	32952, 32954, 32956, 32958, 32961, 32963, 32968, 32973, 32978, 32983, 32990, 32996, 33002, 33008, 33014, 33020,
	33026, 33032, 33038, 33044, 33046, 33048, 33050, 33051, 33054, 33058, 33062, 33066, 33070, 33074, 33078, 33082,
	33086, 33090, 33094, 33098, 33102, 33106, 33110, 33114, 33118, 33121, 33124, 33127, 33130, 33133, 33136, 33139,
	33142, 33145, 33148, 33151, 33154, 33157, 33160, 33164, 33168, 33172, 33176, 33180, 33184, 33188, 33192, 33196,
	33200, 33204, 33208, 33212, 33216, 33220, 33224, 33229, 33234, 33239, 33245, 33249, 33253, 33258, 33263, 33268,
	33273, 33277, 33282, 33286, 33289, 33292, 33292, 33294, 33296, 33298, 33300, 33303, 33306, 33309, 33312, 33315,
	33318, 33322, 33326, 33329, 33332, 33336, 33340, 33344, 33348, 33352, 33356, 33360, 33364, 33368, 33372, 33377,
	33381, 33385, 33389, 33393, 33397, 33402, 33405, 33410, 33415, 33420, 33425, 33430, 33435, 33439, 33443, 33449,
	33458, 33462, 33466, 33471, 33476, 33481, 33486, 33491, 33496, 33501, 33506, 33511, 33517, 33522, 33525, 33528,
	33531, 33534, 33539, 33544, 33549, 33555, 33560, 33563, 33566, 33569, 33572, 33576, 33580, 33584, 33588, 33592,
	33596, 33599, 33602, 33605, 33608, 33613, 33618, 33621, 33624, 33627, 33630, 33634, 33638, 33641, 33644, 33647,
	33650, 33655, 33660, 33668, 33676, 33680, 33686, 33691, 33696, 33701, 33705, 33710, 33716, 33719, 33724, 33729,
	33735, 33741, 33747, 33754, 33759, 33764, 33770, 33772, 33773, 33775, 33777, 33781, 33783, 33784, 33785, 33787,
	33791, 33794, 33797, 33802, 33806, 33809, 33813, 33817, 33821, 33823, 33829, 33831, 33833, 33835, 33837, 33839,
	33841, 33843, 33845, 33847, 33849, 33850, 33852, 33853, 33855, 33857, 33858, 33861, 33863, 33866, 33868, 33870,
	33871, 33872, 33873, 33875, 33877, 33879, 33881, 33883, 33885, 33888, 33891, 33892, 33893, 33894, 33895, 33897,
	33898, 33900, 33901, 33903, 33905, 33908, 33910, 33912, 33914, 33916, 33919, 33923, 33926, 33932, 33938, 33941,
	33945, 33950, 33952, 33955, 33957, 33960, 33962, 33965, 33968, 33975, 33981, 33983, 33985, 33989, 33992, 33994,
	33995, 33997, 33999, 34002, 34006, 34008, 34011, 34014, 34016, 34019, 34022, 34028, 34034, 34040, 34046, 34053,
	34060, 34064, 34068, 34069, 34072, 34076, 34080, 34087, 34094, 34100, 34106, 34113, 34120, 34127, 34134, 34142,
	34150, 34151, 34152, 34156, 34160, 34164, 34168, 34171, 34174, 34176, 34178, 34182, 34186, 34191, 34196, 34203,
	34210, 34216, 34222, 34223, 34225, 34227, 34230, 34233, 34239, 34245, 34247, 34249, 34251, 34253, 34255, 34258,
	34261, 34264, 34267, 34269, 34271, 34273, 34275, 34277, 34280, 34282, 34284, 34286, 34288, 34289, 34290, 34291,
	34292, 34297, 34303, 34306, 34308, 34311, 34318, 34321, 34324, 34327, 34331, 34337, 34344, 34346, 34348, 34349,
	34352, 34353, 34354, 34355, 34356, 34360, 34362, 34367, 34372, 34376, 34380, 34382, 34384, 34386, 34388, 34389,
	34394, 34399, 34402, 34405, 34408, 34411, 34414, 34416, 34418, 34420, 34422, 34423, 34427, 34432, 34437, 34442,
	34447, 34456, 34465, 34471, 34477, 34481, 34485, 34490, 34495, 34502, 34509, 34516, 34523, 34530, 34537, 34542,
	34547, 34551, 34557, 34564, 34572, 34574, 34577, 34581, 34585, 34591, 34601, 34612, 34617, 34621, 34626, 34630,
	34636, 34641, 34650, 34660, 34663, 34667, 34671, 34673, 34675, 34676, 34678, 34680, 34681, 34682, 34684, 34686,
	34688, 34690, 34692, 34695, 34698, 34701, 34704, 34707, 34709, 34710, 34711, 34712, 34714, 34716, 34718, 34722,
	34725, 34726, 34727, 34730, 34733, 34736, 34739, 34742, 34745, 34746, 34747, 34753, 34755, 34759, 34764, 34765,
	34770, 34775, 34779, 34781, 34782, 34786, 34787, 34789, 34791, 34793, 34794, 34795, 34796, 34802, 34807, 34812,
	34817, 34822, 34827, 34832, 34837, 34842, 34847, 34852, 34857, 34862, 34869, 34876, 34881, 34886, 34892, 34898,
	34903, 34909, 34914, 34920, 34925, 34931, 34936, 34942, 34948, 34953, 34959, 34964, 34970, 34975, 34981, 34986,
	34991, 34996, 35001, 35006, 35012, 35017, 35022, 35027, 35033, 35038, 35043, 35048, 35053, 35059, 35065, 35070,
	35077, 35082, 35087, 35091, 35096, 35101, 35107, 35112, 35118, 35124, 35128, 35132, 35136, 35141, 35146, 35151,
	35156, 35160, 35163, 35169, 35172, 35174, 35179, 35181, 35184, 35187, 35189, 35191, 35197, 35199, 35202, 35204,
	35209, 35212, 35217, 35219, 35221, 35223, 35232, 35241, 35249, 35257, 35262, 35266, 35270, 35274, 35276, 35278,
	35281, 35284, 35288, 35291, 35295, 35299, 35302, 35306, 35311, 35315, 35320, 35325, 35329, 35334, 35339, 35344,
	35349, 35352, 35357, 35362, 35367, 35369, 35372, 35380, 35388, 35390, 35392, 35395, 35398, 35405, 35408, 35412,
	35416, 35421, 35426, 35431, 35436, 35443, 35450, 35456, 35464, 35472, 35478, 35486, 35494, 35500, 35508, 35516,
	35522, 35528, 35535, 35542, 35544, 35546, 35548, 35551, 35553, 35557, 35561, 35566, 35571, 35575, 35577, 35579,
	35581, 35583, 35584, 35586, 35588, 35591, 35594, 35598, 35602, 35604, 35608, 35609, 35610, 35612, 35614, 35617,
	35623, 35629, 35635, 35641, 35650, 35659, 35668, 35670, 35671, 35673, 35677, 35683, 35689, 35695, 35701, 35704,
	35708, 35712, 35714, 35719, 35722, 35725, 35728, 35731, 35736, 35741, 35746, 35751, 35754, 35757, 35760, 35763,
	35767, 35771, 35775, 35779, 35783, 35787, 35791, 35796, 35801, 35806, 35811, 35816, 35820, 35824, 35830, 35833,
	35838, 35841, 35844, 35848, 35852, 35856, 35860, 35863, 35866, 35868, 35870, 35873, 35878, 35883, 35883, 35885,
	35887, 35889, 35892, 35895, 35898, 35902, 35906, 35908, 35912, 35915, 35915, 35918, 35921, 35924, 35927, 35930,
	35933, 35936, 35939, 35942, 35945, 35948, 35951, 35954, 35957, 35960, 35963, 35966, 35969, 35972, 35975, 35978,
	35981, 35984, 35987, 35990, 35993, 35996, 35999, 36002, 36005, 36008, 36011, 36014, 36017, 36020, 36023, 36026,
	36029, 36032, 36035, 36039, 36043, 36047, 36051, 36055, 36059, 36063, 36067, 36071, 36075, 36079, 36083, 36087,
	36091, 36095, 36099, 36103, 36107, 36111, 36115, 36120, 36125, 36130, 36135, 36140, 36145, 36150, 36155, 36160,
	36165, 36170, 36175, 36180, 36185, 36190, 36195, 36200, 36205, 36210, 36215, 36220, 36225, 36230, 36235, 36240,
	36245, 36250, 36255, 36260, 36265, 36270, 36275, 36280, 36285, 36290, 36295, 36300, 36305, 36310, 36315, 36320,
	36325, 36330, 36335, 36340, 36345, 36350, 36355, 36360, 36365, 36370, 36375, 36380, 36385, 36390, 36395, 36400,
	36405, 36410, 36415, 36420, 36425, 36430, 36435, 36440, 36445, 36450, 36455, 36460, 36465, 36470, 36475, 36480,
	36485, 36490, 36495, 36500, 36505, 36508, 36512, 36516, 36520, 36524, 36528, 36532, 36536, 36540, 36544, 36548,
	36552, 36556, 36560, 36564, 36568, 36572, 36576, 36580, 36584, 36588, 36592, 36596, 36600, 36604, 36608, 36614,
	36620, 36626, 36632, 36638, 36644, 36650, 36656, 36662, 36669, 36676, 36682, 36688, 36695, 36702, 36708, 36714,
	36721, 36728, 36734, 36740, 36747, 36754, 36760, 36766, 36773, 36781, 36789, 36796, 36804, 36812, 36818, 36824,
	36831, 36839, 36847, 36854, 36862, 36870, 36876, 36882, 36890, 36898, 36905, 36912, 36920, 36928, 36934, 36940,
	36948, 36956, 36963, 36970, 36978, 36986, 36992, 36998, 37006, 37014, 37021, 37029, 37037, 37044, 37053, 37062,
	37071, 37080, 37088, 37096, 37104, 37112, 37118, 37124, 37130, 37136, 37142, 37146, 37150, 37157, 37164, 37170,
	37177, 37184, 37190, 37197, 37204, 37210, 37217, 37224, 37230, 37237, 37244, 37250, 37257, 37264, 37270, 37277,
	37284, 37290, 37297, 37304, 37310, 37317, 37324, 37330, 37337, 37344, 37351, 37358, 37367, 37376, 37381, 37385,
	37389, 37393, 37397, 37401, 37405, 37409, 37413, 37420, 37427, 37434, 37441, 37444, 37448, 37452, 37456, 37459,
	37463, 37467, 37471, 37473, 37477, 37481, 37485, 37488, 37492, 37496, 37500, 37503, 37505, 37507, 37509, 37513,
	37517, 37520, 37523, 37526, 37535, 37541, 37550, 37559, 37562, 37568, 37577, 37579, 37581, 37586, 37592, 37596,
	37600, 37605, 37613, 37621, 37626, 37629, 37632, 37634, 37636, 37639, 37642, 37644, 37646, 37651, 37656, 37662,
	37668, 37673, 37678, 37684, 37690, 37695, 37700, 37705, 37710, 37716, 37722, 37727, 37732, 37738, 37744, 37749,
	37754, 37756, 37758, 37764, 37765, 37766, 37768, 37770, 37774, 37775, 37777, 37782, 37787, 37792, 37797, 37803,
	37811, 37815, 37819, 37821, 37824, 37829, 37834, 37839, 37844, 37849, 37854, 37857, 37860, 37864, 37868, 37872,
	37876, 37878, 37883, 37888, 37895, 37902, 37908, 37915, 37923, 37931, 37933, 37939, 37945, 37951, 37957, 37963,
	37969, 37975, 37981, 37984, 37987, 37990, 37993, 37996, 38000, 38004, 38007, 38011, 38012, 38013, 38014, 38015,
	38017, 38019, 38020, 38021, 38022, 38024, 38026, 38027, 38028, 38030, 38032, 38034, 38038, 38042, 38043, 38047,
	38049, 38052, 38055, 38056, 38061, 38065, 38069, 38073, 38077, 38081, 38085, 38088, 38090, 38092, 38094, 38095,
	38096, 38098, 38100, 38103, 38106, 38109, 38111, 38113, 38116, 38118, 38120, 38123, 38126, 38129, 38132, 38135,
	38138, 38141, 38144, 38147, 38150, 38153, 38156, 38160, 38163, 38166, 38167, 38169, 38170, 38172, 38173, 38174,
	38175, 38176, 38177, 38178, 38179, 38180, 38181, 38182, 38183, 38184, 38185, 38186, 38187, 38188, 38189, 38192,
	38195, 38198, 38201, 38204, 38207, 38210, 38213, 38216, 38219, 38222, 38225, 38228, 38231, 38234, 38237, 38240,
	38243, 38246, 38249, 38251, 38253, 38255, 38258, 38261, 38264, 38267, 38270, 38273, 38276, 38279, 38286, 38293,
	38300, 38307, 38314, 38321, 38328, 38333, 38337, 38340, 38345, 38348, 38350, 38354, 38358, 38362, 38366, 38370,
	38374, 38379, 38384, 38390, 38396, 38399, 38402, 38406, 38410, 38414, 38418, 38420, 38422, 38425, 38426, 38428,
	38431, 38432, 38433, 38434, 38435, 38438, 38440, 38445, 38448, 38452, 38456, 38458, 38461, 38464, 38467, 38472,
	38476, 38480, 38488, 38493, 38498, 38501, 38504, 38508, 38510, 38512, 38515, 38516, 38518, 38519, 38520, 38521,
	38522, 38523, 38524, 38527, 38528, 38529, 38530, 38531, 38533, 38534, 38536, 38539, 38542, 38545, 38548, 38551,
	38554, 38555, 38557, 38561, 38565, 38569, 38573, 38575, 38577, 38578, 38579, 38581, 38585, 38588, 38589, 38591,
	38598, 38605, 38612, 38616, 38620, 38623, 38629, 38632, 38634, 38642, 38644, 38649, 38654, 38658, 38666, 38667,
	38672, 38677, 38679, 38683, 38685, 38686, 38687, 38689, 38692, 38695, 38699, 38700, 38703, 38704, 38707, 38708,
	38709, 38712, 38713, 38715, 38718, 38719, 38722, 38725, 38727, 38731, 38738, 38741, 38744, 38746, 38749, 38751,
	38755, 38758, 38760, 38761, 38762, 38764, 38766, 38768, 38770, 38773, 38774, 38777, 38779, 38781, 38783, 38786,
	38788, 38791, 38793, 38796, 38799, 38802, 38805, 38809, 38811, 38815, 38818, 38820, 38823, 38828, 38833, 38839,
	38844, 38848, 38852, 38853, 38857, 38860, 38864, 38868, 38871, 38875, 38877, 38880, 38882, 38885, 38888, 38892,
	38896, 38900, 38905, 38911, 38915, 38918, 38922, 38928, 38933, 38939, 38941, 38943, 38948, 38954, 38960, 38961,
	38964, 38967, 38968, 38970, 38974, 38980, 38987, 38989, 38992, 38996, 39003, 39010, 39015, 39020, 39024, 39028,
	39032, 39037, 39041, 39044, 39047, 39050, 39057, 39063, 39070, 39076, 39083, 39090, 39095, 39099, 39104, 39107,
	39112, 39114, 39118, 39122, 39126, 39131, 39136, 39143, 39150, 39158, 39166, 39173, 39180, 39186, 39192, 39197,
	39202, 39207, 39212, 39217, 39222, 39227, 39232, 39237, 39242, 39247, 39252, 39259, 39266, 39273, 39280, 39287,
	39294, 39301, 39308, 39315, 39322, 39330, 39338, 39346, 39354, 39362, 39370, 39378, 39386, 39394, 39402, 39408,
	39411, 39414, 39417, 39421, 39424, 39428, 39432, 39438, 39443, 39449, 39455, 39462, 39465, 39473, 39481, 39484,
	39491, 39498, 39502, 39509, 39515, 39521, 39528, 39535, 39543, 39551, 39559, 39561, 39569, 39574, 39579, 39585,
	39590, 39596, 39603, 39609, 39616, 39621, 39627, 39632, 39638, 39643, 39646, 39649, 39655, 39656, 39658, 39660,
	39666, 39672, 39676, 39680, 39683, 39688, 39691, 39693, 39696, 39699, 39702, 39707, 39710, 39714, 39719, 39724,
	39727, 39730, 39733, 39736, 39739, 39744, 39748, 39750, 39753, 39756, 39761, 39766, 39771, 39779, 39787, 39792,
	39797, 39802, 39807, 39811, 39815, 39820, 39825, 39831, 39837, 39841, 39845, 39848, 39851, 39855, 39859, 39864,
	39867, 39870, 39874, 39878, 39882, 39887, 39892, 39897, 39903, 39909, 39913, 39916, 39921, 39926, 39931, 39936,
	39941, 39946, 39951, 39956, 39961, 39966, 39971, 39976, 39981, 39986, 39991, 39996, 40001, 40006, 40011, 40016,
	40021, 40026, 40031, 40036, 40041, 40046, 40051, 40056, 40061, 40066, 40071, 40076, 40081, 40086, 40091, 40096,
	40101, 40106, 40111, 40116, 40121, 40126, 40131, 40136, 40141, 40146, 40151, 40156, 40161, 40166, 40171, 40176,
	40181, 40186, 40191, 40196, 40201, 40206, 40211, 40216, 40221, 40226, 40231, 40236, 40241, 40246, 40251, 40256,
	40261, 40266, 40271, 40276, 40281, 40286, 40291, 40296, 40301, 40306, 40311, 40316, 40321, 40326, 40331, 40336,
	40341, 40346, 40351, 40356, 40361, 40366, 40371, 40376, 40381, 40386, 40391, 40396, 40401, 40406, 40411, 40416,
	40421, 40426, 40431, 40436, 40441, 40446, 40451, 40456, 40461, 40466, 40471, 40476, 40481, 40486, 40491, 40496,
	40501, 40506, 40511, 40516, 40521, 40526, 40531, 40536, 40541, 40546, 40551, 40556, 40561, 40566, 40571, 40576,
	40581, 40586, 40591, 40596, 40601, 40606, 40611, 40616, 40621, 40626, 40631, 40636, 40641, 40646, 40651, 40656,
	40661, 40666, 40671, 40676, 40681, 40686, 40691, 40696, 40701, 40706, 40711, 40716, 40721, 40726, 40731, 40736,
	40741, 40746, 40751, 40756, 40761, 40766, 40771, 40776, 40781, 40786, 40791, 40796, 40801, 40806, 40811, 40816,
	40821, 40826, 40831, 40836, 40841, 40846, 40851, 40856, 40861, 40866, 40871, 40876, 40881, 40886, 40891, 40896,
	40901, 40906, 40911, 40916, 40921, 40926, 40931, 40936, 40941, 40946, 40951, 40956, 40961, 40966, 40971, 40976,
	40981, 40986, 40991, 40996, 41001, 41006, 41011, 41016, 41021, 41026, 41031, 41036, 41041, 41046, 41051, 41056,
	41061, 41066, 41071, 41076, 41081, 41086, 41091, 41096, 41101, 41106, 41111, 41116, 41121, 41126, 41131, 41136,
	41141, 41146, 41151, 41156, 41161, 41166, 41171, 41176, 41181, 41186, 41191, 41199, 41208, 41214, 41220, 41227,
	41234, 41239, 41244, 41249, 41254, 41257, 41260, 41264, 41268, 41272, 41276, 41283, 41288, 41292, 41296, 41303,
	41311, 41318, 41328, 41339, 41343, 41347, 41352, 41357, 41362, 41367, 41374, 41381, 41387, 41393, 41398, 41403,
	41408, 41413, 41420, 41427, 41434, 41441, 41446, 41451, 41458, 41465, 41471, 41477, 41484, 41491, 41496, 41502,
	41508, 41514, 41520, 41526, 41532, 41536, 41540, 41546, 41552, 41557, 41562, 41566, 41570, 41576, 41582, 41588,
	41593, 41598, 41602, 41608, 41616, 41623, 41630, 41637, 41644, 41651, 41658, 41665, 41672, 41679, 41686, 41693,
	41700, 41707, 41714, 41721, 41728, 41735, 41742, 41749, 41756, 41763, 41770, 41777, 41784, 41795, 41806, 41817,
	41828, 41839, 41850, 41861, 41872, 41880, 41888, 41896, 41904, 41915, 41926, 41932, 41937, 41942, 41947, 41952,
	41958, 41964, 41970, 41976, 41980, 41984, 41988, 41991, 41994, 41997, 42000, 42004, 42007, 42011, 42015, 42019,
	42022, 42025, 42030, 42035, 42040, 42045, 42050, 42055, 42063, 42071, 42079, 42087, 42092, 42097, 42103, 42109,
	42116, 42123, 42128, 42133, 42135, 42138, 42142, 42147, 42152, 42156, 42158, 42162, 42166, 42168, 42170, 42173,
	42177, 42181, 42185, 42197, 42209, 42221, 42233, 42245, 42257, 42269, 42281, 42284, 42288, 42294, 42300, 42306,
	42310, 42313, 42315, 42318, 42320, 42332, 42336, 42342, 42346, 42349, 42351, 42355, 42359, 42366, 42374, 42378,
	42382, 42384, 42387, 42389, 42392, 42396, 42399, 42402, 42407, 42412, 42417, 42422, 42427, 42432, 42434, 42439,
	42444, 42446, 42448, 42451, 42454, 42458, 42462, 42464, 42467, 42472, 42476, 42480, 42482, 42484, 42489, 42497,
	42502, 42504, 42505, 42513, 42521, 42526, 42528, 42533, 42538, 42543, 42548, 42553, 42558, 42563, 42568, 42571,
	42574, 42577, 42582, 42584, 42587, 42589, 42591, 42597, 42603, 42604, 42605, 42611, 42617, 42623, 42630, 42637,
	42643, 42649, 42653, 42657, 42662, 42665, 42668, 42671, 42674, 42678, 42682, 42684, 42686, 42693, 42700, 42706,
	42711, 42714, 42720, 42724, 42727, 42730, 42733, 42736, 42737, 42741, 42745, 42749, 42753, 42759, 42765, 42770,
	42775, 42780, 42785, 42790, 42795, 42800, 42805, 42810, 42816, 42822, 42826, 42831, 42835, 42840, 42842, 42848,
	42854, 42860, 42865, 42868, 42872, 42876, 42880, 42882, 42885, 42889, 42892, 42895, 42899, 42902, 42905, 42909,
	42913, 42916, 42919, 42924, 42929, 42935, 42941, 42945, 42949, 42952, 42955, 42962, 42967, 42972, 42975, 42978,
	42982, 42986, 42989, 42992, 42997, 43002, 43007, 43012, 43017, 43022, 43026, 43031, 43035, 43040, 43045, 43049,
	43053, 43058, 43062, 43069, 43076, 43081, 43086, 43089, 43093, 43096, 43102, 43107, 43112, 43117, 43122, 43125,
	43129, 43133, 43143, 43148, 43154, 43160, 43167, 43174, 43181, 43188, 43198, 43208, 43218, 43228, 43239, 43250,
	43255, 43260, 43270, 43280, 43286, 43292, 43304, 43316, 43323, 43330, 43339, 43348, 43360, 43372, 43385, 43398,
	43405, 43412, 43422, 43432, 43441, 43450, 43460, 43470, 43475, 43480, 43488, 43496, 43501, 43506, 43513, 43520,
	43527, 43533, 43539, 43548, 43557, 43559, 43561, 43566, 43571, 43576, 43583, 43590, 43598, 43606, 43610, 43614,
	43619, 43624, 43629, 43634, 43640, 43646, 43648, 43650, 43653, 43656, 43661, 43666, 43671, 43676, 43684, 43692,
	43697, 43702, 43707, 43712, 43718, 43724, 43730, 43736, 43741, 43746, 43748, 43750, 43755, 43760, 43763, 43766,
	43769, 43772, 43775, 43783, 43787, 43791, 43793, 43794, 43795, 43798, 43801, 43804, 43807, 43812, 43817, 43822,
	43828, 43836, 43841, 43846, 43853, 43856, 43859, 43863, 43868, 43875, 43880, 43885, 43890, 43894, 43898, 43903,
	43909, 43912, 43917, 43922, 43932, 43942, 43946, 43951, 43954, 43957, 43963, 43967, 43971, 43975, 43979, 43983,
	43986, 43989, 43992, 43996, 44000, 44004, 44008, 44012, 44016, 44021, 44026, 44031, 44036, 44041, 44046, 44053,
	44060, 44065, 44070, 44075, 44080, 44082, 44085, 44088, 44092, 44096, 44098, 44100, 44102, 44104, 44107, 44110,
	44113, 44116, 44119, 44122, 44125, 44128, 44131, 44134, 44137, 44140, 44143, 44148, 44151, 44156, 44160, 44168,
	44177, 44184, 44191, 44196, 44203, 44211, 44218, 44228, 44239, 44243, 44248, 44253, 44259, 44266, 44272, 44276,
	44279, 44282, 44288, 44295, 44300, 44306, 44312, 44318, 44324, 44328, 44332, 44335, 44338, 44341, 44346, 44351,
	44354, 44359, 44364, 44366, 44369, 44375, 44381, 44387, 44393, 44400, 44408, 44413, 44418, 44423, 44428, 44434,
	44440, 44446, 44452, 44458, 44464, 44470, 44476, 44482, 44488, 44495, 44502, 44509, 44516, 44523, 44530, 44530,
	44538, 44546, 44554, 44562, 44571, 44580, 44589, 44598, 44601, 44604, 44615, 44627, 44638, 44650, 44656, 44662,
	44668, 44674, 44679, 44684, 44689, 44694, 44703, 44712, 44721, 44730, 44732, 44734, 44736, 44738, 44743, 44746,
	44746, 44751, 44760, 44769, 44778, 44787, 44791, 44795, 44799, 44803, 44812, 44821, 44830, 44839, 44848, 44857,
	44866, 44875, 44881, 44887, 44893, 44899, 44905, 44911, 44917, 44923, 44927, 44931, 44935, 44939, 44943, 44947,
	44951, 44955, 44963, 44969, 44972, 44977, 44980, 44985, 44987, 44990, 44993, 44996, 44999, 45002, 45004, 45011,
	45018, 45025, 45032, 45035, 45039, 45043, 45048, 45054, 45058, 45063, 45066, 45068, 45070, 45073, 45076, 45079,
	45082, 45083, 45084, 45085, 45086, 45087, 45088, 45091, 45095, 45099, 45100, 45101, 45102, 45103, 45104, 45105,
	45106, 45107, 45111, 45115, 45120, 45125, 45133, 45141, 45149, 45157, 45160, 45163, 45164, 45168, 45172, 45176,
	45180, 45184, 45188, 45193, 45195, 45197, 45199, 45201, 45204, 45207, 45211, 45215, 45219, 45223, 45227, 45231,
	45235, 45239, 45243, 45247, 45252, 45256, 45260, 45264, 45268, 45272, 45276, 45280, 45284, 45288, 45292, 45296,
	45300, 45304, 45308, 45312, 45316, 45320, 45324, 45328, 45332, 45336, 45340, 45344, 45349, 45353, 45358, 45365,
	45369, 45375, 45380, 45386, 45390, 45394, 45398, 45403, 45408, 45413, 45417, 45421, 45425, 45429, 45433, 45437,
	45441, 45445, 45449, 45453, 45458, 45462, 45466, 45470, 45474, 45478, 45482, 45486, 45490, 45494, 45498, 45502,
	45506, 45510, 45514, 45518, 45522, 45526, 45530, 45534, 45538, 45542, 45546, 45550, 45555, 45559, 45564, 45571,
	45575, 45581, 45586, 45592, 45596, 45600, 45604, 45609, 45614, 45619, 45626, 45633, 45640, 45646, 45652, 45658,
	45665, 45671, 45677, 45683, 45689, 45695, 45701, 45705, 45711, 45716, 45721, 45728, 45734, 45740, 45746, 45751,
	45756, 45761, 45767, 45774, 45782, 45788, 45793, 45797, 45804, 45811, 45815, 45819, 45823, 45827, 45831, 45835,
	45839, 45843, 45847, 45851, 45855, 45859, 45863, 45867, 45871, 45875, 45879, 45883, 45887, 45891, 45895, 45899,
	45903, 45907, 45911, 45915, 45919, 45923, 45927, 45931, 45935, 45939, 45943, 45947, 45951, 45955, 45959, 45963,
	45967, 45971, 45975, 45979, 45983, 45987, 45991, 45995, 45999, 46003, 46007, 46011, 46018, 46025, 46031, 46037,
	46042, 46047, 46054, 46061, 46068, 46075, 46080, 46085, 46091, 46097, 46101, 46105, 46110, 46115, 46121, 46127,
	46133, 46139, 46144, 46149, 46156, 46163, 46169, 46175, 46181, 46187, 46194, 46201, 46207, 46213, 46219, 46225,
	46231, 46237, 46243, 46249, 46255, 46261, 46267, 46273, 46279, 46285, 46291, 46297, 46303, 46309, 46312, 46316,
	46320, 46323, 46327, 46331, 46335, 46340, 46345, 46350, 46355, 46359, 46363, 46367, 46372, 46377, 46377, 46382,
	46388, 46394, 46399, 46403, 46406, 46409, 46413, 46417, 46421, 46425, 46429, 46433, 46437, 46441, 46445, 46449,
	46453, 46457, 46461, 46465, 46469, 46473, 46477, 46481, 46485, 46489, 46493, 46497, 46501, 46505, 46509, 46513,
	46517, 46521, 46525, 46529, 46533, 46537, 46541, 46545, 46549, 46553, 46557, 46561, 46561, 46565, 46565, 46569,
	46569, 46572, 46575, 46578, 46581, 46584, 46589, 46592, 46595, 46598, 46601, 46604, 46607, 46610, 46613, 46617,
	46620, 46623, 46628, 46632, 46635, 46638, 46641, 46645, 46648, 46652, 46655, 46658, 46662, 46666, 46669, 46672,
	46675, 46679, 46683, 46686, 46689, 46692, 46695, 46698, 46702, 46706, 46709, 46712, 46715, 46718, 46721, 46724,
	46727, 46730, 46733, 46736, 46739, 46743, 46746, 46749, 46752, 46752, 46757, 46760, 46760, 46763, 46766, 46769,
	46772, 46775, 46778, 46781, 46784, 46787, 46790, 46793, 46797, 46800, 46803, 46806, 46809, 46812, 46815, 46818,
	46821, 46824, 46827, 46830, 46833, 46833, 46836, 46839, 46842, 46845, 46848, 46851, 46854, 46854, 46857, 46860,
	46863, 46866, 46869, 46872, 46875, 46875, 46878, 46881, 46884, 46887, 46890, 46893, 46896, 46896, 46899, 46902,
	46905, 46908, 46911, 46914, 46917, 46917, 46920, 46923, 46926, 46929, 46932, 46935, 46938, 46938, 46941, 46944,
	46947, 46950, 46953, 46956, 46959, 46959, 46962, 46965, 46968, 46971, 46974, 46977, 46980, 46980, 46983, 46986,
	46989, 46992, 46995, 46998, 47001, 47001, 47005, 47009, 47013, 47017, 47021, 47025, 47029, 47033, 47037, 47041,
	47045, 47049, 47053, 47057, 47061, 47065, 47069, 47073, 47077, 47081, 47085, 47091, 47095, 47099, 47103, 47108,
	47112, 47116, 47121, 47126, 47131, 47137, 47141, 47146, 47149, 47152, 47156, 47160, 47163, 47167, 47170, 47173,
	47176, 47178, 47182, 47186, 47188, 47189, 47191, 47194, 47195, 47197, 47199, 47201, 47206, 47209, 47211, 47213,
	47216, 47220, 47224, 47228, 47232, 47236, 47241, 47246, 47250, 47254, 47258, 47262, 47266, 47270, 47273, 47276,
	47282, 47288, 47292, 47295, 47298, 47300, 47302, 47306, 47308, 47310, 47312, 47314, 47318, 47322, 47324, 47328,
	47332, 47336, 47339, 47342, 47345, 47346, 47348, 47350, 47358, 47362, 47365, 47368, 47374, 47376, 47380, 47383,
	47385, 47387, 47389, 47391, 47394, 47397, 47402, 47407, 47411, 47414, 47417, 47422, 47427, 47433, 47439, 47443,
	47447, 47451, 47455, 47457, 47457, 47460, 47463, 47467, 47471, 47475, 47478, 47481, 47484, 47488, 47492, 47495,
	47498, 47502, 47506, 47510, 47514, 47518, 47522, 47525, 47528, 47532, 47536, 47540, 47544, 47547, 47550, 47550,
	47553, 47556, 47559, 47562, 47565, 47568, 47572, 47576, 47579, 47583, 47587, 47593, 47596, 47599, 47602, 47607,
	47610, 47614, 47618, 47621, 47624, 47630, 47634, 47638, 47642, 47646, 47649, 47652, 47655, 47658, 47661, 47665,
	47669, 47672, 47675, 47679, 47683, 47687, 47690, 47693, 47697, 47701, 47707, 47711, 47714, 47720, 47726, 47729,
	47735, 47739, 47743, 47747, 47750, 47756, 47760, 47764, 47770, 47776, 47780, 47784, 47787, 47790, 47797, 47803,
	47809, 47815, 47819, 47823, 47827, 47833, 47836, 47842, 47845, 47848, 47854, 47860, 47866, 47870, 47874, 47880,
	47886, 47892, 47898, 47904, 47910, 47916, 47919, 47925, 47931, 47931, 47934, 47937, 47940, 47943, 47946, 47949,
	47952, 47955, 47958, 47961, 47964, 47967, 47971, 47974, 47977, 47980, 47984, 47987, 47990, 47993, 47996, 48001,
	48005, 48008, 48011, 48014, 48017, 48020, 48023, 48026, 48029, 48032, 48035, 48038, 48042, 48045, 48048, 48051,
	48054, 48057, 48060, 48063, 48066, 48069, 48072, 48075, 48078, 48081, 48084, 48087, 48090, 48094, 48098, 48102,
	48106, 48109, 48112, 48115, 48118, 48121, 48124, 48127, 48130, 48133, 48136, 48139, 48142, 48145, 48148, 48151,
	48154, 48157, 48160, 48163, 48166, 48169, 48172, 48175, 48178, 48182, 48185, 48188, 48191, 48194, 48197, 48200,
	48203, 48206, 48210, 48215, 48218, 48221, 48224, 48227, 48230, 48233, 48236, 48239, 48242, 48245, 48248, 48251,
	48256, 48259, 48263, 48266, 48269, 48272, 48275, 48278, 48281, 48284, 48287, 48290, 48293, 48296, 48299, 48302,
	48305, 48308, 48311, 48314, 48317, 48320, 48323, 48326, 48329, 48332, 48335, 48338, 48341, 48344, 48347, 48350,
	48353, 48356, 48359, 48362, 48365, 48368, 48371, 48374, 48377, 48381, 48384, 48387, 48390, 48393, 48396, 48399,
	48402, 48405, 48408, 48411, 48414, 48417, 48420, 48423, 48426, 48429, 48432, 48435, 48438, 48441, 48444, 48447,
	48450, 48453, 48456, 48459, 48462, 48467, 48470, 48473, 48476, 48479, 48482, 48486, 48489, 48492, 48495, 48498,
	48501, 48504, 48507, 48510, 48513, 48516, 48519, 48522, 48525, 48529, 48532, 48535, 48538, 48541, 48544, 48547,
	48550, 48553, 48556, 48559, 48562, 48565, 48568, 48571, 48574, 48577, 48580, 48583, 48586, 48589, 48592, 48595,
	48595, 48601, 48607, 48615, 48623, 48628, 48634, 48640, 48646, 48653, 48660, 48667, 48671, 48671, 48673, 48675,
	48678, 48680, 48684, 48687, 48690, 48693, 48696, 48699, 48703, 48707, 48710, 48713, 48717, 48721, 48725, 48729,
	48731, 48733, 48737, 48741, 48745, 48749, 48754, 48759, 48763, 48767, 48769, 48774, 48778, 48783, 48786, 48789,
	48792, 48795, 48798, 48801, 48804, 48807, 48810, 48813, 48817, 48821, 48825, 48829, 48834, 48839, 48841, 48845,
	48852, 48858, 48867, 48873, 48876, 48882, 48885, 48888, 48891, 48895, 48897, 48900, 48903, 48907, 48907, 48911,
	48914, 48918, 48921, 48925, 48928, 48932, 48935, 48939, 48942, 48945, 48948, 48951, 48954, 48957, 48960, 48963,
	48966, 48969, 48972, 48975, 48978, 48981, 48984, 48987, 48990, 48993, 48996, 48999, 49002, 49005, 49008, 49011,
	49014, 49018, 49021, 49024, 49027, 49030, 49033, 49036, 49039, 49042, 49045, 49048, 49051, 49054, 49057, 49060,
	49063, 49066, 49069, 49072, 49075, 49078, 49081, 49084, 49087, 49090, 49093, 49096, 49099, 49102, 49105, 49108,
	49111, 49115, 49118, 49122, 49125, 49129, 49132, 49135, 49138, 49141, 49144, 49147, 49151, 49154, 49157, 49160,
	49163, 49166, 49169, 49173, 49177, 49177, 49184, 49193, 49199, 49207, 49210, 49214, 49217, 49222, 49226, 49229,
	49233, 49236, 49240, 49243, 49247, 49250, 49254, 49257, 49260, 49263, 49266, 49269, 49272, 49275, 49278, 49281,
	49284, 49287, 49290, 49293, 49296, 49299, 49302, 49305, 49308, 49311, 49314, 49317, 49320, 49323, 49326, 49329,
	49333, 49336, 49339, 49342, 49345, 49348, 49351, 49354, 49357, 49360, 49363, 49366, 49369, 49372, 49375, 49378,
	49381, 49384, 49387, 49390, 49393, 49396, 49399, 49402, 49405, 49408, 49411, 49414, 49417, 49420, 49423, 49426,
	49430, 49433, 49437, 49440, 49444, 49447, 49450, 49453, 49456, 49459, 49462, 49466, 49469, 49472, 49475, 49478,
	49481, 49484, 49488, 49492, 49495, 49498, 49501, 49504, 49507, 49513, 49516, 49520, 49523, 49523, 49526, 49529,
	49532, 49535, 49538, 49541, 49544, 49547, 49550, 49553, 49556, 49559, 49562, 49565, 49568, 49571, 49574, 49577,
	49580, 49583, 49586, 49589, 49592, 49595, 49598, 49601, 49604, 49607, 49610, 49613, 49616, 49619, 49622, 49625,
	49628, 49631, 49634, 49637, 49640, 49643, 49646, 49652, 49655, 49655, 49658, 49661, 49666, 49669, 49674, 49679,
	49682, 49685, 49688, 49693, 49698, 49703, 49708, 49713, 49718, 49723, 49726, 49729, 49732, 49737, 49740, 49743,
	49746, 49749, 49752, 49755, 49758, 49761, 49764, 49767, 49770, 49773, 49776, 49779, 49782, 49785, 49788, 49791,
	49794, 49797, 49800, 49803, 49806, 49809, 49812, 49815, 49818, 49821, 49824, 49827, 49830, 49832, 49835, 49840,
	49845, 49850, 49857, 49862, 49869, 49874, 49879, 49884, 49889, 49894, 49897, 49902, 49907, 49914, 49921, 49926,
	49931, 49934, 49937, 49942, 49947, 49952, 49957, 49962, 49965, 49968, 49971, 49976, 49981, 49984, 49987, 49990,
	49995, 50000, 50005, 50010, 50015, 50020, 50023, 50026, 50026, 50030, 50034, 50038, 50042, 50046, 50050, 50054,
	50058, 50062, 50066, 50070, 50074, 50078, 50082, 50086, 50090, 50093, 50096, 50099, 50102, 50105, 50108, 50111,
	50114, 50117, 50120, 50123, 50126, 50129, 50132, 50135, 50138, 50141, 50144, 50147, 50150, 50154, 50158, 50162,
	50166, 50169, 50172, 50175, 50179, 50182, 50185, 50188, 50191, 50194, 50197, 50200, 50203, 50206, 50209, 50212,
	50215, 50218, 50221, 50224, 50227, 50230, 50233, 50236, 50239, 50242, 50245, 50248, 50251, 50254, 50257, 50260,
	50263, 50266, 50269, 50272, 50275, 50278, 50281, 50284, 50287, 50290, 50293, 50296, 50299, 50299, 50303, 50307,
	50311, 50315, 50319, 50323, 50327, 50331, 50335, 50339, 50343, 50347, 50351, 50355, 50359, 50363, 50366, 50369,
	50372, 50375, 50378, 50381, 50384, 50387, 50390, 50393, 50396, 50399, 50402, 50405, 50409, 50413, 50417, 50421,
	50425, 50429, 50433, 50437, 50441, 50445, 50449, 50453, 50457, 50461, 50465, 50469, 50474, 50474, 50477, 50480,
	50483, 50486, 50489, 50492, 50495, 50498, 50501, 50504, 50507, 50510, 50513, 50516, 50519, 50522, 50525, 50528,
	50531, 50534, 50537, 50540, 50543, 50546, 50549, 50552, 50555, 50558, 50561, 50564, 50567, 50570, 50573, 50576,
	50579, 50582, 50585, 50588, 50591, 50594, 50600, 50606, 50612, 50618, 50624, 50630, 50636, 50642, 50644, 50648,
	50652, 50656, 50660, 50664, 50668, 50672, 50676, 50680, 50683, 50687, 50691, 50695, 50699, 50703, 50706, 50709,
	50712, 50715, 50718, 50721, 50724, 50727, 50730, 50733, 50736, 50739, 50742, 50745, 50749, 50753, 50757, 50761,
	50765, 50769, 50773, 50777, 50781, 50785, 50789, 50793, 50797, 50801, 50805, 50809, 50813, 50816, 50819, 50822,
	50825, 50828, 50831, 50834, 50837, 50840, 50843, 50846, 50849, 50852, 50855, 50858, 50861, 50864, 50867, 50870,
	50873, 50876, 50879, 50882, 50885, 50888, 50891, 50894, 50897, 50900, 50903, 50906, 50909, 50912, 50915, 50918,
	50921, 50924, 50927, 50930, 50933, 50936, 50939, 50942, 50945, 50948, 50951, 50954, 50957, 50960, 50963, 50967,
	50971, 50975, 50979, 50982, 50986, 50990, 50994, 50998, 51002, 51006, 51010, 51014, 51018, 51021, 51026, 51031,
	51036, 51041, 51046, 51051, 51056, 51061, 51066, 51071, 51076, 51081, 51083, 51085, 51087, 51090, 51093, 51096,
	51099, 51102, 51105, 51108, 51111, 51114, 51117, 51120, 51123, 51126, 51129, 51132, 51135, 51138, 51141, 51144,
	51147, 51150, 51153, 51156, 51159, 51162, 51165, 51168, 51171, 51174, 51177, 51180, 51183, 51186, 51189, 51192,
	51195, 51198, 51201, 51204, 51207, 51210, 51213, 51216, 51219, 51222, 51225, 51228, 51231, 51235, 51237, 51239,
	51241, 51243, 51245, 51247, 51249, 51251, 51253, 51255, 51257, 51259, 51261, 51263, 51265, 51267, 51269, 51271,
	51273, 51275, 51277, 51279, 51281, 51283, 51285, 51287, 51289, 51291, 51293, 51295, 51297, 51299, 51301, 51303,
	51305, 51307, 51309, 51311, 51313, 51315, 51317, 51319, 51321, 51323, 51325, 51327, 51329, 51331, 51333, 51335,
	51337, 51339, 51341, 51343, 51345, 51347, 51349, 51351, 51353, 51355, 51357, 51359, 51361, 51363, 51365, 51367,
	51369, 51371, 51373, 51375, 51377, 51379, 51381, 51383, 51385, 51387, 51389, 51391, 51393, 51395, 51397, 51399,
	51401, 51403, 51405, 51407, 51409, 51411, 51417, 51423, 51429, 51435, 51441, 51447, 51453, 51459, 51465, 51471,
	51477, 51483, 51489, 51495, 51501, 51507, 51513, 51519, 51525, 51531, 51537, 51545, 51553, 51561, 51569, 51571,
	51573, 51575, 51577, 51579, 51581, 51583, 51586, 51589, 51591, 51595, 51599, 51603, 51607, 51609, 51612, 51614,
	51617, 51619, 51621, 51623, 51625, 51627, 51629, 51631, 51633, 51635, 51638, 51641, 51643, 51645, 51647, 51649,
	51651, 51653, 51655, 51658, 51660, 51662, 51664, 51666, 51668, 51671, 51673, 51675, 51677, 51680, 51683, 51686,
	51689, 51692, 51695, 51698, 51701, 51705, 51710, 51712, 51714, 51716, 51718, 51720, 51724, 51729, 51731, 51733,
	51736, 51738, 51740, 51742, 51745, 51747, 51749, 51752, 51754, 51756, 51759, 51761, 51763, 51766, 51769, 51772,
	51774, 51776, 51778, 51780, 51784, 51786, 51788, 51790, 51792, 51794, 51796, 51798, 51801, 51803, 51805, 51807,
	51809, 51811, 51814, 51816, 51818, 51820, 51822, 51824, 51826, 51828, 51830, 51832, 51836, 51840, 51846, 51852,
	51858, 51864, 51870, 51876, 51882, 51888, 51894, 51900, 51906, 51912, 51918, 51924, 51930, 51936, 51942, 51948,
	51954, 51960, 51968, 51976, 51984, 51992, 52000, 52008, 52016, 52024, 52032, 52038, 52046, 52048, 52048, 52053,
	52058, 52064, 52068, 52071, 52074, 52078, 52082, 52086, 52089, 52092, 52095, 52098, 52102, 52105, 52108, 52111,
	52117, 52120, 52123, 52127, 52130, 52134, 52137, 52140, 52144, 52148, 52152, 52157, 52162, 52165, 52168, 52171,
	52175, 52178, 52184, 52188, 52191, 52194, 52197, 52200, 52203, 52206, 52211, 52215, 52219, 52222, 52226, 52229,
	52233, 52238, 52244, 52247, 52252, 52255, 52259, 52264, 52269, 52272, 52275, 52279, 52283, 52287, 52291, 52291,
	52294, 52297, 52300, 52303, 52306, 52309, 52312, 52315, 52318, 52321, 52324, 52327, 52330, 52333, 52336, 52339,
	52342, 52345, 52348, 52351, 52354, 52357, 52360, 52363, 52366, 52369, 52372, 52375, 52378, 52381, 52384, 52387,
	52390, 52393, 52396, 52399, 52402, 52405, 52408, 52411, 52414, 52417, 52420, 52423, 52426, 52429, 52432, 52435,
	52438, 52441, 52444, 52447, 52450, 52453, 52456, 52459, 52462, 52465, 52468, 52471, 52474, 52477, 52480, 52483,
	52486, 52489, 52492, 52495, 52498, 52501, 52504, 52507, 52510, 52513, 52516, 52519, 52522, 52525, 52528, 52531,
	52534, 52537, 52540, 52543, 52546, 52549, 52552, 52555, 52558, 52561, 52564, 52567, 52570, 52573, 52576, 52579,
	52582, 52585, 52588, 52591, 52594, 52597, 52600, 52603, 52606, 52609, 52612, 52615, 52618, 52621, 52624, 52627,
	52630, 52633, 52636, 52639, 52642, 52645, 52648, 52651, 52654, 52657, 52660, 52663, 52666, 52669, 52672, 52675,
	52678, 52681, 52684, 52687, 52690, 52693, 52696, 52699, 52702, 52705, 52708, 52711, 52714, 52717, 52720, 52723,
	52726, 52729, 52732, 52735, 52738, 52741, 52744, 52747, 52750, 52753, 52756, 52759, 52762, 52765, 52768, 52771,
	52774, 52777, 52780, 52783, 52786, 52789, 52792, 52795, 52798, 52801, 52804, 52807, 52810, 52813, 52816, 52819,
	52822, 52825, 52828, 52831, 52834, 52837, 52840, 52843, 52846, 52849, 52852, 52855, 52858, 52861, 52864, 52867,
	52870, 52873, 52876, 52879, 52882, 52885, 52888, 52891, 52894, 52897, 52900, 52903, 52906, 52909, 52912, 52915,
	52918, 52921, 52924, 52927, 52930, 52933, 52936, 52939, 52942, 52945, 52948, 52951, 52954, 52957, 52960, 52963,
	52966, 52969, 52972, 52975, 52978, 52981, 52984, 52987, 52990, 52993, 52996, 52999, 53002, 53005, 53008, 53011,
	53014, 53017, 53020, 53023, 53026, 53029, 53032, 53035, 53038, 53041, 53044, 53047, 53050, 53053, 53056, 53059,
	53062, 53065, 53068, 53071, 53074, 53077, 53080, 53083, 53086, 53089, 53092, 53095, 53098, 53101, 53104, 53107,
	53110, 53113, 53116, 53119, 53122, 53125, 53128, 53131, 53134, 53137, 53140, 53143, 53146, 53149, 53152, 53155,
	53158, 53161, 53164, 53167, 53170, 53173, 53176, 53179, 53182, 53185, 53188, 53191, 53194, 53197, 53200, 53203,
	53206, 53209, 53212, 53215, 53218, 53221, 53224, 53227, 53230, 53233, 53236, 53239, 53242, 53245, 53248, 53251,
	53254, 53257, 53260, 53263, 53266, 53269, 53272, 53275, 53278, 53281, 53284, 53287, 53290, 53293, 53296, 53299,
	53302, 53305, 53308, 53311, 53314, 53317, 53320, 53323, 53326, 53329, 53332, 53335, 53338, 53341, 53344, 53347,
	53350, 53353, 53356, 53359, 53362, 53365, 53368, 53371, 53374, 53377, 53380, 53383, 53386, 53389, 53392, 53395,
	53398, 53401, 53404, 53407, 53410, 53413, 53416, 53419, 53422, 53425, 53428, 53431, 53434, 53437, 53440, 53443,
	53446, 53449, 53452, 53455, 53458, 53461, 53464, 53467, 53470, 53473, 53476, 53479, 53482, 53485, 53488, 53491,
	53494, 53497, 53500, 53503, 53506, 53509, 53512, 53515, 53518, 53521, 53524, 53527, 53530, 53533, 53536, 53539,
	53542, 53545, 53548, 53551, 53554, 53557, 53560, 53563, 53566, 53569, 53572, 53575, 53578, 53581, 53584, 53587,
	53590, 53593, 53596, 53599, 53602, 53605, 53608, 53611, 53614, 53617, 53620, 53623, 53626, 53629, 53632, 53635,
	53638, 53641, 53644, 53647, 53650, 53653, 53656, 53659, 53662, 53665, 53668, 53671, 53674, 53677, 53680, 53683,
	53686, 53689, 53692, 53695, 53698, 53701, 53704, 53707, 53710, 53713, 53716, 53719, 53722, 53725, 53728, 53731,
	53734, 53737, 53740, 53743, 53746, 53749, 53752, 53755, 53758, 53761, 53764, 53767, 53770, 53773, 53776, 53779,
	53782, 53785, 53788, 53791, 53794, 53797, 53800, 53803, 53806, 53809, 53812, 53815, 53818, 53821, 53824, 53827,
	53830, 53833, 53836, 53839, 53842, 53845, 53848, 53851, 53854, 53857, 53860, 53863, 53866, 53869, 53872, 53875,
	53878, 53881, 53884, 53887, 53890, 53893, 53896, 53899, 53902, 53905, 53908, 53911, 53914, 53917, 53920, 53923,
	53926, 53929, 53932, 53935, 53938, 53941, 53944, 53947, 53950, 53953, 53956, 53959, 53962, 53965, 53968, 53971,
	53974, 53977, 53980, 53983, 53986, 53989, 53992, 53995, 53998, 54001, 54004, 54007, 54010, 54013, 54016, 54019,
	54022, 54025, 54028, 54031, 54034, 54037, 54040, 54043, 54046, 54049, 54052, 54055, 54058, 54061, 54064, 54067,
	54070, 54073, 54076, 54079, 54082, 54085, 54088, 54091, 54094, 54097, 54100, 54103, 54106, 54109, 54112, 54115,
	54118, 54121, 54124, 54127, 54130, 54133, 54136, 54139, 54142, 54145, 54148, 54151, 54154, 54157, 54160, 54163,
	54166, 54169, 54172, 54175, 54178, 54181, 54184, 54187, 54190, 54193, 54196, 54199, 54202, 54205, 54208, 54211,
	54214, 54217, 54220, 54223, 54226, 54229, 54232, 54235, 54238, 54241, 54244, 54247, 54250, 54253, 54256, 54259,
	54262, 54265, 54268, 54271, 54274, 54277, 54280, 54283, 54286, 54289, 54292, 54295, 54298, 54301, 54304, 54307,
	54310, 54313, 54316, 54319, 54322, 54325, 54328, 54331, 54334, 54337, 54340, 54343, 54346, 54349, 54352, 54355,
	54358, 54361, 54364, 54367, 54370, 54373, 54376, 54379, 54382, 54385, 54388, 54391, 54394, 54397, 54400, 54403,
	54406, 54409, 54412, 54415, 54418, 54421, 54424, 54427, 54430, 54433, 54436, 54439, 54442, 54445, 54448, 54451,
	54454, 54457, 54460, 54463, 54466, 54469, 54472, 54475, 54478, 54481, 54484, 54487, 54490, 54493, 54496, 54499,
	54502, 54505, 54508, 54511, 54514, 54517, 54520, 54523, 54526, 54529, 54532, 54535, 54538, 54541, 54544, 54547,
	54550, 54553, 54556, 54559, 54562, 54565, 54568, 54571, 54574, 54577, 54580, 54583, 54586, 54589, 54592, 54595,
	54598, 54601, 54604, 54607, 54610, 54613, 54616, 54619, 54622, 54625, 54628, 54631, 54634, 54637, 54640, 54643,
	54646, 54649, 54652, 54655, 54658, 54661, 54664, 54667, 54670, 54673, 54676, 54679, 54682, 54685, 54688, 54691,
	54694, 54697, 54700, 54703, 54706, 54709, 54712, 54715, 54718, 54721, 54724, 54727, 54730, 54733, 54736, 54739,
	54742, 54745, 54748, 54751, 54754, 54757, 54760, 54763, 54766, 54769, 54772, 54775, 54778, 54781, 54784, 54787,
	54790, 54793, 54796, 54799, 54802, 54805, 54808, 54811, 54814, 54817, 54820, 54823, 54826, 54829, 54832, 54835,
	54838, 54841, 54844, 54847, 54850, 54853, 54856, 54859, 54862, 54865, 54868, 54871, 54874, 54877, 54880, 54883,
	54886, 54889, 54892, 54895, 54898, 54901, 54904, 54907, 54910, 54913, 54916, 54919, 54922, 54925, 54928, 54931,
	54934, 54937, 54940, 54943, 54946, 54949, 54952, 54955, 54958, 54961, 54964, 54967, 54970, 54973, 54976, 54979,
	54982, 54985, 54988, 54991, 54994, 54997, 55000, 55003, 55006, 55009, 55012, 55015, 55018, 55021, 55024, 55027,
	55030, 55033, 55036, 55039, 55042, 55045, 55048, 55051, 55054, 55057, 55060, 55063, 55066, 55069, 55072, 55075,
	55078, 55081, 55084, 55087, 55090, 55093, 55096, 55099, 55102, 55105, 55108, 55111, 55114, 55117, 55120, 55123,
	55126, 55129, 55132, 55135, 55138, 55141, 55144, 55147, 55150, 55153, 55156, 55159, 55162, 55165, 55168, 55171,
	55174, 55177, 55180, 55183, 55186, 55189, 55192, 55195, 55198, 55201, 55204, 55207, 55210, 55213, 55216, 55219,
	55222, 55225, 55228, 55231, 55234, 55237, 55240, 55243, 55246, 55249, 55252, 55255, 55258, 55261, 55264, 55267,
	55270, 55273, 55276, 55279, 55282, 55285, 55288, 55291, 55294, 55297, 55300, 55303, 55306, 55309, 55312, 55315,
	55318, 55321, 55324, 55327, 55330, 55333, 55336, 55339, 55342, 55345, 55348, 55351, 55354, 55357, 55360, 55363,
	55366, 55369, 55372, 55375, 55378, 55381, 55384, 55387, 55390, 55393, 55396, 55399, 55402, 55405, 55408, 55411,
	55414, 55417, 55420, 55423, 55426, 55429, 55432, 55435, 55438, 55441, 55444, 55447, 55450, 55453, 55456, 55459,
	55462, 55465, 55468, 55471, 55474, 55477, 55480, 55483, 55486, 55489, 55492, 55495, 55498, 55501, 55504, 55507,
	55510, 55513, 55516, 55519, 55522, 55525, 55528, 55531, 55534, 55537, 55540, 55543, 55546, 55549, 55552, 55555,
	55558, 55561, 55564, 55567, 55570, 55573, 55576, 55579, 55582, 55585, 55588, 55591, 55594, 55597, 55600, 55603,
	55606, 55609, 55612, 55615, 55618, 55621, 55624, 55627, 55630, 55633, 55636, 55639, 55642, 55645, 55648, 55651,
	55654, 55657, 55660, 55663, 55666, 55669, 55672, 55675, 55678, 55681, 55684, 55687, 55690, 55693, 55696, 55699,
	55702, 55705, 55708, 55711, 55714, 55717, 55720, 55723, 55726, 55729, 55732, 55735, 55738, 55741, 55744, 55747,
	55750, 55753, 55756, 55759, 55762, 55765, 55768, 55771, 55774, 55777, 55780, 55783, 55786, 55786, 55789, 55792,
	55795, 55798, 55801, 55804, 55807, 55810, 55813, 55816, 55819, 55822, 55825, 55828, 55831, 55834, 55837, 55840,
	55843, 55846, 55849, 55852, 55855, 55858, 55861, 55864, 55867, 55870, 55873, 55876, 55879, 55882, 55885, 55888,
	55891, 55894, 55897, 55900, 55903, 55906, 55909, 55912, 55915, 55918, 55921, 55924, 55927, 55930, 55933, 55936,
	55939, 55942, 55945, 55948, 55951, 55951, 55954, 55957, 55960, 55963, 55966, 55969, 55972, 55975, 55978, 55981,
	55984, 55987, 55990, 55993, 55996, 55999, 56002, 56005, 56008, 56011, 56014, 56017, 56020, 56023, 56026, 56029,
	56032, 56035, 56038, 56041, 56044, 56047, 56050, 56053, 56056, 56059, 56062, 56065, 56068, 56071, 56076, 56081,
	56086, 56091, 56096, 56101, 56104, 56108, 56111, 56114, 56117, 56120, 56123, 56126, 56129, 56132, 56135, 56138,
	56141, 56144, 56147, 56150, 56153, 56156, 56159, 56162, 56165, 56168, 56171, 56174, 56177, 56180, 56183, 56186,
	56189, 56192, 56195, 56198, 56201, 56204, 56207, 56210, 56213, 56216, 56219, 56222, 56225, 56228, 56231, 56234,
	56237, 56240, 56243, 56246, 56249, 56252, 56255, 56258, 56261, 56264, 56267, 56270, 56273, 56276, 56279, 56282,
	56285, 56288, 56291, 56294, 56297, 56300, 56303, 56306, 56309, 56312, 56315, 56318, 56321, 56324, 56327, 56330,
	56333, 56336, 56339, 56342, 56345, 56348, 56351, 56354, 56357, 56360, 56363, 56366, 56369, 56372, 56375, 56378,
	56381, 56384, 56387, 56390, 56393, 56396, 56399, 56402, 56405, 56408, 56411, 56414, 56417, 56420, 56423, 56426,
	56429, 56432, 56435, 56438, 56441, 56444, 56447, 56450, 56453, 56456, 56459, 56462, 56465, 56468, 56471, 56474,
	56477, 56480, 56483, 56486, 56489, 56492, 56495, 56498, 56501, 56504, 56507, 56510, 56513, 56516, 56519, 56522,
	56525, 56528, 56531, 56534, 56537, 56540, 56543, 56546, 56549, 56552, 56555, 56558, 56561, 56564, 56567, 56570,
	56573, 56576, 56579, 56582, 56585, 56588, 56591, 56594, 56597, 56600, 56603, 56606, 56609, 56612, 56615, 56618,
	56621, 56624, 56627, 56630, 56633, 56636, 56639, 56642, 56645, 56648, 56651, 56654, 56657, 56660, 56663, 56666,
	56669, 56672, 56675, 56678, 56681, 56684, 56687, 56690, 56693, 56696, 56699, 56702, 56705, 56708, 56711, 56714,
	56717, 56720, 56723, 56726, 56729, 56732, 56735, 56738, 56741, 56744, 56747, 56750, 56753, 56756, 56759, 56762,
	56765, 56768, 56771, 56774, 56777, 56780, 56783, 56786, 56789, 56792, 56795, 56798, 56801, 56804, 56807, 56810,
	56813, 56816, 56819, 56822, 56825, 56828, 56831, 56834, 56837, 56840, 56843, 56846, 56849, 56852, 56855, 56858,
	56861, 56864, 56867, 56870, 56873, 56876, 56879, 56882, 56885, 56888, 56891, 56894, 56897, 56900, 56903, 56906,
	56909, 56912, 56915, 56917, 56920, 56923, 56927, 56931, 56935, 56938, 56941, 56944, 56947, 56950, 56953, 56956,
	56959, 56962, 56965, 56968, 56973, 56976, 56979, 56982, 56985, 56988, 56991, 56994, 56997, 57000, 57003, 57006,
	57010, 57014, 57014, 57018, 57022, 57026, 57030, 57035, 57040, 57044, 57048, 57052, 57056, 57061, 57066, 57071,
	57076, 57081, 57086, 57093, 57100, 57105, 57110, 57115, 57120, 57125, 57130, 57136, 57142, 57147, 57152, 57159,
	57166, 57170, 57174, 57179, 57184, 57189, 57194, 57199, 57204, 57209, 57214, 57219, 57224, 57229, 57234, 57240,
	57246, 57250, 57253, 57258, 57263, 57268, 57270, 57275, 57279, 57283, 57287, 57292, 57296, 57301, 57305, 57308,
	57311, 57313, 57315, 57319, 57323, 57327, 57331, 57335, 57339, 57343, 57347, 57351, 57355, 57362, 57369, 57373,
	57377, 57381, 57385, 57389, 57393, 57397, 57401, 57405, 57409, 57413, 57417, 57422, 57427, 57432, 57437, 57442,
	57447, 57451, 57456, 57459, 57462, 57465, 57468, 57471, 57474, 57477, 57480, 57483, 57486, 57489, 57492, 57495,
	57498, 57501, 57504, 57507, 57510, 57513, 57516, 57519, 57522, 57525, 57528, 57531, 57534, 57537, 57540, 57543,
	57546, 57549, 57552, 57555, 57558, 57561, 57564, 57567, 57570, 57573, 57576, 57579, 57582, 57585, 57588, 57591,
	57594, 57597, 57600, 57603, 57606, 57609, 57612, 57615, 57618, 57621, 57624, 57627, 57630, 57633, 57636, 57639,
	57642, 57645, 57648, 57651, 57654, 57657, 57660, 57663, 57666, 57669, 57672, 57675, 57678, 57681, 57684, 57687,
	57690, 57693, 57696, 57700, 57704, 57706, 57709, 57711, 57713, 57715, 57718, 57718, 57724, 57730, 57736, 57742,
	57748, 57754, 57760, 57766, 57774, 57780, 57786, 57792, 57800, 57811, 57820, 57829, 57838, 57849, 57859, 57867,
	57875, 57883, 57893, 57898, 57902, 57907, 57913, 57918, 57923, 57928, 57934, 57940, 57946, 57952, 57957, 57962,
	57967, 57972, 57976, 57980, 57984, 57988, 57992, 57996, 58000, 58004, 58010, 58016, 58021, 58026, 58030, 58034,
	58038, 58042, 58046, 58050, 58054, 58058, 58065, 58072, 58076, 58080, 58087, 58094, 58100, 58106, 58113, 58120,
	58129, 58138, 58143, 58148, 58155, 58162, 58170, 58178, 58184, 58190, 58194, 58198, 58206, 58214, 58220, 58226,
	58233, 58240, 58248, 58256, 58263, 58270, 58275, 58280, 58285, 58290, 58297, 58304, 58308, 58312, 58317, 58322,
	58328, 58334, 58342, 58350, 58354, 58358, 58362, 58366, 58370, 58374, 58378, 58382, 58385, 58389, 58393, 58397,
	58401, 58405, 58410, 58414, 58418, 58423, 58428, 58433, 58438, 58443, 58449, 58455, 58460, 58465, 58470, 58475,
	58480, 58485, 58490, 58495, 58500, 58503, 58508, 58512, 58516, 58521, 58530, 58534, 58540, 58546, 58552, 58558,
	58565, 58572, 58578, 58584, 58590, 58596, 58601, 58606, 58611, 58616, 58621, 58626, 58633, 58640, 58647, 58654,
	58661, 58668, 58675, 58682, 58689, 58696, 58702, 58708, 58713, 58719, 58725, 58730, 58735, 58740, 58748, 58752,
	58756, 58760, 58764, 58768, 58774, 58780, 58785, 58790, 58795, 58800, 58805, 58810, 58816, 58822, 58827, 58832,
	58839, 58845, 58852, 58860, 58868, 58876, 58884, 58884, 58890, 58896, 58896, 58901, 58901, 58906, 58912, 58918,
	58923, 58928, 58928, 58932, 58936, 58940, 58946, 58952, 58957, 58963, 58968, 58974, 58979, 58984, 58989, 58994,
	58999, 59003, 59007, 59011, 59015, 59019, 59023, 59027, 59031, 59035, 59039, 59043, 59047, 59051, 59055, 59059,
	59063, 59067, 59071, 59075, 59079, 59083, 59087, 59091, 59095, 59099, 59103, 59107, 59111, 59115, 59119, 59123,
	59127, 59131, 59135, 59139, 59144, 59149, 59154, 59159, 59164, 59170, 59176, 59182, 59188, 59193, 59193, 59198,
	59203, 59208, 59213, 59218, 59223, 59227, 59231, 59235, 59239, 59239, 59244, 59249, 59254, 59259, 59264, 59269,
	59274, 59279, 59284, 59289, 59294, 59299, 59304, 59309, 59314, 59319, 59324, 59329, 59334, 59339, 59344, 59349,
	59355, 59360, 59365, 59370, 59375, 59380, 59385, 59390, 59395, 59400, 59405, 59410, 59415, 59420, 59425, 59430,
	59435, 59441, 59447, 59452, 59457, 59462, 59467, 59473, 59479, 59485, 59491, 59497, 59503, 59508, 59514, 59520,
	59525, 59531, 59531, 59534, 59537, 59540, 59543, 59546, 59549, 59552, 59555, 59559, 59563, 59567, 59571, 59574,
	59577, 59580, 59583, 59586, 59589, 59592, 59595, 59598, 59601, 59604, 59607, 59610, 59613, 59616, 59619, 59622,
	59625, 59628, 59631, 59634, 59637, 59640, 59643, 59646, 59649, 59652, 59655, 59658, 59661, 59664, 59667, 59670,
	59673, 59676, 59679, 59682, 59685, 59688, 59691, 59695, 59699, 59703, 59707, 59711, 59715, 59720, 59725, 59730,
	59735, 59739, 59743, 59747, 59751, 59755, 59759, 59762, 59765, 59765, 59767, 59770, 59773, 59776, 59779, 59782,
	59785, 59788, 59791, 59794, 59797, 59800, 59800, 59804, 59808, 59812, 59816, 59820, 59824, 59828, 59832, 59836,
	59840, 59844, 59848, 59852, 59856, 59860, 59864, 59868, 59872, 59876, 59880, 59885, 59889, 59893, 59897, 59900,
	59903, 59905, 59907, 59910, 59913, 59916, 59920, 59924, 59928, 59932, 59936, 59940, 59944, 59948, 59952, 59956,
	59960, 59964, 59968, 59972, 59976, 59980, 59984, 59988, 59992, 59996, 60000, 60004, 60008, 60012, 60016, 60020,
	60024, 60028, 60032, 60036, 60040, 60044, 60048, 60052, 60056, 60060, 60064, 60068, 60072, 60076, 60080, 60084,
	60088, 60092, 60096, 60100, 60105, 60109, 60113, 60116, 60119, 60122, 60125, 60128, 60131, 60134, 60137, 60140,
	60143, 60146, 60149, 60152, 60155, 60158, 60161, 60164, 60167, 60170, 60173, 60176, 60179, 60182, 60186, 60190,
	60194, 60198, 60202, 60206, 60210, 60214, 60218, 60222, 60226, 60230, 60232, 60232, 60235, 60240, 60245, 60250,
	60255, 60260, 60265, 60270, 60275, 60280, 60285, 60290, 60295, 60300, 60305, 60310, 60315, 60320, 60325, 60332,
	60337, 60342, 60347, 60352, 60357, 60362, 60365, 60370, 60375, 60378, 60378, 60381, 60384, 60387, 60390, 60393,
	60397, 60400, 60403, 60406, 60410, 60414, 60419, 60422, 60425, 60428, 60431, 60435, 60439, 60442, 60446, 60449,
	60452, 60456, 60459, 60463, 60467, 60470, 60473, 60477, 60480, 60484, 60488, 60491, 60495, 60498, 60502, 60505,
	60508, 60512, 60515, 60519, 60522, 60525, 60528, 60532, 60535, 60538, 60542, 60546, 60549, 60552, 60556, 60560,
	60564, 60568, 60573, 60577, 60582, 60586, 60591, 60595, 60599, 60603, 60607, 60609, 60612, 60615, 60618, 60621,
	60624, 60627, 60630, 60633, 60636, 60639, 60643, 60646, 60650, 60650, 60652, 60655, 60658, 60661, 60664, 60667,
	60670, 60673, 60676, 60679, 60682, 60682, 60686, 60691, 60695, 60699, 60703, 60707, 60711, 60715, 60720, 60725,
	60730, 60735, 60740, 60745, 60750, 60755, 60760, 60765, 60770, 60775, 60780, 60785, 60790, 60795, 60800, 60805,
	60810, 60815, 60820, 60825, 60830, 60835, 60840, 60840, 60843, 60846, 60849, 60852, 60855, 60858, 60861, 60864,
	60867, 60870, 60873, 60876, 60879, 60882, 60885, 60888, 60891, 60894, 60897, 60900, 60903, 60906, 60909, 60912,
	60915, 60918, 60921, 60924, 60927, 60930, 60933, 60936, 60939, 60942, 60945, 60948, 60951, 60954, 60957, 60960,
	60963, 60967, 60971, 60975, 60979, 60983, 60987, 60991, 60995, 60999, 61003, 61007, 61011, 61015, 61019, 61019,
	61023, 61027, 61031, 61036, 61040, 61044, 61048, 61052, 61056, 61060, 61064, 61068, 61073, 61078, 61078, 61081,
	61084, 61087, 61090, 61093, 61096, 61099, 61102, 61105, 61108, 61108, 61111, 61114, 61118, 61122, 61126, 61130,
	61134, 61138, 61142, 61146, 61150, 61154, 61158, 61162, 61166, 61170, 61174, 61178, 61182, 61186, 61191, 61195,
	61199, 61203, 61207, 61211, 61215, 61219, 61223, 61227, 61231, 61236, 61243, 61250, 61255, 61260, 61265, 61270,
	61275, 61280, 61285, 61290, 61295, 61300, 61305, 61310, 61315, 61320, 61325, 61330, 61335, 61340, 61345, 61350,
	61355, 61360, 61365, 61370, 61375, 61380, 61385, 61390, 61395, 61400, 61405, 61410, 61415, 61420, 61425, 61430,
	61435, 61440, 61445, 61450, 61455, 61460, 61465, 61470, 61475, 61480, 61485, 61490, 61495, 61500, 61504, 61508,
	61512, 61516, 61520, 61524, 61528, 61532, 61536, 61540, 61544, 61548, 61552, 61556, 61560, 61565, 61570, 61575,
	61580, 61580, 61584, 61588, 61592, 61597, 61602, 61606, 61610, 61614, 61618, 61622, 61626, 61630, 61634, 61638,
	61642, 61646, 61651, 61656, 61661, 61666, 61671, 61674, 61678, 61681, 61686, 61691, 61696, 61699, 61699, 61702,
	61705, 61708, 61711, 61714, 61717, 61717, 61720, 61723, 61726, 61729, 61732, 61735, 61735, 61738, 61741, 61744,
	61747, 61750, 61753, 61753, 61756, 61759, 61762, 61765, 61768, 61771, 61774, 61774, 61777, 61780, 61783, 61786,
	61789, 61792, 61795, 61795, 61800, 61807, 61812, 61817, 61823, 61828, 61837, 61845, 61853, 61860, 61868, 61876,
	61884, 61889, 61896, 61903, 61908, 61915, 61923, 61931, 61941, 61946, 61954, 61960, 61965, 61973, 61982, 61987,
	61994, 61999, 62007, 62016, 62020, 62025, 62032, 62036, 62044, 62052, 62060, 62068, 62080, 62090, 62098, 62103,
	62107, 62115, 62122, 62129, 62134, 62139, 62144, 62148, 62153, 62158, 62166, 62174, 62182, 62187, 62191, 62195,
	62195, 62199, 62203, 62207, 62211, 62215, 62219, 62223, 62227, 62231, 62235, 62239, 62243, 62247, 62251, 62255,
	62259, 62263, 62267, 62271, 62275, 62279, 62283, 62287, 62291, 62295, 62299, 62303, 62307, 62311, 62315, 62319,
	62323, 62327, 62331, 62335, 62339, 62343, 62347, 62351, 62355, 62359, 62363, 62367, 62371, 62375, 62379, 62383,
	62387, 62391, 62395, 62399, 62403, 62407, 62411, 62415, 62419, 62423, 62427, 62431, 62435, 62439, 62443, 62447,
	62451, 62455, 62459, 62463, 62467, 62471, 62475, 62479, 62483, 62487, 62491, 62495, 62499, 62503, 62507, 62511,
	62515, 62519, 62523, 62527, 62531, 62535, 62539, 62543, 62547, 62551, 62555, 62559, 62563, 62567, 62571, 62575,
	62579, 62583, 62587, 62591, 62595, 62599, 62603, 62607, 62611, 62615, 62619, 62623, 62628, 62633, 62638, 62643,
	62648, 62653, 62658, 62663, 62668, 62673, 62678, 62683, 62688, 62693, 62698, 62703, 62706, 62710, 62714, 62714,
	62718, 62722, 62726, 62730, 62734, 62738, 62742, 62746, 62750, 62754, 62754, 62759, 62766, 62771, 62776, 62781,
	62786, 62793, 62798, 62803, 62808, 62813, 62818, 62823, 62830, 62835, 62840, 62845, 62852, 62857, 62862, 62867,
	62872, 62877, 62877, 62882, 62887, 62890, 62895, 62900, 62905, 62912, 62917, 62922, 62927, 62932, 62939, 62944,
	62951, 62958, 62965, 62970, 62977, 62980, 62985, 62990, 62993, 63000, 63005, 63010, 63017, 63022, 63025, 63032,
	63037, 63042, 63047, 63052, 63057, 63062, 63067, 63072, 63077, 63082, 63087, 63092, 63097, 63102, 63107, 63112,
	63117, 63120, 63125, 63130, 63130, 63135, 63140, 63145, 63150, 63155, 63160, 63165, 63170, 63175, 63180, 63185,
	63190, 63195, 63200, 63205, 63210, 63215, 63220, 63225, 63230, 63235, 63240, 63245, 63250, 63255, 63260, 63265,
	63270, 63275, 63280, 63285, 63290, 63295, 63300, 63305, 63310, 63315, 63320, 63325, 63330, 63335, 63340, 63345,
	63350, 63355, 63360, 63365, 63370, 63375, 63380, 63385, 63390, 63395, 63400, 63405, 63410, 63415, 63420, 63425,
	63430, 63435, 63440, 63445, 63450, 63455, 63460, 63465, 63470, 63475, 63480, 63485, 63490, 63495, 63500, 63505,
	63510, 63515, 63520, 63525, 63530, 63535, 63540, 63545, 63550, 63555, 63560, 63565, 63570, 63575, 63580, 63585,
	63590, 63595, 63600, 63605, 63610, 63615, 63620, 63625, 63630, 63635, 63640, 63645, 63650, 63655, 63660, 63665,
	63670, 63675, 63680, 63685, 63690, 63695, 63700, 63705, 63710, 63715, 63720, 63725, 63730, 63735, 63740, 63745,
	63750, 63755, 63760, 63765, 63770, 63775, 63780, 63785, 63790, 63795, 63800, 63805, 63810, 63815, 63820, 63825,
	63830, 63835, 63840, 63845, 63850, 63855, 63860, 63865, 63870, 63875, 63880, 63885, 63890, 63895, 63900, 63905,
	63910, 63915, 63920, 63925, 63930, 63935, 63940, 63945, 63950, 63955, 63960, 63965, 63970, 63975, 63980, 63985,
	63990, 63995, 64000, 64005, 64010, 64015, 64020, 64025, 64030, 64035, 64040, 64045, 64050, 64055, 64060, 64065,
	64070, 64075, 64080, 64085, 64090, 64095, 64100, 64105, 64110, 64115, 64120, 64125, 64130, 64135, 64140, 64145,
	64150, 64155, 64160, 64165, 64170, 64175, 64180, 64185, 64190, 64195, 64200, 64205, 64210, 64215, 64220, 64225,
	64230, 64235, 64240, 64245, 64250, 64255, 64260, 64265, 64270, 64275, 64280, 64285, 64290, 64295, 64300, 64305,
	64310, 64315, 64320, 64325, 64330, 64335, 64340, 64345, 64350, 64355, 64360, 64365, 64370, 64375, 64380, 64385,
	64390, 64395, 64400, 64405, 64410, 64415, 64420, 64425, 64430, 64435, 64440, 64445, 64450, 64455, 64460, 64465,
	64470, 64475, 64480, 64485, 64490, 64495, 64500, 64505, 64510, 64515, 64520, 64525, 64530, 64535, 64540, 64545,
	64550, 64555, 64560, 64565, 64570, 64575, 64580, 64585, 64590, 64595, 64600, 64605, 64610, 64615, 64620, 64625,
	64630, 64635, 64640, 64645, 64650, 64655, 64660, 64665, 64670, 64675, 64680, 64685, 64690, 64695, 64700, 64705,
	64710, 64715, 64720, 64725, 64730, 64735, 64740, 64745, 64750, 64755, 64760, 64765, 64770, 64775, 64780, 64785,
	64790, 64795, 64800, 64805, 64810, 64815, 64820, 64825, 64830, 64835, 64840, 64845, 64850, 64855, 64860, 64865,
	64870, 64875, 64880, 64885, 64890, 64895, 64900, 64905, 64910, 64915, 64920, 64925, 64930, 64935, 64940, 64945,
	64950, 64955, 64960, 64960, 64965, 64970, 64975, 64980, 64985, 64990, 64995, 65000, 65005, 65010, 65015, 65020,
	65025, 65030, 65035, 65040, 65045, 65050, 65055, 65060, 65065, 65070, 65075, 65080, 65085, 65090, 65095, 65100,
	65105, 65110, 65115, 65120, 65125, 65130, 65135, 65140, 65145, 65150, 65155, 65160, 65165, 65170, 65175, 65180,
	65185, 65190, 65195, 65200, 65205, 65210, 65215, 65220, 65225, 65230, 65235, 65240, 65245, 65250, 65255, 65260,
	65265, 65270, 65275, 65280, 65285, 65290, 65295, 65300, 65305, 65310, 65315, 65320, 65325, 65330, 65335, 65340,
	65345, 65350, 65355, 65360, 65365, 65370, 65375, 65380, 65385, 65390, 65395, 65400, 65405, 65410, 65415, 65420,
	65425, 65430, 65435, 65440, 65445, 65450, 65455, 65460, 65465, 65470, 65475, 65480, 65485, 65490, 65490, 65494,
	65498, 65502, 65506, 65510, 65516, 65520, 65520, 65525, 65530, 65535, 65540, 65545, 65545, 65550, 65556, 65562,
	65566, 65570, 65574, 65578, 65582, 65586, 65591, 65595, 65599, 65604, 65610, 65616, 65624, 65632, 65637, 65642,
	65647, 65652, 65657, 65662, 65667, 65672, 65677, 65677, 65682, 65687, 65693, 65698, 65703, 65703, 65708, 65708,
	65713, 65718, 65718, 65724, 65729, 65729, 65734, 65739, 65744, 65749, 65754, 65759, 65764, 65769, 65774, 65778,
	65784, 65790, 65795, 65800, 65805, 65810, 65815, 65820, 65825, 65830, 65835, 65840, 65845, 65850, 65855, 65860,
	65865, 65870, 65875, 65880, 65885, 65890, 65895, 65900, 65905, 65910, 65915, 65920, 65925, 65930, 65935, 65940,
	65945, 65950, 65955, 65960, 65965, 65970, 65975, 65980, 65985, 65990, 65995, 66000, 66005, 66010, 66015, 66020,
	66025, 66030, 66035, 66040, 66045, 66050, 66055, 66060, 66065, 66070, 66075, 66080, 66085, 66090, 66095, 66100,
	66105, 66110, 66115, 66120, 66125, 66130, 66135, 66140, 66145, 66150, 66155, 66160, 66165, 66170, 66176, 66182,
	66187, 66192, 66197, 66202, 66210, 66218, 66224, 66230, 66236, 66242, 66248, 66254, 66260, 66266, 66272, 66278,
	66287, 66296, 66300, 66304, 66309, 66314, 66319, 66324, 66331, 66338, 66343, 66348, 66354, 66360, 66366, 66369,
	66374, 66379, 66383, 66383, 66388, 66393, 66398, 66403, 66408, 66413, 66418, 66423, 66428, 66433, 66441, 66446,
	66451, 66457, 66463, 66469, 66475, 66480, 66485, 66490, 66495, 66504, 66513, 66523, 66533, 66543, 66553, 66563,
	66573, 66583, 66593, 66603, 66613, 66623, 66633, 66643, 66653, 66663, 66676, 66689, 66702, 66708, 66714, 66720,
	66726, 66736, 66746, 66756, 66767, 66777, 66784, 66791, 66798, 66805, 66813, 66820, 66827, 66834, 66841, 66848,
	66856, 66863, 66870, 66877, 66885, 66892, 66899, 66906, 66913, 66920, 66927, 66934, 66941, 66948, 66955, 66962,
	66969, 66976, 66983, 66990, 66997, 67004, 67011, 67018, 67025, 67032, 67039, 67046, 67053, 67060, 67067, 67074,
	67081, 67088, 67096, 67103, 67110, 67117, 67125, 67132, 67139, 67146, 67153, 67160, 67167, 67174, 67182, 67189,
	67196, 67203, 67210, 67217, 67225, 67232, 67239, 67246, 67253, 67260, 67268, 67275, 67282, 67289, 67296, 67303,
	67311, 67318, 67325, 67332, 67340, 67347, 67354, 67361, 67368, 67375, 67383, 67390, 67398, 67406, 67415, 67422,
	67429, 67436, 67443, 67450, 67458, 67468, 67478, 67488, 67498, 67509, 67519, 67526, 67533, 67540, 67547, 67555,
	67562, 67569, 67576, 67583, 67590, 67598, 67605, 67612, 67619, 67626, 67633, 67641, 67648, 67656, 67663, 67671,
	67678, 67685, 67692, 67699, 67707, 67714, 67721, 67729, 67736, 67743, 67750, 67757, 67764, 67771, 67778, 67786,
	67793, 67802, 67809, 67816, 67823, 67830, 67838, 67845, 67855, 67865, 67875, 67885, 67895, 67902, 67909, 67916,
	67923, 67930, 67937, 67944, 67951, 67958, 67965, 67972, 67979, 67986, 67993, 68000, 68007, 68014, 68021, 68028,
	68035, 68042, 68049, 68056, 68063, 68070, 68077, 68084, 68091, 68098, 68105, 68112, 68119, 68126, 68133, 68140,
	68147, 68154, 68161, 68168, 68175, 68182, 68189, 68196, 68203, 68210, 68217, 68224, 68231, 68238, 68245, 68252,
	68259, 68266, 68273, 68280, 68287, 68294, 68301, 68308, 68315, 68322, 68330, 68337, 68344, 68351, 68358, 68365,
	68375, 68385, 68392, 68399, 68406, 68413, 68420, 68427, 68434, 68441, 68448, 68455, 68462, 68469, 68476, 68483,
	68490, 68497, 68504, 68511, 68518, 68525, 68533, 68540, 68548, 68555, 68563, 68570, 68578, 68585, 68593, 68600,
	68608, 68615, 68623, 68630, 68638, 68645, 68653, 68660, 68668, 68675, 68682, 68689, 68696, 68703, 68710, 68717,
	68724, 68731, 68739, 68746, 68754, 68761, 68769, 68776, 68784, 68791, 68799, 68806, 68814, 68821, 68829, 68836,
	68844, 68851, 68859, 68866, 68874, 68881, 68888, 68895, 68902, 68909, 68916, 68923, 68930, 68937, 68944, 68951,
	68958, 68965, 68972, 68979, 68986, 68993, 69000, 69007, 69014, 69021, 69028, 69035, 69042, 69049, 69056, 69059,
	69062, 69066, 69071, 69076, 69081, 69086, 69091, 69098, 69104, 69110, 69116, 69125, 69129, 69137, 69143, 69149,
	69153, 69162, 69171, 69180, 69189, 69198, 69207, 69216, 69225, 69234, 69243, 69252, 69262, 69271, 69280, 69290,
	69299, 69308, 69317, 69326, 69335, 69344, 69353, 69362, 69371, 69380, 69389, 69398, 69407, 69416, 69425, 69435,
	69444, 69453, 69462, 69471, 69480, 69489, 69498, 69507, 69516, 69526, 69535, 69544, 69554, 69563, 69572, 69581,
	69590, 69599, 69608, 69618, 69627, 69636, 69645, 69654, 69663, 69672, 69681, 69690, 69699, 69708, 69717, 69726,
	69735, 69735, 69744, 69753, 69762, 69771, 69781, 69790, 69799, 69809, 69818, 69828, 69837, 69846, 69855, 69864,
	69874, 69883, 69893, 69902, 69912, 69921, 69931, 69941, 69951, 69960, 69969, 69978, 69987, 69996, 70005, 70014,
	70023, 70032, 70041, 70050, 70059, 70068, 70077, 70086, 70095, 70104, 70113, 70122, 70131, 70140, 70149, 70158,
	70167, 70176, 70185, 70194, 70203, 70212, 70221, 70230, 70230, 70234, 70234, 70244, 70254, 70259, 70264, 70269,
	70274, 70279, 70284, 70289, 70294, 70299, 70302, 70304, 70313, 70318, 70323, 70327, 70331, 70335, 70339, 70343,
	70347, 70351, 70355, 70359, 70363, 70367, 70371, 70375, 70379, 70383, 70387, 70392, 70398, 70405, 70410, 70415,
	70421, 70427, 70435, 70443, 70449, 70449, 70453, 70457, 70462, 70467, 70471, 70475, 70478, 70483, 70488, 70493,
	70498, 70503, 70508, 70512, 70517, 70522, 70529, 70535, 70541, 70547, 70554, 70560, 70566, 70573, 70580, 70588,
	70596, 70604, 70612, 70620, 70628, 70635, 70642, 70649, 70656, 70664, 70672, 70674, 70677, 70684, 70691, 70693,
	70695, 70697, 70700, 70703, 70706, 70709, 70711, 70714, 70717, 70717, 70719, 70721, 70724, 70727, 70730, 70733,
	70736, 70740, 70744, 70749, 70754, 70757, 70759, 70761, 70764, 70768, 70773, 70778, 70781, 70781, 70784, 70787,
	70790, 70793, 70793, 70797, 70802, 70806, 70809, 70813, 70813, 70817, 70821, 70825, 70829, 70833, 70837, 70841,
	70845, 70849, 70853, 70858, 70866, 70874, 70882, 70890, 70898, 70906, 70914, 70922, 70930, 70938, 70946, 70954,
	70959, 70964, 70969, 70974, 70979, 70984, 70990, 70996, 71001, 71006, 71011, 71016, 71021, 71026, 71031, 71036,
	71041, 71046, 71051, 71056, 71061, 71066, 71071, 71076, 71081, 71086, 71091, 71096, 71101, 71106, 71111, 71116,
	71121, 71126, 71131, 71136, 71141, 71146, 71151, 71156, 71161, 71166, 71171, 71176, 71181, 71186, 71191, 71196,
	71201, 71206, 71211, 71216, 71221, 71226, 71231, 71236, 71241, 71246, 71251, 71256, 71261, 71266, 71271, 71276,
	71281, 71286, 71291, 71296, 71301, 71306, 71311, 71316, 71321, 71326, 71331, 71336, 71341, 71346, 71351, 71356,
	71361, 71366, 71371, 71376, 71381, 71386, 71391, 71396, 71401, 71406, 71411, 71416, 71421, 71426, 71431, 71436,
	71441, 71446, 71452, 71458, 71463, 71468, 71473, 71478, 71488, 71498, 71508, 71518, 71528, 71538, 71545, 71552,
	71552, 71558, 71558, 71561, 71564, 71567, 71570, 71573, 71575, 71577, 71580, 71583, 71585, 71588, 71590, 71594,
	71597, 71599, 71602, 71605, 71608, 71611, 71614, 71617, 71620, 71623, 71626, 71629, 71631, 71633, 71638, 71641,
	71646, 71649, 71652, 71657, 71662, 71667, 71672, 71677, 71682, 71687, 71692, 71697, 71702, 71707, 71712, 71717,
	71722, 71727, 71732, 71737, 71742, 71747, 71752, 71757, 71762, 71767, 71772, 71777, 71782, 71786, 71789, 71793,
	71796, 71799, 71802, 71807, 71812, 71817, 71822, 71827, 71832, 71837, 71842, 71847, 71852, 71857, 71862, 71867,
	71872, 71877, 71882, 71887, 71892, 71897, 71902, 71907, 71912, 71917, 71922, 71927, 71932, 71936, 71939, 71943,
	71945, 71949, 71953, 71957, 71961, 71965, 71968, 71972, 71976, 71981, 71986, 71991, 71996, 72001, 72006, 72011,
	72016, 72021, 72028, 72032, 72036, 72040, 72044, 72048, 72052, 72056, 72060, 72064, 72068, 72072, 72076, 72080,
	72084, 72088, 72092, 72096, 72100, 72104, 72108, 72112, 72116, 72120, 72124, 72128, 72132, 72136, 72140, 72144,
	72148, 72152, 72156, 72160, 72164, 72168, 72172, 72176, 72180, 72184, 72188, 72192, 72196, 72200, 72204, 72208,
	72213, 72220, 72223, 72227, 72231, 72237, 72241, 72247, 72253, 72257, 72261, 72265, 72271, 72277, 72283, 72289,
	72295, 72301, 72307, 72311, 72315, 72319, 72325, 72329, 72333, 72337, 72341, 72345, 72349, 72353, 72357, 72361,
	72365, 72365, 72369, 72373, 72377, 72381, 72385, 72389, 72389, 72393, 72397, 72401, 72405, 72409, 72413, 72413,
	72417, 72421, 72425, 72429, 72433, 72437, 72437, 72441, 72445, 72449, 72449, 72452, 72455, 72458, 72460, 72463,
	72466, 72469, 72469, 72473, 72476, 72479, 72482, 72485, 72488, 72491, 72491, 72494, 72497, 72500, 72503, 72505,
	72505, 72510, 72515, 72520, 72525, 72530, 72535, 72540, 72545, 72550, 72555, 72560, 72565, 72565, 72570, 72575,
	72580, 72585, 72590, 72595, 72600, 72605, 72610, 72615, 72620, 72625, 72630, 72635, 72640, 72645, 72650, 72655,
	72660, 72665, 72670, 72675, 72680, 72685, 72690, 72695, 72695, 72700, 72705, 72710, 72715, 72720, 72725, 72730,
	72735, 72740, 72745, 72750, 72755, 72760, 72765, 72770, 72775, 72780, 72785, 72790, 72790, 72795, 72800, 72800,
	72805, 72810, 72815, 72820, 72825, 72830, 72835, 72840, 72845, 72850, 72855, 72860, 72865, 72870, 72875, 72875,
	72879, 72883, 72887, 72891, 72895, 72899, 72903, 72907, 72911, 72915, 72919, 72923, 72927, 72931, 72931, 72936,
	72941, 72946, 72951, 72956, 72961, 72966, 72971, 72978, 72985, 72990, 72995, 73000, 73005, 73010, 73015, 73020,
	73025, 73030, 73035, 73040, 73045, 73050, 73054, 73059, 73064, 73069, 73074, 73078, 73083, 73087, 73091, 73096,
	73100, 73104, 73108, 73113, 73117, 73121, 73126, 73130, 73134, 73139, 73144, 73148, 73152, 73156, 73160, 73164,
	73168, 73172, 73176, 73180, 73185, 73189, 73194, 73198, 73202, 73206, 73210, 73214, 73218, 73222, 73226, 73230,
	73234, 73238, 73243, 73248, 73253, 73258, 73263, 73267, 73272, 73276, 73280, 73286, 73291, 73297, 73302, 73306,
	73310, 73315, 73319, 73323, 73327, 73331, 73335, 73340, 73344, 73348, 73352, 73356, 73360, 73365, 73370, 73375,
	73380, 73385, 73390, 73395, 73400, 73405, 73410, 73415, 73420, 73425, 73430, 73435, 73440, 73445, 73450, 73455,
	73460, 73465, 73470, 73475, 73480, 73485, 73490, 73495, 73500, 73505, 73505, 73509, 73513, 73516, 73516, 73519,
	73522, 73525, 73528, 73531, 73534, 73537, 73540, 73543, 73546, 73549, 73552, 73555, 73558, 73561, 73564, 73567,
	73570, 73574, 73578, 73582, 73586, 73590, 73594, 73598, 73602, 73606, 73610, 73614, 73618, 73622, 73626, 73630,
	73634, 73638, 73642, 73646, 73650, 73654, 73658, 73662, 73666, 73670, 73674, 73678, 73678, 73682, 73686, 73690,
	73694, 73698, 73703, 73708, 73712, 73716, 73721, 73726, 73731, 73735, 73739, 73744, 73749, 73754, 73759, 73764,
	73769, 73775, 73781, 73787, 73793, 73798, 73803, 73808, 73814, 73820, 73826, 73832, 73838, 73843, 73848, 73852,
	73856, 73860, 73864, 73869, 73874, 73878, 73882, 73888, 73892, 73896, 73900, 73904, 73908, 73914, 73918, 73922,
	73927, 73932, 73937, 73942, 73947, 73952, 73957, 73962, 73967, 73972, 73977, 73981, 73987, 73991, 73995, 73998,
	74001, 74004, 74007, 74011, 74015, 74019, 74023, 74026, 74030, 74033, 74036, 74039, 74042, 74045, 74048, 74052,
	74055, 74059, 74062, 74065, 74067, 74067, 74070, 74073, 74076, 74079, 74083, 74086, 74089, 74092, 74095, 74098,
	74101, 74104, 74106, 74106, 74110, 74110, 74114, 74119, 74124, 74128, 74132, 74136, 74140, 74144, 74148, 74152,
	74156, 74160, 74164, 74168, 74172, 74176, 74180, 74184, 74189, 74193, 74197, 74201, 74205, 74209, 74213, 74217,
	74221, 74226, 74230, 74234, 74238, 74242, 74246, 74250, 74255, 74259, 74263, 74267, 74271, 74276, 74280, 74284,
	74288, 74293, 74298, 74304, 74304, 74307, 74310, 74313, 74316, 74319, 74322, 74325, 74328, 74331, 74334, 74337,
	74340, 74343, 74346, 74349, 74352, 74355, 74358, 74361, 74364, 74367, 74370, 74373, 74376, 74379, 74382, 74385,
	74388, 74391, 74391, 74394, 74397, 74400, 74403, 74406, 74409, 74412, 74415, 74418, 74421, 74424, 74427, 74430,
	74433, 74436, 74439, 74442, 74447, 74450, 74453, 74456, 74459, 74462, 74465, 74468, 74471, 74474, 74477, 74480,
	74483, 74486, 74489, 74492, 74495, 74498, 74501, 74504, 74507, 74512, 74515, 74518, 74521, 74524, 74527, 74530,
	74533, 74536, 74539, 74542, 74542, 74546, 74550, 74554, 74558, 74562, 74566, 74570, 74574, 74578, 74582, 74586,
	74590, 74594, 74598, 74602, 74606, 74610, 74614, 74618, 74623, 74628, 74633, 74638, 74643, 74648, 74653, 74658,
	74663, 74663, 74667, 74671, 74675, 74679, 74683, 74687, 74691, 74695, 74699, 74703, 74707, 74711, 74715, 74719,
	74723, 74727, 74731, 74735, 74739, 74743, 74747, 74751, 74755, 74759, 74763, 74767, 74771, 74775, 74779, 74783,
	74787, 74791, 74795, 74799, 74803, 74807, 74807, 74811, 74816, 74821, 74824, 74827, 74830, 74833, 74836, 74839,
	74842, 74845, 74848, 74851, 74854, 74857, 74860, 74863, 74866, 74869, 74872, 74875, 74878, 74881, 74884, 74887,
	74890, 74893, 74896, 74899, 74903, 74903, 74907, 74911, 74915, 74919, 74923, 74927, 74931, 74935, 74939, 74943,
	74947, 74951, 74955, 74959, 74963, 74967, 74971, 74975, 74979, 74983, 74987, 74991, 74995, 74999, 75003, 75007,
	75011, 75015, 75019, 75023, 75027, 75031, 75035, 75039, 75043, 75047, 75051, 75055, 75060, 75065, 75070, 75075,
	75080, 75080, 75083, 75086, 75089, 75092, 75095, 75098, 75101, 75104, 75107, 75110, 75113, 75116, 75119, 75122,
	75125, 75128, 75131, 75134, 75137, 75140, 75143, 75146, 75149, 75152, 75155, 75158, 75161, 75164, 75167, 75170,
	75170, 75173, 75177, 75181, 75185, 75189, 75193, 75197, 75201, 75205, 75209, 75213, 75217, 75221, 75225, 75229,
	75233, 75237, 75241, 75245, 75249, 75253, 75257, 75261, 75265, 75269, 75273, 75277, 75281, 75285, 75289, 75293,
	75297, 75301, 75305, 75309, 75313, 75317, 75317, 75321, 75327, 75331, 75335, 75339, 75345, 75349, 75353, 75357,
	75361, 75365, 75369, 75373, 75377, 75377, 75382, 75387, 75392, 75397, 75402, 75407, 75412, 75417, 75422, 75427,
	75432, 75437, 75441, 75445, 75449, 75453, 75457, 75461, 75465, 75469, 75473, 75477, 75481, 75485, 75489, 75493,
	75497, 75501, 75505, 75509, 75513, 75517, 75521, 75525, 75529, 75533, 75537, 75541, 75545, 75549, 75554, 75559,
	75564, 75569, 75574, 75579, 75584, 75589, 75594, 75599, 75604, 75609, 75613, 75617, 75621, 75625, 75629, 75633,
	75637, 75641, 75645, 75649, 75653, 75657, 75661, 75665, 75669, 75673, 75677, 75681, 75685, 75689, 75693, 75697,
	75701, 75705, 75709, 75713, 75717, 75721, 75724, 75727, 75730, 75733, 75736, 75739, 75742, 75745, 75748, 75751,
	75754, 75757, 75760, 75763, 75766, 75769, 75772, 75775, 75778, 75783, 75786, 75789, 75792, 75795, 75798, 75801,
	75804, 75807, 75810, 75813, 75816, 75819, 75822, 75825, 75828, 75831, 75834, 75837, 75840, 75843, 75846, 75849,
	75852, 75855, 75858, 75861, 75864, 75867, 75870, 75873, 75876, 75879, 75882, 75885, 75888, 75891, 75894, 75897,
	75900, 75903, 75906, 75909, 75912, 75915, 75918, 75921, 75924, 75927, 75930, 75933, 75936, 75939, 75942, 75945,
	75948, 75951, 75954, 75957, 75957, 75960, 75963, 75966, 75969, 75972, 75975, 75978, 75981, 75984, 75987, 75987,
	75991, 75995, 75999, 76003, 76007, 76011, 76015, 76019, 76023, 76027, 76031, 76035, 76039, 76043, 76047, 76051,
	76055, 76059, 76063, 76067, 76071, 76075, 76079, 76083, 76087, 76091, 76095, 76099, 76103, 76107, 76111, 76115,
	76119, 76123, 76127, 76131, 76131, 76135, 76139, 76143, 76147, 76151, 76155, 76159, 76163, 76167, 76171, 76175,
	76179, 76183, 76187, 76191, 76195, 76199, 76203, 76207, 76211, 76215, 76219, 76223, 76227, 76231, 76235, 76239,
	76243, 76247, 76251, 76255, 76259, 76263, 76267, 76271, 76275, 76275, 76278, 76281, 76284, 76287, 76290, 76293,
	76296, 76299, 76302, 76305, 76308, 76311, 76314, 76317, 76320, 76323, 76326, 76329, 76332, 76335, 76338, 76341,
	76344, 76347, 76350, 76353, 76356, 76359, 76362, 76365, 76368, 76371, 76374, 76377, 76380, 76383, 76386, 76389,
	76392, 76395, 76395, 76399, 76403, 76407, 76411, 76415, 76419, 76423, 76427, 76431, 76435, 76439, 76443, 76447,
	76451, 76455, 76459, 76463, 76467, 76471, 76475, 76479, 76483, 76487, 76491, 76495, 76499, 76503, 76507, 76511,
	76515, 76519, 76523, 76527, 76531, 76535, 76539, 76543, 76547, 76551, 76555, 76559, 76563, 76567, 76571, 76575,
	76579, 76583, 76587, 76591, 76595, 76599, 76603, 76603, 76607, 76611, 76615, 76619, 76623, 76627, 76631, 76635,
	76639, 76643, 76647, 76651, 76651, 76655, 76659, 76663, 76667, 76671, 76675, 76679, 76683, 76687, 76691, 76695,
	76699, 76703, 76707, 76711, 76711, 76715, 76719, 76723, 76727, 76731, 76735, 76739, 76739, 76743, 76747, 76747,
	76751, 76755, 76759, 76763, 76767, 76771, 76775, 76779, 76783, 76787, 76791, 76791, 76795, 76799, 76803, 76807,
	76811, 76815, 76819, 76823, 76827, 76831, 76835, 76839, 76843, 76847, 76851, 76851, 76855, 76859, 76863, 76867,
	76871, 76875, 76879, 76879, 76883, 76887, 76887, 76891, 76895, 76899, 76903, 76907, 76911, 76915, 76919, 76923,
	76927, 76931, 76935, 76939, 76943, 76947, 76951, 76955, 76959, 76963, 76967, 76971, 76975, 76979, 76983, 76987,
	76991, 76995, 76999, 77003, 77007, 77011, 77015, 77019, 77023, 77027, 77031, 77035, 77039, 77043, 77047, 77051,
	77055, 77059, 77063, 77067, 77071, 77075, 77079, 77083, 77087, 77091, 77095, 77099, 77103, 77107, 77111, 77115,
	77119, 77123, 77127, 77131, 77135, 77139, 77143, 77147, 77151, 77155, 77159, 77163, 77167, 77171, 77177, 77181,
	77185, 77189, 77193, 77197, 77201, 77205, 77209, 77213, 77217, 77221, 77225, 77229, 77233, 77237, 77241, 77245,
	77249, 77253, 77257, 77261, 77265, 77269, 77273, 77277, 77281, 77285, 77289, 77293, 77297, 77301, 77305, 77309,
	77313, 77317, 77321, 77325, 77329, 77333, 77337, 77341, 77345, 77349, 77353, 77357, 77361, 77365, 77369, 77373,
	77377, 77381, 77385, 77389, 77393, 77397, 77401, 77405, 77409, 77413, 77417, 77421, 77425, 77429, 77433, 77437,
	77441, 77445, 77449, 77453, 77457, 77461, 77465, 77469, 77473, 77477, 77481, 77485, 77489, 77493, 77497, 77501,
	77505, 77509, 77513, 77517, 77521, 77525, 77529, 77535, 77541, 77547, 77553, 77559, 77565, 77571, 77577, 77583,
	77589, 77595, 77601, 77607, 77613, 77619, 77625, 77631, 77637, 77643, 77647, 77651, 77655, 77659, 77663, 77667,
	77671, 77675, 77679, 77683, 77687, 77691, 77695, 77699, 77703, 77707, 77711, 77715, 77719, 77723, 77727, 77731,
	77735, 77739, 77743, 77747, 77751, 77755, 77759, 77763, 77767, 77771, 77775, 77779, 77783, 77787, 77791, 77795,
	77799, 77803, 77807, 77811, 77815, 77819, 77823, 77827, 77831, 77835, 77839, 77843, 77847, 77851, 77855, 77859,
	77863, 77867, 77871, 77875, 77879, 77883, 77887, 77891, 77895, 77899, 77903, 77907, 77911, 77915, 77919, 77923,
	77927, 77931, 77935, 77939, 77943, 77947, 77951, 77955, 77959, 77963, 77967, 77971, 77975, 77979, 77983, 77987,
	77991, 77995, 77999, 78003, 78007, 78011, 78015, 78019, 78023, 78027, 78031, 78035, 78039, 78043, 78047, 78051,
	78055, 78059, 78063, 78067, 78071, 78075, 78079, 78083, 78087, 78091, 78095, 78099, 78103, 78107, 78111, 78115,
	78119, 78123, 78127, 78131, 78135, 78139, 78143, 78147, 78151, 78155, 78159, 78163, 78167, 78171, 78171, 78176,
	78181, 78186, 78191, 78196, 78201, 78206, 78211, 78216, 78223, 78230, 78237, 78244, 78249, 78254, 78259, 78264,
	78269, 78274, 78279, 78284, 78289, 78289, 78293, 78297, 78301, 78305, 78309, 78313, 78317, 78321, 78321, 78326,
	78331, 78337, 78341, 78346, 78352, 78352, 78357, 78365, 78372, 78377, 78383, 78389, 78397, 78402, 78409, 78414,
	78419, 78424, 78430, 78437, 78443, 78448, 78454, 78463, 78468, 78473, 78479, 78486, 78495, 78499, 78506, 78511,
	78518, 78524, 78529, 78534, 78538, 78546, 78557, 78563, 78569, 78574, 78581, 78586, 78594, 78599, 78606, 78613,
	78613, 78618, 78624, 78631, 78635, 78639, 78643, 78647, 78654, 78660, 78660, 78663, 78666, 78669, 78672, 78675,
	78678, 78678, 78681, 78681, 78684, 78687, 78690, 78693, 78696, 78699, 78702, 78705, 78708, 78711, 78714, 78717,
	78720, 78723, 78726, 78729, 78732, 78735, 78738, 78741, 78744, 78747, 78750, 78753, 78756, 78759, 78762, 78765,
	78768, 78771, 78774, 78777, 78780, 78783, 78786, 78789, 78792, 78795, 78798, 78801, 78804, 78807, 78810, 78813,
	78813, 78816, 78819, 78819, 78822, 78822, 78825, 78829, 78833, 78837, 78841, 78845, 78849, 78853, 78857, 78861,
	78865, 78869, 78873, 78877, 78881, 78885, 78889, 78893, 78897, 78901, 78905, 78909, 78913, 78913, 78917, 78921,
	78925, 78929, 78933, 78937, 78942, 78947, 78952, 78955, 78958, 78961, 78964, 78967, 78970, 78973, 78976, 78979,
	78982, 78985, 78988, 78991, 78995, 78998, 79001, 79004, 79007, 79010, 79013, 79016, 79019, 79022, 79027, 79032,
	79035, 79038, 79041, 79044, 79047, 79050, 79053, 79057, 79060, 79064, 79067, 79070, 79073, 79077, 79080, 79083,
	79086, 79089, 79092, 79096, 79099, 79103, 79106, 79110, 79113, 79117, 79120, 79124, 79127, 79130, 79133, 79136,
	79139, 79142, 79145, 79149, 79152, 79155, 79155, 79158, 79161, 79164, 79167, 79171, 79174, 79177, 79180, 79184,
	79184, 79187, 79190, 79193, 79198, 79201, 79204, 79207, 79210, 79213, 79216, 79219, 79222, 79225, 79228, 79231,
	79234, 79237, 79240, 79243, 79243, 79246, 79249, 79249, 79252, 79255, 79258, 79261, 79265, 79268, 79271, 79274,
	79277, 79280, 79283, 79286, 79289, 79292, 79295, 79298, 79301, 79304, 79307, 79310, 79313, 79316, 79319, 79322,
	79325, 79328, 79331, 79334, 79337, 79340, 79344, 79347, 79350, 79350, 79353, 79356, 79359, 79362, 79365, 79368,
	79371, 79374, 79377, 79380, 79383, 79386, 79389, 79392, 79395, 79398, 79401, 79404, 79407, 79410, 79413, 79416,
	79419, 79422, 79425, 79428, 79431, 79431, 79434, 79434, 79438, 79442, 79446, 79450, 79454, 79458, 79462, 79468,
	79472, 79476, 79480, 79486, 79490, 79496, 79500, 79506, 79510, 79514, 79518, 79522, 79528, 79532, 79536, 79540,
	79544, 79550, 79554, 79560, 79564, 79568, 79572, 79578, 79582, 79586, 79590, 79594, 79598, 79602, 79606, 79610,
	79614, 79618, 79622, 79626, 79630, 79634, 79638, 79642, 79647, 79651, 79655, 79659, 79663, 79667, 79671, 79675,
	79675, 79680, 79685, 79689, 79693, 79697, 79701, 79705, 79709, 79713, 79717, 79721, 79725, 79729, 79733, 79737,
	79741, 79745, 79749, 79753, 79757, 79757, 79762, 79767, 79772, 79777, 79782, 79787, 79792, 79797, 79802, 79807,
	79812, 79817, 79822, 79827, 79832, 79837, 79842, 79847, 79852, 79857, 79862, 79867, 79872, 79877, 79882, 79887,
	79892, 79898, 79904, 79910, 79916, 79922, 79928, 79934, 79940, 79946, 79951, 79956, 79961, 79966, 79971, 79976,
	79981, 79986, 79991, 79996, 79999, 80003, 80007, 80012, 80012, 80016, 80020, 80020, 80024, 80029, 80032, 80035,
	80038, 80041, 80044, 80047, 80047, 80050, 80053, 80056, 80056, 80059, 80062, 80065, 80068, 80071, 80074, 80077,
	80080, 80083, 80086, 80089, 80092, 80095, 80098, 80101, 80104, 80107, 80110, 80113, 80116, 80119, 80122, 80125,
	80128, 80131, 80134, 80137, 80140, 80143, 80143, 80147, 80150, 80154, 80154, 80156, 80159, 80162, 80165, 80168,
	80171, 80174, 80178, 80182, 80186, 80186, 80189, 80193, 80196, 80200, 80203, 80206, 80209, 80213, 80216, 80216,
	80221, 80226, 80231, 80236, 80241, 80246, 80251, 80256, 80261, 80266, 80271, 80276, 80281, 80286, 80291, 80296,
	80301, 80306, 80311, 80316, 80321, 80326, 80331, 80336, 80341, 80346, 80351, 80356, 80361, 80366, 80371, 80376,
	80381, 80386, 80391, 80396, 80401, 80406, 80413, 80418, 80423, 80428, 80435, 80440, 80445, 80450, 80455, 80462,
	80467, 80472, 80477, 80482, 80487, 80492, 80497, 80502, 80507, 80512, 80517, 80522, 80527, 80532, 80537, 80542,
	80542, 80545, 80548, 80551, 80554, 80557, 80560, 80563, 80566, 80569, 80572, 80575, 80578, 80581, 80584, 80587,
	80590, 80593, 80596, 80599, 80602, 80605, 80608, 80611, 80614, 80617, 80620, 80623, 80626, 80629, 80632, 80635,
	80638, 80641, 80644, 80647, 80650, 80653, 80657, 80661, 80661, 80664, 80667, 80670, 80673, 80677, 80680, 80683,
	80689, 80694, 80697, 80701, 80705, 80705, 80708, 80711, 80714, 80717, 80720, 80723, 80726, 80729, 80732, 80735,
	80738, 80741, 80744, 80747, 80750, 80753, 80756, 80759, 80762, 80765, 80768, 80771, 80774, 80777, 80780, 80783,
	80786, 80789, 80792, 80795, 80798, 80801, 80804, 80807, 80810, 80813, 80816, 80819, 80822, 80825, 80828, 80831,
	80834, 80837, 80840, 80843, 80846, 80849, 80852, 80855, 80858, 80861, 80864, 80867, 80867, 80870, 80877, 80884,
	80891, 80898, 80905, 80912, 80916, 80920, 80924, 80928, 80932, 80936, 80940, 80944, 80948, 80952, 80956, 80960,
	80964, 80968, 80972, 80976, 80980, 80984, 80988, 80992, 80996, 81000, 81000, 81004, 81008, 81012, 81016, 81020,
	81024, 81029, 81034, 81038, 81042, 81046, 81050, 81054, 81062, 81066, 81070, 81074, 81078, 81082, 81086, 81092,
	81096, 81100, 81104, 81108, 81112, 81116, 81116, 81120, 81124, 81128, 81132, 81136, 81140, 81145, 81150, 81154,
	81158, 81162, 81166, 81170, 81178, 81182, 81186, 81190, 81194, 81198, 81204, 81208, 81212, 81216, 81220, 81224,
	81228, 81228, 81232, 81237, 81243, 81249, 81249, 81253, 81257, 81261, 81265, 81269, 81273, 81278, 81278, 81283,
	81288, 81293, 81298, 81303, 81308, 81313, 81318, 81323, 81328, 81333, 81338, 81343, 81348, 81353, 81358, 81363,
	81368, 81373, 81378, 81383, 81388, 81393, 81398, 81403, 81408, 81413, 81418, 81423, 81428, 81433, 81438, 81443,
	81448, 81453, 81458, 81463, 81468, 81473, 81478, 81483, 81488, 81493, 81498, 81503, 81508, 81513, 81518, 81523,
	81528, 81533, 81538, 81543, 81548, 81553, 81558, 81563, 81568, 81573, 81578, 81583, 81588, 81593, 81598, 81603,
	81608, 81613, 81618, 81623, 81628, 81633, 81638, 81643, 81643, 81648, 81653, 81658, 81663, 81668, 81673, 81678,
	81683, 81688, 81693, 81699, 81704, 81709, 81714, 81719, 81724, 81729, 81734, 81739, 81744, 81749, 81754, 81759,
	81764, 81769, 81774, 81779, 81784, 81789, 81795, 81801, 81806, 81811, 81816, 81821, 81827, 81832, 81837, 81842,
	81847, 81852, 81857, 81862, 81867, 81873, 81879, 81884, 81889, 81894, 81902, 81907, 81907, 81912, 81917, 81922,
	81927, 81932, 81937, 81942, 81947, 81952, 81957, 81963, 81968, 81973, 81978, 81983, 81988, 81993, 81998, 82003,
	82008, 82013, 82018, 82023, 82028, 82033, 82038, 82043, 82048, 82053, 82059, 82065, 82070, 82075, 82080, 82085,
	82091, 82096, 82101, 82106, 82111, 82116, 82121, 82126, 82131, 82137, 82143, 82148, 82153, 82158, 82166, 82171,
	82171, 82175, 82179, 82183, 82187, 82192, 82197, 82201, 82205, 82209, 82213, 82217, 82221, 82225, 82229, 82233,
	82237, 82241, 82245, 82249, 82253, 82257, 82261, 82265, 82269, 82273, 82277, 82281, 82285, 82289, 82294, 82298,
	82303, 82307, 82311, 82315, 82319, 82323, 82327, 82331, 82335, 82339, 82344, 82348, 82352, 82356, 82360, 82360,
	82364, 82368, 82372, 82376, 82380, 82384, 82388, 82392, 82396, 82400, 82400, 82403, 82406, 82409, 82412, 82415,
	82418, 82421, 82424, 82427, 82430, 82433, 82436, 82439, 82442, 82445, 82448, 82451, 82454, 82458, 82462, 82466,
	82470, 82474, 82478, 82482, 82486, 82490, 82494, 82498, 82502, 82506, 82506, 82509, 82512, 82515, 82518, 82521,
	82524, 82527, 82530, 82533, 82536, 82539, 82542, 82545, 82548, 82551, 82554, 82557, 82560, 82563, 82566, 82569,
	82572, 82575, 82578, 82581, 82584, 82587, 82592, 82595, 82598, 82601, 82604, 82607, 82610, 82613, 82616, 82619,
	82622, 82625, 82628, 82631, 82634, 82634, 82638, 82642, 82645, 82645, 82651, 82657, 82657, 82661, 82666, 82670,
	82675, 82679, 82683, 82688, 82692, 82696, 82700, 82704, 82708, 82712, 82716, 82720, 82725, 82733, 82737, 82741,
	82746, 82750, 82754, 82759, 82767, 82775, 82779, 82783, 82788, 82796, 82800, 82804, 82808, 82812, 82816, 82820,
	82824, 82828, 82833, 82838, 82844, 82844, 82847, 82850, 82853, 82856, 82859, 82862, 82865, 82868, 82871, 82874,
	82877, 82880, 82883, 82886, 82889, 82892, 82897, 82900, 82903, 82906, 82909, 82912, 82916, 82921, 82925, 82930,
	82934, 82938, 82942, 82946, 82951, 82955, 82959, 82962, 82965, 82968, 82972, 82977, 82984, 82989, 82995, 83001,
	83001, 83005, 83009, 83015, 83019, 83023, 83028, 83032, 83036, 83040, 83044, 83048, 83052, 83056, 83060, 83064,
	83068, 83072, 83076, 83081, 83086, 83092, 83098, 83102, 83107, 83112, 83117, 83117, 83120, 83124, 83127, 83130,
	83133, 83136, 83139, 83143, 83146, 83149, 83152, 83155, 83158, 83161, 83164, 83167, 83170, 83173, 83176, 83179,
	83182, 83185, 83188, 83191, 83194, 83197, 83200, 83204, 83204, 83207, 83210, 83213, 83216, 83219, 83222, 83225,
	83228, 83231, 83234, 83237, 83240, 83243, 83246, 83249, 83252, 83255, 83258, 83261, 83264, 83267, 83270, 83275,
	83275, 83278, 83281, 83284, 83287, 83290, 83293, 83296, 83299, 83302, 83305, 83308, 83312, 83316, 83320, 83324,
	83327, 83330, 83333, 83336, 83339, 83342, 83345, 83348, 83351, 83354, 83357, 83360, 83363, 83366, 83369, 83372,
	83375, 83378, 83381, 83384, 83387, 83390, 83393, 83396, 83399, 83402, 83405, 83408, 83411, 83414, 83417, 83420,
	83423, 83426, 83429, 83432, 83435, 83438, 83443, 83448, 83453, 83457, 83462, 83466, 83470, 83474, 83478, 83483,
	83488, 83493, 83498, 83502, 83506, 83510, 83514, 83516, 83518, 83521, 83524, 83528, 83531, 83535, 83538, 83538,
	83541, 83544, 83547, 83550, 83553, 83556, 83559, 83562, 83565, 83568, 83571, 83574, 83577, 83580, 83583, 83586,
	83589, 83592, 83596, 83600, 83603, 83606, 83609, 83612, 83615, 83618, 83621, 83624, 83627, 83630, 83635, 83641,
	83647, 83654, 83661, 83666, 83666, 83669, 83672, 83675, 83678, 83681, 83684, 83687, 83690, 83693, 83696, 83699,
	83702, 83705, 83708, 83711, 83714, 83717, 83720, 83723, 83726, 83729, 83732, 83735, 83738, 83741, 83744, 83747,
	83750, 83753, 83756, 83759, 83762, 83765, 83768, 83771, 83774, 83777, 83780, 83783, 83786, 83789, 83792, 83795,
	83798, 83801, 83804, 83807, 83810, 83813, 83817, 83821, 83825, 83829, 83833, 83837, 83841, 83845, 83849, 83852,
	83855, 83858, 83861, 83864, 83867, 83871, 83873, 83876, 83881, 83881, 83885, 83885, 83889, 83893, 83897, 83901,
	83905, 83909, 83913, 83917, 83921, 83925, 83929, 83933, 83937, 83941, 83945, 83949, 83953, 83957, 83961, 83965,
	83969, 83973, 83977, 83981, 83985, 83985, 83989, 83993, 83997, 84001, 84005, 84009, 84013, 84017, 84021, 84025,
	84025, 84028, 84031, 84034, 84037, 84040, 84043, 84046, 84049, 84052, 84055, 84058, 84061, 84064, 84067, 84070,
	84073, 84076, 84079, 84082, 84085, 84088, 84091, 84094, 84097, 84100, 84103, 84106, 84109, 84112, 84115, 84118,
	84121, 84124, 84127, 84130, 84133, 84136, 84139, 84142, 84146, 84150, 84154, 84158, 84162, 84166, 84170, 84174,
	84178, 84182, 84185, 84188, 84190, 84192, 84192, 84195, 84198, 84201, 84204, 84207, 84210, 84213, 84216, 84219,
	84222, 84225, 84227, 84230, 84233, 84236, 84240, 84244, 84247, 84247, 84250, 84253, 84256, 84259, 84262, 84265,
	84268, 84271, 84274, 84277, 84280, 84283, 84286, 84289, 84292, 84295, 84298, 84301, 84304, 84307, 84310, 84313,
	84316, 84319, 84322, 84325, 84328, 84331, 84334, 84337, 84340, 84343, 84346, 84349, 84352, 84355, 84358, 84361,
	84364, 84364, 84367, 84370, 84373, 84376, 84379, 84382, 84385, 84388, 84391, 84395, 84399, 84403, 84407, 84410,
	84413, 84416, 84419, 84422, 84425, 84428, 84431, 84434, 84437, 84440, 84443, 84446, 84449, 84452, 84455, 84458,
	84461, 84464, 84467, 84470, 84473, 84476, 84479, 84482, 84485, 84488, 84491, 84494, 84497, 84500, 84503, 84506,
	84509, 84512, 84515, 84518, 84521, 84525, 84529, 84533, 84537, 84541, 84546, 84551, 84556, 84561, 84565, 84569,
	84573, 84577, 84580, 84583, 84586, 84589, 84591, 84593, 84596, 84599, 84601, 84604, 84607, 84611, 84616, 84619,
	84624, 84628, 84631, 84634, 84637, 84640, 84643, 84646, 84649, 84652, 84655, 84658, 84660, 84663, 84665, 84668,
	84673, 84678, 84678, 84682, 84686, 84690, 84694, 84698, 84702, 84706, 84710, 84714, 84718, 84722, 84726, 84730,
	84734, 84738, 84742, 84746, 84750, 84755, 84760, 84760, 84763, 84766, 84769, 84772, 84775, 84778, 84781, 84784,
	84787, 84790, 84793, 84796, 84799, 84802, 84805, 84808, 84811, 84814, 84814, 84817, 84820, 84823, 84826, 84829,
	84832, 84835, 84838, 84841, 84844, 84847, 84850, 84853, 84856, 84859, 84862, 84865, 84868, 84871, 84874, 84877,
	84880, 84883, 84886, 84889, 84893, 84897, 84901, 84905, 84909, 84913, 84917, 84921, 84924, 84927, 84930, 84933,
	84935, 84938, 84941, 84944, 84948, 84951, 84954, 84954, 84957, 84960, 84963, 84966, 84969, 84972, 84975, 84975,
	84978, 84978, 84981, 84984, 84987, 84990, 84990, 84993, 84996, 84999, 85002, 85005, 85008, 85011, 85014, 85017,
	85020, 85023, 85026, 85029, 85032, 85035, 85035, 85038, 85041, 85044, 85047, 85050, 85053, 85056, 85059, 85062,
	85065, 85068, 85068, 85071, 85074, 85077, 85080, 85083, 85086, 85089, 85092, 85095, 85098, 85101, 85104, 85107,
	85110, 85113, 85116, 85119, 85122, 85125, 85128, 85131, 85134, 85137, 85140, 85143, 85146, 85149, 85152, 85155,
	85158, 85161, 85164, 85167, 85170, 85173, 85176, 85179, 85182, 85185, 85188, 85191, 85194, 85197, 85200, 85203,
	85206, 85209, 85212, 85216, 85220, 85224, 85228, 85232, 85236, 85240, 85244, 85248, 85251, 85254, 85254, 85257,
	85260, 85263, 85266, 85269, 85272, 85275, 85278, 85281, 85284, 85284, 85289, 85292, 85295, 85298, 85298, 85301,
	85304, 85307, 85310, 85313, 85316, 85320, 85324, 85324, 85327, 85330, 85330, 85333, 85336, 85339, 85342, 85345,
	85348, 85351, 85354, 85357, 85360, 85363, 85366, 85369, 85372, 85375, 85378, 85381, 85384, 85387, 85390, 85393,
	85396, 85396, 85399, 85402, 85405, 85408, 85411, 85414, 85417, 85417, 85420, 85423, 85423, 85426, 85429, 85432,
	85435, 85438, 85438, 85441, 85444, 85447, 85451, 85455, 85459, 85463, 85467, 85472, 85477, 85477, 85481, 85485,
	85485, 85489, 85493, 85496, 85496, 85498, 85498, 85502, 85502, 85505, 85509, 85514, 85518, 85522, 85527, 85532,
	85532, 85536, 85540, 85544, 85548, 85552, 85556, 85560, 85560, 85564, 85568, 85572, 85576, 85580, 85580, 85583,
	85586, 85589, 85592, 85595, 85598, 85602, 85606, 85610, 85614, 85617, 85620, 85623, 85626, 85629, 85632, 85635,
	85638, 85641, 85644, 85647, 85650, 85653, 85656, 85659, 85662, 85665, 85668, 85671, 85674, 85677, 85680, 85683,
	85686, 85689, 85692, 85695, 85698, 85701, 85704, 85707, 85710, 85713, 85716, 85719, 85722, 85725, 85728, 85731,
	85734, 85737, 85740, 85743, 85747, 85751, 85755, 85759, 85763, 85768, 85773, 85778, 85783, 85787, 85791, 85795,
	85799, 85802, 85805, 85808, 85811, 85814, 85817, 85821, 85823, 85825, 85827, 85830, 85832, 85835, 85838, 85841,
	85844, 85847, 85850, 85853, 85856, 85859, 85862, 85865, 85868, 85871, 85874, 85874, 85877, 85880, 85884, 85887,
	85890, 85890, 85892, 85895, 85898, 85901, 85904, 85907, 85910, 85914, 85918, 85922, 85926, 85929, 85932, 85935,
	85938, 85941, 85944, 85947, 85950, 85953, 85956, 85959, 85962, 85965, 85968, 85971, 85974, 85977, 85980, 85983,
	85986, 85989, 85992, 85995, 85998, 86001, 86004, 86007, 86010, 86013, 86016, 86019, 86022, 86025, 86028, 86031,
	86034, 86037, 86041, 86045, 86049, 86053, 86057, 86062, 86067, 86072, 86077, 86081, 86086, 86090, 86094, 86099,
	86103, 86106, 86109, 86112, 86115, 86118, 86121, 86123, 86126, 86128, 86128, 86131, 86134, 86137, 86140, 86143,
	86146, 86149, 86152, 86155, 86158, 86158, 86161, 86164, 86167, 86170, 86173, 86176, 86180, 86184, 86188, 86192,
	86195, 86198, 86201, 86204, 86207, 86210, 86213, 86216, 86219, 86222, 86225, 86228, 86231, 86234, 86237, 86240,
	86243, 86246, 86249, 86252, 86255, 86258, 86261, 86264, 86267, 86270, 86273, 86276, 86279, 86282, 86285, 86288,
	86291, 86294, 86297, 86300, 86303, 86307, 86311, 86315, 86319, 86323, 86328, 86333, 86333, 86337, 86341, 86345,
	86349, 86352, 86355, 86358, 86361, 86364, 86367, 86369, 86372, 86375, 86378, 86383, 86388, 86393, 86398, 86408,
	86416, 86424, 86433, 86442, 86447, 86454, 86460, 86466, 86472, 86478, 86485, 86493, 86501, 86508, 86515, 86522,
	86526, 86531, 86536, 86536, 86539, 86542, 86545, 86548, 86551, 86554, 86558, 86562, 86566, 86570, 86573, 86576,
	86579, 86582, 86585, 86588, 86591, 86594, 86597, 86600, 86603, 86606, 86609, 86612, 86615, 86618, 86621, 86624,
	86627, 86630, 86633, 86636, 86639, 86642, 86645, 86648, 86651, 86654, 86657, 86660, 86663, 86666, 86669, 86672,
	86675, 86678, 86681, 86684, 86688, 86692, 86696, 86700, 86704, 86709, 86714, 86719, 86724, 86728, 86732, 86736,
	86740, 86743, 86746, 86749, 86752, 86754, 86757, 86760, 86763, 86763, 86766, 86769, 86772, 86775, 86778, 86781,
	86784, 86787, 86790, 86793, 86793, 86797, 86800, 86805, 86810, 86815, 86820, 86826, 86829, 86835, 86838, 86843,
	86849, 86856, 86856, 86859, 86862, 86865, 86868, 86871, 86874, 86877, 86880, 86883, 86886, 86889, 86892, 86895,
	86898, 86901, 86904, 86907, 86910, 86913, 86916, 86919, 86922, 86925, 86928, 86931, 86934, 86937, 86940, 86943,
	86946, 86949, 86952, 86955, 86958, 86961, 86964, 86967, 86970, 86973, 86976, 86979, 86982, 86985, 86988, 86991,
	86995, 86999, 87003, 87007, 87011, 87015, 87019, 87023, 87027, 87030, 87033, 87037, 87040, 87040, 87043, 87046,
	87049, 87052, 87055, 87058, 87061, 87064, 87067, 87070, 87070, 87073, 87076, 87079, 87082, 87085, 87089, 87092,
	87095, 87098, 87101, 87104, 87107, 87110, 87113, 87116, 87119, 87122, 87125, 87128, 87131, 87134, 87137, 87141,
	87144, 87147, 87150, 87154, 87154, 87159, 87164, 87170, 87174, 87178, 87182, 87186, 87190, 87194, 87198, 87202,
	87206, 87210, 87214, 87217, 87217, 87220, 87223, 87226, 87229, 87232, 87235, 87238, 87241, 87244, 87247, 87250,
	87253, 87257, 87260, 87263, 87266, 87269, 87272, 87275, 87278, 87281, 87284, 87287, 87287, 87290, 87293, 87296,
	87299, 87302, 87305, 87308, 87311, 87314, 87317, 87320, 87323, 87326, 87329, 87332, 87335, 87338, 87341, 87344,
	87347, 87350, 87353, 87356, 87359, 87362, 87365, 87368, 87371, 87374, 87377, 87380, 87383, 87386, 87389, 87392,
	87395, 87398, 87401, 87404, 87407, 87410, 87413, 87416, 87419, 87423, 87427, 87431, 87435, 87439, 87444, 87449,
	87453, 87457, 87461, 87465, 87468, 87471, 87474, 87477, 87480, 87480, 87485, 87490, 87495, 87500, 87505, 87510,
	87515, 87520, 87525, 87530, 87535, 87540, 87545, 87550, 87555, 87560, 87565, 87570, 87575, 87580, 87585, 87590,
	87595, 87600, 87605, 87610, 87615, 87620, 87625, 87630, 87635, 87640, 87645, 87650, 87655, 87660, 87665, 87670,
	87675, 87680, 87685, 87690, 87695, 87700, 87705, 87710, 87715, 87720, 87725, 87730, 87735, 87740, 87745, 87750,
	87755, 87760, 87765, 87770, 87775, 87780, 87785, 87790, 87795, 87800, 87804, 87808, 87812, 87816, 87820, 87824,
	87828, 87832, 87836, 87840, 87844, 87848, 87852, 87856, 87860, 87864, 87868, 87872, 87876, 87876, 87879, 87883,
	87887, 87891, 87895, 87899, 87903, 87907, 87907, 87911, 87911, 87915, 87919, 87923, 87927, 87931, 87935, 87939,
	87943, 87943, 87947, 87951, 87951, 87955, 87959, 87963, 87967, 87971, 87975, 87979, 87983, 87987, 87991, 87995,
	87999, 88003, 88007, 88011, 88015, 88019, 88023, 88027, 88031, 88035, 88039, 88043, 88047, 88052, 88057, 88062,
	88067, 88072, 88077, 88077, 88082, 88087, 88087, 88091, 88095, 88099, 88102, 88107, 88111, 88115, 88119, 88123,
	88127, 88131, 88137, 88137, 88141, 88145, 88149, 88153, 88157, 88161, 88165, 88169, 88173, 88177, 88177, 88180,
	88183, 88186, 88189, 88192, 88195, 88199, 88203, 88203, 88206, 88209, 88212, 88215, 88218, 88221, 88224, 88227,
	88230, 88233, 88236, 88239, 88242, 88245, 88248, 88251, 88254, 88257, 88260, 88263, 88266, 88269, 88272, 88275,
	88278, 88281, 88284, 88287, 88290, 88293, 88296, 88299, 88302, 88305, 88308, 88311, 88314, 88317, 88320, 88324,
	88328, 88332, 88336, 88340, 88345, 88350, 88350, 88354, 88358, 88362, 88366, 88369, 88372, 88375, 88378, 88381,
	88383, 88388, 88388, 88392, 88397, 88402, 88407, 88412, 88417, 88422, 88427, 88432, 88438, 88443, 88447, 88451,
	88455, 88459, 88463, 88467, 88471, 88475, 88479, 88483, 88487, 88491, 88495, 88499, 88503, 88507, 88511, 88515,
	88519, 88523, 88527, 88531, 88535, 88539, 88543, 88547, 88551, 88555, 88559, 88563, 88568, 88572, 88576, 88580,
	88584, 88588, 88592, 88596, 88600, 88604, 88609, 88613, 88617, 88623, 88629, 88633, 88637, 88644, 88651, 88658,
	88665, 88672, 88677, 88682, 88686, 88690, 88695, 88700, 88708, 88716, 88719, 88719, 88722, 88726, 88730, 88734,
	88738, 88742, 88746, 88750, 88754, 88759, 88764, 88768, 88771, 88774, 88777, 88780, 88783, 88786, 88789, 88792,
	88795, 88798, 88801, 88804, 88807, 88810, 88813, 88816, 88819, 88822, 88825, 88828, 88831, 88834, 88837, 88840,
	88843, 88846, 88849, 88852, 88855, 88858, 88862, 88865, 88868, 88871, 88874, 88877, 88880, 88883, 88886, 88889,
	88892, 88895, 88901, 88907, 88913, 88919, 88924, 88929, 88934, 88939, 88944, 88949, 88954, 88959, 88964, 88969,
	88974, 88980, 88983, 88986, 88989, 88991, 88994, 88997, 89001, 89004, 89014, 89023, 89030, 89035, 89040, 89040,
	89044, 89048, 89052, 89056, 89060, 89064, 89068, 89072, 89076, 89080, 89084, 89088, 89091, 89094, 89097, 89100,
	89105, 89110, 89115, 89120, 89125, 89130, 89135, 89140, 89145, 89150, 89155, 89160, 89165, 89170, 89175, 89180,
	89185, 89190, 89195, 89200, 89205, 89210, 89215, 89220, 89225, 89230, 89235, 89240, 89246, 89252, 89258, 89264,
	89270, 89276, 89282, 89288, 89294, 89300, 89305, 89311, 89318, 89324, 89331, 89337, 89342, 89349, 89355, 89362,
	89368, 89377, 89385, 89393, 89400, 89405, 89414, 89422, 89428, 89428, 89431, 89434, 89437, 89440, 89443, 89446,
	89450, 89454, 89458, 89458, 89461, 89464, 89467, 89470, 89473, 89476, 89479, 89482, 89485, 89488, 89491, 89494,
	89497, 89500, 89503, 89506, 89509, 89512, 89515, 89518, 89521, 89524, 89527, 89530, 89533, 89536, 89539, 89542,
	89545, 89548, 89551, 89554, 89557, 89560, 89563, 89566, 89569, 89573, 89577, 89581, 89585, 89589, 89594, 89599,
	89604, 89604, 89608, 89612, 89616, 89620, 89623, 89626, 89629, 89632, 89635, 89637, 89640, 89643, 89648, 89653,
	89653, 89656, 89659, 89662, 89665, 89668, 89671, 89674, 89677, 89680, 89683, 89686, 89689, 89692, 89695, 89698,
	89701, 89704, 89707, 89710, 89713, 89716, 89719, 89722, 89725, 89728, 89731, 89734, 89737, 89741, 89741, 89744,
	89747, 89750, 89753, 89756, 89759, 89762, 89765, 89768, 89771, 89774, 89777, 89780, 89783, 89786, 89789, 89792,
	89795, 89798, 89801, 89804, 89807, 89810, 89813, 89817, 89820, 89823, 89826, 89829, 89832, 89835, 89838, 89838,
	89842, 89846, 89850, 89854, 89858, 89862, 89866, 89870, 89874, 89878, 89882, 89886, 89890, 89894, 89898, 89902,
	89906, 89910, 89914, 89918, 89922, 89926, 89926, 89930, 89934, 89938, 89942, 89946, 89950, 89954, 89958, 89962,
	89966, 89970, 89974, 89977, 89980, 89980, 89984, 89988, 89992, 89996, 90000, 90004, 90008, 90008, 90012, 90016,
	90016, 90020, 90024, 90028, 90032, 90036, 90040, 90044, 90048, 90052, 90056, 90060, 90064, 90068, 90072, 90076,
	90080, 90084, 90088, 90092, 90096, 90100, 90104, 90108, 90112, 90116, 90120, 90124, 90128, 90132, 90136, 90140,
	90144, 90148, 90152, 90156, 90160, 90164, 90168, 90173, 90178, 90183, 90188, 90193, 90199, 90199, 90204, 90204,
	90209, 90214, 90214, 90219, 90223, 90227, 90231, 90235, 90239, 90242, 90245, 90250, 90250, 90254, 90258, 90262,
	90266, 90270, 90274, 90278, 90282, 90286, 90290, 90290, 90294, 90298, 90302, 90306, 90310, 90314, 90314, 90318,
	90322, 90322, 90326, 90330, 90334, 90338, 90342, 90346, 90350, 90354, 90358, 90362, 90366, 90370, 90374, 90378,
	90382, 90386, 90390, 90394, 90398, 90402, 90406, 90410, 90414, 90418, 90422, 90426, 90430, 90434, 90438, 90442,
	90446, 90450, 90455, 90460, 90465, 90470, 90475, 90475, 90480, 90485, 90485, 90490, 90495, 90499, 90503, 90506,
	90509, 90509, 90513, 90517, 90521, 90525, 90529, 90533, 90537, 90541, 90545, 90549, 90549, 90552, 90555, 90558,
	90561, 90564, 90567, 90570, 90573, 90576, 90579, 90582, 90585, 90588, 90591, 90594, 90597, 90600, 90603, 90605,
	90609, 90613, 90617, 90621, 90623, 90627, 90627, 90630, 90630, 90640, 90650, 90654, 90660, 90664, 90670, 90674,
	90680, 90684, 90690, 90696, 90700, 90704, 90708, 90712, 90716, 90720, 90726, 90732, 90736, 90741, 90744, 90747,
	90750, 90753, 90756, 90759, 90762, 90765, 90768, 90771, 90774, 90777, 90780, 90783, 90786, 90790, 90794, 90797,
	90801, 90805, 90809, 90812, 90816, 90819, 90822, 90826, 90830, 90833, 90836, 90836, 90841, 90844, 90849, 90854,
	90860, 90865, 90870, 90876, 90881, 90886, 90889, 90892, 90897, 90903, 90908, 90914, 90919, 90925, 90930, 90935,
	90940, 90949, 90953, 90956, 90961, 90967, 90974, 90979, 90984, 90987, 90990, 90995, 91002, 91005, 91010, 91015,
	91020, 91025, 91030, 91035, 91040, 91045, 91048, 91051, 91054, 91059, 91062, 91067, 91072, 91081, 91087, 91090,
	91093, 91096, 91101, 91104, 91107, 91110, 91115, 91120, 91132, 91139, 91152, 91155, 91158, 91161, 91164, 91167,
	91170, 91173, 91178, 91181, 91184, 91187, 91190, 91195, 91200, 91206, 91209, 91215, 91221, 91226, 91229, 91234,
	91237, 91240, 91243, 91246, 91254, 91260, 91266, 91272, 91278, 91286, 91292, 91298, 91304, 91310, 91316, 91324,
	91330, 91336, 91342, 91350, 91356, 91362, 91370, 91376, 91382, 91390, 91396, 91399, 91402, 91405, 91408, 91411,
	91414, 91417, 91422, 91425, 91428, 91435, 91438, 91441, 91446, 91450, 91454, 91457, 91462, 91465, 91468, 91471,
	91474, 91477, 91480, 91484, 91489, 91492, 91495, 91498, 91503, 91511, 91514, 91523, 91528, 91533, 91538, 91543,
	91548, 91551, 91554, 91557, 91560, 91565, 91571, 91576, 91581, 91586, 91590, 91593, 91596, 91599, 91602, 91607,
	91614, 91623, 91628, 91633, 91639, 91646, 91651, 91657, 91663, 91668, 91674, 91679, 91684, 91691, 91696, 91701,
	91706, 91711, 91714, 91718, 91721, 91730, 91737, 91744, 91752, 91757, 91762, 91769, 91774, 91781, 91786, 91793,
	91798, 91803, 91810, 91815, 91820, 91827, 91832, 91840, 91846, 91851, 91856, 91861, 91868, 91875, 91884, 91889,
	91896, 91903, 91908, 91914, 91923, 91928, 91933, 91938, 91945, 91952, 91957, 91964, 91969, 91974, 91981, 91986,
	91991, 91996, 92001, 92008, 92013, 92018, 92023, 92028, 92033, 92040, 92045, 92048, 92053, 92056, 92064, 92067,
	92076, 92079, 92082, 92085, 92088, 92092, 92097, 92102, 92105, 92108, 92111, 92114, 92119, 92122, 92127, 92132,
	92137, 92140, 92145, 92150, 92153, 92156, 92160, 92163, 92170, 92176, 92181, 92188, 92193, 92196, 92199, 92204,
	92209, 92214, 92218, 92221, 92226, 92229, 92234, 92242, 92247, 92254, 92258, 92261, 92268, 92273, 92279, 92282,
	92285, 92290, 92293, 92296, 92299, 92302, 92305, 92309, 92313, 92316, 92319, 92324, 92329, 92334, 92339, 92344,
	92349, 92354, 92359, 92364, 92367, 92370, 92375, 92380, 92385, 92390, 92395, 92398, 92401, 92405, 92408, 92411,
	92417, 92423, 92426, 92429, 92433, 92437, 92448, 92452, 92455, 92461, 92464, 92467, 92472, 92477, 92482, 92486,
	92489, 92492, 92495, 92498, 92501, 92506, 92511, 92518, 92523, 92528, 92533, 92538, 92543, 92548, 92553, 92558,
	92563, 92569, 92574, 92583, 92588, 92593, 92600, 92607, 92612, 92617, 92622, 92627, 92632, 92637, 92642, 92647,
	92652, 92657, 92664, 92671, 92678, 92683, 92690, 92695, 92700, 92705, 92710, 92715, 92720, 92725, 92730, 92735,
	92740, 92745, 92750, 92755, 92760, 92765, 92770, 92777, 92782, 92787, 92790, 92795, 92798, 92801, 92804, 92807,
	92810, 92815, 92818, 92824, 92827, 92832, 92837, 92840, 92843, 92846, 92856, 92868, 92871, 92874, 92879, 92884,
	92889, 92892, 92895, 92898, 92901, 92904, 92909, 92912, 92924, 92927, 92930, 92935, 92938, 92941, 92945, 92948,
	92951, 92956, 92959, 92962, 92965, 92968, 92973, 92982, 92989, 92996, 93001, 93006, 93013, 93018, 93023, 93028,
	93033, 93038, 93043, 93048, 93055, 93060, 93065, 93072, 93078, 93083, 93090, 93097, 93102, 93107, 93112, 93117,
	93126, 93131, 93136, 93141, 93146, 93151, 93158, 93163, 93168, 93175, 93184, 93192, 93197, 93204, 93209, 93214,
	93219, 93230, 93235, 93242, 93251, 93258, 93263, 93268, 93272, 93275, 93280, 93287, 93291, 93299, 93302, 93305,
	93310, 93313, 93318, 93325, 93328, 93331, 93334, 93337, 93340, 93345, 93348, 93353, 93358, 93363, 93369, 93375,
	93382, 93387, 93392, 93397, 93404, 93409, 93416, 93421, 93428, 93433, 93438, 93445, 93452, 93457, 93461, 93466,
	93471, 93475, 93479, 93482, 93485, 93490, 93495, 93499, 93502, 93505, 93508, 93513, 93521, 93524, 93529, 93533,
	93536, 93539, 93542, 93545, 93548, 93551, 93554, 93557, 93560, 93563, 93568, 93571, 93575, 93578, 93581, 93584,
	93589, 93594, 93599, 93604, 93613, 93618, 93621, 93626, 93633, 93638, 93642, 93645, 93648, 93651, 93655, 93661,
	93666, 93669, 93673, 93676, 93679, 93682, 93687, 93692, 93696, 93699, 93704, 93707, 93710, 93716, 93724, 93727,
	93732, 93737, 93744, 93749, 93757, 93762, 93767, 93772, 93780, 93787, 93796, 93803, 93808, 93811, 93814, 93817,
	93820, 93826, 93832, 93838, 93849, 93855, 93859, 93864, 93869, 93877, 93880, 93886, 93892, 93898, 93904, 93911,
	93917, 93923, 93929, 93935, 93941, 93947, 93954, 93957, 93960, 93963, 93966, 93969, 93972, 93977, 93982, 93987,
	93992, 93997, 94002, 94007, 94012, 94017, 94022, 94025, 94030, 94035, 94040, 94045, 94048, 94051, 94054, 94057,
	94060, 94064, 94067, 94072, 94077, 94082, 94087, 94092, 94097, 94102, 94107, 94112, 94117, 94122, 94127, 94132,
	94137, 94142, 94147, 94152, 94157, 94161, 94164, 94170, 94173, 94176, 94179, 94182, 94187, 94192, 94197, 94202,
	94207, 94212, 94217, 94224, 94227, 94230, 94233, 94236, 94240, 94251, 94262, 94265, 94268, 94271, 94274, 94277,
	94280, 94285, 94290, 94293, 94298, 94303, 94308, 94313, 94318, 94323, 94329, 94334, 94339, 94344, 94349, 94352,
	94355, 94359, 94367, 94370, 94373, 94379, 94382, 94385, 94388, 94392, 94395, 94398, 94404, 94407, 94410, 94413,
	94418, 94421, 94424, 94427, 94430, 94433, 94436, 94439, 94442, 94446, 94451, 94456, 94460, 94463, 94474, 94478,
	94481, 94486, 94491, 94496, 94501, 94506, 94511, 94514, 94517, 94520, 94524, 94527, 94531, 94534, 94537, 94542,
	94547, 94558, 94561, 94564, 94567, 94570, 94573, 94581, 94584, 94588, 94593, 94604, 94612, 94622, 94625, 94628,
	94631, 94635, 94640, 94645, 94654, 94664, 94668, 94672, 94678, 94681, 94684, 94689, 94696, 94701, 94706, 94709,
	94712, 94717, 94722, 94725, 94729, 94732, 94737, 94741, 94744, 94751, 94758, 94763, 94768, 94773, 94778, 94785,
	94792, 94795, 94798, 94801, 94804, 94809, 94814, 94819, 94824, 94829, 94834, 94840, 94845, 94850, 94855, 94860,
	94865, 94870, 94875, 94880, 94885, 94890, 94895, 94900, 94905, 94912, 94917, 94922, 94925, 94930, 94933, 94938,
	94943, 94948, 94953, 94956, 94959, 94962, 94965, 94968, 94973, 94976, 94979, 94983, 94989, 94992, 94995, 94998,
	95001, 95006, 95009, 95012, 95017, 95020, 95023, 95026, 95029, 95034, 95037, 95040, 95044, 95049, 95054, 95059,
	95067, 95070, 95075, 95080, 95085, 95090, 95099, 95104, 95107, 95110, 95113, 95118, 95123, 95128, 95133, 95140,
	95145, 95150, 95155, 95160, 95165, 95170, 95176, 95183, 95188, 95191, 95196, 95199, 95202, 95205, 95210, 95215,
	95221, 95225, 95228, 95234, 95237, 95242, 95246, 95246, 95251, 95256, 95261, 95266, 95271, 95276, 95281, 95286,
	95291, 95296, 95301, 95306, 95311, 95316, 95321, 95326, 95331, 95336, 95341, 95346, 95351, 95356, 95361, 95366,
	95371, 95376, 95381, 95386, 95391, 95396, 95401, 95406, 95411, 95416, 95421, 95426, 95431, 95438, 95443, 95448,
	95453, 95458, 95463, 95468, 95473, 95478, 95483, 95490, 95495, 95500, 95508, 95516, 95521, 95526, 95531, 95538,
	95543, 95548, 95555, 95562, 95569, 95576, 95584, 95592, 95599, 95606, 95614, 95622, 95629, 95636, 95643, 95650,
	95657, 95665, 95671, 95677, 95683, 95689, 95695, 95700, 95705, 95710, 95715, 95722, 95727, 95734, 95738, 95742,
	95747, 95752, 95758, 95764, 95770, 95778, 95786, 95792, 95798, 95805, 95812, 95818, 95824, 95830, 95836, 95841,
	95846, 95853, 95860, 95867, 95874, 95881, 95888, 95888, 95895, 95900, 95905, 95910, 95915, 95915, 95921, 95926,
	95931, 95937, 95942, 95947, 95952, 95959, 95964, 95969, 95974, 95981, 95986, 95991, 95996, 96003, 96008, 96013,
	96018, 96023, 96028, 96034, 96039, 96044, 96049, 96055, 96060, 96065, 96070, 96077, 96084, 96089, 96096, 96103,
	96108, 96113, 96118, 96123, 96128, 96133, 96139, 96144, 96149, 96153, 96158, 96164, 96170, 96177, 96183, 96189,
	96195, 96201, 96207, 96212, 96217, 96223, 96231, 96238, 96243, 96248, 96255, 96262, 96269, 96276, 96281, 96288,
	96293, 96298, 96303, 96310, 96317, 96322, 96327, 96333, 96338, 96345, 96351, 96358, 96363, 96372, 96377, 96382,
	96389, 96394, 96401, 96406, 96411, 96416, 96421, 96426, 96431, 96436, 96446, 96451, 96460, 96465, 96470, 96475,
	96480, 96485, 96490, 96495, 96500, 96505, 96510, 96515, 96520, 96525, 96530, 96535, 96540, 96545, 96550, 96555,
	96562, 96569, 96578, 96589, 96598, 96603, 96608, 96613, 96618, 96623, 96628, 96633, 96638, 96643, 96648, 96653,
	96660, 96667, 96676, 96683, 96690, 96697, 96704, 96711, 96718, 96725, 96730, 96735, 96742, 96749, 96756, 96764,
	96771, 96782, 96791, 96798, 96805, 96810, 96815, 96821, 96826, 96831, 96836, 96845, 96850, 96855, 96862, 96869,
	96875, 96880, 96885, 96890, 96895, 96902, 96907, 96914, 96919, 96926, 96931, 96937, 96942, 96949, 96954, 96958,
	96963, 96968, 96973, 96978, 96985, 96992, 96997, 97002, 97008, 97014, 97018, 97023, 97028, 97035, 97040, 97043,
	97050, 97057, 97057, 97062, 97067, 97072, 97077, 97082, 97087, 97092, 97097, 97102, 97107, 97112, 97117, 97122,
	97127, 97132, 97137, 97142, 97147, 97152, 97157, 97162, 97167, 97172, 97177, 97182, 97187, 97192, 97197, 97202,
	97207, 97212, 97217, 97222, 97227, 97232, 97237, 97242, 97247, 97252, 97257, 97262, 97267, 97272, 97277, 97282,
	97287, 97292, 97297, 97302, 97307, 97312, 97317, 97322, 97327, 97332, 97337, 97342, 97347, 97352, 97357, 97362,
	97367, 97372, 97377, 97382, 97387, 97392, 97397, 97402, 97407, 97412, 97417, 97422, 97427, 97432, 97437, 97442,
	97447, 97452, 97457, 97462, 97467, 97472, 97477, 97482, 97487, 97492, 97497, 97502, 97507, 97512, 97517, 97522,
	97527, 97532, 97537, 97542, 97547, 97552, 97552, 97555, 97558, 97561, 97564, 97567, 97570, 97573, 97576, 97579,
	97582, 97585, 97588, 97591, 97594, 97597, 97600, 97603, 97606, 97609, 97612, 97615, 97618, 97621, 97624, 97627,
	97630, 97633, 97636, 97639, 97642, 97645, 97648, 97651, 97654, 97657, 97660, 97663, 97666, 97669, 97672, 97675,
	97678, 97681, 97684, 97687, 97690, 97693, 97696, 97699, 97702, 97705, 97708, 97711, 97714, 97717, 97720, 97723,
	97726, 97729, 97732, 97735, 97738, 97741, 97744, 97747, 97750, 97753, 97756, 97759, 97762, 97765, 97768, 97771,
	97774, 97777, 97780, 97783, 97786, 97789, 97792, 97795, 97798, 97801, 97804, 97807, 97810, 97813, 97816, 97819,
	97822, 97825, 97828, 97831, 97834, 97837, 97840, 97843, 97846, 97849, 97852, 97855, 97858, 97861, 97864, 97867,
	97870, 97873, 97876, 97879, 97882, 97885, 97888, 97891, 97894, 97897, 97900, 97903, 97906, 97909, 97912, 97915,
	97918, 97921, 97924, 97927, 97930, 97933, 97936, 97939, 97942, 97945, 97948, 97951, 97954, 97957, 97960, 97963,
	97966, 97969, 97972, 97975, 97978, 97981, 97984, 97987, 97990, 97993, 97996, 97999, 98002, 98005, 98008, 98011,
	98014, 98017, 98020, 98023, 98026, 98029, 98032, 98035, 98038, 98041, 98044, 98047, 98050, 98053, 98056, 98059,
	98062, 98065, 98068, 98071, 98074, 98077, 98080, 98083, 98086, 98089, 98092, 98095, 98098, 98101, 98104, 98107,
	98110, 98113, 98116, 98119, 98122, 98125, 98128, 98131, 98134, 98137, 98140, 98143, 98146, 98149, 98152, 98155,
	98158, 98161, 98164, 98167, 98170, 98173, 98176, 98179, 98182, 98185, 98188, 98191, 98194, 98197, 98200, 98203,
	98206, 98209, 98212, 98215, 98218, 98221, 98224, 98227, 98230, 98233, 98236, 98239, 98242, 98245, 98248, 98251,
	98254, 98257, 98260, 98263, 98266, 98269, 98272, 98275, 98278, 98281, 98284, 98287, 98290, 98293, 98296, 98299,
	98302, 98305, 98308, 98311, 98314, 98317, 98320, 98323, 98326, 98329, 98332, 98335, 98338, 98341, 98344, 98347,
	98350, 98353, 98356, 98359, 98362, 98365, 98368, 98371, 98374, 98377, 98380, 98383, 98386, 98389, 98392, 98395,
	98398, 98401, 98404, 98407, 98410, 98413, 98416, 98419, 98422, 98425, 98428, 98431, 98434, 98437, 98440, 98443,
	98446, 98449, 98452, 98455, 98458, 98461, 98464, 98467, 98470, 98473, 98476, 98479, 98482, 98485, 98488, 98491,
	98494, 98497, 98500, 98503, 98506, 98509, 98512, 98515, 98518, 98521, 98524, 98527, 98530, 98533, 98536, 98539,
	98542, 98545, 98548, 98551, 98554, 98557, 98560, 98563, 98566, 98569, 98572, 98575, 98578, 98581, 98584, 98587,
	98590, 98593, 98596, 98599, 98602, 98605, 98608, 98611, 98614, 98617, 98620, 98623, 98626, 98629, 98632, 98635,
	98638, 98641, 98644, 98647, 98650, 98653, 98656, 98659, 98662, 98665, 98668, 98671, 98674, 98677, 98680, 98683,
	98686, 98689, 98692, 98695, 98698, 98701, 98704, 98707, 98710, 98713, 98716, 98719, 98722, 98725, 98728, 98731,
	98734, 98737, 98740, 98743, 98746, 98749, 98752, 98755, 98758, 98761, 98764, 98767, 98770, 98773, 98776, 98779,
	98782, 98785, 98788, 98791, 98794, 98797, 98800, 98803, 98806, 98809, 98812, 98815, 98818, 98821, 98824, 98827,
	98830, 98833, 98836, 98839, 98842, 98845, 98848, 98851, 98854, 98857, 98860, 98863, 98866, 98869, 98872, 98875,
	98878, 98881, 98884, 98887, 98890, 98893, 98896, 98899, 98902, 98905, 98908, 98911, 98914, 98917, 98920, 98923,
	98926, 98929, 98932, 98935, 98938, 98941, 98944, 98947, 98950, 98953, 98956, 98959, 98962, 98965, 98968, 98971,
	98974, 98977, 98980, 98983, 98986, 98989, 98992, 98995, 98998, 99001, 99004, 99007, 99010, 99013, 99016, 99019,
	99022, 99025, 99028, 99031, 99034, 99037, 99040, 99043, 99046, 99049, 99052, 99055, 99058, 99061, 99064, 99067,
	99070, 99073, 99076, 99079, 99082, 99085, 99088, 99091, 99094, 99097, 99100, 99103, 99106, 99109, 99112, 99115,
	99118, 99121, 99124, 99127, 99130, 99133, 99136, 99139, 99142, 99145, 99148, 99151, 99154, 99157, 99160, 99163,
	99166, 99169, 99172, 99175, 99178, 99181, 99184, 99187, 99190, 99193, 99196, 99199, 99202, 99205, 99208, 99211,
	99214, 99217, 99220, 99223, 99226, 99229, 99232, 99235, 99238, 99241, 99244, 99247, 99250, 99253, 99256, 99259,
	99262, 99265, 99268, 99271, 99274, 99277, 99280, 99283, 99286, 99289, 99292, 99295, 99298, 99301, 99304, 99307,
	99310, 99313, 99316, 99319, 99322, 99325, 99328, 99331, 99334, 99337, 99340, 99343, 99346, 99349, 99352, 99355,
	99358, 99361, 99364, 99367, 99370, 99373, 99376, 99379, 99382, 99385, 99388, 99391, 99394, 99397, 99400, 99403,
	99406, 99409, 99412, 99415, 99418, 99421, 99424, 99427, 99430, 99433, 99436, 99439, 99442, 99445, 99448, 99451,
	99454, 99457, 99460, 99463, 99466, 99469, 99472, 99475, 99478, 99481, 99484, 99487, 99490, 99493, 99496, 99499,
	99502, 99505, 99508, 99511, 99514, 99517, 99520, 99523, 99526, 99529, 99532, 99535, 99538, 99541, 99544, 99547,
	99550, 99553, 99556, 99559, 99562, 99565, 99568, 99571, 99574, 99577, 99580, 99583, 99586, 99589, 99592, 99595,
	99598, 99601, 99604, 99607, 99610, 99613, 99616, 99619, 99622, 99625, 99628, 99631, 99634, 99637, 99640, 99643,
	99646, 99649, 99652, 99655, 99658, 99661, 99664, 99667, 99670, 99673, 99676, 99679, 99682, 99685, 99688, 99691,
	99694, 99697, 99700, 99703, 99706, 99709, 99712, 99715, 99718, 99721, 99724, 99727, 99730, 99733, 99736, 99739,
	99742, 99745, 99748, 99751, 99754, 99757, 99760, 99763, 99766, 99769, 99772, 99775, 99778, 99781, 99784, 99787,
	99790, 99793, 99796, 99799, 99802, 99805, 99808, 99811, 99814, 99817, 99820, 99823, 99826, 99829, 99832, 99835,
	99838, 99841, 99844, 99847, 99850, 99853, 99856, 99859, 99862, 99865, 99868, 99871, 99874, 99877, 99880, 99883,
	99886, 99889, 99892, 99895, 99898, 99901, 99904, 99907, 99910, 99913, 99916, 99919, 99922, 99925, 99928, 99931,
	99934, 99937, 99940, 99943, 99946, 99949, 99952, 99955, 99958, 99961, 99964, 99967, 99970, 99973, 99976, 99979,
	99982, 99985, 99988, 99991, 99994, 99997, 100000, 100003, 100006, 100009, 100012, 100015, 100018, 100021, 100024, 100027,
	100030, 100033, 100036, 100039, 100042, 100045, 100048, 100051, 100054, 100057, 100060, 100063, 100066, 100069, 100072, 100075,
	100078, 100081, 100084, 100087, 100090, 100093, 100096, 100099, 100102, 100105, 100108, 100111, 100114, 100117, 100120, 100123,
	100126, 100129, 100132, 100135, 100138, 100141, 100144, 100147, 100150, 100153, 100156, 100159, 100162, 100165, 100168, 100171,
	100174, 100177, 100180, 100183, 100186, 100189, 100192, 100195, 100198, 100201, 100204, 100207, 100210, 100213, 100216, 100219,
	100222, 100225, 100228, 100231, 100234, 100237, 100240, 100243, 100246, 100249, 100252, 100255, 100258, 100261, 100264, 100267,
	100270, 100273, 100276, 100279, 100282, 100285, 100288, 100291, 100294, 100297, 100300, 100303, 100306, 100309, 100312, 100315,
	100318, 100321, 100324, 100327, 100330, 100333, 100336, 100339, 100342, 100345, 100348, 100351, 100354, 100357, 100360, 100363,
	100366, 100369, 100372, 100375, 100378, 100381, 100384, 100387, 100390, 100393, 100396, 100399, 100402, 100405, 100408, 100411,
	100414, 100417, 100420, 100423, 100426, 100429, 100432, 100435, 100438, 100441, 100444, 100447, 100450, 100453, 100456, 100459,
	100462, 100465, 100468, 100471, 100474, 100477, 100480, 100483, 100486, 100489, 100492, 100495, 100498, 100501, 100504, 100507,
	100510, 100513, 100516, 100519, 100522, 100525, 100528, 100531, 100534, 100537, 100540, 100543, 100546, 100549, 100552, 100555,
	100558, 100561, 100564, 100567, 100570, 100573, 100576, 100579, 100582, 100585, 100588, 100591, 100594, 100597, 100600, 100603,
	100606, 100609, 100612, 100615, 100618, 100621, 100624, 100627, 100630, 100633, 100636, 100639, 100642, 100645, 100648, 100651,
	100654, 100657, 100660, 100663, 100666, 100669, 100672, 100675, 100678, 100681, 100684, 100687, 100690, 100693, 100696, 100699,
	100702, 100705, 100708, 100711, 100714, 100717, 100720, 100723, 100726, 100729, 100732, 100735, 100738, 100741, 100744, 100747,
	100750, 100753, 100756, 100759, 100762, 100765, 100765, 100769, 100773, 100779, 100785, 100791, 100797, 100801, 100805, 100809,
	100809, 100812, 100815, 100818, 100821, 100824, 100827, 100830, 100833, 100836, 100839, 100842, 100845, 100848, 100851, 100854,
	100857, 100860, 100863, 100866, 100869, 100872, 100875, 100878, 100881, 100884, 100887, 100890, 100893, 100896, 100899, 100902,
	100905, 100908, 100911, 100914, 100917, 100920, 100923, 100926, 100929, 100932, 100935, 100938, 100941, 100944, 100947, 100950,
	100953, 100956, 100959, 100962, 100965, 100968, 100971, 100974, 100977, 100980, 100983, 100986, 100989, 100992, 100995, 100998,
	101001, 101004, 101007, 101010, 101013, 101016, 101019, 101022, 101025, 101028, 101031, 101034, 101037, 101040, 101043, 101046,
	101049, 101052, 101055, 101058, 101061, 101064, 101067, 101070, 101073, 101076, 101079, 101082, 101085, 101088, 101091, 101094,
	101097, 101100, 101103, 101106, 101109, 101112, 101115, 101118, 101121, 101124, 101127, 101130, 101133, 101136, 101139, 101142,
	101145, 101148, 101151, 101154, 101157, 101160, 101163, 101166, 101169, 101172, 101175, 101178, 101181, 101184, 101187, 101190,
	101193, 101196, 101199, 101202, 101205, 101208, 101211, 101214, 101217, 101220, 101223, 101226, 101229, 101232, 101235, 101238,
	101241, 101244, 101247, 101250, 101253, 101256, 101259, 101262, 101265, 101268, 101271, 101274, 101277, 101280, 101283, 101286,
	101289, 101292, 101295, 101298, 101301, 101304, 101307, 101310, 101313, 101316, 101319, 101322, 101325, 101328, 101331, 101334,
	101337, 101340, 101343, 101346, 101349, 101352, 101355, 101358, 101361, 101364, 101367, 101370, 101373, 101376, 101379, 101382,
	101385, 101388, 101391, 101394, 101397, 101400, 101403, 101406, 101409, 101412, 101415, 101418, 101421, 101424, 101427, 101430,
	101433, 101436, 101439, 101442, 101445, 101448, 101451, 101454, 101457, 101460, 101463, 101466, 101469, 101472, 101475, 101478,
	101481, 101484, 101487, 101490, 101493, 101496, 101499, 101502, 101505, 101508, 101511, 101514, 101517, 101520, 101523, 101526,
	101529, 101532, 101535, 101538, 101541, 101544, 101547, 101550, 101553, 101556, 101559, 101562, 101565, 101568, 101571, 101574,
	101577, 101580, 101583, 101586, 101589, 101592, 101595, 101598, 101601, 101604, 101607, 101610, 101613, 101616, 101619, 101622,
	101625, 101628, 101631, 101634, 101637, 101640, 101643, 101646, 101649, 101652, 101655, 101658, 101661, 101664, 101667, 101670,
	101673, 101676, 101679, 101682, 101685, 101688, 101691, 101694, 101697, 101700, 101703, 101706, 101709, 101712, 101715, 101718,
	101721, 101724, 101727, 101730, 101733, 101736, 101739, 101742, 101745, 101748, 101751, 101754, 101757, 101760, 101763, 101766,
	101769, 101772, 101775, 101778, 101781, 101784, 101787, 101790, 101793, 101796, 101799, 101802, 101805, 101808, 101811, 101814,
	101817, 101820, 101823, 101826, 101829, 101832, 101835, 101838, 101841, 101844, 101847, 101850, 101853, 101856, 101859, 101862,
	101865, 101868, 101871, 101874, 101877, 101880, 101883, 101886, 101889, 101892, 101895, 101898, 101901, 101904, 101907, 101910,
	101913, 101916, 101919, 101922, 101925, 101928, 101931, 101934, 101937, 101940, 101943, 101946, 101949, 101952, 101955, 101958,
	101961, 101964, 101967, 101970, 101973, 101976, 101979, 101982, 101985, 101988, 101991, 101994, 101997, 102000, 102003, 102006,
	102009, 102012, 102015, 102018, 102021, 102024, 102027, 102030, 102033, 102036, 102039, 102042, 102045, 102048, 102051, 102054,
	102057, 102060, 102063, 102066, 102069, 102072, 102075, 102078, 102081, 102084, 102087, 102090, 102093, 102096, 102099, 102102,
	102105, 102108, 102114, 102117, 102120, 102123, 102126, 102129, 102132, 102135, 102138, 102141, 102144, 102147, 102151, 102154,
	102157, 102160, 102163, 102166, 102169, 102172, 102175, 102178, 102181, 102184, 102187, 102190, 102193, 102196, 102199, 102205,
	102211, 102214, 102217, 102220, 102223, 102226, 102229, 102232, 102235, 102238, 102241, 102244, 102247, 102250, 102253, 102256,
	102259, 102262, 102265, 102268, 102271, 102274, 102277, 102280, 102283, 102286, 102289, 102292, 102295, 102298, 102301, 102304,
	102307, 102310, 102313, 102316, 102319, 102322, 102325, 102328, 102331, 102334, 102337, 102340, 102343, 102346, 102349, 102352,
	102355, 102358, 102361, 102364, 102367, 102370, 102373, 102376, 102379, 102382, 102385, 102388, 102391, 102394, 102397, 102400,
	102403, 102406, 102409, 102412, 102415, 102418, 102421, 102424, 102427, 102430, 102433, 102436, 102439, 102442, 102445, 102448,
	102451, 102454, 102457, 102460, 102463, 102466, 102469, 102472, 102475, 102478, 102481, 102484, 102487, 102490, 102493, 102496,
	102499, 102502, 102505, 102508, 102511, 102514, 102517, 102520, 102523, 102526, 102529, 102532, 102535, 102538, 102541, 102544,
	102547, 102550, 102553, 102556, 102559, 102562, 102565, 102568, 102568, 102575, 102582, 102590, 102598, 102605, 102611, 102618,
	102625, 102633, 102642, 102651, 102657, 102664, 102670, 102676, 102682, 102688, 102694, 102700, 102706, 102712, 102718, 102724,
	102730, 102737, 102744, 102750, 102756, 102762, 102768, 102775, 102782, 102790, 102796, 102803, 102809, 102815, 102821, 102827,
	102833, 102840, 102847, 102853, 102859, 102865, 102871, 102877, 102883, 102889, 102895, 102901, 102907, 102913, 102919, 102925,
	102931, 102937, 102943, 102949, 102955, 102961, 102968, 102974, 102980, 102988, 102995, 103001, 103007, 103013, 103019, 103025,
	103031, 103037, 103043, 103049, 103055, 103061, 103067, 103073, 103079, 103085, 103091, 103097, 103103, 103109, 103115, 103121,
	103127, 103134, 103140, 103147, 103154, 103161, 103167, 103173, 103179, 103185, 103191, 103198, 103206, 103213, 103220, 103226,
	103232, 103239, 103246, 103252, 103259, 103266, 103273, 103279, 103285, 103291, 103297, 103303, 103309, 103316, 103323, 103329,
	103335, 103341, 103347, 103353, 103360, 103366, 103372, 103378, 103384, 103390, 103396, 103403, 103409, 103415, 103421, 103427,
	103434, 103441, 103447, 103453, 103459, 103465, 103471, 103477, 103484, 103490, 103496, 103502, 103508, 103514, 103520, 103526,
	103532, 103538, 103546, 103553, 103559, 103565, 103571, 103580, 103586, 103592, 103598, 103605, 103611, 103617, 103623, 103629,
	103635, 103641, 103647, 103653, 103659, 103665, 103671, 103678, 103684, 103691, 103697, 103703, 103710, 103716, 103722, 103728,
	103734, 103740, 103746, 103752, 103758, 103764, 103770, 103776, 103782, 103788, 103794, 103800, 103806, 103812, 103818, 103824,
	103831, 103837, 103843, 103849, 103855, 103861, 103867, 103873, 103879, 103885, 103891, 103897, 103903, 103909, 103916, 103922,
	103928, 103935, 103941, 103947, 103953, 103959, 103965, 103971, 103977, 103983, 103989, 103995, 104002, 104008, 104014, 104020,
	104026, 104032, 104039, 104046, 104052, 104058, 104064, 104070, 104076, 104082, 104088, 104094, 104100, 104106, 104112, 104118,
	104124, 104130, 104136, 104142, 104148, 104154, 104160, 104166, 104172, 104178, 104184, 104190, 104196, 104202, 104208, 104214,
	104220, 104226, 104232, 104238, 104244, 104250, 104256, 104262, 104269, 104275, 104281, 104287, 104293, 104299, 104305, 104311,
	104317, 104323, 104329, 104335, 104341, 104347, 104353, 104359, 104365, 104371, 104377, 104383, 104389, 104395, 104401, 104407,
	104413, 104419, 104425, 104431, 104437, 104443, 104449, 104455, 104461, 104467, 104473, 104479, 104485, 104491, 104497, 104503,
	104509, 104515, 104521, 104527, 104533, 104539, 104545, 104551, 104557, 104563, 104569, 104575, 104581, 104587, 104593, 104599,
	104605, 104611, 104617, 104624, 104630, 104636, 104642, 104648, 104654, 104660, 104666, 104672, 104678, 104684, 104690, 104696,
	104702, 104708, 104714, 104720, 104726, 104732, 104738, 104744, 104750, 104757, 104763, 104769, 104776, 104782, 104788, 104794,
	104800, 104806, 104812, 104818, 104824, 104830, 104836, 104842, 104848, 104854, 104860, 104866, 104872, 104878, 104884, 104890,
	104896, 104902, 104908, 104914, 104920, 104926, 104932, 104938, 104944, 104950, 104956, 104962, 104968, 104974, 104980, 104986,
	104992, 104998, 105004, 105010, 105016, 105022, 105028, 105034, 105041, 105047, 105053, 105060, 105067, 105073, 105079, 105085,
	105091, 105097, 105103, 105109, 105115, 105121, 105127, 105133, 105139, 105145, 105151, 105157, 105163, 105169, 105175, 105181,
	105187, 105193, 105199, 105205, 105211, 105217, 105224, 105230, 105236, 105242, 105248, 105254, 105260, 105266, 105272, 105278,
	105284, 105290, 105296, 105302, 105308, 105314, 105320, 105326, 105332, 105339, 105345, 105351, 105357, 105363, 105369, 105375,
	105381, 105388, 105394, 105400, 105406, 105412, 105418, 105424, 105430, 105436, 105443, 105450, 105456, 105462, 105468, 105474,
	105480, 105486, 105492, 105499, 105505, 105511, 105519, 105525, 105531, 105537, 105543, 105550, 105557, 105563, 105569, 105575,
	105581, 105588, 105594, 105600, 105606, 105612, 105618, 105624, 105630, 105636, 105642, 105648, 105654, 105660, 105667, 105673,
	105679, 105685, 105691, 105697, 105703, 105709, 105715, 105721, 105727, 105733, 105739, 105745, 105751, 105757, 105763, 105769,
	105775, 105781, 105787, 105793, 105799, 105805, 105811, 105817, 105823, 105829, 105835, 105841, 105847, 105853, 105859, 105865,
	105871, 105877, 105883, 105889, 105895, 105901, 105907, 105913, 105919, 105925, 105931, 105937, 105943, 105949, 105955, 105961,
	105967, 105973, 105979, 105985, 105991, 105997, 106003, 106009, 106015, 106021, 106027, 106033, 106039, 106045, 106051, 106057,
	106063, 106069, 106069, 106072, 106075, 106078, 106081, 106084, 106087, 106090, 106093, 106096, 106099, 106102, 106105, 106108,
	106111, 106114, 106117, 106120, 106123, 106126, 106129, 106132, 106135, 106138, 106141, 106144, 106147, 106150, 106153, 106156,
	106159, 106162, 106162, 106165, 106168, 106171, 106174, 106177, 106180, 106183, 106186, 106189, 106192, 106192, 106194, 106197,
	106200, 106203, 106206, 106209, 106212, 106215, 106218, 106221, 106224, 106227, 106230, 106233, 106236, 106239, 106242, 106245,
	106248, 106251, 106254, 106257, 106260, 106263, 106266, 106269, 106272, 106275, 106278, 106281, 106284, 106287, 106290, 106293,
	106297, 106301, 106305, 106309, 106312, 106315, 106318, 106321, 106324, 106327, 106330, 106333, 106336, 106339, 106342, 106345,
	106348, 106351, 106354, 106357, 106360, 106363, 106366, 106369, 106372, 106375, 106378, 106381, 106384, 106387, 106390, 106393,
	106396, 106399, 106402, 106405, 106408, 106411, 106414, 106417, 106420, 106423, 106426, 106429, 106432, 106435, 106438, 106438,
	106441, 106444, 106447, 106450, 106453, 106456, 106459, 106462, 106465, 106468, 106468, 106472, 106476, 106480, 106484, 106488,
	106492, 106496, 106500, 106504, 106508, 106512, 106516, 106520, 106524, 106528, 106532, 106536, 106540, 106544, 106548, 106552,
	106556, 106560, 106564, 106568, 106572, 106576, 106580, 106584, 106588, 106588, 106593, 106598, 106603, 106610, 106617, 106621,
	106621, 106625, 106629, 106633, 106637, 106641, 106645, 106649, 106653, 106657, 106661, 106665, 106669, 106673, 106677, 106681,
	106685, 106689, 106693, 106697, 106701, 106705, 106709, 106713, 106717, 106721, 106725, 106729, 106733, 106737, 106741, 106745,
	106749, 106753, 106757, 106761, 106765, 106769, 106773, 106777, 106781, 106785, 106789, 106793, 106797, 106801, 106805, 106809,
	106813, 106818, 106823, 106828, 106833, 106838, 106843, 106848, 106853, 106859, 106864, 106869, 106874, 106879, 106884, 106889,
	106894, 106899, 106904, 106909, 106914, 106918, 106924, 106924, 106928, 106932, 106936, 106940, 106944, 106948, 106952, 106956,
	106960, 106964, 106964, 106968, 106972, 106977, 106981, 106986, 106991, 106995, 106995, 107000, 107004, 107008, 107015, 107020,
	107024, 107028, 107032, 107036, 107040, 107045, 107050, 107054, 107058, 107062, 107070, 107076, 107081, 107087, 107093, 107099,
	107099, 107104, 107109, 107114, 107119, 107124, 107129, 107134, 107139, 107144, 107149, 107154, 107159, 107164, 107169, 107174,
	107179, 107184, 107189, 107194, 107194, 107198, 107202, 107206, 107210, 107214, 107218, 107222, 107226, 107230, 107234, 107238,
	107242, 107246, 107250, 107254, 107258, 107262, 107266, 107270, 107274, 107278, 107282, 107286, 107290, 107294, 107298, 107302,
	107306, 107310, 107314, 107318, 107322, 107326, 107330, 107334, 107338, 107342, 107346, 107350, 107354, 107358, 107362, 107366,
	107370, 107374, 107378, 107382, 107386, 107390, 107394, 107398, 107402, 107406, 107410, 107414, 107418, 107422, 107426, 107430,
	107434, 107438, 107442, 107446, 107450, 107453, 107456, 107459, 107462, 107465, 107468, 107471, 107474, 107477, 107480, 107483,
	107486, 107489, 107492, 107495, 107498, 107501, 107504, 107507, 107510, 107515, 107520, 107525, 107527, 107530, 107533, 107536,
	107536, 107539, 107542, 107546, 107549, 107552, 107555, 107559, 107562, 107565, 107568, 107571, 107574, 107578, 107582, 107585,
	107588, 107591, 107594, 107598, 107602, 107605, 107608, 107611, 107614, 107617, 107620, 107623, 107626, 107629, 107632, 107635,
	107638, 107642, 107645, 107648, 107651, 107654, 107658, 107661, 107664, 107667, 107670, 107673, 107676, 107679, 107682, 107685,
	107688, 107692, 107696, 107700, 107703, 107706, 107709, 107712, 107715, 107718, 107722, 107725, 107728, 107731, 107734, 107737,
	107741, 107744, 107747, 107750, 107753, 107756, 107759, 107762, 107765, 107768, 107771, 107774, 107774, 107779, 107782, 107785,
	107789, 107793, 107797, 107801, 107805, 107809, 107813, 107817, 107821, 107825, 107829, 107833, 107837, 107841, 107845, 107849,
	107853, 107857, 107861, 107865, 107869, 107873, 107877, 107881, 107885, 107889, 107893, 107897, 107901, 107905, 107909, 107913,
	107917, 107921, 107925, 107929, 107934, 107938, 107943, 107947, 107951, 107955, 107959, 107963, 107967, 107971, 107975, 107979,
	107983, 107987, 107991, 107995, 107999, 108003, 108003, 108006, 108010, 108013, 108016, 108021, 108026, 108031, 108036, 108041,
	108046, 108051, 108057, 108063, 108069, 108075, 108081, 108087, 108087, 108090, 108093, 108097, 108101, 108105, 108105, 108110,
	108115, 108115, 108119, 108123, 108127, 108131, 108135, 108139, 108143, 108147, 108151, 108155, 108159, 108163, 108167, 108171,
	108175, 108179, 108183, 108187, 108191, 108195, 108199, 108203, 108207, 108211, 108215, 108219, 108223, 108227, 108231, 108235,
	108239, 108243, 108247, 108251, 108255, 108259, 108263, 108267, 108271, 108275, 108279, 108283, 108287, 108291, 108295, 108299,
	108303, 108307, 108311, 108315, 108319, 108323, 108327, 108331, 108335, 108339, 108343, 108347, 108351, 108355, 108359, 108363,
	108367, 108371, 108375, 108379, 108383, 108387, 108391, 108395, 108399, 108403, 108407, 108411, 108415, 108419, 108423, 108427,
	108431, 108435, 108439, 108443, 108447, 108451, 108455, 108459, 108463, 108467, 108471, 108475, 108479, 108483, 108487, 108491,
	108495, 108499, 108503, 108507, 108511, 108515, 108519, 108523, 108527, 108531, 108535, 108539, 108543, 108547, 108551, 108555,
	108559, 108563, 108567, 108571, 108575, 108579, 108583, 108587, 108591, 108595, 108599, 108603, 108607, 108611, 108615, 108619,
	108623, 108627, 108631, 108635, 108639, 108643, 108647, 108651, 108655, 108659, 108663, 108667, 108671, 108675, 108679, 108683,
	108687, 108691, 108695, 108699, 108703, 108707, 108711, 108715, 108719, 108723, 108727, 108731, 108735, 108739, 108743, 108747,
	108751, 108755, 108759, 108763, 108767, 108771, 108775, 108779, 108783, 108787, 108791, 108795, 108799, 108803, 108807, 108811,
	108815, 108819, 108823, 108827, 108831, 108835, 108839, 108843, 108847, 108851, 108855, 108859, 108863, 108867, 108871, 108875,
	108879, 108883, 108887, 108891, 108895, 108899, 108903, 108907, 108911, 108915, 108919, 108923, 108927, 108931, 108935, 108939,
	108943, 108947, 108951, 108955, 108959, 108963, 108967, 108971, 108975, 108979, 108983, 108987, 108991, 108995, 108999, 109003,
	109007, 109011, 109015, 109019, 109023, 109027, 109031, 109035, 109039, 109043, 109047, 109051, 109055, 109059, 109063, 109067,
	109071, 109075, 109079, 109083, 109087, 109091, 109095, 109099, 109103, 109107, 109111, 109115, 109119, 109123, 109127, 109131,
	109135, 109139, 109143, 109147, 109151, 109155, 109159, 109163, 109167, 109171, 109175, 109179, 109183, 109187, 109191, 109195,
	109199, 109203, 109207, 109211, 109215, 109219, 109223, 109227, 109231, 109235, 109239, 109243, 109247, 109251, 109255, 109259,
	109263, 109267, 109271, 109275, 109279, 109283, 109287, 109291, 109295, 109299, 109303, 109307, 109311, 109315, 109319, 109323,
	109327, 109331, 109335, 109339, 109343, 109347, 109351, 109355, 109359, 109363, 109367, 109371, 109375, 109379, 109383, 109387,
	109391, 109395, 109399, 109403, 109407, 109411, 109415, 109419, 109423, 109427, 109431, 109435, 109439, 109443, 109447, 109451,
	109455, 109459, 109463, 109467, 109471, 109475, 109479, 109483, 109487, 109491, 109495, 109499, 109503, 109507, 109511, 109515,
	109519, 109523, 109527, 109531, 109535, 109539, 109543, 109547, 109551, 109555, 109559, 109563, 109567, 109571, 109575, 109579,
	109583, 109587, 109591, 109595, 109599, 109603, 109607, 109611, 109615, 109619, 109623, 109627, 109631, 109635, 109639, 109643,
	109647, 109651, 109655, 109659, 109663, 109667, 109671, 109675, 109679, 109683, 109687, 109691, 109695, 109699, 109703, 109707,
	109711, 109715, 109719, 109723, 109727, 109731, 109735, 109739, 109743, 109747, 109751, 109755, 109759, 109763, 109767, 109771,
	109775, 109779, 109783, 109787, 109791, 109795, 109799, 109803, 109807, 109811, 109815, 109819, 109823, 109827, 109831, 109835,
	109839, 109843, 109847, 109851, 109855, 109859, 109863, 109867, 109871, 109875, 109879, 109883, 109887, 109891, 109895, 109899,
	109903, 109907, 109911, 109915, 109919, 109923, 109927, 109931, 109935, 109939, 109943, 109947, 109951, 109955, 109959, 109963,
	109967, 109971, 109975, 109979, 109983, 109987, 109991, 109995, 109999, 110003, 110007, 110011, 110015, 110019, 110023, 110027,
	110031, 110035, 110039, 110043, 110047, 110051, 110055, 110059, 110063, 110067, 110071, 110075, 110079, 110083, 110087, 110091,
	110095, 110099, 110103, 110107, 110111, 110115, 110119, 110123, 110127, 110131, 110135, 110139, 110143, 110147, 110151, 110155,
	110159, 110163, 110167, 110171, 110175, 110179, 110183, 110187, 110191, 110195, 110199, 110203, 110207, 110211, 110215, 110219,
	110223, 110227, 110231, 110235, 110239, 110243, 110247, 110251, 110255, 110259, 110263, 110267, 110271, 110275, 110279, 110283,
	110287, 110291, 110295, 110299, 110303, 110307, 110311, 110315, 110319, 110323, 110327, 110331, 110335, 110339, 110343, 110347,
	110351, 110355, 110359, 110363, 110367, 110371, 110375, 110379, 110383, 110387, 110391, 110395, 110399, 110403, 110407, 110411,
	110415, 110419, 110423, 110427, 110431, 110435, 110439, 110443, 110447, 110451, 110455, 110459, 110463, 110467, 110471, 110475,
	110479, 110483, 110487, 110491, 110495, 110499, 110503, 110507, 110511, 110515, 110519, 110523, 110527, 110531, 110535, 110539,
	110543, 110547, 110551, 110555, 110559, 110563, 110567, 110571, 110575, 110579, 110583, 110587, 110591, 110595, 110599, 110603,
	110607, 110611, 110615, 110619, 110623, 110627, 110631, 110635, 110639, 110643, 110647, 110651, 110655, 110659, 110663, 110667,
	110671, 110675, 110679, 110683, 110687, 110691, 110695, 110699, 110703, 110707, 110711, 110715, 110719, 110723, 110727, 110731,
	110735, 110739, 110743, 110747, 110751, 110755, 110759, 110763, 110767, 110771, 110775, 110779, 110783, 110787, 110791, 110795,
	110799, 110803, 110807, 110811, 110815, 110819, 110823, 110827, 110831, 110835, 110839, 110843, 110847, 110851, 110855, 110859,
	110863, 110867, 110871, 110875, 110879, 110883, 110887, 110891, 110895, 110899, 110903, 110907, 110911, 110915, 110919, 110923,
	110927, 110931, 110935, 110939, 110943, 110947, 110951, 110955, 110959, 110963, 110967, 110971, 110975, 110979, 110983, 110987,
	110991, 110995, 110999, 111003, 111007, 111011, 111015, 111019, 111023, 111027, 111031, 111035, 111039, 111043, 111047, 111051,
	111055, 111059, 111063, 111067, 111071, 111075, 111079, 111083, 111087, 111091, 111095, 111099, 111103, 111107, 111111, 111115,
	111119, 111123, 111127, 111131, 111135, 111139, 111143, 111147, 111151, 111155, 111159, 111163, 111167, 111171, 111175, 111179,
	111183, 111187, 111193, 111199, 111205, 111211, 111217, 111223, 111229, 111235, 111241, 111247, 111253, 111259, 111265, 111271,
	111277, 111283, 111289, 111295, 111301, 111307, 111313, 111319, 111325, 111331, 111337, 111343, 111349, 111355, 111361, 111367,
	111373, 111379, 111385, 111391, 111397, 111403, 111409, 111415, 111421, 111427, 111433, 111439, 111445, 111451, 111457, 111463,
	111469, 111475, 111481, 111487, 111493, 111499, 111505, 111511, 111517, 111523, 111529, 111535, 111541, 111547, 111553, 111559,
	111565, 111571, 111577, 111583, 111589, 111595, 111601, 111607, 111613, 111619, 111625, 111631, 111637, 111643, 111649, 111655,
	111661, 111667, 111673, 111679, 111685, 111691, 111697, 111703, 111709, 111715, 111721, 111727, 111733, 111739, 111745, 111751,
	111757, 111763, 111769, 111775, 111781, 111787, 111793, 111799, 111805, 111811, 111817, 111823, 111829, 111835, 111841, 111847,
	111853, 111859, 111865, 111871, 111877, 111883, 111889, 111895, 111901, 111907, 111913, 111919, 111925, 111931, 111937, 111943,
	111949, 111955, 111961, 111967, 111973, 111979, 111985, 111991, 111997, 112003, 112009, 112015, 112021, 112027, 112033, 112039,
	112045, 112051, 112057, 112063, 112069, 112075, 112081, 112087, 112093, 112099, 112105, 112111, 112117, 112123, 112129, 112135,
	112141, 112147, 112153, 112159, 112165, 112171, 112177, 112183, 112189, 112195, 112201, 112207, 112213, 112219, 112225, 112231,
	112237, 112243, 112249, 112255, 112261, 112267, 112273, 112279, 112285, 112291, 112297, 112303, 112309, 112315, 112321, 112327,
	112333, 112339, 112345, 112351, 112357, 112363, 112369, 112375, 112381, 112387, 112393, 112399, 112405, 112411, 112417, 112423,
	112429, 112435, 112441, 112447, 112453, 112459, 112465, 112471, 112477, 112483, 112489, 112495, 112501, 112507, 112513, 112519,
	112525, 112531, 112537, 112543, 112549, 112555, 112561, 112567, 112573, 112579, 112585, 112591, 112597, 112603, 112609, 112615,
	112621, 112627, 112633, 112639, 112645, 112651, 112657, 112663, 112669, 112675, 112681, 112687, 112693, 112699, 112705, 112711,
	112717, 112723, 112729, 112735, 112741, 112747, 112753, 112759, 112765, 112771, 112777, 112783, 112789, 112795, 112801, 112807,
	112813, 112819, 112825, 112831, 112837, 112843, 112849, 112855, 112861, 112867, 112873, 112879, 112885, 112891, 112897, 112903,
	112909, 112915, 112921, 112927, 112933, 112939, 112945, 112951, 112957, 112963, 112969, 112975, 112981, 112987, 112993, 112999,
	113005, 113011, 113017, 113023, 113029, 113035, 113041, 113047, 113053, 113059, 113065, 113071, 113077, 113083, 113089, 113095,
	113101, 113107, 113113, 113119, 113125, 113131, 113137, 113143, 113149, 113155, 113161, 113167, 113173, 113179, 113185, 113191,
	113197, 113203, 113209, 113215, 113221, 113227, 113233, 113239, 113245, 113251, 113257, 113263, 113269, 113275, 113281, 113287,
	113293, 113299, 113305, 113311, 113317, 113323, 113329, 113335, 113341, 113347, 113353, 113359, 113365, 113371, 113377, 113383,
	113389, 113395, 113401, 113407, 113413, 113419, 113425, 113431, 113437, 113443, 113449, 113455, 113461, 113467, 113473, 113479,
	113485, 113491, 113497, 113503, 113509, 113515, 113521, 113527, 113533, 113539, 113545, 113551, 113557, 113563, 113569, 113575,
	113581, 113587, 113593, 113599, 113605, 113611, 113617, 113623, 113629, 113635, 113641, 113647, 113653, 113659, 113665, 113671,
	113677, 113683, 113689, 113695, 113701, 113707, 113713, 113719, 113725, 113731, 113737, 113743, 113749, 113755, 113761, 113767,
	113773, 113779, 113785, 113791, 113797, 113803, 113809, 113815, 113821, 113827, 113833, 113839, 113845, 113851, 113857, 113863,
	113869, 113875, 113881, 113887, 113893, 113899, 113905, 113911, 113917, 113923, 113929, 113935, 113941, 113947, 113953, 113959,
	113965, 113971, 113977, 113983, 113989, 113995, 114001, 114007, 114007, 114013, 114019, 114025, 114031, 114031, 114037, 114043,
	114050, 114057, 114064, 114071, 114078, 114078, 114085, 114092, 114092, 114096, 114100, 114105, 114110, 114115, 114120, 114125,
	114130, 114135, 114140, 114145, 114150, 114155, 114160, 114165, 114170, 114175, 114180, 114185, 114190, 114195, 114200, 114205,
	114210, 114215, 114220, 114225, 114230, 114235, 114240, 114245, 114250, 114255, 114260, 114265, 114270, 114275, 114280, 114285,
	114290, 114295, 114300, 114305, 114310, 114315, 114320, 114325, 114330, 114335, 114340, 114345, 114350, 114355, 114360, 114365,
	114370, 114375, 114380, 114385, 114390, 114395, 114400, 114405, 114410, 114415, 114420, 114425, 114430, 114435, 114440, 114445,
	114450, 114455, 114460, 114465, 114470, 114475, 114480, 114485, 114490, 114495, 114500, 114505, 114510, 114515, 114520, 114525,
	114530, 114535, 114540, 114545, 114550, 114555, 114560, 114565, 114570, 114575, 114580, 114585, 114590, 114595, 114600, 114605,
	114610, 114615, 114620, 114625, 114630, 114635, 114640, 114645, 114650, 114655, 114660, 114665, 114670, 114675, 114680, 114685,
	114690, 114695, 114700, 114705, 114710, 114715, 114720, 114725, 114730, 114735, 114740, 114745, 114750, 114755, 114760, 114765,
	114770, 114775, 114780, 114785, 114790, 114795, 114800, 114805, 114810, 114815, 114820, 114825, 114830, 114835, 114840, 114845,
	114850, 114855, 114860, 114865, 114870, 114875, 114880, 114885, 114890, 114895, 114900, 114905, 114910, 114915, 114920, 114925,
	114930, 114935, 114940, 114945, 114950, 114955, 114960, 114965, 114970, 114975, 114980, 114985, 114990, 114995, 115000, 115005,
	115010, 115015, 115020, 115025, 115030, 115035, 115040, 115045, 115050, 115055, 115060, 115065, 115070, 115075, 115080, 115085,
	115090, 115095, 115100, 115105, 115110, 115115, 115120, 115125, 115130, 115135, 115140, 115145, 115150, 115155, 115160, 115165,
	115170, 115175, 115180, 115185, 115190, 115195, 115200, 115205, 115210, 115215, 115220, 115225, 115230, 115235, 115240, 115245,
	115250, 115255, 115260, 115265, 115270, 115275, 115280, 115285, 115290, 115295, 115300, 115305, 115310, 115315, 115320, 115325,
	115330, 115335, 115340, 115345, 115350, 115355, 115360, 115365, 115370, 115375, 115380, 115385, 115390, 115395, 115400, 115405,
	115410, 115415, 115420, 115425, 115430, 115435, 115440, 115445, 115450, 115455, 115460, 115465, 115470, 115475, 115480, 115485,
	115490, 115495, 115500, 115505, 115510, 115515, 115524, 115533, 115537, 115541, 115545, 115549, 115549, 115553, 115557, 115561,
	115561, 115565, 115569, 115573, 115577, 115577, 115581, 115585, 115589, 115593, 115597, 115601, 115605, 115609, 115613, 115617,
	115621, 115625, 115629, 115633, 115637, 115641, 115645, 115649, 115653, 115657, 115661, 115665, 115669, 115673, 115677, 115681,
	115685, 115689, 115693, 115697, 115701, 115705, 115709, 115713, 115717, 115721, 115725, 115729, 115733, 115737, 115741, 115745,
	115749, 115753, 115757, 115761, 115765, 115769, 115773, 115777, 115781, 115785, 115789, 115793, 115797, 115801, 115805, 115809,
	115813, 115817, 115821, 115825, 115829, 115833, 115837, 115841, 115845, 115849, 115853, 115857, 115861, 115865, 115869, 115873,
	115877, 115881, 115885, 115889, 115893, 115897, 115901, 115905, 115909, 115913, 115917, 115921, 115925, 115929, 115933, 115937,
	115941, 115945, 115949, 115953, 115957, 115961, 115965, 115969, 115973, 115977, 115981, 115985, 115989, 115993, 115997, 116001,
	116005, 116009, 116013, 116017, 116021, 116025, 116029, 116033, 116037, 116041, 116045, 116049, 116053, 116057, 116061, 116065,
	116069, 116073, 116077, 116081, 116085, 116089, 116093, 116097, 116101, 116105, 116109, 116113, 116117, 116121, 116125, 116129,
	116133, 116137, 116141, 116145, 116149, 116153, 116157, 116161, 116165, 116169, 116173, 116177, 116181, 116185, 116189, 116193,
	116197, 116201, 116205, 116209, 116213, 116217, 116221, 116225, 116229, 116233, 116237, 116241, 116245, 116249, 116253, 116257,
	116261, 116265, 116269, 116273, 116277, 116281, 116285, 116289, 116293, 116297, 116301, 116305, 116309, 116313, 116317, 116321,
	116325, 116329, 116333, 116337, 116341, 116345, 116349, 116353, 116357, 116361, 116365, 116369, 116373, 116377, 116381, 116385,
	116389, 116393, 116397, 116401, 116405, 116409, 116413, 116417, 116421, 116425, 116429, 116433, 116437, 116441, 116445, 116449,
	116453, 116457, 116461, 116465, 116469, 116473, 116477, 116481, 116485, 116489, 116493, 116497, 116501, 116505, 116509, 116513,
	116517, 116521, 116525, 116529, 116533, 116537, 116541, 116545, 116549, 116553, 116557, 116561, 116565, 116569, 116573, 116577,
	116581, 116585, 116589, 116593, 116597, 116601, 116605, 116609, 116613, 116617, 116621, 116625, 116629, 116633, 116637, 116641,
	116645, 116649, 116653, 116657, 116661, 116665, 116669, 116673, 116677, 116681, 116685, 116689, 116693, 116697, 116701, 116705,
	116709, 116713, 116717, 116721, 116725, 116729, 116733, 116737, 116741, 116745, 116749, 116753, 116757, 116761, 116765, 116769,
	116773, 116777, 116781, 116785, 116789, 116793, 116797, 116801, 116805, 116809, 116813, 116817, 116821, 116825, 116829, 116833,
	116837, 116841, 116845, 116849, 116853, 116857, 116861, 116865, 116869, 116873, 116877, 116881, 116885, 116889, 116893, 116897,
	116901, 116905, 116909, 116913, 116917, 116921, 116925, 116929, 116933, 116937, 116941, 116945, 116949, 116953, 116957, 116961,
	116965, 116969, 116973, 116977, 116981, 116985, 116989, 116993, 116997, 117001, 117005, 117009, 117013, 117017, 117021, 117025,
	117029, 117033, 117037, 117041, 117045, 117049, 117053, 117057, 117061, 117065, 117069, 117073, 117077, 117081, 117085, 117089,
	117093, 117097, 117101, 117105, 117109, 117113, 117117, 117121, 117125, 117129, 117133, 117137, 117141, 117145, 117149, 117153,
	117157, 117161, 117161, 117164, 117167, 117170, 117173, 117176, 117179, 117182, 117185, 117188, 117191, 117194, 117197, 117201,
	117205, 117209, 117213, 117217, 117220, 117224, 117227, 117230, 117234, 117237, 117240, 117243, 117246, 117249, 117252, 117255,
	117259, 117263, 117267, 117271, 117276, 117281, 117286, 117294, 117299, 117305, 117309, 117313, 117317, 117321, 117326, 117331,
	117336, 117341, 117347, 117351, 117356, 117360, 117365, 117369, 117374, 117378, 117383, 117386, 117389, 117393, 117397, 117401,
	117406, 117411, 117415, 117420, 117423, 117427, 117430, 117433, 117436, 117439, 117442, 117445, 117449, 117452, 117455, 117459,
	117463, 117467, 117471, 117474, 117477, 117480, 117483, 117487, 117491, 117495, 117498, 117502, 117505, 117508, 117511, 117514,
	117517, 117520, 117523, 117526, 117530, 117534, 117538, 117542, 117546, 117550, 117554, 117558, 117562, 117566, 117566, 117571,
	117576, 117581, 117586, 117591, 117596, 117600, 117609, 117613, 117617, 117622, 117627, 117632, 117632, 117636, 117641, 117645,
	117650, 117654, 117658, 117662, 117666, 117670, 117670, 117674, 117679, 117683, 117688, 117692, 117696, 117700, 117704, 117708,
	117712, 117712, 117717, 117721, 117724, 117729, 117733, 117737, 117741, 117745, 117745, 117754, 117762, 117768, 117775, 117781,
	117787, 117794, 117800, 117806, 117815, 117823, 117831, 117840, 117848, 117854, 117861, 117867, 117873, 117880, 117886, 117892,
	117901, 117909, 117917, 117923, 117930, 117936, 117942, 117947, 117953, 117959, 117964, 117968, 117972, 117976, 117980, 117984,
	117988, 117992, 117996, 118000, 118004, 118008, 118012, 118016, 118022, 118022, 118028, 118034, 118040, 118044, 118049, 118053,
	118057, 118064, 118068, 118073, 118077, 118082, 118086, 118090, 118095, 118100, 118104, 118110, 118116, 118122, 118127, 118131,
	118135, 118135, 118138, 118142, 118145, 118150, 118153, 118156, 118159, 118164, 118167, 118171, 118177, 118180, 118183, 118186,
	118190, 118194, 118198, 118202, 118206, 118210, 118214, 118218, 118222, 118227, 118232, 118237, 118242, 118246, 118250, 118253,
	118256, 118259, 118262, 118266, 118270, 118274, 118278, 118282, 118287, 118291, 118296, 118301, 118306, 118311, 118316, 118319,
	118324, 118328, 118333, 118336, 118339, 118342, 118345, 118348, 118351, 118356, 118361, 118368, 118375, 118379, 118385, 118390,
	118396, 118403, 118406, 118410, 118414, 118418, 118422, 118426, 118430, 118434, 118438, 118442, 118447, 118451, 118455, 118459,
	118464, 118469, 118476, 118483, 118487, 118491, 118498, 118502, 118507, 118510, 118514, 118518, 118522, 118526, 118530, 118534,
	118538, 118541, 118545, 118549, 118554, 118559, 118564, 118568, 118573, 118581, 118589, 118594, 118599, 118607, 118612, 118618,
	118623, 118626, 118629, 118632, 118635, 118638, 118638, 118642, 118646, 118650, 118655, 118660, 118665, 118670, 118674, 118678,
	118682, 118686, 118691, 118695, 118700, 118705, 118709, 118713, 118717, 118722, 118726, 118730, 118735, 118740, 118744, 118748,
	118752, 118757, 118762, 118767, 118771, 118775, 118780, 118785, 118790, 118795, 118799, 118803, 118807, 118812, 118816, 118820,
	118824, 118829, 118835, 118840, 118844, 118848, 118852, 118856, 118860, 118864, 118870, 118875, 118879, 118884, 118889, 118893,
	118897, 118901, 118906, 118910, 118915, 118920, 118924, 118928, 118932, 118937, 118942, 118946, 118950, 118955, 118960, 118965,
	118969, 118973, 118977, 118981, 118986, 118992, 118998, 119002, 119007, 119013, 119017, 119021, 119025, 119029, 119034, 119039,
	119044, 119049, 119053, 119057, 119061, 119066, 119071, 119076, 119080, 119084, 119089, 119093, 119098, 119102, 119107, 119111,
	119116, 119121, 119125, 119129, 119133, 119137, 119141, 119145, 119149, 119153, 119157, 119162, 119167, 119172, 119177, 119182,
	119188, 119192, 119196, 119201, 119206, 119210, 119215, 119220, 119225, 119230, 119235, 119240, 119244, 119248, 119252, 119256,
	119260, 119266, 119272, 119278, 119284, 119290, 119296, 119302, 119308, 119312, 119319, 119326, 119332, 119336, 119340, 119344,
	119348, 119354, 119359, 119364, 119369, 119374, 119379, 119384, 119390, 119396, 119403, 119409, 119416, 119422, 119427, 119433,
	119440, 119446, 119452, 119458, 119464, 119469, 119474, 119479, 119485, 119491, 119498, 119504, 119510, 119517, 119521, 119525,
	119532, 119538, 119544, 119550, 119556, 119563, 119569, 119575, 119582, 119589, 119596, 119603, 119610, 119617, 119622, 119627,
	119632, 119637, 119644, 119650, 119655, 119660, 119665, 119672, 119679, 119686, 119693, 119700, 119707, 119714, 119721, 119726,
	119731, 119737, 119743, 119748, 119753, 119758, 119764, 119770, 119776, 119781, 119787, 119793, 119799, 119804, 119809, 119813,
	119818, 119823, 119828, 119833, 119838, 119843, 119848, 119854, 119860, 119866, 119872, 119877, 119883, 119883, 119887, 119891,
	119895, 119900, 119904, 119908, 119913, 119918, 119922, 119926, 119930, 119933, 119936, 119942, 119948, 119954, 119957, 119961,
	119965, 119968, 119971, 119974, 119980, 119986, 119992, 119998, 120004, 120010, 120016, 120022, 120026, 120032, 120038, 120042,
	120046, 120052, 120058, 120064, 120070, 120070, 120075, 120079, 120083, 120087, 120091, 120095, 120099, 120103, 120107, 120112,
	120117, 120121, 120125, 120129, 120133, 120137, 120141, 120145, 120149, 120153, 120157, 120161, 120165, 120171, 120177, 120185,
	120189, 120193, 120198, 120203, 120208, 120214, 120220, 120226, 120232, 120238, 120244, 120250, 120256, 120263, 120270, 120275,
	120280, 120288, 120296, 120300, 120304, 120308, 120312, 120317, 120322, 120325, 120329, 120333, 120337, 120341, 120345, 120351,
	120357, 120365, 120369, 120374, 120380, 120386, 120392, 120398, 120404, 120410, 120415, 120421, 120427, 120433, 120439, 120445,
	120449, 120453, 120457, 120461, 120465, 120469, 120473, 120477, 120481, 120485, 120489, 120493, 120497, 120503, 120509, 120513,
	120517, 120521, 120525, 120529, 120533, 120537, 120541, 120546, 120551, 120554, 120557, 120560, 120563, 120566, 120569, 120572,
	120575, 120580, 120586, 120589, 120592, 120596, 120600, 120604, 120610, 120616, 120622, 120628, 120634, 120640, 120646, 120652,
	120658, 120664, 120670, 120673, 120676, 120681, 120685, 120690, 120695, 120699, 120704, 120708, 120713, 120718, 120722, 120726,
	120730, 120733, 120737, 120740, 120743, 120746, 120750, 120754, 120757, 120761, 120765, 120769, 120773, 120777, 120782, 120787,
	120791, 120795, 120799, 120803, 120810, 120817, 120827, 120834, 120841, 120851, 120861, 120871, 120874, 120879, 120884, 120888,
	120891, 120894, 120897, 120900, 120903, 120906, 120909, 120913, 120917, 120921, 120925, 120930, 120936, 120941, 120946, 120951,
	120956, 120963, 120970, 120977, 120984, 120989, 120992, 120995, 120995, 121001, 121007, 121013, 121019, 121025, 121031, 121037,
	121043, 121049, 121055, 121061, 121067, 121073, 121079, 121085, 121091, 121097, 121103, 121109, 121115, 121121, 121127, 121133,
	121139, 121145, 121151, 121157, 121163, 121169, 121175, 121181, 121187, 121193, 121199, 121205, 121211, 121217, 121223, 121229,
	121235, 121241, 121247, 121253, 121259, 121265, 121271, 121277, 121283, 121289, 121295, 121301, 121307, 121313, 121319, 121325,
	121331, 121337, 121343, 121349, 121355, 121361, 121367, 121373, 121379, 121385, 121391, 121395, 121399, 121403, 121406, 121406,
	121409, 121412, 121415, 121418, 121421, 121424, 121427, 121430, 121433, 121436, 121439, 121442, 121445, 121448, 121451, 121454,
	121457, 121460, 121463, 121466, 121466, 121469, 121473, 121477, 121481, 121485, 121488, 121491, 121495, 121498, 121501, 121505,
	121508, 121511, 121514, 121518, 121523, 121526, 121529, 121532, 121535, 121538, 121541, 121545, 121548, 121551, 121554, 121557,
	121560, 121563, 121566, 121569, 121572, 121575, 121578, 121581, 121585, 121588, 121591, 121594, 121597, 121600, 121603, 121606,
	121609, 121612, 121617, 121620, 121625, 121628, 121631, 121634, 121637, 121640, 121643, 121646, 121651, 121654, 121657, 121660,
	121663, 121666, 121670, 121673, 121677, 121680, 121683, 121686, 121689, 121692, 121695, 121698, 121701, 121704, 121707, 121710,
	121713, 121716, 121719, 121722, 121725, 121728, 121731, 121734, 121739, 121742, 121745, 121748, 121748, 121753, 121758, 121763,
	121768, 121773, 121778, 121783, 121788, 121793, 121798, 121803, 121808, 121813, 121818, 121823, 121828, 121833, 121838, 121842,
	121846, 121850, 121854, 121858, 121861, 121864, 121864, 121868, 121872, 121876, 121880, 121884, 121888, 121892, 121896, 121900,
	121904, 121908, 121912, 121916, 121920, 121924, 121928, 121932, 121936, 121940, 121944, 121948, 121952, 121956, 121960, 121964,
	121968, 121972, 121976, 121980, 121984, 121988, 121992, 121996, 122000, 122004, 122008, 122012, 122016, 122020, 122024, 122028,
	122032, 122036, 122040, 122044, 122048, 122052, 122056, 122060, 122064, 122068, 122072, 122076, 122080, 122084, 122088, 122092,
	122096, 122100, 122104, 122108, 122112, 122116, 122120, 122124, 122128, 122132, 122136, 122140, 122144, 122148, 122152, 122156,
	122160, 122164, 122168, 122172, 122176, 122180, 122184, 122188, 122192, 122196, 122200, 122204, 122204, 122208, 122212, 122216,
	122220, 122224, 122228, 122232, 122236, 122240, 122244, 122248, 122252, 122256, 122260, 122264, 122268, 122272, 122276, 122281,
	122286, 122291, 122296, 122301, 122306, 122311, 122316, 122321, 122326, 122331, 122336, 122341, 122346, 122351, 122356, 122361,
	122366, 122371, 122376, 122381, 122386, 122391, 122396, 122401, 122406, 122411, 122416, 122421, 122426, 122431, 122436, 122441,
	122446, 122451, 122456, 122461, 122466, 122471, 122476, 122481, 122486, 122491, 122496, 122501, 122506, 122511, 122516, 122521,
	122526, 122531, 122536, 122540, 122540, 122544, 122548, 122548, 122552, 122552, 122556, 122560, 122560, 122564, 122568, 122572,
	122576, 122576, 122580, 122584, 122588, 122592, 122596, 122600, 122604, 122608, 122612, 122616, 122620, 122624, 122624, 122628,
	122628, 122632, 122636, 122640, 122644, 122648, 122652, 122656, 122656, 122660, 122664, 122668, 122672, 122676, 122680, 122684,
	122688, 122692, 122696, 122700, 122705, 122710, 122715, 122720, 122725, 122730, 122735, 122740, 122745, 122750, 122755, 122760,
	122765, 122770, 122775, 122780, 122785, 122790, 122795, 122800, 122805, 122810, 122815, 122820, 122825, 122830, 122835, 122840,
	122845, 122850, 122855, 122860, 122865, 122870, 122875, 122880, 122885, 122890, 122895, 122900, 122905, 122910, 122915, 122920,
	122925, 122930, 122935, 122940, 122945, 122950, 122955, 122960, 122964, 122968, 122968, 122972, 122976, 122980, 122984, 122984,
	122988, 122992, 122996, 123000, 123004, 123008, 123012, 123016, 123016, 123020, 123024, 123028, 123032, 123036, 123040, 123044,
	123044, 123048, 123052, 123056, 123060, 123064, 123068, 123072, 123076, 123080, 123084, 123088, 123092, 123096, 123100, 123104,
	123108, 123112, 123116, 123120, 123124, 123128, 123132, 123136, 123140, 123144, 123148, 123154, 123160, 123160, 123166, 123172,
	123178, 123184, 123184, 123190, 123196, 123202, 123208, 123214, 123214, 123220, 123220, 123226, 123232, 123238, 123244, 123250,
	123256, 123262, 123262, 123268, 123274, 123280, 123286, 123292, 123298, 123304, 123310, 123316, 123322, 123328, 123334, 123340,
	123346, 123352, 123358, 123364, 123370, 123376, 123382, 123388, 123394, 123400, 123406, 123412, 123418, 123423, 123428, 123433,
	123438, 123443, 123448, 123453, 123458, 123463, 123468, 123473, 123478, 123483, 123488, 123493, 123498, 123503, 123508, 123513,
	123518, 123523, 123528, 123533, 123538, 123543, 123548, 123553, 123558, 123563, 123568, 123573, 123578, 123583, 123588, 123593,
	123598, 123603, 123608, 123613, 123618, 123623, 123628, 123633, 123638, 123643, 123648, 123653, 123658, 123663, 123668, 123673,
	123678, 123684, 123690, 123696, 123702, 123708, 123714, 123720, 123726, 123732, 123738, 123744, 123750, 123756, 123762, 123768,
	123774, 123780, 123786, 123792, 123798, 123804, 123810, 123816, 123822, 123828, 123834, 123840, 123846, 123852, 123858, 123864,
	123870, 123876, 123882, 123888, 123894, 123900, 123906, 123912, 123918, 123924, 123930, 123936, 123942, 123948, 123954, 123960,
	123966, 123972, 123978, 123984, 123990, 123997, 124004, 124011, 124018, 124025, 124032, 124039, 124046, 124053, 124060, 124067,
	124074, 124081, 124088, 124095, 124102, 124109, 124116, 124123, 124130, 124137, 124144, 124151, 124158, 124165, 124172, 124179,
	124186, 124193, 124200, 124207, 124214, 124221, 124228, 124235, 124242, 124249, 124256, 124263, 124270, 124277, 124284, 124291,
	124298, 124305, 124312, 124319, 124326, 124333, 124340, 124347, 124354, 124361, 124368, 124375, 124382, 124389, 124396, 124403,
	124410, 124417, 124424, 124431, 124438, 124445, 124452, 124459, 124466, 124473, 124480, 124487, 124494, 124501, 124508, 124515,
	124522, 124529, 124536, 124543, 124550, 124557, 124564, 124571, 124578, 124585, 124592, 124599, 124606, 124613, 124620, 124627,
	124634, 124641, 124648, 124655, 124662, 124669, 124676, 124683, 124690, 124697, 124704, 124711, 124718, 124726, 124734, 124742,
	124750, 124758, 124766, 124774, 124782, 124790, 124798, 124806, 124814, 124822, 124830, 124838, 124846, 124854, 124862, 124870,
	124878, 124886, 124894, 124902, 124910, 124918, 124926, 124934, 124942, 124950, 124958, 124966, 124974, 124982, 124990, 124998,
	125006, 125014, 125022, 125030, 125038, 125046, 125054, 125062, 125070, 125078, 125086, 125094, 125102, 125110, 125118, 125126,
	125134, 125138, 125142, 125146, 125150, 125154, 125158, 125162, 125166, 125170, 125174, 125178, 125182, 125186, 125190, 125194,
	125198, 125202, 125206, 125210, 125214, 125218, 125222, 125226, 125230, 125234, 125238, 125242, 125246, 125250, 125254, 125258,
	125262, 125266, 125270, 125274, 125278, 125282, 125286, 125290, 125294, 125298, 125302, 125306, 125310, 125314, 125318, 125322,
	125326, 125330, 125334, 125338, 125342, 125347, 125352, 125352, 125356, 125360, 125364, 125368, 125372, 125376, 125380, 125384,
	125388, 125392, 125396, 125400, 125404, 125408, 125412, 125416, 125420, 125425, 125429, 125433, 125437, 125441, 125445, 125449,
	125453, 125456, 125460, 125464, 125468, 125472, 125476, 125480, 125484, 125488, 125492, 125496, 125500, 125504, 125508, 125512,
	125516, 125520, 125524, 125529, 125533, 125537, 125541, 125545, 125549, 125553, 125557, 125561, 125565, 125569, 125573, 125577,
	125581, 125585, 125589, 125593, 125597, 125601, 125605, 125609, 125613, 125617, 125621, 125625, 125629, 125633, 125637, 125641,
	125645, 125649, 125653, 125658, 125662, 125666, 125670, 125674, 125678, 125682, 125686, 125689, 125693, 125697, 125701, 125705,
	125709, 125713, 125717, 125721, 125725, 125729, 125733, 125737, 125741, 125745, 125749, 125753, 125757, 125762, 125766, 125770,
	125774, 125778, 125782, 125786, 125790, 125794, 125798, 125802, 125806, 125810, 125814, 125818, 125823, 125828, 125833, 125838,
	125843, 125848, 125853, 125858, 125863, 125868, 125873, 125878, 125883, 125888, 125893, 125898, 125903, 125909, 125914, 125919,
	125924, 125929, 125934, 125939, 125944, 125948, 125953, 125958, 125963, 125968, 125973, 125978, 125983, 125988, 125993, 125998,
	126003, 126008, 126013, 126018, 126023, 126028, 126033, 126039, 126044, 126049, 126054, 126059, 126064, 126069, 126074, 126079,
	126084, 126089, 126094, 126099, 126104, 126109, 126116, 126123, 126130, 126137, 126144, 126151, 126158, 126165, 126172, 126179,
	126186, 126193, 126200, 126207, 126214, 126221, 126228, 126236, 126243, 126250, 126257, 126264, 126271, 126278, 126285, 126291,
	126298, 126305, 126312, 126319, 126326, 126333, 126340, 126347, 126354, 126361, 126368, 126375, 126382, 126389, 126396, 126403,
	126410, 126418, 126425, 126432, 126439, 126446, 126453, 126460, 126467, 126474, 126481, 126488, 126495, 126502, 126509, 126516,
	126524, 126532, 126540, 126548, 126556, 126564, 126572, 126580, 126588, 126596, 126604, 126612, 126620, 126628, 126636, 126644,
	126652, 126661, 126669, 126677, 126685, 126693, 126701, 126709, 126717, 126724, 126732, 126740, 126748, 126756, 126764, 126772,
	126780, 126788, 126796, 126804, 126812, 126820, 126828, 126836, 126844, 126852, 126860, 126869, 126877, 126885, 126893, 126901,
	126909, 126917, 126925, 126933, 126941, 126949, 126957, 126965, 126973, 126981, 126985, 126989, 126989, 126993, 126997, 127001,
	127005, 127009, 127013, 127017, 127021, 127025, 127029, 127035, 127041, 127047, 127053, 127059, 127065, 127071, 127077, 127083,
	127089, 127095, 127101, 127107, 127113, 127119, 127125, 127131, 127137, 127143, 127149, 127156, 127163, 127170, 127177, 127184,
	127191, 127198, 127205, 127212, 127219, 127223, 127227, 127231, 127235, 127239, 127243, 127247, 127251, 127255, 127259, 127264,
	127269, 127274, 127279, 127284, 127289, 127295, 127301, 127309, 127316, 127322, 127328, 127335, 127341, 127347, 127353, 127360,
	127368, 127375, 127383, 127391, 127398, 127407, 127416, 127424, 127432, 127439, 127446, 127454, 127462, 127469, 127476, 127485,
	127494, 127502, 127512, 127522, 127532, 127542, 127552, 127560, 127568, 127576, 127584, 127593, 127602, 127612, 127622, 127631,
	127640, 127650, 127659, 127668, 127678, 127687, 127696, 127705, 127714, 127724, 127734, 127743, 127752, 127761, 127769, 127779,
	127789, 127798, 127807, 127813, 127820, 127827, 127834, 127842, 127849, 127857, 127864, 127871, 127879, 127888, 127898, 127906,
	127915, 127924, 127931, 127939, 127947, 127954, 127962, 127972, 127982, 127986, 127993, 127998, 128004, 128011, 128017, 128023,
	128031, 128037, 128045, 128054, 128060, 128064, 128070, 128076, 128082, 128087, 128091, 128096, 128100, 128107, 128113, 128120,
	128126, 128133, 128139, 128144, 128148, 128152, 128156, 128162, 128168, 128174, 128179, 128186, 128190, 128195, 128202, 128208,
	128215, 128221, 128229, 128237, 128241, 128248, 128255, 128262, 128269, 128274, 128282, 128290, 128298, 128304, 128312, 128320,
	128328, 128334, 128342, 128348, 128354, 128360, 128367, 128373, 128380, 128386, 128392, 128399, 128406, 128416, 128425, 128431,
	128437, 128443, 128449, 128456, 128463, 128470, 128475, 128482, 128490, 128498, 128504, 128514, 128524, 128530, 128537, 128543,
	128549, 128555, 128561, 128567, 128574, 128582, 128588, 128594, 128600, 128607, 128614, 128622, 128630, 128638, 128646, 128653,
	128660, 128668, 128675, 128681, 128686, 128692, 128698, 128705, 128713, 128719, 128726, 128732, 128739, 128746, 128754, 128761,
	128768, 128776, 128784, 128791, 128799, 128807, 128816, 128825, 128834, 128842, 128848, 128855, 128862, 128871, 128880, 128889,
	128898, 128907, 128916, 128925, 128934, 128941, 128948, 128957, 128966, 128975, 128982, 128988, 128995, 129002, 129009, 129015,
	129022, 129029, 129036, 129042, 129047, 129053, 129060, 129067, 129074, 129080, 129088, 129096, 129104, 129112, 129120, 129128,
	129136, 129145, 129149, 129154, 129157, 129160, 129163, 129166, 129169, 129172, 129175, 129178, 129181, 129184, 129187, 129190,
	129193, 129196, 129199, 129202, 129205, 129209, 129213, 129217, 129221, 129224, 129228, 129232, 129236, 129240, 129243, 129247,
	129254, 129261, 129267, 129273, 129281, 129289, 129297, 129303, 129309, 129316, 129323, 129330, 129337, 129344, 129350, 129357,
	129363, 129371, 129376, 129383, 129390, 129396, 129404, 129410, 129416, 129422, 129428, 129434, 129440, 129446, 129452, 129458,
	129464, 129470, 129476, 129482, 129488, 129494, 129500, 129506, 129512, 129518, 129526, 129534, 129542, 129550, 129558, 129566,
	129571, 129578, 129585, 129592, 129598, 129604, 129610, 129616, 129622, 129628, 129634, 129640, 129647, 129654, 129661, 129668,
	129675, 129682, 129689, 129696, 129703, 129710, 129717, 129724, 129731, 129737, 129744, 129750, 129758, 129763, 129770, 129777,
	129784, 129792, 129797, 129803, 129809, 129815, 129820, 129826, 129832, 129838, 129844, 129850, 129856, 129862, 129868, 129874,
	129882, 129890, 129898, 129906, 129914, 129922, 129927, 129934, 129941, 129948, 129955, 129964, 129973, 129982, 129991, 130001,
	130011, 130017, 130023, 130029, 130035, 130041, 130047, 130054, 130062, 130070, 130078, 130086, 130094, 130102, 130109, 130116,
	130123, 130128, 130133, 130138, 130143, 130151, 130159, 130167, 130175, 130183, 130191, 130199, 130206, 130213, 130220, 130227,
	130234, 130241, 130248, 130256, 130264, 130272, 130280, 130288, 130297, 130306, 130315, 130324, 130333, 130342, 130351, 130360,
	130368, 130376, 130383, 130390, 130397, 130405, 130413, 130422, 130431, 130441, 130451, 130460, 130469, 130478, 130487, 130495,
	130503, 130510, 130517, 130524, 130530, 130536, 130542, 130548, 130554, 130560, 130566, 130572, 130578, 130584, 130589, 130594,
	130599, 130605, 130613, 130621, 130629, 130637, 130647, 130657, 130667, 130677, 130687, 130697, 130705, 130713, 130722, 130731,
	130738, 130745, 130754, 130763, 130767, 130771, 130774, 130777, 130780, 130783, 130786, 130790, 130795, 130798, 130800, 130803,
	130809, 130815, 130821, 130827, 130833, 130837, 130844, 130852, 130861, 130865, 130869, 130873, 130878, 130883, 130888, 130893,
	130896, 130899, 130902, 130905, 130908, 130911, 130915, 130919, 130923, 130927, 130931, 130935, 130938, 130941, 130944, 130947,
	130952, 130958, 130964, 130969, 130975, 130981, 130986, 130991, 130996, 130999, 131002, 131005, 131009, 131013, 131017, 131019,
	131022, 131025, 131028, 131031, 131035, 131039, 131044, 131049, 131052, 131055, 131059, 131063, 131067, 131070, 131074, 131078,
	131081, 131085, 131089, 131093, 131097, 131101, 131105, 131110, 131115, 131119, 131124, 131129, 131132, 131136, 131140, 131143,
	131147, 131151, 131155, 131160, 131165, 131168, 131172, 131176, 131181, 131185, 131190, 131196, 131201, 131206, 131211, 131216,
	131218, 131221, 131225, 131230, 131234, 131239, 131243, 131248, 131253, 131255, 131257, 131259, 131263, 131267, 131272, 131277,
	131282, 131288, 131294, 131299, 131306, 131309, 131314, 131319, 131324, 131329, 131334, 131339, 131344, 131346, 131351, 131356,
	131359, 131362, 131365, 131369, 131372, 131376, 131378, 131381, 131383, 131385, 131387, 131387, 131392, 131397, 131402, 131407,
	131412, 131412, 131417, 131422, 131427, 131432, 131437, 131442, 131447, 131452, 131457, 131462, 131467, 131472, 131477, 131482,
	131487, 131487, 131494, 131500, 131506, 131511, 131518, 131525, 131532, 131537, 131548, 131557, 131564, 131571, 131580, 131587,
	131594, 131600, 131606, 131612, 131620, 131629, 131636, 131644, 131653, 131661, 131668, 131676, 131685, 131692, 131700, 131707,
	131713, 131713, 131717, 131721, 131725, 131729, 131733, 131737, 131741, 131741, 131745, 131749, 131754, 131758, 131762, 131766,
	131770, 131774, 131778, 131782, 131786, 131790, 131794, 131798, 131802, 131806, 131810, 131810, 131814, 131818, 131822, 131826,
	131830, 131834, 131838, 131838, 131842, 131847, 131847, 131851, 131857, 131862, 131868, 131872, 131872, 131877, 131882, 131887,
	131892, 131897, 131902, 131907, 131912, 131917, 131922, 131927, 131932, 131937, 131942, 131947, 131952, 131957, 131962, 131967,
	131972, 131977, 131982, 131987, 131992, 131997, 132002, 132007, 132012, 132017, 132022, 132027, 132032, 132037, 132042, 132047,
	132052, 132057, 132062, 132067, 132072, 132077, 132082, 132087, 132092, 132097, 132097, 132103, 132109, 132115, 132121, 132127,
	132133, 132139, 132145, 132151, 132157, 132163, 132169, 132175, 132180, 132180, 132185, 132190, 132195, 132200, 132205, 132210,
	132215, 132220, 132225, 132230, 132230, 132235, 132240, 132240, 132243, 132246, 132249, 132252, 132255, 132258, 132261, 132264,
	132267, 132270, 132273, 132276, 132279, 132282, 132285, 132288, 132291, 132294, 132298, 132301, 132305, 132308, 132311, 132315,
	132318, 132322, 132325, 132328, 132332, 132335, 132339, 132339, 132342, 132345, 132348, 132351, 132354, 132357, 132360, 132363,
	132366, 132369, 132372, 132375, 132378, 132381, 132384, 132387, 132390, 132393, 132396, 132399, 132402, 132405, 132408, 132411,
	132414, 132417, 132420, 132423, 132426, 132429, 132432, 132435, 132438, 132441, 132444, 132447, 132450, 132453, 132456, 132459,
	132462, 132465, 132468, 132471, 132474, 132477, 132480, 132483, 132486, 132489, 132492, 132495, 132498, 132501, 132504, 132507,
	132510, 132513, 132513, 132516, 132516, 132519, 132522, 132525, 132528, 132531, 132534, 132537, 132537, 132541, 132544, 132547,
	132550, 132550, 132554, 132558, 132558, 132562, 132566, 132570, 132574, 132578, 132582, 132586, 132590, 132594, 132598, 132602,
	132606, 132610, 132614, 132618, 132618, 132623, 132628, 132633, 132638, 132643, 132648, 132653, 132658, 132663, 132668, 132673,
	132678, 132683, 132688, 132693, 132698, 132703, 132708, 132713, 132718, 132723, 132728, 132733, 132738, 132743, 132748, 132753,
	132758, 132763, 132768, 132773, 132778, 132783, 132788, 132793, 132798, 132803, 132808, 132813, 132818, 132823, 132828, 132833,
	132838, 132843, 132848, 132853, 132858, 132863, 132868, 132873, 132878, 132883, 132888, 132893, 132898, 132903, 132908, 132913,
	132918, 132923, 132929, 132934, 132939, 132944, 132949, 132954, 132959, 132964, 132969, 132974, 132979, 132984, 132989, 132994,
	132999, 133004, 133009, 133014, 133019, 133024, 133029, 133035, 133040, 133045, 133050, 133055, 133060, 133065, 133070, 133075,
	133080, 133085, 133090, 133095, 133100, 133105, 133110, 133115, 133120, 133125, 133130, 133135, 133140, 133145, 133150, 133155,
	133160, 133165, 133170, 133175, 133180, 133185, 133190, 133195, 133200, 133205, 133210, 133215, 133220, 133225, 133230, 133235,
	133240, 133245, 133250, 133255, 133260, 133266, 133272, 133278, 133283, 133288, 133293, 133298, 133303, 133308, 133313, 133318,
	133323, 133328, 133333, 133338, 133343, 133348, 133353, 133358, 133363, 133368, 133373, 133378, 133383, 133388, 133393, 133398,
	133403, 133409, 133415, 133421, 133426, 133431, 133436, 133441, 133446, 133451, 133456, 133461, 133466, 133471, 133476, 133481,
	133486, 133491, 133496, 133501, 133506, 133511, 133516, 133521, 133526, 133531, 133536, 133541, 133546, 133551, 133556, 133561,
	133566, 133571, 133576, 133581, 133586, 133591, 133596, 133601, 133606, 133611, 133611, 133615, 133619, 133623, 133627, 133631,
	133635, 133639, 133643, 133647, 133652, 133657, 133662, 133667, 133673, 133679, 133684, 133684, 133688, 133692, 133696, 133700,
	133704, 133708, 133712, 133716, 133720, 133724, 133728, 133732, 133736, 133740, 133744, 133748, 133752, 133756, 133760, 133764,
	133768, 133772, 133776, 133780, 133784, 133788, 133792, 133796, 133800, 133804, 133808, 133812, 133816, 133820, 133824, 133828,
	133832, 133836, 133840, 133844, 133848, 133852, 133856, 133860, 133864, 133868, 133872, 133876, 133880, 133884, 133888, 133892,
	133896, 133900, 133904, 133908, 133912, 133916, 133920, 133924, 133928, 133932, 133936, 133940, 133944, 133948, 133952, 133956,
	133959, 133962, 133965, 133967, 133970, 133974, 133976, 133979, 133979, 133982, 133985, 133988, 133991, 133994, 133997, 134000,
	134003, 134006, 134009, 134009, 134013, 134017, 134017, 134021, 134025, 134029, 134033, 134037, 134041, 134045, 134049, 134053,
	134057, 134061, 134065, 134069, 134073, 134077, 134081, 134085, 134089, 134094, 134099, 134104, 134109, 134114, 134119, 134124,
	134129, 134134, 134139, 134144, 134149, 134154, 134159, 134164, 134169, 134174, 134179, 134184, 134189, 134194, 134199, 134204,
	134209, 134214, 134219, 134224, 134228, 134232, 134236, 134240, 134244, 134249, 134254, 134259, 134264, 134269, 134274, 134279,
	134284, 134289, 134292, 134297, 134302, 134307, 134311, 134316, 134321, 134327, 134332, 134332, 134336, 134340, 134344, 134348,
	134352, 134356, 134360, 134364, 134368, 134372, 134376, 134380, 134384, 134388, 134392, 134396, 134400, 134404, 134409, 134414,
	134419, 134424, 134429, 134434, 134439, 134444, 134449, 134454, 134459, 134464, 134469, 134474, 134479, 134484, 134489, 134494,
	134499, 134504, 134509, 134514, 134519, 134524, 134529, 134534, 134539, 134542, 134547, 134552, 134557, 134562, 134567, 134572,
	134577, 134582, 134587, 134593, 134599, 134605, 134611, 134616, 134621, 134621, 134624, 134627, 134630, 134633, 134633, 134636,
	134639, 134642, 134645, 134648, 134651, 134654, 134657, 134660, 134663, 134666, 134669, 134672, 134675, 134678, 134681, 134684,
	134687, 134690, 134693, 134696, 134699, 134702, 134706, 134710, 134714, 134718, 134718, 134722, 134726, 134726, 134730, 134730,
	134734, 134734, 134738, 134742, 134746, 134750, 134754, 134758, 134762, 134766, 134770, 134774, 134774, 134778, 134782, 134786,
	134790, 134790, 134794, 134794, 134798, 134798, 134802, 134802, 134806, 134806, 134810, 134810, 134814, 134814, 134818, 134822,
	134826, 134826, 134830, 134834, 134834, 134838, 134838, 134842, 134842, 134846, 134846, 134850, 134850, 134855, 134855, 134860,
	134860, 134864, 134868, 134868, 134872, 134872, 134876, 134880, 134884, 134888, 134888, 134892, 134896, 134900, 134904, 134908,
	134912, 134916, 134916, 134920, 134924, 134928, 134932, 134932, 134936, 134940, 134944, 134949, 134949, 134954, 134954, 134958,
	134962, 134966, 134970, 134974, 134978, 134982, 134986, 134990, 134994, 134994, 134998, 135002, 135006, 135010, 135014, 135018,
	135022, 135026, 135030, 135034, 135038, 135042, 135046, 135050, 135054, 135058, 135062, 135062, 135068, 135074, 135080, 135080,
	135086, 135092, 135098, 135104, 135110, 135110, 135116, 135122, 135128, 135134, 135140, 135146, 135152, 135158, 135164, 135170,
	135176, 135182, 135188, 135194, 135200, 135206, 135212, 135212, 135220, 135226, 135226, 135230, 135234, 135238, 135242, 135246,
	135250, 135254, 135259, 135264, 135269, 135274, 135279, 135284, 135289, 135294, 135299, 135304, 135309, 135314, 135319, 135324,
	135329, 135334, 135339, 135344, 135349, 135354, 135359, 135364, 135369, 135374, 135379, 135384, 135389, 135392, 135395, 135398,
	135401, 135404, 135407, 135410, 135413, 135416, 135419, 135419, 135423, 135430, 135437, 135444, 135451, 135458, 135465, 135472,
	135479, 135486, 135493, 135500, 135507, 135514, 135521, 135528, 135535, 135542, 135549, 135556, 135563, 135570, 135577, 135584,
	135591, 135598, 135605, 135612, 135619, 135626, 135633, 135640, 135647, 135654, 135661, 135668, 135675, 135682, 135689, 135696,
	135703, 135710, 135717, 135724, 135731, 135738, 135745, 135752, 135759, 135766, 135770, 135777, 135784, 135791, 135798, 135805,
	135812, 135819, 135826, 135833, 135840, 135847, 135854, 135861, 135868, 135875, 135882, 135889, 135896, 135903, 135910, 135917,
	135924, 135931, 135938, 135945, 135952, 135959, 135966, 135973, 135980, 135987, 135994, 136001, 136008, 136015, 136022, 136029,
	136036, 136043, 136050, 136057, 136064, 136071, 136078, 136085, 136092, 136099, 136106, 136113, 136113, 136116, 136121, 136126,
	136131, 136136, 136141, 136146, 136151, 136156, 136161, 136166, 136171, 136176, 136181, 136186, 136186, 136191, 136196, 136201,
	136206, 136211, 136216, 136221, 136226, 136231, 136236, 136241, 136246, 136251, 136256, 136260, 136260, 136265, 136270, 136275,
	136280, 136285, 136290, 136295, 136300, 136305, 136310, 136315, 136320, 136325, 136330, 136334, 136334, 136339, 136344, 136349,
	136354, 136359, 136364, 136369, 136374, 136379, 136384, 136389, 136394, 136399, 136404, 136408, 136411, 136416, 136421, 136426,
	136431, 136436, 136441, 136446, 136451, 136456, 136461, 136466, 136471, 136476, 136481, 136486, 136491, 136496, 136501, 136506,
	136511, 136516, 136516, 136520, 136523, 136526, 136529, 136532, 136535, 136538, 136541, 136544, 136547, 136550, 136557, 136565,
	136569, 136572, 136578, 136583, 136588, 136593, 136598, 136603, 136608, 136613, 136618, 136623, 136628, 136633, 136638, 136643,
	136648, 136653, 136658, 136663, 136668, 136673, 136678, 136683, 136688, 136693, 136698, 136703, 136708, 136715, 136721, 136727,
	136729, 136731, 136733, 136738, 136743, 136748, 136753, 136758, 136763, 136768, 136773, 136778, 136783, 136788, 136793, 136798,
	136803, 136808, 136813, 136818, 136823, 136828, 136833, 136838, 136843, 136848, 136853, 136858, 136863, 136865, 136867, 136869,
	136871, 136873, 136875, 136881, 136887, 136893, 136899, 136905, 136911, 136917, 136923, 136929, 136935, 136941, 136947, 136953,
	136959, 136965, 136971, 136977, 136983, 136989, 136995, 137001, 137007, 137013, 137019, 137025, 137031, 137034, 137037, 137040,
	137042, 137047, 137050, 137056, 137062, 137068, 137074, 137080, 137086, 137092, 137098, 137104, 137110, 137116, 137122, 137128,
	137134, 137140, 137146, 137152, 137158, 137164, 137170, 137176, 137182, 137188, 137194, 137200, 137206, 137213, 137216, 137219,
	137222, 137225, 137228, 137230, 137232, 137234, 137236, 137238, 137240, 137242, 137244, 137246, 137251, 137253, 137256, 137259,
	137262, 137265, 137268, 137272, 137276, 137282, 137285, 137290, 137295, 137297, 137299, 137303, 137305, 137307, 137309, 137311,
	137314, 137314, 137319, 137324, 137329, 137334, 137339, 137344, 137349, 137354, 137359, 137364, 137369, 137374, 137379, 137384,
	137389, 137394, 137399, 137404, 137409, 137414, 137419, 137424, 137429, 137434, 137439, 137444, 137447, 137450, 137453, 137453,
	137459, 137465, 137471, 137474, 137480, 137486, 137492, 137498, 137504, 137510, 137516, 137522, 137528, 137534, 137540, 137546,
	137552, 137558, 137564, 137570, 137576, 137582, 137588, 137594, 137600, 137606, 137612, 137618, 137624, 137630, 137636, 137642,
	137648, 137654, 137660, 137666, 137672, 137678, 137684, 137690, 137696, 137702, 137708, 137714, 137714, 137722, 137730, 137738,
	137746, 137754, 137762, 137770, 137778, 137786, 137786, 137789, 137792, 137792, 137796, 137800, 137804, 137808, 137812, 137816,
	137816, 137817, 137818, 137820, 137823, 137826, 137827, 137830, 137833, 137834, 137837, 137839, 137840, 137842, 137847, 137850,
	137855, 137858, 137861, 137865, 137869, 137873, 137876, 137880, 137884, 137888, 137890, 137894, 137899, 137904, 137908, 137911,
	137913, 137915, 137916, 137918, 137920, 137925, 137929, 137935, 137938, 137941, 137944, 137947, 137948, 137951, 137953, 137954,
	137955, 137956, 137957, 137959, 137961, 137963, 137964, 137966, 137967, 137969, 137970, 137971, 137972, 137973, 137976, 137979,
	137980, 137983, 137985, 137987, 137991, 137992, 137993, 137994, 137995, 137996, 137997, 137998, 137999, 138000, 138001, 138003,
	138005, 138006, 138007, 138008, 138009, 138010, 138013, 138016, 138018, 138020, 138022, 138024, 138027, 138029, 138030, 138031,
	138033, 138036, 138037, 138038, 138039, 138041, 138046, 138049, 138051, 138053, 138054, 138055, 138057, 138058, 138059, 138060,
	138062, 138063, 138065, 138068, 138069, 138072, 138075, 138079, 138081, 138083, 138085, 138087, 138090, 138092, 138097, 138101,
	138102, 138103, 138105, 138107, 138112, 138114, 138116, 138117, 138119, 138120, 138122, 138124, 138126, 138128, 138130, 138132,
	138134, 138136, 138139, 138141, 138143, 138149, 138152, 138154, 138156, 138160, 138162, 138164, 138166, 138170, 138174, 138176,
	138178, 138180, 138182, 138184, 138188, 138189, 138191, 138192, 138193, 138195, 138197, 138199, 138200, 138202, 138204, 138206,
	138208, 138210, 138211, 138213, 138214, 138217, 138219, 138222, 138223, 138224, 138226, 138227, 138228, 138230, 138234, 138238,
	138242, 138245, 138247, 138248, 138249, 138250, 138252, 138253, 138255, 138257, 138259, 138260, 138262, 138263, 138265, 138267,
	138271, 138272, 138277, 138282, 138287, 138290, 138291, 138294, 138296, 138298, 138299, 138302, 138304, 138305, 138307, 138309,
	138310, 138312, 138315, 138317, 138320, 138323, 138324, 138325, 138328, 138329, 138331, 138333, 138334, 138336, 138337, 138339,
	138341, 138343, 138345, 138347, 138350, 138353, 138354, 138356, 138357, 138361, 138364, 138365, 138373, 138379, 138385, 138391,
	138397, 138398, 138399, 138400, 138402, 138403, 138404, 138405, 138406, 138407, 138408, 138409, 138410, 138411, 138412, 138413,
	138414, 138415, 138416, 138417, 138418, 138419, 138420, 138421, 138422, 138423, 138424, 138426, 138427, 138428, 138429, 138431,
	138432, 138434, 138435, 138436, 138438, 138440, 138445, 138446, 138447, 138448, 138449, 138451, 138453, 138454, 138456, 138458,
	138460, 138462, 138464, 138466, 138468, 138470, 138472, 138474, 138476, 138478, 138480, 138482, 138484, 138486, 138488, 138490,
	138491, 138492, 138493, 138494, 138495, 138496, 138497, 138502, 138507, 138512, 138517, 138520, 138523, 138526, 138529, 138532,
	138535, 138538, 138539, 138541, 138542, 138543, 138546, 138547, 138548, 138549, 138550, 138552, 138553, 138554, 138555, 138557,
	138559, 138563, 138565, 138567, 138568, 138571, 138574, 138575, 138576, 138577, 138578, 138579, 138584, 138588, 138592, 138594,
	138598, 138601, 138605, 138610, 138613, 138615, 138617, 138618, 138620, 138621, 138623, 138625, 138626, 138628, 138630, 138632,
	138633, 138634, 138637, 138638, 138639, 138640, 138642, 138644, 138645, 138647, 138648, 138649, 138651, 138653, 138654, 138656,
	138657, 138658, 138661, 138662, 138664, 138666, 138668, 138670, 138672, 138675, 138677, 138679, 138681, 138683, 138686, 138688,
	138690, 138696, 138699, 138701, 138702, 138704, 138706, 138709, 138710, 138712, 138715, 138717, 138719, 138721, 138723, 138725,
	138728, 138730, 138732, 138735, 138737, 138741, 138745, 138749, 138753, 138756, 138763, 138764, 138766, 138767, 138768, 138770,
	138772, 138773, 138775, 138778, 138781, 138784, 138785, 138789, 138791, 138795, 138799, 138801, 138802, 138803, 138805, 138806,
	138808, 138810, 138812, 138813, 138814, 138818, 138820, 138822, 138824, 138826, 138828, 138829, 138831, 138832, 138833, 138835,
	138836, 138838, 138840, 138843, 138845, 138847, 138849, 138850, 138854, 138856, 138861, 138866, 138871, 138876, 138881, 138882,
	138884, 138885, 138887, 138894, 138896, 138899, 138902, 138905, 138906, 138909, 138911, 138912, 138913, 138914, 138916, 138918,
	138920, 138923, 138930, 138941, 138948, 138955, 138958, 138961, 138965, 138966, 138971, 138976, 138977, 138979, 138984, 138989,
	138993, 138997, 138998, 138999, 139001, 139002, 139006, 139007, 139009, 139011, 139016, 139021, 139030, 139035, 139040, 139045,
	139047, 139053, 139059, 139063, 139067, 139072, 139073, 139075, 139076, 139077, 139080, 139081, 139082, 139083, 139084, 139086,
	139092, 139096, 139098, 139101, 139104, 139107, 139110, 139113, 139116, 139119, 139122, 139127, 139132, 139138, 139144, 139149,
	139154, 139157, 139164, 139166, 139172, 139178, 139182, 139185, 139188, 139190, 139192, 139195, 139196, 139197, 139198, 139202,
	139205, 139209, 139213, 139217, 139221, 139225, 139229, 139233, 139237, 139241, 139245, 139249, 139253, 139258, 139263, 139268,
	139273, 139278, 139283, 139288, 139293, 139298, 139303, 139308, 139313, 139315, 139321, 139327, 139328, 139332, 139334, 139335,
	139336, 139338, 139342, 139344, 139345, 139350, 139353, 139355, 139356, 139358, 139359, 139361, 139365, 139369, 139373, 139376,
	139379, 139384, 139387, 139390, 139392, 139395, 139397, 139401, 139403, 139405, 139408, 139412, 139416, 139419, 139422, 139425,
	139429, 139434, 139440, 139444, 139448, 139451, 139457, 139466, 139472, 139477, 139482, 139487, 139492, 139497, 139502, 139507,
	139512, 139517, 139522, 139527, 139532, 139534, 139536, 139539, 139542, 139543, 139545, 139550, 139555, 139559, 139561, 139563,
	139566, 139569, 139572, 139573, 139576, 139578, 139579, 139581, 139583, 139586, 139589, 139594, 139597, 139600, 139603, 139607,
	139609, 139610, 139612, 139615, 139618, 139620, 139622, 139625, 139628, 139629, 139631, 139633, 139635, 139637, 139639, 139640,
	139641, 139642, 139643, 139646, 139649, 139651, 139652, 139653, 139654, 139660, 139662, 139666, 139670, 139671, 139673, 139677,
	139681, 139683, 139685, 139686, 139690, 139693, 139696, 139699, 139702, 139705, 139708, 139711, 139714, 139717, 139720, 139723,
	139726, 139728, 139731, 139733, 139737, 139740, 139745, 139749, 139755, 139758, 139763, 139765, 139767, 139769, 139772, 139775,
	139776, 139778, 139783, 139788, 139793, 139801, 139809, 139819, 139823, 139827, 139829, 139834, 139838, 139840, 139847, 139851,
	139853, 139855, 139857, 139859, 139863, 139865, 139867, 139869, 139871, 139875, 139880, 139885, 139891, 139900, 139911, 139913,
	139915, 139917, 139919, 139921, 139923, 139928, 139932, 139937, 139939, 139941, 139943, 139945, 139947, 139949, 139952, 139956,
	139958, 139965, 139969, 139971, 139973, 139975, 139977, 139980, 139984, 139990, 139996, 140002, 140010, 140015, 140021, 140024,
	140027, 140030, 140033, 140036, 140040, 140044, 140049, 140053, 140056, 140062, 140068, 140074, 140079, 140085, 140087, 140091,
	140095, 140099, 140103, 140107, 140111, 140116, 140121, 140126, 140131, 140136, 140141, 140146, 140151, 140157, 140163, 140169,
	140175, 140179, 140183, 140187, 140191, 140196, 140201, 140206, 140211, 140215, 140222, 140226, 140233, 140235, 140237, 140239,
	140241, 140245, 140250, 140254, 140259, 140262, 140265, 140275, 140284, 140294, 140297, 140302, 140308, 140311, 140315, 140317,
	140320, 140321, 140322, 140324, 140326, 140330, 140337, 140338, 140339, 140341, 140342, 140343, 140345, 140346, 140348, 140349,
	140351, 140352, 140353, 140355, 140357, 140360, 140361, 140363, 140364, 140366, 140368, 140370, 140372, 140373, 140374, 140376,
	140378, 140380, 140382, 140383, 140384, 140385, 140388, 140391, 140393, 140397, 140401, 140402, 140405, 140407, 140410, 140416,
	140420, 140423, 140428, 140429, 140431, 140432, 140434, 140435, 140437, 140439, 140441, 140443, 140444, 140446, 140447, 140449,
	140450, 140451, 140452, 140454, 140455, 140457, 140459, 140463, 140465, 140468, 140470, 140472, 140475, 140477, 140479, 140481,
	140482, 140485, 140487, 140489, 140490, 140491, 140493, 140494, 140495, 140495, 140497, 140498, 140500, 140503, 140504, 140506,
	140507, 140509, 140511, 140516, 140520, 140525, 140527, 140531, 140533, 140535, 140535, 140536, 140539, 140541, 140543, 140544,
	140546, 140547, 140548, 140550, 140551, 140553, 140555, 140557, 140557, 140561, 140565, 140569, 140573, 140577, 140581, 140586,
	140593, 140598, 140605, 140609, 140615, 140621, 140625, 140630, 140635, 140640, 140647, 140654, 140658, 140662, 140666, 140670,
	140676, 140681, 140688, 140692, 140696, 140701, 140708, 140714, 140720, 140725, 140732, 140738, 140744, 140752, 140757, 140764,
	140772, 140776, 140781, 140786, 140791, 140797, 140803, 140811, 140817, 140823, 140831, 140835, 140841, 140847, 140853, 140857,
	140863, 140867, 140873, 140877, 140881, 140887, 140891, 140896, 140900, 140906, 140911, 140915, 140921, 140927, 140931, 140935,
	140939, 140943, 140947, 140951, 140955, 140959, 140963, 140968, 140974, 140978, 140982, 140987, 140991, 140995, 140999, 141004,
	141008, 141013, 141017, 141022, 141026, 141032, 141040, 141044, 141048, 141052, 141056, 141062, 141066, 141070, 141074, 141080,
	141086, 141092, 141098, 141102, 141108, 141114, 141118, 141122, 141126, 141132, 141136, 141141, 141146, 141146, 141153, 141160,
	141167, 141174, 141178, 141182, 141185, 141188, 141192, 141196, 141202, 141204, 141207, 141211, 141214, 141217, 141220, 141223,
	141227, 141231, 141238, 141244, 141246, 141249, 141253, 141257, 141264, 141270, 141272, 141275, 141279, 141283, 141289, 141292,
	141295, 141298, 141301, 141305, 141309, 141313, 141315, 141317, 141319, 141321, 141323, 141326, 141329, 141333, 141337, 141341,
	141345, 141350, 141355, 141359, 141363, 141367, 141371, 141376, 141381, 141385, 141389, 141393, 141397, 141402, 141407, 141412,
	141416, 141421, 141426, 141431, 141435, 141440, 141446, 141451, 141456, 141461, 141466, 141470, 141475, 141480, 141486, 141491,
	141496, 141501, 141506, 141508, 141511, 141513, 141516, 141516, 141519, 141522, 141525, 141528, 141531, 141534, 141537, 141540,
	141543, 141546, 141549, 141552, 141552, 141555, 141555, 141561, 141567, 141573, 141579, 141585, 141591, 141597, 141603, 141609,
	141615, 141621, 141627, 141627, 141633, 141639, 141645, 141651, 141656, 141661, 141666, 141671, 141677, 141683, 141689, 141695,
	141702, 141709, 141716, 141723, 141731, 141739, 141747, 141755, 141763, 141771, 141779, 141787, 141795, 141803, 141811, 141819,
	141827, 141835, 141843, 141851, 141860, 141869, 141878, 141887, 141892, 141897, 141902, 141907, 141910, 141913, 141916, 141919,
	141922, 141925, 141928, 141931, 141935, 141939, 141943, 141947, 141950, 141953, 141956, 141959, 141959, 141964, 141969, 141974,
	141979, 141985, 141991, 141997, 142003, 142009, 142015, 142015, 142022, 142029, 142036, 142043, 142051, 142059, 142067, 142075,
	142081, 142087, 142093, 142099, 142106, 142113, 142120, 142127, 142134, 142141, 142148, 142155, 142163, 142171, 142179, 142187,
	142194, 142201, 142208, 142215, 142223, 142231, 142239, 142247, 142255, 142263, 142271, 142279, 142288, 142297, 142306, 142315,
	142315, 142318, 142321, 142324, 142327, 142333, 142339, 142345, 142351, 142356, 142361, 142366, 142371, 142376, 142382, 142388,
	142394, 142400, 142405, 142410, 142415, 142421, 142427, 142433, 142439, 142446, 142453, 142460, 142467, 142472, 142478, 142478,
	142484, 142491, 142491, 142497, 142503, 142506, 142512, 142518, 142524, 142529, 142532, 142535, 142539, 142544, 142550, 142552,
	142554, 142556, 142558, 142562, 142566, 142569, 142571, 142573, 142578, 142580, 142582, 142586, 142589, 142593, 142597, 142601,
	142602, 142609, 142614, 142618, 142620, 142622, 142627, 142629, 142631, 142633, 142635, 142640, 142645, 142654, 142660, 142666,
	142675, 142680, 142685, 142687, 142690, 142693, 142694, 142695, 142698, 142700, 142701, 142704, 142705, 142706, 142708, 142709,
	142711, 142712, 142714, 142716, 142719, 142721, 142723, 142724, 142726, 142727, 142730, 142733, 142736, 142738, 142741, 142743,
	142747, 142748, 142750, 142751, 142752, 142753, 142754, 142755, 142756, 142758, 142760, 142764, 142766, 142767, 142770, 142771,
	142772, 142773, 142774, 142776, 142778, 142779, 142782, 142785, 142786, 142787, 142788, 142789, 142792, 142793, 142795, 142797,
	142798, 142800, 142801, 142809, 142811, 142815, 142822, 142829, 142831, 142833, 142834, 142836, 142840, 142844, 142845, 142847,
	142848, 142850, 142852, 142853, 142855, 142856, 142857, 142859, 142860, 142861, 142862, 142863, 142864, 142866, 142867, 142868,
	142869, 142870, 142871, 142872, 142873, 142875, 142877, 142878, 142879, 142882, 142883, 142884, 142885, 142886, 142887, 142888,
	142889, 142890, 142891, 142892, 142893, 142894, 142895, 142896, 142897, 142898, 142899, 142900, 142901, 142902, 142903, 142904,
	142905, 142907, 142909, 142913, 142917, 142920, 142924, 142925, 142926, 142927, 142928, 142929, 142930, 142932, 142936, 142938,
	142940, 142942, 142944, 142946, 142947, 142949, 142951, 142952, 142953, 142954, 142955, 142956, 142958, 142960, 142962, 142963,
	142965, 142967, 142969, 142972, 142973, 142974, 142976, 142978, 142981, 142985, 142987, 142991, 142992, 142993, 142994, 142995,
	142996, 142997, 142998, 142999, 143001, 143003, 143004, 143005, 143006, 143007, 143010, 143011, 143014, 143016, 143018, 143021,
	143022, 143023, 143025, 143026, 143027, 143028, 143029, 143031, 143034, 143037, 143039, 143041, 143042, 143043, 143046, 143049,
	143050, 143051, 143053, 143056, 143059, 143062, 143065, 143068, 143071, 143079, 143087, 143095, 143101, 143107, 143113, 143119,
	143125, 143131, 143137, 143143, 143149, 143155, 143161, 143167, 143173, 143179, 143185, 143191, 143197, 143203, 143213, 143223,
	143233, 143237, 143241, 143245, 143249, 143253, 143257, 143261, 143265, 143269, 143273, 143277, 143281, 143285, 143289, 143293,
	143297, 143301, 143305, 143315, 143325, 143335, 143343, 143351, 143359, 143367, 143375, 143383, 143391, 143399, 143407, 143415,
	143423, 143431, 143439, 143447, 143455, 143463, 143471, 143479, 143487, 143495, 143503, 143506, 143509, 143512, 143518, 143524,
	143530, 143535, 143540, 143545, 143550, 143555, 143560, 143560, 143563, 143566, 143569, 143572, 143575, 143578, 143581, 143584,
	143587, 143590, 143593, 143596, 143599, 143602, 143602, 143604, 143608, 143609, 143610, 143612, 143612, 143615, 143617, 143618,
	143621, 143622, 143622, 143625, 143626, 143627, 143628, 143630, 143631, 143633, 143633, 143635, 143636, 143637, 143638, 143640,
	143641, 143643, 143644, 143646, 143647, 143649, 143650, 143651, 143652, 143653, 143654, 143655, 143657, 143658, 143659, 143661,
	143662, 143663, 143664, 143665, 143667, 143669, 143671, 143672, 143672, 143673, 143674, 143675, 143676, 143678, 143679, 143680,
	143681, 143682, 143684, 143687, 143687, 143689, 143690, 143692, 143694, 143696, 143699, 143699, 143700, 143702, 143703, 143704,
	143705, 143706, 143707, 143709, 143710, 143711, 143711, 143713, 143715, 143723, 143727, 143731, 143734, 143736, 143737, 143737,
	143744, 143746, 143748, 143751, 143754, 143759, 143761, 143761, 143765, 143769, 143773, 143777, 143781, 143785, 143789, 143793,
	143797, 143801, 143805, 143809, 143813, 143817, 143821, 143825, 143829, 143833, 143837, 143841, 143845, 143849, 143853, 143857,
	143861, 143865, 143869, 143873, 143877, 143881, 143885, 143889, 143893, 143897, 143901, 143905, 143909, 143913, 143917, 143921,
	143925, 143929, 143933, 143937, 143941, 143945, 143949, 143953, 143957, 143961, 143965, 143969, 143973, 143977, 143981, 143985,
	143989, 143993, 143997, 144001, 144011, 144021, 144031, 144041, 144050, 144060, 144070, 144080, 144090, 144099, 144110, 144120,
	144130, 144140, 144150, 144159, 144169, 144179, 144189, 144199, 144208, 144219, 144229, 144239, 144249, 144259, 144268, 144278,
	144288, 144298, 144308, 144317, 144328, 144338, 144348, 144358, 144368, 144377, 144387, 144397, 144407, 144417, 144426, 144437,
	144446, 144455, 144464, 144473, 144478, 144483, 144488, 144493, 144499, 144505, 144511, 144517, 144523, 144529, 144535, 144541,
	144547, 144553, 144559, 144565, 144571, 144577, 144583, 144589, 144595, 144601, 144605, 144609, 144613, 144617, 144621, 144625,
	144629, 144633, 144637, 144641, 144645, 144649, 144653, 144657, 144660, 144669, 144678, 144678, 144687, 144690, 144694, 144697,
	144703, 144709, 144715, 144721, 144726, 144731, 144736, 144741, 144750, 144759, 144768, 144777, 144789, 144801, 144813, 144825,
	144840, 144855, 144870, 144885, 144900, 144915, 144920, 144927, 144931, 144934, 144938, 144942, 144948, 144957, 144966, 144973,
	144980, 144983, 144986, 144989, 144993, 144996, 145003, 145006, 145012, 145018, 145024, 145030, 145034, 145036, 145041, 145045,
	145049, 145053, 145058, 145058, 145061, 145064, 145067, 145070, 145073, 145076, 145079, 145082, 145085, 145088, 145088, 145093,
	145098, 145103, 145108, 145113, 145118, 145123, 145128, 145133, 145138, 145143, 145148, 145153, 145158, 145163, 145168, 145173,
	145178, 145183, 145188, 145193, 145198, 145203, 145208, 145213, 145218, 145223, 145228, 145233, 145238, 145243, 145248, 145253,
	145258, 145263, 145268, 145273, 145278, 145283, 145288, 145293, 145298, 145303, 145308, 145313, 145318, 145323, 145328, 145333,
	145338, 145343, 145348, 145353, 145358, 145363, 145368, 145373, 145378, 145383, 145388, 145393, 145398, 145403, 145408, 145413,
	145418, 145423, 145428, 145433, 145438, 145443, 145448, 145453, 145458, 145463, 145468, 145473, 145478, 145483, 145488, 145493,
	145498, 145503, 145508, 145513, 145518, 145523, 145528, 145533, 145538, 145543, 145548, 145553, 145558, 145563, 145568, 145573,
	145578, 145583, 145588, 145593, 145598, 145603, 145608, 145613, 145618, 145623, 145628, 145633, 145638, 145643, 145648, 145653,
	145658, 145663, 145668, 145673, 145678, 145683, 145688, 145693, 145698, 145703, 145708, 145713, 145718, 145723, 145728, 145733,
	145738, 145743, 145748, 145753, 145758, 145763, 145768, 145773, 145778, 145783, 145788, 145793, 145798, 145803, 145808, 145813,
	145818, 145823, 145828, 145833, 145838, 145843, 145848, 145853, 145858, 145863, 145868, 145873, 145878, 145883, 145888, 145893,
	145898, 145903, 145908, 145913, 145918, 145923, 145928, 145933, 145938, 145943, 145948, 145953, 145958, 145963, 145968, 145973,
	145978, 145983, 145988, 145993, 145998, 146003, 146008, 146013, 146018, 146023, 146028, 146033, 146038, 146043, 146048, 146053,
	146058, 146063, 146068, 146073, 146078, 146083, 146088, 146093, 146098, 146103, 146108, 146113, 146118, 146123, 146128, 146133,
	146138, 146143, 146148, 146153, 146158, 146163, 146168, 146173, 146178, 146183, 146188, 146193, 146198, 146203, 146208, 146213,
	146218, 146223, 146228, 146233, 146238, 146243, 146248, 146253, 146258, 146263, 146268, 146273, 146278, 146283, 146288, 146293,
	146298, 146303, 146308, 146313, 146318, 146323, 146328, 146333, 146338, 146343, 146348, 146353, 146358, 146363, 146368, 146373,
	146378, 146383, 146388, 146393, 146398, 146403, 146408, 146413, 146418, 146423, 146428, 146433, 146438, 146443, 146448, 146453,
	146458, 146463, 146468, 146473, 146478, 146483, 146488, 146493, 146498, 146503, 146508, 146513, 146518, 146523, 146528, 146533,
	146538, 146543, 146548, 146553, 146558, 146563, 146568, 146573, 146578, 146583, 146588, 146593, 146598, 146603, 146608, 146613,
	146618, 146623, 146628, 146633, 146638, 146643, 146648, 146653, 146658, 146663, 146668, 146673, 146678, 146683, 146688, 146693,
	146698, 146703, 146708, 146713, 146718, 146723, 146728, 146733, 146738, 146743, 146748, 146753, 146758, 146763, 146768, 146773,
	146778, 146783, 146788, 146793, 146798, 146803, 146808, 146813, 146818, 146823, 146828, 146833, 146838, 146843, 146848, 146853,
	146858, 146863, 146868, 146873, 146878, 146883, 146888, 146893, 146898, 146903, 146908, 146913, 146918, 146923, 146928, 146933,
	146938, 146943, 146948, 146953, 146958, 146963, 146968, 146973, 146978, 146983, 146988, 146993, 146998, 147003, 147008, 147013,
	147018, 147023, 147028, 147033, 147038, 147043, 147048, 147053, 147058, 147063, 147068, 147073, 147078, 147083, 147088, 147093,
	147098, 147103, 147108, 147113, 147118, 147123, 147128, 147133, 147138, 147143, 147148, 147153, 147158, 147163, 147168, 147173,
	147178, 147183, 147188, 147193, 147198, 147203, 147208, 147213, 147218, 147223, 147228, 147233, 147238, 147243, 147248, 147253,
	147258, 147263, 147268, 147273, 147278, 147283, 147288, 147293, 147298, 147303, 147308, 147313, 147318, 147323, 147328, 147333,
	147338, 147343, 147348, 147353, 147358, 147363, 147368, 147373, 147378, 147383, 147388, 147393, 147398, 147403, 147408, 147413,
	147418, 147423, 147428, 147433, 147438, 147443, 147448, 147453, 147458, 147463, 147468, 147473, 147478, 147483, 147488, 147493,
	147498, 147503, 147508, 147513, 147518, 147523, 147528, 147533, 147538, 147543, 147548, 147553, 147558, 147563, 147568, 147573,
	147578, 147583, 147588, 147593, 147598, 147603, 147608, 147613, 147618, 147623, 147628, 147633, 147638, 147643, 147648, 147653,
	147658, 147663, 147668, 147673, 147678, 147683, 147688, 147693, 147698, 147703, 147708, 147713, 147718, 147723, 147728, 147733,
	147738, 147743, 147748, 147753, 147758, 147763, 147768, 147773, 147778, 147783, 147788, 147793, 147798, 147798, 147800, 147800,
	147802, 147805, 147808, 147811, 147814, 147817, 147819, 147821, 147824, 147827, 147829, 147832, 147834, 147838, 147841, 147843,
	147846, 147849, 147852, 147855, 147858, 147861, 147864, 147867, 147870, 147873, 147875, 147877, 147882, 147885, 147890, 147893,
	147896, 147901, 147906, 147911, 147916, 147921, 147926, 147931, 147936, 147941, 147946, 147951, 147956, 147961, 147966, 147971,
	147976, 147981, 147986, 147991, 147996, 148001, 148006, 148011, 148016, 148021, 148026, 148030, 148033, 148037, 148040, 148043,
	148046, 148051, 148056, 148061, 148066, 148071, 148076, 148081, 148086, 148091, 148096, 148101, 148106, 148111, 148116, 148121,
	148126, 148131, 148136, 148141, 148146, 148151, 148156, 148161, 148166, 148171, 148176, 148180, 148183, 148187, 148189, 148191,
	148191, 148195, 148199, 148203, 148207, 148211, 148215, 148219, 148223, 148227, 148231, 148235, 148239, 148243, 148247, 148251,
	148255, 148259, 148263, 148267, 148271, 148275, 148279, 148283, 148287, 148291, 148295, 148299, 148303, 148307, 148311, 148315,
	148319, 148323, 148327, 148331, 148335, 148339, 148343, 148347, 148351, 148355, 148359, 148363, 148367, 148371, 148375, 148379,
	148383, 148387, 148391, 148395, 148399, 148403, 148407, 148411, 148415, 148419, 148423, 148427, 148431, 148435, 148439, 148443,
	148447, 148451, 148455, 148459, 148463, 148467, 148471, 148475, 148479, 148483, 148487, 148491, 148495, 148499, 148503, 148507,
	148511, 148515, 148519, 148523, 148527, 148531, 148535, 148539, 148543, 148547, 148551, 148555, 148559, 148563, 148567, 148571,
	148575, 148579, 148583, 148587, 148591, 148595, 148599, 148603, 148607, 148611, 148615, 148619, 148623, 148627, 148631, 148635,
	148639, 148643, 148647, 148651, 148655, 148659, 148663, 148667, 148671, 148675, 148679, 148683, 148687, 148691, 148695, 148699,
	148703, 148707, 148711, 148715, 148719, 148723, 148727, 148731, 148735, 148739, 148743, 148747, 148751, 148755, 148759, 148763,
	148767, 148771, 148775, 148779, 148783, 148787, 148791, 148795, 148799, 148803, 148807, 148811, 148815, 148819, 148823, 148827,
	148831, 148835, 148839, 148843, 148847, 148851, 148855, 148859, 148863, 148867, 148871, 148875, 148879, 148883, 148887, 148891,
	148895, 148899, 148903, 148907, 148911, 148915, 148919, 148923, 148927, 148931, 148935, 148939, 148943, 148947, 148951, 148955,
	148959, 148963, 148967, 148971, 148975, 148979, 148983, 148987, 148991, 148995, 148999, 149003, 149007, 149011, 149015, 149019,
	149023, 149027, 149031, 149035, 149039, 149043, 149047, 149051, 149055, 149059, 149063, 149067, 149071, 149075, 149079, 149083,
	149087, 149091, 149095, 149099, 149103, 149107, 149111, 149115, 149119, 149123, 149127, 149131, 149135, 149139, 149143, 149147,
	149151,
}

// wordIndexes is the shared store of dictionary index sequences.
var wordIndexes = []uint16{
	737, 672, 56, 610, 56, 41, 6, 1298, 6, 1652, 6, 1184, 1117, 48, 471, 45,
	471, 467, 120, 6, 383, 850, 2, 661, 426, 322, 707, 23, 254, 23, 67, 23,
	70, 23, 79, 23, 93, 23, 100, 23, 139, 23, 157, 23, 140, 23, 160, 577,
	1000, 384, 2, 178, 6, 545, 6, 376, 2, 178, 6, 629, 56, 1549, 653, 12,
	10, 5, 24, 12, 10, 5, 71, 12, 10, 5, 104, 12, 10, 5, 98, 12,
	10, 5, 51, 12, 10, 5, 176, 12, 10, 5, 220, 12, 10, 5, 235, 12,
	10, 5, 73, 12, 10, 5, 278, 12, 10, 5, 227, 12, 10, 5, 136, 12,
	10, 5, 205, 12, 10, 5, 151, 12, 10, 5, 68, 12, 10, 5, 249, 12,
	10, 5, 389, 12, 10, 5, 122, 12, 10, 5, 121, 12, 10, 5, 221, 12,
	10, 5, 60, 12, 10, 5, 229, 12, 10, 5, 290, 12, 10, 5, 268, 12,
	10, 5, 218, 12, 10, 5, 250, 48, 58, 161, 747, 707, 45, 58, 161, 294,
	344, 145, 245, 315, 344, 12, 7, 5, 24, 12, 7, 5, 71, 12, 7, 5,
	104, 12, 7, 5, 98, 12, 7, 5, 51, 12, 7, 5, 176, 12, 7, 5,
	220, 12, 7, 5, 235, 12, 7, 5, 73, 12, 7, 5, 278, 12, 7, 5,
	227, 12, 7, 5, 136, 12, 7, 5, 205, 12, 7, 5, 151, 12, 7, 5,
	68, 12, 7, 5, 249, 12, 7, 5, 389, 12, 7, 5, 122, 12, 7, 5,
	121, 12, 7, 5, 221, 12, 7, 5, 60, 12, 7, 5, 229, 12, 7, 5,
	290, 12, 7, 5, 268, 12, 7, 5, 218, 12, 7, 5, 250, 48, 544, 161,
	86, 245, 45, 544, 161, 211, 433, 2, 2125, 737, 359, 672, 56, 3159, 6, 1939,
	6, 1020, 6, 1711, 6, 1383, 146, 532, 6, 310, 3186, 6, 3318, 3774, 570, 48,
	2, 142, 55, 293, 610, 56, 362, 6, 926, 850, 10036, 6, 320, 1782, 6, 120,
	2, 661, 6, 651, 70, 651, 79, 230, 344, 8843, 6, 3823, 6, 94, 77, 615,
	651, 67, 8732, 3774, 570, 45, 2, 142, 55, 293, 610, 56, 794, 234, 67, 516,
	794, 234, 67, 133, 794, 234, 79, 890, 359, 629, 56, 12, 10, 5, 24, 8,
	315, 12, 10, 5, 24, 8, 230, 12, 10, 5, 24, 8, 294, 12, 10, 5,
	24, 8, 211, 12, 10, 5, 24, 8, 310, 12, 10, 5, 24, 8, 190, 53,
	12, 10, 5, 543, 12, 10, 5, 104, 8, 615, 12, 10, 5, 51, 8, 315,
	12, 10, 5, 51, 8, 230, 12, 10, 5, 51, 8, 294, 12, 10, 5, 51,
	8, 310, 12, 10, 5, 73, 8, 315, 12, 10, 5, 73, 8, 230, 12, 10,
	5, 73, 8, 294, 12, 10, 5, 73, 8, 310, 12, 10, 5, 1208, 12, 10,
	5, 151, 8, 211, 12, 10, 5, 68, 8, 315, 12, 10, 5, 68, 8, 230,
	12, 10, 5, 68, 8, 294, 12, 10, 5, 68, 8, 211, 12, 10, 5, 68,
	8, 310, 953, 6, 12, 10, 5, 68, 8, 89, 12, 10, 5, 60, 8, 315,
	12, 10, 5, 60, 8, 230, 12, 10, 5, 60, 8, 294, 12, 10, 5, 60,
	8, 310, 12, 10, 5, 218, 8, 230, 12, 10, 5, 1265, 12, 7, 5, 1338,
	121, 12, 7, 5, 24, 8, 315, 12, 7, 5, 24, 8, 230, 12, 7, 5,
	24, 8, 294, 12, 7, 5, 24, 8, 211, 12, 7, 5, 24, 8, 310, 12,
	7, 5, 24, 8, 190, 53, 12, 7, 5, 543, 12, 7, 5, 104, 8, 615,
	12, 7, 5, 51, 8, 315, 12, 7, 5, 51, 8, 230, 12, 7, 5, 51,
	8, 294, 12, 7, 5, 51, 8, 310, 12, 7, 5, 73, 8, 315, 12, 7,
	5, 73, 8, 230, 12, 7, 5, 73, 8, 294, 12, 7, 5, 73, 8, 310,
	12, 7, 5, 1208, 12, 7, 5, 151, 8, 211, 12, 7, 5, 68, 8, 315,
	12, 7, 5, 68, 8, 230, 12, 7, 5, 68, 8, 294, 12, 7, 5, 68,
	8, 211, 12, 7, 5, 68, 8, 310, 1202, 6, 12, 7, 5, 68, 8, 89,
	12, 7, 5, 60, 8, 315, 12, 7, 5, 60, 8, 230, 12, 7, 5, 60,
	8, 294, 12, 7, 5, 60, 8, 310, 12, 7, 5, 218, 8, 230, 12, 7,
	5, 1265, 12, 7, 5, 218, 8, 310, 12, 10, 5, 24, 8, 320, 12, 7,
	5, 24, 8, 320, 12, 10, 5, 24, 8, 393, 12, 7, 5, 24, 8, 393,
	12, 10, 5, 24, 8, 888, 12, 7, 5, 24, 8, 888, 12, 10, 5, 104,
	8, 230, 12, 7, 5, 104, 8, 230, 12, 10, 5, 104, 8, 294, 12, 7,
	5, 104, 8, 294, 12, 10, 5, 104, 8, 77, 53, 12, 7, 5, 104, 8,
	77, 53, 12, 10, 5, 104, 8, 477, 12, 7, 5, 104, 8, 477, 12, 10,
	5, 98, 8, 477, 12, 7, 5, 98, 8, 477, 12, 10, 5, 98, 8, 89,
	12, 7, 5, 98, 8, 89, 12, 10, 5, 51, 8, 320, 12, 7, 5, 51,
	8, 320, 12, 10, 5, 51, 8, 393, 12, 7, 5, 51, 8, 393, 12, 10,
	5, 51, 8, 77, 53, 12, 7, 5, 51, 8, 77, 53, 12, 10, 5, 51,
	8, 888, 12, 7, 5, 51, 8, 888, 12, 10, 5, 51, 8, 477, 12, 7,
	5, 51, 8, 477, 12, 10, 5, 220, 8, 294, 12, 7, 5, 220, 8, 294,
	12, 10, 5, 220, 8, 393, 12, 7, 5, 220, 8, 393, 12, 10, 5, 220,
	8, 77, 53, 12, 7, 5, 220, 8, 77, 53, 12, 10, 5, 220, 8, 615,
	12, 7, 5, 220, 8, 615, 12, 10, 5, 235, 8, 294, 12, 7, 5, 235,
	8, 294, 12, 10, 5, 235, 8, 89, 12, 7, 5, 235, 8, 89, 12, 10,
	5, 73, 8, 211, 12, 7, 5, 73, 8, 211, 12, 10, 5, 73, 8, 320,
	12, 7, 5, 73, 8, 320, 12, 10, 5, 73, 8, 393, 12, 7, 5, 73,
	8, 393, 12, 10, 5, 73, 8, 888, 12, 7, 5, 73, 8, 888, 12, 10,
	5, 73, 8, 77, 53, 12, 7, 5, 743, 73, 12, 10, 44, 3441, 12, 7,
	44, 3441, 12, 10, 5, 278, 8, 294, 12, 7, 5, 278, 8, 294, 12, 10,
	5, 227, 8, 615, 12, 7, 5, 227, 8, 615, 12, 7, 5, 8266, 12, 10,
	5, 136, 8, 230, 12, 7, 5, 136, 8, 230, 12, 10, 5, 136, 8, 615,
	12, 7, 5, 136, 8, 615, 12, 10, 5, 136, 8, 477, 12, 7, 5, 136,
	8, 477, 12, 10, 5, 136, 8, 94, 77, 12, 7, 5, 136, 8, 94, 77,
	12, 10, 5, 136, 8, 89, 12, 7, 5, 136, 8, 89, 12, 10, 5, 151,
	8, 230, 12, 7, 5, 151, 8, 230, 12, 10, 5, 151, 8, 615, 12, 7,
	5, 151, 8, 615, 12, 10, 5, 151, 8, 477, 12, 7, 5, 151, 8, 477,
	12, 7, 5, 151, 9804, 974, 1117, 12, 10, 5, 980, 12, 7, 5, 980, 12,
	10, 5, 68, 8, 320, 12, 7, 5, 68, 8, 320, 12, 10, 5, 68, 8,
	393, 12, 7, 5, 68, 8, 393, 12, 10, 5, 68, 8, 55, 230, 12, 7,
	5, 68, 8, 55, 230, 12, 10, 44, 485, 12, 7, 44, 485, 12, 10, 5,
	122, 8, 230, 12, 7, 5, 122, 8, 230, 12, 10, 5, 122, 8, 615, 12,
	7, 5, 122, 8, 615, 12, 10, 5, 122, 8, 477, 12, 7, 5, 122, 8,
	477, 12, 10, 5, 121, 8, 230, 12, 7, 5, 121, 8, 230, 12, 10, 5,
	121, 8, 294, 12, 7, 5, 121, 8, 294, 12, 10, 5, 121, 8, 615, 12,
	7, 5, 121, 8, 615, 12, 10, 5, 121, 8, 477, 12, 7, 5, 121, 8,
	477, 12, 10, 5, 221, 8, 615, 12, 7, 5, 221, 8, 615, 12, 10, 5,
	221, 8, 477, 12, 7, 5, 221, 8, 477, 12, 10, 5, 221, 8, 89, 12,
	7, 5, 221, 8, 89, 12, 10, 5, 60, 8, 211, 12, 7, 5, 60, 8,
	211, 12, 10, 5, 60, 8, 320, 12, 7, 5, 60, 8, 320, 12, 10, 5,
	60, 8, 393, 12, 7, 5, 60, 8, 393, 12, 10, 5, 60, 8, 190, 53,
	12, 7, 5, 60, 8, 190, 53, 12, 10, 5, 60, 8, 55, 230, 12, 7,
	5, 60, 8, 55, 230, 12, 10, 5, 60, 8, 888, 12, 7, 5, 60, 8,
	888, 12, 10, 5, 290, 8, 294, 12, 7, 5, 290, 8, 294, 12, 10, 5,
	218, 8, 294, 12, 7, 5, 218, 8, 294, 12, 10, 5, 218, 8, 310, 12,
	10, 5, 250, 8, 230, 12, 7, 5, 250, 8, 230, 12, 10, 5, 250, 8,
	77, 53, 12, 7, 5, 250, 8, 77, 53, 12, 10, 5, 250, 8, 477, 12,
	7, 5, 250, 8, 477, 12, 7, 5, 187, 121, 12, 7, 5, 71, 8, 89,
	12, 10, 5, 71, 8, 99, 12, 10, 5, 71, 8, 2004, 12, 7, 5, 71,
	8, 2004, 12, 10, 5, 110, 139, 12, 7, 5, 110, 139, 12, 10, 5, 189,
	68, 12, 10, 5, 104, 8, 99, 12, 7, 5, 104, 8, 99, 12, 10, 5,
	1526, 98, 12, 10, 5, 98, 8, 99, 12, 10, 5, 98, 8, 2004, 12, 7,
	5, 98, 8, 2004, 12, 7, 5, 191, 760, 12, 10, 5, 261, 51, 12, 10,
	5, 998, 12, 10, 5, 189, 51, 12, 10, 5, 176, 8, 99, 12, 7, 5,
	176, 8, 99, 12, 10, 5, 220, 8, 99, 12, 10, 5, 727, 12, 7, 5,
	1839, 12, 10, 5, 415, 12, 10, 5, 73, 8, 89, 12, 10, 5, 227, 8,
	99, 12, 7, 5, 227, 8, 99, 12, 7, 5, 136, 8, 146, 12, 7, 5,
	8365, 8, 89, 12, 10, 5, 191, 205, 12, 10, 5, 151, 8, 48, 99, 12,
	7, 5, 151, 8, 187, 45, 764, 12, 10, 5, 68, 8, 94, 211, 12, 10,
	5, 68, 8, 562, 12, 7, 5, 68, 8, 562, 12, 10, 5, 1641, 12, 7,
	5, 1641, 12, 10, 5, 249, 8, 99, 12, 7, 5, 249, 8, 99, 12, 5,
	1714, 12, 10, 5, 110, 70, 12, 7, 5, 110, 70, 12, 10, 5, 785, 12,
	5, 261, 785, 658, 12, 7, 5, 221, 8, 626, 99, 12, 10, 5, 221, 8,
	99, 12, 7, 5, 221, 8, 99, 12, 10, 5, 221, 8, 499, 99, 12, 10,
	5, 60, 8, 562, 12, 7, 5, 60, 8, 562, 12, 10, 5, 456, 12, 10,
	5, 229, 8, 99, 12, 10, 5, 218, 8, 99, 12, 7, 5, 218, 8, 99,
	12, 10, 5, 250, 8, 89, 12, 7, 5, 250, 8, 89, 12, 10, 5, 981,
	12, 10, 5, 981, 261, 12, 7, 5, 981, 261, 12, 7, 5, 981, 8, 323,
	12, 5, 70, 8, 89, 12, 10, 5, 110, 100, 12, 7, 5, 110, 100, 12,
	5, 359, 552, 322, 8, 89, 12, 5, 2028, 12, 5, 2183, 1018, 12, 5, 3535,
	1018, 12, 5, 3039, 1018, 12, 5, 499, 1018, 12, 10, 5, 1076, 8, 477, 12,
	10, 5, 98, 8, 7, 5, 250, 8, 477, 12, 7, 5, 1076, 8, 477, 12,
	10, 5, 3563, 12, 10, 5, 136, 8, 7, 5, 278, 12, 7, 5, 3563, 12,
	10, 5, 3719, 12, 10, 5, 151, 8, 7, 5, 278, 12, 7, 5, 3719, 12,
	10, 5, 24, 8, 477, 12, 7, 5, 24, 8, 477, 12, 10, 5, 73, 8,
	477, 12, 7, 5, 73, 8, 477, 12, 10, 5, 68, 8, 477, 12, 7, 5,
	68, 8, 477, 12, 10, 5, 60, 8, 477, 12, 7, 5, 60, 8, 477, 12,
	10, 5, 60, 8, 310, 34, 320, 12, 7, 5, 60, 8, 310, 34, 320, 12,
	10, 5, 60, 8, 310, 34, 230, 12, 7, 5, 60, 8, 310, 34, 230, 12,
	10, 5, 60, 8, 310, 34, 477, 12, 7, 5, 60, 8, 310, 34, 477, 12,
	10, 5, 60, 8, 310, 34, 315, 12, 7, 5, 60, 8, 310, 34, 315, 12,
	7, 5, 191, 51, 12, 10, 5, 24, 8, 310, 34, 320, 12, 7, 5, 24,
	8, 310, 34, 320, 12, 10, 5, 24, 8, 77, 53, 34, 320, 12, 7, 5,
	24, 8, 77, 53, 34, 320, 12, 10, 5, 543, 8, 320, 12, 7, 5, 543,
	8, 320, 12, 10, 5, 220, 8, 89, 12, 7, 5, 220, 8, 89, 12, 10,
	5, 220, 8, 477, 12, 7, 5, 220, 8, 477, 12, 10, 5, 227, 8, 477,
	12, 7, 5, 227, 8, 477, 12, 10, 5, 68, 8, 888, 12, 7, 5, 68,
	8, 888, 12, 10, 5, 68, 8, 888, 34, 320, 12, 7, 5, 68, 8, 888,
	34, 320, 12, 10, 5, 981, 8, 477, 12, 7, 5, 981, 8, 477, 12, 7,
	5, 278, 8, 477, 12, 10, 5, 1076, 12, 10, 5, 98, 8, 7, 5, 250,
	12, 7, 5, 1076, 12, 10, 5, 220, 8, 230, 12, 7, 5, 220, 8, 230,
	12, 10, 5, 3429, 12, 10, 5, 2028, 12, 10, 5, 151, 8, 315, 12, 7,
	5, 151, 8, 315, 12, 10, 5, 24, 8, 190, 53, 34, 230, 12, 7, 5,
	24, 8, 190, 53, 34, 230, 12, 10, 5, 543, 8, 230, 12, 7, 5, 543,
	8, 230, 12, 10, 5, 68, 8, 89, 34, 230, 12, 7, 5, 68, 8, 89,
	34, 230, 12, 10, 5, 24, 8, 55, 315, 12, 7, 5, 24, 8, 55, 315,
	12, 10, 5, 24, 8, 359, 393, 12, 7, 5, 24, 8, 359, 393, 12, 10,
	5, 51, 8, 55, 315, 12, 7, 5, 51, 8, 55, 315, 12, 10, 5, 51,
	8, 359, 393, 12, 7, 5, 51, 8, 359, 393, 12, 10, 5, 73, 8, 55,
	315, 12, 7, 5, 73, 8, 55, 315, 12, 10, 5, 73, 8, 359, 393, 12,
	7, 5, 73, 8, 359, 393, 12, 10, 5, 68, 8, 55, 315, 12, 7, 5,
	68, 8, 55, 315, 12, 10, 5, 68, 8, 359, 393, 12, 7, 5, 68, 8,
	359, 393, 12, 10, 5, 122, 8, 55, 315, 12, 7, 5, 122, 8, 55, 315,
	12, 10, 5, 122, 8, 359, 393, 12, 7, 5, 122, 8, 359, 393, 12, 10,
	5, 60, 8, 55, 315, 12, 7, 5, 60, 8, 55, 315, 12, 10, 5, 60,
	8, 359, 393, 12, 7, 5, 60, 8, 359, 393, 12, 10, 5, 121, 8, 383,
	76, 12, 7, 5, 121, 8, 383, 76, 12, 10, 5, 221, 8, 383, 76, 12,
	7, 5, 221, 8, 383, 76, 12, 10, 5, 4208, 12, 7, 5, 4208, 12, 10,
	5, 235, 8, 477, 12, 7, 5, 235, 8, 477, 12, 10, 5, 151, 8, 187,
	45, 764, 12, 7, 5, 98, 8, 724, 12, 10, 5, 1240, 12, 7, 5, 1240,
	12, 10, 5, 250, 8, 99, 12, 7, 5, 250, 8, 99, 12, 10, 5, 24,
	8, 77, 53, 12, 7, 5, 24, 8, 77, 53, 12, 10, 5, 51, 8, 615,
	12, 7, 5, 51, 8, 615, 12, 10, 5, 68, 8, 310, 34, 320, 12, 7,
	5, 68, 8, 310, 34, 320, 12, 10, 5, 68, 8, 211, 34, 320, 12, 7,
	5, 68, 8, 211, 34, 320, 12, 10, 5, 68, 8, 77, 53, 12, 7, 5,
	68, 8, 77, 53, 12, 10, 5, 68, 8, 77, 53, 34, 320, 12, 7, 5,
	68, 8, 77, 53, 34, 320, 12, 10, 5, 218, 8, 320, 12, 7, 5, 218,
	8, 320, 12, 7, 5, 136, 8, 724, 12, 7, 5, 151, 8, 724, 12, 7,
	5, 221, 8, 724, 12, 7, 5, 743, 278, 12, 7, 5, 3215, 590, 12, 7,
	5, 9921, 590, 12, 10, 5, 24, 8, 89, 12, 10, 5, 104, 8, 89, 12,
	7, 5, 104, 8, 89, 12, 10, 5, 136, 8, 146, 12, 10, 5, 221, 8,
	186, 89, 12, 7, 5, 121, 8, 1494, 323, 12, 7, 5, 250, 8, 1494, 323,
	12, 10, 5, 552, 322, 12, 7, 5, 552, 322, 12, 10, 5, 71, 8, 89,
	12, 10, 5, 60, 146, 12, 10, 5, 191, 229, 12, 10, 5, 51, 8, 89,
	12, 7, 5, 51, 8, 89, 12, 10, 5, 278, 8, 89, 12, 7, 5, 278,
	8, 89, 12, 10, 5, 7, 389, 8, 99, 323, 12, 7, 5, 389, 8, 99,
	323, 12, 10, 5, 122, 8, 89, 12, 7, 5, 122, 8, 89, 12, 10, 5,
	218, 8, 89, 12, 7, 5, 218, 8, 89, 12, 7, 5, 191, 24, 12, 7,
	5, 331, 12, 7, 5, 191, 331, 12, 7, 5, 71, 8, 99, 12, 7, 5,
	189, 68, 12, 7, 5, 104, 8, 724, 12, 7, 5, 98, 8, 323, 12, 7,
	5, 98, 8, 99, 12, 7, 5, 261, 51, 12, 7, 5, 998, 12, 7, 5,
	998, 8, 99, 12, 7, 5, 189, 51, 12, 7, 5, 261, 189, 51, 12, 7,
	5, 261, 189, 51, 8, 99, 12, 7, 5, 468, 261, 189, 51, 12, 7, 5,
	743, 278, 8, 89, 12, 7, 5, 220, 8, 99, 12, 7, 5, 35, 220, 12,
	5, 7, 10, 220, 12, 7, 5, 727, 12, 7, 5, 3878, 562, 12, 7, 5,
	191, 235, 12, 7, 5, 235, 8, 99, 12, 7, 5, 1587, 8, 99, 12, 7,
	5, 73, 8, 89, 12, 7, 5, 415, 12, 5, 7, 10, 73, 12, 7, 5,
	136, 8, 94, 211, 12, 7, 5, 136, 8, 1015, 12, 7, 5, 136, 8, 499,
	99, 12, 7, 5, 1878, 12, 7, 5, 191, 205, 12, 7, 5, 191, 205, 8,
	187, 764, 12, 7, 5, 205, 8, 99, 12, 7, 5, 151, 8, 48, 99, 12,
	7, 5, 151, 8, 499, 99, 12, 5, 7, 10, 151, 12, 7, 5, 845, 68,
	12, 5, 7, 10, 485, 12, 7, 5, 468, 327, 12, 7, 5, 694, 12, 7,
	5, 191, 122, 12, 7, 5, 191, 122, 8, 187, 764, 12, 7, 5, 191, 122,
	8, 99, 12, 7, 5, 122, 8, 187, 764, 12, 7, 5, 122, 8, 323, 12,
	7, 5, 122, 8, 1210, 12, 7, 5, 261, 122, 8, 1210, 12, 5, 7, 10,
	122, 12, 5, 7, 10, 359, 122, 12, 7, 5, 121, 8, 99, 12, 7, 5,
	785, 12, 7, 5, 743, 278, 8, 89, 34, 99, 12, 7, 5, 4016, 261, 785,
	12, 7, 5, 785, 8, 724, 12, 7, 5, 191, 221, 12, 7, 5, 221, 8,
	499, 99, 12, 7, 5, 60, 146, 12, 7, 5, 456, 12, 7, 5, 229, 8,
	99, 12, 7, 5, 191, 229, 12, 7, 5, 191, 290, 12, 7, 5, 191, 218,
	12, 5, 7, 10, 218, 12, 7, 5, 250, 8, 499, 99, 12, 7, 5, 250,
	8, 724, 12, 7, 5, 981, 12, 7, 5, 981, 8, 724, 12, 5, 552, 322,
	12, 5, 1245, 966, 7367, 12, 5, 359, 552, 322, 12, 5, 696, 104, 12, 5,
	2120, 1018, 12, 5, 7, 10, 71, 12, 7, 5, 468, 189, 51, 12, 5, 7,
	10, 220, 8, 99, 12, 5, 7, 10, 235, 12, 7, 5, 278, 8, 723, 2,
	323, 12, 7, 5, 191, 227, 12, 5, 7, 10, 136, 12, 7, 5, 389, 8,
	99, 12, 5, 552, 322, 8, 89, 12, 5, 261, 552, 322, 8, 89, 12, 7,
	5, 1076, 590, 12, 7, 5, 1786, 590, 12, 7, 5, 1076, 590, 8, 724, 12,
	7, 5, 2008, 590, 12, 7, 5, 1996, 590, 12, 7, 5, 4061, 590, 8, 724,
	12, 7, 5, 2218, 590, 12, 7, 5, 3569, 590, 12, 7, 5, 3579, 590, 12,
	5, 2120, 3809, 12, 5, 6224, 3809, 12, 7, 5, 191, 235, 8, 1210, 12, 7,
	5, 191, 235, 8, 1210, 34, 323, 75, 5, 7, 235, 75, 5, 7, 235, 8,
	99, 75, 5, 7, 278, 75, 5, 7, 122, 75, 5, 7, 191, 122, 75, 5,
	7, 191, 122, 8, 99, 75, 5, 7, 10, 359, 122, 75, 5, 7, 290, 75,
	5, 7, 218, 75, 5, 997, 75, 5, 55, 997, 75, 5, 191, 383, 75, 5,
	1117, 75, 5, 261, 383, 75, 5, 45, 133, 190, 75, 5, 48, 133, 190, 75,
	5, 552, 322, 75, 5, 261, 552, 322, 75, 5, 48, 309, 75, 5, 45, 309,
	75, 5, 111, 309, 75, 5, 130, 309, 75, 5, 294, 344, 477, 75, 5, 86,
	245, 75, 5, 320, 75, 5, 230, 344, 75, 5, 315, 344, 75, 5, 145, 86,
	245, 75, 5, 145, 320, 75, 5, 145, 315, 344, 75, 5, 145, 230, 344, 75,
	5, 738, 577, 75, 5, 133, 738, 577, 75, 5, 1125, 45, 133, 190, 75, 5,
	1125, 48, 133, 190, 75, 5, 111, 558, 75, 5, 130, 558, 75, 5, 120, 6,
	75, 5, 661, 6, 393, 77, 53, 190, 53, 888, 7, 211, 55, 230, 344, 75,
	5, 10067, 99, 75, 5, 425, 344, 75, 5, 7, 727, 75, 5, 7, 136, 75,
	5, 7, 121, 75, 5, 7, 268, 75, 5, 7, 261, 552, 322, 75, 5, 1137,
	2, 156, 110, 146, 75, 5, 156, 110, 146, 75, 5, 1039, 110, 146, 75, 5,
	145, 110, 146, 75, 5, 1137, 2, 145, 110, 146, 75, 5, 1179, 2184, 110, 56,
	75, 5, 1008, 2184, 110, 56, 75, 5, 4165, 75, 5, 11068, 75, 5, 55, 1117,
	75, 5, 145, 130, 309, 75, 5, 145, 111, 309, 75, 5, 145, 48, 309, 75,
	5, 145, 45, 309, 75, 5, 145, 190, 75, 5, 94, 315, 344, 75, 5, 94,
	55, 315, 344, 75, 5, 94, 55, 230, 344, 75, 5, 145, 211, 75, 5, 564,
	577, 75, 5, 1190, 156, 110, 75, 5, 591, 156, 110, 75, 5, 1190, 145, 110,
	75, 5, 591, 145, 110, 75, 5, 3956, 75, 5, 189, 3956, 75, 5, 145, 48,
	36, 43, 315, 344, 43, 230, 344, 43, 294, 344, 43, 211, 43, 320, 43, 1242,
	43, 393, 43, 77, 53, 43, 310, 43, 99, 53, 43, 190, 53, 43, 55, 230,
	344, 43, 477, 43, 86, 245, 53, 43, 55, 86, 245, 53, 43, 55, 315, 344,
	43, 559, 43, 359, 393, 43, 191, 383, 53, 43, 383, 53, 43, 261, 383, 53,
	43, 383, 53, 45, 43, 315, 344, 76, 43, 230, 344, 76, 43, 48, 558, 76,
	43, 45, 558, 76, 43, 48, 293, 53, 43, 562, 43, 48, 133, 190, 76, 43,
	111, 558, 76, 43, 130, 558, 76, 43, 120, 6, 76, 43, 661, 6, 76, 43,
	9600, 99, 76, 43, 499, 99, 76, 43, 77, 76, 43, 310, 76, 43, 190, 76,
	43, 383, 76, 43, 615, 43, 888, 43, 86, 245, 76, 43, 1382, 76, 43, 359,
	55, 3055, 76, 43, 477, 76, 43, 294, 344, 76, 43, 393, 76, 43, 359, 393,
	76, 43, 211, 76, 43, 320, 76, 43, 145, 245, 43, 55, 145, 245, 43, 211,
	715, 43, 295, 89, 715, 43, 187, 89, 715, 43, 295, 707, 715, 43, 187, 707,
	715, 43, 45, 133, 190, 76, 43, 359, 1382, 76, 43, 58, 76, 43, 10288, 76,
	43, 268, 53, 43, 86, 211, 43, 55, 1242, 43, 315, 110, 56, 43, 230, 110,
	56, 43, 46, 463, 43, 46, 2308, 43, 46, 825, 792, 43, 46, 535, 43, 1382,
	53, 43, 545, 6, 76, 43, 55, 86, 245, 76, 43, 48, 293, 76, 43, 362,
	211, 53, 43, 3422, 53, 43, 843, 198, 83, 53, 43, 48, 45, 36, 76, 43,
	216, 36, 76, 43, 7604, 1219, 43, 45, 309, 53, 43, 48, 133, 190, 53, 43,
	2219, 43, 268, 76, 43, 48, 309, 76, 43, 45, 309, 76, 43, 45, 309, 34,
	111, 309, 76, 43, 45, 133, 190, 53, 43, 77, 53, 45, 43, 467, 76, 43,
	55, 190, 76, 43, 1011, 53, 43, 55, 393, 76, 43, 55, 393, 43, 55, 320,
	43, 55, 320, 76, 43, 55, 211, 43, 55, 359, 393, 43, 55, 113, 36, 76,
	43, 12, 7, 5, 24, 43, 12, 7, 5, 51, 43, 12, 7, 5, 73, 43,
	12, 7, 5, 68, 43, 12, 7, 5, 60, 43, 12, 7, 5, 104, 43, 12,
	7, 5, 98, 43, 12, 7, 5, 235, 43, 12, 7, 5, 205, 43, 12, 7,
	5, 122, 43, 12, 7, 5, 221, 43, 12, 7, 5, 229, 43, 12, 7, 5,
	268, 46, 10, 5, 3406, 46, 7, 5, 3406, 46, 10, 5, 507, 1478, 46, 7,
	5, 507, 1478, 46, 307, 6, 46, 134, 307, 6, 46, 10, 5, 3790, 1396, 46,
	7, 5, 3790, 1396, 46, 535, 46, 7, 261, 1091, 683, 16, 46, 7, 478, 1091,
	683, 16, 46, 7, 261, 478, 1091, 683, 16, 46, 629, 56, 46, 10, 5, 1713,
	46, 792, 46, 825, 792, 46, 10, 5, 331, 8, 792, 46, 1185, 4064, 46, 10,
	5, 525, 8, 792, 46, 10, 5, 406, 8, 792, 46, 10, 5, 415, 8, 792,
	46, 10, 5, 608, 8, 792, 46, 10, 5, 456, 8, 792, 46, 10, 5, 327,
	8, 792, 46, 7, 5, 415, 8, 825, 34, 792, 46, 10, 5, 331, 46, 10,
	5, 779, 46, 10, 5, 727, 46, 10, 5, 760, 46, 10, 5, 525, 46, 10,
	5, 968, 46, 10, 5, 406, 46, 10, 5, 697, 46, 10, 5, 415, 46, 10,
	5, 804, 46, 10, 5, 917, 46, 10, 5, 460, 46, 10, 5, 555, 46, 10,
	5, 900, 46, 10, 5, 608, 46, 10, 5, 427, 46, 10, 5, 649, 46, 10,
	5, 683, 46, 10, 5, 815, 46, 10, 5, 456, 46, 10, 5, 694, 46, 10,
	5, 671, 46, 10, 5, 836, 46, 10, 5, 327, 46, 10, 5, 415, 8, 825,
	46, 10, 5, 456, 8, 825, 46, 7, 5, 331, 8, 792, 46, 7, 5, 525,
	8, 792, 46, 7, 5, 406, 8, 792, 46, 7, 5, 415, 8, 792, 46, 7,
	5, 456, 8, 825, 34, 792, 46, 7, 5, 331, 46, 7, 5, 779, 46, 7,
	5, 727, 46, 7, 5, 760, 46, 7, 5, 525, 46, 7, 5, 968, 46, 7,
	5, 406, 46, 7, 5, 697, 46, 7, 5, 415, 46, 7, 5, 804, 46, 7,
	5, 917, 46, 7, 5, 460, 46, 7, 5, 555, 46, 7, 5, 900, 46, 7,
	5, 608, 46, 7, 5, 427, 46, 7, 5, 649, 46, 7, 5, 69, 683, 46,
	7, 5, 683, 46, 7, 5, 815, 46, 7, 5, 456, 46, 7, 5, 694, 46,
	7, 5, 671, 46, 7, 5, 836, 46, 7, 5, 327, 46, 7, 5, 415, 8,
	825, 46, 7, 5, 456, 8, 825, 46, 7, 5, 608, 8, 792, 46, 7, 5,
	456, 8, 792, 46, 7, 5, 327, 8, 792, 46, 10, 1436, 16, 46, 779, 16,
	46, 697, 16, 46, 456, 8, 99, 16, 46, 456, 8, 230, 34, 99, 16, 46,
	456, 8, 310, 34, 99, 16, 46, 694, 16, 46, 427, 16, 46, 1436, 16, 46,
	5, 507, 1443, 46, 7, 5, 507, 1443, 46, 5, 2516, 46, 7, 5, 2516, 46,
	5, 1396, 46, 7, 5, 1396, 46, 5, 1443, 46, 7, 5, 1443, 46, 5, 1478,
	46, 7, 5, 1478, 116, 10, 5, 1252, 116, 7, 5, 1252, 116, 10, 5, 3317,
	116, 7, 5, 3317, 116, 10, 5, 1439, 116, 7, 5, 1439, 116, 10, 5, 1427,
	116, 7, 5, 1427, 116, 10, 5, 1415, 116, 7, 5, 1415, 116, 10, 5, 1339,
	116, 7, 5, 1339, 116, 10, 5, 3228, 116, 7, 5, 3228, 46, 804, 16, 46,
	649, 16, 46, 1091, 683, 16, 46, 5, 1713, 46, 10, 697, 16, 46, 1091, 525,
	16, 46, 261, 1091, 525, 16, 46, 10, 5, 1050, 46, 7, 5, 1050, 46, 10,
	1091, 683, 16, 46, 10, 5, 1479, 46, 7, 5, 1479, 46, 649, 8, 89, 16,
	46, 10, 261, 1091, 683, 16, 46, 10, 478, 1091, 683, 16, 46, 10, 261, 478,
	1091, 683, 16, 57, 10, 5, 832, 8, 315, 57, 10, 5, 2280, 57, 10, 5,
	1792, 57, 10, 5, 2246, 57, 10, 5, 1702, 832, 57, 10, 5, 1205, 57, 10,
	5, 3141, 2, 1702, 73, 57, 10, 5, 14, 57, 10, 5, 984, 57, 10, 5,
	1880, 57, 10, 5, 1236, 57, 10, 5, 4112, 57, 10, 5, 3502, 57, 10, 5,
	73, 8, 315, 57, 10, 5, 295, 60, 57, 10, 5, 3267, 57, 10, 5, 24,
	57, 10, 5, 871, 57, 10, 5, 842, 57, 10, 5, 801, 57, 10, 5, 710,
	57, 10, 5, 832, 57, 10, 5, 868, 57, 10, 5, 739, 57, 10, 5, 73,
	57, 10, 5, 295, 73, 57, 10, 5, 106, 57, 10, 5, 712, 57, 10, 5,
	714, 57, 10, 5, 405, 57, 10, 5, 68, 57, 10, 5, 462, 57, 10, 5,
	879, 57, 10, 5, 880, 57, 10, 5, 440, 57, 10, 5, 60, 57, 10, 5,
	1077, 57, 10, 5, 143, 57, 10, 5, 930, 57, 10, 5, 700, 57, 10, 5,
	321, 57, 10, 5, 2482, 57, 10, 5, 1086, 6, 57, 10, 5, 1064, 57, 10,
	5, 926, 6, 57, 10, 5, 51, 57, 10, 5, 402, 57, 10, 5, 179, 57,
	7, 5, 24, 57, 7, 5, 871, 57, 7, 5, 842, 57, 7, 5, 801, 57,
	7, 5, 710, 57, 7, 5, 832, 57, 7, 5, 868, 57, 7, 5, 739, 57,
	7, 5, 73, 57, 7, 5, 295, 73, 57, 7, 5, 106, 57, 7, 5, 712,
	57, 7, 5, 714, 57, 7, 5, 405, 57, 7, 5, 68, 57, 7, 5, 462,
	57, 7, 5, 879, 57, 7, 5, 880, 57, 7, 5, 440, 57, 7, 5, 60,
	57, 7, 5, 1077, 57, 7, 5, 143, 57, 7, 5, 930, 57, 7, 5, 700,
	57, 7, 5, 321, 57, 7, 5, 2482, 57, 7, 5, 1086, 6, 57, 7, 5,
	1064, 57, 7, 5, 926, 6, 57, 7, 5, 51, 57, 7, 5, 402, 57, 7,
	5, 179, 57, 7, 5, 832, 8, 315, 57, 7, 5, 2280, 57, 7, 5, 1792,
	57, 7, 5, 2246, 57, 7, 5, 1702, 832, 57, 7, 5, 1205, 57, 7, 5,
	3141, 2, 1702, 73, 57, 7, 5, 14, 57, 7, 5, 984, 57, 7, 5, 1880,
	57, 7, 5, 1236, 57, 7, 5, 4112, 57, 7, 5, 3502, 57, 7, 5, 73,
	8, 315, 57, 7, 5, 295, 60, 57, 7, 5, 3267, 57, 10, 5, 327, 57,
	7, 5, 327, 57, 10, 5, 1178, 57, 7, 5, 1178, 57, 10, 5, 851, 51,
	57, 7, 5, 851, 51, 57, 10, 5, 338, 601, 57, 7, 5, 338, 601, 57,
	10, 5, 851, 338, 601, 57, 7, 5, 851, 338, 601, 57, 10, 5, 872, 601,
	57, 7, 5, 872, 601, 57, 10, 5, 851, 872, 601, 57, 7, 5, 851, 872,
	601, 57, 10, 5, 1865, 57, 7, 5, 1865, 57, 10, 5, 836, 57, 7, 5,
	836, 57, 10, 5, 1306, 57, 7, 5, 1306, 57, 10, 5, 1433, 57, 7, 5,
	1433, 57, 10, 5, 1433, 8, 55, 315, 344, 57, 7, 5, 1433, 8, 55, 315,
	344, 57, 10, 5, 1506, 57, 7, 5, 1506, 57, 10, 5, 855, 327, 57, 7,
	5, 855, 327, 57, 10, 5, 327, 8, 1693, 57, 7, 5, 327, 8, 1693, 57,
	10, 5, 1919, 57, 7, 5, 1919, 57, 10, 5, 1443, 57, 7, 5, 1443, 57,
	1266, 6, 43, 57, 1693, 43, 57, 9599, 43, 57, 283, 3836, 43, 57, 305, 3836,
	43, 57, 9774, 43, 57, 159, 1266, 6, 43, 57, 1325, 6, 57, 10, 5, 295,
	73, 8, 323, 57, 7, 5, 295, 73, 8, 323, 57, 10, 5, 3944, 6, 57,
	7, 5, 3944, 6, 57, 10, 5, 879, 8, 1110, 57, 7, 5, 879, 8, 1110,
	57, 10, 5, 801, 8, 2580, 57, 7, 5, 801, 8, 2580, 57, 10, 5, 801,
	8, 89, 57, 7, 5, 801, 8, 89, 57, 10, 5, 801, 8, 94, 99, 57,
	7, 5, 801, 8, 94, 99, 57, 10, 5, 868, 8, 510, 57, 7, 5, 868,
	8, 510, 57, 10, 5, 739, 8, 510, 57, 7, 5, 739, 8, 510, 57, 10,
	5, 106, 8, 510, 57, 7, 5, 106, 8, 510, 57, 10, 5, 106, 8, 86,
	89, 57, 7, 5, 106, 8, 86, 89, 57, 10, 5, 106, 8, 89, 57, 7,
	5, 106, 8, 89, 57, 10, 5, 3088, 106, 57, 7, 5, 3088, 106, 57, 10,
	5, 405, 8, 510, 57, 7, 5, 405, 8, 510, 57, 10, 44, 405, 801, 57,
	7, 44, 405, 801, 57, 10, 5, 462, 8, 94, 99, 57, 7, 5, 462, 8,
	94, 99, 57, 10, 5, 1181, 143, 57, 7, 5, 1181, 143, 57, 10, 5, 880,
	8, 510, 57, 7, 5, 880, 8, 510, 57, 10, 5, 440, 8, 510, 57, 7,
	5, 440, 8, 510, 57, 10, 5, 550, 60, 57, 7, 5, 550, 60, 57, 10,
	5, 550, 60, 8, 89, 57, 7, 5, 550, 60, 8, 89, 57, 10, 5, 143,
	8, 510, 57, 7, 5, 143, 8, 510, 57, 10, 44, 440, 930, 57, 7, 44,
	440, 930, 57, 10, 5, 700, 8, 510, 57, 7, 5, 700, 8, 510, 57, 10,
	5, 700, 8, 86, 89, 57, 7, 5, 700, 8, 86, 89, 57, 10, 5, 1969,
	57, 7, 5, 1969, 57, 10, 5, 1181, 700, 57, 7, 5, 1181, 700, 57, 10,
	5, 1181, 700, 8, 510, 57, 7, 5, 1181, 700, 8, 510, 57, 5, 3788, 57,
	10, 5, 868, 8, 393, 57, 7, 5, 868, 8, 393, 57, 10, 5, 106, 8,
	99, 57, 7, 5, 106, 8, 99, 57, 10, 5, 712, 8, 323, 57, 7, 5,
	712, 8, 323, 57, 10, 5, 405, 8, 99, 57, 7, 5, 405, 8, 99, 57,
	10, 5, 405, 8, 323, 57, 7, 5, 405, 8, 323, 57, 10, 5, 3493, 700,
	57, 7, 5, 3493, 700, 57, 10, 5, 714, 8, 323, 57, 7, 5, 714, 8,
	323, 57, 7, 5, 3788, 57, 10, 5, 24, 8, 393, 57, 7, 5, 24, 8,
	393, 57, 10, 5, 24, 8, 310, 57, 7, 5, 24, 8, 310, 57, 10, 44,
	24, 832, 57, 7, 44, 24, 832, 57, 10, 5, 832, 8, 393, 57, 7, 5,
	832, 8, 393, 57, 10, 5, 998, 57, 7, 5, 998, 57, 10, 5, 998, 8,
	310, 57, 7, 5, 998, 8, 310, 57, 10, 5, 868, 8, 310, 57, 7, 5,
	868, 8, 310, 57, 10, 5, 739, 8, 310, 57, 7, 5, 739, 8, 310, 57,
	10, 5, 1181, 1205, 57, 7, 5, 1181, 1205, 57, 10, 5, 73, 8, 320, 57,
	7, 5, 73, 8, 320, 57, 10, 5, 73, 8, 310, 57, 7, 5, 73, 8,
	310, 57, 10, 5, 68, 8, 310, 57, 7, 5, 68, 8, 310, 57, 10, 5,
	845, 68, 57, 7, 5, 845, 68, 57, 10, 5, 845, 68, 8, 310, 57, 7,
	5, 845, 68, 8, 310, 57, 10, 5, 51, 8, 310, 57, 7, 5, 51, 8,
	310, 57, 10, 5, 60, 8, 320, 57, 7, 5, 60, 8, 320, 57, 10, 5,
	60, 8, 310, 57, 7, 5, 60, 8, 310, 57, 10, 5, 60, 8, 55, 230,
	57, 7, 5, 60, 8, 55, 230, 57, 10, 5, 700, 8, 310, 57, 7, 5,
	700, 8, 310, 57, 10, 5, 801, 8, 510, 57, 7, 5, 801, 8, 510, 57,
	10, 5, 1064, 8, 310, 57, 7, 5, 1064, 8, 310, 57, 10, 5, 801, 8,
	89, 34, 99, 57, 7, 5, 801, 8, 89, 34, 99, 57, 10, 5, 143, 8,
	99, 57, 7, 5, 143, 8, 99, 57, 10, 5, 143, 8, 89, 57, 7, 5,
	143, 8, 89, 57, 10, 5, 854, 710, 57, 7, 5, 854, 710, 57, 10, 5,
	854, 1792, 57, 7, 5, 854, 1792, 57, 10, 5, 854, 4232, 57, 7, 5, 854,
	4232, 57, 10, 5, 854, 3269, 57, 7, 5, 854, 3269, 57, 10, 5, 854, 1880,
	57, 7, 5, 854, 1880, 57, 10, 5, 854, 1236, 57, 7, 5, 854, 1236, 57,
	10, 5, 854, 3987, 57, 7, 5, 854, 3987, 57, 10, 5, 854, 4086, 57, 7,
	5, 854, 4086, 57, 10, 5, 261, 739, 57, 7, 5, 261, 739, 57, 10, 5,
	712, 8, 99, 57, 7, 5, 712, 8, 99, 57, 10, 5, 1222, 57, 7, 5,
	1222, 57, 10, 5, 1162, 57, 7, 5, 1162, 57, 10, 5, 1177, 57, 7, 5,
	1177, 57, 10, 5, 768, 57, 7, 5, 768, 57, 10, 5, 614, 57, 7, 5,
	614, 57, 10, 5, 3032, 106, 57, 7, 5, 3032, 106, 57, 10, 5, 712, 8,
	94, 99, 57, 7, 5, 712, 8, 94, 99, 57, 10, 5, 405, 8, 94, 99,
	57, 7, 5, 405, 8, 94, 99, 57, 10, 5, 462, 8, 510, 57, 7, 5,
	462, 8, 510, 57, 10, 5, 1969, 8, 510, 57, 7, 5, 1969, 8, 510, 57,
	10, 5, 405, 8, 48, 99, 57, 7, 5, 405, 8, 48, 99, 57, 10, 5,
	3275, 57, 7, 5, 3275, 57, 10, 5, 3216, 57, 7, 5, 3216, 57, 10, 5,
	712, 8, 510, 57, 7, 5, 712, 8, 510, 242, 10, 5, 2108, 242, 10, 5,
	2119, 242, 10, 5, 2245, 242, 10, 5, 217, 242, 10, 5, 1403, 242, 10, 5,
	443, 242, 10, 5, 1078, 242, 10, 5, 945, 242, 10, 5, 83, 242, 10, 5,
	868, 242, 10, 5, 2276, 242, 10, 5, 3562, 242, 10, 5, 2601, 242, 10, 5,
	325, 242, 10, 5, 1438, 242, 10, 5, 553, 242, 10, 5, 317, 242, 10, 5,
	3371, 242, 10, 5, 3166, 242, 10, 5, 1038, 242, 10, 5, 14, 242, 10, 5,
	1908, 242, 10, 5, 321, 242, 10, 5, 1113, 242, 10, 5, 358, 242, 10, 5,
	1156, 242, 10, 5, 3461, 242, 10, 5, 173, 242, 10, 5, 3941, 242, 10, 5,
	2585, 242, 10, 5, 4085, 242, 10, 5, 531, 242, 10, 5, 976, 242, 10, 5,
	2610, 242, 10, 5, 2431, 242, 10, 5, 2300, 242, 10, 5, 1640, 242, 10, 5,
	526, 242, 75, 5, 48, 133, 190, 242, 1117, 242, 3296, 56, 242, 672, 56, 242,
	383, 242, 629, 56, 242, 774, 56, 242, 7, 5, 191, 2108, 242, 7, 5, 2108,
	242, 7, 5, 2119, 242, 7, 5, 2245, 242, 7, 5, 217, 242, 7, 5, 1403,
	242, 7, 5, 443, 242, 7, 5, 1078, 242, 7, 5, 945, 242, 7, 5, 83,
	242, 7, 5, 868, 242, 7, 5, 2276, 242, 7, 5, 3562, 242, 7, 5, 2601,
	242, 7, 5, 325, 242, 7, 5, 1438, 242, 7, 5, 553, 242, 7, 5, 317,
	242, 7, 5, 3371, 242, 7, 5, 3166, 242, 7, 5, 1038, 242, 7, 5, 14,
	242, 7, 5, 1908, 242, 7, 5, 321, 242, 7, 5, 1113, 242, 7, 5, 358,
	242, 7, 5, 1156, 242, 7, 5, 3461, 242, 7, 5, 173, 242, 7, 5, 3941,
	242, 7, 5, 2585, 242, 7, 5, 4085, 242, 7, 5, 531, 242, 7, 5, 976,
	242, 7, 5, 2610, 242, 7, 5, 2431, 242, 7, 5, 2300, 242, 7, 5, 1640,
	242, 7, 5, 526, 242, 7, 44, 1403, 2610, 242, 7, 5, 14, 8, 89, 242,
	426, 322, 242, 850, 45, 2, 910, 242, 2207, 6, 48, 2, 910, 242, 2207, 6,
	242, 3258, 6, 167, 344, 7181, 167, 344, 2476, 167, 344, 10331, 167, 344, 4225, 3861,
	167, 344, 4225, 7453, 167, 344, 10835, 167, 344, 10062, 167, 344, 11609, 167, 344, 9648,
	167, 344, 11504, 167, 344, 10780, 167, 344, 2240, 167, 344, 2240, 8937, 167, 344, 3363,
	167, 344, 9888, 3794, 167, 344, 4065, 7486, 167, 344, 9663, 167, 344, 5888, 7658, 167,
	344, 8929, 167, 344, 8693, 167, 344, 3648, 167, 344, 3648, 8152, 167, 344, 6862, 167,
	344, 9883, 167, 344, 4065, 9892, 167, 344, 11503, 2119, 11525, 167, 344, 9531, 167, 344,
	7943, 167, 344, 6912, 167, 344, 11657, 167, 56, 8734, 125, 167, 665, 10354, 167, 665,
	2256, 2476, 167, 665, 2256, 1926, 167, 665, 2256, 1943, 167, 665, 3413, 167, 665, 10920,
	167, 665, 2476, 167, 665, 1926, 167, 665, 1943, 167, 665, 2264, 167, 665, 2264, 7684,
	54, 1509, 167, 665, 9925, 167, 665, 701, 246, 2340, 167, 665, 8790, 167, 225, 8720,
	167, 665, 1949, 167, 225, 9646, 167, 665, 573, 77, 167, 665, 1977, 77, 167, 225,
	3999, 9653, 167, 56, 141, 77, 167, 56, 134, 77, 167, 225, 394, 7659, 167, 665,
	1943, 3861, 167, 5, 144, 167, 5, 1379, 167, 5, 827, 167, 5, 1779, 167, 5,
	446, 167, 5, 1509, 167, 5, 901, 167, 5, 3405, 167, 5, 1356, 167, 5, 1116,
	167, 5, 69, 439, 167, 5, 439, 167, 5, 1873, 167, 5, 69, 746, 167, 5,
	746, 167, 5, 69, 394, 167, 5, 394, 167, 5, 857, 167, 5, 821, 167, 5,
	69, 462, 167, 5, 462, 167, 5, 69, 2569, 167, 5, 2569, 167, 5, 2450, 167,
	5, 810, 167, 5, 573, 167, 5, 2539, 167, 1116, 114, 167, 44, 2033, 55, 1509,
	167, 44, 2033, 1509, 1116, 167, 44, 2033, 55, 1116, 167, 225, 2240, 167, 225, 3363,
	13, 41, 6, 13, 6, 10249, 13, 3331, 1228, 13, 6, 3925, 13, 6, 10247, 13,
	41, 56, 53, 13, 2, 204, 2167, 1670, 13, 2, 204, 1308, 1670, 13, 2457, 13,
	2, 204, 1244, 3660, 6, 13, 2, 204, 1244, 280, 203, 6, 5735, 6, 13, 383,
	13, 3214, 681, 13, 9771, 2584, 6, 13, 6, 8869, 13, 6, 3928, 1527, 11330, 13,
	6, 1527, 5872, 13, 6, 10006, 1527, 13, 6, 1473, 5776, 5807, 13, 6, 10729, 13,
	7, 156, 520, 13, 7, 156, 44, 144, 8, 318, 8, 115, 13, 7, 156, 867,
	13, 7, 912, 13, 7, 1021, 13, 7, 916, 13, 1000, 13, 5, 56, 13, 591,
	95, 1169, 56, 13, 392, 77, 225, 56, 13, 629, 56, 13, 5, 3480, 115, 13,
	5, 299, 13, 5, 144, 8, 1037, 53, 13, 5, 144, 8, 299, 53, 13, 5,
	488, 8, 299, 53, 13, 5, 144, 8, 299, 76, 13, 5, 115, 8, 299, 53,
	13, 5, 144, 13, 5, 476, 13, 5, 423, 1886, 13, 5, 423, 13, 5, 708,
	13, 5, 223, 13, 5, 199, 13, 5, 351, 13, 5, 782, 13, 5, 1263, 13,
	5, 531, 13, 5, 867, 13, 5, 435, 13, 5, 486, 13, 5, 565, 13, 5,
	579, 13, 5, 520, 13, 5, 934, 13, 5, 475, 13, 5, 674, 13, 5, 985,
	8, 70, 63, 53, 13, 5, 985, 8, 79, 63, 76, 13, 5, 911, 115, 8,
	359, 229, 13, 5, 911, 115, 8, 70, 63, 53, 13, 5, 911, 115, 8, 79,
	63, 53, 13, 1496, 13, 5, 526, 13, 5, 549, 13, 5, 439, 13, 5, 318,
	13, 5, 108, 13, 5, 355, 13, 5, 447, 13, 5, 488, 13, 5, 144, 346,
	13, 5, 115, 13, 1303, 13, 1554, 13, 1605, 13, 912, 13, 1021, 13, 916, 13,
	924, 13, 1260, 13, 3624, 53, 13, 299, 53, 13, 299, 76, 13, 519, 144, 13,
	359, 1021, 13, 56, 355, 1580, 13, 11680, 13, 26, 6, 7, 229, 53, 13, 26,
	6, 359, 7, 229, 53, 13, 26, 6, 77, 76, 13, 261, 1021, 13, 912, 8,
	70, 63, 13, 1060, 299, 76, 13, 2, 204, 23, 254, 13, 2, 204, 23, 67,
	13, 2, 204, 23, 70, 13, 2, 204, 23, 79, 13, 2, 204, 23, 93, 13,
	2, 204, 23, 100, 13, 2, 204, 23, 139, 13, 2, 204, 23, 157, 13, 2,
	204, 23, 140, 13, 2, 204, 23, 160, 13, 1652, 6, 13, 2180, 681, 13, 1266,
	681, 13, 100, 530, 391, 13, 5, 743, 476, 13, 5, 743, 549, 13, 5, 651,
	144, 13, 5, 144, 2022, 13, 5, 144, 8, 1060, 299, 53, 13, 5, 144, 8,
	1060, 299, 76, 13, 5, 156, 299, 13, 5, 156, 299, 144, 13, 5, 156, 299,
	488, 13, 5, 60, 8, 299, 53, 13, 5, 156, 299, 115, 13, 5, 1503, 13,
	5, 1697, 13, 5, 1537, 13, 5, 423, 8, 190, 13, 5, 423, 8, 79, 63,
	53, 209, 13, 5, 1156, 13, 5, 1688, 13, 5, 1538, 13, 5, 199, 8, 299,
	53, 13, 5, 199, 8, 70, 63, 86, 53, 13, 5, 1638, 13, 5, 1561, 13,
	5, 199, 8, 79, 63, 53, 13, 5, 1353, 13, 5, 1687, 13, 5, 2177, 13,
	5, 782, 8, 190, 13, 5, 782, 8, 77, 76, 13, 5, 782, 8, 77, 76,
	34, 7, 520, 13, 5, 2173, 13, 5, 2176, 13, 5, 2197, 13, 5, 782, 8,
	79, 63, 53, 209, 13, 5, 782, 8, 93, 63, 53, 13, 5, 2465, 13, 5,
	531, 8, 7, 229, 13, 5, 531, 8, 190, 13, 5, 531, 8, 77, 76, 13,
	5, 531, 8, 7, 229, 76, 13, 5, 531, 8, 77, 76, 34, 77, 53, 13,
	5, 531, 8, 70, 63, 53, 13, 5, 2288, 13, 5, 531, 8, 93, 63, 53,
	13, 5, 435, 8, 77, 76, 34, 77, 53, 13, 5, 435, 8, 79, 63, 76,
	13, 5, 435, 8, 79, 63, 76, 34, 79, 63, 53, 13, 5, 565, 8, 70,
	63, 76, 13, 5, 565, 8, 79, 63, 53, 13, 5, 520, 8, 79, 63, 53,
	13, 5, 475, 8, 79, 63, 53, 13, 5, 743, 526, 13, 5, 526, 8, 77,
	8906, 76, 13, 5, 526, 8, 77, 76, 13, 5, 1704, 13, 5, 526, 8, 79,
	63, 76, 13, 5, 1650, 13, 5, 549, 8, 77, 53, 13, 5, 549, 8, 79,
	63, 53, 13, 5, 985, 13, 5, 1494, 439, 13, 5, 439, 8, 190, 13, 5,
	439, 8, 77, 53, 13, 5, 767, 13, 5, 439, 8, 79, 63, 76, 13, 5,
	1084, 13, 5, 1084, 8, 190, 13, 5, 1632, 13, 5, 1084, 8, 70, 63, 76,
	13, 5, 1586, 13, 5, 1084, 8, 79, 63, 53, 13, 5, 318, 8, 7, 229,
	13, 5, 318, 8, 77, 53, 13, 5, 318, 8, 79, 63, 53, 13, 5, 318,
	8, 79, 63, 76, 13, 5, 355, 8, 77, 76, 13, 5, 355, 1580, 13, 5,
	1668, 13, 5, 355, 8, 190, 13, 5, 355, 8, 79, 63, 53, 13, 5, 447,
	1558, 13, 5, 1353, 8, 77, 53, 13, 5, 447, 8, 115, 53, 13, 5, 447,
	1212, 13, 5, 447, 1212, 8, 299, 53, 13, 5, 423, 1886, 1212, 13, 5, 488,
	8, 190, 13, 5, 1033, 485, 13, 5, 485, 13, 5, 60, 13, 5, 402, 13,
	5, 1033, 402, 13, 5, 488, 8, 70, 63, 53, 13, 5, 842, 13, 5, 911,
	115, 13, 5, 115, 8, 323, 13, 5, 115, 8, 7, 229, 13, 5, 488, 8,
	77, 53, 13, 5, 51, 13, 5, 115, 8, 79, 63, 76, 13, 5, 115, 1120,
	13, 5, 115, 1120, 8, 299, 53, 13, 426, 322, 13, 5, 543, 13, 7, 156,
	44, 565, 8, 318, 8, 144, 346, 13, 7, 156, 44, 549, 8, 318, 8, 144,
	346, 13, 7, 156, 108, 105, 25, 13, 7, 156, 318, 144, 13, 7, 156, 223,
	13, 7, 156, 79, 63, 13, 7, 156, 435, 13, 591, 95, 3072, 13, 1682, 95,
	1672, 712, 7743, 13, 7, 156, 893, 254, 13, 7, 156, 11086, 3886, 254, 13, 7,
	156, 743, 618, 95, 351, 13, 7, 156, 108, 92, 25, 13, 7, 145, 435, 13,
	7, 156, 1037, 13, 7, 488, 13, 7, 115, 13, 7, 156, 115, 13, 7, 156,
	355, 13, 1331, 95, 10229, 13, 877, 360, 145, 322, 13, 877, 360, 156, 322, 13,
	893, 156, 322, 8, 7316, 360, 13, 7, 145, 108, 13, 5, 782, 8, 359, 229,
	13, 5, 531, 8, 359, 229, 726, 13, 2, 204, 23, 254, 726, 13, 2, 204,
	23, 67, 726, 13, 2, 204, 23, 70, 726, 13, 2, 204, 23, 79, 726, 13,
	2, 204, 23, 93, 726, 13, 2, 204, 23, 100, 726, 13, 2, 204, 23, 139,
	726, 13, 2, 204, 23, 157, 726, 13, 2, 204, 23, 140, 726, 13, 2, 204,
	23, 160, 13, 5, 486, 8, 77, 76, 13, 5, 579, 8, 77, 76, 13, 5,
	674, 8, 77, 76, 13, 6, 3982, 1184, 13, 6, 3982, 9789, 1038, 13, 5, 447,
	8, 359, 229, 262, 591, 95, 1647, 262, 2527, 426, 322, 262, 2525, 426, 322, 262,
	2527, 577, 262, 2525, 577, 262, 135, 577, 262, 577, 1979, 48, 262, 577, 1979, 45,
	262, 2527, 577, 1979, 48, 262, 2525, 577, 1979, 45, 262, 6687, 262, 2255, 9510, 262,
	2255, 8792, 262, 2255, 5874, 262, 774, 56, 262, 5, 3030, 262, 5, 651, 3030, 262,
	5, 822, 262, 5, 3348, 262, 5, 3348, 3351, 262, 5, 3206, 262, 5, 743, 3206,
	2460, 262, 5, 446, 262, 5, 488, 262, 5, 867, 262, 5, 849, 262, 5, 1056,
	262, 5, 1056, 3351, 262, 5, 4210, 262, 5, 4210, 446, 262, 5, 852, 262, 5,
	8364, 262, 5, 1893, 262, 5, 394, 262, 5, 3946, 262, 5, 69, 3946, 262, 5,
	51, 262, 5, 462, 262, 5, 261, 462, 262, 5, 856, 262, 5, 9886, 262, 5,
	2460, 262, 5, 573, 262, 5, 839, 262, 5, 422, 3103, 262, 5, 422, 7534, 262,
	5, 422, 6941, 262, 2441, 53, 262, 2441, 76, 262, 2441, 478, 262, 2620, 53, 262,
	2620, 76, 262, 2620, 478, 262, 3880, 53, 262, 3880, 76, 262, 478, 4234, 135, 262,
	478, 4234, 5804, 262, 2257, 53, 262, 2257, 76, 262, 2257, 2, 2206, 478, 262, 2206,
	53, 262, 2206, 76, 262, 10152, 262, 3318, 77, 262, 9941, 262, 10136, 262, 70, 86,
	63, 53, 262, 70, 86, 63, 76, 262, 79, 63, 53, 262, 79, 63, 76, 262,
	834, 245, 53, 262, 834, 245, 76, 262, 1898, 262, 6150, 262, 5, 276, 11622, 262,
	5, 276, 3495, 262, 5, 276, 982, 13, 5, 476, 8, 79, 63, 7841, 76, 13,
	5, 476, 8, 77, 76, 34, 79, 63, 53, 13, 5, 476, 8, 79, 63, 142,
	216, 76, 13, 5, 476, 8, 79, 63, 142, 216, 76, 34, 70, 63, 53, 13,
	5, 476, 8, 70, 63, 76, 34, 77, 53, 13, 5, 476, 8, 359, 7, 229,
	76, 13, 5, 476, 8, 7, 229, 13, 5, 199, 8, 70, 63, 53, 13, 5,
	199, 8, 79, 63, 142, 216, 76, 13, 5, 782, 8, 70, 63, 1273, 76, 34,
	7, 520, 13, 5, 782, 8, 359, 7, 229, 76, 13, 5, 531, 8, 89, 13,
	5, 435, 8, 93, 63, 53, 13, 5, 475, 8, 70, 63, 53, 13, 5, 475,
	8, 79, 63, 142, 209, 53, 13, 5, 475, 8, 70, 63, 1273, 53, 13, 5,
	526, 8, 70, 63, 76, 13, 5, 526, 8, 79, 63, 142, 216, 76, 13, 5,
	985, 8, 77, 53, 13, 5, 985, 8, 79, 63, 53, 13, 5, 985, 8, 79,
	63, 142, 216, 76, 13, 5, 108, 8, 77, 53, 13, 5, 108, 8, 77, 76,
	13, 5, 355, 8, 70, 63, 76, 13, 5, 355, 8, 7, 520, 13, 5, 355,
	8, 7, 229, 13, 5, 318, 8, 146, 13, 5, 531, 8, 70, 63, 1273, 53,
	13, 5, 531, 8, 299, 53, 13, 5, 435, 8, 70, 63, 1273, 53, 13, 5,
	199, 8, 7, 13, 5, 520, 76, 13, 5, 199, 8, 7, 13, 5, 520, 34,
	70, 63, 13, 5, 435, 8, 7, 13, 5, 520, 34, 70, 63, 13, 5, 531,
	8, 7, 13, 5, 520, 34, 70, 63, 13, 5, 199, 8, 7, 13, 5, 520,
	53, 13, 5, 144, 8, 726, 13, 2, 204, 23, 70, 53, 13, 5, 144, 8,
	726, 13, 2, 204, 23, 79, 53, 13, 5, 911, 115, 8, 726, 13, 2, 204,
	23, 70, 53, 13, 5, 911, 115, 8, 726, 13, 2, 204, 23, 79, 53, 13,
	5, 911, 115, 8, 726, 13, 2, 204, 23, 93, 76, 13, 5, 488, 8, 726,
	13, 2, 204, 23, 70, 53, 13, 5, 488, 8, 726, 13, 2, 204, 23, 79,
	53, 13, 5, 115, 1120, 8, 726, 13, 2, 204, 23, 70, 53, 13, 5, 115,
	1120, 8, 726, 13, 2, 204, 23, 79, 53, 13, 5, 199, 8, 726, 13, 2,
	204, 23, 93, 76, 13, 5, 435, 8, 726, 13, 2, 204, 23, 93, 53, 13,
	5, 435, 8, 359, 229, 13, 5, 439, 8, 70, 63, 53, 441, 5, 1029, 441,
	5, 10339, 441, 5, 9266, 441, 5, 1663, 441, 5, 1749, 441, 5, 8406, 441, 5,
	8101, 441, 5, 5773, 441, 5, 11193, 441, 5, 8769, 441, 5, 7270, 441, 5, 6938,
	441, 5, 1689, 441, 5, 8342, 441, 5, 7452, 441, 5, 7580, 441, 5, 10294, 441,
	5, 6867, 441, 5, 11611, 441, 5, 10748, 441, 5, 1516, 441, 5, 9660, 441, 5,
	8011, 441, 5, 6453, 441, 5, 4118, 441, 5, 3408, 441, 5, 3491, 441, 5, 10782,
	441, 5, 4222, 441, 5, 10343, 441, 5, 10220, 441, 5, 6841, 441, 5, 83, 441,
	5, 1012, 441, 5, 5757, 441, 5, 7533, 441, 5, 9881, 441, 5, 11317, 441, 5706,
	441, 5611, 441, 7925, 441, 7123, 441, 11043, 441, 9538, 441, 7119, 441, 7201, 441, 9514,
	441, 9506, 441, 1260, 441, 5, 1454, 379, 23, 254, 379, 23, 67, 379, 23, 70,
	379, 23, 79, 379, 23, 93, 379, 23, 100, 379, 23, 139, 379, 23, 157, 379,
	23, 140, 379, 23, 160, 379, 5, 24, 379, 5, 496, 379, 5, 73, 379, 5,
	51, 379, 5, 60, 379, 5, 454, 379, 5, 68, 379, 5, 6848, 379, 5, 151,
	379, 5, 251, 379, 5, 119, 379, 5, 196, 379, 5, 317, 379, 5, 358, 379,
	5, 217, 379, 5, 173, 379, 5, 769, 379, 5, 195, 379, 5, 2237, 379, 5,
	502, 379, 5, 106, 379, 5, 202, 379, 5, 185, 4184, 379, 5, 182, 379, 5,
	363, 379, 5, 185, 379, 5, 143, 379, 5, 286, 379, 5, 179, 379, 5, 363,
	4184, 379, 5, 2289, 317, 379, 5, 2289, 358, 379, 5, 2289, 173, 379, 43, 295,
	156, 110, 379, 43, 295, 145, 110, 379, 43, 295, 891, 110, 379, 43, 187, 2185,
	110, 379, 43, 187, 156, 110, 379, 43, 187, 145, 110, 379, 43, 187, 891, 110,
	379, 43, 2371, 56, 379, 43, 55, 77, 53, 379, 156, 110, 1117, 379, 145, 110,
	1117, 379, 16, 454, 6924, 379, 16, 7473, 379, 383, 379, 672, 56, 379, 8360, 379,
	6860, 379, 7021, 6, 379, 10732, 6, 381, 5, 3029, 381, 5, 3110, 381, 5, 7458,
	381, 5, 6854, 381, 5, 2285, 381, 5, 1749, 381, 5, 1716, 381, 5, 2284, 381,
	5, 4083, 381, 5, 2036, 381, 5, 3472, 381, 5, 8346, 381, 5, 1893, 381, 5,
	394, 381, 5, 10419, 381, 5, 372, 381, 5, 1023, 381, 5, 10917, 381, 5, 9928,
	381, 5, 2460, 381, 5, 474, 381, 5, 10714, 381, 56, 372, 381, 56, 372, 2,
	3029, 381, 56, 9519, 381, 56, 701, 381, 75, 5, 3301, 2036, 381, 56, 3301, 2036,
	381, 26, 6, 187, 51, 381, 26, 6, 51, 381, 26, 6, 3781, 263, 381, 26,
	6, 187, 263, 381, 26, 6, 263, 381, 26, 6, 3781, 24, 381, 26, 6, 187,
	24, 381, 26, 6, 24, 381, 75, 5, 295, 24, 381, 26, 6, 295, 24, 381,
	26, 6, 187, 60, 381, 26, 6, 60, 381, 75, 5, 73, 381, 26, 6, 187,
	73, 381, 26, 6, 73, 381, 26, 6, 68, 381, 26, 6, 1260, 381, 56, 3699,
	381, 225, 3699, 381, 225, 5738, 381, 225, 5797, 381, 225, 6157, 381, 225, 5887, 381,
	225, 10361, 381, 774, 56, 381, 225, 8776, 3863, 381, 225, 11660, 381, 225, 3863, 381,
	225, 11600, 381, 225, 10964, 381, 225, 5846, 381, 225, 3999, 8733, 381, 225, 5814, 623,
	5, 7668, 623, 5, 741, 623, 5, 1739, 623, 5, 1283, 623, 5, 970, 623, 5,
	11099, 623, 5, 3074, 623, 5, 2284, 623, 5, 5890, 623, 5, 5763, 623, 5, 1371,
	623, 5, 775, 623, 5, 1067, 623, 5, 524, 623, 5, 755, 623, 5, 372, 623,
	5, 3048, 623, 5, 5881, 623, 5, 1532, 623, 5, 1186, 623, 5, 403, 623, 5,
	653, 623, 5, 7049, 623, 5, 8107, 623, 5, 475, 623, 5734, 56, 623, 11248, 56,
	623, 1578, 56, 623, 225, 262, 5, 171, 312, 262, 5, 171, 317, 262, 5, 171,
	363, 262, 5, 171, 436, 262, 5, 171, 481, 262, 5, 171, 1636, 262, 5, 171,
	483, 262, 5, 171, 173, 262, 5, 171, 657, 262, 5, 171, 1448, 262, 5, 171,
	518, 13, 5, 144, 8, 742, 912, 13, 5, 144, 8, 742, 442, 45, 912, 13,
	5, 144, 8, 45, 94, 89, 13, 5, 144, 8, 48, 94, 89, 13, 5, 144,
	8, 742, 916, 13, 5, 144, 8, 742, 521, 45, 916, 13, 5, 144, 8, 742,
	855, 77, 53, 13, 5, 144, 8, 742, 45, 855, 77, 13, 5, 144, 8, 742,
	48, 855, 77, 13, 5, 144, 8, 742, 855, 77, 76, 13, 5, 144, 8, 77,
	53, 13, 5, 144, 8, 742, 442, 45, 912, 34, 77, 53, 13, 5, 144, 8,
	45, 94, 89, 34, 77, 53, 13, 5, 144, 8, 742, 521, 45, 916, 34, 77,
	53, 13, 5, 144, 8, 742, 442, 45, 912, 34, 48, 190, 13, 5, 144, 8,
	45, 94, 89, 34, 48, 190, 13, 5, 144, 8, 742, 521, 45, 916, 34, 48,
	190, 13, 5, 144, 8, 742, 45, 299, 13, 5, 144, 8, 742, 48, 299, 13,
	1496, 8, 3783, 299, 13, 1496, 8, 3783, 488, 13, 1496, 8, 70, 63, 76, 13,
	5, 1997, 115, 13, 3087, 855, 77, 13, 564, 855, 77, 13, 5, 355, 8, 359,
	7, 229, 13, 5, 199, 8, 359, 7, 229, 76, 13, 5, 520, 8, 77, 76,
	13, 5, 520, 8, 79, 63, 76, 13, 5, 985, 8, 70, 63, 1273, 76, 13,
	86, 323, 13, 1939, 56, 53, 13, 9721, 56, 53, 13, 7, 156, 720, 775, 2,
	8082, 13, 7, 145, 720, 7993, 13, 7, 145, 720, 7945, 13, 7, 145, 720, 10743,
	13, 1037, 11316, 13, 651, 144, 8883, 13, 1560, 1037, 13, 133, 1037, 172, 1037, 13,
	5, 476, 8, 7, 229, 76, 13, 5, 476, 8, 299, 53, 13, 5, 223, 8,
	70, 63, 53, 13, 5, 520, 8, 70, 63, 53, 13, 5, 526, 8, 77, 76,
	34, 79, 63, 53, 13, 5, 549, 8, 77, 76, 13, 5, 318, 8, 55, 146,
	13, 5, 108, 8, 79, 63, 53, 13, 5, 115, 8, 70, 63, 76, 34, 299,
	53, 13, 5, 115, 8, 70, 63, 76, 34, 77, 53, 13, 5, 531, 8, 658,
	13, 5, 488, 8, 77, 1362, 13, 5, 434, 115, 13, 5, 145, 144, 13, 5,
	782, 8, 79, 63, 76, 13, 5, 565, 8, 79, 63, 76, 13, 5, 1084, 8,
	359, 89, 13, 5, 550, 488, 13, 5, 867, 8, 359, 229, 53, 13, 5, 475,
	8, 79, 63, 76, 13, 5, 439, 8, 77, 76, 13, 5, 549, 8, 77, 76,
	34, 433, 63, 53, 13, 5, 476, 8, 7, 108, 53, 13, 5, 1156, 8, 7,
	108, 53, 13, 5, 423, 8, 7, 423, 53, 13, 5, 531, 8, 7, 355, 53,
	13, 5, 115, 8, 70, 63, 76, 34, 7, 355, 53, 13, 5, 1526, 526, 13,
	5, 1526, 549, 13, 5, 1526, 355, 13, 5, 1156, 8, 7, 229, 13, 5, 423,
	8, 7, 229, 13, 5, 1503, 8, 7, 229, 13, 5, 1353, 8, 7, 229, 13,
	5, 985, 8, 7, 229, 13, 5, 674, 8, 79, 63, 53, 13, 5, 1526, 549,
	8, 79, 63, 53, 13, 5, 223, 8, 79, 63, 53, 13, 5, 223, 8, 79,
	63, 76, 13, 5, 318, 8, 7, 13, 5, 520, 53, 13, 5, 7600, 13, 7,
	911, 115, 13, 7, 156, 911, 115, 13, 7, 156, 115, 1120, 8, 70, 63, 76,
	13, 7, 156, 720, 3926, 13, 7, 156, 934, 13, 252, 855, 77, 53, 13, 252,
	855, 77, 76, 13, 1260, 76, 13, 252, 125, 76, 13, 252, 855, 77, 786, 125,
	76, 13, 7, 145, 488, 13, 7, 156, 720, 1186, 2, 1672, 13, 7, 156, 565,
	13, 7, 156, 475, 13, 7, 156, 549, 13, 7, 156, 355, 8, 916, 13, 7,
	145, 355, 8, 916, 13, 7, 156, 720, 5882, 2, 10785, 13, 7, 156, 720, 755,
	2, 10228, 13, 7, 156, 720, 524, 2, 9186, 13, 7, 156, 720, 10235, 13, 7,
	156, 720, 9912, 13, 7, 156, 720, 11327, 13, 7, 156, 3331, 1228, 13, 7, 156,
	6, 3925, 13, 6988, 591, 95, 3072, 13, 191, 1021, 76, 13, 544, 912, 13, 544,
	1021, 13, 544, 916, 13, 544, 1303, 13, 544, 1554, 13, 544, 1605, 13, 110, 67,
	77, 53, 13, 110, 70, 63, 53, 13, 110, 658, 53, 13, 110, 67, 77, 76,
	13, 110, 70, 63, 76, 13, 110, 658, 76, 13, 189, 1303, 13, 189, 1554, 13,
	189, 1605, 13, 7, 156, 488, 13, 912, 8, 190, 13, 912, 8, 77, 53, 13,
	916, 8, 77, 76, 13, 48, 309, 53, 13, 45, 309, 53, 13, 48, 309, 76,
	13, 45, 309, 76, 13, 55, 45, 309, 53, 13, 55, 45, 309, 53, 8, 77,
	13, 45, 309, 53, 8, 77, 13, 1021, 8, 77, 13, 56, 791, 355, 1580, 137,
	6, 359, 559, 137, 6, 559, 137, 6, 419, 137, 6, 534, 137, 5, 295, 24,
	137, 5, 24, 137, 5, 263, 137, 5, 73, 137, 5, 300, 137, 5, 60, 137,
	5, 324, 137, 5, 149, 122, 137, 5, 149, 136, 137, 5, 873, 51, 137, 5,
	295, 51, 137, 5, 51, 137, 5, 292, 137, 5, 873, 68, 137, 5, 295, 68,
	137, 5, 68, 137, 5, 313, 137, 5, 106, 137, 5, 361, 137, 5, 224, 137,
	5, 459, 137, 5, 312, 137, 5, 325, 137, 5, 358, 137, 5, 317, 137, 5,
	547, 137, 5, 363, 137, 5, 436, 137, 5, 500, 137, 5, 437, 137, 5, 509,
	137, 5, 481, 137, 5, 196, 137, 5, 386, 137, 5, 217, 137, 5, 453, 137,
	5, 185, 137, 5, 1636, 137, 5, 119, 137, 5, 412, 137, 5, 251, 137, 5,
	483, 137, 5, 182, 137, 5, 179, 137, 5, 173, 137, 5, 769, 137, 5, 202,
	137, 5, 657, 137, 5, 1448, 137, 5, 413, 137, 5, 321, 137, 5, 518, 137,
	5, 195, 137, 5, 143, 137, 26, 6, 485, 137, 26, 6, 3772, 137, 6, 693,
	137, 6, 844, 137, 26, 6, 263, 137, 26, 6, 73, 137, 26, 6, 300, 137,
	26, 6, 60, 137, 26, 6, 324, 137, 26, 6, 149, 122, 137, 26, 6, 149,
	517, 137, 26, 6, 873, 51, 137, 26, 6, 295, 51, 137, 26, 6, 51, 137,
	26, 6, 292, 137, 26, 6, 873, 68, 137, 26, 6, 295, 68, 137, 26, 6,
	68, 137, 26, 6, 313, 137, 6, 505, 137, 26, 6, 2440, 51, 137, 26, 6,
	2106, 137, 954, 137, 1683, 6, 2014, 137, 1683, 6, 1530, 137, 315, 344, 137, 230,
	344, 137, 26, 6, 873, 187, 51, 137, 26, 6, 719, 137, 26, 6, 2581, 137,
	5, 768, 137, 5, 3496, 137, 5, 2243, 137, 5, 443, 137, 5, 3218, 137, 5,
	1162, 137, 5, 502, 137, 5, 2037, 137, 5, 149, 517, 137, 5, 149, 554, 137,
	26, 6, 149, 136, 137, 26, 6, 149, 554, 137, 604, 137, 55, 604, 137, 23,
	254, 137, 23, 67, 137, 23, 70, 137, 23, 79, 137, 23, 93, 137, 23, 100,
	137, 23, 139, 137, 23, 157, 137, 23, 140, 137, 23, 160, 137, 774, 6, 137,
	6, 156, 2505, 77, 137, 5, 873, 24, 137, 5, 485, 137, 5, 3772, 137, 5,
	2106, 137, 5, 719, 137, 5, 2581, 137, 5, 8730, 437, 137, 5, 740, 137, 5,
	96, 179, 137, 5, 1417, 137, 5, 1600, 137, 5, 552, 322, 137, 5, 1781, 137,
	5, 1289, 243, 2100, 243, 6, 559, 243, 6, 419, 243, 6, 534, 243, 5, 24,
	243, 5, 263, 243, 5, 73, 243, 5, 300, 243, 5, 60, 243, 5, 324, 243,
	5, 149, 122, 243, 5, 149, 136, 243, 5, 51, 243, 5, 292, 243, 5, 68,
	243, 5, 313, 243, 5, 106, 243, 5, 361, 243, 5, 224, 243, 5, 459, 243,
	5, 312, 243, 5, 325, 243, 5, 358, 243, 5, 317, 243, 5, 547, 243, 5,
	363, 243, 5, 436, 243, 5, 500, 243, 5, 437, 243, 5, 509, 243, 5, 481,
	243, 5, 196, 243, 5, 386, 243, 5, 217, 243, 5, 453, 243, 5, 185, 243,
	5, 119, 243, 5, 412, 243, 5, 251, 243, 5, 483, 243, 5, 182, 243, 5,
	179, 243, 5, 173, 243, 5, 202, 243, 5, 321, 243, 5, 518, 243, 5, 195,
	243, 5, 143, 243, 6, 693, 243, 6, 844, 243, 26, 6, 263, 243, 26, 6,
	73, 243, 26, 6, 300, 243, 26, 6, 60, 243, 26, 6, 324, 243, 26, 6,
	149, 122, 243, 26, 6, 149, 517, 243, 26, 6, 51, 243, 26, 6, 292, 243,
	26, 6, 68, 243, 26, 6, 313, 243, 6, 505, 243, 5, 8179, 196, 243, 313,
	731, 56, 243, 5, 769, 243, 5, 1162, 243, 5, 2037, 243, 5, 149, 517, 243,
	5, 149, 554, 243, 26, 6, 149, 136, 243, 26, 6, 149, 554, 243, 23, 254,
	243, 23, 67, 243, 23, 70, 243, 23, 79, 243, 23, 93, 243, 23, 100, 243,
	23, 139, 243, 23, 157, 243, 23, 140, 243, 23, 160, 243, 5, 173, 8, 94,
	186, 243, 5, 173, 8, 134, 186, 243, 1247, 56, 243, 1247, 6, 243, 1020, 1461,
	67, 243, 1020, 1461, 70, 243, 1020, 1461, 79, 243, 1020, 1461, 93, 243, 1020, 1461,
	67, 384, 178, 487, 3231, 243, 1020, 3231, 1106, 243, 3454, 243, 7461, 56, 243, 5,
	457, 419, 243, 774, 6, 243, 1163, 56, 298, 6, 5714, 3107, 298, 6, 3107, 298,
	6, 534, 298, 5, 24, 298, 5, 263, 298, 5, 73, 298, 5, 300, 298, 5,
	60, 298, 5, 324, 298, 5, 496, 298, 5, 292, 298, 5, 454, 298, 5, 313,
	298, 5, 106, 298, 5, 361, 298, 5, 224, 298, 5, 459, 298, 5, 312, 298,
	5, 325, 298, 5, 358, 298, 5, 317, 298, 5, 547, 298, 5, 363, 298, 5,
	436, 298, 5, 500, 298, 5, 437, 298, 5, 509, 298, 5, 481, 298, 5, 196,
	298, 5, 386, 298, 5, 217, 298, 5, 453, 298, 5, 185, 298, 5, 119, 298,
	5, 412, 298, 5, 251, 298, 5, 483, 298, 5, 182, 298, 5, 179, 298, 5,
	173, 298, 5, 202, 298, 5, 657, 298, 5, 413, 298, 5, 321, 298, 5, 195,
	298, 5, 143, 298, 6, 693, 298, 26, 6, 263, 298, 26, 6, 73, 298, 26,
	6, 300, 298, 26, 6, 60, 298, 26, 6, 324, 298, 26, 6, 496, 298, 26,
	6, 292, 298, 26, 6, 454, 298, 26, 6, 313, 298, 6, 505, 298, 6, 11044,
	298, 5, 3496, 298, 5, 2243, 298, 5, 443, 298, 5, 769, 298, 5, 502, 298,
	23, 254, 298, 23, 67, 298, 23, 70, 298, 23, 79, 298, 23, 93, 298, 23,
	100, 298, 23, 139, 298, 23, 157, 298, 23, 140, 298, 23, 160, 298, 10837, 298,
	5715, 298, 7988, 298, 11090, 298, 1404, 9536, 298, 6, 11480, 298, 774, 6, 255, 6,
	559, 255, 6, 419, 255, 6, 534, 255, 5, 24, 255, 5, 263, 255, 5, 73,
	255, 5, 300, 255, 5, 60, 255, 5, 324, 255, 5, 149, 122, 255, 5, 149,
	136, 255, 26, 873, 51, 255, 5, 51, 255, 5, 292, 255, 26, 873, 68, 255,
	5, 68, 255, 5, 313, 255, 5, 106, 255, 5, 361, 255, 5, 224, 255, 5,
	459, 255, 5, 312, 255, 5, 325, 255, 5, 358, 255, 5, 317, 255, 5, 547,
	255, 5, 363, 255, 5, 436, 255, 5, 500, 255, 5, 437, 255, 5, 509, 255,
	5, 481, 255, 5, 196, 255, 5, 386, 255, 5, 217, 255, 5, 453, 255, 5,
	185, 255, 5, 119, 255, 5, 412, 255, 5, 251, 255, 5, 483, 255, 5, 182,
	255, 5, 179, 255, 5, 173, 255, 5, 202, 255, 5, 657, 255, 5, 413, 255,
	5, 321, 255, 5, 518, 255, 5, 195, 255, 5, 143, 255, 6, 693, 255, 6,
	844, 255, 26, 6, 263, 255, 26, 6, 73, 255, 26, 6, 300, 255, 26, 6,
	60, 255, 26, 6, 324, 255, 26, 6, 149, 122, 255, 26, 6, 149, 517, 255,
	26, 6, 873, 51, 255, 26, 6, 51, 255, 26, 6, 292, 255, 26, 6, 873,
	68, 255, 26, 6, 68, 255, 26, 6, 313, 255, 6, 505, 255, 954, 255, 5,
	149, 517, 255, 5, 149, 554, 255, 26, 6, 149, 136, 255, 26, 6, 149, 554,
	255, 23, 254, 255, 23, 67, 255, 23, 70, 255, 23, 79, 255, 23, 93, 255,
	23, 100, 255, 23, 139, 255, 23, 157, 255, 23, 140, 255, 23, 160, 255, 774,
	6, 255, 1247, 6, 255, 5, 740, 255, 6, 1260, 255, 6, 924, 255, 6, 3624,
	255, 6, 79, 2, 77, 693, 53, 255, 6, 125, 693, 53, 255, 6, 70, 2,
	125, 693, 53, 258, 6, 559, 258, 6, 419, 258, 6, 534, 258, 5, 24, 258,
	5, 263, 258, 5, 73, 258, 5, 300, 258, 5, 60, 258, 5, 324, 258, 5,
	149, 122, 258, 5, 149, 136, 258, 5, 51, 258, 5, 292, 258, 5, 68, 258,
	5, 313, 258, 5, 106, 258, 5, 361, 258, 5, 224, 258, 5, 459, 258, 5,
	312, 258, 5, 325, 258, 5, 358, 258, 5, 317, 258, 5, 547, 258, 5, 363,
	258, 5, 436, 258, 5, 500, 258, 5, 437, 258, 5, 509, 258, 5, 481, 258,
	5, 196, 258, 5, 386, 258, 5, 217, 258, 5, 453, 258, 5, 185, 258, 5,
	119, 258, 5, 412, 258, 5, 251, 258, 5, 483, 258, 5, 182, 258, 5, 179,
	258, 5, 173, 258, 5, 202, 258, 5, 657, 258, 5, 413, 258, 5, 321, 258,
	5, 518, 258, 5, 195, 258, 5, 143, 258, 6, 693, 258, 6, 844, 258, 26,
	6, 263, 258, 26, 6, 73, 258, 26, 6, 300, 258, 26, 6, 60, 258, 26,
	6, 324, 258, 26, 6, 149, 122, 258, 26, 6, 149, 517, 258, 26, 6, 51,
	258, 26, 6, 292, 258, 26, 6, 68, 258, 26, 6, 313, 258, 6, 505, 258,
	6, 1242, 258, 292, 731, 56, 258, 313, 731, 56, 258, 5, 769, 258, 5, 1162,
	258, 5, 2037, 258, 5, 149, 517, 258, 5, 149, 554, 258, 26, 6, 149, 136,
	258, 26, 6, 149, 554, 258, 23, 254, 258, 23, 67, 258, 23, 70, 258, 23,
	79, 258, 23, 93, 258, 23, 100, 258, 23, 139, 258, 23, 157, 258, 23, 140,
	258, 23, 160, 258, 3454, 258, 5, 286, 258, 234, 67, 516, 258, 234, 67, 133,
	258, 234, 79, 890, 258, 234, 67, 1254, 258, 234, 67, 511, 258, 234, 79, 1978,
	168, 6, 419, 168, 6, 534, 168, 5, 24, 168, 5, 263, 168, 5, 73, 168,
	5, 300, 168, 5, 60, 168, 5, 324, 168, 5, 51, 168, 5, 496, 168, 5,
	292, 168, 5, 68, 168, 5, 454, 168, 5, 313, 168, 5, 106, 168, 5, 312,
	168, 5, 325, 168, 5, 317, 168, 5, 363, 168, 5, 436, 168, 5, 481, 168,
	5, 196, 168, 5, 185, 168, 5, 1636, 168, 5, 119, 168, 5, 182, 168, 5,
	179, 168, 5, 173, 168, 5, 769, 168, 5, 202, 168, 5, 657, 168, 5, 1448,
	168, 5, 413, 168, 5, 321, 168, 5, 518, 168, 5, 195, 168, 5, 143, 168,
	26, 6, 263, 168, 26, 6, 73, 168, 26, 6, 300, 168, 26, 6, 60, 168,
	26, 6, 324, 168, 26, 6, 51, 168, 26, 6, 496, 168, 26, 6, 292, 168,
	26, 6, 68, 168, 26, 6, 454, 168, 26, 6, 313, 168, 6, 505, 168, 954,
	168, 313, 731, 56, 168, 23, 254, 168, 23, 67, 168, 23, 70, 168, 23, 79,
	168, 23, 93, 168, 23, 100, 168, 23, 139, 168, 23, 157, 168, 23, 140, 168,
	23, 160, 168, 41, 280, 168, 41, 67, 159, 168, 41, 67, 203, 168, 569, 6,
	168, 2360, 6, 168, 4204, 6, 168, 6901, 6, 168, 2163, 6, 168, 755, 53, 6,
	168, 1247, 6, 168, 41, 6, 228, 6, 43, 559, 53, 228, 6, 559, 228, 6,
	419, 228, 6, 534, 228, 6, 43, 419, 53, 228, 5, 24, 228, 5, 263, 228,
	5, 73, 228, 5, 300, 228, 5, 60, 228, 5, 324, 228, 5, 149, 122, 228,
	5, 149, 136, 228, 5, 51, 228, 5, 496, 228, 5, 292, 228, 5, 68, 228,
	5, 454, 228, 5, 313, 228, 5, 106, 228, 5, 361, 228, 5, 224, 228, 5,
	459, 228, 5, 312, 228, 5, 325, 228, 5, 358, 228, 5, 317, 228, 5, 547,
	228, 5, 363, 228, 5, 436, 228, 5, 500, 228, 5, 437, 228, 5, 509, 228,
	5, 481, 228, 5, 196, 228, 5, 386, 228, 5, 217, 228, 5, 453, 228, 5,
	185, 228, 5, 119, 228, 5, 412, 228, 5, 251, 228, 5, 483, 228, 5, 182,
	228, 5, 179, 228, 5, 173, 228, 5, 769, 228, 5, 202, 228, 5, 657, 228,
	5, 1448, 228, 5, 413, 228, 5, 321, 228, 5, 518, 228, 5, 195, 228, 5,
	143, 228, 6, 693, 228, 6, 844, 228, 26, 6, 263, 228, 26, 6, 73, 228,
	26, 6, 300, 228, 26, 6, 60, 228, 26, 6, 324, 228, 26, 6, 149, 122,
	228, 26, 6, 149, 517, 228, 26, 6, 51, 228, 26, 6, 496, 228, 26, 6,
	292, 228, 26, 6, 68, 228, 26, 6, 454, 228, 26, 6, 313, 228, 6, 505,
	228, 731, 56, 228, 292, 731, 56, 228, 5, 612, 228, 5, 942, 228, 5, 10114,
	228, 5, 3684, 3838, 228, 5, 149, 517, 228, 5, 149, 554, 228, 26, 6, 149,
	136, 228, 26, 6, 149, 554, 228, 23, 254, 228, 23, 67, 228, 23, 70, 228,
	23, 79, 228, 23, 93, 228, 23, 100, 228, 23, 139, 228, 23, 157, 228, 23,
	140, 228, 23, 160, 228, 6, 238, 228, 234, 23, 254, 54, 1329, 1334, 95, 93,
	228, 234, 23, 67, 54, 1329, 1334, 95, 93, 228, 234, 23, 70, 54, 1329, 1334,
	95, 93, 228, 234, 23, 79, 54, 1329, 1334, 95, 93, 228, 234, 23, 67, 54,
	1411, 1334, 95, 93, 228, 234, 23, 70, 54, 1411, 1334, 95, 93, 228, 234, 23,
	79, 54, 1411, 1334, 95, 93, 228, 6, 10969, 260, 6, 2505, 559, 260, 6, 559,
	260, 6, 419, 260, 6, 534, 260, 6, 238, 260, 5, 24, 260, 5, 263, 260,
	5, 73, 260, 5, 300, 260, 5, 60, 260, 5, 324, 260, 5, 149, 122, 260,
	5, 149, 136, 260, 5, 51, 260, 5, 496, 260, 5, 292, 260, 5, 68, 260,
	5, 454, 260, 5, 313, 260, 5, 106, 260, 5, 361, 260, 5, 224, 260, 5,
	459, 260, 5, 312, 260, 5, 325, 260, 5, 358, 260, 5, 317, 260, 5, 547,
	260, 5, 363, 260, 5, 436, 260, 5, 500, 260, 5, 437, 260, 5, 509, 260,
	5, 481, 260, 5, 196, 260, 5, 386, 260, 5, 217, 260, 5, 453, 260, 5,
	185, 260, 5, 119, 260, 5, 412, 260, 5, 251, 260, 5, 483, 260, 5, 182,
	260, 5, 179, 260, 5, 173, 260, 5, 769, 260, 5, 202, 260, 5, 657, 260,
	5, 413, 260, 5, 321, 260, 5, 518, 260, 5, 195, 260, 5, 143, 260, 6,
	693, 260, 6, 844, 260, 26, 6, 263, 260, 26, 6, 73, 260, 26, 6, 300,
	260, 26, 6, 60, 260, 26, 6, 324, 260, 26, 6, 149, 122, 260, 26, 6,
	149, 517, 260, 26, 6, 51, 260, 26, 6, 496, 260, 26, 6, 292, 260, 26,
	6, 68, 260, 26, 6, 454, 260, 26, 6, 313, 260, 6, 505, 260, 731, 56,
	260, 292, 731, 56, 260, 5, 3684, 3838, 260, 5, 502, 260, 5, 149, 517, 260,
	5, 149, 554, 260, 26, 6, 149, 136, 260, 26, 6, 149, 554, 260, 23, 254,
	260, 23, 67, 260, 23, 70, 260, 23, 79, 260, 23, 93, 260, 23, 100, 260,
	23, 139, 260, 23, 157, 260, 23, 140, 260, 23, 160, 260, 6, 1435, 260, 6,
	1507, 171, 6, 43, 419, 53, 171, 6, 559, 171, 6, 419, 171, 6, 534, 171,
	5, 457, 419, 171, 5, 24, 171, 5, 263, 171, 5, 73, 171, 5, 300, 171,
	5, 60, 171, 5, 324, 171, 5, 149, 122, 171, 5, 149, 136, 171, 5, 51,
	171, 5, 496, 171, 5, 292, 171, 5, 68, 171, 5, 454, 171, 5, 313, 171,
	5, 106, 171, 5, 361, 171, 5, 224, 171, 5, 459, 171, 5, 312, 171, 5,
	325, 171, 5, 358, 171, 5, 317, 171, 5, 547, 171, 5, 363, 171, 5, 436,
	171, 5, 500, 171, 5, 437, 171, 5, 509, 171, 5, 481, 171, 5, 196, 171,
	5, 386, 171, 5, 217, 171, 5, 453, 171, 5, 185, 171, 5, 1636, 171, 5,
	119, 171, 5, 412, 171, 5, 251, 171, 5, 483, 171, 5, 182, 171, 5, 179,
	171, 5, 173, 171, 5, 769, 171, 5, 202, 171, 5, 657, 171, 5, 1448, 171,
	5, 413, 171, 5, 321, 171, 5, 518, 171, 5, 195, 171, 5, 143, 171, 5,
	4123, 171, 6, 86, 146, 505, 171, 6, 1547, 505, 171, 6, 844, 171, 26, 6,
	263, 171, 26, 6, 73, 171, 26, 6, 300, 171, 26, 6, 60, 171, 26, 6,
	324, 171, 26, 6, 149, 122, 171, 26, 6, 149, 517, 171, 26, 6, 51, 171,
	26, 6, 496, 171, 26, 6, 292, 171, 26, 6, 68, 171, 26, 6, 454, 171,
	26, 6, 313, 171, 6, 505, 171, 5, 77, 10049, 171, 6, 3794, 171, 5, 1127,
	205, 171, 5, 1127, 218, 171, 5, 1127, 8450, 171, 313, 731, 56, 171, 234, 67,
	67, 2, 159, 2, 34, 2, 3985, 171, 234, 67, 3333, 171, 234, 79, 3289, 171,
	234, 67, 2577, 171, 234, 67, 2542, 171, 234, 79, 4129, 171, 234, 67, 2220, 171,
	5, 507, 300, 171, 5, 149, 517, 171, 5, 149, 554, 171, 26, 6, 149, 136,
	171, 26, 6, 149, 554, 171, 23, 254, 171, 23, 67, 171, 23, 70, 171, 23,
	79, 171, 23, 93, 171, 23, 100, 171, 23, 139, 171, 23, 157, 171, 23, 140,
	171, 23, 160, 171, 41, 280, 171, 41, 67, 159, 171, 41, 67, 203, 171, 234,
	67, 516, 171, 234, 67, 133, 171, 234, 79, 890, 171, 234, 67, 1254, 171, 234,
	67, 511, 171, 234, 79, 1978, 171, 3214, 56, 171, 5, 1127, 1635, 171, 5, 1127,
	151, 171, 5, 1127, 517, 171, 5, 1127, 136, 171, 5, 1127, 554, 171, 5, 1127,
	227, 207, 6, 559, 207, 6, 5822, 207, 6, 11245, 207, 5, 5913, 207, 5, 5621,
	207, 5, 5733, 207, 5, 5726, 207, 5, 8001, 207, 5, 7937, 207, 5, 11112, 207,
	5, 11109, 207, 5, 7990, 207, 5, 7989, 207, 5, 7944, 207, 5, 7942, 207, 5,
	7200, 207, 5, 7127, 207, 5, 5760, 207, 5, 9567, 207, 5, 9542, 207, 5, 5905,
	207, 5, 1066, 3481, 207, 5, 1092, 3481, 207, 5, 1066, 2235, 207, 5, 1092, 2235,
	207, 5, 8119, 3682, 207, 5, 1960, 2235, 207, 5, 1066, 3153, 207, 5, 1092, 3153,
	207, 5, 1066, 2286, 207, 5, 1092, 2286, 207, 5, 2535, 3682, 207, 5, 2535, 10255,
	9007, 207, 5, 1960, 2286, 207, 5, 1066, 4119, 207, 5, 1092, 4119, 207, 5, 1066,
	2178, 207, 5, 1092, 2178, 207, 5, 2367, 3691, 207, 5, 1960, 2178, 207, 5, 1066,
	4060, 207, 5, 1092, 4060, 207, 5, 1066, 2175, 207, 5, 1092, 2175, 207, 5, 2174,
	3691, 207, 5, 1960, 2175, 207, 5, 1066, 3801, 207, 5, 1092, 3801, 207, 5, 1066,
	2115, 207, 5, 1092, 2115, 207, 5, 8747, 207, 5, 5784, 2115, 207, 5, 11496, 207,
	5, 10025, 207, 5, 2174, 3539, 207, 5, 11210, 207, 5, 2535, 2471, 207, 5, 2367,
	2471, 207, 5, 2174, 2471, 207, 5, 7691, 207, 5, 2367, 3539, 207, 5, 7292, 207,
	6, 775, 2, 8363, 207, 26, 6, 2095, 2, 1043, 207, 26, 6, 2301, 3020, 2,
	1043, 207, 26, 6, 1295, 3020, 2, 1043, 207, 26, 6, 2301, 1216, 2, 1043, 207,
	26, 6, 1295, 1216, 2, 1043, 207, 26, 6, 2301, 1465, 2, 1043, 207, 26, 6,
	1295, 1465, 2, 1043, 207, 26, 6, 3346, 2, 1043, 207, 26, 6, 1608, 207, 26,
	6, 1295, 1608, 207, 26, 6, 8246, 6914, 207, 26, 6, 1608, 1029, 2095, 2, 1043,
	207, 26, 6, 1608, 1029, 1295, 2095, 2, 1043, 207, 26, 6, 1608, 1029, 2236, 207,
	26, 6, 2236, 207, 1089, 23, 254, 207, 1089, 23, 67, 207, 1089, 23, 70, 207,
	1089, 23, 79, 207, 1089, 23, 93, 207, 1089, 23, 100, 207, 1089, 23, 139, 207,
	1089, 23, 157, 207, 1089, 23, 140, 207, 1089, 23, 160, 207, 26, 6, 1295, 3346,
	2, 1043, 207, 26, 6, 1295, 2236, 207, 225, 8282, 272, 22, 606, 1436, 272, 22,
	986, 3492, 272, 22, 986, 8190, 272, 22, 986, 8192, 272, 22, 986, 8185, 272, 22,
	986, 10012, 272, 22, 1328, 9152, 272, 22, 1017, 6446, 272, 22, 1017, 6479, 272, 22,
	1017, 6447, 272, 22, 574, 574, 272, 22, 1017, 6491, 272, 22, 416, 11520, 272, 22,
	725, 6440, 272, 22, 83, 9655, 272, 22, 750, 178, 272, 22, 750, 9013, 272, 22,
	750, 9718, 272, 22, 433, 2379, 272, 22, 725, 6913, 272, 22, 83, 10737, 272, 22,
	750, 10809, 272, 22, 750, 10783, 272, 22, 750, 4079, 272, 22, 433, 555, 272, 22,
	973, 6134, 272, 22, 808, 1934, 272, 22, 1042, 9717, 272, 22, 1028, 502, 272, 22,
	1042, 9707, 272, 22, 1028, 3315, 272, 22, 1042, 10246, 272, 22, 607, 182, 272, 22,
	416, 2605, 272, 22, 585, 10131, 272, 22, 630, 272, 22, 765, 3556, 272, 22, 679,
	272, 22, 588, 11319, 272, 22, 574, 10236, 272, 22, 574, 10148, 272, 22, 574, 2524,
	272, 22, 553, 1424, 272, 22, 765, 6499, 272, 22, 68, 935, 272, 22, 553, 9262,
	272, 22, 9598, 272, 22, 923, 24, 272, 22, 732, 2254, 2, 5761, 272, 22, 923,
	263, 272, 22, 923, 1067, 272, 22, 923, 73, 272, 22, 923, 300, 272, 22, 923,
	719, 272, 22, 923, 11049, 272, 22, 923, 60, 272, 22, 923, 324, 272, 22, 9710,
	272, 1020, 16, 6133, 272, 22, 923, 51, 272, 22, 923, 543, 272, 22, 923, 68,
	272, 22, 923, 292, 8699, 272, 22, 923, 292, 8698, 272, 22, 8362, 272, 22, 8702,
	272, 22, 8701, 272, 22, 732, 1404, 272, 22, 732, 750, 272, 22, 732, 10887, 272,
	22, 732, 6451, 272, 22, 10788, 272, 22, 9178, 272, 22, 11483, 272, 22, 7348, 272,
	23, 254, 272, 23, 67, 272, 23, 70, 272, 23, 79, 272, 23, 93, 272, 23,
	100, 272, 23, 139, 272, 23, 157, 272, 23, 140, 272, 23, 160, 272, 22, 5800,
	272, 22, 8184, 287, 5, 606, 287, 5, 986, 1493, 287, 5, 986, 1351, 287, 5,
	958, 459, 287, 5, 1328, 287, 5, 976, 287, 5, 958, 358, 287, 5, 574, 1351,
	287, 5, 958, 547, 287, 5, 1154, 287, 5, 958, 363, 287, 5, 958, 436, 287,
	5, 958, 500, 287, 5, 958, 437, 287, 5, 958, 509, 287, 5, 958, 481, 287,
	5, 725, 287, 5, 83, 287, 5, 750, 1493, 287, 5, 750, 1351, 287, 5, 958,
	453, 287, 5, 433, 287, 5, 973, 287, 5, 808, 287, 5, 1042, 1493, 287, 5,
	1028, 1351, 287, 5, 1042, 1351, 287, 5, 1028, 1493, 287, 5, 958, 483, 287, 5,
	607, 287, 5, 416, 287, 5, 765, 3556, 287, 5, 765, 3567, 287, 5, 588, 287,
	5, 3932, 321, 287, 5, 3932, 518, 287, 5, 574, 1493, 287, 5, 553, 1493, 287,
	5, 958, 657, 287, 5, 68, 287, 5, 553, 1351, 287, 1206, 287, 26, 6, 24,
	287, 26, 6, 732, 1437, 287, 26, 6, 263, 287, 26, 6, 1067, 287, 26, 6,
	73, 287, 26, 6, 300, 287, 26, 6, 218, 287, 26, 6, 2614, 287, 26, 6,
	60, 287, 26, 6, 324, 287, 6, 958, 505, 287, 26, 6, 732, 3506, 287, 3945,
	6, 765, 287, 3945, 6, 1154, 287, 26, 6, 51, 287, 26, 6, 1133, 287, 26,
	6, 68, 287, 26, 6, 971, 287, 26, 6, 292, 287, 606, 202, 287, 110, 732,
	1404, 287, 110, 732, 750, 287, 110, 732, 686, 287, 110, 732, 6391, 287, 1763, 56,
	287, 9172, 287, 23, 254, 287, 23, 67, 287, 23, 70, 287, 23, 79, 287, 23,
	93, 287, 23, 100, 287, 23, 139, 287, 23, 157, 287, 23, 140, 287, 23, 160,
	287, 553, 433, 287, 553, 607, 287, 5, 3498, 914, 287, 5, 3498, 1154, 107, 9,
	954, 107, 56, 1585, 1010, 886, 10909, 24, 107, 56, 1585, 1010, 886, 3, 1059, 3908,
	3095, 182, 107, 56, 1585, 1010, 886, 3, 1059, 1585, 1058, 182, 107, 56, 105, 1010,
	886, 3642, 182, 107, 56, 1548, 1010, 886, 3949, 182, 107, 56, 1072, 1010, 886, 3819,
	858, 182, 107, 56, 1010, 886, 1058, 858, 182, 107, 56, 10271, 858, 107, 56, 6288,
	1010, 886, 107, 56, 6247, 4, 3962, 1010, 886, 107, 56, 7978, 1058, 107, 56, 1784,
	1058, 6289, 107, 56, 858, 107, 56, 1913, 858, 107, 56, 1058, 858, 107, 56, 1913,
	1058, 858, 107, 56, 10077, 6463, 10507, 858, 107, 56, 3900, 3380, 858, 107, 56, 1072,
	3, 3272, 963, 539, 187, 905, 107, 56, 1585, 1058, 107, 3565, 6, 6439, 963, 107,
	3565, 6, 8405, 963, 107, 1118, 6, 10324, 7480, 3, 1543, 963, 107, 1118, 6, 3,
	8193, 119, 107, 1118, 6, 10287, 10924, 107, 6, 1101, 1557, 3358, 107, 6, 1101, 1557,
	3376, 107, 6, 1101, 1557, 2251, 107, 6, 1101, 1625, 3358, 107, 6, 1101, 1625, 3376,
	107, 6, 1101, 1557, 1101, 1625, 107, 23, 254, 107, 23, 67, 107, 23, 70, 107,
	23, 79, 107, 23, 93, 107, 23, 100, 107, 23, 139, 107, 23, 157, 107, 23,
	140, 107, 23, 160, 107, 23, 133, 67, 107, 23, 133, 70, 107, 23, 133, 79,
	107, 23, 133, 93, 107, 23, 133, 100, 107, 23, 133, 139, 107, 23, 133, 157,
	107, 23, 133, 140, 107, 23, 133, 160, 107, 23, 133, 254, 107, 56, 6286, 963,
	107, 56, 3702, 3142, 920, 4233, 107, 56, 1072, 3, 3272, 963, 2132, 3658, 905, 107,
	56, 3702, 3142, 10323, 963, 107, 56, 700, 886, 107, 56, 612, 3, 9715, 107, 56,
	3386, 963, 3395, 107, 56, 3386, 963, 3394, 107, 56, 935, 3494, 3395, 107, 56, 935,
	3494, 3394, 107, 6, 4200, 4113, 107, 6, 3633, 4113, 107, 5, 106, 107, 5, 361,
	107, 5, 224, 107, 5, 459, 107, 5, 312, 107, 5, 325, 107, 5, 358, 107,
	5, 317, 107, 5, 363, 107, 5, 436, 107, 5, 500, 107, 5, 437, 107, 5,
	509, 107, 5, 481, 107, 5, 196, 107, 5, 386, 107, 5, 217, 107, 5, 453,
	107, 5, 185, 107, 5, 119, 107, 5, 412, 107, 5, 251, 107, 5, 483, 107,
	5, 182, 107, 5, 612, 107, 5, 897, 107, 5, 942, 107, 5, 1562, 107, 5,
	286, 107, 5, 740, 107, 5, 443, 107, 5, 3, 24, 107, 5, 179, 107, 5,
	173, 107, 5, 202, 107, 5, 321, 107, 5, 518, 107, 5, 195, 107, 5, 143,
	107, 5, 24, 107, 5, 1612, 107, 5, 1812, 2, 25, 173, 107, 5, 2305, 107,
	5, 769, 107, 26, 6, 263, 107, 26, 6, 73, 107, 26, 6, 300, 107, 26,
	6, 60, 107, 26, 6, 324, 107, 26, 6, 149, 122, 107, 26, 6, 149, 517,
	107, 26, 6, 149, 136, 107, 26, 6, 149, 554, 107, 26, 6, 51, 107, 26,
	6, 496, 107, 26, 6, 68, 107, 26, 6, 454, 107, 6, 10086, 611, 312, 585,
	107, 6, 3908, 3095, 107, 26, 6, 261, 73, 107, 26, 6, 261, 300, 107, 6,
	920, 4233, 1454, 217, 107, 6, 10453, 8386, 107, 56, 2253, 107, 56, 9606, 107, 6,
	8383, 963, 107, 6, 1008, 963, 107, 6, 3540, 612, 905, 107, 6, 1889, 905, 107,
	6, 3384, 905, 3902, 107, 6, 3384, 8766, 3902, 107, 6, 359, 1889, 905, 107, 279,
	6, 3540, 612, 905, 107, 279, 6, 1889, 905, 107, 279, 6, 359, 1889, 905, 107,
	279, 5, 106, 107, 279, 5, 361, 107, 279, 5, 224, 107, 279, 5, 459, 107,
	279, 5, 312, 107, 279, 5, 325, 107, 279, 5, 358, 107, 279, 5, 317, 107,
	279, 5, 363, 107, 279, 5, 436, 107, 279, 5, 500, 107, 279, 5, 437, 107,
	279, 5, 509, 107, 279, 5, 481, 107, 279, 5, 196, 107, 279, 5, 386, 107,
	279, 5, 217, 107, 279, 5, 453, 107, 279, 5, 185, 107, 279, 5, 119, 107,
	279, 5, 412, 107, 279, 5, 251, 107, 279, 5, 483, 107, 279, 5, 182, 107,
	279, 5, 612, 107, 279, 5, 897, 107, 279, 5, 942, 107, 279, 5, 1562, 107,
	279, 5, 286, 107, 279, 5, 740, 107, 279, 5, 443, 107, 279, 5, 3, 24,
	107, 279, 5, 179, 107, 279, 5, 173, 107, 279, 5, 202, 107, 279, 5, 321,
	107, 279, 5, 518, 107, 279, 5, 195, 107, 279, 5, 143, 107, 279, 5, 24,
	107, 279, 5, 1612, 107, 279, 5, 1812, 2, 25, 286, 107, 279, 5, 1812, 2,
	25, 179, 107, 279, 5, 1812, 2, 25, 173, 107, 620, 630, 361, 107, 620, 630,
	361, 2132, 3658, 905, 107, 1764, 6, 96, 3097, 107, 1764, 6, 148, 3097, 107, 1764,
	6, 6372, 440, 2, 60, 107, 1764, 6, 10272, 3, 6442, 107, 16, 7028, 670, 107,
	16, 3881, 3907, 107, 16, 9592, 7481, 107, 16, 3881, 3907, 3900, 3380, 107, 16, 3819,
	119, 107, 16, 918, 670, 107, 16, 918, 670, 1913, 3, 2303, 107, 16, 918, 670,
	2251, 3, 2303, 107, 16, 918, 670, 2132, 3, 2303, 107, 6, 1101, 1625, 1101, 1557,
	107, 6, 1101, 1625, 2251, 107, 56, 6287, 4, 3962, 703, 886, 3901, 107, 56, 8873,
	1010, 703, 886, 3901, 107, 56, 1913, 1058, 107, 56, 105, 3131, 3909, 1010, 886, 3642,
	182, 107, 56, 1548, 3131, 3909, 1010, 886, 3949, 182, 45, 2, 910, 1993, 6, 48,
	2, 910, 1993, 6, 45, 2, 910, 1993, 6, 8, 63, 48, 2, 910, 1993, 6,
	8, 63, 107, 56, 8388, 3641, 963, 107, 56, 10877, 3641, 963, 97, 5, 106, 97,
	5, 361, 97, 5, 224, 97, 5, 459, 97, 5, 312, 97, 5, 325, 97, 5,
	358, 97, 5, 317, 97, 5, 547, 97, 5, 363, 97, 5, 9260, 97, 5, 436,
	97, 5, 500, 97, 5, 437, 97, 5, 509, 97, 5, 481, 97, 5, 196, 97,
	5, 386, 97, 5, 217, 97, 5, 453, 97, 5, 185, 97, 5, 119, 97, 5,
	412, 97, 5, 251, 97, 5, 483, 97, 5, 182, 97, 5, 179, 97, 5, 173,
	97, 5, 202, 97, 5, 286, 97, 5, 195, 97, 5, 143, 97, 5, 657, 97,
	5, 24, 97, 5, 474, 24, 97, 5, 73, 97, 5, 300, 97, 5, 60, 97,
	5, 324, 97, 5, 51, 97, 5, 951, 51, 97, 5, 68, 97, 5, 313, 97,
	26, 6, 1495, 263, 97, 26, 6, 263, 97, 26, 6, 73, 97, 26, 6, 300,
	97, 26, 6, 60, 97, 26, 6, 324, 97, 26, 6, 51, 97, 26, 6, 292,
	97, 26, 6, 951, 300, 97, 26, 6, 951, 68, 97, 26, 6, 51, 53, 97,
	6, 419, 97, 6, 77, 76, 97, 6, 534, 97, 6, 505, 97, 6, 5864, 97,
	267, 6, 236, 179, 97, 267, 6, 236, 173, 97, 267, 6, 236, 286, 97, 267,
	6, 236, 143, 97, 5, 1420, 195, 97, 23, 254, 97, 23, 67, 97, 23, 70,
	97, 23, 79, 97, 23, 93, 97, 23, 100, 97, 23, 139, 97, 23, 157, 97,
	23, 140, 97, 23, 160, 97, 6, 338, 532, 97, 6, 532, 97, 16, 8455, 97,
	16, 6668, 97, 16, 5736, 97, 16, 7494, 97, 5, 321, 97, 5, 518, 97, 5,
	149, 122, 97, 5, 149, 517, 97, 5, 149, 136, 97, 5, 149, 554, 97, 26,
	6, 149, 122, 97, 26, 6, 149, 517, 97, 26, 6, 149, 136, 97, 26, 6,
	149, 554, 97, 5, 951, 312, 97, 5, 951, 547, 97, 5, 951, 1289, 97, 5,
	951, 1536, 97, 267, 6, 951, 236, 185, 97, 267, 6, 951, 236, 182, 97, 267,
	6, 951, 236, 202, 97, 5, 1966, 805, 321, 97, 26, 6, 1966, 805, 761, 97,
	110, 56, 1966, 805, 7686, 97, 110, 56, 1966, 805, 647, 1042, 97, 5, 1114, 921,
	805, 386, 97, 5, 1114, 921, 805, 1659, 97, 26, 6, 1114, 921, 805, 761, 97,
	26, 6, 1114, 921, 805, 719, 97, 6, 1114, 921, 805, 110, 2, 291, 97, 6,
	1114, 921, 805, 110, 2, 192, 97, 6, 1114, 921, 805, 110, 2, 273, 97, 6,
	1114, 921, 805, 110, 2, 349, 97, 6, 1114, 921, 805, 110, 2, 387, 97, 5,
	1800, 921, 805, 481, 97, 5, 1800, 921, 805, 2612, 97, 5, 1800, 921, 805, 7553,
	97, 26, 6, 7483, 805, 73, 97, 26, 6, 430, 485, 97, 26, 6, 430, 60,
	97, 26, 6, 430, 496, 97, 5, 474, 106, 97, 5, 474, 361, 97, 5, 474,
	224, 97, 5, 474, 325, 97, 5, 474, 443, 97, 5, 474, 363, 97, 5, 474,
	217, 97, 5, 474, 185, 97, 5, 474, 412, 97, 5, 474, 502, 97, 5, 474,
	251, 97, 5, 474, 386, 97, 5, 474, 143, 97, 267, 6, 474, 236, 286, 97,
	26, 6, 474, 263, 97, 26, 6, 474, 51, 97, 26, 6, 474, 51, 53, 97,
	26, 6, 474, 69, 218, 97, 6, 474, 110, 2, 192, 97, 6, 474, 110, 2,
	273, 97, 6, 474, 110, 2, 387, 97, 6, 474, 110, 2, 466, 97, 6, 474,
	2160, 110, 2, 192, 97, 6, 474, 2160, 110, 2, 273, 97, 6, 474, 2160, 7149,
	110, 97, 5, 3920, 1922, 502, 97, 6, 3920, 1922, 110, 2, 387, 97, 474, 23,
	254, 97, 474, 23, 67, 97, 474, 23, 70, 97, 474, 23, 79, 97, 474, 23,
	93, 97, 474, 23, 100, 97, 474, 23, 139, 97, 474, 23, 157, 97, 474, 23,
	140, 97, 474, 23, 160, 97, 6, 690, 110, 2, 291, 97, 6, 690, 110, 2,
	273, 97, 26, 6, 1370, 24, 97, 26, 6, 1370, 292, 97, 16, 474, 67, 97,
	16, 474, 672, 127, 10, 5, 524, 127, 10, 5, 1752, 127, 10, 5, 1309, 127,
	10, 5, 1794, 127, 10, 5, 405, 127, 10, 5, 2020, 127, 10, 5, 1716, 127,
	10, 5, 1995, 127, 10, 5, 372, 127, 10, 5, 1437, 127, 10, 5, 1874, 127,
	10, 5, 733, 127, 10, 5, 1626, 127, 10, 5, 347, 127, 10, 5, 1924, 127,
	10, 5, 2040, 127, 10, 5, 1474, 127, 10, 5, 1479, 127, 10, 5, 1352, 127,
	10, 5, 1173, 127, 10, 5, 1931, 127, 10, 5, 1854, 127, 10, 5, 1824, 127,
	10, 5, 1660, 127, 10, 5, 573, 127, 10, 5, 1769, 127, 10, 5, 905, 127,
	10, 5, 1599, 127, 10, 5, 1773, 127, 10, 5, 1543, 127, 10, 5, 2029, 127,
	10, 5, 1847, 127, 10, 5, 1831, 127, 10, 5, 446, 127, 10, 5, 1588, 127,
	10, 5, 614, 127, 10, 5, 1423, 127, 10, 5, 1836, 127, 10, 5, 1519, 127,
	10, 5, 1368, 127, 5, 524, 127, 5, 1752, 127, 5, 1309, 127, 5, 1794, 127,
	5, 405, 127, 5, 2020, 127, 5, 1716, 127, 5, 1995, 127, 5, 372, 127, 5,
	1437, 127, 5, 1874, 127, 5, 733, 127, 5, 1626, 127, 5, 347, 127, 5, 1924,
	127, 5, 2040, 127, 5, 1474, 127, 5, 1479, 127, 5, 1352, 127, 5, 1173, 127,
	5, 1931, 127, 5, 1854, 127, 5, 1824, 127, 5, 1660, 127, 5, 573, 127, 5,
	1769, 127, 5, 905, 127, 5, 1599, 127, 5, 1773, 127, 5, 1543, 127, 5, 2029,
	127, 5, 1847, 127, 5, 1831, 127, 5, 446, 127, 5, 1588, 127, 5, 614, 127,
	5, 1423, 127, 5, 1836, 127, 5, 1023, 127, 5, 1519, 127, 5, 3292, 127, 5,
	191, 1309, 127, 5, 475, 127, 1647, 681, 75, 5, 127, 1626, 127, 5, 1368, 127,
	5, 1086, 6, 127, 5, 3524, 6, 40, 180, 469, 40, 180, 1345, 40, 180, 528,
	40, 180, 495, 40, 180, 1489, 40, 180, 308, 40, 180, 503, 40, 180, 334, 40,
	180, 1488, 40, 180, 306, 40, 180, 1053, 40, 180, 677, 40, 180, 645, 40, 180,
	1681, 40, 180, 781, 40, 180, 853, 40, 180, 770, 40, 180, 735, 40, 180, 537,
	40, 180, 528, 2, 469, 40, 180, 1988, 40, 180, 528, 2, 495, 40, 180, 528,
	2, 334, 40, 180, 495, 2, 469, 40, 180, 308, 2, 528, 40, 180, 2509, 40,
	180, 308, 2, 537, 40, 180, 3478, 40, 180, 503, 2, 334, 40, 180, 2294, 40,
	180, 334, 2, 469, 40, 180, 334, 2, 528, 40, 180, 334, 2, 495, 40, 180,
	334, 2, 306, 40, 180, 334, 2, 306, 2, 469, 40, 180, 334, 2, 306, 2,
	495, 40, 180, 334, 2, 306, 2, 334, 40, 180, 334, 2, 1053, 40, 180, 334,
	2, 306, 2, 645, 40, 180, 334, 2, 645, 40, 180, 334, 2, 781, 40, 180,
	334, 2, 770, 40, 180, 334, 2, 735, 40, 180, 1317, 40, 180, 3479, 40, 180,
	306, 2, 469, 40, 180, 306, 2, 528, 40, 180, 306, 2, 495, 40, 180, 306,
	2, 308, 40, 180, 306, 2, 503, 40, 180, 306, 2, 334, 40, 180, 306, 2,
	334, 2, 469, 40, 180, 306, 2, 1053, 40, 180, 306, 2, 677, 40, 180, 306,
	2, 645, 40, 180, 306, 2, 781, 40, 180, 306, 2, 853, 40, 180, 306, 2,
	770, 40, 180, 306, 2, 735, 40, 180, 306, 2, 537, 40, 180, 6486, 40, 180,
	6488, 40, 180, 6430, 40, 180, 6432, 40, 180, 889, 40, 180, 677, 2, 469, 40,
	180, 677, 2, 495, 40, 180, 677, 2, 503, 40, 180, 677, 2, 334, 40, 180,
	677, 2, 306, 40, 180, 677, 2, 889, 40, 180, 2508, 40, 180, 677, 2, 645,
	40, 180, 677, 2, 781, 40, 180, 677, 2, 770, 40, 180, 677, 2, 735, 40,
	180, 1115, 40, 180, 645, 2, 677, 40, 180, 6485, 40, 180, 6487, 40, 180, 6429,
	40, 180, 6431, 40, 180, 781, 2, 853, 40, 180, 781, 2, 537, 40, 180, 6484,
	40, 180, 6428, 40, 180, 735, 2, 334, 40, 180, 2295, 40, 180, 4019, 40, 180,
	1518, 40, 180, 469, 2, 495, 40, 180, 528, 2, 306, 40, 180, 528, 2, 645,
	40, 180, 528, 2, 537, 40, 180, 495, 2, 308, 40, 180, 1026, 40, 248, 1026,
	40, 248, 24, 40, 248, 543, 40, 248, 179, 40, 248, 1177, 40, 248, 909, 40,
	248, 51, 40, 248, 1009, 40, 248, 753, 40, 248, 68, 40, 248, 286, 40, 248,
	2587, 40, 248, 485, 40, 248, 416, 40, 248, 60, 40, 248, 2592, 40, 248, 614,
	40, 248, 668, 40, 248, 402, 40, 248, 761, 40, 248, 14, 40, 248, 73, 40,
	248, 24, 2, 68, 40, 248, 24, 2, 60, 40, 248, 179, 2, 68, 40, 248,
	179, 2, 416, 40, 248, 909, 2, 68, 40, 248, 909, 2, 60, 40, 248, 909,
	2, 761, 40, 248, 1009, 2, 68, 40, 248, 1009, 2, 60, 40, 248, 68, 2,
	909, 40, 248, 68, 2, 51, 40, 248, 68, 2, 753, 40, 248, 68, 2, 68,
	40, 248, 68, 2, 60, 40, 248, 416, 2, 179, 40, 248, 416, 2, 1177, 40,
	248, 416, 2, 1009, 40, 248, 416, 2, 68, 40, 248, 416, 2, 73, 40, 248,
	60, 2, 24, 40, 248, 60, 2, 543, 40, 248, 60, 2, 909, 2, 761, 40,
	248, 60, 2, 753, 40, 248, 60, 2, 60, 40, 248, 402, 2, 24, 40, 248,
	402, 2, 909, 40, 248, 402, 2, 51, 40, 248, 402, 2, 1009, 40, 248, 402,
	2, 753, 40, 248, 402, 2, 60, 40, 248, 402, 2, 73, 40, 248, 761, 2,
	60, 40, 248, 761, 2, 761, 40, 248, 14, 2, 60, 40, 248, 73, 2, 24,
	40, 248, 73, 2, 179, 40, 248, 73, 2, 68, 40, 248, 73, 2, 60, 40,
	248, 73, 2, 761, 40, 248, 73, 2, 1187, 40, 248, 1187, 40, 248, 1187, 2,
	909, 40, 248, 1187, 2, 60, 40, 248, 1187, 2, 73, 40, 248, 10515, 40, 248,
	24, 2, 761, 40, 248, 179, 2, 60, 40, 248, 1009, 2, 179, 40, 248, 68,
	2, 179, 40, 248, 68, 2, 1177, 40, 165, 469, 40, 165, 1345, 40, 165, 469,
	2, 306, 40, 165, 528, 40, 165, 528, 2, 645, 40, 165, 528, 2, 537, 40,
	165, 495, 40, 165, 308, 40, 165, 308, 2, 469, 40, 165, 308, 2, 503, 40,
	165, 308, 2, 334, 40, 165, 308, 2, 306, 40, 165, 308, 2, 770, 40, 165,
	308, 2, 735, 40, 165, 308, 2, 537, 40, 165, 503, 40, 165, 334, 40, 165,
	334, 2, 306, 40, 165, 306, 40, 165, 1053, 40, 165, 677, 40, 165, 645, 40,
	165, 781, 40, 165, 853, 40, 165, 770, 40, 165, 735, 40, 165, 537, 40, 165,
	469, 2, 308, 40, 165, 469, 2, 306, 2, 469, 40, 165, 528, 2, 469, 40,
	165, 528, 2, 495, 40, 165, 528, 2, 306, 40, 165, 528, 2, 889, 40, 165,
	528, 2, 770, 40, 165, 495, 2, 469, 40, 165, 495, 2, 308, 40, 165, 308,
	2, 469, 2, 306, 40, 165, 308, 2, 528, 40, 165, 308, 2, 495, 40, 165,
	308, 2, 495, 2, 537, 40, 165, 2509, 40, 165, 308, 2, 503, 2, 469, 40,
	165, 308, 2, 503, 2, 306, 40, 165, 308, 2, 334, 2, 306, 40, 165, 308,
	2, 334, 2, 537, 40, 165, 308, 2, 1317, 40, 165, 308, 2, 1053, 40, 165,
	308, 2, 889, 40, 165, 308, 2, 853, 40, 165, 308, 2, 1518, 40, 165, 503,
	2, 469, 40, 165, 503, 2, 308, 40, 165, 503, 2, 334, 40, 165, 503, 2,
	306, 40, 165, 503, 2, 1053, 40, 165, 503, 2, 889, 40, 165, 503, 2, 781,
	40, 165, 503, 2, 537, 40, 165, 2294, 40, 165, 334, 2, 308, 40, 165, 334,
	2, 735, 40, 165, 334, 2, 537, 40, 165, 1317, 40, 165, 306, 2, 469, 40,
	165, 306, 2, 495, 40, 165, 306, 2, 308, 40, 165, 306, 2, 334, 40, 165,
	889, 40, 165, 677, 2, 469, 40, 165, 677, 2, 1345, 40, 165, 2508, 40, 165,
	677, 2, 853, 40, 165, 1115, 40, 165, 1115, 2, 306, 40, 165, 1115, 2, 889,
	40, 165, 735, 2, 334, 40, 165, 2295, 40, 165, 537, 2, 528, 40, 165, 537,
	2, 308, 40, 165, 537, 2, 503, 40, 165, 537, 2, 334, 40, 165, 1518, 40,
	165, 469, 2, 528, 40, 165, 469, 2, 334, 40, 165, 469, 2, 781, 40, 165,
	469, 2, 853, 40, 165, 469, 2, 537, 40, 165, 1988, 47, 9, 143, 47, 9,
	831, 47, 9, 479, 47, 9, 1029, 47, 9, 1834, 47, 9, 446, 47, 9, 553,
	47, 9, 7829, 47, 9, 202, 47, 9, 679, 47, 9, 365, 47, 9, 1613, 47,
	9, 1875, 47, 9, 448, 47, 9, 765, 47, 9, 2333, 47, 9, 1144, 47, 9,
	7724, 47, 9, 7722, 47, 9, 3408, 47, 9, 7721, 47, 9, 7720, 47, 9, 7723,
	47, 9, 3409, 47, 9, 182, 47, 9, 460, 47, 9, 540, 47, 9, 2335, 47,
	9, 2349, 47, 9, 539, 47, 9, 607, 47, 9, 1899, 47, 9, 10659, 47, 9,
	10665, 47, 9, 10663, 47, 9, 10660, 47, 9, 10662, 47, 9, 10661, 47, 9, 10664,
	47, 9, 10666, 47, 9, 173, 47, 9, 630, 47, 9, 716, 47, 9, 1663, 47,
	9, 1665, 47, 9, 736, 47, 9, 585, 47, 9, 3921, 47, 9, 195, 47, 9,
	611, 47, 9, 632, 47, 9, 1959, 47, 9, 1250, 47, 9, 666, 47, 9, 574,
	47, 9, 2531, 47, 9, 321, 47, 9, 895, 47, 9, 1483, 47, 9, 3951, 47,
	9, 1968, 47, 9, 464, 47, 9, 1050, 47, 9, 2490, 47, 9, 768, 47, 9,
	1662, 47, 9, 1661, 47, 9, 2448, 47, 9, 9891, 47, 9, 1944, 47, 9, 1945,
	47, 9, 9917, 47, 9, 9945, 47, 9, 3873, 47, 9, 9946, 47, 9, 3872, 47,
	9, 3871, 47, 9, 9894, 47, 9, 9902, 47, 9, 9899, 47, 9, 9895, 47, 9,
	9898, 47, 9, 9897, 47, 9, 9900, 47, 9, 9903, 47, 9, 9907, 47, 9, 9904,
	47, 9, 9906, 47, 9, 9905, 47, 9, 251, 47, 9, 670, 47, 9, 780, 47,
	9, 1749, 47, 9, 1377, 47, 9, 871, 47, 9, 973, 47, 9, 3138, 47, 9,
	413, 47, 9, 1361, 47, 9, 1175, 47, 9, 4152, 47, 9, 1272, 47, 9, 842,
	47, 9, 1113, 47, 9, 11273, 47, 9, 196, 47, 9, 613, 47, 9, 686, 47,
	9, 1348, 47, 9, 1497, 47, 9, 440, 47, 9, 83, 47, 9, 2575, 47, 9,
	325, 47, 9, 2166, 47, 9, 1772, 47, 9, 2133, 47, 9, 3158, 47, 9, 1124,
	47, 9, 976, 47, 9, 2170, 47, 9, 899, 47, 9, 11432, 47, 9, 900, 47,
	9, 11407, 47, 9, 11411, 47, 9, 1515, 47, 9, 4191, 47, 9, 11425, 47, 9,
	11436, 47, 9, 11440, 47, 9, 11437, 47, 9, 11439, 47, 9, 11438, 47, 9, 185,
	47, 9, 555, 47, 9, 493, 47, 9, 1454, 47, 9, 2378, 47, 9, 492, 47,
	9, 433, 47, 9, 1911, 47, 9, 363, 47, 9, 2401, 47, 9, 920, 47, 9,
	3751, 47, 9, 3752, 47, 9, 2399, 47, 9, 1154, 47, 9, 9400, 47, 9, 552,
	24, 47, 9, 552, 60, 47, 9, 552, 73, 47, 9, 552, 263, 47, 9, 552,
	496, 47, 9, 552, 51, 47, 9, 552, 68, 47, 9, 552, 286, 47, 9, 106,
	47, 9, 620, 47, 9, 571, 47, 9, 1850, 47, 9, 2299, 47, 9, 647, 47,
	9, 606, 47, 9, 8237, 47, 9, 2312, 47, 9, 1870, 47, 9, 1868, 47, 9,
	3520, 47, 9, 1869, 47, 9, 2313, 47, 9, 8313, 47, 9, 8311, 47, 9, 8308,
	47, 9, 8310, 47, 9, 8309, 47, 9, 8312, 47, 9, 8314, 47, 9, 8318, 47,
	9, 8315, 47, 9, 8317, 47, 9, 8316, 47, 9, 286, 47, 9, 1063, 47, 9,
	668, 47, 9, 1705, 47, 9, 2023, 47, 9, 614, 47, 9, 588, 47, 9, 11362,
	47, 9, 1245, 24, 47, 9, 1245, 60, 47, 9, 1245, 73, 47, 9, 1245, 263,
	47, 9, 1245, 496, 47, 9, 1245, 51, 47, 9, 1245, 68, 47, 9, 443, 47,
	9, 1013, 47, 9, 1065, 47, 9, 4222, 47, 9, 1715, 47, 9, 739, 47, 9,
	1012, 47, 9, 11679, 47, 9, 740, 47, 9, 2619, 47, 9, 2616, 47, 9, 11621,
	47, 9, 2041, 47, 9, 868, 47, 9, 2618, 47, 9, 11644, 47, 9, 179, 47,
	9, 402, 47, 9, 14, 47, 9, 1516, 47, 9, 1517, 47, 9, 753, 47, 9,
	416, 47, 9, 11524, 47, 9, 217, 47, 9, 784, 47, 9, 783, 47, 9, 3203,
	47, 9, 1394, 47, 9, 710, 47, 9, 725, 47, 9, 7060, 47, 9, 437, 47,
	9, 3223, 47, 9, 3222, 47, 9, 3217, 47, 9, 6874, 47, 9, 3219, 47, 9,
	2179, 47, 9, 6898, 47, 9, 317, 47, 9, 1316, 47, 9, 1218, 47, 9, 3457,
	47, 9, 1434, 47, 9, 984, 47, 9, 1031, 47, 9, 3471, 47, 9, 224, 47,
	9, 828, 47, 9, 703, 47, 9, 1576, 47, 9, 1577, 47, 9, 1085, 47, 9,
	914, 47, 9, 7581, 47, 9, 3390, 47, 9, 3393, 47, 9, 7633, 47, 9, 3392,
	47, 9, 3391, 47, 9, 1417, 47, 9, 3368, 47, 9, 3365, 47, 9, 7503, 47,
	9, 7507, 47, 9, 2242, 47, 9, 3366, 47, 9, 7527, 47, 9, 386, 47, 9,
	2549, 47, 9, 1357, 47, 9, 1689, 47, 9, 1690, 47, 9, 487, 47, 9, 750,
	47, 9, 2551, 47, 9, 358, 47, 9, 1771, 47, 9, 671, 47, 9, 3163, 47,
	9, 1768, 47, 9, 700, 47, 9, 1017, 47, 9, 6508, 47, 9, 412, 47, 9,
	9716, 47, 9, 694, 47, 9, 3816, 47, 9, 9708, 47, 9, 2428, 47, 9, 1042,
	47, 9, 9719, 47, 9, 612, 47, 9, 2010, 47, 9, 1359, 47, 9, 10916, 47,
	9, 4111, 47, 9, 930, 47, 9, 2009, 47, 9, 10928, 47, 9, 10983, 47, 9,
	10991, 47, 9, 10987, 47, 9, 10984, 47, 9, 10986, 47, 9, 10985, 47, 9, 10989,
	47, 9, 10990, 47, 9, 502, 47, 9, 1140, 47, 9, 1023, 47, 9, 1810, 47,
	9, 1305, 47, 9, 982, 47, 9, 1028, 47, 9, 3341, 47, 9, 119, 47, 9,
	962, 47, 9, 427, 47, 9, 1465, 47, 9, 1155, 47, 9, 462, 47, 9, 808,
	47, 9, 1659, 47, 9, 10159, 47, 9, 1453, 47, 9, 7383, 47, 43, 1578, 34,
	26, 731, 56, 47, 43, 26, 731, 56, 47, 43, 1578, 56, 47, 532, 56, 47,
	11369, 47, 426, 322, 47, 383, 47, 1000, 47, 577, 47, 9806, 577, 47, 629, 56,
	47, 1647, 681, 47, 23, 67, 47, 23, 70, 47, 23, 79, 47, 23, 93, 47,
	23, 100, 47, 23, 139, 47, 23, 157, 47, 23, 140, 47, 23, 160, 47, 41,
	280, 47, 41, 357, 47, 41, 451, 47, 41, 605, 47, 41, 551, 47, 41, 748,
	47, 41, 566, 47, 41, 876, 47, 41, 529, 47, 41, 159, 47, 41, 280, 203,
	47, 9, 1963, 1899, 47, 9, 1900, 47, 9, 3676, 47, 9, 2369, 47, 9, 1963,
	3138, 47, 9, 3140, 47, 9, 3139, 47, 9, 6317, 47, 9, 1963, 3341, 47, 9,
	3344, 47, 9, 3343, 47, 9, 7381, 47, 9, 1963, 1659, 47, 9, 1942, 47, 9,
	3856, 47, 9, 2447, 47, 929, 56, 11523, 47, 929, 56, 3233, 47, 929, 56, 3904,
	47, 929, 56, 295, 3904, 47, 929, 56, 6965, 47, 929, 56, 8156, 47, 929, 56,
	6482, 47, 929, 56, 3410, 47, 929, 56, 3233, 2, 3410, 47, 929, 56, 8292, 128,
	5, 24, 128, 5, 51, 128, 5, 73, 128, 5, 68, 128, 5, 60, 128, 5,
	229, 128, 5, 224, 128, 5, 106, 128, 5, 1085, 128, 5, 703, 128, 5, 914,
	128, 5, 828, 128, 5, 3389, 128, 5, 143, 128, 5, 446, 128, 5, 479, 128,
	5, 553, 128, 5, 831, 128, 5, 1839, 128, 5, 202, 128, 5, 448, 128, 5,
	365, 128, 5, 765, 128, 5, 679, 128, 5, 3571, 128, 5, 182, 128, 5, 539,
	128, 5, 540, 128, 5, 607, 128, 5, 460, 128, 5, 185, 128, 5, 2263, 128,
	5, 2370, 128, 5, 492, 128, 5, 493, 128, 5, 433, 128, 5, 555, 128, 5,
	2397, 128, 5, 3865, 128, 5, 3866, 128, 5, 3867, 128, 5, 2452, 128, 5, 2453,
	128, 5, 3870, 128, 5, 195, 128, 5, 121, 128, 5, 666, 128, 5, 632, 128,
	5, 574, 128, 5, 611, 128, 5, 2530, 128, 5, 217, 128, 5, 196, 128, 5,
	710, 128, 5, 440, 128, 5, 783, 128, 5, 686, 128, 5, 725, 128, 5, 784,
	128, 5, 3264, 128, 5, 1793, 128, 5, 2556, 128, 5, 2557, 128, 5, 2559, 128,
	5, 2560, 128, 5, 2561, 128, 5, 4090, 128, 5, 612, 128, 5, 930, 128, 5,
	1359, 128, 5, 2009, 128, 5, 2010, 128, 5, 4116, 128, 5, 286, 128, 5, 614,
	128, 5, 668, 128, 5, 588, 128, 5, 1063, 128, 5, 4190, 128, 5, 179, 128,
	5, 753, 128, 5, 14, 128, 5, 416, 128, 5, 402, 128, 5, 4215, 128, 5,
	1623, 128, 7, 5, 753, 128, 7, 5, 14, 128, 7, 5, 416, 128, 7, 5,
	402, 128, 7, 5, 4215, 128, 7, 5, 1623, 29, 30, 850, 29, 30, 51, 29,
	30, 3010, 29, 30, 73, 29, 30, 300, 29, 30, 68, 29, 30, 454, 29, 30,
	218, 2, 170, 454, 29, 30, 118, 496, 29, 30, 118, 73, 29, 30, 24, 29,
	30, 263, 29, 30, 614, 29, 30, 153, 2, 170, 614, 29, 30, 668, 29, 30,
	153, 2, 170, 668, 29, 30, 4180, 29, 30, 153, 2, 170, 4180, 29, 30, 588,
	29, 30, 153, 2, 170, 588, 29, 30, 1708, 29, 30, 153, 2, 170, 1708, 29,
	30, 887, 1708, 29, 30, 286, 29, 30, 153, 2, 170, 286, 29, 30, 1705, 29,
	30, 153, 2, 170, 1705, 29, 30, 887, 1705, 29, 30, 292, 29, 30, 218, 2,
	170, 290, 29, 30, 552, 322, 29, 30, 69, 230, 29, 30, 69, 315, 29, 30,
	69, 521, 133, 190, 29, 30, 69, 442, 133, 190, 29, 30, 69, 45, 133, 190,
	29, 30, 69, 190, 29, 30, 69, 55, 230, 29, 30, 69, 55, 295, 86, 2522,
	29, 30, 69, 94, 77, 29, 30, 69, 295, 135, 89, 29, 30, 69, 120, 29,
	30, 69, 130, 558, 29, 30, 405, 29, 30, 372, 29, 30, 347, 29, 30, 524,
	29, 30, 462, 29, 30, 9584, 29, 30, 427, 29, 30, 1098, 29, 30, 808, 29,
	30, 1657, 29, 30, 218, 2, 170, 1657, 29, 30, 118, 1834, 29, 30, 118, 479,
	29, 30, 119, 29, 30, 1465, 29, 30, 2447, 29, 30, 153, 2, 170, 2447, 29,
	30, 1942, 29, 30, 153, 2, 170, 1942, 29, 30, 3857, 29, 30, 153, 2, 170,
	3857, 29, 30, 921, 29, 30, 153, 2, 170, 921, 29, 30, 3858, 29, 30, 153,
	2, 170, 3858, 29, 30, 1659, 29, 30, 153, 2, 170, 1659, 29, 30, 2446, 29,
	30, 153, 2, 170, 2446, 29, 30, 218, 2, 170, 2446, 29, 30, 249, 29, 30,
	153, 2, 170, 249, 29, 30, 118, 235, 29, 30, 440, 29, 30, 10715, 29, 30,
	686, 29, 30, 10826, 29, 30, 83, 29, 30, 1500, 29, 30, 218, 2, 170, 1500,
	29, 30, 118, 1394, 29, 30, 118, 783, 29, 30, 196, 29, 30, 1348, 29, 30,
	1700, 29, 30, 153, 2, 170, 1700, 29, 30, 4130, 29, 30, 153, 2, 170, 4130,
	29, 30, 4131, 29, 30, 153, 2, 170, 4131, 29, 30, 70, 29, 30, 153, 2,
	170, 70, 29, 30, 4132, 29, 30, 153, 2, 170, 4132, 29, 30, 2575, 29, 30,
	153, 2, 170, 2575, 29, 30, 2576, 29, 30, 153, 2, 170, 2576, 29, 30, 887,
	2576, 29, 30, 221, 29, 30, 1696, 29, 30, 4122, 29, 30, 2573, 29, 30, 436,
	29, 30, 647, 29, 30, 8102, 29, 30, 571, 29, 30, 8204, 29, 30, 606, 29,
	30, 1609, 29, 30, 218, 2, 170, 1609, 29, 30, 106, 29, 30, 1850, 29, 30,
	1869, 29, 30, 153, 2, 170, 1869, 29, 30, 1870, 29, 30, 153, 2, 170, 1870,
	29, 30, 3521, 29, 30, 153, 2, 170, 3521, 29, 30, 3522, 29, 30, 153, 2,
	170, 3522, 29, 30, 3523, 29, 30, 153, 2, 170, 3523, 29, 30, 2312, 29, 30,
	153, 2, 170, 2312, 29, 30, 1868, 29, 30, 153, 2, 170, 1868, 29, 30, 887,
	1868, 29, 30, 227, 29, 30, 2311, 29, 30, 253, 2, 1980, 2300, 29, 30, 253,
	2, 1980, 8203, 29, 30, 253, 2, 1980, 8242, 29, 30, 253, 2, 1980, 3476, 29,
	30, 1124, 29, 30, 6352, 29, 30, 1772, 29, 30, 6520, 29, 30, 976, 29, 30,
	2159, 29, 30, 218, 2, 170, 2159, 29, 30, 325, 29, 30, 2133, 29, 30, 3195,
	29, 30, 153, 2, 170, 3195, 29, 30, 2172, 29, 30, 153, 2, 170, 2172, 29,
	30, 3196, 29, 30, 153, 2, 170, 3196, 29, 30, 3197, 29, 30, 153, 2, 170,
	3197, 29, 30, 3198, 29, 30, 153, 2, 170, 3198, 29, 30, 2170, 29, 30, 153,
	2, 170, 2170, 29, 30, 2171, 29, 30, 153, 2, 170, 2171, 29, 30, 887, 2171,
	29, 30, 104, 29, 30, 837, 864, 29, 30, 539, 29, 30, 8678, 29, 30, 540,
	29, 30, 8849, 29, 30, 607, 29, 30, 2361, 29, 30, 218, 2, 170, 2361, 29,
	30, 182, 29, 30, 2335, 29, 30, 2369, 29, 30, 153, 2, 170, 2369, 29, 30,
	1900, 29, 30, 153, 2, 170, 1900, 29, 30, 3677, 29, 30, 153, 2, 170, 3677,
	29, 30, 3678, 29, 30, 153, 2, 170, 3678, 29, 30, 3679, 29, 30, 153, 2,
	170, 3679, 29, 30, 1899, 29, 30, 153, 2, 170, 1899, 29, 30, 2368, 29, 30,
	153, 2, 170, 2368, 29, 30, 887, 2368, 29, 30, 205, 29, 30, 153, 2, 170,
	205, 29, 30, 8841, 29, 30, 3065, 205, 29, 30, 837, 205, 29, 30, 492, 29,
	30, 9006, 29, 30, 493, 29, 30, 3718, 29, 30, 433, 29, 30, 2391, 29, 30,
	218, 2, 170, 2391, 29, 30, 185, 29, 30, 1454, 29, 30, 3745, 29, 30, 153,
	2, 170, 3745, 29, 30, 1911, 29, 30, 153, 2, 170, 1911, 29, 30, 2398, 29,
	30, 153, 2, 170, 2398, 29, 30, 887, 2398, 29, 30, 151, 29, 30, 118, 767,
	29, 30, 9163, 29, 30, 448, 29, 30, 8341, 29, 30, 365, 29, 30, 8425, 29,
	30, 765, 29, 30, 1449, 29, 30, 218, 2, 170, 1449, 29, 30, 202, 29, 30,
	1613, 29, 30, 3573, 29, 30, 153, 2, 170, 3573, 29, 30, 3574, 29, 30, 153,
	2, 170, 3574, 29, 30, 3575, 29, 30, 153, 2, 170, 3575, 29, 30, 3576, 29,
	30, 153, 2, 170, 3576, 29, 30, 3577, 29, 30, 153, 2, 170, 3577, 29, 30,
	2333, 29, 30, 153, 2, 170, 2333, 29, 30, 3572, 29, 30, 153, 2, 170, 3572,
	29, 30, 136, 29, 30, 153, 2, 170, 136, 29, 30, 236, 136, 29, 30, 666,
	29, 30, 10221, 29, 30, 632, 29, 30, 1678, 29, 30, 574, 29, 30, 1680, 29,
	30, 218, 2, 170, 1680, 29, 30, 195, 29, 30, 1959, 29, 30, 4044, 29, 30,
	153, 2, 170, 4044, 29, 30, 4046, 29, 30, 153, 2, 170, 4046, 29, 30, 4047,
	29, 30, 153, 2, 170, 4047, 29, 30, 4048, 29, 30, 153, 2, 170, 4048, 29,
	30, 4049, 29, 30, 153, 2, 170, 4049, 29, 30, 2531, 29, 30, 153, 2, 170,
	2531, 29, 30, 2532, 29, 30, 153, 2, 170, 2532, 29, 30, 887, 2532, 29, 30,
	121, 29, 30, 3065, 121, 29, 30, 4042, 29, 30, 795, 121, 29, 30, 8894, 2,
	170, 10429, 29, 30, 887, 10435, 29, 30, 887, 121, 2, 290, 29, 30, 887, 10508,
	29, 30, 887, 10592, 29, 30, 887, 10436, 29, 30, 887, 10285, 29, 30, 464, 29,
	30, 1483, 29, 30, 1970, 29, 30, 1050, 29, 30, 2487, 29, 30, 321, 29, 30,
	3951, 29, 30, 1341, 29, 30, 153, 2, 170, 1341, 29, 30, 3971, 29, 30, 153,
	2, 170, 3971, 29, 30, 3972, 29, 30, 153, 2, 170, 3972, 29, 30, 3973, 29,
	30, 153, 2, 170, 3973, 29, 30, 3974, 29, 30, 153, 2, 170, 3974, 29, 30,
	2490, 29, 30, 153, 2, 170, 2490, 29, 30, 3970, 29, 30, 153, 2, 170, 3970,
	29, 30, 1337, 29, 30, 753, 29, 30, 11464, 29, 30, 14, 29, 30, 11519, 29,
	30, 416, 29, 30, 2034, 29, 30, 218, 2, 170, 2034, 29, 30, 179, 29, 30,
	1516, 29, 30, 4216, 29, 30, 153, 2, 170, 4216, 29, 30, 4217, 29, 30, 153,
	2, 170, 4217, 29, 30, 4218, 29, 30, 153, 2, 170, 4218, 29, 30, 4219, 29,
	30, 153, 2, 170, 4219, 29, 30, 4220, 29, 30, 153, 2, 170, 4220, 29, 30,
	2612, 29, 30, 153, 2, 170, 2612, 29, 30, 2613, 29, 30, 153, 2, 170, 2613,
	29, 30, 887, 2613, 29, 30, 218, 29, 30, 6220, 2, 170, 218, 29, 30, 153,
	2, 170, 218, 29, 30, 837, 14, 29, 30, 736, 29, 30, 122, 2, 170, 736,
	29, 30, 153, 2, 170, 448, 29, 30, 9996, 29, 30, 716, 29, 30, 1956, 29,
	30, 585, 29, 30, 3914, 29, 30, 153, 2, 170, 765, 29, 30, 173, 29, 30,
	1663, 29, 30, 153, 2, 170, 202, 29, 30, 3922, 29, 30, 153, 2, 170, 3922,
	29, 30, 122, 29, 30, 153, 2, 170, 122, 29, 30, 236, 122, 29, 30, 982,
	29, 30, 7271, 29, 30, 1023, 29, 30, 7315, 29, 30, 1028, 29, 30, 2228, 29,
	30, 502, 29, 30, 1810, 29, 30, 3342, 29, 30, 153, 2, 170, 3342, 29, 30,
	176, 29, 30, 487, 29, 30, 151, 2, 170, 487, 29, 30, 1357, 29, 30, 151,
	2, 170, 1357, 29, 30, 2545, 29, 30, 151, 2, 170, 2545, 29, 30, 750, 29,
	30, 2546, 29, 30, 386, 29, 30, 1689, 29, 30, 2552, 29, 30, 153, 2, 170,
	2552, 29, 30, 864, 29, 30, 4120, 29, 30, 4121, 29, 30, 2011, 29, 30, 500,
	29, 30, 10932, 29, 30, 10980, 29, 30, 10981, 29, 30, 10982, 29, 30, 10978, 29,
	30, 1237, 446, 29, 30, 1237, 479, 29, 30, 1237, 3411, 29, 30, 1237, 553, 29,
	30, 1237, 1589, 29, 30, 1237, 143, 29, 30, 1237, 1029, 29, 30, 1237, 235, 29,
	30, 9363, 235, 29, 30, 7744, 29, 30, 9882, 29, 30, 1661, 29, 30, 3862, 29,
	30, 1945, 29, 30, 2451, 29, 30, 768, 29, 30, 2448, 29, 30, 389, 29, 30,
	4087, 29, 30, 4088, 29, 30, 4089, 29, 30, 2558, 29, 30, 153, 2, 170, 736,
	29, 30, 153, 2, 170, 716, 29, 30, 153, 2, 170, 585, 29, 30, 153, 2,
	170, 173, 29, 30, 9098, 29, 30, 1905, 29, 30, 9133, 29, 30, 1328, 29, 30,
	9148, 29, 30, 312, 29, 30, 1904, 29, 30, 767, 29, 30, 9251, 29, 30, 837,
	464, 29, 30, 837, 1483, 29, 30, 837, 1050, 29, 30, 837, 321, 29, 30, 967,
	2, 170, 487, 29, 30, 967, 2, 170, 1357, 29, 30, 967, 2, 170, 750, 29,
	30, 967, 2, 170, 386, 29, 30, 967, 2, 170, 864, 29, 30, 3551, 29, 30,
	8409, 29, 30, 3552, 29, 30, 8410, 29, 30, 1222, 29, 30, 3550, 29, 30, 2325,
	29, 30, 864, 2, 170, 487, 29, 30, 864, 2, 170, 1357, 29, 30, 864, 2,
	170, 2545, 29, 30, 864, 2, 170, 750, 29, 30, 864, 2, 170, 2546, 29, 30,
	864, 2, 170, 386, 29, 30, 864, 2, 170, 1689, 29, 30, 864, 2, 170, 864,
	29, 30, 5759, 71, 29, 30, 795, 51, 29, 30, 795, 73, 29, 30, 795, 68,
	29, 30, 795, 24, 29, 30, 795, 614, 29, 30, 795, 668, 29, 30, 795, 588,
	29, 30, 795, 286, 29, 30, 795, 492, 29, 30, 795, 493, 29, 30, 795, 433,
	29, 30, 795, 185, 29, 30, 795, 647, 29, 30, 795, 571, 29, 30, 795, 606,
	29, 30, 795, 106, 29, 30, 837, 446, 29, 30, 837, 479, 29, 30, 837, 553,
	29, 30, 837, 143, 29, 30, 118, 7552, 29, 30, 118, 3373, 29, 30, 118, 801,
	29, 30, 118, 7539, 29, 30, 118, 7548, 29, 30, 118, 459, 29, 30, 118, 630,
	29, 30, 118, 585, 29, 30, 118, 736, 29, 30, 118, 1665, 29, 30, 118, 716,
	29, 30, 118, 173, 29, 30, 118, 1063, 29, 30, 118, 588, 29, 30, 118, 614,
	29, 30, 118, 2023, 29, 30, 118, 668, 29, 30, 118, 286, 29, 30, 118, 7871,
	29, 30, 118, 7870, 29, 30, 118, 2268, 29, 30, 118, 7868, 29, 30, 118, 7869,
	29, 30, 118, 7866, 29, 30, 118, 2549, 29, 30, 118, 750, 29, 30, 118, 487,
	29, 30, 118, 1690, 29, 30, 118, 1357, 29, 30, 118, 386, 29, 30, 118, 10944,
	29, 30, 118, 2573, 29, 30, 118, 1696, 29, 30, 118, 10931, 29, 30, 118, 4122,
	29, 30, 118, 436, 29, 30, 118, 962, 29, 30, 118, 808, 29, 30, 118, 462,
	29, 30, 118, 1155, 29, 30, 118, 427, 29, 30, 118, 119, 29, 30, 118, 249,
	29, 30, 118, 828, 29, 30, 118, 914, 29, 30, 118, 1085, 29, 30, 118, 1577,
	29, 30, 118, 703, 29, 30, 118, 224, 29, 30, 118, 8189, 29, 30, 118, 986,
	29, 30, 118, 2302, 29, 30, 118, 8181, 29, 30, 118, 1855, 29, 30, 118, 361,
	29, 30, 118, 8226, 29, 30, 118, 8225, 29, 30, 118, 8222, 29, 30, 118, 8223,
	29, 30, 118, 8224, 29, 30, 118, 2305, 29, 30, 118, 1859, 29, 30, 118, 555,
	29, 30, 118, 433, 29, 30, 118, 492, 29, 30, 118, 2378, 29, 30, 118, 493,
	29, 30, 118, 185, 29, 30, 118, 460, 29, 30, 118, 607, 29, 30, 118, 539,
	29, 30, 118, 2349, 29, 30, 118, 540, 29, 30, 118, 182, 29, 30, 118, 402,
	29, 30, 118, 416, 29, 30, 118, 753, 29, 30, 118, 1517, 29, 30, 118, 14,
	29, 30, 118, 179, 29, 30, 118, 1316, 29, 30, 837, 1316, 29, 30, 118, 1031,
	29, 30, 118, 984, 29, 30, 118, 1434, 29, 30, 118, 1218, 29, 30, 837, 1218,
	29, 30, 118, 317, 29, 30, 118, 3466, 29, 30, 118, 3465, 29, 30, 118, 8034,
	29, 30, 118, 8035, 29, 30, 118, 3463, 29, 30, 118, 1600, 29, 30, 118, 679,
	29, 30, 118, 765, 29, 30, 118, 448, 29, 30, 118, 1875, 29, 30, 118, 365,
	29, 30, 118, 202, 29, 30, 118, 7009, 29, 30, 118, 7008, 29, 30, 118, 7003,
	29, 30, 118, 7004, 29, 30, 118, 7007, 29, 30, 118, 1793, 29, 30, 118, 8411,
	29, 30, 118, 3552, 29, 30, 118, 8407, 29, 30, 118, 8408, 29, 30, 118, 3551,
	29, 30, 118, 1222, 29, 30, 118, 10848, 29, 30, 118, 4089, 29, 30, 118, 4087,
	29, 30, 118, 10846, 29, 30, 118, 4088, 29, 30, 118, 2558, 29, 30, 118, 2561,
	29, 30, 118, 2560, 29, 30, 118, 2557, 29, 30, 118, 10845, 29, 30, 118, 2559,
	29, 30, 118, 2556, 29, 30, 118, 1013, 29, 30, 118, 1012, 29, 30, 118, 739,
	29, 30, 118, 1715, 29, 30, 118, 1065, 29, 30, 118, 443, 29, 30, 118, 250,
	29, 30, 118, 105, 250, 29, 30, 118, 3271, 29, 30, 118, 3270, 29, 30, 118,
	1205, 29, 30, 118, 3266, 29, 30, 118, 3268, 29, 30, 118, 942, 29, 30, 118,
	611, 29, 30, 118, 574, 29, 30, 118, 666, 29, 30, 118, 1250, 29, 30, 118,
	632, 29, 30, 118, 195, 29, 30, 118, 895, 29, 30, 118, 1050, 29, 30, 118,
	464, 29, 30, 118, 1968, 29, 30, 118, 1483, 29, 30, 118, 321, 29, 30, 118,
	1337, 29, 30, 118, 2010, 29, 30, 118, 2009, 29, 30, 118, 930, 29, 30, 118,
	4111, 29, 30, 118, 1359, 29, 30, 118, 612, 29, 30, 118, 1771, 29, 30, 118,
	1017, 29, 30, 118, 700, 29, 30, 118, 1768, 29, 30, 118, 671, 29, 30, 118,
	358, 29, 30, 118, 10942, 29, 30, 118, 10941, 29, 30, 118, 10938, 29, 30, 118,
	10939, 29, 30, 118, 10940, 29, 30, 118, 10937, 29, 30, 671, 6, 29, 30, 426,
	322, 29, 30, 3860, 29, 30, 9100, 29, 30, 9254, 29, 30, 9255, 29, 30, 9256,
	29, 30, 9257, 29, 30, 9252, 29, 30, 9253, 29, 30, 967, 2, 170, 10813, 29,
	30, 967, 2, 170, 10814, 29, 30, 967, 2, 170, 10815, 29, 30, 967, 2, 170,
	10816, 29, 30, 967, 2, 170, 10817, 29, 30, 967, 2, 170, 2551, 29, 30, 967,
	2, 170, 2552, 29, 30, 967, 2, 170, 69, 864, 29, 30, 795, 290, 625, 737,
	56, 625, 5, 6201, 625, 5, 8479, 625, 5, 7295, 625, 5, 10226, 625, 5, 9182,
	625, 5, 11041, 625, 5, 6853, 625, 5, 10834, 625, 5, 6655, 625, 5, 6422, 625,
	5, 8921, 625, 5, 7595, 625, 5, 9107, 625, 5, 10576, 625, 5, 10135, 625, 5,
	5755, 625, 5, 3771, 625, 5, 1174, 625, 5, 7115, 625, 5, 7983, 625, 5, 7114,
	625, 5, 246, 625, 5, 11056, 625, 5, 7935, 625, 5, 7116, 625, 5, 9677, 625,
	1811, 56, 625, 261, 1811, 56, 264, 5, 7300, 7303, 982, 176, 264, 5, 229, 264,
	5, 11096, 1174, 60, 264, 5, 1714, 264, 5, 218, 264, 5, 290, 264, 5, 10810,
	10811, 1265, 264, 5, 1208, 264, 5, 5817, 24, 264, 5, 3776, 68, 264, 5, 1737,
	24, 264, 5, 3024, 264, 5, 187, 2, 1121, 2, 3777, 68, 264, 5, 295, 2,
	1172, 2, 3777, 68, 264, 5, 68, 264, 5, 485, 264, 5, 347, 264, 5, 10009,
	1948, 10038, 122, 264, 5, 8137, 264, 5, 6426, 264, 5, 8136, 227, 264, 5, 220,
	264, 5, 980, 264, 5, 7484, 7641, 220, 264, 5, 617, 264, 5, 11387, 2028, 290,
	264, 5, 7661, 235, 264, 5, 7657, 235, 264, 5, 187, 2, 1121, 2, 3396, 235,
	264, 5, 295, 2, 1172, 2, 3396, 235, 264, 5, 9019, 9378, 3690, 151, 264, 5,
	295, 2, 1172, 2, 3690, 151, 264, 5, 478, 2, 151, 264, 5, 7992, 1216, 7995,
	73, 264, 5, 51, 264, 5, 8017, 278, 264, 5, 7497, 264, 5, 187, 2, 1121,
	2, 1186, 543, 264, 5, 295, 2, 1172, 2, 1186, 24, 264, 5, 7999, 7164, 264,
	5, 9691, 9686, 249, 264, 5, 5772, 7165, 264, 5, 10474, 121, 264, 5, 10414, 187,
	2, 1121, 2, 4000, 121, 264, 5, 295, 2, 1172, 2, 4000, 121, 264, 5, 104,
	264, 5, 250, 264, 5, 10842, 1358, 4134, 221, 264, 5, 295, 2, 1172, 2, 4134,
	221, 264, 5, 98, 264, 5, 6208, 6206, 3112, 71, 264, 5, 295, 2, 1172, 2,
	3112, 71, 264, 5, 478, 2, 249, 264, 5, 189, 2, 249, 264, 5, 7130, 1078,
	51, 264, 5, 8712, 733, 205, 264, 5, 187, 2, 1121, 2, 3625, 205, 264, 5,
	295, 2, 1172, 2, 3625, 205, 264, 5, 8379, 8356, 8458, 136, 264, 5, 478, 2,
	136, 264, 5, 7967, 264, 5, 2275, 264, 5, 6847, 6843, 98, 264, 5, 9555, 7180,
	68, 264, 5, 1300, 264, 5, 7985, 264, 5, 6738, 264, 5, 6363, 264, 5, 6417,
	264, 5, 10551, 264, 5, 187, 2, 1121, 2, 1714, 264, 5, 295, 2, 1172, 2,
	1714, 264, 5, 7926, 2, 1714, 264, 5, 389, 264, 5, 268, 264, 271, 225, 264,
	952, 225, 264, 425, 225, 264, 5848, 16, 264, 10972, 16, 264, 6202, 16, 264, 5,
	227, 264, 5, 1337, 264, 5, 454, 264, 5, 1574, 1542, 3776, 264, 5, 1574, 1542,
	1216, 264, 5, 1574, 1542, 1078, 264, 5, 1574, 1542, 1737, 264, 5, 1574, 1542, 3024,
	718, 5, 24, 718, 5, 73, 718, 5, 60, 718, 5, 106, 718, 5, 224, 718,
	5, 312, 718, 5, 196, 718, 5, 217, 718, 5, 185, 718, 5, 119, 718, 5,
	251, 718, 5, 182, 718, 5, 179, 718, 5, 173, 718, 5, 202, 718, 5, 286,
	718, 5, 195, 718, 5, 143, 718, 26, 6, 73, 718, 26, 6, 60, 718, 6,
	505, 718, 6, 3791, 718, 5, 507, 173, 744, 5, 24, 744, 5, 73, 744, 5,
	60, 744, 5, 106, 744, 5, 224, 744, 5, 312, 744, 5, 196, 744, 5, 217,
	744, 5, 185, 744, 5, 119, 744, 5, 251, 744, 5, 182, 744, 5, 179, 744,
	5, 173, 744, 5, 202, 744, 5, 286, 744, 5, 195, 744, 5, 143, 744, 26,
	6, 73, 744, 26, 6, 60, 744, 6, 3791, 3817, 271, 225, 3817, 55, 225, 756,
	5, 24, 756, 5, 73, 756, 5, 60, 756, 5, 106, 756, 5, 224, 756, 5,
	312, 756, 5, 196, 756, 5, 217, 756, 5, 185, 756, 5, 119, 756, 5, 251,
	756, 5, 182, 756, 5, 179, 756, 5, 173, 756, 5, 202, 756, 5, 286, 756,
	5, 195, 756, 5, 143, 756, 26, 6, 73, 756, 26, 6, 60, 813, 5, 24,
	813, 5, 73, 813, 5, 60, 813, 5, 106, 813, 5, 224, 813, 5, 312, 813,
	5, 196, 813, 5, 217, 813, 5, 185, 813, 5, 119, 813, 5, 251, 813, 5,
	182, 813, 5, 179, 813, 5, 202, 813, 5, 286, 813, 5, 195, 813, 26, 6,
	73, 813, 26, 6, 60, 150, 5, 106, 150, 5, 361, 150, 5, 606, 150, 5,
	986, 150, 5, 1328, 150, 5, 325, 150, 5, 358, 150, 5, 976, 150, 5, 1017,
	150, 5, 1154, 150, 5, 217, 150, 5, 500, 150, 5, 725, 150, 5, 2011, 150,
	5, 9259, 150, 5, 196, 150, 5, 386, 150, 5, 83, 150, 5, 750, 150, 5,
	433, 150, 5, 251, 150, 5, 412, 150, 5, 808, 150, 5, 1042, 150, 5, 607,
	150, 5, 416, 150, 5, 585, 150, 5, 765, 150, 5, 1113, 150, 5, 321, 150,
	5, 2511, 150, 5, 195, 150, 5, 143, 150, 5, 202, 150, 5, 768, 150, 704,
	26, 9887, 150, 704, 26, 2448, 150, 704, 26, 1661, 150, 704, 26, 3862, 150, 704,
	26, 1662, 150, 704, 26, 9934, 150, 704, 26, 2453, 150, 704, 26, 9943, 150, 704,
	26, 3923, 150, 704, 26, 10165, 150, 704, 26, 2334, 150, 704, 26, 8501, 150, 704,
	26, 1944, 150, 704, 26, 3860, 150, 704, 26, 2451, 816, 67, 150, 704, 26, 2451,
	816, 70, 150, 704, 26, 9889, 150, 26, 3446, 1532, 150, 26, 3446, 263, 150, 26,
	6, 263, 150, 26, 6, 73, 150, 26, 6, 300, 150, 26, 6, 218, 150, 26,
	6, 2614, 150, 26, 6, 60, 150, 26, 6, 324, 150, 26, 6, 1505, 150, 26,
	6, 485, 150, 26, 6, 179, 150, 26, 6, 832, 150, 26, 6, 51, 150, 26,
	6, 543, 150, 26, 6, 292, 150, 26, 6, 454, 150, 26, 6, 313, 150, 6,
	9177, 150, 6, 10028, 150, 6, 11550, 150, 6, 8946, 150, 6, 10892, 150, 6, 6143,
	150, 6, 10092, 150, 6, 10853, 150, 6, 8113, 150, 6, 5751, 150, 6, 10248, 10253,
	150, 6, 11244, 150, 6, 6652, 150, 6, 6156, 150, 6, 8178, 150, 6, 6148, 150,
	6, 6366, 1098, 8297, 150, 6, 1036, 1500, 150, 6, 6210, 150, 6, 9711, 3672, 150,
	6, 8248, 150, 1020, 16, 10071, 150, 6, 5906, 150, 6, 5893, 150, 23, 254, 150,
	23, 67, 150, 23, 70, 150, 23, 79, 150, 23, 93, 150, 23, 100, 150, 23,
	139, 150, 23, 157, 150, 23, 140, 150, 23, 160, 150, 16, 1036, 1069, 10464, 150,
	16, 1036, 1069, 1231, 150, 16, 1036, 1069, 1098, 150, 16, 1036, 1069, 1191, 150, 16,
	1036, 1069, 1194, 150, 16, 1036, 1069, 835, 150, 16, 1036, 1069, 835, 2, 1231, 150,
	16, 1036, 1069, 835, 2, 1098, 150, 16, 1036, 1069, 835, 2, 1191, 150, 16, 1036,
	1069, 835, 2, 1194, 129, 902, 129, 1206, 129, 383, 129, 426, 322, 129, 577, 129,
	93, 63, 129, 634, 926, 850, 129, 717, 9, 6262, 1228, 129, 745, 383, 129, 745,
	426, 322, 129, 9184, 129, 1575, 85, 84, 67, 129, 1575, 85, 84, 70, 129, 1575,
	85, 84, 79, 129, 26, 681, 129, 1575, 85, 84, 93, 129, 23, 254, 129, 23,
	67, 129, 23, 70, 129, 23, 79, 129, 23, 93, 129, 23, 100, 129, 23, 139,
	129, 23, 157, 129, 23, 140, 129, 23, 160, 129, 5, 24, 129, 5, 51, 129,
	5, 73, 129, 5, 68, 129, 5, 60, 129, 5, 485, 129, 5, 719, 129, 5,
	496, 129, 5, 185, 129, 5, 935, 129, 5, 251, 129, 5, 119, 129, 5, 768,
	129, 5, 224, 129, 5, 182, 129, 5, 202, 129, 5, 195, 129, 5, 321, 129,
	5, 196, 129, 5, 217, 129, 5, 358, 129, 5, 317, 129, 5, 179, 129, 5,
	173, 129, 5, 286, 129, 5, 502, 129, 5, 106, 129, 5, 361, 129, 5, 612,
	129, 5, 443, 129, 5, 1029, 129, 5, 11668, 129, 5, 1222, 129, 5, 2616, 129,
	5, 671, 129, 5, 634, 187, 26, 6, 129, 5, 634, 51, 129, 5, 634, 73,
	129, 5, 634, 68, 129, 5, 634, 60, 129, 5, 634, 485, 129, 5, 634, 719,
	129, 5, 634, 935, 129, 5, 634, 251, 129, 5, 634, 119, 129, 5, 634, 768,
	129, 5, 634, 224, 129, 5, 634, 182, 129, 5, 634, 196, 129, 5, 634, 217,
	129, 5, 634, 358, 129, 5, 634, 317, 129, 5, 634, 612, 129, 5, 634, 179,
	129, 5, 634, 286, 129, 5, 634, 106, 129, 5, 634, 1576, 129, 5, 634, 1029,
	129, 5, 634, 8025, 129, 5, 634, 9168, 129, 5, 634, 942, 129, 5, 717, 51,
	129, 5, 717, 73, 129, 5, 717, 2285, 129, 5, 717, 719, 129, 5, 717, 60,
	129, 5, 717, 935, 129, 5, 717, 106, 129, 5, 717, 224, 129, 5, 717, 143,
	129, 5, 717, 119, 129, 5, 717, 321, 129, 5, 717, 196, 129, 5, 717, 217,
	129, 5, 717, 317, 129, 5, 717, 502, 129, 5, 717, 1576, 129, 5, 717, 1029,
	129, 5, 717, 612, 129, 5, 717, 443, 129, 5, 717, 1663, 129, 5, 717, 358,
	129, 5, 717, 740, 129, 5, 745, 73, 129, 5, 745, 106, 129, 5, 745, 173,
	129, 5, 745, 502, 129, 5, 745, 740, 129, 5, 358, 8, 70, 63, 129, 5,
	489, 490, 419, 67, 129, 5, 489, 490, 534, 67, 129, 5, 489, 490, 6856, 129,
	5, 489, 490, 4137, 129, 5, 489, 490, 359, 4137, 129, 5, 489, 490, 3085, 129,
	5, 489, 490, 79, 3085, 129, 5, 489, 490, 24, 129, 5, 489, 490, 73, 129,
	5, 489, 490, 106, 129, 5, 489, 490, 312, 129, 5, 489, 490, 325, 129, 5,
	489, 490, 436, 129, 5, 489, 490, 500, 129, 5, 489, 490, 437, 129, 5, 489,
	490, 481, 129, 5, 489, 490, 196, 129, 5, 489, 490, 217, 129, 5, 489, 490,
	119, 129, 5, 489, 490, 412, 129, 5, 489, 490, 518, 129, 5, 489, 490, 740,
	129, 5, 489, 490, 443, 129, 5, 489, 490, 970, 129, 5, 634, 489, 490, 196,
	129, 5, 634, 489, 490, 740, 129, 5, 745, 489, 490, 459, 129, 5, 745, 489,
	490, 312, 129, 5, 745, 489, 490, 325, 129, 5, 745, 489, 490, 547, 129, 5,
	745, 489, 490, 436, 129, 5, 745, 489, 490, 509, 129, 5, 745, 489, 490, 196,
	129, 5, 745, 489, 490, 453, 129, 5, 745, 489, 490, 518, 129, 5, 745, 489,
	490, 3200, 129, 5, 745, 489, 490, 740, 129, 5, 745, 489, 490, 443, 129, 5,
	489, 490, 133, 60, 129, 5, 489, 490, 133, 179, 129, 5, 745, 489, 490, 483,
	129, 5, 489, 490, 6846, 129, 5, 745, 489, 490, 1222, 29, 30, 2414, 29, 30,
	971, 29, 30, 3012, 29, 30, 1275, 29, 30, 9798, 29, 30, 9662, 29, 30, 9867,
	29, 30, 10752, 29, 30, 2298, 29, 30, 8303, 29, 30, 3636, 29, 30, 9276, 29,
	30, 9024, 29, 30, 8381, 29, 30, 10476, 29, 30, 3936, 29, 30, 3965, 29, 30,
	10341, 29, 30, 10398, 29, 30, 11533, 29, 30, 4202, 29, 30, 2457, 29, 30, 3746,
	29, 30, 995, 3746, 29, 30, 3747, 29, 30, 995, 3747, 29, 30, 3748, 29, 30,
	995, 3748, 29, 30, 3749, 29, 30, 995, 3749, 29, 30, 10154, 29, 30, 10155, 29,
	30, 10156, 29, 30, 10157, 29, 30, 10158, 29, 30, 3921, 29, 30, 995, 249, 29,
	30, 995, 221, 29, 30, 995, 227, 29, 30, 995, 104, 29, 30, 995, 205, 29,
	30, 995, 151, 29, 30, 995, 121, 29, 30, 995, 1337, 29, 30, 1800, 290, 29,
	30, 1114, 290, 29, 30, 69, 7, 190, 29, 30, 69, 564, 77, 29, 30, 122,
	2, 170, 10153, 29, 30, 153, 2, 170, 1449, 29, 30, 153, 2, 170, 1613, 29,
	30, 10812, 29, 30, 2551, 29, 30, 10936, 29, 30, 10934, 29, 30, 2572, 29, 30,
	10849, 29, 30, 10847, 29, 30, 837, 1341, 29, 30, 837, 2487, 29, 30, 837, 1589,
	29, 30, 118, 7634, 29, 30, 118, 2182, 1577, 29, 30, 118, 1576, 29, 30, 118,
	3390, 29, 30, 837, 8080, 29, 30, 118, 3471, 29, 30, 2117, 2182, 136, 29, 30,
	2117, 2182, 122, 29, 30, 118, 2183, 121, 353, 26, 2, 118, 5, 353, 5, 106,
	353, 5, 361, 353, 5, 224, 353, 5, 459, 353, 5, 312, 353, 5, 325, 353,
	5, 358, 353, 5, 317, 353, 5, 547, 353, 5, 4197, 353, 5, 196, 353, 5,
	386, 353, 5, 217, 353, 5, 453, 353, 5, 185, 353, 5, 119, 353, 5, 412,
	353, 5, 251, 353, 5, 483, 353, 5, 182, 353, 5, 179, 353, 5, 173, 353,
	5, 202, 353, 5, 286, 353, 5, 321, 353, 5, 518, 353, 5, 195, 353, 5,
	143, 353, 5, 7638, 353, 5, 2563, 353, 26, 6, 24, 353, 26, 6, 73, 353,
	26, 6, 60, 353, 26, 6, 496, 353, 26, 6, 292, 353, 26, 6, 454, 353,
	26, 6, 313, 353, 26, 6, 51, 353, 26, 6, 68, 353, 279, 5, 179, 353,
	279, 5, 173, 353, 279, 5, 286, 353, 7, 5, 106, 353, 7, 5, 312, 353,
	7, 5, 419, 353, 7, 5, 196, 353, 7, 5, 185, 353, 7, 5, 119, 353,
	7, 5, 182, 353, 7, 5, 173, 353, 7, 5, 202, 353, 6, 8924, 353, 6,
	8155, 353, 6, 195, 2, 73, 353, 6, 1449, 353, 672, 56, 353, 629, 56, 353,
	23, 254, 353, 23, 67, 353, 23, 70, 353, 23, 79, 353, 23, 93, 353, 23,
	100, 353, 23, 139, 353, 23, 157, 353, 23, 140, 353, 23, 160, 72, 448, 5,
	106, 72, 448, 5, 899, 72, 448, 5, 312, 72, 448, 5, 612, 72, 448, 5,
	195, 72, 448, 5, 179, 72, 448, 5, 196, 72, 448, 5, 386, 72, 448, 5,
	202, 72, 448, 5, 119, 72, 448, 5, 412, 72, 448, 5, 182, 72, 448, 5,
	502, 72, 448, 5, 413, 72, 448, 5, 143, 72, 448, 5, 768, 72, 448, 5,
	361, 72, 448, 5, 897, 72, 448, 5, 185, 72, 448, 5, 24, 72, 448, 5,
	73, 72, 448, 5, 496, 72, 448, 5, 1078, 72, 448, 5, 60, 72, 448, 5,
	454, 72, 448, 5, 68, 72, 448, 5, 719, 72, 448, 5, 51, 72, 448, 5,
	3067, 72, 448, 5, 292, 72, 448, 5, 110, 2, 192, 72, 448, 5, 110, 2,
	273, 72, 448, 5, 110, 2, 349, 72, 448, 5, 110, 2, 387, 72, 448, 5,
	110, 2, 466, 270, 72, 275, 5, 156, 768, 270, 72, 275, 5, 145, 768, 270,
	72, 275, 5, 156, 106, 270, 72, 275, 5, 156, 899, 270, 72, 275, 5, 156,
	312, 270, 72, 275, 5, 145, 106, 270, 72, 275, 5, 145, 899, 270, 72, 275,
	5, 145, 312, 270, 72, 275, 5, 156, 612, 270, 72, 275, 5, 156, 195, 270,
	72, 275, 5, 156, 179, 270, 72, 275, 5, 145, 612, 270, 72, 275, 5, 145,
	195, 270, 72, 275, 5, 145, 179, 270, 72, 275, 5, 156, 196, 270, 72, 275,
	5, 156, 386, 270, 72, 275, 5, 156, 185, 270, 72, 275, 5, 145, 196, 270,
	72, 275, 5, 145, 386, 270, 72, 275, 5, 145, 185, 270, 72, 275, 5, 156,
	119, 270, 72, 275, 5, 156, 412, 270, 72, 275, 5, 156, 182, 270, 72, 275,
	5, 145, 119, 270, 72, 275, 5, 145, 412, 270, 72, 275, 5, 145, 182, 270,
	72, 275, 5, 156, 502, 270, 72, 275, 5, 156, 413, 270, 72, 275, 5, 156,
	202, 270, 72, 275, 5, 145, 502, 270, 72, 275, 5, 145, 413, 270, 72, 275,
	5, 145, 202, 270, 72, 275, 5, 156, 143, 270, 72, 275, 5, 156, 217, 270,
	72, 275, 5, 156, 251, 270, 72, 275, 5, 145, 143, 270, 72, 275, 5, 145,
	217, 270, 72, 275, 5, 145, 251, 270, 72, 275, 5, 156, 3519, 270, 72, 275,
	5, 156, 4192, 270, 72, 275, 5, 145, 3519, 270, 72, 275, 5, 145, 4192, 270,
	72, 275, 5, 156, 2524, 270, 72, 275, 5, 145, 2524, 270, 72, 275, 26, 6,
	26, 10369, 270, 72, 275, 26, 6, 263, 270, 72, 275, 26, 6, 300, 270, 72,
	275, 26, 6, 60, 270, 72, 275, 26, 6, 324, 270, 72, 275, 26, 6, 51,
	270, 72, 275, 26, 6, 543, 270, 72, 275, 26, 6, 68, 270, 72, 275, 26,
	6, 1639, 270, 72, 275, 26, 6, 719, 270, 72, 275, 26, 6, 971, 270, 72,
	275, 26, 6, 3012, 270, 72, 275, 26, 6, 4150, 270, 72, 275, 26, 6, 2414,
	270, 72, 275, 26, 6, 3759, 270, 72, 275, 26, 6, 11053, 270, 72, 275, 26,
	6, 2285, 270, 72, 275, 5, 69, 229, 270, 72, 275, 5, 69, 767, 270, 72,
	275, 5, 69, 151, 270, 72, 275, 5, 69, 205, 270, 72, 275, 5, 69, 227,
	270, 72, 275, 5, 69, 98, 270, 72, 275, 5, 69, 71, 270, 72, 275, 110,
	56, 2, 291, 270, 72, 275, 110, 56, 2, 192, 270, 72, 275, 23, 254, 270,
	72, 275, 23, 67, 270, 72, 275, 23, 70, 270, 72, 275, 23, 79, 270, 72,
	275, 23, 93, 270, 72, 275, 23, 100, 270, 72, 275, 23, 139, 270, 72, 275,
	23, 157, 270, 72, 275, 23, 140, 270, 72, 275, 23, 160, 270, 72, 275, 163,
	23, 67, 270, 72, 275, 6, 3526, 270, 72, 275, 6, 8355, 150, 16, 9657, 150,
	16, 1231, 883, 150, 16, 1098, 883, 150, 16, 1191, 883, 150, 16, 1194, 883, 150,
	16, 835, 883, 150, 16, 835, 2, 1231, 883, 150, 16, 835, 2, 1098, 883, 150,
	16, 835, 2, 1191, 883, 150, 16, 835, 2, 1194, 883, 150, 16, 940, 883, 150,
	16, 940, 2, 1231, 883, 150, 16, 940, 2, 1098, 883, 150, 16, 940, 2, 1191,
	883, 150, 16, 940, 2, 1194, 883, 150, 16, 940, 2, 835, 883, 150, 16, 10967,
	150, 16, 1231, 892, 150, 16, 1098, 892, 150, 16, 1191, 892, 150, 16, 1194, 892,
	150, 16, 835, 892, 150, 16, 835, 2, 1231, 892, 150, 16, 835, 2, 1098, 892,
	150, 16, 835, 2, 1191, 892, 150, 16, 835, 2, 1194, 892, 150, 16, 940, 892,
	150, 16, 940, 2, 1231, 892, 150, 16, 940, 2, 1098, 892, 150, 16, 940, 2,
	1191, 892, 150, 16, 940, 2, 1194, 892, 150, 16, 940, 2, 835, 892, 603, 5,
	106, 603, 5, 224, 603, 5, 312, 603, 5, 3711, 603, 5, 119, 603, 5, 251,
	603, 5, 182, 603, 5, 3670, 603, 5, 196, 603, 5, 217, 603, 5, 185, 603,
	5, 2392, 603, 5, 325, 603, 5, 317, 603, 5, 363, 603, 5, 9377, 603, 5,
	179, 603, 5, 173, 603, 5, 202, 603, 5, 413, 603, 5, 195, 603, 5, 24,
	603, 5, 143, 603, 26, 6, 73, 603, 26, 6, 60, 603, 26, 6, 51, 603,
	26, 6, 68, 603, 26, 6, 543, 603, 9604, 603, 591, 95, 532, 72, 163, 5,
	156, 106, 72, 163, 5, 156, 361, 72, 163, 5, 156, 2313, 72, 163, 5, 145,
	106, 72, 163, 5, 145, 2313, 72, 163, 5, 145, 361, 72, 163, 5, 312, 72,
	163, 5, 156, 325, 72, 163, 5, 156, 358, 72, 163, 5, 145, 325, 72, 163,
	5, 145, 195, 72, 163, 5, 145, 358, 72, 163, 5, 363, 72, 163, 5, 10020,
	72, 163, 5, 156, 2456, 72, 163, 5, 217, 72, 163, 5, 145, 2456, 72, 163,
	5, 3879, 72, 163, 5, 156, 196, 72, 163, 5, 156, 386, 72, 163, 5, 145,
	196, 72, 163, 5, 145, 386, 72, 163, 5, 185, 72, 163, 5, 251, 72, 163,
	5, 156, 119, 72, 163, 5, 156, 412, 72, 163, 5, 156, 502, 72, 163, 5,
	145, 119, 72, 163, 5, 145, 502, 72, 163, 5, 145, 412, 72, 163, 5, 182,
	72, 163, 5, 145, 179, 72, 163, 5, 156, 179, 72, 163, 5, 173, 72, 163,
	5, 10133, 72, 163, 5, 202, 72, 163, 5, 275, 72, 163, 5, 286, 72, 163,
	5, 156, 321, 72, 163, 5, 156, 518, 72, 163, 5, 156, 195, 72, 163, 5,
	156, 143, 72, 163, 5, 657, 72, 163, 5, 24, 72, 163, 5, 145, 143, 72,
	163, 5, 73, 72, 163, 5, 300, 72, 163, 5, 60, 72, 163, 5, 324, 72,
	163, 5, 496, 72, 163, 5, 454, 72, 163, 5, 3526, 72, 163, 5, 1420, 195,
	72, 163, 267, 6, 236, 173, 72, 163, 267, 6, 236, 202, 72, 163, 267, 6,
	202, 10735, 1872, 72, 163, 6, 732, 1851, 1872, 72, 163, 267, 6, 69, 312, 72,
	163, 267, 6, 145, 119, 72, 163, 267, 6, 156, 2456, 246, 145, 119, 72, 163,
	267, 6, 182, 72, 163, 267, 6, 251, 72, 163, 267, 6, 195, 72, 163, 6,
	10234, 72, 163, 26, 6, 24, 72, 163, 26, 6, 732, 2469, 72, 163, 26, 6,
	263, 72, 163, 26, 6, 1495, 263, 72, 163, 26, 6, 73, 72, 163, 26, 6,
	300, 72, 163, 26, 6, 719, 72, 163, 26, 6, 2581, 72, 163, 26, 6, 60,
	72, 163, 26, 6, 324, 72, 163, 26, 6, 68, 72, 163, 26, 6, 1639, 76,
	72, 163, 26, 6, 2414, 72, 163, 26, 6, 51, 72, 163, 26, 6, 543, 72,
	163, 26, 6, 454, 72, 163, 26, 6, 292, 72, 163, 26, 6, 163, 292, 72,
	163, 26, 6, 1639, 53, 72, 163, 6, 732, 1851, 72, 163, 6, 110, 2, 291,
	72, 163, 6, 110, 2, 192, 72, 163, 6, 1856, 110, 2, 273, 72, 163, 6,
	1856, 110, 2, 349, 72, 163, 6, 1856, 110, 2, 387, 72, 163, 6, 173, 7654,
	72, 163, 6, 732, 2468, 72, 163, 6, 1856, 2, 275, 8125, 72, 163, 43, 1131,
	77, 72, 163, 1087, 23, 254, 72, 163, 1087, 23, 67, 72, 163, 1087, 23, 70,
	72, 163, 1087, 23, 79, 72, 163, 1087, 23, 93, 72, 163, 1087, 23, 100, 72,
	163, 1087, 23, 139, 72, 163, 1087, 23, 157, 72, 163, 1087, 23, 140, 72, 163,
	1087, 23, 160, 72, 163, 163, 23, 254, 72, 163, 163, 23, 67, 72, 163, 163,
	23, 70, 72, 163, 163, 23, 79, 72, 163, 163, 23, 93, 72, 163, 163, 23,
	100, 72, 163, 163, 23, 139, 72, 163, 163, 23, 157, 72, 163, 163, 23, 140,
	72, 163, 163, 23, 160, 72, 163, 6, 11350, 72, 163, 6, 11351, 72, 163, 6,
	10267, 72, 163, 6, 8157, 72, 163, 6, 7845, 72, 163, 6, 7015, 72, 163, 6,
	261, 368, 3879, 72, 163, 6, 732, 11484, 72, 163, 6, 8103, 72, 163, 6, 8104,
	72, 163, 6, 10260, 72, 163, 6, 10261, 72, 163, 6, 7677, 72, 163, 6, 6353,
	43, 1560, 294, 344, 43, 310, 2, 190, 43, 1430, 43, 209, 36, 43, 392, 77,
	43, 268, 2, 268, 76, 43, 1514, 245, 76, 43, 189, 56, 76, 43, 55, 189,
	56, 76, 43, 148, 1766, 89, 76, 43, 4029, 1766, 89, 76, 43, 1925, 53, 43,
	55, 1925, 53, 43, 1925, 76, 43, 1925, 715, 43, 12, 7, 5, 290, 76, 43,
	12, 7, 5, 191, 290, 76, 43, 48, 471, 53, 48, 43, 45, 471, 53, 45,
	43, 48, 471, 76, 48, 43, 45, 471, 76, 45, 43, 58, 6270, 53, 43, 41,
	6, 53, 43, 359, 55, 3055, 53, 43, 120, 6, 53, 43, 55, 120, 6, 53,
	43, 55, 120, 6, 76, 43, 392, 230, 344, 43, 12, 7, 5, 763, 220, 43,
	12, 7, 5, 763, 122, 43, 12, 7, 5, 763, 221, 181, 6, 2016, 10069, 181,
	6, 2016, 873, 181, 6, 6418, 181, 6, 4041, 181, 6, 6238, 181, 5, 3027, 181,
	5, 3027, 1003, 181, 5, 3443, 181, 5, 3443, 1003, 181, 5, 4140, 181, 5, 4140,
	1003, 181, 5, 173, 1475, 181, 5, 173, 1475, 1003, 181, 5, 202, 1876, 181, 5,
	202, 1876, 1003, 181, 5, 7135, 181, 5, 5754, 181, 5, 3764, 181, 5, 3764, 1003,
	181, 5, 106, 181, 5, 106, 1227, 181, 5, 224, 181, 5, 224, 7591, 181, 5,
	312, 181, 5, 325, 181, 5, 325, 8350, 181, 5, 317, 181, 5, 317, 8016, 181,
	5, 363, 181, 5, 196, 8375, 181, 5, 196, 991, 1227, 181, 5, 217, 991, 5778,
	181, 5, 217, 991, 1227, 181, 5, 185, 10013, 181, 5, 196, 181, 5, 196, 10749,
	181, 5, 217, 181, 5, 217, 8680, 181, 5, 185, 181, 5, 119, 181, 5, 119,
	8120, 181, 5, 251, 181, 5, 251, 8154, 181, 5, 182, 181, 5, 179, 181, 5,
	173, 181, 5, 202, 181, 5, 286, 181, 5, 195, 10223, 181, 5, 195, 10256, 181,
	5, 195, 181, 5, 143, 181, 6, 10052, 181, 26, 6, 1003, 181, 26, 6, 2016,
	181, 26, 6, 2016, 3934, 181, 26, 6, 1990, 181, 26, 6, 1990, 7941, 181, 26,
	6, 173, 1475, 181, 26, 6, 173, 1475, 1003, 181, 26, 6, 202, 1876, 181, 26,
	6, 202, 1876, 1003, 181, 26, 6, 1686, 181, 26, 6, 1686, 1475, 181, 26, 6,
	1686, 1003, 181, 26, 6, 1686, 1475, 1003, 181, 26, 6, 2424, 181, 26, 6, 2424,
	1003, 181, 1525, 1525, 181, 5, 439, 1248, 181, 5, 8187, 1248, 181, 5, 10988, 1248,
	181, 5, 1077, 1248, 181, 5, 842, 1248, 181, 5, 2038, 1248, 181, 5, 5880, 1248,
	181, 5, 507, 3469, 181, 23, 254, 181, 23, 67, 181, 23, 70, 181, 23, 79,
	181, 23, 93, 181, 23, 100, 181, 23, 139, 181, 23, 157, 181, 23, 140, 181,
	23, 160, 181, 3793, 181, 3789, 181, 4182, 181, 2137, 9612, 181, 2137, 10415, 181, 2137,
	9640, 181, 9608, 181, 49, 16, 3253, 181, 49, 16, 6923, 181, 49, 16, 3263, 181,
	49, 16, 1780, 181, 49, 16, 1780, 4041, 181, 49, 16, 6978, 181, 49, 16, 6844,
	181, 49, 16, 6933, 181, 49, 16, 6852, 181, 49, 16, 1780, 7485, 181, 49, 16,
	43, 10759, 181, 49, 16, 43, 7155, 181, 49, 16, 43, 3485, 181, 49, 16, 43,
	3484, 181, 49, 16, 43, 2287, 181, 49, 16, 43, 3485, 8, 2287, 181, 49, 16,
	43, 3484, 8, 2287, 181, 49, 16, 43, 6204, 181, 49, 16, 43, 7587, 181, 49,
	16, 45, 2, 78, 189, 560, 181, 49, 16, 45, 2, 78, 189, 655, 181, 49,
	16, 45, 2, 78, 468, 4125, 181, 49, 16, 45, 2, 78, 468, 10726, 181, 49,
	16, 48, 2, 78, 189, 9618, 181, 49, 16, 48, 2, 78, 189, 9846, 181, 49,
	16, 48, 2, 78, 468, 9750, 181, 49, 16, 48, 2, 78, 468, 9760, 181, 49,
	16, 48, 2, 78, 189, 2430, 181, 3793, 3532, 181, 3789, 3532, 335, 6, 9630, 335,
	6, 9622, 335, 6, 9625, 335, 5, 24, 335, 5, 73, 335, 5, 60, 335, 5,
	543, 335, 5, 68, 335, 5, 51, 335, 5, 761, 335, 5, 106, 335, 5, 768,
	335, 5, 224, 335, 5, 312, 335, 5, 325, 335, 5, 317, 335, 5, 443, 335,
	5, 363, 335, 5, 196, 335, 5, 217, 335, 5, 185, 335, 5, 119, 335, 5,
	502, 335, 5, 413, 335, 5, 251, 335, 5, 182, 335, 5, 179, 335, 5, 173,
	335, 5, 202, 335, 5, 286, 335, 5, 195, 335, 5, 899, 335, 5, 143, 335,
	267, 6, 9610, 335, 267, 6, 9628, 335, 267, 6, 9631, 335, 26, 6, 9619, 335,
	26, 6, 9632, 335, 26, 6, 9613, 335, 26, 6, 9626, 335, 26, 6, 9609, 335,
	26, 6, 9617, 335, 6, 9607, 335, 6, 505, 335, 267, 6, 3798, 182, 335, 267,
	6, 3798, 286, 335, 5, 361, 335, 5, 10641, 335, 23, 254, 335, 23, 67, 335,
	23, 70, 335, 23, 79, 335, 23, 93, 335, 23, 100, 335, 23, 139, 335, 23,
	157, 335, 23, 140, 335, 23, 160, 335, 844, 335, 5, 10061, 335, 5, 3549, 335,
	5, 483, 335, 5, 69, 227, 335, 5, 69, 205, 404, 5, 24, 404, 5, 1051,
	24, 404, 5, 143, 404, 5, 1051, 143, 404, 5, 2339, 143, 404, 5, 251, 404,
	5, 2296, 251, 404, 5, 119, 404, 5, 1051, 119, 404, 5, 185, 404, 5, 2339,
	185, 404, 5, 286, 404, 5, 1051, 286, 404, 5, 3787, 286, 404, 5, 224, 404,
	5, 1051, 224, 404, 5, 317, 404, 5, 217, 404, 5, 173, 404, 5, 1051, 173,
	404, 5, 182, 404, 5, 1051, 182, 404, 5, 4006, 196, 404, 5, 3730, 196, 404,
	5, 195, 404, 5, 1051, 195, 404, 5, 2339, 195, 404, 5, 179, 404, 5, 1051,
	179, 404, 5, 312, 404, 5, 202, 404, 5, 1051, 202, 404, 5, 363, 404, 5,
	325, 404, 5, 1457, 404, 5, 1617, 404, 5, 73, 404, 5, 60, 404, 6, 10859,
	404, 26, 6, 51, 404, 26, 6, 3787, 51, 404, 26, 6, 496, 404, 26, 6,
	73, 404, 26, 6, 2296, 73, 404, 26, 6, 68, 404, 26, 6, 2296, 68, 404,
	26, 6, 60, 404, 26, 6, 60, 54, 1051, 195, 404, 267, 6, 767, 404, 267,
	6, 235, 404, 3792, 404, 9627, 404, 16, 937, 185, 8791, 404, 16, 937, 9734, 404,
	16, 937, 8065, 404, 16, 937, 3792, 319, 5, 106, 319, 5, 8228, 319, 5, 361,
	319, 5, 224, 319, 5, 7573, 319, 5, 312, 319, 5, 325, 319, 5, 358, 319,
	5, 317, 319, 5, 363, 319, 5, 196, 319, 5, 386, 319, 5, 217, 319, 5,
	185, 319, 5, 119, 319, 5, 1934, 319, 5, 412, 319, 5, 502, 319, 5, 7330,
	319, 5, 251, 319, 5, 6248, 319, 5, 182, 319, 5, 3662, 319, 5, 612, 319,
	5, 897, 319, 5, 942, 319, 5, 179, 319, 5, 173, 319, 5, 202, 319, 5,
	143, 319, 5, 3416, 319, 5, 413, 319, 5, 195, 319, 5, 321, 319, 5, 286,
	319, 5, 24, 319, 279, 5, 179, 319, 279, 5, 173, 319, 26, 6, 263, 319,
	26, 6, 73, 319, 26, 6, 68, 319, 26, 6, 454, 319, 26, 6, 60, 319,
	26, 6, 324, 319, 26, 6, 51, 319, 267, 6, 227, 319, 267, 6, 205, 319,
	267, 6, 136, 319, 267, 6, 151, 319, 267, 6, 249, 319, 267, 6, 122, 319,
	267, 6, 221, 319, 267, 6, 3754, 2, 725, 319, 267, 6, 1851, 319, 6, 10014,
	319, 6, 693, 319, 225, 196, 2, 3910, 319, 225, 2400, 10818, 196, 2, 3910, 319,
	225, 3161, 2, 286, 319, 225, 4114, 3161, 2, 286, 319, 225, 4114, 319, 23, 254,
	319, 23, 67, 319, 23, 70, 319, 23, 79, 319, 23, 93, 319, 23, 100, 319,
	23, 139, 319, 23, 157, 319, 23, 140, 319, 23, 160, 319, 5, 436, 319, 5,
	500, 319, 5, 437, 450, 452, 23, 254, 450, 452, 23, 67, 450, 452, 23, 70,
	450, 452, 23, 79, 450, 452, 23, 93, 450, 452, 23, 100, 450, 452, 23, 139,
	450, 452, 23, 157, 450, 452, 23, 140, 450, 452, 23, 160, 450, 452, 5, 202,
	450, 452, 5, 653, 450, 452, 5, 1739, 450, 452, 5, 935, 450, 452, 5, 775,
	450, 452, 5, 1613, 450, 452, 5, 5613, 450, 452, 5, 5612, 450, 452, 5, 5615,
	450, 452, 5, 5620, 450, 452, 5, 365, 450, 452, 5, 1216, 450, 452, 5, 2272,
	450, 452, 5, 7981, 450, 452, 5, 1595, 450, 452, 5, 679, 450, 452, 5, 2013,
	450, 452, 5, 652, 450, 452, 5, 4145, 450, 452, 5, 4150, 450, 452, 5, 448,
	450, 452, 5, 1807, 450, 452, 5, 7120, 450, 452, 5, 405, 450, 452, 5, 1808,
	450, 452, 5, 765, 450, 452, 5, 9559, 450, 452, 5, 9508, 450, 452, 5, 3780,
	450, 452, 5, 1640, 450, 452, 460, 10945, 450, 452, 3345, 4124, 450, 452, 460, 2,
	3345, 4124, 450, 452, 10040, 450, 452, 9704, 450, 452, 5746, 450, 452, 225, 3673, 450,
	452, 225, 55, 3673, 57, 7, 5, 893, 842, 57, 7, 5, 187, 2, 3544, 710,
	57, 7, 5, 1456, 68, 57, 7, 5, 424, 880, 57, 7, 5, 1495, 440, 57,
	7, 5, 79, 2, 3544, 440, 57, 7, 5, 1495, 1086, 6, 57, 7, 5, 1495,
	1178, 57, 7, 5, 11069, 1506, 127, 470, 10, 5, 524, 127, 470, 10, 5, 1752,
	127, 470, 10, 5, 1309, 127, 470, 10, 5, 1794, 127, 470, 10, 5, 405, 127,
	470, 10, 5, 2020, 127, 470, 10, 5, 1716, 127, 470, 10, 5, 1995, 127, 470,
	10, 5, 372, 127, 470, 10, 5, 1437, 127, 470, 10, 5, 1874, 127, 470, 10,
	5, 733, 127, 470, 10, 5, 1626, 127, 470, 10, 5, 347, 127, 470, 10, 5,
	1924, 127, 470, 10, 5, 2040, 127, 470, 10, 5, 1474, 127, 470, 10, 5, 1479,
	127, 470, 10, 5, 1352, 127, 470, 10, 5, 1173, 127, 470, 10, 5, 1931, 127,
	470, 10, 5, 1854, 127, 470, 10, 5, 1824, 127, 470, 10, 5, 1660, 127, 470,
	10, 5, 573, 127, 470, 10, 5, 1769, 127, 470, 10, 5, 905, 127, 470, 10,
	5, 1599, 127, 470, 10, 5, 1773, 127, 470, 10, 5, 1543, 127, 470, 10, 5,
	2029, 127, 470, 10, 5, 1847, 127, 470, 10, 5, 1831, 127, 470, 10, 5, 446,
	127, 470, 10, 5, 1588, 127, 470, 10, 5, 614, 127, 470, 10, 5, 1423, 127,
	470, 10, 5, 1836, 127, 470, 10, 5, 1023, 127, 470, 10, 5, 1519, 127, 470,
	10, 5, 3292, 127, 470, 10, 5, 191, 1309, 127, 470, 10, 5, 475, 127, 470,
	10, 5, 1368, 127, 470, 10, 5, 1086, 6, 127, 470, 10, 5, 3524, 6, 335,
	225, 937, 10624, 335, 225, 937, 9623, 335, 225, 937, 9855, 335, 225, 937, 3144, 335,
	225, 937, 3549, 1961, 335, 225, 937, 106, 1961, 335, 225, 937, 217, 1961, 335, 225,
	937, 251, 1961, 457, 110, 8130, 457, 110, 10336, 457, 110, 9807, 457, 6, 9175, 457,
	6, 1709, 3656, 1107, 457, 110, 1709, 5743, 704, 1107, 457, 110, 1709, 704, 1107, 457,
	110, 1709, 2297, 704, 1107, 457, 110, 873, 76, 457, 110, 1709, 2297, 704, 1107, 10277,
	457, 110, 55, 1107, 457, 110, 392, 1107, 457, 110, 2297, 1530, 457, 110, 77, 76,
	457, 110, 70, 63, 76, 457, 110, 79, 63, 76, 457, 110, 10074, 3480, 704, 1107,
	457, 110, 5883, 704, 1107, 457, 6, 534, 1107, 457, 6, 534, 2014, 457, 6, 261,
	534, 2014, 457, 6, 534, 1530, 457, 6, 261, 534, 1530, 457, 6, 534, 2014, 8,
	323, 457, 6, 534, 1530, 8, 323, 457, 6, 419, 3044, 457, 6, 419, 6132, 457,
	6, 419, 4153, 457, 6, 419, 4153, 8, 323, 457, 6, 10840, 457, 6, 7718, 187,
	419, 457, 6, 187, 419, 457, 6, 10130, 187, 419, 457, 6, 419, 11042, 8922, 457,
	6, 3056, 457, 6, 368, 3056, 457, 110, 873, 53, 457, 6, 1435, 457, 6, 1507,
	457, 6, 5885, 457, 110, 190, 53, 457, 110, 55, 190, 53, 457, 6, 55, 419,
	3044, 12, 5, 7, 10, 24, 12, 5, 7, 10, 543, 12, 7, 5, 191, 543,
	12, 5, 7, 10, 845, 71, 12, 5, 7, 10, 104, 12, 5, 7, 10, 98,
	12, 5, 7, 10, 1208, 12, 5, 7, 10, 51, 12, 7, 5, 191, 189, 51,
	12, 7, 5, 191, 73, 12, 5, 7, 10, 278, 12, 5, 7, 10, 227, 12,
	5, 7, 10, 136, 8, 89, 12, 5, 7, 10, 205, 12, 5, 7, 10, 261,
	151, 12, 5, 7, 10, 68, 12, 5, 7, 10, 189, 68, 12, 7, 5, 791,
	68, 12, 7, 5, 791, 189, 68, 12, 7, 5, 791, 68, 8, 89, 12, 7,
	5, 191, 485, 12, 5, 7, 10, 1240, 12, 7, 5, 442, 133, 68, 12, 7,
	5, 521, 133, 68, 12, 5, 7, 10, 249, 12, 5, 7, 10, 261, 122, 12,
	5, 7, 10, 191, 122, 12, 5, 7, 10, 221, 12, 5, 7, 10, 60, 12,
	7, 5, 791, 60, 12, 7, 5, 791, 6958, 60, 12, 7, 5, 791, 191, 205,
	12, 5, 7, 10, 229, 12, 5, 7, 10, 290, 12, 5, 7, 10, 250, 12,
	5, 7, 10, 981, 12, 5, 966, 8372, 10494, 12, 5, 475, 46, 5, 7, 10,
	727, 46, 5, 7, 10, 917, 46, 5, 7, 10, 427, 46, 5, 7, 10, 649,
	46, 5, 7, 10, 836, 57, 5, 7, 10, 712, 75, 5, 10, 24, 75, 5,
	10, 543, 75, 5, 10, 71, 75, 5, 10, 845, 71, 75, 5, 10, 98, 75,
	5, 10, 51, 75, 5, 10, 261, 51, 75, 5, 10, 220, 75, 5, 10, 235,
	75, 5, 10, 73, 75, 5, 10, 278, 75, 5, 10, 227, 75, 5, 10, 136,
	75, 5, 10, 205, 75, 5, 10, 151, 75, 5, 10, 261, 151, 75, 5, 10,
	68, 75, 5, 10, 1240, 75, 5, 10, 249, 75, 5, 10, 122, 75, 5, 10,
	221, 75, 5, 10, 60, 75, 5, 10, 290, 75, 5, 7, 24, 75, 5, 7,
	191, 24, 75, 5, 7, 331, 75, 5, 7, 191, 543, 75, 5, 7, 71, 75,
	5, 7, 98, 75, 5, 7, 51, 75, 5, 7, 998, 75, 5, 7, 189, 51,
	75, 5, 7, 191, 189, 51, 75, 5, 7, 220, 75, 5, 7, 191, 73, 75,
	5, 7, 227, 75, 5, 7, 205, 75, 5, 7, 980, 75, 5, 7, 68, 75,
	5, 7, 189, 68, 75, 5, 7, 442, 133, 68, 75, 5, 7, 521, 133, 68,
	75, 5, 7, 249, 75, 5, 7, 221, 75, 5, 7, 60, 75, 5, 7, 791,
	60, 75, 5, 7, 191, 205, 75, 5, 7, 229, 75, 5, 7, 475, 75, 5,
	7, 779, 75, 5, 7, 46, 727, 75, 5, 7, 760, 75, 5, 7, 46, 694,
	75, 5, 7, 671, 12, 519, 7, 5, 73, 12, 519, 7, 5, 122, 12, 519,
	7, 5, 60, 12, 519, 7, 5, 229, 46, 519, 7, 5, 779, 46, 519, 7,
	5, 727, 46, 519, 7, 5, 649, 46, 519, 7, 5, 694, 46, 519, 7, 5,
	671, 12, 7, 5, 719, 12, 7, 5, 71, 8, 94, 211, 12, 7, 5, 98,
	8, 94, 211, 12, 7, 5, 176, 8, 94, 211, 12, 7, 5, 205, 8, 94,
	211, 12, 7, 5, 151, 8, 94, 211, 12, 7, 5, 249, 8, 94, 211, 12,
	7, 5, 122, 8, 94, 211, 12, 7, 5, 122, 8, 1210, 34, 94, 211, 12,
	7, 5, 121, 8, 94, 211, 12, 7, 5, 221, 8, 94, 211, 12, 7, 5,
	250, 8, 94, 211, 12, 7, 5, 191, 220, 75, 5, 57, 405, 12, 7, 5,
	763, 220, 12, 7, 5, 864, 8, 10587, 12, 7, 10, 5, 73, 8, 89, 12,
	7, 5, 415, 8, 89, 12, 7, 5, 249, 8, 89, 12, 7, 10, 5, 60,
	8, 89, 12, 7, 5, 456, 8, 89, 12, 7, 5, 71, 8, 626, 99, 12,
	7, 5, 98, 8, 626, 99, 12, 7, 5, 176, 8, 626, 99, 12, 7, 5,
	220, 8, 626, 99, 12, 7, 5, 227, 8, 626, 99, 12, 7, 5, 136, 8,
	626, 99, 12, 7, 5, 205, 8, 626, 99, 12, 7, 5, 151, 8, 626, 99,
	12, 7, 5, 249, 8, 626, 99, 12, 7, 5, 122, 8, 626, 99, 12, 7,
	5, 121, 8, 626, 99, 12, 7, 5, 785, 8, 626, 99, 12, 7, 5, 229,
	8, 626, 99, 12, 7, 5, 268, 8, 626, 99, 12, 7, 5, 250, 8, 626,
	99, 12, 7, 5, 24, 8, 499, 99, 12, 7, 5, 331, 8, 499, 99, 12,
	7, 5, 98, 8, 99, 34, 323, 12, 7, 5, 51, 8, 499, 99, 12, 7,
	5, 189, 51, 8, 499, 99, 12, 7, 5, 261, 189, 51, 8, 499, 99, 12,
	7, 5, 998, 8, 499, 99, 12, 7, 5, 73, 8, 499, 99, 12, 7, 5,
	189, 68, 8, 499, 99, 12, 7, 5, 785, 8, 499, 99, 12, 7, 5, 60,
	8, 499, 99, 12, 7, 5, 981, 8, 499, 99, 75, 5, 7, 191, 331, 75,
	5, 7, 104, 75, 5, 7, 104, 8, 724, 75, 5, 7, 1208, 75, 5, 7,
	261, 189, 51, 75, 5, 7, 176, 75, 5, 7, 743, 278, 8, 89, 75, 5,
	7, 35, 220, 75, 5, 7, 191, 235, 75, 5, 7, 73, 8, 89, 75, 5,
	7, 415, 75, 5, 7, 10, 73, 75, 5, 7, 10, 73, 8, 89, 75, 5,
	7, 278, 8, 723, 2, 323, 75, 5, 7, 136, 8, 499, 99, 75, 5, 7,
	136, 8, 626, 99, 75, 5, 7, 10, 136, 75, 5, 7, 205, 8, 99, 75,
	5, 7, 191, 205, 8, 187, 764, 75, 5, 7, 151, 8, 48, 99, 75, 5,
	7, 151, 8, 499, 99, 75, 5, 7, 10, 151, 75, 5, 7, 845, 68, 75,
	5, 7, 694, 75, 5, 7, 121, 8, 99, 75, 5, 7, 785, 75, 5, 7,
	221, 8, 626, 99, 75, 5, 7, 60, 146, 75, 5, 7, 456, 75, 5, 7,
	10, 60, 75, 5, 7, 229, 8, 99, 75, 5, 7, 191, 229, 75, 5, 7,
	250, 75, 5, 7, 250, 8, 499, 99, 75, 5, 7, 250, 8, 724, 75, 5,
	7, 981, 75, 5, 7, 697, 43, 478, 315, 344, 43, 478, 230, 344, 43, 1983,
	76, 43, 2529, 56, 43, 320, 2, 230, 43, 315, 2, 320, 43, 320, 2, 315,
	43, 230, 2, 320, 43, 315, 2, 230, 2, 315, 43, 230, 2, 315, 2, 230,
	43, 12, 7, 5, 122, 76, 43, 393, 2, 320, 43, 320, 2, 393, 43, 55,
	294, 53, 43, 888, 53, 43, 1011, 76, 43, 1216, 76, 43, 1174, 53, 43, 2018,
	53, 43, 12, 7, 5, 1571, 189, 24, 53, 43, 12, 7, 5, 543, 43, 12,
	7, 5, 1743, 43, 12, 7, 5, 1373, 43, 12, 7, 5, 104, 615, 43, 12,
	7, 5, 763, 98, 43, 12, 7, 5, 1208, 43, 12, 7, 5, 220, 43, 12,
	5, 7, 10, 220, 43, 12, 7, 5, 227, 43, 12, 7, 5, 136, 43, 12,
	5, 7, 10, 136, 43, 12, 5, 7, 10, 205, 43, 12, 7, 5, 151, 43,
	12, 5, 7, 10, 151, 43, 12, 5, 7, 10, 122, 43, 12, 7, 5, 122,
	1671, 43, 12, 7, 5, 121, 43, 12, 7, 5, 187, 121, 43, 12, 7, 5,
	250, 43, 12, 7, 5, 331, 43, 12, 7, 5, 71, 43, 12, 7, 5, 779,
	43, 12, 7, 5, 998, 43, 12, 7, 5, 176, 43, 12, 7, 5, 136, 8,
	55, 94, 211, 43, 12, 7, 5, 68, 8, 148, 1766, 89, 43, 12, 7, 5,
	249, 43, 12, 7, 5, 785, 43, 12, 7, 5, 60, 8, 148, 1766, 89, 43,
	12, 7, 5, 290, 43, 12, 7, 5, 24, 8, 310, 43, 12, 7, 5, 68,
	8, 310, 43, 12, 7, 5, 60, 8, 310, 43, 111, 558, 53, 43, 1148, 53,
	45, 43, 1148, 53, 48, 43, 77, 53, 48, 43, 424, 359, 1382, 76, 43, 77,
	76, 48, 43, 6916, 56, 43, 55, 359, 393, 76, 43, 843, 198, 83, 76, 43,
	48, 309, 53, 43, 45, 309, 34, 130, 309, 76, 12, 10, 5, 24, 8, 190,
	76, 12, 7, 5, 24, 8, 190, 76, 12, 10, 5, 71, 8, 77, 53, 12,
	7, 5, 71, 8, 77, 53, 12, 10, 5, 71, 8, 77, 76, 12, 7, 5,
	71, 8, 77, 76, 12, 10, 5, 71, 8, 245, 76, 12, 7, 5, 71, 8,
	245, 76, 12, 10, 5, 104, 8, 615, 34, 230, 12, 7, 5, 104, 8, 615,
	34, 230, 12, 10, 5, 98, 8, 77, 53, 12, 7, 5, 98, 8, 77, 53,
	12, 10, 5, 98, 8, 77, 76, 12, 7, 5, 98, 8, 77, 76, 12, 10,
	5, 98, 8, 245, 76, 12, 7, 5, 98, 8, 245, 76, 12, 10, 5, 98,
	8, 615, 12, 7, 5, 98, 8, 615, 12, 10, 5, 98, 8, 294, 76, 12,
	7, 5, 98, 8, 294, 76, 12, 10, 5, 51, 8, 320, 34, 315, 12, 7,
	5, 51, 8, 320, 34, 315, 12, 10, 5, 51, 8, 320, 34, 230, 12, 7,
	5, 51, 8, 320, 34, 230, 12, 10, 5, 51, 8, 294, 76, 12, 7, 5,
	51, 8, 294, 76, 12, 10, 5, 51, 8, 211, 76, 12, 7, 5, 51, 8,
	211, 76, 12, 10, 5, 51, 8, 615, 34, 393, 12, 7, 5, 51, 8, 615,
	34, 393, 12, 10, 5, 176, 8, 77, 53, 12, 7, 5, 176, 8, 77, 53,
	12, 10, 5, 220, 8, 320, 12, 7, 5, 220, 8, 320, 12, 10, 5, 235,
	8, 77, 53, 12, 7, 5, 235, 8, 77, 53, 12, 10, 5, 235, 8, 77,
	76, 12, 7, 5, 235, 8, 77, 76, 12, 10, 5, 235, 8, 310, 12, 7,
	5, 235, 8, 310, 12, 10, 5, 235, 8, 615, 12, 7, 5, 235, 8, 615,
	12, 10, 5, 235, 8, 393, 76, 12, 7, 5, 235, 8, 393, 76, 12, 10,
	5, 73, 8, 211, 76, 12, 7, 5, 73, 8, 211, 76, 12, 10, 5, 73,
	8, 310, 34, 230, 12, 7, 5, 73, 8, 310, 34, 230, 12, 10, 5, 227,
	8, 230, 12, 7, 5, 227, 8, 230, 12, 10, 5, 227, 8, 77, 76, 12,
	7, 5, 227, 8, 77, 76, 12, 10, 5, 227, 8, 245, 76, 12, 7, 5,
	227, 8, 245, 76, 12, 10, 5, 136, 8, 77, 76, 12, 7, 5, 136, 8,
	77, 76, 12, 10, 5, 136, 8, 77, 76, 34, 320, 12, 7, 5, 136, 8,
	77, 76, 34, 320, 12, 10, 5, 136, 8, 245, 76, 12, 7, 5, 136, 8,
	245, 76, 12, 10, 5, 136, 8, 294, 76, 12, 7, 5, 136, 8, 294, 76,
	12, 10, 5, 205, 8, 230, 12, 7, 5, 205, 8, 230, 12, 10, 5, 205,
	8, 77, 53, 12, 7, 5, 205, 8, 77, 53, 12, 10, 5, 205, 8, 77,
	76, 12, 7, 5, 205, 8, 77, 76, 12, 10, 5, 151, 8, 77, 53, 12,
	7, 5, 151, 8, 77, 53, 12, 10, 5, 151, 8, 77, 76, 12, 7, 5,
	151, 8, 77, 76, 12, 10, 5, 151, 8, 245, 76, 12, 7, 5, 151, 8,
	245, 76, 12, 10, 5, 151, 8, 294, 76, 12, 7, 5, 151, 8, 294, 76,
	12, 10, 5, 68, 8, 211, 34, 230, 12, 7, 5, 68, 8, 211, 34, 230,
	12, 10, 5, 68, 8, 211, 34, 310, 12, 7, 5, 68, 8, 211, 34, 310,
	12, 10, 5, 68, 8, 320, 34, 315, 12, 7, 5, 68, 8, 320, 34, 315,
	12, 10, 5, 68, 8, 320, 34, 230, 12, 7, 5, 68, 8, 320, 34, 230,
	12, 10, 5, 249, 8, 230, 12, 7, 5, 249, 8, 230, 12, 10, 5, 249,
	8, 77, 53, 12, 7, 5, 249, 8, 77, 53, 12, 10, 5, 122, 8, 77,
	53, 12, 7, 5, 122, 8, 77, 53, 12, 10, 5, 122, 8, 77, 76, 12,
	7, 5, 122, 8, 77, 76, 12, 10, 5, 122, 8, 77, 76, 34, 320, 12,
	7, 5, 122, 8, 77, 76, 34, 320, 12, 10, 5, 122, 8, 245, 76, 12,
	7, 5, 122, 8, 245, 76, 12, 10, 5, 121, 8, 77, 53, 12, 7, 5,
	121, 8, 77, 53, 12, 10, 5, 121, 8, 77, 76, 12, 7, 5, 121, 8,
	77, 76, 12, 10, 5, 121, 8, 230, 34, 77, 53, 12, 7, 5, 121, 8,
	230, 34, 77, 53, 12, 10, 5, 121, 8, 477, 34, 77, 53, 12, 7, 5,
	121, 8, 477, 34, 77, 53, 12, 10, 5, 121, 8, 77, 76, 34, 77, 53,
	12, 7, 5, 121, 8, 77, 76, 34, 77, 53, 12, 10, 5, 221, 8, 77,
	53, 12, 7, 5, 221, 8, 77, 53, 12, 10, 5, 221, 8, 77, 76, 12,
	7, 5, 221, 8, 77, 76, 12, 10, 5, 221, 8, 245, 76, 12, 7, 5,
	221, 8, 245, 76, 12, 10, 5, 221, 8, 294, 76, 12, 7, 5, 221, 8,
	294, 76, 12, 10, 5, 60, 8, 310, 76, 12, 7, 5, 60, 8, 310, 76,
	12, 10, 5, 60, 8, 211, 76, 12, 7, 5, 60, 8, 211, 76, 12, 10,
	5, 60, 8, 294, 76, 12, 7, 5, 60, 8, 294, 76, 12, 10, 5, 60,
	8, 211, 34, 230, 12, 7, 5, 60, 8, 211, 34, 230, 12, 10, 5, 60,
	8, 320, 34, 310, 12, 7, 5, 60, 8, 320, 34, 310, 12, 10, 5, 229,
	8, 211, 12, 7, 5, 229, 8, 211, 12, 10, 5, 229, 8, 77, 76, 12,
	7, 5, 229, 8, 77, 76, 12, 10, 5, 290, 8, 315, 12, 7, 5, 290,
	8, 315, 12, 10, 5, 290, 8, 230, 12, 7, 5, 290, 8, 230, 12, 10,
	5, 290, 8, 310, 12, 7, 5, 290, 8, 310, 12, 10, 5, 290, 8, 77,
	53, 12, 7, 5, 290, 8, 77, 53, 12, 10, 5, 290, 8, 77, 76, 12,
	7, 5, 290, 8, 77, 76, 12, 10, 5, 268, 8, 77, 53, 12, 7, 5,
	268, 8, 77, 53, 12, 10, 5, 268, 8, 310, 12, 7, 5, 268, 8, 310,
	12, 10, 5, 218, 8, 77, 53, 12, 7, 5, 218, 8, 77, 53, 12, 10,
	5, 250, 8, 294, 12, 7, 5, 250, 8, 294, 12, 10, 5, 250, 8, 77,
	76, 12, 7, 5, 250, 8, 77, 76, 12, 10, 5, 250, 8, 245, 76, 12,
	7, 5, 250, 8, 245, 76, 12, 7, 5, 235, 8, 245, 76, 12, 7, 5,
	221, 8, 310, 12, 7, 5, 290, 8, 190, 53, 12, 7, 5, 218, 8, 190,
	53, 12, 7, 5, 24, 8, 45, 133, 190, 12, 7, 5, 187, 121, 8, 77,
	53, 12, 7, 5, 187, 121, 8, 186, 89, 12, 7, 5, 187, 121, 8, 156,
	89, 12, 10, 5, 1338, 121, 12, 7, 5, 760, 12, 10, 5, 24, 8, 77,
	76, 12, 7, 5, 24, 8, 77, 76, 12, 10, 5, 24, 8, 99, 53, 12,
	7, 5, 24, 8, 99, 53, 12, 10, 5, 24, 8, 294, 34, 230, 12, 7,
	5, 24, 8, 294, 34, 230, 12, 10, 5, 24, 8, 294, 34, 315, 12, 7,
	5, 24, 8, 294, 34, 315, 12, 10, 5, 24, 8, 294, 34, 99, 53, 12,
	7, 5, 24, 8, 294, 34, 99, 53, 12, 10, 5, 24, 8, 294, 34, 211,
	12, 7, 5, 24, 8, 294, 34, 211, 12, 10, 5, 24, 8, 294, 34, 77,
	76, 12, 7, 5, 24, 8, 294, 34, 77, 76, 12, 10, 5, 24, 8, 393,
	34, 230, 12, 7, 5, 24, 8, 393, 34, 230, 12, 10, 5, 24, 8, 393,
	34, 315, 12, 7, 5, 24, 8, 393, 34, 315, 12, 10, 5, 24, 8, 393,
	34, 99, 53, 12, 7, 5, 24, 8, 393, 34, 99, 53, 12, 10, 5, 24,
	8, 393, 34, 211, 12, 7, 5, 24, 8, 393, 34, 211, 12, 10, 5, 24,
	8, 393, 34, 77, 76, 12, 7, 5, 24, 8, 393, 34, 77, 76, 12, 10,
	5, 51, 8, 77, 76, 12, 7, 5, 51, 8, 77, 76, 12, 10, 5, 51,
	8, 99, 53, 12, 7, 5, 51, 8, 99, 53, 12, 10, 5, 51, 8, 211,
	12, 7, 5, 51, 8, 211, 12, 10, 5, 51, 8, 294, 34, 230, 12, 7,
	5, 51, 8, 294, 34, 230, 12, 10, 5, 51, 8, 294, 34, 315, 12, 7,
	5, 51, 8, 294, 34, 315, 12, 10, 5, 51, 8, 294, 34, 99, 53, 12,
	7, 5, 51, 8, 294, 34, 99, 53, 12, 10, 5, 51, 8, 294, 34, 211,
	12, 7, 5, 51, 8, 294, 34, 211, 12, 10, 5, 51, 8, 294, 34, 77,
	76, 12, 7, 5, 51, 8, 294, 34, 77, 76, 12, 10, 5, 73, 8, 99,
	53, 12, 7, 5, 73, 8, 99, 53, 12, 10, 5, 73, 8, 77, 76, 12,
	7, 5, 73, 8, 77, 76, 12, 10, 5, 68, 8, 77, 76, 12, 7, 5,
	68, 8, 77, 76, 12, 10, 5, 68, 8, 99, 53, 12, 7, 5, 68, 8,
	99, 53, 12, 10, 5, 68, 8, 294, 34, 230, 12, 7, 5, 68, 8, 294,
	34, 230, 12, 10, 5, 68, 8, 294, 34, 315, 12, 7, 5, 68, 8, 294,
	34, 315, 12, 10, 5, 68, 8, 294, 34, 99, 53, 12, 7, 5, 68, 8,
	294, 34, 99, 53, 12, 10, 5, 68, 8, 294, 34, 211, 12, 7, 5, 68,
	8, 294, 34, 211, 12, 10, 5, 68, 8, 294, 34, 77, 76, 12, 7, 5,
	68, 8, 294, 34, 77, 76, 12, 10, 5, 68, 8, 562, 34, 230, 12, 7,
	5, 68, 8, 562, 34, 230, 12, 10, 5, 68, 8, 562, 34, 315, 12, 7,
	5, 68, 8, 562, 34, 315, 12, 10, 5, 68, 8, 562, 34, 99, 53, 12,
	7, 5, 68, 8, 562, 34, 99, 53, 12, 10, 5, 68, 8, 562, 34, 211,
	12, 7, 5, 68, 8, 562, 34, 211, 12, 10, 5, 68, 8, 562, 34, 77,
	76, 12, 7, 5, 68, 8, 562, 34, 77, 76, 12, 10, 5, 60, 8, 77,
	76, 12, 7, 5, 60, 8, 77, 76, 12, 10, 5, 60, 8, 99, 53, 12,
	7, 5, 60, 8, 99, 53, 12, 10, 5, 60, 8, 562, 34, 230, 12, 7,
	5, 60, 8, 562, 34, 230, 12, 10, 5, 60, 8, 562, 34, 315, 12, 7,
	5, 60, 8, 562, 34, 315, 12, 10, 5, 60, 8, 562, 34, 99, 53, 12,
	7, 5, 60, 8, 562, 34, 99, 53, 12, 10, 5, 60, 8, 562, 34, 211,
	12, 7, 5, 60, 8, 562, 34, 211, 12, 10, 5, 60, 8, 562, 34, 77,
	76, 12, 7, 5, 60, 8, 562, 34, 77, 76, 12, 10, 5, 218, 8, 315,
	12, 7, 5, 218, 8, 315, 12, 10, 5, 218, 8, 77, 76, 12, 7, 5,
	218, 8, 77, 76, 12, 10, 5, 218, 8, 99, 53, 12, 7, 5, 218, 8,
	99, 53, 12, 10, 5, 218, 8, 211, 12, 7, 5, 218, 8, 211, 12, 10,
	5, 94, 2, 2024, 554, 12, 7, 5, 94, 2, 2024, 554, 12, 10, 5, 94,
	2, 2024, 229, 12, 7, 5, 94, 2, 2024, 229, 12, 10, 5, 218, 8, 658,
	12, 7, 5, 218, 8, 658, 46, 7, 5, 331, 8, 305, 46, 7, 5, 331,
	8, 283, 46, 7, 5, 331, 8, 305, 34, 382, 46, 7, 5, 331, 8, 283,
	34, 382, 46, 7, 5, 331, 8, 305, 34, 380, 46, 7, 5, 331, 8, 283,
	34, 380, 46, 7, 5, 331, 8, 305, 34, 463, 46, 7, 5, 331, 8, 283,
	34, 463, 46, 10, 5, 331, 8, 305, 46, 10, 5, 331, 8, 283, 46, 10,
	5, 331, 8, 305, 34, 382, 46, 10, 5, 331, 8, 283, 34, 382, 46, 10,
	5, 331, 8, 305, 34, 380, 46, 10, 5, 331, 8, 283, 34, 380, 46, 10,
	5, 331, 8, 305, 34, 463, 46, 10, 5, 331, 8, 283, 34, 463, 46, 7,
	5, 525, 8, 305, 46, 7, 5, 525, 8, 283, 46, 7, 5, 525, 8, 305,
	34, 382, 46, 7, 5, 525, 8, 283, 34, 382, 46, 7, 5, 525, 8, 305,
	34, 380, 46, 7, 5, 525, 8, 283, 34, 380, 46, 10, 5, 525, 8, 305,
	46, 10, 5, 525, 8, 283, 46, 10, 5, 525, 8, 305, 34, 382, 46, 10,
	5, 525, 8, 283, 34, 382, 46, 10, 5, 525, 8, 305, 34, 380, 46, 10,
	5, 525, 8, 283, 34, 380, 46, 7, 5, 406, 8, 305, 46, 7, 5, 406,
	8, 283, 46, 7, 5, 406, 8, 305, 34, 382, 46, 7, 5, 406, 8, 283,
	34, 382, 46, 7, 5, 406, 8, 305, 34, 380, 46, 7, 5, 406, 8, 283,
	34, 380, 46, 7, 5, 406, 8, 305, 34, 463, 46, 7, 5, 406, 8, 283,
	34, 463, 46, 10, 5, 406, 8, 305, 46, 10, 5, 406, 8, 283, 46, 10,
	5, 406, 8, 305, 34, 382, 46, 10, 5, 406, 8, 283, 34, 382, 46, 10,
	5, 406, 8, 305, 34, 380, 46, 10, 5, 406, 8, 283, 34, 380, 46, 10,
	5, 406, 8, 305, 34, 463, 46, 10, 5, 406, 8, 283, 34, 463, 46, 7,
	5, 415, 8, 305, 46, 7, 5, 415, 8, 283, 46, 7, 5, 415, 8, 305,
	34, 382, 46, 7, 5, 415, 8, 283, 34, 382, 46, 7, 5, 415, 8, 305,
	34, 380, 46, 7, 5, 415, 8, 283, 34, 380, 46, 7, 5, 415, 8, 305,
	34, 463, 46, 7, 5, 415, 8, 283, 34, 463, 46, 10, 5, 415, 8, 305,
	46, 10, 5, 415, 8, 283, 46, 10, 5, 415, 8, 305, 34, 382, 46, 10,
	5, 415, 8, 283, 34, 382, 46, 10, 5, 415, 8, 305, 34, 380, 46, 10,
	5, 415, 8, 283, 34, 380, 46, 10, 5, 415, 8, 305, 34, 463, 46, 10,
	5, 415, 8, 283, 34, 463, 46, 7, 5, 608, 8, 305, 46, 7, 5, 608,
	8, 283, 46, 7, 5, 608, 8, 305, 34, 382, 46, 7, 5, 608, 8, 283,
	34, 382, 46, 7, 5, 608, 8, 305, 34, 380, 46, 7, 5, 608, 8, 283,
	34, 380, 46, 10, 5, 608, 8, 305, 46, 10, 5, 608, 8, 283, 46, 10,
	5, 608, 8, 305, 34, 382, 46, 10, 5, 608, 8, 283, 34, 382, 46, 10,
	5, 608, 8, 305, 34, 380, 46, 10, 5, 608, 8, 283, 34, 380, 46, 7,
	5, 456, 8, 305, 46, 7, 5, 456, 8, 283, 46, 7, 5, 456, 8, 305,
	34, 382, 46, 7, 5, 456, 8, 283, 34, 382, 46, 7, 5, 456, 8, 305,
	34, 380, 46, 7, 5, 456, 8, 283, 34, 380, 46, 7, 5, 456, 8, 305,
	34, 463, 46, 7, 5, 456, 8, 283, 34, 463, 46, 10, 5, 456, 8, 283,
	46, 10, 5, 456, 8, 283, 34, 382, 46, 10, 5, 456, 8, 283, 34, 380,
	46, 10, 5, 456, 8, 283, 34, 463, 46, 7, 5, 327, 8, 305, 46, 7,
	5, 327, 8, 283, 46, 7, 5, 327, 8, 305, 34, 382, 46, 7, 5, 327,
	8, 283, 34, 382, 46, 7, 5, 327, 8, 305, 34, 380, 46, 7, 5, 327,
	8, 283, 34, 380, 46, 7, 5, 327, 8, 305, 34, 463, 46, 7, 5, 327,
	8, 283, 34, 463, 46, 10, 5, 327, 8, 305, 46, 10, 5, 327, 8, 283,
	46, 10, 5, 327, 8, 305, 34, 382, 46, 10, 5, 327, 8, 283, 34, 382,
	46, 10, 5, 327, 8, 305, 34, 380, 46, 10, 5, 327, 8, 283, 34, 380,
	46, 10, 5, 327, 8, 305, 34, 463, 46, 10, 5, 327, 8, 283, 34, 463,
	46, 7, 5, 331, 8, 382, 46, 7, 5, 331, 8, 380, 46, 7, 5, 525,
	8, 382, 46, 7, 5, 525, 8, 380, 46, 7, 5, 406, 8, 382, 46, 7,
	5, 406, 8, 380, 46, 7, 5, 415, 8, 382, 46, 7, 5, 415, 8, 380,
	46, 7, 5, 608, 8, 382, 46, 7, 5, 608, 8, 380, 46, 7, 5, 456,
	8, 382, 46, 7, 5, 456, 8, 380, 46, 7, 5, 327, 8, 382, 46, 7,
	5, 327, 8, 380, 46, 7, 5, 331, 8, 305, 34, 535, 46, 7, 5, 331,
	8, 283, 34, 535, 46, 7, 5, 331, 8, 305, 34, 382, 34, 535, 46, 7,
	5, 331, 8, 283, 34, 382, 34, 535, 46, 7, 5, 331, 8, 305, 34, 380,
	34, 535, 46, 7, 5, 331, 8, 283, 34, 380, 34, 535, 46, 7, 5, 331,
	8, 305, 34, 463, 34, 535, 46, 7, 5, 331, 8, 283, 34, 463, 34, 535,
	46, 10, 5, 331, 8, 305, 34, 648, 46, 10, 5, 331, 8, 283, 34, 648,
	46, 10, 5, 331, 8, 305, 34, 382, 34, 648, 46, 10, 5, 331, 8, 283,
	34, 382, 34, 648, 46, 10, 5, 331, 8, 305, 34, 380, 34, 648, 46, 10,
	5, 331, 8, 283, 34, 380, 34, 648, 46, 10, 5, 331, 8, 305, 34, 463,
	34, 648, 46, 10, 5, 331, 8, 283, 34, 463, 34, 648, 46, 7, 5, 406,
	8, 305, 34, 535, 46, 7, 5, 406, 8, 283, 34, 535, 46, 7, 5, 406,
	8, 305, 34, 382, 34, 535, 46, 7, 5, 406, 8, 283, 34, 382, 34, 535,
	46, 7, 5, 406, 8, 305, 34, 380, 34, 535, 46, 7, 5, 406, 8, 283,
	34, 380, 34, 535, 46, 7, 5, 406, 8, 305, 34, 463, 34, 535, 46, 7,
	5, 406, 8, 283, 34, 463, 34, 535, 46, 10, 5, 406, 8, 305, 34, 648,
	46, 10, 5, 406, 8, 283, 34, 648, 46, 10, 5, 406, 8, 305, 34, 382,
	34, 648, 46, 10, 5, 406, 8, 283, 34, 382, 34, 648, 46, 10, 5, 406,
	8, 305, 34, 380, 34, 648, 46, 10, 5, 406, 8, 283, 34, 380, 34, 648,
	46, 10, 5, 406, 8, 305, 34, 463, 34, 648, 46, 10, 5, 406, 8, 283,
	34, 463, 34, 648, 46, 7, 5, 327, 8, 305, 34, 535, 46, 7, 5, 327,
	8, 283, 34, 535, 46, 7, 5, 327, 8, 305, 34, 382, 34, 535, 46, 7,
	5, 327, 8, 283, 34, 382, 34, 535, 46, 7, 5, 327, 8, 305, 34, 380,
	34, 535, 46, 7, 5, 327, 8, 283, 34, 380, 34, 535, 46, 7, 5, 327,
	8, 305, 34, 463, 34, 535, 46, 7, 5, 327, 8, 283, 34, 463, 34, 535,
	46, 10, 5, 327, 8, 305, 34, 648, 46, 10, 5, 327, 8, 283, 34, 648,
	46, 10, 5, 327, 8, 305, 34, 382, 34, 648, 46, 10, 5, 327, 8, 283,
	34, 382, 34, 648, 46, 10, 5, 327, 8, 305, 34, 380, 34, 648, 46, 10,
	5, 327, 8, 283, 34, 380, 34, 648, 46, 10, 5, 327, 8, 305, 34, 463,
	34, 648, 46, 10, 5, 327, 8, 283, 34, 463, 34, 648, 46, 7, 5, 331,
	8, 1511, 46, 7, 5, 331, 8, 320, 46, 7, 5, 331, 8, 382, 34, 535,
	46, 7, 5, 331, 8, 535, 46, 7, 5, 331, 8, 380, 34, 535, 46, 7,
	5, 331, 8, 463, 46, 7, 5, 331, 8, 463, 34, 535, 46, 10, 5, 331,
	8, 1511, 46, 10, 5, 331, 8, 320, 46, 10, 5, 331, 8, 382, 46, 10,
	5, 331, 8, 380, 46, 10, 5, 331, 8, 648, 46, 2308, 46, 648, 46, 305,
	46, 463, 46, 825, 34, 463, 46, 7, 5, 406, 8, 382, 34, 535, 46, 7,
	5, 406, 8, 535, 46, 7, 5, 406, 8, 380, 34, 535, 46, 7, 5, 406,
	8, 463, 46, 7, 5, 406, 8, 463, 34, 535, 46, 10, 5, 525, 8, 382,
	46, 10, 5, 525, 8, 380, 46, 10, 5, 406, 8, 382, 46, 10, 5, 406,
	8, 380, 46, 10, 5, 406, 8, 648, 46, 305, 34, 382, 46, 305, 34, 380,
	46, 305, 34, 463, 46, 7, 5, 415, 8, 1511, 46, 7, 5, 415, 8, 320,
	46, 7, 5, 415, 8, 825, 34, 382, 46, 7, 5, 415, 8, 825, 34, 380,
	46, 7, 5, 415, 8, 463, 46, 7, 5, 415, 8, 825, 34, 463, 46, 10,
	5, 415, 8, 1511, 46, 10, 5, 415, 8, 320, 46, 10, 5, 415, 8, 382,
	46, 10, 5, 415, 8, 380, 46, 283, 34, 382, 46, 283, 34, 380, 46, 283,
	34, 463, 46, 7, 5, 456, 8, 1511, 46, 7, 5, 456, 8, 320, 46, 7,
	5, 456, 8, 825, 34, 382, 46, 7, 5, 456, 8, 825, 34, 380, 46, 7,
	5, 649, 8, 305, 46, 7, 5, 649, 8, 283, 46, 7, 5, 456, 8, 463,
	46, 7, 5, 456, 8, 825, 34, 463, 46, 10, 5, 456, 8, 1511, 46, 10,
	5, 456, 8, 320, 46, 10, 5, 456, 8, 382, 46, 10, 5, 456, 8, 380,
	46, 10, 5, 649, 8, 283, 46, 825, 34, 382, 46, 825, 34, 380, 46, 382,
	46, 7, 5, 327, 8, 382, 34, 535, 46, 7, 5, 327, 8, 535, 46, 7,
	5, 327, 8, 380, 34, 535, 46, 7, 5, 327, 8, 463, 46, 7, 5, 327,
	8, 463, 34, 535, 46, 10, 5, 608, 8, 382, 46, 10, 5, 608, 8, 380,
	46, 10, 5, 327, 8, 382, 46, 10, 5, 327, 8, 380, 46, 10, 5, 327,
	8, 648, 46, 380, 46, 283, 405, 695, 714, 695, 405, 737, 714, 737, 79, 2,
	1244, 2, 714, 737, 93, 2, 1244, 2, 714, 737, 139, 2, 1244, 2, 714, 737,
	1025, 737, 225, 737, 1997, 737, 1313, 737, 254, 1061, 737, 254, 1061, 1907, 2, 1219,
	254, 1061, 1219, 48, 2, 83, 2, 45, 56, 45, 2, 83, 2, 48, 56, 850,
	1907, 2, 6275, 850, 1025, 501, 405, 501, 714, 501, 135, 146, 55, 86, 245, 55,
	145, 245, 48, 271, 610, 56, 45, 271, 610, 56, 271, 145, 2, 869, 610, 56,
	271, 156, 2, 261, 2, 869, 610, 56, 48, 55, 610, 56, 45, 55, 610, 56,
	55, 145, 2, 869, 610, 56, 55, 156, 2, 261, 2, 869, 610, 56, 1292, 55,
	1292, 904, 738, 904, 67, 77, 2320, 70, 77, 2320, 135, 1206, 3434, 665, 245, 681,
	1647, 681, 48, 2, 83, 2, 45, 3294, 45, 2, 83, 2, 48, 3294, 2437, 3243,
	7356, 48, 2, 83, 2, 45, 3782, 45, 2, 83, 2, 48, 3782, 1456, 433, 2,
	2125, 737, 1244, 3660, 6, 1244, 280, 203, 6, 997, 55, 997, 392, 997, 261, 997,
	261, 55, 997, 261, 392, 997, 1072, 271, 48, 2, 142, 293, 610, 56, 271, 45,
	2, 142, 293, 610, 56, 10035, 56, 55, 672, 56, 1594, 1242, 4142, 22, 1498, 1072,
	2277, 665, 5876, 850, 904, 234, 860, 48, 58, 161, 8, 1946, 45, 58, 161, 8,
	1946, 55, 629, 56, 629, 672, 56, 672, 629, 56, 4082, 6, 945, 261, 3823, 6,
	74, 138, 904, 74, 113, 904, 145, 467, 261, 1000, 2147, 111, 70, 5875, 5774, 1273,
	1549, 661, 6, 10638, 501, 359, 4142, 1573, 225, 56, 79, 77, 225, 1044, 997, 93,
	77, 225, 100, 77, 225, 70, 77, 225, 93, 77, 56, 478, 425, 4103, 86, 93,
	63, 210, 19, 737, 720, 1219, 2233, 5832, 2279, 32, 2279, 681, 2279, 120, 48, 2,
	83, 2, 45, 1845, 45, 2, 83, 2, 48, 1845, 1139, 4029, 1845, 2437, 3243, 1845,
	3447, 4050, 4043, 3016, 4050, 4043, 3447, 13, 25, 3954, 3016, 13, 25, 3954, 3689, 23,
	3953, 9263, 23, 3953, 651, 254, 651, 12, 7, 5, 73, 651, 93, 651, 100, 651,
	139, 651, 157, 651, 140, 651, 160, 651, 120, 6, 651, 661, 651, 545, 6, 651,
	48, 471, 651, 45, 471, 651, 12, 7, 5, 151, 519, 254, 519, 67, 519, 70,
	519, 79, 519, 93, 519, 100, 519, 139, 519, 157, 519, 140, 519, 160, 519, 120,
	6, 519, 661, 519, 545, 6, 519, 48, 471, 519, 45, 471, 12, 519, 7, 5,
	24, 12, 519, 7, 5, 51, 12, 519, 7, 5, 68, 12, 519, 7, 5, 268,
	12, 519, 7, 5, 998, 12, 519, 7, 5, 235, 12, 519, 7, 5, 227, 12,
	519, 7, 5, 136, 12, 519, 7, 5, 205, 12, 519, 7, 5, 151, 12, 519,
	7, 5, 249, 12, 519, 7, 5, 121, 12, 519, 7, 5, 221, 2208, 2, 1020,
	6, 577, 6, 6721, 6, 3336, 7365, 6, 3559, 6, 8857, 6, 9010, 6, 9693, 6,
	1247, 6, 2596, 6, 270, 10347, 6, 3253, 6, 2208, 6, 3500, 6, 10950, 6, 2194,
	6, 7498, 9682, 6, 3814, 6, 7613, 6, 5900, 6, 7848, 6, 6419, 6, 8444, 10869,
	6, 10490, 6, 10767, 6, 7962, 1247, 6, 10962, 3559, 6, 9268, 56, 6, 8708, 6,
	10132, 6, 8371, 6, 6243, 6, 4003, 6, 43, 48, 370, 53, 43, 45, 370, 53,
	43, 187, 86, 245, 715, 43, 295, 86, 245, 715, 43, 721, 36, 53, 43, 847,
	36, 53, 43, 48, 36, 53, 43, 45, 36, 53, 43, 190, 715, 43, 847, 190,
	715, 43, 721, 190, 715, 43, 79, 63, 53, 43, 93, 63, 53, 43, 1301, 125,
	43, 1301, 58, 43, 1301, 458, 43, 1301, 125, 1287, 43, 48, 45, 36, 53, 43,
	1301, 1674, 43, 1301, 3489, 43, 1301, 4147, 142, 114, 43, 747, 707, 715, 43, 55,
	86, 89, 715, 43, 5815, 16, 43, 392, 11072, 43, 424, 1382, 53, 43, 138, 36,
	715, 43, 187, 55, 707, 715, 43, 113, 370, 8, 212, 209, 43, 138, 370, 8,
	212, 209, 43, 48, 36, 76, 43, 45, 36, 76, 43, 467, 53, 3014, 95, 5717,
	83, 487, 10600, 55, 2, 241, 10, 104, 1782, 6424, 360, 245, 16, 6382, 95, 6358,
	11065, 7182, 2155, 10284, 1782, 7276, 35, 7, 220, 35, 10, 235, 74, 2, 5, 10,
	235, 55, 2, 241, 10, 235, 3832, 2155, 3832, 2155, 172, 70, 427, 35, 10, 73,
	74, 2, 5, 10, 73, 35, 10, 136, 35, 7, 136, 136, 71, 146, 16, 55,
	2, 241, 10, 151, 9362, 6, 838, 10033, 3186, 35, 10, 249, 55, 2, 241, 10,
	249, 55, 2, 241, 10, 389, 35, 10, 122, 74, 2, 5, 10, 122, 55, 2,
	241, 10, 122, 9808, 10727, 3896, 10309, 56, 1004, 6, 10876, 56, 6, 11219, 55, 2,
	241, 10, 250, 3779, 6, 1915, 6, 359, 1915, 6, 74, 2, 5, 10, 250, 191,
	46, 7, 5, 415, 8153, 6, 5802, 6, 35, 10, 71, 74, 2, 5, 10, 104,
	7177, 16, 35, 7, 51, 35, 10, 51, 35, 10, 176, 191, 10, 176, 35, 10,
	205, 35, 7, 68, 144, 16, 1379, 16, 827, 16, 1779, 16, 2274, 2504, 368, 10,
	389, 7274, 6, 55, 2, 241, 7, 427, 55, 2, 241, 7, 727, 55, 2, 241,
	10, 727, 55, 2, 241, 10, 427, 55, 2, 241, 151, 2, 820, 1684, 191, 66,
	2, 64, 10, 220, 191, 66, 2, 64, 10, 136, 261, 66, 2, 64, 10, 136,
	191, 66, 2, 64, 10, 218, 55, 2, 241, 59, 10, 98, 55, 2, 241, 59,
	7, 98, 55, 2, 241, 59, 7, 51, 55, 2, 241, 59, 7, 73, 55, 2,
	241, 59, 7, 278, 9826, 245, 191, 1184, 1244, 6, 5764, 191, 7, 176, 16, 54,
	381, 2504, 794, 234, 67, 10315, 794, 234, 67, 9181, 794, 234, 67, 2542, 794, 234,
	67, 928, 794, 234, 70, 1171, 794, 234, 67, 2220, 794, 234, 70, 2221, 794, 234,
	79, 2221, 794, 234, 93, 2221, 794, 234, 67, 2494, 794, 234, 100, 3984, 794, 234,
	67, 511, 794, 234, 79, 875, 794, 234, 100, 875, 794, 234, 157, 875, 234, 1461,
	67, 428, 307, 67, 428, 307, 70, 428, 307, 79, 428, 307, 93, 428, 307, 100,
	428, 307, 139, 428, 307, 157, 428, 307, 140, 428, 307, 160, 428, 307, 280, 428,
	307, 944, 428, 307, 865, 428, 307, 551, 428, 307, 67, 159, 428, 307, 100, 159,
	428, 307, 67, 203, 7, 428, 307, 67, 7, 428, 307, 70, 7, 428, 307, 79,
	7, 428, 307, 93, 7, 428, 307, 100, 7, 428, 307, 139, 7, 428, 307, 157,
	7, 428, 307, 140, 7, 428, 307, 160, 7, 428, 307, 280, 7, 428, 307, 944,
	7, 428, 307, 865, 7, 428, 307, 551, 7, 428, 307, 67, 159, 7, 428, 307,
	100, 159, 7, 428, 307, 67, 203, 428, 307, 67, 203, 104, 98, 428, 307, 100,
	203, 428, 307, 280, 203, 428, 307, 261, 67, 159, 12, 7, 5, 261, 104, 428,
	307, 139, 8374, 25, 428, 307, 551, 7117, 25, 428, 307, 551, 203, 428, 307, 67,
	159, 203, 794, 234, 254, 1171, 191, 23, 70, 191, 23, 79, 138, 36, 216, 36,
	113, 36, 209, 36, 48, 45, 36, 111, 130, 36, 214, 153, 36, 214, 373, 36,
	253, 373, 36, 253, 153, 36, 138, 36, 8, 89, 113, 36, 8, 89, 138, 575,
	36, 113, 575, 36, 138, 70, 155, 36, 216, 70, 155, 36, 113, 70, 155, 36,
	209, 70, 155, 36, 138, 36, 8, 323, 113, 36, 8, 323, 138, 36, 546, 146,
	216, 36, 546, 146, 113, 36, 546, 146, 209, 36, 546, 146, 111, 130, 36, 8,
	1754, 138, 36, 8, 99, 113, 36, 8, 99, 138, 36, 8, 658, 113, 36, 8,
	658, 48, 45, 575, 36, 48, 45, 36, 8, 89, 209, 1011, 36, 216, 36, 8,
	751, 138, 216, 36, 8, 751, 113, 209, 36, 8, 751, 138, 209, 36, 8, 751,
	113, 113, 36, 8, 536, 209, 209, 36, 8, 536, 138, 721, 442, 1675, 36, 847,
	442, 1675, 36, 214, 153, 36, 83, 187, 146, 138, 36, 83, 146, 172, 113, 36,
	83, 146, 721, 189, 125, 36, 847, 189, 125, 36, 138, 370, 8, 212, 216, 138,
	370, 8, 212, 209, 216, 370, 8, 212, 113, 216, 370, 8, 212, 138, 113, 370,
	8, 212, 216, 113, 370, 8, 212, 209, 209, 370, 8, 212, 113, 209, 370, 8,
	212, 138, 113, 36, 172, 138, 36, 216, 36, 138, 95, 209, 36, 138, 36, 172,
	113, 36, 138, 1243, 819, 216, 1243, 819, 113, 1243, 819, 209, 1243, 819, 138, 370,
	172, 113, 370, 113, 370, 172, 138, 370, 138, 55, 36, 8, 89, 48, 45, 55,
	36, 8, 89, 113, 55, 36, 8, 89, 138, 55, 36, 216, 55, 36, 113, 55,
	36, 209, 55, 36, 48, 45, 55, 36, 111, 130, 55, 36, 214, 153, 55, 36,
	214, 373, 55, 36, 253, 373, 55, 36, 253, 153, 55, 36, 138, 392, 36, 113,
	392, 36, 138, 1986, 36, 113, 1986, 36, 216, 36, 8, 55, 89, 209, 36, 8,
	55, 89, 138, 941, 36, 216, 941, 36, 113, 941, 36, 209, 941, 36, 138, 36,
	83, 146, 113, 36, 83, 146, 138, 81, 36, 216, 81, 36, 113, 81, 36, 209,
	81, 36, 216, 81, 36, 546, 146, 216, 81, 36, 347, 1927, 216, 81, 36, 347,
	1927, 8, 135, 146, 216, 81, 36, 347, 1927, 8, 86, 146, 216, 81, 55, 36,
	216, 81, 55, 36, 347, 1927, 113, 81, 36, 546, 817, 214, 153, 36, 83, 536,
	253, 373, 36, 83, 536, 111, 130, 81, 36, 45, 36, 8, 7, 125, 209, 36,
	138, 95, 216, 36, 79, 113, 819, 138, 36, 8, 86, 89, 113, 36, 8, 86,
	89, 48, 45, 36, 8, 86, 89, 138, 36, 8, 55, 86, 89, 113, 36, 8,
	55, 86, 89, 48, 45, 36, 8, 55, 86, 89, 138, 189, 2, 155, 36, 113,
	189, 2, 155, 36, 48, 45, 189, 2, 155, 36, 54, 1528, 6667, 1467, 1395, 4076,
	7194, 4076, 978, 362, 7193, 877, 1164, 7961, 1455, 943, 95, 362, 524, 943, 95, 7,
	943, 95, 1130, 755, 1891, 978, 362, 2157, 755, 1891, 7, 1130, 755, 1891, 591, 95,
	9825, 151, 2, 820, 961, 151, 2, 820, 3185, 151, 2, 820, 1684, 661, 6, 661,
	2, 246, 2, 120, 6, 77, 120, 1202, 860, 1164, 661, 467, 461, 190, 461, 904,
	461, 58, 1670, 2167, 1670, 1308, 1670, 9827, 83, 1430, 45, 293, 293, 990, 293, 2506,
	293, 6996, 978, 362, 2188, 1097, 83, 362, 1097, 83, 621, 34, 621, 246, 803, 771,
	689, 55, 689, 392, 689, 2158, 689, 2528, 689, 11256, 689, 847, 689, 847, 2158, 689,
	721, 2158, 689, 10791, 6194, 10021, 3850, 77, 661, 7188, 7496, 3850, 3422, 211, 461, 261,
	211, 359, 2319, 121, 10418, 575, 11379, 961, 362, 211, 661, 211, 3064, 198, 83, 362,
	3064, 198, 83, 1372, 198, 83, 1372, 1071, 362, 3017, 198, 83, 1153, 1372, 918, 3017,
	198, 83, 843, 198, 83, 362, 843, 198, 83, 843, 198, 246, 198, 83, 392, 211,
	1528, 198, 83, 878, 83, 3361, 878, 83, 6966, 669, 5834, 487, 8431, 3361, 198, 83,
	1372, 198, 83, 246, 487, 1146, 95, 1146, 95, 246, 1372, 198, 83, 577, 545, 545,
	577, 190, 372, 198, 83, 190, 198, 83, 6703, 83, 7178, 7169, 83, 391, 545, 760,
	198, 83, 198, 83, 974, 6911, 990, 974, 9927, 198, 83, 362, 198, 83, 1841, 83,
	362, 1841, 83, 10585, 878, 83, 384, 2, 178, 246, 198, 83, 376, 2, 178, 246,
	198, 83, 384, 2, 178, 172, 198, 83, 376, 2, 178, 172, 198, 83, 384, 2,
	178, 1071, 362, 198, 83, 376, 2, 178, 1071, 362, 198, 83, 1622, 384, 2, 178,
	1622, 376, 2, 178, 669, 362, 878, 83, 362, 384, 2, 178, 362, 376, 2, 178,
	1153, 384, 2, 178, 918, 198, 83, 1153, 376, 2, 178, 918, 198, 83, 384, 2,
	178, 246, 878, 83, 376, 2, 178, 246, 878, 83, 1153, 384, 2, 178, 918, 878,
	83, 1153, 376, 2, 178, 918, 878, 83, 384, 2, 178, 246, 376, 2, 178, 376,
	2, 178, 246, 384, 2, 178, 1153, 384, 2, 178, 918, 376, 2, 178, 1153, 376,
	2, 178, 918, 384, 2, 178, 960, 965, 960, 246, 198, 83, 965, 246, 198, 83,
	960, 246, 878, 83, 965, 246, 878, 83, 978, 362, 3843, 978, 362, 4033, 684, 95,
	685, 95, 362, 24, 684, 95, 362, 24, 685, 95, 684, 95, 246, 198, 83, 685,
	95, 246, 198, 83, 1153, 24, 684, 95, 918, 198, 83, 1153, 24, 685, 95, 918,
	198, 83, 684, 95, 8, 362, 198, 83, 685, 95, 8, 362, 198, 83, 2366, 2366,
	953, 2366, 771, 58, 1146, 95, 58, 1643, 95, 58, 1146, 95, 246, 198, 83, 58,
	1643, 95, 246, 198, 83, 58, 1765, 58, 758, 62, 120, 62, 661, 62, 32, 62,
	1202, 860, 62, 77, 461, 62, 190, 461, 62, 467, 461, 62, 545, 62, 501, 126,
	120, 126, 661, 126, 32, 126, 77, 461, 45, 558, 48, 558, 130, 558, 111, 558,
	5873, 8877, 2568, 7354, 392, 86, 146, 45, 1271, 55, 86, 146, 55, 45, 1271, 978,
	362, 9830, 362, 2568, 978, 362, 7353, 3696, 55, 86, 146, 55, 45, 1271, 960, 1112,
	1954, 965, 1112, 1954, 1094, 1258, 95, 1130, 755, 1094, 1258, 1094, 1258, 95, 246, 198,
	83, 1130, 755, 1094, 1258, 246, 198, 83, 1643, 95, 1146, 95, 2365, 7715, 6678, 8741,
	7975, 11428, 9012, 918, 45, 293, 8, 754, 45, 114, 151, 2, 820, 621, 34, 151,
	2, 820, 621, 246, 151, 2, 820, 803, 151, 2, 820, 771, 458, 461, 77, 461,
	391, 461, 1202, 32, 1760, 48, 1094, 2214, 1676, 961, 45, 1094, 2214, 1676, 961, 48,
	1676, 961, 45, 1676, 961, 261, 211, 545, 544, 621, 246, 544, 621, 34, 55, 684,
	55, 685, 55, 803, 55, 771, 3830, 198, 34, 1097, 83, 384, 2, 178, 8, 77,
	376, 2, 178, 8, 77, 599, 1622, 384, 2, 178, 599, 1622, 376, 2, 178, 384,
	2, 178, 198, 83, 246, 376, 2, 178, 376, 2, 178, 198, 83, 246, 384, 2,
	178, 198, 83, 246, 384, 2, 178, 198, 83, 246, 376, 2, 178, 198, 83, 246,
	960, 198, 83, 246, 965, 978, 362, 3843, 246, 198, 978, 362, 4033, 246, 198, 362,
	58, 1146, 95, 246, 198, 83, 362, 58, 1643, 95, 246, 198, 83, 58, 1146, 95,
	246, 362, 198, 83, 58, 1643, 95, 246, 362, 198, 83, 384, 2, 178, 1071, 362,
	878, 83, 376, 2, 178, 1071, 362, 878, 83, 960, 1071, 362, 878, 83, 965, 1071,
	362, 878, 83, 362, 1094, 1258, 95, 978, 362, 2157, 755, 1094, 1258, 362, 1094, 1258,
	95, 246, 198, 83, 978, 362, 2157, 755, 1094, 1258, 246, 198, 86, 1206, 3656, 135,
	1206, 111, 45, 186, 1206, 130, 45, 186, 1206, 943, 95, 8, 187, 135, 89, 943,
	95, 8, 86, 146, 653, 591, 95, 135, 89, 7, 943, 95, 8, 86, 146, 653,
	591, 95, 135, 89, 943, 95, 8, 77, 53, 943, 95, 8, 956, 7, 943, 95,
	8, 956, 943, 95, 8, 698, 943, 95, 8, 70, 135, 2522, 1130, 8, 187, 135,
	89, 1130, 8, 86, 146, 653, 591, 95, 135, 89, 7, 1130, 8, 86, 146, 653,
	591, 95, 135, 89, 1130, 8, 956, 7, 1130, 8, 956, 250, 304, 1750, 8778, 6959,
	6, 1804, 36, 1428, 111, 309, 130, 309, 9823, 9690, 1060, 245, 48, 823, 45, 823,
	48, 798, 45, 798, 521, 45, 1776, 521, 48, 1776, 442, 45, 1776, 442, 48, 1776,
	261, 362, 6, 58, 948, 754, 2475, 10291, 1004, 10032, 1471, 570, 11234, 58, 1331, 95,
	7976, 6, 191, 362, 6, 4173, 1837, 442, 48, 536, 442, 45, 536, 521, 48, 536,
	521, 45, 536, 442, 133, 689, 521, 133, 689, 1820, 1679, 111, 309, 669, 70, 135,
	1535, 9547, 1149, 3302, 83, 487, 45, 268, 372, 24, 1159, 124, 1607, 48, 2, 142,
	293, 161, 45, 2, 142, 293, 161, 3302, 83, 487, 48, 3100, 190, 6742, 1528, 1746,
	2, 9818, 10643, 4094, 10140, 6973, 9550, 6677, 10739, 10447, 6706, 6707, 341, 342, 16, 73,
	2, 2116, 341, 342, 16, 10512, 695, 341, 342, 16, 695, 198, 341, 342, 16, 695,
	2188, 341, 342, 16, 695, 458, 341, 342, 16, 695, 1220, 341, 342, 16, 695, 125,
	341, 342, 16, 125, 1490, 341, 342, 16, 125, 1220, 341, 342, 16, 860, 146, 341,
	342, 16, 1287, 146, 341, 342, 16, 695, 860, 341, 342, 16, 695, 1287, 341, 342,
	16, 695, 384, 2, 178, 341, 342, 16, 695, 376, 2, 178, 341, 342, 16, 138,
	2019, 341, 342, 16, 113, 2019, 341, 342, 16, 695, 138, 36, 341, 342, 16, 695,
	113, 36, 341, 342, 16, 125, 1287, 341, 342, 16, 130, 558, 698, 341, 342, 16,
	760, 1490, 341, 342, 16, 695, 130, 1072, 341, 342, 16, 695, 760, 341, 342, 16,
	130, 558, 1220, 341, 342, 16, 216, 2019, 341, 342, 16, 695, 216, 36, 341, 342,
	16, 111, 558, 956, 341, 342, 16, 1783, 1490, 341, 342, 16, 695, 111, 1072, 341,
	342, 16, 695, 1783, 341, 342, 16, 111, 558, 1220, 341, 342, 16, 209, 2019, 341,
	342, 16, 695, 209, 36, 341, 342, 16, 3869, 698, 341, 342, 16, 760, 698, 341,
	342, 16, 458, 698, 341, 342, 16, 1220, 698, 341, 342, 16, 125, 698, 341, 342,
	16, 111, 1340, 1220, 341, 342, 16, 3869, 695, 341, 342, 16, 125, 391, 341, 342,
	16, 695, 577, 341, 342, 16, 111, 558, 310, 341, 342, 16, 1783, 310, 341, 342,
	16, 391, 310, 341, 342, 16, 1220, 310, 341, 342, 16, 125, 310, 341, 342, 16,
	130, 1340, 1490, 341, 342, 16, 48, 1340, 1490, 341, 342, 16, 211, 310, 341, 342,
	16, 376, 2, 178, 310, 341, 342, 16, 383, 146, 341, 342, 16, 1783, 211, 341,
	342, 16, 11656, 341, 342, 16, 1490, 211, 341, 342, 16, 1000, 698, 341, 342, 16,
	695, 362, 198, 341, 342, 16, 695, 629, 341, 342, 16, 130, 1072, 211, 341, 342,
	16, 111, 1072, 211, 341, 342, 16, 415, 341, 342, 16, 649, 341, 342, 16, 327,
	341, 342, 16, 331, 698, 341, 342, 16, 525, 698, 341, 342, 16, 415, 698, 341,
	342, 16, 327, 698, 341, 342, 16, 331, 362, 906, 56, 45, 293, 8, 209, 1011,
	36, 10372, 189, 124, 1290, 16, 86, 245, 8, 94, 77, 2277, 16, 6685, 4141, 16,
	6985, 4141, 16, 3296, 16, 2153, 16, 81, 58, 8, 360, 86, 245, 3299, 16, 2098,
	1149, 16, 7709, 16, 62, 135, 146, 8, 3731, 62, 114, 130, 1383, 125, 8, 9270,
	36, 11073, 16, 8889, 16, 7896, 16, 189, 2, 3174, 2, 1920, 235, 2, 816, 16,
	189, 2, 3174, 2, 1920, 136, 2, 816, 16, 3799, 2, 3854, 2, 130, 2, 1920,
	16, 3799, 2, 3854, 2, 111, 2, 1920, 16, 2187, 2168, 16, 25, 70, 10463, 2,
	2233, 16, 341, 342, 16, 695, 2180, 681, 1149, 16, 9812, 1096, 9096, 1096, 3846, 1674,
	16, 6535, 1674, 16, 48, 471, 141, 99, 48, 471, 1209, 48, 471, 134, 99, 45,
	471, 141, 99, 45, 471, 1209, 45, 471, 134, 99, 48, 58, 161, 141, 536, 48,
	58, 161, 1209, 48, 58, 161, 134, 536, 45, 58, 161, 141, 536, 45, 58, 161,
	1209, 45, 58, 161, 134, 536, 48, 544, 161, 141, 99, 48, 544, 161, 94, 1157,
	48, 544, 161, 134, 99, 544, 161, 1209, 45, 544, 161, 141, 99, 45, 544, 161,
	94, 1157, 45, 544, 161, 134, 99, 689, 1209, 135, 245, 1209, 141, 48, 246, 134,
	45, 544, 161, 532, 141, 45, 246, 134, 48, 544, 161, 532, 1684, 442, 1684, 521,
	442, 58, 161, 521, 58, 161, 521, 58, 161, 172, 442, 58, 161, 65, 16, 521,
	48, 86, 124, 245, 45, 86, 124, 245, 135, 1962, 245, 2, 291, 135, 1962, 245,
	2, 273, 135, 1962, 245, 2, 568, 135, 1962, 245, 2, 869, 874, 16, 148, 86,
	34, 442, 45, 874, 16, 148, 86, 34, 521, 45, 874, 16, 148, 86, 8, 125,
	874, 16, 148, 130, 34, 135, 8, 125, 874, 16, 148, 111, 34, 135, 8, 125,
	874, 16, 148, 86, 8, 114, 874, 16, 148, 130, 34, 135, 8, 114, 874, 16,
	148, 111, 34, 135, 8, 114, 874, 16, 148, 86, 34, 575, 874, 16, 148, 130,
	34, 135, 8, 575, 874, 16, 148, 111, 34, 135, 8, 575, 874, 16, 148, 130,
	34, 135, 874, 16, 148, 111, 34, 135, 874, 16, 148, 86, 34, 442, 48, 874,
	16, 148, 86, 34, 521, 48, 58, 1816, 1667, 16, 7133, 16, 86, 245, 1209, 1151,
	393, 1151, 187, 172, 295, 1151, 295, 172, 187, 1151, 187, 172, 70, 1974, 1151, 70,
	1974, 172, 187, 1151, 70, 1974, 1601, 1151, 4105, 1151, 4070, 1151, 3806, 848, 3382, 7378,
	442, 471, 521, 471, 442, 544, 161, 521, 544, 161, 442, 687, 586, 161, 521, 687,
	586, 161, 81, 10882, 3100, 190, 8, 125, 10577, 7334, 1737, 2168, 7139, 803, 2180, 7196,
	16, 74, 45, 2, 142, 55, 114, 74, 48, 2, 142, 55, 114, 74, 111, 2,
	142, 55, 114, 74, 130, 2, 142, 55, 114, 74, 45, 2, 142, 55, 114, 8,
	86, 146, 74, 48, 2, 142, 55, 114, 8, 86, 146, 74, 45, 2, 142, 114,
	8, 55, 86, 146, 5766, 654, 10573, 10829, 654, 1837, 8, 7339, 10250, 74, 210, 48,
	2, 142, 114, 74, 210, 45, 2, 142, 114, 74, 210, 111, 2, 142, 114, 74,
	210, 130, 2, 142, 114, 55, 86, 146, 74, 58, 54, 322, 74, 125, 54, 3885,
	1472, 16, 1472, 347, 2, 2403, 16, 1472, 347, 16, 1472, 10440, 16, 9516, 1080, 16,
	16, 54, 3742, 16, 54, 1682, 95, 7694, 16, 54, 1682, 95, 1169, 16, 54, 591,
	95, 1169, 16, 54, 591, 95, 4100, 16, 54, 7160, 16, 54, 3015, 16, 54, 1290,
	16, 54, 6120, 16, 54, 135, 4052, 16, 54, 245, 2217, 16, 54, 86, 4052, 16,
	54, 25, 2217, 16, 54, 6385, 1667, 16, 54, 3959, 788, 16, 54, 3959, 372, 16,
	54, 6865, 3557, 3305, 16, 54, 1785, 1389, 67, 16, 54, 1785, 1389, 70, 16, 54,
	1785, 1389, 79, 16, 54, 1785, 1389, 93, 16, 54, 237, 3015, 16, 54, 10646, 7930,
	16, 54, 591, 95, 4100, 131, 16, 54, 3147, 16, 54, 591, 95, 210, 16, 54,
	4032, 16, 54, 3305, 16, 54, 1569, 681, 16, 54, 3383, 681, 16, 54, 3885, 681,
	16, 54, 1005, 681, 16, 54, 737, 16, 54, 3229, 3114, 16, 189, 124, 16, 54,
	2380, 16, 54, 3229, 25, 70, 16, 54, 4032, 25, 70, 1041, 99, 1041, 3164, 1041,
	1817, 1041, 359, 1817, 1041, 1015, 6291, 1041, 1381, 1498, 1041, 1121, 2112, 3439, 1041, 5789,
	95, 906, 1041, 501, 1041, 6735, 3014, 41, 1041, 55, 1287, 62, 23, 67, 62, 23,
	70, 62, 23, 79, 62, 23, 93, 62, 23, 100, 62, 23, 139, 62, 23, 157,
	62, 23, 140, 62, 23, 160, 62, 41, 280, 62, 41, 944, 62, 41, 865, 62,
	41, 1264, 62, 41, 1211, 62, 41, 1024, 62, 41, 1106, 62, 41, 1251, 62, 41,
	1134, 62, 41, 1234, 62, 41, 357, 162, 23, 67, 162, 23, 70, 162, 23, 79,
	162, 23, 93, 162, 23, 100, 162, 23, 139, 162, 23, 157, 162, 23, 140, 162,
	23, 160, 162, 41, 280, 162, 41, 944, 162, 41, 865, 162, 41, 1264, 162, 41,
	1211, 162, 41, 1024, 162, 41, 1106, 162, 41, 1251, 162, 41, 1134, 162, 41, 1234,
	162, 41, 357, 23, 67, 426, 322, 23, 70, 426, 322, 23, 79, 426, 322, 23,
	93, 426, 322, 23, 100, 426, 322, 23, 139, 426, 322, 23, 157, 426, 322, 23,
	140, 426, 322, 23, 160, 426, 322, 41, 280, 426, 322, 41, 944, 426, 322, 41,
	865, 426, 322, 41, 1264, 426, 322, 41, 1211, 426, 322, 41, 1024, 426, 322, 41,
	1106, 426, 322, 41, 1251, 426, 322, 41, 1134, 426, 322, 41, 1234, 426, 322, 41,
	357, 426, 322, 162, 12, 7, 5, 24, 162, 12, 7, 5, 71, 162, 12, 7,
	5, 104, 162, 12, 7, 5, 98, 162, 12, 7, 5, 51, 162, 12, 7, 5,
	176, 162, 12, 7, 5, 220, 162, 12, 7, 5, 235, 162, 12, 7, 5, 73,
	162, 12, 7, 5, 278, 162, 12, 7, 5, 227, 162, 12, 7, 5, 136, 162,
	12, 7, 5, 205, 162, 12, 7, 5, 151, 162, 12, 7, 5, 68, 162, 12,
	7, 5, 249, 162, 12, 7, 5, 389, 162, 12, 7, 5, 122, 162, 12, 7,
	5, 121, 162, 12, 7, 5, 221, 162, 12, 7, 5, 60, 162, 12, 7, 5,
	229, 162, 12, 7, 5, 290, 162, 12, 7, 5, 268, 162, 12, 7, 5, 218,
	162, 12, 7, 5, 250, 62, 12, 10, 5, 24, 62, 12, 10, 5, 71, 62,
	12, 10, 5, 104, 62, 12, 10, 5, 98, 62, 12, 10, 5, 51, 62, 12,
	10, 5, 176, 62, 12, 10, 5, 220, 62, 12, 10, 5, 235, 62, 12, 10,
	5, 73, 62, 12, 10, 5, 278, 62, 12, 10, 5, 227, 62, 12, 10, 5,
	136, 62, 12, 10, 5, 205, 62, 12, 10, 5, 151, 62, 12, 10, 5, 68,
	62, 12, 10, 5, 249, 62, 12, 10, 5, 389, 62, 12, 10, 5, 122, 62,
	12, 10, 5, 121, 62, 12, 10, 5, 221, 62, 12, 10, 5, 60, 62, 12,
	10, 5, 229, 62, 12, 10, 5, 290, 62, 12, 10, 5, 268, 62, 12, 10,
	5, 218, 62, 12, 10, 5, 250, 62, 12, 7, 5, 24, 62, 12, 7, 5,
	71, 62, 12, 7, 5, 104, 62, 12, 7, 5, 98, 62, 12, 7, 5, 51,
	62, 12, 7, 5, 176, 62, 12, 7, 5, 220, 62, 12, 7, 5, 235, 62,
	12, 7, 5, 73, 62, 12, 7, 5, 278, 62, 12, 7, 5, 227, 62, 12,
	7, 5, 136, 62, 12, 7, 5, 205, 62, 12, 7, 5, 151, 62, 12, 7,
	5, 68, 62, 12, 7, 5, 249, 62, 12, 7, 5, 389, 62, 12, 7, 5,
	122, 62, 12, 7, 5, 121, 62, 12, 7, 5, 221, 62, 12, 7, 5, 60,
	62, 12, 7, 5, 229, 62, 12, 7, 5, 290, 62, 12, 7, 5, 268, 62,
	12, 7, 5, 218, 62, 12, 7, 5, 250, 62, 23, 254, 237, 62, 41, 944,
	237, 62, 41, 865, 237, 62, 41, 1264, 237, 62, 41, 1211, 237, 62, 41, 1024,
	237, 62, 41, 1106, 237, 62, 41, 1251, 237, 62, 41, 1134, 237, 62, 41, 1234,
	237, 62, 41, 357, 55, 62, 23, 67, 55, 62, 23, 70, 55, 62, 23, 79,
	55, 62, 23, 93, 55, 62, 23, 100, 55, 62, 23, 139, 55, 62, 23, 157,
	55, 62, 23, 140, 55, 62, 23, 160, 55, 62, 41, 280, 237, 62, 23, 254,
	124, 154, 148, 135, 124, 154, 96, 135, 124, 154, 148, 86, 124, 154, 96, 86,
	124, 154, 148, 392, 501, 135, 124, 154, 96, 392, 501, 135, 124, 154, 148, 392,
	501, 86, 124, 154, 96, 392, 501, 86, 124, 154, 148, 1044, 501, 135, 124, 154,
	96, 1044, 501, 135, 124, 154, 148, 1044, 501, 86, 124, 154, 96, 1044, 501, 86,
	124, 154, 148, 130, 34, 45, 124, 154, 130, 148, 34, 45, 96, 124, 154, 130,
	96, 34, 45, 148, 124, 154, 96, 130, 34, 45, 124, 154, 148, 130, 34, 48,
	124, 154, 130, 148, 34, 48, 96, 124, 154, 130, 96, 34, 48, 148, 124, 154,
	96, 130, 34, 48, 124, 154, 148, 111, 34, 45, 124, 154, 111, 148, 34, 45,
	96, 124, 154, 111, 96, 34, 45, 148, 124, 154, 96, 111, 34, 45, 124, 154,
	148, 111, 34, 48, 124, 154, 111, 148, 34, 48, 96, 124, 154, 111, 96, 34,
	48, 148, 124, 154, 96, 111, 34, 48, 124, 154, 148, 86, 34, 45, 124, 154,
	86, 148, 34, 45, 96, 124, 154, 111, 96, 34, 45, 130, 148, 124, 154, 130,
	96, 34, 45, 111, 148, 124, 154, 86, 96, 34, 45, 148, 124, 154, 130, 148,
	34, 45, 111, 96, 124, 154, 111, 148, 34, 45, 130, 96, 124, 154, 96, 86,
	34, 45, 124, 154, 148, 86, 34, 48, 124, 154, 86, 148, 34, 48, 96, 124,
	154, 111, 96, 34, 48, 130, 148, 124, 154, 130, 96, 34, 48, 111, 148, 124,
	154, 86, 96, 34, 48, 148, 124, 154, 130, 148, 34, 48, 111, 96, 124, 154,
	111, 148, 34, 48, 130, 96, 124, 154, 96, 86, 34, 48, 124, 154, 148, 130,
	34, 135, 124, 154, 48, 96, 34, 45, 130, 148, 124, 154, 45, 96, 34, 48,
	130, 148, 124, 154, 130, 148, 34, 135, 96, 124, 154, 130, 96, 34, 135, 148,
	124, 154, 45, 148, 34, 48, 130, 96, 124, 154, 48, 148, 34, 45, 130, 96,
	124, 154, 96, 130, 34, 135, 124, 154, 148, 111, 34, 135, 124, 154, 48, 96,
	34, 45, 111, 148, 124, 154, 45, 96, 34, 48, 111, 148, 124, 154, 111, 148,
	34, 135, 96, 124, 154, 111, 96, 34, 135, 148, 124, 154, 45, 148, 34, 48,
	111, 96, 124, 154, 48, 148, 34, 45, 111, 96, 124, 154, 96, 111, 34, 135,
	124, 154, 148, 86, 34, 135, 124, 154, 48, 96, 34, 45, 86, 148, 124, 154,
	45, 96, 34, 48, 86, 148, 124, 154, 86, 148, 34, 135, 96, 124, 154, 111,
	96, 34, 130, 135, 148, 124, 154, 130, 96, 34, 111, 135, 148, 124, 154, 86,
	96, 34, 135, 148, 124, 154, 48, 111, 96, 34, 45, 130, 148, 124, 154, 45,
	111, 96, 34, 48, 130, 148, 124, 154, 48, 130, 96, 34, 45, 111, 148, 124,
	154, 45, 130, 96, 34, 48, 111, 148, 124, 154, 130, 148, 34, 111, 135, 96,
	124, 154, 111, 148, 34, 130, 135, 96, 124, 154, 45, 148, 34, 48, 86, 96,
	124, 154, 48, 148, 34, 45, 86, 96, 124, 154, 96, 86, 34, 135, 124, 154,
	148, 55, 501, 135, 124, 154, 96, 55, 501, 135, 124, 154, 148, 55, 501, 86,
	124, 154, 96, 55, 501, 86, 124, 154, 55, 135, 124, 154, 55, 86, 124, 154,
	130, 271, 34, 45, 55, 124, 154, 130, 55, 34, 45, 271, 124, 154, 55, 130,
	34, 45, 124, 154, 130, 271, 34, 48, 55, 124, 154, 130, 55, 34, 48, 271,
	124, 154, 55, 130, 34, 48, 124, 154, 111, 271, 34, 45, 55, 124, 154, 111,
	55, 34, 45, 271, 124, 154, 55, 111, 34, 45, 124, 154, 111, 271, 34, 48,
	55, 124, 154, 111, 55, 34, 48, 271, 124, 154, 55, 111, 34, 48, 124, 154,
	86, 271, 34, 45, 55, 124, 154, 86, 55, 34, 45, 271, 124, 154, 55, 86,
	34, 45, 124, 154, 86, 271, 34, 48, 55, 124, 154, 86, 55, 34, 48, 271,
	124, 154, 55, 86, 34, 48, 124, 154, 130, 271, 34, 135, 55, 124, 154, 130,
	55, 34, 135, 271, 124, 154, 55, 130, 34, 135, 124, 154, 111, 271, 34, 135,
	55, 124, 154, 111, 55, 34, 135, 271, 124, 154, 55, 111, 34, 135, 124, 154,
	86, 271, 34, 135, 55, 124, 154, 86, 55, 34, 135, 271, 124, 154, 55, 86,
	34, 135, 124, 154, 148, 754, 130, 34, 45, 124, 154, 148, 754, 130, 34, 48,
	124, 154, 148, 754, 111, 34, 48, 124, 154, 148, 754, 111, 34, 45, 124, 154,
	148, 186, 141, 45, 83, 134, 48, 124, 154, 148, 186, 141, 48, 83, 134, 45,
	124, 154, 148, 186, 425, 124, 154, 148, 48, 124, 154, 148, 111, 124, 154, 148,
	45, 124, 154, 148, 130, 124, 154, 96, 48, 124, 154, 96, 111, 124, 154, 96,
	45, 124, 154, 96, 130, 124, 154, 148, 48, 34, 96, 45, 124, 154, 148, 111,
	34, 96, 130, 124, 154, 96, 48, 34, 148, 45, 124, 154, 96, 111, 34, 148,
	130, 141, 133, 131, 134, 67, 511, 131, 134, 67, 516, 131, 134, 79, 875, 131,
	134, 133, 131, 134, 100, 875, 131, 134, 79, 890, 131, 134, 157, 875, 131, 426,
	131, 48, 157, 875, 131, 48, 79, 890, 131, 48, 100, 875, 131, 48, 133, 131,
	48, 79, 875, 131, 48, 67, 516, 131, 48, 67, 511, 131, 45, 133, 131, 148,
	894, 210, 894, 3211, 894, 141, 67, 511, 131, 45, 67, 511, 131, 705, 134, 48,
	705, 134, 45, 705, 141, 48, 705, 141, 48, 34, 134, 48, 34, 134, 45, 705,
	141, 48, 34, 134, 45, 705, 141, 48, 34, 141, 45, 34, 134, 48, 705, 141,
	48, 34, 141, 45, 34, 134, 45, 705, 141, 45, 705, 141, 45, 34, 134, 48,
	705, 141, 45, 34, 134, 48, 34, 134, 45, 74, 58, 81, 58, 81, 58, 8,
	893, 1390, 81, 58, 1129, 74, 7, 58, 58, 8, 135, 797, 58, 8, 86, 797,
	58, 8, 9553, 3191, 797, 58, 8, 141, 48, 83, 134, 45, 797, 58, 8, 141,
	45, 83, 134, 48, 797, 58, 8, 186, 3191, 797, 74, 7, 58, 81, 7, 58,
	74, 1159, 81, 1159, 74, 86, 1159, 81, 86, 1159, 74, 3795, 81, 3795, 74, 111,
	2, 142, 114, 81, 111, 2, 142, 114, 74, 111, 2, 142, 7, 114, 81, 111,
	2, 142, 7, 114, 74, 45, 2, 142, 114, 81, 45, 2, 142, 114, 74, 45,
	2, 142, 7, 114, 81, 45, 2, 142, 7, 114, 74, 45, 2, 142, 1654, 81,
	45, 2, 142, 1654, 74, 130, 2, 142, 114, 81, 130, 2, 142, 114, 74, 130,
	2, 142, 7, 114, 81, 130, 2, 142, 7, 114, 74, 48, 2, 142, 114, 81,
	48, 2, 142, 114, 74, 48, 2, 142, 7, 114, 81, 48, 2, 142, 7, 114,
	74, 48, 2, 142, 1654, 81, 48, 2, 142, 1654, 74, 458, 81, 458, 81, 458,
	1129, 74, 7, 458, 7324, 948, 81, 125, 478, 125, 125, 8, 86, 797, 6297, 74,
	125, 125, 8, 48, 133, 74, 125, 8, 45, 133, 74, 125, 8, 134, 133, 74,
	125, 8, 141, 133, 74, 125, 8, 141, 45, 705, 74, 125, 8, 1528, 1071, 141,
	48, 705, 74, 48, 133, 74, 125, 45, 133, 74, 125, 1030, 904, 1030, 81, 125,
	141, 133, 1030, 81, 125, 134, 133, 1030, 81, 125, 141, 48, 705, 1547, 754, 141,
	45, 705, 1547, 754, 134, 45, 705, 1547, 754, 134, 48, 705, 1547, 754, 141, 133,
	125, 134, 133, 125, 74, 134, 45, 114, 74, 134, 48, 114, 74, 141, 48, 114,
	74, 141, 45, 114, 81, 904, 58, 8, 48, 133, 74, 58, 8, 45, 133, 74,
	58, 8, 141, 48, 186, 133, 74, 58, 8, 134, 45, 186, 133, 74, 81, 58,
	8, 86, 6239, 245, 81, 111, 2, 142, 114, 8, 77, 111, 2, 142, 114, 8,
	48, 133, 74, 111, 2, 142, 114, 8, 45, 133, 74, 252, 125, 81, 58, 8,
	141, 48, 705, 81, 58, 8, 134, 48, 705, 81, 58, 8, 134, 45, 705, 81,
	58, 8, 141, 45, 705, 81, 125, 8, 141, 48, 705, 81, 125, 8, 134, 48,
	705, 81, 125, 8, 134, 45, 705, 81, 125, 8, 141, 45, 705, 141, 48, 114,
	141, 45, 114, 134, 48, 114, 81, 210, 58, 74, 210, 58, 81, 210, 7, 58,
	74, 210, 7, 58, 134, 45, 114, 74, 862, 8, 1045, 1074, 1703, 2502, 6662, 74,
	391, 81, 391, 1615, 10808, 862, 3061, 3729, 2185, 3729, 6679, 2408, 74, 1004, 81, 1004,
	936, 124, 936, 124, 8, 906, 936, 124, 8, 268, 1049, 1703, 8, 1335, 7031, 1590,
	3102, 81, 1972, 1157, 74, 1972, 1157, 10332, 261, 368, 2224, 581, 904, 74, 48, 142,
	132, 74, 45, 142, 132, 81, 48, 142, 132, 81, 111, 142, 132, 81, 45, 142,
	132, 81, 130, 142, 132, 2496, 34, 3190, 6394, 6, 9999, 6, 6234, 6, 3143, 5812,
	9552, 425, 671, 649, 425, 95, 8466, 425, 95, 8018, 391, 34, 1391, 911, 16, 5719,
	10329, 1832, 34, 10407, 2422, 16, 1179, 1008, 1268, 54, 1833, 1268, 54, 3527, 1268, 54,
	1027, 1268, 54, 2550, 1268, 54, 1062, 1268, 54, 931, 1268, 54, 1230, 1268, 54, 848,
	2025, 95, 6944, 81, 1821, 123, 81, 706, 123, 74, 706, 123, 81, 862, 8, 1045,
	1139, 516, 624, 2318, 516, 624, 1892, 1413, 6, 848, 1093, 6, 8076, 10262, 4148, 3698,
	1653, 5845, 10747, 7490, 6368, 8397, 11243, 8415, 10280, 10224, 6378, 5838, 9744, 81, 244, 806,
	81, 244, 809, 81, 244, 922, 81, 244, 903, 81, 244, 563, 81, 244, 996, 74,
	244, 806, 74, 244, 809, 74, 244, 922, 74, 244, 903, 74, 244, 563, 74, 244,
	996, 74, 4007, 1167, 81, 581, 1167, 81, 458, 1167, 74, 1774, 1167, 81, 4007, 1167,
	74, 581, 1167, 74, 458, 1167, 81, 1774, 1167, 1590, 10505, 516, 664, 511, 664, 1755,
	511, 1637, 1755, 1254, 1637, 1898, 561, 6, 1898, 2373, 6, 1898, 1338, 6, 153, 262,
	425, 373, 262, 425, 4143, 1102, 16, 1102, 16, 54, 816, 2, 291, 1332, 1102, 16,
	54, 816, 2, 192, 1332, 1102, 16, 54, 816, 2, 273, 1332, 1102, 16, 54, 816,
	2, 349, 1332, 1102, 16, 54, 816, 2, 387, 1332, 1102, 16, 54, 816, 2, 466,
	1332, 1102, 16, 54, 816, 2, 568, 1332, 1102, 16, 54, 7492, 8740, 74, 4143, 1102,
	16, 3888, 1923, 16, 9644, 2, 3888, 1923, 16, 9688, 1923, 6, 2594, 16, 1201, 123,
	2, 291, 1201, 123, 2, 192, 1201, 123, 2, 273, 1201, 123, 2, 349, 1201, 123,
	2, 387, 1201, 123, 2, 466, 81, 125, 8, 77, 45, 81, 125, 8, 70, 63,
	74, 125, 8, 81, 77, 45, 74, 125, 8, 70, 81, 63, 1152, 54, 1008, 1152,
	54, 1179, 1132, 54, 376, 1008, 1132, 54, 3548, 1179, 1132, 54, 3548, 1008, 1132, 54,
	376, 1179, 81, 826, 74, 826, 1832, 34, 3821, 3041, 723, 10637, 1255, 95, 5732, 10273,
	3031, 1573, 2239, 1255, 95, 7714, 5889, 16, 7335, 2, 710, 2, 3560, 1241, 81, 391,
	79, 2327, 3183, 45, 79, 2327, 3183, 48, 11328, 6, 156, 11255, 6, 1560, 1413, 6,
	1560, 1093, 6, 7977, 1413, 34, 1093, 6, 1093, 34, 1413, 6, 1093, 8, 89, 6,
	1093, 8, 89, 34, 1093, 34, 1413, 6, 86, 1093, 8, 89, 6, 135, 1093, 8,
	89, 6, 210, 81, 125, 210, 74, 125, 210, 7, 81, 125, 8726, 16, 6998, 16,
	11081, 3797, 16, 6653, 7375, 11094, 9094, 6436, 9603, 8070, 11221, 6483, 74, 624, 8427, 10320,
	10298, 9931, 10310, 10459, 972, 6152, 126, 1149, 81, 1796, 733, 81, 1796, 806, 74, 1796,
	733, 74, 1796, 806, 2502, 1707, 2500, 862, 2118, 1074, 1335, 74, 2502, 2550, 1074, 34,
	1335, 191, 81, 1972, 1157, 191, 74, 1972, 1157, 81, 458, 372, 58, 578, 3531, 6984,
	1195, 9544, 3821, 1195, 10445, 1835, 8, 81, 425, 62, 578, 3531, 6441, 433, 1565, 506,
	67, 2, 1275, 48, 1275, 1694, 74, 70, 2, 1275, 48, 1275, 1694, 81, 70, 2,
	1275, 48, 1275, 1694, 74, 48, 3530, 3647, 81, 48, 3530, 3647, 3261, 3992, 6, 96,
	81, 130, 2, 142, 114, 48, 468, 1565, 126, 1049, 1022, 186, 372, 81, 125, 372,
	74, 58, 74, 2567, 3897, 48, 1565, 2, 291, 3897, 48, 1565, 2, 192, 5879, 16,
	54, 4148, 96, 125, 8, 89, 34, 70, 63, 53, 1929, 45, 2, 3397, 3450, 1929,
	48, 2, 3397, 3450, 1929, 359, 1929, 74, 425, 347, 2485, 10359, 10378, 3171, 2138, 7742,
	10428, 2239, 1707, 7852, 2239, 8, 7675, 1616, 16, 54, 8424, 1230, 1703, 347, 3382, 3334,
	826, 372, 3419, 7305, 10227, 58, 93, 1390, 10431, 1215, 3988, 734, 8, 972, 2541, 1217,
	2112, 16, 3402, 7606, 16, 7371, 9844, 758, 347, 74, 58, 81, 826, 8, 135, 94,
	74, 10588, 74, 2467, 1481, 141, 3113, 1481, 74, 1481, 134, 3113, 1481, 81, 1481, 81,
	96, 906, 56, 1004, 1090, 6, 4056, 3261, 1183, 1136, 564, 177, 564, 78, 4156, 78,
	4187, 78, 134, 45, 1928, 1928, 141, 45, 1928, 81, 3717, 74, 3717, 906, 56, 96,
	906, 56, 953, 268, 96, 953, 268, 936, 268, 96, 936, 268, 1241, 46, 425, 96,
	46, 425, 189, 360, 425, 96, 189, 360, 425, 12, 425, 790, 81, 12, 425, 1241,
	12, 425, 8705, 425, 391, 95, 6866, 93, 1168, 2, 633, 467, 93, 1375, 2, 633,
	467, 96, 93, 1375, 2, 633, 467, 93, 1774, 2, 633, 467, 74, 93, 530, 391,
	81, 93, 530, 391, 10482, 1683, 1241, 81, 391, 62, 81, 391, 189, 360, 74, 391,
	74, 360, 81, 391, 1241, 74, 391, 96, 1241, 74, 391, 1158, 391, 790, 81, 391,
	96, 467, 189, 360, 467, 140, 633, 467, 140, 530, 74, 391, 140, 530, 1158, 391,
	139, 530, 74, 391, 140, 530, 3887, 74, 391, 96, 140, 530, 3887, 74, 391, 865,
	530, 74, 391, 1106, 530, 467, 1168, 2, 633, 467, 189, 360, 1168, 2, 633, 467,
	96, 1168, 2, 633, 467, 139, 3815, 74, 34, 81, 1814, 74, 1814, 81, 1814, 140,
	3815, 1241, 74, 1814, 62, 189, 360, 140, 530, 391, 96, 1168, 2, 633, 1158, 467,
	2501, 2553, 10889, 2501, 96, 3168, 2501, 4008, 96, 4008, 1375, 2, 633, 467, 140, 1168,
	2, 633, 3849, 467, 96, 140, 1168, 2, 633, 3849, 467, 425, 56, 790, 81, 125,
	237, 126, 425, 56, 134, 45, 2195, 2, 790, 81, 58, 141, 45, 2195, 2, 790,
	81, 58, 134, 45, 790, 81, 58, 141, 45, 790, 81, 58, 74, 629, 56, 367,
	81, 629, 56, 367, 81, 672, 56, 367, 74, 458, 661, 81, 268, 96, 672, 56,
	16, 148, 86, 146, 210, 86, 146, 96, 86, 146, 96, 271, 191, 383, 610, 56,
	367, 96, 271, 383, 610, 56, 367, 96, 55, 191, 383, 610, 56, 367, 96, 55,
	383, 610, 56, 367, 96, 145, 271, 383, 610, 56, 367, 96, 145, 55, 383, 610,
	56, 367, 759, 749, 1647, 6, 367, 96, 672, 56, 367, 96, 581, 672, 56, 367,
	96, 74, 581, 368, 96, 74, 581, 904, 2224, 581, 368, 2224, 581, 904, 210, 48,
	471, 367, 210, 45, 471, 367, 210, 1571, 48, 471, 367, 210, 1571, 45, 471, 367,
	210, 48, 2, 142, 293, 161, 367, 210, 45, 2, 142, 293, 161, 367, 96, 48,
	2, 142, 293, 610, 56, 367, 96, 45, 2, 142, 293, 610, 56, 367, 96, 48,
	2, 142, 293, 161, 367, 96, 45, 2, 142, 293, 161, 367, 148, 48, 687, 586,
	161, 367, 148, 45, 687, 586, 161, 367, 210, 48, 544, 161, 367, 210, 45, 544,
	161, 367, 580, 237, 62, 23, 67, 580, 237, 62, 23, 70, 580, 237, 62, 23,
	79, 580, 237, 62, 23, 93, 580, 237, 62, 23, 100, 580, 237, 62, 23, 139,
	580, 237, 62, 23, 157, 580, 237, 62, 23, 140, 580, 237, 62, 23, 160, 580,
	237, 62, 41, 280, 580, 62, 66, 2, 64, 23, 67, 580, 62, 66, 2, 64,
	23, 70, 580, 62, 66, 2, 64, 23, 79, 580, 62, 66, 2, 64, 23, 93,
	580, 62, 66, 2, 64, 23, 100, 580, 62, 66, 2, 64, 23, 139, 580, 62,
	66, 2, 64, 23, 157, 580, 62, 66, 2, 64, 23, 140, 580, 62, 66, 2,
	64, 23, 160, 580, 62, 66, 2, 64, 41, 280, 580, 237, 62, 66, 2, 64,
	23, 67, 580, 237, 62, 66, 2, 64, 23, 70, 580, 237, 62, 66, 2, 64,
	23, 79, 580, 237, 62, 66, 2, 64, 23, 93, 580, 237, 62, 66, 2, 64,
	23, 100, 580, 237, 62, 66, 2, 64, 23, 139, 580, 237, 62, 66, 2, 64,
	23, 157, 580, 237, 62, 66, 2, 64, 23, 140, 580, 237, 62, 66, 2, 64,
	23, 160, 580, 237, 62, 66, 2, 64, 41, 280, 96, 424, 2, 155, 113, 36,
	96, 120, 6, 96, 661, 6, 96, 1202, 6, 96, 253, 373, 36, 96, 113, 36,
	96, 214, 373, 36, 7027, 665, 113, 36, 96, 855, 2, 10836, 113, 36, 114, 2,
	155, 113, 36, 96, 114, 2, 155, 113, 36, 941, 114, 2, 155, 113, 36, 96,
	941, 114, 2, 155, 113, 36, 74, 113, 36, 79, 2, 98, 442, 2, 1447, 113,
	309, 79, 2, 98, 521, 2, 1447, 113, 309, 74, 113, 309, 96, 74, 759, 209,
	34, 113, 36, 96, 74, 759, 216, 34, 113, 36, 4016, 74, 113, 36, 96, 1775,
	2, 530, 74, 113, 36, 45, 2, 1104, 81, 113, 36, 48, 2, 1104, 81, 113,
	36, 870, 2, 1499, 790, 81, 113, 36, 946, 2, 1499, 790, 81, 113, 36, 96,
	134, 45, 2, 790, 81, 113, 36, 96, 141, 45, 2, 790, 81, 113, 36, 1095,
	134, 45, 2, 790, 81, 113, 36, 544, 658, 1095, 141, 45, 2, 790, 81, 113,
	36, 62, 96, 81, 113, 36, 81, 2, 1304, 113, 36, 74, 2, 1304, 253, 373,
	36, 74, 2, 1304, 113, 36, 74, 2, 1304, 214, 373, 36, 96, 74, 2, 1304,
	253, 373, 36, 96, 74, 2, 1304, 113, 36, 96, 74, 2, 1304, 214, 373, 36,
	1168, 2, 6146, 113, 36, 96, 1168, 2, 10333, 113, 36, 2591, 2, 814, 113, 36,
	96, 2591, 2, 814, 113, 36, 189, 2, 1241, 113, 36, 55, 544, 658, 79, 6974,
	293, 81, 114, 1129, 7, 81, 114, 2426, 189, 684, 189, 685, 48, 121, 2, 925,
	1750, 1784, 45, 121, 2, 925, 1750, 1784, 246, 8, 77, 786, 747, 707, 3844, 684,
	685, 3844, 707, 86, 146, 8, 135, 89, 19, 891, 186, 187, 1202, 19, 1022, 186,
	126, 621, 34, 126, 621, 246, 81, 458, 8, 1125, 77, 34, 8, 77, 943, 95,
	1330, 216, 134, 45, 536, 8, 77, 141, 48, 536, 8, 77, 48, 2410, 1848, 45,
	2410, 1848, 426, 2410, 1848, 252, 111, 558, 252, 130, 558, 48, 34, 45, 55, 1271,
	48, 34, 45, 558, 48, 2365, 187, 45, 558, 187, 48, 558, 111, 558, 8, 125,
	53, 948, 2189, 974, 135, 3918, 81, 1775, 2, 2491, 458, 81, 1775, 2, 2491, 458,
	8, 138, 1110, 81, 1775, 2, 2491, 458, 8, 113, 1110, 81, 58, 8, 138, 1110,
	81, 58, 8, 113, 1110, 19, 48, 81, 58, 161, 19, 45, 81, 58, 161, 19,
	48, 293, 161, 19, 45, 293, 161, 19, 48, 55, 293, 161, 19, 45, 55, 293,
	161, 19, 48, 81, 687, 586, 161, 19, 45, 81, 687, 586, 161, 19, 48, 1571,
	471, 19, 45, 1571, 471, 216, 1044, 36, 209, 1044, 36, 721, 3350, 125, 36, 847,
	3350, 125, 36, 45, 36, 8, 62, 120, 187, 138, 36, 187, 113, 36, 187, 48,
	45, 36, 187, 138, 55, 36, 187, 113, 55, 36, 187, 48, 45, 55, 36, 187,
	138, 36, 546, 146, 187, 113, 36, 546, 146, 187, 138, 55, 36, 546, 146, 187,
	113, 55, 36, 546, 146, 187, 113, 1986, 36, 88, 87, 3114, 88, 87, 63, 2,
	291, 88, 87, 63, 2, 192, 88, 87, 63, 2, 1279, 88, 87, 63, 2, 273,
	88, 87, 63, 2, 1280, 88, 87, 63, 2, 1522, 88, 87, 63, 2, 1717, 88,
	87, 63, 2, 349, 88, 87, 63, 2, 1281, 88, 87, 63, 2, 1523, 88, 87,
	63, 2, 1718, 88, 87, 63, 2, 2073, 88, 87, 63, 2, 1721, 88, 87, 63,
	2, 1727, 88, 87, 63, 2, 2653, 88, 87, 63, 2, 387, 88, 87, 63, 2,
	1365, 88, 87, 63, 2, 1732, 88, 87, 63, 2, 1719, 88, 87, 63, 2, 2078,
	88, 87, 63, 2, 2050, 88, 87, 63, 2, 1728, 88, 87, 63, 2, 2656, 88,
	87, 63, 2, 1736, 88, 87, 63, 2, 1723, 88, 87, 63, 2, 1731, 88, 87,
	63, 2, 2659, 88, 87, 63, 2, 2074, 88, 87, 63, 2, 2667, 88, 87, 63,
	2, 2753, 88, 87, 63, 2, 2654, 88, 87, 63, 2, 466, 88, 87, 63, 2,
	1366, 88, 87, 63, 2, 1734, 88, 87, 63, 2, 1720, 88, 87, 63, 2, 1735,
	88, 87, 63, 2, 1722, 88, 87, 63, 2, 1729, 88, 87, 63, 2, 2658, 88,
	87, 63, 2, 2085, 88, 87, 63, 2, 1724, 88, 87, 63, 2, 2069, 88, 87,
	63, 2, 2661, 88, 87, 63, 2, 2075, 88, 87, 63, 2, 2669, 88, 87, 63,
	2, 2755, 88, 87, 63, 2, 2655, 88, 87, 63, 2, 2093, 88, 87, 63, 2,
	1725, 88, 87, 63, 2, 1733, 88, 87, 63, 2, 2662, 88, 87, 63, 2, 2079,
	88, 87, 63, 2, 2670, 88, 87, 63, 2, 2756, 88, 87, 63, 2, 2657, 88,
	87, 63, 2, 2083, 88, 87, 63, 2, 2677, 88, 87, 63, 2, 2763, 88, 87,
	63, 2, 2660, 88, 87, 63, 2, 2783, 88, 87, 63, 2, 2668, 88, 87, 63,
	2, 2754, 88, 87, 63, 2, 4332, 88, 87, 63, 2, 568, 88, 87, 63, 2,
	1521, 88, 87, 63, 2, 2072, 88, 87, 63, 2, 2047, 88, 87, 63, 2, 2080,
	88, 87, 63, 2, 2051, 88, 87, 63, 2, 2068, 88, 87, 63, 2, 4354, 88,
	87, 63, 2, 2086, 88, 87, 63, 2, 2054, 88, 87, 63, 2, 2070, 88, 87,
	63, 2, 4366, 88, 87, 63, 2, 2076, 88, 87, 63, 2, 4388, 88, 87, 63,
	2, 4424, 88, 87, 63, 2, 4342, 88, 87, 63, 2, 2813, 88, 87, 63, 2,
	2056, 88, 87, 63, 2, 2771, 88, 87, 63, 2, 4372, 88, 87, 63, 2, 2784,
	88, 87, 63, 2, 4394, 88, 87, 63, 2, 4430, 88, 87, 63, 2, 4348, 88,
	87, 63, 2, 2084, 88, 87, 63, 2, 4403, 88, 87, 63, 2, 4440, 88, 87,
	63, 2, 4360, 88, 87, 63, 2, 4537, 88, 87, 63, 2, 4382, 88, 87, 63,
	2, 4418, 88, 87, 63, 2, 4336, 88, 87, 63, 2, 2820, 88, 87, 63, 2,
	2058, 88, 87, 63, 2, 2775, 88, 87, 63, 2, 4375, 88, 87, 63, 2, 2786,
	88, 87, 63, 2, 4396, 88, 87, 63, 2, 4433, 88, 87, 63, 2, 4351, 88,
	87, 63, 2, 2798, 88, 87, 63, 2, 4406, 88, 87, 63, 2, 4443, 88, 87,
	63, 2, 4363, 88, 87, 63, 2, 4540, 88, 87, 63, 2, 4385, 88, 87, 63,
	2, 4421, 88, 87, 63, 2, 4339, 88, 87, 63, 2, 2811, 88, 87, 63, 2,
	4410, 88, 87, 63, 2, 4447, 88, 87, 63, 2, 4369, 88, 87, 63, 2, 4551,
	88, 87, 63, 2, 4391, 88, 87, 63, 2, 4427, 88, 87, 63, 2, 4345, 88,
	87, 63, 2, 4646, 88, 87, 63, 2, 4400, 88, 87, 63, 2, 4437, 88, 87,
	63, 2, 4357, 88, 87, 63, 2, 4534, 88, 87, 63, 2, 4379, 88, 87, 63,
	2, 4415, 88, 87, 63, 2, 4333, 88, 87, 63, 2, 772, 88, 87, 63, 2,
	1367, 88, 87, 63, 2, 2778, 88, 87, 63, 2, 2048, 88, 87, 63, 2, 2081,
	88, 87, 63, 2, 2052, 88, 87, 63, 2, 1730, 88, 87, 63, 2, 4356, 88,
	87, 63, 2, 2087, 88, 87, 63, 2, 2055, 88, 87, 63, 2, 2071, 88, 87,
	63, 2, 4368, 88, 87, 63, 2, 2077, 88, 87, 63, 2, 4390, 88, 87, 63,
	2, 4426, 88, 87, 63, 2, 4344, 88, 87, 63, 2, 2815, 88, 87, 63, 2,
	2057, 88, 87, 63, 2, 2772, 88, 87, 63, 2, 4374, 88, 87, 63, 2, 2785,
	88, 87, 63, 2, 2671, 88, 87, 63, 2, 4432, 88, 87, 63, 2, 4350, 88,
	87, 63, 2, 2797, 88, 87, 63, 2, 4405, 88, 87, 63, 2, 4442, 88, 87,
	63, 2, 4362, 88, 87, 63, 2, 4539, 88, 87, 63, 2, 4384, 88, 87, 63,
	2, 4420, 88, 87, 63, 2, 4338, 88, 87, 63, 2, 2822, 88, 87, 63, 2,
	2059, 88, 87, 63, 2, 2776, 88, 87, 63, 2, 4377, 88, 87, 63, 2, 2787,
	88, 87, 63, 2, 4398, 88, 87, 63, 2, 4435, 88, 87, 63, 2, 4353, 88,
	87, 63, 2, 2799, 88, 87, 63, 2, 4408, 88, 87, 63, 2, 4445, 88, 87,
	63, 2, 4365, 88, 87, 63, 2, 4542, 88, 87, 63, 2, 4387, 88, 87, 63,
	2, 4423, 88, 87, 63, 2, 4341, 88, 87, 63, 2, 2812, 88, 87, 63, 2,
	4412, 88, 87, 63, 2, 4449, 88, 87, 63, 2, 4371, 88, 87, 63, 2, 4553,
	88, 87, 63, 2, 4393, 88, 87, 63, 2, 4429, 88, 87, 63, 2, 4347, 88,
	87, 63, 2, 4648, 88, 87, 63, 2, 4402, 88, 87, 63, 2, 4439, 88, 87,
	63, 2, 4359, 88, 87, 63, 2, 4536, 88, 87, 63, 2, 4381, 88, 87, 63,
	2, 4417, 88, 87, 63, 2, 4335, 88, 87, 63, 2, 2825, 88, 87, 63, 2,
	2060, 88, 87, 63, 2, 2777, 88, 87, 63, 2, 4378, 88, 87, 63, 2, 2788,
	88, 87, 63, 2, 4399, 88, 87, 63, 2, 4436, 88, 87, 63, 2, 4355, 88,
	87, 63, 2, 2801, 88, 87, 63, 2, 4409, 88, 87, 63, 2, 4446, 88, 87,
	63, 2, 4367, 88, 87, 63, 2, 4543, 88, 87, 63, 2, 4389, 88, 87, 63,
	2, 4425, 88, 87, 63, 2, 4343, 88, 87, 63, 2, 2814, 88, 87, 63, 2,
	4413, 88, 87, 63, 2, 4450, 88, 87, 63, 2, 4373, 88, 87, 63, 2, 4554,
	88, 87, 63, 2, 4395, 88, 87, 63, 2, 4431, 88, 87, 63, 2, 4349, 88,
	87, 63, 2, 4649, 88, 87, 63, 2, 4404, 88, 87, 63, 2, 4441, 88, 87,
	63, 2, 4361, 88, 87, 63, 2, 4538, 88, 87, 63, 2, 4383, 88, 87, 63,
	2, 4419, 88, 87, 63, 2, 4337, 88, 87, 63, 2, 2821, 88, 87, 63, 2,
	4414, 88, 87, 63, 2, 4457, 88, 87, 63, 2, 4376, 88, 87, 63, 2, 4563,
	88, 87, 63, 2, 4397, 88, 87, 63, 2, 4434, 88, 87, 63, 2, 4352, 88,
	87, 63, 2, 4658, 88, 87, 63, 2, 4407, 88, 87, 63, 2, 4444, 88, 87,
	63, 2, 4364, 88, 87, 63, 2, 4541, 88, 87, 63, 2, 4386, 88, 87, 63,
	2, 4422, 88, 87, 63, 2, 4340, 88, 87, 63, 2, 4763, 88, 87, 63, 2,
	4411, 88, 87, 63, 2, 4448, 88, 87, 63, 2, 4370, 88, 87, 63, 2, 4552,
	88, 87, 63, 2, 4392, 88, 87, 63, 2, 4428, 88, 87, 63, 2, 4346, 88,
	87, 63, 2, 4647, 88, 87, 63, 2, 4401, 88, 87, 63, 2, 4438, 88, 87,
	63, 2, 4358, 88, 87, 63, 2, 4535, 88, 87, 63, 2, 4380, 88, 87, 63,
	2, 4416, 88, 87, 63, 2, 4334, 113, 70, 2, 155, 36, 8, 86, 89, 113,
	70, 2, 155, 36, 8, 55, 86, 89, 138, 55, 36, 8, 86, 89, 113, 55,
	36, 8, 86, 89, 48, 45, 55, 36, 8, 86, 89, 113, 70, 2, 155, 36,
	546, 146, 138, 55, 36, 546, 146, 113, 55, 36, 546, 146, 209, 36, 8, 135,
	89, 216, 36, 8, 135, 89, 216, 392, 36, 209, 392, 36, 138, 55, 501, 36,
	113, 55, 501, 36, 138, 392, 501, 36, 113, 392, 501, 36, 113, 70, 2, 155,
	392, 501, 36, 113, 36, 8, 478, 749, 216, 36, 83, 146, 209, 36, 83, 146,
	113, 36, 8, 323, 8, 86, 89, 113, 36, 8, 323, 8, 55, 86, 89, 113,
	70, 2, 155, 36, 8, 323, 113, 70, 2, 155, 36, 8, 323, 8, 86, 89,
	113, 70, 2, 155, 36, 8, 323, 8, 55, 86, 89, 138, 36, 2, 323, 113,
	36, 2, 323, 138, 55, 36, 2, 323, 113, 55, 36, 2, 323, 138, 36, 83,
	74, 458, 113, 36, 83, 74, 458, 138, 36, 546, 146, 83, 74, 458, 113, 36,
	546, 146, 83, 74, 458, 214, 153, 34, 253, 373, 36, 214, 373, 34, 253, 153,
	36, 214, 153, 36, 8, 99, 214, 373, 36, 8, 99, 253, 373, 36, 8, 99,
	253, 153, 36, 8, 99, 214, 153, 36, 34, 214, 373, 36, 214, 373, 36, 34,
	253, 373, 36, 253, 373, 36, 34, 253, 153, 36, 253, 153, 36, 34, 214, 153,
	36, 891, 186, 578, 1022, 186, 1022, 186, 578, 891, 186, 253, 373, 36, 578, 214,
	373, 36, 214, 373, 36, 578, 253, 373, 36, 1022, 186, 578, 214, 373, 36, 891,
	186, 578, 253, 373, 36, 214, 373, 36, 578, 214, 153, 36, 214, 153, 36, 578,
	214, 373, 36, 575, 36, 142, 3244, 45, 36, 142, 113, 1170, 1553, 216, 36, 142,
	113, 1170, 1553, 209, 36, 142, 209, 1170, 1553, 138, 36, 142, 209, 1170, 1553, 113,
	45, 2, 533, 754, 847, 36, 48, 2, 533, 754, 721, 36, 442, 754, 721, 36,
	521, 754, 721, 36, 442, 754, 847, 36, 8, 661, 442, 754, 721, 36, 8, 120,
	134, 45, 2479, 847, 36, 134, 48, 2479, 721, 36, 721, 468, 125, 36, 847, 468,
	125, 36, 113, 36, 53, 295, 138, 36, 138, 36, 53, 295, 113, 36, 295, 113,
	36, 53, 138, 36, 113, 36, 8, 120, 76, 138, 36, 8, 120, 76, 113, 36,
	896, 268, 48, 45, 36, 896, 7, 125, 216, 70, 2, 155, 36, 546, 7, 125,
	48, 212, 111, 45, 212, 130, 370, 48, 212, 130, 45, 212, 111, 370, 111, 212,
	45, 130, 212, 48, 370, 111, 212, 48, 130, 212, 45, 370, 48, 212, 111, 45,
	212, 111, 370, 111, 212, 45, 130, 212, 45, 370, 48, 212, 130, 45, 212, 130,
	370, 111, 212, 48, 130, 212, 48, 370, 138, 370, 8, 212, 111, 83, 146, 113,
	370, 8, 212, 111, 83, 146, 216, 370, 8, 212, 45, 83, 146, 209, 370, 8,
	212, 45, 83, 146, 138, 370, 8, 212, 130, 83, 146, 113, 370, 8, 212, 130,
	83, 146, 216, 370, 8, 212, 48, 83, 146, 209, 370, 8, 212, 48, 83, 146,
	138, 370, 8, 212, 111, 546, 146, 113, 370, 8, 212, 111, 546, 146, 216, 370,
	8, 212, 45, 546, 146, 209, 370, 8, 212, 45, 546, 146, 138, 370, 8, 212,
	130, 546, 146, 113, 370, 8, 212, 130, 546, 146, 216, 370, 8, 212, 48, 546,
	146, 209, 370, 8, 212, 48, 546, 146, 138, 370, 8, 212, 111, 53, 138, 370,
	8, 212, 130, 216, 370, 8, 212, 48, 1016, 216, 370, 8, 212, 45, 113, 370,
	8, 212, 111, 53, 113, 370, 8, 212, 130, 209, 370, 8, 212, 48, 1016, 209,
	370, 8, 212, 45, 138, 370, 8, 212, 111, 53, 113, 370, 8, 212, 111, 138,
	370, 8, 212, 130, 53, 113, 370, 8, 212, 130, 113, 370, 8, 212, 111, 53,
	138, 370, 8, 212, 111, 113, 370, 8, 212, 130, 53, 138, 370, 8, 212, 130,
	138, 370, 8, 212, 111, 53, 187, 501, 138, 370, 8, 212, 130, 76, 187, 501,
	113, 370, 8, 212, 111, 53, 187, 501, 113, 370, 8, 212, 130, 76, 187, 501,
	216, 370, 8, 212, 48, 1016, 209, 370, 8, 212, 45, 209, 370, 8, 212, 48,
	1016, 216, 370, 8, 212, 45, 45, 55, 36, 8, 893, 618, 545, 6, 53, 113,
	36, 211, 461, 53, 113, 36, 138, 36, 53, 211, 461, 113, 36, 53, 211, 461,
	113, 36, 53, 843, 198, 83, 384, 2, 178, 53, 138, 36, 138, 36, 896, 384,
	2, 178, 376, 2, 178, 53, 113, 36, 684, 53, 113, 36, 138, 36, 896, 684,
	685, 53, 138, 36, 48, 1081, 323, 45, 1081, 323, 111, 1081, 323, 130, 1081, 323,
	392, 86, 146, 1784, 250, 304, 10501, 250, 304, 816, 577, 48, 81, 544, 161, 45,
	81, 544, 161, 48, 81, 471, 45, 81, 471, 250, 304, 48, 1146, 161, 250, 304,
	45, 1146, 161, 250, 304, 48, 3108, 161, 250, 304, 45, 3108, 161, 48, 58, 161,
	8, 698, 45, 58, 161, 8, 698, 48, 58, 161, 8, 1110, 372, 442, 536, 45,
	58, 161, 8, 1110, 372, 521, 536, 48, 58, 161, 8, 1110, 372, 521, 536, 45,
	58, 161, 8, 1110, 372, 442, 536, 48, 293, 161, 8, 77, 45, 293, 161, 8,
	77, 48, 754, 384, 2, 178, 161, 45, 754, 376, 2, 178, 161, 55, 48, 754,
	376, 2, 178, 161, 55, 45, 754, 384, 2, 178, 161, 48, 74, 687, 586, 161,
	45, 74, 687, 586, 161, 478, 1568, 86, 1011, 245, 990, 293, 1330, 48, 45, 293,
	587, 8, 58, 990, 45, 293, 8, 77, 293, 8, 121, 786, 230, 293, 2506, 293,
	1330, 48, 2506, 293, 1330, 111, 191, 293, 261, 293, 293, 8, 698, 261, 293, 8,
	698, 834, 293, 1330, 111, 834, 293, 1330, 130, 990, 293, 8, 189, 722, 1207, 372,
	36, 142, 111, 34, 45, 990, 293, 8, 189, 722, 1207, 372, 36, 142, 111, 34,
	48, 990, 293, 8, 189, 722, 1207, 372, 36, 142, 130, 34, 45, 990, 293, 8,
	189, 722, 1207, 372, 36, 142, 130, 34, 48, 990, 293, 8, 189, 722, 1207, 372,
	36, 142, 45, 34, 111, 990, 293, 8, 189, 722, 1207, 372, 36, 142, 48, 34,
	111, 990, 293, 8, 189, 722, 1207, 372, 36, 142, 45, 34, 130, 990, 293, 8,
	189, 722, 1207, 372, 36, 142, 48, 34, 130, 261, 877, 1164, 877, 1164, 8, 956,
	877, 1164, 8, 7, 125, 53, 877, 1164, 8, 45, 36, 53, 877, 1164, 8, 48,
	36, 53, 125, 8, 135, 146, 62, 86, 146, 62, 1097, 62, 747, 707, 62, 2426,
	125, 2189, 974, 135, 146, 34, 442, 133, 2189, 974, 86, 146, 125, 8, 10618, 268,
	62, 721, 2, 368, 1202, 6, 111, 36, 896, 125, 62, 81, 904, 62, 904, 62,
	384, 2, 178, 62, 376, 2, 178, 125, 8, 7, 125, 83, 487, 45, 125, 8,
	70, 135, 2522, 83, 487, 45, 126, 891, 186, 860, 126, 1022, 186, 860, 126, 467,
	126, 7, 125, 126, 58, 70, 1601, 1985, 114, 8, 77, 53, 114, 8, 698, 121,
	372, 114, 114, 8, 1965, 653, 521, 45, 114, 53, 48, 114, 48, 114, 1016, 86,
	146, 86, 146, 1016, 45, 114, 1760, 8, 48, 133, 74, 1760, 8, 45, 133, 74,
	74, 1760, 32, 8, 48, 133, 74, 32, 8, 45, 133, 74, 81, 1837, 74, 1837,
	48, 1514, 1568, 45, 1514, 1568, 48, 55, 1514, 1568, 45, 55, 1514, 1568, 7959, 1430,
	1498, 172, 1430, 1430, 3696, 8, 86, 146, 55, 2, 7154, 2365, 58, 8, 6686, 9563,
	7960, 755, 10386, 961, 545, 6, 34, 650, 1097, 545, 6, 34, 650, 1097, 8, 211,
	53, 1841, 83, 34, 650, 1097, 7575, 10555, 10792, 130, 2, 142, 114, 8, 48, 133,
	74, 130, 2, 142, 114, 8, 45, 133, 74, 74, 458, 8, 130, 36, 74, 948,
	81, 125, 8, 130, 36, 74, 125, 8, 130, 36, 1410, 2, 845, 81, 58, 1410,
	2, 845, 74, 58, 1410, 2, 845, 81, 458, 1410, 2, 845, 74, 458, 1410, 2,
	845, 81, 125, 1410, 2, 845, 74, 125, 3918, 2, 6915, 747, 707, 461, 707, 8,
	956, 747, 707, 8, 135, 89, 872, 707, 872, 747, 707, 55, 120, 392, 120, 48,
	2, 142, 759, 293, 161, 45, 2, 142, 759, 293, 161, 1692, 8864, 151, 2, 820,
	62, 77, 461, 151, 2, 820, 62, 120, 461, 151, 2, 820, 62, 32, 461, 151,
	2, 820, 771, 461, 8, 77, 151, 2, 820, 771, 461, 8, 120, 151, 2, 820,
	58, 803, 461, 151, 2, 820, 58, 771, 461, 70, 621, 34, 461, 70, 621, 246,
	461, 151, 2, 820, 32, 461, 8881, 70, 1492, 1684, 8, 689, 1044, 689, 461, 7318,
	2419, 689, 689, 8, 55, 89, 689, 5907, 8, 860, 6523, 2233, 721, 1844, 245, 1844,
	8, 3886, 1649, 1746, 1655, 245, 1844, 8, 2479, 1649, 1746, 1655, 245, 1844, 362, 7957,
	487, 1655, 689, 1746, 24, 665, 461, 9924, 689, 461, 689, 8, 138, 36, 8, 99,
	689, 8, 32, 6, 689, 8, 803, 689, 8, 771, 689, 8, 956, 689, 8, 698,
	1848, 252, 48, 114, 461, 250, 304, 2472, 2153, 250, 304, 2472, 9740, 250, 304, 2472,
	9822, 120, 6, 8, 7, 125, 53, 120, 6, 8, 294, 344, 53, 120, 6, 8,
	211, 53, 120, 6, 8, 77, 76, 120, 6, 8, 211, 76, 120, 6, 8, 519,
	70, 120, 6, 8, 74, 114, 661, 6, 8, 383, 53, 661, 6, 8, 77, 76,
	661, 6, 8, 1022, 63, 661, 6, 8, 891, 63, 120, 6, 372, 48, 133, 125,
	120, 6, 372, 45, 133, 125, 11212, 246, 425, 961, 953, 6, 8, 77, 53, 953,
	6, 8, 698, 1676, 961, 8, 521, 468, 3995, 961, 953, 6, 372, 48, 133, 125,
	953, 6, 372, 45, 133, 125, 62, 953, 6, 8, 294, 344, 953, 6, 372, 55,
	125, 62, 1202, 6, 120, 6, 372, 114, 661, 6, 372, 114, 953, 6, 372, 114,
	3449, 961, 10073, 3449, 961, 250, 304, 10041, 2153, 5783, 246, 3185, 803, 8, 77, 771,
	8, 661, 6, 771, 8, 956, 803, 8, 956, 803, 8, 621, 34, 771, 8, 621,
	246, 771, 53, 803, 803, 53, 771, 771, 53, 146, 53, 803, 803, 53, 146, 53,
	771, 771, 1016, 34, 1601, 8, 771, 803, 1016, 34, 1601, 8, 803, 468, 771, 8,
	1965, 468, 803, 8, 1965, 55, 58, 803, 55, 58, 771, 468, 771, 8, 1965, 34,
	3995, 961, 621, 34, 8, 77, 53, 621, 246, 8, 77, 53, 55, 621, 34, 55,
	621, 246, 70, 3452, 621, 34, 70, 3452, 621, 246, 3991, 252, 246, 3991, 252, 34,
	621, 246, 1644, 621, 34, 621, 34, 8, 94, 749, 621, 246, 8, 94, 749, 621,
	34, 8, 135, 501, 621, 246, 8, 135, 501, 621, 34, 8, 55, 956, 621, 34,
	8, 698, 621, 34, 8, 55, 698, 7, 1272, 8, 698, 621, 246, 8, 55, 956,
	621, 246, 8, 55, 698, 250, 304, 7018, 3047, 250, 304, 1664, 3047, 545, 6, 8,
	77, 76, 1841, 8, 77, 53, 392, 135, 146, 8, 55, 86, 89, 392, 135, 146,
	8, 392, 86, 89, 211, 461, 8, 77, 53, 211, 461, 8, 891, 63, 1105, 661,
	1105, 6676, 8, 77, 53, 545, 8, 467, 843, 198, 83, 8, 294, 344, 1372, 198,
	246, 198, 83, 545, 6, 53, 120, 6, 120, 6, 53, 545, 6, 545, 6, 53,
	211, 461, 55, 577, 198, 70, 3182, 545, 3978, 79, 3182, 545, 3978, 545, 6, 8,
	70, 63, 53, 34, 70, 63, 76, 878, 8, 93, 63, 53, 384, 2, 178, 8,
	125, 786, 376, 2, 178, 8, 125, 786, 384, 2, 178, 8, 629, 56, 53, 376,
	2, 178, 8, 629, 56, 53, 384, 2, 178, 246, 650, 198, 83, 376, 2, 178,
	246, 650, 198, 83, 384, 2, 178, 246, 650, 198, 83, 8, 77, 786, 376, 2,
	178, 246, 650, 198, 83, 8, 77, 786, 384, 2, 178, 246, 650, 198, 83, 8,
	77, 53, 376, 2, 178, 246, 650, 198, 83, 8, 77, 53, 384, 2, 178, 246,
	650, 198, 83, 8, 77, 53, 45, 376, 2, 178, 246, 650, 198, 83, 8, 77,
	53, 48, 384, 2, 178, 246, 1744, 376, 2, 178, 246, 1744, 384, 2, 178, 34,
	271, 2, 245, 362, 198, 83, 376, 2, 178, 34, 271, 2, 245, 362, 198, 83,
	384, 2, 178, 34, 362, 1744, 376, 2, 178, 34, 362, 1744, 384, 2, 178, 53,
	55, 2, 245, 198, 53, 376, 2, 178, 376, 2, 178, 53, 55, 2, 245, 198,
	53, 384, 2, 178, 384, 2, 178, 53, 1105, 246, 198, 376, 2, 178, 53, 1105,
	246, 198, 384, 2, 178, 53, 1105, 53, 376, 2, 178, 376, 2, 178, 53, 1105,
	53, 384, 2, 178, 384, 2, 178, 53, 376, 2, 178, 53, 55, 2, 245, 198,
	376, 2, 178, 53, 384, 2, 178, 53, 55, 2, 245, 198, 384, 2, 178, 53,
	650, 198, 53, 376, 2, 178, 53, 650, 198, 376, 2, 178, 53, 650, 198, 53,
	384, 2, 178, 53, 650, 198, 650, 198, 83, 246, 384, 2, 178, 650, 198, 83,
	246, 376, 2, 178, 650, 198, 83, 246, 384, 2, 178, 8, 77, 786, 650, 198,
	83, 246, 376, 2, 178, 8, 77, 786, 55, 2, 245, 198, 83, 246, 384, 2,
	178, 55, 2, 245, 198, 83, 246, 376, 2, 178, 55, 2, 245, 650, 198, 83,
	246, 384, 2, 178, 55, 2, 245, 650, 198, 83, 246, 376, 2, 178, 1105, 246,
	384, 2, 178, 1105, 246, 376, 2, 178, 1105, 53, 384, 2, 178, 53, 545, 6,
	1105, 53, 376, 2, 178, 53, 545, 6, 55, 1630, 384, 2, 178, 55, 1630, 376,
	2, 178, 55, 1630, 384, 2, 178, 8, 698, 376, 2, 178, 1644, 384, 2, 178,
	376, 2, 178, 1016, 384, 2, 178, 384, 2, 178, 468, 974, 522, 376, 2, 178,
	468, 974, 522, 384, 2, 178, 468, 974, 522, 53, 650, 198, 376, 2, 178, 468,
	974, 522, 53, 650, 198, 3994, 178, 3534, 178, 3994, 178, 246, 198, 83, 3534, 178,
	246, 198, 83, 545, 6, 8, 6298, 53, 960, 53, 271, 2, 245, 545, 6, 965,
	53, 271, 2, 245, 545, 6, 960, 53, 271, 2, 245, 362, 198, 83, 965, 53,
	271, 2, 245, 362, 198, 83, 960, 53, 545, 6, 965, 53, 545, 6, 960, 53,
	362, 198, 83, 965, 53, 362, 198, 83, 960, 53, 843, 198, 83, 965, 53, 843,
	198, 83, 960, 53, 362, 843, 198, 83, 965, 53, 362, 843, 198, 83, 55, 960,
	55, 965, 684, 8, 77, 685, 8, 77, 684, 8, 120, 6, 76, 685, 8, 120,
	6, 76, 684, 8, 953, 6, 76, 685, 8, 953, 6, 76, 684, 95, 246, 198,
	83, 8, 77, 53, 685, 95, 246, 198, 83, 8, 77, 53, 684, 95, 53, 545,
	6, 685, 95, 53, 545, 6, 684, 95, 53, 211, 461, 685, 95, 53, 211, 461,
	684, 95, 53, 843, 198, 83, 685, 95, 53, 843, 198, 83, 684, 95, 53, 362,
	198, 83, 685, 95, 53, 362, 198, 83, 58, 48, 189, 124, 461, 58, 45, 189,
	124, 461, 468, 684, 468, 685, 468, 684, 246, 198, 83, 468, 685, 246, 198, 83,
	684, 53, 685, 685, 53, 684, 684, 53, 684, 685, 53, 685, 685, 1016, 684, 685,
	1016, 34, 1601, 974, 501, 8, 684, 943, 95, 1330, 209, 3830, 8, 1497, 442, 10880,
	803, 7355, 9265, 295, 48, 558, 295, 130, 558, 295, 111, 558, 2426, 8, 121, 86,
	146, 392, 45, 1271, 55, 86, 146, 48, 1271, 86, 146, 55, 48, 1271, 55, 86,
	146, 55, 48, 1271, 187, 501, 546, 48, 1891, 95, 55, 86, 295, 130, 558, 8,
	956, 295, 111, 558, 8, 698, 295, 111, 558, 53, 295, 130, 558, 55, 130, 558,
	55, 111, 558, 55, 89, 362, 6, 261, 55, 89, 362, 6, 978, 362, 2188, 8,
	261, 9085, 860, 86, 245, 8, 125, 53, 86, 245, 8, 125, 76, 130, 558, 8,
	125, 76, 1097, 8, 135, 89, 1097, 8, 211, 461, 392, 86, 146, 3106, 1954, 392,
	86, 146, 8, 135, 89, 392, 577, 461, 392, 1630, 384, 2, 178, 392, 1630, 376,
	2, 178, 55, 2, 245, 650, 384, 2, 178, 246, 198, 83, 55, 2, 245, 650,
	376, 2, 178, 246, 198, 83, 392, 707, 3106, 1954, 252, 392, 86, 146, 461, 55,
	707, 461, 81, 86, 146, 151, 2, 820, 81, 86, 146, 214, 373, 81, 36, 214,
	153, 81, 36, 253, 373, 81, 36, 253, 153, 81, 36, 48, 45, 81, 36, 138,
	74, 36, 216, 74, 36, 209, 74, 36, 214, 373, 74, 36, 214, 153, 74, 36,
	253, 373, 74, 36, 253, 153, 74, 36, 48, 45, 74, 36, 111, 130, 74, 36,
	113, 36, 8, 751, 209, 113, 36, 8, 751, 216, 138, 36, 8, 751, 209, 138,
	36, 8, 751, 216, 58, 8, 442, 133, 74, 58, 8, 521, 133, 74, 58, 8,
	141, 45, 186, 133, 74, 58, 8, 134, 48, 186, 133, 74, 458, 8, 48, 133,
	74, 458, 8, 45, 133, 74, 458, 8, 442, 133, 74, 458, 8, 521, 133, 74,
	478, 58, 74, 252, 58, 81, 252, 58, 74, 599, 7, 58, 81, 599, 7, 58,
	74, 1651, 81, 1651, 81, 2261, 74, 2261, 135, 74, 2261, 74, 252, 125, 74, 210,
	458, 81, 210, 458, 74, 210, 948, 81, 210, 948, 74, 7, 458, 74, 7, 948,
	81, 7, 948, 74, 135, 1805, 81, 135, 1805, 74, 86, 1805, 81, 86, 1805, 48,
	36, 8, 7, 125, 79, 138, 819, 48, 36, 8, 62, 120, 187, 138, 1986, 36,
	138, 70, 2, 155, 36, 8, 86, 89, 138, 70, 2, 155, 36, 8, 55, 86,
	89, 138, 70, 2, 155, 36, 546, 146, 138, 70, 2, 155, 392, 501, 36, 138,
	36, 8, 478, 749, 138, 36, 8, 323, 8, 86, 89, 138, 36, 8, 323, 8,
	55, 86, 89, 138, 70, 2, 155, 36, 8, 323, 138, 70, 2, 155, 36, 8,
	323, 8, 86, 89, 138, 70, 2, 155, 36, 8, 323, 8, 55, 86, 89, 138,
	36, 896, 268, 575, 36, 142, 3244, 48, 545, 6, 53, 138, 36, 747, 211, 461,
	53, 138, 36, 138, 36, 53, 747, 843, 198, 83, 113, 36, 896, 376, 2, 178,
	113, 36, 896, 685, 138, 1044, 36, 113, 1044, 36, 747, 211, 461, 53, 113, 36,
	113, 36, 53, 747, 843, 198, 83, 211, 461, 53, 138, 36, 138, 36, 53, 843,
	198, 83, 138, 36, 53, 747, 211, 461, 113, 36, 53, 747, 211, 461, 209, 114,
	2, 155, 1011, 36, 295, 650, 214, 36, 295, 2110, 253, 36, 81, 210, 391, 74,
	7, 391, 81, 7, 391, 74, 45, 2, 142, 1651, 81, 45, 2, 142, 1651, 96,
	252, 125, 96, 955, 8, 955, 786, 96, 125, 8, 125, 786, 96, 125, 96, 62,
	1049, 650, 214, 36, 8, 1426, 618, 2110, 253, 36, 8, 1426, 323, 650, 214, 36,
	8, 135, 323, 2110, 253, 36, 8, 135, 323, 602, 36, 142, 209, 1170, 214, 373,
	295, 602, 36, 142, 209, 1170, 214, 373, 138, 114, 2, 155, 36, 216, 114, 2,
	155, 36, 113, 114, 2, 155, 36, 209, 114, 2, 155, 36, 48, 45, 114, 2,
	155, 36, 111, 130, 114, 2, 155, 36, 214, 153, 114, 2, 155, 36, 214, 373,
	114, 2, 155, 36, 253, 373, 114, 2, 155, 36, 253, 153, 114, 2, 155, 36,
	138, 114, 2, 155, 941, 36, 216, 114, 2, 155, 941, 36, 113, 114, 2, 155,
	941, 36, 209, 114, 2, 155, 941, 36, 847, 114, 2, 155, 189, 125, 36, 721,
	114, 2, 155, 189, 125, 36, 138, 114, 2, 155, 36, 83, 146, 216, 114, 2,
	155, 36, 83, 146, 113, 114, 2, 155, 36, 83, 146, 209, 114, 2, 155, 36,
	83, 146, 214, 153, 114, 2, 155, 36, 83, 146, 214, 373, 114, 2, 155, 36,
	83, 146, 253, 373, 114, 2, 155, 36, 83, 146, 253, 153, 114, 2, 155, 36,
	83, 146, 138, 114, 2, 155, 36, 8, 55, 135, 89, 216, 114, 2, 155, 36,
	8, 55, 135, 89, 113, 114, 2, 155, 36, 8, 55, 135, 89, 209, 114, 2,
	155, 36, 8, 55, 135, 89, 135, 1108, 1149, 86, 1108, 1149, 138, 114, 2, 155,
	36, 172, 113, 114, 2, 155, 36, 216, 114, 2, 155, 36, 138, 95, 209, 114,
	2, 155, 36, 113, 114, 2, 155, 36, 172, 138, 114, 2, 155, 36, 209, 114,
	2, 155, 36, 138, 95, 216, 114, 2, 155, 36, 138, 114, 2, 155, 1243, 819,
	216, 114, 2, 155, 1243, 819, 113, 114, 2, 155, 1243, 819, 209, 114, 2, 155,
	1243, 819, 138, 74, 62, 81, 36, 216, 74, 62, 81, 36, 113, 74, 62, 81,
	36, 209, 74, 62, 81, 36, 721, 114, 2, 155, 45, 60, 2, 925, 36, 721,
	114, 2, 155, 521, 60, 2, 925, 36, 721, 114, 2, 155, 48, 60, 2, 925,
	36, 721, 114, 2, 155, 442, 60, 2, 925, 36, 1667, 48, 1667, 45, 2380, 48,
	2380, 45, 93, 536, 819, 3173, 721, 113, 74, 36, 16, 54, 816, 24, 7140, 79,
	2, 98, 442, 2, 1447, 138, 702, 309, 79, 2, 98, 45, 2, 1447, 216, 702,
	309, 79, 2, 98, 442, 2, 1447, 113, 702, 309, 79, 2, 98, 48, 2, 1447,
	209, 702, 309, 74, 138, 702, 309, 74, 216, 702, 309, 74, 113, 702, 309, 74,
	209, 702, 309, 209, 114, 2, 155, 36, 8, 187, 751, 138, 209, 114, 2, 155,
	36, 8, 187, 751, 113, 216, 114, 2, 155, 36, 8, 187, 751, 138, 216, 114,
	2, 155, 36, 8, 187, 751, 113, 138, 114, 2, 155, 36, 8, 187, 751, 216,
	113, 114, 2, 155, 36, 8, 187, 751, 216, 138, 114, 2, 155, 36, 8, 187,
	751, 209, 113, 114, 2, 155, 36, 8, 187, 751, 209, 74, 759, 209, 34, 138,
	36, 74, 759, 209, 34, 113, 36, 74, 759, 216, 34, 138, 36, 74, 759, 216,
	34, 113, 36, 74, 759, 138, 34, 216, 36, 74, 759, 113, 34, 216, 36, 74,
	759, 138, 34, 209, 36, 74, 759, 113, 34, 209, 36, 1046, 36, 130, 48, 1046,
	36, 130, 45, 1046, 36, 111, 48, 1046, 36, 111, 45, 1046, 36, 48, 111, 1046,
	36, 45, 111, 1046, 36, 48, 130, 1046, 36, 45, 130, 216, 81, 36, 546, 146,
	8, 135, 146, 111, 309, 372, 24, 1159, 124, 1644, 81, 1985, 1644, 81, 34, 74,
	1985, 1644, 74, 1985, 936, 124, 8, 148, 268, 62, 268, 62, 37, 268, 74, 58,
	1125, 74, 458, 1125, 191, 74, 1651, 135, 74, 3760, 74, 3760, 74, 210, 111, 2,
	142, 114, 1125, 74, 210, 130, 2, 142, 114, 1125, 74, 210, 48, 2, 142, 114,
	1125, 74, 210, 45, 2, 142, 114, 1125, 3698, 25, 70, 442, 133, 74, 125, 521,
	133, 74, 125, 148, 93, 530, 74, 1778, 368, 148, 93, 530, 74, 1778, 81, 93,
	530, 1778, 368, 81, 93, 530, 1778, 58, 1471, 570, 11070, 6, 3383, 56, 1653, 25,
	70, 1653, 25, 79, 1653, 25, 93, 1653, 25, 100, 10879, 9828, 5878, 7893, 9713, 9091,
	81, 624, 10296, 74, 458, 347, 425, 2568, 148, 624, 5858, 6728, 7656, 11617, 8271, 5829,
	5720, 11267, 9786, 48, 133, 74, 391, 45, 133, 74, 391, 391, 8, 48, 133, 74,
	391, 8, 45, 133, 74, 138, 70, 2, 155, 36, 8, 114, 1747, 216, 70, 2,
	155, 36, 8, 114, 1747, 113, 70, 2, 155, 36, 8, 114, 1747, 209, 70, 2,
	155, 36, 8, 114, 1747, 3304, 25, 67, 3304, 25, 70, 10292, 1477, 1118, 16, 11238,
	1477, 1118, 16, 9273, 1477, 1118, 16, 9933, 1477, 1118, 16, 6233, 1477, 1118, 16, 10301,
	1477, 1118, 16, 10884, 545, 6, 8, 1430, 76, 11078, 16, 10305, 16, 1560, 16, 9649,
	16, 261, 45, 293, 7708, 9659, 16, 166, 10, 5, 2109, 166, 10, 5, 2130, 166,
	10, 5, 2583, 166, 10, 5, 2247, 166, 10, 5, 2193, 166, 10, 5, 2608, 166,
	10, 5, 2617, 166, 10, 5, 1799, 166, 10, 5, 2615, 166, 10, 5, 1432, 166,
	10, 5, 105, 1432, 166, 10, 5, 73, 166, 10, 5, 2191, 166, 10, 5, 2293,
	166, 10, 5, 2329, 166, 10, 5, 1624, 166, 10, 5, 2372, 166, 10, 5, 2406,
	166, 10, 5, 2434, 166, 10, 5, 2461, 166, 10, 5, 2498, 166, 10, 5, 2574,
	166, 10, 5, 2579, 166, 10, 5, 2231, 166, 10, 5, 2260, 166, 10, 5, 3778,
	166, 10, 5, 462, 166, 10, 5, 2489, 166, 10, 5, 1359, 166, 10, 5, 1546,
	166, 10, 5, 321, 166, 10, 5, 1064, 166, 10, 5, 2032, 166, 10, 5, 2606,
	166, 10, 5, 4013, 143, 166, 10, 5, 402, 166, 10, 5, 7, 601, 166, 10,
	5, 7, 601, 8, 323, 166, 10, 5, 416, 166, 10, 5, 1431, 7, 601, 166,
	10, 5, 872, 601, 166, 10, 5, 1431, 872, 601, 166, 10, 5, 1306, 166, 10,
	5, 1433, 166, 10, 5, 3968, 166, 10, 5, 4108, 24, 166, 10, 5, 3536, 1624,
	166, 10, 5, 3151, 1546, 166, 7, 5, 2109, 166, 7, 5, 2130, 166, 7, 5,
	2583, 166, 7, 5, 2247, 166, 7, 5, 2193, 166, 7, 5, 2608, 166, 7, 5,
	2617, 166, 7, 5, 1799, 166, 7, 5, 2615, 166, 7, 5, 1432, 166, 7, 5,
	105, 1432, 166, 7, 5, 73, 166, 7, 5, 2191, 166, 7, 5, 2293, 166, 7,
	5, 2329, 166, 7, 5, 1624, 166, 7, 5, 2372, 166, 7, 5, 2406, 166, 7,
	5, 2434, 166, 7, 5, 2461, 166, 7, 5, 2498, 166, 7, 5, 2574, 166, 7,
	5, 2579, 166, 7, 5, 2231, 166, 7, 5, 2260, 166, 7, 5, 3778, 166, 7,
	5, 462, 166, 7, 5, 2489, 166, 7, 5, 1359, 166, 7, 5, 1546, 166, 7,
	5, 321, 166, 7, 5, 1064, 166, 7, 5, 2032, 166, 7, 5, 2606, 166, 7,
	5, 4013, 143, 166, 7, 5, 402, 166, 7, 5, 7, 601, 166, 7, 5, 7,
	601, 8, 323, 166, 7, 5, 416, 166, 7, 5, 1431, 7, 601, 166, 7, 5,
	872, 601, 166, 7, 5, 1431, 872, 601, 166, 7, 5, 1306, 166, 7, 5, 1433,
	166, 7, 5, 3968, 166, 7, 5, 4108, 24, 166, 7, 5, 3536, 1624, 166, 7,
	5, 3151, 1546, 12, 10, 5, 136, 8, 55, 146, 12, 7, 5, 136, 8, 55,
	146, 12, 10, 5, 136, 8, 94, 211, 12, 10, 5, 249, 8, 89, 12, 10,
	5, 122, 8, 323, 12, 7, 5, 24, 8, 89, 12, 7, 5, 221, 8, 186,
	89, 12, 10, 5, 235, 8, 510, 12, 7, 5, 235, 8, 510, 12, 10, 5,
	227, 8, 510, 12, 7, 5, 227, 8, 510, 12, 10, 5, 250, 8, 510, 12,
	7, 5, 250, 8, 510, 12, 10, 5, 331, 12, 10, 5, 205, 8, 99, 12,
	10, 5, 191, 24, 12, 10, 5, 191, 331, 12, 7, 5, 229, 8, 45, 99,
	12, 10, 5, 290, 8, 99, 12, 7, 5, 290, 8, 99, 12, 7, 5, 229,
	8, 724, 12, 10, 5, 133, 235, 12, 7, 5, 133, 235, 12, 7, 5, 10724,
	694, 12, 7, 5, 51, 8, 3731, 12, 7, 5, 191, 122, 8, 323, 12, 7,
	5, 68, 8, 145, 190, 786, 12, 5, 7, 10, 191, 51, 12, 519, 7, 5,
	278, 75, 5, 10, 229, 12, 10, 5, 121, 8, 1494, 323, 12, 10, 5, 250,
	8, 1494, 323, 116, 10, 5, 3033, 116, 7, 5, 3033, 116, 10, 5, 4157, 116,
	7, 5, 4157, 116, 10, 5, 727, 116, 7, 5, 727, 116, 10, 5, 3207, 116,
	7, 5, 3207, 116, 10, 5, 1802, 116, 7, 5, 1802, 116, 10, 5, 4005, 116,
	7, 5, 4005, 116, 10, 5, 2039, 116, 7, 5, 2039, 116, 10, 5, 3400, 116,
	7, 5, 3400, 116, 10, 5, 4078, 116, 7, 5, 4078, 116, 10, 5, 3437, 116,
	7, 5, 3437, 116, 10, 5, 1852, 116, 7, 5, 1852, 116, 10, 5, 3537, 116,
	7, 5, 3537, 116, 10, 5, 540, 116, 7, 5, 540, 116, 10, 5, 493, 116,
	7, 5, 493, 116, 10, 5, 1865, 116, 7, 5, 1865, 116, 10, 5, 68, 116,
	7, 5, 68, 116, 10, 5, 427, 116, 7, 5, 427, 116, 10, 5, 585, 116,
	7, 5, 585, 116, 10, 5, 2493, 116, 7, 5, 2493, 116, 10, 5, 815, 116,
	7, 5, 815, 116, 10, 5, 1505, 116, 7, 5, 1505, 116, 10, 5, 1023, 116,
	7, 5, 1023, 116, 10, 5, 1855, 116, 7, 5, 1855, 116, 10, 5, 836, 116,
	7, 5, 836, 116, 10, 5, 1918, 116, 7, 5, 1918, 116, 10, 5, 1200, 2,
	249, 144, 116, 7, 5, 1200, 2, 249, 144, 116, 10, 5, 50, 116, 475, 116,
	7, 5, 50, 116, 475, 116, 10, 5, 1131, 1802, 116, 7, 5, 1131, 1802, 116,
	10, 5, 1200, 2, 249, 1852, 116, 7, 5, 1200, 2, 249, 1852, 116, 10, 5,
	1200, 2, 249, 493, 116, 7, 5, 1200, 2, 249, 493, 116, 10, 5, 1131, 493,
	116, 7, 5, 1131, 493, 116, 10, 5, 50, 116, 1918, 116, 7, 5, 50, 116,
	1918, 116, 10, 5, 1478, 116, 7, 5, 1478, 116, 10, 5, 723, 1252, 116, 7,
	5, 723, 1252, 116, 10, 5, 50, 116, 1252, 116, 7, 5, 50, 116, 1252, 116,
	10, 5, 50, 116, 785, 116, 7, 5, 50, 116, 785, 116, 10, 5, 3028, 1439,
	116, 7, 5, 3028, 1439, 116, 10, 5, 1200, 2, 249, 1427, 116, 7, 5, 1200,
	2, 249, 1427, 116, 10, 5, 50, 116, 1427, 116, 7, 5, 50, 116, 1427, 116,
	10, 5, 50, 116, 143, 116, 7, 5, 50, 116, 143, 116, 10, 5, 136, 2,
	925, 143, 116, 7, 5, 136, 2, 925, 143, 116, 10, 5, 50, 116, 3403, 116,
	7, 5, 50, 116, 3403, 116, 10, 5, 50, 116, 1314, 116, 7, 5, 50, 116,
	1314, 116, 10, 5, 50, 116, 1415, 116, 7, 5, 50, 116, 1415, 116, 10, 5,
	50, 116, 3250, 116, 7, 5, 50, 116, 3250, 116, 10, 5, 50, 116, 1339, 116,
	7, 5, 50, 116, 1339, 116, 10, 5, 50, 993, 1339, 116, 7, 5, 50, 993,
	1339, 116, 10, 5, 50, 993, 1905, 116, 7, 5, 50, 993, 1905, 116, 10, 5,
	50, 993, 920, 116, 7, 5, 50, 993, 920, 116, 10, 5, 50, 993, 2588, 116,
	7, 5, 50, 993, 2588, 116, 16, 1436, 116, 16, 540, 585, 116, 16, 427, 585,
	116, 16, 10561, 116, 16, 815, 585, 116, 16, 1855, 585, 116, 16, 1339, 2493, 116,
	10, 5, 1131, 1252, 116, 7, 5, 1131, 1252, 116, 10, 5, 1131, 1415, 116, 7,
	5, 1131, 1415, 116, 43, 493, 53, 116, 43, 4014, 5870, 116, 43, 4014, 3546, 116,
	10, 5, 3123, 1439, 116, 7, 5, 3123, 1439, 116, 50, 993, 426, 322, 116, 50,
	993, 2187, 629, 56, 116, 50, 993, 7964, 629, 56, 116, 50, 993, 2584, 1397, 116,
	234, 67, 133, 116, 426, 322, 116, 8896, 1397, 127, 7, 5, 524, 127, 7, 5,
	1752, 127, 7, 5, 1309, 127, 7, 5, 1794, 127, 7, 5, 405, 127, 7, 5,
	2020, 127, 7, 5, 1716, 127, 7, 5, 1995, 127, 7, 5, 372, 127, 7, 5,
	1437, 127, 7, 5, 1874, 127, 7, 5, 733, 127, 7, 5, 1626, 127, 7, 5,
	347, 127, 7, 5, 1924, 127, 7, 5, 2040, 127, 7, 5, 1474, 127, 7, 5,
	1479, 127, 7, 5, 1352, 127, 7, 5, 1173, 127, 7, 5, 1931, 127, 7, 5,
	1854, 127, 7, 5, 1824, 127, 7, 5, 1660, 127, 7, 5, 573, 127, 7, 5,
	1769, 127, 7, 5, 905, 127, 7, 5, 1599, 127, 7, 5, 1773, 127, 7, 5,
	1543, 127, 7, 5, 2029, 127, 7, 5, 1847, 127, 7, 5, 1831, 127, 7, 5,
	446, 127, 7, 5, 1588, 127, 7, 5, 614, 127, 7, 5, 1423, 127, 7, 5,
	1836, 127, 7, 5, 1519, 127, 7, 5, 1368, 395, 5, 179, 395, 5, 11466, 395,
	5, 11467, 395, 5, 11476, 395, 5, 11477, 395, 5, 3101, 3013, 2604, 395, 5, 2604,
	395, 5, 11469, 395, 5, 11472, 395, 5, 11470, 395, 5, 11471, 395, 5, 11512, 395,
	5, 11474, 395, 5, 2605, 395, 5, 1269, 2605, 395, 5, 11481, 395, 5, 2031, 395,
	5, 3101, 3013, 2031, 395, 5, 1269, 2031, 395, 5, 11479, 395, 5, 1516, 395, 5,
	4195, 395, 5, 1269, 4195, 395, 5, 4199, 395, 5, 1269, 4199, 395, 5, 14, 395,
	5, 2607, 395, 5, 5747, 2607, 395, 5, 1269, 2607, 395, 5, 11482, 395, 5, 4196,
	395, 5, 4197, 395, 5, 1269, 11478, 395, 5, 1269, 1008, 395, 5, 4198, 395, 5,
	402, 395, 5, 4200, 395, 5, 11486, 395, 5, 2603, 395, 5, 1269, 2603, 395, 5,
	5914, 2603, 395, 5, 11487, 395, 5, 11489, 395, 5, 11488, 395, 5, 1178, 395, 5,
	11490, 395, 5, 11468, 395, 5, 11491, 395, 5, 11493, 395, 5, 11494, 395, 5, 4202,
	395, 5, 4203, 395, 5, 10750, 4203, 395, 5, 11498, 395, 5, 753, 395, 5, 416,
	395, 75, 5, 8348, 56, 395, 681, 56, 395, 267, 1219, 47, 9, 8453, 47, 9,
	8874, 47, 9, 10089, 47, 9, 10458, 47, 9, 10362, 47, 9, 6253, 47, 9, 10852,
	47, 9, 6646, 47, 9, 9261, 47, 9, 9387, 47, 9, 552, 1639, 47, 9, 11664,
	47, 9, 7011, 47, 9, 6887, 47, 9, 8055, 47, 9, 10803, 47, 9, 6489, 47,
	9, 9712, 47, 9, 9766, 47, 9, 7526, 47, 9, 7530, 47, 9, 7529, 47, 9,
	7528, 47, 9, 518, 47, 9, 2512, 47, 9, 2510, 47, 9, 10514, 47, 9, 10522,
	47, 9, 4020, 47, 9, 2511, 47, 9, 6397, 47, 9, 6416, 47, 9, 6414, 47,
	9, 6398, 47, 9, 6400, 47, 9, 6399, 47, 9, 6415, 47, 9, 2042, 47, 9,
	4244, 47, 9, 4241, 47, 9, 11688, 47, 9, 11692, 47, 9, 4240, 47, 9, 4243,
	47, 9, 6401, 47, 9, 6413, 47, 9, 6411, 47, 9, 6402, 47, 9, 6403, 47,
	9, 2139, 47, 9, 6412, 47, 9, 9948, 47, 9, 9958, 47, 9, 9952, 47, 9,
	9949, 47, 9, 9951, 47, 9, 9950, 47, 9, 9953, 47, 9, 2314, 47, 9, 8325,
	47, 9, 8322, 47, 9, 8319, 47, 9, 1871, 47, 9, 8321, 47, 9, 8324, 47,
	9, 4193, 47, 9, 11452, 47, 9, 11444, 47, 9, 11442, 47, 9, 11443, 47, 9,
	4194, 47, 9, 11445, 47, 9, 7636, 47, 9, 7644, 47, 9, 7642, 47, 9, 7637,
	47, 9, 7640, 47, 9, 7639, 47, 9, 7643, 43, 57, 5, 871, 43, 57, 5,
	842, 43, 57, 5, 801, 43, 57, 5, 710, 43, 57, 5, 868, 43, 57, 5,
	739, 43, 57, 5, 106, 43, 57, 5, 712, 43, 57, 5, 714, 43, 57, 5,
	405, 43, 57, 5, 68, 43, 57, 5, 462, 43, 57, 5, 879, 43, 57, 5,
	880, 43, 57, 5, 440, 43, 57, 5, 143, 43, 57, 5, 930, 43, 57, 5,
	700, 43, 57, 5, 321, 43, 57, 5, 2482, 43, 57, 5, 1306, 43, 57, 5,
	880, 2, 440, 43, 57, 5, 24, 43, 57, 5, 832, 43, 57, 5, 2190, 43,
	57, 5, 2359, 1506, 43, 57, 5, 1178, 43, 57, 5, 402, 43, 57, 5, 851,
	24, 43, 57, 5, 338, 601, 43, 57, 5, 872, 601, 43, 57, 5, 851, 872,
	601, 45, 293, 1491, 1228, 45, 293, 478, 1491, 1228, 48, 1491, 161, 45, 1491, 161,
	48, 478, 1491, 161, 45, 478, 1491, 161, 564, 3451, 1228, 564, 478, 3451, 1228, 478,
	2565, 1228, 48, 2565, 161, 45, 2565, 161, 564, 58, 48, 564, 3769, 161, 45, 564,
	3769, 161, 7122, 6699, 2416, 3332, 2416, 261, 3332, 2416, 7895, 478, 9509, 209, 3042, 216,
	3042, 478, 45, 2, 142, 293, 55, 834, 850, 359, 1594, 1466, 1121, 850, 8, 310,
	211, 8, 190, 53, 48, 145, 3796, 161, 45, 145, 3796, 161, 211, 8, 77, 53,
	211, 8, 77, 76, 48, 86, 146, 8, 1946, 45, 86, 146, 8, 1946, 442, 48,
	133, 161, 442, 45, 133, 161, 521, 48, 133, 161, 521, 45, 133, 161, 48, 791,
	60, 161, 45, 791, 60, 161, 48, 55, 471, 45, 55, 471, 70, 63, 172, 67,
	77, 225, 67, 77, 172, 70, 63, 225, 126, 93, 77, 225, 100, 77, 56, 261,
	629, 56, 86, 211, 190, 665, 720, 681, 94, 77, 191, 383, 564, 77, 564, 383,
	191, 1000, 1292, 8, 48, 3385, 1292, 8, 45, 3385, 191, 1292, 442, 133, 532, 6,
	70, 2, 714, 501, 79, 2, 714, 501, 10565, 426, 322, 86, 139, 63, 1514, 86,
	245, 6375, 55, 850, 261, 383, 55, 145, 2, 261, 2, 869, 610, 56, 501, 8,
	48, 2580, 55, 2529, 56, 359, 145, 1148, 359, 145, 1148, 8, 1148, 53, 145, 1148,
	145, 1148, 8, 77, 55, 10547, 383, 478, 707, 392, 1292, 2348, 383, 9638, 56, 9845,
	7142, 56, 6698, 2584, 1397, 425, 3800, 8, 45, 3189, 425, 3800, 8, 48, 3189, 4082,
	6, 10, 945, 2348, 672, 56, 2348, 629, 56, 48, 58, 161, 8, 89, 45, 58,
	161, 8, 89, 48, 58, 161, 8, 55, 89, 45, 58, 161, 8, 55, 89, 442,
	133, 48, 471, 442, 133, 45, 471, 521, 133, 48, 471, 521, 133, 45, 471, 834,
	850, 17, 65, 1161, 17, 65, 2146, 17, 65, 999, 67, 17, 65, 999, 70, 17,
	65, 999, 79, 17, 65, 734, 17, 65, 124, 17, 65, 2536, 17, 65, 1442, 67,
	17, 65, 1442, 70, 17, 65, 3248, 17, 65, 2474, 17, 65, 7, 67, 17, 65,
	7, 70, 17, 65, 1614, 67, 17, 65, 1614, 70, 17, 65, 1614, 79, 17, 65,
	1614, 93, 17, 65, 1983, 17, 65, 2548, 17, 65, 2499, 67, 17, 65, 2499, 70,
	17, 65, 581, 67, 17, 65, 581, 70, 17, 65, 78, 17, 65, 2455, 17, 65,
	6492, 17, 65, 862, 17, 65, 624, 17, 65, 3225, 17, 65, 3667, 17, 65, 6527,
	17, 65, 931, 67, 17, 65, 931, 70, 17, 65, 1027, 17, 65, 2421, 67, 17,
	65, 2421, 70, 17, 65, 596, 133, 1057, 4110, 17, 65, 1550, 17, 65, 1398, 17,
	65, 3458, 17, 65, 2122, 95, 2148, 17, 65, 1080, 17, 65, 1984, 67, 17, 65,
	1984, 70, 17, 65, 2111, 17, 65, 2492, 17, 65, 104, 2, 596, 2492, 17, 65,
	1458, 67, 17, 65, 1458, 70, 17, 65, 1458, 79, 17, 65, 1458, 93, 17, 65,
	3649, 17, 65, 2483, 17, 65, 1951, 17, 65, 3311, 17, 65, 50, 17, 65, 1384,
	67, 17, 65, 1384, 70, 17, 65, 1890, 17, 65, 3666, 17, 65, 1827, 67, 17,
	65, 1827, 70, 17, 65, 1827, 79, 17, 65, 1999, 17, 65, 2149, 17, 65, 153,
	67, 17, 65, 153, 70, 17, 65, 104, 2, 596, 1250, 17, 65, 596, 562, 17,
	65, 562, 17, 65, 104, 2, 596, 1343, 17, 65, 104, 2, 596, 586, 17, 65,
	1816, 17, 65, 104, 2, 596, 3150, 17, 65, 596, 1706, 17, 65, 1706, 67, 17,
	65, 1706, 70, 17, 65, 3175, 17, 65, 104, 2, 596, 1826, 17, 65, 187, 67,
	17, 65, 187, 70, 17, 65, 104, 2, 596, 187, 17, 65, 104, 2, 596, 3352,
	17, 65, 2363, 67, 17, 65, 2363, 70, 17, 65, 1335, 17, 65, 1192, 17, 65,
	104, 2, 596, 4055, 2321, 17, 65, 104, 2, 596, 730, 17, 65, 104, 2, 596,
	1062, 17, 65, 104, 2, 596, 2225, 17, 65, 1402, 67, 17, 65, 1402, 70, 17,
	65, 1402, 79, 17, 65, 104, 2, 596, 1402, 17, 65, 618, 17, 65, 104, 2,
	596, 1145, 17, 65, 1758, 17, 65, 2244, 17, 65, 104, 2, 596, 1081, 17, 65,
	104, 2, 596, 1757, 17, 65, 104, 2, 596, 1048, 17, 65, 596, 2593, 17, 65,
	596, 1710, 17, 65, 104, 2, 596, 2232, 17, 65, 278, 2, 596, 1411, 17, 65,
	104, 2, 596, 1411, 17, 65, 278, 2, 596, 2003, 17, 65, 104, 2, 596, 2003,
	17, 65, 278, 2, 596, 1204, 17, 65, 104, 2, 596, 1204, 17, 65, 1699, 17,
	65, 278, 2, 596, 1699, 17, 65, 104, 2, 596, 1699, 101, 65, 67, 101, 65,
	245, 101, 65, 77, 101, 65, 860, 101, 65, 999, 101, 65, 99, 101, 65, 70,
	101, 65, 3553, 101, 65, 733, 101, 65, 8393, 101, 65, 3299, 101, 65, 140, 101,
	65, 130, 124, 101, 65, 2161, 101, 65, 1215, 101, 65, 2536, 101, 65, 189, 124,
	101, 65, 1442, 101, 65, 1472, 101, 65, 11377, 101, 65, 2507, 101, 65, 45, 189,
	124, 101, 65, 7737, 2203, 101, 65, 280, 101, 65, 3248, 101, 65, 2474, 101, 65,
	2146, 101, 65, 9816, 101, 65, 5740, 101, 65, 432, 101, 65, 2203, 101, 65, 848,
	101, 65, 10276, 101, 65, 914, 101, 65, 914, 10450, 101, 65, 7184, 101, 65, 872,
	101, 65, 1276, 101, 65, 2142, 101, 65, 10098, 101, 65, 7956, 101, 65, 7, 101,
	65, 1614, 101, 65, 6701, 101, 65, 10506, 101, 65, 1230, 101, 65, 10085, 101, 65,
	2598, 101, 65, 9534, 101, 65, 4128, 101, 65, 2196, 101, 65, 295, 2548, 101, 65,
	478, 2146, 101, 65, 187, 10586, 101, 65, 70, 1143, 101, 65, 10366, 101, 65, 1381,
	101, 65, 2499, 101, 65, 6282, 101, 65, 2515, 101, 65, 581, 101, 65, 7666, 101,
	65, 3255, 101, 65, 78, 101, 65, 1121, 101, 65, 2455, 101, 65, 35, 101, 65,
	6981, 101, 65, 2107, 101, 65, 58, 101, 65, 362, 101, 65, 862, 101, 65, 3936,
	101, 65, 624, 101, 65, 1057, 101, 65, 8351, 101, 65, 322, 101, 65, 3225, 101,
	65, 11337, 101, 65, 725, 362, 101, 65, 6665, 101, 65, 3339, 101, 65, 757, 101,
	65, 4025, 101, 65, 931, 101, 65, 1027, 101, 65, 1128, 101, 65, 3316, 101, 65,
	55, 268, 101, 65, 133, 1057, 4110, 101, 65, 3990, 101, 65, 7285, 101, 65, 1550,
	101, 65, 1398, 101, 65, 9819, 101, 65, 3458, 101, 65, 3646, 101, 65, 152, 101,
	65, 4045, 101, 65, 8421, 101, 65, 11097, 101, 65, 3319, 101, 65, 2122, 95, 2148,
	101, 65, 10408, 101, 65, 478, 2541, 101, 65, 81, 101, 65, 10432, 101, 65, 711,
	101, 65, 1080, 101, 65, 4009, 101, 65, 36, 101, 65, 2518, 101, 65, 1984, 101,
	65, 4097, 101, 65, 7601, 101, 65, 6395, 101, 65, 10552, 101, 65, 2111, 101, 65,
	1476, 101, 65, 2492, 101, 65, 3459, 101, 65, 1458, 101, 65, 2483, 101, 65, 1811,
	101, 65, 50, 101, 65, 34, 101, 65, 9758, 101, 65, 1300, 101, 65, 1384, 101,
	65, 1890, 101, 65, 8863, 101, 65, 3943, 101, 65, 5855, 101, 65, 3666, 101, 65,
	840, 101, 65, 9545, 101, 65, 3121, 101, 65, 10572, 101, 65, 6657, 101, 65, 1827,
	101, 65, 1999, 101, 65, 7974, 101, 65, 3117, 101, 65, 1706, 2203, 101, 65, 2149,
	101, 65, 153, 101, 65, 1250, 101, 65, 562, 101, 65, 1343, 101, 65, 11196, 101,
	65, 6190, 101, 65, 1933, 101, 65, 3084, 101, 65, 586, 101, 65, 789, 101, 65,
	10138, 101, 65, 1816, 101, 65, 3122, 101, 65, 3150, 101, 65, 6245, 101, 65, 8895,
	101, 65, 1706, 101, 65, 3175, 101, 65, 2026, 101, 65, 6990, 101, 65, 11239, 101,
	65, 1826, 101, 65, 187, 101, 65, 3352, 101, 65, 2363, 101, 65, 10437, 101, 65,
	295, 814, 1757, 101, 65, 1335, 101, 65, 1192, 101, 65, 11381, 101, 65, 123, 101,
	65, 2321, 101, 65, 4055, 2321, 101, 65, 8391, 101, 65, 838, 101, 65, 730, 101,
	65, 1062, 101, 65, 2225, 101, 65, 1402, 101, 65, 618, 101, 65, 7363, 101, 65,
	1145, 101, 65, 1758, 101, 65, 1495, 101, 65, 1313, 101, 65, 7314, 101, 65, 10222,
	2026, 101, 65, 3152, 101, 65, 2244, 101, 65, 1081, 101, 65, 1757, 101, 65, 1048,
	101, 65, 2181, 101, 65, 2593, 101, 65, 7710, 101, 65, 1710, 101, 65, 8858, 101,
	65, 74, 101, 65, 7148, 101, 65, 2232, 101, 65, 10897, 101, 65, 1399, 101, 65,
	1952, 101, 65, 1040, 101, 65, 1411, 101, 65, 2003, 101, 65, 1204, 101, 65, 1699,
	101, 65, 3326, 188, 977, 22, 48, 83, 45, 188, 977, 22, 53, 83, 76, 188,
	977, 22, 48, 83, 94, 34, 45, 188, 977, 22, 53, 83, 94, 34, 76, 188,
	977, 22, 426, 1347, 188, 977, 22, 1347, 546, 53, 188, 977, 22, 1347, 546, 76,
	188, 977, 22, 1347, 546, 48, 188, 977, 22, 1347, 546, 141, 48, 188, 977, 22,
	1347, 546, 141, 45, 188, 977, 22, 1347, 546, 134, 48, 188, 977, 22, 2411, 188,
	737, 188, 383, 188, 426, 322, 6993, 56, 1217, 7965, 4023, 16, 188, 1147, 56, 188,
	1548, 56, 188, 41, 254, 48, 293, 161, 45, 293, 161, 48, 55, 293, 161, 45,
	55, 293, 161, 48, 536, 161, 45, 536, 161, 48, 81, 536, 161, 45, 81, 536,
	161, 48, 74, 1221, 161, 45, 74, 1221, 161, 1937, 56, 7500, 56, 48, 687, 586,
	161, 45, 687, 586, 161, 48, 81, 1221, 161, 45, 81, 1221, 161, 48, 81, 687,
	586, 161, 45, 81, 687, 586, 161, 48, 81, 58, 161, 45, 81, 58, 161, 575,
	501, 261, 55, 997, 610, 56, 55, 997, 610, 56, 145, 55, 997, 610, 56, 1937,
	56, 123, 983, 307, 67, 983, 307, 70, 983, 307, 79, 983, 307, 93, 983, 307,
	100, 983, 307, 139, 983, 307, 157, 983, 307, 140, 983, 307, 160, 188, 1320, 110,
	56, 188, 891, 110, 56, 188, 2184, 110, 56, 188, 7161, 110, 56, 40, 271, 77,
	110, 56, 40, 55, 77, 110, 56, 1060, 501, 86, 1604, 1161, 56, 86, 1604, 1161,
	8, 966, 838, 56, 86, 1604, 1161, 56, 141, 133, 86, 1604, 1161, 8, 966, 838,
	56, 141, 133, 86, 1604, 1161, 56, 134, 133, 62, 1937, 56, 188, 348, 245, 2217,
	681, 16, 983, 307, 280, 983, 307, 357, 983, 307, 451, 86, 188, 1147, 56, 8737,
	56, 2419, 5780, 56, 188, 85, 570, 188, 133, 797, 737, 222, 5, 7, 24, 222,
	5, 24, 222, 5, 7, 73, 222, 5, 73, 222, 5, 7, 60, 222, 5, 60,
	222, 5, 7, 51, 222, 5, 51, 222, 5, 7, 68, 222, 5, 68, 222, 5,
	106, 222, 5, 224, 222, 5, 571, 222, 5, 703, 222, 5, 620, 222, 5, 828,
	222, 5, 647, 222, 5, 1085, 222, 5, 606, 222, 5, 914, 222, 5, 195, 222,
	5, 443, 222, 5, 632, 222, 5, 1065, 222, 5, 611, 222, 5, 1013, 222, 5,
	666, 222, 5, 739, 222, 5, 574, 222, 5, 1012, 222, 5, 196, 222, 5, 217,
	222, 5, 686, 222, 5, 783, 222, 5, 7, 613, 222, 5, 613, 222, 5, 784,
	222, 5, 440, 222, 5, 710, 222, 5, 83, 222, 5, 725, 222, 5, 185, 222,
	5, 493, 222, 5, 555, 222, 5, 492, 222, 5, 433, 222, 5, 143, 222, 5,
	251, 222, 5, 119, 222, 5, 479, 222, 5, 780, 222, 5, 427, 222, 5, 831,
	222, 5, 670, 222, 5, 962, 222, 5, 446, 222, 5, 871, 222, 5, 462, 222,
	5, 553, 222, 5, 973, 222, 5, 808, 222, 5, 182, 222, 5, 540, 222, 5,
	460, 222, 5, 539, 222, 5, 607, 222, 5, 7, 179, 222, 5, 179, 222, 5,
	7, 402, 222, 5, 402, 222, 5, 7, 416, 222, 5, 416, 222, 5, 173, 222,
	5, 716, 222, 5, 630, 222, 5, 736, 222, 5, 585, 222, 5, 7, 286, 222,
	5, 286, 222, 5, 668, 222, 5, 614, 222, 5, 588, 222, 5, 151, 222, 5,
	1361, 222, 5, 7, 106, 222, 5, 7, 647, 43, 91, 2, 222, 966, 838, 56,
	43, 91, 2, 222, 2477, 2, 966, 838, 56, 91, 2, 222, 966, 838, 56, 91,
	2, 222, 2477, 2, 966, 838, 56, 222, 1147, 56, 222, 966, 1147, 56, 222, 590,
	11527, 91, 2, 222, 55, 850, 91, 5, 7, 24, 91, 5, 24, 91, 5, 7,
	73, 91, 5, 73, 91, 5, 7, 60, 91, 5, 60, 91, 5, 7, 51, 91,
	5, 51, 91, 5, 7, 68, 91, 5, 68, 91, 5, 106, 91, 5, 224, 91,
	5, 571, 91, 5, 703, 91, 5, 620, 91, 5, 828, 91, 5, 647, 91, 5,
	1085, 91, 5, 606, 91, 5, 914, 91, 5, 195, 91, 5, 443, 91, 5, 632,
	91, 5, 1065, 91, 5, 611, 91, 5, 1013, 91, 5, 666, 91, 5, 739, 91,
	5, 574, 91, 5, 1012, 91, 5, 196, 91, 5, 217, 91, 5, 686, 91, 5,
	783, 91, 5, 7, 613, 91, 5, 613, 91, 5, 784, 91, 5, 440, 91, 5,
	710, 91, 5, 83, 91, 5, 725, 91, 5, 185, 91, 5, 493, 91, 5, 555,
	91, 5, 492, 91, 5, 433, 91, 5, 143, 91, 5, 251, 91, 5, 119, 91,
	5, 479, 91, 5, 780, 91, 5, 427, 91, 5, 831, 91, 5, 670, 91, 5,
	962, 91, 5, 446, 91, 5, 871, 91, 5, 462, 91, 5, 553, 91, 5, 973,
	91, 5, 808, 91, 5, 182, 91, 5, 540, 91, 5, 460, 91, 5, 539, 91,
	5, 607, 91, 5, 7, 179, 91, 5, 179, 91, 5, 7, 402, 91, 5, 402,
	91, 5, 7, 416, 91, 5, 416, 91, 5, 173, 91, 5, 716, 91, 5, 630,
	91, 5, 736, 91, 5, 585, 91, 5, 7, 286, 91, 5, 286, 91, 5, 668,
	91, 5, 614, 91, 5, 588, 91, 5, 151, 91, 5, 1361, 91, 5, 7, 106,
	91, 5, 7, 647, 91, 5, 413, 91, 5, 1175, 91, 5, 842, 91, 5, 1113,
	91, 94, 77, 91, 2, 222, 3848, 838, 56, 91, 1147, 56, 91, 966, 1147, 56,
	91, 590, 3509, 314, 5, 71, 314, 5, 249, 314, 5, 205, 314, 5, 176, 314,
	5, 98, 314, 5, 221, 314, 5, 151, 314, 5, 136, 314, 5, 220, 314, 5,
	227, 314, 5, 235, 314, 5, 278, 314, 5, 389, 314, 5, 268, 314, 5, 11620,
	314, 5, 3162, 314, 5, 1337, 314, 5, 122, 314, 5, 250, 314, 5, 104, 314,
	5, 121, 314, 5, 24, 314, 5, 68, 314, 5, 51, 314, 5, 1078, 314, 5,
	292, 314, 5, 1133, 314, 5, 313, 314, 5, 1240, 314, 5, 524, 314, 5, 405,
	314, 5, 935, 314, 5, 980, 314, 5, 879, 314, 5, 73, 314, 5, 60, 314,
	5, 1597, 314, 5, 229, 314, 5, 767, 314, 5, 7579, 314, 5, 2272, 314, 5,
	68, 8, 77, 53, 314, 5, 1635, 40, 5, 469, 40, 5, 1345, 40, 5, 469,
	2, 306, 40, 5, 528, 40, 5, 528, 2, 645, 40, 5, 528, 2, 537, 40,
	5, 495, 40, 5, 1489, 40, 5, 308, 40, 5, 308, 2, 469, 40, 5, 308,
	2, 503, 40, 5, 308, 2, 334, 40, 5, 308, 2, 306, 40, 5, 308, 2,
	770, 40, 5, 308, 2, 735, 40, 5, 308, 2, 537, 40, 5, 503, 40, 5,
	334, 40, 5, 1488, 40, 5, 334, 2, 306, 40, 5, 306, 40, 5, 1053, 40,
	5, 677, 40, 5, 645, 40, 5, 1681, 40, 5, 781, 40, 5, 853, 40, 5,
	770, 40, 5, 735, 40, 5, 537, 40, 5, 24, 40, 5, 543, 40, 5, 179,
	40, 5, 1177, 40, 5, 909, 40, 5, 51, 40, 5, 1009, 40, 5, 753, 40,
	5, 68, 40, 5, 286, 40, 5, 2587, 40, 5, 485, 40, 5, 416, 40, 5,
	60, 40, 5, 2592, 40, 5, 614, 40, 5, 668, 40, 5, 402, 40, 5, 761,
	40, 5, 14, 40, 5, 73, 40, 1026, 40, 5, 1988, 40, 5, 528, 2, 495,
	40, 5, 528, 2, 306, 40, 5, 528, 2, 889, 40, 5, 308, 2, 469, 2,
	306, 40, 5, 308, 2, 495, 40, 5, 308, 2, 334, 2, 306, 40, 5, 308,
	2, 889, 40, 5, 308, 2, 1518, 40, 5, 503, 2, 334, 40, 5, 503, 2,
	306, 40, 5, 503, 2, 889, 40, 5, 2294, 40, 5, 334, 2, 469, 40, 5,
	334, 2, 495, 40, 5, 334, 2, 306, 2, 469, 40, 5, 334, 2, 306, 2,
	495, 40, 5, 334, 2, 645, 40, 5, 334, 2, 770, 40, 5, 1317, 40, 5,
	3479, 40, 5, 306, 2, 469, 40, 5, 306, 2, 528, 40, 5, 306, 2, 495,
	40, 5, 306, 2, 334, 40, 5, 306, 2, 645, 40, 5, 889, 40, 5, 2508,
	40, 5, 1115, 40, 5, 1115, 2, 306, 40, 5, 1115, 2, 889, 40, 5, 2295,
	40, 5, 4019, 40, 5, 1518, 40, 5, 416, 2, 179, 40, 5, 416, 2, 1177,
	40, 5, 416, 2, 73, 40, 5, 402, 2, 1009, 40, 5, 402, 2, 753, 40,
	5, 402, 2, 73, 40, 5, 1187, 40, 5, 5839, 188, 776, 8438, 56, 188, 776,
	747, 56, 188, 776, 67, 56, 188, 776, 70, 56, 188, 776, 79, 56, 188, 776,
	93, 56, 188, 776, 442, 56, 188, 776, 94, 56, 188, 776, 521, 56, 188, 776,
	1139, 56, 188, 776, 999, 56, 188, 776, 928, 56, 188, 776, 1308, 56, 188, 776,
	1833, 56, 188, 776, 848, 56, 188, 776, 733, 56, 314, 5, 670, 314, 5, 1065,
	314, 5, 1218, 314, 5, 828, 314, 5, 496, 314, 5, 2204, 314, 5, 454, 314,
	5, 3771, 314, 5, 1595, 314, 5, 5813, 314, 5, 7971, 314, 5, 4145, 314, 5,
	881, 314, 5, 9111, 314, 5, 5756, 314, 5, 5897, 314, 5, 1067, 314, 5, 954,
	314, 5, 3770, 314, 5, 7972, 314, 69, 5, 249, 314, 69, 5, 221, 314, 69,
	5, 227, 314, 69, 5, 235, 314, 5, 7531, 314, 5, 2325, 314, 5, 4239, 314,
	69, 5, 220, 314, 5, 7632, 314, 5, 2311, 314, 5, 485, 314, 5, 970, 17,
	89, 221, 17, 89, 11347, 17, 89, 11414, 17, 89, 6318, 17, 89, 4042, 17, 89,
	7901, 17, 89, 7897, 17, 89, 1838, 17, 89, 7900, 17, 89, 10667, 17, 89, 7898,
	17, 89, 7902, 17, 89, 7847, 17, 89, 7899, 17, 89, 7903, 17, 89, 151, 17,
	89, 235, 17, 89, 121, 17, 89, 249, 17, 89, 10477, 17, 89, 98, 17, 89,
	3435, 17, 89, 3407, 17, 89, 10658, 17, 89, 10639, 17, 89, 2513, 17, 89, 10322,
	17, 89, 9665, 17, 89, 9873, 17, 89, 10851, 17, 89, 10668, 17, 89, 10632, 17,
	89, 7892, 17, 89, 7904, 17, 89, 9702, 17, 89, 389, 91, 5, 7, 620, 91,
	5, 7, 632, 91, 5, 7, 611, 91, 5, 7, 83, 91, 5, 7, 555, 91,
	5, 7, 143, 91, 5, 7, 479, 91, 5, 7, 831, 91, 5, 7, 446, 91,
	5, 7, 553, 91, 5, 7, 460, 91, 5, 7, 173, 91, 5, 7, 716, 91,
	5, 7, 630, 91, 5, 7, 736, 91, 5, 7, 585, 162, 40, 469, 162, 40,
	528, 162, 40, 495, 162, 40, 308, 162, 40, 503, 162, 40, 334, 162, 40, 306,
	162, 40, 677, 162, 40, 645, 162, 40, 781, 162, 40, 853, 162, 40, 770, 162,
	40, 735, 162, 40, 537, 162, 40, 469, 24, 162, 40, 528, 24, 162, 40, 495,
	24, 162, 40, 308, 24, 162, 40, 503, 24, 162, 40, 334, 24, 162, 40, 306,
	24, 162, 40, 677, 24, 162, 40, 645, 24, 162, 40, 781, 24, 162, 40, 853,
	24, 162, 40, 770, 24, 162, 40, 735, 24, 162, 40, 537, 24, 162, 40, 645,
	60, 162, 1610, 22, 9530, 162, 1610, 22, 68, 831, 162, 18, 67, 162, 18, 70,
	162, 18, 79, 162, 18, 93, 162, 18, 100, 162, 18, 139, 162, 18, 157, 162,
	18, 140, 162, 18, 160, 162, 18, 280, 162, 18, 624, 162, 18, 1027, 162, 18,
	931, 162, 18, 2597, 162, 18, 3651, 162, 18, 848, 162, 18, 862, 162, 18, 2517,
	162, 18, 3401, 162, 18, 3998, 162, 18, 1233, 162, 18, 4010, 162, 18, 3321, 162,
	18, 3180, 162, 18, 3525, 162, 18, 10051, 162, 18, 2136, 162, 18, 4030, 162, 18,
	4040, 162, 18, 3300, 162, 18, 3895, 162, 18, 3038, 162, 18, 7306, 162, 18, 811,
	162, 18, 3943, 162, 18, 3882, 62, 18, 629, 62, 18, 8208, 62, 18, 2473, 62,
	18, 3509, 62, 41, 280, 347, 74, 58, 62, 41, 357, 347, 74, 58, 62, 41,
	451, 347, 74, 58, 62, 41, 605, 347, 74, 58, 62, 41, 551, 347, 74, 58,
	62, 41, 748, 347, 74, 58, 62, 41, 566, 347, 74, 58, 62, 41, 876, 347,
	74, 58, 3797, 6, 62, 41, 357, 67, 62, 41, 357, 70, 62, 41, 357, 79,
	62, 41, 357, 93, 62, 41, 357, 100, 62, 41, 357, 139, 62, 41, 357, 157,
	62, 41, 357, 140, 62, 41, 357, 160, 62, 41, 451, 62, 41, 451, 67, 62,
	41, 451, 70, 62, 41, 451, 79, 62, 41, 451, 93, 62, 41, 451, 100, 62,
	40, 469, 62, 40, 528, 62, 40, 495, 62, 40, 308, 62, 40, 503, 62, 40,
	334, 62, 40, 306, 62, 40, 677, 62, 40, 645, 62, 40, 781, 62, 40, 853,
	62, 40, 770, 62, 40, 735, 62, 40, 537, 62, 40, 469, 24, 62, 40, 528,
	24, 62, 40, 495, 24, 62, 40, 308, 24, 62, 40, 503, 24, 62, 40, 334,
	24, 62, 40, 306, 24, 62, 40, 677, 24, 62, 40, 645, 24, 62, 40, 781,
	24, 62, 40, 853, 24, 62, 40, 770, 24, 62, 40, 735, 24, 62, 40, 537,
	24, 62, 1610, 22, 6445, 62, 1610, 22, 8066, 62, 40, 677, 60, 1610, 4023, 16,
	62, 18, 67, 62, 18, 70, 62, 18, 79, 62, 18, 93, 62, 18, 100, 62,
	18, 139, 62, 18, 157, 62, 18, 140, 62, 18, 160, 62, 18, 280, 62, 18,
	624, 62, 18, 1027, 62, 18, 931, 62, 18, 2597, 62, 18, 3651, 62, 18, 848,
	62, 18, 862, 62, 18, 2517, 62, 18, 3401, 62, 18, 3998, 62, 18, 1233, 62,
	18, 4010, 62, 18, 3321, 62, 18, 3180, 62, 18, 3525, 62, 18, 10290, 62, 18,
	1093, 62, 18, 1413, 62, 18, 10607, 62, 18, 7187, 62, 18, 3846, 62, 18, 5892,
	62, 18, 7996, 62, 18, 811, 62, 18, 6694, 62, 18, 6702, 62, 18, 156, 62,
	18, 360, 62, 18, 145, 62, 18, 48, 62, 18, 45, 62, 18, 8768, 62, 18,
	10043, 62, 18, 4030, 62, 18, 4040, 62, 18, 3300, 62, 18, 3895, 62, 18, 3038,
	62, 18, 1633, 62, 41, 451, 139, 62, 41, 451, 157, 62, 41, 451, 140, 62,
	41, 451, 160, 62, 41, 605, 62, 41, 605, 67, 62, 41, 605, 70, 62, 41,
	605, 79, 62, 41, 605, 93, 62, 41, 605, 100, 62, 41, 605, 139, 62, 41,
	605, 157, 62, 41, 605, 140, 62, 41, 605, 160, 62, 41, 551, 188, 348, 16,
	54, 8009, 188, 348, 16, 54, 7296, 188, 348, 16, 54, 8722, 188, 348, 16, 54,
	5835, 188, 348, 16, 54, 3636, 188, 348, 16, 54, 8069, 188, 348, 16, 54, 8068,
	188, 348, 16, 54, 5896, 188, 348, 16, 54, 10306, 188, 348, 16, 54, 9522, 188,
	348, 16, 54, 9272, 188, 348, 16, 54, 6903, 58, 3407, 58, 7171, 58, 2209, 8433,
	8413, 6, 62, 91, 24, 62, 91, 73, 62, 91, 60, 62, 91, 51, 62, 91,
	68, 62, 91, 106, 62, 91, 571, 62, 91, 620, 62, 91, 647, 62, 91, 606,
	62, 91, 195, 62, 91, 632, 62, 91, 611, 62, 91, 666, 62, 91, 574, 62,
	91, 196, 62, 91, 686, 62, 91, 613, 62, 91, 440, 62, 91, 83, 62, 91,
	185, 62, 91, 493, 62, 91, 555, 62, 91, 492, 62, 91, 433, 62, 91, 143,
	62, 91, 479, 62, 91, 831, 62, 91, 446, 62, 91, 553, 62, 91, 182, 62,
	91, 540, 62, 91, 460, 62, 91, 539, 62, 91, 607, 62, 91, 179, 62, 91,
	402, 62, 91, 416, 62, 91, 173, 62, 91, 716, 62, 91, 630, 62, 91, 736,
	62, 91, 585, 62, 91, 286, 62, 91, 668, 62, 91, 614, 62, 91, 588, 58,
	1566, 1233, 10039, 58, 5825, 58, 5862, 58, 5816, 58, 5618, 58, 7969, 58, 7979, 58,
	11083, 58, 7179, 58, 7125, 58, 9537, 58, 9540, 58, 8111, 58, 8126, 58, 8129, 58,
	7467, 58, 7462, 58, 7563, 58, 7564, 58, 8326, 58, 7569, 58, 8211, 58, 8212, 58,
	8213, 58, 8214, 58, 7624, 58, 7625, 58, 8294, 58, 8291, 58, 8150, 58, 8254, 58,
	8249, 58, 10225, 58, 10254, 58, 10424, 58, 10302, 58, 10303, 58, 6842, 58, 6930, 58,
	7022, 58, 10860, 58, 9014, 58, 9271, 58, 7665, 58, 9587, 58, 9588, 58, 6119, 58,
	9722, 58, 9731, 58, 9730, 58, 6237, 58, 7851, 58, 7853, 58, 6310, 58, 7861, 58,
	7705, 58, 3814, 58, 9681, 58, 7716, 58, 9684, 58, 9676, 58, 6197, 58, 9772, 58,
	6258, 58, 2265, 58, 9779, 58, 7838, 58, 7836, 58, 8696, 58, 8700, 58, 8694, 58,
	8729, 58, 8715, 58, 8853, 58, 8867, 58, 8868, 58, 2351, 58, 8773, 58, 8770, 58,
	11463, 58, 11465, 58, 11538, 58, 10083, 58, 10082, 58, 10145, 58, 10150, 58, 10046, 58,
	10047, 58, 11335, 188, 348, 16, 54, 676, 254, 188, 348, 16, 54, 676, 67, 188,
	348, 16, 54, 676, 70, 188, 348, 16, 54, 676, 79, 188, 348, 16, 54, 676,
	93, 188, 348, 16, 54, 676, 100, 188, 348, 16, 54, 676, 139, 188, 348, 16,
	54, 676, 157, 188, 348, 16, 54, 676, 140, 188, 348, 16, 54, 676, 160, 188,
	348, 16, 54, 676, 280, 188, 348, 16, 54, 676, 944, 188, 348, 16, 54, 676,
	865, 188, 348, 16, 54, 676, 1264, 188, 348, 16, 54, 676, 1211, 188, 348, 16,
	54, 676, 1024, 188, 348, 16, 54, 676, 1106, 188, 348, 16, 54, 676, 1251, 188,
	348, 16, 54, 676, 1134, 188, 348, 16, 54, 676, 1234, 188, 348, 16, 54, 676,
	357, 188, 348, 16, 54, 676, 357, 2, 67, 188, 348, 16, 54, 676, 357, 2,
	70, 188, 348, 16, 54, 676, 357, 2, 79, 188, 348, 16, 54, 676, 357, 2,
	93, 58, 7846, 58, 217, 58, 313, 58, 146, 58, 3780, 58, 9664, 58, 2192, 58,
	2192, 126, 58, 2192, 1552, 58, 1597, 58, 1566, 1233, 7704, 58, 1566, 1233, 10649, 58,
	1566, 1233, 10725, 58, 1566, 1233, 8774, 58, 6700, 58, 119, 5791, 58, 185, 58, 460,
	24, 58, 182, 58, 106, 58, 8144, 58, 2342, 58, 7472, 58, 6362, 58, 8145, 58,
	9701, 58, 9097, 58, 460, 176, 58, 460, 220, 58, 8807, 58, 3490, 58, 3435, 58,
	8194, 58, 8842, 58, 7554, 58, 10819, 58, 460, 136, 58, 8872, 58, 7002, 58, 8227,
	58, 7341, 58, 9248, 58, 460, 205, 58, 1895, 58, 2150, 58, 1861, 58, 1895, 126,
	58, 2150, 126, 58, 205, 126, 58, 1861, 126, 58, 1895, 1552, 58, 2150, 1552, 58,
	205, 1552, 58, 1861, 1552, 58, 205, 172, 121, 58, 205, 172, 121, 126, 58, 119,
	58, 1611, 58, 3670, 58, 7597, 58, 1948, 58, 1948, 172, 121, 58, 1948, 172, 121,
	126, 58, 9831, 58, 9305, 58, 460, 121, 58, 8916, 58, 9865, 58, 2397, 58, 460,
	229, 58, 1623, 58, 8301, 58, 1623, 2351, 58, 9866, 58, 9372, 58, 460, 290, 58,
	3675, 58, 2311, 58, 3675, 2351, 58, 227, 1915, 58, 205, 1915, 58, 1067, 58, 6268,
	58, 3155, 58, 3156, 58, 104, 172, 3490, 58, 976, 58, 3215, 58, 7635, 58, 143,
	58, 1838, 58, 372, 58, 1859, 58, 1861, 10, 58, 8273, 58, 8451, 58, 8452, 58,
	8457, 58, 8492, 58, 2342, 7, 58, 8854, 58, 8884, 58, 9703, 58, 9765, 58, 9800,
	58, 9802, 58, 10513, 58, 2530, 58, 11336, 58, 229, 172, 205, 58, 24, 172, 205,
	188, 348, 16, 54, 569, 67, 188, 348, 16, 54, 569, 70, 188, 348, 16, 54,
	569, 79, 188, 348, 16, 54, 569, 93, 188, 348, 16, 54, 569, 100, 188, 348,
	16, 54, 569, 139, 188, 348, 16, 54, 569, 157, 188, 348, 16, 54, 569, 140,
	188, 348, 16, 54, 569, 160, 188, 348, 16, 54, 569, 280, 188, 348, 16, 54,
	569, 944, 188, 348, 16, 54, 569, 865, 188, 348, 16, 54, 569, 1264, 188, 348,
	16, 54, 569, 1211, 188, 348, 16, 54, 569, 1024, 188, 348, 16, 54, 569, 1106,
	188, 348, 16, 54, 569, 1251, 188, 348, 16, 54, 569, 1134, 188, 348, 16, 54,
	569, 1234, 188, 348, 16, 54, 569, 357, 188, 348, 16, 54, 569, 357, 2, 67,
	188, 348, 16, 54, 569, 357, 2, 70, 188, 348, 16, 54, 569, 357, 2, 79,
	188, 348, 16, 54, 569, 357, 2, 93, 188, 348, 16, 54, 569, 357, 2, 100,
	188, 348, 16, 54, 569, 357, 2, 139, 188, 348, 16, 54, 569, 357, 2, 157,
	188, 348, 16, 54, 569, 357, 2, 140, 188, 348, 16, 54, 569, 357, 2, 160,
	188, 348, 16, 54, 569, 451, 188, 348, 16, 54, 569, 451, 2, 67, 58, 1141,
	371, 54, 487, 6714, 1833, 371, 54, 487, 10030, 848, 371, 54, 6968, 653, 487, 6200,
	371, 54, 11529, 7345, 371, 54, 4169, 371, 54, 6673, 371, 54, 487, 5851, 371, 54,
	1425, 2002, 371, 54, 7, 4053, 371, 54, 10883, 371, 54, 2422, 371, 54, 10554, 371,
	54, 7301, 371, 54, 1420, 3840, 371, 54, 8880, 371, 54, 7162, 371, 54, 3328, 371,
	54, 2598, 347, 487, 6902, 371, 54, 5833, 371, 54, 6681, 371, 54, 3111, 896, 371,
	54, 2249, 371, 54, 10496, 5826, 371, 54, 1667, 371, 54, 7973, 371, 54, 1420, 4053,
	371, 54, 432, 1390, 371, 54, 1420, 3845, 371, 54, 487, 5709, 931, 371, 54, 487,
	6539, 1027, 371, 54, 7966, 371, 54, 7047, 371, 54, 10060, 371, 54, 1420, 1472, 371,
	54, 9820, 371, 54, 3212, 95, 487, 148, 371, 54, 487, 3314, 371, 54, 2408, 371,
	54, 9517, 371, 54, 6918, 371, 54, 3227, 371, 54, 2273, 371, 54, 6276, 371, 54,
	6663, 83, 3645, 371, 54, 2234, 2002, 371, 54, 9858, 4147, 371, 54, 9546, 371, 54,
	487, 11341, 371, 54, 10064, 371, 54, 487, 3152, 371, 54, 487, 5853, 2550, 371, 54,
	487, 3483, 10568, 1230, 371, 54, 6934, 371, 54, 487, 8727, 8695, 371, 54, 5708, 371,
	54, 487, 11325, 371, 54, 487, 7495, 1062, 371, 54, 487, 8061, 3527, 371, 54, 6987,
	371, 54, 8432, 371, 54, 3448, 10910, 371, 54, 7, 3845, 371, 54, 5739, 2152, 371,
	54, 6198, 2152, 14, 9, 2284, 14, 9, 3455, 14, 9, 73, 14, 9, 7986, 14,
	9, 7932, 14, 9, 7933, 14, 9, 832, 14, 9, 7931, 14, 9, 653, 14, 9,
	3071, 14, 9, 24, 14, 9, 3048, 14, 9, 11085, 14, 9, 4146, 14, 9, 11084,
	14, 9, 1919, 14, 9, 1921, 14, 9, 68, 14, 9, 2407, 14, 9, 1809, 14,
	9, 51, 14, 9, 1063, 14, 9, 3110, 14, 9, 6246, 14, 9, 780, 14, 9,
	6235, 14, 9, 6227, 14, 9, 6228, 14, 9, 6225, 14, 9, 6226, 14, 9, 2113,
	14, 9, 6158, 14, 9, 251, 14, 9, 6144, 14, 9, 6303, 14, 9, 6301, 14,
	9, 6302, 14, 9, 6261, 14, 9, 124, 14, 9, 973, 14, 9, 6257, 14, 9,
	6209, 14, 9, 871, 14, 9, 6207, 14, 9, 1071, 14, 9, 6316, 14, 9, 670,
	14, 9, 6305, 14, 9, 6308, 14, 9, 1123, 14, 9, 6322, 14, 9, 6323, 14,
	9, 974, 14, 9, 6319, 14, 9, 6321, 14, 9, 6320, 14, 9, 3829, 14, 9,
	9746, 14, 9, 427, 14, 9, 3825, 14, 9, 9729, 14, 9, 3822, 14, 9, 9727,
	14, 9, 9654, 14, 9, 9661, 14, 9, 119, 14, 9, 807, 14, 9, 9850, 14,
	9, 9848, 14, 9, 9849, 14, 9, 1938, 14, 9, 9797, 14, 9, 808, 14, 9,
	2437, 14, 9, 2445, 14, 9, 9863, 14, 9, 962, 14, 9, 3855, 14, 9, 9857,
	14, 9, 9852, 14, 9, 3859, 14, 9, 9872, 14, 9, 9868, 14, 9, 9869, 14,
	9, 9871, 14, 9, 9870, 14, 9, 6172, 14, 9, 6173, 14, 9, 3091, 14, 9,
	6171, 14, 9, 6169, 14, 9, 6170, 14, 9, 6167, 14, 9, 6168, 14, 9, 6162,
	14, 9, 6163, 14, 9, 1289, 14, 9, 6161, 14, 9, 6179, 14, 9, 6177, 14,
	9, 6178, 14, 9, 6175, 14, 9, 6176, 14, 9, 3092, 14, 9, 6174, 14, 9,
	6166, 14, 9, 1536, 14, 9, 6165, 14, 9, 3094, 14, 9, 6183, 14, 9, 3093,
	14, 9, 6180, 14, 9, 6182, 14, 9, 6181, 14, 9, 6186, 14, 9, 6187, 14,
	9, 6184, 14, 9, 6185, 14, 9, 9034, 14, 9, 9035, 14, 9, 9030, 14, 9,
	9033, 14, 9, 9032, 14, 9, 3692, 14, 9, 9031, 14, 9, 9028, 14, 9, 9029,
	14, 9, 9026, 14, 9, 9027, 14, 9, 9038, 14, 9, 9039, 14, 9, 9036, 14,
	9, 9037, 14, 9, 9044, 14, 9, 9045, 14, 9, 9040, 14, 9, 9041, 14, 9,
	9043, 14, 9, 9042, 14, 9, 9050, 14, 9, 9051, 14, 9, 9046, 14, 9, 9047,
	14, 9, 9049, 14, 9, 9048, 14, 9, 7788, 14, 9, 7789, 14, 9, 7783, 14,
	9, 7787, 14, 9, 7786, 14, 9, 7784, 14, 9, 7785, 14, 9, 7780, 14, 9,
	7781, 14, 9, 7778, 14, 9, 7779, 14, 9, 7796, 14, 9, 7794, 14, 9, 7795,
	14, 9, 7791, 14, 9, 7792, 14, 9, 3417, 14, 9, 7790, 14, 9, 7800, 14,
	9, 7801, 14, 9, 7793, 14, 9, 7797, 14, 9, 7799, 14, 9, 7798, 14, 9,
	7806, 14, 9, 7802, 14, 9, 7803, 14, 9, 7805, 14, 9, 7804, 14, 9, 2356,
	14, 9, 8870, 14, 9, 540, 14, 9, 8865, 14, 9, 8848, 14, 9, 8846, 14,
	9, 8847, 14, 9, 8738, 14, 9, 8744, 14, 9, 182, 14, 9, 1616, 14, 9,
	8934, 14, 9, 8935, 14, 9, 8931, 14, 9, 8933, 14, 9, 8900, 14, 9, 8909,
	14, 9, 607, 14, 9, 3665, 14, 9, 8798, 14, 9, 539, 14, 9, 8944, 14,
	9, 8948, 14, 9, 460, 14, 9, 8936, 14, 9, 8941, 14, 9, 8938, 14, 9,
	8953, 14, 9, 8954, 14, 9, 3680, 14, 9, 8952, 14, 9, 7327, 14, 9, 7328,
	14, 9, 1023, 14, 9, 7319, 14, 9, 7290, 14, 9, 2216, 14, 9, 502, 14,
	9, 7286, 14, 9, 3335, 14, 9, 1028, 14, 9, 7352, 14, 9, 7379, 14, 9,
	7380, 14, 9, 1140, 14, 9, 7376, 14, 9, 7377, 14, 9, 3339, 14, 9, 7385,
	14, 9, 7386, 14, 9, 7382, 14, 9, 7384, 14, 9, 11246, 14, 9, 11247, 14,
	9, 1175, 14, 9, 11241, 14, 9, 329, 14, 9, 11237, 14, 9, 11232, 14, 9,
	11233, 14, 9, 11206, 14, 9, 11209, 14, 9, 413, 14, 9, 11198, 14, 9, 11261,
	14, 9, 11263, 14, 9, 1113, 14, 9, 11260, 14, 9, 11226, 14, 9, 4155, 14,
	9, 11270, 14, 9, 11271, 14, 9, 1361, 14, 9, 11268, 14, 9, 11269, 14, 9,
	4168, 14, 9, 11279, 14, 9, 11280, 14, 9, 2586, 14, 9, 11276, 14, 9, 11278,
	14, 9, 11277, 14, 9, 6992, 14, 9, 6999, 14, 9, 783, 14, 9, 6979, 14,
	9, 6964, 14, 9, 1201, 14, 9, 6962, 14, 9, 3213, 14, 9, 6869, 14, 9,
	217, 14, 9, 940, 14, 9, 7042, 14, 9, 7041, 14, 9, 77, 14, 9, 7026,
	14, 9, 725, 14, 9, 7020, 14, 9, 6935, 14, 9, 710, 14, 9, 6925, 14,
	9, 7051, 14, 9, 7053, 14, 9, 784, 14, 9, 7043, 14, 9, 7048, 14, 9,
	7045, 14, 9, 4083, 14, 9, 10844, 14, 9, 686, 14, 9, 751, 14, 9, 10825,
	14, 9, 1498, 14, 9, 10824, 14, 9, 4058, 14, 9, 10751, 14, 9, 196, 14,
	9, 10738, 14, 9, 4126, 14, 9, 10959, 14, 9, 10957, 14, 9, 10958, 14, 9,
	4093, 14, 9, 10872, 14, 9, 83, 14, 9, 442, 14, 9, 10781, 14, 9, 440,
	14, 9, 10769, 14, 9, 10966, 14, 9, 10970, 14, 9, 613, 14, 9, 4127, 14,
	9, 10965, 14, 9, 1504, 14, 9, 6885, 14, 9, 6886, 14, 9, 3222, 14, 9,
	6884, 14, 9, 6883, 14, 9, 6881, 14, 9, 6882, 14, 9, 6872, 14, 9, 6873,
	14, 9, 437, 14, 9, 6871, 14, 9, 6893, 14, 9, 6891, 14, 9, 6892, 14,
	9, 6889, 14, 9, 6890, 14, 9, 2179, 14, 9, 6888, 14, 9, 6876, 14, 9,
	3219, 14, 9, 6875, 14, 9, 6896, 14, 9, 6897, 14, 9, 3223, 14, 9, 6894,
	14, 9, 6895, 14, 9, 3224, 14, 9, 9069, 14, 9, 9070, 14, 9, 2376, 14,
	9, 9067, 14, 9, 9066, 14, 9, 9065, 14, 9, 9056, 14, 9, 9057, 14, 9,
	1457, 14, 9, 2374, 14, 9, 9074, 14, 9, 9075, 14, 9, 2377, 14, 9, 9073,
	14, 9, 9062, 14, 9, 1902, 14, 9, 9058, 14, 9, 9080, 14, 9, 9081, 14,
	9, 1903, 14, 9, 9077, 14, 9, 9079, 14, 9, 9078, 14, 9, 7820, 14, 9,
	7821, 14, 9, 7814, 14, 9, 7819, 14, 9, 7817, 14, 9, 7818, 14, 9, 7815,
	14, 9, 7816, 14, 9, 7808, 14, 9, 7810, 14, 9, 2263, 14, 9, 7807, 14,
	9, 7827, 14, 9, 7826, 14, 9, 7823, 14, 9, 7824, 14, 9, 7822, 14, 9,
	7813, 14, 9, 7811, 14, 9, 7812, 14, 9, 7828, 14, 9, 9187, 14, 9, 9189,
	14, 9, 493, 14, 9, 9183, 14, 9, 9171, 14, 9, 9169, 14, 9, 9170, 14,
	9, 9022, 14, 9, 185, 14, 9, 9017, 14, 9, 9366, 14, 9, 9364, 14, 9,
	9365, 14, 9, 362, 14, 9, 9275, 14, 9, 433, 14, 9, 9267, 14, 9, 9095,
	14, 9, 492, 14, 9, 9089, 14, 9, 3743, 14, 9, 9371, 14, 9, 555, 14,
	9, 9367, 14, 9, 9369, 14, 9, 9368, 14, 9, 7757, 14, 9, 7758, 14, 9,
	2262, 14, 9, 7756, 14, 9, 7755, 14, 9, 7753, 14, 9, 7754, 14, 9, 7747,
	14, 9, 7749, 14, 9, 3416, 14, 9, 7746, 14, 9, 7765, 14, 9, 7763, 14,
	9, 7764, 14, 9, 7761, 14, 9, 7759, 14, 9, 7760, 14, 9, 7752, 14, 9,
	7750, 14, 9, 7751, 14, 9, 7769, 14, 9, 7770, 14, 9, 7762, 14, 9, 7766,
	14, 9, 7768, 14, 9, 7767, 14, 9, 7775, 14, 9, 7776, 14, 9, 7771, 14,
	9, 7772, 14, 9, 7774, 14, 9, 7773, 14, 9, 8442, 14, 9, 8445, 14, 9,
	365, 14, 9, 1879, 14, 9, 8419, 14, 9, 8420, 14, 9, 3554, 14, 9, 8418,
	14, 9, 8373, 14, 9, 8380, 14, 9, 202, 14, 9, 2317, 14, 9, 8484, 14,
	9, 8485, 14, 9, 8482, 14, 9, 8483, 14, 9, 8470, 14, 9, 8475, 14, 9,
	765, 14, 9, 8465, 14, 9, 8404, 14, 9, 448, 14, 9, 8399, 14, 9, 8490,
	14, 9, 8491, 14, 9, 679, 14, 9, 8486, 14, 9, 8488, 14, 9, 8487, 14,
	9, 8499, 14, 9, 8500, 14, 9, 2334, 14, 9, 8497, 14, 9, 8498, 14, 9,
	3578, 14, 9, 7571, 14, 9, 7572, 14, 9, 703, 14, 9, 7565, 14, 9, 7559,
	14, 9, 7560, 14, 9, 7557, 14, 9, 7558, 14, 9, 7469, 14, 9, 7471, 14,
	9, 224, 14, 9, 1416, 14, 9, 7621, 14, 9, 7622, 14, 9, 7619, 14, 9,
	7620, 14, 9, 3379, 14, 9, 7596, 14, 9, 914, 14, 9, 7590, 14, 9, 7499,
	14, 9, 7501, 14, 9, 1085, 14, 9, 3362, 14, 9, 7629, 14, 9, 7630, 14,
	9, 828, 14, 9, 7623, 14, 9, 7628, 14, 9, 1830, 14, 9, 3501, 14, 9,
	8221, 14, 9, 571, 14, 9, 3500, 14, 9, 8202, 14, 9, 8199, 14, 9, 8201,
	14, 9, 8131, 14, 9, 8143, 14, 9, 106, 14, 9, 3477, 14, 9, 8287, 14,
	9, 8284, 14, 9, 2310, 14, 9, 8255, 14, 9, 8259, 14, 9, 606, 14, 9,
	8251, 14, 9, 1319, 14, 9, 8174, 14, 9, 647, 14, 9, 8158, 14, 9, 1867,
	14, 9, 8299, 14, 9, 620, 14, 9, 8288, 14, 9, 8295, 14, 9, 787, 14,
	9, 7514, 14, 9, 7515, 14, 9, 3365, 14, 9, 7513, 14, 9, 7511, 14, 9,
	7512, 14, 9, 7505, 14, 9, 7506, 14, 9, 1417, 14, 9, 7504, 14, 9, 7519,
	14, 9, 7520, 14, 9, 3369, 14, 9, 7518, 14, 9, 7516, 14, 9, 7517, 14,
	9, 3366, 14, 9, 3367, 14, 9, 7509, 14, 9, 7510, 14, 9, 2242, 14, 9,
	7508, 14, 9, 7524, 14, 9, 7525, 14, 9, 3368, 14, 9, 7521, 14, 9, 7523,
	14, 9, 7522, 14, 9, 8828, 14, 9, 8827, 14, 9, 8810, 14, 9, 8811, 14,
	9, 8808, 14, 9, 8809, 14, 9, 8835, 14, 9, 8833, 14, 9, 8834, 14, 9,
	8830, 14, 9, 8831, 14, 9, 886, 14, 9, 8829, 14, 9, 8826, 14, 9, 8824,
	14, 9, 8825, 14, 9, 8839, 14, 9, 8840, 14, 9, 8832, 14, 9, 8836, 14,
	9, 8838, 14, 9, 8837, 14, 9, 3430, 14, 9, 7885, 14, 9, 7879, 14, 9,
	7884, 14, 9, 7882, 14, 9, 7883, 14, 9, 7880, 14, 9, 7881, 14, 9, 7874,
	14, 9, 7875, 14, 9, 7872, 14, 9, 7873, 14, 9, 7890, 14, 9, 7891, 14,
	9, 3432, 14, 9, 7889, 14, 9, 7887, 14, 9, 7888, 14, 9, 7886, 14, 9,
	3431, 14, 9, 7878, 14, 9, 7876, 14, 9, 7877, 14, 9, 9132, 14, 9, 9130,
	14, 9, 9131, 14, 9, 9105, 14, 9, 9106, 14, 9, 312, 14, 9, 9103, 14,
	9, 9159, 14, 9, 9160, 14, 9, 9158, 14, 9, 9150, 14, 9, 9151, 14, 9,
	1328, 14, 9, 3715, 14, 9, 9110, 14, 9, 3703, 14, 9, 9108, 14, 9, 3414,
	14, 9, 7738, 14, 9, 1588, 14, 9, 1314, 14, 9, 7689, 14, 9, 143, 14,
	9, 7679, 14, 9, 7859, 14, 9, 7860, 14, 9, 7857, 14, 9, 7858, 14, 9,
	1590, 14, 9, 7844, 14, 9, 553, 14, 9, 7840, 14, 9, 7717, 14, 9, 446,
	14, 9, 7711, 14, 9, 11333, 14, 9, 4174, 14, 9, 286, 14, 9, 4171, 14,
	9, 11389, 14, 9, 4189, 14, 9, 11388, 14, 9, 11376, 14, 9, 588, 14, 9,
	11368, 14, 9, 11346, 14, 9, 614, 14, 9, 11343, 14, 9, 11661, 14, 9, 11662,
	14, 9, 1065, 14, 9, 11658, 14, 9, 11654, 14, 9, 11652, 14, 9, 11653, 14,
	9, 11610, 14, 9, 11612, 14, 9, 443, 14, 9, 11606, 14, 9, 11675, 14, 9,
	11673, 14, 9, 11674, 14, 9, 4236, 14, 9, 11667, 14, 9, 1012, 14, 9, 11666,
	14, 9, 11619, 14, 9, 739, 14, 9, 11616, 14, 9, 11677, 14, 9, 11678, 14,
	9, 1013, 14, 9, 4237, 14, 9, 11676, 14, 9, 4238, 14, 9, 11686, 14, 9,
	11687, 14, 9, 4239, 14, 9, 11683, 14, 9, 11685, 14, 9, 11684, 14, 9, 6525,
	14, 9, 6528, 14, 9, 1772, 14, 9, 3172, 14, 9, 6518, 14, 9, 6519, 14,
	9, 6516, 14, 9, 6517, 14, 9, 938, 14, 9, 6396, 14, 9, 325, 14, 9,
	1765, 14, 9, 6726, 14, 9, 6725, 14, 9, 3194, 14, 9, 6704, 14, 9, 6710,
	14, 9, 976, 14, 9, 6693, 14, 9, 6438, 14, 9, 1124, 14, 9, 6433, 14,
	9, 2169, 14, 9, 6737, 14, 9, 2166, 14, 9, 758, 14, 9, 6733, 14, 9,
	6729, 14, 9, 3202, 14, 9, 6747, 14, 9, 3199, 14, 9, 3201, 14, 9, 6746,
	14, 9, 6744, 14, 9, 11699, 14, 9, 11700, 14, 9, 4241, 14, 9, 11698, 14,
	9, 4242, 14, 9, 11697, 14, 9, 11695, 14, 9, 11696, 14, 9, 11690, 14, 9,
	11691, 14, 9, 2042, 14, 9, 11689, 14, 9, 11702, 14, 9, 4243, 14, 9, 11701,
	14, 9, 11694, 14, 9, 4240, 14, 9, 11693, 14, 9, 11708, 14, 9, 4244, 14,
	9, 11705, 14, 9, 11707, 14, 9, 11706, 14, 9, 11714, 14, 9, 11715, 14, 9,
	11709, 14, 9, 11711, 14, 9, 11713, 14, 9, 11712, 14, 9, 9413, 14, 9, 9414,
	14, 9, 9408, 14, 9, 9412, 14, 9, 9411, 14, 9, 9409, 14, 9, 9410, 14,
	9, 9403, 14, 9, 9404, 14, 9, 2402, 14, 9, 9401, 14, 9, 9420, 14, 9,
	9419, 14, 9, 9416, 14, 9, 9415, 14, 9, 9407, 14, 9, 9405, 14, 9, 9424,
	14, 9, 9417, 14, 9, 3758, 14, 9, 9423, 14, 9, 9422, 14, 9, 9429, 14,
	9, 9430, 14, 9, 9425, 14, 9, 9426, 14, 9, 9428, 14, 9, 9427, 14, 9,
	10427, 14, 9, 139, 14, 9, 632, 14, 9, 10423, 14, 9, 10413, 14, 9, 10410,
	14, 9, 10412, 14, 9, 2469, 14, 9, 10268, 14, 9, 195, 14, 9, 3933, 14,
	9, 10614, 14, 9, 10612, 14, 9, 10613, 14, 9, 2503, 14, 9, 10475, 14, 9,
	574, 14, 9, 10468, 14, 9, 10318, 14, 9, 666, 14, 9, 10304, 14, 9, 10626,
	14, 9, 10628, 14, 9, 611, 14, 9, 10615, 14, 9, 10623, 14, 9, 1991, 14,
	9, 10656, 14, 9, 10657, 14, 9, 10640, 14, 9, 10650, 14, 9, 10655, 14, 9,
	10651, 14, 9, 10531, 14, 9, 10532, 14, 9, 2510, 14, 9, 10530, 14, 9, 10529,
	14, 9, 10527, 14, 9, 10528, 14, 9, 10520, 14, 9, 10521, 14, 9, 518, 14,
	9, 10519, 14, 9, 10534, 14, 9, 10535, 14, 9, 2511, 14, 9, 10533, 14, 9,
	10524, 14, 9, 4020, 14, 9, 10523, 14, 9, 10537, 14, 9, 10538, 14, 9, 2512,
	14, 9, 10536, 14, 9, 10543, 14, 9, 10544, 14, 9, 10539, 14, 9, 10540, 14,
	9, 10542, 14, 9, 10541, 14, 9, 11624, 14, 9, 11625, 14, 9, 740, 14, 9,
	11623, 14, 9, 11638, 14, 9, 11636, 14, 9, 11637, 14, 9, 11634, 14, 9, 11635,
	14, 9, 2618, 14, 9, 11633, 14, 9, 11628, 14, 9, 11629, 14, 9, 868, 14,
	9, 11627, 14, 9, 11642, 14, 9, 11643, 14, 9, 2619, 14, 9, 11639, 14, 9,
	11641, 14, 9, 11640, 14, 9, 11649, 14, 9, 11650, 14, 9, 11645, 14, 9, 11646,
	14, 9, 11648, 14, 9, 11647, 14, 9, 3165, 14, 9, 6454, 14, 9, 358, 14,
	9, 6449, 14, 9, 6502, 14, 9, 6503, 14, 9, 6500, 14, 9, 6501, 14, 9,
	6495, 14, 9, 6496, 14, 9, 1017, 14, 9, 6493, 14, 9, 6470, 14, 9, 6471,
	14, 9, 700, 14, 9, 6464, 14, 9, 6507, 14, 9, 1771, 14, 9, 6504, 14,
	9, 6506, 14, 9, 6505, 14, 9, 6514, 14, 9, 6515, 14, 9, 6510, 14, 9,
	6511, 14, 9, 6513, 14, 9, 6512, 14, 9, 10107, 14, 9, 769, 14, 9, 10117,
	14, 9, 10116, 14, 9, 10112, 14, 9, 10113, 14, 9, 3917, 14, 9, 10111, 14,
	9, 10109, 14, 9, 10110, 14, 9, 3916, 14, 9, 10108, 14, 9, 10121, 14, 9,
	10122, 14, 9, 10115, 14, 9, 10118, 14, 9, 10120, 14, 9, 10119, 14, 9, 10127,
	14, 9, 10128, 14, 9, 10123, 14, 9, 10124, 14, 9, 10126, 14, 9, 10125, 14,
	9, 9282, 14, 9, 9283, 14, 9, 2392, 14, 9, 9281, 14, 9, 9291, 14, 9,
	9289, 14, 9, 9290, 14, 9, 9287, 14, 9, 9288, 14, 9, 9284, 14, 9, 9285,
	14, 9, 9297, 14, 9, 9298, 14, 9, 9292, 14, 9, 9294, 14, 9, 9296, 14,
	9, 9295, 14, 9, 9303, 14, 9, 9304, 14, 9, 9299, 14, 9, 9300, 14, 9,
	9302, 14, 9, 9301, 14, 9, 3955, 14, 9, 10340, 14, 9, 321, 14, 9, 10334,
	14, 9, 10391, 14, 9, 10389, 14, 9, 10390, 14, 9, 10370, 14, 9, 10374, 14,
	9, 1050, 14, 9, 3963, 14, 9, 3957, 14, 9, 10355, 14, 9, 464, 14, 9,
	10346, 14, 9, 10394, 14, 9, 10396, 14, 9, 895, 14, 9, 10392, 14, 9, 10393,
	14, 9, 3969, 14, 9, 10404, 14, 9, 10405, 14, 9, 3975, 14, 9, 10401, 14,
	9, 10403, 14, 9, 10402, 14, 9, 1952, 14, 9, 10024, 14, 9, 173, 14, 9,
	2455, 14, 9, 10143, 14, 9, 10141, 14, 9, 10142, 14, 9, 10104, 14, 9, 10106,
	14, 9, 585, 14, 9, 10101, 14, 9, 3899, 14, 9, 736, 14, 9, 10048, 14,
	9, 10149, 14, 9, 10151, 14, 9, 630, 14, 9, 10144, 14, 9, 10147, 14, 9,
	10146, 14, 9, 10163, 14, 9, 10164, 14, 9, 3923, 14, 9, 10160, 14, 9, 10162,
	14, 9, 10161, 14, 9, 8032, 14, 9, 8033, 14, 9, 1218, 14, 9, 8031, 14,
	9, 8028, 14, 9, 8029, 14, 9, 8026, 14, 9, 8027, 14, 9, 8073, 14, 9,
	8074, 14, 9, 8071, 14, 9, 8072, 14, 9, 1220, 14, 9, 8060, 14, 9, 1031,
	14, 9, 8058, 14, 9, 8079, 14, 9, 8081, 14, 9, 1316, 14, 9, 8075, 14,
	9, 8078, 14, 9, 8077, 14, 9, 8087, 14, 9, 8088, 14, 9, 8083, 14, 9,
	8084, 14, 9, 8086, 14, 9, 8085, 14, 9, 9914, 14, 9, 9915, 14, 9, 1661,
	14, 9, 9913, 14, 9, 9910, 14, 9, 9911, 14, 9, 9908, 14, 9, 9909, 14,
	9, 9936, 14, 9, 9937, 14, 9, 2452, 14, 9, 9935, 14, 9, 3864, 14, 9,
	9920, 14, 9, 1945, 14, 9, 9918, 14, 9, 9942, 14, 9, 9944, 14, 9, 1662,
	14, 9, 9938, 14, 9, 9940, 14, 9, 9939, 14, 9, 9957, 14, 9, 9959, 14,
	9, 9947, 14, 9, 9954, 14, 9, 9956, 14, 9, 9955, 14, 9, 8040, 14, 9,
	8041, 14, 9, 3463, 14, 9, 8039, 14, 9, 8037, 14, 9, 8038, 14, 9, 3464,
	14, 9, 8036, 14, 9, 8047, 14, 9, 8045, 14, 9, 8046, 14, 9, 8043, 14,
	9, 8044, 14, 9, 3465, 14, 9, 8042, 14, 9, 3467, 14, 9, 8051, 14, 9,
	3466, 14, 9, 8048, 14, 9, 8050, 14, 9, 8049, 14, 9, 8053, 14, 9, 8054,
	14, 9, 3468, 14, 9, 8052, 14, 9, 9203, 14, 9, 9204, 14, 9, 1460, 14,
	9, 9202, 14, 9, 9200, 14, 9, 9201, 14, 9, 9197, 14, 9, 9199, 14, 9,
	9209, 14, 9, 9208, 14, 9, 9206, 14, 9, 9207, 14, 9, 3724, 14, 9, 9205,
	14, 9, 9214, 14, 9, 2390, 14, 9, 9210, 14, 9, 9213, 14, 9, 9212, 14,
	9, 9219, 14, 9, 9220, 14, 9, 9215, 14, 9, 9216, 14, 9, 9218, 14, 9,
	9217, 14, 9, 3756, 14, 9, 9385, 14, 9, 920, 14, 9, 3755, 14, 9, 9382,
	14, 9, 9383, 14, 9, 9380, 14, 9, 9381, 14, 9, 9396, 14, 9, 9394, 14,
	9, 9395, 14, 9, 9390, 14, 9, 9391, 14, 9, 1154, 14, 9, 3757, 14, 9,
	9398, 14, 9, 9399, 14, 9, 2401, 14, 9, 9397, 14, 9, 11423, 14, 9, 11424,
	14, 9, 900, 14, 9, 11421, 14, 9, 11419, 14, 9, 11420, 14, 9, 11417, 14,
	9, 11418, 14, 9, 11434, 14, 9, 11433, 14, 9, 11429, 14, 9, 11430, 14, 9,
	4191, 14, 9, 11426, 14, 9, 11451, 14, 9, 11453, 14, 9, 11441, 14, 9, 11448,
	14, 9, 11450, 14, 9, 11449, 14, 9, 2609, 14, 9, 11522, 14, 9, 14, 14,
	9, 11521, 14, 9, 11516, 14, 9, 11517, 14, 9, 4207, 14, 9, 11515, 14, 9,
	11545, 14, 9, 11546, 14, 9, 11543, 14, 9, 4213, 14, 9, 1713, 14, 9, 11532,
	14, 9, 416, 14, 9, 11526, 14, 9, 2036, 14, 9, 11551, 14, 9, 402, 14,
	9, 11547, 14, 9, 11549, 14, 9, 11548, 14, 9, 11557, 14, 9, 11558, 14, 9,
	2614, 14, 9, 11554, 14, 9, 11556, 14, 9, 11555, 14, 65, 3864, 14, 65, 365,
	14, 65, 3501, 14, 65, 3755, 14, 65, 3201, 14, 65, 2510, 14, 65, 3367, 14,
	65, 3362, 14, 65, 540, 14, 65, 3430, 14, 65, 3578, 14, 65, 3094, 14, 65,
	3665, 14, 65, 416, 14, 65, 2445, 14, 65, 3432, 14, 65, 4058, 14, 65, 224,
	14, 65, 4237, 14, 65, 3202, 14, 65, 3224, 14, 65, 1123, 14, 65, 3369, 14,
	65, 3757, 14, 65, 613, 14, 65, 2407, 14, 65, 3467, 14, 65, 4236, 14, 65,
	3859, 14, 65, 3417, 14, 65, 2609, 14, 65, 4168, 14, 65, 3975, 14, 65, 4155,
	14, 65, 443, 14, 65, 1031, 14, 65, 3758, 14, 65, 3468, 14, 65, 3379, 14,
	65, 3464, 14, 65, 588, 14, 65, 784, 14, 65, 3969, 14, 65, 3554, 14, 65,
	3199, 14, 65, 3194, 14, 65, 3172, 14, 65, 3431, 14, 65, 3955, 14, 65, 4238,
	14, 65, 3963, 14, 65, 700, 14, 65, 4242, 14, 65, 3692, 14, 65, 647, 449,
	5, 251, 449, 5, 119, 449, 5, 412, 449, 5, 217, 449, 5, 196, 449, 5,
	386, 449, 5, 224, 449, 5, 106, 449, 5, 361, 449, 5, 317, 449, 5, 325,
	449, 5, 358, 449, 5, 942, 449, 5, 612, 449, 5, 897, 449, 5, 182, 449,
	5, 185, 449, 5, 202, 449, 5, 195, 449, 5, 740, 449, 5, 443, 449, 5,
	312, 449, 5, 143, 449, 5, 899, 449, 5, 1144, 449, 5, 502, 449, 5, 286,
	449, 5, 321, 449, 5, 179, 449, 5, 459, 449, 5, 24, 449, 5, 543, 449,
	5, 51, 449, 5, 761, 449, 5, 73, 449, 5, 68, 449, 5, 60, 449, 5,
	719, 449, 5, 2578, 449, 5, 485, 449, 5, 110, 1453, 686, 449, 5, 110, 185,
	808, 449, 5, 110, 1453, 3200, 449, 5, 110, 1453, 973, 449, 5, 110, 1453, 185,
	449, 5, 110, 1453, 8019, 449, 225, 383, 449, 225, 426, 322, 80, 9, 496, 80,
	9, 7126, 80, 9, 1834, 80, 9, 2023, 80, 9, 11340, 80, 9, 1155, 80, 9,
	6215, 80, 9, 1377, 80, 9, 1888, 80, 9, 3512, 80, 9, 8815, 80, 9, 3354,
	80, 9, 1305, 80, 9, 1272, 80, 9, 1497, 80, 9, 1690, 80, 9, 6945, 80,
	9, 6948, 80, 9, 1875, 80, 9, 1665, 80, 9, 1394, 80, 9, 2375, 80, 9,
	1250, 80, 9, 1968, 80, 9, 1715, 80, 9, 2041, 80, 9, 3158, 80, 9, 1434,
	80, 9, 1634, 80, 9, 1517, 80, 9, 2299, 80, 9, 3706, 80, 9, 1577, 80,
	9, 2349, 80, 9, 2378, 80, 9, 3752, 80, 9, 73, 80, 9, 372, 80, 9,
	479, 80, 9, 3412, 80, 9, 668, 80, 9, 11356, 80, 9, 427, 80, 9, 6216,
	80, 9, 780, 80, 9, 2343, 80, 9, 3513, 80, 9, 8818, 80, 9, 3355, 80,
	9, 1023, 80, 9, 1175, 80, 9, 686, 80, 9, 1357, 80, 9, 6953, 80, 9,
	6949, 80, 9, 365, 80, 9, 716, 80, 9, 783, 80, 9, 2376, 80, 9, 632,
	80, 9, 1483, 80, 9, 1065, 80, 9, 2616, 80, 9, 1772, 80, 9, 1218, 80,
	9, 1460, 80, 9, 14, 80, 9, 571, 80, 9, 3708, 80, 9, 703, 80, 9,
	540, 80, 9, 493, 80, 9, 920, 80, 9, 24, 80, 9, 524, 80, 9, 9101,
	80, 9, 143, 80, 9, 2254, 80, 9, 286, 80, 9, 11323, 80, 9, 119, 80,
	9, 483, 80, 9, 251, 80, 9, 1617, 80, 9, 1611, 80, 9, 8261, 80, 9,
	3653, 80, 9, 2237, 80, 9, 502, 80, 9, 413, 80, 9, 196, 80, 9, 386,
	80, 9, 453, 80, 9, 6946, 80, 9, 202, 80, 9, 173, 80, 9, 217, 80,
	9, 1457, 80, 9, 195, 80, 9, 321, 80, 9, 443, 80, 9, 740, 80, 9,
	325, 80, 9, 317, 80, 9, 3720, 80, 9, 179, 80, 9, 106, 80, 9, 1437,
	80, 9, 1631, 80, 9, 224, 80, 9, 182, 80, 9, 185, 80, 9, 363, 80,
	9, 454, 80, 9, 9541, 80, 9, 1589, 80, 9, 1708, 80, 9, 11367, 80, 9,
	1657, 80, 9, 6217, 80, 9, 3124, 80, 9, 2346, 80, 9, 3514, 80, 9, 8822,
	80, 9, 3357, 80, 9, 2228, 80, 9, 4166, 80, 9, 1500, 80, 9, 2546, 80,
	9, 6955, 80, 9, 6951, 80, 9, 1449, 80, 9, 3914, 80, 9, 3254, 80, 9,
	3694, 80, 9, 1680, 80, 9, 2487, 80, 9, 4235, 80, 9, 11632, 80, 9, 2159,
	80, 9, 3470, 80, 9, 3725, 80, 9, 2034, 80, 9, 1609, 80, 9, 2384, 80,
	9, 7588, 80, 9, 2361, 80, 9, 2391, 80, 9, 9389, 80, 9, 60, 80, 9,
	1173, 80, 9, 831, 80, 9, 3428, 80, 9, 1063, 80, 9, 11386, 80, 9, 962,
	80, 9, 6218, 80, 9, 670, 80, 9, 2347, 80, 9, 3515, 80, 9, 8823, 80,
	9, 2238, 80, 9, 1140, 80, 9, 1361, 80, 9, 613, 80, 9, 2549, 80, 9,
	6957, 80, 9, 6952, 80, 9, 679, 80, 9, 630, 80, 9, 784, 80, 9, 1903,
	80, 9, 611, 80, 9, 895, 80, 9, 1013, 80, 9, 2619, 80, 9, 2166, 80,
	9, 1316, 80, 9, 2390, 80, 9, 402, 80, 9, 620, 80, 9, 2385, 80, 9,
	828, 80, 9, 460, 80, 9, 555, 80, 9, 2401, 80, 9, 68, 80, 9, 347,
	80, 9, 3714, 80, 9, 553, 80, 9, 2265, 80, 9, 588, 80, 9, 2596, 80,
	9, 808, 80, 9, 3104, 80, 9, 973, 80, 9, 2345, 80, 9, 1863, 80, 9,
	8820, 80, 9, 3356, 80, 9, 7479, 80, 9, 1028, 80, 9, 1113, 80, 9, 83,
	80, 9, 750, 80, 9, 3239, 80, 9, 6950, 80, 9, 765, 80, 9, 585, 80,
	9, 725, 80, 9, 2377, 80, 9, 574, 80, 9, 1050, 80, 9, 1012, 80, 9,
	2618, 80, 9, 976, 80, 9, 1031, 80, 9, 3724, 80, 9, 416, 80, 9, 606,
	80, 9, 2383, 80, 9, 914, 80, 9, 607, 80, 9, 433, 80, 9, 1154, 80,
	9, 51, 80, 9, 405, 80, 9, 3704, 80, 9, 446, 80, 9, 3404, 80, 9,
	614, 80, 9, 11342, 80, 9, 462, 80, 9, 1756, 80, 9, 871, 80, 9, 1887,
	80, 9, 3511, 80, 9, 8263, 80, 9, 8814, 80, 9, 1823, 80, 9, 7475, 80,
	9, 982, 80, 9, 842, 80, 9, 440, 80, 9, 487, 80, 9, 1555, 80, 9,
	6947, 80, 9, 448, 80, 9, 736, 80, 9, 710, 80, 9, 1902, 80, 9, 666,
	80, 9, 464, 80, 9, 739, 80, 9, 868, 80, 9, 1124, 80, 9, 984, 80,
	9, 1236, 80, 9, 753, 80, 9, 647, 80, 9, 2381, 80, 9, 2382, 80, 9,
	1085, 80, 9, 7491, 80, 9, 539, 80, 9, 492, 80, 9, 2399, 80, 9, 767,
	80, 9, 1877, 80, 383, 80, 426, 322, 80, 629, 56, 80, 9, 1628, 502, 80,
	9, 1628, 106, 80, 9, 1628, 1680, 80, 16, 7299, 80, 16, 8149, 80, 16, 10833,
	80, 16, 3718, 80, 16, 6141, 80, 16, 1810, 80, 16, 1348, 80, 16, 1780, 80,
	16, 7019, 80, 16, 8283, 80, 16, 10861, 80, 16, 725, 2, 68, 80, 16, 8057,
	80, 23, 254, 80, 23, 67, 80, 23, 70, 80, 23, 79, 80, 23, 93, 80,
	23, 100, 80, 23, 139, 80, 23, 157, 80, 23, 140, 80, 23, 160, 80, 9,
	1628, 182, 80, 9, 1628, 725, 57, 10, 5, 4227, 57, 7, 5, 4227, 57, 10,
	5, 1799, 57, 7, 5, 1799, 57, 10, 5, 261, 1205, 57, 7, 5, 261, 1205,
	57, 10, 5, 415, 57, 7, 5, 415, 57, 10, 5, 2190, 57, 7, 5, 2190,
	57, 10, 5, 2359, 1506, 57, 7, 5, 2359, 1506, 57, 10, 5, 3135, 327, 57,
	7, 5, 3135, 327, 57, 10, 5, 497, 1712, 57, 7, 5, 497, 1712, 57, 10,
	5, 1064, 8, 870, 1712, 57, 7, 5, 1064, 8, 870, 1712, 57, 10, 5, 851,
	1178, 57, 7, 5, 851, 1178, 57, 10, 5, 261, 402, 57, 7, 5, 261, 402,
	57, 10, 5, 851, 24, 57, 7, 5, 851, 24, 57, 10, 5, 468, 338, 601,
	57, 7, 5, 468, 338, 601, 57, 10, 5, 3115, 601, 57, 7, 5, 3115, 601,
	57, 10, 5, 851, 468, 338, 601, 57, 7, 5, 851, 468, 338, 601, 57, 10,
	5, 1519, 57, 7, 5, 1519, 57, 10, 5, 261, 930, 57, 7, 5, 261, 930,
	57, 10, 5, 926, 710, 57, 7, 5, 926, 710, 57, 10, 5, 926, 712, 57,
	7, 5, 926, 712, 57, 10, 5, 926, 714, 57, 7, 5, 926, 714, 57, 10,
	5, 1896, 68, 57, 7, 5, 1896, 68, 57, 10, 5, 3109, 68, 57, 7, 5,
	3109, 68, 57, 10, 5, 55, 1896, 68, 57, 7, 5, 55, 1896, 68, 57, 5,
	8926, 68, 43, 57, 11282, 43, 57, 280, 1325, 6, 43, 57, 159, 1325, 6, 43,
	57, 203, 1325, 6, 10438, 467, 43, 57, 5, 1702, 832, 43, 57, 5, 73, 43,
	57, 5, 14, 43, 57, 5, 60, 43, 57, 5, 1086, 6, 43, 57, 5, 1064,
	43, 57, 5, 926, 6, 43, 57, 5, 327, 43, 57, 1148, 43, 57, 3802, 57,
	1148, 57, 3802, 57, 10, 5, 2199, 57, 7, 5, 2199, 57, 10, 5, 3273, 57,
	7, 5, 3273, 57, 10, 5, 4228, 57, 7, 5, 4228, 57, 10, 5, 2139, 57,
	7, 5, 2139, 57, 10, 5, 3274, 57, 7, 5, 3274, 57, 10, 5, 440, 8,
	94, 99, 57, 7, 5, 440, 8, 94, 99, 57, 10, 5, 1700, 57, 7, 5,
	1700, 57, 10, 5, 4117, 57, 7, 5, 4117, 57, 10, 5, 4115, 57, 7, 5,
	4115, 57, 10, 5, 4062, 57, 7, 5, 4062, 57, 10, 5, 2268, 57, 7, 5,
	2268, 57, 10, 5, 1341, 57, 7, 5, 1341, 57, 10, 5, 55, 68, 57, 7,
	5, 55, 68, 57, 10, 5, 723, 68, 57, 7, 5, 723, 68, 75, 5, 57,
	1086, 6, 75, 5, 57, 926, 6, 43, 57, 5, 1077, 43, 57, 5, 851, 51,
	33, 5, 24, 33, 5, 106, 33, 5, 60, 33, 5, 620, 33, 5, 496, 33,
	5, 1665, 33, 5, 2537, 33, 5, 68, 33, 5, 920, 33, 5, 73, 33, 5,
	202, 33, 5, 119, 33, 5, 1956, 33, 5, 3903, 33, 5, 3542, 33, 5, 2350,
	33, 5, 1348, 33, 5, 1901, 33, 5, 2389, 33, 5, 205, 33, 5, 1992, 33,
	5, 460, 33, 5, 1970, 33, 5, 632, 33, 5, 3958, 33, 5, 2481, 33, 5,
	1871, 33, 5, 1319, 33, 5, 3740, 33, 5, 555, 33, 5, 3726, 33, 5, 2035,
	33, 5, 895, 33, 5, 2611, 33, 5, 179, 33, 5, 2393, 33, 5, 3488, 33,
	5, 2427, 33, 5, 1634, 33, 5, 2395, 33, 5, 3853, 33, 5, 2600, 33, 5,
	1155, 33, 5, 1305, 33, 5, 630, 33, 5, 679, 33, 5, 540, 33, 5, 493,
	33, 5, 2459, 33, 5, 1474, 33, 5, 1438, 33, 5, 3713, 33, 5, 1631, 33,
	5, 312, 33, 5, 1050, 33, 5, 2442, 33, 5, 1140, 33, 5, 2227, 33, 5,
	286, 33, 5, 185, 33, 5, 365, 33, 5, 427, 33, 5, 1883, 33, 5, 606,
	33, 5, 3638, 33, 5, 1955, 33, 5, 1038, 33, 5, 182, 33, 5, 686, 33,
	5, 571, 33, 5, 607, 33, 5, 1451, 33, 5, 1356, 33, 5, 1611, 33, 5,
	280, 33, 5, 3738, 33, 5, 3930, 33, 5, 7272, 33, 5, 8258, 33, 5, 8241,
	33, 43, 56, 8252, 33, 43, 56, 10951, 33, 3721, 33, 426, 322, 33, 577, 33,
	383, 33, 1000, 33, 629, 56, 75, 5, 1073, 110, 1179, 2430, 75, 5, 1073, 110,
	1008, 2430, 75, 5, 1073, 110, 1179, 3952, 75, 5, 1073, 110, 1008, 3952, 75, 5,
	1073, 110, 1179, 1662, 75, 5, 1073, 110, 1008, 1662, 75, 5, 1073, 110, 1179, 630,
	75, 5, 1073, 110, 1008, 630, 75, 5, 1137, 2, 156, 478, 110, 146, 75, 5,
	156, 478, 110, 146, 75, 5, 1039, 478, 110, 146, 75, 5, 145, 478, 110, 146,
	75, 5, 1137, 2, 145, 478, 110, 146, 75, 5, 1137, 2, 156, 478, 48, 2,
	749, 110, 146, 75, 5, 156, 478, 48, 2, 749, 110, 146, 75, 5, 1039, 478,
	48, 2, 749, 110, 146, 75, 5, 145, 478, 48, 2, 749, 110, 146, 75, 5,
	1137, 2, 145, 478, 48, 2, 749, 110, 146, 75, 5, 1137, 2, 156, 48, 2,
	749, 110, 146, 75, 5, 156, 48, 2, 749, 110, 146, 75, 5, 1039, 48, 2,
	749, 110, 146, 75, 5, 145, 48, 2, 749, 110, 146, 75, 5, 1137, 2, 145,
	48, 2, 749, 110, 146, 75, 5, 77, 86, 146, 75, 5, 77, 860, 75, 5,
	77, 135, 146, 75, 5, 134, 45, 536, 293, 75, 5, 564, 111, 36, 75, 5,
	564, 130, 36, 75, 5, 564, 672, 56, 75, 5, 564, 359, 672, 56, 75, 5,
	145, 359, 672, 56, 75, 5, 1683, 34, 156, 110, 75, 5, 1683, 34, 145, 110,
	12, 10, 5, 1801, 144, 12, 7, 5, 1801, 144, 12, 10, 5, 1801, 475, 12,
	7, 5, 1801, 475, 12, 10, 5, 1587, 12, 7, 5, 1587, 12, 10, 5, 4135,
	12, 7, 5, 4135, 12, 10, 5, 4102, 12, 7, 5, 4102, 12, 10, 5, 1777,
	12, 7, 5, 1777, 12, 10, 5, 1777, 8, 383, 12, 7, 5, 1777, 8, 383,
	12, 5, 7, 10, 176, 12, 5, 7, 10, 121, 12, 10, 5, 263, 12, 7,
	5, 263, 12, 10, 5, 1743, 12, 7, 5, 1743, 12, 10, 5, 313, 12, 7,
	5, 313, 12, 10, 5, 1373, 12, 7, 5, 1373, 12, 10, 5, 1373, 8, 135,
	146, 12, 7, 5, 1373, 8, 135, 146, 12, 10, 5, 971, 12, 7, 5, 971,
	12, 10, 5, 261, 104, 8, 77, 12, 7, 5, 261, 104, 8, 77, 12, 10,
	5, 227, 8, 89, 12, 7, 5, 227, 8, 89, 12, 10, 5, 227, 8, 186,
	89, 12, 7, 5, 227, 8, 186, 89, 12, 10, 5, 227, 8, 89, 34, 186,
	89, 12, 7, 5, 227, 8, 89, 34, 186, 89, 12, 10, 5, 1383, 136, 12,
	7, 5, 1383, 136, 12, 10, 5, 136, 8, 156, 89, 12, 7, 5, 136, 8,
	156, 89, 12, 10, 5, 68, 8, 187, 89, 715, 12, 7, 5, 68, 8, 187,
	89, 715, 12, 10, 5, 68, 8, 658, 12, 7, 5, 68, 8, 658, 12, 10,
	5, 454, 12, 7, 5, 454, 12, 10, 5, 249, 8, 89, 896, 510, 12, 7,
	5, 249, 8, 89, 896, 510, 12, 10, 5, 249, 8, 1572, 12, 7, 5, 249,
	8, 1572, 12, 10, 5, 249, 8, 4017, 323, 12, 7, 5, 249, 8, 4017, 323,
	12, 10, 5, 389, 8, 89, 896, 510, 12, 7, 5, 389, 8, 89, 896, 510,
	12, 10, 5, 389, 8, 186, 89, 12, 7, 5, 389, 8, 186, 89, 12, 10,
	5, 122, 1671, 12, 7, 5, 122, 1671, 12, 10, 5, 1958, 1671, 12, 7, 5,
	1958, 1671, 12, 10, 5, 229, 8, 186, 89, 12, 7, 5, 229, 8, 186, 89,
	12, 10, 5, 2586, 12, 7, 5, 2586, 12, 10, 5, 4161, 250, 12, 7, 5,
	4161, 250, 12, 10, 5, 1265, 8, 89, 12, 7, 5, 1265, 8, 89, 12, 10,
	5, 1265, 8, 89, 896, 510, 12, 7, 5, 1265, 8, 89, 896, 510, 12, 10,
	5, 4154, 12, 7, 5, 4154, 12, 10, 5, 945, 12, 7, 5, 945, 12, 10,
	5, 1216, 12, 7, 5, 1216, 12, 10, 5, 3179, 12, 7, 5, 3179, 75, 5,
	2018, 12, 7, 5, 7038, 12, 7, 5, 989, 12, 7, 5, 8927, 12, 7, 5,
	9360, 12, 7, 5, 1958, 12, 5, 7, 10, 1958, 12, 7, 5, 1698, 12, 7,
	5, 1059, 12, 10, 5, 763, 98, 12, 7, 5, 763, 98, 12, 10, 5, 763,
	176, 12, 7, 5, 763, 176, 12, 10, 5, 763, 220, 12, 10, 5, 191, 763,
	220, 12, 7, 5, 191, 763, 220, 12, 10, 5, 191, 136, 12, 7, 5, 191,
	136, 12, 10, 5, 763, 122, 12, 7, 5, 763, 122, 12, 10, 5, 763, 121,
	12, 7, 5, 763, 121, 12, 10, 5, 763, 221, 12, 7, 5, 763, 221, 75,
	5, 145, 294, 344, 75, 5, 577, 75, 5, 295, 545, 6, 12, 10, 5, 3929,
	12, 7, 5, 3929, 12, 10, 5, 191, 235, 12, 7, 5, 136, 8, 499, 99,
	34, 1015, 12, 5, 10421, 77, 12, 10, 5, 151, 8, 510, 12, 7, 5, 151,
	8, 510, 12, 10, 5, 104, 8, 146, 12, 7, 5, 104, 8, 146, 12, 7,
	5, 104, 8, 626, 99, 12, 7, 5, 235, 8, 626, 99, 12, 10, 5, 71,
	8, 1572, 12, 7, 5, 71, 8, 1572, 12, 10, 5, 176, 8, 89, 12, 7,
	5, 176, 8, 89, 12, 10, 5, 1510, 543, 12, 7, 5, 1510, 543, 12, 10,
	5, 1510, 485, 12, 7, 5, 1510, 485, 12, 10, 5, 1510, 719, 12, 7, 5,
	1510, 719, 12, 10, 5, 220, 8, 834, 89, 12, 7, 5, 220, 8, 834, 89,
	12, 10, 5, 227, 8, 834, 89, 12, 7, 5, 227, 8, 834, 89, 12, 10,
	5, 151, 8, 834, 89, 12, 7, 5, 151, 8, 834, 89, 12, 10, 5, 122,
	8, 834, 89, 12, 7, 5, 122, 8, 834, 89, 12, 10, 5, 121, 8, 834,
	89, 12, 7, 5, 121, 8, 834, 89, 12, 10, 5, 235, 8, 99, 12, 10,
	5, 261, 189, 51, 12, 10, 5, 35, 220, 12, 10, 5, 136, 8, 1015, 12,
	10, 5, 7, 10, 73, 12, 5, 7, 10, 389, 12, 10, 5, 191, 227, 12,
	10, 5, 191, 221, 12, 10, 5, 278, 8, 723, 2, 323, 12, 10, 5, 671,
	12, 10, 5, 779, 12, 7, 5, 779, 12, 10, 5, 327, 12, 7, 5, 327,
	12, 10, 5, 60, 8, 89, 12, 7, 5, 60, 8, 89, 12, 10, 5, 552,
	24, 12, 7, 5, 552, 24, 12, 10, 5, 552, 73, 12, 7, 5, 552, 73,
	12, 10, 5, 552, 60, 12, 7, 5, 552, 60, 12, 10, 5, 50, 2435, 68,
	12, 7, 5, 50, 2435, 68, 12, 10, 5, 3043, 290, 12, 7, 5, 3043, 290,
	12, 10, 5, 104, 8, 626, 99, 12, 10, 5, 121, 8, 99, 12, 10, 5,
	250, 8, 626, 99, 12, 10, 5, 98, 8, 295, 89, 715, 12, 7, 5, 98,
	8, 295, 89, 715, 12, 10, 5, 121, 8, 295, 89, 715, 12, 7, 5, 121,
	8, 295, 89, 715, 12, 10, 5, 468, 763, 220, 12, 7, 5, 468, 763, 220,
	12, 7, 5, 55, 1265, 12, 7, 5, 55, 2028, 12, 10, 5, 94, 3939, 121,
	12, 7, 5, 94, 3939, 121, 12, 10, 5, 3977, 121, 12, 7, 5, 3977, 121,
	75, 5, 10, 104, 75, 5, 10, 176, 75, 5, 10, 389, 12, 10, 5, 261,
	133, 235, 12, 7, 5, 261, 133, 235, 12, 1407, 5, 791, 73, 75, 5, 10,
	235, 8, 89, 75, 5, 7, 44, 485, 12, 5, 7, 10, 191, 205, 12, 1407,
	5, 261, 176, 12, 1407, 5, 261, 249, 12, 1407, 5, 359, 205, 12, 1407, 5,
	73, 1882, 12, 1407, 5, 507, 205, 482, 480, 5, 24, 482, 480, 5, 73, 482,
	480, 6, 7056, 482, 480, 5, 60, 482, 480, 5, 51, 482, 480, 5, 68, 482,
	480, 6, 3399, 482, 480, 5, 606, 482, 480, 5, 986, 482, 480, 5, 914, 482,
	480, 5, 3373, 482, 480, 6, 419, 482, 480, 5, 976, 482, 480, 5, 1017, 482,
	480, 5, 1031, 482, 480, 5, 8023, 482, 480, 5, 2573, 482, 480, 5, 2011, 482,
	480, 5, 2179, 482, 480, 5, 3221, 482, 480, 5, 83, 482, 480, 5, 750, 482,
	480, 5, 725, 482, 480, 5, 3239, 482, 480, 5, 433, 482, 480, 5, 808, 482,
	480, 5, 1042, 482, 480, 5, 973, 482, 480, 5, 3104, 482, 480, 5, 607, 482,
	480, 5, 585, 482, 480, 5, 765, 482, 480, 5, 3917, 482, 480, 5, 574, 482,
	480, 5, 553, 482, 480, 26, 6, 24, 482, 480, 26, 6, 73, 482, 480, 26,
	6, 60, 482, 480, 26, 6, 51, 482, 480, 26, 6, 454, 482, 480, 1935, 56,
	2, 291, 482, 480, 1935, 56, 2, 192, 482, 480, 1935, 56, 2, 273, 482, 480,
	1935, 56, 2, 349, 482, 480, 6, 506, 3399, 214, 204, 234, 67, 516, 214, 204,
	234, 67, 133, 214, 204, 234, 79, 890, 214, 204, 234, 67, 1254, 214, 204, 234,
	67, 511, 214, 204, 234, 79, 1978, 214, 204, 516, 56, 214, 204, 2432, 56, 214,
	204, 1247, 56, 214, 204, 9923, 56, 409, 2, 119, 5, 106, 409, 2, 119, 5,
	361, 409, 2, 119, 5, 224, 409, 2, 119, 5, 312, 409, 2, 119, 5, 325,
	409, 2, 119, 5, 358, 409, 2, 119, 5, 317, 409, 2, 119, 5, 363, 409,
	2, 119, 5, 196, 409, 2, 119, 5, 386, 409, 2, 119, 5, 217, 409, 2,
	119, 5, 185, 409, 2, 119, 5, 119, 409, 2, 119, 5, 412, 409, 2, 119,
	5, 251, 409, 2, 119, 5, 182, 409, 2, 119, 5, 612, 409, 2, 119, 5,
	897, 409, 2, 119, 5, 942, 409, 2, 119, 5, 286, 409, 2, 119, 5, 740,
	409, 2, 119, 5, 443, 409, 2, 119, 5, 7, 24, 409, 2, 119, 5, 179,
	409, 2, 119, 5, 173, 409, 2, 119, 5, 202, 409, 2, 119, 5, 321, 409,
	2, 119, 5, 195, 409, 2, 119, 5, 143, 409, 2, 119, 5, 24, 409, 2,
	119, 5, 73, 409, 2, 119, 5, 60, 409, 2, 119, 5, 51, 409, 2, 119,
	5, 68, 409, 2, 119, 5, 768, 409, 2, 119, 5, 899, 409, 2, 119, 5,
	502, 409, 2, 119, 5, 1417, 409, 2, 119, 5, 496, 409, 2, 119, 279, 5,
	286, 409, 2, 119, 279, 5, 179, 409, 2, 119, 5, 436, 409, 2, 119, 5,
	500, 409, 2, 119, 5, 437, 409, 2, 119, 5, 481, 409, 2, 119, 5, 506,
	179, 409, 2, 119, 5, 11250, 321, 409, 2, 119, 5, 966, 143, 409, 2, 119,
	5, 5871, 502, 409, 2, 119, 279, 5, 173, 409, 2, 119, 10616, 5, 173, 409,
	2, 119, 5, 559, 409, 2, 119, 271, 618, 56, 409, 2, 119, 55, 618, 56,
	409, 2, 119, 56, 858, 409, 2, 119, 56, 55, 858, 288, 6, 419, 288, 6,
	534, 288, 5, 24, 288, 5, 263, 288, 5, 73, 288, 5, 300, 288, 5, 60,
	288, 5, 324, 288, 5, 149, 122, 288, 5, 149, 517, 288, 5, 149, 136, 288,
	5, 149, 554, 288, 5, 51, 288, 5, 496, 288, 5, 292, 288, 5, 68, 288,
	5, 454, 288, 5, 313, 288, 5, 106, 288, 5, 361, 288, 5, 224, 288, 5,
	459, 288, 5, 312, 288, 5, 325, 288, 5, 358, 288, 5, 317, 288, 5, 547,
	288, 5, 363, 288, 5, 436, 288, 5, 500, 288, 5, 437, 288, 5, 509, 288,
	5, 481, 288, 5, 196, 288, 5, 386, 288, 5, 217, 288, 5, 453, 288, 5,
	185, 288, 5, 119, 288, 5, 412, 288, 5, 251, 288, 5, 483, 288, 5, 182,
	288, 5, 179, 288, 5, 173, 288, 5, 202, 288, 5, 413, 288, 5, 321, 288,
	5, 518, 288, 5, 195, 288, 5, 143, 288, 5, 657, 288, 267, 6, 7655, 288,
	26, 6, 263, 288, 26, 6, 73, 288, 26, 6, 300, 288, 26, 6, 60, 288,
	26, 6, 324, 288, 26, 6, 149, 122, 288, 26, 6, 149, 517, 288, 26, 6,
	149, 136, 288, 26, 6, 149, 554, 288, 26, 6, 51, 288, 26, 6, 496, 288,
	26, 6, 292, 288, 26, 6, 68, 288, 26, 6, 454, 288, 26, 6, 313, 288,
	6, 505, 288, 6, 559, 288, 604, 288, 55, 604, 288, 23, 254, 288, 23, 67,
	288, 23, 70, 288, 23, 79, 288, 23, 93, 288, 23, 100, 288, 23, 139, 288,
	23, 157, 288, 23, 140, 288, 23, 160, 43, 137, 23, 254, 43, 137, 23, 67,
	43, 137, 23, 70, 43, 137, 23, 79, 43, 137, 23, 93, 43, 137, 23, 100,
	43, 137, 23, 139, 43, 137, 23, 157, 43, 137, 23, 140, 43, 137, 23, 160,
	43, 137, 5, 24, 43, 137, 5, 60, 43, 137, 5, 106, 43, 137, 5, 185,
	43, 137, 5, 119, 43, 137, 5, 173, 43, 137, 5, 1175, 43, 137, 6, 844,
	137, 6, 2505, 559, 137, 6, 559, 505, 137, 6, 55, 559, 505, 137, 6, 559,
	70, 137, 6, 559, 79, 137, 6, 559, 844, 137, 6, 9859, 137, 1416, 1026, 137,
	1072, 137, 2258, 137, 6, 238, 137, 8006, 954, 137, 5, 971, 137, 26, 6, 971,
	430, 365, 23, 254, 430, 365, 23, 67, 430, 365, 23, 70, 430, 365, 23, 79,
	430, 365, 23, 93, 430, 365, 23, 100, 430, 365, 23, 139, 430, 365, 23, 157,
	430, 365, 23, 140, 430, 365, 23, 160, 430, 365, 5, 106, 430, 365, 5, 361,
	430, 365, 5, 224, 430, 365, 5, 312, 430, 365, 5, 195, 430, 365, 5, 321,
	430, 365, 5, 443, 430, 365, 5, 363, 430, 365, 5, 196, 430, 365, 5, 3426,
	430, 365, 5, 185, 430, 365, 5, 119, 430, 365, 5, 412, 430, 365, 5, 182,
	430, 365, 5, 217, 430, 365, 5, 251, 430, 365, 5, 173, 430, 365, 5, 179,
	430, 365, 5, 202, 430, 365, 5, 286, 430, 365, 5, 386, 430, 365, 5, 143,
	430, 365, 5, 413, 430, 365, 5, 325, 430, 365, 5, 24, 430, 365, 5, 485,
	430, 365, 5, 73, 430, 365, 5, 454, 430, 365, 26, 719, 430, 365, 26, 51,
	430, 365, 26, 60, 430, 365, 26, 496, 430, 365, 26, 68, 430, 365, 110, 3834,
	430, 365, 110, 3145, 430, 365, 110, 3145, 3834, 430, 365, 6, 2172, 430, 365, 6,
	10399, 541, 5, 106, 541, 5, 224, 541, 5, 312, 541, 5, 196, 541, 5, 217,
	541, 5, 185, 541, 5, 119, 541, 5, 251, 541, 5, 182, 541, 5, 325, 541,
	5, 317, 541, 5, 363, 541, 5, 195, 541, 5, 173, 541, 5, 202, 541, 5,
	179, 541, 5, 286, 541, 5, 143, 541, 5, 1617, 541, 5, 1631, 541, 5, 1457,
	541, 5, 9386, 541, 5, 24, 541, 26, 6, 73, 541, 26, 6, 60, 541, 26,
	6, 51, 541, 26, 6, 292, 541, 26, 6, 68, 541, 26, 6, 313, 541, 26,
	6, 761, 541, 26, 6, 2200, 541, 267, 6, 767, 541, 267, 6, 151, 541, 267,
	6, 122, 541, 267, 6, 235, 541, 505, 541, 532, 56, 40, 180, 495, 2, 503,
	40, 180, 495, 2, 334, 40, 180, 495, 2, 306, 40, 180, 495, 2, 645, 40,
	180, 308, 2, 469, 40, 180, 308, 2, 1345, 40, 180, 308, 2, 495, 40, 180,
	308, 2, 1489, 40, 180, 308, 2, 503, 40, 180, 308, 2, 334, 40, 180, 308,
	2, 1488, 40, 180, 308, 2, 1317, 40, 180, 308, 2, 306, 40, 180, 308, 2,
	645, 40, 180, 308, 2, 853, 40, 180, 503, 2, 469, 40, 180, 503, 2, 495,
	40, 180, 503, 2, 306, 40, 180, 334, 2, 306, 2, 770, 40, 180, 334, 2,
	853, 40, 180, 334, 2, 537, 40, 180, 1053, 2, 334, 40, 180, 677, 2, 308,
	40, 180, 677, 2, 537, 40, 180, 1681, 2, 537, 40, 180, 10517, 40, 180, 735,
	2, 537, 40, 180, 537, 2, 306, 40, 180, 10518, 256, 6, 9629, 256, 6, 3157,
	256, 6, 8382, 256, 6, 11354, 256, 5, 24, 256, 5, 73, 8141, 256, 5, 73,
	256, 5, 300, 256, 5, 60, 256, 5, 119, 6434, 256, 5, 312, 3545, 256, 5,
	312, 3545, 10019, 256, 5, 51, 256, 5, 292, 256, 5, 68, 256, 5, 106, 256,
	5, 106, 1248, 256, 5, 106, 991, 256, 5, 224, 256, 5, 224, 991, 256, 5,
	312, 256, 5, 325, 256, 5, 325, 991, 256, 5, 317, 256, 5, 363, 991, 256,
	5, 317, 1227, 256, 5, 363, 256, 5, 436, 256, 5, 436, 1227, 256, 5, 437,
	256, 5, 437, 1227, 256, 5, 185, 991, 256, 5, 196, 256, 5, 196, 991, 256,
	5, 217, 256, 5, 217, 1227, 256, 5, 185, 256, 5, 119, 256, 5, 119, 991,
	256, 5, 251, 256, 5, 251, 991, 256, 5, 182, 256, 5, 179, 256, 5, 173,
	256, 5, 173, 5745, 256, 5, 202, 256, 5, 286, 256, 5, 195, 991, 256, 5,
	195, 1227, 256, 5, 195, 256, 5, 143, 256, 6, 3157, 10765, 256, 26, 6, 10741,
	256, 26, 6, 10857, 256, 26, 6, 4188, 256, 26, 6, 4188, 8775, 256, 26, 6,
	1990, 256, 26, 6, 1990, 8780, 256, 26, 6, 1686, 256, 26, 6, 6983, 8939, 256,
	26, 6, 2424, 256, 267, 6, 8159, 256, 267, 6, 9679, 256, 267, 6, 3144, 256,
	9621, 256, 48, 3894, 256, 45, 3894, 256, 957, 5796, 256, 957, 8681, 256, 957, 8478,
	256, 957, 4182, 256, 957, 9620, 256, 957, 8436, 256, 957, 8481, 256, 957, 1525, 256,
	957, 1525, 1525, 256, 957, 3828, 256, 191, 957, 3828, 256, 9624, 256, 23, 254, 256,
	23, 67, 256, 23, 70, 256, 23, 79, 256, 23, 93, 256, 23, 100, 256, 23,
	139, 256, 23, 157, 256, 23, 140, 256, 23, 160, 256, 957, 10839, 10955, 256, 957,
	3453, 2, 3453, 97, 5, 474, 459, 97, 5, 474, 358, 97, 5, 474, 547, 97,
	5, 474, 481, 97, 5, 474, 483, 97, 6, 474, 2470, 97, 75, 5, 474, 3889,
	97, 5, 72, 678, 363, 97, 5, 72, 678, 502, 97, 5, 72, 678, 224, 97,
	5, 72, 678, 459, 97, 5, 72, 678, 317, 97, 5, 72, 678, 547, 97, 5,
	72, 678, 437, 97, 5, 72, 678, 509, 97, 5, 72, 678, 481, 97, 72, 678,
	23, 254, 97, 72, 678, 23, 67, 97, 72, 678, 23, 70, 97, 72, 678, 23,
	79, 97, 72, 678, 23, 93, 97, 72, 678, 23, 100, 97, 72, 678, 23, 139,
	97, 72, 678, 23, 157, 97, 72, 678, 23, 140, 97, 72, 678, 23, 160, 97,
	5, 72, 678, 657, 97, 5, 72, 678, 217, 97, 5, 72, 678, 453, 97, 5,
	72, 678, 251, 97, 5, 72, 678, 483, 282, 5, 24, 282, 5, 73, 282, 5,
	60, 282, 5, 51, 282, 5, 292, 282, 5, 68, 282, 5, 106, 282, 5, 361,
	282, 5, 224, 282, 5, 459, 282, 5, 9156, 282, 5, 312, 282, 5, 358, 282,
	5, 6472, 282, 5, 317, 282, 5, 547, 282, 5, 9166, 282, 5, 1459, 282, 5,
	9165, 282, 5, 196, 282, 5, 386, 282, 5, 217, 282, 5, 453, 282, 5, 9359,
	282, 5, 185, 282, 5, 437, 282, 5, 119, 282, 5, 9799, 282, 5, 412, 282,
	5, 251, 282, 5, 483, 282, 5, 8918, 282, 5, 182, 282, 5, 1289, 282, 5,
	179, 282, 5, 173, 282, 5, 202, 282, 5, 413, 282, 5, 518, 282, 5, 195,
	282, 5, 143, 282, 26, 6, 263, 282, 26, 6, 73, 282, 26, 6, 300, 282,
	26, 6, 1133, 282, 26, 6, 60, 282, 26, 6, 485, 282, 26, 6, 68, 282,
	26, 6, 292, 282, 26, 6, 313, 282, 26, 6, 719, 282, 267, 6, 179, 282,
	267, 6, 173, 282, 267, 6, 202, 282, 267, 6, 286, 282, 5, 69, 227, 282,
	5, 69, 220, 282, 5, 69, 767, 282, 267, 6, 69, 767, 282, 5, 69, 3162,
	282, 5, 69, 221, 282, 5, 69, 151, 282, 5, 69, 249, 282, 5, 69, 218,
	282, 5, 69, 122, 282, 5, 69, 136, 282, 5, 69, 1987, 282, 267, 6, 69,
	205, 282, 267, 6, 69, 235, 282, 23, 254, 282, 23, 67, 282, 23, 70, 282,
	23, 79, 282, 23, 93, 282, 23, 100, 282, 23, 139, 282, 23, 157, 282, 23,
	140, 282, 23, 160, 282, 225, 1344, 282, 225, 604, 282, 225, 55, 604, 282, 225,
	392, 604, 97, 5, 690, 224, 97, 5, 690, 325, 97, 5, 690, 358, 97, 5,
	690, 317, 97, 5, 690, 547, 97, 5, 690, 363, 97, 5, 690, 436, 97, 5,
	690, 500, 97, 5, 690, 437, 97, 5, 690, 509, 97, 5, 690, 453, 97, 5,
	690, 185, 97, 5, 690, 195, 97, 5, 690, 143, 97, 5, 690, 1144, 97, 5,
	690, 502, 97, 75, 5, 690, 3889, 97, 5, 690, 899, 97, 5, 690, 443, 97,
	5, 690, 173, 97, 1225, 690, 3759, 97, 1225, 690, 9916, 97, 1225, 690, 7777, 97,
	16, 1370, 672, 97, 16, 1370, 67, 97, 16, 1370, 70, 97, 5, 1370, 173, 97,
	6, 9633, 805, 110, 97, 6, 72, 678, 110, 2, 192, 97, 6, 72, 678, 110,
	2, 387, 97, 5, 1341, 1922, 358, 97, 5, 1341, 1922, 321, 72, 329, 5, 145,
	606, 72, 329, 5, 156, 606, 72, 329, 5, 145, 986, 72, 329, 5, 156, 986,
	72, 329, 5, 145, 3497, 72, 329, 5, 156, 3497, 72, 329, 5, 145, 914, 72,
	329, 5, 156, 914, 72, 329, 5, 145, 1328, 72, 329, 5, 156, 1328, 72, 329,
	5, 145, 976, 72, 329, 5, 156, 976, 72, 329, 5, 145, 1017, 72, 329, 5,
	156, 1017, 72, 329, 5, 145, 574, 72, 329, 5, 156, 574, 72, 329, 5, 145,
	1154, 72, 329, 5, 156, 1154, 72, 329, 5, 145, 725, 72, 329, 5, 156, 725,
	72, 329, 5, 145, 83, 72, 329, 5, 156, 83, 72, 329, 5, 145, 750, 72,
	329, 5, 156, 750, 72, 329, 5, 145, 433, 72, 329, 5, 156, 433, 72, 329,
	5, 145, 973, 72, 329, 5, 156, 973, 72, 329, 5, 145, 808, 72, 329, 5,
	156, 808, 72, 329, 5, 145, 1042, 72, 329, 5, 156, 1042, 72, 329, 5, 145,
	1028, 72, 329, 5, 156, 1028, 72, 329, 5, 145, 607, 72, 329, 5, 156, 607,
	72, 329, 5, 145, 416, 72, 329, 5, 156, 416, 72, 329, 5, 145, 585, 72,
	329, 5, 156, 585, 72, 329, 5, 145, 765, 72, 329, 5, 156, 765, 72, 329,
	5, 145, 1113, 72, 329, 5, 156, 1113, 72, 329, 5, 145, 553, 72, 329, 5,
	156, 553, 72, 329, 5, 145, 68, 72, 329, 5, 156, 68, 72, 329, 732, 1851,
	72, 329, 26, 263, 72, 329, 26, 73, 72, 329, 26, 719, 72, 329, 26, 60,
	72, 329, 26, 51, 72, 329, 26, 68, 72, 329, 732, 8183, 72, 329, 26, 1840,
	72, 329, 26, 11047, 72, 329, 26, 1505, 72, 329, 26, 3067, 72, 329, 26, 971,
	72, 329, 26, 524, 72, 329, 26, 1067, 72, 329, 110, 732, 1404, 72, 329, 110,
	732, 3741, 72, 329, 110, 732, 750, 72, 329, 110, 732, 10465, 72, 329, 16, 3506,
	72, 329, 16, 3741, 72, 329, 16, 2468, 72, 329, 16, 553, 7831, 72, 329, 16,
	2307, 2307, 302, 301, 5, 51, 302, 301, 5, 68, 302, 301, 5, 358, 302, 301,
	5, 363, 302, 301, 5, 436, 302, 301, 5, 500, 302, 301, 5, 437, 302, 301,
	5, 509, 302, 301, 5, 481, 302, 301, 5, 321, 302, 301, 5, 518, 302, 301,
	26, 6, 300, 302, 301, 26, 6, 324, 302, 301, 26, 6, 3010, 302, 301, 26,
	6, 313, 302, 301, 26, 6, 5619, 302, 301, 6459, 302, 301, 5748, 8191, 302, 301,
	2100, 302, 301, 9, 1666, 56, 302, 301, 720, 1666, 56, 302, 301, 26, 6, 534,
	302, 301, 505, 47, 9, 10935, 47, 9, 4121, 47, 9, 2572, 47, 9, 10933, 47,
	9, 4120, 47, 9, 2011, 47, 9, 6880, 47, 9, 6879, 47, 9, 3220, 47, 9,
	6878, 47, 9, 6877, 47, 9, 3221, 47, 9, 3271, 47, 9, 3268, 47, 9, 7063,
	47, 9, 3266, 47, 9, 1205, 47, 9, 3270, 47, 9, 6404, 47, 9, 6410, 47,
	9, 6408, 47, 9, 6405, 47, 9, 6407, 47, 9, 6406, 47, 9, 6409, 47, 9,
	1289, 47, 9, 3093, 47, 9, 3091, 47, 9, 6160, 47, 9, 6164, 47, 9, 1536,
	47, 9, 3092, 12, 7, 5, 845, 331, 12, 7, 5, 24, 261, 2, 998, 12,
	7, 5, 2121, 51, 12, 7, 5, 845, 51, 12, 7, 5, 51, 8, 1572, 12,
	7, 5, 3546, 176, 12, 7, 5, 35, 220, 8, 723, 2, 323, 12, 7, 5,
	136, 8, 359, 2319, 121, 12, 7, 5, 136, 8, 55, 94, 211, 12, 7, 5,
	136, 8, 94, 190, 12, 7, 5, 205, 8, 723, 2, 323, 12, 7, 5, 151,
	8, 723, 2, 323, 12, 7, 5, 980, 8, 723, 2, 323, 12, 7, 5, 2121,
	68, 12, 7, 5, 2121, 68, 8, 89, 12, 7, 5, 189, 68, 8, 89, 12,
	7, 5, 359, 485, 12, 7, 5, 191, 485, 8, 89, 12, 7, 5, 191, 485,
	8, 135, 89, 12, 7, 5, 191, 68, 189, 2, 68, 12, 7, 5, 191, 68,
	189, 2, 68, 8, 89, 12, 7, 5, 10570, 122, 12, 5, 7, 10, 122, 8,
	45, 764, 12, 7, 5, 122, 1707, 3398, 12, 7, 5, 55, 122, 12, 7, 5,
	122, 8, 723, 2, 323, 12, 7, 5, 55, 122, 8, 723, 2, 323, 12, 7,
	5, 35, 122, 12, 7, 5, 35, 122, 8, 190, 12, 7, 5, 3087, 785, 12,
	7, 5, 60, 8, 295, 45, 764, 12, 7, 5, 60, 146, 8, 295, 45, 764,
	12, 7, 5, 2015, 12, 7, 5, 191, 2015, 12, 7, 5, 60, 8, 48, 99,
	12, 7, 5, 671, 12, 7, 5, 671, 8, 145, 45, 190, 12, 7, 5, 671,
	8, 145, 48, 64, 12, 7, 5, 268, 8, 145, 45, 190, 12, 7, 5, 268,
	8, 187, 48, 764, 12, 7, 5, 268, 8, 187, 48, 764, 34, 145, 45, 190,
	12, 7, 5, 268, 8, 187, 48, 764, 8, 64, 12, 7, 5, 218, 8, 295,
	45, 764, 75, 393, 8, 359, 393, 75, 5, 7, 1587, 75, 5, 7, 136, 8,
	359, 2319, 121, 75, 5, 7, 136, 8, 94, 211, 75, 5, 7, 60, 8, 48,
	99, 12, 7, 5, 10232, 1178, 12, 7, 5, 851, 51, 12, 7, 5, 189, 485,
	12, 7, 5, 4146, 12, 7, 5, 359, 331, 46, 5, 7, 10, 327, 12, 7,
	5, 1076, 590, 8, 499, 99, 12, 7, 5, 2008, 590, 8, 499, 99, 12, 7,
	5, 191, 122, 8, 94, 211, 75, 5, 7, 191, 290, 75, 5, 48, 558, 75,
	5, 45, 558, 128, 7, 5, 24, 128, 7, 5, 51, 128, 7, 5, 73, 128,
	7, 5, 68, 128, 7, 5, 60, 128, 7, 5, 229, 128, 7, 5, 224, 128,
	7, 5, 106, 128, 7, 5, 1085, 128, 7, 5, 703, 128, 7, 5, 914, 128,
	7, 5, 828, 128, 7, 5, 3389, 128, 7, 5, 143, 128, 7, 5, 446, 128,
	7, 5, 479, 128, 7, 5, 553, 128, 7, 5, 831, 128, 7, 5, 1839, 128,
	7, 5, 202, 128, 7, 5, 448, 128, 7, 5, 365, 128, 7, 5, 765, 128,
	7, 5, 679, 128, 7, 5, 3571, 128, 7, 5, 182, 128, 7, 5, 539, 128,
	7, 5, 540, 128, 7, 5, 607, 128, 7, 5, 460, 128, 7, 5, 185, 128,
	7, 5, 2263, 128, 7, 5, 2370, 128, 7, 5, 492, 128, 7, 5, 493, 128,
	7, 5, 433, 128, 7, 5, 555, 128, 7, 5, 2397, 128, 7, 5, 3865, 128,
	7, 5, 3866, 128, 7, 5, 3867, 128, 7, 5, 2452, 128, 7, 5, 2453, 128,
	7, 5, 3870, 128, 7, 5, 195, 128, 7, 5, 121, 128, 7, 5, 666, 128,
	7, 5, 632, 128, 7, 5, 574, 128, 7, 5, 611, 128, 7, 5, 2530, 128,
	7, 5, 217, 128, 7, 5, 196, 128, 7, 5, 710, 128, 7, 5, 440, 128,
	7, 5, 783, 128, 7, 5, 686, 128, 7, 5, 725, 128, 7, 5, 784, 128,
	7, 5, 3264, 128, 7, 5, 1793, 128, 7, 5, 2556, 128, 7, 5, 2557, 128,
	7, 5, 2559, 128, 7, 5, 2560, 128, 7, 5, 2561, 128, 7, 5, 4090, 128,
	7, 5, 612, 128, 7, 5, 930, 128, 7, 5, 1359, 128, 7, 5, 2009, 128,
	7, 5, 2010, 128, 7, 5, 4116, 128, 7, 5, 286, 128, 7, 5, 614, 128,
	7, 5, 668, 128, 7, 5, 588, 128, 7, 5, 1063, 128, 7, 5, 4190, 128,
	7, 5, 179, 302, 301, 5, 3505, 302, 301, 5, 2468, 302, 301, 5, 1872, 302,
	301, 5, 2356, 302, 301, 5, 119, 302, 301, 5, 185, 302, 301, 5, 6475, 302,
	301, 5, 2554, 302, 301, 5, 8188, 302, 301, 5, 3716, 302, 301, 5, 10806, 302,
	301, 5, 11321, 302, 301, 5, 1008, 302, 301, 5, 7854, 302, 301, 5, 1173, 302,
	301, 5, 73, 302, 301, 5, 9706, 302, 301, 5, 5886, 302, 301, 5, 7585, 302,
	301, 5, 8021, 302, 301, 5, 10007, 302, 301, 5, 251, 302, 301, 5, 1599, 302,
	301, 5, 6972, 302, 301, 5, 7551, 302, 301, 5, 6956, 302, 301, 5, 6213, 302,
	301, 5, 3505, 1226, 302, 301, 5, 1872, 1226, 302, 301, 5, 2356, 1226, 302, 301,
	5, 119, 1226, 302, 301, 5, 185, 1226, 302, 301, 5, 2554, 1226, 302, 301, 5,
	3716, 1226, 302, 301, 5, 73, 1226, 302, 301, 26, 6, 9533, 302, 301, 26, 6,
	7954, 302, 301, 26, 6, 5793, 302, 301, 26, 6, 11502, 302, 301, 26, 6, 10472,
	302, 301, 26, 6, 11067, 302, 301, 26, 6, 6461, 302, 301, 26, 6, 2396, 302,
	301, 6460, 302, 301, 989, 3456, 302, 301, 5836, 3456, 302, 301, 23, 254, 302, 301,
	23, 67, 302, 301, 23, 70, 302, 301, 23, 79, 302, 301, 23, 93, 302, 301,
	23, 100, 302, 301, 23, 139, 302, 301, 23, 157, 302, 301, 23, 140, 302, 301,
	23, 160, 40, 248, 68, 2, 1009, 40, 248, 68, 2, 68, 2, 73, 40, 248,
	416, 2, 24, 40, 248, 416, 2, 543, 40, 248, 416, 2, 909, 40, 248, 60,
	2, 1009, 40, 248, 60, 2, 73, 2, 73, 40, 248, 402, 2, 543, 40, 248,
	402, 2, 68, 40, 248, 761, 2, 24, 40, 248, 761, 2, 909, 40, 248, 761,
	2, 51, 40, 248, 761, 2, 68, 40, 248, 73, 2, 179, 2, 68, 40, 248,
	73, 2, 1177, 40, 248, 73, 2, 1009, 40, 248, 73, 2, 753, 40, 248, 73,
	2, 68, 2, 73, 40, 248, 73, 2, 416, 40, 248, 73, 2, 402, 40, 248,
	73, 2, 73, 40, 248, 1187, 2, 24, 40, 248, 1187, 2, 51, 40, 165, 528,
	2, 308, 40, 165, 528, 2, 781, 40, 165, 1489, 40, 165, 1489, 2, 334, 40,
	165, 495, 2, 334, 40, 165, 495, 2, 306, 40, 165, 495, 2, 306, 2, 469,
	40, 165, 495, 2, 645, 40, 165, 495, 2, 781, 40, 165, 495, 2, 770, 40,
	165, 308, 2, 1345, 40, 165, 308, 2, 469, 2, 537, 40, 165, 2509, 2, 853,
	40, 165, 308, 2, 503, 2, 537, 40, 165, 308, 2, 334, 2, 495, 40, 165,
	308, 2, 334, 2, 735, 40, 165, 308, 2, 1115, 40, 165, 308, 2, 1518, 2,
	537, 40, 165, 3478, 40, 165, 503, 2, 528, 40, 165, 503, 2, 1988, 40, 165,
	10516, 40, 165, 503, 2, 334, 2, 306, 40, 165, 503, 2, 645, 40, 165, 334,
	2, 495, 40, 165, 334, 2, 308, 2, 735, 40, 165, 334, 2, 503, 40, 165,
	1488, 40, 165, 334, 2, 306, 2, 495, 40, 165, 334, 2, 645, 40, 165, 334,
	2, 781, 40, 165, 306, 2, 503, 40, 165, 306, 2, 1317, 40, 165, 1053, 2,
	469, 40, 165, 1053, 2, 495, 40, 165, 306, 2, 889, 40, 165, 306, 2, 645,
	40, 165, 306, 2, 781, 40, 165, 306, 2, 770, 40, 165, 306, 2, 537, 40,
	165, 889, 2, 334, 40, 165, 889, 2, 1317, 40, 165, 1115, 2, 503, 40, 165,
	1115, 2, 537, 40, 165, 645, 2, 334, 40, 165, 645, 2, 1488, 40, 165, 1681,
	40, 165, 735, 2, 306, 40, 165, 735, 2, 770, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 12, 7, 44, 7310, 12, 7, 44, 1023, 12, 7, 44, 7329, 12, 7,
	44, 7311, 12, 7, 44, 7312, 12, 7, 44, 187, 121, 221, 12, 7, 44, 2513,
	242, 7, 44, 1038, 1908, 242, 7, 44, 1038, 1403, 242, 7, 44, 1038, 2276, 242,
	7, 44, 2585, 1908, 242, 7, 44, 1038, 2601, 167, 5, 1116, 8, 3413, 167, 665,
	8063, 2, 10480, 11202, 167, 44, 2033, 1116, 1116, 1926, 167, 5, 2098, 821, 167, 5,
	424, 144, 167, 5, 424, 1779, 167, 5, 424, 446, 167, 5, 424, 439, 167, 5,
	424, 1873, 167, 5, 424, 69, 746, 167, 5, 424, 810, 167, 5, 424, 2539, 167,
	5, 2098, 120, 6, 167, 5, 573, 8, 573, 77, 167, 5, 573, 8, 1977, 77,
	167, 5, 573, 8, 701, 34, 573, 77, 167, 5, 573, 8, 701, 34, 1977, 77,
	167, 5, 144, 8, 1926, 167, 5, 144, 8, 1943, 167, 5, 144, 8, 2340, 167,
	5, 1379, 8, 701, 167, 5, 827, 8, 701, 167, 5, 1779, 8, 701, 167, 5,
	446, 8, 2340, 167, 5, 1509, 8, 701, 167, 5, 901, 8, 701, 167, 5, 1356,
	8, 701, 167, 5, 1116, 8, 701, 167, 5, 69, 439, 8, 701, 167, 5, 439,
	8, 701, 167, 5, 1873, 8, 701, 167, 5, 746, 8, 701, 167, 5, 394, 8,
	701, 167, 5, 857, 8, 701, 167, 5, 69, 462, 8, 701, 167, 5, 462, 8,
	701, 167, 5, 2569, 8, 701, 167, 5, 2450, 8, 701, 167, 5, 810, 8, 701,
	167, 5, 573, 8, 701, 167, 5, 2539, 8, 701, 167, 5, 1509, 8, 2264, 167,
	5, 1379, 8, 1949, 167, 5, 439, 8, 1949, 167, 5, 462, 8, 1949, 167, 44,
	144, 1873, 13, 5, 144, 2022, 92, 25, 13, 5, 144, 2022, 69, 25, 13, 5,
	1537, 92, 25, 13, 5, 1537, 69, 25, 13, 5, 1537, 105, 25, 13, 5, 1537,
	236, 25, 13, 5, 1156, 92, 25, 13, 5, 1156, 69, 25, 13, 5, 1156, 105,
	25, 13, 5, 1156, 236, 25, 13, 5, 1538, 92, 25, 13, 5, 1538, 69, 25,
	13, 5, 1538, 105, 25, 13, 5, 1538, 236, 25, 13, 5, 1697, 92, 25, 13,
	5, 1697, 69, 25, 13, 5, 1697, 105, 25, 13, 5, 1697, 236, 25, 13, 5,
	1688, 92, 25, 13, 5, 1688, 69, 25, 13, 5, 1688, 105, 25, 13, 5, 1688,
	236, 25, 13, 5, 1503, 92, 25, 13, 5, 1503, 69, 25, 13, 5, 1503, 105,
	25, 13, 5, 1503, 236, 25, 13, 5, 1704, 92, 25, 13, 5, 1704, 69, 25,
	13, 5, 1704, 105, 25, 13, 5, 1704, 236, 25, 13, 5, 1650, 92, 25, 13,
	5, 1650, 69, 25, 13, 5, 1650, 105, 25, 13, 5, 1650, 236, 25, 13, 5,
	1561, 92, 25, 13, 5, 1561, 69, 25, 13, 5, 1561, 105, 25, 13, 5, 1561,
	236, 25, 13, 5, 1638, 92, 25, 13, 5, 1638, 69, 25, 13, 5, 1638, 105,
	25, 13, 5, 1638, 236, 25, 13, 5, 1353, 92, 25, 13, 5, 1353, 69, 25,
	13, 5, 1353, 105, 25, 13, 5, 1353, 236, 25, 13, 5, 1687, 92, 25, 13,
	5, 1687, 69, 25, 13, 5, 1687, 105, 25, 13, 5, 1687, 236, 25, 13, 5,
	2176, 92, 25, 13, 5, 2176, 69, 25, 13, 5, 2173, 92, 25, 13, 5, 2173,
	69, 25, 13, 5, 2197, 92, 25, 13, 5, 2197, 69, 25, 13, 5, 2177, 92,
	25, 13, 5, 2177, 69, 25, 13, 5, 2288, 92, 25, 13, 5, 2288, 69, 25,
	13, 5, 2465, 92, 25, 13, 5, 2465, 69, 25, 13, 5, 985, 92, 25, 13,
	5, 985, 69, 25, 13, 5, 985, 105, 25, 13, 5, 985, 236, 25, 13, 5,
	1084, 92, 25, 13, 5, 1084, 69, 25, 13, 5, 1084, 105, 25, 13, 5, 1084,
	236, 25, 13, 5, 1586, 92, 25, 13, 5, 1586, 69, 25, 13, 5, 1586, 105,
	25, 13, 5, 1586, 236, 25, 13, 5, 1632, 92, 25, 13, 5, 1632, 69, 25,
	13, 5, 1632, 105, 25, 13, 5, 1632, 236, 25, 13, 5, 355, 1580, 92, 25,
	13, 5, 355, 1580, 69, 25, 13, 5, 1668, 92, 25, 13, 5, 1668, 69, 25,
	13, 5, 1668, 105, 25, 13, 5, 1668, 236, 25, 13, 5, 447, 8, 115, 53,
	92, 25, 13, 5, 447, 8, 115, 53, 69, 25, 13, 5, 447, 1212, 92, 25,
	13, 5, 447, 1212, 69, 25, 13, 5, 447, 1212, 105, 25, 13, 5, 447, 1212,
	236, 25, 13, 5, 447, 1558, 92, 25, 13, 5, 447, 1558, 69, 25, 13, 5,
	447, 1558, 105, 25, 13, 5, 447, 1558, 236, 25, 13, 5, 115, 1120, 92, 25,
	13, 5, 115, 1120, 69, 25, 13, 5, 115, 1120, 8, 299, 53, 92, 25, 13,
	5, 115, 1120, 8, 299, 53, 69, 25, 13, 16, 77, 53, 13, 16, 77, 76,
	13, 16, 70, 63, 53, 13, 16, 70, 63, 76, 13, 16, 79, 63, 53, 13,
	16, 79, 63, 76, 13, 16, 79, 63, 142, 209, 53, 13, 16, 79, 63, 142,
	209, 76, 13, 16, 93, 63, 53, 13, 16, 93, 63, 76, 13, 16, 55, 86,
	146, 76, 13, 16, 70, 63, 1273, 53, 13, 16, 70, 63, 1273, 76, 13, 16,
	190, 13, 16, 7, 520, 53, 13, 16, 7, 520, 76, 13, 16, 2022, 53, 13,
	5, 767, 92, 25, 13, 5, 767, 69, 25, 13, 5, 767, 105, 25, 13, 5,
	767, 236, 25, 13, 5, 60, 92, 25, 13, 5, 60, 69, 25, 13, 5, 485,
	92, 25, 13, 5, 485, 69, 25, 13, 5, 402, 92, 25, 13, 5, 402, 69,
	25, 13, 5, 60, 8, 299, 53, 92, 25, 13, 5, 842, 92, 25, 13, 5,
	842, 69, 25, 13, 5, 1033, 485, 92, 25, 13, 5, 1033, 485, 69, 25, 13,
	5, 1033, 402, 92, 25, 13, 5, 1033, 402, 69, 25, 13, 5, 51, 92, 25,
	13, 5, 51, 69, 25, 13, 5, 51, 105, 25, 13, 5, 51, 236, 25, 13,
	5, 1701, 3482, 1033, 144, 346, 105, 25, 13, 5, 1701, 3482, 1033, 144, 346, 236,
	25, 13, 44, 115, 8, 299, 53, 8, 144, 92, 25, 13, 44, 115, 8, 299,
	53, 8, 144, 69, 25, 13, 44, 115, 8, 299, 53, 8, 543, 92, 25, 13,
	44, 115, 8, 299, 53, 8, 543, 69, 25, 13, 44, 115, 8, 299, 53, 8,
	488, 92, 25, 13, 44, 115, 8, 299, 53, 8, 488, 69, 25, 13, 44, 115,
	8, 299, 53, 8, 60, 92, 25, 13, 44, 115, 8, 299, 53, 8, 60, 69,
	25, 13, 44, 115, 8, 299, 53, 8, 485, 92, 25, 13, 44, 115, 8, 299,
	53, 8, 485, 69, 25, 13, 44, 115, 8, 299, 53, 8, 402, 92, 25, 13,
	44, 115, 8, 299, 53, 8, 402, 69, 25, 13, 44, 115, 8, 299, 53, 8,
	51, 92, 25, 13, 44, 115, 8, 299, 53, 8, 51, 69, 25, 13, 44, 115,
	8, 299, 53, 8, 51, 105, 25, 13, 44, 1701, 1033, 115, 8, 299, 53, 8,
	144, 346, 92, 25, 13, 44, 1701, 1033, 115, 8, 299, 53, 8, 144, 346, 69,
	25, 13, 44, 1701, 1033, 115, 8, 299, 53, 8, 144, 346, 105, 25, 13, 5,
	911, 115, 92, 25, 13, 5, 911, 115, 69, 25, 13, 5, 911, 115, 105, 25,
	13, 5, 911, 115, 236, 25, 13, 44, 115, 8, 299, 53, 8, 223, 92, 25,
	13, 44, 115, 8, 299, 53, 8, 199, 92, 25, 13, 44, 115, 8, 299, 53,
	8, 108, 92, 25, 13, 44, 115, 8, 299, 53, 8, 144, 346, 92, 25, 13,
	44, 115, 8, 299, 53, 8, 115, 92, 25, 13, 44, 476, 8, 223, 92, 25,
	13, 44, 476, 8, 199, 92, 25, 13, 44, 476, 8, 351, 92, 25, 13, 44,
	476, 8, 108, 92, 25, 13, 44, 476, 8, 144, 346, 92, 25, 13, 44, 476,
	8, 115, 92, 25, 13, 44, 423, 8, 223, 92, 25, 13, 44, 423, 8, 199,
	92, 25, 13, 44, 423, 8, 351, 92, 25, 13, 44, 423, 8, 108, 92, 25,
	13, 44, 423, 8, 144, 346, 92, 25, 13, 44, 423, 8, 115, 92, 25, 13,
	44, 708, 8, 223, 92, 25, 13, 44, 708, 8, 108, 92, 25, 13, 44, 708,
	8, 144, 346, 92, 25, 13, 44, 708, 8, 115, 92, 25, 13, 44, 223, 8,
	199, 92, 25, 13, 44, 223, 8, 108, 92, 25, 13, 44, 199, 8, 223, 92,
	25, 13, 44, 199, 8, 108, 92, 25, 13, 44, 351, 8, 223, 92, 25, 13,
	44, 351, 8, 199, 92, 25, 13, 44, 351, 8, 108, 92, 25, 13, 44, 435,
	8, 223, 92, 25, 13, 44, 435, 8, 199, 92, 25, 13, 44, 435, 8, 351,
	92, 25, 13, 44, 435, 8, 108, 92, 25, 13, 44, 565, 8, 199, 92, 25,
	13, 44, 565, 8, 108, 92, 25, 13, 44, 579, 8, 223, 92, 25, 13, 44,
	579, 8, 199, 92, 25, 13, 44, 579, 8, 351, 92, 25, 13, 44, 579, 8,
	108, 92, 25, 13, 44, 520, 8, 199, 92, 25, 13, 44, 520, 8, 108, 92,
	25, 13, 44, 934, 8, 108, 92, 25, 13, 44, 475, 8, 223, 92, 25, 13,
	44, 475, 8, 108, 92, 25, 13, 44, 674, 8, 223, 92, 25, 13, 44, 674,
	8, 108, 92, 25, 13, 44, 526, 8, 223, 92, 25, 13, 44, 526, 8, 199,
	92, 25, 13, 44, 526, 8, 351, 92, 25, 13, 44, 526, 8, 108, 92, 25,
	13, 44, 526, 8, 144, 346, 92, 25, 13, 44, 526, 8, 115, 92, 25, 13,
	44, 549, 8, 199, 92, 25, 13, 44, 549, 8, 108, 92, 25, 13, 44, 549,
	8, 144, 346, 92, 25, 13, 44, 549, 8, 115, 92, 25, 13, 44, 439, 8,
	144, 92, 25, 13, 44, 439, 8, 223, 92, 25, 13, 44, 439, 8, 199, 92,
	25, 13, 44, 439, 8, 351, 92, 25, 13, 44, 439, 8, 318, 92, 25, 13,
	44, 439, 8, 108, 92, 25, 13, 44, 439, 8, 144, 346, 92, 25, 13, 44,
	439, 8, 115, 92, 25, 13, 44, 318, 8, 223, 92, 25, 13, 44, 318, 8,
	199, 92, 25, 13, 44, 318, 8, 351, 92, 25, 13, 44, 318, 8, 108, 92,
	25, 13, 44, 318, 8, 144, 346, 92, 25, 13, 44, 318, 8, 115, 92, 25,
	13, 44, 108, 8, 223, 92, 25, 13, 44, 108, 8, 199, 92, 25, 13, 44,
	108, 8, 351, 92, 25, 13, 44, 108, 8, 108, 92, 25, 13, 44, 108, 8,
	144, 346, 92, 25, 13, 44, 108, 8, 115, 92, 25, 13, 44, 355, 8, 223,
	92, 25, 13, 44, 355, 8, 199, 92, 25, 13, 44, 355, 8, 351, 92, 25,
	13, 44, 355, 8, 108, 92, 25, 13, 44, 355, 8, 144, 346, 92, 25, 13,
	44, 355, 8, 115, 92, 25, 13, 44, 447, 8, 223, 92, 25, 13, 44, 447,
	8, 108, 92, 25, 13, 44, 447, 8, 144, 346, 92, 25, 13, 44, 447, 8,
	115, 92, 25, 13, 44, 115, 8, 223, 92, 25, 13, 44, 115, 8, 199, 92,
	25, 13, 44, 115, 8, 351, 92, 25, 13, 44, 115, 8, 108, 92, 25, 13,
	44, 115, 8, 144, 346, 92, 25, 13, 44, 115, 8, 115, 92, 25, 13, 44,
	1263, 8, 651, 144, 92, 25, 13, 44, 531, 8, 651, 144, 92, 25, 13, 44,
	144, 346, 8, 651, 144, 92, 25, 13, 44, 924, 8, 1554, 92, 25, 13, 44,
	924, 8, 1605, 92, 25, 13, 44, 924, 8, 912, 92, 25, 13, 44, 924, 8,
	1021, 92, 25, 13, 44, 924, 8, 916, 92, 25, 13, 44, 924, 8, 651, 144,
	92, 25, 13, 44, 115, 8, 299, 53, 8, 531, 69, 25, 13, 44, 115, 8,
	299, 53, 8, 867, 69, 25, 13, 44, 115, 8, 299, 53, 8, 108, 69, 25,
	13, 44, 115, 8, 299, 53, 8, 355, 69, 25, 13, 44, 115, 8, 299, 53,
	8, 144, 346, 69, 25, 13, 44, 115, 8, 299, 53, 8, 115, 69, 25, 13,
	44, 476, 8, 531, 69, 25, 13, 44, 476, 8, 867, 69, 25, 13, 44, 476,
	8, 108, 69, 25, 13, 44, 476, 8, 355, 69, 25, 13, 44, 476, 8, 144,
	346, 69, 25, 13, 44, 476, 8, 115, 69, 25, 13, 44, 423, 8, 531, 69,
	25, 13, 44, 423, 8, 867, 69, 25, 13, 44, 423, 8, 108, 69, 25, 13,
	44, 423, 8, 355, 69, 25, 13, 44, 423, 8, 144, 346, 69, 25, 13, 44,
	423, 8, 115, 69, 25, 13, 44, 708, 8, 531, 69, 25, 13, 44, 708, 8,
	867, 69, 25, 13, 44, 708, 8, 108, 69, 25, 13, 44, 708, 8, 355, 69,
	25, 13, 44, 708, 8, 144, 346, 69, 25, 13, 44, 708, 8, 115, 69, 25,
	13, 44, 526, 8, 144, 346, 69, 25, 13, 44, 526, 8, 115, 69, 25, 13,
	44, 549, 8, 144, 346, 69, 25, 13, 44, 549, 8, 115, 69, 25, 13, 44,
	439, 8, 144, 69, 25, 13, 44, 439, 8, 318, 69, 25, 13, 44, 439, 8,
	108, 69, 25, 13, 44, 439, 8, 144, 346, 69, 25, 13, 44, 439, 8, 115,
	69, 25, 13, 44, 318, 8, 108, 69, 25, 13, 44, 318, 8, 144, 346, 69,
	25, 13, 44, 318, 8, 115, 69, 25, 13, 44, 108, 8, 144, 69, 25, 13,
	44, 108, 8, 108, 69, 25, 13, 44, 355, 8, 531, 69, 25, 13, 44, 355,
	8, 867, 69, 25, 13, 44, 355, 8, 108, 69, 25, 13, 44, 355, 8, 355,
	69, 25, 13, 44, 355, 8, 144, 346, 69, 25, 13, 44, 355, 8, 115, 69,
	25, 13, 44, 144, 346, 8, 651, 144, 69, 25, 13, 44, 115, 8, 531, 69,
	25, 13, 44, 115, 8, 867, 69, 25, 13, 44, 115, 8, 108, 69, 25, 13,
	44, 115, 8, 355, 69, 25, 13, 44, 115, 8, 144, 346, 69, 25, 13, 44,
	115, 8, 115, 69, 25, 13, 44, 115, 8, 299, 53, 8, 223, 105, 25, 13,
	44, 115, 8, 299, 53, 8, 199, 105, 25, 13, 44, 115, 8, 299, 53, 8,
	351, 105, 25, 13, 44, 115, 8, 299, 53, 8, 108, 105, 25, 13, 44, 115,
	8, 299, 53, 8, 447, 105, 25, 13, 44, 476, 8, 223, 105, 25, 13, 44,
	476, 8, 199, 105, 25, 13, 44, 476, 8, 351, 105, 25, 13, 44, 476, 8,
	108, 105, 25, 13, 44, 476, 8, 447, 105, 25, 13, 44, 423, 8, 223, 105,
	25, 13, 44, 423, 8, 199, 105, 25, 13, 44, 423, 8, 351, 105, 25, 13,
	44, 423, 8, 108, 105, 25, 13, 44, 423, 8, 447, 105, 25, 13, 44, 708,
	8, 108, 105, 25, 13, 44, 223, 8, 199, 105, 25, 13, 44, 223, 8, 108,
	105, 25, 13, 44, 199, 8, 223, 105, 25, 13, 44, 199, 8, 108, 105, 25,
	13, 44, 351, 8, 223, 105, 25, 13, 44, 351, 8, 108, 105, 25, 13, 44,
	435, 8, 223, 105, 25, 13, 44, 435, 8, 199, 105, 25, 13, 44, 435, 8,
	351, 105, 25, 13, 44, 435, 8, 108, 105, 25, 13, 44, 565, 8, 199, 105,
	25, 13, 44, 565, 8, 351, 105, 25, 13, 44, 565, 8, 108, 105, 25, 13,
	44, 579, 8, 223, 105, 25, 13, 44, 579, 8, 199, 105, 25, 13, 44, 579,
	8, 351, 105, 25, 13, 44, 579, 8, 108, 105, 25, 13, 44, 520, 8, 199,
	105, 25, 13, 44, 934, 8, 108, 105, 25, 13, 44, 475, 8, 223, 105, 25,
	13, 44, 475, 8, 108, 105, 25, 13, 44, 674, 8, 223, 105, 25, 13, 44,
	674, 8, 108, 105, 25, 13, 44, 526, 8, 223, 105, 25, 13, 44, 526, 8,
	199, 105, 25, 13, 44, 526, 8, 351, 105, 25, 13, 44, 526, 8, 108, 105,
	25, 13, 44, 549, 8, 199, 105, 25, 13, 44, 549, 8, 108, 105, 25, 13,
	44, 439, 8, 223, 105, 25, 13, 44, 439, 8, 199, 105, 25, 13, 44, 439,
	8, 351, 105, 25, 13, 44, 439, 8, 318, 105, 25, 13, 44, 439, 8, 108,
	105, 25, 13, 44, 318, 8, 223, 105, 25, 13, 44, 318, 8, 199, 105, 25,
	13, 44, 318, 8, 351, 105, 25, 13, 44, 318, 8, 108, 105, 25, 13, 44,
	318, 8, 447, 105, 25, 13, 44, 108, 8, 223, 105, 25, 13, 44, 108, 8,
	199, 105, 25, 13, 44, 108, 8, 351, 105, 25, 13, 44, 108, 8, 108, 105,
	25, 13, 44, 355, 8, 223, 105, 25, 13, 44, 355, 8, 199, 105, 25, 13,
	44, 355, 8, 351, 105, 25, 13, 44, 355, 8, 108, 105, 25, 13, 44, 355,
	8, 447, 105, 25, 13, 44, 447, 8, 223, 105, 25, 13, 44, 447, 8, 108,
	105, 25, 13, 44, 447, 8, 651, 144, 105, 25, 13, 44, 115, 8, 223, 105,
	25, 13, 44, 115, 8, 199, 105, 25, 13, 44, 115, 8, 351, 105, 25, 13,
	44, 115, 8, 108, 105, 25, 13, 44, 115, 8, 447, 105, 25, 13, 44, 115,
	8, 299, 53, 8, 108, 236, 25, 13, 44, 115, 8, 299, 53, 8, 447, 236,
	25, 13, 44, 476, 8, 108, 236, 25, 13, 44, 476, 8, 447, 236, 25, 13,
	44, 423, 8, 108, 236, 25, 13, 44, 423, 8, 447, 236, 25, 13, 44, 708,
	8, 108, 236, 25, 13, 44, 708, 8, 447, 236, 25, 13, 44, 435, 8, 108,
	236, 25, 13, 44, 435, 8, 447, 236, 25, 13, 44, 486, 8, 108, 236, 25,
	13, 44, 486, 8, 447, 236, 25, 13, 44, 439, 8, 318, 236, 25, 13, 44,
	439, 8, 108, 236, 25, 13, 44, 318, 8, 108, 236, 25, 13, 44, 355, 8,
	108, 236, 25, 13, 44, 355, 8, 447, 236, 25, 13, 44, 115, 8, 108, 236,
	25, 13, 44, 115, 8, 447, 236, 25, 13, 44, 924, 8, 912, 236, 25, 13,
	44, 924, 8, 1021, 236, 25, 13, 44, 924, 8, 916, 236, 25, 13, 44, 520,
	8, 144, 346, 92, 25, 13, 44, 520, 8, 115, 92, 25, 13, 44, 475, 8,
	144, 346, 92, 25, 13, 44, 475, 8, 115, 92, 25, 13, 44, 674, 8, 144,
	346, 92, 25, 13, 44, 674, 8, 115, 92, 25, 13, 44, 435, 8, 144, 346,
	92, 25, 13, 44, 435, 8, 115, 92, 25, 13, 44, 486, 8, 144, 346, 92,
	25, 13, 44, 486, 8, 115, 92, 25, 13, 44, 199, 8, 144, 346, 92, 25,
	13, 44, 199, 8, 115, 92, 25, 13, 44, 223, 8, 144, 346, 92, 25, 13,
	44, 223, 8, 115, 92, 25, 13, 44, 351, 8, 144, 346, 92, 25, 13, 44,
	351, 8, 115, 92, 25, 13, 44, 565, 8, 144, 346, 92, 25, 13, 44, 565,
	8, 115, 92, 25, 13, 44, 579, 8, 144, 346, 92, 25, 13, 44, 579, 8,
	115, 92, 25, 13, 44, 486, 8, 223, 92, 25, 13, 44, 486, 8, 199, 92,
	25, 13, 44, 486, 8, 351, 92, 25, 13, 44, 486, 8, 108, 92, 25, 13,
	44, 486, 8, 531, 92, 25, 13, 44, 435, 8, 531, 92, 25, 13, 44, 565,
	8, 531, 92, 25, 13, 44, 579, 8, 531, 92, 25, 13, 44, 520, 8, 144,
	346, 69, 25, 13, 44, 520, 8, 115, 69, 25, 13, 44, 475, 8, 144, 346,
	69, 25, 13, 44, 475, 8, 115, 69, 25, 13, 44, 674, 8, 144, 346, 69,
	25, 13, 44, 674, 8, 115, 69, 25, 13, 44, 435, 8, 144, 346, 69, 25,
	13, 44, 435, 8, 115, 69, 25, 13, 44, 486, 8, 144, 346, 69, 25, 13,
	44, 486, 8, 115, 69, 25, 13, 44, 199, 8, 144, 346, 69, 25, 13, 44,
	199, 8, 115, 69, 25, 13, 44, 223, 8, 144, 346, 69, 25, 13, 44, 223,
	8, 115, 69, 25, 13, 44, 351, 8, 144, 346, 69, 25, 13, 44, 351, 8,
	115, 69, 25, 13, 44, 565, 8, 144, 346, 69, 25, 13, 44, 565, 8, 115,
	69, 25, 13, 44, 579, 8, 144, 346, 69, 25, 13, 44, 579, 8, 115, 69,
	25, 13, 44, 486, 8, 223, 69, 25, 13, 44, 486, 8, 199, 69, 25, 13,
	44, 486, 8, 351, 69, 25, 13, 44, 486, 8, 108, 69, 25, 13, 44, 486,
	8, 531, 69, 25, 13, 44, 435, 8, 531, 69, 25, 13, 44, 565, 8, 531,
	69, 25, 13, 44, 579, 8, 531, 69, 25, 13, 44, 486, 8, 223, 105, 25,
	13, 44, 486, 8, 199, 105, 25, 13, 44, 486, 8, 351, 105, 25, 13, 44,
	486, 8, 108, 105, 25, 13, 44, 435, 8, 447, 105, 25, 13, 44, 486, 8,
	447, 105, 25, 13, 44, 520, 8, 108, 105, 25, 13, 44, 435, 8, 223, 236,
	25, 13, 44, 435, 8, 199, 236, 25, 13, 44, 435, 8, 351, 236, 25, 13,
	44, 486, 8, 223, 236, 25, 13, 44, 486, 8, 199, 236, 25, 13, 44, 486,
	8, 351, 236, 25, 13, 44, 520, 8, 108, 236, 25, 13, 44, 934, 8, 108,
	236, 25, 13, 44, 144, 8, 1303, 69, 25, 13, 44, 144, 8, 1303, 92, 25,
	3775, 48, 471, 3775, 45, 471, 13, 44, 10003, 3036, 13, 44, 1473, 1529, 5805, 13,
	44, 1473, 1529, 5806, 13, 44, 1473, 1529, 5808, 13, 44, 1473, 1529, 5809, 13, 44,
	1473, 1529, 5810, 13, 44, 10241, 1740, 286, 2, 5614, 13, 44, 1740, 755, 2, 1673,
	13, 44, 5768, 755, 2, 1673, 13, 44, 5769, 755, 2, 1673, 13, 44, 1740, 755,
	2, 10238, 11329, 2, 1673, 13, 44, 9926, 10425, 13, 44, 10242, 1740, 11315, 286, 2,
	10243, 13, 44, 5767, 755, 2, 1673, 13, 44, 10719, 286, 2, 4051, 13, 44, 10004,
	3036, 13, 44, 423, 8, 223, 8, 108, 105, 25, 13, 44, 423, 8, 199, 8,
	223, 69, 25, 13, 44, 423, 8, 199, 8, 223, 105, 25, 13, 44, 423, 8,
	199, 8, 108, 105, 25, 13, 44, 423, 8, 351, 8, 108, 105, 25, 13, 44,
	423, 8, 108, 8, 223, 105, 25, 13, 44, 423, 8, 108, 8, 199, 105, 25,
	13, 44, 423, 8, 108, 8, 351, 105, 25, 13, 44, 223, 8, 108, 8, 199,
	69, 25, 13, 44, 223, 8, 108, 8, 199, 105, 25, 13, 44, 199, 8, 108,
	8, 115, 69, 25, 13, 44, 199, 8, 108, 8, 144, 346, 69, 25, 13, 44,
	435, 8, 199, 8, 223, 105, 25, 13, 44, 435, 8, 223, 8, 199, 105, 25,
	13, 44, 435, 8, 223, 8, 144, 346, 69, 25, 13, 44, 435, 8, 108, 8,
	199, 69, 25, 13, 44, 435, 8, 108, 8, 199, 105, 25, 13, 44, 435, 8,
	108, 8, 223, 105, 25, 13, 44, 435, 8, 108, 8, 108, 69, 25, 13, 44,
	435, 8, 108, 8, 108, 105, 25, 13, 44, 565, 8, 199, 8, 199, 69, 25,
	13, 44, 565, 8, 199, 8, 199, 105, 25, 13, 44, 565, 8, 108, 8, 108,
	69, 25, 13, 44, 486, 8, 199, 8, 108, 69, 25, 13, 44, 486, 8, 199,
	8, 108, 105, 25, 13, 44, 486, 8, 223, 8, 115, 69, 25, 13, 44, 486,
	8, 108, 8, 351, 69, 25, 13, 44, 486, 8, 108, 8, 351, 105, 25, 13,
	44, 486, 8, 108, 8, 108, 69, 25, 13, 44, 486, 8, 108, 8, 108, 105,
	25, 13, 44, 579, 8, 199, 8, 144, 346, 69, 25, 13, 44, 579, 8, 351,
	8, 108, 69, 25, 13, 44, 579, 8, 351, 8, 108, 105, 25, 13, 44, 520,
	8, 108, 8, 199, 69, 25, 13, 44, 520, 8, 108, 8, 199, 105, 25, 13,
	44, 520, 8, 108, 8, 108, 105, 25, 13, 44, 520, 8, 108, 8, 115, 69,
	25, 13, 44, 475, 8, 223, 8, 108, 69, 25, 13, 44, 475, 8, 108, 8,
	108, 69, 25, 13, 44, 475, 8, 108, 8, 108, 105, 25, 13, 44, 475, 8,
	108, 8, 144, 346, 69, 25, 13, 44, 674, 8, 108, 8, 108, 69, 25, 13,
	44, 674, 8, 108, 8, 115, 69, 25, 13, 44, 674, 8, 108, 8, 144, 346,
	69, 25, 13, 44, 526, 8, 351, 8, 108, 69, 25, 13, 44, 526, 8, 351,
	8, 108, 105, 25, 13, 44, 549, 8, 108, 8, 199, 69, 25, 13, 44, 549,
	8, 108, 8, 108, 69, 25, 13, 44, 318, 8, 199, 8, 108, 69, 25, 13,
	44, 318, 8, 199, 8, 115, 69, 25, 13, 44, 318, 8, 199, 8, 144, 346,
	69, 25, 13, 44, 318, 8, 223, 8, 223, 105, 25, 13, 44, 318, 8, 223,
	8, 223, 69, 25, 13, 44, 318, 8, 351, 8, 108, 69, 25, 13, 44, 318,
	8, 351, 8, 108, 105, 25, 13, 44, 318, 8, 108, 8, 199, 69, 25, 13,
	44, 318, 8, 108, 8, 199, 105, 25, 13, 44, 108, 8, 199, 8, 223, 105,
	25, 13, 44, 108, 8, 199, 8, 108, 105, 25, 13, 44, 108, 8, 199, 8,
	115, 69, 25, 13, 44, 108, 8, 223, 8, 199, 105, 25, 13, 44, 108, 8,
	223, 8, 108, 105, 25, 13, 44, 108, 8, 351, 8, 223, 105, 25, 13, 44,
	108, 8, 351, 8, 108, 105, 25, 13, 44, 108, 8, 223, 8, 351, 105, 25,
	13, 44, 447, 8, 108, 8, 223, 105, 25, 13, 44, 447, 8, 108, 8, 108,
	105, 25, 13, 44, 355, 8, 199, 8, 108, 105, 25, 13, 44, 355, 8, 199,
	8, 144, 346, 69, 25, 13, 44, 355, 8, 223, 8, 108, 69, 25, 13, 44,
	355, 8, 223, 8, 108, 105, 25, 13, 44, 355, 8, 223, 8, 144, 346, 69,
	25, 13, 44, 355, 8, 108, 8, 115, 69, 25, 13, 44, 355, 8, 108, 8,
	144, 346, 69, 25, 13, 44, 115, 8, 108, 8, 108, 69, 25, 13, 44, 115,
	8, 108, 8, 108, 105, 25, 13, 44, 476, 8, 351, 8, 115, 69, 25, 13,
	44, 423, 8, 223, 8, 115, 69, 25, 13, 44, 423, 8, 223, 8, 144, 346,
	69, 25, 13, 44, 423, 8, 351, 8, 115, 69, 25, 13, 44, 423, 8, 351,
	8, 144, 346, 69, 25, 13, 44, 423, 8, 108, 8, 115, 69, 25, 13, 44,
	423, 8, 108, 8, 144, 346, 69, 25, 13, 44, 223, 8, 108, 8, 115, 69,
	25, 13, 44, 223, 8, 199, 8, 144, 346, 69, 25, 13, 44, 223, 8, 108,
	8, 144, 346, 69, 25, 13, 44, 435, 8, 351, 8, 144, 346, 69, 25, 13,
	44, 565, 8, 199, 8, 115, 69, 25, 13, 44, 486, 8, 199, 8, 115, 69,
	25, 13, 44, 579, 8, 199, 8, 115, 69, 25, 13, 44, 318, 8, 223, 8,
	115, 69, 25, 13, 44, 318, 8, 108, 8, 115, 69, 25, 13, 44, 115, 8,
	199, 8, 115, 69, 25, 13, 44, 115, 8, 223, 8, 115, 69, 25, 13, 44,
	115, 8, 108, 8, 115, 69, 25, 13, 44, 108, 8, 108, 8, 115, 69, 25,
	13, 44, 549, 8, 108, 8, 115, 69, 25, 13, 44, 355, 8, 199, 8, 115,
	69, 25, 13, 44, 549, 8, 108, 8, 199, 105, 25, 13, 44, 318, 8, 199,
	8, 108, 105, 25, 13, 44, 475, 8, 108, 8, 115, 69, 25, 13, 44, 439,
	8, 108, 8, 115, 69, 25, 13, 44, 355, 8, 223, 8, 199, 105, 25, 13,
	44, 108, 8, 351, 8, 115, 69, 25, 13, 44, 318, 8, 223, 8, 108, 105,
	25, 13, 44, 439, 8, 108, 8, 108, 69, 25, 13, 44, 318, 8, 223, 8,
	108, 69, 25, 13, 44, 355, 8, 223, 8, 199, 69, 25, 13, 44, 223, 8,
	199, 8, 115, 69, 25, 13, 44, 199, 8, 223, 8, 115, 69, 25, 13, 44,
	108, 8, 223, 8, 115, 69, 25, 13, 44, 526, 8, 108, 8, 115, 69, 25,
	13, 44, 476, 8, 199, 8, 115, 69, 25, 13, 44, 439, 8, 108, 8, 108,
	105, 25, 13, 44, 475, 8, 223, 8, 108, 105, 25, 13, 44, 565, 8, 108,
	8, 108, 105, 25, 13, 44, 435, 8, 351, 8, 115, 69, 25, 13, 44, 355,
	8, 223, 8, 115, 69, 25, 13, 44, 10237, 5770, 13, 44, 3927, 4149, 755, 3508,
	322, 6, 92, 25, 13, 44, 9885, 4149, 755, 3508, 322, 6, 92, 25, 13, 44,
	5775, 92, 25, 13, 44, 5762, 92, 25, 13, 44, 8882, 92, 25, 13, 44, 10240,
	92, 25, 13, 44, 10018, 92, 25, 13, 44, 1527, 92, 25, 13, 44, 4172, 92,
	25, 13, 44, 3927, 92, 25, 13, 44, 3928, 1527, 4172, 13, 44, 8008, 10068, 6,
	13, 44, 6240, 1186, 2, 10005, 1186, 2, 10002, 13, 44, 10598, 286, 4051, 13, 44,
	5915, 286, 8007, 85, 84, 2, 291, 85, 84, 2, 192, 85, 84, 2, 273, 85,
	84, 2, 349, 85, 84, 2, 387, 85, 84, 2, 466, 85, 84, 2, 568, 85,
	84, 2, 772, 85, 84, 2, 869, 85, 84, 2, 1278, 85, 84, 2, 1180, 85,
	84, 2, 1279, 85, 84, 2, 1280, 85, 84, 2, 1281, 85, 84, 2, 1365, 85,
	84, 2, 1366, 572, 25, 54, 86, 383, 572, 25, 54, 86, 188, 383, 572, 25,
	54, 86, 188, 426, 322, 572, 25, 54, 86, 577, 572, 25, 54, 86, 1000, 572,
	25, 54, 86, 672, 56, 572, 25, 54, 86, 629, 56, 572, 25, 54, 86, 48,
	81, 1221, 161, 572, 25, 54, 86, 45, 81, 1221, 6272, 572, 25, 54, 86, 135,
	1206, 43, 44, 48, 133, 43, 44, 45, 133, 43, 55, 211, 48, 133, 43, 55,
	211, 45, 133, 43, 320, 48, 133, 43, 320, 45, 133, 43, 3181, 320, 43, 44,
	48, 133, 76, 43, 44, 45, 133, 76, 43, 211, 48, 133, 76, 43, 211, 45,
	133, 76, 43, 320, 48, 133, 76, 43, 320, 45, 133, 76, 43, 3181, 320, 76,
	43, 57, 1693, 48, 133, 43, 57, 1693, 45, 133, 572, 25, 54, 86, 70, 77,
	2320, 572, 25, 54, 86, 714, 501, 572, 25, 54, 86, 405, 501, 572, 25, 54,
	86, 145, 245, 572, 25, 54, 86, 1060, 145, 245, 572, 25, 54, 86, 48, 471,
	572, 25, 54, 86, 45, 471, 572, 25, 54, 86, 48, 544, 161, 572, 25, 54,
	86, 45, 544, 161, 572, 25, 54, 86, 48, 687, 586, 161, 572, 25, 54, 86,
	45, 687, 586, 161, 572, 25, 54, 86, 48, 74, 1221, 161, 572, 25, 54, 86,
	45, 74, 1221, 161, 572, 25, 54, 86, 48, 55, 293, 161, 572, 25, 54, 86,
	45, 55, 293, 161, 572, 25, 54, 86, 48, 293, 161, 572, 25, 54, 86, 45,
	293, 161, 572, 25, 54, 86, 48, 536, 161, 572, 25, 54, 86, 45, 536, 161,
	572, 25, 54, 86, 48, 81, 536, 161, 572, 25, 54, 86, 45, 81, 536, 161,
	3947, 77, 81, 3947, 77, 572, 25, 54, 86, 48, 58, 161, 572, 25, 54, 86,
	45, 58, 161, 941, 1242, 3160, 1242, 1060, 1242, 55, 1060, 1242, 941, 145, 245, 3160,
	145, 245, 1060, 145, 245, 7, 383, 7, 188, 383, 7, 426, 322, 7, 1000, 7,
	577, 7, 629, 56, 7, 672, 56, 7, 714, 501, 7, 48, 471, 7, 45, 471,
	7, 48, 544, 161, 7, 45, 544, 161, 7, 48, 687, 586, 161, 7, 45, 687,
	586, 161, 7, 41, 6, 7, 1184, 7, 467, 7, 120, 6, 7, 850, 2, 661,
	7, 384, 2, 178, 6, 7, 376, 2, 178, 6, 7, 545, 6, 7, 747, 707,
	7, 1298, 6, 7, 1652, 6, 7, 1549, 653, 13, 1303, 92, 25, 13, 1496, 8,
	1303, 53, 13, 1554, 92, 25, 13, 323, 7362, 13, 1605, 92, 25, 13, 912, 92,
	25, 13, 912, 236, 25, 13, 1021, 92, 25, 13, 1021, 236, 25, 13, 916, 92,
	25, 13, 916, 236, 25, 13, 924, 92, 25, 13, 924, 236, 25, 13, 1260, 92,
	25, 13, 1260, 236, 25, 13, 5, 299, 92, 25, 13, 5, 144, 8, 1037, 53,
	92, 25, 13, 5, 144, 8, 1037, 53, 69, 25, 13, 5, 144, 8, 299, 53,
	92, 25, 13, 5, 144, 8, 299, 53, 69, 25, 13, 5, 488, 8, 299, 53,
	92, 25, 13, 5, 488, 8, 299, 53, 69, 25, 13, 5, 144, 8, 299, 76,
	92, 25, 13, 5, 144, 8, 299, 76, 69, 25, 13, 5, 115, 8, 299, 53,
	92, 25, 13, 5, 115, 8, 299, 53, 69, 25, 13, 5, 115, 8, 299, 53,
	105, 25, 13, 5, 115, 8, 299, 53, 236, 25, 13, 5, 144, 92, 25, 13,
	5, 144, 69, 25, 13, 5, 476, 92, 25, 13, 5, 476, 69, 25, 13, 5,
	476, 105, 25, 13, 5, 476, 236, 25, 13, 5, 423, 1886, 92, 25, 13, 5,
	423, 1886, 69, 25, 13, 5, 423, 92, 25, 13, 5, 423, 69, 25, 13, 5,
	423, 105, 25, 13, 5, 423, 236, 25, 13, 5, 708, 92, 25, 13, 5, 708,
	69, 25, 13, 5, 708, 105, 25, 13, 5, 708, 236, 25, 13, 5, 223, 92,
	25, 13, 5, 223, 69, 25, 13, 5, 223, 105, 25, 13, 5, 223, 236, 25,
	13, 5, 199, 92, 25, 13, 5, 199, 69, 25, 13, 5, 199, 105, 25, 13,
	5, 199, 236, 25, 13, 5, 351, 92, 25, 13, 5, 351, 69, 25, 13, 5,
	351, 105, 25, 13, 5, 351, 236, 25, 13, 5, 782, 92, 25, 13, 5, 782,
	69, 25, 13, 5, 1263, 92, 25, 13, 5, 1263, 69, 25, 13, 5, 531, 92,
	25, 13, 5, 531, 69, 25, 13, 5, 867, 92, 25, 13, 5, 867, 69, 25,
	13, 5, 435, 92, 25, 13, 5, 435, 69, 25, 13, 5, 435, 105, 25, 13,
	5, 435, 236, 25, 13, 5, 486, 92, 25, 13, 5, 486, 69, 25, 13, 5,
	486, 105, 25, 13, 5, 486, 236, 25, 13, 5, 565, 92, 25, 13, 5, 565,
	69, 25, 13, 5, 565, 105, 25, 13, 5, 565, 236, 25, 13, 5, 579, 92,
	25, 13, 5, 579, 69, 25, 13, 5, 579, 105, 25, 13, 5, 579, 236, 25,
	13, 5, 520, 92, 25, 13, 5, 520, 69, 25, 13, 5, 520, 105, 25, 13,
	5, 520, 236, 25, 13, 5, 934, 92, 25, 13, 5, 934, 69, 25, 13, 5,
	934, 105, 25, 13, 5, 934, 236, 25, 13, 5, 475, 92, 25, 13, 5, 475,
	69, 25, 13, 5, 475, 105, 25, 13, 5, 475, 236, 25, 13, 5, 674, 92,
	25, 13, 5, 674, 69, 25, 13, 5, 674, 105, 25, 13, 5, 674, 236, 25,
	13, 5, 526, 92, 25, 13, 5, 526, 69, 25, 13, 5, 526, 105, 25, 13,
	5, 526, 236, 25, 13, 5, 549, 92, 25, 13, 5, 549, 69, 25, 13, 5,
	549, 105, 25, 13, 5, 549, 236, 25, 13, 5, 439, 92, 25, 13, 5, 439,
	69, 25, 13, 5, 439, 105, 25, 13, 5, 439, 236, 25, 13, 5, 318, 92,
	25, 13, 5, 318, 69, 25, 13, 5, 318, 105, 25, 13, 5, 318, 236, 25,
	13, 5, 108, 92, 25, 13, 5, 108, 69, 25, 13, 5, 108, 105, 25, 13,
	5, 108, 236, 25, 13, 5, 355, 92, 25, 13, 5, 355, 69, 25, 13, 5,
	355, 105, 25, 13, 5, 355, 236, 25, 13, 5, 447, 92, 25, 13, 5, 447,
	69, 25, 13, 5, 447, 105, 25, 13, 5, 447, 236, 25, 13, 5, 488, 92,
	25, 13, 5, 488, 69, 25, 13, 5, 144, 346, 92, 25, 13, 5, 144, 346,
	69, 25, 13, 5, 115, 92, 25, 13, 5, 115, 69, 25, 13, 5, 115, 105,
	25, 13, 5, 115, 236, 25, 13, 44, 318, 8, 144, 8, 1037, 53, 92, 25,
	13, 44, 318, 8, 144, 8, 1037, 53, 69, 25, 13, 44, 318, 8, 144, 8,
	299, 53, 92, 25, 13, 44, 318, 8, 144, 8, 299, 53, 69, 25, 13, 44,
	318, 8, 144, 8, 299, 76, 92, 25, 13, 44, 318, 8, 144, 8, 299, 76,
	69, 25, 13, 44, 318, 8, 144, 92, 25, 13, 44, 318, 8, 144, 69, 25,
	254, 1061, 433, 2, 2125, 737, 219, 672, 56, 219, 610, 56, 219, 41, 6, 219,
	1298, 6, 219, 1652, 6, 219, 1184, 219, 1117, 219, 48, 471, 219, 45, 471, 219,
	467, 219, 120, 6, 219, 383, 219, 850, 2, 661, 219, 426, 322, 219, 707, 219,
	23, 254, 219, 23, 67, 219, 23, 70, 219, 23, 79, 219, 23, 93, 219, 23,
	100, 219, 23, 139, 219, 23, 157, 219, 23, 140, 219, 23, 160, 219, 577, 219,
	1000, 219, 384, 2, 178, 6, 219, 545, 6, 219, 376, 2, 178, 6, 219, 629,
	56, 219, 1549, 653, 219, 12, 10, 5, 24, 219, 12, 10, 5, 71, 219, 12,
	10, 5, 104, 219, 12, 10, 5, 98, 219, 12, 10, 5, 51, 219, 12, 10,
	5, 176, 219, 12, 10, 5, 220, 219, 12, 10, 5, 235, 219, 12, 10, 5,
	73, 219, 12, 10, 5, 278, 219, 12, 10, 5, 227, 219, 12, 10, 5, 136,
	219, 12, 10, 5, 205, 219, 12, 10, 5, 151, 219, 12, 10, 5, 68, 219,
	12, 10, 5, 249, 219, 12, 10, 5, 389, 219, 12, 10, 5, 122, 219, 12,
	10, 5, 121, 219, 12, 10, 5, 221, 219, 12, 10, 5, 60, 219, 12, 10,
	5, 229, 219, 12, 10, 5, 290, 219, 12, 10, 5, 268, 219, 12, 10, 5,
	218, 219, 12, 10, 5, 250, 219, 48, 58, 161, 219, 747, 707, 219, 45, 58,
	161, 219, 294, 344, 219, 145, 245, 219, 315, 344, 219, 12, 7, 5, 24, 219,
	12, 7, 5, 71, 219, 12, 7, 5, 104, 219, 12, 7, 5, 98, 219, 12,
	7, 5, 51, 219, 12, 7, 5, 176, 219, 12, 7, 5, 220, 219, 12, 7,
	5, 235, 219, 12, 7, 5, 73, 219, 12, 7, 5, 278, 219, 12, 7, 5,
	227, 219, 12, 7, 5, 136, 219, 12, 7, 5, 205, 219, 12, 7, 5, 151,
	219, 12, 7, 5, 68, 219, 12, 7, 5, 249, 219, 12, 7, 5, 389, 219,
	12, 7, 5, 122, 219, 12, 7, 5, 121, 219, 12, 7, 5, 221, 219, 12,
	7, 5, 60, 219, 12, 7, 5, 229, 219, 12, 7, 5, 290, 219, 12, 7,
	5, 268, 219, 12, 7, 5, 218, 219, 12, 7, 5, 250, 219, 48, 544, 161,
	219, 86, 245, 219, 45, 544, 161, 219, 211, 219, 48, 81, 471, 219, 45, 81,
	471, 183, 188, 426, 322, 183, 48, 536, 161, 183, 45, 536, 161, 183, 188, 383,
	183, 91, 94, 77, 183, 91, 5, 588, 183, 91, 5, 7, 24, 183, 91, 5,
	7, 73, 183, 91, 5, 7, 60, 183, 91, 5, 7, 51, 183, 91, 5, 7,
	68, 183, 91, 5, 7, 179, 183, 91, 5, 7, 402, 183, 91, 5, 7, 416,
	183, 91, 5, 7, 613, 183, 91, 2, 222, 3848, 838, 56, 183, 91, 5, 24,
	183, 91, 5, 73, 183, 91, 5, 60, 183, 91, 5, 51, 183, 91, 5, 68,
	183, 91, 5, 106, 183, 91, 5, 571, 183, 91, 5, 620, 183, 91, 5, 647,
	183, 91, 5, 606, 183, 91, 5, 195, 183, 91, 5, 632, 183, 91, 5, 611,
	183, 91, 5, 666, 183, 91, 5, 574, 183, 91, 5, 196, 183, 91, 5, 686,
	183, 91, 5, 613, 183, 91, 5, 440, 183, 91, 5, 83, 183, 91, 5, 185,
	183, 91, 5, 493, 183, 91, 5, 555, 183, 91, 5, 492, 183, 91, 5, 433,
	183, 91, 5, 143, 183, 91, 5, 479, 183, 91, 5, 831, 183, 91, 5, 446,
	183, 91, 5, 553, 183, 91, 5, 182, 183, 91, 5, 540, 183, 91, 5, 460,
	183, 91, 5, 539, 183, 91, 5, 607, 183, 91, 5, 179, 183, 91, 5, 402,
	183, 91, 5, 416, 183, 91, 5, 173, 183, 91, 5, 716, 183, 91, 5, 630,
	183, 91, 5, 736, 183, 91, 5, 585, 183, 91, 5, 286, 183, 91, 5, 151,
	183, 91, 966, 838, 56, 183, 91, 2477, 2, 966, 838, 56, 183, 40, 1026, 183,
	40, 5, 469, 183, 40, 5, 1345, 183, 40, 5, 469, 2, 306, 183, 40, 5,
	528, 183, 40, 5, 528, 2, 645, 183, 40, 5, 528, 2, 537, 183, 40, 5,
	495, 183, 40, 5, 1489, 183, 40, 5, 308, 183, 40, 5, 308, 2, 469, 183,
	40, 5, 308, 2, 503, 183, 40, 5, 308, 2, 334, 183, 40, 5, 308, 2,
	306, 183, 40, 5, 308, 2, 770, 183, 40, 5, 308, 2, 735, 183, 40, 5,
	308, 2, 537, 183, 40, 5, 503, 183, 40, 5, 334, 183, 40, 5, 1488, 183,
	40, 5, 334, 2, 306, 183, 40, 5, 306, 183, 40, 5, 1053, 183, 40, 5,
	677, 183, 40, 5, 645, 183, 40, 5, 1681, 183, 40, 5, 781, 183, 40, 5,
	853, 183, 40, 5, 770, 183, 40, 5, 735, 183, 40, 5, 537, 183, 40, 5,
	24, 183, 40, 5, 543, 183, 40, 5, 179, 183, 40, 5, 1177, 183, 40, 5,
	909, 183, 40, 5, 51, 183, 40, 5, 1009, 183, 40, 5, 753, 183, 40, 5,
	68, 183, 40, 5, 286, 183, 40, 5, 2587, 183, 40, 5, 485, 183, 40, 5,
	416, 183, 40, 5, 60, 183, 40, 5, 2592, 183, 40, 5, 614, 183, 40, 5,
	668, 183, 40, 5, 402, 183, 40, 5, 761, 183, 40, 5, 14, 183, 40, 5,
	73, 219, 3159, 6, 219, 1939, 6, 219, 362, 6, 219, 320, 219, 1383, 146, 219,
	1711, 6, 219, 2596, 6, 183, 7357, 148, 86, 183, 138, 36, 183, 216, 36, 183,
	113, 36, 183, 209, 36, 183, 74, 58, 183, 81, 125, 2278, 776, 3041, 2278, 776,
	681, 2278, 776, 10770, 9511, 3893, 22, 3893, 22, 42, 71, 9, 3082, 24, 42, 71,
	9, 5944, 51, 42, 71, 9, 5935, 73, 42, 71, 9, 5967, 68, 42, 71, 9,
	5917, 60, 42, 71, 9, 3075, 217, 42, 71, 9, 5951, 710, 42, 71, 9, 3081,
	783, 42, 71, 9, 5921, 725, 42, 71, 9, 5957, 784, 42, 71, 9, 5963, 317,
	42, 71, 9, 5952, 984, 42, 71, 9, 5942, 1031, 42, 71, 9, 5971, 1316, 42,
	71, 9, 5983, 106, 42, 71, 9, 5950, 647, 42, 71, 9, 5973, 571, 42, 71,
	9, 5976, 606, 42, 71, 9, 5987, 620, 42, 71, 9, 5986, 182, 42, 71, 9,
	5920, 539, 42, 71, 9, 5979, 540, 42, 71, 9, 5922, 607, 42, 71, 9, 5930,
	460, 42, 71, 9, 3080, 185, 42, 71, 9, 5931, 492, 42, 71, 9, 5937, 493,
	42, 71, 9, 5958, 433, 42, 71, 9, 5961, 555, 42, 71, 9, 3077, 119, 42,
	71, 9, 5978, 462, 42, 71, 9, 5945, 427, 42, 71, 9, 5918, 808, 42, 71,
	9, 5956, 962, 42, 71, 9, 5923, 768, 42, 71, 9, 5984, 1944, 42, 71, 9,
	5928, 1661, 42, 71, 9, 5939, 1945, 42, 71, 9, 5966, 173, 42, 71, 9, 5934,
	736, 42, 71, 9, 5959, 716, 42, 71, 9, 3076, 585, 42, 71, 9, 5933, 630,
	42, 71, 9, 5938, 195, 42, 71, 9, 3083, 666, 42, 71, 9, 5947, 632, 42,
	71, 9, 5919, 574, 42, 71, 9, 5964, 611, 42, 71, 9, 5965, 196, 42, 71,
	9, 3078, 440, 42, 71, 9, 5943, 686, 42, 71, 9, 3079, 83, 42, 71, 9,
	5975, 613, 42, 71, 9, 5960, 286, 42, 71, 9, 5981, 614, 42, 71, 9, 5946,
	668, 42, 71, 9, 5948, 588, 42, 71, 9, 5924, 443, 42, 71, 9, 5980, 739,
	42, 71, 9, 5927, 1012, 42, 71, 9, 5932, 2094, 42, 71, 9, 5949, 5304, 42,
	71, 9, 5990, 313, 42, 71, 9, 5977, 2199, 42, 71, 9, 5994, 7061, 42, 71,
	9, 5954, 1911, 42, 71, 9, 5936, 9837, 42, 71, 9, 5968, 9836, 42, 71, 9,
	5982, 9994, 42, 71, 9, 5940, 9995, 42, 71, 9, 5974, 10088, 42, 71, 9, 5972,
	10713, 42, 71, 9, 5992, 1700, 42, 71, 9, 5995, 70, 42, 71, 16, 5925, 42,
	71, 16, 5926, 42, 71, 16, 5929, 42, 71, 16, 5941, 42, 71, 16, 5953, 42,
	71, 16, 5955, 42, 71, 16, 5962, 42, 71, 16, 5969, 42, 71, 16, 5970, 42,
	71, 16, 5985, 42, 71, 16, 5988, 42, 71, 16, 5989, 42, 71, 16, 5991, 42,
	71, 16, 5993, 42, 71, 194, 5996, 733, 42, 71, 194, 5997, 1276, 42, 71, 194,
	5998, 2181, 42, 71, 194, 5999, 7170, 42, 71, 194, 6000, 8723, 42, 71, 194, 6001,
	10550, 42, 71, 194, 6002, 3311, 42, 71, 194, 6003, 1951, 42, 71, 194, 6004, 464,
	2, 2248, 42, 71, 194, 6005, 446, 2, 2248, 42, 71, 194, 6006, 10473, 42, 71,
	194, 6007, 3120, 42, 71, 194, 6008, 1550, 42, 71, 194, 6009, 6295, 42, 71, 194,
	6010, 2593, 42, 71, 194, 6011, 6149, 42, 71, 194, 6012, 3767, 42, 71, 194, 6013,
	10492, 42, 71, 194, 6014, 6743, 42, 71, 1152, 6015, 8121, 42, 71, 1152, 6016, 8117,
	42, 71, 194, 6017, 1916, 42, 71, 194, 6018, 2026, 42, 71, 194, 6019, 42, 71,
	1152, 6020, 5842, 42, 71, 1152, 6021, 8784, 42, 71, 194, 6022, 6284, 42, 71, 194,
	6023, 1826, 42, 71, 194, 6024, 42, 71, 194, 6025, 4185, 42, 71, 194, 6026, 42,
	71, 194, 6027, 42, 71, 194, 6028, 562, 42, 71, 194, 6029, 42, 71, 194, 6030,
	42, 71, 194, 6031, 42, 71, 1152, 6033, 10963, 42, 71, 194, 6034, 42, 71, 194,
	6035, 42, 71, 194, 6036, 2148, 42, 71, 194, 6037, 42, 71, 194, 6038, 42, 71,
	194, 6039, 7466, 42, 71, 194, 6040, 5849, 42, 71, 194, 6041, 42, 71, 194, 6042,
	42, 71, 194, 6043, 42, 71, 194, 6044, 42, 71, 194, 6045, 42, 71, 194, 6046,
	42, 71, 194, 6047, 42, 71, 194, 6048, 42, 71, 194, 6049, 42, 71, 194, 6050,
	2360, 42, 71, 194, 6051, 42, 71, 194, 6052, 1057, 42, 71, 194, 6053, 42, 71,
	194, 6054, 42, 71, 194, 6055, 42, 71, 194, 6056, 42, 71, 194, 6057, 42, 71,
	194, 6058, 42, 71, 194, 6059, 42, 71, 194, 6060, 42, 71, 194, 6061, 42, 71,
	194, 6062, 42, 71, 194, 6063, 42, 71, 194, 6064, 1835, 42, 71, 194, 6085, 7351,
	42, 71, 194, 6088, 3089, 42, 71, 194, 6093, 4009, 42, 71, 194, 6094, 36, 42,
	71, 194, 6095, 42, 71, 194, 6096, 10636, 42, 71, 194, 6097, 42, 71, 194, 6098,
	42, 71, 194, 6099, 11349, 1544, 42, 71, 194, 6100, 1544, 42, 71, 194, 6101, 1544,
	1819, 42, 71, 194, 6102, 2025, 42, 71, 194, 6103, 42, 71, 194, 6104, 42, 71,
	1152, 6105, 6982, 42, 71, 194, 6106, 42, 71, 194, 6107, 42, 71, 194, 6109, 42,
	71, 194, 6110, 42, 71, 194, 6111, 42, 71, 194, 6112, 6863, 42, 71, 194, 6113,
	42, 71, 194, 6114, 42, 71, 194, 6115, 42, 71, 194, 6116, 42, 71, 194, 6117,
	42, 71, 194, 635, 6032, 42, 71, 194, 635, 6065, 42, 71, 194, 635, 6066, 42,
	71, 194, 635, 6067, 42, 71, 194, 635, 6068, 42, 71, 194, 635, 6069, 42, 71,
	194, 635, 6070, 42, 71, 194, 635, 6071, 42, 71, 194, 635, 6072, 42, 71, 194,
	635, 6073, 42, 71, 194, 635, 6074, 42, 71, 194, 635, 6075, 42, 71, 194, 635,
	6076, 42, 71, 194, 635, 6077, 42, 71, 194, 635, 6078, 42, 71, 194, 635, 6079,
	42, 71, 194, 635, 6080, 42, 71, 194, 635, 6081, 42, 71, 194, 635, 6082, 42,
	71, 194, 635, 6083, 42, 71, 194, 635, 6084, 42, 71, 194, 635, 6086, 42, 71,
	194, 635, 6087, 42, 71, 194, 635, 6089, 42, 71, 194, 635, 6090, 42, 71, 194,
	635, 6091, 42, 71, 194, 635, 6092, 42, 71, 194, 635, 6108, 42, 71, 194, 635,
	6118, 398, 720, 681, 245, 398, 720, 681, 77, 398, 906, 56, 398, 41, 67, 398,
	41, 70, 398, 41, 79, 398, 41, 93, 398, 41, 100, 398, 41, 139, 398, 41,
	157, 398, 41, 140, 398, 41, 160, 398, 41, 280, 398, 41, 357, 398, 41, 451,
	398, 41, 605, 398, 41, 551, 398, 41, 748, 398, 41, 566, 398, 41, 876, 398,
	41, 529, 398, 41, 67, 159, 398, 41, 70, 159, 398, 41, 79, 159, 398, 41,
	93, 159, 398, 41, 100, 159, 398, 41, 139, 159, 398, 41, 157, 159, 398, 41,
	140, 159, 398, 41, 160, 159, 398, 41, 67, 203, 398, 41, 70, 203, 398, 41,
	79, 203, 398, 41, 93, 203, 398, 41, 100, 203, 398, 41, 139, 203, 398, 41,
	157, 203, 398, 41, 140, 203, 398, 41, 160, 203, 398, 41, 280, 203, 398, 41,
	357, 203, 398, 41, 451, 203, 398, 41, 605, 203, 398, 41, 551, 203, 398, 41,
	748, 203, 398, 41, 566, 203, 398, 41, 876, 203, 398, 41, 529, 203, 398, 1513,
	1754, 1005, 398, 1513, 1139, 1259, 398, 1513, 999, 1259, 398, 1513, 928, 1259, 398, 1513,
	1308, 1259, 398, 2196, 1324, 1139, 1259, 398, 3558, 1324, 1139, 1259, 398, 1324, 999, 1259,
	398, 1324, 928, 1259, 46, 417, 699, 67, 516, 46, 417, 699, 67, 133, 46, 417,
	699, 67, 2194, 46, 417, 699, 100, 46, 417, 699, 551, 46, 417, 699, 100, 159,
	46, 417, 699, 100, 203, 46, 417, 699, 551, 203, 46, 417, 699, 100, 1349, 46,
	417, 699, 280, 1349, 46, 417, 699, 551, 1349, 46, 417, 699, 67, 159, 1349, 46,
	417, 699, 100, 159, 1349, 46, 417, 699, 67, 203, 1349, 46, 417, 699, 100, 203,
	1349, 46, 417, 699, 100, 1256, 46, 417, 699, 280, 1256, 46, 417, 699, 551, 1256,
	46, 417, 699, 67, 159, 1256, 46, 417, 699, 100, 159, 1256, 46, 417, 699, 67,
	203, 1256, 46, 417, 699, 280, 203, 1256, 46, 417, 699, 551, 203, 1256, 46, 417,
	699, 280, 2357, 46, 417, 7712, 67, 9756, 46, 417, 1109, 67, 46, 417, 2259, 67,
	46, 417, 2205, 70, 46, 417, 1109, 70, 46, 417, 6745, 70, 3257, 46, 417, 2205,
	70, 3257, 46, 417, 1502, 100, 46, 417, 1502, 280, 46, 417, 1502, 280, 506, 25,
	46, 417, 2259, 280, 46, 417, 8788, 280, 46, 417, 1109, 280, 46, 417, 1109, 451,
	46, 417, 1502, 551, 46, 417, 1502, 551, 506, 25, 46, 417, 2259, 551, 46, 417,
	1109, 551, 46, 417, 1109, 67, 159, 46, 417, 1109, 79, 159, 46, 417, 2205, 100,
	159, 46, 417, 1502, 100, 159, 46, 417, 1109, 100, 159, 46, 417, 6390, 100, 159,
	46, 417, 9023, 100, 159, 46, 417, 1109, 67, 203, 46, 417, 1109, 100, 203, 46,
	417, 6920, 100, 2357, 46, 417, 10579, 551, 2357, 46, 67, 133, 6, 46, 67, 133,
	6, 506, 25, 46, 70, 1171, 6, 46, 79, 890, 6, 46, 4204, 6, 46, 10730,
	6, 46, 2194, 6, 46, 9515, 6, 46, 70, 1914, 6, 46, 79, 1914, 6, 46,
	93, 1914, 6, 46, 100, 1914, 6, 46, 8793, 6, 46, 8320, 1754, 6, 46, 8443,
	6, 46, 9561, 6, 46, 11412, 6, 46, 5859, 6, 46, 5852, 6, 46, 7602, 6,
	46, 10915, 1754, 6, 46, 254, 6, 46, 67, 516, 6, 46, 10422, 6, 46, 7963,
	6, 9264, 6, 428, 10319, 6, 428, 11071, 6, 428, 10300, 6, 428, 3948, 6, 428,
	6975, 3948, 6, 428, 10416, 6, 428, 6922, 6, 428, 9930, 6, 428, 10311, 6, 428,
	7044, 6, 428, 755, 6, 428, 6427, 6, 5866, 16, 46, 16, 815, 649, 472, 445,
	6, 3803, 472, 445, 6, 9762, 618, 472, 445, 6, 10745, 618, 472, 445, 6, 6379,
	472, 445, 6, 2142, 472, 445, 6, 1276, 472, 445, 6, 1835, 472, 445, 6, 7470,
	472, 445, 6, 10821, 472, 445, 6, 36, 472, 445, 6, 1381, 472, 445, 6, 2485,
	472, 445, 6, 1774, 472, 445, 6, 8707, 472, 445, 6, 8742, 472, 445, 6, 2470,
	472, 445, 6, 3553, 472, 445, 6, 3126, 472, 445, 6, 3149, 3833, 472, 445, 6,
	7016, 472, 445, 6, 6659, 472, 445, 6, 10446, 472, 445, 6, 6658, 472, 445, 6,
	6196, 472, 445, 6, 2486, 472, 445, 6, 562, 472, 445, 6, 7736, 472, 445, 6,
	6296, 764, 472, 445, 6, 938, 472, 445, 6, 1951, 472, 445, 6, 3276, 472, 445,
	6, 3256, 472, 445, 6, 10956, 472, 445, 6, 1377, 472, 445, 6, 3833, 1057, 472,
	445, 6, 1176, 472, 445, 6, 9636, 472, 445, 6, 2464, 472, 445, 6, 8428, 472,
	445, 6, 1921, 870, 472, 445, 6, 3326, 472, 445, 6, 7605, 472, 445, 6, 10578,
	472, 445, 6, 7, 2107, 472, 445, 6, 1060, 6140, 472, 445, 6, 43, 834, 89,
	622, 5, 24, 622, 5, 51, 622, 5, 71, 622, 5, 6211, 622, 5, 220, 622,
	5, 98, 622, 5, 73, 622, 5, 290, 622, 5, 250, 622, 5, 864, 622, 5,
	278, 622, 5, 227, 622, 5, 389, 622, 5, 136, 622, 5, 205, 622, 5, 151,
	622, 5, 1895, 622, 5, 1635, 622, 5, 60, 622, 5, 249, 622, 5, 1859, 622,
	5, 122, 622, 5, 121, 622, 5, 221, 622, 5, 2571, 622, 5, 524, 622, 5,
	405, 622, 5, 235, 622, 5, 268, 444, 5, 24, 444, 5, 9583, 444, 5, 98,
	444, 5, 136, 444, 5, 11105, 444, 5, 122, 444, 5, 8384, 444, 5, 2094, 444,
	5, 389, 444, 5, 71, 444, 5, 205, 444, 5, 68, 444, 5, 6840, 444, 5,
	221, 444, 5, 1337, 444, 5, 10325, 444, 5, 121, 444, 5, 104, 2, 1367, 444,
	5, 60, 444, 5, 1635, 444, 5, 268, 444, 5, 151, 444, 5, 10930, 444, 5,
	249, 444, 5, 1987, 444, 5, 73, 444, 5, 51, 444, 5, 11108, 444, 5, 227,
	444, 5, 8097, 444, 5, 9054, 444, 5, 324, 444, 5, 220, 444, 5, 7451, 444,
	5, 2513, 444, 5, 10545, 444, 5, 767, 444, 5, 300, 444, 5, 104, 2, 2082,
	444, 5, 2571, 444, 5, 11106, 444, 5, 517, 444, 5, 2342, 444, 5, 8748, 444,
	5, 8749, 444, 5, 8750, 444, 5, 8385, 444, 5, 979, 444, 5, 11107, 116, 646,
	1266, 56, 116, 646, 23, 67, 116, 646, 23, 70, 116, 646, 23, 79, 116, 646,
	23, 93, 116, 646, 23, 100, 116, 646, 23, 139, 116, 646, 23, 157, 116, 646,
	23, 140, 116, 646, 23, 160, 116, 646, 41, 280, 116, 646, 41, 357, 116, 646,
	41, 451, 116, 646, 41, 605, 116, 646, 41, 551, 116, 646, 41, 748, 116, 646,
	41, 566, 116, 646, 41, 876, 116, 646, 41, 529, 116, 646, 41, 67, 159, 116,
	646, 41, 70, 159, 116, 646, 41, 79, 159, 116, 646, 41, 93, 159, 116, 646,
	41, 100, 159, 116, 646, 41, 139, 159, 116, 646, 41, 157, 159, 116, 646, 41,
	140, 159, 116, 646, 41, 160, 159, 50, 59, 5, 24, 50, 59, 5, 871, 50,
	59, 5, 647, 50, 59, 5, 710, 50, 59, 5, 51, 50, 59, 5, 842, 50,
	59, 5, 739, 50, 59, 5, 446, 50, 59, 5, 487, 50, 59, 5, 73, 50,
	59, 5, 106, 50, 59, 5, 712, 50, 59, 5, 714, 50, 59, 5, 405, 50,
	59, 5, 785, 50, 59, 5, 68, 50, 59, 5, 462, 50, 59, 5, 464, 50,
	59, 5, 620, 50, 59, 5, 879, 50, 59, 5, 880, 50, 59, 5, 440, 50,
	59, 5, 60, 50, 59, 5, 7136, 50, 59, 5, 2428, 50, 59, 5, 2302, 50,
	59, 5, 1077, 50, 59, 5, 7172, 50, 59, 5, 700, 50, 59, 5, 300, 50,
	59, 5, 324, 50, 59, 5, 7176, 50, 59, 307, 67, 50, 59, 307, 100, 50,
	59, 307, 280, 50, 59, 307, 551, 50, 59, 5, 753, 50, 59, 5, 3730, 930,
	50, 59, 5, 4006, 930, 656, 5, 5750, 656, 5, 6135, 656, 5, 7555, 656, 5,
	6849, 656, 5, 5753, 656, 5, 9884, 656, 5, 7998, 656, 5, 7660, 656, 5, 10802,
	656, 5, 7132, 656, 5, 8296, 656, 5, 8357, 656, 5, 8711, 656, 5, 9021, 656,
	5, 8015, 656, 5, 11095, 656, 5, 9597, 656, 5, 529, 656, 5, 10008, 656, 5,
	10264, 656, 5, 10760, 656, 5, 11358, 656, 5, 7278, 656, 5, 7936, 656, 5, 3429,
	656, 5, 9554, 656, 5, 160, 159, 50, 494, 5, 524, 50, 494, 5, 1123, 50,
	494, 5, 7455, 50, 494, 5, 3251, 50, 494, 5, 51, 50, 494, 5, 11631, 50,
	494, 5, 7065, 50, 494, 5, 2039, 50, 494, 5, 7066, 50, 494, 5, 73, 50,
	494, 5, 8244, 50, 494, 5, 8394, 50, 494, 5, 8781, 50, 494, 5, 3697, 50,
	494, 5, 11259, 50, 494, 5, 9671, 50, 494, 5, 10037, 50, 494, 5, 1678, 50,
	494, 5, 72, 50, 494, 5, 60, 50, 494, 5, 6468, 50, 494, 5, 10365, 50,
	494, 5, 10342, 50, 494, 5, 11536, 50, 494, 5, 1064, 50, 494, 5, 68, 50,
	494, 5, 454, 50, 494, 5, 1077, 50, 494, 5, 143, 50, 494, 5, 10925, 50,
	494, 5, 11216, 50, 494, 5, 1712, 50, 494, 5, 2032, 50, 494, 5, 1178, 50,
	494, 5, 832, 50, 494, 5, 402, 50, 494, 5, 179, 50, 494, 5, 1840, 43,
	50, 494, 5, 524, 43, 50, 494, 5, 3251, 43, 50, 494, 5, 2039, 43, 50,
	494, 5, 3697, 43, 50, 494, 5, 1678, 598, 5, 5777, 598, 5, 779, 598, 5,
	7460, 598, 5, 361, 598, 5, 760, 598, 5, 553, 598, 5, 588, 598, 5, 968,
	598, 5, 7843, 598, 5, 1356, 598, 5, 1116, 598, 5, 439, 598, 5, 573, 598,
	5, 917, 598, 5, 746, 598, 5, 6940, 598, 5, 394, 598, 5, 1013, 598, 5,
	10245, 598, 5, 475, 598, 5, 962, 598, 5, 3924, 598, 5, 9919, 598, 5, 10017,
	598, 5, 10787, 598, 5, 674, 598, 5, 83, 598, 5, 73, 598, 5, 60, 598,
	5, 2512, 598, 720, 1397, 50, 422, 6, 24, 50, 422, 6, 73, 50, 422, 6,
	60, 50, 422, 6, 106, 50, 422, 6, 620, 50, 422, 6, 224, 50, 422, 6,
	828, 50, 422, 6, 899, 50, 422, 6, 325, 50, 422, 6, 317, 50, 422, 6,
	1218, 50, 422, 6, 196, 50, 422, 6, 613, 50, 422, 6, 217, 50, 422, 6,
	783, 50, 422, 6, 784, 50, 422, 6, 386, 50, 422, 6, 119, 50, 422, 6,
	251, 50, 422, 6, 502, 50, 422, 6, 185, 50, 422, 6, 555, 50, 422, 6,
	182, 50, 422, 6, 540, 50, 422, 6, 460, 50, 422, 6, 179, 50, 422, 6,
	413, 50, 422, 6, 1175, 50, 422, 6, 173, 50, 422, 6, 630, 50, 422, 6,
	202, 50, 422, 6, 195, 50, 422, 6, 443, 50, 422, 6, 321, 50, 422, 6,
	518, 50, 422, 6, 143, 50, 422, 6, 3068, 50, 422, 6, 3068, 2, 192, 50,
	422, 6, 5898, 50, 422, 6, 11431, 50, 422, 6, 3205, 50, 422, 6, 3205, 2,
	192, 50, 422, 6, 6126, 50, 422, 6, 6315, 50, 422, 720, 1397, 50, 422, 41,
	67, 50, 422, 41, 70, 50, 422, 41, 280, 50, 422, 41, 357, 50, 422, 41,
	159, 297, 10, 5, 187, 73, 297, 10, 5, 187, 51, 297, 10, 5, 187, 24,
	297, 10, 5, 187, 970, 297, 10, 5, 187, 68, 297, 10, 5, 187, 454, 297,
	10, 5, 295, 73, 297, 10, 5, 295, 51, 297, 10, 5, 295, 24, 297, 10,
	5, 295, 970, 297, 10, 5, 295, 68, 297, 10, 5, 295, 454, 297, 10, 5,
	971, 297, 10, 5, 1645, 297, 10, 5, 1063, 297, 10, 5, 1517, 297, 10, 5,
	235, 297, 10, 5, 1155, 297, 10, 5, 1377, 297, 10, 5, 1497, 297, 10, 5,
	1394, 297, 10, 5, 1768, 297, 10, 5, 1434, 297, 10, 5, 2298, 297, 10, 5,
	3353, 297, 10, 5, 1077, 297, 10, 5, 1272, 297, 10, 5, 1208, 297, 10, 5,
	1690, 297, 10, 5, 880, 297, 10, 5, 1715, 297, 10, 5, 785, 297, 10, 5,
	2041, 297, 10, 5, 879, 297, 10, 5, 712, 297, 10, 5, 714, 297, 10, 5,
	405, 297, 10, 5, 980, 297, 10, 5, 1641, 297, 10, 5, 2211, 297, 7, 5,
	187, 73, 297, 7, 5, 187, 51, 297, 7, 5, 187, 24, 297, 7, 5, 187,
	970, 297, 7, 5, 187, 68, 297, 7, 5, 187, 454, 297, 7, 5, 295, 73,
	297, 7, 5, 295, 51, 297, 7, 5, 295, 24, 297, 7, 5, 295, 970, 297,
	7, 5, 295, 68, 297, 7, 5, 295, 454, 297, 7, 5, 971, 297, 7, 5,
	1645, 297, 7, 5, 1063, 297, 7, 5, 1517, 297, 7, 5, 235, 297, 7, 5,
	1155, 297, 7, 5, 1377, 297, 7, 5, 1497, 297, 7, 5, 1394, 297, 7, 5,
	1768, 297, 7, 5, 1434, 297, 7, 5, 2298, 297, 7, 5, 3353, 297, 7, 5,
	1077, 297, 7, 5, 1272, 297, 7, 5, 1208, 297, 7, 5, 1690, 297, 7, 5,
	880, 297, 7, 5, 1715, 297, 7, 5, 785, 297, 7, 5, 2041, 297, 7, 5,
	879, 297, 7, 5, 712, 297, 7, 5, 714, 297, 7, 5, 405, 297, 7, 5,
	980, 297, 7, 5, 1641, 297, 7, 5, 2211, 455, 5, 9674, 455, 5, 4093, 455,
	5, 8198, 455, 5, 1305, 455, 5, 10798, 455, 5, 574, 455, 5, 10621, 455, 5,
	3171, 455, 5, 11499, 455, 5, 7856, 455, 5, 6219, 455, 5, 6899, 455, 5, 7454,
	455, 5, 11262, 455, 5, 10795, 455, 5, 4235, 455, 5, 1324, 455, 5, 8064, 455,
	5, 11363, 455, 5, 143, 2, 143, 455, 5, 8459, 455, 5, 8859, 455, 5, 7934,
	455, 5, 3282, 455, 5, 403, 455, 5, 5722, 455, 5, 347, 455, 5, 4185, 455,
	5, 788, 455, 5, 970, 455, 5, 10090, 455, 5, 394, 455, 5, 1402, 455, 5,
	5742, 455, 5, 1215, 455, 5, 111, 455, 5, 9507, 455, 5, 9543, 455, 5, 1916,
	455, 5, 5910, 455, 5, 5841, 455, 5, 246, 455, 5, 1369, 455, 5, 1808, 455,
	5, 5854, 455, 5, 1300, 455, 5, 3436, 455, 5, 11511, 515, 5, 144, 515, 5,
	251, 515, 5, 196, 515, 5, 317, 515, 5, 899, 515, 5, 361, 515, 5, 6908,
	515, 5, 173, 515, 5, 195, 515, 5, 10356, 515, 5, 453, 515, 5, 3154, 515,
	5, 224, 515, 5, 502, 515, 5, 2449, 515, 5, 3472, 515, 5, 8343, 515, 5,
	8850, 515, 5, 9370, 515, 5, 488, 515, 5, 143, 515, 5, 179, 515, 5, 24,
	515, 5, 51, 515, 5, 73, 515, 5, 68, 515, 5, 60, 515, 5, 263, 515,
	5, 496, 515, 5, 454, 515, 23, 254, 515, 23, 67, 515, 23, 70, 515, 23,
	79, 515, 23, 93, 515, 23, 100, 515, 23, 139, 515, 23, 157, 515, 23, 140,
	515, 23, 160, 333, 10, 5, 24, 333, 10, 5, 292, 333, 10, 5, 475, 333,
	10, 5, 970, 333, 10, 5, 3130, 333, 10, 5, 358, 333, 10, 5, 3284, 333,
	10, 5, 51, 333, 10, 5, 3290, 333, 10, 5, 143, 333, 10, 5, 3433, 333,
	10, 5, 73, 333, 10, 5, 106, 333, 10, 5, 3285, 333, 10, 5, 2314, 333,
	10, 5, 202, 333, 10, 5, 182, 333, 10, 5, 185, 333, 10, 5, 68, 333,
	10, 5, 3763, 333, 10, 5, 119, 333, 10, 5, 3286, 333, 10, 5, 195, 333,
	10, 5, 321, 333, 10, 5, 196, 333, 10, 5, 3287, 333, 10, 5, 612, 333,
	10, 5, 3288, 333, 10, 5, 897, 333, 10, 5, 453, 333, 10, 5, 60, 333,
	10, 5, 286, 333, 10, 5, 361, 333, 10, 5, 459, 333, 10, 5, 443, 333,
	10, 5, 740, 333, 7, 5, 24, 333, 7, 5, 292, 333, 7, 5, 475, 333,
	7, 5, 970, 333, 7, 5, 3130, 333, 7, 5, 358, 333, 7, 5, 3284, 333,
	7, 5, 51, 333, 7, 5, 3290, 333, 7, 5, 143, 333, 7, 5, 3433, 333,
	7, 5, 73, 333, 7, 5, 106, 333, 7, 5, 3285, 333, 7, 5, 2314, 333,
	7, 5, 202, 333, 7, 5, 182, 333, 7, 5, 185, 333, 7, 5, 68, 333,
	7, 5, 3763, 333, 7, 5, 119, 333, 7, 5, 3286, 333, 7, 5, 195, 333,
	7, 5, 321, 333, 7, 5, 196, 333, 7, 5, 3287, 333, 7, 5, 612, 333,
	7, 5, 3288, 333, 7, 5, 897, 333, 7, 5, 453, 333, 7, 5, 60, 333,
	7, 5, 286, 333, 7, 5, 361, 333, 7, 5, 459, 333, 7, 5, 443, 333,
	7, 5, 740, 512, 5, 24, 512, 5, 871, 512, 5, 1124, 512, 5, 700, 512,
	5, 710, 512, 5, 1902, 512, 5, 1555, 512, 5, 1133, 512, 5, 51, 512, 5,
	982, 512, 5, 1085, 512, 5, 2246, 512, 5, 446, 512, 5, 73, 512, 5, 984,
	512, 5, 647, 512, 5, 448, 512, 5, 8448, 512, 5, 539, 512, 5, 492, 512,
	5, 185, 512, 5, 1236, 512, 5, 68, 512, 5, 462, 512, 5, 1944, 512, 5,
	736, 512, 5, 3916, 512, 5, 666, 512, 5, 464, 512, 5, 440, 512, 5, 487,
	512, 5, 60, 512, 5, 842, 512, 5, 1515, 512, 5, 218, 512, 5, 739, 512,
	5, 868, 512, 5, 801, 512, 5, 7535, 512, 5, 2302, 420, 418, 5, 5779, 420,
	418, 5, 1379, 420, 418, 5, 2245, 420, 418, 5, 3213, 420, 418, 5, 2201, 420,
	418, 5, 11608, 420, 418, 5, 3312, 420, 418, 5, 11630, 420, 418, 5, 10742, 420,
	418, 5, 358, 420, 418, 5, 11531, 420, 418, 5, 740, 420, 418, 5, 7987, 420,
	418, 5, 321, 420, 418, 5, 3529, 420, 418, 5, 7982, 420, 418, 5, 11413, 420,
	418, 5, 7062, 420, 418, 5, 1195, 420, 418, 5, 8024, 420, 418, 5, 8123, 420,
	418, 5, 8496, 420, 418, 5, 7719, 420, 418, 5, 9890, 420, 418, 5, 5823, 420,
	418, 5, 6497, 420, 418, 5, 671, 420, 418, 5, 6740, 420, 418, 5, 3632, 420,
	418, 5, 1660, 420, 418, 5, 9274, 420, 418, 5, 7067, 420, 418, 5, 10327, 420,
	418, 5, 8013, 420, 418, 5, 347, 420, 418, 5, 10979, 420, 418, 5, 7284, 420,
	418, 5, 7064, 420, 418, 5, 3165, 420, 418, 5, 1469, 420, 418, 5, 7547, 420,
	418, 5, 1952, 420, 418, 5, 10321, 420, 418, 5, 11227, 420, 418, 5, 10843, 420,
	418, 5, 3965, 420, 418, 5, 8000, 420, 418, 5, 6739, 420, 418, 5, 3154, 420,
	418, 5, 11497, 420, 418, 5, 2431, 420, 418, 5, 8219, 420, 418, 6526, 56, 343,
	10, 5, 24, 343, 10, 5, 1536, 343, 10, 5, 871, 343, 10, 5, 1124, 343,
	10, 5, 700, 343, 10, 5, 710, 343, 10, 5, 1555, 343, 10, 5, 1133, 343,
	10, 5, 51, 343, 10, 5, 982, 343, 10, 5, 224, 343, 10, 5, 143, 343,
	10, 5, 1144, 343, 10, 5, 73, 343, 10, 5, 3442, 343, 10, 5, 984, 343,
	10, 5, 106, 343, 10, 5, 202, 343, 10, 5, 657, 343, 10, 5, 539, 343,
	10, 5, 492, 343, 10, 5, 1236, 343, 10, 5, 68, 343, 10, 5, 462, 343,
	10, 5, 768, 343, 10, 5, 736, 343, 10, 5, 666, 343, 10, 5, 464, 343,
	10, 5, 440, 343, 10, 5, 487, 343, 10, 5, 60, 343, 10, 5, 842, 343,
	10, 5, 1515, 343, 10, 5, 218, 343, 10, 5, 739, 343, 7, 5, 24, 343,
	7, 5, 1536, 343, 7, 5, 871, 343, 7, 5, 1124, 343, 7, 5, 700, 343,
	7, 5, 710, 343, 7, 5, 1555, 343, 7, 5, 1133, 343, 7, 5, 51, 343,
	7, 5, 982, 343, 7, 5, 224, 343, 7, 5, 143, 343, 7, 5, 1144, 343,
	7, 5, 73, 343, 7, 5, 3442, 343, 7, 5, 984, 343, 7, 5, 106, 343,
	7, 5, 202, 343, 7, 5, 657, 343, 7, 5, 539, 343, 7, 5, 492, 343,
	7, 5, 1236, 343, 7, 5, 68, 343, 7, 5, 462, 343, 7, 5, 768, 343,
	7, 5, 736, 343, 7, 5, 666, 343, 7, 5, 464, 343, 7, 5, 440, 343,
	7, 5, 487, 343, 7, 5, 60, 343, 7, 5, 842, 343, 7, 5, 1515, 343,
	7, 5, 218, 343, 7, 5, 739, 42, 24, 6, 5624, 42, 24, 6, 5625, 42,
	24, 6, 5626, 42, 24, 6, 5627, 42, 24, 6, 5628, 42, 24, 6, 5629, 42,
	24, 6, 5630, 42, 24, 6, 5631, 42, 24, 6, 5632, 42, 24, 6, 5633, 42,
	24, 6, 5634, 42, 24, 6, 5635, 42, 24, 6, 5636, 42, 24, 6, 5637, 42,
	24, 6, 5638, 42, 24, 6, 5639, 42, 24, 6, 5640, 42, 24, 6, 5641, 42,
	24, 6, 5642, 42, 24, 6, 5643, 42, 24, 6, 5644, 42, 24, 6, 5645, 42,
	24, 6, 5646, 42, 24, 6, 5647, 42, 24, 6, 5648, 42, 24, 6, 5649, 42,
	24, 6, 5650, 42, 24, 6, 5033, 42, 24, 6, 5651, 42, 24, 6, 5652, 42,
	24, 6, 5653, 42, 24, 6, 5654, 42, 24, 6, 5655, 42, 24, 6, 5656, 42,
	24, 6, 5657, 42, 24, 6, 5658, 42, 24, 6, 5659, 42, 24, 6, 5660, 42,
	24, 6, 5661, 42, 24, 6, 5662, 42, 24, 6, 5663, 42, 24, 6, 5664, 42,
	24, 6, 5665, 42, 24, 6, 5666, 42, 24, 6, 5667, 42, 24, 6, 5668, 42,
	24, 6, 5669, 42, 24, 6, 5670, 42, 24, 6, 5671, 42, 24, 6, 5672, 42,
	24, 6, 5673, 42, 24, 6, 5674, 42, 24, 6, 5675, 42, 24, 6, 5676, 42,
	24, 6, 5677, 42, 24, 6, 5678, 42, 24, 6, 5679, 42, 24, 6, 5680, 42,
	24, 6, 5681, 42, 24, 6, 5682, 42, 24, 6, 5683, 42, 24, 6, 5684, 42,
	24, 6, 5685, 42, 24, 6, 5686, 42, 24, 6, 5687, 42, 24, 6, 5688, 42,
	24, 6, 5689, 42, 24, 6, 5690, 42, 24, 6, 5691, 42, 24, 6, 5692, 42,
	24, 6, 5693, 42, 24, 6, 2897, 2, 2046, 42, 24, 6, 5694, 42, 24, 6,
	5695, 42, 24, 6, 5110, 42, 24, 6, 5696, 42, 24, 6, 5697, 42, 24, 6,
	5698, 42, 24, 6, 5699, 42, 24, 6, 5123, 42, 24, 6, 5700, 42, 24, 6,
	5701, 42, 24, 6, 5702, 42, 24, 6, 5703, 42, 24, 6, 5704, 42, 24, 6,
	2898, 42, 24, 6, 2899, 42, 24, 6, 2900, 42, 24, 6, 2901, 42, 24, 6,
	2902, 42, 24, 6, 2903, 42, 24, 6, 2904, 42, 24, 6, 2905, 42, 24, 6,
	2906, 42, 24, 6, 5307, 42, 24, 6, 5308, 42, 24, 6, 2907, 42, 24, 6,
	2908, 42, 24, 6, 2909, 42, 24, 6, 5310, 42, 24, 6, 5311, 42, 24, 6,
	5312, 42, 24, 6, 2910, 42, 24, 6, 2911, 42, 24, 6, 2912, 42, 24, 6,
	2913, 42, 24, 6, 2914, 42, 24, 6, 2915, 42, 24, 6, 2916, 42, 24, 6,
	2917, 42, 24, 6, 2918, 42, 24, 6, 2919, 42, 24, 6, 2920, 42, 24, 6,
	2921, 42, 24, 6, 2922, 42, 24, 6, 2923, 42, 24, 6, 2924, 42, 24, 6,
	2925, 42, 24, 6, 2926, 42, 24, 6, 2927, 42, 24, 6, 5314, 42, 24, 6,
	2928, 42, 24, 6, 2929, 42, 24, 6, 2930, 42, 24, 6, 2931, 42, 24, 6,
	2932, 42, 24, 6, 2933, 42, 24, 6, 2934, 42, 24, 6, 2935, 42, 24, 6,
	2936, 42, 24, 6, 2937, 42, 24, 6, 2938, 42, 24, 6, 2939, 42, 24, 6,
	2940, 42, 24, 6, 2941, 42, 24, 6, 2942, 42, 24, 6, 2943, 42, 24, 6,
	2944, 42, 24, 6, 2945, 42, 24, 6, 2946, 42, 24, 6, 2947, 42, 24, 6,
	2948, 42, 24, 6, 2949, 42, 24, 6, 2950, 42, 24, 6, 2951, 42, 24, 6,
	2952, 42, 24, 6, 2953, 42, 24, 6, 2954, 42, 24, 6, 2955, 42, 24, 6,
	2956, 42, 24, 6, 2957, 42, 24, 6, 2958, 42, 24, 6, 2959, 42, 24, 6,
	2960, 42, 24, 6, 2961, 42, 24, 6, 2962, 42, 24, 6, 2963, 42, 24, 6,
	2964, 42, 24, 6, 2965, 42, 24, 6, 2966, 42, 24, 6, 2967, 2, 793, 42,
	24, 6, 2968, 2, 793, 42, 24, 6, 2969, 2, 793, 42, 24, 6, 2970, 2,
	793, 42, 24, 6, 2971, 2, 793, 42, 24, 6, 2972, 2, 793, 42, 24, 6,
	2973, 2, 793, 42, 24, 6, 2974, 2, 793, 42, 24, 6, 2975, 2, 793, 42,
	24, 6, 2976, 2, 793, 42, 24, 6, 2977, 2, 793, 42, 24, 6, 2978, 2,
	793, 42, 24, 6, 2979, 2, 793, 42, 24, 6, 2980, 2, 793, 42, 24, 6,
	2981, 2, 793, 42, 24, 6, 2982, 2, 793, 42, 24, 6, 2983, 2, 793, 42,
	24, 6, 2984, 2, 793, 42, 24, 6, 2985, 2, 793, 42, 24, 6, 2986, 42,
	24, 6, 2987, 42, 24, 6, 2988, 42, 24, 6, 2989, 42, 24, 6, 2990, 42,
	24, 6, 2991, 42, 24, 6, 2992, 42, 24, 6, 2993, 42, 24, 6, 2994, 42,
	24, 6, 2995, 42, 24, 6, 2996, 42, 24, 6, 2997, 42, 24, 6, 2998, 42,
	24, 6, 2999, 42, 24, 6, 3000, 42, 24, 6, 3001, 42, 24, 6, 3002, 42,
	24, 6, 3003, 42, 24, 6, 3004, 42, 24, 6, 3005, 42, 24, 6, 3006, 42,
	24, 6, 3007, 42, 24, 6, 3008, 42, 24, 6, 3009, 42, 24, 6, 5444, 42,
	24, 6, 5445, 42, 24, 6, 5446, 42, 24, 6, 5447, 42, 24, 6, 5448, 42,
	24, 6, 5449, 42, 24, 6, 5450, 42, 24, 6, 5451, 42, 24, 6, 5452, 42,
	24, 6, 5453, 42, 24, 6, 5454, 42, 24, 6, 5455, 42, 24, 6, 5456, 42,
	24, 6, 5457, 42, 24, 6, 5458, 42, 24, 6, 5459, 42, 24, 6, 5460, 42,
	24, 6, 5461, 42, 24, 6, 5462, 42, 24, 6, 5463, 42, 24, 6, 5464, 42,
	24, 6, 5465, 42, 24, 6, 5466, 42, 24, 6, 5467, 42, 24, 6, 5468, 42,
	24, 6, 5469, 42, 24, 6, 5470, 42, 24, 6, 5471, 42, 24, 6, 5472, 42,
	24, 6, 5473, 42, 24, 6, 5474, 42, 24, 6, 5475, 42, 24, 6, 5476, 42,
	24, 6, 5477, 42, 24, 6, 5478, 42, 24, 6, 5479, 42, 24, 6, 5480, 42,
	24, 6, 5481, 42, 24, 6, 5482, 42, 24, 6, 5483, 42, 24, 6, 5484, 42,
	24, 6, 5485, 42, 24, 6, 5486, 42, 24, 6, 5487, 42, 24, 6, 5488, 42,
	24, 6, 5489, 42, 24, 6, 5490, 42, 24, 6, 5491, 42, 24, 6, 5492, 42,
	24, 6, 5493, 42, 24, 6, 5494, 42, 24, 6, 5495, 42, 24, 6, 5496, 42,
	24, 6, 5497, 42, 24, 6, 5498, 42, 24, 6, 5499, 42, 24, 6, 5500, 42,
	24, 6, 5501, 42, 24, 6, 5502, 42, 24, 6, 5503, 42, 24, 6, 5504, 42,
	24, 6, 5505, 42, 24, 6, 5506, 42, 24, 6, 5507, 42, 24, 6, 5508, 42,
	24, 6, 5509, 42, 24, 6, 5510, 42, 24, 6, 5511, 42, 24, 6, 5512, 42,
	24, 6, 5513, 42, 24, 6, 5514, 42, 24, 6, 5515, 42, 24, 6, 5516, 42,
	24, 6, 5517, 42, 24, 6, 5518, 42, 24, 6, 5519, 42, 24, 6, 5520, 42,
	24, 6, 5521, 42, 24, 6, 5522, 42, 24, 6, 5523, 42, 24, 6, 5524, 42,
	24, 6, 5525, 42, 24, 6, 5526, 42, 24, 6, 5527, 42, 24, 6, 5528, 42,
	24, 6, 5529, 42, 24, 6, 5530, 42, 24, 6, 5531, 42, 24, 6, 5532, 42,
	24, 6, 5533, 42, 24, 6, 5534, 42, 24, 6, 5535, 42, 24, 6, 5536, 42,
	24, 6, 5537, 42, 24, 6, 5538, 42, 24, 6, 5539, 42, 24, 6, 5540, 42,
	24, 6, 5541, 42, 24, 6, 5542, 42, 24, 6, 5543, 42, 24, 6, 5544, 42,
	24, 6, 5545, 42, 24, 6, 5546, 42, 24, 6, 5547, 42, 24, 6, 5548, 42,
	24, 6, 5549, 42, 24, 6, 5550, 42, 24, 6, 5551, 42, 24, 6, 5552, 24,
	42, 24, 6, 5553, 71, 42, 24, 6, 5554, 98, 42, 24, 6, 5555, 51, 42,
	24, 6, 5556, 176, 42, 24, 6, 5557, 235, 42, 24, 6, 5558, 278, 42, 24,
	6, 5559, 227, 42, 24, 6, 1524, 136, 42, 24, 6, 1524, 2, 192, 8337, 42,
	24, 6, 1524, 2, 273, 8338, 42, 24, 6, 1524, 2, 349, 8339, 42, 24, 6,
	1524, 2, 466, 8340, 42, 24, 6, 5560, 290, 42, 24, 6, 5561, 268, 42, 24,
	6, 5562, 218, 42, 24, 6, 5563, 327, 42, 24, 6, 5564, 5707, 42, 24, 6,
	5565, 6159, 42, 24, 6, 5566, 6870, 42, 24, 6, 5567, 7204, 42, 24, 6, 5568,
	984, 42, 24, 6, 5569, 42, 24, 6, 5570, 42, 24, 6, 5571, 42, 24, 6,
	5572, 42, 24, 6, 5573, 42, 24, 6, 5574, 42, 24, 6, 5575, 42, 24, 6,
	5576, 75, 5, 7, 10, 263, 75, 5, 651, 738, 577, 75, 5, 651, 133, 738,
	577, 75, 5, 7, 543, 75, 5, 7, 10, 71, 75, 5, 7, 71, 8, 99,
	75, 5, 7, 1076, 590, 75, 5, 7, 1076, 590, 8, 499, 99, 75, 5, 7,
	1076, 590, 8, 724, 75, 5, 7, 1786, 590, 75, 5, 7, 98, 8, 323, 75,
	5, 7, 98, 8, 99, 75, 5, 7, 98, 8, 99, 34, 323, 75, 5, 7,
	261, 51, 75, 5, 7, 468, 261, 189, 51, 75, 5, 7, 2218, 590, 75, 5,
	7, 3878, 562, 75, 5, 7, 10, 220, 75, 5, 7, 220, 8, 99, 75, 5,
	7, 10, 220, 8, 99, 75, 5, 7, 235, 8, 89, 75, 5, 7, 10, 235,
	75, 5, 7, 1587, 8, 99, 75, 5, 7, 743, 278, 8, 89, 34, 99, 75,
	5, 7, 3569, 590, 75, 5, 7, 3579, 590, 75, 5, 7, 136, 8, 1015, 75,
	5, 7, 10, 136, 8, 1015, 75, 5, 7, 136, 8, 499, 99, 34, 1015, 75,
	5, 7, 1878, 75, 5, 7, 1878, 8, 499, 99, 75, 5, 7, 191, 218, 75,
	5, 7, 191, 218, 8, 1015, 75, 5, 7, 68, 8, 89, 75, 5, 7, 10,
	485, 75, 5, 7, 468, 327, 75, 5, 7, 389, 75, 5, 7, 191, 122, 8,
	187, 764, 75, 5, 7, 191, 122, 8, 187, 764, 34, 499, 99, 75, 5, 7,
	122, 8, 323, 75, 5, 7, 122, 8, 1210, 75, 5, 7, 10, 122, 75, 5,
	7, 4061, 590, 8, 724, 75, 5, 7, 2008, 590, 75, 5, 7, 2008, 590, 8,
	499, 99, 75, 5, 7, 1996, 590, 75, 5, 7, 221, 8, 499, 99, 75, 5,
	7, 229, 8, 45, 99, 75, 5, 7, 10, 218, 75, 5, 552, 322, 8, 89,
	75, 5, 261, 552, 322, 8, 89, 75, 5, 2120, 1018, 75, 5, 2183, 1018, 75,
	5, 3535, 1018, 75, 5, 3039, 1018, 75, 5, 499, 1018, 8, 499, 99, 75, 5,
	7, 121, 8, 724, 411, 9, 24, 411, 9, 51, 411, 9, 73, 411, 9, 68,
	411, 9, 60, 411, 9, 317, 411, 9, 1031, 411, 9, 106, 411, 9, 647, 411,
	9, 571, 411, 9, 606, 411, 9, 620, 411, 9, 202, 411, 9, 448, 411, 9,
	365, 411, 9, 765, 411, 9, 679, 411, 9, 182, 411, 9, 539, 411, 9, 540,
	411, 9, 607, 411, 9, 460, 411, 9, 185, 411, 9, 492, 411, 9, 493, 411,
	9, 433, 411, 9, 555, 411, 9, 119, 411, 9, 462, 411, 9, 427, 411, 9,
	808, 411, 9, 962, 411, 9, 173, 411, 9, 736, 411, 9, 716, 411, 9, 585,
	411, 9, 630, 411, 9, 195, 411, 9, 666, 411, 9, 632, 411, 9, 574, 411,
	9, 611, 411, 9, 196, 411, 9, 440, 411, 9, 686, 411, 9, 83, 411, 9,
	613, 411, 9, 286, 411, 9, 614, 411, 9, 668, 411, 9, 588, 411, 9, 899,
	411, 9, 1515, 411, 9, 443, 411, 9, 1012, 594, 589, 5, 818, 594, 589, 5,
	822, 594, 589, 5, 827, 594, 589, 5, 939, 594, 589, 5, 446, 594, 589, 5,
	488, 594, 589, 5, 901, 594, 589, 5, 849, 594, 589, 5, 1056, 594, 589, 5,
	866, 594, 589, 5, 852, 594, 589, 5, 885, 594, 589, 5, 746, 594, 589, 5,
	394, 594, 589, 5, 857, 594, 589, 5, 821, 594, 589, 5, 462, 594, 589, 5,
	856, 594, 589, 5, 1100, 594, 589, 5, 810, 594, 589, 5, 573, 594, 589, 5,
	839, 594, 589, 532, 6, 594, 589, 41, 67, 594, 589, 41, 70, 594, 589, 41,
	79, 594, 589, 41, 280, 594, 589, 41, 357, 594, 589, 41, 67, 159, 594, 589,
	41, 67, 203, 594, 589, 41, 280, 203, 584, 5, 818, 584, 5, 822, 584, 5,
	827, 584, 5, 939, 584, 5, 446, 584, 5, 488, 584, 5, 901, 584, 5, 849,
	584, 5, 1056, 584, 5, 866, 584, 5, 852, 584, 5, 885, 584, 5, 746, 584,
	5, 69, 394, 584, 5, 394, 584, 5, 857, 584, 5, 821, 584, 5, 462, 584,
	5, 856, 584, 5, 1100, 584, 5, 810, 584, 5, 573, 584, 5, 839, 584, 48,
	2, 142, 2223, 584, 45, 2, 142, 2223, 584, 41, 67, 584, 41, 70, 584, 41,
	79, 584, 41, 93, 584, 41, 100, 584, 41, 280, 584, 41, 357, 514, 5, 69,
	818, 514, 5, 818, 514, 5, 69, 822, 514, 5, 822, 514, 5, 827, 514, 5,
	939, 514, 5, 69, 446, 514, 5, 446, 514, 5, 488, 514, 5, 901, 514, 5,
	849, 514, 5, 1056, 514, 5, 69, 866, 514, 5, 866, 514, 5, 69, 852, 514,
	5, 852, 514, 5, 69, 885, 514, 5, 885, 514, 5, 69, 746, 514, 5, 746,
	514, 5, 69, 394, 514, 5, 394, 514, 5, 857, 514, 5, 821, 514, 5, 462,
	514, 5, 856, 514, 5, 1100, 514, 5, 810, 514, 5, 69, 573, 514, 5, 573,
	514, 5, 839, 514, 41, 67, 514, 41, 70, 514, 41, 79, 514, 41, 93, 514,
	6719, 41, 93, 514, 41, 100, 514, 41, 280, 514, 41, 357, 514, 41, 67, 159,
	675, 5, 818, 675, 5, 822, 675, 5, 827, 675, 5, 939, 2, 810, 675, 5,
	446, 675, 5, 488, 675, 5, 4226, 675, 5, 849, 675, 5, 1056, 675, 5, 866,
	675, 5, 852, 675, 5, 885, 675, 5, 746, 675, 5, 394, 675, 5, 857, 675,
	5, 3073, 675, 5, 462, 675, 5, 856, 675, 5, 1100, 675, 5, 573, 675, 5,
	839, 675, 41, 67, 675, 41, 100, 675, 41, 280, 675, 41, 357, 675, 41, 67,
	159, 627, 5, 5771, 627, 5, 1379, 627, 5, 7459, 627, 5, 6921, 627, 5, 446,
	627, 5, 2588, 627, 5, 11602, 627, 5, 3405, 627, 5, 1356, 627, 5, 1116, 627,
	5, 439, 627, 5, 8366, 627, 5, 746, 627, 5, 394, 627, 5, 10299, 627, 5,
	475, 627, 5, 462, 627, 5, 3924, 627, 5, 2450, 627, 5, 10103, 627, 5, 573,
	627, 5, 815, 627, 41, 67, 627, 41, 280, 627, 41, 357, 627, 41, 67, 159,
	627, 41, 70, 627, 41, 79, 627, 720, 681, 660, 5, 24, 660, 5, 71, 660,
	5, 220, 660, 5, 98, 660, 5, 51, 660, 5, 229, 660, 5, 73, 660, 5,
	218, 660, 5, 227, 660, 5, 136, 660, 5, 205, 660, 5, 151, 660, 5, 68,
	660, 5, 122, 660, 5, 1987, 660, 5, 221, 660, 5, 60, 660, 5, 176, 660,
	5, 389, 660, 5, 121, 660, 5, 2571, 660, 5, 524, 660, 5, 405, 660, 5,
	2334, 660, 5, 1635, 660, 5, 104, 660, 738, 56, 184, 582, 5, 24, 184, 582,
	5, 51, 184, 582, 5, 73, 184, 582, 5, 68, 184, 582, 5, 179, 184, 582,
	5, 286, 184, 582, 5, 251, 184, 582, 5, 251, 2, 192, 184, 582, 5, 119,
	184, 582, 5, 182, 184, 582, 5, 185, 184, 582, 5, 185, 2, 192, 184, 582,
	5, 492, 184, 582, 5, 492, 2, 192, 184, 582, 5, 173, 184, 582, 5, 173,
	2, 192, 184, 582, 5, 202, 184, 582, 5, 361, 184, 582, 5, 1144, 184, 582,
	5, 195, 184, 582, 5, 195, 2, 192, 184, 582, 5, 666, 184, 582, 5, 106,
	184, 582, 5, 768, 184, 582, 5, 196, 184, 582, 5, 196, 2, 192, 184, 582,
	5, 440, 184, 582, 5, 440, 2, 192, 184, 582, 5, 83, 184, 582, 5, 217,
	184, 582, 16, 4159, 184, 582, 16, 4159, 2, 192, 184, 259, 5, 24, 184, 259,
	5, 51, 184, 259, 5, 73, 184, 259, 5, 68, 184, 259, 5, 179, 184, 259,
	5, 286, 184, 259, 5, 251, 184, 259, 5, 119, 184, 259, 5, 182, 184, 259,
	5, 185, 184, 259, 5, 492, 184, 259, 5, 173, 184, 259, 5, 202, 184, 259,
	5, 361, 184, 259, 5, 1144, 184, 259, 5, 195, 184, 259, 5, 507, 195, 184,
	259, 5, 666, 184, 259, 5, 106, 184, 259, 5, 768, 184, 259, 5, 196, 184,
	259, 5, 440, 184, 259, 5, 83, 184, 259, 5, 217, 184, 259, 234, 944, 1111,
	184, 259, 234, 67, 133, 184, 259, 1225, 10087, 184, 259, 1225, 7952, 184, 259, 41,
	67, 184, 259, 41, 70, 184, 259, 41, 79, 184, 259, 41, 93, 184, 259, 41,
	100, 184, 259, 41, 139, 184, 259, 41, 157, 184, 259, 41, 140, 184, 259, 41,
	160, 184, 259, 41, 280, 184, 259, 41, 357, 184, 259, 41, 451, 184, 259, 41,
	605, 184, 259, 41, 551, 184, 259, 41, 748, 184, 259, 41, 566, 184, 259, 41,
	67, 159, 184, 259, 41, 70, 159, 184, 259, 41, 79, 159, 184, 259, 41, 93,
	159, 184, 259, 41, 100, 159, 184, 259, 41, 139, 159, 184, 259, 41, 157, 159,
	184, 259, 41, 140, 159, 184, 259, 41, 160, 159, 184, 259, 41, 67, 203, 184,
	259, 41, 70, 203, 184, 259, 41, 79, 203, 184, 259, 41, 93, 203, 184, 259,
	41, 100, 203, 184, 259, 41, 139, 203, 184, 259, 41, 157, 203, 184, 259, 41,
	140, 203, 184, 259, 41, 160, 203, 184, 259, 41, 280, 203, 184, 259, 41, 357,
	203, 184, 259, 41, 451, 203, 184, 259, 41, 605, 203, 184, 259, 41, 551, 203,
	184, 259, 41, 748, 203, 184, 259, 41, 566, 203, 184, 259, 41, 876, 203, 184,
	259, 41, 529, 203, 184, 259, 41, 67, 159, 203, 184, 259, 41, 70, 159, 203,
	184, 259, 41, 79, 159, 203, 184, 259, 41, 93, 159, 203, 184, 259, 41, 100,
	159, 203, 184, 259, 41, 139, 159, 203, 184, 259, 41, 157, 159, 203, 184, 259,
	41, 140, 159, 203, 184, 259, 41, 160, 159, 203, 184, 259, 234, 67, 10973, 184,
	259, 234, 70, 1111, 184, 259, 234, 79, 1111, 184, 259, 234, 93, 1111, 184, 259,
	234, 100, 1111, 184, 259, 234, 139, 1111, 184, 259, 234, 157, 1111, 184, 259, 234,
	140, 1111, 184, 259, 234, 160, 1111, 184, 259, 234, 280, 1111, 352, 5, 24, 352,
	26, 6, 73, 352, 26, 6, 60, 352, 26, 6, 149, 122, 352, 26, 6, 51,
	352, 26, 6, 68, 352, 26, 731, 56, 352, 6, 55, 190, 76, 352, 6, 419,
	352, 6, 534, 352, 5, 106, 352, 5, 361, 352, 5, 224, 352, 5, 459, 352,
	5, 325, 352, 5, 358, 352, 5, 317, 352, 5, 363, 352, 5, 436, 352, 5,
	500, 352, 5, 437, 352, 5, 509, 352, 5, 481, 352, 5, 196, 352, 5, 386,
	352, 5, 217, 352, 5, 453, 352, 5, 185, 352, 5, 119, 352, 5, 412, 352,
	5, 251, 352, 5, 483, 352, 5, 182, 352, 5, 179, 352, 5, 173, 352, 5,
	202, 352, 5, 413, 352, 5, 321, 352, 5, 518, 352, 5, 195, 352, 5, 443,
	352, 5, 143, 352, 5, 2305, 352, 5, 10943, 352, 5, 4123, 352, 5, 11229, 352,
	6, 146, 53, 352, 6, 6393, 352, 6, 77, 76, 352, 505, 352, 23, 67, 352,
	23, 70, 352, 23, 79, 352, 23, 93, 352, 41, 280, 352, 41, 357, 352, 41,
	67, 159, 352, 41, 67, 203, 352, 234, 67, 133, 352, 225, 77, 352, 225, 7,
	125, 352, 225, 125, 352, 225, 1391, 146, 352, 225, 8709, 352, 225, 1884, 352, 225,
	604, 352, 225, 55, 604, 352, 225, 2327, 50, 253, 369, 5, 446, 50, 253, 369,
	5, 885, 50, 253, 369, 5, 849, 50, 253, 369, 5, 746, 50, 253, 369, 5,
	1100, 50, 253, 369, 5, 488, 50, 253, 369, 5, 573, 50, 253, 369, 5, 810,
	50, 253, 369, 5, 822, 50, 253, 369, 5, 839, 50, 253, 369, 5, 2469, 50,
	253, 369, 5, 852, 50, 253, 369, 5, 394, 50, 253, 369, 5, 8182, 50, 253,
	369, 5, 856, 50, 253, 369, 5, 857, 50, 253, 369, 5, 982, 50, 253, 369,
	5, 144, 50, 253, 369, 5, 3073, 50, 253, 369, 5, 6939, 50, 253, 369, 5,
	827, 50, 253, 369, 5, 939, 50, 253, 369, 5, 7538, 50, 253, 369, 5, 1056,
	50, 253, 369, 5, 4226, 50, 253, 369, 5, 6942, 50, 253, 369, 5, 866, 50,
	253, 369, 5, 10789, 50, 253, 369, 5, 10794, 50, 253, 369, 41, 67, 50, 253,
	369, 41, 551, 50, 253, 369, 206, 570, 50, 214, 369, 5, 447, 50, 214, 369,
	5, 318, 50, 214, 369, 5, 199, 50, 214, 369, 5, 108, 50, 214, 369, 5,
	549, 50, 214, 369, 5, 488, 50, 214, 369, 5, 880, 2, 192, 50, 214, 369,
	5, 531, 50, 214, 369, 5, 476, 50, 214, 369, 5, 423, 50, 214, 369, 5,
	880, 2, 291, 50, 214, 369, 5, 439, 50, 214, 369, 5, 355, 50, 214, 369,
	5, 351, 50, 214, 369, 5, 565, 50, 214, 369, 5, 880, 2, 273, 50, 214,
	369, 5, 526, 50, 214, 369, 5, 144, 50, 214, 369, 5, 475, 50, 214, 369,
	5, 579, 50, 214, 369, 5, 7487, 50, 214, 369, 5, 782, 50, 214, 369, 5,
	674, 50, 214, 369, 5, 520, 50, 214, 369, 5, 867, 50, 214, 369, 5, 1263,
	50, 214, 369, 5, 115, 50, 214, 369, 5, 708, 50, 214, 369, 5, 934, 50,
	214, 369, 41, 67, 50, 214, 369, 41, 280, 50, 214, 369, 41, 357, 431, 5,
	818, 431, 5, 822, 431, 5, 3103, 431, 5, 827, 431, 5, 7549, 431, 5, 939,
	431, 5, 446, 431, 5, 488, 431, 6, 652, 431, 5, 901, 431, 5, 11626, 431,
	5, 8012, 431, 5, 8022, 431, 5, 849, 431, 5, 1056, 431, 5, 866, 431, 5,
	852, 431, 5, 11408, 431, 5, 3495, 431, 5, 885, 431, 5, 6943, 431, 5, 10786,
	431, 5, 746, 431, 5, 394, 431, 5, 857, 431, 5, 821, 431, 5, 5622, 431,
	5, 462, 431, 5, 982, 431, 5, 856, 431, 5, 1100, 431, 5, 11427, 431, 5,
	9901, 431, 5, 810, 431, 5, 573, 431, 5, 10526, 431, 5, 839, 431, 774, 56,
	53, 431, 774, 56, 76, 431, 41, 67, 431, 41, 100, 431, 41, 280, 431, 41,
	357, 431, 41, 67, 159, 431, 225, 391, 431, 225, 2223, 431, 225, 55, 77, 1362,
	77, 431, 225, 77, 1362, 77, 431, 225, 77, 431, 225, 70, 63, 431, 225, 245,
	1026, 410, 5, 24, 410, 5, 263, 410, 5, 1743, 410, 5, 5617, 410, 5, 524,
	410, 5, 3011, 410, 5, 543, 410, 5, 3021, 410, 5, 51, 410, 5, 496, 410,
	5, 68, 410, 5, 454, 410, 5, 73, 410, 5, 300, 410, 5, 60, 410, 5,
	324, 410, 5, 647, 410, 5, 1515, 410, 5, 4194, 410, 5, 11435, 410, 5, 1085,
	410, 5, 2242, 410, 5, 801, 410, 5, 1124, 410, 5, 984, 410, 5, 440, 410,
	5, 487, 410, 5, 710, 410, 5, 1555, 410, 5, 1696, 410, 5, 462, 410, 5,
	982, 410, 5, 871, 410, 5, 1756, 410, 5, 3703, 410, 5, 9162, 410, 5, 9161,
	410, 5, 492, 410, 5, 2399, 410, 5, 9250, 410, 5, 539, 410, 5, 7782, 410,
	5, 11553, 410, 5, 753, 410, 5, 842, 410, 5, 736, 410, 5, 448, 410, 5,
	666, 410, 5, 739, 410, 5, 464, 410, 5, 868, 410, 5, 10400, 410, 5, 10525,
	410, 5, 446, 410, 774, 56, 1692, 70, 63, 172, 67, 77, 225, 7, 70, 63,
	172, 67, 77, 225, 252, 70, 63, 172, 67, 77, 225, 252, 67, 77, 172, 70,
	63, 225, 252, 70, 3905, 172, 67, 190, 225, 252, 67, 190, 172, 70, 3905, 225,
	400, 609, 5, 818, 400, 609, 5, 822, 400, 609, 5, 827, 400, 609, 5, 939,
	400, 609, 5, 446, 400, 609, 5, 488, 400, 609, 5, 901, 400, 609, 5, 849,
	400, 609, 5, 1056, 400, 609, 5, 866, 400, 609, 5, 852, 400, 609, 5, 885,
	400, 609, 5, 746, 400, 609, 5, 394, 400, 609, 5, 857, 400, 609, 5, 821,
	400, 609, 5, 462, 400, 609, 5, 856, 400, 609, 5, 1100, 400, 609, 5, 810,
	400, 609, 5, 573, 400, 609, 5, 839, 400, 609, 41, 67, 400, 609, 41, 70,
	400, 609, 41, 79, 400, 609, 41, 93, 400, 609, 41, 280, 400, 609, 41, 357,
	400, 609, 41, 67, 159, 400, 609, 41, 67, 203, 400, 408, 5, 818, 400, 408,
	5, 822, 400, 408, 5, 827, 400, 408, 5, 939, 400, 408, 5, 446, 400, 408,
	5, 488, 2, 821, 2, 810, 400, 408, 5, 901, 400, 408, 5, 849, 400, 408,
	5, 1056, 400, 408, 5, 866, 400, 408, 5, 852, 400, 408, 5, 885, 400, 408,
	5, 746, 2, 1100, 400, 408, 5, 394, 400, 408, 5, 857, 400, 408, 5, 462,
	400, 408, 5, 856, 400, 408, 5, 573, 400, 408, 5, 839, 400, 408, 41, 67,
	400, 408, 41, 70, 400, 408, 41, 79, 400, 408, 41, 93, 400, 408, 41, 280,
	400, 408, 41, 357, 400, 408, 41, 67, 159, 400, 408, 41, 67, 203, 628, 408,
	5, 818, 628, 408, 5, 822, 628, 408, 5, 827, 628, 408, 5, 939, 628, 408,
	5, 446, 628, 408, 5, 488, 2, 821, 2, 810, 628, 408, 5, 901, 628, 408,
	5, 849, 628, 408, 5, 866, 628, 408, 5, 852, 628, 408, 5, 885, 628, 408,
	5, 746, 2, 1100, 628, 408, 5, 394, 628, 408, 5, 857, 628, 408, 5, 462,
	628, 408, 5, 856, 628, 408, 5, 573, 628, 408, 5, 839, 628, 408, 532, 56,
	628, 408, 191, 532, 56, 628, 408, 93, 63, 8, 425, 628, 408, 93, 63, 8,
	77, 628, 408, 41, 67, 628, 408, 41, 70, 628, 408, 41, 79, 628, 408, 41,
	93, 628, 408, 41, 280, 628, 408, 41, 357, 628, 408, 41, 67, 159, 50, 328,
	5, 498, 24, 50, 328, 5, 600, 24, 50, 328, 5, 600, 543, 50, 328, 5,
	498, 73, 50, 328, 5, 600, 73, 50, 328, 5, 600, 51, 50, 328, 5, 498,
	68, 50, 328, 5, 498, 485, 50, 328, 5, 600, 485, 50, 328, 5, 498, 741,
	50, 328, 5, 600, 741, 50, 328, 5, 498, 3019, 50, 328, 5, 600, 3019, 50,
	328, 5, 498, 1739, 50, 328, 5, 600, 1739, 50, 328, 5, 498, 3022, 50, 328,
	5, 600, 3022, 50, 328, 5, 498, 1283, 50, 328, 5, 600, 1283, 50, 328, 5,
	498, 5725, 50, 328, 5, 498, 1567, 50, 328, 5, 600, 1567, 50, 328, 5, 498,
	971, 50, 328, 5, 600, 971, 50, 328, 5, 498, 3026, 50, 328, 5, 600, 3026,
	50, 328, 5, 498, 3023, 50, 328, 5, 600, 3023, 50, 328, 5, 498, 3762, 50,
	328, 5, 600, 3762, 50, 328, 5, 498, 775, 50, 328, 5, 600, 775, 50, 328,
	5, 498, 5727, 50, 328, 5, 498, 7145, 50, 328, 5, 498, 714, 50, 328, 5,
	498, 524, 50, 328, 5, 498, 1368, 50, 328, 5, 600, 1368, 50, 328, 5, 498,
	1405, 50, 328, 5, 600, 1405, 50, 328, 5, 498, 1806, 50, 328, 5, 600, 1806,
	50, 328, 5, 498, 1406, 50, 328, 5, 600, 1406, 50, 328, 5, 600, 935, 50,
	328, 5, 498, 980, 50, 328, 5, 600, 5728, 50, 328, 5, 498, 1807, 50, 328,
	5, 498, 2407, 50, 328, 5, 498, 2270, 50, 328, 5, 498, 1563, 50, 328, 5,
	600, 1563, 50, 328, 5, 498, 1532, 50, 328, 5, 600, 1532, 50, 328, 5, 498,
	2281, 50, 328, 5, 600, 2281, 50, 328, 5, 498, 2409, 50, 328, 5, 600, 2409,
	50, 328, 5, 498, 1186, 50, 328, 5, 600, 1186, 50, 328, 5, 498, 5729, 50,
	328, 5, 498, 755, 50, 328, 5, 498, 5731, 50, 328, 5, 498, 403, 50, 328,
	5, 600, 403, 50, 328, 5, 498, 785, 50, 328, 5, 600, 785, 50, 328, 5,
	498, 653, 50, 328, 5, 600, 653, 50, 328, 5, 498, 3025, 50, 328, 5, 600,
	3025, 50, 328, 5, 498, 1919, 50, 328, 5, 498, 6153, 50, 208, 10, 5, 24,
	50, 208, 10, 5, 263, 50, 208, 10, 5, 2201, 50, 208, 10, 5, 3040, 50,
	208, 10, 5, 1563, 50, 208, 10, 5, 1806, 50, 208, 10, 5, 3279, 50, 208,
	10, 5, 3280, 50, 208, 10, 5, 34, 50, 208, 10, 5, 51, 50, 208, 10,
	5, 2147, 51, 50, 208, 10, 5, 496, 50, 208, 10, 5, 1077, 50, 208, 10,
	5, 3281, 50, 208, 10, 5, 3283, 50, 208, 10, 5, 1078, 50, 208, 10, 5,
	73, 50, 208, 10, 5, 300, 50, 208, 10, 5, 3291, 50, 208, 10, 5, 1404,
	50, 208, 10, 5, 1371, 50, 208, 10, 5, 4144, 50, 208, 10, 5, 712, 50,
	208, 10, 5, 3293, 50, 208, 10, 5, 714, 50, 208, 10, 5, 405, 50, 208,
	10, 5, 1406, 50, 208, 10, 5, 68, 50, 208, 10, 5, 454, 50, 208, 10,
	5, 1906, 485, 50, 208, 10, 5, 1957, 485, 50, 208, 10, 5, 3761, 50, 208,
	10, 5, 1807, 50, 208, 10, 5, 3295, 50, 208, 10, 5, 879, 50, 208, 10,
	5, 295, 879, 50, 208, 10, 5, 880, 50, 208, 10, 5, 3307, 50, 208, 10,
	5, 945, 50, 208, 10, 5, 1405, 50, 208, 10, 5, 3309, 50, 208, 10, 5,
	1403, 50, 208, 10, 5, 60, 50, 208, 10, 5, 324, 50, 208, 10, 5, 1906,
	719, 50, 208, 10, 5, 1957, 719, 50, 208, 10, 5, 2209, 50, 208, 10, 5,
	1567, 50, 208, 10, 5, 3313, 50, 208, 10, 5, 1405, 2, 925, 6, 50, 208,
	10, 5, 2018, 50, 208, 7, 5, 24, 50, 208, 7, 5, 263, 50, 208, 7,
	5, 2201, 50, 208, 7, 5, 3040, 50, 208, 7, 5, 1563, 50, 208, 7, 5,
	1806, 50, 208, 7, 5, 3279, 50, 208, 7, 5, 3280, 50, 208, 7, 5, 34,
	50, 208, 7, 5, 51, 50, 208, 7, 5, 2147, 51, 50, 208, 7, 5, 496,
	50, 208, 7, 5, 1077, 50, 208, 7, 5, 3281, 50, 208, 7, 5, 3283, 50,
	208, 7, 5, 1078, 50, 208, 7, 5, 73, 50, 208, 7, 5, 300, 50, 208,
	7, 5, 3291, 50, 208, 7, 5, 1404, 50, 208, 7, 5, 1371, 50, 208, 7,
	5, 4144, 50, 208, 7, 5, 712, 50, 208, 7, 5, 3293, 50, 208, 7, 5,
	714, 50, 208, 7, 5, 405, 50, 208, 7, 5, 1406, 50, 208, 7, 5, 68,
	50, 208, 7, 5, 454, 50, 208, 7, 5, 1906, 485, 50, 208, 7, 5, 1957,
	485, 50, 208, 7, 5, 3761, 50, 208, 7, 5, 1807, 50, 208, 7, 5, 3295,
	50, 208, 7, 5, 879, 50, 208, 7, 5, 295, 879, 50, 208, 7, 5, 880,
	50, 208, 7, 5, 3307, 50, 208, 7, 5, 945, 50, 208, 7, 5, 1405, 50,
	208, 7, 5, 3309, 50, 208, 7, 5, 1403, 50, 208, 7, 5, 60, 50, 208,
	7, 5, 324, 50, 208, 7, 5, 1906, 719, 50, 208, 7, 5, 1957, 719, 50,
	208, 7, 5, 2209, 50, 208, 7, 5, 1567, 50, 208, 7, 5, 3313, 50, 208,
	7, 5, 1405, 2, 925, 6, 50, 208, 7, 5, 2018, 50, 208, 41, 67, 50,
	208, 41, 100, 50, 208, 41, 280, 50, 208, 41, 551, 50, 208, 41, 67, 159,
	50, 208, 41, 67, 203, 438, 434, 5, 24, 438, 434, 5, 251, 438, 434, 5,
	119, 438, 434, 5, 196, 438, 434, 5, 436, 438, 434, 5, 317, 438, 434, 5,
	325, 438, 434, 5, 143, 438, 434, 5, 361, 438, 434, 5, 502, 438, 434, 5,
	217, 438, 434, 5, 437, 438, 434, 5, 173, 438, 434, 5, 769, 438, 434, 5,
	443, 438, 434, 5, 195, 438, 434, 5, 321, 438, 434, 5, 106, 438, 434, 5,
	224, 438, 434, 5, 202, 438, 434, 5, 182, 438, 434, 5, 185, 438, 434, 5,
	286, 438, 434, 5, 3499, 286, 438, 434, 5, 179, 438, 434, 5, 3499, 179, 438,
	434, 5, 312, 438, 434, 5, 363, 438, 434, 5, 413, 438, 434, 26, 24, 438,
	434, 26, 73, 438, 434, 26, 60, 438, 434, 26, 51, 438, 434, 26, 68, 438,
	434, 56, 10233, 438, 434, 56, 185, 8186, 438, 434, 6, 7681, 438, 434, 6, 10723,
	438, 434, 6, 10733, 438, 434, 6, 10744, 438, 434, 23, 254, 438, 434, 23, 67,
	438, 434, 23, 70, 438, 434, 23, 79, 438, 434, 23, 93, 438, 434, 23, 100,
	438, 434, 23, 139, 438, 434, 23, 157, 438, 434, 23, 140, 438, 434, 23, 160,
	595, 23, 67, 595, 23, 70, 595, 23, 79, 595, 23, 93, 595, 23, 100, 595,
	23, 139, 595, 23, 157, 595, 23, 140, 595, 23, 160, 595, 41, 280, 595, 41,
	357, 595, 41, 451, 595, 41, 605, 595, 41, 551, 595, 41, 748, 595, 41, 566,
	595, 41, 876, 595, 41, 529, 595, 41, 67, 159, 595, 41, 70, 159, 595, 41,
	79, 159, 595, 41, 93, 159, 595, 41, 100, 159, 595, 41, 139, 159, 595, 41,
	157, 159, 595, 41, 140, 159, 595, 41, 160, 159, 595, 234, 67, 133, 595, 234,
	67, 516, 595, 234, 67, 928, 595, 234, 70, 1171, 465, 5, 7144, 465, 5, 871,
	465, 5, 462, 465, 5, 2428, 465, 5, 487, 465, 5, 666, 465, 5, 846, 465,
	5, 6477, 465, 5, 6473, 465, 5, 1144, 465, 5, 899, 465, 5, 782, 465, 5,
	2038, 465, 5, 173, 465, 5, 1162, 465, 5, 443, 465, 5, 317, 465, 5, 1977,
	465, 5, 573, 465, 5, 565, 465, 5, 579, 465, 5, 196, 465, 5, 739, 465,
	5, 3312, 465, 5, 11415, 465, 5, 502, 465, 5, 413, 465, 5, 413, 506, 25,
	465, 5, 549, 465, 5, 439, 465, 5, 8176, 465, 5, 1084, 465, 5, 318, 465,
	5, 1893, 465, 5, 394, 465, 5, 1059, 465, 5, 488, 465, 5, 1645, 465, 5,
	2211, 465, 5, 7690, 465, 5, 1713, 465, 5, 945, 465, 43, 299, 56, 465, 43,
	1037, 56, 465, 3434, 56, 465, 5, 318, 8, 77, 53, 465, 5, 1713, 8, 294,
	53, 50, 276, 5, 818, 50, 276, 5, 69, 818, 50, 276, 5, 822, 50, 276,
	5, 69, 822, 50, 276, 5, 827, 50, 276, 5, 446, 50, 276, 5, 69, 446,
	50, 276, 5, 488, 50, 276, 5, 901, 50, 276, 5, 849, 50, 276, 5, 866,
	50, 276, 5, 852, 50, 276, 5, 885, 50, 276, 5, 746, 50, 276, 5, 394,
	50, 276, 5, 69, 394, 50, 276, 5, 69, 394, 8, 86, 323, 50, 276, 5,
	857, 50, 276, 5, 821, 50, 276, 5, 506, 821, 50, 276, 5, 462, 50, 276,
	5, 856, 50, 276, 5, 69, 856, 50, 276, 5, 69, 856, 8, 86, 323, 50,
	276, 5, 810, 2, 821, 2, 939, 50, 276, 5, 573, 50, 276, 5, 839, 50,
	276, 5, 69, 839, 50, 276, 5, 69, 839, 8, 86, 323, 50, 276, 41, 67,
	50, 276, 41, 70, 50, 276, 41, 79, 50, 276, 41, 93, 50, 276, 41, 100,
	50, 276, 41, 280, 50, 276, 41, 357, 50, 276, 41, 451, 50, 276, 41, 67,
	159, 50, 276, 234, 67, 133, 50, 276, 44, 821, 2, 939, 276, 5, 818, 276,
	5, 822, 276, 5, 827, 276, 5, 446, 276, 5, 488, 276, 5, 901, 276, 5,
	849, 276, 5, 866, 276, 5, 852, 276, 5, 885, 276, 5, 746, 276, 5, 394,
	276, 5, 857, 276, 5, 821, 276, 5, 462, 276, 5, 856, 276, 5, 810, 2,
	821, 276, 5, 573, 276, 5, 839, 276, 5, 7307, 276, 5, 3547, 276, 704, 573,
	276, 43, 77, 76, 276, 43, 70, 63, 76, 276, 43, 77, 53, 276, 43, 70,
	63, 53, 276, 43, 522, 53, 276, 43, 522, 76, 276, 43, 99, 53, 276, 43,
	99, 76, 276, 43, 187, 99, 76, 276, 43, 810, 76, 276, 43, 89, 76, 276,
	41, 67, 276, 41, 280, 276, 41, 357, 276, 41, 67, 159, 276, 225, 70, 86,
	1535, 276, 225, 70, 86, 1535, 8, 63, 276, 225, 125, 8, 77, 276, 225, 70,
	824, 8, 63, 276, 225, 133, 125, 8, 77, 50, 688, 5, 818, 50, 688, 5,
	822, 50, 688, 5, 827, 2, 849, 50, 688, 5, 488, 50, 688, 5, 901, 50,
	688, 5, 69, 849, 50, 688, 5, 866, 50, 688, 5, 852, 50, 688, 5, 885,
	50, 688, 5, 746, 50, 688, 5, 394, 50, 688, 5, 857, 50, 688, 5, 462,
	50, 688, 5, 856, 50, 688, 5, 810, 50, 688, 5, 573, 50, 688, 5, 839,
	50, 688, 5, 3547, 50, 688, 43, 77, 53, 50, 688, 43, 77, 76, 50, 688,
	43, 70, 63, 53, 50, 688, 43, 70, 63, 76, 50, 688, 225, 146, 50, 688,
	225, 70, 1535, 50, 688, 225, 70, 63, 50, 688, 225, 93, 63, 644, 5, 818,
	644, 5, 7, 818, 644, 5, 822, 644, 5, 827, 644, 5, 939, 644, 5, 446,
	644, 5, 488, 644, 5, 6730, 488, 644, 5, 901, 644, 5, 849, 644, 5, 866,
	644, 5, 852, 644, 5, 885, 644, 5, 746, 644, 5, 394, 644, 5, 857, 644,
	5, 821, 644, 5, 462, 644, 5, 810, 644, 5, 573, 644, 5, 839, 644, 41,
	67, 644, 41, 70, 644, 41, 79, 644, 41, 93, 644, 41, 280, 644, 41, 357,
	644, 41, 67, 159, 713, 5, 818, 713, 5, 822, 713, 5, 827, 713, 5, 939,
	713, 5, 446, 713, 5, 488, 713, 5, 901, 713, 5, 849, 713, 5, 1056, 713,
	5, 866, 713, 5, 852, 713, 5, 885, 713, 5, 746, 713, 5, 394, 713, 5,
	857, 713, 5, 821, 713, 5, 462, 713, 5, 856, 713, 5, 1100, 713, 5, 810,
	713, 5, 573, 713, 5, 839, 713, 44, 901, 2, 866, 201, 6, 559, 201, 6,
	419, 201, 6, 534, 201, 6, 1435, 201, 6, 1507, 201, 5, 24, 201, 5, 263,
	201, 5, 73, 201, 5, 300, 201, 5, 60, 201, 5, 324, 201, 5, 149, 122,
	201, 5, 149, 517, 201, 5, 149, 136, 201, 5, 149, 554, 201, 5, 51, 201,
	5, 292, 201, 5, 68, 201, 5, 313, 201, 5, 106, 201, 5, 361, 201, 5,
	224, 201, 5, 459, 201, 5, 312, 201, 5, 325, 201, 5, 358, 201, 5, 317,
	201, 5, 547, 201, 5, 363, 201, 5, 436, 201, 5, 500, 201, 5, 437, 201,
	5, 509, 201, 5, 481, 201, 5, 196, 201, 5, 386, 201, 5, 217, 201, 5,
	453, 201, 5, 185, 201, 5, 119, 201, 5, 412, 201, 5, 251, 201, 5, 483,
	201, 5, 182, 201, 5, 179, 201, 5, 173, 201, 5, 202, 201, 5, 413, 201,
	5, 321, 201, 5, 518, 201, 5, 195, 201, 5, 143, 201, 5, 657, 201, 5,
	50, 168, 1448, 201, 5, 50, 168, 769, 201, 5, 50, 168, 1636, 201, 26, 6,
	263, 201, 26, 6, 6214, 263, 201, 26, 6, 73, 201, 26, 6, 300, 201, 26,
	6, 60, 201, 26, 6, 324, 201, 26, 6, 149, 122, 201, 26, 6, 149, 517,
	201, 26, 6, 149, 136, 201, 26, 6, 149, 554, 201, 26, 6, 51, 201, 26,
	6, 292, 201, 26, 6, 68, 201, 26, 6, 313, 201, 505, 201, 604, 201, 55,
	604, 201, 225, 77, 201, 225, 55, 77, 201, 225, 245, 201, 225, 1391, 146, 201,
	225, 1884, 201, 41, 67, 201, 41, 70, 201, 41, 79, 201, 41, 93, 201, 41,
	100, 201, 41, 139, 201, 41, 157, 201, 41, 140, 201, 41, 160, 201, 41, 280,
	201, 41, 357, 201, 41, 451, 201, 41, 605, 201, 41, 551, 201, 41, 748, 201,
	41, 566, 201, 41, 876, 201, 41, 529, 201, 41, 67, 159, 201, 41, 67, 203,
	201, 23, 254, 201, 23, 67, 201, 23, 70, 201, 23, 79, 201, 23, 93, 201,
	23, 100, 201, 23, 139, 201, 23, 157, 201, 23, 140, 201, 23, 160, 201, 6,
	50, 168, 505, 201, 5, 50, 168, 295, 51, 201, 5, 50, 168, 295, 68, 201,
	26, 6, 50, 168, 295, 51, 201, 26, 6, 50, 168, 295, 68, 201, 5, 50,
	168, 657, 201, 41, 1219, 350, 6, 559, 350, 6, 419, 350, 6, 534, 350, 5,
	24, 350, 5, 263, 350, 5, 73, 350, 5, 300, 350, 5, 60, 350, 5, 324,
	350, 5, 51, 350, 5, 292, 350, 5, 68, 350, 5, 313, 350, 5, 106, 350,
	5, 361, 350, 5, 224, 350, 5, 459, 350, 5, 312, 350, 5, 325, 350, 5,
	358, 350, 5, 317, 350, 5, 547, 350, 5, 363, 350, 5, 436, 350, 5, 500,
	350, 5, 437, 350, 5, 3218, 350, 5, 509, 350, 5, 1162, 350, 5, 481, 350,
	5, 196, 350, 5, 386, 350, 5, 217, 350, 5, 453, 350, 5, 185, 350, 5,
	119, 350, 5, 412, 350, 5, 251, 350, 5, 483, 350, 5, 182, 350, 5, 179,
	350, 5, 173, 350, 5, 202, 350, 5, 413, 350, 5, 321, 350, 5, 518, 350,
	5, 195, 350, 5, 143, 350, 26, 6, 263, 350, 26, 6, 73, 350, 26, 6,
	300, 350, 26, 6, 60, 350, 26, 6, 324, 350, 26, 6, 51, 350, 26, 6,
	292, 350, 26, 6, 68, 350, 26, 6, 313, 350, 6, 505, 350, 6, 693, 350,
	774, 6, 350, 7163, 6, 350, 41, 6, 350, 532, 56, 350, 55, 532, 56, 350,
	604, 350, 55, 604, 350, 26, 6, 149, 122, 350, 41, 6, 53, 557, 556, 5,
	3926, 557, 556, 5, 520, 557, 556, 5, 6131, 557, 556, 5, 6360, 557, 556, 5,
	6850, 557, 556, 5, 3347, 557, 556, 5, 3629, 557, 556, 5, 9099, 557, 556, 5,
	8358, 557, 556, 5, 2370, 557, 556, 5, 542, 557, 556, 5, 9595, 557, 556, 5,
	2031, 557, 556, 5, 10001, 557, 556, 5, 199, 557, 556, 5, 3476, 557, 556, 5,
	8005, 557, 556, 5, 9374, 557, 556, 5, 970, 557, 556, 5, 7124, 557, 556, 5,
	2272, 557, 556, 5, 2578, 557, 556, 5, 1640, 557, 556, 5, 1078, 557, 556, 5,
	3626, 557, 556, 23, 254, 557, 556, 23, 67, 557, 556, 23, 70, 557, 556, 23,
	79, 557, 556, 23, 93, 557, 556, 23, 100, 557, 556, 23, 139, 557, 556, 23,
	157, 557, 556, 23, 140, 557, 556, 23, 160, 337, 6, 559, 337, 6, 419, 337,
	6, 534, 337, 5, 263, 337, 5, 73, 337, 5, 60, 337, 5, 51, 337, 5,
	1850, 337, 5, 3491, 337, 5, 1576, 337, 5, 3370, 337, 5, 1904, 337, 5, 2133,
	337, 5, 3163, 337, 5, 3457, 337, 5, 8020, 337, 5, 3751, 337, 5, 4118, 337,
	5, 2572, 337, 5, 3217, 337, 5, 3220, 337, 5, 9249, 337, 5, 1348, 337, 5,
	1689, 337, 5, 3203, 337, 5, 6937, 337, 5, 1454, 337, 5, 1465, 337, 5, 3816,
	337, 5, 1749, 337, 5, 6212, 337, 5, 2335, 337, 5, 11552, 337, 5, 1516, 337,
	5, 1663, 337, 5, 1613, 337, 5, 1705, 337, 5, 1959, 337, 5, 1029, 337, 26,
	6, 24, 337, 26, 6, 73, 337, 26, 6, 300, 337, 26, 6, 60, 337, 26,
	6, 324, 337, 26, 6, 51, 337, 26, 6, 292, 337, 26, 6, 68, 337, 26,
	6, 313, 337, 26, 6, 1641, 337, 68, 56, 337, 313, 56, 337, 505, 337, 8679,
	337, 23, 254, 337, 23, 67, 337, 23, 70, 337, 23, 79, 337, 23, 93, 337,
	23, 100, 337, 23, 139, 337, 23, 157, 337, 23, 140, 337, 23, 160, 337, 532,
	56, 337, 604, 337, 55, 604, 337, 629, 56, 337, 5, 3550, 337, 26, 6, 263,
	337, 26, 6, 1133, 337, 5, 4152, 523, 5, 24, 523, 5, 73, 523, 5, 60,
	523, 5, 51, 523, 5, 68, 523, 5, 106, 523, 5, 361, 523, 5, 224, 523,
	5, 459, 523, 5, 325, 523, 5, 358, 523, 5, 317, 523, 5, 547, 523, 5,
	363, 523, 5, 436, 523, 5, 500, 523, 5, 437, 523, 5, 509, 523, 5, 481,
	523, 5, 196, 523, 5, 386, 523, 5, 217, 523, 5, 453, 523, 5, 185, 523,
	5, 119, 523, 5, 412, 523, 5, 251, 523, 5, 483, 523, 5, 182, 523, 5,
	173, 523, 5, 202, 523, 5, 413, 523, 5, 195, 523, 5, 143, 523, 5, 769,
	523, 6, 693, 523, 774, 6, 523, 532, 56, 523, 44, 3966, 247, 6, 559, 247,
	6, 419, 247, 6, 534, 247, 5, 24, 247, 5, 263, 247, 5, 73, 247, 5,
	300, 247, 5, 60, 247, 5, 324, 247, 5, 149, 122, 247, 5, 149, 517, 247,
	5, 149, 136, 247, 5, 149, 554, 247, 5, 51, 247, 5, 292, 247, 5, 68,
	247, 5, 313, 247, 5, 106, 247, 5, 361, 247, 5, 224, 247, 5, 459, 247,
	5, 312, 247, 5, 325, 247, 5, 358, 247, 5, 317, 247, 5, 547, 247, 5,
	363, 247, 5, 436, 247, 5, 500, 247, 5, 437, 247, 5, 509, 247, 5, 481,
	247, 5, 196, 247, 5, 386, 247, 5, 217, 247, 5, 453, 247, 5, 185, 247,
	5, 119, 247, 5, 412, 247, 5, 251, 247, 5, 483, 247, 5, 182, 247, 5,
	179, 247, 5, 173, 247, 5, 202, 247, 5, 657, 247, 5, 413, 247, 5, 321,
	247, 5, 518, 247, 5, 195, 247, 5, 143, 247, 26, 6, 263, 247, 26, 6,
	73, 247, 26, 6, 300, 247, 26, 6, 60, 247, 26, 6, 324, 247, 26, 6,
	149, 122, 247, 26, 6, 149, 517, 247, 26, 6, 149, 136, 247, 26, 6, 149,
	554, 247, 26, 6, 51, 247, 26, 6, 292, 247, 26, 6, 68, 247, 26, 6,
	313, 247, 6, 505, 247, 6, 844, 247, 6, 1435, 247, 6, 1507, 247, 954, 247,
	604, 247, 55, 604, 247, 774, 6, 247, 681, 247, 1163, 56, 247, 6, 693, 247,
	26, 75, 56, 247, 1137, 295, 26, 56, 247, 10627, 56, 247, 26, 6, 2440, 51,
	247, 6, 359, 559, 247, 23, 254, 247, 23, 67, 247, 23, 70, 247, 23, 79,
	247, 23, 93, 247, 23, 100, 247, 23, 139, 247, 23, 157, 247, 23, 140, 247,
	23, 160, 247, 7134, 247, 6, 238, 247, 2258, 247, 6683, 6, 247, 532, 56, 2,
	291, 247, 532, 56, 2, 192, 207, 507, 23, 67, 207, 507, 23, 70, 207, 507,
	23, 79, 207, 507, 23, 93, 207, 507, 23, 100, 207, 507, 23, 139, 207, 507,
	23, 157, 207, 507, 23, 140, 207, 507, 23, 160, 207, 507, 41, 280, 207, 507,
	41, 357, 207, 507, 41, 451, 207, 507, 41, 605, 207, 507, 41, 551, 207, 507,
	41, 748, 207, 507, 41, 566, 207, 507, 41, 876, 207, 507, 41, 529, 207, 507,
	41, 67, 159, 207, 507, 41, 67, 203, 377, 5, 24, 377, 5, 263, 377, 5,
	73, 377, 5, 60, 377, 5, 51, 377, 5, 292, 377, 5, 68, 377, 5, 313,
	377, 5, 106, 377, 5, 361, 377, 5, 224, 377, 5, 1417, 377, 5, 459, 377,
	5, 312, 377, 5, 325, 377, 5, 358, 377, 5, 317, 377, 5, 1600, 377, 5,
	363, 377, 5, 436, 377, 5, 500, 377, 5, 437, 377, 5, 509, 377, 5, 481,
	377, 5, 196, 377, 5, 386, 377, 5, 217, 377, 5, 1781, 377, 5, 453, 377,
	5, 185, 377, 5, 119, 377, 5, 412, 377, 5, 251, 377, 5, 1289, 377, 5,
	483, 377, 5, 182, 377, 5, 179, 377, 5, 173, 377, 5, 202, 377, 5, 413,
	377, 5, 195, 377, 5, 143, 377, 5, 657, 377, 26, 6, 263, 377, 26, 6,
	73, 377, 26, 6, 300, 377, 26, 6, 60, 377, 26, 6, 51, 377, 26, 6,
	292, 377, 26, 6, 68, 377, 26, 6, 313, 377, 6, 419, 377, 6, 505, 377,
	6, 693, 377, 6, 924, 377, 604, 377, 55, 604, 377, 720, 681, 377, 532, 56,
	377, 55, 532, 56, 377, 774, 6, 377, 6, 1260, 527, 5, 24, 527, 5, 73,
	527, 5, 60, 527, 5, 51, 527, 5, 106, 527, 5, 361, 527, 5, 224, 527,
	5, 459, 527, 5, 325, 527, 5, 358, 527, 5, 317, 527, 5, 1600, 527, 5,
	363, 527, 5, 436, 527, 5, 500, 527, 5, 437, 527, 5, 1781, 527, 5, 509,
	527, 5, 481, 527, 5, 196, 527, 5, 386, 527, 5, 217, 527, 5, 453, 527,
	5, 185, 527, 5, 119, 527, 5, 412, 527, 5, 251, 527, 5, 483, 527, 5,
	182, 527, 5, 179, 527, 5, 173, 527, 5, 202, 527, 5, 413, 527, 5, 195,
	527, 5, 143, 527, 5, 769, 527, 5, 1162, 527, 532, 56, 345, 5, 24, 345,
	5, 263, 345, 5, 73, 345, 5, 300, 345, 5, 60, 345, 5, 324, 345, 5,
	51, 345, 5, 292, 345, 5, 68, 345, 5, 313, 345, 5, 106, 345, 5, 361,
	345, 5, 224, 345, 5, 1417, 345, 5, 459, 345, 5, 312, 345, 5, 325, 345,
	5, 358, 345, 5, 317, 345, 5, 1600, 345, 5, 547, 345, 5, 363, 345, 5,
	436, 345, 5, 500, 345, 5, 437, 345, 5, 1781, 345, 5, 769, 345, 5, 509,
	345, 5, 481, 345, 5, 196, 345, 5, 386, 345, 5, 217, 345, 5, 453, 345,
	5, 185, 345, 5, 119, 345, 5, 412, 345, 5, 251, 345, 5, 1289, 345, 5,
	483, 345, 5, 182, 345, 5, 179, 345, 5, 173, 345, 5, 202, 345, 5, 413,
	345, 5, 321, 345, 5, 195, 345, 5, 143, 345, 6, 419, 345, 26, 6, 263,
	345, 26, 6, 73, 345, 26, 6, 300, 345, 26, 6, 60, 345, 26, 6, 324,
	345, 26, 6, 51, 345, 26, 6, 292, 345, 26, 6, 68, 345, 26, 6, 313,
	345, 6, 693, 345, 6, 505, 345, 23, 254, 345, 23, 67, 345, 23, 70, 345,
	23, 79, 345, 23, 93, 345, 23, 100, 345, 23, 139, 345, 23, 157, 345, 23,
	140, 345, 23, 160, 274, 6, 43, 419, 53, 274, 6, 559, 274, 6, 419, 274,
	6, 534, 274, 5, 24, 274, 5, 263, 274, 5, 73, 274, 5, 300, 274, 5,
	60, 274, 5, 324, 274, 5, 149, 122, 274, 5, 149, 136, 274, 5, 496, 274,
	5, 292, 274, 5, 454, 274, 5, 313, 274, 5, 106, 274, 5, 361, 274, 5,
	224, 274, 5, 459, 274, 5, 312, 274, 5, 325, 274, 5, 358, 274, 5, 317,
	274, 5, 547, 274, 5, 363, 274, 5, 436, 274, 5, 500, 274, 5, 437, 274,
	5, 509, 274, 5, 481, 274, 5, 196, 274, 5, 386, 274, 5, 217, 274, 5,
	453, 274, 5, 185, 274, 5, 119, 274, 5, 412, 274, 5, 251, 274, 5, 483,
	274, 5, 182, 274, 5, 179, 274, 5, 173, 274, 5, 202, 274, 5, 657, 274,
	5, 413, 274, 5, 321, 274, 5, 518, 274, 5, 195, 274, 5, 143, 43, 937,
	76, 274, 6, 693, 274, 6, 844, 274, 26, 6, 263, 274, 26, 6, 73, 274,
	26, 6, 300, 274, 26, 6, 60, 274, 26, 6, 324, 274, 26, 6, 149, 122,
	274, 26, 6, 149, 517, 274, 26, 6, 496, 274, 26, 6, 292, 274, 26, 6,
	454, 274, 26, 6, 313, 274, 6, 505, 274, 954, 274, 313, 731, 56, 274, 6,
	3835, 274, 5, 457, 419, 274, 5, 457, 55, 419, 274, 5, 149, 517, 274, 5,
	149, 554, 274, 26, 6, 149, 136, 274, 26, 6, 149, 554, 43, 274, 23, 254,
	43, 274, 23, 67, 43, 274, 23, 70, 43, 274, 23, 79, 43, 274, 23, 93,
	43, 274, 23, 100, 43, 274, 23, 139, 43, 274, 5, 24, 43, 274, 5, 106,
	43, 274, 5, 185, 43, 274, 5, 1175, 43, 274, 5, 119, 240, 5, 24, 240,
	5, 263, 240, 5, 73, 240, 5, 300, 240, 5, 60, 240, 5, 324, 240, 5,
	149, 122, 240, 5, 149, 517, 240, 5, 149, 136, 240, 5, 149, 554, 240, 5,
	51, 240, 5, 292, 240, 5, 68, 240, 5, 313, 240, 5, 106, 240, 5, 361,
	240, 5, 224, 240, 5, 459, 240, 5, 312, 240, 5, 3710, 240, 5, 325, 240,
	5, 358, 240, 5, 317, 240, 5, 547, 240, 5, 363, 240, 5, 3753, 240, 5,
	436, 240, 5, 500, 240, 5, 437, 240, 5, 509, 240, 5, 481, 240, 5, 196,
	240, 5, 386, 240, 5, 217, 240, 5, 453, 240, 5, 185, 240, 5, 1459, 240,
	5, 119, 240, 5, 412, 240, 5, 251, 240, 5, 483, 240, 5, 182, 240, 5,
	3654, 240, 5, 179, 240, 5, 173, 240, 5, 1162, 240, 5, 202, 240, 5, 1222,
	240, 5, 286, 240, 5, 321, 240, 5, 518, 240, 5, 195, 240, 5, 143, 240,
	26, 6, 263, 240, 26, 6, 73, 240, 26, 6, 300, 240, 26, 6, 60, 240,
	26, 6, 324, 240, 26, 6, 149, 122, 240, 26, 6, 149, 517, 240, 26, 6,
	149, 136, 240, 26, 6, 149, 554, 240, 26, 6, 51, 240, 26, 6, 292, 240,
	26, 6, 68, 240, 26, 6, 313, 240, 6, 505, 240, 6, 559, 240, 6, 419,
	240, 6, 534, 240, 6, 693, 240, 6, 844, 240, 6, 69, 419, 240, 954, 240,
	10409, 240, 604, 240, 55, 604, 240, 383, 240, 1416, 1026, 240, 774, 6, 240, 23,
	254, 240, 23, 67, 240, 23, 70, 240, 23, 79, 240, 23, 93, 240, 23, 100,
	240, 23, 139, 240, 23, 157, 240, 23, 140, 240, 23, 160, 240, 55, 383, 240,
	2432, 56, 240, 2277, 6, 240, 1163, 56, 240, 5, 457, 419, 240, 6, 1435, 240,
	6, 1507, 289, 2100, 289, 5, 24, 289, 5, 263, 289, 5, 73, 289, 5, 300,
	289, 5, 60, 289, 5, 324, 289, 5, 149, 122, 289, 5, 149, 517, 289, 5,
	149, 136, 289, 5, 149, 554, 289, 5, 51, 289, 5, 292, 289, 5, 68, 289,
	5, 313, 289, 5, 106, 289, 5, 361, 289, 5, 224, 289, 5, 459, 289, 5,
	312, 289, 5, 325, 289, 5, 358, 289, 5, 317, 289, 5, 547, 289, 5, 363,
	289, 5, 436, 289, 5, 500, 289, 5, 437, 289, 5, 509, 289, 5, 481, 289,
	5, 196, 289, 5, 386, 289, 5, 217, 289, 5, 453, 289, 5, 185, 289, 5,
	119, 289, 5, 412, 289, 5, 251, 289, 5, 483, 289, 5, 182, 289, 5, 179,
	289, 5, 173, 289, 5, 202, 289, 5, 413, 289, 5, 321, 289, 5, 518, 289,
	5, 195, 289, 5, 143, 289, 26, 6, 263, 289, 26, 6, 73, 289, 26, 6,
	300, 289, 26, 6, 60, 289, 26, 6, 324, 289, 26, 6, 149, 122, 289, 26,
	6, 149, 517, 289, 26, 6, 149, 136, 289, 26, 6, 149, 554, 289, 26, 6,
	51, 289, 26, 6, 295, 51, 289, 26, 6, 292, 289, 26, 6, 68, 289, 26,
	6, 295, 68, 289, 26, 6, 313, 289, 6, 559, 289, 6, 419, 289, 6, 534,
	289, 6, 505, 289, 6, 693, 289, 6, 844, 289, 7631, 289, 774, 6, 289, 954,
	289, 23, 254, 289, 23, 67, 289, 23, 70, 289, 23, 79, 289, 23, 93, 289,
	23, 100, 289, 23, 139, 289, 23, 157, 289, 23, 140, 289, 23, 160, 238, 5,
	24, 238, 5, 263, 238, 5, 73, 238, 5, 300, 238, 5, 60, 238, 5, 324,
	238, 5, 149, 122, 238, 5, 149, 517, 238, 5, 149, 136, 238, 5, 149, 554,
	238, 5, 51, 238, 5, 292, 238, 5, 68, 238, 5, 313, 238, 5, 106, 238,
	5, 361, 238, 5, 224, 238, 5, 459, 238, 5, 312, 238, 5, 325, 238, 5,
	358, 238, 5, 317, 238, 5, 547, 238, 5, 363, 238, 5, 436, 238, 5, 500,
	238, 5, 437, 238, 5, 509, 238, 5, 481, 238, 5, 196, 238, 5, 386, 238,
	5, 217, 238, 5, 453, 238, 5, 185, 238, 5, 119, 238, 5, 412, 238, 5,
	251, 238, 5, 483, 238, 5, 182, 238, 5, 179, 238, 5, 173, 238, 5, 202,
	238, 5, 413, 238, 5, 321, 238, 5, 518, 238, 5, 195, 238, 5, 143, 238,
	26, 6, 263, 238, 26, 6, 73, 238, 26, 6, 300, 238, 26, 6, 60, 238,
	26, 6, 324, 238, 26, 6, 149, 122, 238, 26, 6, 149, 517, 238, 26, 6,
	51, 238, 26, 6, 292, 238, 26, 6, 68, 238, 26, 6, 313, 238, 6, 559,
	238, 6, 419, 238, 6, 534, 238, 6, 505, 238, 6, 693, 238, 6, 238, 238,
	604, 238, 55, 604, 238, 681, 77, 238, 681, 146, 238, 1666, 56, 2, 291, 238,
	1666, 56, 2, 192, 238, 1666, 56, 2, 273, 238, 591, 95, 1169, 56, 238, 532,
	56, 8, 1695, 34, 60, 2, 925, 9551, 238, 532, 56, 8, 1695, 34, 478, 1198,
	238, 532, 56, 8, 1045, 34, 478, 1198, 238, 532, 56, 8, 1045, 34, 478, 55,
	1198, 238, 532, 56, 8, 1045, 34, 478, 392, 1198, 238, 532, 56, 55, 190, 238,
	532, 56, 55, 190, 8, 1045, 238, 532, 56, 8, 55, 1198, 238, 532, 56, 8,
	392, 1198, 238, 532, 56, 8, 1044, 1198, 238, 532, 56, 8, 10307, 1198, 238, 532,
	56, 8, 824, 34, 1045, 238, 532, 56, 8, 824, 34, 70, 3297, 238, 532, 56,
	8, 824, 34, 93, 3297, 238, 5, 79, 2, 125, 506, 73, 238, 5, 70, 2,
	125, 506, 73, 238, 5, 70, 2, 125, 506, 300, 238, 5, 506, 60, 238, 26,
	6, 506, 60, 238, 26, 6, 506, 324, 303, 5, 24, 303, 5, 263, 303, 5,
	73, 303, 5, 300, 303, 5, 60, 303, 5, 324, 303, 5, 149, 122, 303, 5,
	149, 517, 303, 5, 149, 136, 303, 5, 149, 554, 303, 5, 51, 303, 5, 292,
	303, 5, 68, 303, 5, 313, 303, 5, 106, 303, 5, 361, 303, 5, 224, 303,
	5, 459, 303, 5, 312, 303, 5, 325, 303, 5, 358, 303, 5, 317, 303, 5,
	547, 303, 5, 363, 303, 5, 436, 303, 5, 500, 303, 5, 437, 303, 5, 509,
	303, 5, 481, 303, 5, 196, 303, 5, 386, 303, 5, 217, 303, 5, 453, 303,
	5, 185, 303, 5, 119, 303, 5, 412, 303, 5, 251, 303, 5, 483, 303, 5,
	182, 303, 5, 179, 303, 5, 173, 303, 5, 202, 303, 5, 413, 303, 5, 321,
	303, 5, 518, 303, 5, 195, 303, 5, 143, 303, 5, 657, 303, 26, 6, 263,
	303, 26, 6, 73, 303, 26, 6, 300, 303, 26, 6, 60, 303, 26, 6, 324,
	303, 26, 6, 149, 122, 303, 26, 6, 149, 517, 303, 26, 6, 149, 136, 303,
	26, 6, 149, 554, 303, 26, 6, 51, 303, 26, 6, 292, 303, 26, 6, 68,
	303, 26, 6, 313, 303, 6, 419, 303, 6, 534, 303, 6, 505, 303, 6, 5840,
	303, 604, 303, 55, 604, 303, 774, 6, 303, 6, 7865, 303, 23, 254, 303, 23,
	67, 303, 23, 70, 303, 23, 79, 303, 23, 93, 303, 23, 100, 303, 23, 139,
	303, 23, 157, 303, 23, 140, 303, 23, 160, 129, 902, 8, 367, 129, 368, 902,
	129, 55, 902, 8, 367, 129, 392, 902, 8, 367, 129, 902, 8, 55, 367, 129,
	368, 902, 8, 367, 129, 368, 902, 8, 55, 367, 129, 359, 902, 129, 359, 902,
	8, 55, 367, 129, 1685, 902, 129, 1685, 902, 8, 367, 129, 1685, 902, 8, 55,
	367, 129, 191, 1685, 902, 8, 55, 367, 356, 5, 24, 356, 5, 263, 356, 5,
	73, 356, 5, 300, 356, 5, 60, 356, 5, 324, 356, 5, 51, 356, 5, 292,
	356, 5, 68, 356, 5, 313, 356, 5, 106, 356, 5, 361, 356, 5, 224, 356,
	5, 459, 356, 5, 312, 356, 5, 325, 356, 5, 358, 356, 5, 317, 356, 5,
	547, 356, 5, 363, 356, 5, 436, 356, 5, 500, 356, 5, 437, 356, 5, 509,
	356, 5, 481, 356, 5, 196, 356, 5, 386, 356, 5, 217, 356, 5, 453, 356,
	5, 185, 356, 5, 119, 356, 5, 412, 356, 5, 251, 356, 5, 483, 356, 5,
	182, 356, 5, 179, 356, 5, 173, 356, 5, 202, 356, 5, 413, 356, 5, 321,
	356, 5, 195, 356, 5, 143, 356, 5, 769, 356, 6, 419, 356, 6, 534, 356,
	26, 6, 263, 356, 26, 6, 73, 356, 26, 6, 300, 356, 26, 6, 60, 356,
	26, 6, 324, 356, 26, 6, 51, 356, 26, 6, 292, 356, 26, 6, 68, 356,
	26, 6, 313, 356, 6, 505, 356, 6, 693, 356, 5, 507, 361, 356, 774, 6,
	356, 23, 254, 356, 23, 67, 356, 23, 70, 356, 23, 79, 356, 23, 93, 356,
	23, 100, 356, 23, 139, 356, 23, 157, 356, 23, 140, 356, 23, 160, 364, 5,
	106, 364, 5, 361, 364, 5, 312, 364, 5, 185, 364, 5, 196, 364, 5, 506,
	196, 364, 5, 119, 364, 5, 412, 364, 5, 251, 364, 5, 182, 364, 5, 317,
	364, 5, 358, 364, 5, 386, 364, 5, 173, 364, 5, 202, 364, 5, 195, 364,
	5, 363, 364, 5, 143, 364, 5, 24, 364, 5, 217, 364, 5, 453, 364, 5,
	224, 364, 5, 506, 224, 364, 5, 459, 364, 5, 483, 364, 5, 547, 364, 5,
	506, 251, 364, 267, 6, 236, 202, 364, 267, 6, 236, 173, 364, 267, 6, 236,
	8423, 173, 364, 26, 6, 24, 364, 26, 6, 263, 364, 26, 6, 73, 364, 26,
	6, 300, 364, 26, 6, 60, 364, 26, 6, 324, 364, 26, 6, 51, 364, 26,
	6, 2106, 364, 26, 6, 68, 364, 26, 6, 292, 364, 26, 6, 1067, 364, 6,
	8206, 364, 23, 254, 364, 23, 67, 364, 23, 70, 364, 23, 79, 364, 23, 93,
	364, 23, 100, 364, 23, 139, 364, 23, 157, 364, 23, 140, 364, 23, 160, 364,
	41, 280, 364, 41, 357, 364, 6, 7, 532, 364, 6, 532, 364, 6, 10137, 364,
	16, 1175, 364, 5, 325, 364, 5, 436, 364, 5, 500, 364, 5, 437, 364, 5,
	509, 364, 5, 481, 364, 5, 657, 388, 5, 24, 388, 5, 263, 388, 5, 73,
	388, 5, 300, 388, 5, 60, 388, 5, 324, 388, 5, 51, 388, 5, 292, 388,
	5, 68, 388, 5, 313, 388, 5, 106, 388, 5, 361, 388, 5, 224, 388, 5,
	459, 388, 5, 312, 388, 5, 325, 388, 5, 358, 388, 5, 317, 388, 5, 547,
	388, 5, 363, 388, 5, 436, 388, 5, 500, 388, 5, 437, 388, 5, 509, 388,
	5, 481, 388, 5, 196, 388, 5, 386, 388, 5, 217, 388, 5, 453, 388, 5,
	185, 388, 5, 119, 388, 5, 412, 388, 5, 251, 388, 5, 483, 388, 5, 182,
	388, 5, 179, 388, 5, 173, 388, 5, 202, 388, 5, 413, 388, 5, 321, 388,
	5, 518, 388, 5, 195, 388, 5, 143, 388, 5, 769, 388, 26, 6, 263, 388,
	26, 6, 73, 388, 26, 6, 300, 388, 26, 6, 60, 388, 26, 6, 324, 388,
	26, 6, 149, 122, 388, 26, 6, 149, 517, 388, 26, 6, 51, 388, 26, 6,
	292, 388, 26, 6, 68, 388, 26, 6, 313, 388, 6, 419, 388, 6, 534, 388,
	6, 505, 388, 6, 693, 388, 774, 6, 281, 277, 10, 5, 1904, 281, 277, 10,
	5, 24, 281, 277, 10, 5, 668, 281, 277, 10, 5, 402, 281, 277, 10, 5,
	179, 281, 277, 10, 5, 416, 281, 277, 10, 5, 300, 281, 277, 10, 5, 324,
	281, 277, 10, 5, 51, 281, 277, 10, 5, 68, 281, 277, 10, 5, 935, 281,
	277, 10, 5, 224, 281, 277, 10, 5, 606, 281, 277, 10, 5, 1406, 281, 277,
	10, 5, 4211, 281, 277, 10, 5, 2013, 281, 277, 10, 5, 2204, 281, 277, 10,
	5, 1329, 281, 277, 10, 5, 1696, 281, 277, 10, 5, 2396, 281, 277, 10, 5,
	217, 281, 277, 10, 5, 653, 281, 277, 10, 5, 1067, 281, 277, 10, 5, 670,
	281, 277, 10, 5, 962, 281, 277, 10, 5, 3415, 281, 277, 10, 5, 3421, 281,
	277, 10, 5, 3424, 281, 277, 10, 5, 1423, 281, 277, 10, 5, 4021, 281, 277,
	10, 5, 1678, 281, 277, 10, 5, 4164, 281, 277, 7, 5, 1904, 281, 277, 7,
	5, 24, 281, 277, 7, 5, 668, 281, 277, 7, 5, 402, 281, 277, 7, 5,
	179, 281, 277, 7, 5, 416, 281, 277, 7, 5, 300, 281, 277, 7, 5, 324,
	281, 277, 7, 5, 51, 281, 277, 7, 5, 68, 281, 277, 7, 5, 935, 281,
	277, 7, 5, 224, 281, 277, 7, 5, 606, 281, 277, 7, 5, 1406, 281, 277,
	7, 5, 4211, 281, 277, 7, 5, 2013, 281, 277, 7, 5, 2204, 281, 277, 7,
	5, 1329, 281, 277, 7, 5, 1696, 281, 277, 7, 5, 2396, 281, 277, 7, 5,
	217, 281, 277, 7, 5, 653, 281, 277, 7, 5, 1067, 281, 277, 7, 5, 670,
	281, 277, 7, 5, 962, 281, 277, 7, 5, 3415, 281, 277, 7, 5, 3421, 281,
	277, 7, 5, 3424, 281, 277, 7, 5, 1423, 281, 277, 7, 5, 4021, 281, 277,
	7, 5, 1678, 281, 277, 7, 5, 4164, 281, 277, 23, 254, 281, 277, 23, 67,
	281, 277, 23, 70, 281, 277, 23, 79, 281, 277, 23, 93, 281, 277, 23, 100,
	281, 277, 23, 139, 281, 277, 23, 157, 281, 277, 23, 140, 281, 277, 23, 160,
	281, 277, 41, 280, 281, 277, 41, 357, 281, 277, 41, 451, 281, 277, 41, 605,
	281, 277, 41, 551, 281, 277, 41, 748, 281, 277, 41, 566, 281, 277, 41, 876,
	281, 277, 41, 529, 281, 277, 954, 332, 330, 5, 24, 332, 330, 5, 263, 332,
	330, 5, 73, 332, 330, 5, 300, 332, 330, 5, 60, 332, 330, 5, 324, 332,
	330, 5, 51, 332, 330, 5, 68, 332, 330, 5, 106, 332, 330, 5, 361, 332,
	330, 5, 224, 332, 330, 5, 459, 332, 330, 5, 312, 332, 330, 5, 325, 332,
	330, 5, 358, 332, 330, 5, 317, 332, 330, 5, 363, 332, 330, 5, 436, 332,
	330, 5, 437, 332, 330, 5, 509, 332, 330, 5, 481, 332, 330, 5, 196, 332,
	330, 5, 386, 332, 330, 5, 217, 332, 330, 5, 453, 332, 330, 5, 185, 332,
	330, 5, 119, 332, 330, 5, 412, 332, 330, 5, 251, 332, 330, 5, 483, 332,
	330, 5, 182, 332, 330, 5, 179, 332, 330, 5, 2037, 332, 330, 5, 173, 332,
	330, 5, 202, 332, 330, 5, 413, 332, 330, 5, 321, 332, 330, 5, 518, 332,
	330, 5, 195, 332, 330, 5, 143, 332, 330, 5, 657, 332, 330, 5, 443, 332,
	330, 26, 6, 263, 332, 330, 26, 6, 73, 332, 330, 26, 6, 300, 332, 330,
	26, 6, 60, 332, 330, 26, 6, 324, 332, 330, 26, 6, 51, 332, 330, 26,
	6, 292, 332, 330, 26, 6, 68, 332, 330, 6, 419, 332, 330, 6, 559, 332,
	330, 6, 2253, 332, 330, 505, 332, 330, 1099, 1627, 6, 332, 330, 236, 179, 332,
	330, 105, 173, 332, 330, 236, 173, 332, 330, 6, 693, 332, 330, 55, 604, 332,
	330, 1416, 1026, 332, 330, 591, 95, 1169, 56, 332, 330, 23, 254, 332, 330, 23,
	67, 332, 330, 23, 70, 332, 330, 23, 79, 332, 330, 23, 93, 332, 330, 23,
	100, 332, 330, 23, 139, 332, 330, 23, 157, 332, 330, 23, 140, 332, 330, 23,
	160, 366, 5, 24, 366, 5, 263, 366, 5, 73, 366, 5, 300, 366, 5, 60,
	366, 5, 324, 366, 5, 149, 122, 366, 5, 149, 517, 366, 5, 51, 366, 5,
	292, 366, 5, 68, 366, 5, 313, 366, 5, 106, 366, 5, 361, 366, 5, 224,
	366, 5, 459, 366, 5, 312, 366, 5, 325, 366, 5, 358, 366, 5, 317, 366,
	5, 547, 366, 5, 363, 366, 5, 436, 366, 5, 500, 366, 5, 437, 366, 5,
	509, 366, 5, 481, 366, 5, 196, 366, 5, 386, 366, 5, 217, 366, 5, 453,
	366, 5, 185, 366, 5, 119, 366, 5, 412, 366, 5, 251, 366, 5, 483, 366,
	5, 182, 366, 5, 179, 366, 5, 173, 366, 5, 202, 366, 5, 413, 366, 5,
	321, 366, 5, 518, 366, 5, 195, 366, 5, 143, 366, 5, 657, 366, 5, 769,
	366, 26, 6, 263, 366, 26, 6, 73, 366, 26, 6, 300, 366, 26, 6, 60,
	366, 26, 6, 324, 366, 26, 6, 149, 122, 366, 26, 6, 149, 517, 366, 26,
	6, 51, 366, 26, 6, 292, 366, 26, 6, 68, 366, 26, 6, 313, 366, 6,
	419, 366, 6, 534, 366, 6, 505, 366, 6, 844, 366, 6, 238, 366, 2258, 366,
	26, 6, 2440, 51, 336, 58, 5, 24, 336, 58, 26, 6, 73, 336, 58, 26,
	6, 719, 336, 58, 26, 6, 60, 336, 58, 26, 6, 51, 336, 58, 26, 6,
	485, 336, 58, 26, 6, 68, 336, 58, 26, 6, 292, 336, 58, 26, 6, 313,
	336, 58, 26, 6, 261, 73, 336, 58, 26, 731, 56, 336, 58, 5, 106, 336,
	58, 5, 361, 336, 58, 5, 224, 336, 58, 5, 459, 336, 58, 5, 312, 336,
	58, 5, 325, 336, 58, 5, 358, 336, 58, 5, 317, 336, 58, 5, 363, 336,
	58, 5, 436, 336, 58, 5, 500, 336, 58, 5, 437, 336, 58, 5, 509, 336,
	58, 5, 481, 336, 58, 5, 196, 336, 58, 5, 386, 336, 58, 5, 217, 336,
	58, 5, 453, 336, 58, 5, 185, 336, 58, 5, 119, 336, 58, 5, 412, 336,
	58, 5, 251, 336, 58, 5, 483, 336, 58, 5, 182, 336, 58, 5, 612, 336,
	58, 5, 897, 336, 58, 5, 942, 336, 58, 5, 1562, 336, 58, 5, 740, 336,
	58, 5, 443, 336, 58, 5, 3, 24, 336, 58, 5, 179, 336, 58, 5, 173,
	336, 58, 5, 202, 336, 58, 5, 413, 336, 58, 5, 321, 336, 58, 5, 518,
	336, 58, 5, 195, 336, 58, 5, 143, 336, 58, 5, 1612, 336, 58, 69, 267,
	56, 336, 58, 6, 505, 336, 58, 6, 559, 336, 58, 6, 559, 8, 367, 336,
	58, 6, 873, 8, 367, 336, 58, 6, 419, 336, 58, 6, 534, 336, 58, 1019,
	2, 105, 5, 173, 336, 58, 1019, 2, 69, 5, 179, 336, 58, 1019, 2, 69,
	5, 173, 336, 58, 1019, 2, 69, 5, 202, 336, 58, 1019, 2, 69, 5, 413,
	336, 58, 105, 618, 56, 336, 58, 1548, 618, 56, 336, 58, 56, 1058, 336, 58,
	56, 858, 336, 58, 56, 55, 858, 336, 58, 56, 187, 1058, 336, 58, 105, 55,
	2, 3555, 618, 56, 336, 58, 1548, 55, 2, 3555, 618, 56, 336, 58, 4031, 285,
	5, 24, 285, 26, 6, 73, 285, 26, 6, 719, 285, 26, 6, 60, 285, 26,
	6, 51, 285, 26, 6, 68, 285, 26, 6, 485, 285, 26, 6, 292, 285, 26,
	6, 313, 285, 26, 6, 149, 122, 285, 26, 6, 149, 136, 285, 26, 731, 56,
	285, 5, 106, 285, 5, 361, 285, 5, 224, 285, 5, 459, 285, 5, 312, 285,
	5, 325, 285, 5, 358, 285, 5, 317, 285, 5, 547, 285, 5, 363, 285, 5,
	436, 285, 5, 500, 285, 5, 437, 285, 5, 509, 285, 5, 481, 285, 5, 196,
	285, 5, 386, 285, 5, 217, 285, 5, 453, 285, 5, 185, 285, 5, 119, 285,
	5, 412, 285, 5, 251, 285, 5, 483, 285, 5, 182, 285, 5, 612, 285, 5,
	897, 285, 5, 942, 285, 5, 740, 285, 5, 443, 285, 5, 3, 24, 285, 5,
	179, 285, 5, 173, 285, 5, 202, 285, 5, 413, 285, 5, 321, 285, 5, 518,
	285, 5, 195, 285, 5, 143, 285, 5, 1612, 285, 6, 1435, 285, 6, 1507, 285,
	1019, 2, 105, 5, 173, 285, 1019, 2, 105, 5, 202, 285, 1019, 2, 105, 5,
	321, 285, 1019, 2, 105, 5, 195, 285, 69, 267, 6, 220, 285, 69, 267, 6,
	227, 285, 69, 267, 6, 767, 285, 69, 267, 6, 98, 285, 69, 267, 6, 151,
	285, 69, 267, 6, 71, 285, 69, 267, 6, 205, 285, 69, 267, 6, 122, 285,
	69, 267, 6, 136, 285, 69, 267, 6, 1337, 285, 69, 267, 6, 121, 285, 69,
	267, 6, 3, 24, 285, 6, 419, 285, 6, 534, 285, 1578, 56, 285, 4031, 285,
	56, 1058, 285, 56, 858, 285, 56, 55, 858, 285, 56, 3835, 285, 618, 56, 8,
	624, 34, 862, 34, 392, 3322, 285, 618, 56, 8, 624, 34, 862, 34, 3322, 285,
	618, 56, 8, 624, 34, 862, 285, 4068, 56, 2, 291, 285, 4068, 56, 2, 192,
	29, 30, 992, 479, 29, 30, 992, 3411, 29, 30, 992, 553, 29, 30, 992, 1589,
	29, 30, 992, 143, 29, 30, 992, 1029, 29, 30, 992, 3966, 29, 30, 992, 10377,
	29, 30, 992, 10379, 29, 30, 992, 10380, 29, 30, 992, 10375, 29, 30, 992, 10376,
	29, 30, 10485, 29, 30, 10491, 29, 30, 10497, 29, 30, 10478, 401, 399, 397, 5,
	119, 401, 399, 397, 5, 106, 401, 399, 397, 5, 202, 401, 399, 397, 5, 182,
	401, 399, 397, 5, 217, 401, 399, 397, 5, 443, 401, 399, 397, 5, 413, 401,
	399, 397, 5, 312, 401, 399, 397, 5, 143, 401, 399, 397, 5, 224, 401, 399,
	397, 5, 361, 401, 399, 397, 5, 195, 401, 399, 397, 5, 251, 401, 399, 397,
	5, 325, 401, 399, 397, 5, 196, 401, 399, 397, 5, 386, 401, 399, 397, 5,
	185, 401, 399, 397, 5, 412, 401, 399, 397, 5, 173, 401, 399, 397, 5, 502,
	401, 399, 397, 5, 358, 401, 399, 397, 5, 24, 401, 399, 397, 5, 51, 401,
	399, 397, 5, 73, 401, 399, 397, 5, 68, 401, 399, 397, 5, 60, 401, 399,
	397, 5, 1505, 401, 399, 397, 5, 1840, 401, 399, 397, 5, 69, 249, 401, 399,
	397, 5, 69, 227, 401, 399, 397, 5, 69, 221, 401, 399, 397, 5, 69, 205,
	401, 399, 397, 5, 69, 151, 401, 399, 397, 5, 69, 136, 401, 399, 397, 5,
	69, 290, 401, 399, 397, 5, 69, 767, 401, 399, 397, 5, 69, 218, 401, 399,
	397, 891, 110, 187, 401, 399, 397, 891, 110, 401, 399, 397, 1163, 552, 322, 401,
	399, 397, 891, 110, 187, 69, 401, 399, 397, 891, 110, 69, 401, 399, 397, 1163,
	552, 322, 69, 401, 399, 397, 1163, 110, 187, 401, 399, 397, 1163, 110, 401, 399,
	397, 1163, 110, 187, 69, 401, 399, 397, 1163, 110, 69, 401, 399, 397, 1039, 2,
	1320, 110, 401, 399, 397, 552, 322, 587, 401, 399, 397, 1039, 2, 1320, 110, 187,
	69, 401, 399, 397, 1039, 2, 1320, 110, 69, 401, 399, 397, 145, 2, 1022, 110,
	187, 401, 399, 397, 145, 2, 1022, 110, 401, 399, 397, 552, 322, 401, 399, 397,
	145, 2, 1022, 110, 187, 69, 401, 399, 397, 145, 2, 1022, 110, 69, 401, 399,
	397, 552, 322, 69, 239, 5, 24, 239, 5, 263, 239, 5, 73, 239, 5, 300,
	239, 5, 60, 239, 5, 324, 239, 5, 149, 122, 239, 5, 149, 517, 239, 5,
	149, 136, 239, 5, 51, 239, 5, 292, 239, 5, 68, 239, 5, 313, 239, 5,
	106, 239, 5, 361, 239, 5, 224, 239, 5, 459, 239, 5, 312, 239, 5, 325,
	239, 5, 358, 239, 5, 317, 239, 5, 547, 239, 5, 363, 239, 5, 436, 239,
	5, 500, 239, 5, 437, 239, 5, 509, 239, 5, 481, 239, 5, 196, 239, 5,
	386, 239, 5, 217, 239, 5, 453, 239, 5, 185, 239, 5, 119, 239, 5, 412,
	239, 5, 251, 239, 5, 483, 239, 5, 182, 239, 5, 179, 239, 5, 173, 239,
	5, 202, 239, 5, 413, 239, 5, 321, 239, 5, 518, 239, 5, 195, 239, 5,
	143, 239, 26, 6, 263, 239, 26, 6, 73, 239, 26, 6, 300, 239, 26, 6,
	60, 239, 26, 6, 324, 239, 26, 6, 149, 122, 239, 26, 6, 149, 517, 239,
	26, 6, 149, 136, 239, 26, 6, 51, 239, 26, 6, 292, 239, 26, 6, 68,
	239, 26, 6, 313, 239, 6, 559, 239, 6, 419, 239, 6, 534, 239, 6, 505,
	239, 6, 844, 239, 604, 239, 55, 604, 239, 720, 681, 239, 1416, 1026, 2, 291,
	239, 1416, 1026, 2, 192, 239, 23, 254, 239, 23, 67, 239, 23, 70, 239, 23,
	79, 239, 23, 93, 239, 23, 100, 239, 23, 139, 239, 23, 157, 239, 23, 140,
	239, 23, 160, 239, 41, 67, 239, 41, 70, 239, 41, 79, 239, 41, 93, 239,
	41, 100, 239, 41, 139, 239, 41, 157, 239, 41, 140, 239, 41, 160, 239, 41,
	280, 239, 41, 357, 239, 41, 451, 239, 41, 605, 239, 41, 551, 239, 41, 748,
	239, 41, 566, 239, 41, 876, 239, 41, 529, 239, 2267, 1005, 56, 354, 618, 56,
	354, 56, 858, 354, 5, 106, 354, 5, 361, 354, 5, 224, 354, 5, 312, 354,
	5, 325, 354, 5, 358, 354, 5, 317, 354, 5, 363, 354, 5, 196, 354, 5,
	386, 354, 5, 217, 354, 5, 185, 354, 5, 119, 354, 5, 412, 354, 5, 251,
	354, 5, 182, 354, 5, 612, 354, 5, 897, 354, 5, 942, 354, 5, 286, 354,
	5, 740, 354, 5, 443, 354, 5, 3, 24, 354, 5, 179, 354, 5, 173, 354,
	5, 202, 354, 5, 321, 354, 5, 195, 354, 5, 143, 354, 5, 24, 354, 279,
	5, 106, 354, 279, 5, 361, 354, 279, 5, 224, 354, 279, 5, 312, 354, 279,
	5, 325, 354, 279, 5, 358, 354, 279, 5, 317, 354, 279, 5, 363, 354, 279,
	5, 196, 354, 279, 5, 386, 354, 279, 5, 217, 354, 279, 5, 185, 354, 279,
	5, 119, 354, 279, 5, 412, 354, 279, 5, 251, 354, 279, 5, 182, 354, 279,
	5, 612, 354, 279, 5, 897, 354, 279, 5, 942, 354, 279, 5, 286, 354, 279,
	5, 740, 354, 279, 5, 443, 354, 279, 5, 179, 354, 279, 5, 173, 354, 279,
	5, 202, 354, 279, 5, 321, 354, 279, 5, 195, 354, 279, 5, 143, 354, 279,
	5, 24, 354, 26, 6, 263, 354, 26, 6, 73, 354, 26, 6, 60, 354, 26,
	6, 51, 354, 26, 6, 68, 354, 6, 419, 354, 6, 559, 316, 164, 5, 24,
	316, 164, 5, 263, 316, 164, 5, 73, 316, 164, 5, 300, 316, 164, 5, 60,
	316, 164, 5, 324, 316, 164, 5, 51, 316, 164, 5, 292, 316, 164, 5, 68,
	316, 164, 5, 313, 316, 164, 5, 106, 316, 164, 5, 361, 316, 164, 5, 224,
	316, 164, 5, 459, 316, 164, 5, 312, 316, 164, 5, 325, 316, 164, 5, 358,
	316, 164, 5, 317, 316, 164, 5, 547, 316, 164, 5, 363, 316, 164, 5, 436,
	316, 164, 5, 500, 316, 164, 5, 437, 316, 164, 5, 509, 316, 164, 5, 481,
	316, 164, 5, 196, 316, 164, 5, 386, 316, 164, 5, 217, 316, 164, 5, 453,
	316, 164, 5, 185, 316, 164, 5, 119, 316, 164, 5, 412, 316, 164, 5, 251,
	316, 164, 5, 483, 316, 164, 5, 182, 316, 164, 5, 179, 316, 164, 5, 173,
	316, 164, 5, 202, 316, 164, 5, 413, 316, 164, 5, 321, 316, 164, 5, 518,
	316, 164, 5, 195, 316, 164, 5, 143, 316, 164, 5, 657, 316, 164, 5, 1612,
	316, 164, 5, 3469, 316, 164, 5, 2563, 316, 164, 26, 6, 263, 316, 164, 26,
	6, 73, 316, 164, 26, 6, 300, 316, 164, 26, 6, 60, 316, 164, 26, 6,
	324, 316, 164, 26, 6, 149, 122, 316, 164, 26, 6, 51, 316, 164, 26, 6,
	292, 316, 164, 26, 6, 68, 316, 164, 26, 6, 313, 316, 164, 6, 419, 316,
	164, 6, 534, 316, 164, 6, 693, 316, 164, 6, 873, 316, 164, 6, 2253, 316,
	164, 505, 316, 164, 10050, 316, 164, 173, 2, 8124, 316, 164, 23, 254, 316, 164,
	23, 67, 316, 164, 23, 70, 316, 164, 23, 79, 316, 164, 23, 93, 316, 164,
	23, 100, 316, 164, 23, 139, 316, 164, 23, 157, 316, 164, 23, 140, 316, 164,
	23, 160, 374, 164, 5, 24, 374, 164, 5, 263, 374, 164, 5, 73, 374, 164,
	5, 300, 374, 164, 5, 60, 374, 164, 5, 324, 374, 164, 5, 496, 374, 164,
	5, 292, 374, 164, 5, 454, 374, 164, 5, 313, 374, 164, 5, 179, 374, 164,
	5, 413, 374, 164, 5, 251, 374, 164, 5, 483, 374, 164, 5, 182, 374, 164,
	5, 106, 374, 164, 5, 361, 374, 164, 5, 196, 374, 164, 5, 386, 374, 164,
	5, 202, 374, 164, 5, 224, 374, 164, 5, 459, 374, 164, 5, 217, 374, 164,
	5, 453, 374, 164, 5, 185, 374, 164, 5, 325, 374, 164, 5, 358, 374, 164,
	5, 436, 374, 164, 5, 500, 374, 164, 5, 657, 374, 164, 5, 317, 374, 164,
	5, 547, 374, 164, 5, 437, 374, 164, 5, 509, 374, 164, 5, 312, 374, 164,
	5, 119, 374, 164, 5, 412, 374, 164, 5, 143, 374, 164, 5, 173, 374, 164,
	5, 195, 374, 164, 26, 6, 263, 374, 164, 26, 6, 73, 374, 164, 26, 6,
	300, 374, 164, 26, 6, 60, 374, 164, 26, 6, 324, 374, 164, 26, 6, 496,
	374, 164, 26, 6, 292, 374, 164, 26, 6, 454, 374, 164, 26, 6, 313, 374,
	164, 6, 419, 374, 164, 6, 534, 374, 164, 505, 374, 164, 954, 374, 164, 23,
	254, 374, 164, 23, 67, 374, 164, 23, 70, 374, 164, 23, 79, 374, 164, 23,
	93, 374, 164, 23, 100, 374, 164, 23, 139, 374, 164, 23, 157, 374, 164, 23,
	140, 374, 164, 23, 160, 691, 5, 106, 691, 5, 224, 691, 5, 312, 691, 5,
	119, 691, 5, 251, 691, 5, 182, 691, 5, 196, 691, 5, 217, 691, 5, 185,
	691, 5, 325, 691, 5, 317, 691, 5, 363, 691, 5, 179, 691, 5, 173, 691,
	5, 202, 691, 5, 413, 691, 5, 195, 691, 5, 24, 691, 5799, 691, 26, 6,
	73, 691, 26, 6, 60, 691, 26, 6, 51, 691, 26, 6, 68, 691, 9651, 691,
	591, 95, 532, 449, 5, 11513, 168, 234, 67, 79, 2, 159, 2, 34, 2, 2577,
	168, 234, 67, 67, 2, 159, 2, 34, 2, 3985, 168, 234, 67, 7131, 168, 234,
	67, 748, 2, 1308, 168, 234, 67, 3333, 168, 234, 67, 451, 2, 999, 168, 234,
	79, 3289, 168, 234, 79, 748, 2, 7361, 168, 234, 67, 2577, 168, 234, 67, 1254,
	2, 291, 168, 234, 67, 1254, 2, 192, 168, 234, 67, 2542, 168, 234, 67, 511,
	168, 234, 79, 4129, 168, 234, 79, 1978, 168, 234, 67, 2220, 168, 234, 67, 516,
	168, 234, 67, 133, 2, 291, 168, 234, 67, 133, 2, 192, 168, 234, 79, 890,
	168, 234, 7025, 2214, 8205, 168, 6, 9086, 168, 6, 6437, 168, 6, 5623, 168, 6,
	11114, 168, 6, 8947, 168, 6, 8293, 168, 6, 9656, 168, 6, 8923, 168, 6, 8100,
	168, 6, 9614, 168, 6, 1656, 168, 6, 11200, 168, 6, 9586, 168, 6, 8300, 168,
	6, 11215, 168, 11344, 3193, 6, 168, 2196, 3193, 6, 168, 8367, 6, 168, 1048, 2415,
	6, 168, 4098, 2163, 6, 168, 4098, 41, 6, 168, 2168, 6, 168, 34, 1329, 6,
	168, 10489, 6, 168, 4094, 6, 168, 372, 3840, 6, 168, 10558, 546, 6, 168, 6,
	8945, 168, 6, 11195, 168, 225, 591, 95, 1169, 15, 6, 24, 15, 6, 24, 32,
	24, 15, 6, 24, 32, 778, 15, 6, 24, 32, 728, 504, 15, 6, 24, 32,
	143, 15, 6, 24, 32, 583, 15, 6, 24, 32, 884, 407, 15, 6, 24, 32,
	833, 15, 6, 24, 32, 631, 15, 6, 2094, 15, 6, 741, 15, 6, 741, 32,
	1068, 15, 6, 741, 32, 1299, 407, 15, 6, 741, 32, 1141, 15, 6, 741, 32,
	728, 504, 15, 6, 741, 32, 143, 15, 6, 741, 32, 583, 407, 15, 6, 741,
	32, 1842, 15, 6, 741, 32, 375, 15, 6, 741, 32, 2484, 15, 6, 741, 32,
	60, 120, 60, 120, 60, 15, 6, 741, 407, 15, 6, 773, 15, 6, 773, 32,
	1751, 15, 6, 773, 32, 728, 504, 15, 6, 773, 32, 539, 120, 405, 15, 6,
	773, 32, 1001, 15, 6, 773, 32, 863, 15, 6, 1283, 15, 6, 1371, 15, 6,
	1371, 32, 1409, 15, 6, 1371, 32, 1971, 120, 729, 15, 6, 775, 15, 6, 775,
	32, 775, 15, 6, 775, 32, 2186, 15, 6, 775, 32, 729, 15, 6, 775, 32,
	143, 15, 6, 775, 32, 1602, 15, 6, 775, 32, 571, 15, 6, 775, 32, 464,
	15, 6, 775, 32, 1007, 15, 6, 5765, 15, 6, 818, 15, 6, 1742, 15, 6,
	1742, 32, 464, 15, 6, 524, 15, 6, 524, 172, 524, 15, 6, 524, 79, 32,
	15, 6, 524, 120, 1232, 1238, 524, 120, 1232, 15, 6, 524, 120, 1232, 126, 15,
	6, 2101, 15, 6, 5827, 15, 6, 3054, 15, 6, 3054, 32, 787, 15, 6, 5847,
	15, 6, 5863, 15, 6, 403, 15, 6, 403, 4230, 504, 15, 6, 403, 3474, 504,
	15, 6, 403, 172, 403, 1270, 172, 1270, 1270, 172, 1270, 807, 15, 6, 403, 172,
	403, 172, 403, 15, 6, 403, 172, 403, 172, 403, 578, 403, 172, 403, 172, 403,
	15, 6, 1068, 15, 6, 2104, 15, 6, 251, 15, 6, 778, 15, 6, 6125, 15,
	6, 1533, 15, 6, 1534, 15, 6, 1534, 172, 1534, 15, 6, 1751, 15, 6, 146,
	15, 6, 6145, 15, 6, 780, 15, 6, 780, 32, 24, 15, 6, 780, 32, 617,
	15, 6, 780, 32, 583, 407, 15, 6, 670, 15, 6, 670, 172, 670, 741, 15,
	6, 670, 172, 670, 1173, 15, 6, 670, 578, 670, 15, 6, 1761, 15, 6, 1761,
	172, 1761, 15, 6, 1123, 15, 6, 6306, 15, 6, 217, 15, 6, 655, 15, 6,
	655, 619, 32, 24, 120, 1323, 15, 6, 655, 619, 32, 1742, 15, 6, 655, 619,
	32, 1751, 15, 6, 655, 619, 32, 780, 15, 6, 655, 619, 32, 224, 15, 6,
	655, 619, 32, 224, 120, 1323, 15, 6, 655, 619, 32, 703, 15, 6, 655, 619,
	32, 1311, 15, 6, 655, 619, 32, 829, 15, 6, 655, 619, 32, 143, 15, 6,
	655, 619, 32, 1595, 15, 6, 655, 619, 32, 1595, 120, 679, 15, 6, 655, 619,
	32, 1088, 15, 6, 655, 619, 32, 202, 15, 6, 655, 619, 32, 679, 15, 6,
	655, 619, 32, 679, 120, 3635, 15, 6, 655, 619, 32, 989, 15, 6, 655, 619,
	32, 492, 15, 6, 655, 619, 32, 807, 120, 807, 15, 6, 655, 619, 32, 632,
	15, 6, 655, 619, 32, 863, 15, 6, 655, 619, 32, 898, 120, 1311, 15, 6,
	655, 619, 32, 1007, 15, 6, 6855, 15, 6, 3209, 15, 6, 3210, 15, 6, 6861,
	15, 6, 783, 15, 6, 3240, 15, 6, 1296, 15, 6, 1296, 32, 464, 15, 6,
	2186, 15, 6, 1790, 15, 6, 1790, 882, 60, 407, 711, 15, 6, 711, 15, 6,
	784, 15, 6, 784, 172, 784, 15, 6, 784, 407, 15, 6, 784, 859, 15, 6,
	1400, 15, 6, 1400, 32, 1079, 15, 6, 7033, 15, 6, 560, 15, 6, 7036, 15,
	6, 7037, 15, 6, 2198, 15, 6, 1299, 15, 6, 1299, 407, 15, 6, 1299, 407,
	407, 15, 6, 7040, 15, 6, 7046, 15, 6, 51, 15, 6, 51, 32, 807, 15,
	6, 51, 172, 51, 394, 172, 394, 15, 6, 979, 15, 6, 979, 32, 24, 120,
	143, 120, 217, 15, 6, 979, 32, 617, 15, 6, 979, 32, 540, 15, 6, 979,
	32, 1047, 15, 6, 979, 32, 464, 15, 6, 979, 32, 60, 15, 6, 7121, 15,
	6, 7129, 15, 6, 712, 15, 6, 405, 15, 6, 405, 32, 728, 15, 6, 405,
	32, 728, 504, 15, 6, 405, 32, 539, 15, 6, 405, 578, 405, 15, 6, 405,
	1238, 405, 15, 6, 405, 126, 15, 6, 3303, 15, 6, 1409, 15, 6, 1079, 15,
	6, 592, 15, 6, 592, 32, 24, 15, 6, 592, 32, 24, 120, 988, 15, 6,
	592, 32, 24, 120, 988, 32, 988, 15, 6, 592, 32, 524, 15, 6, 592, 32,
	778, 15, 6, 592, 32, 1299, 407, 15, 6, 592, 32, 1299, 407, 407, 15, 6,
	592, 32, 143, 15, 6, 592, 32, 143, 407, 15, 6, 592, 32, 583, 407, 15,
	6, 592, 32, 882, 15, 6, 592, 32, 882, 126, 15, 6, 592, 32, 1444, 15,
	6, 592, 32, 202, 15, 6, 592, 32, 988, 32, 988, 15, 6, 592, 32, 365,
	15, 6, 592, 32, 679, 15, 6, 592, 32, 898, 15, 6, 592, 32, 652, 15,
	6, 224, 15, 6, 224, 407, 15, 6, 311, 15, 6, 311, 32, 24, 120, 217,
	120, 143, 15, 6, 311, 32, 24, 120, 143, 15, 6, 311, 32, 24, 120, 583,
	15, 6, 311, 32, 773, 504, 120, 1108, 15, 6, 311, 32, 524, 15, 6, 311,
	32, 403, 15, 6, 311, 32, 1068, 120, 1141, 15, 6, 311, 32, 778, 15, 6,
	311, 32, 146, 120, 173, 15, 6, 311, 32, 1123, 15, 6, 311, 32, 1123, 120,
	173, 15, 6, 311, 32, 217, 15, 6, 311, 32, 783, 15, 6, 311, 32, 1296,
	32, 464, 15, 6, 311, 32, 1400, 15, 6, 311, 32, 712, 15, 6, 311, 32,
	712, 120, 202, 15, 6, 311, 32, 405, 15, 6, 311, 32, 405, 32, 728, 504,
	15, 6, 311, 32, 728, 504, 15, 6, 311, 32, 617, 15, 6, 311, 32, 703,
	15, 6, 311, 32, 1310, 15, 6, 311, 32, 1310, 120, 24, 15, 6, 311, 32,
	1311, 120, 611, 15, 6, 311, 32, 143, 120, 679, 120, 1079, 15, 6, 311, 32,
	1422, 15, 6, 311, 32, 1422, 120, 202, 15, 6, 311, 32, 479, 120, 365, 15,
	6, 311, 32, 1214, 15, 6, 311, 32, 583, 407, 15, 6, 311, 32, 2282, 120,
	831, 120, 403, 15, 6, 311, 32, 1088, 15, 6, 311, 32, 882, 15, 6, 311,
	32, 1857, 15, 6, 311, 32, 1857, 120, 988, 15, 6, 311, 32, 1444, 120, 524,
	15, 6, 311, 32, 202, 15, 6, 311, 32, 539, 120, 405, 15, 6, 311, 32,
	540, 15, 6, 311, 32, 394, 15, 6, 311, 32, 394, 172, 394, 15, 6, 311,
	32, 119, 15, 6, 311, 32, 1047, 15, 6, 311, 32, 1480, 15, 6, 311, 32,
	464, 15, 6, 311, 32, 464, 120, 1504, 15, 6, 311, 32, 1484, 15, 6, 311,
	32, 1492, 15, 6, 311, 32, 863, 15, 6, 311, 32, 60, 15, 6, 311, 32,
	652, 15, 6, 311, 32, 652, 120, 784, 15, 6, 311, 172, 311, 15, 6, 1822,
	15, 6, 1822, 578, 1822, 15, 6, 1083, 15, 6, 1083, 172, 1083, 617, 172, 617,
	15, 6, 1141, 15, 6, 1141, 1083, 172, 1083, 617, 172, 617, 15, 6, 7456, 15,
	6, 7457, 15, 6, 1309, 15, 6, 728, 15, 6, 728, 504, 15, 6, 728, 172,
	728, 15, 6, 728, 578, 728, 15, 6, 617, 15, 6, 7463, 15, 6, 7468, 15,
	6, 2241, 15, 6, 2241, 32, 787, 15, 6, 703, 15, 6, 703, 32, 51, 15,
	6, 703, 32, 60, 15, 6, 703, 578, 703, 15, 6, 1310, 15, 6, 1310, 172,
	1310, 15, 6, 1310, 578, 1310, 15, 6, 7556, 15, 6, 1311, 15, 6, 1311, 407,
	15, 6, 1418, 15, 6, 1418, 32, 24, 120, 583, 15, 6, 1418, 32, 728, 504,
	15, 6, 1418, 32, 583, 15, 6, 1418, 32, 679, 120, 583, 15, 6, 1418, 32,
	119, 15, 6, 7570, 15, 6, 729, 15, 6, 729, 578, 729, 15, 6, 729, 32,
	778, 15, 6, 729, 32, 863, 15, 6, 729, 504, 15, 6, 828, 15, 6, 828,
	578, 828, 15, 6, 1312, 15, 6, 1312, 32, 1088, 15, 6, 1312, 32, 1088, 32,
	583, 407, 15, 6, 1312, 32, 394, 15, 6, 1312, 32, 1047, 120, 1270, 15, 6,
	1312, 407, 15, 6, 829, 15, 6, 829, 32, 24, 120, 787, 15, 6, 829, 32,
	787, 15, 6, 829, 172, 829, 1321, 15, 6, 3387, 15, 6, 2252, 15, 6, 2252,
	32, 464, 15, 6, 1830, 15, 6, 3388, 15, 6, 7626, 15, 6, 7627, 15, 6,
	143, 15, 6, 143, 504, 15, 6, 143, 407, 15, 6, 1422, 15, 6, 479, 15,
	6, 479, 32, 403, 15, 6, 479, 32, 1068, 15, 6, 479, 32, 778, 15, 6,
	479, 32, 711, 15, 6, 479, 32, 1083, 15, 6, 479, 32, 2304, 15, 6, 479,
	32, 394, 15, 6, 479, 32, 464, 15, 6, 479, 32, 60, 15, 6, 831, 15,
	6, 1214, 15, 6, 1214, 32, 524, 15, 6, 1214, 32, 1422, 15, 6, 1214, 32,
	882, 15, 6, 1214, 32, 2328, 15, 6, 1214, 32, 652, 15, 6, 7855, 15, 6,
	73, 15, 6, 73, 24, 15, 6, 2269, 15, 6, 1591, 15, 6, 1591, 172, 1591,
	1123, 15, 6, 1591, 172, 1591, 126, 15, 6, 3440, 15, 6, 583, 15, 6, 583,
	3240, 15, 6, 583, 716, 15, 6, 583, 172, 583, 1485, 172, 1485, 652, 172, 652,
	15, 6, 583, 407, 15, 6, 3444, 15, 6, 3444, 32, 728, 504, 15, 6, 7938,
	15, 6, 881, 15, 6, 881, 32, 863, 15, 6, 881, 578, 881, 15, 6, 881,
	1238, 881, 15, 6, 881, 126, 15, 6, 1842, 15, 6, 372, 15, 6, 1595, 15,
	6, 2282, 15, 6, 106, 15, 6, 106, 32, 24, 15, 6, 106, 32, 1283, 15,
	6, 106, 32, 1283, 120, 1444, 15, 6, 106, 32, 1068, 15, 6, 106, 32, 778,
	15, 6, 106, 32, 1751, 15, 6, 106, 32, 146, 15, 6, 106, 32, 780, 15,
	6, 106, 32, 1409, 15, 6, 106, 32, 1079, 15, 6, 106, 32, 224, 15, 6,
	106, 32, 1141, 15, 6, 106, 32, 728, 504, 15, 6, 106, 32, 617, 15, 6,
	106, 32, 617, 120, 1001, 120, 24, 15, 6, 106, 32, 703, 15, 6, 106, 32,
	1311, 15, 6, 106, 32, 729, 120, 1480, 15, 6, 106, 32, 729, 578, 729, 15,
	6, 106, 32, 828, 15, 6, 106, 32, 3388, 15, 6, 106, 32, 583, 15, 6,
	106, 32, 881, 15, 6, 106, 32, 1088, 15, 6, 106, 32, 571, 15, 6, 106,
	32, 1857, 15, 6, 106, 32, 365, 15, 6, 106, 32, 679, 15, 6, 106, 32,
	539, 15, 6, 106, 32, 539, 120, 784, 15, 6, 106, 32, 539, 120, 703, 15,
	6, 106, 32, 539, 120, 440, 15, 6, 106, 32, 540, 15, 6, 106, 32, 540,
	120, 919, 15, 6, 106, 32, 492, 15, 6, 106, 32, 394, 15, 6, 106, 32,
	427, 15, 6, 106, 32, 630, 15, 6, 106, 32, 195, 15, 6, 106, 32, 1480,
	15, 6, 106, 32, 321, 15, 6, 106, 32, 464, 15, 6, 106, 32, 1484, 15,
	6, 106, 32, 895, 15, 6, 106, 32, 3976, 15, 6, 106, 32, 4036, 15, 6,
	106, 32, 1352, 15, 6, 106, 32, 60, 15, 6, 106, 32, 898, 15, 6, 106,
	32, 652, 15, 6, 106, 32, 2017, 32, 119, 15, 6, 106, 32, 1007, 15, 6,
	106, 32, 1065, 15, 6, 2291, 15, 6, 2291, 578, 2291, 15, 6, 3473, 15, 6,
	3475, 15, 6, 1602, 15, 6, 8108, 15, 6, 2292, 15, 6, 2292, 172, 2292, 15,
	6, 1088, 15, 6, 1088, 32, 583, 407, 15, 6, 1603, 15, 6, 1603, 32, 778,
	15, 6, 1603, 578, 1603, 15, 6, 8115, 15, 6, 8116, 15, 6, 882, 15, 6,
	882, 375, 32, 60, 172, 375, 32, 60, 15, 6, 882, 172, 882, 375, 32, 60,
	172, 375, 32, 60, 15, 6, 3486, 15, 6, 571, 15, 6, 571, 32, 778, 15,
	6, 571, 32, 60, 15, 6, 571, 32, 652, 15, 6, 1857, 15, 6, 2304, 15,
	6, 8215, 15, 6, 8216, 15, 6, 619, 15, 6, 619, 172, 619, 15, 6, 620,
	15, 6, 620, 172, 479, 32, 1068, 620, 172, 479, 32, 1068, 15, 6, 1444, 15,
	6, 3517, 15, 6, 3517, 587, 25, 15, 6, 8274, 15, 6, 1866, 15, 6, 1866,
	407, 15, 6, 3518, 15, 6, 787, 15, 6, 787, 1238, 787, 15, 6, 1445, 15,
	6, 8306, 15, 6, 202, 15, 6, 375, 15, 6, 375, 32, 24, 15, 6, 375,
	32, 24, 120, 217, 120, 143, 15, 6, 375, 32, 24, 120, 617, 15, 6, 375,
	32, 24, 120, 988, 15, 6, 375, 32, 775, 15, 6, 375, 32, 524, 15, 6,
	375, 32, 403, 4230, 504, 15, 6, 375, 32, 778, 15, 6, 375, 32, 780, 15,
	6, 375, 32, 3209, 15, 6, 375, 32, 405, 15, 6, 375, 32, 224, 15, 6,
	375, 32, 617, 15, 6, 375, 32, 829, 15, 6, 375, 32, 829, 120, 829, 15,
	6, 375, 32, 143, 15, 6, 375, 32, 1422, 15, 6, 375, 32, 479, 32, 394,
	15, 6, 375, 32, 583, 407, 15, 6, 375, 32, 881, 15, 6, 375, 32, 881,
	120, 143, 15, 6, 375, 32, 881, 120, 679, 15, 6, 375, 32, 571, 15, 6,
	375, 32, 2304, 15, 6, 375, 32, 1444, 15, 6, 375, 32, 1866, 15, 6, 375,
	32, 1866, 120, 479, 120, 24, 15, 6, 375, 32, 375, 15, 6, 375, 32, 2328,
	15, 6, 375, 32, 679, 15, 6, 375, 32, 2332, 15, 6, 375, 32, 539, 15,
	6, 375, 32, 539, 120, 405, 15, 6, 375, 32, 833, 15, 6, 375, 32, 492,
	15, 6, 375, 32, 464, 120, 1492, 15, 6, 375, 32, 1971, 120, 729, 120, 1409,
	15, 6, 375, 32, 1971, 120, 729, 504, 15, 6, 375, 32, 1165, 15, 6, 375,
	32, 1165, 120, 1165, 15, 6, 375, 32, 1492, 15, 6, 375, 32, 215, 15, 6,
	375, 32, 863, 15, 6, 375, 32, 440, 120, 24, 120, 611, 120, 185, 15, 6,
	375, 32, 60, 15, 6, 375, 32, 60, 120, 24, 15, 6, 375, 32, 60, 120,
	60, 120, 60, 15, 6, 375, 32, 898, 120, 403, 15, 6, 375, 32, 652, 15,
	6, 375, 32, 1007, 15, 6, 375, 126, 15, 6, 884, 15, 6, 884, 32, 464,
	15, 6, 884, 32, 464, 120, 1492, 15, 6, 884, 407, 15, 6, 884, 407, 172,
	884, 407, 464, 15, 6, 8359, 15, 6, 988, 15, 6, 988, 32, 988, 15, 6,
	318, 15, 6, 318, 32, 787, 15, 6, 318, 32, 787, 120, 630, 15, 6, 365,
	15, 6, 8426, 15, 6, 8434, 15, 6, 2328, 15, 6, 679, 15, 6, 679, 32,
	778, 15, 6, 548, 15, 6, 548, 32, 775, 15, 6, 548, 32, 778, 15, 6,
	548, 32, 1079, 15, 6, 548, 32, 1079, 504, 15, 6, 548, 32, 728, 504, 15,
	6, 548, 32, 479, 32, 778, 15, 6, 548, 32, 881, 15, 6, 548, 32, 3475,
	15, 6, 548, 32, 1602, 15, 6, 548, 32, 1602, 120, 403, 15, 6, 548, 32,
	571, 15, 6, 548, 32, 202, 120, 403, 15, 6, 548, 32, 375, 15, 6, 548,
	32, 539, 120, 405, 15, 6, 548, 32, 492, 15, 6, 548, 32, 555, 15, 6,
	548, 32, 632, 120, 403, 15, 6, 548, 32, 3979, 120, 670, 15, 6, 548, 32,
	1270, 15, 6, 548, 504, 15, 6, 548, 578, 548, 15, 6, 548, 1238, 548, 15,
	6, 548, 126, 15, 6, 548, 859, 15, 6, 1450, 15, 6, 1321, 15, 6, 1321,
	172, 1321, 15, 6, 1321, 1238, 1321, 15, 6, 1321, 859, 15, 6, 2331, 15, 6,
	2332, 15, 6, 989, 15, 6, 989, 172, 989, 15, 6, 989, 172, 989, 617, 172,
	617, 15, 6, 182, 15, 6, 182, 32, 863, 15, 6, 182, 407, 15, 6, 8677,
	15, 6, 3629, 15, 6, 3633, 15, 6, 1323, 15, 6, 3635, 15, 6, 539, 15,
	6, 2352, 15, 6, 540, 15, 6, 1894, 15, 6, 460, 15, 6, 460, 172, 460,
	15, 6, 1897, 15, 6, 1897, 407, 15, 6, 8930, 15, 6, 8940, 15, 6, 833,
	15, 6, 833, 32, 24, 15, 6, 833, 32, 787, 15, 6, 833, 32, 443, 15,
	6, 833, 172, 833, 15, 6, 833, 172, 833, 32, 24, 120, 185, 15, 6, 833,
	578, 833, 15, 6, 1452, 15, 6, 1452, 32, 24, 15, 6, 1452, 32, 24, 120,
	783, 15, 6, 1452, 32, 783, 15, 6, 1452, 407, 15, 6, 185, 15, 6, 3681,
	15, 6, 1232, 15, 6, 1232, 359, 15, 6, 1232, 32, 895, 504, 15, 6, 1232,
	1238, 1232, 15, 6, 9008, 15, 6, 3685, 3744, 15, 6, 3685, 15, 6, 3686, 15,
	6, 492, 15, 6, 492, 32, 24, 15, 6, 492, 32, 652, 15, 6, 492, 859,
	15, 6, 493, 15, 6, 493, 32, 51, 15, 6, 9167, 15, 6, 2387, 15, 6,
	2387, 32, 728, 504, 15, 6, 2387, 32, 617, 120, 728, 504, 15, 6, 663, 15,
	6, 663, 32, 524, 15, 6, 663, 32, 403, 15, 6, 663, 32, 403, 120, 403,
	15, 6, 663, 32, 829, 15, 6, 663, 32, 539, 120, 728, 504, 15, 6, 663,
	32, 492, 15, 6, 663, 32, 394, 15, 6, 663, 32, 464, 15, 6, 663, 32,
	464, 120, 24, 524, 15, 6, 663, 32, 464, 120, 403, 15, 6, 663, 32, 464,
	120, 403, 120, 403, 15, 6, 663, 32, 898, 120, 403, 15, 6, 663, 32, 1007,
	15, 6, 9185, 15, 6, 555, 15, 6, 3739, 15, 6, 394, 15, 6, 394, 884,
	32, 617, 15, 6, 394, 884, 32, 1323, 15, 6, 394, 884, 32, 1047, 15, 6,
	394, 884, 32, 1047, 172, 394, 884, 32, 1047, 15, 6, 394, 884, 32, 1007, 15,
	6, 394, 504, 15, 6, 394, 172, 394, 15, 6, 394, 578, 394, 15, 6, 394,
	578, 394, 884, 172, 884, 15, 6, 919, 15, 6, 919, 773, 32, 2104, 15, 6,
	919, 773, 32, 780, 15, 6, 919, 773, 32, 560, 15, 6, 919, 773, 32, 829,
	15, 6, 919, 773, 32, 583, 407, 15, 6, 919, 773, 32, 1602, 15, 6, 919,
	773, 32, 202, 15, 6, 919, 773, 32, 492, 15, 6, 919, 773, 32, 3980, 15,
	6, 919, 773, 32, 898, 15, 6, 919, 619, 32, 780, 15, 6, 919, 619, 32,
	780, 60, 15, 6, 119, 15, 6, 1646, 15, 6, 2415, 15, 6, 807, 15, 6,
	3813, 15, 6, 427, 15, 6, 427, 32, 24, 15, 6, 427, 32, 741, 15, 6,
	427, 32, 780, 15, 6, 427, 32, 670, 15, 6, 427, 32, 51, 15, 6, 427,
	32, 73, 15, 6, 427, 32, 2269, 15, 6, 427, 32, 60, 15, 6, 427, 32,
	898, 15, 6, 427, 578, 427, 15, 6, 1470, 15, 6, 1470, 32, 1603, 15, 6,
	1470, 32, 652, 15, 6, 1470, 32, 443, 15, 6, 1470, 1238, 1470, 15, 6, 173,
	15, 6, 9997, 15, 6, 716, 15, 6, 630, 15, 6, 195, 15, 6, 631, 3744,
	15, 6, 631, 15, 6, 631, 32, 24, 15, 6, 631, 32, 784, 15, 6, 631,
	32, 1400, 15, 6, 631, 32, 143, 15, 6, 631, 32, 1088, 15, 6, 631, 32,
	787, 15, 6, 631, 32, 989, 15, 6, 631, 32, 540, 15, 6, 631, 32, 394,
	15, 6, 631, 32, 1047, 15, 6, 631, 32, 1484, 15, 6, 631, 32, 1108, 15,
	6, 631, 32, 898, 15, 6, 631, 32, 4136, 15, 6, 631, 32, 1059, 15, 6,
	631, 32, 1174, 15, 6, 631, 32, 1007, 15, 6, 631, 172, 631, 15, 6, 631,
	407, 15, 6, 1047, 15, 6, 1047, 375, 32, 1068, 15, 6, 10252, 15, 6, 1480,
	15, 6, 321, 15, 6, 1001, 15, 6, 1001, 32, 24, 15, 6, 1001, 32, 778,
	15, 6, 1001, 32, 729, 15, 6, 1001, 32, 492, 15, 6, 1001, 32, 1165, 15,
	6, 1001, 32, 1504, 15, 6, 1001, 32, 60, 15, 6, 1001, 32, 60, 120, 24,
	15, 6, 3950, 15, 6, 10326, 15, 6, 1002, 15, 6, 464, 15, 6, 464, 831,
	15, 6, 464, 172, 464, 1083, 172, 1083, 617, 172, 617, 15, 6, 464, 172, 464,
	1108, 172, 1108, 617, 172, 617, 15, 6, 10344, 15, 6, 10345, 15, 6, 2484, 15,
	6, 10348, 15, 6, 10349, 15, 6, 1484, 15, 6, 1484, 32, 24, 15, 6, 1484,
	32, 881, 15, 6, 964, 15, 6, 964, 32, 24, 15, 6, 964, 32, 1534, 15,
	6, 964, 32, 1761, 15, 6, 964, 32, 1790, 15, 6, 964, 32, 617, 15, 6,
	964, 32, 583, 15, 6, 964, 32, 583, 407, 15, 6, 964, 32, 1445, 15, 6,
	964, 32, 2332, 15, 6, 964, 32, 1897, 15, 6, 964, 32, 1047, 15, 6, 10358,
	15, 6, 1485, 15, 6, 1485, 504, 15, 6, 1485, 172, 1485, 1123, 172, 1123, 15,
	6, 1971, 15, 6, 895, 15, 6, 895, 172, 359, 895, 15, 6, 1165, 15, 6,
	10383, 15, 6, 632, 15, 6, 632, 407, 15, 6, 3976, 15, 6, 1975, 15, 6,
	1975, 172, 1975, 1165, 15, 6, 3979, 15, 6, 3980, 15, 6, 611, 15, 6, 611,
	172, 611, 15, 6, 10605, 15, 6, 10606, 15, 6, 4036, 15, 6, 1492, 15, 6,
	10608, 15, 6, 1991, 15, 6, 10620, 15, 6, 196, 15, 6, 196, 467, 15, 6,
	196, 32, 479, 15, 6, 196, 32, 540, 15, 6, 196, 407, 15, 6, 1108, 15,
	6, 1108, 172, 1108, 493, 172, 493, 711, 172, 711, 15, 6, 1108, 126, 15, 6,
	215, 15, 6, 215, 32, 780, 15, 6, 215, 32, 829, 15, 6, 215, 32, 464,
	15, 6, 215, 32, 895, 15, 6, 215, 32, 1270, 15, 6, 215, 32, 652, 15,
	6, 863, 15, 6, 1352, 15, 6, 440, 15, 6, 440, 407, 15, 6, 686, 15,
	6, 686, 504, 15, 6, 2554, 15, 6, 1358, 15, 6, 1358, 32, 863, 15, 6,
	1358, 172, 1358, 15, 6, 1358, 172, 1358, 1083, 172, 1083, 617, 172, 617, 15, 6,
	613, 15, 6, 1270, 15, 6, 4125, 15, 6, 1698, 15, 6, 1504, 15, 6, 1504,
	172, 1504, 443, 172, 443, 15, 6, 60, 15, 6, 60, 829, 15, 6, 60, 60,
	60, 15, 6, 60, 172, 60, 119, 172, 119, 617, 172, 617, 15, 6, 60, 172,
	60, 1991, 172, 1991, 15, 6, 60, 172, 60, 60, 261, 172, 60, 261, 15, 6,
	898, 15, 6, 4136, 15, 6, 652, 15, 6, 652, 1445, 15, 6, 652, 32, 778,
	15, 6, 652, 32, 540, 15, 6, 652, 32, 60, 120, 60, 120, 60, 15, 6,
	652, 32, 60, 120, 60, 120, 60, 407, 15, 6, 652, 407, 15, 6, 652, 859,
	15, 6, 652, 859, 32, 778, 15, 6, 11046, 15, 6, 1059, 15, 6, 1059, 32,
	375, 15, 6, 1059, 32, 539, 120, 217, 15, 6, 1059, 32, 1001, 15, 6, 1059,
	32, 60, 15, 6, 11064, 15, 6, 2017, 15, 6, 2017, 32, 882, 15, 6, 2017,
	32, 119, 15, 6, 1173, 15, 6, 1173, 407, 15, 6, 1174, 15, 6, 1174, 578,
	1174, 15, 6, 1174, 859, 15, 6, 1006, 15, 6, 1006, 32, 24, 120, 143, 15,
	6, 1006, 32, 24, 120, 185, 15, 6, 1006, 32, 775, 15, 6, 1006, 32, 143,
	15, 6, 1006, 32, 394, 15, 6, 1006, 32, 898, 15, 6, 1006, 32, 898, 120,
	403, 15, 6, 1006, 32, 898, 120, 780, 15, 6, 11089, 15, 6, 11091, 15, 6,
	11092, 15, 6, 667, 15, 6, 667, 32, 24, 15, 6, 667, 32, 2104, 15, 6,
	667, 32, 146, 15, 6, 667, 32, 2198, 15, 6, 667, 32, 224, 15, 6, 667,
	32, 1141, 15, 6, 667, 32, 728, 504, 15, 6, 667, 32, 617, 15, 6, 667,
	32, 828, 15, 6, 667, 32, 143, 15, 6, 667, 32, 583, 15, 6, 667, 32,
	881, 15, 6, 667, 32, 2282, 15, 6, 667, 32, 571, 15, 6, 667, 32, 989,
	15, 6, 667, 32, 1894, 15, 6, 667, 32, 119, 15, 6, 667, 32, 464, 15,
	6, 667, 32, 1975, 15, 6, 667, 32, 613, 15, 6, 667, 32, 60, 120, 829,
	15, 6, 667, 32, 652, 15, 6, 667, 32, 1508, 15, 6, 1508, 15, 6, 1508,
	32, 60, 15, 6, 1007, 15, 6, 1007, 32, 24, 15, 6, 1007, 32, 620, 15,
	6, 1007, 32, 787, 15, 6, 1007, 32, 863, 15, 6, 11101, 15, 6, 11098, 15,
	6, 11100, 15, 6, 11104, 15, 6, 4151, 15, 6, 4151, 32, 882, 15, 6, 11115,
	15, 6, 443, 15, 6, 443, 504, 15, 6, 443, 126, 32, 787, 15, 6, 11601,
	15, 6, 11604, 15, 6, 11613, 15, 6, 1065, 15, 6, 1065, 172, 1065, 15, 6,
	11651, 15, 6, 4229, 15, 6, 4229, 3474, 504, 15, 6, 11655, 15, 6, 4231, 15,
	6, 1013, 15, 6, 2621, 15, 6, 2621, 32, 24, 15, 6, 11671, 15, 6, 11672,
	15, 6, 3477, 1564, 15, 6, 741, 32, 394, 15, 6, 773, 32, 24, 15, 6,
	1742, 32, 8281, 15, 6, 655, 619, 32, 898, 120, 1323, 15, 6, 6845, 15, 6,
	711, 120, 895, 15, 6, 1400, 32, 464, 15, 6, 592, 32, 829, 15, 6, 592,
	32, 464, 15, 6, 311, 32, 524, 120, 1088, 120, 24, 15, 6, 311, 32, 1068,
	15, 6, 7482, 15, 6, 7562, 15, 6, 7862, 15, 6, 106, 32, 2101, 15, 6,
	106, 32, 5867, 15, 6, 106, 32, 729, 15, 6, 106, 32, 829, 15, 6, 106,
	32, 479, 32, 1068, 15, 6, 106, 32, 989, 15, 6, 106, 32, 119, 15, 6,
	106, 32, 10387, 15, 6, 106, 32, 613, 15, 6, 106, 32, 1006, 15, 6, 375,
	32, 703, 15, 6, 548, 859, 32, 778, 15, 6, 548, 32, 1079, 120, 988, 15,
	6, 548, 32, 895, 15, 6, 3649, 15, 6, 1452, 32, 443, 15, 6, 9005, 15,
	6, 2388, 15, 6, 9179, 15, 6, 663, 32, 1534, 15, 6, 663, 32, 703, 15,
	6, 3739, 368, 529, 421, 15, 6, 3813, 467, 15, 6, 9741, 15, 6, 631, 32,
	583, 407, 15, 6, 10820, 15, 6, 1059, 32, 539, 15, 6, 60, 60, 15, 206,
	6, 70, 403, 15, 206, 6, 79, 403, 15, 206, 6, 93, 403, 15, 206, 6,
	100, 403, 15, 206, 6, 139, 403, 15, 206, 6, 157, 403, 15, 206, 6, 140,
	403, 15, 206, 6, 160, 403, 15, 206, 6, 79, 711, 15, 206, 6, 93, 711,
	15, 206, 6, 100, 711, 15, 206, 6, 139, 711, 15, 206, 6, 157, 711, 15,
	206, 6, 140, 711, 15, 206, 6, 160, 711, 15, 206, 6, 93, 60, 15, 206,
	6, 100, 60, 15, 206, 6, 139, 60, 15, 206, 6, 157, 60, 15, 206, 6,
	140, 60, 15, 206, 6, 160, 60, 15, 206, 6, 67, 1142, 15, 206, 6, 70,
	1142, 15, 206, 6, 79, 1142, 15, 206, 6, 93, 1142, 15, 206, 6, 100, 1142,
	15, 206, 6, 139, 1142, 15, 206, 6, 157, 1142, 15, 206, 6, 140, 1142, 15,
	206, 6, 160, 1142, 15, 206, 6, 67, 1579, 15, 206, 6, 70, 1579, 15, 206,
	6, 79, 1579, 15, 206, 6, 93, 1579, 15, 206, 6, 100, 1579, 15, 206, 6,
	70, 1002, 15, 206, 6, 79, 1002, 15, 206, 6, 79, 1002, 587, 25, 15, 206,
	6, 93, 1002, 15, 206, 6, 100, 1002, 15, 206, 6, 139, 1002, 15, 206, 6,
	157, 1002, 15, 206, 6, 140, 1002, 15, 206, 6, 160, 1002, 15, 206, 6, 67,
	1482, 15, 206, 6, 70, 1482, 15, 206, 6, 79, 1482, 15, 206, 6, 79, 1482,
	587, 25, 15, 206, 6, 93, 1482, 15, 206, 6, 100, 1482, 15, 206, 6, 1002,
	32, 1141, 120, 711, 15, 206, 6, 1002, 32, 1141, 120, 1894, 15, 206, 6, 67,
	1385, 15, 206, 6, 70, 1385, 15, 206, 6, 79, 1385, 15, 206, 6, 79, 1385,
	587, 25, 15, 206, 6, 93, 1385, 15, 206, 6, 100, 1385, 15, 206, 6, 79,
	587, 25, 7173, 15, 206, 6, 79, 587, 25, 7174, 15, 206, 6, 93, 587, 25,
	2326, 15, 206, 6, 93, 587, 25, 8435, 15, 206, 6, 93, 587, 25, 2326, 24,
	15, 206, 6, 93, 587, 25, 2326, 71, 15, 206, 6, 139, 587, 25, 5868, 15,
	206, 6, 157, 587, 25, 7950, 15, 206, 6, 157, 587, 25, 1842, 24, 15, 206,
	6, 157, 587, 25, 1842, 71, 15, 206, 6, 140, 587, 25, 11102, 15, 206, 6,
	140, 587, 25, 11103, 15, 206, 6, 160, 587, 25, 3445, 15, 206, 6, 160, 587,
	25, 7939, 15, 206, 6, 160, 587, 25, 7940, 15, 206, 6, 160, 587, 25, 3445,
	24, 15, 206, 6, 70, 403, 504, 15, 206, 6, 79, 403, 504, 15, 206, 6,
	93, 403, 504, 15, 206, 6, 100, 403, 504, 15, 206, 6, 139, 403, 504, 15,
	206, 6, 67, 1288, 15, 206, 6, 70, 1288, 15, 206, 6, 79, 1288, 15, 206,
	6, 93, 1288, 15, 206, 6, 93, 1288, 587, 25, 15, 206, 6, 100, 1288, 15,
	206, 6, 100, 1288, 587, 25, 15, 206, 6, 9174, 15, 206, 6, 9173, 15, 206,
	6, 67, 3306, 15, 206, 6, 70, 3306, 15, 206, 6, 67, 928, 711, 15, 206,
	6, 70, 1171, 711, 15, 206, 6, 100, 3984, 711, 15, 206, 6, 67, 928, 587,
	25, 24, 15, 206, 6, 70, 1171, 587, 25, 24, 15, 206, 6, 67, 511, 403,
	15, 206, 6, 67, 516, 403, 15, 206, 6, 50, 2105, 67, 2494, 15, 206, 6,
	50, 2105, 67, 516, 15, 206, 6, 67, 516, 1830, 15, 206, 6, 67, 133, 1830,
	15, 206, 6, 1564, 67, 928, 15, 206, 6, 1564, 70, 1171, 15, 206, 6, 1564,
	605, 15, 206, 6, 1564, 551, 15, 206, 6, 93, 60, 587, 25, 15, 206, 6,
	100, 60, 587, 25, 15, 206, 6, 139, 60, 587, 25, 15, 206, 6, 157, 60,
	587, 25, 15, 206, 6, 140, 60, 587, 25, 15, 206, 6, 160, 60, 587, 25,
	15, 225, 6, 50, 2105, 720, 1397, 15, 225, 6, 86, 577, 15, 225, 6, 186,
	577, 15, 225, 6, 186, 4103, 15, 225, 6, 186, 9922, 15, 6, 741, 32, 394,
	504, 15, 6, 741, 32, 1165, 15, 6, 1283, 32, 1079, 15, 6, 778, 32, 711,
	504, 15, 6, 1533, 32, 773, 15, 6, 1533, 32, 493, 15, 6, 1533, 32, 443,
	15, 6, 670, 172, 670, 32, 3681, 15, 6, 217, 32, 863, 15, 6, 655, 32,
	787, 15, 6, 1296, 32, 583, 15, 6, 1296, 32, 60, 60, 60, 15, 6, 2186,
	32, 652, 15, 6, 560, 32, 2101, 15, 6, 560, 32, 403, 15, 6, 560, 32,
	403, 653, 48, 15, 6, 560, 32, 1790, 15, 6, 560, 32, 2198, 15, 6, 560,
	32, 1409, 15, 6, 560, 32, 224, 15, 6, 560, 32, 703, 15, 6, 560, 32,
	1311, 407, 15, 6, 560, 32, 729, 15, 6, 560, 32, 143, 15, 6, 560, 32,
	479, 15, 6, 560, 32, 583, 407, 15, 6, 560, 32, 882, 15, 6, 560, 32,
	787, 15, 6, 560, 32, 1445, 15, 6, 560, 32, 1445, 120, 882, 15, 6, 560,
	32, 326, 2, 2623, 15, 6, 560, 32, 318, 15, 6, 560, 32, 318, 32, 787,
	15, 6, 560, 32, 2331, 120, 729, 15, 6, 560, 32, 1323, 15, 6, 560, 32,
	2352, 15, 6, 560, 32, 540, 15, 6, 560, 32, 493, 15, 6, 560, 32, 427,
	15, 6, 560, 32, 464, 15, 6, 560, 32, 632, 407, 15, 6, 979, 32, 787,
	15, 6, 979, 32, 807, 15, 6, 1409, 268, 15, 6, 1079, 578, 1079, 15, 6,
	592, 859, 32, 403, 15, 6, 592, 859, 32, 479, 15, 6, 592, 859, 32, 583,
	407, 15, 6, 592, 859, 32, 202, 15, 6, 592, 859, 32, 988, 15, 6, 592,
	859, 32, 539, 15, 6, 592, 859, 32, 2352, 15, 6, 592, 859, 32, 611, 15,
	6, 592, 32, 611, 15, 6, 311, 32, 1533, 15, 6, 311, 32, 1296, 407, 15,
	6, 311, 32, 560, 32, 583, 407, 15, 6, 311, 32, 560, 32, 882, 15, 6,
	311, 32, 3303, 15, 6, 311, 32, 224, 15, 6, 311, 32, 617, 120, 783, 15,
	6, 311, 32, 617, 120, 492, 15, 6, 311, 32, 143, 120, 24, 15, 6, 311,
	32, 1445, 120, 882, 15, 6, 311, 32, 318, 15, 6, 311, 32, 318, 32, 787,
	15, 6, 311, 32, 2331, 15, 6, 311, 32, 833, 15, 6, 311, 32, 492, 15,
	6, 311, 32, 492, 120, 979, 15, 6, 311, 32, 492, 120, 703, 15, 6, 311,
	32, 964, 15, 6, 311, 32, 4231, 15, 6, 1822, 368, 529, 421, 15, 6, 2241,
	32, 60, 15, 6, 729, 32, 729, 578, 729, 15, 6, 1312, 32, 583, 407, 15,
	6, 829, 120, 729, 32, 863, 15, 6, 143, 504, 407, 15, 6, 479, 32, 403,
	172, 479, 32, 403, 15, 6, 106, 32, 670, 15, 6, 106, 32, 106, 15, 6,
	106, 32, 60, 60, 60, 15, 6, 106, 32, 1174, 15, 6, 375, 32, 1013, 172,
	1013, 15, 6, 326, 2, 2622, 15, 6, 326, 2, 2624, 15, 6, 326, 2, 2625,
	15, 6, 326, 2, 2626, 15, 6, 326, 2, 2043, 15, 6, 326, 2, 2627, 15,
	6, 326, 2, 2628, 15, 6, 326, 2, 2044, 172, 326, 2, 2044, 407, 15, 6,
	326, 2, 2629, 15, 6, 326, 2, 2045, 172, 326, 2, 2045, 15, 6, 326, 2,
	2630, 15, 6, 326, 2, 2049, 15, 6, 326, 2, 2053, 15, 6, 326, 2, 2063,
	15, 6, 326, 2, 2064, 15, 6, 326, 2, 2065, 15, 6, 326, 2, 2066, 15,
	6, 326, 2, 2067, 15, 6, 326, 2, 1730, 15, 6, 326, 2, 2773, 15, 6,
	326, 2, 2774, 15, 6, 326, 2, 2782, 15, 6, 326, 2, 2076, 15, 6, 326,
	2, 2077, 15, 6, 326, 2, 2789, 15, 6, 326, 2, 2790, 15, 6, 326, 2,
	2791, 15, 6, 326, 2, 2795, 15, 6, 326, 2, 1282, 15, 6, 326, 2, 1282,
	32, 828, 15, 6, 326, 2, 1282, 32, 583, 15, 6, 326, 2, 1282, 32, 807,
	120, 1450, 15, 6, 326, 2, 1282, 32, 807, 120, 807, 120, 1450, 15, 6, 326,
	2, 1282, 32, 898, 120, 251, 15, 6, 326, 2, 2796, 15, 6, 326, 2, 2084,
	15, 6, 326, 2, 2800, 15, 6, 326, 2, 2802, 15, 6, 326, 2, 2804, 15,
	6, 326, 2, 2805, 15, 6, 326, 2, 2806, 15, 6, 326, 2, 2807, 15, 6,
	326, 2, 2810, 15, 6, 326, 2, 2816, 15, 6, 326, 2, 969, 15, 6, 326,
	2, 969, 32, 403, 15, 6, 326, 2, 969, 32, 778, 15, 6, 326, 2, 969,
	32, 1299, 407, 407, 15, 6, 326, 2, 969, 32, 1444, 15, 6, 326, 2, 969,
	32, 202, 15, 6, 326, 2, 969, 32, 1352, 15, 6, 326, 2, 969, 32, 440,
	15, 6, 326, 2, 969, 32, 898, 15, 6, 326, 2, 969, 32, 652, 15, 6,
	326, 2, 969, 32, 1508, 15, 6, 326, 2, 2818, 15, 6, 326, 2, 1014, 15,
	6, 326, 2, 1014, 32, 1400, 15, 6, 326, 2, 1014, 32, 224, 15, 6, 326,
	2, 1014, 32, 583, 15, 6, 326, 2, 1014, 32, 583, 407, 15, 6, 326, 2,
	1014, 32, 493, 15, 6, 326, 2, 1014, 32, 807, 120, 807, 120, 1450, 15, 6,
	326, 2, 1014, 32, 2484, 120, 571, 15, 6, 326, 2, 1014, 32, 652, 15, 6,
	326, 2, 1014, 32, 1508, 15, 6, 326, 2, 2823, 15, 6, 326, 2, 2824, 15,
	6, 548, 407, 32, 403, 15, 6, 548, 32, 711, 15, 6, 548, 32, 1422, 15,
	6, 548, 32, 807, 15, 6, 548, 32, 807, 120, 807, 120, 1450, 15, 6, 548,
	32, 863, 15, 6, 540, 120, 4221, 15, 6, 833, 172, 833, 32, 224, 15, 6,
	833, 172, 833, 32, 1088, 15, 6, 663, 32, 1296, 407, 15, 6, 663, 32, 729,
	15, 6, 663, 32, 3387, 15, 6, 663, 32, 479, 15, 6, 663, 32, 3486, 15,
	6, 663, 32, 326, 2, 2043, 15, 6, 663, 32, 1323, 15, 6, 663, 32, 807,
	120, 807, 15, 6, 663, 32, 60, 15, 6, 663, 32, 60, 120, 60, 15, 6,
	663, 32, 1508, 15, 6, 631, 407, 32, 143, 15, 6, 631, 32, 405, 15, 6,
	631, 32, 464, 653, 48, 15, 6, 631, 32, 863, 15, 6, 3950, 504, 15, 6,
	464, 172, 464, 15, 6, 464, 120, 1214, 15, 6, 464, 120, 3686, 15, 6, 464,
	120, 1480, 15, 6, 1165, 120, 560, 32, 493, 15, 6, 1165, 120, 979, 32, 524,
	15, 6, 632, 32, 863, 15, 6, 863, 120, 631, 15, 6, 1698, 32, 728, 504,
	15, 6, 1698, 32, 79, 711, 15, 6, 1006, 359, 15, 6, 1006, 32, 652, 15,
	6, 667, 32, 3210, 15, 6, 667, 32, 326, 2, 2819, 15, 6, 667, 32, 1450,
	15, 6, 4221, 15, 6, 1013, 172, 1013, 120, 1480, 15, 6, 2621, 32, 79, 711,
	504, 231, 2, 233, 6, 6547, 231, 2, 233, 6, 6548, 231, 2, 233, 6, 6549,
	231, 2, 233, 6, 6550, 231, 2, 233, 6, 6551, 231, 2, 233, 6, 6552, 231,
	2, 233, 6, 6553, 231, 2, 233, 6, 6554, 231, 2, 233, 6, 6555, 231, 2,
	233, 6, 6556, 231, 2, 233, 6, 6557, 231, 2, 233, 6, 6558, 231, 2, 233,
	6, 6559, 231, 2, 233, 6, 6560, 231, 2, 233, 6, 6561, 231, 2, 233, 6,
	6562, 231, 2, 233, 6, 6563, 231, 2, 233, 6, 6564, 231, 2, 233, 6, 6565,
	231, 2, 233, 6, 6566, 231, 2, 233, 6, 6567, 231, 2, 233, 6, 6568, 231,
	2, 233, 6, 6569, 231, 2, 233, 6, 6570, 231, 2, 233, 6, 6571, 231, 2,
	233, 6, 6572, 231, 2, 233, 6, 6573, 231, 2, 233, 6, 6574, 231, 2, 233,
	6, 6575, 231, 2, 233, 6, 6576, 231, 2, 233, 6, 6577, 231, 2, 233, 6,
	6578, 231, 2, 233, 6, 6579, 231, 2, 233, 6, 6580, 231, 2, 233, 6, 6581,
	231, 2, 233, 6, 6582, 231, 2, 233, 6, 6583, 231, 2, 233, 6, 6584, 231,
	2, 233, 6, 6585, 231, 2, 233, 6, 6586, 231, 2, 233, 6, 6587, 231, 2,
	233, 6, 6588, 231, 2, 233, 6, 6589, 231, 2, 233, 6, 6590, 231, 2, 233,
	6, 6591, 231, 2, 233, 6, 6592, 231, 2, 233, 6, 6593, 231, 2, 233, 6,
	6594, 231, 2, 233, 6, 6595, 231, 2, 233, 6, 6596, 231, 2, 233, 6, 6597,
	231, 2, 233, 6, 6598, 231, 2, 233, 6, 6599, 231, 2, 233, 6, 6600, 231,
	2, 233, 6, 6601, 231, 2, 233, 6, 6602, 231, 2, 233, 6, 6603, 231, 2,
	233, 6, 6604, 231, 2, 233, 6, 6605, 231, 2, 233, 6, 6606, 231, 2, 233,
	6, 6607, 231, 2, 233, 6, 6608, 231, 2, 233, 6, 6609, 231, 2, 233, 6,
	6610, 231, 2, 233, 6, 6611, 231, 2, 233, 6, 6612, 231, 2, 233, 6, 6613,
	231, 2, 233, 6, 6614, 231, 2, 233, 6, 6615, 231, 2, 233, 6, 6616, 231,
	2, 233, 6, 6617, 231, 2, 233, 6, 6618, 231, 2, 233, 6, 6619, 231, 2,
	233, 6, 6620, 231, 2, 233, 6, 6621, 231, 2, 233, 6, 6622, 231, 2, 233,
	6, 6623, 231, 2, 233, 6, 6624, 231, 2, 233, 6, 6625, 231, 2, 233, 6,
	6626, 231, 2, 233, 6, 6627, 231, 2, 233, 6, 6628, 231, 2, 233, 6, 6629,
	231, 2, 233, 6, 6630, 231, 2, 233, 6, 6631, 231, 2, 233, 6, 6632, 231,
	2, 233, 6, 6633, 231, 2, 233, 6, 6634, 231, 2, 233, 6, 6635, 231, 2,
	233, 6, 6636, 231, 2, 233, 6, 6637, 231, 2, 233, 6, 6638, 231, 2, 233,
	6, 6639, 231, 2, 233, 6, 6640, 231, 2, 233, 6, 6641, 231, 2, 233, 6,
	6642, 231, 2, 233, 6, 6643, 231, 2, 233, 6, 6644, 231, 2, 233, 6, 6645,
	20, 11, 2826, 20, 11, 2827, 20, 11, 2828, 20, 11, 2829, 20, 11, 2830, 20,
	11, 5026, 20, 11, 2831, 20, 11, 5027, 20, 11, 5028, 20, 11, 2832, 20, 11,
	2833, 20, 11, 2834, 20, 11, 2835, 20, 11, 2836, 20, 11, 2837, 20, 11, 2838,
	20, 11, 2839, 20, 11, 5030, 20, 11, 2840, 20, 11, 2841, 20, 11, 2842, 20,
	11, 5031, 20, 11, 2843, 20, 11, 2844, 20, 11, 2845, 20, 11, 2846, 20, 11,
	2847, 20, 11, 2848, 20, 11, 2849, 20, 11, 2850, 20, 11, 2851, 20, 11, 2852,
	20, 11, 2853, 20, 11, 2854, 20, 11, 2855, 20, 11, 2856, 20, 11, 2857, 20,
	11, 5034, 20, 11, 2858, 20, 11, 2859, 20, 11, 2860, 20, 11, 2861, 20, 11,
	2862, 20, 11, 2863, 20, 11, 2864, 20, 11, 2865, 20, 11, 5036, 20, 11, 2866,
	20, 11, 2867, 20, 11, 5038, 20, 11, 2868, 20, 11, 5039, 20, 11, 2869, 20,
	11, 2870, 20, 11, 2871, 20, 11, 2872, 20, 11, 2873, 20, 11, 2874, 20, 11,
	2875, 20, 11, 2876, 20, 11, 2877, 20, 11, 2878, 20, 11, 2879, 20, 11, 2880,
	20, 11, 2881, 20, 11, 2882, 20, 11, 2883, 20, 11, 2884, 20, 11, 2885, 20,
	11, 2886, 20, 11, 2887, 20, 11, 2888, 20, 11, 2889, 20, 11, 2890, 20, 11,
	2891, 20, 11, 2892, 20, 11, 2893, 20, 11, 2894, 20, 11, 2895, 20, 11, 2896,
	20, 11, 3075, 20, 11, 3076, 20, 11, 3077, 20, 11, 3078, 20, 11, 3079, 20,
	11, 5916, 20, 11, 3080, 20, 11, 3081, 20, 11, 3082, 20, 11, 3083, 20, 11,
	6324, 20, 11, 6325, 20, 11, 6326, 20, 11, 6327, 20, 11, 6328, 20, 11, 6329,
	20, 11, 6330, 20, 11, 6331, 20, 11, 6332, 20, 11, 6333, 20, 11, 6334, 20,
	11, 6335, 20, 11, 6336, 20, 11, 6337, 20, 11, 6338, 20, 11, 6339, 20, 11,
	6340, 20, 11, 6341, 20, 11, 6342, 20, 11, 6343, 20, 11, 6344, 20, 11, 6345,
	20, 11, 6346, 20, 11, 6347, 20, 11, 6348, 20, 11, 6349, 20, 11, 6350, 20,
	11, 6351, 20, 11, 6748, 20, 11, 6749, 20, 11, 6750, 20, 11, 6751, 20, 11,
	6752, 20, 11, 6753, 20, 11, 6754, 20, 11, 6755, 20, 11, 6756, 20, 11, 6757,
	20, 11, 6758, 20, 11, 6759, 20, 11, 6760, 20, 11, 6761, 20, 11, 6762, 20,
	11, 6763, 20, 11, 6764, 20, 11, 6765, 20, 11, 6766, 20, 11, 6767, 20, 11,
	6768, 20, 11, 6769, 20, 11, 6770, 20, 11, 6771, 20, 11, 6772, 20, 11, 6773,
	20, 11, 6774, 20, 11, 6775, 20, 11, 6776, 20, 11, 6777, 20, 11, 6778, 20,
	11, 6779, 20, 11, 6780, 20, 11, 6781, 20, 11, 6782, 20, 11, 6783, 20, 11,
	6784, 20, 11, 6785, 20, 11, 6786, 20, 11, 6787, 20, 11, 6788, 20, 11, 6789,
	20, 11, 6790, 20, 11, 6791, 20, 11, 6792, 20, 11, 6793, 20, 11, 6794, 20,
	11, 6795, 20, 11, 6796, 20, 11, 6797, 20, 11, 6798, 20, 11, 6799, 20, 11,
	6800, 20, 11, 6801, 20, 11, 6802, 20, 11, 6803, 20, 11, 6804, 20, 11, 6805,
	20, 11, 6806, 20, 11, 6807, 20, 11, 6808, 20, 11, 6809, 20, 11, 6810, 20,
	11, 6811, 20, 11, 6812, 20, 11, 6813, 20, 11, 6814, 20, 11, 6815, 20, 11,
	6816, 20, 11, 6817, 20, 11, 6818, 20, 11, 6819, 20, 11, 6820, 20, 11, 6821,
	20, 11, 6822, 20, 11, 6823, 20, 11, 6824, 20, 11, 6825, 20, 11, 6826, 20,
	11, 6827, 20, 11, 6828, 20, 11, 6829, 20, 11, 6830, 20, 11, 6831, 20, 11,
	6832, 20, 11, 6833, 20, 11, 6834, 20, 11, 6835, 20, 11, 6836, 20, 11, 6837,
	20, 11, 6838, 20, 11, 6839, 20, 11, 7070, 20, 11, 7071, 20, 11, 7072, 20,
	11, 7073, 20, 11, 7074, 20, 11, 7075, 20, 11, 7076, 20, 11, 7077, 20, 11,
	7078, 20, 11, 7079, 20, 11, 7080, 20, 11, 7081, 20, 11, 7082, 20, 11, 7083,
	20, 11, 7084, 20, 11, 7085, 20, 11, 7086, 20, 11, 7087, 20, 11, 7088, 20,
	11, 7089, 20, 11, 7090, 20, 11, 7091, 20, 11, 7092, 20, 11, 7093, 20, 11,
	7094, 20, 11, 7095, 20, 11, 7096, 20, 11, 7097, 20, 11, 7098, 20, 11, 7099,
	20, 11, 7100, 20, 11, 7101, 20, 11, 7102, 20, 11, 7103, 20, 11, 7104, 20,
	11, 7105, 20, 11, 7106, 20, 11, 7107, 20, 11, 7108, 20, 11, 7109, 20, 11,
	7110, 20, 11, 7111, 20, 11, 7112, 20, 11, 7113, 20, 11, 7205, 20, 11, 7206,
	20, 11, 7207, 20, 11, 7208, 20, 11, 7209, 20, 11, 7210, 20, 11, 7211, 20,
	11, 7212, 20, 11, 7213, 20, 11, 7214, 20, 11, 7215, 20, 11, 7216, 20, 11,
	7217, 20, 11, 7218, 20, 11, 7219, 20, 11, 7220, 20, 11, 7221, 20, 11, 7222,
	20, 11, 7223, 20, 11, 7224, 20, 11, 7225, 20, 11, 7226, 20, 11, 7227, 20,
	11, 7228, 20, 11, 7229, 20, 11, 7230, 20, 11, 7231, 20, 11, 7232, 20, 11,
	7233, 20, 11, 7234, 20, 11, 7235, 20, 11, 7236, 20, 11, 7237, 20, 11, 7238,
	20, 11, 7239, 20, 11, 7240, 20, 11, 7241, 20, 11, 7242, 20, 11, 7243, 20,
	11, 7244, 20, 11, 7245, 20, 11, 7246, 20, 11, 7247, 20, 11, 7248, 20, 11,
	7249, 20, 11, 7250, 20, 11, 7251, 20, 11, 7252, 20, 11, 7253, 20, 11, 7254,
	20, 11, 7255, 20, 11, 7256, 20, 11, 7257, 20, 11, 7258, 20, 11, 7259, 20,
	11, 7260, 20, 11, 7261, 20, 11, 7262, 20, 11, 7263, 20, 11, 7264, 20, 11,
	7265, 20, 11, 7266, 20, 11, 7267, 20, 11, 7268, 20, 11, 7269, 20, 11, 7387,
	20, 11, 7388, 20, 11, 7389, 20, 11, 7390, 20, 11, 7391, 20, 11, 7392, 20,
	11, 7393, 20, 11, 7394, 20, 11, 7395, 20, 11, 7396, 20, 11, 7397, 20, 11,
	7398, 20, 11, 7399, 20, 11, 7400, 20, 11, 7401, 20, 11, 7402, 20, 11, 7403,
	20, 11, 7404, 20, 11, 7405, 20, 11, 7406, 20, 11, 7407, 20, 11, 7408, 20,
	11, 7409, 20, 11, 7410, 20, 11, 7411, 20, 11, 7412, 20, 11, 7413, 20, 11,
	7414, 20, 11, 7415, 20, 11, 7416, 20, 11, 7417, 20, 11, 7418, 20, 11, 7419,
	20, 11, 7420, 20, 11, 7421, 20, 11, 7422, 20, 11, 7423, 20, 11, 7424, 20,
	11, 7425, 20, 11, 7426, 20, 11, 7427, 20, 11, 7428, 20, 11, 7429, 20, 11,
	7430, 20, 11, 7431, 20, 11, 7432, 20, 11, 7433, 20, 11, 7434, 20, 11, 7435,
	20, 11, 7436, 20, 11, 7437, 20, 11, 7438, 20, 11, 7439, 20, 11, 7440, 20,
	11, 7441, 20, 11, 7442, 20, 11, 7443, 20, 11, 7444, 20, 11, 7445, 20, 11,
	7446, 20, 11, 7447, 20, 11, 7448, 20, 11, 7449, 20, 11, 7450, 20, 11, 7645,
	20, 11, 7646, 20, 11, 7647, 20, 11, 7648, 20, 11, 7649, 20, 11, 7650, 20,
	11, 7651, 20, 11, 7652, 20, 11, 7653, 20, 11, 7905, 20, 11, 7906, 20, 11,
	7907, 20, 11, 7908, 20, 11, 7909, 20, 11, 7910, 20, 11, 7911, 20, 11, 7912,
	20, 11, 7913, 20, 11, 7914, 20, 11, 7915, 20, 11, 7916, 20, 11, 7917, 20,
	11, 7918, 20, 11, 7919, 20, 11, 7920, 20, 11, 7921, 20, 11, 7922, 20, 11,
	7923, 20, 11, 8089, 20, 11, 8090, 20, 11, 8091, 20, 11, 8092, 20, 11, 8093,
	20, 11, 8094, 20, 11, 8095, 20, 11, 8096, 20, 11, 8327, 20, 11, 8328, 20,
	11, 8329, 20, 11, 8330, 20, 11, 8331, 20, 11, 8332, 20, 11, 8333, 20, 11,
	8334, 20, 11, 8335, 20, 11, 8336, 20, 11, 3580, 20, 11, 8502, 20, 11, 8503,
	20, 11, 3581, 20, 11, 3582, 20, 11, 8504, 20, 11, 3583, 20, 11, 3584, 20,
	11, 3585, 20, 11, 3586, 20, 11, 3587, 20, 11, 3588, 20, 11, 3589, 20, 11,
	8505, 20, 11, 3590, 20, 11, 3591, 20, 11, 8506, 20, 11, 8507, 20, 11, 8508,
	20, 11, 8509, 20, 11, 8510, 20, 11, 8511, 20, 11, 8512, 20, 11, 8513, 20,
	11, 3592, 20, 11, 3593, 20, 11, 3594, 20, 11, 8514, 20, 11, 3595, 20, 11,
	8515, 20, 11, 3596, 20, 11, 8516, 20, 11, 3597, 20, 11, 3598, 20, 11, 3599,
	20, 11, 3600, 20, 11, 3601, 20, 11, 8517, 20, 11, 3602, 20, 11, 3603, 20,
	11, 8518, 20, 11, 3604, 20, 11, 3605, 20, 11, 3606, 20, 11, 3607, 20, 11,
	8519, 20, 11, 3608, 20, 11, 3609, 20, 11, 3610, 20, 11, 8520, 20, 11, 3611,
	20, 11, 3612, 20, 11, 8521, 20, 11, 8522, 20, 11, 3613, 20, 11, 3614, 20,
	11, 3615, 20, 11, 3616, 20, 11, 3617, 20, 11, 3618, 20, 11, 3619, 20, 11,
	8523, 20, 11, 3620, 20, 11, 3621, 20, 11, 3622, 20, 11, 3623, 20, 11, 8956,
	20, 11, 8957, 20, 11, 8958, 20, 11, 8959, 20, 11, 8960, 20, 11, 8961, 20,
	11, 8962, 20, 11, 8963, 20, 11, 8964, 20, 11, 8965, 20, 11, 8966, 20, 11,
	8967, 20, 11, 8968, 20, 11, 8969, 20, 11, 8970, 20, 11, 8971, 20, 11, 8972,
	20, 11, 8973, 20, 11, 8974, 20, 11, 8975, 20, 11, 8976, 20, 11, 8977, 20,
	11, 8978, 20, 11, 8979, 20, 11, 8980, 20, 11, 8981, 20, 11, 8982, 20, 11,
	8983, 20, 11, 8984, 20, 11, 8985, 20, 11, 8986, 20, 11, 8987, 20, 11, 8988,
	20, 11, 8989, 20, 11, 8990, 20, 11, 8991, 20, 11, 8992, 20, 11, 8993, 20,
	11, 8994, 20, 11, 8995, 20, 11, 8996, 20, 11, 8997, 20, 11, 8998, 20, 11,
	8999, 20, 11, 9000, 20, 11, 9001, 20, 11, 9002, 20, 11, 9003, 20, 11, 9004,
	20, 11, 9225, 20, 11, 9226, 20, 11, 9227, 20, 11, 9228, 20, 11, 9229, 20,
	11, 9230, 20, 11, 9231, 20, 11, 9232, 20, 11, 9233, 20, 11, 9234, 20, 11,
	9235, 20, 11, 9236, 20, 11, 9237, 20, 11, 9238, 20, 11, 9239, 20, 11, 9240,
	20, 11, 9241, 20, 11, 9242, 20, 11, 9243, 20, 11, 9244, 20, 11, 9245, 20,
	11, 9246, 20, 11, 9333, 20, 11, 9334, 20, 11, 9335, 20, 11, 9336, 20, 11,
	9337, 20, 11, 9338, 20, 11, 9339, 20, 11, 9340, 20, 11, 9341, 20, 11, 9342,
	20, 11, 9343, 20, 11, 9344, 20, 11, 9345, 20, 11, 9346, 20, 11, 9347, 20,
	11, 9348, 20, 11, 9349, 20, 11, 9350, 20, 11, 9351, 20, 11, 9352, 20, 11,
	9353, 20, 11, 9354, 20, 11, 9355, 20, 11, 9356, 20, 11, 9357, 20, 11, 9358,
	20, 11, 9431, 20, 11, 9432, 20, 11, 9433, 20, 11, 9434, 20, 11, 9435, 20,
	11, 9436, 20, 11, 9437, 20, 11, 9438, 20, 11, 9439, 20, 11, 9440, 20, 11,
	9441, 20, 11, 9442, 20, 11, 9443, 20, 11, 9444, 20, 11, 9445, 20, 11, 9446,
	20, 11, 9447, 20, 11, 9448, 20, 11, 9449, 20, 11, 9450, 20, 11, 9451, 20,
	11, 9452, 20, 11, 9453, 20, 11, 9454, 20, 11, 9455, 20, 11, 9456, 20, 11,
	9457, 20, 11, 9458, 20, 11, 9459, 20, 11, 9460, 20, 11, 9461, 20, 11, 9462,
	20, 11, 9463, 20, 11, 9464, 20, 11, 9465, 20, 11, 9466, 20, 11, 9467, 20,
	11, 9468, 20, 11, 9469, 20, 11, 9470, 20, 11, 9471, 20, 11, 9472, 20, 11,
	9473, 20, 11, 9474, 20, 11, 9475, 20, 11, 9476, 20, 11, 9477, 20, 11, 9478,
	20, 11, 9479, 20, 11, 9480, 20, 11, 9481, 20, 11, 9482, 20, 11, 9483, 20,
	11, 9484, 20, 11, 9485, 20, 11, 9486, 20, 11, 9487, 20, 11, 9488, 20, 11,
	9489, 20, 11, 9490, 20, 11, 9491, 20, 11, 9492, 20, 11, 9493, 20, 11, 9494,
	20, 11, 9495, 20, 11, 9496, 20, 11, 9497, 20, 11, 9498, 20, 11, 9499, 20,
	11, 9500, 20, 11, 9501, 20, 11, 9502, 20, 11, 9503, 20, 11, 9504, 20, 11,
	9505, 20, 11, 9570, 20, 11, 9571, 20, 11, 9572, 20, 11, 9573, 20, 11, 9574,
	20, 11, 9575, 20, 11, 9576, 20, 11, 9577, 20, 11, 9578, 20, 11, 9579, 20,
	11, 9580, 20, 11, 9581, 20, 11, 9582, 20, 11, 9874, 20, 11, 9875, 20, 11,
	9876, 20, 11, 9877, 20, 11, 9878, 20, 11, 9879, 20, 11, 9880, 20, 11, 9960,
	20, 11, 9961, 20, 11, 9962, 20, 11, 9963, 20, 11, 9964, 20, 11, 9965, 20,
	11, 9966, 20, 11, 9967, 20, 11, 9968, 20, 11, 9969, 20, 11, 9970, 20, 11,
	9971, 20, 11, 9972, 20, 11, 9973, 20, 11, 9974, 20, 11, 9975, 20, 11, 9976,
	20, 11, 9977, 20, 11, 9978, 20, 11, 9979, 20, 11, 9980, 20, 11, 9981, 20,
	11, 9982, 20, 11, 9983, 20, 11, 9984, 20, 11, 9985, 20, 11, 9986, 20, 11,
	9987, 20, 11, 9988, 20, 11, 9989, 20, 11, 9990, 20, 11, 9991, 20, 11, 9992,
	20, 11, 9993, 20, 11, 10166, 20, 11, 10167, 20, 11, 10168, 20, 11, 10169, 20,
	11, 10170, 20, 11, 10171, 20, 11, 10172, 20, 11, 10173, 20, 11, 10174, 20, 11,
	10175, 20, 11, 10176, 20, 11, 10177, 20, 11, 10178, 20, 11, 10179, 20, 11, 10180,
	20, 11, 10181, 20, 11, 10182, 20, 11, 10183, 20, 11, 10184, 20, 11, 10185, 20,
	11, 10186, 20, 11, 10187, 20, 11, 10188, 20, 11, 10189, 20, 11, 10190, 20, 11,
	10191, 20, 11, 10192, 20, 11, 10193, 20, 11, 10194, 20, 11, 10195, 20, 11, 10196,
	20, 11, 10197, 20, 11, 10198, 20, 11, 10199, 20, 11, 10200, 20, 11, 10201, 20,
	11, 10202, 20, 11, 10203, 20, 11, 10204, 20, 11, 10205, 20, 11, 10206, 20, 11,
	10207, 20, 11, 10208, 20, 11, 10209, 20, 11, 10210, 20, 11, 10211, 20, 11, 10212,
	20, 11, 10213, 20, 11, 10214, 20, 11, 10215, 20, 11, 10216, 20, 11, 10217, 20,
	11, 10218, 20, 11, 10219, 20, 11, 10669, 20, 11, 10670, 20, 11, 10671, 20, 11,
	10672, 20, 11, 10673, 20, 11, 10674, 20, 11, 10675, 20, 11, 10676, 20, 11, 10677,
	20, 11, 10678, 20, 11, 10679, 20, 11, 10680, 20, 11, 10681, 20, 11, 10682, 20,
	11, 10683, 20, 11, 10684, 20, 11, 10685, 20, 11, 10686, 20, 11, 10687, 20, 11,
	10688, 20, 11, 10689, 20, 11, 10690, 20, 11, 10691, 20, 11, 10692, 20, 11, 10693,
	20, 11, 10694, 20, 11, 10695, 20, 11, 10696, 20, 11, 10697, 20, 11, 10698, 20,
	11, 10699, 20, 11, 10700, 20, 11, 10701, 20, 11, 10702, 20, 11, 10703, 20, 11,
	10704, 20, 11, 10705, 20, 11, 10706, 20, 11, 10707, 20, 11, 10708, 20, 11, 10709,
	20, 11, 10710, 20, 11, 10711, 20, 11, 10712, 20, 11, 10992, 20, 11, 10993, 20,
	11, 10994, 20, 11, 10995, 20, 11, 10996, 20, 11, 10997, 20, 11, 10998, 20, 11,
	10999, 20, 11, 11000, 20, 11, 11001, 20, 11, 11002, 20, 11, 11003, 20, 11, 11004,
	20, 11, 11005, 20, 11, 11006, 20, 11, 11007, 20, 11, 11008, 20, 11, 11009, 20,
	11, 11010, 20, 11, 11011, 20, 11, 11012, 20, 11, 11013, 20, 11, 11014, 20, 11,
	11015, 20, 11, 11016, 20, 11, 11017, 20, 11, 11018, 20, 11, 11019, 20, 11, 11020,
	20, 11, 11021, 20, 11, 11022, 20, 11, 11023, 20, 11, 11024, 20, 11, 11025, 20,
	11, 11026, 20, 11, 11027, 20, 11, 11028, 20, 11, 11029, 20, 11, 11030, 20, 11,
	11031, 20, 11, 11032, 20, 11, 11033, 20, 11, 11034, 20, 11, 11035, 20, 11, 11036,
	20, 11, 11037, 20, 11, 11038, 20, 11, 11116, 20, 11, 11117, 20, 11, 11118, 20,
	11, 11119, 20, 11, 11120, 20, 11, 11121, 20, 11, 11122, 20, 11, 11123, 20, 11,
	11124, 20, 11, 11125, 20, 11, 11126, 20, 11, 11127, 20, 11, 11128, 20, 11, 11129,
	20, 11, 11130, 20, 11, 11131, 20, 11, 11132, 20, 11, 11133, 20, 11, 11134, 20,
	11, 11135, 20, 11, 11136, 20, 11, 11137, 20, 11, 11138, 20, 11, 11139, 20, 11,
	11140, 20, 11, 11141, 20, 11, 11142, 20, 11, 11143, 20, 11, 11144, 20, 11, 11145,
	20, 11, 11146, 20, 11, 11147, 20, 11, 11148, 20, 11, 11149, 20, 11, 11150, 20,
	11, 11151, 20, 11, 11152, 20, 11, 11153, 20, 11, 11154, 20, 11, 11155, 20, 11,
	11156, 20, 11, 11157, 20, 11, 11158, 20, 11, 11159, 20, 11, 11160, 20, 11, 11161,
	20, 11, 11162, 20, 11, 11163, 20, 11, 11164, 20, 11, 11165, 20, 11, 11166, 20,
	11, 11167, 20, 11, 11168, 20, 11, 11169, 20, 11, 11170, 20, 11, 11171, 20, 11,
	11172, 20, 11, 11173, 20, 11, 11174, 20, 11, 11175, 20, 11, 11176, 20, 11, 11177,
	20, 11, 11178, 20, 11, 11179, 20, 11, 11180, 20, 11, 11181, 20, 11, 11182, 20,
	11, 11183, 20, 11, 11184, 20, 11, 11185, 20, 11, 11186, 20, 11, 11187, 20, 11,
	11188, 20, 11, 11189, 20, 11, 11190, 20, 11, 11191, 20, 11, 11192, 20, 11, 11283,
	20, 11, 11284, 20, 11, 11285, 20, 11, 11286, 20, 11, 11287, 20, 11, 11288, 20,
	11, 11289, 20, 11, 11290, 20, 11, 11291, 20, 11, 11292, 20, 11, 11293, 20, 11,
	11294, 20, 11, 11295, 20, 11, 11296, 20, 11, 11297, 20, 11, 11298, 20, 11, 11299,
	20, 11, 11300, 20, 11, 11301, 20, 11, 11302, 20, 11, 11303, 20, 11, 11304, 20,
	11, 11305, 20, 11, 11306, 20, 11, 11307, 20, 11, 11308, 20, 11, 11309, 20, 11,
	11310, 20, 11, 11311, 20, 11, 11312, 20, 11, 11313, 20, 11, 11314, 20, 11, 11395,
	20, 11, 11396, 20, 11, 11397, 20, 11, 11398, 20, 11, 11399, 20, 11, 11400, 20,
	11, 11401, 20, 11, 11402, 20, 11, 11403, 20, 11, 11404, 20, 11, 11405, 20, 11,
	11406, 20, 11, 11454, 20, 11, 11455, 20, 11, 11456, 20, 11, 11457, 20, 11, 11458,
	20, 11, 11459, 20, 11, 11460, 20, 11, 11461, 20, 11, 11462, 20, 11, 11559, 20,
	11, 11560, 20, 11, 11561, 20, 11, 11562, 20, 11, 11563, 20, 11, 11564, 20, 11,
	11565, 20, 11, 11566, 20, 11, 11567, 20, 11, 11568, 20, 11, 11569, 20, 11, 11570,
	20, 11, 11571, 20, 11, 11572, 20, 11, 11573, 20, 11, 11574, 20, 11, 11575, 20,
	11, 11576, 20, 11, 11577, 20, 11, 11578, 20, 11, 11579, 20, 11, 11580, 20, 11,
	11581, 20, 11, 11582, 20, 11, 11583, 20, 11, 11584, 20, 11, 11585, 20, 11, 11586,
	20, 11, 11587, 20, 11, 11588, 20, 11, 11589, 20, 11, 11590, 20, 11, 11591, 20,
	11, 11592, 20, 11, 11593, 20, 11, 11594, 20, 11, 11595, 20, 11, 11596, 20, 11,
	11597, 20, 11, 11598, 20, 11, 11599, 20, 11, 5577, 20, 11, 5578, 20, 11, 5579,
	20, 11, 5580, 20, 11, 5581, 20, 11, 5582, 20, 11, 5583, 20, 11, 5584, 20,
	11, 5585, 20, 11, 5586, 20, 11, 5587, 20, 11, 5588, 20, 11, 5589, 20, 11,
	5590, 20, 11, 5591, 20, 11, 5592, 20, 11, 5593, 20, 11, 5594, 20, 11, 5595,
	20, 11, 5596, 20, 11, 5597, 20, 11, 5598, 20, 11, 5599, 20, 11, 5600, 20,
	11, 5601, 20, 11, 5602, 20, 11, 5603, 20, 11, 5604, 20, 11, 5605, 20, 11,
	5606, 20, 11, 5607, 20, 11, 5608, 20, 11, 5609, 20, 11, 5610, 20, 11, 86,
	1219, 20, 11, 135, 1219, 20, 11, 1843, 653, 442, 1682, 20, 11, 1843, 653, 521,
	1682, 20, 11, 1843, 653, 442, 591, 20, 11, 1843, 653, 521, 591, 20, 11, 715,
	94, 20, 11, 1190, 2475, 20, 11, 591, 2475, 38, 11, 2826, 38, 11, 2827, 38,
	11, 2828, 38, 11, 2829, 38, 11, 2830, 38, 11, 2831, 38, 11, 2832, 38, 11,
	2833, 38, 11, 2834, 38, 11, 2835, 38, 11, 5029, 38, 11, 2836, 38, 11, 2837,
	38, 11, 2838, 38, 11, 2839, 38, 11, 2840, 38, 11, 2841, 38, 11, 2842, 38,
	11, 2843, 38, 11, 2844, 38, 11, 2845, 38, 11, 2846, 38, 11, 2847, 38, 11,
	2848, 38, 11, 2849, 38, 11, 2850, 38, 11, 2851, 38, 11, 5032, 38, 11, 2852,
	38, 11, 2853, 38, 11, 2854, 38, 11, 2855, 38, 11, 2856, 38, 11, 2857, 38,
	11, 2858, 38, 11, 2859, 38, 11, 2860, 38, 11, 2861, 38, 11, 2862, 38, 11,
	2863, 38, 11, 2864, 38, 11, 5035, 38, 11, 2865, 38, 11, 2866, 38, 11, 5037,
	38, 11, 2867, 38, 11, 2868, 38, 11, 2869, 38, 11, 2870, 38, 11, 2871, 38,
	11, 2872, 38, 11, 5040, 38, 11, 5041, 38, 11, 2873, 38, 11, 2874, 38, 11,
	2875, 38, 11, 2876, 38, 11, 2877, 38, 11, 2878, 38, 11, 2879, 38, 11, 2880,
	38, 11, 2881, 38, 11, 2882, 38, 11, 2883, 38, 11, 2884, 38, 11, 2885, 38,
	11, 2886, 38, 11, 2887, 38, 11, 2888, 38, 11, 2889, 38, 11, 2890, 38, 11,
	2891, 38, 11, 2892, 38, 11, 5042, 38, 11, 5043, 38, 11, 5044, 38, 11, 2893,
	38, 11, 2894, 38, 11, 2895, 38, 11, 2896, 38, 11, 5045, 38, 11, 5046, 38,
	11, 5047, 38, 11, 5048, 38, 11, 5049, 38, 11, 5050, 38, 11, 5051, 38, 11,
	5052, 38, 11, 5053, 38, 11, 5054, 38, 11, 5055, 38, 11, 5056, 38, 11, 5057,
	38, 11, 5058, 38, 11, 5059, 38, 11, 5060, 38, 11, 5061, 38, 11, 5062, 38,
	11, 5063, 38, 11, 5064, 38, 11, 5065, 38, 11, 5066, 38, 11, 5067, 38, 11,
	5068, 38, 11, 5069, 38, 11, 5070, 38, 11, 5071, 38, 11, 5072, 38, 11, 5073,
	38, 11, 5074, 38, 11, 5075, 38, 11, 2897, 38, 11, 5076, 38, 11, 5077, 38,
	11, 5078, 38, 11, 5079, 38, 11, 5080, 38, 11, 5081, 38, 11, 5082, 38, 11,
	5083, 38, 11, 5084, 38, 11, 5085, 38, 11, 5086, 38, 11, 5087, 38, 11, 5088,
	38, 11, 5089, 38, 11, 5090, 38, 11, 5091, 38, 11, 5092, 38, 11, 5093, 38,
	11, 5094, 38, 11, 5095, 38, 11, 5096, 38, 11, 5097, 38, 11, 5098, 38, 11,
	5099, 38, 11, 5100, 38, 11, 5101, 38, 11, 5102, 38, 11, 5103, 38, 11, 5104,
	38, 11, 5105, 38, 11, 5106, 38, 11, 5107, 38, 11, 5108, 38, 11, 5109, 38,
	11, 5111, 38, 11, 5112, 38, 11, 5113, 38, 11, 5114, 38, 11, 5115, 38, 11,
	5116, 38, 11, 5117, 38, 11, 5118, 38, 11, 5119, 38, 11, 5120, 38, 11, 5121,
	38, 11, 5122, 38, 11, 5124, 38, 11, 5125, 38, 11, 5126, 38, 11, 5127, 38,
	11, 5128, 38, 11, 5129, 38, 11, 5130, 38, 11, 5131, 38, 11, 5132, 38, 11,
	5133, 38, 11, 5134, 38, 11, 5135, 38, 11, 5136, 38, 11, 5137, 38, 11, 5138,
	38, 11, 5139, 38, 11, 5140, 38, 11, 5141, 38, 11, 5142, 38, 11, 5143, 38,
	11, 5144, 38, 11, 5145, 38, 11, 5146, 38, 11, 5147, 38, 11, 5148, 38, 11,
	5149, 38, 11, 5150, 38, 11, 5151, 38, 11, 5152, 38, 11, 5153, 38, 11, 5154,
	38, 11, 5155, 38, 11, 5156, 38, 11, 5157, 38, 11, 5158, 38, 11, 5159, 38,
	11, 5160, 38, 11, 5161, 38, 11, 5162, 38, 11, 5163, 38, 11, 5164, 38, 11,
	5165, 38, 11, 5166, 38, 11, 5167, 38, 11, 5168, 38, 11, 5169, 38, 11, 5170,
	38, 11, 5171, 38, 11, 5172, 38, 11, 5173, 38, 11, 5174, 38, 11, 5175, 38,
	11, 5176, 38, 11, 5177, 38, 11, 5178, 38, 11, 5179, 38, 11, 5180, 38, 11,
	5181, 38, 11, 5182, 38, 11, 5183, 38, 11, 5184, 38, 11, 5185, 38, 11, 5186,
	38, 11, 5187, 38, 11, 5188, 38, 11, 5189, 38, 11, 5190, 38, 11, 5191, 38,
	11, 5192, 38, 11, 5193, 38, 11, 5194, 38, 11, 5195, 38, 11, 5196, 38, 11,
	5197, 38, 11, 5198, 38, 11, 5199, 38, 11, 5200, 38, 11, 5201, 38, 11, 5202,
	38, 11, 5203, 38, 11, 5204, 38, 11, 5205, 38, 11, 5206, 38, 11, 5207, 38,
	11, 5208, 38, 11, 5209, 38, 11, 5210, 38, 11, 5211, 38, 11, 5212, 38, 11,
	5213, 38, 11, 5214, 38, 11, 5215, 38, 11, 5216, 38, 11, 5217, 38, 11, 5218,
	38, 11, 5219, 38, 11, 5220, 38, 11, 5221, 38, 11, 5222, 38, 11, 5223, 38,
	11, 5224, 38, 11, 5225, 38, 11, 5226, 38, 11, 5227, 38, 11, 5228, 38, 11,
	5229, 38, 11, 5230, 38, 11, 5231, 38, 11, 5232, 38, 11, 5233, 38, 11, 5234,
	38, 11, 5235, 38, 11, 5236, 38, 11, 5237, 38, 11, 5238, 38, 11, 5239, 38,
	11, 5240, 38, 11, 5241, 38, 11, 5242, 38, 11, 5243, 38, 11, 5244, 38, 11,
	5245, 38, 11, 5246, 38, 11, 5247, 38, 11, 5248, 38, 11, 5249, 38, 11, 5250,
	38, 11, 5251, 38, 11, 5252, 38, 11, 5253, 38, 11, 5254, 38, 11, 5255, 38,
	11, 5256, 38, 11, 5257, 38, 11, 5258, 38, 11, 5259, 38, 11, 5260, 38, 11,
	5261, 38, 11, 5262, 38, 11, 5263, 38, 11, 5264, 38, 11, 5265, 38, 11, 5266,
	38, 11, 5267, 38, 11, 5268, 38, 11, 5269, 38, 11, 5270, 38, 11, 5271, 38,
	11, 5272, 38, 11, 5273, 38, 11, 5274, 38, 11, 5275, 38, 11, 5276, 38, 11,
	5277, 38, 11, 5278, 38, 11, 5279, 38, 11, 5280, 38, 11, 5281, 38, 11, 5282,
	38, 11, 5283, 38, 11, 5284, 38, 11, 5285, 38, 11, 5286, 38, 11, 5287, 38,
	11, 5288, 38, 11, 5289, 38, 11, 5290, 38, 11, 5291, 38, 11, 5292, 38, 11,
	5293, 38, 11, 5294, 38, 11, 5295, 38, 11, 5296, 38, 11, 5297, 38, 11, 5298,
	38, 11, 5299, 38, 11, 5300, 38, 11, 5301, 38, 11, 5302, 38, 11, 5303, 38,
	11, 5305, 38, 11, 2898, 38, 11, 2899, 38, 11, 2900, 38, 11, 2901, 38, 11,
	2902, 38, 11, 2903, 38, 11, 2904, 38, 11, 2905, 38, 11, 5306, 38, 11, 2906,
	38, 11, 2907, 38, 11, 2908, 38, 11, 2909, 38, 11, 5309, 38, 11, 2910, 38,
	11, 2911, 38, 11, 2912, 38, 11, 2913, 38, 11, 2914, 38, 11, 2915, 38, 11,
	2916, 38, 11, 2917, 38, 11, 2918, 38, 11, 2919, 38, 11, 2920, 38, 11, 2921,
	38, 11, 2922, 38, 11, 2923, 38, 11, 2924, 38, 11, 2925, 38, 11, 5313, 38,
	11, 2926, 38, 11, 2927, 38, 11, 5315, 38, 11, 5316, 38, 11, 5317, 38, 11,
	2928, 38, 11, 2929, 38, 11, 2930, 38, 11, 2931, 38, 11, 5318, 38, 11, 5319,
	38, 11, 5320, 38, 11, 2932, 38, 11, 2933, 38, 11, 2934, 38, 11, 2935, 38,
	11, 2936, 38, 11, 2937, 38, 11, 2938, 38, 11, 2939, 38, 11, 2940, 38, 11,
	2941, 38, 11, 2942, 38, 11, 2943, 38, 11, 2944, 38, 11, 2945, 38, 11, 2946,
	38, 11, 2947, 38, 11, 2948, 38, 11, 2949, 38, 11, 2950, 38, 11, 2951, 38,
	11, 2952, 38, 11, 2953, 38, 11, 2954, 38, 11, 5321, 38, 11, 2955, 38, 11,
	2956, 38, 11, 2957, 38, 11, 2958, 38, 11, 2959, 38, 11, 5322, 38, 11, 2960,
	38, 11, 2961, 38, 11, 2962, 38, 11, 2963, 38, 11, 5323, 38, 11, 2964, 38,
	11, 2965, 38, 11, 2966, 38, 11, 5324, 38, 11, 5325, 38, 11, 5326, 38, 11,
	5327, 38, 11, 5328, 38, 11, 5329, 38, 11, 5330, 38, 11, 5331, 38, 11, 5332,
	38, 11, 5333, 38, 11, 5334, 38, 11, 5335, 38, 11, 5336, 38, 11, 5337, 173,
	246, 716, 38, 11, 5338, 38, 11, 5339, 38, 11, 5340, 38, 11, 5341, 38, 11,
	5342, 38, 11, 5343, 38, 11, 5344, 38, 11, 5345, 38, 11, 5346, 38, 11, 5347,
	38, 11, 5348, 38, 11, 5349, 140, 38, 11, 5350, 38, 11, 5351, 38, 11, 5352,
	38, 11, 5353, 38, 11, 5354, 38, 11, 5355, 38, 11, 2967, 38, 11, 2968, 38,
	11, 2969, 38, 11, 2970, 38, 11, 2971, 38, 11, 2972, 38, 11, 2973, 38, 11,
	2974, 38, 11, 2975, 38, 11, 2976, 38, 11, 2977, 1190, 1225, 56, 38, 11, 5356,
	591, 1225, 56, 38, 11, 2978, 38, 11, 2979, 38, 11, 2980, 38, 11, 2981, 38,
	11, 2982, 38, 11, 2983, 38, 11, 2984, 38, 11, 2985, 38, 11, 5357, 38, 11,
	5358, 38, 11, 5359, 38, 11, 5360, 38, 11, 5361, 38, 11, 5362, 38, 11, 5363,
	38, 11, 5364, 38, 11, 5365, 38, 11, 5366, 38, 11, 5367, 38, 11, 5368, 38,
	11, 5369, 38, 11, 5370, 38, 11, 5371, 38, 11, 5372, 38, 11, 5373, 38, 11,
	5374, 38, 11, 5375, 38, 11, 5376, 38, 11, 5377, 38, 11, 5378, 38, 11, 5379,
	38, 11, 5380, 38, 11, 5381, 38, 11, 5382, 38, 11, 5383, 38, 11, 5384, 38,
	11, 5385, 38, 11, 5386, 38, 11, 5387, 38, 11, 5388, 38, 11, 5389, 38, 11,
	5390, 38, 11, 5391, 38, 11, 5392, 38, 11, 5393, 38, 11, 5394, 38, 11, 5395,
	38, 11, 5396, 38, 11, 5397, 38, 11, 5398, 38, 11, 5399, 38, 11, 5400, 38,
	11, 5401, 38, 11, 5402, 38, 11, 5403, 38, 11, 5404, 38, 11, 5405, 38, 11,
	5406, 38, 11, 5407, 38, 11, 5408, 38, 11, 5409, 38, 11, 5410, 38, 11, 5411,
	38, 11, 5412, 38, 11, 5413, 38, 11, 5414, 38, 11, 5415, 38, 11, 5416, 38,
	11, 5417, 38, 11, 5418, 38, 11, 5419, 38, 11, 5420, 38, 11, 5421, 38, 11,
	5422, 38, 11, 5423, 38, 11, 5424, 38, 11, 5425, 38, 11, 5426, 38, 11, 5427,
	38, 11, 5428, 38, 11, 5429, 38, 11, 5430, 38, 11, 5431, 38, 11, 5432, 38,
	11, 5433, 38, 11, 5434, 38, 11, 5435, 38, 11, 5436, 38, 11, 5437, 38, 11,
	2986, 38, 11, 2987, 38, 11, 2988, 38, 11, 2989, 38, 11, 2990, 38, 11, 2991,
	38, 11, 5438, 38, 11, 2992, 38, 11, 2993, 38, 11, 2994, 38, 11, 2995, 38,
	11, 2996, 38, 11, 2997, 38, 11, 5439, 38, 11, 2998, 38, 11, 2999, 38, 11,
	5440, 38, 11, 5441, 38, 11, 5442, 38, 11, 3000, 38, 11, 3001, 38, 11, 5443,
	38, 11, 3002, 38, 11, 3003, 38, 11, 3004, 38, 11, 3005, 38, 11, 3006, 38,
	11, 3007, 38, 11, 3008, 38, 11, 3009, 33, 5, 39, 2, 24, 3712, 1229, 33,
	5, 39, 2, 24, 7478, 7346, 33, 5, 39, 2, 24, 1656, 1229, 3827, 33, 5,
	39, 2, 24, 1656, 1229, 3826, 33, 5, 39, 2, 24, 1454, 1229, 33, 5, 39,
	2, 24, 10384, 33, 5, 39, 2, 24, 4084, 1229, 33, 5, 39, 2, 24, 2402,
	1229, 33, 5, 39, 2, 24, 10357, 119, 1460, 33, 5, 39, 2, 24, 1656, 119,
	1460, 3827, 33, 5, 39, 2, 24, 1656, 119, 1460, 3826, 33, 5, 39, 2, 24,
	8684, 33, 5, 39, 2, 24, 613, 2338, 33, 5, 39, 2, 24, 9102, 33, 5,
	39, 2, 24, 8687, 33, 5, 39, 2, 24, 8714, 33, 5, 39, 2, 24, 8949,
	33, 5, 39, 2, 24, 10314, 33, 5, 39, 2, 24, 9325, 33, 5, 39, 2,
	24, 8166, 33, 5, 39, 2, 24, 9223, 33, 5, 39, 2, 24, 1992, 33, 5,
	39, 2, 24, 9143, 33, 5, 39, 2, 24, 8369, 33, 5, 39, 2, 24, 2323,
	1867, 33, 5, 39, 2, 24, 1909, 8800, 33, 5, 39, 2, 24, 8682, 33, 5,
	39, 2, 24, 9647, 33, 5, 39, 2, 24, 7542, 33, 5, 39, 2, 24, 9611,
	33, 5, 39, 2, 24, 951, 3707, 33, 5, 39, 2, 24, 9418, 2353, 33, 5,
	39, 2, 24, 60, 2611, 3683, 33, 5, 39, 2, 24, 7541, 33, 5, 39, 2,
	24, 1909, 3736, 33, 5, 39, 2, 24, 10426, 33, 5, 39, 2, 24, 8812, 33,
	5, 39, 2, 24, 8796, 33, 5, 39, 2, 24, 8893, 33, 5, 39, 2, 24,
	8109, 33, 5, 39, 2, 24, 119, 2322, 33, 5, 39, 2, 24, 1457, 2322, 33,
	5, 39, 2, 24, 9694, 33, 5, 39, 2, 24, 8686, 33, 5, 39, 2, 24,
	9176, 33, 5, 39, 2, 24, 3855, 33, 5, 39, 2, 24, 10947, 33, 5, 39,
	2, 24, 8476, 33, 5, 39, 2, 24, 10466, 33, 5, 39, 2, 24, 10778, 33,
	5, 39, 2, 24, 8689, 33, 5, 39, 2, 24, 1319, 33, 5, 39, 2, 24,
	9055, 33, 5, 39, 2, 24, 8286, 33, 5, 39, 2, 24, 8892, 33, 5, 39,
	2, 24, 10388, 33, 5, 39, 2, 24, 8462, 33, 5, 39, 2, 24, 7323, 33,
	5, 39, 2, 24, 10097, 33, 5, 39, 2, 24, 8265, 33, 5, 39, 2, 24,
	10469, 33, 5, 39, 2, 24, 1616, 9726, 33, 5, 39, 2, 24, 10360, 33, 5,
	39, 2, 24, 1909, 33, 5, 39, 2, 24, 2488, 2394, 4212, 33, 5, 39, 2,
	24, 3756, 8885, 33, 5, 39, 2, 24, 9585, 33, 5, 39, 2, 24, 3728, 33,
	5, 39, 2, 24, 11080, 33, 5, 39, 2, 24, 2382, 33, 5, 39, 2, 24,
	3627, 33, 5, 39, 2, 24, 3722, 33, 5, 39, 2, 24, 3637, 33, 5, 39,
	2, 24, 2400, 33, 5, 39, 2, 24, 4072, 33, 5, 39, 2, 24, 2503, 33,
	5, 39, 2, 24, 3785, 33, 5, 39, 2, 24, 3734, 33, 5, 39, 2, 24,
	2337, 33, 5, 39, 2, 24, 920, 33, 5, 39, 2, 24, 8122, 33, 5, 39,
	2, 24, 2393, 33, 5, 39, 2, 24, 1272, 33, 5, 39, 2, 24, 679, 33,
	5, 39, 2, 24, 2379, 33, 5, 39, 2, 24, 3688, 33, 5, 39, 2, 24,
	8753, 33, 5, 39, 2, 71, 9312, 33, 5, 39, 2, 71, 613, 8685, 33, 5,
	39, 2, 71, 10411, 33, 5, 39, 2, 71, 1164, 613, 33, 5, 39, 2, 71,
	3566, 1910, 33, 5, 39, 2, 71, 1617, 8683, 33, 5, 39, 2, 71, 8200, 33,
	5, 39, 2, 71, 11509, 33, 5, 39, 2, 71, 8752, 33, 5, 39, 2, 71,
	8114, 33, 5, 39, 2, 71, 9675, 33, 5, 39, 2, 71, 11475, 2322, 33, 5,
	39, 2, 71, 318, 2394, 1912, 33, 5, 39, 2, 71, 9324, 10353, 33, 5, 39,
	2, 71, 1903, 9190, 33, 5, 39, 2, 71, 7544, 33, 5, 39, 2, 71, 3829,
	33, 5, 39, 2, 71, 613, 3735, 33, 5, 39, 2, 71, 3957, 9192, 33, 5,
	39, 2, 71, 10352, 33, 5, 39, 2, 71, 1229, 4073, 33, 5, 39, 2, 71,
	2344, 8751, 33, 5, 39, 2, 71, 920, 1910, 33, 5, 39, 2, 71, 8169, 33,
	5, 39, 2, 71, 7543, 33, 5, 39, 2, 71, 8172, 33, 5, 39, 2, 71,
	8344, 33, 5, 39, 2, 71, 9645, 33, 5, 39, 2, 71, 11224, 33, 5, 39,
	2, 71, 9142, 3674, 33, 5, 39, 2, 71, 9117, 2347, 33, 5, 39, 2, 71,
	11384, 33, 5, 39, 2, 71, 10231, 33, 5, 39, 2, 71, 10716, 33, 5, 39,
	2, 71, 8797, 33, 5, 39, 2, 71, 3709, 33, 5, 39, 2, 71, 3709, 252,
	33, 5, 39, 2, 71, 8805, 33, 5, 39, 2, 71, 4035, 33, 5, 39, 2,
	71, 8756, 33, 5, 39, 2, 71, 8891, 33, 5, 39, 2, 71, 9373, 33, 5,
	39, 2, 71, 9847, 33, 5, 39, 2, 71, 2353, 9116, 33, 5, 39, 2, 71,
	7309, 33, 5, 39, 2, 71, 8763, 33, 5, 39, 2, 71, 1305, 33, 5, 39,
	2, 71, 8162, 33, 5, 39, 2, 71, 182, 9195, 33, 5, 39, 2, 71, 182,
	9211, 33, 5, 39, 2, 71, 2323, 33, 5, 39, 2, 71, 3705, 33, 5, 39,
	2, 71, 9307, 33, 5, 39, 2, 71, 182, 33, 5, 39, 2, 71, 8210, 33,
	5, 39, 2, 71, 2386, 33, 5, 39, 2, 104, 3712, 2338, 33, 5, 39, 2,
	104, 2402, 33, 5, 39, 2, 104, 4212, 33, 5, 39, 2, 104, 11326, 33, 5,
	39, 2, 104, 2382, 33, 5, 39, 2, 104, 9059, 33, 5, 39, 2, 104, 9136,
	33, 5, 39, 2, 104, 7537, 33, 5, 39, 2, 104, 8754, 33, 5, 39, 2,
	104, 7474, 33, 5, 39, 2, 104, 9384, 8871, 3652, 33, 5, 39, 2, 104, 9328,
	2344, 33, 5, 39, 2, 104, 3639, 33, 5, 39, 2, 104, 9743, 33, 5, 39,
	2, 104, 9071, 33, 5, 39, 2, 104, 1451, 6354, 2, 1057, 33, 5, 39, 2,
	104, 8171, 33, 5, 39, 2, 104, 7536, 33, 5, 39, 2, 104, 8165, 33, 5,
	39, 2, 104, 402, 8932, 33, 5, 39, 2, 104, 9406, 33, 5, 39, 2, 104,
	8761, 33, 5, 39, 2, 104, 9308, 33, 5, 39, 2, 104, 2344, 33, 5, 39,
	2, 104, 11508, 33, 5, 39, 2, 104, 8262, 33, 5, 39, 2, 104, 1850, 33,
	5, 39, 2, 104, 2481, 33, 5, 39, 2, 104, 9064, 33, 5, 39, 2, 104,
	10718, 33, 5, 39, 2, 104, 3727, 33, 5, 39, 2, 104, 4084, 11539, 33, 5,
	39, 2, 104, 10596, 33, 5, 39, 2, 104, 9121, 1912, 33, 5, 39, 2, 104,
	11225, 33, 5, 39, 2, 104, 9015, 33, 5, 39, 2, 104, 182, 8163, 33, 5,
	39, 2, 104, 3736, 33, 5, 39, 2, 104, 9126, 33, 5, 39, 2, 104, 2317,
	33, 5, 39, 2, 104, 8758, 33, 5, 39, 2, 104, 8813, 33, 5, 39, 2,
	104, 9322, 33, 5, 39, 2, 104, 10779, 33, 5, 39, 2, 104, 9124, 33, 5,
	39, 2, 104, 3338, 33, 5, 39, 2, 104, 9060, 33, 5, 39, 2, 104, 9306,
	33, 5, 39, 2, 104, 9309, 33, 5, 39, 2, 104, 6299, 33, 5, 39, 2,
	104, 11223, 33, 5, 39, 2, 104, 8755, 33, 5, 39, 2, 104, 630, 33, 5,
	39, 2, 104, 2389, 33, 5, 39, 2, 104, 318, 33, 5, 39, 2, 104, 10841,
	33, 5, 39, 2, 104, 9319, 2386, 33, 5, 39, 2, 104, 9193, 33, 5, 39,
	2, 104, 1319, 33, 5, 39, 2, 104, 2385, 33, 5, 39, 2, 104, 3627, 33,
	5, 39, 2, 104, 8760, 33, 5, 39, 2, 104, 679, 33, 5, 39, 2, 104,
	1867, 33, 5, 39, 2, 104, 3722, 33, 5, 39, 2, 104, 2386, 33, 5, 39,
	2, 104, 11390, 33, 5, 39, 2, 104, 9123, 33, 5, 39, 2, 104, 9316, 33,
	5, 39, 2, 104, 9321, 33, 5, 39, 2, 104, 2310, 3728, 33, 5, 39, 2,
	104, 9318, 33, 5, 39, 2, 104, 3693, 33, 5, 39, 2, 104, 182, 3735, 33,
	5, 39, 2, 104, 1516, 33, 5, 39, 2, 104, 2374, 33, 5, 39, 2, 104,
	10385, 33, 5, 39, 2, 104, 10312, 33, 5, 39, 2, 104, 2343, 33, 5, 39,
	2, 104, 2338, 33, 5, 39, 2, 104, 3637, 33, 5, 39, 2, 104, 8170, 33,
	5, 39, 2, 104, 8757, 33, 5, 39, 2, 104, 3487, 33, 5, 39, 2, 104,
	1451, 9723, 33, 5, 39, 2, 104, 4214, 33, 5, 39, 2, 104, 3723, 33, 5,
	39, 2, 104, 3657, 33, 5, 39, 2, 104, 3671, 33, 5, 39, 2, 104, 3960,
	33, 5, 39, 2, 104, 1438, 3538, 33, 5, 39, 2, 104, 1438, 7291, 33, 5,
	39, 2, 104, 9104, 33, 5, 39, 2, 104, 3688, 33, 5, 39, 2, 104, 8441,
	33, 5, 39, 2, 104, 3824, 33, 5, 39, 2, 104, 1469, 33, 5, 39, 2,
	104, 1356, 33, 5, 39, 2, 98, 8762, 33, 5, 39, 2, 98, 4171, 33, 5,
	39, 2, 98, 1460, 33, 5, 39, 2, 98, 1229, 33, 5, 39, 2, 98, 9198,
	33, 5, 39, 2, 98, 8417, 33, 5, 39, 2, 98, 9196, 33, 5, 39, 2,
	98, 9310, 33, 5, 39, 2, 98, 9113, 33, 5, 39, 2, 98, 1912, 33, 5,
	39, 2, 98, 11383, 33, 5, 39, 2, 98, 9145, 33, 5, 39, 2, 98, 1968,
	33, 5, 39, 2, 98, 9135, 33, 5, 39, 2, 98, 8164, 33, 5, 39, 2,
	98, 10777, 33, 5, 39, 2, 98, 10350, 33, 5, 39, 2, 98, 9191, 33, 5,
	39, 2, 98, 4035, 33, 5, 39, 2, 98, 1319, 33, 5, 39, 2, 98, 11473,
	33, 5, 39, 2, 98, 8285, 33, 5, 39, 2, 98, 3933, 33, 5, 39, 2,
	98, 8803, 33, 5, 39, 2, 98, 9061, 33, 5, 39, 2, 98, 8704, 33, 5,
	39, 2, 98, 2353, 33, 5, 39, 2, 98, 10313, 33, 5, 39, 2, 98, 1711,
	33, 5, 39, 2, 98, 9194, 33, 5, 39, 2, 98, 8167, 8759, 33, 5, 39,
	2, 98, 9139, 33, 5, 39, 2, 98, 613, 33, 5, 39, 2, 98, 3370, 33,
	5, 39, 2, 98, 9147, 33, 5, 39, 2, 98, 7308, 33, 5, 39, 2, 98,
	2375, 33, 5, 39, 2, 98, 8821, 33, 5, 39, 2, 98, 8401, 33, 5, 39,
	2, 98, 9072, 33, 5, 39, 2, 98, 8886, 33, 5, 39, 2, 98, 8817, 33,
	5, 39, 2, 98, 9862, 33, 5, 39, 2, 98, 8819, 33, 5, 39, 2, 98,
	8806, 33, 5, 39, 2, 98, 989, 33, 5, 39, 2, 98, 9314, 33, 5, 39,
	2, 98, 1451, 33, 5, 39, 2, 98, 8302, 33, 5, 39, 2, 98, 2400, 33,
	5, 39, 2, 98, 4072, 33, 5, 39, 2, 98, 2503, 33, 5, 39, 2, 98,
	4214, 33, 5, 39, 2, 98, 3487, 33, 5, 39, 2, 98, 10000, 33, 5, 39,
	2, 98, 10757, 33, 5, 39, 2, 98, 9138, 33, 5, 39, 2, 98, 8801, 33,
	5, 39, 2, 98, 9315, 33, 5, 39, 2, 98, 8168, 33, 5, 39, 2, 98,
	3825, 33, 5, 39, 2, 98, 9700, 33, 5, 39, 2, 98, 9392, 33, 5, 39,
	2, 98, 2323, 33, 5, 39, 2, 98, 3705, 33, 5, 39, 2, 98, 8804, 33,
	5, 39, 2, 98, 9129, 33, 5, 39, 2, 98, 11544, 33, 5, 39, 2, 98,
	807, 33, 5, 39, 2, 98, 4213, 33, 5, 39, 2, 98, 3693, 33, 5, 39,
	2, 98, 1910, 33, 5, 39, 2, 98, 10594, 33, 5, 39, 2, 98, 3518, 33,
	5, 39, 2, 98, 9119, 33, 5, 39, 2, 98, 9141, 33, 5, 39, 2, 98,
	4126, 33, 5, 39, 2, 98, 3652, 33, 5, 39, 2, 98, 8290, 33, 5, 39,
	2, 98, 9317, 33, 5, 39, 2, 98, 10776, 33, 5, 39, 2, 98, 8688, 33,
	5, 39, 2, 98, 9114, 33, 5, 39, 2, 98, 8402, 33, 5, 39, 2, 98,
	9125, 33, 5, 39, 2, 98, 2394, 33, 5, 39, 2, 98, 3727, 33, 5, 39,
	2, 98, 3372, 33, 5, 39, 2, 98, 620, 33, 5, 39, 2, 98, 1955, 50,
	33, 5, 39, 2, 98, 2537, 33, 5, 39, 2, 98, 4091, 33, 5, 39, 2,
	98, 920, 33, 5, 39, 2, 98, 1956, 33, 5, 39, 2, 98, 3542, 33, 5,
	39, 2, 98, 2350, 33, 5, 39, 2, 98, 205, 33, 5, 39, 2, 98, 1992,
	33, 5, 39, 2, 98, 460, 33, 5, 39, 2, 98, 1970, 33, 5, 39, 2,
	98, 3958, 33, 5, 39, 2, 98, 1871, 33, 5, 39, 2, 98, 555, 33, 5,
	39, 2, 98, 895, 33, 5, 39, 2, 98, 2395, 33, 5, 39, 2, 98, 1155,
	33, 5, 39, 2, 98, 493, 33, 5, 39, 2, 98, 2488, 33, 5, 39, 2,
	98, 9851, 33, 5, 39, 2, 98, 3674, 33, 5, 39, 2, 98, 1883, 33, 5,
	39, 2, 98, 1955, 1622, 33, 5, 39, 2, 98, 686, 33, 5, 39, 2, 98,
	3738, 33, 5, 39, 2, 98, 1451, 157, 33, 5, 39, 2, 98, 10257, 33, 5,
	39, 2, 98, 1810, 33, 5, 39, 2, 51, 2374, 33, 5, 39, 2, 51, 10863,
	33, 5, 39, 2, 51, 3639, 33, 5, 39, 2, 51, 2317, 33, 5, 39, 2,
	51, 11257, 33, 5, 39, 2, 51, 8464, 33, 5, 39, 2, 51, 1465, 33, 5,
	39, 2, 51, 4003, 33, 5, 39, 2, 51, 10016, 33, 5, 39, 2, 51, 9313,
	33, 5, 39, 2, 51, 9076, 33, 5, 39, 2, 51, 2442, 33, 5, 39, 2,
	51, 1351, 33, 5, 39, 2, 51, 3711, 33, 5, 39, 2, 51, 8264, 33, 5,
	39, 2, 51, 4189, 33, 5, 39, 2, 51, 1250, 33, 5, 39, 2, 51, 3707,
	33, 5, 39, 2, 51, 3785, 33, 5, 39, 2, 51, 1500, 33, 5, 39, 2,
	51, 2310, 33, 5, 39, 2, 51, 3566, 33, 5, 39, 2, 51, 3734, 33, 5,
	39, 2, 51, 3715, 33, 5, 39, 2, 51, 2337, 33, 5, 39, 2, 51, 9140,
	33, 5, 39, 2, 51, 9149, 33, 5, 39, 2, 51, 9311, 33, 5, 39, 2,
	51, 10076, 33, 5, 39, 2, 51, 3723, 33, 5, 39, 2, 51, 9673, 33, 5,
	39, 2, 51, 1959, 33, 5, 39, 2, 51, 9128, 33, 5, 39, 2, 51, 3653,
	33, 5, 39, 2, 51, 7546, 33, 5, 39, 2, 51, 9137, 33, 5, 39, 2,
	51, 3721, 33, 5, 39, 2, 51, 1616, 33, 5, 39, 2, 51, 3567, 33, 5,
	39, 2, 51, 9115, 33, 5, 39, 2, 51, 9068, 33, 5, 39, 2, 51, 10722,
	1910, 33, 5, 39, 2, 51, 1164, 33, 5, 39, 2, 51, 9843, 33, 5, 39,
	2, 51, 1901, 10462, 33, 5, 39, 2, 51, 9122, 1912, 33, 5, 39, 2, 51,
	11514, 33, 5, 39, 2, 51, 7545, 33, 5, 39, 2, 51, 10946, 33, 5, 39,
	2, 51, 11505, 33, 5, 39, 2, 51, 808, 33, 5, 39, 2, 51, 10953, 33,
	5, 39, 2, 51, 8161, 33, 5, 39, 2, 51, 10595, 33, 5, 39, 2, 51,
	4073, 33, 5, 39, 2, 51, 11222, 33, 5, 39, 2, 51, 11345, 33, 5, 39,
	2, 51, 2315, 33, 5, 39, 2, 51, 962, 33, 5, 39, 2, 51, 10717, 33,
	5, 39, 2, 51, 7532, 33, 5, 39, 2, 51, 9109, 33, 5, 39, 2, 51,
	10351, 33, 5, 39, 2, 51, 8816, 33, 5, 39, 2, 51, 1888, 33, 5, 39,
	2, 51, 9402, 33, 5, 39, 2, 51, 9224, 33, 5, 39, 2, 51, 7476, 33,
	5, 39, 2, 51, 1698, 33, 5, 39, 2, 51, 8279, 33, 5, 39, 2, 51,
	4198, 33, 5, 39, 2, 51, 920, 6536, 33, 5, 39, 2, 51, 2609, 33, 5,
	39, 2, 51, 8802, 33, 5, 39, 2, 51, 9063, 33, 5, 39, 2, 51, 9725,
	33, 5, 39, 2, 51, 11540, 33, 5, 39, 2, 51, 8400, 33, 5, 39, 2,
	51, 3338, 33, 5, 39, 2, 51, 7477, 33, 5, 39, 2, 51, 9146, 33, 5,
	39, 2, 51, 1319, 33, 5, 39, 2, 51, 3626, 33, 5, 39, 2, 51, 9134,
	33, 5, 39, 2, 51, 7540, 33, 5, 39, 2, 51, 502, 33, 5, 39, 2,
	51, 9330, 33, 5, 39, 2, 51, 9699, 33, 5, 39, 2, 51, 11507, 33, 5,
	39, 2, 51, 9118, 33, 5, 39, 2, 51, 920, 669, 33, 5, 39, 2, 51,
	9421, 33, 5, 39, 2, 51, 9781, 33, 5, 39, 2, 51, 3657, 33, 5, 39,
	2, 51, 7372, 33, 5, 39, 2, 51, 3683, 33, 5, 39, 2, 51, 3671, 33,
	5, 39, 2, 51, 3372, 33, 5, 39, 2, 51, 1140, 73, 33, 5, 39, 2,
	51, 8950, 33, 5, 39, 2, 51, 9838, 33, 5, 39, 2, 51, 9144, 33, 5,
	39, 2, 51, 1867, 33, 5, 39, 2, 51, 9728, 33, 5, 39, 2, 51, 1909,
	33, 5, 39, 2, 51, 11506, 33, 5, 39, 2, 51, 9127, 33, 5, 39, 2,
	51, 119, 3807, 33, 5, 39, 2, 51, 1140, 2136, 33, 5, 39, 2, 51, 2227,
	33, 5, 39, 2, 51, 1634, 33, 5, 39, 2, 51, 24, 33, 5, 39, 2,
	51, 4091, 33, 5, 39, 2, 51, 68, 33, 5, 39, 2, 51, 73, 33, 5,
	39, 2, 51, 8370, 33, 5, 39, 2, 51, 119, 9764, 33, 5, 39, 2, 51,
	1348, 33, 5, 39, 2, 51, 10740, 33, 5, 39, 2, 51, 1901, 3680, 1428, 33,
	5, 39, 2, 51, 3960, 33, 5, 39, 2, 51, 11510, 33, 5, 39, 2, 51,
	9153, 33, 5, 39, 2, 51, 11537, 33, 5, 39, 2, 51, 2035, 10634, 33, 5,
	39, 2, 51, 2035, 2161, 33, 5, 39, 2, 51, 2611, 33, 5, 39, 2, 51,
	11542, 33, 5, 39, 2, 51, 3488, 33, 5, 39, 2, 51, 2427, 33, 5, 39,
	2, 51, 1634, 7167, 33, 5, 39, 2, 51, 3853, 33, 5, 39, 2, 51, 2600,
	33, 5, 39, 2, 51, 1305, 33, 5, 39, 2, 51, 1272, 33, 5, 39, 2,
	51, 679, 33, 5, 39, 2, 51, 540, 33, 5, 39, 2, 51, 2459, 33, 5,
	39, 2, 51, 1474, 33, 5, 39, 2, 51, 9154, 33, 5, 39, 2, 51, 312,
	33, 5, 39, 2, 51, 1050, 33, 5, 39, 2, 51, 2488, 33, 5, 39, 2,
	51, 1140, 10044, 33, 5, 39, 2, 51, 185, 33, 5, 39, 2, 51, 427, 33,
	5, 39, 2, 51, 1883, 33, 5, 39, 2, 51, 606, 33, 5, 39, 2, 51,
	1038, 33, 5, 39, 2, 51, 182, 33, 5, 39, 2, 51, 3632, 33, 5, 39,
	2, 51, 10775, 33, 5, 39, 2, 51, 571, 33, 5, 39, 2, 51, 951, 33,
	5, 39, 2, 51, 280, 33, 5, 39, 2, 51, 7287, 33, 5, 39, 2, 51,
	7550, 33, 5, 39, 2, 176, 106, 33, 5, 39, 2, 176, 60, 33, 5, 39,
	2, 176, 620, 33, 5, 39, 2, 176, 496, 33, 5, 39, 2, 176, 1665, 33,
	5, 39, 2, 176, 2537, 33, 5, 39, 2, 176, 920, 33, 5, 39, 2, 176,
	202, 33, 5, 39, 2, 176, 1956, 33, 5, 39, 2, 176, 3903, 33, 5, 39,
	2, 176, 2350, 33, 5, 39, 2, 176, 1348, 33, 5, 39, 2, 176, 1901, 33,
	5, 39, 2, 176, 2389, 33, 5, 39, 2, 176, 205, 33, 5, 39, 2, 176,
	1992, 33, 5, 39, 2, 176, 1970, 33, 5, 39, 2, 176, 632, 33, 5, 39,
	2, 176, 2481, 33, 5, 39, 2, 176, 1871, 33, 5, 39, 2, 176, 1319, 33,
	5, 39, 2, 176, 3740, 33, 5, 39, 2, 176, 555, 33, 5, 39, 2, 176,
	3726, 33, 5, 39, 2, 176, 2035, 33, 5, 39, 2, 176, 895, 33, 5, 39,
	2, 176, 179, 33, 5, 39, 2, 176, 2393, 33, 5, 39, 2, 176, 2427, 33,
	5, 39, 2, 176, 2395, 33, 5, 39, 2, 176, 2600, 33, 5, 39, 2, 176,
	1155, 33, 5, 39, 2, 176, 630, 33, 5, 39, 2, 176, 493, 33, 5, 39,
	2, 176, 2459, 33, 5, 39, 2, 176, 1438, 33, 5, 39, 2, 176, 3713, 33,
	5, 39, 2, 176, 1631, 33, 5, 39, 2, 176, 1050, 33, 5, 39, 2, 176,
	2442, 33, 5, 39, 2, 176, 2227, 33, 5, 39, 2, 176, 286, 33, 5, 39,
	2, 176, 365, 33, 5, 39, 2, 176, 1883, 33, 5, 39, 2, 176, 606, 33,
	5, 39, 2, 176, 3638, 33, 5, 39, 2, 176, 1955, 33, 5, 39, 2, 176,
	182, 33, 5, 39, 2, 176, 607, 33, 5, 39, 2, 176, 1451, 33, 5, 39,
	2, 176, 1356, 33, 5, 39, 2, 176, 1611, 33, 5, 39, 2, 176, 3930, 33,
	5, 39, 2, 176, 11266, 491, 5, 196, 491, 5, 1905, 491, 5, 416, 491, 5,
	1893, 491, 5, 251, 491, 5, 217, 491, 5, 24, 491, 5, 694, 491, 5, 3492,
	491, 5, 7678, 491, 5, 6851, 491, 5, 1771, 491, 5, 8146, 491, 5, 450, 491,
	5, 2337, 491, 5, 2388, 491, 5, 119, 491, 5, 454, 491, 5, 68, 491, 5,
	585, 491, 5, 1483, 491, 5, 10790, 491, 5, 2200, 491, 5, 286, 491, 5, 51,
	491, 5, 606, 491, 5, 3529, 491, 5, 202, 491, 5, 7662, 491, 5, 716, 491,
	5, 10761, 491, 23, 254, 491, 23, 67, 491, 23, 70, 491, 23, 79, 491, 23,
	93, 491, 23, 100, 491, 23, 139, 491, 23, 157, 491, 23, 140, 491, 23, 160,
	491, 604, 491, 55, 604, 265, 5, 9569, 265, 5, 9518, 265, 5, 2409, 265, 5,
	1921, 265, 5, 3074, 265, 5, 1737, 265, 5, 1532, 265, 5, 3071, 265, 5, 11281,
	265, 5, 11211, 265, 5, 11264, 265, 5, 11275, 265, 5, 1567, 265, 5, 1563, 265,
	5, 7168, 265, 5, 1809, 265, 5, 8002, 265, 5, 2270, 265, 5, 2281, 265, 5,
	3455, 265, 5, 11113, 265, 5, 2013, 265, 5, 11088, 265, 5, 11111, 265, 5, 5912,
	265, 5, 5909, 265, 5, 5911, 265, 5, 3070, 265, 5, 11063, 265, 5, 11055, 265,
	5, 11057, 265, 5, 11062, 265, 5, 69, 767, 265, 5, 187, 4138, 265, 5, 295,
	4139, 265, 5, 295, 3070, 265, 5, 11048, 265, 5, 4139, 265, 5, 11052, 265, 5,
	4138, 265, 5, 11061, 265, 5, 11058, 265, 5, 11059, 265, 5, 11060, 265, 5, 8955,
	265, 5, 3640, 265, 5, 8911, 265, 5, 8951, 265, 5, 106, 265, 5, 361, 265,
	5, 224, 265, 5, 312, 265, 5, 195, 265, 5, 179, 265, 5, 286, 265, 5,
	119, 265, 5, 363, 265, 5, 412, 265, 5, 251, 265, 5, 182, 265, 5, 185,
	265, 5, 143, 265, 5, 202, 265, 5, 3426, 265, 5, 196, 265, 5, 217, 265,
	5, 173, 265, 5, 1459, 265, 5, 321, 265, 5, 325, 265, 5, 612, 265, 5,
	459, 265, 5, 7849, 265, 5, 386, 265, 5, 899, 265, 5, 502, 265, 5, 453,
	265, 5, 358, 265, 5, 443, 265, 23, 254, 265, 23, 67, 265, 23, 70, 265,
	23, 79, 265, 23, 93, 265, 23, 100, 265, 23, 139, 265, 23, 157, 265, 23,
	140, 265, 23, 160, 508, 542, 5, 7158, 508, 542, 5, 106, 508, 542, 5, 666,
	508, 542, 5, 502, 508, 542, 5, 1887, 508, 542, 5, 4207, 508, 542, 5, 3347,
	508, 542, 5, 6954, 508, 542, 5, 8260, 508, 542, 5, 1031, 508, 542, 5, 7867,
	508, 542, 5, 286, 508, 542, 5, 1012, 508, 542, 5, 2238, 508, 542, 5, 725,
	508, 542, 5, 1124, 508, 542, 5, 11110, 508, 542, 5, 83, 508, 542, 5, 251,
	508, 542, 5, 1361, 508, 542, 5, 11501, 508, 542, 5, 119, 508, 542, 5, 11318,
	508, 542, 5, 24, 508, 542, 5, 68, 508, 542, 5, 454, 508, 542, 5, 60,
	508, 542, 5, 496, 508, 542, 5, 51, 508, 542, 5, 73, 508, 542, 43, 156,
	110, 508, 542, 43, 145, 110, 508, 542, 43, 1039, 110, 508, 542, 43, 145, 2,
	1039, 110, 508, 542, 43, 156, 2, 145, 110, 508, 542, 426, 322, 175, 109, 26,
	8148, 175, 109, 26, 8151, 175, 109, 26, 8197, 175, 109, 26, 8218, 175, 109, 26,
	8135, 175, 109, 26, 8138, 175, 109, 26, 8278, 175, 109, 26, 8298, 175, 109, 26,
	8147, 175, 109, 26, 8173, 175, 109, 26, 8110, 175, 109, 26, 8112, 175, 109, 26,
	8247, 175, 109, 26, 8250, 175, 109, 26, 8140, 175, 109, 26, 8142, 175, 109, 26,
	8276, 175, 109, 26, 8277, 175, 109, 26, 8239, 175, 109, 26, 8257, 175, 109, 26,
	8195, 175, 109, 26, 8196, 175, 109, 26, 3473, 175, 109, 26, 8139, 175, 109, 26,
	8304, 175, 109, 26, 8307, 175, 109, 26, 8098, 175, 109, 26, 8105, 175, 109, 267,
	11208, 175, 109, 267, 9327, 175, 109, 267, 8376, 175, 109, 267, 397, 175, 109, 267,
	9247, 175, 109, 267, 10022, 175, 109, 267, 9222, 175, 109, 267, 9896, 175, 109, 267,
	11492, 175, 109, 267, 7748, 175, 109, 267, 8743, 175, 109, 267, 6452, 175, 109, 267,
	9053, 175, 109, 267, 7809, 175, 109, 267, 9757, 175, 109, 267, 9323, 175, 109, 267,
	9018, 175, 109, 267, 313, 175, 109, 267, 11409, 175, 109, 267, 6392, 175, 109, 56,
	846, 10948, 175, 109, 56, 846, 574, 175, 109, 56, 846, 8160, 175, 109, 56, 846,
	8180, 175, 109, 56, 846, 10597, 175, 109, 56, 846, 7833, 175, 109, 56, 846, 10746,
	175, 109, 6, 1360, 10805, 175, 109, 6, 1360, 10921, 6420, 175, 109, 6, 846, 6456,
	175, 109, 6, 1360, 10796, 175, 109, 6, 1360, 7298, 175, 109, 6, 2030, 9332, 175,
	109, 6, 2030, 649, 175, 109, 6, 2030, 10870, 175, 109, 6, 2030, 7277, 175, 109,
	6, 1360, 10295, 175, 109, 6, 3644, 10593, 175, 109, 6, 1360, 9293, 175, 109, 6,
	2269, 4196, 175, 109, 6, 11410, 175, 109, 6, 846, 10926, 2463, 175, 109, 23, 254,
	175, 109, 23, 67, 175, 109, 23, 70, 175, 109, 23, 79, 175, 109, 23, 93,
	175, 109, 23, 100, 175, 109, 23, 139, 175, 109, 23, 157, 175, 109, 23, 140,
	175, 109, 23, 160, 175, 109, 41, 1055, 175, 109, 41, 2267, 175, 109, 41, 280,
	1266, 175, 109, 41, 1325, 175, 109, 41, 159, 1325, 175, 109, 41, 280, 6232, 175,
	109, 41, 10894, 175, 109, 6, 1360, 8477, 175, 109, 6, 11446, 175, 109, 6, 2262,
	175, 109, 6, 928, 2, 10549, 2262, 175, 109, 6, 11681, 10784, 175, 109, 6, 7825,
	175, 109, 6, 9280, 175, 109, 6, 11416, 175, 109, 6, 9329, 175, 109, 6, 1373,
	175, 109, 6, 10977, 6421, 175, 109, 6, 3644, 10919, 175, 109, 6, 815, 175, 109,
	6, 8468, 175, 109, 6, 8942, 175, 109, 6, 846, 7664, 8489, 3737, 3737, 175, 109,
	6, 846, 6723, 10923, 175, 109, 6, 846, 4133, 175, 109, 6, 846, 4133, 6509, 175,
	109, 6, 846, 9839, 6868, 175, 109, 6, 846, 9286, 10867, 175, 109, 757, 6, 10922,
	175, 109, 757, 6, 11500, 175, 109, 757, 6, 3560, 175, 109, 757, 6, 8378, 175,
	109, 757, 6, 11447, 175, 109, 757, 6, 1609, 175, 109, 757, 6, 7688, 175, 109,
	757, 6, 8917, 175, 109, 757, 6, 10804, 175, 109, 757, 6, 10918, 175, 109, 757,
	6, 9705, 175, 109, 757, 6, 8175, 175, 109, 757, 6, 7669, 175, 109, 757, 6,
	11194, 175, 109, 757, 6, 7281, 175, 109, 757, 6, 2604, 175, 109, 757, 6, 10929,
	175, 109, 757, 6, 8305, 175, 109, 757, 6, 11274, 257, 10, 5, 205, 257, 10,
	5, 121, 257, 10, 5, 229, 257, 10, 5, 290, 257, 10, 5, 3066, 257, 10,
	5, 250, 257, 10, 5, 3510, 257, 10, 5, 249, 257, 10, 5, 221, 257, 10,
	5, 220, 257, 10, 5, 176, 257, 10, 5, 73, 257, 10, 5, 227, 257, 10,
	5, 24, 257, 10, 5, 278, 257, 10, 5, 51, 257, 10, 5, 71, 257, 10,
	5, 104, 257, 10, 5, 60, 257, 10, 5, 402, 257, 10, 5, 136, 257, 10,
	5, 389, 257, 10, 5, 1838, 257, 10, 5, 3750, 257, 10, 5, 268, 257, 10,
	5, 98, 257, 10, 5, 485, 257, 10, 5, 151, 257, 10, 5, 122, 257, 10,
	5, 68, 257, 10, 5, 292, 257, 10, 5, 218, 257, 7, 5, 205, 257, 7,
	5, 121, 257, 7, 5, 229, 257, 7, 5, 290, 257, 7, 5, 3066, 257, 7,
	5, 250, 257, 7, 5, 3510, 257, 7, 5, 249, 257, 7, 5, 221, 257, 7,
	5, 220, 257, 7, 5, 176, 257, 7, 5, 73, 257, 7, 5, 227, 257, 7,
	5, 24, 257, 7, 5, 278, 257, 7, 5, 51, 257, 7, 5, 71, 257, 7,
	5, 104, 257, 7, 5, 60, 257, 7, 5, 402, 257, 7, 5, 136, 257, 7,
	5, 389, 257, 7, 5, 1838, 257, 7, 5, 3750, 257, 7, 5, 268, 257, 7,
	5, 98, 257, 7, 5, 485, 257, 7, 5, 151, 257, 7, 5, 122, 257, 7,
	5, 68, 257, 7, 5, 292, 257, 7, 5, 218, 257, 23, 254, 257, 23, 67,
	257, 23, 70, 257, 23, 79, 257, 23, 93, 257, 23, 100, 257, 23, 139, 257,
	23, 157, 257, 23, 140, 257, 23, 160, 257, 41, 280, 257, 41, 944, 257, 41,
	865, 257, 41, 1264, 257, 41, 1211, 257, 41, 1024, 257, 41, 1106, 257, 41, 1251,
	257, 41, 1134, 257, 41, 1234, 257, 23, 67, 506, 25, 257, 23, 70, 506, 25,
	257, 23, 79, 506, 25, 257, 383, 257, 426, 322, 257, 16, 5758, 257, 672, 1640,
	147, 5, 119, 147, 5, 251, 147, 5, 14, 119, 147, 5, 1934, 147, 5, 182,
	147, 5, 3654, 147, 5, 507, 182, 147, 5, 502, 147, 5, 413, 147, 5, 11228,
	147, 5, 196, 147, 5, 217, 147, 5, 14, 436, 147, 5, 14, 196, 147, 5,
	436, 147, 5, 437, 147, 5, 185, 147, 5, 1459, 147, 5, 14, 481, 147, 5,
	507, 185, 147, 5, 481, 147, 5, 9258, 147, 5, 202, 147, 5, 8493, 147, 5,
	1222, 147, 5, 8412, 147, 5, 2558, 147, 5, 7005, 147, 5, 10850, 147, 5, 7006,
	147, 5, 106, 147, 5, 224, 147, 5, 14, 106, 147, 5, 768, 147, 5, 9893,
	147, 5, 312, 147, 5, 3710, 147, 5, 507, 312, 147, 5, 143, 147, 5, 899,
	147, 5, 459, 147, 5, 2243, 147, 5, 10927, 147, 5, 7069, 147, 5, 363, 147,
	5, 3753, 147, 5, 897, 147, 5, 1562, 147, 5, 14, 897, 147, 5, 14, 1562,
	147, 5, 1160, 897, 147, 5, 321, 147, 5, 518, 147, 5, 740, 147, 5, 11670,
	147, 5, 612, 147, 5, 942, 147, 5, 14, 612, 147, 5, 195, 147, 5, 443,
	147, 5, 11669, 147, 5, 2042, 147, 5, 11703, 147, 5, 507, 2042, 147, 5, 11710,
	147, 5, 11704, 147, 5, 286, 147, 5, 970, 147, 5, 1144, 147, 5, 6278, 147,
	5, 10642, 147, 5, 7068, 147, 5, 440, 147, 5, 930, 147, 5, 10129, 147, 6,
	267, 75, 146, 147, 5, 2371, 147, 6, 3063, 147, 6, 1160, 4165, 147, 6, 1160,
	3063, 147, 26, 6, 24, 147, 26, 6, 263, 147, 26, 6, 5749, 147, 26, 6,
	524, 147, 26, 6, 935, 147, 26, 6, 68, 147, 26, 6, 454, 147, 26, 6,
	588, 147, 26, 6, 290, 147, 26, 6, 51, 147, 26, 6, 405, 147, 26, 6,
	980, 147, 26, 6, 9526, 147, 26, 6, 73, 147, 26, 6, 1840, 147, 26, 6,
	3436, 147, 26, 6, 7924, 147, 26, 6, 2280, 147, 26, 6, 832, 147, 26, 6,
	300, 147, 26, 6, 1597, 147, 26, 6, 2275, 147, 26, 6, 60, 147, 26, 6,
	1505, 147, 26, 6, 11039, 147, 26, 6, 11040, 147, 26, 6, 324, 147, 26, 6,
	11050, 147, 26, 6, 11075, 147, 26, 6, 218, 147, 26, 6, 14, 147, 26, 6,
	543, 147, 26, 6, 3021, 147, 26, 6, 1808, 147, 26, 6, 893, 1808, 147, 26,
	6, 879, 147, 26, 6, 893, 879, 147, 26, 6, 292, 147, 26, 6, 1133, 147,
	26, 6, 313, 147, 26, 6, 1240, 147, 26, 6, 151, 147, 26, 6, 767, 147,
	26, 6, 11082, 147, 26, 6, 11541, 147, 26, 6, 9528, 147, 26, 6, 9525, 147,
	26, 6, 11272, 147, 26, 6, 3440, 147, 26, 6, 2200, 147, 26, 6, 7984, 147,
	26, 6, 2015, 147, 110, 45, 147, 110, 442, 45, 147, 110, 53, 147, 110, 76,
	147, 5, 110, 2, 192, 147, 5, 110, 2, 273, 147, 5, 110, 2, 349, 147,
	5, 110, 2, 387, 147, 5, 110, 2, 466, 147, 5, 110, 2, 568, 147, 5,
	110, 2, 772, 147, 5, 1160, 110, 2, 291, 147, 5, 1160, 110, 2, 192, 147,
	5, 1160, 110, 2, 349, 147, 5, 1160, 110, 2, 387, 147, 5, 1160, 110, 2,
	466, 147, 5, 1160, 110, 2, 772, 28, 1147, 56, 61, 1147, 56, 50, 1073, 99,
	56, 50, 1073, 1147, 56, 52, 7, 35, 1026, 4160, 506, 3883, 56, 325, 4160, 506,
	3883, 56, 9164, 28, 27, 2, 4245, 28, 27, 2, 4246, 28, 27, 2, 2622, 28,
	27, 2, 4247, 28, 27, 2, 4248, 28, 27, 2, 4249, 28, 27, 2, 4250, 28,
	27, 2, 4251, 28, 27, 2, 4252, 28, 27, 2, 4253, 28, 27, 2, 4254, 28,
	27, 2, 4255, 28, 27, 2, 4256, 28, 27, 2, 4257, 28, 27, 2, 4258, 28,
	27, 2, 4259, 28, 27, 2, 4260, 28, 27, 2, 4261, 28, 27, 2, 4262, 28,
	27, 2, 2623, 28, 27, 2, 2624, 28, 27, 2, 4263, 28, 27, 2, 4264, 28,
	27, 2, 4265, 28, 27, 2, 2625, 28, 27, 2, 4266, 28, 27, 2, 4267, 28,
	27, 2, 4268, 28, 27, 2, 4269, 28, 27, 2, 2626, 28, 27, 2, 4270, 28,
	27, 2, 4271, 28, 27, 2, 4272, 28, 27, 2, 4273, 28, 27, 2, 4274, 28,
	27, 2, 4275, 28, 27, 2, 4276, 28, 27, 2, 4277, 28, 27, 2, 4278, 28,
	27, 2, 4279, 28, 27, 2, 4280, 28, 27, 2, 4281, 28, 27, 2, 4282, 28,
	27, 2, 4283, 28, 27, 2, 4284, 28, 27, 2, 4285, 28, 27, 2, 4286, 28,
	27, 2, 4287, 28, 27, 2, 4288, 28, 27, 2, 2043, 28, 27, 2, 2627, 28,
	27, 2, 4289, 28, 27, 2, 4290, 28, 27, 2, 4291, 28, 27, 2, 4292, 28,
	27, 2, 4293, 28, 27, 2, 4294, 28, 27, 2, 4295, 28, 27, 2, 4296, 28,
	27, 2, 4297, 28, 27, 2, 4298, 28, 27, 2, 2628, 28, 27, 2, 4299, 28,
	27, 2, 4300, 28, 27, 2, 4301, 28, 27, 2, 4302, 28, 27, 2, 4303, 28,
	27, 2, 4304, 28, 27, 2, 4305, 28, 27, 2, 4306, 28, 27, 2, 4307, 28,
	27, 2, 4308, 28, 27, 2, 4309, 28, 27, 2, 4310, 28, 27, 2, 4311, 28,
	27, 2, 4312, 28, 27, 2, 4313, 28, 27, 2, 4314, 28, 27, 2, 2044, 28,
	27, 2, 2629, 28, 27, 2, 2045, 28, 27, 2, 4315, 28, 27, 2, 4316, 28,
	27, 2, 4317, 28, 27, 2, 4318, 28, 27, 2, 4319, 28, 27, 2, 4320, 28,
	27, 2, 4321, 28, 27, 2, 4322, 28, 27, 2, 4323, 28, 27, 2, 4324, 28,
	27, 2, 2630, 28, 27, 2, 4325, 28, 27, 2, 4326, 28, 27, 2, 4327, 28,
	27, 2, 4328, 28, 27, 2, 4329, 28, 27, 2, 4330, 28, 27, 2, 4331, 28,
	27, 2, 2631, 28, 27, 2, 2632, 28, 27, 2, 2046, 28, 27, 2, 2633, 28,
	27, 2, 2634, 28, 27, 2, 2635, 28, 27, 2, 2636, 28, 27, 2, 2637, 28,
	27, 2, 2638, 28, 27, 2, 2639, 28, 27, 2, 2640, 28, 27, 2, 2641, 28,
	27, 2, 2642, 28, 27, 2, 2643, 28, 27, 2, 2644, 28, 27, 2, 2645, 28,
	27, 2, 2646, 28, 27, 2, 2647, 28, 27, 2, 2648, 28, 27, 2, 2649, 28,
	27, 2, 2650, 28, 27, 2, 2651, 28, 27, 2, 2652, 28, 27, 2, 1717, 28,
	27, 2, 1718, 28, 27, 2, 1719, 28, 27, 2, 1720, 28, 27, 2, 2047, 28,
	27, 2, 2048, 28, 27, 2, 2663, 28, 27, 2, 2049, 28, 27, 2, 2664, 28,
	27, 2, 2665, 28, 27, 2, 2666, 28, 27, 2, 1721, 28, 27, 2, 2050, 28,
	27, 2, 1722, 28, 27, 2, 2051, 28, 27, 2, 2052, 28, 27, 2, 2672, 28,
	27, 2, 2673, 28, 27, 2, 2674, 28, 27, 2, 2053, 28, 27, 2, 2675, 28,
	27, 2, 2676, 28, 27, 2, 1723, 28, 27, 2, 1724, 28, 27, 2, 2054, 28,
	27, 2, 2055, 28, 27, 2, 2678, 28, 27, 2, 2679, 28, 27, 2, 2680, 28,
	27, 2, 2681, 28, 27, 2, 2682, 28, 27, 2, 2683, 28, 27, 2, 2684, 28,
	27, 2, 1725, 28, 27, 2, 2056, 28, 27, 2, 2057, 28, 27, 2, 2685, 28,
	27, 2, 2686, 28, 27, 2, 2687, 28, 27, 2, 2688, 28, 27, 2, 2689, 28,
	27, 2, 2690, 28, 27, 2, 2691, 28, 27, 2, 2692, 28, 27, 2, 2058, 28,
	27, 2, 2059, 28, 27, 2, 2693, 28, 27, 2, 2694, 28, 27, 2, 2695, 28,
	27, 2, 2696, 28, 27, 2, 2697, 28, 27, 2, 2698, 28, 27, 2, 2699, 28,
	27, 2, 2700, 28, 27, 2, 2701, 28, 27, 2, 2060, 28, 27, 2, 2702, 28,
	27, 2, 2703, 28, 27, 2, 2704, 28, 27, 2, 2705, 28, 27, 2, 2706, 28,
	27, 2, 2707, 28, 27, 2, 2708, 28, 27, 2, 2709, 28, 27, 2, 2710, 28,
	27, 2, 2711, 28, 27, 2, 2712, 28, 27, 2, 2713, 28, 27, 2, 2714, 28,
	27, 2, 2715, 28, 27, 2, 2716, 28, 27, 2, 2717, 28, 27, 2, 2718, 28,
	27, 2, 2719, 28, 27, 2, 2720, 28, 27, 2, 2721, 28, 27, 2, 2722, 28,
	27, 2, 2723, 28, 27, 2, 2724, 28, 27, 2, 2725, 28, 27, 2, 2726, 28,
	27, 2, 2727, 28, 27, 2, 2728, 28, 27, 2, 2729, 28, 27, 2, 2730, 28,
	27, 2, 2731, 28, 27, 2, 2732, 28, 27, 2, 2063, 28, 27, 2, 2733, 28,
	27, 2, 2734, 28, 27, 2, 2735, 28, 27, 2, 2736, 28, 27, 2, 2737, 28,
	27, 2, 2738, 28, 27, 2, 2739, 28, 27, 2, 2740, 28, 27, 2, 2064, 28,
	27, 2, 2065, 28, 27, 2, 2742, 28, 27, 2, 2743, 28, 27, 2, 2744, 28,
	27, 2, 2745, 28, 27, 2, 2066, 28, 27, 2, 2746, 28, 27, 2, 2747, 28,
	27, 2, 2067, 28, 27, 2, 2748, 28, 27, 2, 2749, 28, 27, 2, 2750, 28,
	27, 2, 2751, 28, 27, 2, 2752, 28, 27, 2, 1727, 28, 27, 2, 1728, 28,
	27, 2, 1729, 28, 27, 2, 2068, 28, 27, 2, 1730, 28, 27, 2, 2757, 28,
	27, 2, 2758, 28, 27, 2, 2759, 28, 27, 2, 2760, 28, 27, 2, 2761, 28,
	27, 2, 2762, 28, 27, 2, 1731, 28, 27, 2, 2069, 28, 27, 2, 2070, 28,
	27, 2, 2071, 28, 27, 2, 2764, 28, 27, 2, 2765, 28, 27, 2, 2766, 28,
	27, 2, 2767, 28, 27, 2, 2768, 28, 27, 2, 2769, 28, 27, 2, 2770, 28,
	27, 2, 1733, 28, 27, 2, 2771, 28, 27, 2, 2772, 28, 27, 2, 4451, 28,
	27, 2, 4452, 28, 27, 2, 4453, 28, 27, 2, 4454, 28, 27, 2, 4455, 28,
	27, 2, 4456, 28, 27, 2, 2773, 28, 27, 2, 2774, 28, 27, 2, 2775, 28,
	27, 2, 2776, 28, 27, 2, 4458, 28, 27, 2, 4459, 28, 27, 2, 4460, 28,
	27, 2, 4461, 28, 27, 2, 4462, 28, 27, 2, 4463, 28, 27, 2, 4464, 28,
	27, 2, 4465, 28, 27, 2, 4466, 28, 27, 2, 2777, 28, 27, 2, 4467, 28,
	27, 2, 4468, 28, 27, 2, 4469, 28, 27, 2, 4470, 28, 27, 2, 4471, 28,
	27, 2, 4472, 28, 27, 2, 4473, 28, 27, 2, 4474, 28, 27, 2, 4475, 28,
	27, 2, 4476, 28, 27, 2, 4477, 28, 27, 2, 4478, 28, 27, 2, 4479, 28,
	27, 2, 4480, 28, 27, 2, 4481, 28, 27, 2, 4482, 28, 27, 2, 4483, 28,
	27, 2, 4484, 28, 27, 2, 4485, 28, 27, 2, 4486, 28, 27, 2, 4487, 28,
	27, 2, 4488, 28, 27, 2, 4489, 28, 27, 2, 4490, 28, 27, 2, 4491, 28,
	27, 2, 4492, 28, 27, 2, 4493, 28, 27, 2, 4494, 28, 27, 2, 4495, 28,
	27, 2, 4496, 28, 27, 2, 4497, 28, 27, 2, 4499, 28, 27, 2, 4500, 28,
	27, 2, 4501, 28, 27, 2, 4502, 28, 27, 2, 4503, 28, 27, 2, 4504, 28,
	27, 2, 4505, 28, 27, 2, 4506, 28, 27, 2, 4507, 28, 27, 2, 4508, 28,
	27, 2, 4509, 28, 27, 2, 4510, 28, 27, 2, 4511, 28, 27, 2, 4512, 28,
	27, 2, 4513, 28, 27, 2, 4514, 28, 27, 2, 4515, 28, 27, 2, 4516, 28,
	27, 2, 4517, 28, 27, 2, 4518, 28, 27, 2, 4520, 28, 27, 2, 4521, 28,
	27, 2, 4522, 28, 27, 2, 4523, 28, 27, 2, 4524, 28, 27, 2, 4525, 28,
	27, 2, 4526, 28, 27, 2, 4527, 28, 27, 2, 4528, 28, 27, 2, 4529, 28,
	27, 2, 4530, 28, 27, 2, 4531, 28, 27, 2, 4532, 28, 27, 2, 2782, 28,
	27, 2, 4533, 28, 27, 2, 2074, 28, 27, 2, 2075, 28, 27, 2, 2076, 28,
	27, 2, 2077, 28, 27, 2, 4544, 28, 27, 2, 4545, 28, 27, 2, 4546, 28,
	27, 2, 4547, 28, 27, 2, 4548, 28, 27, 2, 4549, 28, 27, 2, 4550, 28,
	27, 2, 2079, 28, 27, 2, 2784, 28, 27, 2, 2785, 28, 27, 2, 4555, 28,
	27, 2, 4556, 28, 27, 2, 4557, 28, 27, 2, 4558, 28, 27, 2, 4559, 28,
	27, 2, 4560, 28, 27, 2, 4561, 28, 27, 2, 4562, 28, 27, 2, 2786, 28,
	27, 2, 2787, 28, 27, 2, 4564, 28, 27, 2, 4565, 28, 27, 2, 4566, 28,
	27, 2, 4567, 28, 27, 2, 4568, 28, 27, 2, 4569, 28, 27, 2, 4570, 28,
	27, 2, 4571, 28, 27, 2, 4572, 28, 27, 2, 2788, 28, 27, 2, 4573, 28,
	27, 2, 4574, 28, 27, 2, 4575, 28, 27, 2, 4576, 28, 27, 2, 2789, 28,
	27, 2, 2790, 28, 27, 2, 4577, 28, 27, 2, 4578, 28, 27, 2, 4579, 28,
	27, 2, 4580, 28, 27, 2, 4581, 28, 27, 2, 2791, 28, 27, 2, 4582, 28,
	27, 2, 4583, 28, 27, 2, 4584, 28, 27, 2, 4585, 28, 27, 2, 4586, 28,
	27, 2, 4587, 28, 27, 2, 4588, 28, 27, 2, 4589, 28, 27, 2, 4590, 28,
	27, 2, 4591, 28, 27, 2, 4592, 28, 27, 2, 4593, 28, 27, 2, 4594, 28,
	27, 2, 4595, 28, 27, 2, 4596, 28, 27, 2, 4597, 28, 27, 2, 4598, 28,
	27, 2, 4599, 28, 27, 2, 4600, 28, 27, 2, 4602, 28, 27, 2, 4603, 28,
	27, 2, 4604, 28, 27, 2, 4605, 28, 27, 2, 4606, 28, 27, 2, 4607, 28,
	27, 2, 4608, 28, 27, 2, 4609, 28, 27, 2, 4610, 28, 27, 2, 4611, 28,
	27, 2, 4612, 28, 27, 2, 4613, 28, 27, 2, 4614, 28, 27, 2, 4615, 28,
	27, 2, 4616, 28, 27, 2, 4617, 28, 27, 2, 4618, 28, 27, 2, 4619, 28,
	27, 2, 4620, 28, 27, 2, 4621, 28, 27, 2, 4622, 28, 27, 2, 4623, 28,
	27, 2, 4624, 28, 27, 2, 4625, 28, 27, 2, 4626, 28, 27, 2, 4627, 28,
	27, 2, 4628, 28, 27, 2, 4629, 28, 27, 2, 4630, 28, 27, 2, 4631, 28,
	27, 2, 4633, 28, 27, 2, 2795, 28, 27, 2, 4634, 28, 27, 2, 4635, 28,
	27, 2, 4636, 28, 27, 2, 4637, 28, 27, 2, 4638, 28, 27, 2, 4639, 28,
	27, 2, 4640, 28, 27, 2, 1282, 28, 27, 2, 2796, 28, 27, 2, 4641, 28,
	27, 2, 4642, 28, 27, 2, 4643, 28, 27, 2, 4644, 28, 27, 2, 4645, 28,
	27, 2, 2083, 28, 27, 2, 2084, 28, 27, 2, 2797, 28, 27, 2, 4650, 28,
	27, 2, 4651, 28, 27, 2, 4652, 28, 27, 2, 4653, 28, 27, 2, 4654, 28,
	27, 2, 4655, 28, 27, 2, 4656, 28, 27, 2, 4657, 28, 27, 2, 2798, 28,
	27, 2, 2799, 28, 27, 2, 4659, 28, 27, 2, 2800, 28, 27, 2, 4660, 28,
	27, 2, 4661, 28, 27, 2, 4662, 28, 27, 2, 4663, 28, 27, 2, 4664, 28,
	27, 2, 4665, 28, 27, 2, 4666, 28, 27, 2, 2801, 28, 27, 2, 4667, 28,
	27, 2, 4668, 28, 27, 2, 4669, 28, 27, 2, 4670, 28, 27, 2, 2802, 28,
	27, 2, 4671, 28, 27, 2, 4672, 28, 27, 2, 4673, 28, 27, 2, 4674, 28,
	27, 2, 4675, 28, 27, 2, 4676, 28, 27, 2, 2804, 28, 27, 2, 4677, 28,
	27, 2, 2805, 28, 27, 2, 2806, 28, 27, 2, 4678, 28, 27, 2, 2807, 28,
	27, 2, 4679, 28, 27, 2, 4680, 28, 27, 2, 4681, 28, 27, 2, 4682, 28,
	27, 2, 4686, 28, 27, 2, 4687, 28, 27, 2, 4688, 28, 27, 2, 4689, 28,
	27, 2, 4690, 28, 27, 2, 4691, 28, 27, 2, 4692, 28, 27, 2, 4693, 28,
	27, 2, 4694, 28, 27, 2, 4695, 28, 27, 2, 4696, 28, 27, 2, 4697, 28,
	27, 2, 4698, 28, 27, 2, 4699, 28, 27, 2, 4700, 28, 27, 2, 4701, 28,
	27, 2, 4702, 28, 27, 2, 4703, 28, 27, 2, 4704, 28, 27, 2, 4706, 28,
	27, 2, 4707, 28, 27, 2, 4708, 28, 27, 2, 4710, 28, 27, 2, 4711, 28,
	27, 2, 4712, 28, 27, 2, 4714, 28, 27, 2, 4715, 28, 27, 2, 4716, 28,
	27, 2, 4718, 28, 27, 2, 4719, 28, 27, 2, 4721, 28, 27, 2, 4722, 28,
	27, 2, 4723, 28, 27, 2, 4724, 28, 27, 2, 4725, 28, 27, 2, 4726, 28,
	27, 2, 4727, 28, 27, 2, 4728, 28, 27, 2, 4729, 28, 27, 2, 4730, 28,
	27, 2, 4733, 28, 27, 2, 4735, 28, 27, 2, 4736, 28, 27, 2, 4737, 28,
	27, 2, 4739, 28, 27, 2, 4740, 28, 27, 2, 4741, 28, 27, 2, 4742, 28,
	27, 2, 4743, 28, 27, 2, 4744, 28, 27, 2, 2810, 28, 27, 2, 4746, 28,
	27, 2, 4747, 28, 27, 2, 4748, 28, 27, 2, 4749, 28, 27, 2, 4750, 28,
	27, 2, 4751, 28, 27, 2, 4752, 28, 27, 2, 4753, 28, 27, 2, 4754, 28,
	27, 2, 4756, 28, 27, 2, 4757, 28, 27, 2, 4758, 28, 27, 2, 4759, 28,
	27, 2, 4760, 28, 27, 2, 4761, 28, 27, 2, 4762, 28, 27, 2, 2811, 28,
	27, 2, 2812, 28, 27, 2, 4764, 28, 27, 2, 4765, 28, 27, 2, 4766, 28,
	27, 2, 4767, 28, 27, 2, 4768, 28, 27, 2, 4769, 28, 27, 2, 4770, 28,
	27, 2, 4771, 28, 27, 2, 4772, 28, 27, 2, 2814, 28, 27, 2, 4773, 28,
	27, 2, 4774, 28, 27, 2, 4775, 28, 27, 2, 4776, 28, 27, 2, 4777, 28,
	27, 2, 4778, 28, 27, 2, 4779, 28, 27, 2, 4780, 28, 27, 2, 4781, 28,
	27, 2, 4782, 28, 27, 2, 4783, 28, 27, 2, 4786, 28, 27, 2, 4787, 28,
	27, 2, 4789, 28, 27, 2, 4791, 28, 27, 2, 4792, 28, 27, 2, 4793, 28,
	27, 2, 4794, 28, 27, 2, 4795, 28, 27, 2, 4796, 28, 27, 2, 4797, 28,
	27, 2, 4803, 28, 27, 2, 4804, 28, 27, 2, 4805, 28, 27, 2, 4806, 28,
	27, 2, 4807, 28, 27, 2, 4808, 28, 27, 2, 4809, 28, 27, 2, 4810, 28,
	27, 2, 2816, 28, 27, 2, 4811, 28, 27, 2, 4813, 28, 27, 2, 4814, 28,
	27, 2, 4815, 28, 27, 2, 4816, 28, 27, 2, 4817, 28, 27, 2, 4818, 28,
	27, 2, 4819, 28, 27, 2, 969, 28, 27, 2, 4820, 28, 27, 2, 4821, 28,
	27, 2, 4823, 28, 27, 2, 4824, 28, 27, 2, 4825, 28, 27, 2, 4826, 28,
	27, 2, 4827, 28, 27, 2, 4829, 28, 27, 2, 4830, 28, 27, 2, 4831, 28,
	27, 2, 4832, 28, 27, 2, 4833, 28, 27, 2, 4836, 28, 27, 2, 4838, 28,
	27, 2, 4839, 28, 27, 2, 4840, 28, 27, 2, 4841, 28, 27, 2, 4842, 28,
	27, 2, 2818, 28, 27, 2, 4844, 28, 27, 2, 4845, 28, 27, 2, 4846, 28,
	27, 2, 4848, 28, 27, 2, 4849, 28, 27, 2, 4850, 28, 27, 2, 4851, 28,
	27, 2, 4852, 28, 27, 2, 4853, 28, 27, 2, 4854, 28, 27, 2, 4855, 28,
	27, 2, 1014, 28, 27, 2, 4856, 28, 27, 2, 4858, 28, 27, 2, 4859, 28,
	27, 2, 4860, 28, 27, 2, 4861, 28, 27, 2, 4862, 28, 27, 2, 4863, 28,
	27, 2, 4865, 28, 27, 2, 4866, 28, 27, 2, 4867, 28, 27, 2, 4868, 28,
	27, 2, 4872, 28, 27, 2, 4873, 28, 27, 2, 4874, 28, 27, 2, 4876, 28,
	27, 2, 4877, 28, 27, 2, 4878, 28, 27, 2, 4879, 28, 27, 2, 4880, 28,
	27, 2, 2819, 28, 27, 2, 4881, 28, 27, 2, 4882, 28, 27, 2, 4885, 28,
	27, 2, 4886, 28, 27, 2, 4888, 28, 27, 2, 4889, 28, 27, 2, 4890, 28,
	27, 2, 4891, 28, 27, 2, 4892, 28, 27, 2, 2821, 28, 27, 2, 4893, 28,
	27, 2, 4894, 28, 27, 2, 4895, 28, 27, 2, 4896, 28, 27, 2, 4897, 28,
	27, 2, 4898, 28, 27, 2, 4899, 28, 27, 2, 4900, 28, 27, 2, 4901, 28,
	27, 2, 4902, 28, 27, 2, 4903, 28, 27, 2, 4905, 28, 27, 2, 4906, 28,
	27, 2, 4907, 28, 27, 2, 4908, 28, 27, 2, 4909, 28, 27, 2, 4910, 28,
	27, 2, 4911, 28, 27, 2, 4912, 28, 27, 2, 4913, 28, 27, 2, 4914, 28,
	27, 2, 4918, 28, 27, 2, 4919, 28, 27, 2, 4920, 28, 27, 2, 4921, 28,
	27, 2, 4922, 28, 27, 2, 4923, 28, 27, 2, 4924, 28, 27, 2, 4925, 28,
	27, 2, 4926, 28, 27, 2, 4927, 28, 27, 2, 4930, 28, 27, 2, 4931, 28,
	27, 2, 4932, 28, 27, 2, 4934, 28, 27, 2, 4935, 28, 27, 2, 4936, 28,
	27, 2, 4937, 28, 27, 2, 4938, 28, 27, 2, 4939, 28, 27, 2, 4940, 28,
	27, 2, 4942, 28, 27, 2, 4943, 28, 27, 2, 4944, 28, 27, 2, 4945, 28,
	27, 2, 2823, 28, 27, 2, 4946, 28, 27, 2, 4947, 28, 27, 2, 4948, 28,
	27, 2, 4949, 28, 27, 2, 4950, 28, 27, 2, 4952, 28, 27, 2, 4953, 28,
	27, 2, 4954, 28, 27, 2, 4955, 28, 27, 2, 4956, 28, 27, 2, 4957, 28,
	27, 2, 4958, 28, 27, 2, 4959, 28, 27, 2, 4960, 28, 27, 2, 4961, 28,
	27, 2, 4963, 28, 27, 2, 4964, 28, 27, 2, 4965, 28, 27, 2, 4966, 28,
	27, 2, 4967, 28, 27, 2, 4968, 28, 27, 2, 4969, 28, 27, 2, 4970, 28,
	27, 2, 4971, 28, 27, 2, 2824, 28, 27, 2, 4973, 28, 27, 2, 4974, 28,
	27, 2, 4976, 28, 27, 2, 4977, 28, 27, 2, 4979, 28, 27, 2, 4980, 28,
	27, 2, 4981, 28, 27, 2, 4982, 28, 27, 2, 4983, 28, 27, 2, 4984, 28,
	27, 2, 4986, 28, 27, 2, 4987, 28, 27, 2, 4988, 28, 27, 2, 4989, 28,
	27, 2, 4990, 28, 27, 2, 4991, 28, 27, 2, 4992, 28, 27, 2, 4993, 28,
	27, 2, 4994, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35,
	22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52,
	7, 35, 22, 2, 1, 52, 7, 35, 22, 2, 1, 52, 7, 35, 22, 2,
	1, 52, 7, 35, 22, 2, 1, 91, 5, 950, 110, 2, 192, 91, 5, 950,
	110, 2, 273, 91, 5, 950, 110, 2, 349, 91, 5, 950, 110, 2, 387, 91,
	5, 950, 110, 2, 568, 91, 5, 950, 110, 2, 772, 91, 5, 950, 1327, 110,
	2, 291, 91, 5, 950, 1327, 110, 2, 192, 91, 5, 950, 1327, 110, 2, 273,
	91, 5, 950, 1327, 110, 2, 349, 91, 5, 950, 1327, 110, 2, 387, 91, 5,
	950, 1327, 110, 2, 568, 91, 5, 950, 1327, 110, 2, 772, 91, 5, 507, 51,
	222, 5, 507, 753, 82, 5, 24, 2, 291, 82, 5, 24, 2, 192, 82, 5,
	24, 2, 273, 82, 5, 24, 2, 588, 82, 5, 73, 2, 291, 82, 5, 73,
	2, 192, 82, 5, 73, 2, 273, 82, 5, 73, 2, 349, 82, 5, 60, 2,
	291, 82, 5, 60, 2, 192, 82, 5, 60, 2, 273, 82, 5, 60, 2, 349,
	82, 5, 60, 2, 387, 82, 5, 51, 2, 192, 82, 5, 51, 2, 273, 82,
	5, 51, 2, 349, 82, 5, 51, 2, 387, 82, 5, 51, 2, 466, 82, 5,
	68, 2, 291, 82, 5, 68, 2, 192, 82, 5, 68, 2, 273, 82, 5, 106,
	2, 291, 82, 5, 106, 2, 192, 82, 5, 106, 2, 273, 82, 5, 106, 2,
	349, 82, 5, 106, 2, 387, 82, 5, 106, 2, 466, 82, 5, 106, 2, 568,
	82, 5, 106, 2, 772, 82, 5, 106, 2, 869, 82, 5, 106, 2, 1278, 82,
	5, 106, 2, 1180, 82, 5, 106, 2, 647, 82, 5, 571, 2, 291, 82, 5,
	571, 2, 192, 82, 5, 571, 2, 273, 82, 5, 571, 2, 349, 82, 5, 571,
	2, 387, 82, 5, 571, 2, 466, 82, 5, 571, 2, 568, 82, 5, 571, 2,
	772, 82, 5, 620, 2, 291, 82, 5, 620, 2, 192, 82, 5, 620, 2, 273,
	82, 5, 620, 2, 349, 82, 5, 620, 2, 387, 82, 5, 620, 2, 466, 82,
	5, 620, 2, 568, 82, 5, 647, 2, 291, 82, 5, 647, 2, 192, 82, 5,
	647, 2, 273, 82, 5, 647, 2, 349, 82, 5, 647, 2, 387, 82, 5, 647,
	2, 466, 82, 5, 606, 2, 291, 82, 5, 606, 2, 192, 82, 5, 606, 2,
	273, 82, 5, 606, 2, 571, 82, 5, 195, 2, 291, 82, 5, 195, 2, 192,
	82, 5, 195, 2, 273, 82, 5, 195, 2, 349, 82, 5, 195, 2, 387, 82,
	5, 195, 2, 466, 82, 5, 195, 2, 568, 82, 5, 195, 2, 772, 82, 5,
	632, 2, 291, 82, 5, 632, 2, 192, 82, 5, 632, 2, 273, 82, 5, 632,
	2, 349, 82, 5, 632, 2, 387, 82, 5, 632, 2, 466, 82, 5, 611, 2,
	291, 82, 5, 611, 2, 192, 82, 5, 611, 2, 273, 82, 5, 611, 2, 349,
	82, 5, 611, 2, 387, 82, 5, 611, 2, 466, 82, 5, 611, 2, 568, 82,
	5, 611, 2, 772, 82, 5, 666, 2, 291, 82, 5, 666, 2, 192, 82, 5,
	666, 2, 273, 82, 5, 666, 2, 349, 82, 5, 666, 2, 387, 82, 5, 574,
	2, 291, 82, 5, 574, 2, 192, 82, 5, 574, 2, 273, 82, 5, 574, 2,
	349, 82, 5, 574, 2, 387, 82, 5, 574, 2, 466, 82, 5, 574, 2, 568,
	82, 5, 196, 2, 291, 82, 5, 196, 2, 192, 82, 5, 196, 2, 273, 82,
	5, 196, 2, 349, 82, 5, 686, 2, 291, 82, 5, 686, 2, 192, 82, 5,
	686, 2, 273, 82, 5, 686, 2, 349, 82, 5, 686, 2, 387, 82, 5, 686,
	2, 466, 82, 5, 686, 2, 568, 82, 5, 613, 2, 291, 82, 5, 613, 2,
	192, 82, 5, 613, 2, 273, 82, 5, 613, 2, 349, 82, 5, 613, 2, 83,
	82, 5, 440, 2, 291, 82, 5, 440, 2, 192, 82, 5, 440, 2, 273, 82,
	5, 440, 2, 349, 82, 5, 440, 2, 387, 82, 5, 440, 2, 466, 82, 5,
	440, 2, 568, 82, 5, 440, 2, 772, 82, 5, 440, 2, 869, 82, 5, 83,
	2, 291, 82, 5, 83, 2, 192, 82, 5, 83, 2, 273, 82, 5, 83, 2,
	349, 82, 5, 83, 2, 387, 82, 5, 83, 2, 466, 82, 5, 83, 2, 173,
	82, 5, 185, 2, 291, 82, 5, 185, 2, 192, 82, 5, 185, 2, 273, 82,
	5, 185, 2, 349, 82, 5, 185, 2, 387, 82, 5, 185, 2, 466, 82, 5,
	185, 2, 568, 82, 5, 185, 2, 772, 82, 5, 185, 2, 869, 82, 5, 493,
	2, 291, 82, 5, 493, 2, 192, 82, 5, 493, 2, 273, 82, 5, 493, 2,
	349, 82, 5, 493, 2, 387, 82, 5, 493, 2, 466, 82, 5, 493, 2, 568,
	82, 5, 493, 2, 440, 82, 5, 555, 2, 291, 82, 5, 555, 2, 192, 82,
	5, 555, 2, 273, 82, 5, 492, 2, 291, 82, 5, 492, 2, 192, 82, 5,
	492, 2, 273, 82, 5, 492, 2, 349, 82, 5, 492, 2, 387, 82, 5, 492,
	2, 466, 82, 5, 492, 2, 606, 82, 5, 433, 2, 291, 82, 5, 433, 2,
	192, 82, 5, 433, 2, 273, 82, 5, 433, 2, 349, 82, 5, 433, 2, 387,
	82, 5, 143, 2, 291, 82, 5, 143, 2, 192, 82, 5, 143, 2, 273, 82,
	5, 143, 2, 349, 82, 5, 143, 2, 387, 82, 5, 143, 2, 466, 82, 5,
	143, 2, 568, 82, 5, 143, 2, 772, 82, 5, 143, 2, 869, 82, 5, 143,
	2, 1278, 82, 5, 143, 2, 1180, 82, 5, 479, 2, 291, 82, 5, 479, 2,
	192, 82, 5, 479, 2, 273, 82, 5, 479, 2, 349, 82, 5, 479, 2, 387,
	82, 5, 479, 2, 466, 82, 5, 479, 2, 568, 82, 5, 831, 2, 291, 82,
	5, 831, 2, 192, 82, 5, 831, 2, 273, 82, 5, 446, 2, 291, 82, 5,
	446, 2, 192, 82, 5, 446, 2, 273, 82, 5, 446, 2, 349, 82, 5, 446,
	2, 387, 82, 5, 446, 2, 466, 82, 5, 446, 2, 568, 82, 5, 553, 2,
	291, 82, 5, 553, 2, 192, 82, 5, 553, 2, 273, 82, 5, 553, 2, 349,
	82, 5, 553, 2, 387, 82, 5, 553, 2, 466, 82, 5, 553, 2, 568, 82,
	5, 553, 2, 772, 82, 5, 182, 2, 291, 82, 5, 182, 2, 192, 82, 5,
	182, 2, 273, 82, 5, 182, 2, 349, 82, 5, 182, 2, 387, 82, 5, 182,
	2, 466, 82, 5, 182, 2, 568, 82, 5, 540, 2, 291, 82, 5, 540, 2,
	192, 82, 5, 540, 2, 273, 82, 5, 540, 2, 349, 82, 5, 540, 2, 387,
	82, 5, 540, 2, 466, 82, 5, 540, 2, 568, 82, 5, 460, 2, 291, 82,
	5, 460, 2, 192, 82, 5, 460, 2, 273, 82, 5, 460, 2, 349, 82, 5,
	539, 2, 291, 82, 5, 539, 2, 192, 82, 5, 539, 2, 182, 82, 5, 607,
	2, 291, 82, 5, 607, 2, 192, 82, 5, 607, 2, 273, 82, 5, 607, 2,
	349, 82, 5, 607, 2, 387, 82, 5, 607, 2, 466, 82, 5, 179, 2, 291,
	82, 5, 179, 2, 192, 82, 5, 179, 2, 273, 82, 5, 179, 2, 349, 82,
	5, 179, 2, 387, 82, 5, 179, 2, 416, 82, 5, 402, 2, 291, 82, 5,
	402, 2, 192, 82, 5, 402, 2, 273, 82, 5, 402, 2, 349, 82, 5, 416,
	2, 291, 82, 5, 416, 2, 192, 82, 5, 416, 2, 273, 82, 5, 416, 2,
	349, 82, 5, 416, 2, 387, 82, 5, 416, 2, 466, 82, 5, 173, 2, 291,
	82, 5, 173, 2, 192, 82, 5, 173, 2, 273, 82, 5, 173, 2, 349, 82,
	5, 716, 2, 291, 82, 5, 716, 2, 192, 82, 5, 716, 2, 273, 82, 5,
	716, 2, 349, 82, 5, 716, 2, 387, 82, 5, 716, 2, 466, 82, 5, 716,
	2, 568, 82, 5, 630, 2, 291, 82, 5, 630, 2, 192, 82, 5, 630, 2,
	273, 82, 5, 630, 2, 349, 82, 5, 630, 2, 387, 82, 5, 630, 2, 466,
	82, 5, 736, 2, 291, 82, 5, 736, 2, 192, 82, 5, 736, 2, 273, 82,
	5, 736, 2, 349, 82, 5, 585, 2, 291, 82, 5, 585, 2, 192, 82, 5,
	585, 2, 273, 82, 5, 585, 2, 349, 82, 5, 585, 2, 387, 82, 5, 585,
	2, 466, 82, 5, 286, 2, 291, 82, 5, 286, 2, 192, 82, 5, 286, 2,
	273, 82, 5, 286, 2, 349, 82, 5, 286, 2, 387, 82, 5, 668, 2, 291,
	82, 5, 668, 2, 192, 82, 5, 668, 2, 273, 82, 5, 668, 2, 349, 82,
	5, 668, 2, 387, 82, 5, 614, 2, 291, 82, 5, 614, 2, 192, 82, 5,
	614, 2, 273, 82, 5, 614, 2, 349, 82, 5, 588, 2, 291, 82, 5, 588,
	2, 192, 82, 5, 588, 2, 273, 82, 5, 588, 2, 349, 82, 5, 588, 2,
	387, 82, 5, 588, 2, 466, 82, 5, 588, 2, 568, 82, 5, 151, 2, 460,
	2, 607, 2, 291, 82, 5, 151, 2, 460, 2, 607, 2, 192, 222, 5, 507,
	1063, 91, 5, 507, 14, 91, 5, 507, 753, 91, 5, 507, 1063, 222, 5, 7,
	668, 222, 5, 7, 614, 222, 5, 7, 588, 91, 5, 7, 668, 91, 5, 7,
	614, 91, 5, 7, 588, 91, 5, 7, 151, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2, 1, 61, 22, 2,
	1, 61, 22, 2, 1, 61, 22, 2, 1, 158, 5, 235, 158, 5, 268, 158,
	5, 249, 158, 5, 221, 158, 5, 176, 158, 5, 227, 158, 5, 136, 158, 5,
	71, 158, 5, 98, 158, 5, 229, 158, 5, 220, 158, 5, 122, 158, 5, 249,
	151, 158, 5, 98, 121, 158, 5, 176, 151, 158, 5, 227, 205, 158, 5, 122,
	121, 158, 5, 864, 158, 5, 1166, 3238, 158, 5, 3238, 158, 5, 1859, 158, 5,
	1166, 278, 158, 5, 7745, 158, 5, 2325, 158, 5, 10065, 158, 5, 205, 158, 5,
	151, 158, 5, 278, 158, 5, 121, 158, 5, 205, 151, 158, 5, 151, 205, 158,
	5, 278, 205, 158, 5, 121, 278, 158, 5, 205, 8, 77, 158, 5, 151, 8,
	77, 158, 5, 278, 8, 77, 158, 5, 278, 8, 63, 786, 34, 53, 158, 5,
	121, 8, 77, 158, 5, 121, 8, 77, 76, 158, 5, 205, 121, 158, 5, 151,
	121, 158, 5, 278, 121, 158, 5, 121, 121, 158, 5, 205, 151, 121, 158, 5,
	151, 205, 121, 158, 5, 278, 205, 121, 158, 5, 121, 278, 121, 158, 5, 278,
	121, 8, 77, 158, 5, 278, 151, 158, 5, 278, 151, 121, 158, 5, 121, 221,
	158, 5, 121, 221, 122, 158, 5, 121, 249, 158, 5, 121, 249, 122, 158, 5,
	221, 121, 158, 5, 221, 122, 121, 158, 5, 290, 158, 5, 11348, 158, 5, 290,
	122, 158, 5, 121, 151, 158, 5, 121, 205, 158, 5, 227, 122, 121, 158, 5,
	220, 122, 121, 158, 5, 121, 227, 158, 5, 121, 227, 122, 158, 5, 24, 158,
	5, 1166, 1645, 158, 5, 1639, 158, 5, 68, 158, 5, 5824, 158, 5, 73, 158,
	5, 51, 158, 5, 832, 158, 5, 295, 73, 158, 5, 2015, 158, 5, 496, 158,
	5, 1166, 1078, 158, 5, 3913, 73, 158, 5, 1166, 496, 158, 5, 187, 73, 158,
	5, 753, 158, 5, 60, 158, 5, 761, 158, 5, 2602, 158, 5, 60, 151, 158,
	5, 187, 60, 158, 5, 3913, 60, 158, 5, 2578, 158, 5, 1166, 60, 158, 5,
	9539, 158, 5, 1645, 158, 5, 1240, 158, 5, 286, 158, 5, 588, 158, 5, 668,
	158, 5, 4178, 158, 5, 11375, 158, 5, 1627, 60, 158, 5, 1627, 68, 158, 5,
	1627, 73, 158, 5, 1627, 24, 158, 5, 3811, 524, 158, 5, 3811, 1067, 158, 5,
	1166, 405, 158, 5, 1166, 524, 158, 5, 1166, 347, 158, 5, 149, 205, 158, 576,
	48, 135, 1249, 158, 576, 1039, 135, 1249, 158, 576, 45, 135, 1249, 158, 576, 145,
	86, 1249, 158, 576, 1039, 86, 1249, 158, 576, 156, 86, 1249, 158, 576, 742, 1249,
	158, 576, 742, 48, 2, 83, 2, 45, 1249, 158, 576, 742, 4054, 158, 576, 742,
	323, 158, 576, 742, 51, 99, 158, 576, 742, 73, 99, 158, 576, 742, 4054, 99,
	158, 576, 156, 230, 158, 576, 156, 2553, 230, 158, 576, 156, 315, 158, 576, 156,
	187, 315, 158, 576, 156, 77, 158, 576, 156, 125, 158, 576, 156, 245, 158, 576,
	156, 575, 158, 576, 156, 86, 158, 576, 145, 230, 158, 576, 145, 2553, 230, 158,
	576, 145, 315, 158, 576, 145, 187, 315, 158, 576, 145, 77, 158, 576, 145, 125,
	158, 576, 145, 245, 158, 576, 145, 575, 158, 576, 145, 86, 158, 576, 145, 36,
	158, 6, 68, 8, 425, 158, 10797, 5, 84, 158, 55, 56, 158, 225, 6480, 426,
	322, 1973, 1818, 5, 2412, 1973, 1818, 6684, 2412, 1973, 1818, 130, 2515, 1973, 1818, 111,
	2515, 117, 43, 56, 1582, 1235, 121, 987, 347, 48, 117, 43, 56, 1235, 121, 987,
	347, 48, 117, 43, 56, 2570, 347, 48, 117, 43, 56, 1582, 1235, 347, 48, 117,
	43, 56, 1235, 347, 48, 117, 43, 56, 4018, 347, 48, 117, 43, 56, 1322, 959,
	347, 48, 117, 43, 56, 959, 347, 48, 117, 43, 56, 1512, 347, 48, 117, 43,
	56, 1322, 959, 121, 1440, 347, 48, 117, 43, 56, 959, 121, 1440, 347, 48, 117,
	43, 56, 1512, 121, 1440, 347, 48, 117, 43, 56, 1582, 1235, 121, 987, 347, 45,
	117, 43, 56, 1235, 121, 987, 347, 45, 117, 43, 56, 2570, 347, 45, 117, 43,
	56, 1582, 1235, 347, 45, 117, 43, 56, 1235, 347, 45, 117, 43, 56, 4018, 347,
	45, 117, 43, 56, 1322, 959, 347, 45, 117, 43, 56, 959, 347, 45, 117, 43,
	56, 1512, 347, 45, 117, 43, 56, 1322, 959, 121, 1440, 347, 45, 117, 43, 56,
	959, 121, 1440, 347, 45, 117, 43, 56, 1512, 121, 1440, 347, 45, 117, 43, 56,
	2570, 121, 987, 117, 43, 56, 1322, 959, 121, 987, 117, 43, 56, 2520, 1322, 959,
	117, 43, 56, 959, 121, 987, 117, 43, 56, 959, 2520, 117, 43, 56, 1512, 121,
	987, 117, 43, 56, 1322, 959, 2520, 117, 43, 56, 1582, 1512, 117, 43, 56, 11615,
	117, 43, 56, 347, 117, 43, 56, 10023, 117, 43, 56, 2000, 117, 43, 56, 6259,
	117, 43, 56, 11045, 117, 43, 56, 9770, 117, 43, 56, 8461, 117, 43, 56, 8289,
	117, 43, 56, 8106, 117, 43, 56, 11618, 117, 43, 56, 10433, 117, 43, 56, 10027,
	117, 43, 56, 1864, 347, 48, 117, 43, 929, 1664, 56, 8913, 117, 43, 929, 1664,
	56, 10629, 117, 43, 929, 1664, 56, 10885, 117, 43, 56, 4223, 117, 43, 56, 3230,
	4223, 117, 43, 56, 9558, 117, 43, 56, 2433, 117, 43, 56, 2433, 8, 86, 89,
	117, 43, 56, 2140, 117, 43, 56, 2140, 9776, 117, 43, 56, 9512, 117, 43, 56,
	4004, 3733, 117, 43, 56, 10854, 117, 43, 56, 7058, 117, 43, 5891, 86, 3768, 117,
	43, 56, 759, 3768, 117, 43, 56, 1864, 117, 43, 134, 929, 1664, 570, 117, 1658,
	75, 1320, 2, 192, 117, 1658, 75, 1320, 2, 273, 117, 1658, 75, 1791, 3325, 117,
	1658, 75, 1864, 117, 1658, 75, 2463, 117, 200, 3516, 117, 200, 3516, 4081, 117, 200,
	9639, 117, 200, 7054, 229, 6462, 117, 200, 3503, 117, 200, 11605, 117, 200, 2519, 117,
	200, 2519, 121, 9520, 117, 200, 3810, 117, 200, 3810, 1629, 117, 200, 2519, 8, 4004,
	3733, 117, 200, 3167, 117, 200, 9602, 117, 200, 1277, 117, 200, 1581, 6260, 117, 200,
	1581, 4081, 117, 200, 1581, 8915, 117, 200, 1581, 10630, 117, 200, 1581, 10886, 117, 200,
	1274, 1941, 117, 200, 1274, 2364, 117, 200, 1274, 1261, 117, 200, 1274, 2006, 117, 200,
	1274, 1034, 1941, 117, 200, 1274, 1034, 2364, 117, 200, 1274, 1034, 1261, 117, 200, 1274,
	1034, 2006, 117, 200, 55, 1277, 117, 200, 261, 3167, 117, 200, 6928, 117, 200, 8177,
	117, 200, 2140, 117, 200, 2433, 117, 200, 1052, 2364, 117, 200, 1052, 1261, 117, 200,
	1052, 2006, 117, 200, 1052, 2000, 117, 200, 3230, 3503, 117, 200, 1052, 1034, 1261, 117,
	200, 1052, 3504, 117, 200, 1052, 1034, 2000, 117, 200, 1052, 1401, 1941, 117, 200, 1052,
	1401, 1261, 117, 200, 1052, 1401, 1629, 117, 200, 1052, 1401, 1034, 117, 200, 1982, 117,
	200, 1982, 121, 1520, 117, 200, 1982, 11603, 117, 200, 1982, 121, 987, 117, 200, 1864,
	117, 200, 2463, 117, 200, 1306, 117, 200, 8240, 117, 200, 11663, 117, 200, 1054, 117,
	200, 1054, 121, 1520, 117, 200, 1054, 121, 987, 117, 200, 1054, 121, 1520, 73, 987,
	117, 200, 1054, 121, 987, 73, 1520, 117, 200, 1054, 4224, 117, 200, 1054, 4224, 121,
	1520, 117, 200, 1054, 121, 10094, 117, 200, 1054, 121, 7059, 11607, 117, 200, 1054, 121,
	1520, 73, 9769, 117, 200, 9775, 117, 200, 1054, 1629, 117, 200, 567, 1941, 117, 200,
	567, 8914, 117, 200, 567, 8272, 117, 200, 567, 9778, 117, 200, 567, 1940, 117, 200,
	567, 1629, 117, 200, 567, 8231, 117, 200, 567, 3504, 117, 200, 567, 2000, 9860, 117,
	200, 567, 1401, 117, 200, 567, 7057, 117, 200, 567, 3265, 117, 200, 567, 1401, 1034,
	117, 200, 567, 3265, 1034, 117, 200, 567, 1828, 8, 271, 1277, 117, 200, 567, 1421,
	8, 271, 1277, 117, 200, 567, 1828, 117, 200, 567, 1421, 117, 200, 567, 1421, 8,
	55, 1277, 117, 200, 567, 1829, 117, 200, 567, 1829, 1940, 117, 200, 1618, 117, 200,
	1618, 9794, 117, 200, 1618, 8233, 117, 200, 1618, 8232, 117, 200, 1618, 8230, 117, 200,
	567, 10912, 117, 200, 567, 10913, 117, 200, 567, 10914, 117, 200, 1463, 117, 200, 1463,
	1261, 117, 200, 1463, 2006, 117, 200, 1463, 1035, 1261, 117, 200, 1463, 1034, 1261, 117,
	200, 1463, 1034, 1629, 117, 200, 567, 1035, 117, 200, 567, 1035, 1940, 117, 200, 567,
	1035, 1828, 8, 271, 1277, 117, 200, 567, 1035, 1421, 8, 271, 1277, 117, 200, 567,
	1035, 1828, 117, 200, 567, 1035, 1421, 117, 200, 567, 1035, 1421, 8, 55, 1277, 117,
	200, 567, 1035, 1829, 117, 200, 567, 1035, 1829, 1940, 117, 200, 567, 1035, 10911, 117,
	200, 8280, 117, 200, 9513, 117, 200, 7035, 117, 200, 9087, 117, 200, 9658, 90, 49,
	16, 305, 90, 49, 16, 6864, 90, 49, 16, 463, 90, 49, 16, 2413, 1803, 90,
	49, 16, 2413, 1297, 90, 49, 16, 2582, 1803, 90, 49, 16, 2582, 1297, 90, 49,
	16, 8134, 90, 49, 16, 10654, 90, 49, 16, 2418, 90, 49, 16, 4209, 90, 49,
	16, 4209, 1297, 90, 49, 16, 8270, 90, 49, 16, 3049, 1803, 90, 49, 16, 2212,
	1803, 90, 49, 16, 4064, 90, 49, 16, 1606, 90, 49, 16, 2102, 90, 49, 16,
	2102, 1297, 90, 49, 16, 10648, 90, 49, 16, 10801, 90, 49, 16, 3766, 777, 90,
	49, 16, 1583, 777, 90, 49, 16, 9835, 90, 49, 16, 6444, 90, 49, 16, 11207,
	90, 49, 16, 2283, 777, 90, 49, 16, 1853, 777, 90, 49, 16, 1606, 777, 90,
	49, 16, 10269, 90, 49, 16, 9641, 90, 49, 16, 4024, 5828, 90, 49, 16, 9566,
	777, 90, 49, 16, 11201, 777, 90, 49, 16, 3051, 777, 90, 49, 16, 5830, 90,
	49, 16, 1860, 90, 49, 16, 10063, 90, 49, 16, 3820, 777, 90, 49, 16, 10831,
	90, 49, 16, 5795, 90, 49, 16, 3942, 90, 49, 16, 2534, 777, 90, 49, 16,
	2534, 8789, 10562, 90, 49, 16, 3784, 777, 90, 49, 16, 4074, 90, 49, 16, 8395,
	90, 49, 16, 1798, 90, 49, 16, 10888, 90, 49, 16, 2543, 90, 49, 16, 8267,
	90, 49, 16, 3049, 2212, 662, 90, 49, 16, 800, 777, 90, 49, 16, 7948, 90,
	49, 16, 2007, 777, 90, 49, 16, 8132, 2007, 90, 49, 16, 3804, 90, 49, 16,
	3852, 90, 49, 16, 3507, 90, 49, 16, 3169, 777, 90, 49, 16, 10015, 90, 49,
	16, 2417, 777, 90, 49, 16, 2418, 777, 90, 49, 16, 7927, 90, 49, 16, 3687,
	90, 49, 16, 9695, 90, 49, 16, 3507, 2097, 90, 49, 16, 2007, 2097, 90, 49,
	16, 10575, 90, 49, 16, 7609, 90, 49, 16, 2283, 662, 90, 49, 16, 3766, 662,
	90, 49, 16, 2413, 662, 90, 49, 16, 9696, 90, 49, 16, 8256, 90, 49, 16,
	9697, 90, 49, 16, 8268, 90, 49, 16, 3804, 662, 90, 49, 16, 1606, 662, 1185,
	90, 49, 16, 1853, 662, 1185, 90, 49, 16, 11535, 90, 49, 16, 2102, 662, 90,
	49, 16, 3052, 10647, 662, 90, 49, 16, 11534, 90, 49, 16, 8269, 90, 49, 16,
	7138, 90, 49, 16, 6443, 90, 49, 16, 8852, 2283, 90, 49, 16, 2582, 662, 90,
	49, 16, 3820, 662, 90, 49, 16, 3852, 662, 90, 49, 16, 9532, 90, 49, 16,
	5821, 90, 49, 16, 8494, 90, 49, 16, 2418, 662, 90, 49, 16, 2417, 662, 90,
	49, 16, 3308, 2417, 90, 49, 16, 8323, 90, 49, 16, 5820, 90, 49, 16, 2007,
	662, 90, 49, 16, 7137, 90, 49, 16, 2534, 662, 90, 49, 16, 10653, 90, 49,
	16, 3169, 662, 90, 49, 16, 7166, 90, 49, 16, 3942, 662, 90, 49, 16, 11422,
	1860, 90, 49, 16, 10905, 90, 49, 16, 9832, 90, 49, 16, 10903, 90, 49, 16,
	10904, 90, 49, 16, 9833, 90, 49, 16, 10906, 90, 49, 16, 9834, 90, 49, 16,
	7592, 90, 49, 16, 3058, 90, 49, 16, 3308, 3058, 90, 49, 16, 3784, 662, 90,
	49, 16, 4075, 7175, 90, 49, 16, 4075, 2212, 90, 49, 16, 4074, 3050, 90, 49,
	16, 10793, 1436, 5831, 90, 49, 16, 8133, 90, 49, 16, 7156, 90, 49, 16, 4205,
	1318, 90, 49, 16, 4205, 1185, 90, 49, 16, 4024, 90, 49, 16, 1860, 1185, 90,
	49, 16, 1297, 777, 90, 49, 16, 2309, 777, 90, 49, 16, 2309, 2097, 90, 49,
	16, 2309, 662, 90, 49, 16, 3051, 662, 90, 49, 16, 1531, 90, 49, 16, 1297,
	90, 49, 16, 10896, 90, 49, 16, 10774, 90, 49, 16, 2308, 90, 49, 16, 1446,
	7159, 3170, 90, 49, 16, 1446, 1798, 2145, 90, 49, 16, 1446, 10895, 2145, 90, 49,
	16, 1446, 10771, 2145, 90, 49, 16, 1446, 7951, 3170, 90, 49, 16, 1583, 662, 1185,
	90, 49, 16, 1583, 1648, 2103, 90, 49, 16, 1583, 1648, 3236, 90, 49, 16, 1788,
	90, 49, 16, 1788, 1648, 2103, 1318, 90, 49, 16, 1788, 1648, 2103, 1185, 90, 49,
	16, 1788, 1648, 3236, 90, 49, 16, 10891, 90, 49, 16, 5843, 90, 49, 16, 7946,
	90, 49, 16, 6960, 90, 49, 16, 1182, 3837, 3057, 90, 49, 16, 1182, 5844, 90,
	49, 16, 1182, 3057, 90, 49, 16, 1182, 8794, 90, 49, 16, 1182, 8787, 90, 49,
	16, 1182, 3377, 90, 49, 16, 1182, 7593, 90, 49, 16, 1182, 3837, 3377, 90, 49,
	16, 949, 3851, 947, 90, 49, 16, 949, 3037, 3851, 947, 90, 49, 16, 949, 3237,
	947, 90, 49, 16, 949, 3037, 3237, 947, 90, 49, 16, 949, 10898, 947, 90, 49,
	16, 949, 10890, 90, 49, 16, 949, 2544, 947, 90, 49, 16, 949, 2544, 3543, 947,
	90, 49, 16, 949, 3543, 947, 90, 49, 16, 949, 3831, 947, 90, 49, 16, 7991,
	4066, 3438, 90, 49, 16, 3052, 4066, 3438, 90, 49, 16, 2215, 10773, 90, 49, 16,
	2215, 3663, 90, 49, 16, 2215, 3241, 90, 49, 16, 949, 11203, 947, 90, 49, 16,
	949, 9829, 947, 90, 49, 16, 949, 3831, 2544, 947, 90, 49, 16, 3378, 151, 3050,
	90, 49, 16, 3378, 151, 6980, 90, 49, 16, 7151, 1436, 800, 4167, 90, 49, 16,
	7947, 90, 49, 16, 7949, 90, 49, 16, 800, 777, 6936, 7928, 90, 49, 16, 800,
	1293, 119, 90, 49, 16, 800, 1293, 3687, 90, 49, 16, 800, 9016, 947, 90, 49,
	16, 800, 1293, 783, 90, 49, 16, 800, 2495, 6961, 783, 90, 49, 16, 800, 1293,
	647, 90, 49, 16, 800, 1293, 1012, 90, 49, 16, 800, 1293, 493, 1318, 90, 49,
	16, 800, 1293, 493, 1185, 90, 49, 16, 800, 3630, 1770, 3241, 90, 49, 16, 800,
	3630, 1770, 3663, 90, 49, 16, 7313, 2495, 1770, 11204, 90, 49, 16, 800, 2495, 1770,
	10644, 90, 49, 16, 800, 9088, 90, 49, 16, 2144, 11682, 90, 49, 16, 2144, 8229,
	90, 49, 16, 2144, 10484, 90, 49, 16, 800, 73, 1364, 4069, 90, 49, 16, 800,
	7150, 5819, 90, 49, 16, 1364, 4107, 90, 49, 16, 1294, 4107, 90, 49, 16, 1294,
	4069, 90, 49, 16, 1294, 1531, 1798, 1203, 90, 49, 16, 1294, 3664, 2543, 1203, 90,
	49, 16, 1294, 3242, 1809, 1203, 90, 49, 16, 1294, 4104, 3765, 1203, 90, 49, 16,
	1364, 1531, 1798, 1203, 90, 49, 16, 1364, 3664, 2543, 1203, 90, 49, 16, 1364, 3242,
	1809, 1203, 90, 49, 16, 1364, 4104, 3765, 1203, 90, 49, 16, 3360, 1294, 90, 49,
	16, 3360, 1364, 90, 49, 16, 1787, 1531, 8851, 90, 49, 16, 1787, 1531, 8771, 90,
	49, 16, 1787, 1297, 90, 49, 16, 1787, 1691, 90, 49, 16, 1253, 1691, 90, 49,
	16, 1253, 1691, 3246, 90, 49, 16, 1253, 1691, 4106, 90, 49, 16, 1253, 1691, 4071,
	90, 49, 16, 1253, 1748, 90, 49, 16, 1253, 1748, 3246, 90, 49, 16, 1253, 1748,
	4106, 90, 49, 16, 1253, 1748, 4071, 90, 49, 16, 6971, 7502, 90, 49, 16, 6969,
	1240, 90, 49, 16, 2516, 90, 49, 16, 1286, 119, 90, 49, 16, 1286, 4167, 90,
	49, 16, 1286, 224, 90, 49, 16, 1286, 783, 90, 49, 16, 1286, 647, 90, 49,
	16, 1286, 1012, 90, 49, 16, 1286, 493, 90, 49, 16, 1606, 662, 3650, 90, 49,
	16, 1853, 662, 3650, 90, 49, 16, 1606, 662, 1318, 90, 49, 16, 1853, 662, 1318,
	90, 49, 16, 1860, 1318, 90, 49, 16, 1583, 662, 1318, 49, 16, 271, 1376, 49,
	16, 55, 1376, 49, 16, 69, 1376, 49, 16, 747, 69, 1376, 49, 16, 941, 1376,
	49, 16, 295, 1376, 49, 16, 48, 1161, 6, 49, 16, 45, 1161, 6, 49, 16,
	1161, 63, 49, 16, 782, 3940, 49, 16, 217, 6376, 49, 16, 3940, 49, 16, 6651,
	49, 16, 2458, 1025, 2, 291, 49, 16, 2458, 1025, 2, 192, 49, 16, 2458, 1025,
	2, 273, 49, 16, 2219, 49, 16, 2219, 76, 49, 16, 2126, 56, 49, 16, 6359,
	49, 16, 6269, 49, 16, 161, 49, 16, 67, 2, 245, 1255, 49, 16, 70, 2,
	245, 1255, 49, 16, 79, 2, 245, 1255, 49, 16, 93, 2, 245, 1255, 49, 16,
	100, 2, 245, 1255, 49, 16, 139, 2, 245, 1255, 49, 16, 139, 2, 4028, 3337,
	49, 16, 93, 2, 4028, 3337, 49, 16, 220, 975, 49, 16, 220, 975, 1464, 1741,
	49, 16, 220, 975, 1464, 508, 49, 16, 104, 975, 49, 16, 176, 975, 49, 16,
	176, 975, 1464, 1741, 49, 16, 176, 975, 1464, 508, 49, 16, 1399, 975, 2, 291,
	49, 16, 1399, 975, 2, 192, 49, 16, 952, 1324, 811, 49, 16, 55, 1338, 49,
	16, 55, 561, 49, 16, 561, 111, 49, 16, 561, 130, 49, 16, 2373, 111, 49,
	16, 2373, 130, 49, 16, 1338, 111, 49, 16, 1338, 130, 49, 16, 516, 110, 1338,
	49, 16, 516, 110, 561, 49, 16, 6664, 2555, 49, 16, 2169, 2555, 49, 16, 1464,
	1741, 49, 16, 1464, 508, 49, 16, 3868, 1741, 49, 16, 3868, 508, 49, 16, 8925,
	811, 49, 16, 2595, 811, 49, 16, 133, 811, 49, 16, 516, 811, 49, 16, 511,
	811, 49, 16, 1254, 811, 49, 16, 451, 2, 999, 811, 49, 16, 748, 2, 1308,
	811, 49, 16, 67, 159, 357, 2, 511, 811, 49, 16, 268, 692, 49, 16, 120,
	692, 49, 16, 125, 268, 692, 49, 16, 58, 692, 81, 49, 16, 58, 692, 74,
	49, 16, 114, 692, 111, 81, 49, 16, 114, 692, 111, 74, 49, 16, 114, 692,
	48, 81, 49, 16, 114, 692, 48, 74, 49, 16, 114, 692, 45, 81, 49, 16,
	114, 692, 45, 74, 49, 16, 114, 692, 130, 81, 49, 16, 114, 692, 130, 74,
	49, 16, 114, 692, 111, 45, 81, 49, 16, 114, 692, 111, 45, 74, 49, 16,
	624, 692, 81, 49, 16, 624, 692, 74, 49, 16, 114, 2, 855, 692, 130, 81,
	49, 16, 114, 2, 855, 692, 130, 74, 49, 16, 471, 692, 49, 16, 11251, 692,
	49, 16, 692, 74, 49, 16, 3742, 692, 49, 16, 1019, 692, 81, 49, 16, 1019,
	692, 74, 49, 16, 393, 49, 16, 2595, 664, 49, 16, 133, 664, 49, 16, 516,
	664, 49, 16, 511, 664, 49, 16, 1254, 664, 49, 16, 451, 2, 999, 664, 49,
	16, 748, 2, 1308, 664, 49, 16, 67, 159, 357, 2, 511, 664, 49, 16, 43,
	749, 49, 16, 43, 10503, 749, 49, 16, 43, 1501, 2, 291, 49, 16, 43, 1501,
	2, 192, 49, 16, 43, 1501, 2, 273, 49, 16, 2222, 1501, 2, 291, 49, 16,
	2222, 1501, 2, 192, 49, 16, 2222, 1501, 2, 273, 49, 16, 43, 5895, 77, 49,
	16, 43, 826, 2, 291, 49, 16, 43, 826, 2, 192, 49, 16, 43, 826, 2,
	273, 49, 16, 43, 826, 2, 349, 49, 16, 43, 826, 2, 387, 49, 16, 1190,
	2116, 49, 16, 591, 2116, 49, 16, 1190, 1498, 49, 16, 591, 1498, 49, 16, 1190,
	3993, 49, 16, 591, 3993, 49, 16, 1190, 3818, 49, 16, 591, 3818, 49, 16, 43,
	344, 49, 16, 43, 2514, 49, 16, 43, 10768, 49, 16, 43, 10546, 49, 16, 43,
	3634, 49, 16, 43, 3634, 2, 2514, 49, 16, 43, 344, 2, 2514, 49, 16, 43,
	8474, 49, 16, 3059, 111, 49, 16, 3059, 130, 49, 16, 43, 7014, 49, 16, 43,
	10081, 49, 16, 43, 3325, 49, 16, 43, 10451, 49, 16, 43, 1378, 49, 16, 43,
	55, 840, 49, 16, 43, 392, 840, 49, 16, 10078, 49, 16, 10599, 49, 16, 250,
	49, 16, 9720, 49, 16, 8799, 49, 16, 7358, 49, 16, 6715, 49, 16, 6907, 49,
	16, 2249, 664, 860, 49, 16, 2249, 664, 433, 860, 49, 16, 10873, 49, 16, 2012,
	49, 16, 359, 2012, 49, 16, 2012, 860, 49, 16, 2012, 111, 49, 16, 367, 89,
	2, 291, 49, 16, 367, 89, 2, 192, 49, 16, 367, 89, 2, 273, 49, 16,
	367, 89, 2, 349, 49, 16, 367, 89, 2, 387, 49, 16, 367, 89, 2, 466,
	49, 16, 367, 89, 2, 568, 49, 16, 367, 89, 2, 772, 49, 16, 367, 89,
	2, 869, 49, 16, 367, 89, 2, 1278, 49, 16, 367, 89, 2, 1180, 49, 16,
	7687, 49, 16, 9082, 49, 16, 591, 95, 10569, 49, 16, 1782, 860, 49, 16, 43,
	130, 1381, 49, 16, 43, 111, 1381, 49, 16, 43, 7683, 49, 16, 43, 10455, 9748,
	49, 16, 2423, 56, 49, 16, 2423, 111, 56, 49, 16, 133, 2423, 56, 49, 16,
	3375, 111, 49, 16, 3375, 130, 49, 16, 8, 7317, 49, 16, 3208, 49, 16, 3208,
	1528, 49, 16, 8745, 49, 16, 1882, 49, 16, 3133, 49, 16, 2478, 81, 49, 16,
	2478, 74, 49, 16, 2355, 49, 16, 2355, 74, 49, 16, 2480, 81, 49, 16, 2480,
	74, 49, 16, 3340, 81, 49, 16, 3340, 74, 49, 16, 1882, 1930, 811, 49, 16,
	1882, 1429, 811, 49, 16, 3133, 811, 49, 16, 2478, 811, 49, 16, 2355, 811, 49,
	16, 2480, 811, 49, 16, 1262, 2425, 1199, 1246, 1930, 49, 16, 1262, 2425, 1199, 1246,
	1429, 49, 16, 1262, 2425, 1199, 1246, 1930, 1789, 2, 291, 49, 16, 1262, 1592, 1199,
	1246, 1930, 49, 16, 1262, 1592, 1199, 1246, 1429, 49, 16, 1262, 1592, 1199, 1246, 1429,
	1789, 2, 291, 49, 16, 1262, 1592, 1199, 1246, 1429, 1789, 2, 192, 49, 16, 1262,
	1592, 1199, 1246, 1429, 1789, 2, 273, 49, 16, 6718, 49, 16, 3381, 104, 975, 49,
	16, 3381, 176, 975, 49, 16, 58, 71, 49, 16, 11242, 49, 16, 9768, 49, 16,
	6541, 49, 16, 3937, 49, 16, 6537, 49, 16, 4092, 49, 16, 3839, 49, 16, 3839,
	3324, 49, 16, 3937, 3324, 49, 16, 4092, 10058, 49, 16, 9692, 10602, 49, 16, 1032,
	104, 975, 49, 16, 1032, 591, 95, 1157, 49, 16, 1032, 69, 664, 49, 16, 1032,
	10031, 56, 49, 16, 1032, 2595, 664, 49, 16, 1032, 133, 664, 49, 16, 1032, 516,
	664, 749, 130, 49, 16, 1032, 516, 664, 749, 111, 49, 16, 1032, 511, 664, 749,
	130, 49, 16, 1032, 511, 664, 749, 111, 49, 16, 1032, 561, 6, 49, 16, 10470,
	49, 16, 8253, 46, 636, 304, 16, 2, 291, 46, 636, 304, 16, 2, 192, 46,
	636, 304, 16, 2, 273, 46, 636, 304, 16, 2, 349, 46, 636, 304, 16, 2,
	387, 46, 636, 304, 16, 2, 466, 46, 636, 304, 16, 2, 568, 46, 636, 304,
	16, 2, 772, 46, 636, 304, 16, 2, 869, 46, 636, 304, 16, 2, 1278, 46,
	636, 304, 16, 2, 1180, 46, 636, 304, 16, 2, 1279, 46, 636, 304, 16, 2,
	1280, 46, 636, 304, 16, 2, 1281, 46, 636, 304, 16, 2, 1365, 46, 636, 304,
	16, 2, 1366, 46, 636, 304, 16, 2, 1521, 46, 636, 304, 16, 2, 1367, 46,
	636, 304, 16, 2, 1726, 46, 636, 304, 16, 2, 2061, 46, 636, 304, 16, 2,
	2062, 46, 636, 304, 16, 2, 2741, 46, 636, 304, 16, 2, 1522, 46, 636, 304,
	16, 2, 1523, 46, 636, 304, 16, 2, 2088, 46, 636, 304, 16, 2, 2089, 46,
	636, 304, 16, 2, 2090, 46, 636, 304, 16, 2, 2091, 46, 636, 304, 16, 2,
	2092, 46, 538, 304, 16, 2, 291, 46, 538, 304, 16, 2, 192, 46, 538, 304,
	16, 2, 349, 46, 538, 304, 16, 2, 387, 46, 538, 304, 16, 2, 568, 46,
	538, 304, 16, 2, 772, 46, 538, 304, 16, 2, 1180, 46, 538, 304, 16, 2,
	1279, 46, 538, 304, 16, 2, 1280, 46, 538, 304, 16, 2, 1281, 46, 538, 304,
	16, 2, 1521, 46, 538, 304, 16, 2, 1367, 46, 538, 304, 16, 2, 1726, 46,
	538, 304, 16, 2, 1522, 46, 538, 304, 16, 2, 1523, 46, 538, 304, 16, 2,
	1732, 46, 538, 304, 16, 2, 1734, 46, 538, 304, 16, 2, 2072, 46, 538, 304,
	16, 2, 2779, 46, 538, 304, 16, 2, 2780, 46, 538, 304, 16, 2, 2781, 46,
	538, 304, 16, 2, 1735, 46, 538, 304, 16, 2, 2080, 46, 538, 304, 16, 2,
	2081, 46, 538, 304, 16, 2, 2082, 46, 538, 304, 16, 2, 2792, 46, 538, 304,
	16, 2, 2793, 46, 538, 304, 16, 2, 2794, 46, 538, 304, 16, 2, 1736, 46,
	538, 304, 16, 2, 2086, 46, 538, 304, 16, 2, 2087, 46, 538, 304, 16, 2,
	2803, 46, 538, 304, 16, 2, 2088, 46, 538, 304, 16, 2, 2089, 46, 538, 304,
	16, 2, 2090, 46, 538, 304, 16, 2, 2091, 46, 538, 304, 16, 2, 2092, 43,
	46, 49, 4105, 43, 46, 49, 4070, 43, 46, 49, 3806, 46, 49, 1446, 766, 307,
	254, 766, 307, 67, 766, 307, 70, 766, 307, 79, 766, 307, 93, 766, 307, 100,
	766, 307, 139, 766, 307, 157, 766, 307, 140, 766, 307, 160, 766, 307, 280, 766,
	307, 944, 766, 307, 865, 766, 307, 1264, 766, 307, 1211, 766, 307, 1024, 766, 307,
	1106, 766, 307, 1251, 766, 307, 1134, 766, 307, 1234, 1152, 54, 848, 1132, 54, 7699,
	848, 1132, 54, 2266, 848, 1132, 54, 3278, 1833, 1132, 54, 3278, 2266, 1132, 54, 848,
	296, 54, 360, 296, 54, 426, 125, 296, 54, 8866, 296, 54, 6151, 296, 54, 3483,
	7, 296, 54, 6688, 296, 54, 5865, 296, 54, 2408, 296, 54, 6274, 788, 296, 54,
	6910, 246, 6991, 296, 54, 6994, 296, 54, 11530, 296, 54, 2273, 296, 54, 9678, 296,
	54, 3882, 296, 54, 1388, 296, 54, 1425, 870, 296, 54, 4169, 296, 54, 3328, 296,
	54, 5723, 296, 54, 10042, 296, 54, 10055, 296, 54, 7118, 296, 54, 2290, 296, 54,
	6682, 296, 54, 7153, 296, 54, 7052, 296, 54, 6448, 296, 54, 6905, 296, 54, 37,
	10056, 296, 54, 9590, 296, 54, 8392, 296, 54, 6542, 296, 54, 8209, 296, 54, 2234,
	296, 54, 10583, 296, 54, 9854, 296, 54, 7374, 296, 54, 10054, 296, 54, 3538, 246,
	8876, 296, 54, 3896, 296, 54, 7584, 83, 3645, 296, 54, 7152, 296, 54, 10574, 296,
	54, 7607, 296, 54, 7157, 296, 54, 87, 296, 54, 10084, 296, 54, 7337, 296, 54,
	11205, 246, 11332, 296, 54, 6680, 296, 54, 1324, 296, 54, 2207, 296, 54, 11079, 296,
	54, 6976, 296, 54, 468, 432, 296, 54, 7614, 296, 54, 2234, 372, 296, 54, 8736,
	296, 54, 5713, 296, 54, 7146, 296, 54, 7023, 296, 54, 4173, 296, 54, 10420, 296,
	54, 3448, 296, 54, 3232, 296, 54, 3212, 296, 54, 6977, 296, 54, 7192, 296, 54,
	10316, 296, 54, 10571, 296, 54, 7682, 296, 54, 2152, 296, 54, 6544, 296, 54, 7279,
	296, 54, 5744, 296, 54, 6669, 296, 54, 347, 487, 11218, 296, 54, 6967, 296, 54,
	8349, 296, 54, 7360, 796, 812, 1005, 23, 67, 796, 812, 1005, 23, 70, 796, 812,
	1005, 23, 79, 796, 812, 1005, 23, 93, 796, 812, 1005, 23, 100, 796, 812, 1005,
	23, 139, 796, 812, 1005, 23, 157, 796, 812, 1005, 23, 140, 796, 812, 1005, 23,
	160, 796, 812, 1055, 23, 67, 796, 812, 1055, 23, 70, 796, 812, 1055, 23, 79,
	796, 812, 1055, 23, 93, 796, 812, 1055, 23, 100, 796, 812, 1055, 23, 139, 796,
	812, 1055, 23, 157, 796, 812, 1055, 23, 140, 796, 812, 1055, 23, 160, 188, 1350,
	56, 67, 188, 1350, 56, 70, 188, 1350, 56, 79, 188, 1350, 56, 93, 188, 1350,
	56, 100, 1350, 56, 67, 1350, 56, 100, 19, 37, 10, 24, 19, 37, 10, 71,
	19, 37, 10, 104, 19, 37, 10, 98, 19, 37, 10, 51, 19, 37, 10, 176,
	19, 37, 10, 220, 19, 37, 10, 235, 19, 37, 10, 73, 19, 37, 10, 278,
	19, 37, 10, 227, 19, 37, 10, 136, 19, 37, 10, 205, 19, 37, 10, 151,
	19, 37, 10, 68, 19, 37, 10, 249, 19, 37, 10, 389, 19, 37, 10, 122,
	19, 37, 10, 121, 19, 37, 10, 221, 19, 37, 10, 60, 19, 37, 10, 229,
	19, 37, 10, 290, 19, 37, 10, 268, 19, 37, 10, 218, 19, 37, 10, 250,
	19, 37, 7, 24, 19, 37, 7, 71, 19, 37, 7, 104, 19, 37, 7, 98,
	19, 37, 7, 51, 19, 37, 7, 176, 19, 37, 7, 220, 19, 37, 7, 235,
	19, 37, 7, 73, 19, 37, 7, 278, 19, 37, 7, 227, 19, 37, 7, 136,
	19, 37, 7, 205, 19, 37, 7, 151, 19, 37, 7, 68, 19, 37, 7, 249,
	19, 37, 7, 389, 19, 37, 7, 122, 19, 37, 7, 121, 19, 37, 7, 221,
	19, 37, 7, 60, 19, 37, 7, 229, 19, 37, 7, 290, 19, 37, 7, 268,
	19, 37, 7, 218, 19, 37, 7, 250, 19, 59, 10, 24, 19, 59, 10, 71,
	19, 59, 10, 104, 19, 59, 10, 98, 19, 59, 10, 51, 19, 59, 10, 176,
	19, 59, 10, 220, 19, 59, 10, 235, 19, 59, 10, 73, 19, 59, 10, 278,
	19, 59, 10, 227, 19, 59, 10, 136, 19, 59, 10, 205, 19, 59, 10, 151,
	19, 59, 10, 68, 19, 59, 10, 249, 19, 59, 10, 389, 19, 59, 10, 122,
	19, 59, 10, 121, 19, 59, 10, 221, 19, 59, 10, 60, 19, 59, 10, 229,
	19, 59, 10, 290, 19, 59, 10, 268, 19, 59, 10, 218, 19, 59, 10, 250,
	19, 59, 7, 24, 19, 59, 7, 71, 19, 59, 7, 104, 19, 59, 7, 98,
	19, 59, 7, 51, 19, 59, 7, 176, 19, 59, 7, 220, 19, 59, 7, 73,
	19, 59, 7, 278, 19, 59, 7, 227, 19, 59, 7, 136, 19, 59, 7, 205,
	19, 59, 7, 151, 19, 59, 7, 68, 19, 59, 7, 249, 19, 59, 7, 389,
	19, 59, 7, 122, 19, 59, 7, 121, 19, 59, 7, 221, 19, 59, 7, 60,
	19, 59, 7, 229, 19, 59, 7, 290, 19, 59, 7, 268, 19, 59, 7, 218,
	19, 59, 7, 250, 19, 37, 59, 10, 24, 19, 37, 59, 10, 71, 19, 37,
	59, 10, 104, 19, 37, 59, 10, 98, 19, 37, 59, 10, 51, 19, 37, 59,
	10, 176, 19, 37, 59, 10, 220, 19, 37, 59, 10, 235, 19, 37, 59, 10,
	73, 19, 37, 59, 10, 278, 19, 37, 59, 10, 227, 19, 37, 59, 10, 136,
	19, 37, 59, 10, 205, 19, 37, 59, 10, 151, 19, 37, 59, 10, 68, 19,
	37, 59, 10, 249, 19, 37, 59, 10, 389, 19, 37, 59, 10, 122, 19, 37,
	59, 10, 121, 19, 37, 59, 10, 221, 19, 37, 59, 10, 60, 19, 37, 59,
	10, 229, 19, 37, 59, 10, 290, 19, 37, 59, 10, 268, 19, 37, 59, 10,
	218, 19, 37, 59, 10, 250, 19, 37, 59, 7, 24, 19, 37, 59, 7, 71,
	19, 37, 59, 7, 104, 19, 37, 59, 7, 98, 19, 37, 59, 7, 51, 19,
	37, 59, 7, 176, 19, 37, 59, 7, 220, 19, 37, 59, 7, 235, 19, 37,
	59, 7, 73, 19, 37, 59, 7, 278, 19, 37, 59, 7, 227, 19, 37, 59,
	7, 136, 19, 37, 59, 7, 205, 19, 37, 59, 7, 151, 19, 37, 59, 7,
	68, 19, 37, 59, 7, 249, 19, 37, 59, 7, 389, 19, 37, 59, 7, 122,
	19, 37, 59, 7, 121, 19, 37, 59, 7, 221, 19, 37, 59, 7, 60, 19,
	37, 59, 7, 229, 19, 37, 59, 7, 290, 19, 37, 59, 7, 268, 19, 37,
	59, 7, 218, 19, 37, 59, 7, 250, 19, 35, 10, 24, 19, 35, 10, 104,
	19, 35, 10, 98, 19, 35, 10, 220, 19, 35, 10, 278, 19, 35, 10, 227,
	19, 35, 10, 151, 19, 35, 10, 68, 19, 35, 10, 249, 19, 35, 10, 389,
	19, 35, 10, 121, 19, 35, 10, 221, 19, 35, 10, 60, 19, 35, 10, 229,
	19, 35, 10, 290, 19, 35, 10, 268, 19, 35, 10, 218, 19, 35, 10, 250,
	19, 35, 7, 24, 19, 35, 7, 71, 19, 35, 7, 104, 19, 35, 7, 98,
	19, 35, 7, 176, 19, 35, 7, 235, 19, 35, 7, 73, 19, 35, 7, 278,
	19, 35, 7, 227, 19, 35, 7, 136, 19, 35, 7, 205, 19, 35, 7, 151,
	19, 35, 7, 249, 19, 35, 7, 389, 19, 35, 7, 122, 19, 35, 7, 121,
	19, 35, 7, 221, 19, 35, 7, 60, 19, 35, 7, 229, 19, 35, 7, 290,
	19, 35, 7, 268, 19, 35, 7, 218, 19, 35, 7, 250, 19, 37, 35, 10,
	24, 19, 37, 35, 10, 71, 19, 37, 35, 10, 104, 19, 37, 35, 10, 98,
	19, 37, 35, 10, 51, 19, 37, 35, 10, 176, 19, 37, 35, 10, 220, 19,
	37, 35, 10, 235, 19, 37, 35, 10, 73, 19, 37, 35, 10, 278, 19, 37,
	35, 10, 227, 19, 37, 35, 10, 136, 19, 37, 35, 10, 205, 19, 37, 35,
	10, 151, 19, 37, 35, 10, 68, 19, 37, 35, 10, 249, 19, 37, 35, 10,
	389, 19, 37, 35, 10, 122, 19, 37, 35, 10, 121, 19, 37, 35, 10, 221,
	19, 37, 35, 10, 60, 19, 37, 35, 10, 229, 19, 37, 35, 10, 290, 19,
	37, 35, 10, 268, 19, 37, 35, 10, 218, 19, 37, 35, 10, 250, 19, 37,
	35, 7, 24, 19, 37, 35, 7, 71, 19, 37, 35, 7, 104, 19, 37, 35,
	7, 98, 19, 37, 35, 7, 51, 19, 37, 35, 7, 176, 19, 37, 35, 7,
	220, 19, 37, 35, 7, 235, 19, 37, 35, 7, 73, 19, 37, 35, 7, 278,
	19, 37, 35, 7, 227, 19, 37, 35, 7, 136, 19, 37, 35, 7, 205, 19,
	37, 35, 7, 151, 19, 37, 35, 7, 68, 19, 37, 35, 7, 249, 19, 37,
	35, 7, 389, 19, 37, 35, 7, 122, 19, 37, 35, 7, 121, 19, 37, 35,
	7, 221, 19, 37, 35, 7, 60, 19, 37, 35, 7, 229, 19, 37, 35, 7,
	290, 19, 37, 35, 7, 268, 19, 37, 35, 7, 218, 19, 37, 35, 7, 250,
	19, 232, 10, 24, 19, 232, 10, 71, 19, 232, 10, 98, 19, 232, 10, 51,
	19, 232, 10, 176, 19, 232, 10, 220, 19, 232, 10, 278, 19, 232, 10, 227,
	19, 232, 10, 136, 19, 232, 10, 205, 19, 232, 10, 151, 19, 232, 10, 68,
	19, 232, 10, 249, 19, 232, 10, 389, 19, 232, 10, 121, 19, 232, 10, 221,
	19, 232, 10, 60, 19, 232, 10, 229, 19, 232, 10, 290, 19, 232, 10, 268,
	19, 232, 10, 218, 19, 232, 7, 24, 19, 232, 7, 71, 19, 232, 7, 104,
	19, 232, 7, 98, 19, 232, 7, 51, 19, 232, 7, 176, 19, 232, 7, 220,
	19, 232, 7, 235, 19, 232, 7, 73, 19, 232, 7, 278, 19, 232, 7, 227,
	19, 232, 7, 136, 19, 232, 7, 205, 19, 232, 7, 151, 19, 232, 7, 68,
	19, 232, 7, 249, 19, 232, 7, 389, 19, 232, 7, 122, 19, 232, 7, 121,
	19, 232, 7, 221, 19, 232, 7, 60, 19, 232, 7, 229, 19, 232, 7, 290,
	19, 232, 7, 268, 19, 232, 7, 218, 19, 232, 7, 250, 19, 55, 2, 241,
	10, 24, 19, 55, 2, 241, 10, 71, 19, 55, 2, 241, 10, 98, 19, 55,
	2, 241, 10, 51, 19, 55, 2, 241, 10, 176, 19, 55, 2, 241, 10, 220,
	19, 55, 2, 241, 10, 73, 19, 55, 2, 241, 10, 278, 19, 55, 2, 241,
	10, 227, 19, 55, 2, 241, 10, 136, 19, 55, 2, 241, 10, 205, 19, 55,
	2, 241, 10, 68, 19, 55, 2, 241, 10, 121, 19, 55, 2, 241, 10, 221,
	19, 55, 2, 241, 10, 60, 19, 55, 2, 241, 10, 229, 19, 55, 2, 241,
	10, 290, 19, 55, 2, 241, 10, 268, 19, 55, 2, 241, 10, 218, 19, 55,
	2, 241, 7, 24, 19, 55, 2, 241, 7, 71, 19, 55, 2, 241, 7, 104,
	19, 55, 2, 241, 7, 98, 19, 55, 2, 241, 7, 51, 19, 55, 2, 241,
	7, 176, 19, 55, 2, 241, 7, 220, 19, 55, 2, 241, 7, 235, 19, 55,
	2, 241, 7, 73, 19, 55, 2, 241, 7, 278, 19, 55, 2, 241, 7, 227,
	19, 55, 2, 241, 7, 136, 19, 55, 2, 241, 7, 205, 19, 55, 2, 241,
	7, 151, 19, 55, 2, 241, 7, 68, 19, 55, 2, 241, 7, 249, 19, 55,
	2, 241, 7, 389, 19, 55, 2, 241, 7, 122, 19, 55, 2, 241, 7, 121,
	19, 55, 2, 241, 7, 221, 19, 55, 2, 241, 7, 60, 19, 55, 2, 241,
	7, 229, 19, 55, 2, 241, 7, 290, 19, 55, 2, 241, 7, 268, 19, 55,
	2, 241, 7, 218, 19, 55, 2, 241, 7, 250, 19, 37, 232, 10, 24, 19,
	37, 232, 10, 71, 19, 37, 232, 10, 104, 19, 37, 232, 10, 98, 19, 37,
	232, 10, 51, 19, 37, 232, 10, 176, 19, 37, 232, 10, 220, 19, 37, 232,
	10, 235, 19, 37, 232, 10, 73, 19, 37, 232, 10, 278, 19, 37, 232, 10,
	227, 19, 37, 232, 10, 136, 19, 37, 232, 10, 205, 19, 37, 232, 10, 151,
	19, 37, 232, 10, 68, 19, 37, 232, 10, 249, 19, 37, 232, 10, 389, 19,
	37, 232, 10, 122, 19, 37, 232, 10, 121, 19, 37, 232, 10, 221, 19, 37,
	232, 10, 60, 19, 37, 232, 10, 229, 19, 37, 232, 10, 290, 19, 37, 232,
	10, 268, 19, 37, 232, 10, 218, 19, 37, 232, 10, 250, 19, 37, 232, 7,
	24, 19, 37, 232, 7, 71, 19, 37, 232, 7, 104, 19, 37, 232, 7, 98,
	19, 37, 232, 7, 51, 19, 37, 232, 7, 176, 19, 37, 232, 7, 220, 19,
	37, 232, 7, 235, 19, 37, 232, 7, 73, 19, 37, 232, 7, 278, 19, 37,
	232, 7, 227, 19, 37, 232, 7, 136, 19, 37, 232, 7, 205, 19, 37, 232,
	7, 151, 19, 37, 232, 7, 68, 19, 37, 232, 7, 249, 19, 37, 232, 7,
	389, 19, 37, 232, 7, 122, 19, 37, 232, 7, 121, 19, 37, 232, 7, 221,
	19, 37, 232, 7, 60, 19, 37, 232, 7, 229, 19, 37, 232, 7, 290, 19,
	37, 232, 7, 268, 19, 37, 232, 7, 218, 19, 37, 232, 7, 250, 19, 66,
	2, 64, 10, 24, 19, 66, 2, 64, 10, 71, 19, 66, 2, 64, 10, 104,
	19, 66, 2, 64, 10, 98, 19, 66, 2, 64, 10, 51, 19, 66, 2, 64,
	10, 176, 19, 66, 2, 64, 10, 220, 19, 66, 2, 64, 10, 235, 19, 66,
	2, 64, 10, 73, 19, 66, 2, 64, 10, 278, 19, 66, 2, 64, 10, 227,
	19, 66, 2, 64, 10, 136, 19, 66, 2, 64, 10, 205, 19, 66, 2, 64,
	10, 151, 19, 66, 2, 64, 10, 68, 19, 66, 2, 64, 10, 249, 19, 66,
	2, 64, 10, 389, 19, 66, 2, 64, 10, 122, 19, 66, 2, 64, 10, 121,
	19, 66, 2, 64, 10, 221, 19, 66, 2, 64, 10, 60, 19, 66, 2, 64,
	10, 229, 19, 66, 2, 64, 10, 290, 19, 66, 2, 64, 10, 268, 19, 66,
	2, 64, 10, 218, 19, 66, 2, 64, 10, 250, 19, 66, 2, 64, 7, 24,
	19, 66, 2, 64, 7, 71, 19, 66, 2, 64, 7, 104, 19, 66, 2, 64,
	7, 98, 19, 66, 2, 64, 7, 51, 19, 66, 2, 64, 7, 176, 19, 66,
	2, 64, 7, 220, 19, 66, 2, 64, 7, 235, 19, 66, 2, 64, 7, 73,
	19, 66, 2, 64, 7, 278, 19, 66, 2, 64, 7, 227, 19, 66, 2, 64,
	7, 136, 19, 66, 2, 64, 7, 205, 19, 66, 2, 64, 7, 151, 19, 66,
	2, 64, 7, 68, 19, 66, 2, 64, 7, 249, 19, 66, 2, 64, 7, 389,
	19, 66, 2, 64, 7, 122, 19, 66, 2, 64, 7, 121, 19, 66, 2, 64,
	7, 221, 19, 66, 2, 64, 7, 60, 19, 66, 2, 64, 7, 229, 19, 66,
	2, 64, 7, 290, 19, 66, 2, 64, 7, 268, 19, 66, 2, 64, 7, 218,
	19, 66, 2, 64, 7, 250, 19, 66, 2, 64, 37, 10, 24, 19, 66, 2,
	64, 37, 10, 71, 19, 66, 2, 64, 37, 10, 104, 19, 66, 2, 64, 37,
	10, 98, 19, 66, 2, 64, 37, 10, 51, 19, 66, 2, 64, 37, 10, 176,
	19, 66, 2, 64, 37, 10, 220, 19, 66, 2, 64, 37, 10, 235, 19, 66,
	2, 64, 37, 10, 73, 19, 66, 2, 64, 37, 10, 278, 19, 66, 2, 64,
	37, 10, 227, 19, 66, 2, 64, 37, 10, 136, 19, 66, 2, 64, 37, 10,
	205, 19, 66, 2, 64, 37, 10, 151, 19, 66, 2, 64, 37, 10, 68, 19,
	66, 2, 64, 37, 10, 249, 19, 66, 2, 64, 37, 10, 389, 19, 66, 2,
	64, 37, 10, 122, 19, 66, 2, 64, 37, 10, 121, 19, 66, 2, 64, 37,
	10, 221, 19, 66, 2, 64, 37, 10, 60, 19, 66, 2, 64, 37, 10, 229,
	19, 66, 2, 64, 37, 10, 290, 19, 66, 2, 64, 37, 10, 268, 19, 66,
	2, 64, 37, 10, 218, 19, 66, 2, 64, 37, 10, 250, 19, 66, 2, 64,
	37, 7, 24, 19, 66, 2, 64, 37, 7, 71, 19, 66, 2, 64, 37, 7,
	104, 19, 66, 2, 64, 37, 7, 98, 19, 66, 2, 64, 37, 7, 51, 19,
	66, 2, 64, 37, 7, 176, 19, 66, 2, 64, 37, 7, 220, 19, 66, 2,
	64, 37, 7, 235, 19, 66, 2, 64, 37, 7, 73, 19, 66, 2, 64, 37,
	7, 278, 19, 66, 2, 64, 37, 7, 227, 19, 66, 2, 64, 37, 7, 136,
	19, 66, 2, 64, 37, 7, 205, 19, 66, 2, 64, 37, 7, 151, 19, 66,
	2, 64, 37, 7, 68, 19, 66, 2, 64, 37, 7, 249, 19, 66, 2, 64,
	37, 7, 389, 19, 66, 2, 64, 37, 7, 122, 19, 66, 2, 64, 37, 7,
	121, 19, 66, 2, 64, 37, 7, 221, 19, 66, 2, 64, 37, 7, 60, 19,
	66, 2, 64, 37, 7, 229, 19, 66, 2, 64, 37, 7, 290, 19, 66, 2,
	64, 37, 7, 268, 19, 66, 2, 64, 37, 7, 218, 19, 66, 2, 64, 37,
	7, 250, 19, 66, 2, 64, 59, 10, 24, 19, 66, 2, 64, 59, 10, 71,
	19, 66, 2, 64, 59, 10, 104, 19, 66, 2, 64, 59, 10, 98, 19, 66,
	2, 64, 59, 10, 51, 19, 66, 2, 64, 59, 10, 176, 19, 66, 2, 64,
	59, 10, 220, 19, 66, 2, 64, 59, 10, 235, 19, 66, 2, 64, 59, 10,
	73, 19, 66, 2, 64, 59, 10, 278, 19, 66, 2, 64, 59, 10, 227, 19,
	66, 2, 64, 59, 10, 136, 19, 66, 2, 64, 59, 10, 205, 19, 66, 2,
	64, 59, 10, 151, 19, 66, 2, 64, 59, 10, 68, 19, 66, 2, 64, 59,
	10, 249, 19, 66, 2, 64, 59, 10, 389, 19, 66, 2, 64, 59, 10, 122,
	19, 66, 2, 64, 59, 10, 121, 19, 66, 2, 64, 59, 10, 221, 19, 66,
	2, 64, 59, 10, 60, 19, 66, 2, 64, 59, 10, 229, 19, 66, 2, 64,
	59, 10, 290, 19, 66, 2, 64, 59, 10, 268, 19, 66, 2, 64, 59, 10,
	218, 19, 66, 2, 64, 59, 10, 250, 19, 66, 2, 64, 59, 7, 24, 19,
	66, 2, 64, 59, 7, 71, 19, 66, 2, 64, 59, 7, 104, 19, 66, 2,
	64, 59, 7, 98, 19, 66, 2, 64, 59, 7, 51, 19, 66, 2, 64, 59,
	7, 176, 19, 66, 2, 64, 59, 7, 220, 19, 66, 2, 64, 59, 7, 235,
	19, 66, 2, 64, 59, 7, 73, 19, 66, 2, 64, 59, 7, 278, 19, 66,
	2, 64, 59, 7, 227, 19, 66, 2, 64, 59, 7, 136, 19, 66, 2, 64,
	59, 7, 205, 19, 66, 2, 64, 59, 7, 151, 19, 66, 2, 64, 59, 7,
	68, 19, 66, 2, 64, 59, 7, 249, 19, 66, 2, 64, 59, 7, 389, 19,
	66, 2, 64, 59, 7, 122, 19, 66, 2, 64, 59, 7, 121, 19, 66, 2,
	64, 59, 7, 221, 19, 66, 2, 64, 59, 7, 60, 19, 66, 2, 64, 59,
	7, 229, 19, 66, 2, 64, 59, 7, 290, 19, 66, 2, 64, 59, 7, 268,
	19, 66, 2, 64, 59, 7, 218, 19, 66, 2, 64, 59, 7, 250, 19, 66,
	2, 64, 37, 59, 10, 24, 19, 66, 2, 64, 37, 59, 10, 71, 19, 66,
	2, 64, 37, 59, 10, 104, 19, 66, 2, 64, 37, 59, 10, 98, 19, 66,
	2, 64, 37, 59, 10, 51, 19, 66, 2, 64, 37, 59, 10, 176, 19, 66,
	2, 64, 37, 59, 10, 220, 19, 66, 2, 64, 37, 59, 10, 235, 19, 66,
	2, 64, 37, 59, 10, 73, 19, 66, 2, 64, 37, 59, 10, 278, 19, 66,
	2, 64, 37, 59, 10, 227, 19, 66, 2, 64, 37, 59, 10, 136, 19, 66,
	2, 64, 37, 59, 10, 205, 19, 66, 2, 64, 37, 59, 10, 151, 19, 66,
	2, 64, 37, 59, 10, 68, 19, 66, 2, 64, 37, 59, 10, 249, 19, 66,
	2, 64, 37, 59, 10, 389, 19, 66, 2, 64, 37, 59, 10, 122, 19, 66,
	2, 64, 37, 59, 10, 121, 19, 66, 2, 64, 37, 59, 10, 221, 19, 66,
	2, 64, 37, 59, 10, 60, 19, 66, 2, 64, 37, 59, 10, 229, 19, 66,
	2, 64, 37, 59, 10, 290, 19, 66, 2, 64, 37, 59, 10, 268, 19, 66,
	2, 64, 37, 59, 10, 218, 19, 66, 2, 64, 37, 59, 10, 250, 19, 66,
	2, 64, 37, 59, 7, 24, 19, 66, 2, 64, 37, 59, 7, 71, 19, 66,
	2, 64, 37, 59, 7, 104, 19, 66, 2, 64, 37, 59, 7, 98, 19, 66,
	2, 64, 37, 59, 7, 51, 19, 66, 2, 64, 37, 59, 7, 176, 19, 66,
	2, 64, 37, 59, 7, 220, 19, 66, 2, 64, 37, 59, 7, 235, 19, 66,
	2, 64, 37, 59, 7, 73, 19, 66, 2, 64, 37, 59, 7, 278, 19, 66,
	2, 64, 37, 59, 7, 227, 19, 66, 2, 64, 37, 59, 7, 136, 19, 66,
	2, 64, 37, 59, 7, 205, 19, 66, 2, 64, 37, 59, 7, 151, 19, 66,
	2, 64, 37, 59, 7, 68, 19, 66, 2, 64, 37, 59, 7, 249, 19, 66,
	2, 64, 37, 59, 7, 389, 19, 66, 2, 64, 37, 59, 7, 122, 19, 66,
	2, 64, 37, 59, 7, 121, 19, 66, 2, 64, 37, 59, 7, 221, 19, 66,
	2, 64, 37, 59, 7, 60, 19, 66, 2, 64, 37, 59, 7, 229, 19, 66,
	2, 64, 37, 59, 7, 290, 19, 66, 2, 64, 37, 59, 7, 268, 19, 66,
	2, 64, 37, 59, 7, 218, 19, 66, 2, 64, 37, 59, 7, 250, 19, 378,
	10, 24, 19, 378, 10, 71, 19, 378, 10, 104, 19, 378, 10, 98, 19, 378,
	10, 51, 19, 378, 10, 176, 19, 378, 10, 220, 19, 378, 10, 235, 19, 378,
	10, 73, 19, 378, 10, 278, 19, 378, 10, 227, 19, 378, 10, 136, 19, 378,
	10, 205, 19, 378, 10, 151, 19, 378, 10, 68, 19, 378, 10, 249, 19, 378,
	10, 389, 19, 378, 10, 122, 19, 378, 10, 121, 19, 378, 10, 221, 19, 378,
	10, 60, 19, 378, 10, 229, 19, 378, 10, 290, 19, 378, 10, 268, 19, 378,
	10, 218, 19, 378, 10, 250, 19, 378, 7, 24, 19, 378, 7, 71, 19, 378,
	7, 104, 19, 378, 7, 98, 19, 378, 7, 51, 19, 378, 7, 176, 19, 378,
	7, 220, 19, 378, 7, 235, 19, 378, 7, 73, 19, 378, 7, 278, 19, 378,
	7, 227, 19, 378, 7, 136, 19, 378, 7, 205, 19, 378, 7, 151, 19, 378,
	7, 68, 19, 378, 7, 249, 19, 378, 7, 389, 19, 378, 7, 122, 19, 378,
	7, 121, 19, 378, 7, 221, 19, 378, 7, 60, 19, 378, 7, 229, 19, 378,
	7, 290, 19, 378, 7, 268, 19, 378, 7, 218, 19, 378, 7, 250, 19, 59,
	7, 743, 73, 19, 59, 7, 743, 278, 19, 37, 10, 331, 19, 37, 10, 779,
	19, 37, 10, 727, 19, 37, 10, 760, 19, 37, 10, 525, 19, 37, 10, 968,
	19, 37, 10, 406, 19, 37, 10, 697, 19, 37, 10, 415, 19, 37, 10, 804,
	19, 37, 10, 917, 19, 37, 10, 460, 19, 37, 10, 555, 19, 37, 10, 900,
	19, 37, 10, 608, 19, 37, 10, 427, 19, 37, 10, 649, 19, 37, 10, 697,
	16, 19, 37, 10, 683, 19, 37, 10, 815, 19, 37, 10, 456, 19, 37, 10,
	694, 19, 37, 10, 671, 19, 37, 10, 836, 19, 37, 10, 327, 19, 37, 1455,
	19, 37, 7, 331, 19, 37, 7, 779, 19, 37, 7, 727, 19, 37, 7, 760,
	19, 37, 7, 525, 19, 37, 7, 968, 19, 37, 7, 406, 19, 37, 7, 697,
	19, 37, 7, 415, 19, 37, 7, 804, 19, 37, 7, 917, 19, 37, 7, 460,
	19, 37, 7, 555, 19, 37, 7, 900, 19, 37, 7, 608, 19, 37, 7, 427,
	19, 37, 7, 649, 19, 37, 7, 69, 683, 19, 37, 7, 683, 19, 37, 7,
	815, 19, 37, 7, 456, 19, 37, 7, 694, 19, 37, 7, 671, 19, 37, 7,
	836, 19, 37, 7, 327, 19, 37, 1467, 1395, 19, 37, 525, 16, 19, 37, 697,
	16, 19, 37, 804, 16, 19, 37, 694, 16, 19, 37, 649, 16, 19, 37, 427,
	16, 19, 59, 10, 331, 19, 59, 10, 779, 19, 59, 10, 727, 19, 59, 10,
	760, 19, 59, 10, 525, 19, 59, 10, 968, 19, 59, 10, 406, 19, 59, 10,
	697, 19, 59, 10, 415, 19, 59, 10, 804, 19, 59, 10, 917, 19, 59, 10,
	460, 19, 59, 10, 555, 19, 59, 10, 900, 19, 59, 10, 608, 19, 59, 10,
	427, 19, 59, 10, 649, 19, 59, 10, 697, 16, 19, 59, 10, 683, 19, 59,
	10, 815, 19, 59, 10, 456, 19, 59, 10, 694, 19, 59, 10, 671, 19, 59,
	10, 836, 19, 59, 10, 327, 19, 59, 1455, 19, 59, 7, 331, 19, 59, 7,
	779, 19, 59, 7, 727, 19, 59, 7, 760, 19, 59, 7, 525, 19, 59, 7,
	968, 19, 59, 7, 406, 19, 59, 7, 697, 19, 59, 7, 415, 19, 59, 7,
	804, 19, 59, 7, 917, 19, 59, 7, 460, 19, 59, 7, 555, 19, 59, 7,
	900, 19, 59, 7, 608, 19, 59, 7, 427, 19, 59, 7, 649, 19, 59, 7,
	69, 683, 19, 59, 7, 683, 19, 59, 7, 815, 19, 59, 7, 456, 19, 59,
	7, 694, 19, 59, 7, 671, 19, 59, 7, 836, 19, 59, 7, 327, 19, 59,
	1467, 1395, 19, 59, 525, 16, 19, 59, 697, 16, 19, 59, 804, 16, 19, 59,
	694, 16, 19, 59, 649, 16, 19, 59, 427, 16, 19, 37, 59, 10, 331, 19,
	37, 59, 10, 779, 19, 37, 59, 10, 727, 19, 37, 59, 10, 760, 19, 37,
	59, 10, 525, 19, 37, 59, 10, 968, 19, 37, 59, 10, 406, 19, 37, 59,
	10, 697, 19, 37, 59, 10, 415, 19, 37, 59, 10, 804, 19, 37, 59, 10,
	917, 19, 37, 59, 10, 460, 19, 37, 59, 10, 555, 19, 37, 59, 10, 900,
	19, 37, 59, 10, 608, 19, 37, 59, 10, 427, 19, 37, 59, 10, 649, 19,
	37, 59, 10, 697, 16, 19, 37, 59, 10, 683, 19, 37, 59, 10, 815, 19,
	37, 59, 10, 456, 19, 37, 59, 10, 694, 19, 37, 59, 10, 671, 19, 37,
	59, 10, 836, 19, 37, 59, 10, 327, 19, 37, 59, 1455, 19, 37, 59, 7,
	331, 19, 37, 59, 7, 779, 19, 37, 59, 7, 727, 19, 37, 59, 7, 760,
	19, 37, 59, 7, 525, 19, 37, 59, 7, 968, 19, 37, 59, 7, 406, 19,
	37, 59, 7, 697, 19, 37, 59, 7, 415, 19, 37, 59, 7, 804, 19, 37,
	59, 7, 917, 19, 37, 59, 7, 460, 19, 37, 59, 7, 555, 19, 37, 59,
	7, 900, 19, 37, 59, 7, 608, 19, 37, 59, 7, 427, 19, 37, 59, 7,
	649, 19, 37, 59, 7, 69, 683, 19, 37, 59, 7, 683, 19, 37, 59, 7,
	815, 19, 37, 59, 7, 456, 19, 37, 59, 7, 694, 19, 37, 59, 7, 671,
	19, 37, 59, 7, 836, 19, 37, 59, 7, 327, 19, 37, 59, 1467, 1395, 19,
	37, 59, 525, 16, 19, 37, 59, 697, 16, 19, 37, 59, 804, 16, 19, 37,
	59, 694, 16, 19, 37, 59, 649, 16, 19, 37, 59, 427, 16, 19, 66, 2,
	64, 37, 10, 331, 19, 66, 2, 64, 37, 10, 779, 19, 66, 2, 64, 37,
	10, 727, 19, 66, 2, 64, 37, 10, 760, 19, 66, 2, 64, 37, 10, 525,
	19, 66, 2, 64, 37, 10, 968, 19, 66, 2, 64, 37, 10, 406, 19, 66,
	2, 64, 37, 10, 697, 19, 66, 2, 64, 37, 10, 415, 19, 66, 2, 64,
	37, 10, 804, 19, 66, 2, 64, 37, 10, 917, 19, 66, 2, 64, 37, 10,
	460, 19, 66, 2, 64, 37, 10, 555, 19, 66, 2, 64, 37, 10, 900, 19,
	66, 2, 64, 37, 10, 608, 19, 66, 2, 64, 37, 10, 427, 19, 66, 2,
	64, 37, 10, 649, 19, 66, 2, 64, 37, 10, 697, 16, 19, 66, 2, 64,
	37, 10, 683, 19, 66, 2, 64, 37, 10, 815, 19, 66, 2, 64, 37, 10,
	456, 19, 66, 2, 64, 37, 10, 694, 19, 66, 2, 64, 37, 10, 671, 19,
	66, 2, 64, 37, 10, 836, 19, 66, 2, 64, 37, 10, 327, 19, 66, 2,
	64, 37, 1455, 19, 66, 2, 64, 37, 7, 331, 19, 66, 2, 64, 37, 7,
	779, 19, 66, 2, 64, 37, 7, 727, 19, 66, 2, 64, 37, 7, 760, 19,
	66, 2, 64, 37, 7, 525, 19, 66, 2, 64, 37, 7, 968, 19, 66, 2,
	64, 37, 7, 406, 19, 66, 2, 64, 37, 7, 697, 19, 66, 2, 64, 37,
	7, 415, 19, 66, 2, 64, 37, 7, 804, 19, 66, 2, 64, 37, 7, 917,
	19, 66, 2, 64, 37, 7, 460, 19, 66, 2, 64, 37, 7, 555, 19, 66,
	2, 64, 37, 7, 900, 19, 66, 2, 64, 37, 7, 608, 19, 66, 2, 64,
	37, 7, 427, 19, 66, 2, 64, 37, 7, 649, 19, 66, 2, 64, 37, 7,
	69, 683, 19, 66, 2, 64, 37, 7, 683, 19, 66, 2, 64, 37, 7, 815,
	19, 66, 2, 64, 37, 7, 456, 19, 66, 2, 64, 37, 7, 694, 19, 66,
	2, 64, 37, 7, 671, 19, 66, 2, 64, 37, 7, 836, 19, 66, 2, 64,
	37, 7, 327, 19, 66, 2, 64, 37, 1467, 1395, 19, 66, 2, 64, 37, 525,
	16, 19, 66, 2, 64, 37, 697, 16, 19, 66, 2, 64, 37, 804, 16, 19,
	66, 2, 64, 37, 694, 16, 19, 66, 2, 64, 37, 649, 16, 19, 66, 2,
	64, 37, 427, 16, 19, 66, 2, 64, 37, 59, 10, 331, 19, 66, 2, 64,
	37, 59, 10, 779, 19, 66, 2, 64, 37, 59, 10, 727, 19, 66, 2, 64,
	37, 59, 10, 760, 19, 66, 2, 64, 37, 59, 10, 525, 19, 66, 2, 64,
	37, 59, 10, 968, 19, 66, 2, 64, 37, 59, 10, 406, 19, 66, 2, 64,
	37, 59, 10, 697, 19, 66, 2, 64, 37, 59, 10, 415, 19, 66, 2, 64,
	37, 59, 10, 804, 19, 66, 2, 64, 37, 59, 10, 917, 19, 66, 2, 64,
	37, 59, 10, 460, 19, 66, 2, 64, 37, 59, 10, 555, 19, 66, 2, 64,
	37, 59, 10, 900, 19, 66, 2, 64, 37, 59, 10, 608, 19, 66, 2, 64,
	37, 59, 10, 427, 19, 66, 2, 64, 37, 59, 10, 649, 19, 66, 2, 64,
	37, 59, 10, 697, 16, 19, 66, 2, 64, 37, 59, 10, 683, 19, 66, 2,
	64, 37, 59, 10, 815, 19, 66, 2, 64, 37, 59, 10, 456, 19, 66, 2,
	64, 37, 59, 10, 694, 19, 66, 2, 64, 37, 59, 10, 671, 19, 66, 2,
	64, 37, 59, 10, 836, 19, 66, 2, 64, 37, 59, 10, 327, 19, 66, 2,
	64, 37, 59, 1455, 19, 66, 2, 64, 37, 59, 7, 331, 19, 66, 2, 64,
	37, 59, 7, 779, 19, 66, 2, 64, 37, 59, 7, 727, 19, 66, 2, 64,
	37, 59, 7, 760, 19, 66, 2, 64, 37, 59, 7, 525, 19, 66, 2, 64,
	37, 59, 7, 968, 19, 66, 2, 64, 37, 59, 7, 406, 19, 66, 2, 64,
	37, 59, 7, 697, 19, 66, 2, 64, 37, 59, 7, 415, 19, 66, 2, 64,
	37, 59, 7, 804, 19, 66, 2, 64, 37, 59, 7, 917, 19, 66, 2, 64,
	37, 59, 7, 460, 19, 66, 2, 64, 37, 59, 7, 555, 19, 66, 2, 64,
	37, 59, 7, 900, 19, 66, 2, 64, 37, 59, 7, 608, 19, 66, 2, 64,
	37, 59, 7, 427, 19, 66, 2, 64, 37, 59, 7, 649, 19, 66, 2, 64,
	37, 59, 7, 69, 683, 19, 66, 2, 64, 37, 59, 7, 683, 19, 66, 2,
	64, 37, 59, 7, 815, 19, 66, 2, 64, 37, 59, 7, 456, 19, 66, 2,
	64, 37, 59, 7, 694, 19, 66, 2, 64, 37, 59, 7, 671, 19, 66, 2,
	64, 37, 59, 7, 836, 19, 66, 2, 64, 37, 59, 7, 327, 19, 66, 2,
	64, 37, 59, 1467, 1395, 19, 66, 2, 64, 37, 59, 525, 16, 19, 66, 2,
	64, 37, 59, 697, 16, 19, 66, 2, 64, 37, 59, 804, 16, 19, 66, 2,
	64, 37, 59, 694, 16, 19, 66, 2, 64, 37, 59, 649, 16, 19, 66, 2,
	64, 37, 59, 427, 16, 19, 37, 10, 1396, 19, 37, 7, 1396, 19, 37, 23,
	254, 19, 37, 23, 67, 19, 37, 23, 70, 19, 37, 23, 79, 19, 37, 23,
	93, 19, 37, 23, 100, 19, 37, 23, 139, 19, 37, 23, 157, 19, 37, 23,
	140, 19, 37, 23, 160, 19, 55, 2, 241, 23, 254, 19, 55, 2, 241, 23,
	67, 19, 55, 2, 241, 23, 70, 19, 55, 2, 241, 23, 79, 19, 55, 2,
	241, 23, 93, 19, 55, 2, 241, 23, 100, 19, 55, 2, 241, 23, 139, 19,
	55, 2, 241, 23, 157, 19, 55, 2, 241, 23, 140, 19, 55, 2, 241, 23,
	160, 19, 66, 2, 64, 23, 254, 19, 66, 2, 64, 23, 67, 19, 66, 2,
	64, 23, 70, 19, 66, 2, 64, 23, 79, 19, 66, 2, 64, 23, 93, 19,
	66, 2, 64, 23, 100, 19, 66, 2, 64, 23, 139, 19, 66, 2, 64, 23,
	157, 19, 66, 2, 64, 23, 140, 19, 66, 2, 64, 23, 160, 19, 66, 2,
	64, 37, 23, 254, 19, 66, 2, 64, 37, 23, 67, 19, 66, 2, 64, 37,
	23, 70, 19, 66, 2, 64, 37, 23, 79, 19, 66, 2, 64, 37, 23, 93,
	19, 66, 2, 64, 37, 23, 100, 19, 66, 2, 64, 37, 23, 139, 19, 66,
	2, 64, 37, 23, 157, 19, 66, 2, 64, 37, 23, 140, 19, 66, 2, 64,
	37, 23, 160, 19, 378, 23, 254, 19, 378, 23, 67, 19, 378, 23, 70, 19,
	378, 23, 79, 19, 378, 23, 93, 19, 378, 23, 100, 19, 378, 23, 139, 19,
	378, 23, 157, 19, 378, 23, 140, 19, 378, 23, 160, 31, 78, 2, 177, 132,
	31, 78, 2, 125, 132, 31, 78, 2, 758, 132, 31, 78, 2, 955, 132, 31,
	78, 2, 513, 132, 31, 78, 2, 293, 132, 31, 78, 2, 177, 132, 602, 31,
	78, 2, 125, 132, 602, 31, 78, 2, 177, 169, 1112, 132, 602, 31, 78, 2,
	177, 132, 564, 1862, 31, 78, 2, 177, 132, 1392, 31, 78, 2, 177, 132, 762,
	31, 78, 2, 177, 132, 762, 145, 31, 78, 2, 125, 132, 513, 31, 78, 2,
	177, 132, 94, 31, 78, 2, 125, 132, 94, 31, 78, 2, 177, 132, 94, 602,
	31, 78, 2, 177, 132, 94, 564, 2306, 31, 78, 2, 177, 132, 94, 762, 31,
	78, 2, 177, 132, 111, 94, 762, 31, 78, 2, 177, 132, 762, 94, 111, 31,
	78, 2, 177, 132, 94, 616, 31, 78, 2, 177, 132, 94, 616, 132, 602, 31,
	78, 2, 177, 132, 94, 616, 94, 602, 31, 78, 2, 177, 132, 94, 616, 1392,
	31, 78, 2, 177, 132, 94, 616, 762, 31, 78, 2, 177, 132, 94, 723, 31,
	78, 2, 125, 132, 94, 723, 31, 78, 2, 177, 94, 602, 172, 132, 31, 78,
	2, 177, 132, 602, 172, 94, 31, 78, 2, 177, 132, 94, 169, 31, 78, 2,
	125, 132, 94, 169, 31, 78, 2, 177, 132, 94, 550, 169, 602, 31, 78, 2,
	177, 132, 94, 602, 169, 550, 31, 78, 2, 177, 132, 94, 169, 602, 31, 78,
	2, 177, 132, 94, 762, 861, 169, 533, 31, 78, 2, 177, 132, 111, 94, 762,
	169, 533, 31, 78, 2, 177, 132, 111, 94, 762, 169, 616, 31, 78, 2, 177,
	132, 762, 94, 111, 169, 533, 31, 78, 2, 177, 132, 94, 111, 861, 169, 799,
	31, 78, 2, 177, 132, 94, 169, 1392, 31, 78, 2, 177, 132, 94, 169, 62,
	31, 78, 2, 177, 132, 94, 169, 1426, 31, 78, 2, 177, 132, 94, 169, 762,
	31, 78, 2, 177, 169, 669, 132, 94, 550, 31, 78, 2, 177, 132, 94, 616,
	169, 533, 31, 78, 2, 177, 132, 94, 616, 169, 533, 616, 31, 78, 2, 177,
	132, 94, 616, 169, 533, 602, 31, 78, 2, 177, 94, 169, 1426, 132, 111, 31,
	78, 2, 177, 132, 169, 1426, 94, 111, 31, 78, 2, 177, 132, 94, 616, 762,
	169, 533, 31, 78, 2, 177, 132, 94, 723, 169, 533, 31, 78, 2, 177, 132,
	94, 616, 169, 799, 31, 78, 2, 177, 132, 94, 616, 1392, 169, 799, 31, 78,
	2, 177, 94, 169, 1392, 132, 111, 31, 78, 2, 177, 132, 169, 1392, 94, 111,
	31, 78, 2, 177, 94, 169, 62, 132, 111, 31, 78, 2, 177, 94, 169, 62,
	132, 762, 31, 78, 2, 177, 132, 169, 1284, 788, 94, 111, 31, 78, 2, 177,
	132, 169, 1284, 372, 94, 111, 31, 78, 2, 177, 132, 169, 62, 94, 111, 31,
	78, 2, 177, 132, 94, 169, 616, 762, 31, 78, 2, 177, 132, 94, 169, 1284,
	788, 31, 78, 2, 177, 132, 94, 169, 1284, 31, 78, 2, 177, 94, 169, 1284,
	788, 132, 111, 31, 78, 2, 177, 94, 169, 1284, 788, 132, 723, 31, 78, 2,
	177, 94, 169, 1284, 132, 111, 31, 78, 2, 177, 132, 169, 1426, 94, 762, 31,
	78, 2, 561, 93, 593, 31, 78, 2, 561, 93, 593, 602, 31, 78, 2, 561,
	93, 593, 762, 31, 78, 2, 561, 93, 593, 616, 31, 78, 2, 561, 93, 593,
	616, 1486, 31, 78, 2, 1128, 93, 593, 616, 31, 78, 2, 177, 93, 593, 616,
	602, 31, 78, 2, 513, 93, 593, 616, 31, 78, 2, 561, 100, 593, 861, 31,
	78, 2, 561, 1315, 100, 593, 861, 31, 78, 2, 561, 100, 593, 861, 93, 602,
	31, 78, 2, 561, 1315, 100, 593, 861, 93, 602, 31, 78, 2, 561, 100, 593,
	861, 602, 31, 78, 2, 561, 1315, 100, 593, 861, 602, 31, 78, 2, 561, 100,
	593, 861, 169, 799, 31, 78, 2, 758, 100, 593, 861, 31, 78, 2, 758, 100,
	593, 861, 189, 31, 78, 2, 513, 100, 593, 861, 189, 31, 78, 2, 955, 100,
	593, 861, 31, 78, 2, 561, 100, 593, 861, 762, 31, 78, 2, 561, 100, 593,
	861, 762, 169, 533, 31, 78, 2, 561, 100, 593, 861, 762, 433, 169, 31, 78,
	2, 561, 31, 78, 2, 561, 669, 1466, 7273, 31, 78, 2, 561, 1315, 31, 78,
	2, 561, 169, 533, 31, 78, 2, 561, 1315, 169, 533, 31, 78, 2, 561, 169,
	602, 31, 78, 2, 561, 169, 799, 31, 78, 2, 561, 1486, 132, 169, 533, 31,
	78, 2, 561, 1486, 360, 31, 78, 2, 561, 1486, 360, 169, 533, 31, 78, 2,
	561, 1486, 360, 169, 533, 602, 31, 78, 2, 561, 1486, 338, 31, 78, 2, 1128,
	31, 78, 2, 1128, 169, 533, 31, 78, 2, 1128, 433, 169, 31, 78, 2, 1128,
	169, 799, 31, 78, 2, 99, 1393, 31, 78, 2, 99, 31, 78, 2, 758, 189,
	31, 78, 2, 758, 31, 78, 2, 758, 189, 169, 533, 31, 78, 2, 758, 169,
	533, 31, 78, 2, 758, 189, 433, 169, 31, 78, 2, 758, 433, 169, 31, 78,
	2, 758, 189, 169, 799, 31, 78, 2, 758, 169, 799, 31, 78, 2, 1393, 189,
	31, 78, 2, 1393, 31, 78, 2, 125, 31, 78, 2, 955, 31, 78, 2, 955,
	169, 533, 31, 78, 2, 955, 433, 169, 31, 78, 2, 955, 169, 799, 31, 78,
	2, 513, 189, 31, 78, 2, 513, 189, 169, 799, 31, 78, 2, 513, 31, 78,
	2, 513, 7, 31, 78, 2, 513, 189, 169, 533, 31, 78, 2, 513, 169, 533,
	31, 78, 2, 513, 189, 433, 169, 31, 78, 2, 513, 433, 169, 31, 78, 2,
	513, 169, 533, 4095, 132, 31, 78, 2, 513, 169, 669, 94, 190, 31, 78, 2,
	293, 31, 78, 2, 177, 132, 94, 190, 31, 78, 2, 125, 132, 94, 190, 31,
	78, 2, 513, 132, 94, 190, 31, 78, 2, 293, 132, 94, 190, 31, 78, 2,
	513, 338, 31, 78, 2, 177, 132, 94, 190, 602, 31, 78, 2, 177, 132, 94,
	190, 616, 31, 78, 2, 513, 132, 94, 190, 616, 31, 78, 2, 177, 338, 130,
	31, 78, 2, 177, 338, 130, 3906, 550, 31, 78, 2, 177, 338, 130, 3906, 759,
	31, 78, 2, 177, 338, 130, 9557, 62, 31, 78, 2, 177, 338, 111, 31, 78,
	2, 177, 169, 1112, 338, 111, 31, 78, 2, 125, 338, 111, 31, 78, 2, 955,
	338, 111, 31, 78, 2, 293, 338, 111, 31, 78, 2, 177, 338, 564, 1862, 31,
	78, 2, 177, 338, 602, 31, 78, 2, 177, 338, 10868, 169, 31, 78, 2, 177,
	338, 169, 31, 78, 2, 513, 338, 169, 31, 78, 2, 177, 338, 132, 169, 31,
	78, 2, 513, 338, 132, 169, 31, 78, 2, 293, 338, 132, 169, 132, 169, 788,
	31, 78, 2, 293, 338, 132, 169, 132, 169, 31, 78, 2, 177, 338, 132, 31,
	78, 2, 125, 338, 132, 31, 78, 2, 513, 338, 132, 31, 78, 2, 293, 338,
	132, 31, 78, 2, 177, 132, 94, 338, 31, 78, 2, 125, 132, 94, 338, 31,
	78, 2, 513, 132, 94, 338, 31, 78, 2, 513, 190, 31, 78, 2, 293, 132,
	94, 338, 31, 78, 2, 177, 132, 94, 425, 338, 31, 78, 2, 125, 132, 94,
	425, 338, 31, 78, 2, 177, 190, 130, 31, 78, 2, 513, 190, 130, 132, 169,
	99, 94, 31, 78, 2, 293, 190, 130, 94, 169, 132, 425, 31, 78, 2, 177,
	190, 111, 31, 78, 2, 177, 190, 564, 1862, 31, 78, 2, 177, 190, 338, 31,
	78, 2, 125, 190, 338, 31, 78, 2, 955, 190, 338, 31, 78, 2, 293, 190,
	338, 31, 78, 2, 177, 190, 94, 31, 78, 2, 177, 190, 94, 616, 31, 78,
	2, 177, 190, 94, 564, 2306, 31, 78, 2, 177, 190, 132, 31, 78, 2, 177,
	190, 169, 31, 78, 2, 99, 190, 169, 31, 78, 2, 177, 132, 190, 338, 31,
	78, 2, 125, 132, 190, 338, 31, 78, 2, 1393, 132, 190, 338, 347, 31, 78,
	2, 99, 132, 190, 338, 788, 31, 78, 2, 99, 132, 190, 338, 372, 31, 78,
	2, 99, 132, 190, 338, 1112, 31, 78, 2, 758, 132, 190, 338, 31, 78, 2,
	513, 132, 190, 338, 31, 78, 2, 293, 132, 190, 338, 788, 31, 78, 2, 293,
	132, 190, 338, 31, 78, 2, 177, 94, 130, 31, 78, 2, 513, 94, 31, 78,
	2, 177, 94, 111, 31, 78, 2, 125, 94, 111, 31, 78, 2, 177, 94, 564,
	1862, 31, 78, 2, 177, 94, 111, 169, 533, 31, 78, 2, 99, 94, 169, 31,
	78, 2, 177, 94, 169, 338, 31, 78, 2, 177, 94, 338, 31, 78, 2, 177,
	94, 190, 338, 31, 78, 2, 125, 94, 190, 338, 31, 78, 2, 1393, 94, 190,
	338, 347, 31, 78, 2, 758, 94, 190, 338, 31, 78, 2, 513, 94, 190, 338,
	31, 78, 2, 293, 94, 190, 338, 788, 31, 78, 2, 293, 94, 190, 338, 372,
	31, 78, 2, 293, 94, 190, 338, 31, 78, 2, 125, 94, 190, 338, 602, 31,
	78, 2, 1128, 94, 190, 338, 616, 31, 78, 2, 1128, 94, 190, 338, 616, 533,
	31, 78, 2, 99, 94, 190, 338, 616, 788, 31, 78, 2, 99, 94, 190, 338,
	616, 372, 31, 78, 2, 99, 94, 190, 338, 616, 31, 78, 2, 513, 132, 762,
	31, 78, 2, 177, 132, 169, 533, 31, 78, 2, 513, 132, 169, 533, 31, 78,
	2, 177, 132, 169, 533, 169, 186, 31, 78, 2, 177, 132, 169, 533, 169, 616,
	31, 78, 2, 177, 132, 169, 533, 169, 602, 31, 78, 2, 177, 132, 169, 533,
	132, 602, 31, 78, 2, 177, 132, 169, 533, 3128, 602, 31, 78, 2, 177, 132,
	169, 533, 132, 513, 31, 78, 2, 177, 132, 169, 799, 132, 550, 31, 78, 2,
	177, 132, 169, 799, 132, 602, 31, 78, 2, 177, 132, 169, 99, 31, 78, 2,
	177, 132, 169, 1393, 31, 78, 2, 177, 132, 169, 522, 169, 786, 31, 78, 2,
	1128, 132, 169, 522, 169, 786, 31, 78, 2, 177, 132, 169, 522, 169, 1112, 31,
	78, 2, 177, 132, 169, 125, 31, 78, 2, 758, 132, 169, 31, 78, 2, 758,
	132, 169, 189, 31, 78, 2, 513, 132, 169, 189, 31, 78, 2, 513, 132, 169,
	252, 31, 78, 2, 513, 132, 169, 31, 78, 2, 513, 132, 169, 7, 31, 78,
	2, 293, 132, 169, 788, 31, 78, 2, 293, 132, 169, 372, 31, 78, 2, 293,
	132, 169, 31, 78, 2, 177, 169, 31, 78, 2, 177, 169, 1315, 31, 78, 2,
	177, 169, 533, 186, 31, 78, 2, 177, 169, 533, 616, 31, 78, 2, 177, 169,
	533, 602, 31, 78, 2, 177, 169, 799, 31, 78, 2, 177, 169, 669, 132, 94,
	31, 78, 2, 177, 169, 669, 94, 190, 31, 78, 2, 177, 169, 669, 190, 338,
	31, 78, 2, 177, 169, 1112, 70, 593, 31, 78, 2, 177, 169, 172, 70, 593,
	31, 78, 2, 177, 169, 1112, 79, 593, 31, 78, 2, 177, 169, 1112, 93, 593,
	31, 78, 2, 177, 169, 172, 93, 564, 2306, 31, 78, 2, 177, 31, 78, 2,
	177, 1315, 31, 2562, 271, 31, 2562, 952, 31, 2562, 669, 31, 2250, 271, 31, 2250,
	952, 31, 2250, 669, 31, 2521, 271, 31, 2521, 952, 31, 2521, 669, 31, 1384, 271,
	31, 1384, 952, 31, 1384, 669, 31, 1672, 271, 31, 1672, 952, 31, 1672, 669, 31,
	2528, 2533, 31, 2528, 669, 31, 1487, 252, 271, 31, 1487, 7, 271, 31, 1487, 252,
	952, 31, 1487, 7, 952, 31, 1487, 1964, 31, 1414, 252, 271, 31, 1414, 7, 271,
	31, 1414, 252, 952, 31, 1414, 7, 952, 31, 1414, 1964, 31, 1487, 1414, 709, 31,
	112, 2, 513, 111, 130, 252, 31, 112, 2, 513, 111, 130, 7, 31, 112, 2,
	513, 111, 1964, 31, 112, 2, 513, 130, 1964, 31, 112, 2, 513, 111, 130, 709,
	252, 31, 112, 2, 513, 111, 130, 709, 7, 31, 112, 2, 513, 533, 83, 533,
	1481, 31, 112, 2, 193, 913, 1388, 31, 112, 2, 213, 913, 1388, 31, 112, 2,
	193, 271, 550, 7, 31, 112, 2, 193, 271, 550, 210, 31, 112, 2, 193, 271,
	550, 252, 31, 112, 2, 193, 271, 550, 1150, 31, 112, 2, 193, 271, 932, 1082,
	31, 112, 2, 193, 55, 550, 31, 112, 2, 193, 55, 932, 1082, 31, 112, 2,
	193, 55, 709, 31, 112, 2, 193, 55, 709, 932, 1082, 31, 112, 2, 193, 425,
	31, 112, 2, 193, 392, 550, 112, 31, 112, 2, 193, 392, 932, 1082, 31, 112,
	2, 193, 392, 709, 31, 112, 2, 193, 392, 709, 932, 1082, 31, 112, 2, 193,
	1378, 7, 31, 112, 2, 193, 1378, 210, 31, 112, 2, 193, 1378, 252, 31, 112,
	2, 193, 536, 7, 31, 112, 2, 193, 536, 210, 31, 112, 2, 193, 536, 252,
	31, 112, 2, 193, 536, 473, 31, 112, 2, 193, 906, 7, 31, 112, 2, 193,
	906, 210, 31, 112, 2, 193, 906, 252, 31, 112, 2, 193, 124, 7, 31, 112,
	2, 193, 124, 210, 31, 112, 2, 193, 124, 252, 31, 112, 2, 193, 1011, 7,
	31, 112, 2, 193, 1011, 210, 31, 112, 2, 193, 1011, 252, 31, 112, 2, 193,
	1468, 7, 31, 112, 2, 193, 1468, 210, 31, 112, 2, 193, 1468, 252, 31, 841,
	2, 193, 473, 2, 193, 271, 31, 841, 2, 193, 473, 2, 193, 55, 31, 841,
	2, 193, 473, 2, 193, 709, 31, 841, 2, 193, 473, 2, 213, 271, 31, 841,
	2, 193, 473, 2, 213, 55, 31, 841, 2, 193, 473, 2, 213, 709, 31, 841,
	2, 193, 1967, 31, 841, 2, 193, 722, 1344, 271, 31, 841, 2, 193, 722, 1344,
	55, 31, 841, 2, 193, 722, 1344, 392, 31, 112, 2, 186, 1188, 7, 31, 112,
	2, 186, 1188, 210, 31, 112, 2, 186, 1188, 252, 31, 112, 2, 186, 1188, 1150,
	31, 112, 2, 186, 1267, 7, 31, 112, 2, 186, 1267, 210, 31, 112, 2, 186,
	1267, 252, 31, 112, 2, 186, 1267, 1150, 31, 112, 2, 186, 669, 1188, 7, 31,
	112, 2, 186, 669, 1188, 210, 31, 112, 2, 186, 669, 1188, 252, 31, 112, 2,
	186, 669, 1188, 1150, 31, 112, 2, 186, 669, 1267, 7, 31, 112, 2, 186, 669,
	1267, 210, 31, 112, 2, 186, 669, 1267, 252, 31, 112, 2, 186, 669, 1267, 1150,
	31, 112, 2, 213, 271, 550, 7, 31, 112, 2, 213, 271, 550, 210, 31, 112,
	2, 213, 271, 550, 252, 31, 112, 2, 213, 271, 550, 1150, 31, 112, 2, 213,
	271, 932, 1082, 31, 112, 2, 213, 55, 550, 31, 112, 2, 213, 55, 932, 1082,
	31, 112, 2, 213, 55, 709, 31, 112, 2, 213, 55, 709, 932, 1082, 31, 112,
	2, 213, 425, 31, 112, 2, 213, 392, 550, 112, 31, 112, 2, 213, 392, 932,
	1082, 31, 112, 2, 213, 392, 709, 112, 31, 112, 2, 213, 392, 709, 932, 1082,
	31, 112, 2, 213, 1378, 31, 112, 2, 213, 536, 7, 31, 112, 2, 213, 536,
	210, 31, 112, 2, 213, 536, 252, 31, 112, 2, 213, 906, 31, 112, 2, 213,
	124, 7, 31, 112, 2, 213, 124, 210, 31, 112, 2, 213, 124, 252, 31, 112,
	2, 213, 1011, 7, 31, 112, 2, 213, 1011, 210, 31, 112, 2, 213, 1011, 252,
	31, 112, 2, 213, 1468, 7, 31, 112, 2, 213, 1468, 210, 31, 112, 2, 213,
	1468, 252, 31, 841, 2, 213, 473, 2, 213, 271, 31, 841, 2, 213, 473, 2,
	213, 55, 31, 841, 2, 213, 473, 2, 213, 709, 31, 841, 2, 213, 473, 2,
	193, 271, 31, 841, 2, 213, 473, 2, 193, 55, 31, 841, 2, 213, 473, 2,
	193, 709, 31, 841, 2, 213, 1967, 31, 112, 2, 193, 522, 516, 7, 31, 112,
	2, 193, 522, 516, 210, 31, 112, 2, 193, 522, 516, 252, 31, 112, 2, 193,
	522, 516, 1150, 31, 112, 2, 193, 522, 133, 2, 125, 7, 31, 112, 2, 193,
	522, 133, 2, 125, 210, 31, 112, 2, 193, 522, 133, 2, 125, 252, 31, 112,
	2, 193, 522, 133, 2, 125, 1150, 31, 112, 2, 193, 522, 79, 2, 516, 125,
	7, 31, 112, 2, 193, 522, 79, 2, 516, 125, 210, 31, 112, 2, 193, 915,
	7, 31, 112, 2, 193, 915, 210, 31, 112, 2, 193, 915, 252, 31, 112, 2,
	193, 658, 7, 31, 112, 2, 193, 658, 210, 31, 112, 2, 193, 658, 252, 31,
	112, 2, 193, 658, 7, 55, 31, 112, 2, 193, 575, 522, 55, 7, 31, 112,
	2, 193, 575, 522, 55, 210, 31, 112, 2, 193, 575, 522, 55, 252, 31, 112,
	2, 193, 575, 522, 392, 7, 31, 112, 2, 193, 575, 522, 392, 210, 31, 112,
	2, 193, 575, 522, 392, 252, 31, 112, 2, 193, 522, 1170, 550, 31, 112, 2,
	193, 759, 425, 7, 31, 112, 2, 193, 759, 425, 210, 31, 473, 2, 193, 271,
	31, 473, 2, 193, 55, 31, 473, 2, 193, 506, 31, 112, 2, 193, 1967, 31,
	112, 2, 193, 522, 414, 946, 817, 31, 112, 2, 193, 915, 414, 946, 817, 31,
	112, 2, 193, 658, 414, 946, 817, 31, 112, 2, 193, 575, 414, 946, 817, 31,
	473, 2, 193, 271, 414, 946, 817, 31, 473, 2, 193, 55, 414, 946, 817, 31,
	473, 2, 193, 709, 414, 946, 817, 31, 112, 2, 193, 522, 414, 1291, 31, 112,
	2, 193, 915, 414, 1291, 31, 112, 2, 193, 658, 414, 1291, 31, 112, 2, 193,
	575, 414, 1291, 31, 473, 2, 193, 271, 414, 1291, 31, 473, 2, 193, 55, 414,
	1291, 31, 473, 2, 193, 709, 414, 1291, 31, 112, 2, 193, 575, 186, 1649, 7,
	31, 112, 2, 193, 575, 186, 1649, 210, 31, 112, 2, 193, 575, 186, 1649, 252,
	31, 112, 2, 213, 522, 414, 823, 7, 31, 112, 2, 213, 522, 414, 823, 252,
	31, 112, 2, 213, 915, 414, 823, 7, 55, 31, 112, 2, 213, 915, 414, 823,
	252, 55, 31, 112, 2, 213, 915, 414, 823, 7, 392, 31, 112, 2, 213, 915,
	414, 823, 252, 392, 31, 112, 2, 213, 658, 414, 823, 7, 271, 31, 112, 2,
	213, 658, 414, 823, 252, 271, 31, 112, 2, 213, 658, 414, 823, 7, 55, 31,
	112, 2, 213, 658, 414, 823, 252, 55, 31, 112, 2, 213, 575, 414, 823, 7,
	31, 112, 2, 213, 575, 414, 823, 252, 31, 473, 2, 213, 271, 414, 823, 31,
	473, 2, 213, 55, 414, 823, 31, 473, 2, 213, 709, 414, 823, 31, 112, 2,
	213, 522, 414, 798, 7, 31, 112, 2, 213, 522, 414, 798, 252, 31, 112, 2,
	213, 915, 414, 798, 7, 55, 31, 112, 2, 213, 915, 414, 798, 252, 55, 31,
	112, 2, 213, 915, 414, 798, 392, 7, 392, 31, 112, 2, 213, 915, 414, 798,
	392, 252, 392, 31, 112, 2, 213, 658, 414, 798, 7, 271, 31, 112, 2, 213,
	658, 414, 798, 252, 271, 31, 112, 2, 213, 658, 414, 798, 7, 55, 31, 112,
	2, 213, 658, 414, 798, 252, 55, 31, 112, 2, 213, 575, 414, 798, 7, 31,
	112, 2, 213, 575, 414, 798, 252, 31, 473, 2, 213, 271, 414, 798, 31, 473,
	2, 213, 55, 414, 798, 31, 473, 2, 213, 709, 414, 798, 31, 112, 2, 213,
	522, 7, 31, 112, 2, 213, 522, 210, 31, 112, 2, 213, 522, 252, 31, 112,
	2, 213, 522, 1150, 31, 112, 2, 213, 522, 6661, 31, 112, 2, 213, 915, 7,
	31, 112, 2, 213, 658, 7, 31, 112, 2, 213, 575, 1983, 31, 112, 2, 213,
	575, 7, 31, 112, 2, 213, 575, 252, 31, 473, 2, 213, 271, 31, 473, 2,
	213, 55, 31, 473, 2, 213, 709, 31, 112, 2, 213, 1967, 1097, 31, 112, 2,
	193, 722, 125, 7, 271, 31, 112, 2, 193, 722, 125, 210, 271, 31, 112, 2,
	193, 722, 125, 7, 55, 31, 112, 2, 193, 722, 125, 210, 55, 31, 112, 2,
	213, 722, 125, 414, 817, 7, 271, 31, 112, 2, 213, 722, 125, 414, 817, 210,
	271, 31, 112, 2, 213, 722, 125, 414, 817, 252, 271, 31, 112, 2, 213, 722,
	125, 414, 817, 7, 55, 31, 112, 2, 213, 722, 125, 414, 817, 210, 55, 31,
	112, 2, 213, 722, 125, 414, 817, 252, 55, 31, 112, 2, 193, 932, 125, 946,
	271, 31, 112, 2, 193, 932, 125, 946, 55, 31, 112, 2, 213, 932, 125, 414,
	817, 271, 31, 112, 2, 213, 932, 125, 414, 817, 55, 31, 112, 2, 193, 913,
	824, 271, 31, 112, 2, 193, 913, 824, 55, 31, 112, 2, 213, 913, 824, 414,
	817, 271, 31, 112, 2, 213, 913, 824, 414, 817, 55, 31, 1075, 309, 7, 31,
	1075, 309, 252, 31, 1075, 7289, 31, 1075, 3992, 31, 1075, 1355, 31, 1075, 3891, 31,
	1075, 3981, 31, 1075, 3981, 709, 31, 1075, 7186, 9556, 2555, 31, 1075, 7598, 31, 618,
	31, 618, 10075, 31, 618, 112, 2, 193, 550, 31, 618, 112, 2, 193, 10828, 31,
	618, 112, 2, 213, 550, 31, 618, 112, 2, 193, 522, 31, 618, 112, 2, 213,
	522, 31, 618, 112, 125, 31, 123, 1791, 1471, 1040, 799, 2001, 31, 123, 1791, 1471,
	1040, 111, 246, 130, 31, 123, 1791, 1471, 1040, 111, 246, 130, 2001, 31, 1302, 550,
	111, 31, 1302, 550, 497, 31, 1302, 550, 130, 31, 1797, 1302, 497, 130, 31, 1797,
	1302, 130, 497, 31, 1797, 1302, 111, 497, 31, 1797, 1302, 497, 111, 31, 2229, 497,
	31, 2229, 1388, 31, 2229, 1363, 31, 673, 189, 31, 673, 10510, 31, 673, 468, 31,
	1080, 3116, 271, 31, 1080, 3116, 952, 31, 673, 133, 189, 31, 673, 424, 189, 31,
	673, 133, 468, 31, 673, 11352, 112, 31, 1080, 11359, 31, 2213, 111, 31, 2213, 130,
	31, 2213, 3327, 31, 1138, 2, 193, 550, 31, 1138, 2, 193, 550, 55, 31, 1138,
	2, 193, 550, 709, 31, 1138, 2, 213, 550, 31, 1138, 2, 213, 550, 55, 31,
	1138, 2, 213, 550, 709, 31, 1138, 2, 193, 759, 31, 1138, 2, 213, 759, 31,
	1138, 2, 193, 3173, 31, 1387, 9842, 31, 1387, 497, 31, 1387, 4034, 31, 1355, 1387,
	156, 31, 1355, 1387, 94, 31, 1355, 1387, 145, 31, 3277, 31, 1040, 497, 31, 1040,
	1388, 31, 1040, 2599, 31, 1040, 11353, 31, 1369, 3119, 788, 31, 1369, 10604, 372, 31,
	1369, 6250, 7, 3915, 31, 1369, 10603, 7, 3915, 31, 2126, 7968, 31, 2126, 7191, 31,
	432, 468, 497, 31, 432, 468, 799, 31, 432, 468, 1388, 31, 432, 1679, 31, 432,
	1679, 1363, 31, 432, 1679, 189, 31, 432, 1820, 31, 432, 1820, 1363, 31, 432, 1820,
	189, 31, 432, 189, 125, 31, 432, 189, 799, 31, 432, 189, 1363, 31, 432, 189,
	955, 31, 432, 189, 955, 1363, 31, 432, 189, 955, 4201, 31, 432, 189, 1159, 31,
	432, 189, 1159, 1363, 31, 432, 189, 1159, 4201, 31, 432, 1441, 31, 432, 1441, 799,
	31, 432, 1441, 1363, 31, 432, 1355, 31, 432, 1355, 799, 31, 432, 1355, 4034, 31,
	1224, 9810, 2002, 31, 1879, 134, 172, 141, 31, 1879, 141, 172, 134, 31, 432, 1390,
	31, 432, 2599, 271, 31, 432, 2599, 55, 31, 840, 4026, 788, 7288, 31, 840, 8416,
	1224, 31, 840, 751, 669, 1224, 31, 840, 751, 4095, 786, 432, 31, 840, 786, 432,
	3891, 31, 840, 8907, 5741, 6455, 31, 840, 360, 4026, 788, 31, 840, 360, 786, 432,
	31, 1354, 31, 1354, 112, 31, 1354, 347, 840, 31, 1354, 347, 840, 112, 31, 1354,
	347, 1224, 31, 1354, 347, 1224, 112, 31, 1354, 6244, 1224, 31, 112, 2, 193, 3460,
	31, 112, 2, 213, 3460, 31, 3695, 31, 1313, 31, 7190, 31, 1677, 1424, 10493, 31,
	1677, 1424, 9787, 31, 193, 1677, 1424, 3669, 31, 213, 1677, 1424, 3669, 31, 1677, 2001,
	546, 11322, 31, 2005, 2, 193, 550, 10584, 31, 2005, 2, 193, 759, 1378, 31, 2005,
	2, 213, 10975, 31, 141, 3122, 2001, 546, 1424, 8056, 31, 1223, 6660, 31, 1223, 731,
	2, 291, 31, 1223, 731, 2, 192, 31, 1223, 731, 2, 273, 31, 1223, 731, 2,
	349, 31, 1223, 731, 2, 387, 31, 1223, 731, 2, 466, 31, 1223, 731, 2, 568,
	31, 913, 31, 1090, 2, 193, 737, 31, 1090, 2, 213, 737, 31, 1090, 7703, 31,
	1090, 1061, 31, 1090, 6927, 31, 1090, 618, 3695, 31, 1090, 2005, 31, 1090, 8429, 6970,
	31, 383, 31, 426, 322, 31, 1000, 31, 577, 31, 471, 31, 797, 75, 2, 192,
	31, 797, 75, 2, 273, 31, 797, 75, 2, 349, 31, 797, 75, 2, 387, 31,
	797, 75, 2, 466, 31, 473, 75, 2, 192, 31, 473, 75, 2, 273, 31, 473,
	75, 2, 349, 31, 473, 75, 2, 387, 31, 473, 75, 2, 466, 31, 473, 75,
	2, 568, 31, 473, 75, 2, 772, 31, 473, 75, 2, 869, 31, 473, 75, 2,
	1278, 31, 473, 75, 2, 1180, 31, 473, 75, 2, 1279, 31, 473, 75, 2, 1280,
	31, 473, 75, 2, 1281, 31, 473, 75, 2, 1365, 31, 473, 75, 2, 1366, 12,
	7, 5, 2218, 590, 8, 10893, 12, 7, 5, 261, 35, 220, 12, 5, 7, 10,
	191, 220, 12, 7, 5, 261, 227, 12, 5, 7, 10, 136, 8, 1015, 12, 7,
	5, 1878, 8, 499, 99, 12, 7, 5, 191, 218, 8, 1015, 12, 7, 5, 261,
	980, 12, 7, 5, 191, 122, 8, 187, 764, 34, 499, 99, 12, 7, 5, 221,
	8, 99, 34, 499, 99, 12, 5, 499, 1018, 8, 499, 99, 12, 7, 5, 785,
	8, 55, 146, 12, 7, 5, 785, 8, 55, 146, 34, 724, 12, 7, 5, 191,
	221, 8, 724, 12, 5, 359, 552, 322, 8, 724, 12, 5, 696, 104, 8, 724,
	12, 5, 7, 10, 191, 227, 12, 7, 5, 136, 8, 1210, 12, 7, 5, 1786,
	590, 8, 626, 99, 12, 7, 5, 136, 8, 1015, 34, 626, 99, 12, 7, 5,
	980, 8, 626, 99, 12, 7, 5, 191, 122, 8, 626, 99, 12, 7, 5, 122,
	8, 1210, 34, 626, 99, 12, 7, 5, 1996, 590, 8, 626, 99, 12, 7, 5,
	981, 8, 626, 99, 12, 7, 5, 1786, 590, 8, 499, 99, 12, 7, 5, 73,
	8, 89, 34, 499, 99, 12, 7, 5, 68, 8, 499, 99, 12, 7, 5, 1996,
	590, 8, 499, 99, 12, 7, 5, 104, 8, 499, 99, 12, 7, 5, 121, 8,
	724, 43, 166, 5, 2109, 43, 166, 5, 2130, 43, 166, 5, 2583, 43, 166, 5,
	2247, 43, 166, 5, 2193, 43, 166, 5, 2608, 43, 166, 5, 2617, 43, 166, 5,
	2615, 43, 166, 5, 1432, 43, 166, 5, 105, 1432, 43, 166, 5, 73, 43, 166,
	5, 2191, 43, 166, 5, 2293, 43, 166, 5, 2329, 43, 166, 5, 1624, 43, 166,
	5, 2372, 43, 166, 5, 2406, 43, 166, 5, 2434, 43, 166, 5, 2461, 43, 166,
	5, 2498, 43, 166, 5, 2574, 43, 166, 5, 2579, 43, 166, 5, 2231, 43, 166,
	5, 2260, 43, 166, 5, 2489, 43, 166, 5, 1359, 43, 166, 5, 1546, 43, 166,
	5, 321, 43, 166, 5, 1064, 43, 166, 5, 2032, 43, 166, 5, 2606, 43, 166,
	5, 402, 43, 166, 5, 7, 601, 43, 166, 5, 416, 43, 166, 5, 1431, 7,
	601, 43, 166, 5, 872, 601, 43, 166, 5, 1431, 872, 601, 43, 166, 5, 1306,
	339, 340, 109, 5, 182, 339, 340, 109, 5, 612, 339, 340, 109, 5, 9320, 339,
	340, 109, 5, 196, 339, 340, 109, 5, 143, 339, 340, 109, 5, 185, 339, 340,
	109, 5, 899, 339, 340, 109, 5, 9221, 339, 340, 109, 5, 325, 339, 340, 109,
	5, 202, 339, 340, 109, 5, 195, 339, 340, 109, 5, 443, 339, 340, 109, 5,
	9052, 339, 340, 109, 5, 9326, 339, 340, 109, 5, 106, 339, 340, 109, 5, 217,
	339, 340, 109, 5, 363, 339, 340, 109, 5, 2392, 339, 340, 109, 5, 413, 339,
	340, 109, 5, 9331, 339, 340, 109, 5, 10976, 339, 340, 109, 5, 502, 339, 340,
	109, 5, 173, 339, 340, 109, 5, 768, 339, 340, 109, 5, 179, 339, 340, 109,
	5, 9279, 339, 340, 109, 5, 119, 339, 340, 109, 5, 4193, 339, 340, 109, 5,
	9277, 339, 340, 109, 5, 1793, 339, 340, 109, 5, 9278, 339, 340, 109, 5, 199,
	339, 340, 109, 5, 3662, 339, 340, 109, 5, 1934, 339, 340, 109, 5, 224, 339,
	340, 109, 5, 769, 339, 340, 109, 5, 24, 339, 340, 109, 5, 263, 339, 340,
	109, 5, 73, 339, 340, 109, 5, 60, 339, 340, 109, 5, 68, 339, 340, 109,
	5, 454, 339, 340, 109, 5, 51, 339, 340, 109, 5, 496, 339, 340, 109, 5,
	290, 339, 340, 109, 110, 2, 71, 339, 340, 109, 110, 2, 205, 339, 340, 109,
	110, 2, 278, 339, 340, 109, 110, 2, 229, 339, 340, 109, 110, 2, 121, 339,
	340, 109, 110, 2, 220, 339, 340, 109, 110, 2, 98, 339, 340, 109, 6, 54,
	734, 339, 340, 109, 6, 54, 10799, 339, 340, 109, 6, 54, 1090, 339, 340, 109,
	6, 54, 5811, 339, 340, 109, 6, 54, 7980, 339, 340, 109, 6, 2602, 2602, 339,
	340, 109, 9, 1877, 339, 340, 109, 23, 254, 339, 340, 109, 23, 67, 339, 340,
	109, 23, 70, 339, 340, 109, 23, 79, 339, 340, 109, 23, 93, 339, 340, 109,
	23, 100, 339, 340, 109, 23, 139, 339, 340, 109, 23, 157, 339, 340, 109, 23,
	140, 339, 340, 109, 23, 160, 339, 340, 109, 1225, 9375, 339, 340, 109, 62, 325,
	597, 5, 119, 597, 5, 251, 597, 5, 196, 597, 5, 217, 597, 5, 106, 597,
	5, 224, 597, 5, 182, 597, 5, 185, 597, 5, 312, 597, 5, 195, 597, 5,
	358, 597, 5, 179, 597, 5, 286, 597, 5, 317, 597, 5, 143, 597, 5, 173,
	597, 5, 202, 597, 5, 73, 597, 5, 1540, 73, 597, 5, 1597, 597, 5, 1540,
	1597, 597, 5, 60, 597, 5, 51, 597, 5, 1540, 51, 597, 5, 909, 597, 5,
	1540, 909, 597, 5, 68, 597, 5, 543, 597, 5, 1540, 543, 597, 5, 24, 597,
	6, 891, 110, 396, 5, 263, 396, 5, 24, 396, 5, 251, 396, 5, 325, 396,
	5, 217, 396, 5, 224, 396, 5, 179, 396, 5, 412, 396, 5, 202, 396, 5,
	185, 396, 5, 119, 396, 5, 196, 396, 5, 386, 396, 5, 502, 396, 5, 195,
	396, 5, 321, 396, 5, 317, 396, 5, 443, 396, 5, 286, 396, 5, 413, 396,
	5, 106, 396, 5, 68, 396, 5, 313, 396, 5, 173, 396, 5, 182, 396, 5,
	361, 396, 5, 143, 396, 5, 51, 396, 5, 73, 396, 5, 312, 396, 5, 60,
	396, 5, 8449, 396, 5, 612, 396, 5, 2563, 396, 5, 3770, 396, 5, 5616, 396,
	5, 935, 396, 5, 2275, 396, 5, 347, 396, 5, 405, 396, 5, 3011, 396, 5,
	363, 396, 5, 11051, 396, 5, 11518, 396, 110, 4127, 396, 110, 10960, 396, 110, 2307,
	396, 110, 8243, 396, 23, 254, 396, 23, 67, 396, 23, 70, 396, 23, 79, 396,
	23, 93, 396, 23, 100, 396, 23, 139, 396, 23, 157, 396, 23, 140, 396, 23,
	160, 396, 9157, 6, 47, 9, 7728, 47, 9, 7734, 47, 9, 7732, 47, 9, 7729,
	47, 9, 7731, 47, 9, 7730, 47, 9, 7733, 47, 9, 802, 3409, 47, 9, 7727,
	47, 9, 7726, 47, 9, 7725, 47, 9, 802, 1900, 47, 9, 802, 3676, 47, 9,
	802, 3873, 47, 9, 802, 3872, 47, 9, 802, 3871, 47, 9, 802, 3140, 47, 9,
	802, 3139, 47, 9, 802, 1870, 47, 9, 802, 3520, 47, 9, 802, 1869, 47, 9,
	802, 3393, 47, 9, 802, 3392, 47, 9, 802, 3391, 47, 9, 802, 3344, 47, 9,
	802, 3343, 47, 9, 802, 1942, 47, 9, 802, 3856, 103, 102, 9, 3580, 571, 103,
	102, 9, 3581, 106, 103, 102, 9, 3582, 620, 103, 102, 9, 8544, 2299, 103, 102,
	9, 8574, 647, 103, 102, 9, 8555, 1609, 103, 102, 9, 8527, 606, 103, 102, 9,
	8658, 8275, 103, 102, 9, 3583, 668, 103, 102, 9, 3584, 286, 103, 102, 9, 3585,
	1063, 103, 102, 9, 8605, 2023, 103, 102, 9, 8597, 614, 103, 102, 9, 8593, 1708,
	103, 102, 9, 8524, 588, 103, 102, 9, 8673, 11385, 103, 102, 9, 8622, 4178, 103,
	102, 9, 8540, 11393, 103, 102, 9, 8528, 11391, 103, 102, 9, 8618, 11392, 103, 102,
	9, 3586, 1894, 103, 102, 9, 3587, 733, 103, 102, 9, 3588, 8928, 103, 102, 9,
	8538, 1038, 103, 102, 9, 8573, 951, 103, 102, 9, 8633, 3672, 103, 102, 9, 8668,
	8919, 103, 102, 9, 3589, 780, 103, 102, 9, 3590, 251, 103, 102, 9, 3591, 670,
	103, 102, 9, 8629, 1377, 103, 102, 9, 8576, 871, 103, 102, 9, 8582, 3124, 103,
	102, 9, 8617, 973, 103, 102, 9, 3592, 73, 103, 102, 9, 3593, 24, 103, 102,
	9, 3594, 60, 103, 102, 9, 8642, 496, 103, 102, 9, 8579, 51, 103, 102, 9,
	8644, 454, 103, 102, 9, 8626, 68, 103, 102, 9, 8616, 1133, 103, 102, 9, 8610,
	372, 103, 102, 9, 8614, 372, 103, 102, 9, 8674, 524, 103, 102, 9, 8657, 405,
	103, 102, 9, 3598, 632, 103, 102, 9, 3599, 195, 103, 102, 9, 3600, 611, 103,
	102, 9, 8641, 1250, 103, 102, 9, 8595, 666, 103, 102, 9, 8615, 1680, 103, 102,
	9, 8558, 574, 103, 102, 9, 8675, 10406, 103, 102, 9, 3604, 365, 103, 102, 9,
	3605, 202, 103, 102, 9, 3606, 679, 103, 102, 9, 8563, 1875, 103, 102, 9, 8552,
	448, 103, 102, 9, 8533, 1449, 103, 102, 9, 8632, 765, 103, 102, 9, 8589, 187,
	448, 103, 102, 9, 3595, 783, 103, 102, 9, 3596, 217, 103, 102, 9, 3597, 784,
	103, 102, 9, 8568, 1394, 103, 102, 9, 8659, 3254, 103, 102, 9, 8660, 725, 103,
	102, 9, 3601, 686, 103, 102, 9, 3602, 196, 103, 102, 9, 3603, 613, 103, 102,
	9, 8570, 1497, 103, 102, 9, 8534, 440, 103, 102, 9, 8583, 1500, 103, 102, 9,
	8548, 83, 103, 102, 9, 3607, 1218, 103, 102, 9, 3608, 317, 103, 102, 9, 3609,
	1316, 103, 102, 9, 8636, 1434, 103, 102, 9, 8592, 984, 103, 102, 9, 8639, 3470,
	103, 102, 9, 8542, 1031, 103, 102, 9, 8654, 187, 1031, 103, 102, 9, 3610, 14,
	103, 102, 9, 3611, 179, 103, 102, 9, 3612, 402, 103, 102, 9, 8588, 1517, 103,
	102, 9, 8559, 753, 103, 102, 9, 8620, 2034, 103, 102, 9, 8600, 416, 103, 102,
	9, 3613, 1023, 103, 102, 9, 3614, 502, 103, 102, 9, 3615, 1140, 103, 102, 9,
	8557, 1305, 103, 102, 9, 8554, 982, 103, 102, 9, 8612, 2228, 103, 102, 9, 8567,
	1028, 103, 102, 9, 8676, 7370, 103, 102, 9, 8580, 3315, 103, 102, 9, 3616, 2388,
	103, 102, 9, 3617, 9011, 103, 102, 9, 3618, 394, 103, 102, 9, 8596, 2379, 103,
	102, 9, 8648, 1907, 103, 102, 9, 8655, 479, 103, 102, 9, 3620, 143, 103, 102,
	9, 8665, 831, 103, 102, 9, 3619, 1834, 103, 102, 9, 8575, 446, 103, 102, 9,
	3621, 1589, 103, 102, 9, 8619, 553, 103, 102, 9, 8562, 7701, 103, 102, 9, 8607,
	7839, 103, 102, 9, 8532, 3412, 103, 102, 9, 8609, 2254, 103, 102, 9, 8566, 3428,
	103, 102, 9, 8531, 3404, 103, 102, 9, 8672, 2265, 103, 102, 9, 8525, 7850, 103,
	102, 9, 8569, 3708, 103, 102, 9, 3622, 1631, 103, 102, 9, 8561, 2385, 103, 102,
	9, 8594, 3706, 103, 102, 9, 8625, 2381, 103, 102, 9, 8635, 2384, 103, 102, 9,
	8599, 2383, 103, 102, 9, 8638, 9112, 103, 102, 9, 8606, 9120, 103, 102, 9, 8565,
	187, 2381, 103, 102, 9, 8585, 187, 2384, 103, 102, 9, 8662, 187, 2383, 103, 102,
	9, 8634, 703, 103, 102, 9, 8590, 224, 103, 102, 9, 8647, 828, 103, 102, 9,
	8669, 1577, 103, 102, 9, 8645, 7616, 103, 102, 9, 8646, 7612, 103, 102, 9, 8663,
	3704, 103, 102, 9, 8536, 3714, 103, 102, 9, 8656, 9155, 103, 102, 9, 8547, 427,
	103, 102, 9, 8578, 119, 103, 102, 9, 8529, 962, 103, 102, 9, 8560, 1155, 103,
	102, 9, 8530, 462, 103, 102, 9, 8581, 1657, 103, 102, 9, 8545, 808, 103, 102,
	9, 8624, 2343, 103, 102, 9, 8541, 1617, 103, 102, 9, 8601, 2347, 103, 102, 9,
	8526, 1888, 103, 102, 9, 8667, 1888, 103, 102, 9, 8551, 1887, 103, 102, 9, 8651,
	2346, 103, 102, 9, 8653, 2345, 103, 102, 9, 8666, 8764, 103, 102, 9, 8640, 187,
	1887, 103, 102, 9, 8584, 187, 2346, 103, 102, 9, 8621, 187, 2345, 103, 102, 9,
	8611, 3513, 103, 102, 9, 8571, 1611, 103, 102, 9, 8553, 3515, 103, 102, 9, 3623,
	3512, 103, 102, 9, 8587, 3511, 103, 102, 9, 8591, 3514, 103, 102, 9, 8637, 1863,
	103, 102, 9, 8603, 3355, 103, 102, 9, 8535, 2237, 103, 102, 9, 8627, 2238, 103,
	102, 9, 8572, 3354, 103, 102, 9, 8586, 1823, 103, 102, 9, 8550, 3357, 103, 102,
	9, 8549, 3356, 103, 102, 9, 8650, 173, 103, 102, 9, 8602, 2376, 103, 102, 9,
	8608, 1457, 103, 102, 9, 8604, 1903, 103, 102, 9, 8670, 2375, 103, 102, 9, 8598,
	1902, 103, 102, 9, 8546, 3694, 103, 102, 9, 8543, 2377, 103, 102, 9, 8631, 3720,
	103, 102, 9, 8671, 2390, 103, 102, 9, 8628, 1634, 103, 102, 9, 8613, 3725, 103,
	102, 9, 8661, 1175, 103, 102, 9, 8664, 413, 103, 102, 9, 8630, 1361, 103, 102,
	9, 8652, 1272, 103, 102, 9, 8564, 842, 103, 102, 9, 8623, 4166, 103, 102, 9,
	8556, 1113, 103, 102, 9, 8643, 3754, 103, 102, 9, 8537, 9376, 103, 102, 9, 8649,
	9393, 103, 102, 9, 8577, 9379, 103, 102, 9, 8539, 9388, 103, 102, 23, 67, 103,
	102, 23, 70, 103, 102, 23, 79, 103, 102, 23, 93, 103, 102, 23, 100, 103,
	102, 23, 139, 103, 102, 23, 157, 103, 102, 23, 140, 103, 102, 23, 160, 103,
	102, 43, 41, 10758, 103, 102, 43, 41, 1055, 103, 102, 43, 41, 2267, 103, 102,
	43, 41, 1266, 103, 102, 43, 41, 280, 1266, 103, 102, 43, 41, 159, 1266, 103,
	102, 43, 41, 1325, 266, 10, 5, 2096, 266, 10, 5, 3204, 266, 10, 5, 2315,
	266, 10, 5, 3659, 266, 10, 5, 251, 266, 10, 5, 3983, 266, 10, 5, 462,
	266, 10, 5, 1756, 266, 10, 5, 173, 266, 10, 5, 51, 266, 10, 5, 502,
	266, 10, 5, 73, 266, 10, 5, 68, 266, 10, 5, 453, 266, 10, 5, 4206,
	266, 10, 5, 488, 266, 10, 5, 394, 266, 10, 5, 439, 266, 10, 5, 179,
	266, 10, 5, 60, 266, 10, 5, 3462, 266, 10, 5, 671, 266, 10, 5, 143,
	266, 10, 5, 2449, 266, 10, 5, 224, 266, 10, 5, 363, 266, 10, 5, 613,
	266, 10, 5, 1459, 266, 10, 5, 413, 266, 10, 5, 361, 266, 10, 5, 1823,
	266, 10, 5, 2038, 266, 10, 5, 1863, 266, 10, 5, 321, 266, 7, 5, 2096,
	266, 7, 5, 3204, 266, 7, 5, 2315, 266, 7, 5, 3659, 266, 7, 5, 251,
	266, 7, 5, 3983, 266, 7, 5, 462, 266, 7, 5, 1756, 266, 7, 5, 173,
	266, 7, 5, 51, 266, 7, 5, 502, 266, 7, 5, 73, 266, 7, 5, 68,
	266, 7, 5, 453, 266, 7, 5, 4206, 266, 7, 5, 488, 266, 7, 5, 394,
	266, 7, 5, 439, 266, 7, 5, 179, 266, 7, 5, 60, 266, 7, 5, 3462,
	266, 7, 5, 671, 266, 7, 5, 143, 266, 7, 5, 2449, 266, 7, 5, 224,
	266, 7, 5, 363, 266, 7, 5, 613, 266, 7, 5, 1459, 266, 7, 5, 413,
	266, 7, 5, 361, 266, 7, 5, 1823, 266, 7, 5, 2038, 266, 7, 5, 1863,
	266, 7, 5, 321, 266, 2096, 1877, 266, 26, 1877, 266, 1578, 56, 266, 299, 266,
	267, 75, 266, 7489, 267, 75, 266, 693, 266, 2371, 56, 266, 23, 254, 266, 23,
	67, 266, 23, 70, 266, 23, 79, 266, 23, 93, 266, 23, 100, 266, 23, 139,
	266, 23, 157, 266, 23, 140, 266, 23, 160, 266, 105, 672, 56, 266, 105, 629,
	56, 204, 174, 41, 67, 204, 174, 41, 70, 204, 174, 41, 79, 204, 174, 41,
	93, 204, 174, 41, 100, 204, 174, 41, 139, 204, 174, 41, 157, 204, 174, 41,
	140, 204, 174, 41, 160, 204, 174, 41, 280, 204, 174, 41, 357, 204, 174, 41,
	451, 204, 174, 41, 605, 204, 174, 41, 551, 204, 174, 41, 748, 204, 174, 41,
	566, 204, 174, 41, 876, 204, 174, 41, 529, 204, 174, 41, 67, 159, 204, 174,
	41, 70, 159, 204, 174, 41, 79, 159, 204, 174, 41, 93, 159, 204, 174, 41,
	100, 159, 204, 174, 41, 139, 159, 204, 174, 41, 157, 159, 204, 174, 41, 140,
	159, 204, 174, 41, 160, 159, 204, 174, 41, 67, 203, 204, 174, 41, 70, 203,
	204, 174, 41, 79, 203, 204, 174, 41, 93, 203, 204, 174, 41, 100, 203, 204,
	174, 41, 139, 203, 204, 174, 41, 157, 203, 204, 174, 41, 140, 203, 204, 174,
	41, 160, 203, 204, 174, 41, 280, 203, 204, 174, 41, 357, 203, 204, 174, 41,
	451, 203, 204, 174, 41, 605, 203, 204, 174, 41, 551, 203, 204, 174, 41, 748,
	203, 204, 174, 41, 566, 203, 204, 174, 41, 876, 203, 204, 174, 41, 529, 203,
	204, 174, 41, 2316, 204, 174, 41, 8361, 204, 174, 2316, 56, 204, 174, 41, 8127,
	204, 174, 41, 8128, 204, 174, 41, 1099, 67, 204, 174, 41, 1099, 70, 204, 174,
	41, 1099, 79, 204, 174, 41, 1099, 93, 204, 174, 41, 1099, 100, 204, 174, 41,
	1099, 139, 204, 174, 41, 1099, 157, 204, 174, 41, 1099, 140, 204, 174, 41, 1099,
	160, 204, 174, 2432, 204, 174, 234, 67, 516, 204, 174, 234, 67, 133, 204, 174,
	234, 79, 890, 204, 174, 1247, 56, 204, 174, 41, 506, 67, 204, 174, 41, 506,
	70, 204, 174, 41, 506, 280, 203, 204, 174, 506, 2316, 56, 385, 174, 41, 67,
	385, 174, 41, 70, 385, 174, 41, 79, 385, 174, 41, 93, 385, 174, 41, 100,
	385, 174, 41, 139, 385, 174, 41, 157, 385, 174, 41, 140, 385, 174, 41, 160,
	385, 174, 41, 280, 385, 174, 41, 357, 385, 174, 41, 451, 385, 174, 41, 605,
	385, 174, 41, 551, 385, 174, 41, 748, 385, 174, 41, 566, 385, 174, 41, 876,
	385, 174, 41, 529, 385, 174, 41, 67, 159, 385, 174, 41, 70, 159, 385, 174,
	41, 79, 159, 385, 174, 41, 93, 159, 385, 174, 41, 100, 159, 385, 174, 41,
	139, 159, 385, 174, 41, 157, 159, 385, 174, 41, 140, 159, 385, 174, 41, 160,
	159, 385, 174, 41, 67, 203, 385, 174, 41, 70, 203, 385, 174, 41, 79, 203,
	385, 174, 41, 93, 203, 385, 174, 41, 100, 203, 385, 174, 41, 139, 203, 385,
	174, 41, 157, 203, 385, 174, 41, 140, 203, 385, 174, 41, 160, 203, 385, 174,
	41, 280, 203, 385, 174, 41, 357, 203, 385, 174, 41, 451, 203, 385, 174, 41,
	605, 203, 385, 174, 41, 551, 203, 385, 174, 41, 748, 203, 385, 174, 41, 566,
	203, 385, 174, 41, 876, 203, 385, 174, 41, 529, 203, 385, 174, 8725, 385, 174,
	506, 41, 70, 385, 174, 506, 41, 79, 385, 174, 506, 41, 93, 385, 174, 506,
	41, 100, 385, 174, 506, 41, 139, 385, 174, 506, 41, 157, 385, 174, 506, 41,
	140, 385, 174, 506, 41, 160, 385, 174, 506, 41, 280, 385, 174, 506, 41, 93,
	159, 385, 174, 506, 41, 139, 159, 385, 174, 506, 41, 70, 203, 385, 174, 506,
	41, 280, 203, 385, 174, 234, 67, 133, 385, 174, 234, 67, 2494, 13, 19, 144,
	13, 19, 476, 13, 19, 223, 13, 19, 782, 13, 19, 488, 13, 19, 867, 13,
	19, 199, 13, 19, 520, 13, 19, 115, 13, 19, 439, 13, 19, 318, 13, 19,
	108, 13, 19, 355, 13, 19, 435, 13, 19, 475, 13, 19, 526, 13, 19, 565,
	13, 19, 549, 13, 19, 531, 13, 19, 486, 13, 19, 423, 13, 19, 708, 13,
	19, 351, 13, 19, 1263, 13, 19, 579, 13, 19, 934, 13, 19, 674, 13, 19,
	743, 476, 13, 19, 743, 355, 13, 19, 743, 526, 13, 19, 743, 549, 13, 19,
	105, 476, 13, 19, 105, 223, 13, 19, 105, 447, 13, 19, 105, 199, 13, 19,
	105, 115, 13, 19, 105, 439, 13, 19, 105, 318, 13, 19, 105, 108, 13, 19,
	105, 355, 13, 19, 105, 435, 13, 19, 105, 475, 13, 19, 105, 526, 13, 19,
	105, 565, 13, 19, 105, 549, 13, 19, 105, 486, 13, 19, 105, 423, 13, 19,
	105, 708, 13, 19, 105, 351, 13, 19, 105, 579, 13, 19, 105, 674, 13, 19,
	814, 223, 13, 19, 814, 199, 13, 19, 814, 115, 13, 19, 814, 318, 13, 19,
	814, 355, 13, 19, 814, 435, 13, 19, 814, 475, 13, 19, 814, 565, 13, 19,
	814, 549, 13, 19, 814, 486, 13, 19, 814, 351, 13, 19, 814, 579, 13, 19,
	814, 674, 13, 19, 814, 743, 355, 13, 19, 814, 743, 549, 13, 19, 696, 476,
	13, 19, 696, 223, 13, 19, 696, 447, 13, 19, 696, 199, 13, 19, 696, 520,
	13, 19, 696, 115, 13, 19, 696, 439, 13, 19, 696, 108, 13, 19, 696, 355,
	13, 19, 696, 435, 13, 19, 696, 475, 13, 19, 696, 526, 13, 19, 696, 565,
	13, 19, 696, 549, 13, 19, 696, 486, 13, 19, 696, 423, 13, 19, 696, 708,
	13, 19, 696, 351, 13, 19, 696, 579, 13, 19, 696, 934, 13, 19, 696, 674,
	13, 19, 696, 743, 476, 13, 19, 696, 743, 526, 13, 19, 659, 144, 13, 19,
	659, 476, 13, 19, 659, 223, 13, 19, 659, 782, 13, 19, 659, 447, 13, 19,
	659, 488, 13, 19, 659, 867, 13, 19, 659, 199, 13, 19, 659, 520, 13, 19,
	659, 115, 13, 19, 659, 318, 13, 19, 659, 108, 13, 19, 659, 355, 13, 19,
	659, 435, 13, 19, 659, 475, 13, 19, 659, 526, 13, 19, 659, 565, 13, 19,
	659, 549, 13, 19, 659, 531, 13, 19, 659, 486, 13, 19, 659, 423, 13, 19,
	659, 708, 13, 19, 659, 351, 13, 19, 659, 1263, 13, 19, 659, 579, 13, 19,
	659, 934, 13, 19, 659, 674, 13, 19, 55, 2, 241, 476, 13, 19, 55, 2,
	241, 223, 13, 19, 55, 2, 241, 782, 13, 19, 55, 2, 241, 488, 13, 19,
	55, 2, 241, 867, 13, 19, 55, 2, 241, 199, 13, 19, 55, 2, 241, 520,
	13, 19, 55, 2, 241, 115, 13, 19, 55, 2, 241, 318, 13, 19, 55, 2,
	241, 108, 13, 19, 55, 2, 241, 355, 13, 19, 55, 2, 241, 435, 13, 19,
	55, 2, 241, 475, 13, 19, 55, 2, 241, 526, 13, 19, 55, 2, 241, 565,
	13, 19, 55, 2, 241, 549, 13, 19, 55, 2, 241, 531, 13, 19, 55, 2,
	241, 486, 13, 19, 55, 2, 241, 423, 13, 19, 55, 2, 241, 708, 13, 19,
	55, 2, 241, 351, 13, 19, 55, 2, 241, 1263, 13, 19, 55, 2, 241, 579,
	13, 19, 55, 2, 241, 934, 13, 19, 55, 2, 241, 674, 13, 19, 461, 108,
	8, 199, 8, 1496, 13, 19, 461, 199, 8, 782, 484, 152, 373, 1062, 484, 152,
	253, 1062, 484, 152, 153, 1062, 484, 152, 214, 1062, 484, 152, 789, 1204, 484, 152,
	1213, 1204, 484, 152, 81, 1204, 484, 152, 67, 95, 1126, 484, 152, 70, 95, 1126,
	484, 152, 79, 95, 1126, 484, 152, 93, 95, 1126, 484, 152, 100, 95, 1126, 484,
	152, 139, 95, 1126, 484, 152, 157, 95, 1126, 484, 152, 140, 95, 1126, 484, 152,
	160, 95, 1126, 484, 152, 67, 95, 1119, 484, 152, 70, 95, 1119, 484, 152, 79,
	95, 1119, 484, 152, 93, 95, 1119, 484, 152, 100, 95, 1119, 484, 152, 139, 95,
	1119, 484, 152, 157, 95, 1119, 484, 152, 140, 95, 1119, 484, 152, 160, 95, 1119,
	484, 152, 67, 95, 824, 484, 152, 70, 95, 824, 484, 152, 79, 95, 824, 484,
	152, 93, 95, 824, 484, 152, 100, 95, 824, 484, 152, 139, 95, 824, 484, 152,
	157, 95, 824, 484, 152, 140, 95, 824, 484, 152, 160, 95, 824, 484, 152, 9761,
	484, 152, 9549, 484, 152, 2111, 484, 152, 6498, 484, 152, 10504, 484, 152, 10609, 484,
	152, 5904, 484, 152, 11360, 484, 152, 1849, 484, 152, 870, 226, 152, 135, 870, 226,
	152, 135, 2, 637, 2, 637, 226, 152, 135, 2, 637, 2, 638, 226, 152, 135,
	2, 637, 2, 639, 226, 152, 135, 2, 637, 2, 640, 226, 152, 135, 2, 637,
	2, 641, 226, 152, 135, 2, 637, 2, 642, 226, 152, 135, 2, 637, 2, 643,
	226, 152, 135, 2, 638, 2, 637, 226, 152, 135, 2, 638, 2, 638, 226, 152,
	135, 2, 638, 2, 639, 226, 152, 135, 2, 638, 2, 640, 226, 152, 135, 2,
	638, 2, 641, 226, 152, 135, 2, 638, 2, 642, 226, 152, 135, 2, 638, 2,
	643, 226, 152, 135, 2, 639, 2, 637, 226, 152, 135, 2, 639, 2, 638, 226,
	152, 135, 2, 639, 2, 639, 226, 152, 135, 2, 639, 2, 640, 226, 152, 135,
	2, 639, 2, 641, 226, 152, 135, 2, 639, 2, 642, 226, 152, 135, 2, 639,
	2, 643, 226, 152, 135, 2, 640, 2, 637, 226, 152, 135, 2, 640, 2, 638,
	226, 152, 135, 2, 640, 2, 639, 226, 152, 135, 2, 640, 2, 640, 226, 152,
	135, 2, 640, 2, 641, 226, 152, 135, 2, 640, 2, 642, 226, 152, 135, 2,
	640, 2, 643, 226, 152, 135, 2, 641, 2, 637, 226, 152, 135, 2, 641, 2,
	638, 226, 152, 135, 2, 641, 2, 639, 226, 152, 135, 2, 641, 2, 640, 226,
	152, 135, 2, 641, 2, 641, 226, 152, 135, 2, 641, 2, 642, 226, 152, 135,
	2, 641, 2, 643, 226, 152, 135, 2, 642, 2, 637, 226, 152, 135, 2, 642,
	2, 638, 226, 152, 135, 2, 642, 2, 639, 226, 152, 135, 2, 642, 2, 640,
	226, 152, 135, 2, 642, 2, 641, 226, 152, 135, 2, 642, 2, 642, 226, 152,
	135, 2, 642, 2, 643, 226, 152, 135, 2, 643, 2, 637, 226, 152, 135, 2,
	643, 2, 638, 226, 152, 135, 2, 643, 2, 639, 226, 152, 135, 2, 643, 2,
	640, 226, 152, 135, 2, 643, 2, 641, 226, 152, 135, 2, 643, 2, 642, 226,
	152, 135, 2, 643, 2, 643, 226, 152, 86, 870, 226, 152, 86, 2, 637, 2,
	637, 226, 152, 86, 2, 637, 2, 638, 226, 152, 86, 2, 637, 2, 639, 226,
	152, 86, 2, 637, 2, 640, 226, 152, 86, 2, 637, 2, 641, 226, 152, 86,
	2, 637, 2, 642, 226, 152, 86, 2, 637, 2, 643, 226, 152, 86, 2, 638,
	2, 637, 226, 152, 86, 2, 638, 2, 638, 226, 152, 86, 2, 638, 2, 639,
	226, 152, 86, 2, 638, 2, 640, 226, 152, 86, 2, 638, 2, 641, 226, 152,
	86, 2, 638, 2, 642, 226, 152, 86, 2, 638, 2, 643, 226, 152, 86, 2,
	639, 2, 637, 226, 152, 86, 2, 639, 2, 638, 226, 152, 86, 2, 639, 2,
	639, 226, 152, 86, 2, 639, 2, 640, 226, 152, 86, 2, 639, 2, 641, 226,
	152, 86, 2, 639, 2, 642, 226, 152, 86, 2, 639, 2, 643, 226, 152, 86,
	2, 640, 2, 637, 226, 152, 86, 2, 640, 2, 638, 226, 152, 86, 2, 640,
	2, 639, 226, 152, 86, 2, 640, 2, 640, 226, 152, 86, 2, 640, 2, 641,
	226, 152, 86, 2, 640, 2, 642, 226, 152, 86, 2, 640, 2, 643, 226, 152,
	86, 2, 641, 2, 637, 226, 152, 86, 2, 641, 2, 638, 226, 152, 86, 2,
	641, 2, 639, 226, 152, 86, 2, 641, 2, 640, 226, 152, 86, 2, 641, 2,
	641, 226, 152, 86, 2, 641, 2, 642, 226, 152, 86, 2, 641, 2, 643, 226,
	152, 86, 2, 642, 2, 637, 226, 152, 86, 2, 642, 2, 638, 226, 152, 86,
	2, 642, 2, 639, 226, 152, 86, 2, 642, 2, 640, 226, 152, 86, 2, 642,
	2, 641, 226, 152, 86, 2, 642, 2, 642, 226, 152, 86, 2, 642, 2, 643,
	226, 152, 86, 2, 643, 2, 637, 226, 152, 86, 2, 643, 2, 638, 226, 152,
	86, 2, 643, 2, 639, 226, 152, 86, 2, 643, 2, 640, 226, 152, 86, 2,
	643, 2, 641, 226, 152, 86, 2, 643, 2, 642, 226, 152, 86, 2, 643, 2,
	643, 284, 269, 870, 284, 269, 1738, 95, 927, 284, 269, 70, 95, 927, 284, 269,
	79, 95, 927, 284, 269, 93, 95, 927, 284, 269, 100, 95, 927, 284, 269, 139,
	95, 927, 284, 269, 157, 95, 927, 284, 269, 140, 95, 927, 284, 269, 160, 95,
	927, 284, 269, 280, 95, 927, 284, 269, 1598, 95, 927, 284, 269, 563, 95, 927,
	284, 269, 809, 95, 927, 284, 269, 806, 95, 927, 284, 269, 1738, 95, 830, 284,
	269, 70, 95, 830, 284, 269, 79, 95, 830, 284, 269, 93, 95, 830, 284, 269,
	100, 95, 830, 284, 269, 139, 95, 830, 284, 269, 157, 95, 830, 284, 269, 140,
	95, 830, 284, 269, 160, 95, 830, 284, 269, 280, 95, 830, 284, 269, 1598, 95,
	830, 284, 269, 563, 95, 830, 284, 269, 809, 95, 830, 284, 269, 806, 95, 830,
	284, 269, 789, 1849, 284, 269, 1738, 95, 908, 284, 269, 70, 95, 908, 284, 269,
	79, 95, 908, 284, 269, 93, 95, 908, 284, 269, 100, 95, 908, 284, 269, 139,
	95, 908, 284, 269, 157, 95, 908, 284, 269, 140, 95, 908, 284, 269, 160, 95,
	908, 284, 269, 280, 95, 908, 284, 269, 1598, 95, 908, 284, 269, 563, 95, 908,
	284, 269, 809, 95, 908, 284, 269, 806, 95, 908, 284, 269, 74, 1849, 284, 269,
	1738, 95, 907, 284, 269, 70, 95, 907, 284, 269, 79, 95, 907, 284, 269, 93,
	95, 907, 284, 269, 100, 95, 907, 284, 269, 139, 95, 907, 284, 269, 157, 95,
	907, 284, 269, 140, 95, 907, 284, 269, 160, 95, 907, 284, 269, 280, 95, 907,
	284, 269, 1598, 95, 907, 284, 269, 563, 95, 907, 284, 269, 809, 95, 907, 284,
	269, 806, 95, 907, 284, 269, 81, 1849, 284, 269, 7349, 284, 269, 752, 2, 291,
	284, 269, 752, 2, 192, 284, 269, 752, 2, 273, 284, 269, 752, 2, 349, 284,
	269, 752, 2, 387, 284, 269, 752, 2, 466, 284, 269, 752, 2, 568, 284, 269,
	752, 2, 772, 284, 269, 752, 2, 869, 284, 269, 752, 2, 1278, 284, 269, 752,
	2, 1180, 284, 269, 752, 2, 1279, 284, 269, 752, 2, 1280, 284, 269, 752, 2,
	1281, 284, 269, 752, 2, 1365, 284, 269, 752, 2, 1366, 284, 269, 752, 2, 1521,
	284, 269, 752, 2, 1367, 284, 269, 752, 2, 1726, 284, 269, 752, 2, 2061, 284,
	269, 752, 2, 2062, 23, 254, 426, 322, 23, 254, 383, 23, 67, 383, 23, 70,
	383, 23, 79, 383, 23, 93, 383, 23, 100, 383, 23, 139, 383, 23, 157, 383,
	23, 140, 383, 23, 160, 383, 580, 62, 66, 2, 64, 23, 254, 580, 237, 62,
	66, 2, 64, 23, 254, 62, 254, 8, 860, 62, 721, 36, 62, 1298, 6, 8,
	2411, 1287, 162, 12, 10, 5, 24, 162, 12, 10, 5, 71, 162, 12, 10, 5,
	104, 162, 12, 10, 5, 98, 162, 12, 10, 5, 51, 162, 12, 10, 5, 176,
	162, 12, 10, 5, 220, 162, 12, 10, 5, 235, 162, 12, 10, 5, 73, 162,
	12, 10, 5, 278, 162, 12, 10, 5, 227, 162, 12, 10, 5, 136, 162, 12,
	10, 5, 205, 162, 12, 10, 5, 151, 162, 12, 10, 5, 68, 162, 12, 10,
	5, 249, 162, 12, 10, 5, 389, 162, 12, 10, 5, 122, 162, 12, 10, 5,
	121, 162, 12, 10, 5, 221, 162, 12, 10, 5, 60, 162, 12, 10, 5, 229,
	162, 12, 10, 5, 290, 162, 12, 10, 5, 268, 162, 12, 10, 5, 218, 162,
	12, 10, 5, 250, 687, 586, 1070, 12, 10, 5, 121, 62, 59, 12, 10, 5,
	104, 62, 59, 12, 10, 5, 122, 62, 3156, 62, 11394, 6695, 16, 126, 12, 10,
	5, 24, 126, 12, 10, 5, 71, 126, 12, 10, 5, 104, 126, 12, 10, 5,
	98, 126, 12, 10, 5, 51, 126, 12, 10, 5, 176, 126, 12, 10, 5, 220,
	126, 12, 10, 5, 235, 126, 12, 10, 5, 73, 126, 12, 10, 5, 278, 126,
	12, 10, 5, 227, 126, 12, 10, 5, 136, 126, 12, 10, 5, 205, 126, 12,
	10, 5, 151, 126, 12, 10, 5, 68, 126, 12, 10, 5, 249, 126, 12, 10,
	5, 389, 126, 12, 10, 5, 122, 126, 12, 10, 5, 121, 126, 12, 10, 5,
	221, 126, 12, 10, 5, 60, 126, 12, 10, 5, 229, 126, 12, 10, 5, 290,
	126, 12, 10, 5, 268, 126, 12, 10, 5, 218, 126, 12, 10, 5, 250, 126,
	1839, 126, 1623, 126, 10286, 126, 1987, 126, 9801, 126, 4176, 237, 62, 12, 10, 5,
	24, 237, 62, 12, 10, 5, 71, 237, 62, 12, 10, 5, 104, 237, 62, 12,
	10, 5, 98, 237, 62, 12, 10, 5, 51, 237, 62, 12, 10, 5, 176, 237,
	62, 12, 10, 5, 220, 237, 62, 12, 10, 5, 235, 237, 62, 12, 10, 5,
	73, 237, 62, 12, 10, 5, 278, 237, 62, 12, 10, 5, 227, 237, 62, 12,
	10, 5, 136, 237, 62, 12, 10, 5, 205, 237, 62, 12, 10, 5, 151, 237,
	62, 12, 10, 5, 68, 237, 62, 12, 10, 5, 249, 237, 62, 12, 10, 5,
	389, 237, 62, 12, 10, 5, 122, 237, 62, 12, 10, 5, 121, 237, 62, 12,
	10, 5, 221, 237, 62, 12, 10, 5, 60, 237, 62, 12, 10, 5, 229, 237,
	62, 12, 10, 5, 290, 237, 62, 12, 10, 5, 268, 237, 62, 12, 10, 5,
	218, 237, 62, 12, 10, 5, 250, 564, 3640, 6, 564, 8765, 6, 564, 8912, 6,
	62, 3155, 62, 104, 8, 2411, 1287, 62, 2266, 1025, 237, 126, 12, 10, 5, 24,
	237, 126, 12, 10, 5, 71, 237, 126, 12, 10, 5, 104, 237, 126, 12, 10,
	5, 98, 237, 126, 12, 10, 5, 51, 237, 126, 12, 10, 5, 176, 237, 126,
	12, 10, 5, 220, 237, 126, 12, 10, 5, 235, 237, 126, 12, 10, 5, 73,
	237, 126, 12, 10, 5, 278, 237, 126, 12, 10, 5, 227, 237, 126, 12, 10,
	5, 136, 237, 126, 12, 10, 5, 205, 237, 126, 12, 10, 5, 151, 237, 126,
	12, 10, 5, 68, 237, 126, 12, 10, 5, 249, 237, 126, 12, 10, 5, 389,
	237, 126, 12, 10, 5, 122, 237, 126, 12, 10, 5, 121, 237, 126, 12, 10,
	5, 221, 237, 126, 12, 10, 5, 60, 237, 126, 12, 10, 5, 229, 237, 126,
	12, 10, 5, 290, 237, 126, 12, 10, 5, 268, 237, 126, 12, 10, 5, 218,
	237, 126, 12, 10, 5, 250, 723, 237, 126, 12, 10, 5, 249, 237, 126, 2270,
	237, 126, 119, 237, 126, 195, 237, 126, 741, 237, 126, 4176, 58, 7001, 126, 6529,
	126, 6692, 126, 1575, 126, 7929, 126, 270, 126, 767, 126, 1917, 126, 10471, 126, 111,
	8, 672, 56, 126, 11265, 126, 79, 98, 126, 999, 1674, 126, 70, 227, 126, 93,
	227, 126, 140, 227, 126, 100, 665, 67, 126, 157, 665, 67, 126, 357, 2, 70,
	665, 70, 126, 748, 249, 126, 67, 159, 357, 249, 126, 12, 7, 5, 98, 126,
	7692, 126, 7693, 126, 479, 2, 10053, 126, 8469, 126, 10397, 126, 11054, 126, 11249, 2341,
	2598, 16, 680, 570, 16, 5, 24, 680, 570, 16, 5, 71, 680, 570, 16, 5,
	104, 680, 570, 16, 5, 98, 680, 570, 16, 5, 51, 680, 570, 16, 5, 176,
	680, 570, 16, 5, 220, 680, 570, 16, 5, 235, 680, 570, 16, 5, 73, 680,
	570, 16, 5, 278, 680, 570, 16, 5, 227, 680, 570, 16, 5, 136, 680, 570,
	16, 5, 205, 680, 570, 16, 5, 151, 680, 570, 16, 5, 68, 680, 570, 16,
	5, 249, 680, 570, 16, 5, 389, 680, 570, 16, 5, 122, 680, 570, 16, 5,
	121, 680, 570, 16, 5, 221, 680, 570, 16, 5, 60, 680, 570, 16, 5, 229,
	680, 570, 16, 5, 290, 680, 570, 16, 5, 268, 680, 570, 16, 5, 218, 680,
	570, 16, 5, 250, 58, 222, 7832, 126, 91, 8245, 126, 91, 195, 126, 17, 429,
	18, 2, 4828, 126, 17, 429, 18, 2, 4798, 126, 17, 429, 18, 2, 4731, 126,
	91, 710, 126, 17, 429, 18, 2, 2809, 126, 17, 429, 18, 2, 4788, 126, 17,
	429, 18, 2, 5011, 126, 17, 429, 18, 2, 4790, 126, 17, 429, 18, 2, 4685,
	126, 17, 429, 18, 2, 4875, 126, 17, 429, 18, 2, 4933, 126, 17, 429, 18,
	2, 4869, 126, 17, 429, 18, 2, 4713, 126, 17, 429, 18, 2, 4801, 126, 17,
	429, 18, 2, 4705, 126, 17, 429, 18, 2, 4870, 126, 17, 429, 18, 2, 4709,
	126, 17, 429, 18, 2, 5000, 126, 17, 429, 18, 2, 4975, 126, 17, 429, 18,
	2, 5012, 126, 17, 429, 18, 2, 4784, 126, 17, 429, 18, 2, 4738, 126, 17,
	429, 18, 2, 4916, 126, 17, 429, 18, 2, 4834, 126, 17, 429, 18, 2, 4843,
	126, 17, 429, 18, 2, 4683, 126, 17, 429, 18, 2, 2808, 126, 17, 429, 18,
	2, 5015, 126, 17, 429, 18, 2, 4800, 126, 17, 429, 18, 2, 4684, 126, 17,
	429, 18, 2, 4732, 126, 17, 429, 18, 2, 4837, 126, 17, 429, 18, 2, 5013,
	126, 17, 429, 18, 2, 2817, 126, 17, 429, 18, 2, 4998, 126, 17, 429, 18,
	2, 4999, 126, 17, 429, 18, 2, 4734, 126, 17, 429, 18, 2, 4915, 126, 17,
	429, 18, 2, 4884, 126, 17, 429, 18, 2, 4883, 126, 17, 429, 18, 2, 4978,
	126, 17, 429, 18, 2, 4717, 126, 17, 429, 18, 2, 4755, 126, 17, 429, 18,
	2, 5017, 687, 586, 1070, 17, 429, 18, 2, 4887, 687, 586, 1070, 17, 429, 18,
	2, 2808, 687, 586, 1070, 17, 429, 18, 2, 2809, 687, 586, 1070, 17, 429, 18,
	2, 4799, 687, 586, 1070, 17, 429, 18, 2, 4928, 687, 586, 1070, 17, 429, 18,
	2, 2817, 687, 586, 1070, 17, 429, 18, 2, 4995, 687, 586, 1070, 17, 429, 18,
	2, 4720, 687, 586, 1070, 17, 429, 18, 2, 4864, 62, 18, 5724, 62, 18, 5710,
	893, 16, 54, 1140, 893, 16, 54, 679, 893, 16, 54, 10371, 893, 16, 54, 900,
	893, 16, 54, 10382, 893, 16, 54, 6361, 6741, 7343, 468, 1703, 1633, 8, 10557, 4038,
	172, 8905, 4038, 3176, 653, 7050, 10611, 172, 3136, 10011, 1382, 653, 1633, 931, 575, 11253,
	8856, 1275, 848, 1825, 7183, 2, 5737, 848, 1825, 5787, 848, 1825, 5869, 2, 5901, 1825,
	8, 8785, 270, 624, 16, 4175, 1391, 624, 16, 1139, 516, 624, 16, 4175, 3374, 624,
	16, 426, 624, 16, 4170, 3374, 624, 16, 2318, 516, 624, 16, 4170, 1391, 624, 16,
	1391, 624, 270, 624, 8, 123, 1139, 516, 624, 8, 123, 2318, 516, 624, 8, 123,
	426, 624, 8, 123, 862, 8, 123, 7578, 391, 10367, 391, 4077, 74, 3262, 81, 862,
	81, 862, 8, 7, 1074, 81, 862, 2118, 1074, 81, 862, 2118, 1074, 8, 1335, 1074,
	8, 1335, 1074, 8, 2500, 1074, 8, 1615, 1074, 8, 10866, 7342, 1062, 3119, 123, 1590,
	1398, 10721, 6307, 6469, 10293, 7185, 1057, 6904, 1057, 1466, 1057, 6357, 1590, 3808, 10952, 6467,
	3118, 10102, 7735, 10610, 3118, 1300, 95, 8703, 1300, 95, 1476, 7713, 93, 730, 6545, 8719,
	730, 7283, 730, 730, 3327, 372, 1062, 8943, 10858, 5894, 7603, 3646, 11334, 10736, 8396, 6139,
	9739, 789, 3053, 1213, 3053, 9669, 9666, 6466, 10581, 7670, 3990, 95, 9747, 1890, 347, 1758,
	9792, 764, 1476, 6712, 1476, 972, 6690, 1476, 6732, 34, 1476, 10563, 2124, 10479, 3132, 3336,
	7369, 10091, 4045, 3842, 6859, 9524, 10625, 7368, 3967, 1081, 2134, 8, 1685, 6931, 926, 1215,
	3187, 10338, 1215, 1215, 3187, 7024, 3184, 6490, 146, 6370, 8460, 6734, 7834, 1938, 10368, 6205,
	124, 1938, 95, 1815, 6691, 1817, 34, 1442, 10754, 1707, 3398, 10230, 1759, 34, 758, 2026,
	1419, 6649, 1419, 4109, 3260, 3098, 1897, 3177, 3098, 8920, 1374, 1759, 1817, 34, 1442, 8,
	9753, 1759, 8, 9784, 6697, 9782, 1046, 11378, 9809, 6236, 2134, 1598, 2, 68, 2, 3533,
	2143, 1057, 3316, 2143, 7322, 7321, 10481, 1375, 2420, 9783, 6672, 972, 10734, 1057, 723, 7331,
	9738, 3226, 1217, 3252, 6384, 10582, 1062, 6478, 624, 11236, 6435, 2473, 10259, 7599, 1765, 581,
	8, 751, 347, 487, 48, 3129, 95, 7338, 2354, 1619, 10045, 1046, 49, 1607, 8, 8004,
	10589, 3655, 1320, 10444, 1389, 8235, 1755, 3061, 49, 1637, 1755, 2185, 49, 1637, 3320, 7364,
	5721, 10823, 6383, 1145, 7304, 2025, 3911, 6647, 7325, 1655, 34, 1081, 3655, 8908, 1762, 6521,
	7695, 5861, 9601, 442, 1314, 6524, 2541, 10822, 6532, 1539, 9687, 3060, 4158, 3349, 2187, 3414,
	10448, 2336, 6231, 3349, 1201, 6264, 1573, 284, 6381, 49, 664, 952, 49, 1637, 10270, 7618,
	49, 1607, 10908, 11240, 49, 10278, 2466, 3961, 8, 10258, 4067, 3875, 34, 972, 3989, 34,
	3989, 3127, 6155, 34, 7837, 6465, 826, 10457, 10139, 10622, 10500, 1619, 10907, 1145, 2454, 5786,
	3330, 10134, 3330, 10633, 1513, 8422, 7586, 2454, 8901, 2454, 1195, 3188, 2113, 34, 972, 11254,
	3319, 3418, 1257, 34, 972, 1215, 3418, 1257, 34, 9841, 2536, 4067, 9591, 34, 972, 2500,
	6377, 1230, 6367, 6188, 8, 1703, 1541, 2156, 1428, 3136, 3176, 6929, 1428, 1541, 6534, 1541,
	3234, 3234, 7994, 3689, 9642, 10548, 1428, 1541, 1428, 8, 7464, 2404, 1541, 1217, 1333, 2404,
	3310, 1333, 2404, 7842, 2112, 5903, 10764, 2336, 3425, 2330, 3425, 6689, 4027, 2473, 6926, 4027,
	7275, 8003, 3533, 1217, 2138, 3310, 2138, 81, 3805, 74, 3805, 2590, 81, 826, 2590, 74,
	826, 2464, 74, 2464, 8347, 6124, 3875, 34, 10395, 1381, 34, 36, 5790, 1135, 75, 1570,
	816, 2, 291, 2, 192, 1135, 75, 1570, 816, 2, 273, 1135, 75, 1570, 816, 2,
	349, 1135, 75, 1570, 816, 2, 387, 1135, 75, 1570, 816, 2, 466, 1952, 1326, 1921,
	931, 6292, 1550, 1999, 8398, 3874, 938, 1204, 6716, 4179, 10454, 1983, 1145, 1951, 2248, 2483,
	1621, 10100, 6474, 1398, 1933, 3120, 2202, 9523, 1344, 586, 6293, 5818, 7835, 8354, 3099, 1081,
	4109, 1081, 6251, 1699, 7685, 2141, 1374, 2141, 946, 2, 910, 1374, 2141, 1757, 9680, 8238,
	9780, 7029, 3146, 6122, 3146, 7017, 1326, 123, 1550, 123, 1999, 123, 3874, 123, 938, 123,
	1204, 123, 10502, 4179, 1145, 123, 1621, 123, 1398, 123, 1933, 123, 2232, 123, 7672, 123,
	11364, 123, 3096, 123, 9616, 123, 1933, 1040, 2421, 9815, 6481, 673, 1080, 1300, 1040, 432,
	840, 81, 111, 142, 1189, 132, 81, 130, 142, 1189, 132, 81, 48, 142, 1189, 132,
	81, 45, 142, 1189, 132, 7326, 78, 6, 2590, 78, 6, 1917, 78, 6, 1998, 111,
	6, 1998, 130, 6, 6533, 1143, 6, 189, 1143, 6, 3192, 2027, 1314, 7203, 9083, 221,
	2, 3961, 8014, 3259, 8207, 6229, 2027, 2149, 9856, 7673, 9791, 8713, 1340, 5884, 1340, 156,
	2, 7702, 1340, 2027, 3931, 2027, 6256, 7350, 6311, 372, 1976, 6312, 372, 1976, 6266, 7567,
	733, 1276, 3314, 733, 34, 1276, 1425, 1143, 70, 1038, 1425, 1143, 70, 11365, 1425, 1143,
	1936, 9527, 1276, 8, 6300, 3277, 6279, 8, 11214, 734, 8, 6249, 1313, 733, 8, 7611,
	427, 8718, 733, 8, 4128, 2405, 733, 2405, 1276, 1374, 2156, 11370, 9814, 1217, 9529, 1217,
	7582, 2244, 1374, 5798, 7199, 3034, 3034, 8890, 7953, 2496, 2274, 6932, 734, 7615, 6857, 8440,
	9009, 2435, 123, 8735, 7663, 6147, 1655, 10652, 9733, 1441, 56, 2330, 5, 190, 7488, 2518,
	1441, 3129, 6708, 8, 581, 11339, 6193, 581, 1383, 581, 70, 830, 10483, 581, 7610, 581,
	581, 8, 36, 1192, 581, 1213, 581, 1710, 581, 2443, 581, 581, 8, 1046, 3898, 830,
	581, 3226, 458, 10335, 8, 24, 77, 786, 1804, 148, 6294, 2099, 16, 6254, 2497, 16,
	6656, 16, 10495, 1994, 16, 3262, 501, 16, 9732, 95, 1657, 7336, 6221, 3249, 16, 1343,
	1375, 2547, 1375, 81, 1573, 159, 9773, 16, 2358, 1750, 1020, 7189, 96, 1298, 6, 2163,
	269, 1753, 8, 1711, 6, 1753, 8, 1298, 6, 1753, 8, 2208, 6, 1753, 8, 1939,
	6, 2358, 8, 11357, 1545, 8, 216, 2566, 34, 1711, 6, 10289, 3812, 2154, 6280, 8861,
	1813, 1556, 3773, 445, 7055, 1569, 1307, 189, 1569, 1307, 1096, 8, 724, 1096, 910, 111,
	2135, 4063, 2, 2403, 2135, 269, 132, 1545, 8, 216, 2566, 1545, 8, 209, 2566, 146,
	1545, 6540, 2444, 855, 2444, 9634, 550, 3919, 738, 3919, 3125, 10720, 8390, 3732, 3732, 8,
	6906, 2161, 468, 1380, 189, 1380, 1213, 1380, 1192, 1380, 1462, 1380, 6255, 1233, 6123, 10283,
	8779, 1004, 1953, 9593, 2216, 2336, 3935, 3045, 9840, 5716, 8473, 6457, 8772, 9562, 4101, 7955,
	4101, 9589, 51, 2, 8697, 16, 7958, 1136, 1136, 8, 209, 36, 53, 468, 1885, 8,
	3568, 826, 468, 1885, 8, 564, 826, 189, 1885, 8, 564, 826, 189, 1885, 8, 3568,
	826, 9788, 1937, 562, 3701, 1620, 1932, 1620, 1932, 8, 113, 36, 653, 48, 11230, 8875,
	1620, 1932, 2403, 433, 1620, 9714, 3045, 8, 1535, 1762, 1762, 8, 7333, 4158, 1762, 10763,
	3876, 11231, 3320, 9824, 9785, 10566, 9803, 6189, 10974, 113, 819, 847, 113, 34, 138, 189,
	125, 819, 847, 113, 34, 138, 189, 125, 819, 8, 62, 67, 715, 847, 209, 34,
	216, 189, 125, 819, 721, 209, 34, 216, 189, 125, 819, 145, 3134, 16, 156, 3134,
	16, 1342, 8, 1763, 89, 1342, 1342, 8, 67, 838, 575, 1342, 8, 79, 838, 2589,
	3090, 1804, 9759, 48, 2, 142, 3628, 1419, 45, 2, 142, 3628, 1419, 1881, 8, 7970,
	1469, 468, 1881, 8, 1149, 1149, 1881, 189, 1881, 1290, 1290, 8, 1763, 89, 3125, 3557,
	16, 3876, 1386, 870, 8, 138, 36, 53, 591, 8, 138, 36, 53, 347, 8, 672,
	56, 8, 48, 45, 36, 53, 10467, 8, 113, 36, 53, 442, 8, 216, 36, 53,
	433, 67, 1112, 1134, 16, 3489, 280, 1593, 16, 54, 12, 10, 2324, 1593, 16, 54,
	12, 7, 2324, 1593, 16, 54, 9361, 1593, 16, 54, 2533, 1593, 16, 54, 12, 2324,
	1027, 1804, 10865, 4186, 1832, 3743, 34, 2122, 7830, 9745, 8845, 10762, 6722, 972, 139, 530,
	391, 8, 94, 77, 1217, 16, 54, 6199, 1695, 7147, 74, 58, 1386, 81, 58, 1386,
	252, 789, 125, 252, 1192, 125, 252, 1462, 458, 252, 1192, 458, 7, 1462, 458, 7,
	1192, 458, 111, 2, 142, 789, 114, 130, 2, 142, 789, 114, 111, 2, 142, 7,
	789, 114, 130, 2, 142, 7, 789, 114, 134, 45, 790, 81, 125, 141, 45, 790,
	81, 125, 62, 425, 2436, 425, 2436, 8, 133, 2, 125, 76, 425, 2436, 1095, 48,
	1675, 8, 79, 63, 1095, 45, 1675, 8, 79, 63, 16, 54, 8724, 6450, 81, 12,
	425, 96, 12, 425, 6425, 425, 954, 16, 3256, 95, 2422, 8099, 8898, 10645, 8782, 8,
	160, 6273, 2124, 95, 7894, 654, 123, 67, 994, 654, 123, 70, 994, 654, 123, 79,
	994, 654, 123, 93, 994, 654, 123, 100, 994, 654, 123, 139, 994, 654, 123, 157,
	994, 654, 123, 140, 994, 654, 123, 160, 994, 654, 123, 280, 994, 654, 123, 944,
	994, 654, 123, 865, 994, 654, 123, 67, 2, 451, 654, 123, 70, 2, 451, 654,
	123, 79, 2, 451, 654, 123, 93, 2, 451, 654, 123, 100, 2, 451, 654, 123,
	139, 2, 451, 654, 123, 157, 2, 451, 654, 123, 140, 2, 451, 654, 123, 160,
	2, 451, 654, 123, 280, 2, 451, 654, 123, 944, 2, 451, 654, 123, 865, 2,
	451, 45, 1342, 45, 1342, 8, 67, 838, 575, 45, 1342, 8, 79, 838, 2589, 3137,
	3137, 8, 838, 2589, 10080, 1290, 1380, 6369, 8716, 654, 74, 2496, 34, 3190, 433, 9742,
	3419, 733, 372, 6309, 1167, 8403, 10442, 246, 10509, 3211, 4037, 4012, 4012, 11338, 8062, 733,
	6858, 48, 78, 1004, 1953, 1004, 1953, 8, 1096, 45, 78, 1004, 1953, 81, 4096, 1004,
	74, 4096, 1004, 1004, 347, 442, 95, 8878, 6531, 1620, 1932, 870, 95, 1136, 4022, 1136,
	1136, 8, 1615, 2226, 1136, 1469, 172, 4022, 1136, 8437, 9635, 74, 2444, 134, 48, 1928,
	134, 48, 6138, 1469, 134, 48, 3334, 1469, 134, 48, 9596, 134, 48, 6713, 48, 4187,
	78, 191, 1917, 78, 6, 564, 78, 8, 593, 4015, 261, 564, 78, 8, 593, 4015,
	261, 1998, 111, 6, 261, 1998, 130, 6, 261, 4156, 78, 261, 78, 8, 94, 913,
	726, 564, 78, 8, 2419, 669, 94, 34, 190, 593, 81, 130, 142, 48, 78, 132,
	791, 81, 48, 142, 132, 791, 81, 45, 142, 132, 791, 74, 48, 142, 132, 791,
	74, 45, 142, 132, 74, 48, 142, 1189, 132, 74, 45, 142, 1189, 132, 791, 81,
	111, 142, 132, 791, 81, 130, 142, 132, 791, 74, 111, 142, 132, 791, 74, 130,
	142, 132, 74, 111, 142, 1189, 132, 74, 130, 142, 1189, 132, 74, 581, 3235, 2154,
	1607, 34, 1326, 79, 9093, 6671, 3847, 9767, 6364, 74, 1086, 586, 1813, 1556, 81, 1086,
	586, 1813, 1556, 926, 586, 1813, 1556, 4056, 6388, 11361, 1607, 67, 1386, 1326, 70, 1386,
	1326, 79, 1386, 1326, 10874, 50, 3812, 2154, 1086, 1556, 1674, 3847, 2271, 2216, 2271, 3773,
	445, 2271, 1559, 8, 1169, 1559, 8, 1169, 34, 2429, 1559, 8, 2429, 1819, 8, 2429,
	1819, 8, 10827, 1819, 8, 524, 268, 74, 1307, 1307, 189, 1307, 269, 132, 6995, 269,
	1569, 124, 1569, 6355, 877, 664, 877, 664, 1096, 877, 664, 1646, 664, 664, 1096, 664,
	1646, 877, 1559, 877, 1096, 877, 3786, 1559, 1096, 3786, 11331, 1344, 664, 1646, 1344, 2135,
	1646, 3235, 4181, 8862, 8746, 2412, 847, 45, 34, 48, 1675, 819, 1763, 268, 2273, 3329,
	3986, 16, 3227, 3329, 3986, 16, 6670, 50, 1149, 10096, 2, 111, 3701, 1096, 8, 62,
	1169, 2517, 1545, 1292, 1442, 1224, 10487, 618, 372, 1976, 79, 1045, 53, 79, 1045, 76,
	79, 1045, 48, 79, 1045, 45, 48, 1343, 1122, 45, 1343, 1122, 70, 1343, 2129, 79,
	1343, 2129, 48, 2547, 1122, 45, 2547, 1122, 48, 2099, 1122, 45, 2099, 1122, 2362, 1122,
	1615, 2362, 1122, 1615, 2362, 936, 124, 8, 936, 936, 35, 268, 936, 124, 8, 35,
	268, 936, 37, 35, 268, 936, 124, 8, 37, 35, 268, 148, 906, 56, 936, 124,
	8, 37, 906, 11371, 1616, 8904, 7373, 10856, 10871, 10560, 95, 8414, 1976, 95, 8010, 8910,
	1584, 123, 1584, 123, 8, 706, 673, 123, 8, 2540, 95, 2290, 706, 123, 8, 189,
	432, 706, 123, 8, 189, 432, 34, 706, 673, 706, 123, 8, 189, 432, 34, 2151,
	1994, 706, 123, 8, 189, 432, 34, 4080, 2, 468, 673, 706, 123, 8, 7667, 706,
	123, 8, 3423, 4183, 123, 706, 123, 8, 706, 673, 123, 10266, 6917, 1815, 3892, 123,
	706, 123, 8, 581, 2, 925, 673, 706, 123, 8, 4037, 10452, 123, 497, 123, 7197,
	123, 11066, 123, 123, 8, 2151, 1994, 9683, 123, 6675, 123, 6674, 123, 1858, 123, 123,
	10807, 24, 1441, 1858, 123, 8, 706, 673, 1858, 123, 8, 468, 673, 123, 8, 2523,
	2, 788, 840, 123, 8, 2523, 2, 788, 840, 34, 4183, 1080, 123, 8, 2523, 2,
	788, 840, 34, 4080, 2, 468, 673, 3245, 123, 11373, 123, 5801, 123, 2438, 123, 2165,
	123, 9689, 123, 123, 8, 8463, 95, 10899, 3245, 1071, 3892, 123, 1821, 123, 8, 189,
	432, 5803, 123, 7294, 123, 4177, 123, 10441, 123, 10838, 123, 7608, 123, 8472, 2165, 123,
	123, 8, 189, 432, 7863, 123, 123, 8, 189, 432, 34, 2151, 1994, 123, 10281, 372,
	7293, 5877, 123, 7340, 123, 2497, 123, 3249, 123, 123, 1707, 432, 123, 8, 8767, 2341,
	1584, 938, 123, 8, 706, 673, 938, 123, 8, 2540, 95, 2290, 706, 938, 123, 8,
	189, 432, 706, 938, 123, 8, 581, 2, 925, 673, 938, 123, 8, 11382, 1679, 1858,
	938, 123, 8, 468, 673, 2438, 938, 123, 2165, 938, 123, 4177, 938, 123, 1981, 1821,
	123, 1981, 706, 123, 11087, 2, 130, 123, 123, 8, 3912, 673, 123, 8, 433, 7589,
	3364, 123, 8, 1917, 3364, 734, 6263, 6909, 1250, 2, 433, 2, 2210, 1621, 7697, 2,
	433, 2, 2210, 1621, 10486, 2, 433, 2, 2210, 1621, 7680, 734, 3877, 67, 78, 734,
	3877, 3128, 1143, 372, 6423, 734, 1821, 734, 8, 2438, 123, 734, 8, 7344, 1143, 214,
	153, 142, 730, 253, 153, 142, 730, 214, 373, 142, 730, 253, 373, 142, 730, 191,
	214, 153, 142, 730, 191, 253, 153, 142, 730, 191, 214, 373, 142, 730, 191, 253,
	373, 142, 730, 214, 153, 142, 1176, 730, 253, 153, 142, 1176, 730, 214, 373, 142,
	1176, 730, 253, 373, 142, 1176, 730, 96, 214, 153, 142, 1176, 730, 96, 253, 153,
	142, 1176, 730, 96, 214, 373, 142, 1176, 730, 96, 253, 373, 142, 1176, 730, 214,
	153, 142, 1193, 253, 153, 142, 1193, 214, 373, 142, 1193, 253, 373, 142, 1193, 96,
	214, 153, 142, 1193, 96, 253, 153, 142, 1193, 96, 214, 373, 142, 1193, 96, 253,
	373, 142, 1193, 3420, 1947, 58, 367, 3420, 1947, 58, 367, 372, 74, 58, 4002, 1947,
	58, 367, 4002, 1947, 58, 367, 372, 74, 58, 138, 1669, 216, 1669, 113, 1669, 209,
	1669, 35, 44, 945, 367, 96, 35, 44, 945, 367, 44, 189, 945, 367, 96, 44,
	189, 945, 367, 96, 1184, 367, 1494, 1184, 367, 66, 2, 64, 96, 55, 191, 383,
	610, 56, 367, 66, 2, 64, 96, 55, 383, 610, 56, 367, 66, 2, 64, 96,
	145, 55, 383, 610, 56, 367, 96, 1594, 367, 66, 2, 64, 1594, 367, 96, 66,
	2, 64, 1594, 367, 599, 96, 707, 599, 96, 747, 707, 1767, 1539, 747, 1767, 1539,
	1669, 7706, 4025, 3564, 1950, 1195, 156, 2, 4011, 2564, 156, 2, 4011, 2564, 8, 904,
	1040, 2564, 8795, 148, 10010, 10559, 4099, 4099, 1195, 2131, 1642, 2131, 10902, 2131, 322, 8860,
	5785, 1027, 3298, 1936, 1195, 1642, 1936, 1195, 4059, 1642, 4059, 3069, 1642, 3069, 10034, 11213,
	6919, 2567, 5860, 8467, 10875, 8888, 1230, 1950, 2529, 1950, 1230, 6356, 5730, 10878, 2486, 10105,
	10488, 135, 1694, 148, 86, 1694, 148, 2156, 6, 1936, 6387, 3898, 148, 738, 826, 347,
	1333, 3255, 433, 1565, 6, 3996, 16, 433, 3996, 16, 2445, 3561, 372, 7997, 1331, 16,
	725, 362, 3561, 16, 3841, 931, 16, 1907, 2, 3841, 931, 16, 6222, 433, 6223, 3105,
	1230, 3105, 3803, 433, 9670, 6476, 578, 8783, 16, 11366, 16, 10057, 1374, 16, 10855, 931,
	6543, 10373, 2114, 3089, 9652, 1389, 6736, 6128, 6530, 48, 3570, 114, 8, 893, 1390, 9821,
	6, 62, 2274, 2504, 6267, 16, 7568, 16, 6705, 34, 3528, 2497, 5711, 3964, 6129, 6203,
	1290, 6195, 1331, 95, 11374, 9521, 6, 3964, 10901, 10591, 9594, 7740, 10766, 7864, 7141, 9754,
	10443, 2025, 190, 6304, 1832, 34, 4186, 2485, 1916, 1399, 8903, 1950, 4097, 3668, 3121, 111,
	2, 142, 2354, 1183, 111, 2, 142, 1183, 111, 2, 142, 7, 1183, 7, 1183, 9269,
	2, 142, 1183, 1183, 3232, 1183, 5856, 3935, 1642, 1027, 3298, 6963, 3564, 9650, 2486, 3938,
	3668, 3938, 6374, 10439, 2226, 10263, 10430, 5902, 10070, 9724, 2567, 3911, 3988, 197, 16, 54,
	9932, 197, 16, 54, 1369, 197, 16, 54, 1027, 197, 16, 54, 848, 197, 16, 54,
	931, 197, 16, 54, 5837, 197, 16, 54, 1745, 3890, 197, 16, 54, 1745, 3890, 2,
	192, 197, 16, 54, 1745, 4162, 197, 16, 54, 1745, 4162, 2, 192, 197, 16, 54,
	2021, 197, 16, 54, 2021, 2, 192, 197, 16, 54, 2021, 2, 273, 197, 16, 54,
	2526, 197, 16, 54, 9709, 2526, 197, 16, 54, 74, 2526, 197, 16, 54, 1892, 1346,
	197, 16, 54, 1892, 1346, 2, 192, 197, 16, 54, 1892, 1346, 2, 273, 197, 16,
	54, 6522, 197, 16, 54, 1048, 197, 16, 54, 9188, 197, 16, 54, 4163, 197, 16,
	54, 4163, 2, 192, 197, 16, 54, 2462, 1048, 197, 16, 54, 2462, 1048, 2, 192,
	197, 16, 54, 1826, 197, 16, 54, 10417, 197, 16, 54, 1596, 1239, 197, 16, 54,
	1596, 1239, 2, 192, 197, 16, 54, 2164, 95, 1596, 197, 16, 54, 1336, 95, 1596,
	197, 16, 54, 1197, 1239, 197, 16, 54, 1596, 2, 1197, 1239, 197, 16, 54, 1346,
	95, 1197, 197, 16, 54, 2164, 95, 1197, 197, 16, 54, 2164, 95, 1197, 2, 192,
	197, 16, 54, 1197, 3046, 197, 16, 54, 1048, 95, 1197, 3046, 197, 16, 54, 1346,
	95, 1048, 95, 1197, 197, 16, 54, 11217, 197, 16, 54, 10830, 1239, 197, 16, 54,
	8387, 1239, 197, 16, 54, 1285, 1239, 197, 16, 54, 1346, 95, 1285, 197, 16, 54,
	1048, 95, 1285, 197, 16, 54, 1346, 95, 1048, 95, 1285, 197, 16, 54, 2021, 95,
	1285, 197, 16, 54, 1336, 95, 1285, 197, 16, 54, 1336, 95, 1285, 2, 192, 197,
	16, 54, 1336, 197, 16, 54, 1336, 2, 192, 197, 16, 54, 1336, 2, 273, 197,
	16, 54, 1336, 2, 349, 197, 16, 54, 3035, 197, 16, 54, 3035, 2, 192, 197,
	16, 54, 8721, 197, 16, 54, 1047, 2, 5788, 197, 16, 54, 5857, 197, 16, 54,
	3884, 197, 16, 54, 3884, 2, 192, 197, 16, 54, 5899, 197, 16, 54, 6241, 1239,
	197, 16, 54, 4057, 197, 16, 54, 4057, 2, 192, 197, 16, 54, 9929, 8430, 197,
	16, 54, 2123, 197, 16, 54, 2123, 2, 192, 197, 16, 54, 2123, 2, 273, 197,
	16, 54, 5781, 197, 16, 54, 1916, 197, 16, 54, 1984, 197, 16, 54, 10832, 197,
	16, 54, 2252, 197, 16, 54, 4174, 197, 16, 54, 9795, 197, 16, 54, 6365, 197,
	16, 54, 10968, 197, 16, 54, 6380, 8897, 197, 16, 54, 10275, 95, 8059, 197, 16,
	54, 3143, 197, 16, 54, 1695, 197, 16, 54, 10556, 1695, 197, 16, 54, 8456, 197,
	16, 54, 3997, 197, 16, 54, 11093, 197, 16, 54, 1145, 3263, 197, 16, 54, 3062,
	197, 16, 54, 1938, 3062, 197, 16, 54, 2127, 197, 16, 54, 9796, 2127, 197, 16,
	54, 5782, 197, 16, 54, 1989, 4039, 1989, 197, 16, 54, 1989, 4039, 1989, 2, 192,
	197, 16, 54, 10601, 197, 16, 54, 9805, 197, 16, 54, 6989, 197, 16, 54, 3247,
	197, 16, 54, 3247, 2, 192, 197, 16, 54, 9853, 197, 16, 54, 9861, 197, 16,
	54, 1551, 197, 16, 54, 1551, 2, 192, 197, 16, 54, 1551, 2, 273, 197, 16,
	54, 1551, 2, 349, 197, 16, 54, 1551, 2, 387, 197, 16, 54, 3031, 197, 16,
	54, 2114, 95, 8731, 197, 16, 54, 2114, 95, 11199, 197, 16, 54, 10059, 197, 16,
	54, 676, 197, 16, 54, 1633, 197, 16, 54, 569, 2, 1633, 197, 16, 54, 2360,
	197, 16, 54, 133, 3258, 197, 16, 54, 133, 3779, 74, 48, 2, 142, 1846, 45,
	114, 74, 111, 2, 142, 1846, 45, 114, 74, 45, 2, 142, 1846, 45, 114, 74,
	130, 2, 142, 1846, 45, 114, 74, 1981, 7, 125, 210, 37, 81, 125, 37, 81,
	125, 96, 81, 125, 599, 96, 81, 125, 1412, 96, 81, 125, 81, 125, 1129, 74,
	7, 125, 855, 2538, 74, 1692, 58, 74, 1981, 7, 58, 148, 81, 58, 210, 81,
	58, 37, 81, 58, 96, 81, 58, 599, 96, 81, 58, 1412, 96, 81, 58, 81,
	58, 1129, 74, 599, 7, 58, 81, 58, 1129, 74, 210, 58, 58, 2538, 74, 1692,
	458, 74, 599, 7, 458, 74, 210, 7, 458, 81, 458, 1129, 74, 599, 7, 458,
	81, 458, 1129, 74, 210, 458, 458, 2538, 74, 1692, 948, 74, 599, 7, 948, 74,
	210, 7, 948, 81, 948, 1129, 74, 7, 948, 1997, 46, 425, 148, 46, 425, 210,
	46, 425, 37, 46, 425, 599, 37, 46, 425, 599, 96, 46, 425, 1412, 96, 46,
	425, 1997, 1049, 148, 1049, 210, 1049, 37, 1049, 96, 1049, 599, 96, 1049, 1412, 96,
	1049, 148, 100, 633, 467, 210, 100, 633, 467, 37, 100, 633, 467, 96, 100, 633,
	467, 599, 96, 100, 633, 467, 1412, 96, 100, 633, 467, 148, 139, 633, 467, 210,
	139, 633, 467, 37, 139, 633, 467, 96, 139, 633, 467, 599, 96, 139, 633, 467,
	1412, 96, 139, 633, 467, 148, 140, 633, 467, 210, 140, 633, 467, 37, 140, 633,
	467, 96, 140, 633, 467, 599, 96, 140, 633, 467, 148, 79, 530, 74, 391, 210,
	79, 530, 74, 391, 79, 530, 74, 391, 210, 79, 530, 1158, 391, 148, 93, 530,
	74, 391, 210, 93, 530, 74, 391, 93, 530, 74, 391, 210, 93, 530, 1158, 391,
	747, 148, 93, 530, 1158, 391, 148, 100, 530, 74, 391, 96, 100, 530, 74, 391,
	210, 139, 530, 74, 391, 96, 139, 530, 74, 391, 139, 530, 1158, 391, 210, 140,
	530, 74, 391, 96, 140, 530, 74, 391, 599, 96, 140, 530, 74, 391, 96, 140,
	530, 1158, 391, 148, 865, 530, 74, 391, 96, 865, 530, 74, 391, 96, 865, 530,
	1158, 391, 62, 114, 237, 62, 114, 62, 58, 237, 62, 58, 252, 1462, 125, 252,
	1710, 125, 252, 1213, 125, 252, 2443, 125, 252, 2128, 125, 252, 789, 58, 252, 1192,
	58, 252, 1462, 58, 252, 1710, 58, 252, 1213, 58, 252, 2443, 58, 252, 2128, 58,
	96, 545, 6, 138, 36, 8, 7, 114, 309, 216, 36, 8, 7, 114, 309, 113,
	36, 8, 7, 114, 309, 209, 36, 8, 7, 114, 309, 138, 36, 8, 210, 114,
	309, 216, 36, 8, 210, 114, 309, 113, 36, 8, 210, 114, 309, 209, 36, 8,
	210, 114, 309, 138, 36, 8, 252, 114, 309, 216, 36, 8, 252, 114, 309, 113,
	36, 8, 252, 114, 309, 209, 36, 8, 252, 114, 309, 138, 36, 8, 7, 702,
	309, 216, 36, 8, 7, 702, 309, 113, 36, 8, 7, 702, 309, 209, 36, 8,
	7, 702, 309, 138, 36, 8, 702, 309, 216, 36, 8, 702, 309, 113, 36, 8,
	702, 309, 209, 36, 8, 702, 309, 96, 138, 36, 8, 702, 309, 96, 216, 36,
	8, 702, 309, 96, 113, 36, 8, 702, 309, 96, 209, 36, 8, 702, 309, 96,
	138, 36, 8, 252, 702, 309, 96, 216, 36, 8, 252, 702, 309, 96, 113, 36,
	8, 252, 702, 309, 96, 209, 36, 8, 252, 702, 309, 138, 114, 2, 155, 36,
	8, 1456, 682, 216, 114, 2, 155, 36, 8, 1456, 682, 113, 114, 2, 155, 36,
	8, 1456, 682, 209, 114, 2, 155, 36, 8, 1456, 682, 138, 114, 2, 155, 36,
	8, 210, 682, 216, 114, 2, 155, 36, 8, 210, 682, 113, 114, 2, 155, 36,
	8, 210, 682, 209, 114, 2, 155, 36, 8, 210, 682, 138, 114, 2, 155, 36,
	8, 37, 682, 216, 114, 2, 155, 36, 8, 37, 682, 113, 114, 2, 155, 36,
	8, 37, 682, 209, 114, 2, 155, 36, 8, 37, 682, 138, 114, 2, 155, 36,
	8, 96, 682, 216, 114, 2, 155, 36, 8, 96, 682, 113, 114, 2, 155, 36,
	8, 96, 682, 209, 114, 2, 155, 36, 8, 96, 682, 138, 114, 2, 155, 36,
	8, 599, 96, 682, 216, 114, 2, 155, 36, 8, 599, 96, 682, 113, 114, 2,
	155, 36, 8, 599, 96, 682, 209, 114, 2, 155, 36, 8, 599, 96, 682, 138,
	913, 2, 1333, 36, 216, 913, 2, 1333, 36, 113, 913, 2, 1333, 36, 209, 913,
	2, 1333, 36, 138, 126, 36, 216, 126, 36, 113, 126, 36, 209, 126, 36, 138,
	1196, 36, 216, 1196, 36, 113, 1196, 36, 209, 1196, 36, 138, 96, 1196, 36, 216,
	96, 1196, 36, 113, 96, 1196, 36, 209, 96, 1196, 36, 138, 96, 36, 216, 96,
	36, 113, 96, 36, 209, 96, 36, 138, 66, 2, 64, 36, 216, 66, 2, 64,
	36, 113, 66, 2, 64, 36, 209, 66, 2, 64, 36, 214, 153, 66, 2, 64,
	36, 214, 373, 66, 2, 64, 36, 253, 373, 66, 2, 64, 36, 253, 153, 66,
	2, 64, 36, 48, 45, 66, 2, 64, 36, 111, 130, 66, 2, 64, 36, 424,
	2, 155, 138, 148, 212, 36, 424, 2, 155, 216, 148, 212, 36, 424, 2, 155,
	113, 148, 212, 36, 424, 2, 155, 209, 148, 212, 36, 424, 2, 155, 214, 153,
	148, 212, 36, 424, 2, 155, 214, 373, 148, 212, 36, 424, 2, 155, 253, 373,
	148, 212, 36, 424, 2, 155, 253, 153, 148, 212, 36, 424, 2, 155, 138, 212,
	36, 424, 2, 155, 216, 212, 36, 424, 2, 155, 113, 212, 36, 424, 2, 155,
	209, 212, 36, 424, 2, 155, 214, 153, 212, 36, 424, 2, 155, 214, 373, 212,
	36, 424, 2, 155, 253, 373, 212, 36, 424, 2, 155, 253, 153, 212, 36, 424,
	2, 155, 138, 210, 212, 36, 424, 2, 155, 216, 210, 212, 36, 424, 2, 155,
	113, 210, 212, 36, 424, 2, 155, 209, 210, 212, 36, 424, 2, 155, 214, 153,
	210, 212, 36, 424, 2, 155, 214, 373, 210, 212, 36, 424, 2, 155, 253, 373,
	210, 212, 36, 424, 2, 155, 253, 153, 210, 212, 36, 424, 2, 155, 138, 96,
	212, 36, 424, 2, 155, 216, 96, 212, 36, 424, 2, 155, 113, 96, 212, 36,
	424, 2, 155, 209, 96, 212, 36, 424, 2, 155, 214, 153, 96, 212, 36, 424,
	2, 155, 214, 373, 96, 212, 36, 424, 2, 155, 253, 373, 96, 212, 36, 424,
	2, 155, 253, 153, 96, 212, 36, 424, 2, 155, 138, 599, 96, 212, 36, 424,
	2, 155, 216, 599, 96, 212, 36, 424, 2, 155, 113, 599, 96, 212, 36, 424,
	2, 155, 209, 599, 96, 212, 36, 424, 2, 155, 214, 153, 599, 96, 212, 36,
	424, 2, 155, 214, 373, 599, 96, 212, 36, 424, 2, 155, 253, 373, 599, 96,
	212, 36, 424, 2, 155, 253, 153, 599, 96, 212, 36, 138, 114, 309, 216, 114,
	309, 113, 114, 309, 209, 114, 309, 138, 81, 36, 1362, 114, 309, 216, 81, 36,
	1362, 114, 309, 113, 81, 36, 1362, 114, 309, 209, 81, 36, 1362, 114, 309, 138,
	36, 8, 1095, 323, 216, 36, 8, 1095, 323, 113, 36, 8, 1095, 323, 209, 36,
	8, 1095, 323, 96, 36, 682, 1061, 67, 96, 36, 682, 1061, 70, 1171, 96, 36,
	682, 1061, 67, 133, 96, 36, 682, 1061, 67, 928, 138, 521, 2, 1104, 81, 36,
	113, 521, 1104, 81, 36, 138, 442, 1104, 81, 36, 113, 442, 1104, 81, 36, 138,
	48, 2, 1104, 81, 36, 113, 45, 2, 1104, 81, 36, 138, 45, 2, 1104, 81,
	36, 113, 48, 2, 1104, 81, 36, 138, 870, 2, 1499, 790, 81, 36, 113, 870,
	2, 1499, 790, 81, 36, 138, 946, 2, 1499, 790, 81, 36, 113, 946, 2, 1499,
	790, 81, 36, 81, 36, 682, 1061, 67, 81, 36, 682, 1061, 70, 1171, 36, 142,
	216, 1170, 214, 153, 36, 142, 113, 1170, 1553, 253, 153, 62, 425, 2230, 8, 93,
	63, 62, 425, 2230, 8, 70, 63, 62, 425, 2230, 48, 133, 125, 8, 93, 63,
	48, 133, 125, 8, 79, 63, 48, 133, 125, 8, 70, 63, 48, 133, 125, 8,
	77, 48, 133, 125, 1795, 910, 99, 1795, 910, 1095, 99, 1795, 910, 99, 8, 77,
	1795, 910, 1095, 99, 8, 77, 9736, 593, 81, 581, 2128, 581, 9737, 78, 11659, 2,
	432, 123, 2358, 2, 432, 123, 123, 8, 4077, 9090, 123, 10800, 123, 123, 8, 618,
	2, 3086, 10093, 123, 3427, 123, 6, 95, 487, 3423, 2136, 539, 78, 564, 870, 95,
	78, 48, 2, 910, 177, 45, 2, 910, 177, 7676, 78, 8, 132, 34, 94, 593,
	723, 73, 2330, 11528, 78, 6, 123, 8, 6709, 1314, 6546, 123, 9020, 123, 3912, 347,
	487, 798, 8377, 7030, 123, 8495, 123, 123, 1466, 10456, 123, 123, 8, 67, 7202, 564,
	1584, 123, 8, 391, 673, 1584, 123, 8, 67, 252, 34, 67, 7, 1080, 123, 8,
	913, 2162, 468, 1224, 10308, 123, 8, 2533, 2162, 432, 706, 123, 8, 706, 673, 34,
	78, 2162, 432, 123, 8, 189, 432, 11258, 10363, 123, 8, 7195, 618, 2439, 1276, 6277,
	2, 7297, 9605, 111, 2002, 10297, 9813, 733, 372, 10971, 3667, 2143, 10381, 734, 7013, 6389,
	8067, 7302, 8879, 9685, 11380, 931, 9777, 7674, 6997, 2341, 11355, 1573, 1399, 8, 7032, 3177,
	7574, 10954, 1419, 2507, 1212, 1458, 10072, 1139, 1331, 1619, 999, 1331, 1619, 928, 1331, 1619,
	6265, 7576, 8728, 3060, 11077, 6731, 2518, 8352, 1257, 34, 972, 10461, 2226, 445, 6717, 5908,
	6724, 6121, 3842, 6386, 6130, 3132, 1213, 10239, 10330, 2415, 95, 1815, 10590, 3323, 3282, 1419,
	95, 8855, 9668, 8220, 9615, 7039, 7359, 3184, 10728, 124, 6494, 2124, 8, 2507, 758, 8,
	10580, 6650, 6283, 3822, 9811, 2169, 95, 1890, 10251, 6373, 1815, 8389, 1213, 8710, 624, 2134,
	6127, 706, 123, 8, 706, 673, 34, 79, 830, 11495, 123, 706, 123, 8, 4063, 123,
	8, 2420, 562, 34, 2420, 1314, 123, 8, 11074, 673, 34, 1060, 432, 9564, 123, 7366,
	123, 9180, 6986, 123, 123, 1425, 870, 2540, 123, 8, 9755, 673, 3934, 8345, 3178, 7583,
	7739, 3127, 561, 1340, 6711, 8439, 123, 10279, 10961, 11076, 123, 3276, 7034, 2113, 10337, 9565,
	3335, 123, 6314, 2181, 7594, 8446, 10066, 3967, 10511, 7566, 123, 11614, 123, 7700, 10265, 221,
	2, 3899, 3188, 8118, 8447, 9667, 7741, 9643, 9998, 8454, 8899, 8844, 3084, 10631, 8706, 7012,
	10449, 9560, 9548, 10434, 7332, 9568, 2117, 6242, 2474, 7617, 1398, 9817, 6371, 1135, 27, 789,
	1313, 1135, 27, 544, 1313, 1135, 27, 6136, 1135, 27, 81, 1313, 1758, 764, 1816, 2003,
	10617, 10619, 2467, 11220, 1300, 8, 7698, 5752, 8902, 2594, 8717, 2594, 3643, 722, 3643, 764,
	6458, 2591, 6727, 1048, 10328, 3102, 124, 7465, 9535, 7282, 11320, 6313, 8739, 3260, 1215, 2167,
	1122, 10753, 10900, 10553, 734, 8234, 734, 6900, 734, 123, 8, 8887, 3018, 2142, 2405, 3018,
	6192, 734, 734, 8, 7696, 734, 372, 10564, 10099, 734, 6538, 734, 372, 1884, 1471, 8690,
	7280, 11197, 8786, 7143, 7493, 11665, 6271, 1462, 581, 6230, 1765, 10274, 7577, 3178, 10460, 789,
	7561, 1136, 7320, 8030, 9864, 1157, 10772, 10949, 9698, 711, 7010, 55, 7707, 6666, 5705, 1027,
	7198, 10862, 2127, 8692, 3570, 8471, 1759, 10499, 95, 2548, 972, 95, 11485, 2467, 3824, 10756,
	3096, 6285, 6154, 10095, 95, 1923, 146, 95, 3997, 10498, 10029, 9025, 5792, 497, 244, 806,
	497, 244, 809, 497, 244, 922, 497, 244, 903, 497, 244, 563, 497, 244, 996, 81,
	244, 563, 368, 605, 2, 100, 421, 74, 244, 563, 368, 605, 2, 100, 421, 497,
	244, 563, 368, 605, 2, 100, 421, 81, 244, 806, 368, 529, 421, 81, 244, 809,
	368, 529, 421, 81, 244, 922, 368, 529, 421, 81, 244, 903, 368, 529, 421, 81,
	244, 563, 368, 529, 421, 81, 244, 996, 368, 529, 421, 74, 244, 806, 368, 529,
	421, 74, 244, 809, 368, 529, 421, 74, 244, 922, 368, 529, 421, 74, 244, 903,
	368, 529, 421, 74, 244, 563, 368, 529, 421, 74, 244, 996, 368, 529, 421, 497,
	244, 806, 368, 529, 421, 497, 244, 809, 368, 529, 421, 497, 244, 922, 368, 529,
	421, 497, 244, 903, 368, 529, 421, 497, 244, 563, 368, 529, 421, 497, 244, 996,
	368, 529, 421, 81, 244, 563, 368, 67, 159, 451, 2, 100, 421, 74, 244, 563,
	368, 67, 159, 451, 2, 100, 421, 497, 244, 563, 368, 67, 159, 451, 2, 100,
	421, 81, 244, 191, 806, 81, 244, 191, 809, 81, 244, 191, 922, 81, 244, 191,
	903, 81, 244, 191, 563, 81, 244, 191, 996, 74, 244, 191, 806, 74, 244, 191,
	809, 74, 244, 191, 922, 74, 244, 191, 903, 74, 244, 191, 563, 74, 244, 191,
	996, 497, 244, 191, 806, 497, 244, 191, 809, 497, 244, 191, 922, 497, 244, 191,
	903, 497, 244, 191, 563, 497, 244, 191, 996, 81, 244, 563, 368, 70, 159, 357,
	2, 100, 421, 74, 244, 563, 368, 70, 159, 357, 2, 100, 421, 497, 244, 563,
	368, 70, 159, 357, 2, 100, 421, 81, 244, 806, 368, 70, 159, 566, 421, 81,
	244, 809, 368, 70, 159, 566, 421, 81, 244, 922, 368, 70, 159, 566, 421, 81,
	244, 903, 368, 70, 159, 566, 421, 81, 244, 563, 368, 70, 159, 566, 421, 81,
	244, 996, 368, 70, 159, 566, 421, 74, 244, 806, 368, 70, 159, 566, 421, 74,
	244, 809, 368, 70, 159, 566, 421, 74, 244, 922, 368, 70, 159, 566, 421, 74,
	244, 903, 368, 70, 159, 566, 421, 74, 244, 563, 368, 70, 159, 566, 421, 74,
	244, 996, 368, 70, 159, 566, 421, 497, 244, 806, 368, 70, 159, 566, 421, 497,
	244, 809, 368, 70, 159, 566, 421, 497, 244, 922, 368, 70, 159, 566, 421, 497,
	244, 903, 368, 70, 159, 566, 421, 497, 244, 563, 368, 70, 159, 566, 421, 497,
	244, 996, 368, 70, 159, 566, 421, 81, 244, 563, 368, 79, 159, 1024, 421, 74,
	244, 563, 368, 79, 159, 1024, 421, 497, 244, 563, 368, 79, 159, 1024, 421, 81,
	244, 1408, 74, 244, 1408, 497, 244, 1408, 81, 244, 1408, 368, 529, 421, 74, 244,
	1408, 368, 529, 421, 497, 244, 1408, 368, 529, 421, 81, 244, 563, 2, 809, 81,
	244, 563, 2, 922, 81, 244, 563, 2, 903, 74, 244, 563, 2, 809, 74, 244,
	563, 2, 922, 74, 244, 563, 2, 903, 933, 789, 3359, 933, 789, 3631, 933, 789,
	2202, 933, 789, 1145, 933, 789, 1544, 933, 789, 3148, 933, 789, 4001, 933, 74, 3359,
	933, 74, 3631, 933, 74, 2202, 933, 74, 1145, 933, 74, 1544, 933, 74, 3148, 933,
	74, 4001, 6137, 10364, 67, 2, 1157, 10635, 6281, 1974, 4079, 3931, 2195, 95, 3117, 5718,
	3086, 10567, 268, 2, 2457, 6720, 416, 2, 416, 8217, 9637, 3126, 8691, 11324, 9735, 9092,
	3252, 10079, 9751, 3164, 10026, 2107, 7000, 3528, 6142, 2354, 1835, 5712, 187, 1399, 6654, 3149,
	2470, 10282, 8353, 99, 3661, 4181, 9763, 10317, 9084, 8236, 6290, 1326, 10881, 10864, 3402, 9749,
	2462, 3661, 972, 3439, 269, 145, 3090, 7671, 2225, 11372, 3099, 6648, 9790, 9752, 2597, 1811,
	1884, 6696, 877, 3700, 3700, 8, 7128, 5794, 581, 8480, 3807, 3427, 2439, 733, 2439, 734,
	734, 8, 3192, 6252, 1290, 3808, 3767, 3323, 10731, 7347, 10755, 9793, 3558, 6191, 3459, 8777,
	123, 10244, 123, 123, 8, 189, 673, 34, 78, 172, 432, 123, 8, 9672, 1080, 123,
	8, 186, 432, 478, 245, 123, 3111, 1879, 2129, 78, 8, 132, 913, 34, 169, 723,
	113, 78, 138, 78, 1466, 130, 78, 1466, 111, 78, 132, 142, 653, 487, 11235, 581,
	1143, 131, 390, 2, 291, 131, 390, 2, 192, 131, 390, 2, 1279, 131, 390, 2,
	273, 131, 390, 2, 1280, 131, 390, 2, 1522, 131, 390, 2, 1717, 131, 390, 2,
	349, 131, 390, 2, 1281, 131, 390, 2, 1523, 131, 390, 2, 1718, 131, 390, 2,
	2073, 131, 390, 2, 1721, 131, 390, 2, 1727, 131, 390, 2, 2653, 131, 390, 2,
	387, 131, 390, 2, 1365, 131, 390, 2, 1732, 131, 390, 2, 1719, 131, 390, 2,
	2078, 131, 390, 2, 1728, 131, 390, 2, 2656, 131, 390, 2, 1736, 131, 390, 2,
	1723, 131, 390, 2, 1731, 131, 390, 2, 2659, 131, 390, 2, 2074, 131, 390, 2,
	2667, 131, 390, 2, 2753, 131, 390, 2, 2654, 131, 390, 2, 466, 131, 390, 2,
	1366, 131, 390, 2, 1734, 131, 390, 2, 1720, 131, 390, 2, 1735, 131, 390, 2,
	1722, 131, 390, 2, 1729, 131, 390, 2, 2658, 131, 390, 2, 2085, 131, 390, 2,
	1724, 131, 390, 2, 2661, 131, 390, 2, 2075, 131, 390, 2, 2669, 131, 390, 2,
	2755, 131, 390, 2, 2655, 131, 390, 2, 2093, 131, 390, 2, 1725, 131, 390, 2,
	1733, 131, 390, 2, 2662, 131, 390, 2, 2079, 131, 390, 2, 2670, 131, 390, 2,
	2756, 131, 390, 2, 2657, 131, 390, 2, 2083, 131, 390, 2, 2677, 131, 390, 2,
	2763, 131, 390, 2, 2660, 131, 390, 2, 2783, 131, 390, 2, 2668, 131, 390, 2,
	2754, 134, 48, 131, 186, 134, 94, 48, 83, 134, 360, 134, 48, 131, 186, 134,
	94, 48, 83, 134, 45, 134, 48, 131, 186, 141, 94, 48, 83, 134, 360, 134,
	48, 131, 186, 141, 94, 48, 83, 134, 45, 134, 48, 131, 186, 141, 48, 83,
	134, 360, 134, 45, 131, 186, 141, 94, 48, 83, 141, 360, 134, 45, 131, 186,
	141, 94, 48, 83, 141, 45, 134, 45, 131, 186, 134, 94, 48, 83, 141, 360,
	134, 45, 131, 186, 134, 94, 48, 83, 141, 45, 134, 45, 131, 186, 134, 48,
	83, 141, 360, 134, 45, 131, 186, 134, 94, 48, 83, 141, 94, 45, 134, 45,
	131, 186, 134, 360, 83, 134, 94, 45, 134, 45, 131, 186, 134, 48, 83, 134,
	94, 45, 134, 45, 131, 186, 134, 360, 83, 141, 94, 45, 134, 45, 131, 186,
	134, 48, 83, 141, 94, 45, 134, 45, 131, 186, 134, 360, 83, 141, 45, 134,
	48, 131, 186, 141, 360, 83, 141, 94, 45, 134, 48, 131, 186, 141, 48, 83,
	141, 94, 45, 134, 48, 131, 186, 141, 360, 83, 134, 94, 45, 134, 48, 131,
	186, 141, 48, 83, 134, 94, 45, 134, 48, 131, 186, 141, 360, 83, 134, 45,
	134, 48, 131, 186, 141, 94, 48, 83, 134, 94, 45, 141, 45, 131, 186, 134,
	94, 48, 83, 134, 360, 141, 45, 131, 186, 134, 94, 48, 83, 134, 45, 141,
	45, 131, 186, 141, 94, 48, 83, 134, 360, 141, 45, 131, 186, 141, 94, 48,
	83, 134, 45, 141, 45, 131, 186, 141, 48, 83, 134, 360, 141, 48, 131, 186,
	141, 94, 48, 83, 141, 360, 141, 48, 131, 186, 141, 94, 48, 83, 141, 45,
	141, 48, 131, 186, 134, 94, 48, 83, 141, 360, 141, 48, 131, 186, 134, 94,
	48, 83, 141, 45, 141, 48, 131, 186, 134, 48, 83, 141, 360, 141, 48, 131,
	186, 134, 94, 48, 83, 141, 94, 45, 141, 48, 131, 186, 134, 360, 83, 134,
	94, 45, 141, 48, 131, 186, 134, 48, 83, 134, 94, 45, 141, 48, 131, 186,
	134, 360, 83, 141, 94, 45, 141, 48, 131, 186, 134, 48, 83, 141, 94, 45,
	141, 48, 131, 186, 134, 360, 83, 141, 45, 141, 45, 131, 186, 141, 360, 83,
	141, 94, 45, 141, 45, 131, 186, 141, 48, 83, 141, 94, 45, 141, 45, 131,
	186, 141, 360, 83, 134, 94, 45, 141, 45, 131, 186, 141, 48, 83, 134, 94,
	45, 141, 45, 131, 186, 141, 360, 83, 134, 45, 141, 45, 131, 186, 141, 94,
	48, 83, 134, 94, 45, 141, 34, 45, 34, 134, 738, 79, 890, 131, 48, 34,
	134, 34, 45, 738, 79, 890, 131, 141, 34, 48, 34, 134, 738, 79, 890, 131,
	48, 34, 141, 34, 45, 738, 79, 890, 131, 48, 738, 67, 516, 131, 141, 738,
	67, 516, 131, 45, 738, 67, 516, 131, 134, 738, 67, 516, 131, 86, 67, 511,
	131, 2, 192, 86, 67, 511, 131, 2, 273, 86, 67, 511, 131, 2, 349, 86,
	67, 511, 131, 2, 387, 86, 67, 511, 131, 2, 466, 86, 67, 511, 131, 2,
	568, 135, 67, 511, 131, 2, 192, 135, 67, 511, 131, 2, 273, 135, 67, 511,
	131, 2, 349, 135, 67, 511, 131, 2, 387, 135, 67, 511, 131, 2, 466, 135,
	67, 511, 131, 2, 568, 48, 34, 134, 67, 511, 131, 48, 34, 141, 67, 511,
	131, 45, 34, 141, 67, 511, 131, 45, 34, 134, 67, 511, 131, 141, 34, 134,
	67, 511, 131, 135, 67, 511, 131, 2, 2671, 141, 67, 516, 131, 141, 79, 875,
	131, 141, 100, 875, 131, 141, 79, 890, 131, 141, 157, 875, 131, 45, 67, 516,
	131, 45, 79, 875, 131, 45, 100, 875, 131, 45, 79, 890, 131, 45, 157, 875,
	131, 48, 133, 210, 894, 45, 133, 210, 894, 141, 133, 210, 894, 134, 133, 210,
	894, 1030, 210, 894, 141, 133, 131, 34, 134, 133, 1030, 210, 894, 141, 133, 1030,
	210, 894, 34, 134, 133, 131, 48, 133, 1030, 210, 894, 34, 45, 133, 131, 1767,
	1539, 797, 1030, 1767, 1539, 797, 96, 135, 797, 141, 48, 83, 134, 45, 797, 141,
	45, 83, 134, 48, 797, 141, 34, 134, 738, 133, 131, 48, 34, 45, 738, 133,
	131, 141, 48, 738, 210, 894, 141, 45, 738, 210, 894, 134, 45, 738, 210, 894,
	134, 48, 738, 210, 894, 124, 154, 148, 186, 141, 360, 83, 94, 48, 124, 154,
	148, 186, 141, 360, 83, 94, 45, 124, 154, 148, 186, 94, 48, 83, 134, 360,
	124, 154, 148, 186, 94, 45, 83, 134, 360, 124, 154, 148, 186, 141, 360, 83,
	94, 48, 83, 134, 360, 124, 154, 148, 186, 141, 360, 83, 94, 45, 83, 134,
	360, 124, 154, 148, 186, 94, 48, 83, 134, 360, 83, 94, 45, 124, 154, 148,
	186, 94, 48, 83, 141, 360, 83, 94, 45, 124, 154, 148, 186, 141, 360, 83,
	94, 48, 34, 94, 45, 83, 134, 360, 124, 154, 148, 186, 141, 360, 83, 94,
	45, 34, 94, 48, 83, 134, 360, 124, 154, 148, 186, 141, 360, 83, 94, 45,
	83, 134, 360, 83, 94, 48, 124, 154, 148, 186, 141, 360, 83, 94, 48, 83,
	134, 360, 83, 94, 45, 124, 154, 148, 186, 94, 48, 83, 141, 360, 83, 94,
	45, 83, 134, 360, 124, 154, 148, 186, 94, 45, 83, 141, 360, 83, 94, 48,
	83, 134, 360, 124, 154, 148, 186, 458, 124, 154, 148, 135, 8, 86, 89, 309,
	2, 925, 1654, 1030, 906, 56, 48, 133, 2466, 733, 45, 133, 2466, 733, 1030, 209,
	36, 8, 751, 138, 138, 36, 34, 141, 34, 134, 67, 511, 131, 113, 36, 34,
	141, 34, 134, 67, 511, 131, 209, 36, 34, 45, 67, 511, 131, 216, 36, 34,
	45, 67, 511, 131, 48, 133, 1307, 45, 133, 1307, 11252, 46, 425, 45, 189, 126,
	77, 237, 186, 425, 237, 186, 94, 45, 83, 134, 360, 237, 186, 458, 81, 96,
	1049, 8, 893, 1390, 48, 928, 81, 45, 142, 132, 94, 928, 81, 45, 142, 132,
	45, 928, 81, 45, 142, 132, 237, 126, 629, 56, 1257, 1025, 1257, 1025, 8, 5850,
	564, 1257, 1025, 3541, 48, 1257, 1025, 3541, 45, 1257, 1025, 8, 3259, 81, 111, 2,
	142, 3168, 1103, 23, 254, 1103, 23, 67, 1103, 23, 70, 1103, 23, 79, 1103, 23,
	93, 1103, 23, 100, 1103, 23, 139, 1103, 23, 157, 1103, 23, 140, 1103, 23, 160,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1,
	17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17,
	21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21,
	18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18,
	2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2, 1, 17, 21, 18, 2,
	1, 17, 21, 18, 2, 1, 8368, 215, 215, 737, 215, 672, 56, 215, 610, 56,
	215, 41, 6, 215, 1298, 6, 215, 1652, 6, 215, 1184, 215, 1117, 215, 48, 471,
	215, 45, 471, 215, 467, 215, 120, 6, 215, 383, 215, 850, 2, 661, 215, 426,
	322, 215, 707, 215, 23, 254, 215, 23, 67, 215, 23, 70, 215, 23, 79, 215,
	23, 93, 215, 23, 100, 215, 23, 139, 215, 23, 157, 215, 23, 140, 215, 23,
	160, 215, 577, 215, 1000, 215, 384, 2, 178, 6, 215, 545, 6, 215, 376, 2,
	178, 6, 215, 629, 56, 215, 1549, 653, 215, 12, 10, 5, 24, 215, 12, 10,
	5, 71, 215, 12, 10, 5, 104, 215, 12, 10, 5, 98, 215, 12, 10, 5,
	51, 215, 12, 10, 5, 176, 215, 12, 10, 5, 220, 215, 12, 10, 5, 235,
	215, 12, 10, 5, 73, 215, 12, 10, 5, 278, 215, 12, 10, 5, 227, 215,
	12, 10, 5, 136, 215, 12, 10, 5, 205, 215, 12, 10, 5, 151, 215, 12,
	10, 5, 68, 215, 12, 10, 5, 249, 215, 12, 10, 5, 389, 215, 12, 10,
	5, 122, 215, 12, 10, 5, 121, 215, 12, 10, 5, 221, 215, 12, 10, 5,
	60, 215, 12, 10, 5, 229, 215, 12, 10, 5, 290, 215, 12, 10, 5, 268,
	215, 12, 10, 5, 218, 215, 12, 10, 5, 250, 215, 48, 58, 161, 215, 747,
	707, 215, 45, 58, 161, 215, 294, 344, 215, 145, 245, 215, 315, 344, 215, 12,
	7, 5, 24, 215, 12, 7, 5, 71, 215, 12, 7, 5, 104, 215, 12, 7,
	5, 98, 215, 12, 7, 5, 51, 215, 12, 7, 5, 176, 215, 12, 7, 5,
	220, 215, 12, 7, 5, 235, 215, 12, 7, 5, 73, 215, 12, 7, 5, 278,
	215, 12, 7, 5, 227, 215, 12, 7, 5, 136, 215, 12, 7, 5, 205, 215,
	12, 7, 5, 151, 215, 12, 7, 5, 68, 215, 12, 7, 5, 249, 215, 12,
	7, 5, 389, 215, 12, 7, 5, 122, 215, 12, 7, 5, 121, 215, 12, 7,
	5, 221, 215, 12, 7, 5, 60, 215, 12, 7, 5, 229, 215, 12, 7, 5,
	290, 215, 12, 7, 5, 268, 215, 12, 7, 5, 218, 215, 12, 7, 5, 250,
	215, 48, 544, 161, 215, 86, 245, 215, 45, 544, 161, 215, 211, 3147, 215, 85,
	84, 2, 1521, 85, 84, 2, 1367, 85, 84, 2, 1726, 85, 84, 2, 2061, 85,
	84, 2, 2062, 85, 84, 2, 2741, 85, 84, 2, 1522, 85, 84, 2, 1523, 85,
	84, 2, 1732, 85, 84, 2, 1734, 85, 84, 2, 2072, 85, 84, 2, 2778, 85,
	84, 2, 2779, 85, 84, 2, 2780, 85, 84, 2, 4498, 85, 84, 2, 2781, 85,
	84, 2, 4519, 85, 84, 2, 2073, 85, 84, 2, 2078, 85, 84, 2, 1735, 85,
	84, 2, 2080, 85, 84, 2, 2081, 85, 84, 2, 2082, 85, 84, 2, 2792, 85,
	84, 2, 4601, 85, 84, 2, 2793, 85, 84, 2, 2794, 85, 84, 2, 4632, 85,
	84, 2, 1736, 85, 84, 2, 2085, 85, 84, 2, 2086, 85, 84, 2, 2087, 85,
	84, 2, 2803, 85, 84, 2, 2088, 85, 84, 2, 2089, 85, 84, 2, 2090, 85,
	84, 2, 2091, 85, 84, 2, 2092, 85, 84, 2, 4745, 85, 84, 2, 2093, 85,
	84, 2, 2813, 85, 84, 2, 2815, 85, 84, 2, 4785, 85, 84, 2, 4802, 85,
	84, 2, 4812, 85, 84, 2, 4822, 85, 84, 2, 4835, 85, 84, 2, 4847, 85,
	84, 2, 4857, 85, 84, 2, 4871, 85, 84, 2, 2820, 85, 84, 2, 2822, 85,
	84, 2, 4904, 85, 84, 2, 4917, 85, 84, 2, 4929, 85, 84, 2, 4941, 85,
	84, 2, 4951, 85, 84, 2, 4962, 85, 84, 2, 4972, 85, 84, 2, 4985, 85,
	84, 2, 4996, 85, 84, 2, 2825, 85, 84, 2, 4997, 85, 84, 2, 5001, 85,
	84, 2, 5002, 85, 84, 2, 5003, 85, 84, 2, 5004, 85, 84, 2, 5005, 85,
	84, 2, 5006, 85, 84, 2, 5007, 85, 84, 2, 5008, 85, 84, 2, 5009, 85,
	84, 2, 5010, 85, 84, 2, 5014, 85, 84, 2, 5016, 85, 84, 2, 5018, 85,
	84, 2, 5019, 85, 84, 2, 5020, 85, 84, 2, 5021, 85, 84, 2, 5022, 85,
	84, 2, 5023, 85, 84, 2, 5024, 85, 84, 2, 5025, 85, 84, 2, 2631, 85,
	84, 2, 2632, 85, 84, 2, 2046, 85, 84, 2, 2633, 85, 84, 2, 2634, 85,
	84, 2, 2635, 85, 84, 2, 2636, 85, 84, 2, 2637, 85, 84, 2, 2638, 85,
	84, 2, 2639, 85, 84, 2, 2640, 85, 84, 2, 2641, 85, 84, 2, 2642, 85,
	84, 2, 2643, 85, 84, 2, 2644, 85, 84, 2, 2645, 85, 84, 2, 2646, 85,
	84, 2, 2647, 85, 84, 2, 2648, 85, 84, 2, 2649, 85, 84, 2, 2650, 85,
	84, 2, 2651, 85, 84, 2, 2652, 85, 84, 2, 1717, 85, 84, 2, 1718, 85,
	84, 2, 1719, 85, 84, 2, 1720, 85, 84, 2, 2047, 85, 84, 2, 2048, 85,
	84, 2, 2663, 85, 84, 2, 2049, 85, 84, 2, 2664, 85, 84, 2, 2665, 85,
	84, 2, 2666, 85, 84, 2, 1721, 85, 84, 2, 2050, 85, 84, 2, 1722, 85,
	84, 2, 2051, 85, 84, 2, 2052, 85, 84, 2, 2672, 85, 84, 2, 2673, 85,
	84, 2, 2674, 85, 84, 2, 2053, 85, 84, 2, 2675, 85, 84, 2, 2676, 85,
	84, 2, 1723, 85, 84, 2, 1724, 85, 84, 2, 2054, 85, 84, 2, 2055, 85,
	84, 2, 2678, 85, 84, 2, 2679, 85, 84, 2, 2680, 85, 84, 2, 2681, 85,
	84, 2, 2682, 85, 84, 2, 2683, 85, 84, 2, 2684, 85, 84, 2, 1725, 85,
	84, 2, 2056, 85, 84, 2, 2057, 85, 84, 2, 2685, 85, 84, 2, 2686, 85,
	84, 2, 2687, 85, 84, 2, 2688, 85, 84, 2, 2689, 85, 84, 2, 2690, 85,
	84, 2, 2691, 85, 84, 2, 2692, 85, 84, 2, 2058, 85, 84, 2, 2059, 85,
	84, 2, 2693, 85, 84, 2, 2694, 85, 84, 2, 2695, 85, 84, 2, 2696, 85,
	84, 2, 2697, 85, 84, 2, 2698, 85, 84, 2, 2699, 85, 84, 2, 2700, 85,
	84, 2, 2701, 85, 84, 2, 2060, 85, 84, 2, 2702, 85, 84, 2, 2703, 85,
	84, 2, 2704, 85, 84, 2, 2705, 85, 84, 2, 2706, 85, 84, 2, 2707, 85,
	84, 2, 2708, 85, 84, 2, 2709, 85, 84, 2, 2710, 85, 84, 2, 2711, 85,
	84, 2, 2712, 85, 84, 2, 2713, 85, 84, 2, 2714, 85, 84, 2, 2715, 85,
	84, 2, 2716, 85, 84, 2, 2717, 85, 84, 2, 2718, 85, 84, 2, 2719, 85,
	84, 2, 2720, 85, 84, 2, 2721, 85, 84, 2, 2722, 85, 84, 2, 2723, 85,
	84, 2, 2724, 85, 84, 2, 2725, 85, 84, 2, 2726, 85, 84, 2, 2727, 85,
	84, 2, 2728, 85, 84, 2, 2729, 85, 84, 2, 2730, 85, 84, 2, 2731, 85,
	84, 2, 2732, 85, 84, 2, 2063, 85, 84, 2, 2733, 85, 84, 2, 2734, 85,
	84, 2, 2735, 85, 84, 2, 2736, 85, 84, 2, 2737, 85, 84, 2, 2738, 85,
	84, 2, 2739, 85, 84, 2, 2740, 85, 84, 2, 2064, 85, 84, 2, 2065, 85,
	84, 2, 2742, 85, 84, 2, 2743, 85, 84, 2, 2744, 85, 84, 2, 2745, 85,
	84, 2, 2066, 85, 84, 2, 2746, 85, 84, 2, 2747, 85, 84, 2, 2067, 85,
	84, 2, 2748, 85, 84, 2, 2749, 85, 84, 2, 2750, 85, 84, 2, 2751, 85,
	84, 2, 2752, 85, 84, 2, 1727, 85, 84, 2, 1728, 85, 84, 2, 1729, 85,
	84, 2, 2068, 85, 84, 2, 1730, 85, 84, 2, 2757, 85, 84, 2, 2758, 85,
	84, 2, 2759, 85, 84, 2, 2760, 85, 84, 2, 2761, 85, 84, 2, 2762, 85,
	84, 2, 1731, 85, 84, 2, 2069, 85, 84, 2, 2070, 85, 84, 2, 2071, 85,
	84, 2, 2764, 85, 84, 2, 2765, 85, 84, 2, 2766, 85, 84, 2, 2767, 85,
	84, 2, 2768, 85, 84, 2, 2769, 85, 84, 2, 2770, 85, 84, 2, 1733,
}
