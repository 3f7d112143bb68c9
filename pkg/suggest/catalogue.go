package suggest

// Swedish grocery vocabulary, roughly ordered most-common-first per category.
var catalogue = []Grocery{
	// Mejeri
	{Name: "mjölk", Category: "Mejeri", Common: true},
	{Name: "filmjölk", Category: "Mejeri", Common: true},
	{Name: "yoghurt", Category: "Mejeri", Common: true},
	{Name: "smör", Category: "Mejeri", Common: true},
	{Name: "margarin", Category: "Mejeri", Common: true},
	{Name: "ost", Category: "Mejeri", Common: true},
	{Name: "grädde", Category: "Mejeri", Common: true},
	{Name: "kvarg", Category: "Mejeri", Common: true},
	{Name: "creme fraiche", Category: "Mejeri", Aliases: []string{"créme fraiche", "creme"}, Common: true},
	{Name: "philadelphia", Category: "Mejeri", Common: false},

	// Frukt
	{Name: "bananer", Category: "Frukt", Aliases: []string{"banan"}, Common: true},
	{Name: "äpplen", Category: "Frukt", Aliases: []string{"äpple"}, Common: true},
	{Name: "apelsiner", Category: "Frukt", Aliases: []string{"apelsin"}, Common: true},
	{Name: "päron", Category: "Frukt", Common: true},
	{Name: "kiwi", Category: "Frukt", Common: true},
	{Name: "vindruvor", Category: "Frukt", Common: true},
	{Name: "clementin", Category: "Frukt", Aliases: []string{"clementiner"}, Common: true},
	{Name: "melon", Category: "Frukt", Common: true},
	{Name: "mango", Category: "Frukt", Common: true},
	{Name: "ananas", Category: "Frukt", Common: true},
	{Name: "jordgubbar", Category: "Frukt", Common: true},
	{Name: "blåbär", Category: "Frukt", Common: true},
	{Name: "hallon", Category: "Frukt", Common: true},
	{Name: "avokado", Category: "Frukt", Common: true},

	// Grönsaker
	{Name: "tomater", Category: "Grönsaker", Aliases: []string{"tomat"}, Common: true},
	{Name: "gurka", Category: "Grönsaker", Common: true},
	{Name: "paprika", Category: "Grönsaker", Common: true},
	{Name: "lök", Category: "Grönsaker", Common: true},
	{Name: "vitlök", Category: "Grönsaker", Common: true},
	{Name: "morötter", Category: "Grönsaker", Aliases: []string{"morot"}, Common: true},
	{Name: "potatis", Category: "Grönsaker", Common: true},
	{Name: "sallad", Category: "Grönsaker", Common: true},
	{Name: "broccoli", Category: "Grönsaker", Common: true},
	{Name: "blomkål", Category: "Grönsaker", Common: true},
	{Name: "spenat", Category: "Grönsaker", Common: true},
	{Name: "zucchini", Category: "Grönsaker", Common: true},
	{Name: "aubergine", Category: "Grönsaker", Common: true},
	{Name: "majs", Category: "Grönsaker", Common: true},
	{Name: "ärtor", Category: "Grönsaker", Common: true},

	// Kött & Fisk
	{Name: "köttfärs", Category: "Kött & Fisk", Common: true},
	{Name: "kycklingfilé", Category: "Kött & Fisk", Aliases: []string{"kyckling"}, Common: true},
	{Name: "bacon", Category: "Kött & Fisk", Common: true},
	{Name: "korv", Category: "Kött & Fisk", Common: true},
	{Name: "köttbullar", Category: "Kött & Fisk", Common: true},
	{Name: "falukorv", Category: "Kött & Fisk", Common: true},
	{Name: "fläskfilé", Category: "Kött & Fisk", Common: true},
	{Name: "lax", Category: "Kött & Fisk", Common: true},
	{Name: "torsk", Category: "Kött & Fisk", Common: true},

	// Bröd & Spannmål
	{Name: "bröd", Category: "Bröd & Spannmål", Common: true},
	{Name: "frukostflingor", Category: "Bröd & Spannmål", Aliases: []string{"flingor"}, Common: true},
	{Name: "pasta", Category: "Bröd & Spannmål", Common: true},
	{Name: "ris", Category: "Bröd & Spannmål", Common: true},
	{Name: "havregryn", Category: "Bröd & Spannmål", Common: true},
	{Name: "mjöl", Category: "Bröd & Spannmål", Common: true},
	{Name: "müsli", Category: "Bröd & Spannmål", Common: true},

	// Skafferi
	{Name: "socker", Category: "Skafferi", Common: true},
	{Name: "salt", Category: "Skafferi", Common: true},
	{Name: "peppar", Category: "Skafferi", Common: true},
	{Name: "olivolja", Category: "Skafferi", Common: true},
	{Name: "rapsolja", Category: "Skafferi", Common: true},
	{Name: "ättika", Category: "Skafferi", Common: true},
	{Name: "ketchup", Category: "Skafferi", Common: true},
	{Name: "majonnäs", Category: "Skafferi", Common: true},
	{Name: "senap", Category: "Skafferi", Common: true},
	{Name: "soja", Category: "Skafferi", Aliases: []string{"sojasås"}, Common: true},
	{Name: "honung", Category: "Skafferi", Common: true},
	{Name: "sylt", Category: "Skafferi", Common: true},
	{Name: "kaffe", Category: "Skafferi", Common: true},
	{Name: "te", Category: "Skafferi", Common: true},

	// Konserver
	{Name: "tomatkross", Category: "Konserver", Common: true},
	{Name: "tonfisk", Category: "Konserver", Common: true},
	{Name: "kikärtor", Category: "Konserver", Common: true},
	{Name: "kokosmjölk", Category: "Konserver", Common: true},

	// Dryck
	{Name: "juice", Category: "Dryck", Common: true},
	{Name: "läsk", Category: "Dryck", Common: true},
	{Name: "vatten", Category: "Dryck", Common: true},
	{Name: "öl", Category: "Dryck", Common: true},
	{Name: "vin", Category: "Dryck", Common: true},

	// Hygien
	{Name: "toalettpapper", Category: "Hygien", Aliases: []string{"toapapper"}, Common: true},
	{Name: "diskmedel", Category: "Hygien", Common: true},
	{Name: "tvål", Category: "Hygien", Common: true},
	{Name: "schampo", Category: "Hygien", Common: true},
	{Name: "tandkräm", Category: "Hygien", Common: true},

	// Snacks
	{Name: "chips", Category: "Snacks", Common: true},
	{Name: "choklad", Category: "Snacks", Common: true},
	{Name: "godis", Category: "Snacks", Common: true},
	{Name: "popcorn", Category: "Snacks", Common: true},
	{Name: "nötter", Category: "Snacks", Common: true},
}
