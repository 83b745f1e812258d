package trainer

// Combination is one Kihon exercise sequence from the 3rd Dan syllabus.
type Combination struct {
	ID    int      `json:"id"`
	Lines []string `json:"lines"`
}

// TokuiKata is always suggested first; it is the candidate's own choice.
const TokuiKata = "Tokui Kata"

// Kihon lists the Kihon combinations for 3rd Dan, DJKB (as of July 2013).
var Kihon = []Combination{
	{ID: 1, Lines: []string{
		"aus Gedan-Kamae links, vorwärts in Zk mit Sanbon-Zuki (Jodan/Chudan/Chudan)",
		"rückwärts in Zk mit Age-Uke/Mae-Geri/hinten absetzen mit Gyaku-Zuki in Zk",
	}},
	{ID: 2, Lines: []string{
		"vorwärts in Zk mit Soto-Uke/in Kb mit Yoko-Empi-Uchi/Tate-Uraken-Uchi/Gyaku-Zuki in Zk",
		"rückwärts in Zk mit Uchi-Uke/Kizami-Mae-Geri/Kizami-Zuki/Gyaku-Zuki in Zk",
	}},
	{ID: 3, Lines: []string{
		"vorwärts in Kk mit Shuto-Uke/Kizami-Mae-Geri/Nukite in Zk, Wendung mit Gedan-Barai in Zk",
		"aus Chudan-Kamae, vorwärts in Zk mit Mae-Geri/Kizami-Zuki/Gyaku-Zuki in Zk, Wendung mit Gedan-Barai in Zk",
	}},
	{ID: 4, Lines: []string{
		"aus Chudan-Kamae, vorwärts in Zk mit Mawashi-Geri, Wendung mit Gedan-Barai in Zk",
		"aus Chudan-Kamae, vorwärts in Zk mit Ren-Geri (Mawashi-Geri/mit gleichem Bein Yoko-Geri-Kekomi), Wendung mit Gedan-Barai in Zk",
	}},
	{ID: 5, Lines: []string{
		"aus Chudan-Kamae, vorwärts in Zk mit Ushiro-Geri, Wendung mit Gedan-Barai in Kb",
		"aus Chudan-Kamae, vorwärts in Kb mit Yoko-Geri-Keage/Drehung und mit hinterem Bein in Kb Yoko-Geri-Kekomi, mit gleichem Bein Yoko-Geri-Kekomi, Wendung mit Gedan-Barai in Zk",
	}},
	{ID: 6, Lines: []string{
		"Sonoba-Geri: (Standübung links und rechts) aus Zk und Chudan-Kamae: Mae-Geri nach vorne / mit gleichem Bein Yoko-Geri-Keage zur Seite / mit gleichem Bein Ushiro-Geri, nach hinten absetzen in Chudan-Kamae.",
	}},
	{ID: 7, Lines: []string{
		"aus Chudan-Kamae links, im Stand Jodan-Kizami-Zuki/vorwärts in Zk mit Sanbon-Zuki (Jodan/Chudan/Chudan) aus Chudan-Kamae rückwärts in Zk mit Uchi-Uke/Mae-Geri/hinten absetzen mit Kizami-Zuki/Gyaku-Zuki.",
	}},
	{ID: 8, Lines: []string{
		"aus Chudan-Kamae, einen Schritt zurück in Zk mit Age-Uke/vorwärts in Kb mit Mawashi-Geri/Tate-Uraken/vorwärts in Zk mit Oi-Zuki, Wendung mit Gedan-Barai in Zk",
		"aus Chudan-Kamae, vorwärts in Zk mit Jodan-Oi-Zuki/Gyaku-Zuki/rückwärts in Kk mit Shuto-Uke/vorwärts in Zk mit Ushiro-Geri/Gyaku-Zuki, Wendung mit Gedan-Barai in Kb",
	}},
	{ID: 9, Lines: []string{
		"aus Kb und Chudan-Kamae, vorwärts in Kb mit Yoko-Geri-Keage/Drehung und mit hinterem Bein Yoko-Geri-Kekomi in Kb",
		"Sonoba-Geri: (Standübung links und rechts) aus Zk und Chudan-Kamae: Mae-Geri nach vorne, mit gleichem Bein Yoko-Geri-Keage zur Seite, mit gleichem Bein Ushiro-Geri nach hinten, mit gleichem Bein Mawashi-Geri nach vorne, nach hinten absetzen in Chudan-Kamae",
	}},
}

// Kata pools; one kata is drawn from each after the Tokui kata.
var (
	Kata2 = []string{"Bassai-Dai", "Kanku-Dai", "Jion", "Enpi", "Hangetsu"}
	Kata3 = []string{"Heian Shodan", "Heian Nidan", "Heian Sandan", "Heian Yondan", "Heian Godan", "Tekki Shodan", "Tekki Nidan", "Tekki Sandan"}
	Kata4 = []string{"Bassai Sho", "Kanku Sho", "Nijushiho", "Jitte", "Chinte", "Meikyo", "Gangaku", "Sochin"}
)

// KihonPerDraw is how many combinations one Kihon draw shows.
const KihonPerDraw = 5
