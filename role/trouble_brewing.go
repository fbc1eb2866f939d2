package role

// Trouble Brewing role tables. Order matters: it is the canonical
// output order for accepted setups.
const (
	Washerwoman   Role = "Washerwoman"
	Librarian     Role = "Librarian"
	Investigator  Role = "Investigator"
	Chef          Role = "Chef"
	Empath        Role = "Empath"
	FortuneTeller Role = "Fortune Teller"
	Undertaker    Role = "Undertaker"
	Monk          Role = "Monk"
	Ravenkeeper   Role = "Ravenkeeper"
	Virgin        Role = "Virgin"
	Slayer        Role = "Slayer"
	Soldier       Role = "Soldier"
	Mayor         Role = "Mayor"

	Butler  Role = "Butler"
	Drunk   Role = "Drunk"
	Recluse Role = "Recluse"
	Saint   Role = "Saint"

	Poisoner     Role = "Poisoner"
	Spy          Role = "Spy"
	ScarletWoman Role = "Scarlet Woman"
	Baron        Role = "Baron"

	Imp Role = "Imp"
)

var troubleBrewing = Script{
	Name: "Trouble Brewing",
	Townsfolk: []Role{
		Washerwoman, Librarian, Investigator, Chef, Empath,
		FortuneTeller, Undertaker, Monk, Ravenkeeper, Virgin,
		Slayer, Soldier, Mayor,
	},
	Outsiders: []Role{Butler, Drunk, Recluse, Saint},
	Minions:   []Role{Poisoner, Spy, ScarletWoman, Baron},
	Demons:    []Role{Imp},
}

// TroubleBrewing returns a copy of the built-in Trouble Brewing script.
func TroubleBrewing() *Script {
	s := troubleBrewing
	s.Townsfolk = append([]Role{}, troubleBrewing.Townsfolk...)
	s.Outsiders = append([]Role{}, troubleBrewing.Outsiders...)
	s.Minions = append([]Role{}, troubleBrewing.Minions...)
	s.Demons = append([]Role{}, troubleBrewing.Demons...)
	return &s
}
