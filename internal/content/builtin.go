package content

import "scenforge/internal/scenario"

func intp(i int) *int { return &i }

// BuiltIn returns the default content catalog. Callers must not mutate it;
// Load merges YAML overrides on top of a fresh copy instead.
func BuiltIn() *Pools {
	return &Pools{
		Missions: []MissionType{
			{
				ID:          "escape",
				Name:        "Escape",
				VictoryType: "escape",
				TileSet:     "city",
				Theme:       "pursuit",
				BaseDoom:    map[scenario.Difficulty]int{scenario.DifficultyNormal: 14, scenario.DifficultyHard: 12, scenario.DifficultyNightmare: 10},
				ObjectiveTemplates: []ObjectiveTemplate{
					{ID: "find_exit", Type: scenario.ObjectiveExplore, DescriptionTemplate: "Search {location} for a way out", ShortTemplate: "Find the exit", AmountMin: 2, AmountMax: 4},
					{ID: "gather_supplies", Type: scenario.ObjectiveCollect, DescriptionTemplate: "Scavenge {count} caches of supplies for the road", ShortTemplate: "Gather {count} supplies", TargetIDOptions: []string{"supply_cache"}, AmountMin: 2, AmountMax: 3, Optional: true},
					{ID: "flee", Type: scenario.ObjectiveEscape, DescriptionTemplate: "Escape {location} before {target} finds you", ShortTemplate: "Escape", RevealedByIndex: intp(0), Hidden: true},
				},
				VictoryCondition: ConditionTemplate{Type: "escape", DescriptionTemplate: "Escape {location} with the survivors"},
			},
			{
				ID:          "assassination",
				Name:        "Assassination",
				VictoryType: "assassinate",
				TileSet:     "manor",
				Theme:       "hunt",
				SpecialRule: "The hunt cuts both ways: the quarry stalks whoever stalks it.",
				BaseDoom:    map[scenario.Difficulty]int{scenario.DifficultyNormal: 12, scenario.DifficultyHard: 10, scenario.DifficultyNightmare: 8},
				ObjectiveTemplates: []ObjectiveTemplate{
					{ID: "track", Type: scenario.ObjectiveInvestigate, DescriptionTemplate: "Follow the trail of {target} through {location}", ShortTemplate: "Track the quarry", AmountMin: 2, AmountMax: 3},
					{ID: "slay", Type: scenario.ObjectiveKillBoss, DescriptionTemplate: "Destroy {target} before it completes the rite", ShortTemplate: "Slay {target}", TargetIDOptions: []string{"cult_sorcerer", "flesh_amalgam", "herald_of_dusk"}, RevealedByIndex: intp(0), Hidden: true, Rewards: []scenario.Reward{{Type: "doom", Amount: 2}}},
				},
				VictoryCondition: ConditionTemplate{Type: "assassinate", DescriptionTemplate: "Destroy {target}"},
			},
			{
				ID:          "rescue",
				Name:        "Rescue",
				VictoryType: "rescue",
				TileSet:     "asylum",
				Theme:       "desperation",
				BaseDoom:    map[scenario.Difficulty]int{scenario.DifficultyNormal: 13, scenario.DifficultyHard: 11, scenario.DifficultyNightmare: 9},
				ObjectiveTemplates: []ObjectiveTemplate{
					{ID: "locate", Type: scenario.ObjectiveRescue, DescriptionTemplate: "Find {victim} somewhere inside {location}", ShortTemplate: "Find {victim}", TargetIDOptions: []string{"cell_block", "operating_theatre", "flooded_basement"}},
					{ID: "extract", Type: scenario.ObjectiveEscape, DescriptionTemplate: "Carry {victim} out of {location} alive", ShortTemplate: "Escape with {victim}", RevealedByIndex: intp(0), Hidden: true},
					{ID: "silence_witnesses", Type: scenario.ObjectiveKillEnemies, DescriptionTemplate: "Put down {count} of the orderlies that saw you", ShortTemplate: "Silence {count} orderlies", TargetIDOptions: []string{"orderly"}, AmountMin: 2, AmountMax: 4, Optional: true},
				},
				VictoryCondition: ConditionTemplate{Type: "rescue", DescriptionTemplate: "Bring {victim} home"},
			},
			{
				ID:          "relic_hunt",
				Name:        "Relic Hunt",
				VictoryType: "collect",
				TileSet:     "ruins",
				Theme:       "greed",
				BaseDoom:    map[scenario.Difficulty]int{scenario.DifficultyNormal: 14, scenario.DifficultyHard: 12, scenario.DifficultyNightmare: 10},
				ObjectiveTemplates: []ObjectiveTemplate{
					{ID: "find_relic", Type: scenario.ObjectiveFindItem, DescriptionTemplate: "Recover the {item} from {location}", ShortTemplate: "Recover the {item}", TargetIDOptions: []string{"relic"}},
					{ID: "gather_shards", Type: scenario.ObjectiveCollect, DescriptionTemplate: "Collect {count} resonant shards scattered through the ruin", ShortTemplate: "Collect {count} shards", TargetIDOptions: []string{"shard"}, AmountMin: 3, AmountMax: 5, RevealedByIndex: intp(0)},
				},
				VictoryCondition: ConditionTemplate{Type: "collect", DescriptionTemplate: "Recover the {item} and its shards"},
			},
			{
				ID:          "last_stand",
				Name:        "Last Stand",
				VictoryType: "survive",
				TileSet:     "chapel",
				Theme:       "siege",
				SpecialRule: "Barricades on door edges absorb one breach before falling.",
				BaseDoom:    map[scenario.Difficulty]int{scenario.DifficultyNormal: 16, scenario.DifficultyHard: 13, scenario.DifficultyNightmare: 10},
				ObjectiveTemplates: []ObjectiveTemplate{
					{ID: "hold_out", Type: scenario.ObjectiveSurvive, DescriptionTemplate: "Survive {rounds} rounds as {mystery} presses in", ShortTemplate: "Survive {rounds} rounds", AmountMin: 8, AmountMax: 12},
					{ID: "thin_horde", Type: scenario.ObjectiveKillEnemies, DescriptionTemplate: "Destroy {count} of the besiegers", ShortTemplate: "Destroy {count} besiegers", AmountMin: 4, AmountMax: 8, Optional: true},
				},
				VictoryCondition: ConditionTemplate{Type: "survive", DescriptionTemplate: "Hold {location} until dawn"},
			},
			{
				ID:          "investigation",
				Name:        "Investigation",
				VictoryType: "investigate",
				TileSet:     "city",
				Theme:       "mystery",
				BaseDoom:    map[scenario.Difficulty]int{scenario.DifficultyNormal: 15, scenario.DifficultyHard: 13, scenario.DifficultyNightmare: 11},
				ObjectiveTemplates: []ObjectiveTemplate{
					{ID: "gather_clues", Type: scenario.ObjectiveInvestigate, DescriptionTemplate: "Uncover {count} clues about {mystery}", ShortTemplate: "Uncover {count} clues", AmountMin: 3, AmountMax: 5},
					{ID: "confront_truth", Type: scenario.ObjectiveExplore, DescriptionTemplate: "Reach the source of {mystery}", ShortTemplate: "Find the source", RevealedByIndex: intp(0), Hidden: true},
				},
				VictoryCondition: ConditionTemplate{Type: "investigate", DescriptionTemplate: "Lay bare the truth of {mystery}"},
			},
		},
		Locations: []LocationOption{
			{Name: "Innsport Docks", TileSet: "city", Atmosphere: "fog off the harbour, foghorns answering nothing"},
			{Name: "Carcosa Row", TileSet: "city", Atmosphere: "gaslight and yellow handbills on every wall"},
			{Name: "Blackmoor Manor", TileSet: "manor", Atmosphere: "dust sheets and portraits with scratched-out faces"},
			{Name: "Voss Family Estate", TileSet: "manor", Atmosphere: "a garden gone feral around a locked house"},
			{Name: "St. Jerome's Asylum", TileSet: "asylum", Atmosphere: "whitewashed corridors, every door humming"},
			{Name: "The Undercroft", TileSet: "ruins", Atmosphere: "salt-crusted stone older than the town above"},
			{Name: "Temple of the Drowned", TileSet: "ruins", Atmosphere: "tide pools on the altar steps"},
			{Name: "Chapel of Moths", TileSet: "chapel", Atmosphere: "candle smoke and the sound of wings"},
		},
		Enemies: map[scenario.Difficulty][]EnemySpawnConfig{
			scenario.DifficultyNormal: {
				{Type: "cultist", AmountMin: 2, AmountMax: 3, Message: "Robed figures slip out of the fog."},
				{Type: "ghoul", AmountMin: 1, AmountMax: 2, Message: "Something has been digging under the floors."},
				{Type: "rat_swarm", AmountMin: 2, AmountMax: 4, Message: "The walls begin to seethe."},
			},
			scenario.DifficultyHard: {
				{Type: "cultist", AmountMin: 3, AmountMax: 5, Message: "The congregation answers the bell."},
				{Type: "ghoul", AmountMin: 2, AmountMax: 3, Message: "Grave-lean shapes lope in on all fours."},
				{Type: "deep_one", AmountMin: 1, AmountMax: 3, Message: "Wet footprints climb up from the waterline."},
			},
			scenario.DifficultyNightmare: {
				{Type: "deep_one", AmountMin: 2, AmountMax: 4, Message: "The tide brings them in ranks."},
				{Type: "nightgaunt", AmountMin: 2, AmountMax: 3, Message: "The sky empties of stars where they pass."},
				{Type: "hound_of_tindalos", AmountMin: 1, AmountMax: 2, Message: "The angles of the room go wrong."},
			},
		},
		Bosses: []BossConfig{
			{ID: "cult_sorcerer", Name: "The Hierophant", Difficulty: scenario.DifficultyNormal, Message: "The Hierophant finishes the first verse."},
			{ID: "flesh_amalgam", Name: "The Gathered Flock", Difficulty: scenario.DifficultyNormal, Message: "The congregation stops pretending to be separate people."},
			{ID: "herald_of_dusk", Name: "Herald of Dusk", Difficulty: scenario.DifficultyHard, Message: "Dusk arrives six hours early."},
			{ID: "spawn_of_the_deep", Name: "Spawn of the Deep", Difficulty: scenario.DifficultyHard, Message: "The harbour empties like a pulled drain."},
			{ID: "the_unnamed", Name: "That Which Was Summoned", Difficulty: scenario.DifficultyNightmare, Message: "The summoning succeeds."},
			{ID: "dream_eater", Name: "Eater of the Sleeping", Difficulty: scenario.DifficultyNightmare, Message: "Everyone who has ever slept here wakes at once."},
		},
		Targets: []string{
			"Ilsyra of the Veil", "the Hollow Choir", "Doctor Erasmus Voss",
			"the Pale Surgeon", "Mother Ancoats", "the Wick-Keeper",
		},
		Victims: []string{
			"Professor Armitage", "little Sarah Voss", "Father Ambrose",
			"the lighthouse keeper's daughter", "Inspector Crane", "the archivist Mirel",
		},
		Mysteries: []string{
			"the disappearances on Harrow Street", "the singing beneath the chapel",
			"the lights over the mudflats", "the sealed thirteenth ward",
			"the tide that comes in twice", "the letters written in no known hand",
		},
		Collectibles: []string{
			"Obsidian Idol", "Tidewater Grimoire", "Silver Orrery",
			"Wax-Sealed Reliquary", "Star-Metal Key", "Ledger of the Drowned",
		},
		Bonus: []ObjectiveTemplate{
			{ID: "burn_effigies", Type: scenario.ObjectiveCollect, DescriptionTemplate: "Burn {count} effigies before they open their eyes", ShortTemplate: "Burn {count} effigies", TargetIDOptions: []string{"effigy"}, AmountMin: 2, AmountMax: 3, Rewards: []scenario.Reward{{Type: "doom", Amount: 1}}},
			{ID: "save_bystander", Type: scenario.ObjectiveRescue, DescriptionTemplate: "Lead a trapped bystander to safety", ShortTemplate: "Save the bystander", TargetIDOptions: []string{"bystander"}, Rewards: []scenario.Reward{{Type: "item", ItemID: "laudanum"}}},
			{ID: "recover_journal", Type: scenario.ObjectiveFindItem, DescriptionTemplate: "Recover the expedition journal", ShortTemplate: "Find the journal", TargetIDOptions: []string{"journal"}, Rewards: []scenario.Reward{{Type: "insight", Amount: 1}}},
			{ID: "seal_ways", Type: scenario.ObjectiveExplore, DescriptionTemplate: "Seal {count} of the lesser ways between rooms", ShortTemplate: "Seal {count} ways", AmountMin: 2, AmountMax: 3},
		},
		TitlesByMission: map[string][]string{
			"escape":        {"Flight from {location}", "No Doors in {location}"},
			"assassination": {"The End of {target}", "A Knife for {target}"},
			"rescue":        {"Bringing Back {victim}", "{victim} Is Still Down There"},
			"relic_hunt":    {"The {item}", "What the {item} Costs"},
			"last_stand":    {"The Long Night at {location}", "Dawn Comes to {location}"},
			"investigation": {"Concerning {mystery}", "An Account of {mystery}"},
		},
		TitlesByVictory: map[string][]string{
			"escape":      {"Out of {location}"},
			"assassinate": {"Hunting {target}"},
			"rescue":      {"For {victim}"},
			"collect":     {"The Price of the {item}"},
			"survive":     {"Until Morning"},
			"investigate": {"The Truth of {mystery}"},
		},
		TitlesGeneric: []string{"The {location} Incident"},
		BriefingOpenings: []string{
			"The telegram reached you at midnight, and midnight is when such things are true.",
			"Nobody in town will speak of it above a whisper, which is how you know it is real.",
			"The last survey team filed one report, and the report was a map with a hole burned in it.",
			"You have read the ledger twice. The numbers are sane. Nothing else about it is.",
		},
		BriefingMiddles: map[string][]string{
			"escape": {
				"Whatever walks {location} has learned the streets better than you. Every hour the ways out grow fewer.",
				"The cordon was meant to keep people out of {location}. It works just as well in the other direction.",
			},
			"assassinate": {
				"{target} has nearly finished the work begun beneath {location}. If the rite completes, there will be no one left qualified to regret it.",
				"Every witness describes {target} differently, and every witness is missing something since.",
			},
			"rescue": {
				"{victim} was seen taken into {location} three nights ago. The staff insist no such person was ever admitted.",
				"The note in {victim}'s hand reached you by means you prefer not to examine. It names {location}, and it is not finished being written.",
			},
			"collect": {
				"The {item} surfaced in a dockside auction lot and vanished into {location} the same night. It wants to be found, which is the problem.",
				"Fragments of the {item} answer each other across {location} like struck glass. Collect them before something else completes the chord.",
			},
			"survive": {
				"The doors of {location} will hold until they do not. Dawn is a number, and the number is going down.",
				"They come with the dark tide. {location} has survived this before, but never with so few to hold it.",
			},
			"investigate": {
				"Three threads lead into {mystery}, and every one of them ends at {location}. Pull carefully.",
				"The pattern behind {mystery} is almost legible now. Almost is the dangerous amount.",
			},
		},
		BriefingClosings: map[scenario.Difficulty][]string{
			scenario.DifficultyNormal: {
				"Go prepared, keep your lanterns close, and be out before the bells.",
				"There is still time to do this carefully. Spend it.",
			},
			scenario.DifficultyHard: {
				"Help is not coming. Finish it before the doom count runs dry.",
				"Whatever you save tonight, do not count on saving yourself as well.",
			},
			scenario.DifficultyNightmare: {
				"No one has come back from this. Make the attempt matter.",
				"Write your letters before you go. The post will not collect where you are going.",
			},
		},
	}
}
