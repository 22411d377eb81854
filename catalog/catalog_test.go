package catalog

import (
	"strings"
	"testing"

	"github.com/WangCCe/slay-the-spire-ai/game"
)

func TestCard_KnownAndUnknown(t *testing.T) {
	bash, ok := Card("Bash")
	if !ok {
		t.Fatal("Bash missing from catalog")
	}
	if bash.Cost != 2 || bash.Damage != 8 || !bash.Applies.Has(game.DebuffVulnerable) || !bash.NeedsTarget {
		t.Errorf("Bash spec wrong: %+v", bash)
	}

	if _, ok := Card("Nope"); ok {
		t.Error("unknown card reported present")
	}
}

func TestCard_TargetingConsistency(t *testing.T) {
	for id, spec := range cards {
		if spec.AOE && spec.NeedsTarget {
			t.Errorf("%s is AOE but demands a target", id)
		}
		if spec.Damage > 0 && !spec.AOE && !spec.NeedsTarget {
			t.Errorf("%s deals targeted damage without NeedsTarget", id)
		}
	}
}

func TestPotion_Table(t *testing.T) {
	fire, ok := Potion("Fire Potion")
	if !ok || fire.Kind != game.PotionDamage || fire.Value != 20 || !fire.NeedsTarget {
		t.Errorf("Fire Potion spec wrong: %+v, ok=%v", fire, ok)
	}
	explosive, ok := Potion("Explosive Potion")
	if !ok || !explosive.AOE || explosive.NeedsTarget {
		t.Errorf("Explosive Potion spec wrong: %+v, ok=%v", explosive, ok)
	}
}

func TestTraits(t *testing.T) {
	if tr := Traits("Champ"); !tr.Boss || !tr.Scaling {
		t.Errorf("Champ traits = %+v", tr)
	}
	if tr := Traits("Cultist"); tr.Boss || !tr.Scaling {
		t.Errorf("Cultist traits = %+v", tr)
	}
	if tr := Traits("SomethingNew"); tr.Boss || tr.Scaling {
		t.Errorf("unknown monster traits = %+v, want zero", tr)
	}
}

const wikiFixture = `
<table class="wikitable">
<tr><th>Name</th><th>Cost</th><th>Type</th><th>Description</th></tr>
<tr><td>Strike</td><td>1</td><td>Attack</td><td>Deal 6 damage.</td></tr>
<tr><td>Cleave</td><td>1</td><td>Attack</td><td>Deal 8 damage to ALL enemies.</td></tr>
<tr><td>Shrug It Off</td><td>1</td><td>Skill</td><td>Gain 8 Block. Draw 1 card.</td></tr>
<tr><td>Uppercut</td><td>2</td><td>Attack</td><td>Deal 13 damage. Apply 1 Weak. Apply 1 Vulnerable.</td></tr>
<tr><td>Whirlwind</td><td>X</td><td>Attack</td><td>Deal 5 damage to ALL enemies X times.</td></tr>
<tr><td>Pummel</td><td>1</td><td>Attack</td><td>Deal 2 damage 4 times. Exhaust.</td></tr>
</table>`

func TestParseCards_WikiTable(t *testing.T) {
	specs, err := ParseCards(strings.NewReader(wikiFixture))
	if err != nil {
		t.Fatalf("ParseCards failed: %v", err)
	}

	byID := make(map[string]game.CardSpec, len(specs))
	for _, s := range specs {
		byID[s.ID] = s
	}

	// X-cost rows do not parse and must be skipped.
	if _, ok := byID["Whirlwind"]; ok {
		t.Error("X-cost card was not skipped")
	}
	if len(specs) != 5 {
		t.Errorf("parsed %d cards, want 5", len(specs))
	}

	strike := byID["Strike"]
	if strike.Damage != 6 || strike.Cost != 1 || strike.Kind != game.CardAttack || !strike.NeedsTarget {
		t.Errorf("Strike parsed wrong: %+v", strike)
	}

	cleave := byID["Cleave"]
	if !cleave.AOE || cleave.NeedsTarget || cleave.Damage != 8 {
		t.Errorf("Cleave parsed wrong: %+v", cleave)
	}

	shrug := byID["Shrug It Off"]
	if shrug.Block != 8 || shrug.Draw != 1 || shrug.Kind != game.CardSkill {
		t.Errorf("Shrug It Off parsed wrong: %+v", shrug)
	}

	uppercut := byID["Uppercut"]
	if uppercut.Applies != game.DebuffWeak|game.DebuffVulnerable {
		t.Errorf("Uppercut debuffs parsed wrong: %+v", uppercut)
	}

	pummel := byID["Pummel"]
	if pummel.Hits != 4 || !pummel.Exhaust {
		t.Errorf("Pummel parsed wrong: %+v", pummel)
	}
}

func TestRegister_OverridesBuiltin(t *testing.T) {
	old, _ := Card("Strike_R")
	defer Register([]game.CardSpec{old})

	Register([]game.CardSpec{{ID: "Strike_R", Kind: game.CardAttack, Cost: 1, Damage: 9, NeedsTarget: true}})
	got, _ := Card("Strike_R")
	if got.Damage != 9 {
		t.Errorf("override not applied: %+v", got)
	}
}
