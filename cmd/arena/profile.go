package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-arena/internal/engine/characters"
	"github.com/KirkDiggler/rpg-arena/internal/entities"
	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/repositories/profile"
	runhistory "github.com/KirkDiggler/rpg-arena/internal/repositories/run_history"
)

var (
	profileID      string
	soundEnabled   bool
	reducedEffects bool
	historyLimit   int
	repairFix      bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage player profiles",
}

var profileGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Print a profile",
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		out, err := a.profiles.Get(ctx, profile.GetInput{ID: profileID})
		if err != nil {
			return err
		}
		return printYAML(cmd, out.Profile)
	}),
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profile ids",
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		out, err := a.profiles.List(ctx, profile.ListInput{})
		if err != nil {
			return err
		}
		return printYAML(cmd, out.IDs)
	}),
}

var profileSelectCmd = &cobra.Command{
	Use:   "select <character>",
	Short: "Select the character future runs use",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		def, ok := characters.Lookup(args[0])
		if !ok {
			return errors.NotFoundf("character %s not found", args[0])
		}
		return updateProfile(ctx, cmd, a, func(p *entities.Profile) {
			p.Unlock(def.ID)
			p.SelectedCharacterID = def.ID
		})
	}),
}

var profileSettingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Change presentation settings",
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		flags := cmd.Flags()
		if !flags.Changed("sound") && !flags.Changed("reduced-effects") {
			return errors.InvalidArgument("nothing to change: pass --sound or --reduced-effects")
		}
		return updateProfile(ctx, cmd, a, func(p *entities.Profile) {
			if flags.Changed("sound") {
				p.Settings.SoundEnabled = soundEnabled
			}
			if flags.Changed("reduced-effects") {
				p.Settings.ReducedEffects = reducedEffects
			}
		})
	}),
}

var profileHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the profile's recent runs, newest first",
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		out, err := a.history.List(ctx, runhistory.ListInput{ProfileID: profileID, Limit: historyLimit})
		if err != nil {
			return err
		}
		return printYAML(cmd, out.Records)
	}),
}

var profileRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Scan stored profiles for corrupt data",
	RunE: withApp(func(ctx context.Context, cmd *cobra.Command, a *app, _ []string) error {
		out, err := a.profiles.Verify(ctx, profile.VerifyInput{Fix: repairFix})
		if err != nil {
			return err
		}
		if len(out.Corrupt) > 0 || len(out.Dangling) > 0 {
			a.logger.Warn("profile store has problems",
				"corrupt", len(out.Corrupt),
				"dangling", len(out.Dangling),
				"fixed", out.Fixed)
		}
		return printYAML(cmd, map[string]any{
			"checked":  out.Checked,
			"corrupt":  out.Corrupt,
			"dangling": out.Dangling,
			"fixed":    out.Fixed,
		})
	}),
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a profile",
	RunE: withApp(func(ctx context.Context, _ *cobra.Command, a *app, _ []string) error {
		_, err := a.profiles.Delete(ctx, profile.DeleteInput{ID: profileID})
		return err
	}),
}

func init() {
	profileCmd.PersistentFlags().StringVar(&profileID, "id", "local", "profile id")
	profileSettingsCmd.Flags().BoolVar(&soundEnabled, "sound", true, "play sound cues")
	profileHistoryCmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum records; 0 prints everything kept")
	profileRepairCmd.Flags().BoolVar(&repairFix, "fix", false, "delete corrupt profiles and drop dangling index entries")
	profileSettingsCmd.Flags().BoolVar(&reducedEffects, "reduced-effects", false, "suppress screen shake and damage numbers")

	profileCmd.AddCommand(profileGetCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileSelectCmd)
	profileCmd.AddCommand(profileSettingsCmd)
	profileCmd.AddCommand(profileHistoryCmd)
	profileCmd.AddCommand(profileRepairCmd)
	profileCmd.AddCommand(profileDeleteCmd)
}

// withApp wires the runner around a short-lived command.
func withApp(fn func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()
		return fn(ctx, cmd, a, args)
	}
}

// updateProfile loads the profile, creating it on first use, applies mutate
// and saves it.
func updateProfile(ctx context.Context, cmd *cobra.Command, a *app, mutate func(*entities.Profile)) error {
	var p *entities.Profile

	out, err := a.profiles.Get(ctx, profile.GetInput{ID: profileID})
	switch {
	case errors.IsNotFound(err):
		p = entities.NewProfile(profileID)
	case err != nil:
		return err
	default:
		p = out.Profile
	}

	mutate(p)

	saved, err := a.profiles.Save(ctx, profile.SaveInput{Profile: p})
	if err != nil {
		return err
	}
	a.logger.Info("profile saved", "profile_id", profileID)
	return printYAML(cmd, saved.Profile)
}
