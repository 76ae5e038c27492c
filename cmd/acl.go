package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"search-manager/core/acl"
	"search-manager/core/database"
	"search-manager/feature/search"

	"github.com/spf13/cobra"
)

var filterField string

// aclCmd is the parent command for ACL encoding helpers.
var aclCmd = &cobra.Command{
	Use:   "acl",
	Short: "Encode, decode and inspect search ACLs",
}

var aclEncodeCmd = &cobra.Command{
	Use:   "encode <role>...",
	Short: "Encode roles the way they are stored in the index",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, encoded := range acl.EncodeACL(args) {
			fmt.Println(encoded)
		}
	},
}

var aclDecodeCmd = &cobra.Command{
	Use:   "decode <hex>...",
	Short: "Decode index ACL entries back to role names",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roles, err := acl.DecodeACL(args)
		if err != nil {
			return err
		}
		for _, role := range roles {
			fmt.Println(role)
		}
		return nil
	},
}

var aclFilterCmd = &cobra.Command{
	Use:   "filter [role]...",
	Short: "Print the read filter for a caller with the given roles",
	Long: `Prints the filter expression a query for the given roles must carry.
Roles may also be passed comma separated, as the auth proxy sends them.
Administrators get no filter.`,
	Run: func(cmd *cobra.Command, args []string) {
		roles := acl.RolesFromHeader(strings.Join(args, ","))
		if acl.IsAdmin(roles) {
			fmt.Println("(no filter: administrator)")
			return
		}
		fmt.Println(acl.ReadFilter(filterField, roles))
	},
}

var aclEventCmd = &cobra.Command{
	Use:   "event <id>",
	Short: "Show the stored and encoded ACL of an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid event id %q: %w", args[0], err)
		}

		cfg, l, err := bootstrap()
		if err != nil {
			return err
		}
		defer l.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		svc := search.NewService(nil, nil, search.NewACLRepository(db), cfg.Search.IndexPrefix, l)
		result, err := svc.EventACL(cmd.Context(), id)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	aclFilterCmd.Flags().StringVar(&filterField, "field", search.ReadRolesField, "Filterable field holding the encoded ACL")

	aclCmd.AddCommand(aclEncodeCmd, aclDecodeCmd, aclFilterCmd, aclEventCmd)
	RootCmd.AddCommand(aclCmd)
}
