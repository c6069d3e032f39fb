// Package models defines the core domain models for splitledger.
//
// # Entities
//
//   - User: a registered person who can own bank accounts and bills
//   - BankAccount: a payout destination registered by a user
//   - Bill: a payable total owed to its owner, split into shares
//   - UserBill: one participant's share of a Bill with its own paid flag
//
// # Design Principles
//
// 1. **Referential lists, not queries**: entities point at each other through ordered
// lists of IDs (User.BankAccounts, Bill.UserBills). Multi-hop lookups walk those lists
// and resolve each ID individually; there are no secondary indexes.
// 2. **Opaque identifiers**: IDs are UUID strings assigned once and never changed.
// 3. **Integer money**: amounts are unsigned integers in the smallest currency unit.
package models
