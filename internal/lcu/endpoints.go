package lcu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Typed wrappers over the endpoints this tool uses. Each is a single call;
// retry policy lives in Request.

func (c *Client) GameflowPhase(ctx context.Context) (string, error) {
	data, err := c.Request(ctx, http.MethodGet, "/lol-gameflow/v1/gameflow-phase", nil)
	if err != nil {
		return "", err
	}
	var phase string
	if err := json.Unmarshal(data, &phase); err != nil {
		return "", fmt.Errorf("decode gameflow phase: %w", err)
	}
	return phase, nil
}

func (c *Client) ReadyCheckState(ctx context.Context) (*ReadyCheck, error) {
	data, err := c.Request(ctx, http.MethodGet, "/lol-matchmaking/v1/ready-check", nil)
	if err != nil {
		return nil, err
	}
	var rc ReadyCheck
	if err := json.Unmarshal(data, &rc); err != nil {
		return nil, fmt.Errorf("decode ready check: %w", err)
	}
	return &rc, nil
}

func (c *Client) AcceptReadyCheck(ctx context.Context) error {
	_, err := c.Request(ctx, http.MethodPost, "/lol-matchmaking/v1/ready-check/accept", nil)
	return err
}

func (c *Client) ChampSelectSession(ctx context.Context) (*ChampSelectSession, error) {
	data, err := c.Request(ctx, http.MethodGet, "/lol-champ-select/v1/session", nil)
	if err != nil {
		return nil, err
	}
	var sess ChampSelectSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decode champ select session: %w", err)
	}
	return &sess, nil
}

// HoverChampion updates an action without completing it.
func (c *Client) HoverChampion(ctx context.Context, actionID, championID int) error {
	path := fmt.Sprintf("/lol-champ-select/v1/session/actions/%d", actionID)
	_, err := c.Request(ctx, http.MethodPatch, path, map[string]any{"championId": championID})
	return err
}

// LockChampion updates an action with the completion flag set.
func (c *Client) LockChampion(ctx context.Context, actionID, championID int) error {
	path := fmt.Sprintf("/lol-champ-select/v1/session/actions/%d", actionID)
	_, err := c.Request(ctx, http.MethodPatch, path, map[string]any{
		"championId": championID,
		"completed":  true,
	})
	return err
}

// CompleteAction issues the explicit complete call; this one is
// authoritative for the lock-in sequence.
func (c *Client) CompleteAction(ctx context.Context, actionID int) error {
	path := fmt.Sprintf("/lol-champ-select/v1/session/actions/%d/complete", actionID)
	_, err := c.Request(ctx, http.MethodPost, path, nil)
	return err
}

func (c *Client) PickableChampionIDs(ctx context.Context) ([]int, error) {
	data, err := c.Request(ctx, http.MethodGet, "/lol-champ-select/v1/pickable-champion-ids", nil)
	if err != nil {
		return nil, err
	}
	var ids []int
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decode pickable champion ids: %w", err)
	}
	return ids, nil
}

// SetSummonerSpells sets both spells in one combined update.
func (c *Client) SetSummonerSpells(ctx context.Context, spell1ID, spell2ID int) error {
	_, err := c.Request(ctx, http.MethodPatch, "/lol-champ-select/v1/session/my-selection", map[string]any{
		"spell1Id": spell1ID,
		"spell2Id": spell2ID,
	})
	return err
}

func (c *Client) RunePages(ctx context.Context) ([]RunePage, error) {
	data, err := c.Request(ctx, http.MethodGet, "/lol-perks/v1/pages", nil)
	if err != nil {
		return nil, err
	}
	var pages []RunePage
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("decode rune pages: %w", err)
	}
	return pages, nil
}

func (c *Client) SetCurrentRunePage(ctx context.Context, pageID int64) error {
	_, err := c.Request(ctx, http.MethodPut, "/lol-perks/v1/currentpage", pageID)
	return err
}

func (c *Client) PlayAgain(ctx context.Context) error {
	_, err := c.Request(ctx, http.MethodPost, "/lol-lobby/v2/play-again", nil)
	return err
}

func (c *Client) CurrentSummoner(ctx context.Context) (*Summoner, error) {
	data, err := c.Request(ctx, http.MethodGet, "/lol-summoner/v1/current-summoner", nil)
	if err != nil {
		return nil, err
	}
	var s Summoner
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode current summoner: %w", err)
	}
	return &s, nil
}

func (c *Client) ChatIdentity(ctx context.Context) (*ChatMe, error) {
	data, err := c.Request(ctx, http.MethodGet, "/lol-chat/v1/me", nil)
	if err != nil {
		return nil, err
	}
	var me ChatMe
	if err := json.Unmarshal(data, &me); err != nil {
		return nil, fmt.Errorf("decode chat identity: %w", err)
	}
	return &me, nil
}
